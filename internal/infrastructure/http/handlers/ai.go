package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// AIHandler exposes the AI planning collaborators over HTTP. Every response
// is free text from the model; nothing here touches the plan.
type AIHandler struct {
	planner inbound.AIPlannerService
	logger  *zap.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(planner inbound.AIPlannerService, logger *zap.Logger) *AIHandler {
	return &AIHandler{planner: planner, logger: logger}
}

type preferencesPayload struct {
	FavoriteIngredients []string `json:"favoriteIngredients"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	DislikedIngredients []string `json:"dislikedIngredients"`
	PreferredCuisines   []string `json:"preferredCuisines"`
	RecentMeals         []string `json:"recentMeals"`
}

func (p preferencesPayload) toPreferences() inbound.SuggestionPreferences {
	return inbound.SuggestionPreferences{
		FavoriteIngredients: p.FavoriteIngredients,
		DietaryRestrictions: p.DietaryRestrictions,
		DislikedIngredients: p.DislikedIngredients,
		PreferredCuisines:   p.PreferredCuisines,
		RecentMeals:         p.RecentMeals,
	}
}

type recommendationsRequest struct {
	Preferences preferencesPayload `json:"preferences"`
	Count       int                `json:"count"`
}

// Recommendations handles POST /api/v1/ai/recommendations
func (h *AIHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.planner.SuggestRecipes(r.Context(), req.Preferences.toPreferences(), req.Count)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]string{"text": text}})
}

type mealPlanRequest struct {
	Preferences preferencesPayload `json:"preferences"`
	Days        int                `json:"days"`
}

// MealPlan handles POST /api/v1/ai/meal-plan
func (h *AIHandler) MealPlan(w http.ResponseWriter, r *http.Request) {
	var req mealPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.planner.GenerateMealPlan(r.Context(), inbound.MealPlanRequest{
		Preferences: req.Preferences.toPreferences(),
		Days:        req.Days,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]string{"text": text}})
}

type modifyRecipeRequest struct {
	Recipe        recipe.Recipe `json:"recipe"`
	Modifications []string      `json:"modifications"`
}

// ModifyRecipe handles POST /api/v1/ai/modify-recipe
func (h *AIHandler) ModifyRecipe(w http.ResponseWriter, r *http.Request) {
	var req modifyRecipeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.planner.ModifyRecipe(r.Context(), req.Recipe, req.Modifications)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]string{"text": text}})
}

type optimizeShoppingRequest struct {
	Ingredients []string `json:"ingredients"`
	Budget      string   `json:"budget"`
}

// OptimizeShopping handles POST /api/v1/ai/optimize-shopping
func (h *AIHandler) OptimizeShopping(w http.ResponseWriter, r *http.Request) {
	var req optimizeShoppingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.planner.OptimizeShoppingList(r.Context(), req.Ingredients, req.Budget)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]string{"text": text}})
}
