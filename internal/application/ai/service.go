// Package ai provides the application layer over the language-model proxy:
// the prompts the planner uses for recipe suggestions, generated meal plans,
// recipe modification and shopping-list optimization. Responses are free
// text; callers normalize anything that should become a recipe snapshot
// before it reaches the meal plan store.
package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/errors"
)

// Service implements the AI planner use cases.
type Service struct {
	llm    outbound.AIService
	logger *zap.Logger
}

// NewService creates a new AI planner service
func NewService(llm outbound.AIService, logger *zap.Logger) inbound.AIPlannerService {
	return &Service{
		llm:    llm,
		logger: logger.Named("ai-planner-service"),
	}
}

// SuggestRecipes asks for personalized recipe suggestions as JSON text.
func (s *Service) SuggestRecipes(ctx context.Context, prefs inbound.SuggestionPreferences, count int) (string, error) {
	if count < 1 {
		count = 3
	}
	prompt := fmt.Sprintf(`You are a professional chef AI assistant. Based on the user's preferences, suggest %d personalized recipes.

User Preferences:
- Favorite ingredients: %s
- Dietary restrictions: %s
- Disliked ingredients: %s
- Preferred cuisines: %s
- Recent meals (avoid similar): %s

Please respond with a JSON array of %d recipe objects, each with:
{
  "title": "Recipe Name",
  "description": "Brief appealing description",
  "ingredients": ["ingredient 1", "ingredient 2"],
  "instructions": ["step 1", "step 2"],
  "cookingTime": number_in_minutes,
  "difficulty": "easy|medium|hard",
  "cuisine": "cuisine_type",
  "dietaryTags": ["tag1", "tag2"]
}

Ensure recipes are diverse, match preferences, and avoid recent meals. Only return valid JSON.`,
		count,
		orDefault(prefs.FavoriteIngredients, "None specified"),
		orDefault(prefs.DietaryRestrictions, "None"),
		orDefault(prefs.DislikedIngredients, "None"),
		orDefault(prefs.PreferredCuisines, "Any"),
		orDefault(prefs.RecentMeals, "None"),
		count,
	)
	return s.complete(ctx, "recipe suggestions", prompt)
}

// GenerateMealPlan asks for an N-day plan rendered as day-separated text
// blocks.
func (s *Service) GenerateMealPlan(ctx context.Context, req inbound.MealPlanRequest) (string, error) {
	days := req.Days
	if days < 1 {
		days = 7
	}
	prompt := fmt.Sprintf(`You are a nutrition and meal planning expert. Create a %d-day meal plan for someone with these preferences:

- Dietary restrictions: %s
- Preferred cuisines: %s
- Favorite ingredients to include: %s
- Ingredients to avoid: %s

Provide a detailed meal plan with breakfast, lunch, dinner for %d days, one block per day separated by blank lines:

Day 1:
Breakfast: ...
Lunch: ...
Dinner: ...

Day 2: ...

Finish with a short explanation of the nutritional balance.`,
		days,
		orDefault(req.Preferences.DietaryRestrictions, "None"),
		orDefault(req.Preferences.PreferredCuisines, "Varied"),
		orDefault(req.Preferences.FavoriteIngredients, "Flexible"),
		orDefault(req.Preferences.DislikedIngredients, "None"),
		days,
	)
	return s.complete(ctx, "meal plan", prompt)
}

// ModifyRecipe asks for a modified version of a recipe snapshot.
func (s *Service) ModifyRecipe(ctx context.Context, rec recipe.Recipe, modifications []string) (string, error) {
	ingredients := make([]string, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		if ing.Original != "" {
			ingredients = append(ingredients, ing.Original)
		} else {
			ingredients = append(ingredients, ing.Name)
		}
	}

	prompt := fmt.Sprintf(`You are a chef AI assistant. Modify this recipe to be %s:

Original Recipe:
Title: %s
Ingredients: %s
Servings: %d
Cooking Time: %d minutes

Please provide the modified recipe and explain what changes were made.`,
		strings.Join(modifications, ", "),
		rec.Title,
		strings.Join(ingredients, ", "),
		rec.Servings,
		rec.ReadyInMinutes,
	)
	return s.complete(ctx, "recipe modification", prompt)
}

// OptimizeShoppingList asks for a budget-aware reorganization of a list of
// ingredient names.
func (s *Service) OptimizeShoppingList(ctx context.Context, ingredients []string, budget string) (string, error) {
	if budget == "" {
		budget = "medium"
	}
	prompt := fmt.Sprintf(`You are a smart shopping assistant. Optimize this shopping list for efficiency and %s budget:

Ingredients needed: %s

Please provide:
1. An organized shopping list grouped by store sections
2. Money-saving tips and substitutions
3. Quantity recommendations for best value`,
		budget,
		strings.Join(ingredients, ", "),
	)
	return s.complete(ctx, "shopping optimization", prompt)
}

func (s *Service) complete(ctx context.Context, kind, prompt string) (string, error) {
	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("AI completion failed", zap.String("kind", kind), zap.Error(err))
		return "", errors.NewExternalServiceError("AI proxy", err)
	}
	return text, nil
}

func orDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
