package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/ports/outbound"
	apperrors "github.com/mealforge/v1/pkg/errors"
)

// RecipesHandler proxies the external recipe source over HTTP
type RecipesHandler struct {
	source outbound.RecipeSource
	logger *zap.Logger
}

// NewRecipesHandler creates a new recipes handler
func NewRecipesHandler(source outbound.RecipeSource, logger *zap.Logger) *RecipesHandler {
	return &RecipesHandler{source: source, logger: logger}
}

// Search handles GET /api/v1/recipes/search
func (h *RecipesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := outbound.SearchFilters{
		Query:        query.Get("query"),
		Diet:         query.Get("diet"),
		Intolerances: query.Get("intolerances"),
		Cuisine:      query.Get("cuisine"),
		DishType:     query.Get("type"),
		Sort:         query.Get("sort"),
	}
	if raw := query.Get("maxReadyTime"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Invalid maxReadyTime"})
			return
		}
		filters.MaxReadyTime = minutes
	}
	if raw := query.Get("number"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Invalid number"})
			return
		}
		filters.Limit = limit
	}

	recipes, err := h.source.Search(r.Context(), filters)
	if err != nil {
		writeError(w, h.logger, apperrors.NewExternalServiceError("recipe source", err))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recipes})
}

// GetByID handles GET /api/v1/recipes/{id}
func (h *RecipesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Invalid recipe ID"})
		return
	}

	rec, err := h.source.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, apperrors.NewExternalServiceError("recipe source", err))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: rec})
}
