package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// FavoritesHandler exposes the favorite recipe set over HTTP
type FavoritesHandler struct {
	favorites inbound.FavoritesService
	logger    *zap.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites inbound.FavoritesService, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, logger: logger}
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.favorites.List(r.Context())})
}

// Add handles PUT /api/v1/favorites/{recipeID}. The recipe snapshot to store
// is carried in the body.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := parseRecipeID(w, r)
	if !ok {
		return
	}

	var rec recipe.Recipe
	if !decodeBody(w, r, &rec) {
		return
	}
	if rec.ID != recipeID {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Recipe ID mismatch"})
		return
	}

	if err := h.favorites.Add(r.Context(), rec); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Recipe favorited"})
}

// Remove handles DELETE /api/v1/favorites/{recipeID}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := parseRecipeID(w, r)
	if !ok {
		return
	}

	if err := h.favorites.Remove(r.Context(), recipeID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Recipe unfavorited"})
}

func parseRecipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Invalid recipe ID"})
		return 0, false
	}
	return recipeID, true
}
