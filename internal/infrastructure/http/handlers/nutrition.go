package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/ports/inbound"
)

// NutritionHandler exposes derived nutrition estimates over HTTP
type NutritionHandler struct {
	nutrition inbound.NutritionService
	logger    *zap.Logger
}

// NewNutritionHandler creates a new nutrition handler
func NewNutritionHandler(nutrition inbound.NutritionService, logger *zap.Logger) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition, logger: logger}
}

// Summary handles GET /api/v1/nutrition/summary
func (h *NutritionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.nutrition.Summary(r.Context())
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"summary":   summary,
			"breakdown": summary.MacroBreakdown(),
		},
	})
}

// Weekly handles GET /api/v1/nutrition/weekly
func (h *NutritionHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.nutrition.Weekly(r.Context(), time.Now()),
	})
}
