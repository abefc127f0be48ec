package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/mealplan"
	"github.com/mealforge/v1/internal/domain/recipe"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// PlanHandler exposes the meal plan over HTTP
type PlanHandler struct {
	plans  inbound.PlanService
	logger *zap.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plans inbound.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, logger: logger}
}

type createAssignmentRequest struct {
	Recipe   recipe.Recipe `json:"recipe"`
	Date     string        `json:"date"`
	MealType string        `json:"mealType"`
	Servings int           `json:"servings"`
	Notes    string        `json:"notes"`
}

// Create handles POST /api/v1/plan
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.plans.Create(r.Context(), inbound.CreateAssignmentCommand{
		Recipe:   req.Recipe,
		Date:     req.Date,
		Slot:     req.MealType,
		Servings: req.Servings,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    map[string]string{"id": id},
		Message: "Meal assignment created",
	})
}

// List handles GET /api/v1/plan with optional start/end query bounds
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	var assignments []mealplan.Assignment
	if start != "" || end != "" {
		var err error
		assignments, err = h.plans.ListRange(r.Context(), start, end)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
	} else {
		assignments = h.plans.ListAll(r.Context())
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: assignments})
}

// Update handles PATCH /api/v1/plan/{id}
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch mealplan.Patch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.plans.Update(r.Context(), id, patch); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Meal assignment updated"})
}

// Delete handles DELETE /api/v1/plan/{id}
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.plans.Remove(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Meal assignment removed"})
}

type moveAssignmentRequest struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
}

// Move handles POST /api/v1/plan/{id}/move
func (h *PlanHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveAssignmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.plans.Move(r.Context(), id, req.Date, req.MealType); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Meal assignment moved"})
}

// Export handles GET /api/v1/plan/export
func (h *PlanHandler) Export(w http.ResponseWriter, r *http.Request) {
	writeText(w, h.plans.ExportText(r.Context()))
}
