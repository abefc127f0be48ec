package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mealforge/v1/internal/domain/shopping"
	"github.com/mealforge/v1/internal/ports/inbound"
)

// ShoppingHandler exposes shopping list generation and management over HTTP
type ShoppingHandler struct {
	lists  inbound.ShoppingService
	logger *zap.Logger
}

// NewShoppingHandler creates a new shopping list handler
func NewShoppingHandler(lists inbound.ShoppingService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{lists: lists, logger: logger}
}

type generateListRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Generate handles POST /api/v1/shopping-lists
func (h *ShoppingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	list, err := h.lists.Generate(r.Context(), inbound.GenerateListCommand{
		Name:  req.Name,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    list,
		Message: "Shopping list generated",
	})
}

// List handles GET /api/v1/shopping-lists
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.lists.List(r.Context())})
}

// Get handles GET /api/v1/shopping-lists/{id}, optionally organized through
// the group/filter query parameters.
func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	list, ok := h.lists.Get(r.Context(), id)
	if !ok {
		writeJSON(w, http.StatusNotFound, APIResponse{Success: false, Error: "Shopping list not found"})
		return
	}

	query := r.URL.Query()
	if query.Get("group") == "" && query.Get("filter") == "" {
		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: list})
		return
	}

	groupBy, err := shopping.ParseGroupBy(query.Get("group"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: err.Error()})
		return
	}
	filter, err := shopping.ParseFilter(query.Get("filter"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: list.Organize(groupBy, filter)})
}

// Delete handles DELETE /api/v1/shopping-lists/{id}
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.lists.Delete(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Shopping list deleted"})
}

// ToggleItem handles POST /api/v1/shopping-lists/{id}/items/{itemID}/toggle
func (h *ShoppingHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")
	itemID := chi.URLParam(r, "itemID")

	if err := h.lists.ToggleItem(r.Context(), listID, itemID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Item toggled"})
}

// Export handles GET /api/v1/shopping-lists/{id}/export. The format query
// parameter selects the share text ("share") or checklist export (default).
func (h *ShoppingHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query()

	groupBy, err := shopping.ParseGroupBy(query.Get("group"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: err.Error()})
		return
	}
	filter, err := shopping.ParseFilter(query.Get("filter"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: err.Error()})
		return
	}

	share := query.Get("format") == "share"
	text, err := h.lists.Export(r.Context(), id, groupBy, filter, share)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeText(w, text)
}
