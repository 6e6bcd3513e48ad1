package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/masagus/menuku/internal/model"
	"github.com/masagus/menuku/internal/reorder"
	"github.com/masagus/menuku/internal/store"
	"github.com/masagus/menuku/internal/websocket"
)

type MenuHandler struct {
	store  *store.MenuStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewMenuHandler(s *store.MenuStore, hub *websocket.Hub, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{store: s, hub: hub, logger: logger}
}

type menuItemRequest struct {
	Name        string `json:"name"`
	Price       *int64 `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// validate rejects bad input before any store call.
func (req *menuItemRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)

	if req.Name == "" {
		return "name is required"
	}
	if req.Price == nil {
		return "price is required"
	}
	if *req.Price < 0 {
		return "price must be a non-negative integer"
	}
	if req.Category == "" {
		return "category is required"
	}
	return ""
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		h.logger.Error("list menu items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list menu items"})
		return
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Create(req.Name, *req.Price, req.Description, req.Category, req.ImageURL)
	if err != nil {
		h.logger.Error("create menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create menu item"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("menu_items", "created", item.ID))
	writeJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get menu item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Update(id, req.Name, *req.Price, req.Description, req.Category, req.ImageURL)
	if err != nil {
		h.logger.Error("update menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update menu item"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("menu_items", "updated", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get menu item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.logger.Error("delete menu item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete menu item"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("menu_items", "deleted", id))
	w.WriteHeader(http.StatusNoContent)
}

// Reorder persists a full new display order. The request must name every
// current item exactly once; positions are assigned from the array index.
// A mid-sequence write failure is reported as-is — rows already written stay
// written and clients recover by refetching.
func (h *MenuHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if len(req.IDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ids are required"})
		return
	}

	current, err := h.store.List()
	if err != nil {
		h.logger.Error("list menu items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list menu items"})
		return
	}
	currentIDs := make([]string, len(current))
	for i, item := range current {
		currentIDs[i] = item.ID
	}

	if !reorder.SameMembers(currentIDs, req.IDs) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ids must contain every menu item exactly once"})
		return
	}

	if err := h.store.UpdateDisplayOrder(req.IDs); err != nil {
		h.logger.Error("update display order", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update display order"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("menu_items", "reordered", ""))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
