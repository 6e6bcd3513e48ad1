package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/masagus/menuku/internal/model"
	"github.com/masagus/menuku/internal/store"
	"github.com/masagus/menuku/internal/websocket"
)

// SettingsHandler serves the admin's own settings row. The tenant is fixed
// at construction; settings routes never take a user id from the request.
type SettingsHandler struct {
	store  *store.SettingsStore
	hub    *websocket.Hub
	userID string
	logger *slog.Logger
}

func NewSettingsHandler(s *store.SettingsStore, hub *websocket.Hub, userID string, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{store: s, hub: hub, userID: userID, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Get(h.userID)
	if err != nil {
		h.logger.Error("get settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get settings"})
		return
	}
	if settings == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "settings not found"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if !model.ValidTemplate(req.Template) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "template must be Colorful or Minimalist"})
		return
	}

	if err := h.store.UpdateTemplate(h.userID, req.Template); err != nil {
		h.logger.Error("update template", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update template"})
		return
	}

	h.broadcastUpdated()
	h.Get(w, r)
}

func (h *SettingsHandler) UpdateWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WhatsAppNumber string `json:"whatsapp_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// Stored as bare digits. Country-code normalization happens at checkout,
	// not here, so a later edit sees what the admin typed.
	digits := digitsOnly(req.WhatsAppNumber)
	if digits == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "whatsapp_number must contain digits"})
		return
	}

	if err := h.store.UpdateWhatsApp(h.userID, digits); err != nil {
		h.logger.Error("update whatsapp number", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update whatsapp number"})
		return
	}

	h.broadcastUpdated()
	h.Get(w, r)
}

func (h *SettingsHandler) broadcastUpdated() {
	msg := websocket.NewMessage("user_settings", "updated", "")
	msg.UserID = h.userID
	h.hub.Broadcast(msg)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
