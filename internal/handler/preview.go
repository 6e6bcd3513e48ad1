package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/masagus/menuku/internal/cart"
	"github.com/masagus/menuku/internal/menu"
	"github.com/masagus/menuku/internal/model"
	"github.com/masagus/menuku/internal/store"
)

// PreviewHandler serves the public customer-facing menu. Routes here are
// keyed by the user id in the path, not by the admin tenant, so a shared
// link keeps working no matter who opens it.
type PreviewHandler struct {
	menuStore     *store.MenuStore
	settingsStore *store.SettingsStore
	logger        *slog.Logger
}

func NewPreviewHandler(menuStore *store.MenuStore, settingsStore *store.SettingsStore, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{menuStore: menuStore, settingsStore: settingsStore, logger: logger}
}

type previewMenuResponse struct {
	Template   string           `json:"template"`
	Categories []string         `json:"categories"`
	Items      []model.MenuItem `json:"items"`
	ItemCount  int              `json:"item_count"`
}

// Menu returns the published menu for a tenant, filtered by the optional
// search and category query parameters. The category list always reflects
// the full catalog, not the filtered view.
func (h *PreviewHandler) Menu(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	settings, err := h.settingsStore.Get(userID)
	if err != nil {
		h.logger.Error("get settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu"})
		return
	}
	if settings == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu not found"})
		return
	}

	items, err := h.menuStore.List()
	if err != nil {
		h.logger.Error("list menu items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load menu"})
		return
	}

	q := r.URL.Query()
	category := q.Get("category")
	if category == "All" {
		category = ""
	}
	projected := menu.Project(items, q.Get("search"), category)
	if projected == nil {
		projected = []model.MenuItem{}
	}

	writeJSON(w, http.StatusOK, previewMenuResponse{
		Template:   settings.Template,
		Categories: menu.Categories(items),
		Items:      projected,
		ItemCount:  len(items),
	})
}

type checkoutLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Price    *int64 `json:"price"`
}

type checkoutRequest struct {
	Locale string         `json:"locale"`
	Lines  []checkoutLine `json:"lines"`
}

// Checkout turns a submitted cart into a WhatsApp deep link addressed to the
// tenant's configured number. Lines carrying a name and price are taken as
// add-time snapshots; lines without are priced from the current catalog.
func (h *PreviewHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	settings, err := h.settingsStore.Get(userID)
	if err != nil {
		h.logger.Error("get settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "checkout failed"})
		return
	}
	if settings == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu not found"})
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if len(req.Lines) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
		return
	}

	c := cart.New()
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be at least 1"})
			return
		}
		if line.Name != "" && line.Price != nil {
			if *line.Price < 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be a non-negative integer"})
				return
			}
			c.AddN(model.MenuItem{ID: line.ID, Name: line.Name, Price: *line.Price}, line.Quantity)
			continue
		}
		item, err := h.menuStore.GetByID(line.ID)
		if err != nil {
			h.logger.Error("get menu item", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "checkout failed"})
			return
		}
		if item == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown menu item: " + line.ID})
			return
		}
		c.AddN(*item, line.Quantity)
	}

	total := c.Total()
	portions := c.PortionCount()

	link, err := c.Checkout(cart.Locale(req.Locale), settings.WhatsAppNumber)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":      link,
		"total":    total,
		"portions": portions,
	})
}
