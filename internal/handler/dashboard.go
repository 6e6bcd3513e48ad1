package handler

import (
	"log/slog"
	"net/http"

	"github.com/masagus/menuku/internal/store"
)

// DashboardHandler serves the admin overview numbers. Item count and
// inventory value are live; the engagement figures are the fixed showcase
// series until real tracking exists.
type DashboardHandler struct {
	menuStore  *store.MenuStore
	previewURL string
	logger     *slog.Logger
}

func NewDashboardHandler(menuStore *store.MenuStore, previewURL string, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{menuStore: menuStore, previewURL: previewURL, logger: logger}
}

type dailyPoint struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
	Views  int    `json:"views"`
}

var showcaseSeries = []dailyPoint{
	{Day: "Sen", Orders: 15, Views: 50},
	{Day: "Sel", Orders: 25, Views: 70},
	{Day: "Rab", Orders: 18, Views: 65},
	{Day: "Kam", Orders: 70, Views: 90},
	{Day: "Jum", Orders: 80, Views: 120},
	{Day: "Sab", Orders: 100, Views: 150},
	{Day: "Min", Orders: 30, Views: 80},
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	count, totalValue, err := h.menuStore.Stats()
	if err != nil {
		h.logger.Error("dashboard stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load stats"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_items":     count,
		"inventory_value": totalValue,
		"simulated_sales": float64(totalValue) * 1.5,
		"total_leads":     126,
		"completed_rate":  77,
		"unique_views":    91,
		"preview_url":     h.previewURL,
		"daily_series":    showcaseSeries,
	})
}
