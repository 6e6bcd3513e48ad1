package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/masagus/menuku/internal/config"
	"github.com/masagus/menuku/internal/handler"
	"github.com/masagus/menuku/internal/middleware"
	"github.com/masagus/menuku/internal/store"
	ws "github.com/masagus/menuku/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	menuH       *handler.MenuHandler
	settingsH   *handler.SettingsHandler
	previewH    *handler.PreviewHandler
	dashboardH  *handler.DashboardHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	menuStore := store.NewMenuStore(db)
	settingsStore := store.NewSettingsStore(db)

	return &Server{
		db:          db,
		hub:         hub,
		menuH:       handler.NewMenuHandler(menuStore, hub, logger.With("component", "menu")),
		settingsH:   handler.NewSettingsHandler(settingsStore, hub, cfg.TenantID, logger.With("component", "settings")),
		previewH:    handler.NewPreviewHandler(menuStore, settingsStore, logger.With("component", "preview")),
		dashboardH:  handler.NewDashboardHandler(menuStore, cfg.PreviewURL(), logger.With("component", "dashboard")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Admin API routes
	mux.HandleFunc("GET /api/menu-items", s.menuH.List)
	mux.HandleFunc("POST /api/menu-items", s.menuH.Create)
	mux.HandleFunc("PUT /api/menu-items/{id}", s.menuH.Update)
	mux.HandleFunc("DELETE /api/menu-items/{id}", s.menuH.Delete)
	mux.HandleFunc("PUT /api/menu-items/reorder", s.menuH.Reorder)

	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PUT /api/settings/template", s.settingsH.UpdateTemplate)
	mux.HandleFunc("PUT /api/settings/whatsapp", s.settingsH.UpdateWhatsApp)

	mux.HandleFunc("GET /api/dashboard", s.dashboardH.Stats)

	// Public preview routes; checkout is rate-limited per client IP
	mux.HandleFunc("GET /preview/{user_id}/menu", s.previewH.Menu)
	mux.HandleFunc("POST /preview/{user_id}/checkout", s.rateLimitedHandler(s.previewH.Checkout))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
