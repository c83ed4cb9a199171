package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"AltarCheckinBackend/middleware"
)

const serviceName = "Altar Server Check-In"

// RouterConfig holds what NewRouter wires together
type RouterConfig struct {
	Handler       *Handler
	Authenticator *middleware.Authenticator
	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter
	// StaticDir, when set, serves the compiled web client with an
	// index.html fallback for client-side routes.
	StaticDir string
}

func NewRouter(cfg *RouterConfig) *mux.Router {
	h := cfg.Handler
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/api/health", healthCheck).Methods("GET")
	router.HandleFunc("/api/login", h.Login).Methods("GET")
	router.HandleFunc("/api/callback", h.Callback).Methods("GET")
	router.HandleFunc("/api/logout", h.Logout).Methods("GET")

	// Protected routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(cfg.Authenticator.AuthMiddleware)

	api.HandleFunc("/auth/user", h.GetAuthUser).Methods("GET")

	// ==================== SERVICE SESSIONS ====================
	api.HandleFunc("/sessions/clock-in", h.ClockIn).Methods("POST")
	api.HandleFunc("/sessions/clock-out", h.ClockOut).Methods("POST")
	api.HandleFunc("/sessions/current", h.GetCurrentSession).Methods("GET")
	api.HandleFunc("/sessions/history", h.GetSessionHistory).Methods("GET")
	api.HandleFunc("/sessions/stats", h.GetUserStats).Methods("GET")

	// Moderator routes
	moderatorRoutes := api.PathPrefix("/moderator").Subrouter()
	moderatorRoutes.Use(middleware.ModeratorOnly)
	moderatorRoutes.HandleFunc("/users", h.GetUsers).Methods("GET")
	moderatorRoutes.HandleFunc("/users/{userId}/role", h.UpdateUserRole).Methods("PUT")
	moderatorRoutes.HandleFunc("/sessions", h.GetAllSessions).Methods("GET")
	moderatorRoutes.HandleFunc("/stats", h.GetOverallStats).Methods("GET")
	moderatorRoutes.HandleFunc("/export", h.ExportSessions).Methods("GET")

	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(spaHandler{dir: cfg.StaticDir})
	}

	router.Use(middleware.LoggingMiddleware)
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware)
	}

	return router
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
}

// spaHandler serves files from dir and falls back to index.html.
type spaHandler struct {
	dir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	path := filepath.Join(s.dir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
		return
	}
	http.FileServer(http.Dir(s.dir)).ServeHTTP(w, r)
}
