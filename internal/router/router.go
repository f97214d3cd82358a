package router

import (
	"net/http"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/handler"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	SearchHandler  *handler.SearchHandler
	AnalyzeHandler *handler.AnalyzeHandler
	HistoryHandler *handler.HistoryHandler
	AuthMiddleware func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware)
	}

	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Root)
		r.Get("/api/health", cfg.Handler.Health)
	}

	if cfg.SearchHandler != nil {
		r.Post("/api/search-arbitrage", cfg.SearchHandler.SearchArbitrage)
	}

	if cfg.AnalyzeHandler != nil {
		r.Post("/api/analyze", cfg.AnalyzeHandler.Analyze)
	}

	if cfg.HistoryHandler != nil {
		r.Get("/api/search-history", cfg.HistoryHandler.RecentSearches)
	}

	return r
}
