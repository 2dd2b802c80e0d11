package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/middleware"
)

// RouterConfig carries what NewRouter needs besides the handlers.
type RouterConfig struct {
	JWTSecret string
	Limiter   *middleware.Limiter
}

// NewRouter mounts the API:
//
//	GET  /health           liveness
//	POST /api/v1/generate  rate limited password generation
//	GET  /api/v1/stats     generation statistics, bearer token required
func NewRouter(gen *GeneratorHandler, stats *StatsHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(cfg.Limiter.Middleware)
		}
		r.Post("/api/v1/generate", gen.HandleGenerate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/stats", stats.HandleStats)
	})

	return r
}
