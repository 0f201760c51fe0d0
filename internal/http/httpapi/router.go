package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"showscout/internal/http/handlers"
	"showscout/internal/infra"
	"showscout/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/.well-known/agent.json", app.AgentManifest)

	r.Route("/entrypoints/recommend", func(r chi.Router) {
		r.Post("/invoke", app.Invoke)
	})

	return r
}
