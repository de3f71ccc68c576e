package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/middleware"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/rest"
)

// RouterConfig collects the dependencies of NewRouter.
type RouterConfig struct {
	Handler *Handler
	Health  *rest.HealthHandler
	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
	// RateLimit is the per-client request rate for submission endpoints.
	RateLimit int
	Logger    *slog.Logger
}

// NewRouter registers the page, API, health and metrics routes and the middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	h := cfg.Handler

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(chimw.CleanPath)

	cfg.Health.RegisterRoutes(r)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	limiter := middleware.NewPerClientRateLimiter(cfg.RateLimit)

	r.Get("/", h.home)
	r.With(middleware.PerClientRateLimitMiddleware(limiter, h.rateLimitedPage)).Post("/predict", h.predict)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fields", h.listFields)
		r.With(middleware.PerClientRateLimitMiddleware(limiter, rateLimitedJSON)).Post("/assessments", h.createAssessment)
	})

	return r
}
