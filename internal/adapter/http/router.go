package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/goexpense/internal/adapter/http/handler"
	"github.com/iho/goexpense/internal/adapter/http/middleware"
	"github.com/iho/goexpense/internal/infrastructure/metrics"
	"github.com/iho/goexpense/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ExpenseHandler   *handler.ExpenseHandler
	AnalyticsHandler *handler.AnalyticsHandler
	HealthHandler    *handler.HealthHandler

	// Optional
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Metrics          *metrics.Metrics
	Gatherer         prometheus.Gatherer
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		if cfg.IdempotencyStore != nil {
			var replays prometheus.Counter
			if cfg.Metrics != nil {
				replays = cfg.Metrics.IdempotencyReplays
			}
			idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, replays)
			r.Use(idempotency.Wrap)
		}

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
		})

		r.Get("/analytics/summary", cfg.AnalyticsHandler.Summary)
		r.Get("/categories", cfg.AnalyticsHandler.Categories)
	})

	return r
}
