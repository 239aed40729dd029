package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/goexpense/internal/adapter/http"
	"github.com/iho/goexpense/internal/adapter/http/handler"
	"github.com/iho/goexpense/internal/adapter/http/middleware"
	"github.com/iho/goexpense/internal/adapter/repository/idgen"
	"github.com/iho/goexpense/internal/infrastructure/config"
	"github.com/iho/goexpense/internal/infrastructure/logger"
	"github.com/iho/goexpense/internal/infrastructure/metrics"
	"github.com/iho/goexpense/internal/usecase"
)

const (
	rateLimiterSweep = 5 * time.Minute
	rateLimiterIdle  = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	deps, err := buildDependencies(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	expenseUC := usecase.NewExpenseUseCase(deps.repo, idgen.NewULIDGenerator(), deps.publisher, m, log.Logger)
	analyticsUC := usecase.NewAnalyticsUseCase(deps.repo, m)

	routerCfg := httpAdapter.RouterConfig{
		ExpenseHandler:   handler.NewExpenseHandler(expenseUC),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsUC),
		HealthHandler:    handler.NewHealthHandler(deps.checks...),
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          m,
		Gatherer:         reg,
		Logger:           log.Logger,
	}
	if deps.idempotency != nil {
		routerCfg.IdempotencyStore = deps.idempotency
	}
	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx, rateLimiterSweep, rateLimiterIdle)
		routerCfg.RateLimiter = limiter
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.HTTPPort).
			Str("storage", cfg.StorageBackend).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
