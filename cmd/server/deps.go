package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/goexpense/internal/adapter/http/handler"
	"github.com/iho/goexpense/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/goexpense/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/goexpense/internal/adapter/repository/redis"
	sqliteRepo "github.com/iho/goexpense/internal/adapter/repository/sqlite"
	"github.com/iho/goexpense/internal/infrastructure/config"
	"github.com/iho/goexpense/internal/infrastructure/eventpublisher"
	"github.com/iho/goexpense/internal/infrastructure/postgres"
	"github.com/iho/goexpense/internal/infrastructure/redis"
	"github.com/iho/goexpense/internal/usecase"
)

// dependencies are the backends selected by configuration.
type dependencies struct {
	repo        usecase.ExpenseRepository
	publisher   usecase.EventPublisher
	idempotency *redisRepo.IdempotencyStore
	checks      []handler.HealthCheck
	closers     []io.Closer
}

// Close releases backends in reverse order of acquisition.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i].Close()
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func buildDependencies(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	if err := deps.openStorage(ctx, cfg, logger); err != nil {
		deps.Close()
		return nil, err
	}

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, client)
		deps.idempotency = redisRepo.NewIdempotencyStore(client)
		deps.checks = append(deps.checks, handler.HealthCheck{Name: "redis", Pinger: deps.idempotency})
		logger.Info().Msg("connected to redis")
	}

	if cfg.AMQPURL != "" {
		publisher, err := eventpublisher.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, publisher)
		deps.publisher = publisher
		logger.Info().Str("exchange", cfg.AMQPExchange).Msg("connected to amqp")
	} else {
		deps.publisher = eventpublisher.NewLogPublisher(logger)
	}

	return deps, nil
}

func (d *dependencies) openStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		d.repo = memory.NewExpenseRepository()
		logger.Warn().Msg("using in-memory storage; expenses are lost on restart")

	case config.BackendPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
		defer cancel()

		pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
			DatabaseURL: cfg.DatabaseURL,
			MaxConns:    cfg.DatabaseMaxConns,
			MinConns:    cfg.DatabaseMinConns,
		})
		if err != nil {
			return err
		}
		d.closers = append(d.closers, closerFunc(func() error { pool.Close(); return nil }))

		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}

		d.repo = postgresRepo.NewExpenseRepository(pool, postgresRepo.NewRetrier(logger))
		d.checks = append(d.checks, handler.HealthCheck{Name: "postgres", Pinger: pool})
		logger.Info().Msg("connected to postgres")

	case config.BackendSQLite:
		repo, err := sqliteRepo.NewExpenseRepository(cfg.SQLitePath)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, repo)
		d.repo = repo
		d.checks = append(d.checks, handler.HealthCheck{Name: "sqlite", Pinger: repo})
		logger.Info().Str("path", cfg.SQLitePath).Msg("opened sqlite database")

	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return nil
}
