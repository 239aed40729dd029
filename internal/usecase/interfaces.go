package usecase

import (
	"context"
	"time"

	"github.com/iho/goexpense/internal/domain"
)

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	// List returns a consistent snapshot of every stored expense, ordered by
	// date and then by creation time.
	List(ctx context.Context) ([]domain.Expense, error)
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Create(ctx context.Context, expense *domain.Expense) error
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// EventPublisher delivers expense events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ExpenseEvent) error
}

// MetricsRecorder records business metrics.
type MetricsRecorder interface {
	ExpenseMutated(operation string)
	AnalyticsComputed(duration time.Duration, records int)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a key whose request did not complete.
	Release(ctx context.Context, key string) error
}
