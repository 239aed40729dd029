package usecase

import (
	"context"
	"time"

	"github.com/iho/goexpense/internal/domain"
)

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.ExpenseEvent) error { return nil }

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) ExpenseMutated(string) {}
func (NoopMetrics) AnalyticsComputed(time.Duration, int) {}
