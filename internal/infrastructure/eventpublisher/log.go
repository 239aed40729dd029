package eventpublisher

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/goexpense/internal/domain"
)

// LogPublisher writes events to the log instead of a broker.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(_ context.Context, event domain.ExpenseEvent) error {
	p.logger.Debug().
		Str("event_type", event.Type).
		Str("expense_id", event.ExpenseID).
		Str("category", event.Category).
		Str("amount", event.Amount).
		Time("occurred_at", event.OccurredAt).
		Msg("expense event")
	return nil
}
