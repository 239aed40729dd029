package usecase

import "time"

const (
	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyPending marks a key whose request is still in flight.
	IdempotencyPending = "processing"

	// PublishTimeout bounds a single event publish so a slow broker cannot
	// hold a request open.
	PublishTimeout = 5 * time.Second
)

// Mutation names used for metrics labels.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)
