package domain

import (
	"errors"
	"fmt"
)

var (
	// Expense errors
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrDuplicateExpense   = errors.New("expense already exists")

	// Engine errors
	ErrMalformedDate = errors.New("malformed date")
	ErrInvalidFilter = errors.New("invalid filter criteria")
)

// ValidationError reports a stored record that violates the engine's input
// contract. A record reaching the engine with such a field means the store is
// corrupted; the whole computation is aborted.
type ValidationError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("expense %s: %s %q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
