package domain

import "time"

// Event types
const (
	EventTypeExpenseCreated = "expense.created"
	EventTypeExpenseUpdated = "expense.updated"
	EventTypeExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is emitted after a successful expense mutation.
type ExpenseEvent struct {
	ID         string    `json:"id,omitempty"`
	Type       string    `json:"type"`
	ExpenseID  string    `json:"expense_id"`
	Date       string    `json:"date,omitempty"`
	Category   string    `json:"category,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewExpenseEvent builds an event of eventType for e.
func NewExpenseEvent(eventType string, e *Expense, at time.Time) ExpenseEvent {
	ev := ExpenseEvent{
		Type:       eventType,
		ExpenseID:  e.ID,
		OccurredAt: at,
	}
	if eventType != EventTypeExpenseDeleted {
		ev.Date = e.Date
		ev.Category = e.Category
		ev.Amount = e.Amount.String()
	}
	return ev
}
