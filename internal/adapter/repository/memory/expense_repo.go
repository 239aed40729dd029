package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/goexpense/internal/domain"
)

// ExpenseRepository is an in-memory usecase.ExpenseRepository for development
// and tests.
type ExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]domain.Expense
}

// NewExpenseRepository creates an empty store, optionally seeded with expenses.
func NewExpenseRepository(seed ...domain.Expense) *ExpenseRepository {
	r := &ExpenseRepository{expenses: make(map[string]domain.Expense, len(seed))}
	for _, e := range seed {
		r.expenses[e.ID] = e
	}
	return r
}

// List returns a copy of every expense ordered by date, creation time and ID.
func (r *ExpenseRepository) List(_ context.Context) ([]domain.Expense, error) {
	r.mu.RLock()
	out := make([]domain.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(_ context.Context, id string) (*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.expenses[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	return &e, nil
}

// Create stores a new expense.
func (r *ExpenseRepository) Create(_ context.Context, e *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[e.ID]; ok {
		return domain.ErrDuplicateExpense
	}
	r.expenses[e.ID] = *e
	return nil
}

// Update replaces a stored expense, keeping its creation time.
func (r *ExpenseRepository) Update(_ context.Context, e *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.expenses[e.ID]
	if !ok {
		return domain.ErrExpenseNotFound
	}
	updated := *e
	updated.CreatedAt = existing.CreatedAt
	r.expenses[e.ID] = updated
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}
