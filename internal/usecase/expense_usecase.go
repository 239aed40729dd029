package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

// ExpenseUseCase handles expense business logic.
type ExpenseUseCase struct {
	repo      ExpenseRepository
	idGen     IDGenerator
	publisher EventPublisher
	metrics   MetricsRecorder
	logger    zerolog.Logger
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(
	repo ExpenseRepository,
	idGen IDGenerator,
	publisher EventPublisher,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *ExpenseUseCase {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &ExpenseUseCase{
		repo:      repo,
		idGen:     idGen,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateExpenseInput represents input for creating an expense.
type CreateExpenseInput struct {
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
}

// CreateExpense validates and stores a new expense.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	now := time.Now().UTC()

	expense := &domain.Expense{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Amount:      input.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := domain.ValidateExpense(expense); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.metrics.ExpenseMutated(OperationCreate)
	uc.publish(ctx, domain.EventTypeExpenseCreated, expense)

	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.repo.GetByID(ctx, id)
}

// UpdateExpenseInput represents input for replacing an expense's fields.
type UpdateExpenseInput struct {
	ID          string
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
}

// UpdateExpense replaces the mutable fields of an existing expense.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	expense.Date = input.Date
	expense.Description = strings.TrimSpace(input.Description)
	expense.Category = input.Category
	expense.Amount = input.Amount
	expense.UpdatedAt = time.Now().UTC()

	if err := domain.ValidateExpense(expense); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	uc.metrics.ExpenseMutated(OperationUpdate)
	uc.publish(ctx, domain.EventTypeExpenseUpdated, expense)

	return expense, nil
}

// DeleteExpense removes an expense.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.metrics.ExpenseMutated(OperationDelete)
	uc.publish(ctx, domain.EventTypeExpenseDeleted, &domain.Expense{ID: id})

	return nil
}

// ListExpenses returns the stored expenses that pass criteria, in store order.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Expense, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(records, criteria)
}

// publish sends the event detached from the request context. Failures are
// logged only; the mutation has already been committed.
func (uc *ExpenseUseCase) publish(ctx context.Context, eventType string, expense *domain.Expense) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	event := domain.NewExpenseEvent(eventType, expense, time.Now().UTC())
	event.ID = uc.idGen.Generate()
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn().
			Err(err).
			Str("event_type", eventType).
			Str("expense_id", expense.ID).
			Msg("failed to publish expense event")
	}
}
