package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/goexpense/internal/domain"
	"github.com/iho/goexpense/internal/usecase"
	"github.com/iho/goexpense/internal/usecase/mocks"
)

type expenseMocks struct {
	repo      *mocks.MockExpenseRepository
	idGen     *mocks.MockIDGenerator
	publisher *mocks.MockEventPublisher
	metrics   *mocks.MockMetricsRecorder
}

func newExpenseUseCase(t *testing.T) (*usecase.ExpenseUseCase, expenseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := expenseMocks{
		repo:      mocks.NewMockExpenseRepository(ctrl),
		idGen:     mocks.NewMockIDGenerator(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		metrics:   mocks.NewMockMetricsRecorder(ctrl),
	}
	uc := usecase.NewExpenseUseCase(m.repo, m.idGen, m.publisher, m.metrics, zerolog.Nop())
	return uc, m
}

func TestExpenseUseCase_CreateExpense(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateExpenseInput
		setupMocks  func(expenseMocks)
		expectError error
	}{
		{
			name: "successful creation",
			input: usecase.CreateExpenseInput{
				Date:        "2025-04-05",
				Description: "  lunch  ",
				Category:    domain.CategoryFood,
				Amount:      decimal.NewFromInt(12),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.Expense) error {
						if e.ID != "exp-1" || e.Description != "lunch" {
							t.Errorf("unexpected expense stored: %+v", e)
						}
						return nil
					})
				m.metrics.EXPECT().ExpenseMutated(usecase.OperationCreate)
				m.idGen.EXPECT().Generate().Return("evt-1")
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ev domain.ExpenseEvent) error {
						if ev.ID != "evt-1" || ev.Type != domain.EventTypeExpenseCreated || ev.ExpenseID != "exp-1" {
							t.Errorf("unexpected event: %+v", ev)
						}
						return nil
					})
			},
		},
		{
			name: "publish failure does not fail the request",
			input: usecase.CreateExpenseInput{
				Date:        "2025-04-05",
				Description: "lunch",
				Category:    domain.CategoryFood,
				Amount:      decimal.NewFromInt(12),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.metrics.EXPECT().ExpenseMutated(usecase.OperationCreate)
				m.idGen.EXPECT().Generate().Return("evt-1")
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "malformed date",
			input: usecase.CreateExpenseInput{
				Date:        "04/05/2025",
				Description: "lunch",
				Category:    domain.CategoryFood,
				Amount:      decimal.NewFromInt(12),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
			},
			expectError: domain.ErrMalformedDate,
		},
		{
			name: "unknown category",
			input: usecase.CreateExpenseInput{
				Date:        "2025-04-05",
				Description: "lunch",
				Category:    "Snacks",
				Amount:      decimal.NewFromInt(12),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
			},
			expectError: domain.ErrUnknownCategory,
		},
		{
			name: "negative amount",
			input: usecase.CreateExpenseInput{
				Date:        "2025-04-05",
				Description: "lunch",
				Category:    domain.CategoryFood,
				Amount:      decimal.NewFromInt(-1),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "repository error",
			input: usecase.CreateExpenseInput{
				Date:        "2025-04-05",
				Description: "lunch",
				Category:    domain.CategoryFood,
				Amount:      decimal.NewFromInt(12),
			},
			setupMocks: func(m expenseMocks) {
				m.idGen.EXPECT().Generate().Return("exp-1")
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateExpense)
			},
			expectError: domain.ErrDuplicateExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newExpenseUseCase(t)
			tt.setupMocks(m)

			expense, err := uc.CreateExpense(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if expense == nil || expense.ID != "exp-1" {
				t.Fatalf("unexpected expense: %+v", expense)
			}
			if expense.CreatedAt.IsZero() {
				t.Error("expected CreatedAt to be set")
			}
		})
	}
}

func TestExpenseUseCase_UpdateExpense(t *testing.T) {
	uc, m := newExpenseUseCase(t)

	stored := &domain.Expense{ID: "exp-1", Date: "2025-04-05", Description: "lunch", Category: domain.CategoryFood, Amount: decimal.NewFromInt(12)}
	m.repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(stored, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.metrics.EXPECT().ExpenseMutated(usecase.OperationUpdate)
	m.idGen.EXPECT().Generate().Return("evt-2")
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateExpense(context.Background(), usecase.UpdateExpenseInput{
		ID:          "exp-1",
		Date:        "2025-04-06",
		Description: "dinner",
		Category:    domain.CategoryEntertainment,
		Amount:      decimal.RequireFromString("30.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Date != "2025-04-06" || updated.Category != domain.CategoryEntertainment {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestExpenseUseCase_UpdateExpense_EventsHaveDistinctIDs(t *testing.T) {
	uc, m := newExpenseUseCase(t)

	stored := &domain.Expense{ID: "exp-1", Date: "2025-04-05", Description: "lunch", Category: domain.CategoryFood, Amount: decimal.NewFromInt(12)}
	m.repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(stored, nil).Times(2)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.metrics.EXPECT().ExpenseMutated(usecase.OperationUpdate).Times(2)
	m.idGen.EXPECT().Generate().Return("evt-a")
	m.idGen.EXPECT().Generate().Return("evt-b")

	var ids []string
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ExpenseEvent) error {
			ids = append(ids, ev.ID)
			return nil
		}).Times(2)

	for _, amount := range []string{"13", "14"} {
		_, err := uc.UpdateExpense(context.Background(), usecase.UpdateExpenseInput{
			ID:          "exp-1",
			Date:        "2025-04-05",
			Description: "lunch",
			Category:    domain.CategoryFood,
			Amount:      decimal.RequireFromString(amount),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(ids) != 2 || ids[0] == ids[1] {
		t.Fatalf("expected two distinct event ids, got %v", ids)
	}
}

func TestExpenseUseCase_UpdateExpense_NotFound(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrExpenseNotFound)

	_, err := uc.UpdateExpense(context.Background(), usecase.UpdateExpenseInput{ID: "missing"})
	if !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestExpenseUseCase_DeleteExpense(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().Delete(gomock.Any(), "exp-1").Return(nil)
	m.metrics.EXPECT().ExpenseMutated(usecase.OperationDelete)
	m.idGen.EXPECT().Generate().Return("evt-3")
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ExpenseEvent) error {
			if ev.ID != "evt-3" || ev.Type != domain.EventTypeExpenseDeleted || ev.Amount != "" {
				t.Errorf("unexpected event: %+v", ev)
			}
			return nil
		})

	if err := uc.DeleteExpense(context.Background(), "exp-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpenseUseCase_DeleteExpense_NotFound(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().Delete(gomock.Any(), "missing").Return(domain.ErrExpenseNotFound)

	if err := uc.DeleteExpense(context.Background(), "missing"); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestExpenseUseCase_GetExpense(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().GetByID(gomock.Any(), "exp-1").Return(&domain.Expense{ID: "exp-1"}, nil)

	expense, err := uc.GetExpense(context.Background(), "exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expense.ID != "exp-1" {
		t.Errorf("expected exp-1, got %s", expense.ID)
	}
}

func TestExpenseUseCase_ListExpenses(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]domain.Expense{
		{ID: "1", Date: "2025-04-05", Category: domain.CategoryFood, Amount: decimal.NewFromInt(10)},
		{ID: "2", Date: "2025-05-01", Category: domain.CategoryTransportation, Amount: decimal.NewFromInt(20)},
	}, nil)

	got, err := uc.ListExpenses(context.Background(), domain.FilterCriteria{Category: domain.CategoryFood})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExpenseUseCase_ListExpenses_CorruptedRecord(t *testing.T) {
	uc, m := newExpenseUseCase(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]domain.Expense{
		{ID: "bad", Date: "yesterday", Category: domain.CategoryFood, Amount: decimal.NewFromInt(10)},
	}, nil)

	_, err := uc.ListExpenses(context.Background(), domain.FilterCriteria{})

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
