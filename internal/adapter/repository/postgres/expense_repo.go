package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

// pgxPool is the subset of *pgxpool.Pool the repository uses.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const expenseColumns = `id, date::text, description, category, amount::text, created_at, updated_at`

const (
	listExpensesSQL = `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date, created_at, id`

	getExpenseSQL = `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	insertExpenseSQL = `INSERT INTO expenses (id, date, description, category, amount, created_at, updated_at)
VALUES ($1, $2::date, $3, $4, $5::numeric, $6, $7)`

	updateExpenseSQL = `UPDATE expenses
SET date = $2::date, description = $3, category = $4, amount = $5::numeric, updated_at = $6
WHERE id = $1`

	deleteExpenseSQL = `DELETE FROM expenses WHERE id = $1`
)

// ExpenseRepository implements usecase.ExpenseRepository on PostgreSQL.
type ExpenseRepository struct {
	pool    pgxPool
	retrier *Retrier
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool, retrier *Retrier) *ExpenseRepository {
	return newExpenseRepositoryWithPool(pool, retrier)
}

func newExpenseRepositoryWithPool(pool pgxPool, retrier *Retrier) *ExpenseRepository {
	return &ExpenseRepository{pool: pool, retrier: retrier}
}

// List returns every expense ordered by date and creation time.
func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, listExpensesSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		expenses = make([]domain.Expense, 0)
		for rows.Next() {
			e, err := scanExpense(rows)
			if err != nil {
				return err
			}
			expenses = append(expenses, *e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return expenses, nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	e, err := scanExpense(r.pool.QueryRow(ctx, getExpenseSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("get expense %s: %w", id, err)
	}
	return e, nil
}

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	err := r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, insertExpenseSQL,
			e.ID, e.Date, e.Description, e.Category, e.Amount.String(), e.CreatedAt, e.UpdatedAt)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateExpense
		}
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing expense.
func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	var tag pgconn.CommandTag

	err := r.retrier.Retry(ctx, func() (err error) {
		tag, err = r.pool.Exec(ctx, updateExpenseSQL,
			e.ID, e.Date, e.Description, e.Category, e.Amount.String(), e.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("update expense %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.retrier.Retry(ctx, func() (err error) {
		tag, err = r.pool.Exec(ctx, deleteExpenseSQL, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e                domain.Expense
		amount           string
		created, updated time.Time
	)

	if err := row.Scan(&e.ID, &e.Date, &e.Description, &e.Category, &amount, &created, &updated); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("expense %s: bad amount %q: %w", e.ID, amount, err)
	}

	e.Amount = d
	e.CreatedAt = created.UTC()
	e.UpdatedAt = updated.UTC()
	return &e, nil
}
