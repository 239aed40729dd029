package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/iho/goexpense/internal/domain"
)

const (
	listExpensesSQL = `SELECT id, date, description, category, amount, created_at, updated_at
FROM expenses ORDER BY date, created_at, id`

	getExpenseSQL = `SELECT id, date, description, category, amount, created_at, updated_at
FROM expenses WHERE id = ?`

	insertExpenseSQL = `INSERT INTO expenses (id, date, description, category, amount, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	updateExpenseSQL = `UPDATE expenses SET date = ?, description = ?, category = ?, amount = ?, updated_at = ?
WHERE id = ?`

	deleteExpenseSQL = `DELETE FROM expenses WHERE id = ?`
)

// ExpenseRepository implements usecase.ExpenseRepository on a SQLite file.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository opens (creating if needed) the database at dbPath and
// applies migrations.
func NewExpenseRepository(dbPath string) (*ExpenseRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &ExpenseRepository{db: db}, nil
}

// Close closes the database.
func (r *ExpenseRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping verifies the database is reachable.
func (r *ExpenseRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// List returns every expense ordered by date and creation time.
func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, listExpensesSQL)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("list expenses: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return expenses, nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, getExpenseSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("get expense %s: %w", id, err)
	}
	return e, nil
}

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	_, err := r.db.ExecContext(ctx, insertExpenseSQL,
		e.ID, e.Date, e.Description, e.Category, e.Amount.String(),
		e.CreatedAt.UnixNano(), e.UpdatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrDuplicateExpense
		}
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing expense.
func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	res, err := r.db.ExecContext(ctx, updateExpenseSQL,
		e.Date, e.Description, e.Category, e.Amount.String(), e.UpdatedAt.UnixNano(), e.ID)
	if err != nil {
		return fmt.Errorf("update expense %s: %w", e.ID, err)
	}
	return requireAffected(res)
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteExpenseSQL, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*domain.Expense, error) {
	var (
		e                domain.Expense
		amount           string
		created, updated int64
	)

	if err := row.Scan(&e.ID, &e.Date, &e.Description, &e.Category, &amount, &created, &updated); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("expense %s: bad amount %q: %w", e.ID, amount, err)
	}

	e.Amount = d
	e.CreatedAt = time.Unix(0, created).UTC()
	e.UpdatedAt = time.Unix(0, updated).UTC()
	return &e, nil
}
