package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/usecase"
)

// CreateExpenseRequest represents a request to log an expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date"        validate:"required,isodate"`
	Description string          `json:"description" validate:"required,max=200"`
	Category    string          `json:"category"    validate:"required,expense_category"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate checks the request shape.
func (r *CreateExpenseRequest) Validate() error {
	return validateStruct(r)
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput() usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
	}
}

// UpdateExpenseRequest represents a full replacement of an expense.
type UpdateExpenseRequest struct {
	Date        string          `json:"date"        validate:"required,isodate"`
	Description string          `json:"description" validate:"required,max=200"`
	Category    string          `json:"category"    validate:"required,expense_category"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate checks the request shape.
func (r *UpdateExpenseRequest) Validate() error {
	return validateStruct(r)
}

// ToUseCaseInput converts to use case input.
func (r *UpdateExpenseRequest) ToUseCaseInput(id string) usecase.UpdateExpenseInput {
	return usecase.UpdateExpenseInput{
		ID:          id,
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
	}
}
