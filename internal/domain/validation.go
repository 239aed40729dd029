package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 200
	MaxExpenseAmount     = "1000000000" // 1 billion
)

// ValidateDescription validates expense description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return ErrEmptyDescription
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}

	return nil
}

// ValidateCategory validates that category is one of Categories.
func ValidateCategory(category string) error {
	if !IsKnownCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return nil
}

// ValidateAmount validates expense amount. Zero is allowed.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	maxAmount := decimal.RequireFromString(MaxExpenseAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxExpenseAmount)
	}

	return nil
}

// ValidateExpense checks a record before it is persisted.
func ValidateExpense(e *Expense) error {
	if _, err := ParseDate(e.Date); err != nil {
		return err
	}
	if err := ValidateDescription(e.Description); err != nil {
		return err
	}
	if err := ValidateCategory(e.Category); err != nil {
		return err
	}
	return ValidateAmount(e.Amount)
}
