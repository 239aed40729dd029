package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterCriteria narrows a set of expenses. Nil or empty fields are inactive.
type FilterCriteria struct {
	// DateFrom and DateTo are inclusive calendar-date bounds. Only the calendar
	// date of each value is used; DateTo covers its whole day.
	DateFrom *time.Time
	DateTo   *time.Time
	// Category must match exactly (case-sensitive) when non-empty.
	Category string
	// AmountMin defaults to zero, AmountMax to no upper bound.
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

// IsZero reports whether no clause other than the default amount range is set.
func (c FilterCriteria) IsZero() bool {
	return c.DateFrom == nil && c.DateTo == nil && c.Category == "" &&
		c.AmountMin == nil && c.AmountMax == nil
}

// calendarDay drops time of day and location, keeping the calendar date as
// written in t's own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter returns the records that pass every active clause of c, in input
// order. Every record date is checked; the first malformed one aborts the call
// with a *ValidationError.
//
// Degenerate ranges (AmountMin > AmountMax, DateFrom after DateTo) are valid
// and simply match nothing.
func Filter(records []Expense, c FilterCriteria) ([]Expense, error) {
	var from, toEnd *time.Time
	if c.DateFrom != nil {
		d := calendarDay(*c.DateFrom)
		from = &d
	}
	if c.DateTo != nil {
		// Record dates are midnight values, so end of day is exclusive next midnight.
		d := calendarDay(*c.DateTo).AddDate(0, 0, 1)
		toEnd = &d
	}

	minAmount := decimal.Zero
	if c.AmountMin != nil {
		minAmount = *c.AmountMin
	}

	out := make([]Expense, 0, len(records))
	for _, e := range records {
		date, err := recordDate(e)
		if err != nil {
			return nil, err
		}

		if from != nil && date.Before(*from) {
			continue
		}
		if toEnd != nil && !date.Before(*toEnd) {
			continue
		}

		if c.Category != "" && e.Category != c.Category {
			continue
		}

		if e.Amount.LessThan(minAmount) {
			continue
		}
		if c.AmountMax != nil && e.Amount.GreaterThan(*c.AmountMax) {
			continue
		}

		out = append(out, e)
	}

	return out, nil
}
