package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage format of Expense.Date.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date. The result is midnight UTC; no
// time zone is ever applied, so comparisons stay on calendar days.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// recordDate parses the date of e, reporting failures as a ValidationError.
func recordDate(e Expense) (time.Time, error) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, &ValidationError{
			RecordID: e.ID,
			Field:    "date",
			Value:    e.Date,
			Err:      ErrMalformedDate,
		}
	}
	return t, nil
}

// validateDates fails on the first record whose date does not parse.
func validateDates(records []Expense) error {
	for _, e := range records {
		if _, err := recordDate(e); err != nil {
			return err
		}
	}
	return nil
}
