package dto

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

// Filter query parameters shared by list and analytics endpoints.
const (
	QueryDateFrom  = "date_from"
	QueryDateTo    = "date_to"
	QueryCategory  = "category"
	QueryAmountMin = "amount_min"
	QueryAmountMax = "amount_max"
)

// ParseFilter builds filter criteria from query parameters. Absent or empty
// parameters leave their clause inactive. Malformed values are reported as
// domain.ErrInvalidFilter.
func ParseFilter(q url.Values) (domain.FilterCriteria, error) {
	var c domain.FilterCriteria

	from, err := parseDateParam(q, QueryDateFrom)
	if err != nil {
		return c, err
	}
	to, err := parseDateParam(q, QueryDateTo)
	if err != nil {
		return c, err
	}
	minAmount, err := parseAmountParam(q, QueryAmountMin)
	if err != nil {
		return c, err
	}
	maxAmount, err := parseAmountParam(q, QueryAmountMax)
	if err != nil {
		return c, err
	}

	c.DateFrom = from
	c.DateTo = to
	c.Category = q.Get(QueryCategory)
	c.AmountMin = minAmount
	c.AmountMax = maxAmount
	return c, nil
}

func parseDateParam(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFilter, key, err)
	}
	return &d, nil
}

func parseAmountParam(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: not a number: %q", domain.ErrInvalidFilter, key, raw)
	}
	return &d, nil
}
