package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryAmount is the summed amount of one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// BucketAmount is one point of a time series keyed by "YYYY-MM" or "YYYY-MM-DD".
type BucketAmount struct {
	Key    string
	Amount decimal.Decimal
}

// Summary bundles every aggregate view over one set of records.
type Summary struct {
	Count        int
	Total        decimal.Decimal
	ByCategory   []CategoryAmount
	ByMonth      map[string]decimal.Decimal
	ByDay        map[string]decimal.Decimal
	BusiestMonth *BucketAmount
}

// Total sums the amounts of records. An empty set sums to zero.
func Total(records []Expense) (decimal.Decimal, error) {
	if err := validateDates(records); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// ByCategory sums amounts per exact category string and ranks the groups by
// descending sum. Groups with equal sums keep the order in which their category
// first appeared in records.
func ByCategory(records []Expense) ([]CategoryAmount, error) {
	if err := validateDates(records); err != nil {
		return nil, err
	}

	// position of each category in out, in first-seen order
	index := make(map[string]int)
	out := make([]CategoryAmount, 0)
	for _, e := range records {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryAmount{Category: e.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Amount.GreaterThan(out[b].Amount)
	})

	return out, nil
}

// ByMonth sums amounts per year-month, the first seven characters of the date.
func ByMonth(records []Expense) (map[string]decimal.Decimal, error) {
	return bucket(records, func(e Expense) string { return e.Date[:7] })
}

// ByDay sums amounts per full calendar date.
func ByDay(records []Expense) (map[string]decimal.Decimal, error) {
	return bucket(records, func(e Expense) string { return e.Date })
}

func bucket(records []Expense, key func(Expense) string) (map[string]decimal.Decimal, error) {
	if err := validateDates(records); err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal)
	for _, e := range records {
		k := key(e)
		if sum, ok := out[k]; ok {
			out[k] = sum.Add(e.Amount)
		} else {
			out[k] = e.Amount
		}
	}
	return out, nil
}

// SortedSeries turns buckets into a series ordered by ascending key.
func SortedSeries(buckets map[string]decimal.Decimal) []BucketAmount {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]BucketAmount, len(keys))
	for i, k := range keys {
		series[i] = BucketAmount{Key: k, Amount: buckets[k]}
	}
	return series
}

// BusiestMonth returns the bucket with the largest amount. Ties go to the
// earliest key. ok is false for empty input.
func BusiestMonth(byMonth map[string]decimal.Decimal) (best BucketAmount, ok bool) {
	for _, b := range SortedSeries(byMonth) {
		if !ok || b.Amount.GreaterThan(best.Amount) {
			best, ok = b, true
		}
	}
	return best, ok
}

// Summarize computes every aggregate view of records in one call.
func Summarize(records []Expense) (*Summary, error) {
	total, err := Total(records)
	if err != nil {
		return nil, err
	}
	byCategory, err := ByCategory(records)
	if err != nil {
		return nil, err
	}
	byMonth, err := ByMonth(records)
	if err != nil {
		return nil, err
	}
	byDay, err := ByDay(records)
	if err != nil {
		return nil, err
	}

	return NewSummary(len(records), total, byCategory, byMonth, byDay), nil
}

// NewSummary assembles a Summary from independently computed views.
func NewSummary(count int, total decimal.Decimal, byCategory []CategoryAmount, byMonth, byDay map[string]decimal.Decimal) *Summary {
	s := &Summary{
		Count:      count,
		Total:      total,
		ByCategory: byCategory,
		ByMonth:    byMonth,
		ByDay:      byDay,
	}
	if busiest, ok := BusiestMonth(byMonth); ok {
		s.BusiestMonth = &busiest
	}
	return s
}
