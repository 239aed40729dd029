package domain

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func expense(id, date, category, amount string) Expense {
	return Expense{ID: id, Date: date, Category: category, Amount: decimal.RequireFromString(amount)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !decimal.RequireFromString(want).Equal(got) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestTotal(t *testing.T) {
	total, err := Total(sampleExpenses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "35", total)

	empty, err := Total(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("expected zero total for no records, got %s", empty)
	}
}

func TestTotal_ExactDecimalArithmetic(t *testing.T) {
	records := []Expense{
		expense("a", "2025-01-01", "Food", "0.1"),
		expense("b", "2025-01-01", "Food", "0.2"),
	}

	total, err := Total(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "0.3", total)
}

func TestTotal_Additive(t *testing.T) {
	a := sampleExpenses()[:2]
	b := sampleExpenses()[2:]

	ta, errA := Total(a)
	tb, errB := Total(b)
	tab, errAB := Total(append(append([]Expense{}, a...), b...))
	if err := errors.Join(errA, errB, errAB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ta.Add(tb).Equal(tab) {
		t.Errorf("total(a)+total(b) = %s, total(a+b) = %s", ta.Add(tb), tab)
	}
}

func TestByCategory(t *testing.T) {
	groups, err := ByCategory(sampleExpenses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}

	if groups[0].Category != "Transportation" || groups[1].Category != "Food" {
		t.Errorf("unexpected order: %+v", groups)
	}
	assertDecimal(t, "20", groups[0].Amount)
	assertDecimal(t, "15", groups[1].Amount)
}

func TestByCategory_TiesKeepFirstSeenOrder(t *testing.T) {
	records := []Expense{
		expense("1", "2025-01-01", "Health", "5"),
		expense("2", "2025-01-02", "Food", "5"),
		expense("3", "2025-01-03", "Bills", "7"),
		expense("4", "2025-01-04", "Education", "5"),
	}

	groups, err := ByCategory(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(groups))
	for i, g := range groups {
		got[i] = g.Category
	}
	want := []string{"Bills", "Health", "Food", "Education"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestByCategory_PartitionsTotal(t *testing.T) {
	records := append(sampleExpenses(), expense("4", "2025-06-10", "Other", "2.75"))

	groups, err := ByCategory(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total, err := Total(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := decimal.Zero
	seen := make(map[string]bool)
	for _, g := range groups {
		if seen[g.Category] {
			t.Errorf("duplicate category %s", g.Category)
		}
		seen[g.Category] = true
		sum = sum.Add(g.Amount)
	}
	if !sum.Equal(total) {
		t.Errorf("groups sum to %s, want %s", sum, total)
	}
}

func TestByCategory_Empty(t *testing.T) {
	groups, err := ByCategory(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups == nil || len(groups) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", groups)
	}
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]Expense) (map[string]decimal.Decimal, error)
		want map[string]string
	}{
		{"month", ByMonth, map[string]string{"2025-04": "15", "2025-05": "20"}},
		{"day", ByDay, map[string]string{"2025-04-05": "15", "2025-05-01": "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets, err := tt.fn(sampleExpenses())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(buckets) != len(tt.want) {
				t.Fatalf("expected %d buckets, got %v", len(tt.want), buckets)
			}
			for key, amount := range tt.want {
				assertDecimal(t, amount, buckets[key])
			}
		})
	}
}

func TestBuckets_PartitionTotal(t *testing.T) {
	records := []Expense{
		expense("1", "2024-12-31", "Food", "1.25"),
		expense("2", "2025-01-01", "Food", "3.50"),
		expense("3", "2025-01-15", "Bills", "100"),
		expense("4", "2025-01-15", "Other", "0.25"),
	}

	total, err := Total(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, fn := range map[string]func([]Expense) (map[string]decimal.Decimal, error){
		"month": ByMonth,
		"day":   ByDay,
	} {
		buckets, err := fn(records)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}

		sum := decimal.Zero
		for _, v := range buckets {
			sum = sum.Add(v)
		}
		if !sum.Equal(total) {
			t.Errorf("%s buckets sum to %s, want %s", name, sum, total)
		}
	}
}

func TestAggregates_MalformedDate(t *testing.T) {
	records := []Expense{
		expense("ok", "2025-01-01", "Food", "1"),
		expense("broken", "2025-13-01", "Food", "1"),
	}

	tests := []struct {
		name string
		run  func() error
	}{
		{"total", func() error { _, err := Total(records); return err }},
		{"by category", func() error { _, err := ByCategory(records); return err }},
		{"by month", func() error { _, err := ByMonth(records); return err }},
		{"by day", func() error { _, err := ByDay(records); return err }},
		{"summarize", func() error { _, err := Summarize(records); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMalformed(t, tt.run(), "broken")
		})
	}
}

func assertMalformed(t *testing.T, err error, recordID string) {
	t.Helper()

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.RecordID != recordID || vErr.Field != "date" {
		t.Errorf("unexpected validation error: %+v", vErr)
	}
	if !errors.Is(err, ErrMalformedDate) {
		t.Errorf("expected ErrMalformedDate, got %v", err)
	}
}

func TestSortedSeries(t *testing.T) {
	series := SortedSeries(map[string]decimal.Decimal{
		"2025-03": decimal.NewFromInt(3),
		"2024-11": decimal.NewFromInt(1),
		"2025-01": decimal.NewFromInt(2),
	})

	keys := make([]string, len(series))
	for i, b := range series {
		keys[i] = b.Key
	}
	want := []string{"2024-11", "2025-01", "2025-03"}
	if !slices.Equal(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestBusiestMonth(t *testing.T) {
	if _, ok := BusiestMonth(nil); ok {
		t.Fatalf("expected no busiest month for empty input")
	}

	best, ok := BusiestMonth(map[string]decimal.Decimal{
		"2025-02": decimal.NewFromInt(40),
		"2025-01": decimal.NewFromInt(40),
		"2025-03": decimal.NewFromInt(10),
	})
	if !ok {
		t.Fatalf("expected a busiest month")
	}
	if best.Key != "2025-01" {
		t.Errorf("expected tie to pick earliest month, got %s", best.Key)
	}
	assertDecimal(t, "40", best.Amount)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sampleExpenses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Count != 3 {
		t.Errorf("expected count 3, got %d", s.Count)
	}
	assertDecimal(t, "35", s.Total)
	if len(s.ByCategory) != 2 || len(s.ByMonth) != 2 || len(s.ByDay) != 2 {
		t.Errorf("unexpected views: %+v", s)
	}
	if s.BusiestMonth == nil || s.BusiestMonth.Key != "2025-05" {
		t.Errorf("expected busiest month 2025-05, got %+v", s.BusiestMonth)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize([]Expense{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Count != 0 || !s.Total.IsZero() {
		t.Errorf("expected zero count and total, got %+v", s)
	}
	if len(s.ByCategory) != 0 || len(s.ByMonth) != 0 || len(s.ByDay) != 0 {
		t.Errorf("expected empty views, got %+v", s)
	}
	if s.BusiestMonth != nil {
		t.Errorf("expected no busiest month, got %+v", s.BusiestMonth)
	}
}

func TestFilterThenAggregate(t *testing.T) {
	from := datePtr(t, "2025-04-01")
	to := datePtr(t, "2025-04-30")

	filtered, err := Filter(sampleExpenses(), FilterCriteria{DateFrom: from, DateTo: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, err := Total(filtered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "15", total)

	groups, err := ByCategory(filtered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].Category != "Food" {
		t.Errorf("expected only Food, got %+v", groups)
	}
}
