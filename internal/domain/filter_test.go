package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleExpenses() []Expense {
	return []Expense{
		{ID: "1", Date: "2025-04-05", Description: "lunch", Category: "Food", Amount: decimal.NewFromInt(10)},
		{ID: "2", Date: "2025-04-05", Description: "coffee", Category: "Food", Amount: decimal.NewFromInt(5)},
		{ID: "3", Date: "2025-05-01", Description: "train", Category: "Transportation", Amount: decimal.NewFromInt(20)},
	}
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &d
}

func amountPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func ids(records []Expense) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria func(t *testing.T) FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria is identity",
			criteria: func(t *testing.T) FilterCriteria { return FilterCriteria{} },
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "category exact match",
			criteria: func(t *testing.T) FilterCriteria { return FilterCriteria{Category: "Food"} },
			want:     []string{"1", "2"},
		},
		{
			name:     "category is case-sensitive",
			criteria: func(t *testing.T) FilterCriteria { return FilterCriteria{Category: "food"} },
			want:     []string{},
		},
		{
			name:     "amount min",
			criteria: func(t *testing.T) FilterCriteria { return FilterCriteria{AmountMin: amountPtr("15")} },
			want:     []string{"3"},
		},
		{
			name:     "amount max inclusive",
			criteria: func(t *testing.T) FilterCriteria { return FilterCriteria{AmountMax: amountPtr("10")} },
			want:     []string{"1", "2"},
		},
		{
			name: "amount min greater than max matches nothing",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{AmountMin: amountPtr("20"), AmountMax: amountPtr("5")}
			},
			want: []string{},
		},
		{
			name: "date from",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{DateFrom: datePtr(t, "2025-04-10")}
			},
			want: []string{"3"},
		},
		{
			name: "date from is inclusive",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{DateFrom: datePtr(t, "2025-04-05")}
			},
			want: []string{"1", "2", "3"},
		},
		{
			name: "date to covers the whole day",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{DateTo: datePtr(t, "2025-04-05")}
			},
			want: []string{"1", "2"},
		},
		{
			name: "date to with time of day uses its calendar date",
			criteria: func(t *testing.T) FilterCriteria {
				to := time.Date(2025, 5, 1, 0, 0, 1, 0, time.FixedZone("X", -8*3600))
				return FilterCriteria{DateTo: &to}
			},
			want: []string{"1", "2", "3"},
		},
		{
			name: "date from after date to matches nothing",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{DateFrom: datePtr(t, "2025-05-01"), DateTo: datePtr(t, "2025-04-01")}
			},
			want: []string{},
		},
		{
			name: "clauses are combined",
			criteria: func(t *testing.T) FilterCriteria {
				return FilterCriteria{
					DateFrom:  datePtr(t, "2025-04-01"),
					DateTo:    datePtr(t, "2025-04-30"),
					Category:  "Food",
					AmountMin: amountPtr("6"),
				}
			},
			want: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(sampleExpenses(), tt.criteria(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalIDs(ids(got), tt.want) {
				t.Fatalf("Filter() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got, err := Filter(nil, FilterCriteria{Category: "Food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFilter_DefaultMinExcludesNegativeAmounts(t *testing.T) {
	records := []Expense{
		{ID: "refund", Date: "2025-01-01", Category: "Other", Amount: decimal.NewFromInt(-3)},
	}

	got, err := Filter(records, FilterCriteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected negative amount to fall below default minimum, got %v", ids(got))
	}

	got, err = Filter(records, FilterCriteria{AmountMin: amountPtr("-10")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected explicit negative minimum to include refund, got %v", ids(got))
	}
}

func TestFilter_MalformedDate(t *testing.T) {
	records := append(sampleExpenses(), Expense{ID: "bad", Date: "not-a-date", Category: "Food", Amount: decimal.NewFromInt(1)})

	got, err := Filter(records, FilterCriteria{Category: "Transportation"})
	if got != nil {
		t.Fatalf("expected no partial result, got %v", ids(got))
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.RecordID != "bad" {
		t.Fatalf("expected offending record id bad, got %s", vErr.RecordID)
	}
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate in chain, got %v", err)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleExpenses()
	before := ids(records)

	if _, err := Filter(records, FilterCriteria{Category: "Transportation"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !equalIDs(ids(records), before) {
		t.Fatalf("input reordered: %v", ids(records))
	}
	if !records[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("input amount changed: %s", records[0].Amount)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []FilterCriteria{
		{},
		{Category: "Food"},
		{AmountMin: amountPtr("6"), AmountMax: amountPtr("25")},
		{DateFrom: datePtr(t, "2025-04-06")},
	}

	for _, c := range criteria {
		once, err := Filter(sampleExpenses(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		twice, err := Filter(once, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(once), ids(twice)) {
			t.Fatalf("filter not idempotent for %+v: %v vs %v", c, ids(once), ids(twice))
		}
	}
}

func TestFilter_MonotonicNarrowing(t *testing.T) {
	base := FilterCriteria{AmountMax: amountPtr("100")}
	narrower := []FilterCriteria{
		{AmountMax: base.AmountMax, Category: "Food"},
		{AmountMax: base.AmountMax, AmountMin: amountPtr("8")},
		{AmountMax: base.AmountMax, DateTo: datePtr(t, "2025-04-30")},
	}

	wide, err := Filter(sampleExpenses(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inWide := make(map[string]bool)
	for _, id := range ids(wide) {
		inWide[id] = true
	}

	for _, c := range narrower {
		narrow, err := Filter(sampleExpenses(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, id := range ids(narrow) {
			if !inWide[id] {
				t.Fatalf("record %s passes %+v but not the wider criteria", id, c)
			}
		}
	}
}

func TestFilterCriteria_IsZero(t *testing.T) {
	if !(FilterCriteria{}).IsZero() {
		t.Fatal("expected empty criteria to be zero")
	}
	if (FilterCriteria{Category: "Food"}).IsZero() {
		t.Fatal("expected category criteria to be non-zero")
	}
}
