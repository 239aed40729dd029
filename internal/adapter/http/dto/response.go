package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formatted_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:              e.ID,
		Date:            e.Date,
		Description:     e.Description,
		Category:        e.Category,
		Amount:          e.Amount,
		FormattedAmount: domain.FormatAmount(e.Amount),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ExpenseListResponse is the body of the list endpoint.
type ExpenseListResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
	Count    int                `json:"count"`
}

// ExpensesFromDomain converts domain expenses to a list response.
func ExpensesFromDomain(expenses []domain.Expense) *ExpenseListResponse {
	out := make([]*ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ExpenseFromDomain(&expenses[i])
	}
	return &ExpenseListResponse{Expenses: out, Count: len(out)}
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthTotal is one point of the monthly series.
type MonthTotal struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DayTotal is one point of the daily series.
type DayTotal struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// SummaryResponse is the body of the analytics summary endpoint.
type SummaryResponse struct {
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
	Categories     []CategoryTotal `json:"categories"`
	Monthly        []MonthTotal    `json:"monthly"`
	Daily          []DayTotal      `json:"daily"`
	BusiestMonth   *MonthTotal     `json:"busiest_month,omitempty"`
}

// SummaryFromDomain converts a summary to a response. Monthly and daily series
// are ordered by ascending key.
func SummaryFromDomain(s *domain.Summary) *SummaryResponse {
	resp := &SummaryResponse{
		Count:          s.Count,
		Total:          s.Total,
		FormattedTotal: domain.FormatAmount(s.Total),
		Categories:     make([]CategoryTotal, len(s.ByCategory)),
		Monthly:        make([]MonthTotal, 0, len(s.ByMonth)),
		Daily:          make([]DayTotal, 0, len(s.ByDay)),
	}

	for i, c := range s.ByCategory {
		resp.Categories[i] = CategoryTotal{Category: c.Category, Amount: c.Amount}
	}
	for _, b := range domain.SortedSeries(s.ByMonth) {
		resp.Monthly = append(resp.Monthly, MonthTotal{Month: b.Key, Amount: b.Amount})
	}
	for _, b := range domain.SortedSeries(s.ByDay) {
		resp.Daily = append(resp.Daily, DayTotal{Day: b.Key, Amount: b.Amount})
	}
	if s.BusiestMonth != nil {
		resp.BusiestMonth = &MonthTotal{Month: s.BusiestMonth.Key, Amount: s.BusiestMonth.Amount}
	}

	return resp
}

// CategoriesResponse lists the fixed expense categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
