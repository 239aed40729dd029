package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iho/goexpense/internal/adapter/http/dto"
	"github.com/iho/goexpense/internal/domain"
)

const descriptionWidth = 40

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printExpenses(w io.Writer, list *dto.ExpenseListResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, e := range list.Expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Date, e.Category, domain.FormatAmount(e.Amount), truncate(e.Description, descriptionWidth))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d expense(s)\n", list.Count)
}

func printSummary(w io.Writer, s *dto.SummaryResponse) {
	fmt.Fprintf(w, "Expenses: %d\n", s.Count)
	fmt.Fprintf(w, "Total:    %s\n", domain.FormatAmount(s.Total))
	if s.BusiestMonth != nil {
		fmt.Fprintf(w, "Busiest:  %s (%s)\n", s.BusiestMonth.Month, domain.FormatAmount(s.BusiestMonth.Amount))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if len(s.Categories) > 0 {
		fmt.Fprintln(w, "\nBy category:")
		for _, c := range s.Categories {
			fmt.Fprintf(tw, "  %s\t%s\t\n", c.Category, domain.FormatAmount(c.Amount))
		}
		tw.Flush()
	}
	if len(s.Monthly) > 0 {
		fmt.Fprintln(w, "\nBy month:")
		for _, m := range s.Monthly {
			fmt.Fprintf(tw, "  %s\t%s\t\n", m.Month, domain.FormatAmount(m.Amount))
		}
		tw.Flush()
	}
}

func categoriesResponse() dto.CategoriesResponse {
	categories := make([]string, len(domain.Categories))
	copy(categories, domain.Categories)
	return dto.CategoriesResponse{Categories: categories}
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
