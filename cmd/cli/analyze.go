package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/goexpense/internal/adapter/http/dto"
	"github.com/iho/goexpense/internal/domain"
	"github.com/iho/goexpense/internal/usecase"
)

// fileRecord is one expense in a local JSON export.
type fileRecord struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

func analyzeCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarise expenses from a local JSON file without a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(file)
			if err != nil {
				return err
			}

			criteria, err := dto.ParseFilter(opts.filter.values())
			if err != nil {
				return err
			}

			summary, err := analyze(records, criteria)
			if err != nil {
				return err
			}

			resp := dto.SummaryFromDomain(summary)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printSummary(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file holding an array of expenses")
	_ = cmd.MarkFlagRequired("file")
	opts.filter.register(cmd)

	return cmd
}

func loadRecords(path string) ([]domain.Expense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]domain.Expense, len(raw))
	for i, r := range raw {
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}
		records[i] = domain.Expense{
			ID:          id,
			Date:        r.Date,
			Description: r.Description,
			Category:    r.Category,
			Amount:      r.Amount,
		}
	}
	return records, nil
}

func analyze(records []domain.Expense, criteria domain.FilterCriteria) (*domain.Summary, error) {
	filtered, err := domain.Filter(records, criteria)
	if err != nil {
		return nil, err
	}
	return usecase.Aggregate(filtered)
}
