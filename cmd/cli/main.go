package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	baseURL string
	timeout time.Duration
	asJSON  bool
	filter  filterFlags
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "goexpense-cli",
		Short:         "GoExpense CLI tool",
		Long:          `A command line interface for browsing and analysing expenses, against the GoExpense API or a local JSON export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the GoExpense API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print raw JSON instead of a table")

	rootCmd.AddCommand(
		expensesCmd(opts),
		analyticsCmd(opts),
		analyzeCmd(opts),
		categoriesCmd(opts),
	)

	return rootCmd
}

func expensesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Expense operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses matching the filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newAPIClient(opts).listExpenses(cmd.Context(), opts.filter.values())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}
			printExpenses(cmd.OutOrStdout(), list)
			return nil
		},
	}
	opts.filter.register(listCmd)

	cmd.AddCommand(listCmd)
	return cmd
}

func analyticsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Spending analytics",
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise expenses matching the filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := newAPIClient(opts).summary(cmd.Context(), opts.filter.values())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	opts.filter.register(summaryCmd)

	cmd.AddCommand(summaryCmd)
	return cmd
}

func categoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := categoriesResponse()
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			for _, c := range resp.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
