package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/iho/goexpense/internal/adapter/http/dto"
)

// filterFlags mirrors the API filter query parameters.
type filterFlags struct {
	category string
	from     string
	to       string
	min      string
	max      string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.category, "category", "", "Only expenses in this category")
	flags.StringVar(&f.from, "from", "", "Earliest date, inclusive (YYYY-MM-DD)")
	flags.StringVar(&f.to, "to", "", "Latest date, inclusive (YYYY-MM-DD)")
	flags.StringVar(&f.min, "min", "", "Minimum amount, inclusive")
	flags.StringVar(&f.max, "max", "", "Maximum amount, inclusive")
}

// values encodes the flags as API query parameters. Unset flags are omitted.
func (f *filterFlags) values() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set(dto.QueryCategory, f.category)
	set(dto.QueryDateFrom, f.from)
	set(dto.QueryDateTo, f.to)
	set(dto.QueryAmountMin, f.min)
	set(dto.QueryAmountMax, f.max)
	return q
}
