package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders amount as US dollars with thousands separators,
// e.g. "$1,234.50" or "-$3.00".
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).Round(0).IntPart()
	if cents == 100 {
		whole = whole.Add(decimal.NewFromInt(1))
		cents = 0
	}

	return sign + "$" + amountPrinter.Sprintf("%d", whole.IntPart()) + fmt.Sprintf(".%02d", cents)
}
