package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories offered to users.
const (
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryShopping       = "Shopping"
	CategoryOther          = "Other"
)

// Categories is the fixed category set, in display order.
var Categories = []string{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryShopping,
	CategoryOther,
}

// Expense represents a single logged transaction.
//
// Date is kept as the stored ISO-8601 calendar date string (YYYY-MM-DD) so that
// month and day buckets can be derived from it directly.
type Expense struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ID          string
	Date        string
	Description string
	Category    string
	Amount      decimal.Decimal
}

// IsKnownCategory reports whether category belongs to the fixed set.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
