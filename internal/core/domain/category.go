package domain

import "github.com/shopspring/decimal"

// Category is a named grouping for transactions. Titles are unique by convention only.
type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// CategorySum is one row of a grouped-by-category total. Uncategorised transactions
// form their own group with nil id and title.
type CategorySum struct {
	CategoryID    *int64          `json:"categoryID"`
	CategoryTitle *string         `json:"categoryTitle"`
	Sum           decimal.Decimal `json:"sum"`
}
