package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table, optionally joined with
// its category title.
type Transaction struct {
	ID            string          `db:"id"`
	Title         string          `db:"title"`
	Value         decimal.Decimal `db:"value"`
	Day           time.Time       `db:"day"`
	Type          int16           `db:"type"`
	CategoryID    *int64          `db:"category_id"`
	CategoryTitle *string         `db:"category_title"`
	UserID        string          `db:"user_id"`
	AuditFields
}

// Category mirrors a row of the categories table.
type Category struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// CategorySum is one row of the grouped sum query.
type CategorySum struct {
	CategoryID    *int64          `db:"category_id"`
	CategoryTitle *string         `db:"category_title"`
	Sum           decimal.Decimal `db:"sum"`
}
