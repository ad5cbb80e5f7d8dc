package dto

import "github.com/shopspring/decimal"

// SeedDocument is the on-disk seed format.
type SeedDocument struct {
	Categories   []SeedCategory    `json:"categories"`
	Transactions []SeedTransaction `json:"transactions"`
}

// SeedCategory is a category with an id local to the seed document.
type SeedCategory struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SeedTransaction references its category by seed-local id.
type SeedTransaction struct {
	Title    string          `json:"title"`
	Value    decimal.Decimal `json:"value"`
	Day      *string         `json:"day"` // Optional, defaults to the seed time
	Type     int             `json:"type"`
	UserID   string          `json:"userId"`
	Category *int64          `json:"category"`
}
