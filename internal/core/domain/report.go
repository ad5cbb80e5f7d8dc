package domain

import "github.com/shopspring/decimal"

// FilterReport is the result of a filter endpoint: the signed rows and their total.
type FilterReport struct {
	ResultsFound int
	TotalValue   decimal.Decimal
	Data         []Transaction
}

// MonthReport is the result of the month filter.
type MonthReport struct {
	Balance Balance
	Data    []Transaction
}

// PatrimonyReport is the cumulative view up to the end of a month.
type PatrimonyReport struct {
	TotalValue decimal.Decimal
	Balance    Balance
	Data       []Transaction
}

// SeedResult counts what a seed run wrote.
type SeedResult struct {
	CategoriesCreated int
	CategoriesReused  int
	Transactions      int
}
