package services

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// ReportingService defines the filter and aggregate views over transactions.
// Every report carries signed values: expenses are negative.
type ReportingService interface {
	// FilterByCategory matches the category title ignoring case
	FilterByCategory(ctx context.Context, categoryTitle string) (*domain.FilterReport, error)

	// FilterByMonth returns the month's transactions and their balance
	FilterByMonth(ctx context.Context, year, month int) (*domain.MonthReport, error)

	// FilterByMonthAndCategory is the conjunction of the month and category filters
	FilterByMonthAndCategory(ctx context.Context, year, month int, categoryTitle string) (*domain.FilterReport, error)

	// FilterByTitle matches a title substring ignoring case
	FilterByTitle(ctx context.Context, fragment string) (*domain.FilterReport, error)

	// CategorySums totals the stored values per category for a month and type
	CategorySums(ctx context.Context, year, month int, typ domain.TransactionType) ([]domain.CategorySum, error)

	// Patrimony is the cumulative view of every transaction before the end of the month
	Patrimony(ctx context.Context, year, month int) (*domain.PatrimonyReport, error)
}
