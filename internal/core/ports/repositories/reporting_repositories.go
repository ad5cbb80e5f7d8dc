package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// ReportingRepository defines aggregate queries computed by the store
type ReportingRepository interface {
	// SumByCategory sums stored values of the transactions matching filter, grouped by
	// (category id, category title) and ordered by category id ascending.
	SumByCategory(ctx context.Context, filter domain.TransactionFilter) ([]domain.CategorySum, error)
}
