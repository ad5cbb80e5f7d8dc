package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker_app/internal/models"
	"github.com/SscSPs/money_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SumByCategory sums transaction values per category for the rows matching filter
func (r *reportingRepository) SumByCategory(ctx context.Context, filter domain.TransactionFilter) ([]domain.CategorySum, error) {
	query, args := buildCategorySumQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category sums: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CategorySum, error) {
		var s models.CategorySum
		err := row.Scan(&s.CategoryID, &s.CategoryTitle, &s.Sum)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning category sum row: %w", err)
	}

	return mapping.ToDomainCategorySumSlice(result), nil
}
