package pgsql

import (
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
