package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactions returns the transactions matching filter, in the filter's order.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionByID returns apperrors.ErrNotFound when no row has the given id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// SaveTransactions inserts all transactions atomically.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error

	// UpdateTransaction overwrites the mutable columns of an existing row.
	// Returns apperrors.ErrNotFound without inserting when the row is missing.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a row, or returns apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
