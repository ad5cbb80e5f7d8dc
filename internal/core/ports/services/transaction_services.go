package services

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/SscSPs/money_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction, or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions lists transactions newest first. A limit of 0 returns every row;
	// after continues from the row a previous page ended on.
	ListTransactions(ctx context.Context, limit int, after *domain.Cursor) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction owned by userID.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update. Missing transactions yield
	// apperrors.ErrNotFound and nothing is created.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction, or returns apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// CategorySvc defines operations on categories
type CategorySvc interface {
	// ListCategories returns all categories ordered by id ascending.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// SeedSvc loads a seed document into the store
type SeedSvc interface {
	Seed(ctx context.Context, doc dto.SeedDocument) (*domain.SeedResult, error)
}
