package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker_app/internal/models"
	"github.com/SscSPs/money_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (id, title, value, day, type, category_id, user_id, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

func insertTransactionArgs(m models.Transaction) []any {
	return []any{
		m.ID,
		m.Title,
		m.Value,
		m.Day,
		m.Type,
		m.CategoryID,
		m.UserID,
		m.CreatedAt,
		m.LastUpdatedAt,
	}
}

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Value,
		&m.Day,
		&m.Type,
		&m.CategoryID,
		&m.CategoryTitle,
		&m.UserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	if _, err := r.Pool.Exec(ctx, insertTransactionQuery, insertTransactionArgs(m)...); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.ID, err)
	}
	return nil
}

// SaveTransactions inserts all transactions in a single database transaction.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, t := range transactions {
		batch.Queue(insertTransactionQuery, insertTransactionArgs(mapping.ToModelTransaction(t))...)
	}

	br := tx.SendBatch(ctx, batch)
	for _, t := range transactions {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close insert batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its category title.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := "SELECT" + transactionColumns + transactionFrom + "\n\tWHERE t.id = $1;"

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}

	t := mapping.ToDomainTransaction(m)
	return &t, nil
}

// FindTransactions retrieves the transactions matching filter.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildTransactionQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTransactions, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTransactions), nil
}

// UpdateTransaction overwrites the mutable columns of an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		UPDATE transactions
		SET title = $2, value = $3, day = $4, type = $5, category_id = $6, last_updated_at = $7
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.Title, m.Value, m.Day, m.Type, m.CategoryID, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction by id.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
