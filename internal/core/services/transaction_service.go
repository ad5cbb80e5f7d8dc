package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsevents "github.com/SscSPs/money_tracker_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/utils"
	"github.com/SscSPs/money_tracker_app/internal/utils/filtering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
	publisher       portsevents.TransactionEventPublisher
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithEventPublisher sets where transaction change events are announced.
func WithEventPublisher(publisher portsevents.TransactionEventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = publisher
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) validateFields(ctx context.Context, value decimal.Decimal, typ domain.TransactionType, categoryID *int64) error {
	if value.IsNegative() {
		return apperrors.NewValidationError("value must not be negative, got %s", value.String())
	}
	if err := utils.CheckStorableValue(value); err != nil {
		return err
	}
	if !typ.IsKnown() {
		return apperrors.NewValidationError("unknown transaction type %d", int(typ))
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("category %d does not exist", *categoryID)
			}
			return fmt.Errorf("failed to check category %d: %w", *categoryID, err)
		}
	}
	return nil
}

func (s *transactionService) publish(ctx context.Context, kind domain.TransactionEventKind, transactionID, userID string) {
	if s.publisher == nil {
		return
	}
	event := domain.TransactionEvent{
		Kind:          kind,
		TransactionID: transactionID,
		UserID:        userID,
		OccurredAt:    s.now(),
	}
	if err := s.publisher.PublishTransactionEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("event", string(kind)),
			slog.String("transaction_id", transactionID))
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Value == nil || req.Type == nil {
		return nil, apperrors.NewValidationError("value and type are required")
	}

	day, err := dto.ParseDay(req.Day)
	if err != nil {
		return nil, err
	}

	typ := domain.TransactionType(*req.Type)
	if err := s.validateFields(ctx, *req.Value, typ, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Invalid transaction", slog.String("title", req.Title))
		return nil, err
	}

	now := s.now()
	transaction := domain.Transaction{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Value:      *req.Value,
		Day:        day,
		Type:       typ,
		CategoryID: req.CategoryID,
		UserID:     userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transaction.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully", slog.String("transaction_id", transaction.ID))
	s.publish(ctx, domain.TransactionCreated, transaction.ID, userID)
	return &transaction, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Transaction not found", slog.String("transaction_id", transactionID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, after *domain.Cursor) ([]domain.Transaction, error) {
	filter := filtering.All()
	if limit > 0 {
		filter = filtering.WithPage(filter, limit, after)
	}

	transactions, err := s.transactionRepo.FindTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	current, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updated := patch.Apply(*current)
	// Only re-check the category when it changes
	var categoryToCheck *int64
	if patch.CategoryID != nil {
		categoryToCheck = updated.CategoryID
	}
	if err := s.validateFields(ctx, updated.Value, updated.Type, categoryToCheck); err != nil {
		s.LogError(ctx, err, "Invalid transaction update", slog.String("transaction_id", transactionID))
		return nil, err
	}
	updated.LastUpdatedAt = s.now()

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// deleted between the read and the write
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	s.publish(ctx, domain.TransactionUpdated, transactionID, userID)
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	s.publish(ctx, domain.TransactionDeleted, transactionID, userID)
	return nil
}
