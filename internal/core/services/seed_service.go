package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/utils"
	"github.com/google/uuid"
)

type seedService struct {
	BaseService
	categoryRepo    portsrepo.CategoryRepositoryFacade
	transactionRepo portsrepo.TransactionWriter
	now             func() time.Time
}

// NewSeedService creates a service that loads seed documents into the store
func NewSeedService(categoryRepo portsrepo.CategoryRepositoryFacade, transactionRepo portsrepo.TransactionWriter) portssvc.SeedSvc {
	return &seedService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// upsertCategory returns the existing category with title, creating it when absent.
func (s *seedService) upsertCategory(ctx context.Context, title string) (*domain.Category, bool, error) {
	existing, err := s.categoryRepo.FindCategoryByTitle(ctx, title)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up category %q: %w", title, err)
	}

	created, err := s.categoryRepo.SaveCategory(ctx, title)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create category %q: %w", title, err)
	}
	return created, true, nil
}

// Seed upserts the document's categories by title, then inserts its transactions
// with category references translated from seed-local ids to store ids.
func (s *seedService) Seed(ctx context.Context, doc dto.SeedDocument) (*domain.SeedResult, error) {
	result := &domain.SeedResult{}
	categoryIDs := make(map[int64]int64, len(doc.Categories))

	for _, c := range doc.Categories {
		category, created, err := s.upsertCategory(ctx, c.Title)
		if err != nil {
			s.LogError(ctx, err, "Failed to seed category", slog.String("title", c.Title))
			return nil, err
		}
		if created {
			result.CategoriesCreated++
		} else {
			result.CategoriesReused++
		}
		categoryIDs[c.ID] = category.ID
	}

	now := s.now()
	transactions := make([]domain.Transaction, 0, len(doc.Transactions))
	for i, t := range doc.Transactions {
		day := now
		if t.Day != nil {
			parsed, err := dto.ParseDay(*t.Day)
			if err != nil {
				return nil, fmt.Errorf("seed transaction %d (%q): %w", i, t.Title, err)
			}
			day = parsed
		}

		typ := domain.TransactionType(t.Type)
		if t.Value.IsNegative() || !typ.IsKnown() {
			return nil, apperrors.NewValidationError("seed transaction %d (%q) has a negative value or unknown type", i, t.Title)
		}
		if err := utils.CheckStorableValue(t.Value); err != nil {
			return nil, fmt.Errorf("seed transaction %d (%q): %w", i, t.Title, err)
		}

		var categoryID *int64
		if t.Category != nil {
			if id, ok := categoryIDs[*t.Category]; ok {
				categoryID = &id
			} else {
				s.LogWarn(ctx, "Seed transaction references unknown category, leaving it uncategorised",
					slog.String("title", t.Title), slog.Int64("category", *t.Category))
			}
		}

		transactions = append(transactions, domain.Transaction{
			ID:          uuid.NewString(),
			Title:       t.Title,
			Value:       t.Value,
			Day:         day,
			Type:        typ,
			CategoryID:  categoryID,
			UserID:      t.UserID,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
	}

	if err := s.transactionRepo.SaveTransactions(ctx, transactions); err != nil {
		s.LogError(ctx, err, "Failed to seed transactions", slog.Int("count", len(transactions)))
		return nil, fmt.Errorf("failed to seed transactions: %w", err)
	}
	result.Transactions = len(transactions)

	s.LogInfo(ctx, "Database seeded successfully",
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_reused", result.CategoriesReused),
		slog.Int("transactions", result.Transactions))
	return result, nil
}
