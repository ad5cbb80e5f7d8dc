package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// ListCategories returns all categories ordered by id ascending.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// FindCategoryByID returns apperrors.ErrNotFound when missing.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// FindCategoryByTitle matches the title exactly and returns the lowest id on duplicates.
	// Returns apperrors.ErrNotFound when missing.
	FindCategoryByTitle(ctx context.Context, title string) (*domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory inserts a category and returns it with its generated id.
	SaveCategory(ctx context.Context, title string) (*domain.Category, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
