package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryReader
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryReader) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
