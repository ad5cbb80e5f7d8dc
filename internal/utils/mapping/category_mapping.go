package mapping

import (
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/SscSPs/money_tracker_app/internal/models"
)

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{ID: m.ID, Title: m.Title}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToDomainCategorySumSlice converts grouped sum rows to domain CategorySums
func ToDomainCategorySumSlice(ms []models.CategorySum) []domain.CategorySum {
	ds := make([]domain.CategorySum, len(ms))
	for i, m := range ms {
		ds[i] = domain.CategorySum{
			CategoryID:    m.CategoryID,
			CategoryTitle: m.CategoryTitle,
			Sum:           m.Sum,
		}
	}
	return ds
}
