package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/SscSPs/money_tracker_app/internal/core/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	catRepo := new(MockCategoryRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewSeedService(catRepo, txnRepo)

	doc := dto.SeedDocument{
		Categories: []dto.SeedCategory{{ID: 1, Title: "Food"}, {ID: 2, Title: "Rent"}},
		Transactions: []dto.SeedTransaction{
			{Title: "Lunch", Value: decimal.NewFromInt(12), Day: ptr("2024-06-01"), Type: 0, UserID: "u1", Category: ptr(int64(1))},
			{Title: "Flat", Value: decimal.NewFromInt(800), Type: 0, UserID: "u1", Category: ptr(int64(2))},
			{Title: "Gift", Value: decimal.NewFromInt(50), Type: 1, UserID: "u1", Category: ptr(int64(9))},
			{Title: "Cash", Value: decimal.NewFromInt(5), Type: 1, UserID: "u1"},
		},
	}

	// Food already exists with store id 7, Rent is new
	catRepo.On("FindCategoryByTitle", ctx, "Food").Return(&domain.Category{ID: 7, Title: "Food"}, nil).Once()
	catRepo.On("FindCategoryByTitle", ctx, "Rent").Return(nil, apperrors.ErrNotFound).Once()
	catRepo.On("SaveCategory", ctx, "Rent").Return(&domain.Category{ID: 8, Title: "Rent"}, nil).Once()

	var saved []domain.Transaction
	txnRepo.On("SaveTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Transaction) }).
		Return(nil).Once()

	result, err := svc.Seed(ctx, doc)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CategoriesCreated)
	assert.Equal(t, 1, result.CategoriesReused)
	assert.Equal(t, 4, result.Transactions)

	require.Len(t, saved, 4)
	assert.Equal(t, int64(7), *saved[0].CategoryID)
	assert.Equal(t, 2024, saved[0].Day.Year())
	assert.Equal(t, int64(8), *saved[1].CategoryID)
	assert.False(t, saved[1].Day.IsZero(), "missing day defaults to now")
	assert.Nil(t, saved[2].CategoryID, "unknown seed category becomes uncategorised")
	assert.Nil(t, saved[3].CategoryID)
	assert.Equal(t, "u1", saved[3].UserID)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)

	catRepo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
}

func TestSeedService_RejectsNegativeValue(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSeedService(new(MockCategoryRepository), new(MockTransactionRepository))

	_, err := svc.Seed(ctx, dto.SeedDocument{
		Transactions: []dto.SeedTransaction{{Title: "bad", Value: decimal.NewFromInt(-1)}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSeedService_RejectsUnstorableValue(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	svc := services.NewSeedService(new(MockCategoryRepository), txnRepo)

	for _, value := range []string{"10.005", "1e14"} {
		t.Run(value, func(t *testing.T) {
			_, err := svc.Seed(ctx, dto.SeedDocument{
				Transactions: []dto.SeedTransaction{{Title: "odd", Value: decimal.RequireFromString(value), Type: 1, UserID: "u1"}},
			})
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	txnRepo.AssertNotCalled(t, "SaveTransactions", mock.Anything, mock.Anything)
}

func TestSeedService_CategoryLookupFailure(t *testing.T) {
	ctx := context.Background()
	catRepo := new(MockCategoryRepository)
	svc := services.NewSeedService(catRepo, new(MockTransactionRepository))

	catRepo.On("FindCategoryByTitle", ctx, "Food").Return(nil, assert.AnError).Once()

	_, err := svc.Seed(ctx, dto.SeedDocument{Categories: []dto.SeedCategory{{ID: 1, Title: "Food"}}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCategoryService_ListCategories(t *testing.T) {
	ctx := context.Background()
	catRepo := new(MockCategoryRepository)
	svc := services.NewCategoryService(catRepo)

	catRepo.On("ListCategories", ctx).Return([]domain.Category{{ID: 1, Title: "Food"}, {ID: 2, Title: "Rent"}}, nil).Once()

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	catRepo.AssertExpectations(t)
}
