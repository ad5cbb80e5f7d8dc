package handlers_test

import (
	"context"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, limit int, after *domain.Cursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portssvc.CategorySvc = (*MockCategoryService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FilterByCategory(ctx context.Context, categoryTitle string) (*domain.FilterReport, error) {
	args := m.Called(ctx, categoryTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterReport), args.Error(1)
}

func (m *MockReportingService) FilterByMonth(ctx context.Context, year, month int) (*domain.MonthReport, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthReport), args.Error(1)
}

func (m *MockReportingService) FilterByMonthAndCategory(ctx context.Context, year, month int, categoryTitle string) (*domain.FilterReport, error) {
	args := m.Called(ctx, year, month, categoryTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterReport), args.Error(1)
}

func (m *MockReportingService) FilterByTitle(ctx context.Context, fragment string) (*domain.FilterReport, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterReport), args.Error(1)
}

func (m *MockReportingService) CategorySums(ctx context.Context, year, month int, typ domain.TransactionType) ([]domain.CategorySum, error) {
	args := m.Called(ctx, year, month, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySum), args.Error(1)
}

func (m *MockReportingService) Patrimony(ctx context.Context, year, month int) (*domain.PatrimonyReport, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PatrimonyReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
