package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/utils/accounting"
	"github.com/SscSPs/money_tracker_app/internal/utils/filtering"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	reportingRepo   portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(transactionRepo portsrepo.TransactionReader, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		transactionRepo: transactionRepo,
		reportingRepo:   reportingRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// fetchSigned loads the rows matching filter and flips expenses negative.
func (s *reportingService) fetchSigned(ctx context.Context, filter domain.TransactionFilter, report string, attrs ...any) ([]domain.Transaction, error) {
	if filter.MatchesNothing() {
		s.LogDebug(ctx, "Day bounds exclude every row, skipping store", append([]any{slog.String("report", report)}, attrs...)...)
		return []domain.Transaction{}, nil
	}

	transactions, err := s.transactionRepo.FindTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for "+report, attrs...)
		return nil, fmt.Errorf("failed to retrieve transactions for %s: %w", report, err)
	}

	if unknown := accounting.CountUnknownTypes(transactions); unknown > 0 {
		s.LogWarn(ctx, "Transactions with unknown type ignored by balance",
			append([]any{slog.String("report", report), slog.Int("count", unknown)}, attrs...)...)
	}

	return accounting.NormalizeSigns(transactions), nil
}

func filterReport(signed []domain.Transaction) *domain.FilterReport {
	return &domain.FilterReport{
		ResultsFound: len(signed),
		TotalValue:   accounting.SumValues(signed),
		Data:         signed,
	}
}

// FilterByCategory matches the category title ignoring case
func (s *reportingService) FilterByCategory(ctx context.Context, categoryTitle string) (*domain.FilterReport, error) {
	signed, err := s.fetchSigned(ctx, filtering.ByCategory(categoryTitle), "category filter",
		slog.String("category", categoryTitle))
	if err != nil {
		return nil, err
	}
	return filterReport(signed), nil
}

// FilterByMonth returns the month's transactions and their balance
func (s *reportingService) FilterByMonth(ctx context.Context, year, month int) (*domain.MonthReport, error) {
	signed, err := s.fetchSigned(ctx, filtering.ByMonth(year, month), "month filter",
		slog.Int("year", year), slog.Int("month", month))
	if err != nil {
		return nil, err
	}
	return &domain.MonthReport{
		Balance: accounting.ComputeBalance(signed),
		Data:    signed,
	}, nil
}

// FilterByMonthAndCategory is the conjunction of the month and category filters
func (s *reportingService) FilterByMonthAndCategory(ctx context.Context, year, month int, categoryTitle string) (*domain.FilterReport, error) {
	signed, err := s.fetchSigned(ctx, filtering.ByMonthAndCategory(year, month, categoryTitle), "month and category filter",
		slog.Int("year", year), slog.Int("month", month), slog.String("category", categoryTitle))
	if err != nil {
		return nil, err
	}
	return filterReport(signed), nil
}

// FilterByTitle matches a title substring ignoring case
func (s *reportingService) FilterByTitle(ctx context.Context, fragment string) (*domain.FilterReport, error) {
	signed, err := s.fetchSigned(ctx, filtering.ByTitle(fragment), "title filter",
		slog.String("title", fragment))
	if err != nil {
		return nil, err
	}
	return filterReport(signed), nil
}

// CategorySums totals the stored values per category for a month and type.
// Sums are computed by the store over raw (unsigned) values.
func (s *reportingService) CategorySums(ctx context.Context, year, month int, typ domain.TransactionType) ([]domain.CategorySum, error) {
	filter := filtering.CategorySums(year, month, typ)
	if filter.MatchesNothing() {
		s.LogDebug(ctx, "Day bounds exclude every row, skipping store", slog.Int("year", year), slog.Int("month", month))
		return []domain.CategorySum{}, nil
	}

	sums, err := s.reportingRepo.SumByCategory(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category sums",
			slog.Int("year", year), slog.Int("month", month), slog.String("type", typ.String()))
		return nil, fmt.Errorf("failed to retrieve category sums: %w", err)
	}

	s.LogDebug(ctx, "Category sums computed", slog.Int("group_count", len(sums)))
	return sums, nil
}

// Patrimony is the cumulative view of every transaction before the end of the month
func (s *reportingService) Patrimony(ctx context.Context, year, month int) (*domain.PatrimonyReport, error) {
	signed, err := s.fetchSigned(ctx, filtering.Patrimony(year, month), "patrimony",
		slog.Int("year", year), slog.Int("month", month))
	if err != nil {
		return nil, err
	}
	return &domain.PatrimonyReport{
		TotalValue: accounting.SumValues(signed),
		Balance:    accounting.ComputeBalance(signed),
		Data:       signed,
	}, nil
}
