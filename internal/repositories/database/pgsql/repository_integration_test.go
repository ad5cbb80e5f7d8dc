package pgsql

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker_app/internal/platform/migrations"
	"github.com/SscSPs/money_tracker_app/internal/utils/filtering"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() || os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set RUN_INTEGRATION_TESTS to run tests against a postgres container")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.RunContainer(s.ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("money_tracker"),
		postgres.WithUsername("tracker"),
		postgres.WithPassword("tracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(migrations.Run(dsn, slog.New(slog.NewTextHandler(io.Discard, nil))))

	s.pool, err = pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(s.ctx))
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE transactions, categories RESTART IDENTITY;`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) newTransaction(id, title string, value int64, day time.Time, typ domain.TransactionType, categoryID *int64) domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Transaction{
		ID:          id,
		Title:       title,
		Value:       decimal.NewFromInt(value),
		Day:         day,
		Type:        typ,
		CategoryID:  categoryID,
		UserID:      "user_1",
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func (s *RepositoryIntegrationSuite) TestMonthFilterAndBalance() {
	food, err := s.repos.CategoryRepo.SaveCategory(s.ctx, "Food")
	s.Require().NoError(err)

	s.Require().NoError(s.repos.TransactionRepo.SaveTransactions(s.ctx, []domain.Transaction{
		s.newTransaction("a", "Salary", 100, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), domain.Income, nil),
		s.newTransaction("b", "Lunch", 40, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), domain.Expense, &food.ID),
		s.newTransaction("c", "Next month", 7, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), domain.Expense, &food.ID),
	}))

	got, err := s.repos.TransactionRepo.FindTransactions(s.ctx, filtering.ByMonth(2024, 6))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("b", got[0].ID)
	s.Equal("a", got[1].ID)
	s.Require().NotNil(got[0].CategoryTitle)
	s.Equal("Food", *got[0].CategoryTitle)
	s.Nil(got[1].CategoryTitle)

	byCategory, err := s.repos.TransactionRepo.FindTransactions(s.ctx, filtering.ByCategory("food"))
	s.Require().NoError(err)
	s.Len(byCategory, 2)

	byTitle, err := s.repos.TransactionRepo.FindTransactions(s.ctx, filtering.ByTitle("LUN"))
	s.Require().NoError(err)
	s.Require().Len(byTitle, 1)
	s.Equal("b", byTitle[0].ID)

	patrimony, err := s.repos.TransactionRepo.FindTransactions(s.ctx, filtering.Patrimony(2024, 7))
	s.Require().NoError(err)
	s.Len(patrimony, 3)

	empty, err := s.repos.TransactionRepo.FindTransactions(s.ctx, filtering.ByMonth(2024, 13))
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RepositoryIntegrationSuite) TestSumByCategory() {
	food, err := s.repos.CategoryRepo.SaveCategory(s.ctx, "Food")
	s.Require().NoError(err)

	s.Require().NoError(s.repos.TransactionRepo.SaveTransactions(s.ctx, []domain.Transaction{
		s.newTransaction("a", "Lunch", 10, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), domain.Expense, &food.ID),
		s.newTransaction("b", "Dinner", 15, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), domain.Expense, &food.ID),
		s.newTransaction("c", "Parking", 5, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), domain.Expense, nil),
		s.newTransaction("d", "Salary", 500, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), domain.Income, nil),
	}))

	sums, err := s.repos.ReportingRepo.SumByCategory(s.ctx, filtering.CategorySums(2024, 6, domain.Expense))
	s.Require().NoError(err)
	s.Require().Len(sums, 2)

	s.Require().NotNil(sums[0].CategoryID)
	s.Equal(food.ID, *sums[0].CategoryID)
	s.True(decimal.NewFromInt(25).Equal(sums[0].Sum))
	s.Nil(sums[1].CategoryID)
	s.True(decimal.NewFromInt(5).Equal(sums[1].Sum))
}

func (s *RepositoryIntegrationSuite) TestUpdateAndDelete() {
	txn := s.newTransaction("a", "Rent", 800, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), domain.Expense, nil)
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))

	txn.Title = "Rent January"
	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, txn))

	got, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("Rent January", got.Title)

	missing := s.newTransaction("missing", "x", 1, txn.Day, domain.Expense, nil)
	s.ErrorIs(s.repos.TransactionRepo.UpdateTransaction(s.ctx, missing), apperrors.ErrNotFound)

	s.Require().NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, "a"))
	s.ErrorIs(s.repos.TransactionRepo.DeleteTransaction(s.ctx, "a"), apperrors.ErrNotFound)

	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, "a")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestFindCategoryByTitle() {
	first, err := s.repos.CategoryRepo.SaveCategory(s.ctx, "Travel")
	s.Require().NoError(err)
	_, err = s.repos.CategoryRepo.SaveCategory(s.ctx, "Travel")
	s.Require().NoError(err)

	got, err := s.repos.CategoryRepo.FindCategoryByTitle(s.ctx, "Travel")
	s.Require().NoError(err)
	s.Equal(first.ID, got.ID)

	_, err = s.repos.CategoryRepo.FindCategoryByTitle(s.ctx, "Nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
