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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.CollectableRow) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Title)
	return c, err
}

// ListCategories retrieves all categories.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, title FROM categories ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(modelCategories), nil
}

// FindCategoryByID retrieves a category by its id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, title FROM categories WHERE id = $1;`, categoryID)
}

// FindCategoryByTitle retrieves the oldest category with exactly the given title.
func (r *PgxCategoryRepository) FindCategoryByTitle(ctx context.Context, title string) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, title FROM categories WHERE title = $1 ORDER BY id ASC LIMIT 1;`, title)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, arg).Scan(&m.ID, &m.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %v: %w", arg, err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

// SaveCategory inserts a category and returns it with its generated id.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, title string) (*domain.Category, error) {
	var m models.Category
	err := r.Pool.QueryRow(ctx, `INSERT INTO categories (title) VALUES ($1) RETURNING id, title;`, title).Scan(&m.ID, &m.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category %q: %w", title, err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}
