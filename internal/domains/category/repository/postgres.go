package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/category"
	"catalog-backend/pkg/cache"
)

const (
	categoryListKey = "categories:list"
	cacheTTL        = 15 * time.Minute
)

// postgresRepository implements category.Repository with a Redis-backed
// read-through cache on the list query.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, cat *category.Category) (*category.Category, error) {
	query := `
        INSERT INTO categories (name, slug)
        VALUES ($1, $2)
        RETURNING id, name, slug, created_at, updated_at
    `

	var created category.Category
	err := r.pool.QueryRow(ctx, query, cat.Name, cat.Slug).Scan(
		&created.ID,
		&created.Name,
		&created.Slug,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return nil, category.ErrDuplicateSlug
			}
			return nil, category.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.cache.Delete(ctx, categoryListKey)

	return &created, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	query := `
        SELECT id, name, slug, created_at, updated_at
        FROM categories
        WHERE slug = $1
    `

	var cat category.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return &cat, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter category.CategoryFilter) ([]category.Category, int64, error) {
	// The unfiltered first page is the common request; serve it from cache
	cacheable := filter.Offset == 0

	if cacheable {
		var cached []category.Category
		if found, err := r.cache.Get(ctx, categoryListKey, &cached); err == nil && found {
			// The cache holds the whole list; honor the caller's page size
			total := int64(len(cached))
			if filter.Limit > 0 && filter.Limit < len(cached) {
				cached = cached[:filter.Limit]
			}
			return cached, total, nil
		}
	}

	query := `
        SELECT id, name, slug, created_at, updated_at
        FROM categories
        ORDER BY name ASC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var cat category.Category
		err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.Slug,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating categories: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	if cacheable && int64(len(categories)) == total {
		r.cache.Set(ctx, categoryListKey, categories, cacheTTL)
	}

	return categories, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// books.category_id is ON DELETE SET NULL; referencing books survive
	query := `DELETE FROM categories WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.cache.Delete(ctx, categoryListKey)

	return nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check name existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
