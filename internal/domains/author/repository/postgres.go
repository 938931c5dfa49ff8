package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, slug, bio, birth_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, slug, bio, birth_date, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Slug,
		a.Bio,
		a.BirthDate,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Slug,
		&created.Bio,
		&created.BirthDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		// Translate the unique-violation race on slug
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return nil, author.ErrDuplicateSlug
			}
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, slug, bio, birth_date, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.BirthDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	query := `
        SELECT id, name, slug, bio, birth_date, created_at, updated_at
        FROM authors
        WHERE slug = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.BirthDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, slug, bio, birth_date, created_at, updated_at
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY name ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Slug,
			&a.Bio,
			&a.BirthDate,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM authors WHERE 1=1`
	countArgs := []interface{}{}

	if filter.Search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+filter.Search+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// books.author_id is ON DELETE CASCADE, so the author's books go with it
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) GetBookCount(ctx context.Context, authorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM books WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get book count: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) ListBookSlugs(ctx context.Context, authorID uuid.UUID) ([]string, error) {
	query := `SELECT slug FROM books WHERE author_id = $1`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan book slug: %w", err)
		}
		slugs = append(slugs, slug)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book slugs: %w", err)
	}

	return slugs, nil
}
