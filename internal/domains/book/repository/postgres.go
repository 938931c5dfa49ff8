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

	"catalog-backend/internal/domains/book"
	"catalog-backend/pkg/cache"
)

const (
	bookSlugKeyPrefix = "book:slug:"
	bookListPattern   = "books:list:*"
	cacheTTL          = 15 * time.Minute
)

const bookColumns = `
        b.id, b.title, b.isbn, b.slug, b.publication_date,
        b.author_id, b.category_id, b.created_at, b.updated_at,
        a.name AS author_name, c.name AS category_name
`

const bookJoins = `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        LEFT JOIN categories c ON c.id = b.category_id
`

// postgresRepository implements book.Repository with read-through caching
// on the slug lookup.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.ISBN,
		&b.Slug,
		&b.PublicationDate,
		&b.AuthorID,
		&b.CategoryID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.AuthorName,
		&b.CategoryName,
	)
}

func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "isbn") {
				return book.ErrDuplicateISBN
			}
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return book.ErrDuplicateSlug
			}
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "author") {
				return book.ErrAuthorNotFound
			}
			if strings.Contains(pgErr.ConstraintName, "category") {
				return book.ErrCategoryNotFound
			}
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, isbn, slug, publication_date, author_id, category_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `

	created := *b
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.ISBN,
		b.Slug,
		b.PublicationDate,
		b.AuthorID,
		b.CategoryID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if translated := translateWriteError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidateListCache(ctx)

	// Re-read through the joins so author/category names are populated
	return r.GetByID(ctx, created.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + bookJoins + ` WHERE b.id = $1`

	var b book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*book.Book, error) {
	cacheKey := bookSlugKeyPrefix + slug

	var b book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `SELECT ` + bookColumns + bookJoins + ` WHERE b.slug = $1`

	if err := scanBook(r.pool.QueryRow(ctx, query, slug), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by slug: %w", err)
	}

	r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + bookColumns + bookJoins + ` WHERE 1=1`)

	var condBuilder strings.Builder
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		condBuilder.WriteString(fmt.Sprintf(" AND b.title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.AuthorID != nil {
		condBuilder.WriteString(fmt.Sprintf(" AND b.author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}
	if filter.CategoryID != nil {
		condBuilder.WriteString(fmt.Sprintf(" AND b.category_id = $%d", argPos))
		args = append(args, *filter.CategoryID)
		argPos++
	}

	queryBuilder.WriteString(condBuilder.String())
	queryBuilder.WriteString(" ORDER BY b.title ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	listArgs := append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM books b WHERE 1=1` + condBuilder.String()

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	// Slug deliberately absent from the SET list: it is fixed at creation
	query := `
        UPDATE books
        SET title = $1,
            isbn = $2,
            publication_date = $3,
            author_id = $4,
            category_id = $5,
            updated_at = NOW()
        WHERE id = $6
    `

	cmdTag, err := r.pool.Exec(
		ctx,
		query,
		b.Title,
		b.ISBN,
		b.PublicationDate,
		b.AuthorID,
		b.CategoryID,
		b.ID,
	)

	if err != nil {
		if translated := translateWriteError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, book.ErrBookNotFound
	}

	r.cache.Delete(ctx, bookSlugKeyPrefix+b.Slug)
	r.invalidateListCache(ctx)

	return r.GetByID(ctx, b.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM books WHERE id = $1`, id).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		return fmt.Errorf("failed to load book for delete: %w", err)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.cache.Delete(ctx, bookSlugKeyPrefix+slug)
	r.invalidateListCache(ctx)

	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, bookListPattern)
}
