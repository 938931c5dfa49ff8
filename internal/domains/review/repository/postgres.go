package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/review"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, rev *review.Review) (*review.Review, error) {
	query := `
        INSERT INTO reviews (user_id, book_id, rating, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

	created := *rev
	err := r.pool.QueryRow(
		ctx,
		query,
		rev.UserID,
		rev.BookID,
		rev.Rating,
		rev.Content,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// The unique (user_id, book_id) index is the source of truth for
		// duplicates; a racing insert loses here, not in the service.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, review.ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByBook(ctx context.Context, bookID uuid.UUID) ([]review.Review, error) {
	query := `
        SELECT r.id, r.user_id, r.book_id, r.rating, r.content,
               r.created_at, r.updated_at, u.email AS user_email
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE r.book_id = $1
        ORDER BY r.created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.Review
	for rows.Next() {
		var rev review.Review
		if err := rows.Scan(
			&rev.ID,
			&rev.UserID,
			&rev.BookID,
			&rev.Rating,
			&rev.Content,
			&rev.CreatedAt,
			&rev.UpdatedAt,
			&rev.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND book_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return exists, nil
}
