package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book data-access contract. All read paths return rows
// joined with author and category names.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetBySlug(ctx context.Context, slug string) (*Book, error)
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
