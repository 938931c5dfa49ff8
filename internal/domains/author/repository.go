package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the author data-access contract.
type Repository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, error)
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Delete removes the author; the schema cascades the delete to the
	// author's books.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	GetBookCount(ctx context.Context, authorID uuid.UUID) (int, error)

	// ListBookSlugs returns the slugs of the author's books, used to clean
	// up mirror documents before a cascading delete.
	ListBookSlugs(ctx context.Context, authorID uuid.UUID) ([]string, error)
}
