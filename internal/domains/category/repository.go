package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the category data-access contract.
type Repository interface {
	Create(ctx context.Context, cat *Category) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetAll(ctx context.Context, filter CategoryFilter) ([]Category, int64, error)

	// Delete removes the category; the schema sets referencing books'
	// category to NULL instead of deleting them.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
