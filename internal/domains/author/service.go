package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the author business-logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, int, error)
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
