package category

import (
	"context"

	"github.com/google/uuid"
)

// Service is the category business-logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetAll(ctx context.Context, filter CategoryFilter) ([]Category, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
