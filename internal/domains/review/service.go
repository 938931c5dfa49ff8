package review

import (
	"context"

	"github.com/google/uuid"
)

// Service is the review business-logic contract. Create resolves the book
// by slug and returns the detail path the client should land on.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, bookSlug string, req *CreateReviewRequest) (*Review, string, error)
	GetByBookSlug(ctx context.Context, bookSlug string) ([]Review, error)
}
