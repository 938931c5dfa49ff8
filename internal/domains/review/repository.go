package review

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Review) (*Review, error)
	GetByBook(ctx context.Context, bookID uuid.UUID) ([]Review, error)
	ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
}
