package book

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/infrastructure/mirror"
)

// Service is the book business-logic contract. Writes report the mirror
// outcome alongside the result; the mirror never decides success.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, MirrorStatus, error)
	Update(ctx context.Context, slug string, req *UpdateBookRequest) (*Book, MirrorStatus, error)
	Delete(ctx context.Context, slug string) error
	GetBySlug(ctx context.Context, slug string) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)

	// ListMirror reads the book documents back from the document store.
	ListMirror(ctx context.Context) ([]mirror.BookDocument, error)
}
