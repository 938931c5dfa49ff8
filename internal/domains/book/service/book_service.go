package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/infrastructure/mirror"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/logger"
)

const mirrorTimeout = 5 * time.Second

type bookService struct {
	repo   book.Repository
	mirror mirror.Mirror
}

func NewBookService(repo book.Repository, m mirror.Mirror) book.Service {
	return &bookService{
		repo:   repo,
		mirror: m,
	}
}

// Create runs in three named steps: validate, persist, mirror. Only the
// first two can fail the request.
func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, book.MirrorStatus, error) {
	b, err := s.validateCreate(ctx, req)
	if err != nil {
		return nil, book.MirrorSkipped, err
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, book.MirrorSkipped, err
	}

	status := s.mirrorUpsert(ctx, created)

	return created, status, nil
}

func (s *bookService) validateCreate(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.AuthorID == uuid.Nil {
		return nil, book.ErrAuthorNotFound
	}

	pubDate, err := time.Parse("2006-01-02", req.PublicationDate)
	if err != nil {
		return nil, book.ErrInvalidPublicationDate
	}

	// The slug is derived from the title exactly once, here. Later title
	// edits never touch it.
	slug := utils.GenerateSlug(req.Title)

	if exists, err := s.repo.ExistsBySlug(ctx, slug); err != nil {
		return nil, err
	} else if exists {
		return nil, book.ErrDuplicateSlug
	}

	if exists, err := s.repo.ExistsByISBN(ctx, req.ISBN); err != nil {
		return nil, err
	} else if exists {
		return nil, book.ErrDuplicateISBN
	}

	return &book.Book{
		Title:           req.Title,
		ISBN:            req.ISBN,
		Slug:            slug,
		PublicationDate: pubDate,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
	}, nil
}

func (s *bookService) Update(ctx context.Context, slug string, req *book.UpdateBookRequest) (*book.Book, book.MirrorStatus, error) {
	if err := req.Validate(); err != nil {
		return nil, book.MirrorSkipped, err
	}

	current, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, book.MirrorSkipped, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.ISBN != nil {
		current.ISBN = *req.ISBN
	}
	if req.PublicationDate != nil {
		pubDate, err := time.Parse("2006-01-02", *req.PublicationDate)
		if err != nil {
			return nil, book.MirrorSkipped, book.ErrInvalidPublicationDate
		}
		current.PublicationDate = pubDate
	}
	if req.AuthorID != nil {
		if *req.AuthorID == uuid.Nil {
			return nil, book.MirrorSkipped, book.ErrAuthorNotFound
		}
		current.AuthorID = *req.AuthorID
	}
	if req.CategoryID != nil {
		current.CategoryID = req.CategoryID
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, book.MirrorSkipped, err
	}

	status := s.mirrorUpsert(ctx, updated)

	return updated, status, nil
}

func (s *bookService) Delete(ctx context.Context, slug string) error {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	// Mirror document goes first so the store never serves a book the
	// catalog no longer has. A failed removal is logged and ignored.
	if s.mirror.Enabled() {
		mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		defer cancel()
		if err := s.mirror.Remove(mirrorCtx, b.Slug); err != nil {
			logger.Warn("failed to remove book document from mirror", err)
		}
	}

	return s.repo.Delete(ctx, b.ID)
}

func (s *bookService) GetBySlug(ctx context.Context, slug string) (*book.Book, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *bookService) ListMirror(ctx context.Context) ([]mirror.BookDocument, error) {
	mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
	defer cancel()
	return s.mirror.List(mirrorCtx)
}

func (s *bookService) mirrorUpsert(ctx context.Context, b *book.Book) book.MirrorStatus {
	if !s.mirror.Enabled() {
		return book.MirrorSkipped
	}

	mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
	defer cancel()

	if err := s.mirror.Upsert(mirrorCtx, b.ToDocument()); err != nil {
		logger.Warn("failed to mirror book document", err)
		return book.MirrorFailed
	}

	return book.MirrorSynced
}
