package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/infrastructure/mirror"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/logger"
)

const mirrorTimeout = 5 * time.Second

type authorService struct {
	repo   author.Repository
	mirror mirror.Mirror
}

// NewAuthorService wires the repository and the document mirror. The mirror
// is only touched on delete, to drop documents of cascade-deleted books.
func NewAuthorService(repo author.Repository, m mirror.Mirror) author.Service {
	return &authorService{
		repo:   repo,
		mirror: m,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, author.ErrInvalidName
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, author.ErrInvalidBirthDate
		}
		birthDate = &parsed
	}

	// Slug is assigned once, at first save
	slug := utils.GenerateSlug(name)
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, author.ErrDuplicateSlug
	}

	newAuthor := &author.Author{
		Name:      name,
		Slug:      slug,
		Bio:       req.Bio,
		BirthDate: birthDate,
	}

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*author.Author, int, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, 0, author.ErrAuthorNotFound
	}

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, 0, err
	}

	bookCount, err := s.repo.GetBookCount(ctx, a.ID)
	if err != nil {
		return nil, 0, err
	}

	return a, bookCount, nil
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.GetAll(ctx, filter)
}

// Delete removes the author and, via the schema, all of the author's books.
// Mirror documents of those books are removed first, best-effort: a mirror
// failure never blocks the relational delete.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrAuthorNotFound
	}

	slugs, err := s.repo.ListBookSlugs(ctx, id)
	if err != nil {
		return err
	}

	for _, slug := range slugs {
		mirrorCtx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		if err := s.mirror.Remove(mirrorCtx, slug); err != nil {
			logger.Warn("mirror remove failed for book "+slug, err)
		}
		cancel()
	}

	return s.repo.Delete(ctx, id)
}
