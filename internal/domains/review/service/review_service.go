package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/review"
)

type reviewService struct {
	repo     review.Repository
	bookRepo book.Repository
}

func NewReviewService(repo review.Repository, bookRepo book.Repository) review.Service {
	return &reviewService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, bookSlug string, req *review.CreateReviewRequest) (*review.Review, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	if req.Rating < review.MinRating || req.Rating > review.MaxRating {
		return nil, "", review.ErrInvalidRating
	}

	b, err := s.bookRepo.GetBySlug(ctx, bookSlug)
	if err != nil {
		return nil, "", err
	}

	// Friendly pre-check; the unique index still catches racers.
	if exists, err := s.repo.ExistsByUserAndBook(ctx, userID, b.ID); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", review.ErrAlreadyReviewed
	}

	created, err := s.repo.Create(ctx, &review.Review{
		UserID:  userID,
		BookID:  b.ID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return nil, "", err
	}

	return created, "/api/v1/books/slug/" + b.Slug, nil
}

func (s *reviewService) GetByBookSlug(ctx context.Context, bookSlug string) ([]review.Review, error) {
	b, err := s.bookRepo.GetBySlug(ctx, bookSlug)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByBook(ctx, b.ID)
}
