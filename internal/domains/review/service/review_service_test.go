package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/review"
)

type fakeBookRepo struct {
	book *book.Book
}

func (r *fakeBookRepo) GetBySlug(ctx context.Context, slug string) (*book.Book, error) {
	if r.book != nil && r.book.Slug == slug {
		return r.book, nil
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeBookRepo) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeBookRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}
func (r *fakeBookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return false, nil
}

type fakeReviewRepo struct {
	reviews []review.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev *review.Review) (*review.Review, error) {
	for _, existing := range r.reviews {
		if existing.UserID == rev.UserID && existing.BookID == rev.BookID {
			return nil, review.ErrAlreadyReviewed
		}
	}
	created := *rev
	created.ID = uuid.New()
	r.reviews = append(r.reviews, created)
	return &created, nil
}

func (r *fakeReviewRepo) GetByBook(ctx context.Context, bookID uuid.UUID) ([]review.Review, error) {
	var out []review.Review
	for _, rev := range r.reviews {
		if rev.BookID == bookID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	for _, rev := range r.reviews {
		if rev.UserID == userID && rev.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func testSetup() (review.Service, *book.Book) {
	b := &book.Book{
		ID:   uuid.New(),
		Slug: "cien-anos-de-soledad",
	}
	svc := NewReviewService(&fakeReviewRepo{}, &fakeBookRepo{book: b})
	return svc, b
}

func TestCreateReview(t *testing.T) {
	svc, b := testSetup()
	userID := uuid.New()

	rev, redirect, err := svc.Create(context.Background(), userID, b.Slug, &review.CreateReviewRequest{
		Rating:  5,
		Content: "A masterpiece.",
	})
	require.NoError(t, err)
	assert.Equal(t, b.ID, rev.BookID)
	assert.Equal(t, userID, rev.UserID)
	assert.Equal(t, "/api/v1/books/slug/cien-anos-de-soledad", redirect)
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	svc, b := testSetup()
	userID := uuid.New()

	_, _, err := svc.Create(context.Background(), userID, b.Slug, &review.CreateReviewRequest{Rating: 4, Content: "Worth reading."})
	require.NoError(t, err)

	_, _, err = svc.Create(context.Background(), userID, b.Slug, &review.CreateReviewRequest{Rating: 2, Content: "Worth reading."})
	assert.ErrorIs(t, err, review.ErrAlreadyReviewed)
}

func TestDifferentUsersCanReviewSameBook(t *testing.T) {
	svc, b := testSetup()

	_, _, err := svc.Create(context.Background(), uuid.New(), b.Slug, &review.CreateReviewRequest{Rating: 4, Content: "Worth reading."})
	require.NoError(t, err)

	_, _, err = svc.Create(context.Background(), uuid.New(), b.Slug, &review.CreateReviewRequest{Rating: 1, Content: "Worth reading."})
	assert.NoError(t, err)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, b := testSetup()

	for _, rating := range []int{-1, 0, 6, 100} {
		_, _, err := svc.Create(context.Background(), uuid.New(), b.Slug, &review.CreateReviewRequest{Rating: rating, Content: "Worth reading."})
		assert.Error(t, err, "rating %d should be rejected", rating)
	}

	for _, rating := range []int{1, 5} {
		_, _, err := svc.Create(context.Background(), uuid.New(), b.Slug, &review.CreateReviewRequest{Rating: rating, Content: "Worth reading."})
		assert.NoError(t, err, "rating %d should be accepted", rating)
	}
}

func TestCreateReviewUnknownBook(t *testing.T) {
	svc, _ := testSetup()

	_, _, err := svc.Create(context.Background(), uuid.New(), "missing", &review.CreateReviewRequest{Rating: 3, Content: "Worth reading."})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestGetByBookSlug(t *testing.T) {
	svc, b := testSetup()

	_, _, err := svc.Create(context.Background(), uuid.New(), b.Slug, &review.CreateReviewRequest{Rating: 4, Content: "Worth reading."})
	require.NoError(t, err)

	reviews, err := svc.GetByBookSlug(context.Background(), b.Slug)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
