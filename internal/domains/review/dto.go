package review

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxContentLength = 2000
)

// CreateReviewRequest - POST /v1/books/slug/:slug/reviews
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be between 1 and 5"),
			validation.Max(MaxRating).Error("rating must be between 1 and 5"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, MaxContentLength),
		),
	)
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	BookID    uuid.UUID `json:"book_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReviewResult carries the stored review plus the detail page the
// client should return to.
type CreateReviewResult struct {
	Review   *ReviewResponse `json:"review"`
	Redirect string          `json:"redirect"`
}

func (r Review) ToResponse() *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
