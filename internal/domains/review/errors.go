package review

import "errors"

var (
	// Validation errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// Business rule errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this book")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrReviewNotFound):
		return "REVIEW_NOT_FOUND"
	case errors.Is(err, ErrAlreadyReviewed):
		return "ALREADY_REVIEWED"
	case errors.Is(err, ErrInvalidRating):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrReviewNotFound):
		return 404
	case errors.Is(err, ErrAlreadyReviewed):
		return 409
	case errors.Is(err, ErrInvalidRating):
		return 400
	default:
		return 500
	}
}
