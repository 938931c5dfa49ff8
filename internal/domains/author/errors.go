package author

import "errors"

var (
	// Validation errors
	ErrInvalidName      = errors.New("author name is invalid")
	ErrInvalidBirthDate = errors.New("author birth date is invalid")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateSlug  = errors.New("author with this slug already exists")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidBirthDate):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidBirthDate):
		return 400
	default:
		return 500
	}
}
