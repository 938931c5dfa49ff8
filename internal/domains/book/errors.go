package book

import "errors"

var (
	// Validation errors
	ErrInvalidTitle           = errors.New("book title is invalid")
	ErrInvalidISBN            = errors.New("book isbn is invalid")
	ErrInvalidPublicationDate = errors.New("book publication date is invalid")

	// Business rule errors
	ErrBookNotFound     = errors.New("book not found")
	ErrDuplicateISBN    = errors.New("book with this isbn already exists")
	ErrDuplicateSlug    = errors.New("book with this slug already exists")
	ErrAuthorNotFound   = errors.New("referenced author not found")
	ErrCategoryNotFound = errors.New("referenced category not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidISBN), errors.Is(err, ErrInvalidPublicationDate):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateISBN), errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrCategoryNotFound):
		return 400
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidISBN), errors.Is(err, ErrInvalidPublicationDate):
		return 400
	default:
		return 500
	}
}
