package category

import "errors"

var (
	ErrInvalidName = errors.New("category name is invalid")

	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("category with this name already exists")
	ErrDuplicateSlug    = errors.New("category with this slug already exists")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrDuplicateName):
		return "DUPLICATE_NAME"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrInvalidName):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return 404
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrInvalidName):
		return 400
	default:
		return 500
	}
}
