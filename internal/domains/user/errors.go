package user

import "errors"

var (
	// Validation errors
	ErrInvalidEmail    = errors.New("email is invalid")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")

	// Business rule errors
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailTaken               = errors.New("email is already registered")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrPasswordLoginUnavailable = errors.New("password login is not available for this account")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrEmailTaken):
		return "EMAIL_TAKEN"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrPasswordLoginUnavailable):
		return "PASSWORD_LOGIN_UNAVAILABLE"
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrEmailTaken):
		return 409
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrPasswordLoginUnavailable):
		return 401
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword):
		return 400
	default:
		return 500
	}
}
