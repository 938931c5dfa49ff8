package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
)

// RegisterRequest - POST /v1/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength).Error("password must be between 8 and 72 characters"),
		),
	)
}

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Provider  *string   `json:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
}

func (u User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
	}
}
