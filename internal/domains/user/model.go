package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a catalog account. PasswordHash is nil for accounts created by
// an external identity provider; those accounts cannot use password login.
type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	PasswordHash    *string    `json:"-"`
	Provider        *string    `json:"provider,omitempty"`
	ProviderSubject *string    `json:"-"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
