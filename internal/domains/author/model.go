package author

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Slug      string     `json:"slug" db:"slug"`
	Bio       *string    `json:"bio" db:"bio"`
	BirthDate *time.Time `json:"birth_date" db:"birth_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

func (a *Author) HasBio() bool {
	return a.Bio != nil && *a.Bio != ""
}
