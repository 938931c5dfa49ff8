package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's opinion of one book. The (user, book) pair is
// unique; a second submission is a conflict, not an edit.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	UserEmail string `json:"user_email,omitempty"`
}
