package book

import (
	"time"

	"github.com/google/uuid"

	"catalog-backend/internal/infrastructure/mirror"
)

type Book struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	ISBN            string     `json:"isbn" db:"isbn"`
	Slug            string     `json:"slug" db:"slug"`
	PublicationDate time.Time  `json:"publication_date" db:"publication_date"`
	AuthorID        uuid.UUID  `json:"author_id" db:"author_id"`
	CategoryID      *uuid.UUID `json:"category_id" db:"category_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	// Populated by joins on read paths
	AuthorName   string  `json:"author_name" db:"author_name"`
	CategoryName *string `json:"category_name" db:"category_name"`
}

// ToDocument builds the fixed projection pushed to the document store.
func (b *Book) ToDocument() mirror.BookDocument {
	return mirror.BookDocument{
		Title:           b.Title,
		Author:          b.AuthorName,
		Category:        b.CategoryName,
		PublicationDate: b.PublicationDate.Format("2006-01-02"),
		Slug:            b.Slug,
	}
}
