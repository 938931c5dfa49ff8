package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MinTitleLength = 1
	MaxTitleLength = 200
)

// MirrorStatus reports what happened to the document-store copy of a book
// after a successful relational write. It is informational: a failed mirror
// never fails the request.
type MirrorStatus string

const (
	MirrorSynced  MirrorStatus = "synced"
	MirrorSkipped MirrorStatus = "skipped"
	MirrorFailed  MirrorStatus = "failed"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title           string     `json:"title"`
	ISBN            string     `json:"isbn"`
	PublicationDate string     `json:"publication_date"` // YYYY-MM-DD
	AuthorID        uuid.UUID  `json:"author_id"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(MinTitleLength, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			is.ISBN.Error("invalid isbn"),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication date is required"),
			validation.Date("2006-01-02").Error("publication date must be YYYY-MM-DD"),
		),
	)
}

// UpdateBookRequest - PUT /v1/books/slug/:slug
// Nil fields are left unchanged. The slug is never regenerated.
type UpdateBookRequest struct {
	Title           *string    `json:"title,omitempty"`
	ISBN            *string    `json:"isbn,omitempty"`
	PublicationDate *string    `json:"publication_date,omitempty"`
	AuthorID        *uuid.UUID `json:"author_id,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Length(MinTitleLength, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			is.ISBN.Error("invalid isbn"),
		),
		validation.Field(&r.PublicationDate,
			validation.Date("2006-01-02").Error("publication date must be YYYY-MM-DD"),
		),
	)
}

type BookResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	ISBN            string     `json:"isbn"`
	Slug            string     `json:"slug"`
	PublicationDate string     `json:"publication_date"`
	AuthorID        uuid.UUID  `json:"author_id"`
	AuthorName      string     `json:"author_name"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	CategoryName    *string    `json:"category_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BookWriteResponse is a write result plus the observed mirror outcome.
type BookWriteResponse struct {
	Book   *BookResponse `json:"book"`
	Mirror MirrorStatus  `json:"mirror"`
}

// BookFilter - query parameters for listing
type BookFilter struct {
	Search     string     `form:"search"`
	AuthorID   *uuid.UUID `form:"-"`
	CategoryID *uuid.UUID `form:"-"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

func (b Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		Slug:            b.Slug,
		PublicationDate: b.PublicationDate.Format("2006-01-02"),
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName,
		CategoryID:      b.CategoryID,
		CategoryName:    b.CategoryName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
