package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MinNameLength = 2
	MaxNameLength = 255
	MaxBioLength  = 5000
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"` // YYYY-MM-DD
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength).Error("bio too long"),
		),
		validation.Field(&r.BirthDate,
			validation.Date("2006-01-02").Error("birth date must be YYYY-MM-DD"),
		),
	)
}

// AuthorResponse - basic author information
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Bio       *string   `json:"bio,omitempty"`
	BirthDate *string   `json:"birth_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorDetailResponse adds aggregated data to the detail view.
type AuthorDetailResponse struct {
	AuthorResponse
	BookCount int `json:"book_count"`
}

// AuthorFilter - query parameters for listing
type AuthorFilter struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (a Author) ToResponse() *AuthorResponse {
	resp := &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.BirthDate != nil {
		birth := a.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birth
	}
	return resp
}

func (a *Author) ToDetailResponse(bookCount int) *AuthorDetailResponse {
	return &AuthorDetailResponse{
		AuthorResponse: *a.ToResponse(),
		BookCount:      bookCount,
	}
}
