package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MinNameLength = 2
	MaxNameLength = 50
)

// CreateCategoryRequest - POST /v1/categories
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, MaxNameLength),
		),
	)
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (cat Category) ToResponse() *CategoryResponse {
	return &CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Slug:      cat.Slug,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}
