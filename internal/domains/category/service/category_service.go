package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/utils"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, category.ErrInvalidName
	}

	// Surface duplicates as typed conflicts before hitting the constraint
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, category.ErrDuplicateName
	}

	slug := utils.GenerateSlug(name)
	exists, err = s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, category.ErrDuplicateSlug
	}

	return s.repo.Create(ctx, &category.Category{
		Name: name,
		Slug: slug,
	})
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, category.ErrCategoryNotFound
	}

	return s.repo.GetBySlug(ctx, slug)
}

func (s *categoryService) GetAll(ctx context.Context, filter category.CategoryFilter) ([]category.Category, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return category.ErrCategoryNotFound
	}

	return s.repo.Delete(ctx, id)
}
