package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inkpost/apperrors"
	"inkpost/dto"
	"inkpost/models"
	"inkpost/repositories"
)

// CategoryService is flat reference-data CRUD. Categories are hard-deleted;
// blogs keep dangling references unexpanded.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("Category name is required")
	}
	taken, err := s.categories.ExistsName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict("This category already exists")
	}
	c := &models.Category{Name: name}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	d := dto.NewCategoryDTO(*c)
	return &d, nil
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	id, err := parseObjectID(categoryID, "category id")
	if err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Category not found")
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
