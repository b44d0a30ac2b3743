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

// TagService is flat reference-data CRUD, mirroring CategoryService.
type TagService struct {
	tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) Create(ctx context.Context, name string) (*dto.TagDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("Tag name is required")
	}
	taken, err := s.tags.ExistsName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check tag: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict("This tag already exists")
	}
	t := &models.Tag{Name: name}
	if err := s.tags.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	d := dto.NewTagDTO(*t)
	return &d, nil
}

func (s *TagService) List(ctx context.Context) ([]dto.TagDTO, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	out := make([]dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.NewTagDTO(t))
	}
	return out, nil
}

func (s *TagService) Delete(ctx context.Context, tagID string) error {
	id, err := parseObjectID(tagID, "tag id")
	if err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Tag not found")
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
