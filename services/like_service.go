package services

import (
	"context"
	"fmt"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/dto"
)

// LikeService owns the per-blog likes set and its denormalized counter. Both
// fields are mutated together inside the aggregate so likes_count can never
// drift from the set size.
type LikeService struct {
	blogs *BlogService
}

func NewLikeService(blogs *BlogService) *LikeService {
	return &LikeService{blogs: blogs}
}

// Toggle flips the caller's like on the blog and returns the new state.
// Calling it twice returns the aggregate to where it started.
func (s *LikeService) Toggle(ctx context.Context, p *auth.Principal, blogID string) (*dto.LikeStatusDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	liked := blog.ToggleLike(p.ID)
	if err := s.blogs.blogs.Replace(ctx, blog); err != nil {
		return nil, fmt.Errorf("persist blog: %w", err)
	}
	return &dto.LikeStatusDTO{Liked: liked, LikesCount: blog.LikesCount}, nil
}

// Status reads the caller's like state without side effects.
func (s *LikeService) Status(ctx context.Context, p *auth.Principal, blogID string) (*dto.LikeStatusDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.blogs.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStatusDTO{Liked: blog.LikedBy(p.ID), LikesCount: blog.LikesCount}, nil
}

// SumLikes totals likes_count across all non-deleted blogs; an empty set is
// 0, not an error.
func (s *LikeService) SumLikes(ctx context.Context) (int64, error) {
	total, err := s.blogs.blogs.SumLikes(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum likes: %w", err)
	}
	return total, nil
}
