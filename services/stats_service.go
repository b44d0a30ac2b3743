package services

import (
	"context"
	"errors"
	"fmt"

	"inkpost/dto"
	"inkpost/repositories"
)

// StatsService assembles the admin dashboard and public counters from
// count/aggregate queries over non-deleted documents.
type StatsService struct {
	blogs      BlogStore
	users      UserStore
	categories CategoryStore
}

func NewStatsService(blogs BlogStore, users UserStore, categories CategoryStore) *StatsService {
	return &StatsService{blogs: blogs, users: users, categories: categories}
}

func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	totalBlogs, err := s.blogs.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}
	totalUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalLikes, err := s.blogs.SumLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum likes: %w", err)
	}
	totalViews, err := s.blogs.SumViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}
	monthly, err := s.blogs.MonthlyViews(ctx, 12)
	if err != nil {
		return nil, fmt.Errorf("monthly views: %w", err)
	}

	return &dto.DashboardStatsDTO{
		Followers:    totalUsers,
		Posts:        totalBlogs,
		Likes:        totalLikes,
		Views:        totalViews,
		MonthlyStats: monthly,
	}, nil
}

func (s *StatsService) Basic(ctx context.Context) (*dto.BasicStatsDTO, error) {
	totalUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalBlogs, err := s.blogs.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}
	return &dto.BasicStatsDTO{TotalUsers: totalUsers, TotalPosts: totalBlogs}, nil
}

// RecentPosts returns the five newest non-deleted blogs trimmed down to
// dashboard rows.
func (s *StatsService) RecentPosts(ctx context.Context) ([]dto.RecentPostDTO, error) {
	blogs, err := s.blogs.RecentActive(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("recent blogs: %w", err)
	}
	out := make([]dto.RecentPostDTO, 0, len(blogs))
	for _, b := range blogs {
		row := dto.RecentPostDTO{
			ID:           b.ID.Hex(),
			Title:        b.Title,
			Image:        b.Image,
			CommentCount: len(b.Comments),
			CreatedAt:    b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if b.CategoryID != nil {
			c, err := s.categories.FindByID(ctx, *b.CategoryID)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("expand category: %w", err)
			}
			if c != nil {
				d := dto.NewCategoryDTO(*c)
				row.Category = &d
			}
		}
		out = append(out, row)
	}
	return out, nil
}
