package dto

import "inkpost/models"

// DashboardStatsDTO is the admin dashboard payload.
type DashboardStatsDTO struct {
	Followers    int64                 `json:"followers"`
	Posts        int64                 `json:"posts"`
	Likes        int64                 `json:"likes"`
	Views        int64                 `json:"views"`
	MonthlyStats []models.MonthlyViews `json:"monthly_stats"`
}

// BasicStatsDTO is the public counters payload.
type BasicStatsDTO struct {
	TotalUsers int64 `json:"total_users"`
	TotalPosts int64 `json:"total_posts"`
}

// RecentPostDTO is a trimmed blog row for the dashboard.
type RecentPostDTO struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Image        string       `json:"image"`
	Category     *CategoryDTO `json:"category,omitempty"`
	CommentCount int          `json:"comment_count"`
	CreatedAt    string       `json:"created_at"`
}

// VisitorSummaryDTO is the admin visitor listing.
type VisitorSummaryDTO struct {
	TotalVisits    int64            `json:"total_visits"`
	UniqueVisitors int64            `json:"unique_visitors"`
	Visitors       []models.Visitor `json:"visitors"`
}

// VisitorStatsDTO holds rolling visit counters.
type VisitorStatsDTO struct {
	Last24Hours int64 `json:"last_24_hours"`
	Total       int64 `json:"total"`
}
