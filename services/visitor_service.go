package services

import (
	"context"
	"fmt"
	"time"

	"inkpost/dto"
	"inkpost/models"
)

// VisitorService records and reports request-level analytics. Logging is
// best-effort; the middleware never fails a request over it.
type VisitorService struct {
	visitors VisitorStore
}

func NewVisitorService(visitors VisitorStore) *VisitorService {
	return &VisitorService{visitors: visitors}
}

// Log stores one visit row.
func (s *VisitorService) Log(ctx context.Context, ip, userAgent, path string) error {
	v := &models.Visitor{IP: ip, UserAgent: userAgent, Path: path, Date: time.Now()}
	if err := s.visitors.Insert(ctx, v); err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// Summary returns every visit plus total/unique counters, newest first.
func (s *VisitorService) Summary(ctx context.Context) (*dto.VisitorSummaryDTO, error) {
	visitors, err := s.visitors.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	unique, err := s.visitors.CountUniqueIPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unique ips: %w", err)
	}
	return &dto.VisitorSummaryDTO{
		TotalVisits:    int64(len(visitors)),
		UniqueVisitors: unique,
		Visitors:       visitors,
	}, nil
}

// Stats returns rolling visit counters.
func (s *VisitorService) Stats(ctx context.Context) (*dto.VisitorStatsDTO, error) {
	last24, err := s.visitors.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count last 24h: %w", err)
	}
	visitors, err := s.visitors.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	return &dto.VisitorStatsDTO{Last24Hours: last24, Total: int64(len(visitors))}, nil
}
