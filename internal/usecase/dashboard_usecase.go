package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// DashboardStats is the aggregate snapshot shown on the dashboard landing
// page.
type DashboardStats struct {
	TotalUsers       int64
	OnlineUsers      int64
	TotalActivities  int64
	TotalProperties  int64
	RecentActivities []*entity.UserActivity
}

// DashboardUsecase defines the interface for dashboard read models.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetLeaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}
