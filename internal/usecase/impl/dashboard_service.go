package impl

import (
	"context"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

const (
	recentActivitiesCount = 10
	leaderboardSize       = 20
)

type dashboardService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	activityRepo repository.UserActivityRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	activityRepo repository.UserActivityRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		activityRepo: activityRepo,
	}
}

// GetStats assembles the dashboard landing snapshot.
func (s *dashboardService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	onlineUsers, err := s.userRepo.CountOnline(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count online users")
	}

	totalActivities, err := s.activityRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count activities")
	}

	totalProperties, err := s.propertyRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count properties")
	}

	recent, err := s.activityRepo.FindRecent(ctx, recentActivitiesCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent activities")
	}

	return &usecase.DashboardStats{
		TotalUsers:       totalUsers,
		OnlineUsers:      onlineUsers,
		TotalActivities:  totalActivities,
		TotalProperties:  totalProperties,
		RecentActivities: recent,
	}, nil
}

// GetLeaderboard returns the top sales reps by score.
func (s *dashboardService) GetLeaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	entries, err := s.userRepo.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	return entries, nil
}
