package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	mockRepo "tracker/internal/mocks/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDashboardService(t *testing.T) (
	usecase.DashboardUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockPropertyRepository,
	*mockRepo.MockUserActivityRepository,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	activityRepo := mockRepo.NewMockUserActivityRepository(t)

	svc := NewDashboardService(userRepo, propertyRepo, activityRepo)

	return svc, userRepo, propertyRepo, activityRepo
}

func TestDashboardService_GetStats_AggregatesCounts(t *testing.T) {
	svc, userRepo, propertyRepo, activityRepo := createTestDashboardService(t)
	ctx := context.Background()

	recent := []*entity.UserActivity{
		{ID: 42, UserID: 7},
		{ID: 41, UserID: 9},
	}

	userRepo.EXPECT().CountAll(ctx).Return(int64(12), nil)
	userRepo.EXPECT().CountOnline(ctx).Return(int64(3), nil)
	activityRepo.EXPECT().CountAll(ctx).Return(int64(240), nil)
	propertyRepo.EXPECT().CountAll(ctx).Return(int64(30), nil)
	activityRepo.EXPECT().FindRecent(ctx, 10).Return(recent, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.OnlineUsers)
	assert.Equal(t, int64(240), stats.TotalActivities)
	assert.Equal(t, int64(30), stats.TotalProperties)
	assert.Len(t, stats.RecentActivities, 2)
}

func TestDashboardService_GetStats_CountFailurePropagates(t *testing.T) {
	svc, userRepo, _, _ := createTestDashboardService(t)
	ctx := context.Background()

	userRepo.EXPECT().CountAll(ctx).Return(int64(0), errors.New("connection refused"))

	_, err := svc.GetStats(ctx)
	require.Error(t, err)
}

func TestDashboardService_GetLeaderboard_ReturnsTopReps(t *testing.T) {
	svc, userRepo, _, _ := createTestDashboardService(t)
	ctx := context.Background()

	userRepo.EXPECT().Leaderboard(ctx, 20).Return([]*entity.LeaderboardEntry{
		{ID: 7, Name: "Ada", Score: 120, ActivitiesCount: 40},
		{ID: 9, Name: "Grace", Score: 80, ActivitiesCount: 25},
	}, nil)

	entries, err := svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ada", entries[0].Name)
}
