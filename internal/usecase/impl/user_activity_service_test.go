package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	mockRepo "tracker/internal/mocks/repository"
	"tracker/internal/realtime"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// busRecorder captures everything the service broadcasts.
type busRecorder struct {
	mu        sync.Mutex
	envelopes []realtime.Envelope
}

func (r *busRecorder) Send(envelope realtime.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.envelopes = append(r.envelopes, envelope)

	return nil
}

func (r *busRecorder) Close() {}

func (r *busRecorder) Events() []realtime.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]realtime.Envelope, len(r.envelopes))
	copy(out, r.envelopes)

	return out
}

type activityServiceMocks struct {
	activityRepo *mockRepo.MockUserActivityRepository
	propertyRepo *mockRepo.MockPropertyRepository
	typeRepo     *mockRepo.MockActivityTypeRepository
	userRepo     *mockRepo.MockUserRepository
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	sender       *busRecorder
}

// expectTransaction makes Execute run the transactional closure against the
// mock factory and propagate its error.
func (m *activityServiceMocks) expectTransaction() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func createTestActivityService(t *testing.T) (usecase.ActivityUsecase, *activityServiceMocks) {
	mocks := &activityServiceMocks{
		activityRepo: mockRepo.NewMockUserActivityRepository(t),
		propertyRepo: mockRepo.NewMockPropertyRepository(t),
		typeRepo:     mockRepo.NewMockActivityTypeRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		sender:       &busRecorder{},
	}

	registry := realtime.NewRegistry()
	registry.Add("conn-test", mocks.sender)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := realtime.NewEventBus(registry, logger)

	service := NewActivityService(
		mocks.activityRepo,
		mocks.propertyRepo,
		mocks.typeRepo,
		mocks.txManager,
		bus,
		logger,
		config.DefaultRealtimeConfig(),
	)

	return service, mocks
}

func visitType() *entity.ActivityType {
	return &entity.ActivityType{ID: 2, Name: "visit", Weight: 3}
}

func closingType() *entity.ActivityType {
	return &entity.ActivityType{ID: 5, Name: "closing", Weight: 8}
}

func testProperty() *entity.Property {
	return &entity.Property{ID: 3, Name: "Hilltop Duplex", Address: "12 Hill Rd"}
}

func createInput(typeID int64) usecase.CreateActivityInput {
	return usecase.CreateActivityInput{
		ActorID:        7,
		PropertyID:     3,
		ActivityTypeID: typeID,
		Note:           "spoke with owner",
	}
}

func TestActivityService_CreateActivity_BroadcastsLiveActivity(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(2)).Return(visitType(), nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserActivity")).
		Run(func(_ context.Context, activity *entity.UserActivity) {
			activity.ID = 42
		}).
		Return(nil)
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 3).Return(50, nil)

	full := &entity.UserActivity{
		ID:             42,
		UserID:         7,
		PropertyID:     3,
		ActivityTypeID: 2,
		Note:           "spoke with owner",
		Actor:          &entity.ActivityActor{ID: 7, Name: "Ada", Score: 50},
		Property:       &entity.ActivityProperty{ID: 3, Name: "Hilltop Duplex"},
		Type:           &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3},
	}
	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(full, nil)

	created, err := service.CreateActivity(ctx, createInput(2))
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Ada", created.Actor.Name)

	// Weight 3 at score 50: no milestone, no high-impact. Just the live feed.
	events := mocks.sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "live-activity", events[0].Event)

	live, ok := events[0].Data.(realtime.LiveActivity)
	require.True(t, ok)
	assert.Equal(t, "created", live.Type)
	assert.Equal(t, int64(42), live.ID)
}

func TestActivityService_CreateActivity_MilestoneAndHighImpact(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(5)).Return(closingType(), nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserActivity")).
		Run(func(_ context.Context, activity *entity.UserActivity) {
			activity.ID = 42
		}).
		Return(nil)

	// 92 + 8 crosses the 100-point threshold, and weight 8 is high-impact.
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 8).Return(100, nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.UserActivity{
		ID:     42,
		UserID: 7,
		Actor:  &entity.ActivityActor{ID: 7, Name: "Ada", Score: 100},
		Type:   &entity.ActivityTypeInfo{ID: 5, Name: "closing", Weight: 8},
	}, nil)

	_, err := service.CreateActivity(ctx, createInput(5))
	require.NoError(t, err)

	events := mocks.sender.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "live-activity", events[0].Event)
	assert.Equal(t, "notification", events[1].Event)
	assert.Equal(t, "notification", events[2].Event)

	milestone, ok := events[1].Data.(realtime.Notification)
	require.True(t, ok)
	assert.Equal(t, realtime.NotificationMilestone, milestone.Type)
	assert.Equal(t, "Ada reached 100 points!", milestone.Message)

	milestoneData, ok := milestone.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100, milestoneData["score"])

	highImpact, ok := events[2].Data.(realtime.Notification)
	require.True(t, ok)
	assert.Equal(t, realtime.NotificationHighImpact, highImpact.Type)

	highImpactData, ok := highImpact.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 8, highImpactData["weight"])
}

func TestActivityService_CreateActivity_MilestoneFiresOnlyOnCrossing(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(2)).Return(visitType(), nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserActivity")).
		Run(func(_ context.Context, activity *entity.UserActivity) {
			activity.ID = 43
		}).
		Return(nil)

	// 107 + 3: the threshold was crossed on an earlier activity, not this one.
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 3).Return(110, nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(43)).Return(&entity.UserActivity{
		ID:     43,
		UserID: 7,
		Type:   &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3},
	}, nil)

	_, err := service.CreateActivity(ctx, createInput(2))
	require.NoError(t, err)

	events := mocks.sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "live-activity", events[0].Event)
}

func TestActivityService_CreateActivity_HighImpactBelowThreshold(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	heavyType := &entity.ActivityType{ID: 6, Name: "contract", Weight: 10}

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(6)).Return(heavyType, nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserActivity")).
		Run(func(_ context.Context, activity *entity.UserActivity) {
			activity.ID = 44
		}).
		Return(nil)

	// Far from the milestone, but the single activity's weight qualifies.
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 10).Return(50, nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(44)).Return(&entity.UserActivity{
		ID:     44,
		UserID: 7,
		Type:   &entity.ActivityTypeInfo{ID: 6, Name: "contract", Weight: 10},
	}, nil)

	_, err := service.CreateActivity(ctx, createInput(6))
	require.NoError(t, err)

	events := mocks.sender.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "live-activity", events[0].Event)
	assert.Equal(t, "notification", events[1].Event)

	highImpact, ok := events[1].Data.(realtime.Notification)
	require.True(t, ok)
	assert.Equal(t, realtime.NotificationHighImpact, highImpact.Type)
}

func TestActivityService_CreateActivity_UnknownPropertyRejected(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrPropertyNotFound)

	_, err := service.CreateActivity(ctx, createInput(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
	assert.Empty(t, mocks.sender.Events())
}

func TestActivityService_CreateActivity_UnknownTypeRejected(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrActivityTypeNotFound)

	_, err := service.CreateActivity(ctx, createInput(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActivityTypeNotFound)
}

func TestActivityService_CreateActivity_ReloadFailureServesBareRecord(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.propertyRepo.EXPECT().FindByID(ctx, int64(3)).Return(testProperty(), nil)
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(2)).Return(visitType(), nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserActivity")).
		Run(func(_ context.Context, activity *entity.UserActivity) {
			activity.ID = 45
		}).
		Return(nil)
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 3).Return(53, nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(45)).
		Return(nil, repository.ErrActivityNotFound)

	created, err := service.CreateActivity(ctx, createInput(2))
	require.NoError(t, err)
	assert.Equal(t, int64(45), created.ID)
	assert.Nil(t, created.Actor)

	events := mocks.sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "live-activity", events[0].Event)
}

func TestActivityService_ListActivities_CapsLimit(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.activityRepo.EXPECT().FindWithFilters(ctx, entity.ActivityFilters{}, 1000).
		Return([]*entity.UserActivity{}, nil)

	_, err := service.ListActivities(ctx, usecase.ListActivitiesInput{Limit: 5000})
	require.NoError(t, err)
}

func TestActivityService_GetActivity_NotFound(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrActivityNotFound)

	_, err := service.GetActivity(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActivityNotFound)
}

func TestActivityService_UpdateActivity_OwnershipEnforced(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.UserActivity{
		ID:     42,
		UserID: 7,
	}, nil)

	note := "rewritten"
	_, err := service.UpdateActivity(ctx, 42, usecase.UpdateActivityInput{
		ActorID:   9,
		ActorRole: entity.RoleSalesRep,
		Note:      &note,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActivityOwnership)
}

func TestActivityService_UpdateActivity_AdminMayEditOthers(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	existing := &entity.UserActivity{
		ID:             42,
		UserID:         7,
		PropertyID:     3,
		ActivityTypeID: 2,
		Note:           "original",
		Type:           &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3},
	}
	updated := *existing
	updated.Note = "corrected by admin"

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil).Once()

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.activityRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.UserActivity")).Return(nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&updated, nil).Once()

	note := "corrected by admin"
	result, err := service.UpdateActivity(ctx, 42, usecase.UpdateActivityInput{
		ActorID:   9,
		ActorRole: entity.RoleAdmin,
		Note:      &note,
	})
	require.NoError(t, err)
	assert.Equal(t, "corrected by admin", result.Note)

	// A note-only update never touches the score and is never re-broadcast.
	assert.Empty(t, mocks.sender.Events())
}

func TestActivityService_UpdateActivity_TypeChangeAdjustsScore(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	existing := &entity.UserActivity{
		ID:             42,
		UserID:         7,
		PropertyID:     3,
		ActivityTypeID: 2,
		Type:           &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3},
	}
	updated := *existing
	updated.ActivityTypeID = 5
	updated.Type = &entity.ActivityTypeInfo{ID: 5, Name: "closing", Weight: 8}

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil).Once()
	mocks.typeRepo.EXPECT().FindByID(ctx, int64(5)).Return(closingType(), nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.UserActivity")).Return(nil)

	// Reclassifying visit (3) as closing (8) credits the difference.
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), 5).Return(55, nil)

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&updated, nil).Once()

	typeID := int64(5)
	result, err := service.UpdateActivity(ctx, 42, usecase.UpdateActivityInput{
		ActorID:        7,
		ActorRole:      entity.RoleSalesRep,
		ActivityTypeID: &typeID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ActivityTypeID)
}

func TestActivityService_DeleteActivity_RevokesWeight(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.UserActivity{
		ID:     42,
		UserID: 7,
		Type:   &entity.ActivityTypeInfo{ID: 2, Name: "visit", Weight: 3},
	}, nil)

	mocks.expectTransaction()
	mocks.factory.EXPECT().ActivityRepo().Return(mocks.activityRepo)
	mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)

	mocks.activityRepo.EXPECT().Delete(ctx, int64(42)).Return(nil)
	mocks.userRepo.EXPECT().IncrementScore(ctx, int64(7), -3).Return(47, nil)

	require.NoError(t, service.DeleteActivity(ctx, 42, 7, entity.RoleSalesRep))
	assert.Empty(t, mocks.sender.Events())
}

func TestActivityService_DeleteActivity_OwnershipEnforced(t *testing.T) {
	service, mocks := createTestActivityService(t)
	ctx := context.Background()

	mocks.activityRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.UserActivity{
		ID:     42,
		UserID: 7,
	}, nil)

	err := service.DeleteActivity(ctx, 42, 9, entity.RoleSalesRep)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActivityOwnership)
}
