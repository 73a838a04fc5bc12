package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// CreateActivityInput defines the data required to log an activity. The
// actor is always the authenticated user.
type CreateActivityInput struct {
	ActorID        int64
	PropertyID     int64
	ActivityTypeID int64
	Note           string
	Latitude       *float64
	Longitude      *float64
}

// UpdateActivityInput defines the mutable activity fields. Nil fields are
// left unchanged. ActorID identifies who is asking; only the record's owner
// may mutate it.
type UpdateActivityInput struct {
	ActorID        int64
	ActorRole      entity.Role
	PropertyID     *int64
	ActivityTypeID *int64
	Note           *string
}

// ListActivitiesInput narrows the activity feed query.
type ListActivitiesInput struct {
	Filters entity.ActivityFilters
	Limit   int
}

// ActivityUsecase defines the interface for activity ingestion and querying.
// Create, update and delete carry the realtime side effects: score
// adjustment, live broadcast and achievement notifications.
type ActivityUsecase interface {
	CreateActivity(ctx context.Context, input CreateActivityInput) (*entity.UserActivity, error)
	ListActivities(ctx context.Context, input ListActivitiesInput) ([]*entity.UserActivity, error)
	GetActivity(ctx context.Context, id int64) (*entity.UserActivity, error)
	UpdateActivity(ctx context.Context, id int64, input UpdateActivityInput) (*entity.UserActivity, error)
	DeleteActivity(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error
}
