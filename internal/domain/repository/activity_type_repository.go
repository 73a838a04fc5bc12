package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrActivityTypeNotFound is returned when an activity type is not found.
var ErrActivityTypeNotFound = errors.New("activity type not found")

// ActivityTypeRepository defines the standard operations for the activity
// type catalogue.
type ActivityTypeRepository interface {
	Create(ctx context.Context, activityType *entity.ActivityType) error

	FindByID(ctx context.Context, id int64) (*entity.ActivityType, error)

	FindAll(ctx context.Context) ([]*entity.ActivityType, error)

	Update(ctx context.Context, activityType *entity.ActivityType) error

	Delete(ctx context.Context, id int64) error
}
