package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// CreateActivityTypeInput defines the data required to add a type to the
// catalogue.
type CreateActivityTypeInput struct {
	Name        string
	Weight      int
	Icon        string
	Description string
}

// UpdateActivityTypeInput defines the mutable activity type fields. Nil
// fields are left unchanged.
type UpdateActivityTypeInput struct {
	Name        *string
	Weight      *int
	Icon        *string
	Description *string
}

// ActivityTypeUsecase defines the interface for activity type catalogue
// operations.
type ActivityTypeUsecase interface {
	CreateActivityType(ctx context.Context, input CreateActivityTypeInput) (*entity.ActivityType, error)
	ListActivityTypes(ctx context.Context) ([]*entity.ActivityType, error)
	GetActivityType(ctx context.Context, id int64) (*entity.ActivityType, error)
	UpdateActivityType(ctx context.Context, id int64, input UpdateActivityTypeInput) (*entity.ActivityType, error)
	DeleteActivityType(ctx context.Context, id int64) error
}
