package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// CreatePropertyInput defines the data required to register a property.
type CreatePropertyInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// UpdatePropertyInput defines the mutable property fields. Nil fields are
// left unchanged.
type UpdatePropertyInput struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// PropertyUsecase defines the interface for property catalogue operations.
type PropertyUsecase interface {
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*entity.Property, error)
	ListProperties(ctx context.Context) ([]*entity.Property, error)
	GetProperty(ctx context.Context, id int64) (*entity.Property, error)
	UpdateProperty(ctx context.Context, id int64, input UpdatePropertyInput) (*entity.Property, error)
	DeleteProperty(ctx context.Context, id int64) error
}
