package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines the standard operations for property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error

	FindByID(ctx context.Context, id int64) (*entity.Property, error)

	FindAll(ctx context.Context) ([]*entity.Property, error)

	Update(ctx context.Context, property *entity.Property) error

	Delete(ctx context.Context, id int64) error

	// CountAll counts all properties.
	CountAll(ctx context.Context) (int64, error)
}
