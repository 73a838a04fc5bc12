package repository

import (
	"context"
	"errors"
	"time"

	"tracker/internal/domain/entity"
)

// ErrActivityNotFound is returned when an activity record is not found.
var ErrActivityNotFound = errors.New("activity not found")

// UserActivityRepository defines the standard operations for activity record
// persistence. Queries that return records populate the joined actor,
// property and type snapshots.
type UserActivityRepository interface {
	// Create persists a new activity record and fills in the generated ID and
	// timestamps.
	Create(ctx context.Context, activity *entity.UserActivity) error

	// FindByID retrieves one record with its joined snapshots.
	FindByID(ctx context.Context, id int64) (*entity.UserActivity, error)

	// FindWithFilters retrieves records matching the filters, newest first,
	// capped at limit.
	FindWithFilters(ctx context.Context, filters entity.ActivityFilters, limit int) ([]*entity.UserActivity, error)

	// FindCreatedAfter retrieves records created strictly after the
	// watermark, oldest first, capped at limit. This is the replay query.
	FindCreatedAfter(ctx context.Context, watermark time.Time, limit int) ([]*entity.UserActivity, error)

	// FindRecent retrieves the most recent records, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.UserActivity, error)

	// Update modifies the mutable fields of an existing record.
	Update(ctx context.Context, activity *entity.UserActivity) error

	// Delete removes a record.
	Delete(ctx context.Context, id int64) error

	// CountAll counts all activity records.
	CountAll(ctx context.Context) (int64, error)
}
