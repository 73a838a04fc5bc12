// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single non-deleted user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all non-deleted users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindPublic retrieves all active, non-admin users.
	FindPublic(ctx context.Context) ([]*entity.User, error)

	// FindOnline retrieves all users whose durable presence status is ONLINE.
	FindOnline(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePresence sets the durable presence status (and the offline
	// watermark, when present) for a user.
	UpdatePresence(ctx context.Context, id int64, presence entity.Presence) error

	// IncrementScore atomically adjusts a user's score by delta at the store
	// and returns the post-increment value. It is never a read-modify-write.
	IncrementScore(ctx context.Context, id int64, delta int) (int, error)

	// Leaderboard returns the top sales reps by score with activity counts.
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)

	// CountAll counts all non-deleted users.
	CountAll(ctx context.Context) (int64, error)

	// CountOnline counts users whose durable presence status is ONLINE.
	CountOnline(ctx context.Context) (int64, error)
}
