// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CreateUserInput defines the data required to create a new user account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput defines the mutable account fields. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// UpdateProfileInput defines the fields a user may change on their own
// account.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListPublicUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*entity.User, error)
	SetAccountStatus(ctx context.Context, id int64, status entity.AccountStatus) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
