// Package impl provides the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// Login authenticates a user by email and password and issues an access
// token. Every failure mode collapses into invalid-credentials so the
// response never reveals whether the account exists.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

// CreateUser registers a new account. The unique-email check and the insert
// run in one transaction so concurrent registrations cannot race past the
// check.
func (s *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	role := input.Role
	if role == "" {
		role = entity.RoleSalesRep
	}

	// The zero Presence reads as OFFLINE with no watermark.
	user := &entity.User{
		Email:         input.Email,
		Name:          input.Name,
		PasswordHash:  passwordHash,
		Role:          role,
		AccountStatus: entity.AccountActive,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns every non-deleted account.
func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListPublicUsers returns the active sales reps visible to everyone.
func (s *userService) ListPublicUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public users")
	}

	return users, nil
}

// GetUser returns one account by ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// UpdateUser applies an admin-side account update.
func (s *userService) UpdateUser(ctx context.Context, id int64, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil {
		passwordHash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		user.PasswordHash = passwordHash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies the self-service subset of an account update.
func (s *userService) UpdateProfile(ctx context.Context, id int64, input usecase.UpdateProfileInput) (*entity.User, error) {
	return s.UpdateUser(ctx, id, usecase.UpdateUserInput{
		Name:     input.Name,
		Password: input.Password,
	})
}

// SetAccountStatus flips the administrative account state.
func (s *userService) SetAccountStatus(ctx context.Context, id int64, status entity.AccountStatus) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.AccountStatus = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser soft-deletes an account. The row and its activity history stay
// behind for scores and dashboards.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.SetAccountStatus(ctx, id, entity.AccountDeleted)

	return err
}
