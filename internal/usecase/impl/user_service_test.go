package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	mockRepo "tracker/internal/mocks/repository"
	mockSvc "tracker/internal/mocks/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewUserService(userRepo, txManager, hasher, tokens)

	return svc, userRepo, txManager, factory, hasher, tokens
}

func activeUser() *entity.User {
	return &entity.User{
		ID:            7,
		Email:         "ada@example.com",
		Name:          "Ada",
		PasswordHash:  "$2a$10$hash",
		Role:          entity.RoleSalesRep,
		AccountStatus: entity.AccountActive,
		Score:         50,
	}
}

func TestUserService_Login_Success(t *testing.T) {
	svc, userRepo, _, _, hasher, tokens := createTestUserService(t)
	ctx := context.Background()
	user := activeUser()

	userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$10$hash", "secret-password").Return(nil)
	tokens.EXPECT().IssueToken(user).Return("signed-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, int64(7), out.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()
	user := activeUser()

	userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	hasher.EXPECT().Compare("$2a$10$hash", "wrong").Return(errors.New("password mismatch"))

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)

	// Same answer as an unknown email: the response must not reveal which.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	svc, userRepo, _, _, _, _ := createTestUserService(t)
	ctx := context.Background()

	user := activeUser()
	user.AccountStatus = entity.AccountInactive

	userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret-password"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_CreateUser_Success(t *testing.T) {
	svc, _, txManager, factory, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)

	hasher.EXPECT().Hash("secret-password").Return("$2a$10$newhash", nil)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 11
		}).
		Return(nil)

	user, err := svc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "new@example.com",
		Name:     "New Rep",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "$2a$10$newhash", user.PasswordHash)
	assert.Equal(t, entity.RoleSalesRep, user.Role)
	assert.Equal(t, entity.AccountActive, user.AccountStatus)
	assert.False(t, user.Presence.IsOnline())
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, _, txManager, factory, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)

	hasher.EXPECT().Hash("secret-password").Return("$2a$10$newhash", nil)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(activeUser(), nil)

	_, err := svc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "ada@example.com",
		Name:     "Imposter",
		Password: "secret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, userRepo, _, _, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(activeUser(), nil)
	hasher.EXPECT().Hash("rotated-password").Return("$2a$10$rotated", nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	password := "rotated-password"
	name := "Ada L."
	user, err := svc.UpdateUser(ctx, 7, usecase.UpdateUserInput{
		Name:     &name,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
	assert.Equal(t, "$2a$10$rotated", user.PasswordHash)
}

func TestUserService_DeleteUser_SoftDeletes(t *testing.T) {
	svc, userRepo, _, _, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(activeUser(), nil)

	var saved *entity.User
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			saved = user
		}).
		Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, 7))
	require.NotNil(t, saved)
	assert.Equal(t, entity.AccountDeleted, saved.AccountStatus)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo, _, _, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetUser(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
