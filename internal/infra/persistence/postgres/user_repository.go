package postgres

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single non-deleted user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Where("account_status <> ?", string(entity.AccountDeleted)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves all non-deleted users.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("account_status <> ?", string(entity.AccountDeleted)).
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindPublic retrieves all active, non-admin users ordered by score.
func (repo *userRepository) FindPublic(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("account_status = ?", string(entity.AccountActive)).
		Where("role <> ?", string(entity.RoleAdmin)).
		Order("score DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find public users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindOnline retrieves all active users whose durable presence status is ONLINE.
func (repo *userRepository) FindOnline(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.StatusOnline)).
		Where("account_status = ?", string(entity.AccountActive)).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find online users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the profile fields of an existing user. Presence and score
// never travel through here; they have dedicated atomic operations.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":          user.Email,
			"name":           user.Name,
			"password_hash":  user.PasswordHash,
			"role":           string(user.Role),
			"account_status": string(user.AccountStatus),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePresence sets the durable presence status and the offline watermark.
// Going online clears last_seen so the watermark only ever describes a
// completed session.
func (repo *userRepository) UpdatePresence(ctx context.Context, id int64, presence entity.Presence) error {
	var lastSeen *time.Time
	if t, ok := presence.LastSeen(); ok {
		lastSeen = &t
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    string(presence.Status()),
			"last_seen": lastSeen,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update presence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// IncrementScore atomically adjusts a user's score by delta and returns the
// post-increment value. A single UPDATE ... RETURNING keeps concurrent
// adjustments from losing writes.
func (repo *userRepository) IncrementScore(ctx context.Context, id int64, delta int) (int, error) {
	var userM model.UserModel

	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "score"}}}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment score")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrUserNotFound
	}

	return userM.Score, nil
}

// Leaderboard returns the top active sales reps by score with their activity
// counts.
func (repo *userRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	var entries []*entity.LeaderboardEntry

	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("users.id, users.name, users.email, users.score, COUNT(user_activities.id) AS activities_count").
		Joins("LEFT JOIN user_activities ON user_activities.user_id = users.id").
		Where("users.role = ?", string(entity.RoleSalesRep)).
		Where("users.account_status = ?", string(entity.AccountActive)).
		Group("users.id").
		Order("users.score DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query leaderboard")
	}

	return entries, nil
}

// CountAll counts all non-deleted users.
func (repo *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("account_status <> ?", string(entity.AccountDeleted)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountOnline counts active users whose durable presence status is ONLINE.
func (repo *userRepository) CountOnline(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("status = ?", string(entity.StatusOnline)).
		Where("account_status = ?", string(entity.AccountActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count online users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		AccountStatus: entity.AccountStatus(data.AccountStatus),
		Score:         data.Score,
		Presence:      presenceFromModel(data.Status, data.LastSeen),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var lastSeen *time.Time
	if t, ok := data.Presence.LastSeen(); ok {
		lastSeen = &t
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		PasswordHash:  data.PasswordHash,
		Role:          string(data.Role),
		AccountStatus: string(data.AccountStatus),
		Score:         data.Score,
		Status:        string(data.Presence.Status()),
		LastSeen:      lastSeen,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func presenceFromModel(status string, lastSeen *time.Time) entity.Presence {
	if status == string(entity.StatusOnline) {
		return entity.Online()
	}

	if lastSeen != nil {
		return entity.OfflineSince(*lastSeen)
	}

	return entity.OfflineSince(time.Time{})
}
