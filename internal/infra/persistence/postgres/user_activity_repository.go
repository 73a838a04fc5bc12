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
)

// userActivityRepository implements the repository.UserActivityRepository interface.
type userActivityRepository struct {
	db *gorm.DB
}

// NewUserActivityRepository is the constructor for userActivityRepository.
func NewUserActivityRepository(db *gorm.DB) repository.UserActivityRepository {
	return &userActivityRepository{
		db: db,
	}
}

// withSnapshots preloads the actor, property and type rows every read query
// denormalizes onto the record.
func (repo *userActivityRepository) withSnapshots(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User").
		Preload("Property").
		Preload("ActivityType")
}

// Create persists a new activity record and fills in the generated values.
func (repo *userActivityRepository) Create(ctx context.Context, activity *entity.UserActivity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user, property or activity type reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// FindByID retrieves one record with its joined snapshots.
func (repo *userActivityRepository) FindByID(ctx context.Context, id int64) (*entity.UserActivity, error) {
	var activityM model.UserActivityModel

	if err := repo.withSnapshots(ctx).
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by ID")
	}

	return toActivityDomain(&activityM), nil
}

// FindWithFilters retrieves records matching the filters, newest first.
func (repo *userActivityRepository) FindWithFilters(ctx context.Context, filters entity.ActivityFilters, limit int) ([]*entity.UserActivity, error) {
	query := repo.withSnapshots(ctx).Order("created_at DESC")

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.ActivityTypeID != nil {
		query = query.Where("activity_type_id = ?", *filters.ActivityTypeID)
	}
	if filters.After != nil {
		query = query.Where("created_at > ?", *filters.After)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activityModels []*model.UserActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activities")
	}

	return toActivityDomainSlice(activityModels), nil
}

// FindCreatedAfter retrieves records created strictly after the watermark,
// oldest first. Replay depends on this ordering to preserve the original
// activity sequence.
func (repo *userActivityRepository) FindCreatedAfter(ctx context.Context, watermark time.Time, limit int) ([]*entity.UserActivity, error) {
	query := repo.withSnapshots(ctx).
		Where("created_at > ?", watermark).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var activityModels []*model.UserActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activities after watermark")
	}

	return toActivityDomainSlice(activityModels), nil
}

// FindRecent retrieves the most recent records, newest first.
func (repo *userActivityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.UserActivity, error) {
	query := repo.withSnapshots(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activityModels []*model.UserActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent activities")
	}

	return toActivityDomainSlice(activityModels), nil
}

// Update modifies the mutable fields of an existing record.
func (repo *userActivityRepository) Update(ctx context.Context, activity *entity.UserActivity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"property_id":      activity.PropertyID,
			"activity_type_id": activity.ActivityTypeID,
			"note":             activity.Note,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid property or activity type reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// Delete removes a record.
func (repo *userActivityRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserActivityModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// CountAll counts all activity records.
func (repo *userActivityRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserActivityModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count activities")
	}

	return count, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM UserActivityModel to a domain UserActivity
// entity, including whatever snapshots the query preloaded.
func toActivityDomain(data *model.UserActivityModel) *entity.UserActivity {
	if data == nil {
		return nil
	}

	activity := &entity.UserActivity{
		ID:             data.ID,
		UserID:         data.UserID,
		PropertyID:     data.PropertyID,
		ActivityTypeID: data.ActivityTypeID,
		Note:           data.Note,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.User != nil {
		activity.Actor = &entity.ActivityActor{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Email: data.User.Email,
			Score: data.User.Score,
		}
	}
	if data.Property != nil {
		activity.Property = &entity.ActivityProperty{
			ID:        data.Property.ID,
			Name:      data.Property.Name,
			Address:   data.Property.Address,
			Latitude:  data.Property.Latitude,
			Longitude: data.Property.Longitude,
		}
	}
	if data.ActivityType != nil {
		activity.Type = &entity.ActivityTypeInfo{
			ID:          data.ActivityType.ID,
			Name:        data.ActivityType.Name,
			Weight:      data.ActivityType.Weight,
			Icon:        data.ActivityType.Icon,
			Description: data.ActivityType.Description,
		}
	}

	return activity
}

func toActivityDomainSlice(models []*model.UserActivityModel) []*entity.UserActivity {
	activities := make([]*entity.UserActivity, 0, len(models))
	for _, activityM := range models {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities
}

// fromActivityDomain converts a domain UserActivity entity to a GORM
// UserActivityModel. Snapshots never travel back to the store.
func fromActivityDomain(data *entity.UserActivity) *model.UserActivityModel {
	if data == nil {
		return nil
	}

	return &model.UserActivityModel{
		ID:             data.ID,
		UserID:         data.UserID,
		PropertyID:     data.PropertyID,
		ActivityTypeID: data.ActivityTypeID,
		Note:           data.Note,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
