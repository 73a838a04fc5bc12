package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityTypeRepository implements the repository.ActivityTypeRepository interface.
type activityTypeRepository struct {
	db *gorm.DB
}

// NewActivityTypeRepository is the constructor for activityTypeRepository.
func NewActivityTypeRepository(db *gorm.DB) repository.ActivityTypeRepository {
	return &activityTypeRepository{
		db: db,
	}
}

// Create persists a new activity type.
func (repo *activityTypeRepository) Create(ctx context.Context, activityType *entity.ActivityType) error {
	typeM := fromActivityTypeDomain(activityType)

	if err := repo.db.WithContext(ctx).Create(typeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("activity type name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity type information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity type")
	}

	activityType.ID = typeM.ID
	activityType.CreatedAt = typeM.CreatedAt
	activityType.UpdatedAt = typeM.UpdatedAt

	return nil
}

// FindByID retrieves an activity type by its unique ID.
func (repo *activityTypeRepository) FindByID(ctx context.Context, id int64) (*entity.ActivityType, error) {
	var typeM model.ActivityTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity type by ID")
	}

	return toActivityTypeDomain(&typeM), nil
}

// FindAll retrieves the whole activity type catalogue ordered by weight.
func (repo *activityTypeRepository) FindAll(ctx context.Context) ([]*entity.ActivityType, error) {
	var typeModels []*model.ActivityTypeModel

	if err := repo.db.WithContext(ctx).
		Order("weight DESC").
		Find(&typeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity types")
	}

	types := make([]*entity.ActivityType, 0, len(typeModels))
	for _, typeM := range typeModels {
		types = append(types, toActivityTypeDomain(typeM))
	}

	return types, nil
}

// Update modifies an existing activity type.
func (repo *activityTypeRepository) Update(ctx context.Context, activityType *entity.ActivityType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityTypeModel{}).
		Where("id = ?", activityType.ID).
		Updates(map[string]interface{}{
			"name":        activityType.Name,
			"weight":      activityType.Weight,
			"icon":        activityType.Icon,
			"description": activityType.Description,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("activity type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityTypeNotFound
	}

	return nil
}

// Delete removes an activity type.
func (repo *activityTypeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ActivityTypeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("activity type still has activity records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toActivityTypeDomain converts a GORM ActivityTypeModel to a domain ActivityType entity.
func toActivityTypeDomain(data *model.ActivityTypeModel) *entity.ActivityType {
	if data == nil {
		return nil
	}

	return &entity.ActivityType{
		ID:          data.ID,
		Name:        data.Name,
		Weight:      data.Weight,
		Icon:        data.Icon,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromActivityTypeDomain converts a domain ActivityType entity to a GORM ActivityTypeModel.
func fromActivityTypeDomain(data *entity.ActivityType) *model.ActivityTypeModel {
	if data == nil {
		return nil
	}

	return &model.ActivityTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Weight:      data.Weight,
		Icon:        data.Icon,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
