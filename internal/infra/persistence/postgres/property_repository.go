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

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create persists a new property.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindByID retrieves a property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id int64) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindAll retrieves every property, newest first.
func (repo *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

// Update modifies an existing property.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Updates(map[string]interface{}{
			"name":      property.Name,
			"address":   property.Address,
			"latitude":  property.Latitude,
			"longitude": property.Longitude,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property.
func (repo *propertyRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("property still has activity records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// CountAll counts all properties.
func (repo *propertyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count properties")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
