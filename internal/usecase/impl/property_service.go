package impl

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo repository.PropertyRepository) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
	}
}

// CreateProperty registers a new property.
func (s *propertyService) CreateProperty(ctx context.Context, input usecase.CreatePropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// ListProperties returns the whole property catalogue.
func (s *propertyService) ListProperties(ctx context.Context) ([]*entity.Property, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// GetProperty returns one property by ID.
func (s *propertyService) GetProperty(ctx context.Context, id int64) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to get property")
	}

	return property, nil
}

// UpdateProperty applies a partial property update.
func (s *propertyService) UpdateProperty(ctx context.Context, id int64, input usecase.UpdatePropertyInput) (*entity.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Latitude != nil {
		property.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		property.Longitude = *input.Longitude
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, err
	}

	return property, nil
}

// DeleteProperty removes a property from the catalogue.
func (s *propertyService) DeleteProperty(ctx context.Context, id int64) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return err
	}

	return nil
}
