package impl

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

type activityTypeService struct {
	typeRepo repository.ActivityTypeRepository
}

// NewActivityTypeService creates a new activity type service instance
func NewActivityTypeService(typeRepo repository.ActivityTypeRepository) usecase.ActivityTypeUsecase {
	return &activityTypeService{
		typeRepo: typeRepo,
	}
}

// CreateActivityType adds a new type to the catalogue.
func (s *activityTypeService) CreateActivityType(ctx context.Context, input usecase.CreateActivityTypeInput) (*entity.ActivityType, error) {
	activityType := &entity.ActivityType{
		Name:        input.Name,
		Weight:      input.Weight,
		Icon:        input.Icon,
		Description: input.Description,
	}

	if err := s.typeRepo.Create(ctx, activityType); err != nil {
		return nil, err
	}

	return activityType, nil
}

// ListActivityTypes returns the whole catalogue.
func (s *activityTypeService) ListActivityTypes(ctx context.Context) ([]*entity.ActivityType, error) {
	types, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity types")
	}

	return types, nil
}

// GetActivityType returns one type by ID.
func (s *activityTypeService) GetActivityType(ctx context.Context, id int64) (*entity.ActivityType, error) {
	activityType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, domainerrors.ErrActivityTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to get activity type")
	}

	return activityType, nil
}

// UpdateActivityType applies a partial update. Changing the weight does not
// retroactively rescore existing activity records; only future creations,
// mutations and deletions use the new weight.
func (s *activityTypeService) UpdateActivityType(ctx context.Context, id int64, input usecase.UpdateActivityTypeInput) (*entity.ActivityType, error) {
	activityType, err := s.GetActivityType(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		activityType.Name = *input.Name
	}
	if input.Weight != nil {
		activityType.Weight = *input.Weight
	}
	if input.Icon != nil {
		activityType.Icon = *input.Icon
	}
	if input.Description != nil {
		activityType.Description = *input.Description
	}

	if err := s.typeRepo.Update(ctx, activityType); err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, domainerrors.ErrActivityTypeNotFound
		}

		return nil, err
	}

	return activityType, nil
}

// DeleteActivityType removes a type from the catalogue.
func (s *activityTypeService) DeleteActivityType(ctx context.Context, id int64) error {
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return domainerrors.ErrActivityTypeNotFound
		}

		return err
	}

	return nil
}
