package impl

import (
	"context"
	"fmt"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/realtime"
	"tracker/internal/usecase"
)

type activityService struct {
	activityRepo repository.UserActivityRepository
	propertyRepo repository.PropertyRepository
	typeRepo     repository.ActivityTypeRepository
	txManager    repository.TransactionManager
	bus          *realtime.EventBus
	logger       *slog.Logger

	scoreThreshold   int
	highImpactWeight int
	maxQueryLimit    int
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	activityRepo repository.UserActivityRepository,
	propertyRepo repository.PropertyRepository,
	typeRepo repository.ActivityTypeRepository,
	txManager repository.TransactionManager,
	bus *realtime.EventBus,
	logger *slog.Logger,
	cfg *config.RealtimeConfig,
) usecase.ActivityUsecase {
	return &activityService{
		activityRepo:     activityRepo,
		propertyRepo:     propertyRepo,
		typeRepo:         typeRepo,
		txManager:        txManager,
		bus:              bus,
		logger:           logger,
		scoreThreshold:   cfg.ScoreThreshold,
		highImpactWeight: cfg.HighImpactWeight,
		maxQueryLimit:    cfg.MaxQueryLimit,
	}
}

// CreateActivity logs a new activity for the actor. The record insert and the
// actor's score increment commit in one transaction; afterwards the record is
// broadcast live and achievement notifications fire off the post-increment
// score.
func (s *activityService) CreateActivity(ctx context.Context, input usecase.CreateActivityInput) (*entity.UserActivity, error) {
	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to validate property reference")
	}

	activityType, err := s.typeRepo.FindByID(ctx, input.ActivityTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, domainerrors.ErrActivityTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to validate activity type reference")
	}

	activity := &entity.UserActivity{
		UserID:         input.ActorID,
		PropertyID:     input.PropertyID,
		ActivityTypeID: input.ActivityTypeID,
		Note:           input.Note,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
	}

	var newScore int
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ActivityRepo().Create(ctx, activity); err != nil {
			return err
		}

		score, err := factory.UserRepo().IncrementScore(ctx, input.ActorID, activityType.Weight)
		if err != nil {
			return err
		}
		newScore = score

		return nil
	})
	if err != nil {
		return nil, err
	}

	full, err := s.activityRepo.FindByID(ctx, activity.ID)
	if err != nil {
		// The record committed; serve it without snapshots rather than fail.
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to reload created activity",
			slog.Int64("activityID", activity.ID),
			slog.String("error", err.Error()),
		)
		full = activity
	}

	s.bus.Broadcast(ctx, realtime.NewLiveActivity(full))
	s.notifyAchievements(ctx, full, activityType, newScore)

	return full, nil
}

// notifyAchievements fires the milestone notification exactly when this
// activity pushed the score across the threshold, and the high-impact
// notification whenever the single activity's weight reaches the cutoff. The
// two checks are independent.
func (s *activityService) notifyAchievements(ctx context.Context, activity *entity.UserActivity, activityType *entity.ActivityType, newScore int) {
	actorName := fmt.Sprintf("user %d", activity.UserID)
	if activity.Actor != nil {
		actorName = activity.Actor.Name
	}

	oldScore := newScore - activityType.Weight
	if oldScore < s.scoreThreshold && newScore >= s.scoreThreshold {
		s.bus.Broadcast(ctx, realtime.Notification{
			Type:    realtime.NotificationMilestone,
			Message: fmt.Sprintf("%s reached %d points!", actorName, newScore),
			Data: map[string]any{
				"userId": activity.UserID,
				"score":  newScore,
			},
		})
	}

	if activityType.Weight >= s.highImpactWeight {
		s.bus.Broadcast(ctx, realtime.Notification{
			Type:    realtime.NotificationHighImpact,
			Message: fmt.Sprintf("%s logged a high-impact activity: %s", actorName, activityType.Name),
			Data: map[string]any{
				"userId":     activity.UserID,
				"activityId": activity.ID,
				"weight":     activityType.Weight,
			},
		})
	}
}

// ListActivities returns the activity feed, newest first, capped at the
// configured query limit.
func (s *activityService) ListActivities(ctx context.Context, input usecase.ListActivitiesInput) ([]*entity.UserActivity, error) {
	limit := input.Limit
	if limit <= 0 || limit > s.maxQueryLimit {
		limit = s.maxQueryLimit
	}

	activities, err := s.activityRepo.FindWithFilters(ctx, input.Filters, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// GetActivity returns one record with its joined snapshots.
func (s *activityService) GetActivity(ctx context.Context, id int64) (*entity.UserActivity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to get activity")
	}

	return activity, nil
}

// UpdateActivity mutates a record the actor owns. Changing the activity type
// applies the weight difference to the owner's score as one atomic
// adjustment; the stored score is never recomputed from scratch. Updates do
// not re-broadcast the record.
func (s *activityService) UpdateActivity(ctx context.Context, id int64, input usecase.UpdateActivityInput) (*entity.UserActivity, error) {
	existing, err := s.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.UserID != input.ActorID && input.ActorRole != entity.RoleAdmin {
		return nil, domainerrors.ErrActivityOwnership
	}

	oldWeight := 0
	if existing.Type != nil {
		oldWeight = existing.Type.Weight
	}
	newWeight := oldWeight

	updated := *existing
	if input.PropertyID != nil && *input.PropertyID != existing.PropertyID {
		if _, err := s.propertyRepo.FindByID(ctx, *input.PropertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return nil, domainerrors.ErrPropertyNotFound
			}

			return nil, errors.Wrap(err, "failed to validate property reference")
		}
		updated.PropertyID = *input.PropertyID
	}
	if input.ActivityTypeID != nil && *input.ActivityTypeID != existing.ActivityTypeID {
		newType, err := s.typeRepo.FindByID(ctx, *input.ActivityTypeID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityTypeNotFound) {
				return nil, domainerrors.ErrActivityTypeNotFound
			}

			return nil, errors.Wrap(err, "failed to validate activity type reference")
		}
		updated.ActivityTypeID = newType.ID
		newWeight = newType.Weight
	}
	if input.Note != nil {
		updated.Note = *input.Note
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ActivityRepo().Update(ctx, &updated); err != nil {
			return err
		}

		if delta := newWeight - oldWeight; delta != 0 {
			if _, err := factory.UserRepo().IncrementScore(ctx, existing.UserID, delta); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetActivity(ctx, id)
}

// DeleteActivity removes a record the actor owns and atomically takes its
// weight back off the owner's score.
func (s *activityService) DeleteActivity(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error {
	existing, err := s.GetActivity(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != actorID && actorRole != entity.RoleAdmin {
		return domainerrors.ErrActivityOwnership
	}

	weight := 0
	if existing.Type != nil {
		weight = existing.Type.Weight
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.ActivityRepo().Delete(ctx, id); err != nil {
			return err
		}

		if weight != 0 {
			if _, err := factory.UserRepo().IncrementScore(ctx, existing.UserID, -weight); err != nil {
				return err
			}
		}

		return nil
	})
}
