package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/realtime"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserActivityHandler holds dependencies for the activity feed handlers.
type UserActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewUserActivityHandler is the constructor for UserActivityHandler, injected by Fx.
func NewUserActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *UserActivityHandler {
	return &UserActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

func activityViews(activities []*entity.UserActivity) []realtime.ActivityPayload {
	views := make([]realtime.ActivityPayload, 0, len(activities))
	for _, activity := range activities {
		views = append(views, realtime.NewActivityPayload(activity))
	}

	return views
}

type createActivityRequest struct {
	PropertyID     int64    `json:"propertyId" validate:"required,gt=0"`
	ActivityTypeID int64    `json:"activityTypeId" validate:"required,gt=0"`
	Note           string   `json:"note"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// CreateActivity logs an activity for the authenticated user.
func (h *UserActivityHandler) CreateActivity(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.uc.CreateActivity(c.Request().Context(), usecase.CreateActivityInput{
		ActorID:        middleware.UserID(c),
		PropertyID:     req.PropertyID,
		ActivityTypeID: req.ActivityTypeID,
		Note:           req.Note,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, realtime.NewActivityPayload(activity), "Activity logged successfully")
}

// ListActivities returns the shared activity feed, optionally filtered by
// user, type or date range.
func (h *UserActivityHandler) ListActivities(c echo.Context) error {
	input := usecase.ListActivitiesInput{}

	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid userId filter")
		}
		input.Filters.UserID = &id
	}
	if raw := c.QueryParam("activityTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid activityTypeId filter")
		}
		input.Filters.ActivityTypeID = &id
	}
	if raw := c.QueryParam("dateFrom"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid dateFrom filter")
		}
		input.Filters.DateFrom = &t
	}
	if raw := c.QueryParam("dateTo"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid dateTo filter")
		}
		input.Filters.DateTo = &t
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_FILTER", "Invalid limit")
		}
		input.Limit = limit
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityViews(activities), "")
}

// ListMyActivities returns the authenticated user's own records.
func (h *UserActivityHandler) ListMyActivities(c echo.Context) error {
	actorID := middleware.UserID(c)

	activities, err := h.uc.ListActivities(c.Request().Context(), usecase.ListActivitiesInput{
		Filters: entity.ActivityFilters{UserID: &actorID},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityViews(activities), "")
}

// GetActivity returns one record with its joined snapshots.
func (h *UserActivityHandler) GetActivity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	activity, err := h.uc.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, realtime.NewActivityPayload(activity), "")
}

type updateActivityRequest struct {
	PropertyID     *int64  `json:"propertyId" validate:"omitempty,gt=0"`
	ActivityTypeID *int64  `json:"activityTypeId" validate:"omitempty,gt=0"`
	Note           *string `json:"note"`
}

// UpdateActivity mutates a record the authenticated user owns.
func (h *UserActivityHandler) UpdateActivity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.uc.UpdateActivity(c.Request().Context(), id, usecase.UpdateActivityInput{
		ActorID:        middleware.UserID(c),
		ActorRole:      middleware.UserRole(c),
		PropertyID:     req.PropertyID,
		ActivityTypeID: req.ActivityTypeID,
		Note:           req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, realtime.NewActivityPayload(activity), "Activity updated successfully")
}

// DeleteActivity removes a record the authenticated user owns.
func (h *UserActivityHandler) DeleteActivity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	if err := h.uc.DeleteActivity(c.Request().Context(), id, middleware.UserID(c), middleware.UserRole(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity deleted successfully")
}
