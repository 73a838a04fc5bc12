package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityTypeHandler holds dependencies for activity type catalogue handlers.
type ActivityTypeHandler struct {
	uc     usecase.ActivityTypeUsecase
	logger *slog.Logger
}

// NewActivityTypeHandler is the constructor for ActivityTypeHandler, injected by Fx.
func NewActivityTypeHandler(uc usecase.ActivityTypeUsecase, logger *slog.Logger) *ActivityTypeHandler {
	return &ActivityTypeHandler{
		uc:     uc,
		logger: logger,
	}
}

type createActivityTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Weight      int    `json:"weight" validate:"required,gt=0"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CreateActivityType adds a new type to the catalogue.
func (h *ActivityTypeHandler) CreateActivityType(c echo.Context) error {
	var req createActivityTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activityType, err := h.uc.CreateActivityType(c.Request().Context(), usecase.CreateActivityTypeInput{
		Name:        req.Name,
		Weight:      req.Weight,
		Icon:        req.Icon,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activityType, "Activity type created successfully")
}

// ListActivityTypes returns the whole catalogue.
func (h *ActivityTypeHandler) ListActivityTypes(c echo.Context) error {
	types, err := h.uc.ListActivityTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "")
}

// GetActivityType returns one type by ID.
func (h *ActivityTypeHandler) GetActivityType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity type ID")
	}

	activityType, err := h.uc.GetActivityType(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityType, "")
}

type updateActivityTypeRequest struct {
	Name        *string `json:"name"`
	Weight      *int    `json:"weight" validate:"omitempty,gt=0"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

// UpdateActivityType applies a partial update.
func (h *ActivityTypeHandler) UpdateActivityType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity type ID")
	}

	var req updateActivityTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activityType, err := h.uc.UpdateActivityType(c.Request().Context(), id, usecase.UpdateActivityTypeInput{
		Name:        req.Name,
		Weight:      req.Weight,
		Icon:        req.Icon,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityType, "Activity type updated successfully")
}

// DeleteActivityType removes a type from the catalogue.
func (h *ActivityTypeHandler) DeleteActivityType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity type ID")
	}

	if err := h.uc.DeleteActivityType(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity type deleted successfully")
}
