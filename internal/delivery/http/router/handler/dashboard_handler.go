package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard read models.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats returns the dashboard landing snapshot.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"totalUsers":       stats.TotalUsers,
		"onlineUsers":      stats.OnlineUsers,
		"totalActivities":  stats.TotalActivities,
		"totalProperties":  stats.TotalProperties,
		"recentActivities": activityViews(stats.RecentActivities),
	}, "")
}

// GetLeaderboard returns the top sales reps by score.
func (h *DashboardHandler) GetLeaderboard(c echo.Context) error {
	entries, err := h.uc.GetLeaderboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		views = append(views, map[string]any{
			"id":              entry.ID,
			"name":            entry.Name,
			"email":           entry.Email,
			"score":           entry.Score,
			"activitiesCount": entry.ActivitiesCount,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}
