// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/delivery/ws"
	"tracker/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PropertyHandler     *handler.PropertyHandler
	ActivityTypeHandler *handler.ActivityTypeHandler
	ActivityHandler     *handler.UserActivityHandler
	DashboardHandler    *handler.DashboardHandler
	WSHandler           *ws.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	propertyHandler     *handler.PropertyHandler
	activityTypeHandler *handler.ActivityTypeHandler
	activityHandler     *handler.UserActivityHandler
	dashboardHandler    *handler.DashboardHandler
	wsHandler           *ws.Handler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		propertyHandler:     params.PropertyHandler,
		activityTypeHandler: params.ActivityTypeHandler,
		activityHandler:     params.ActivityHandler,
		dashboardHandler:    params.DashboardHandler,
		wsHandler:           params.WSHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
	}

	// The websocket endpoint authenticates inside the realtime gateway, via
	// the connect-time token, not through the HTTP auth middleware.
	e.GET("/ws/activities", r.wsHandler.Handle)

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/public", r.userHandler.ListPublicUsers)
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)

		// Admin-only account management
		userGroup.POST("", r.userHandler.CreateUser, requireAdmin)
		userGroup.GET("", r.userHandler.ListUsers, requireAdmin)
		userGroup.GET("/:id", r.userHandler.GetUser, requireAdmin)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser, requireAdmin)
		userGroup.PATCH("/:id/status", r.userHandler.SetAccountStatus, requireAdmin)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, requireAdmin)
	}

	// Property catalogue: everyone authenticated reads, admins mutate
	propertyGroup := e.Group("/properties")
	propertyGroup.Use(r.authMiddleware.Authenticate)
	{
		propertyGroup.GET("", r.propertyHandler.ListProperties)
		propertyGroup.GET("/:id", r.propertyHandler.GetProperty)
		propertyGroup.POST("", r.propertyHandler.CreateProperty, requireAdmin)
		propertyGroup.PATCH("/:id", r.propertyHandler.UpdateProperty, requireAdmin)
		propertyGroup.DELETE("/:id", r.propertyHandler.DeleteProperty, requireAdmin)
	}

	// Activity type catalogue: everyone authenticated reads, admins mutate
	typeGroup := e.Group("/activity-types")
	typeGroup.Use(r.authMiddleware.Authenticate)
	{
		typeGroup.GET("", r.activityTypeHandler.ListActivityTypes)
		typeGroup.GET("/:id", r.activityTypeHandler.GetActivityType)
		typeGroup.POST("", r.activityTypeHandler.CreateActivityType, requireAdmin)
		typeGroup.PATCH("/:id", r.activityTypeHandler.UpdateActivityType, requireAdmin)
		typeGroup.DELETE("/:id", r.activityTypeHandler.DeleteActivityType, requireAdmin)
	}

	// Activity feed
	activityGroup := e.Group("/activities")
	activityGroup.Use(r.authMiddleware.Authenticate)
	{
		activityGroup.POST("", r.activityHandler.CreateActivity)
		activityGroup.GET("", r.activityHandler.ListActivities)
		activityGroup.GET("/mine", r.activityHandler.ListMyActivities)
		activityGroup.GET("/:id", r.activityHandler.GetActivity)
		activityGroup.PATCH("/:id", r.activityHandler.UpdateActivity)
		activityGroup.DELETE("/:id", r.activityHandler.DeleteActivity)
	}

	// Dashboard read models
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.GetStats)
		dashboardGroup.GET("/leaderboard", r.dashboardHandler.GetLeaderboard)
	}
}
