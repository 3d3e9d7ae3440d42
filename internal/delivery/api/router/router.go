// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/router/handler"
	"wastetrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TruckHandler        *handler.TruckHandler
	RouteHandler        *handler.RouteHandler
	ResidentHandler     *handler.ResidentHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	truckHandler        *handler.TruckHandler
	routeHandler        *handler.RouteHandler
	residentHandler     *handler.ResidentHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		truckHandler:        params.TruckHandler,
		routeHandler:        params.RouteHandler,
		residentHandler:     params.ResidentHandler,
		notificationHandler: params.NotificationHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", handler.Me)

	collectorOnly := r.authMiddleware.RequireRole(entity.RoleCollector)

	trucksGroup := apiV1.Group("/trucks")
	{
		trucksGroup.GET("", r.truckHandler.ListActive)
		trucksGroup.GET("/:id", r.truckHandler.GetStatus)
		trucksGroup.POST("/:id/position", r.truckHandler.UpdatePosition, collectorOnly)
		trucksGroup.POST("/:id/start", r.truckHandler.StartCollecting, collectorOnly)
		trucksGroup.POST("/:id/stop", r.truckHandler.StopCollecting, collectorOnly)
		trucksGroup.POST("/:id/full", r.truckHandler.MarkFull, collectorOnly)
	}

	routesGroup := apiV1.Group("/routes")
	routesGroup.Use(collectorOnly)
	{
		routesGroup.GET("/today", r.routeHandler.GetTodayRoute)
		routesGroup.GET("/today/geojson", r.routeHandler.GetTodayRouteGeoJSON)
		routesGroup.GET("/status", r.routeHandler.GetRouteStatus)
		routesGroup.POST("/complete", r.routeHandler.CompleteStop)
		routesGroup.POST("/skip", r.routeHandler.SkipStop)
	}

	residentGroup := apiV1.Group("/resident")
	residentGroup.Use(r.authMiddleware.RequireRole(entity.RoleResident))
	{
		residentGroup.POST("/proximity", r.residentHandler.CheckProximity)
		residentGroup.POST("/schedule", r.residentHandler.CheckSchedule)
		residentGroup.POST("/reports/check", r.residentHandler.CheckReports)
		residentGroup.POST("/init", r.residentHandler.Initialize)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Delete)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/broadcast/collection-started", r.adminHandler.BroadcastCollectionStarted)
		adminGroup.POST("/sweep", r.adminHandler.Sweep)
	}
}
