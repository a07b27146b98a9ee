// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"prepmap/internal/delivery/http/middleware"
	"prepmap/internal/delivery/http/router/handler"
	"prepmap/internal/domain/service"
	"prepmap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MapHandler      *handler.MapHandler
	FacilityHandler *handler.FacilityHandler
	SessionHandler  *handler.SessionHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Collector `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler      *handler.MapHandler
	facilityHandler *handler.FacilityHandler
	sessionHandler  *handler.SessionHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:      params.MapHandler,
		facilityHandler: params.FacilityHandler,
		sessionHandler:  params.SessionHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Map and region selection
	api.GET("/regions", r.mapHandler.ListRegions)
	api.GET("/regions/:id", r.mapHandler.GetRegion)
	api.GET("/regions/:id/map.svg", r.mapHandler.RenderRegion)
	api.GET("/map.svg", r.mapHandler.RenderMap)
	api.GET("/hit", r.mapHandler.HitTest)

	// Facility directory
	api.GET("/facilities", r.facilityHandler.ListFacilities)
	api.GET("/facilities/:id/contact.png", r.facilityHandler.ContactQR)

	// Interactive session
	api.GET("/session", r.sessionHandler.Connect)

	// Maintenance routes require an admin token
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(service.RoleAdmin))
	{
		adminGroup.POST("/seed", r.adminHandler.Seed)
	}
}
