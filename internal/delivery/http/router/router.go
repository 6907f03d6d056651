// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"sprout/internal/delivery/http/middleware"
	"sprout/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	PlantHandler        *handler.PlantHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	plantHandler        *handler.PlantHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		plantHandler:        params.PlantHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Authentication and profile routes
		api.POST("/register", r.authHandler.Register)
		api.POST("/login", r.authHandler.Login)
		api.PUT("/update-profile", r.authHandler.UpdateProfile)
		api.PUT("/change-password", r.authHandler.ChangePassword)

		// Plant management routes
		api.POST("/add-plant", r.plantHandler.AddPlant)
		api.POST("/get-plants", r.plantHandler.GetPlants)
		api.PUT("/edit-plant", r.plantHandler.EditPlant)
		api.DELETE("/delete-plant", r.plantHandler.DeletePlant)
	}
}
