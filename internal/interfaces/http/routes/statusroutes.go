package routes

import (
	"github.com/gin-gonic/gin"

	statushandlers "claimdesk/internal/interfaces/http/handlers/status"
	"claimdesk/internal/interfaces/http/middleware"
	"claimdesk/internal/shared/authorization"
)

type StatusRouteConfig struct {
	StatusHandler  *statushandlers.StatusHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupStatusRoutes(engine *gin.Engine, config *StatusRouteConfig) {
	statuses := engine.Group("/statuses")
	statuses.Use(config.AuthMiddleware.RequireAuth())
	{
		statuses.GET("", config.StatusHandler.ListStatuses)
		statuses.POST("",
			authorization.RequireAdmin(),
			config.StatusHandler.CreateStatus)

		statuses.GET("/:id/sub-statuses", config.StatusHandler.ListSubStatuses)
		statuses.POST("/:id/sub-statuses",
			authorization.RequireAdmin(),
			config.StatusHandler.CreateSubStatus)

		statuses.GET("/:id", config.StatusHandler.GetStatus)
		statuses.PATCH("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.UpdateStatus)
		statuses.DELETE("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.DeleteStatus)
	}

	subStatuses := engine.Group("/sub-statuses")
	subStatuses.Use(config.AuthMiddleware.RequireAuth())
	{
		subStatuses.PATCH("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.UpdateSubStatus)
		subStatuses.DELETE("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.DeleteSubStatus)
	}

	transitions := engine.Group("/transitions")
	transitions.Use(config.AuthMiddleware.RequireAuth())
	{
		transitions.GET("", config.StatusHandler.ListTransitions)
		transitions.GET("/validate", config.StatusHandler.ValidateTransition)
		transitions.POST("",
			authorization.RequireAdmin(),
			config.StatusHandler.CreateTransition)
		transitions.PATCH("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.UpdateTransition)
		transitions.DELETE("/:id",
			authorization.RequireAdmin(),
			config.StatusHandler.DeleteTransition)
	}
}
