package routes

import (
	"github.com/gin-gonic/gin"

	claimhandlers "claimdesk/internal/interfaces/http/handlers/claim"
	"claimdesk/internal/interfaces/http/middleware"
	"claimdesk/internal/shared/authorization"
)

type ClaimRouteConfig struct {
	ClaimHandler   *claimhandlers.ClaimHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupClaimRoutes(engine *gin.Engine, config *ClaimRouteConfig) {
	claims := engine.Group("/claims")
	claims.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations
		claims.POST("", config.ClaimHandler.CreateClaim)
		claims.GET("", config.ClaimHandler.ListClaims)

		// Specific action endpoints before the generic /:id routes
		claims.PATCH("/:id/assign",
			authorization.RequireAdmin(),
			config.ClaimHandler.AssignClaim)
		claims.POST("/:id/comments", config.ClaimHandler.AddComment)
		claims.PATCH("/:id/comments/:commentID", config.ClaimHandler.EditComment)
		claims.DELETE("/:id/comments/:commentID", config.ClaimHandler.DeleteComment)
		claims.POST("/:id/attachments", config.ClaimHandler.AddAttachment)
		claims.DELETE("/:id/attachments/:attachmentID", config.ClaimHandler.DeleteAttachment)
		claims.GET("/:id/audit", config.ClaimHandler.ListAuditEvents)

		// Generic parameterized routes last
		claims.GET("/:id", config.ClaimHandler.GetClaim)
		claims.PATCH("/:id", config.ClaimHandler.UpdateClaim)
		claims.DELETE("/:id",
			authorization.RequireAdmin(),
			config.ClaimHandler.DeleteClaim)
	}
}
