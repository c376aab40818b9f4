package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
)

// MemberRouteConfig holds dependencies for member routes.
type MemberRouteConfig struct {
	MemberHandler  *handlers.MemberHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupMemberRoutes configures member routes.
func SetupMemberRoutes(engine *gin.Engine, cfg *MemberRouteConfig) {
	members := engine.Group("/members")
	members.Use(cfg.AuthMiddleware.RequireAuth())
	{
		members.POST("", cfg.MemberHandler.CreateMember)
		members.POST("/preview", cfg.MemberHandler.PreviewMember)
		members.GET("", cfg.MemberHandler.ListMembers)
		members.GET("/:code", cfg.MemberHandler.GetMember)
		members.PUT("/:code", cfg.MemberHandler.UpdateMember)
		members.DELETE("/:code", cfg.MemberHandler.DeleteMember)
	}
}
