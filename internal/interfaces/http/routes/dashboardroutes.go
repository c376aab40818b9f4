package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures dashboard routes.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/summary", cfg.DashboardHandler.GetSummary)
	}
}
