package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
)

// StaffRouteConfig holds dependencies for staff routes.
type StaffRouteConfig struct {
	StaffHandler   *handlers.StaffHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupStaffRoutes configures staff routes.
func SetupStaffRoutes(engine *gin.Engine, cfg *StaffRouteConfig) {
	staff := engine.Group("/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth())
	{
		staff.POST("", cfg.StaffHandler.CreateStaff)
		staff.GET("", cfg.StaffHandler.ListStaff)
		staff.GET("/:id", cfg.StaffHandler.GetStaff)
		staff.PUT("/:id", cfg.StaffHandler.UpdateStaff)
		staff.DELETE("/:id", cfg.StaffHandler.DeleteStaff)
	}
}
