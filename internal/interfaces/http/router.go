package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/middleware"
	"gymdesk/internal/interfaces/http/routes"
)

// setupRoutes installs global middleware and mounts every route group.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		LoginRateLimit: c.loginRateLimit,
	})

	routes.SetupMemberRoutes(c.engine, &routes.MemberRouteConfig{
		MemberHandler:  c.hdlrs.member,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupPlanRoutes(c.engine, &routes.PlanRouteConfig{
		PlanHandler:    c.hdlrs.plan,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupStaffRoutes(c.engine, &routes.StaffRouteConfig{
		StaffHandler:   c.hdlrs.staff,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupExpenseRoutes(c.engine, &routes.ExpenseRouteConfig{
		ExpenseHandler: c.hdlrs.expense,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupDashboardRoutes(c.engine, &routes.DashboardRouteConfig{
		DashboardHandler: c.hdlrs.dashboard,
		AuthMiddleware:   c.authMiddleware,
	})
}
