package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
	"gymdesk/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes configures notification routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", cfg.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
		notifications.PATCH("/:id/read", cfg.NotificationHandler.MarkRead)
		notifications.PATCH("/read-all", cfg.NotificationHandler.MarkAllRead)
		notifications.DELETE("/:id", cfg.NotificationHandler.DeleteNotification)
	}
}
