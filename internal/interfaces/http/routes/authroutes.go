package routes

import (
	"github.com/gin-gonic/gin"

	"gymdesk/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// LoginRateLimit throttles brute-force attempts; nil disables limiting.
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.LoginRateLimit != nil {
			auth.POST("/login", cfg.LoginRateLimit, cfg.AuthHandler.Login)
		} else {
			auth.POST("/login", cfg.AuthHandler.Login)
		}
	}
}
