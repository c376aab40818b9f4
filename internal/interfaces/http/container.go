// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gymdesk/internal/domain/shared/events"
	"gymdesk/internal/infrastructure/auth"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/interfaces/http/middleware"
	"gymdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// and handlers, and wires them together. Shutdown releases everything it
// started.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// redis is nil when Redis is not configured or unreachable; the
	// dashboard cache and login rate limiting degrade to no-ops then.
	redis *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	loginRateLimit gin.HandlerFunc

	jwtSvc     *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	dispatcher *events.InMemoryEventDispatcher
}

// NewContainer builds the fully wired HTTP container.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	engine := gin.New()

	c := &Container{
		engine: engine,
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.wireServices()
	c.wireRepositories()
	if err := c.wireUseCases(); err != nil {
		return nil, err
	}
	c.wireHandlers()
	c.setupRoutes()

	return c, nil
}

// Engine exposes the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background components started by the container.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}

	return nil
}
