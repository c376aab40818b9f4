package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	authUsecases "gymdesk/internal/application/auth/usecases"
	"gymdesk/internal/infrastructure/auth"
	"gymdesk/internal/infrastructure/ratelimit"
	"gymdesk/internal/interfaces/http/middleware"
)

// Login throttling limits. Generous enough for a shared front-desk IP,
// tight enough to slow down credential stuffing.
const (
	loginRequestsPerMinute = 10
	loginRequestsPerHour   = 100
)

// wireServices sets up auth primitives, the Redis client, and the middleware
// that depends on them. A missing or unreachable Redis is logged and
// tolerated.
func (c *Container) wireServices() {
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	if c.cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			c.log.Warnw("redis unreachable, caching and rate limiting disabled", "error", err, "addr", c.cfg.Redis.GetAddr())
			_ = client.Close()
		} else {
			c.redis = client
		}
	}

	if c.redis != nil {
		limiter := ratelimit.NewRedisRateLimiter(c.redis)
		limiterCfg := ratelimit.RateLimitConfig{
			RequestsPerMinute: loginRequestsPerMinute,
			RequestsPerHour:   loginRequestsPerHour,
		}
		c.loginRateLimit = middleware.LoginRateLimit(limiter, limiterCfg, c.log)
	}
}

// tokenIssuerAdapter bridges the infrastructure JWT service to the token
// issuer port the login use case expects.
type tokenIssuerAdapter struct {
	*auth.JWTService
}

func (a *tokenIssuerAdapter) Generate(email, name string) (*authUsecases.Token, error) {
	token, err := a.JWTService.Generate(email, name)
	if err != nil {
		return nil, err
	}
	return &authUsecases.Token{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
