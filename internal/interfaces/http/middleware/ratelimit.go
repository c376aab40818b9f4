package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/infrastructure/ratelimit"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// LoginRateLimit throttles authentication attempts per client IP. A limiter
// failure lets the request through so a Redis outage does not lock everyone
// out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
