package cache

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"gymdesk/internal/shared/logger"
)

// DashboardCache holds the serialized dashboard summary so repeated loads
// within the TTL window skip the aggregation queries. Payloads are opaque
// JSON produced by the caller.
type DashboardCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

const (
	dashboardKey       = "dashboard:summary"
	dashboardTTLJitter = 10 * time.Second // anti-stampede
)

type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisDashboardCache {
	return &RedisDashboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisDashboardCache) Get(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary from cache: %w", err)
	}
	return payload, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, payload []byte) error {
	if err := c.client.Set(ctx, dashboardKey, payload, c.ttlWithJitter()).Err(); err != nil {
		return fmt.Errorf("failed to set dashboard summary in cache: %w", err)
	}

	c.logger.Debugw("dashboard summary cached", "bytes", len(payload), "ttl", c.ttl)
	return nil
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}

	c.logger.Debugw("dashboard summary cache invalidated")
	return nil
}

func (c *RedisDashboardCache) ttlWithJitter() time.Duration {
	jitter := time.Duration(rand.Int64N(int64(dashboardTTLJitter)))
	return c.ttl + jitter
}
