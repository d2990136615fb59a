package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
)

// IntegrationCache is a short-TTL Redis cache for provider list responses.
// With a nil client every Get misses and Set is a no-op, so the dashboard
// works without Redis.
type IntegrationCache struct {
	client *redis.Client
}

func NewIntegrationCache(client *redis.Client) repository.IIntegrationCache {
	return &IntegrationCache{client: client}
}

func (c *IntegrationCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (c *IntegrationCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Debug("integration cache set failed")
	}
}
