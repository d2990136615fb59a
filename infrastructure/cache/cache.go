package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"postpilot/infrastructure/logger"
)

// NewCache connects to Redis. The returned client may be nil when Redis is
// unreachable; callers must tolerate that and run uncached.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without response cache")
		return nil, err
	}
	return client, nil
}
