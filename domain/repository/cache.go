package repository

import (
	"context"
	"time"
)

// IIntegrationCache is a short-TTL cache in front of provider list calls.
// Implementations must be safe to use when the backing store is unavailable:
// Get misses and Set becomes a no-op.
type IIntegrationCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
