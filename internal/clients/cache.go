package clients

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/profile"
)

// DefaultCatalogKey is the Redis key holding the cached catalog.
const DefaultCatalogKey = "aiplan:catalog:v1"

// kvClient is the subset of *redis.Client the cache uses.
type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedCatalog keeps the task catalog in Redis for ttl. Redis failures
// are logged and fall through to the wrapped source.
type CachedCatalog struct {
	inner  CatalogSource
	kv     kvClient
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCatalog(inner CatalogSource, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	return newCachedCatalog(inner, client, ttl, logger)
}

func newCachedCatalog(inner CatalogSource, kv kvClient, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCatalog{inner: inner, kv: kv, key: DefaultCatalogKey, ttl: ttl, logger: logger}
}

func (c *CachedCatalog) Catalog(ctx context.Context) ([]profile.TaskCatalogEntry, error) {
	raw, err := c.kv.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var cached []profile.TaskCatalogEntry
		jerr := json.Unmarshal(raw, &cached)
		if jerr == nil {
			return cached, nil
		}
		c.logger.Warn("discarding corrupt catalog cache", zap.String("key", c.key), zap.Error(jerr))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("catalog cache read failed", zap.String("key", c.key), zap.Error(err))
	}

	tasks, err := c.inner.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tasks); err == nil {
		if err := c.kv.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("catalog cache write failed", zap.String("key", c.key), zap.Error(err))
		}
	}
	return tasks, nil
}

// Invalidate drops the cached catalog.
func (c *CachedCatalog) Invalidate(ctx context.Context) error {
	return c.kv.Del(ctx, c.key).Err()
}
