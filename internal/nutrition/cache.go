package nutrition

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedClient is a read-through Redis cache in front of a Lookuper. Only
// successful lookups are cached; NotFound and unavailability are always
// re-checked against the remote service. A nil Redis client disables
// caching entirely and every call passes straight through.
type CachedClient struct {
	inner Lookuper
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedClient wraps inner with a Redis cache. rdb may be nil.
func NewCachedClient(inner Lookuper, rdb *redis.Client, ttl time.Duration) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(name string) string { return "nutrition:lookup:" + name }

// Lookup serves from cache when possible, otherwise delegates and stores
// the result. Cache errors are ignored; the remote answer wins.
func (c *CachedClient) Lookup(ctx context.Context, name string) (Facts, error) {
	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, cacheKey(name)).Bytes(); err == nil {
			var f Facts
			if err := json.Unmarshal(raw, &f); err == nil {
				return f, nil
			}
		}
	}

	f, err := c.inner.Lookup(ctx, name)
	if err != nil {
		return Facts{}, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(f); err == nil {
			_ = c.rdb.Set(ctx, cacheKey(name), raw, c.ttl).Err()
		}
	}
	return f, nil
}
