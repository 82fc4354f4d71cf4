// Package cache is a small JSON cache-aside layer over redis for the
// listing catalog and market price board. A nil *Cache is a valid no-op, so
// the API runs fine without redis configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	KeyListings = "catalog:listings"

	// KeyMarketPrices is the prefix for price board pages, completed with
	// the filter fingerprint.
	KeyMarketPrices = "market:prices:"

	DefaultTTL = 5 * time.Minute
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. Returns ErrCacheMiss
// when the key is absent or the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Invalidate drops keys after a write so the next read repopulates.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
