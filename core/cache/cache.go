package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-calendar-api/core/logger"
)

const versionKey = "events:version"

// Cache is a read-through cache for event list queries. Invalidation
// bumps a version counter that is part of every list key, so stale
// entries simply expire instead of being tracked individually.
type Cache struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{rdb: rdb}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

// GetJSON returns false when the key is absent.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// Version returns the current list-cache generation, 0 when unset.
func (c *Cache) Version(ctx context.Context) int64 {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// Invalidate bumps the generation so every cached list key goes stale.
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		logger.Warn("Cache:Invalidate failed", "error", err)
	}
}

// RangeKey builds the cache key for a list query. Start and end may be
// nil for an unbounded query.
func RangeKey(version int64, start, end *time.Time, search string) string {
	from, to := "all", "all"
	if start != nil {
		from = start.UTC().Format(time.RFC3339)
	}
	if end != nil {
		to = end.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("events:v%d:range:%s:%s:q:%s", version, from, to, search)
}
