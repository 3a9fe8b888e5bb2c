package holiday

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ignite/working-date-service/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKey = "working-date:holidays"

// RedisCache is a Redis-backed refresh-on-expiry cache over a FetchFunc,
// for deployments where multiple instances should share one snapshot.
// Expiry is enforced by the Redis key TTL, so a stale snapshot can never be
// read back. Redis being down degrades to fetching on every request rather
// than failing it: the cache is an optimization, not a correctness mechanism.
type RedisCache struct {
	rdb   *redis.Client
	fetch FetchFunc
	ttl   time.Duration
}

// NewRedisCache creates a RedisCache with the given TTL.
func NewRedisCache(rdb *redis.Client, fetch FetchFunc, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, fetch: fetch, ttl: ttl}
}

// CurrentHolidays returns the shared holiday set, refreshing Redis on a miss.
func (c *RedisCache) CurrentHolidays(ctx context.Context) (Set, error) {
	payload, err := c.rdb.Get(ctx, redisKey).Bytes()
	switch {
	case err == nil:
		var raw []string
		if jsonErr := json.Unmarshal(payload, &raw); jsonErr == nil {
			set := make(Set, len(raw))
			for _, s := range raw {
				set[Date(s)] = struct{}{}
			}
			return set, nil
		}
		// Corrupt payload: treat as a miss and overwrite below.
		logger.Warn("discarding corrupt holiday snapshot in redis")
	case err != redis.Nil:
		logger.Warn("redis read failed, fetching directly", "error", err)
	}

	set, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(set))
	for d := range set {
		raw = append(raw, string(d))
	}
	data, _ := json.Marshal(raw)
	if err := c.rdb.Set(ctx, redisKey, data, c.ttl).Err(); err != nil {
		logger.Warn("redis write failed, snapshot not shared", "error", err)
	}

	return set, nil
}

// Invalidate deletes the shared snapshot so the next read refetches.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, redisKey).Err()
}
