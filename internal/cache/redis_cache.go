package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hevystats/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const generationKey = "hevy-cache::generation"

var _ Cache = (*RedisCache)(nil)

// RedisCache namespaces every key with a generation counter. Invalidation bumps
// the counter, old entries stop being addressable and expire with their TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *RedisCache) generation(ctx context.Context) (Generation, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return NoGeneration, err
	}
	return Generation(gen), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, Generation, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.get")
	defer span.End()

	gen, err := c.generation(ctx)
	if err != nil {
		log.Errorf("cache get generation: %s", err)
		return nil, NoGeneration, false
	}

	val, err := c.rdb.Get(ctx, versionedKey(key, gen)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("cache get [%s]: %s", key, err)
		}
		return nil, gen, false
	}
	return val, gen, true
}

// Set stores value under gen, the generation returned by the preceding Get.
func (c *RedisCache) Set(ctx context.Context, key string, gen Generation, value []byte) {
	if gen < 0 {
		return
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.set")
	defer span.End()

	if err := c.rdb.Set(ctx, versionedKey(key, gen), value, c.ttl).Err(); err != nil {
		log.Errorf("cache set [%s]: %s", key, err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		log.Errorf("cache invalidate: %s", err)
	}
}

func versionedKey(key string, gen Generation) string {
	return fmt.Sprintf("%s::g%d", key, gen)
}
