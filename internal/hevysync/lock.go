package hevysync

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	LockKey        = "hevy-sync::lock"
	DefaultLockTTL = 10 * time.Minute
)

// compare-and-delete, so an expired lock taken over by another process is never released by us
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisLock serializes syncs between backend processes sharing a redis.
type RedisLock struct {
	rdb   *redis.Client
	ttl   time.Duration
	token string
}

func NewRedisLock(rdb *redis.Client, ttl time.Duration) *RedisLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLock{
		rdb:   rdb,
		ttl:   ttl,
		token: fmt.Sprintf("%d-%d", os.Getpid(), time.Now().UnixNano()),
	}
}

func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, LockKey, l.token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (l *RedisLock) Unlock(ctx context.Context) error {
	if err := l.rdb.Eval(ctx, unlockScript, []string{LockKey}, l.token).Err(); err != nil {
		return fmt.Errorf("redis unlock: %w", err)
	}
	return nil
}
