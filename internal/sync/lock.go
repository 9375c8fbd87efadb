package sync

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockKey = "catalog:sync:lock"
	lockTTL = 15 * time.Minute
)

// RunLock serializes pipeline invocations. Two overlapping runs would
// race on the same SKU's find-then-write sequence, so a run that fails
// to take the lock must not start.
type RunLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// RedisLock guards across processes with SET NX. The TTL is a safety
// net for a crashed holder; a normal run releases explicitly.
type RedisLock struct {
	Client *redis.Client
}

func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	return l.Client.SetNX(ctx, lockKey, time.Now().UTC().Format(time.RFC3339), lockTTL).Result()
}

func (l *RedisLock) Unlock(ctx context.Context) error {
	return l.Client.Del(ctx, lockKey).Err()
}

// LocalLock is the single-process fallback used when no Redis is
// configured, and in tests.
type LocalLock struct {
	held atomic.Bool
}

func (l *LocalLock) TryLock(context.Context) (bool, error) {
	return l.held.CompareAndSwap(false, true), nil
}

func (l *LocalLock) Unlock(context.Context) error {
	l.held.Store(false)
	return nil
}
