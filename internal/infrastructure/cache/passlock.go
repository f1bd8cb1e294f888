package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const passLockPrefix = "notifier:pass:"

// PassLock serializes notification passes across replicas. Only the holder
// of the lease runs the pass; the TTL releases a lease abandoned by a
// crashed instance.
type PassLock interface {
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name string) error
}

// RedisPassLock implements PassLock via SetNX leases.
type RedisPassLock struct {
	client *redis.Client
}

func NewRedisPassLock(client *redis.Client) *RedisPassLock {
	return &RedisPassLock{client: client}
}

func (l *RedisPassLock) TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	key := passLockPrefix + name

	// SetNX is atomic: only sets if key doesn't exist
	acquired, err := l.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire pass lock: %w", err)
	}

	return acquired, nil
}

func (l *RedisPassLock) Release(ctx context.Context, name string) error {
	key := passLockPrefix + name

	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release pass lock: %w", err)
	}

	return nil
}

// NoopPassLock always grants the lease. Used when redis is not configured
// and the deployment is a single instance.
type NoopPassLock struct{}

func NewNoopPassLock() *NoopPassLock {
	return &NoopPassLock{}
}

func (l *NoopPassLock) TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (l *NoopPassLock) Release(ctx context.Context, name string) error {
	return nil
}
