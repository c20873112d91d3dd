package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mesa-billing/internal/core/port"
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// RedisLocker provides cross-instance locks using SET NX PX. Locks expire
// after ttl so a crashed holder cannot block an account forever.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

var _ port.AccountLocker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker. wait bounds how long Lock polls for a
// busy key.
func NewRedisLocker(client redis.UniversalClient, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, wait: wait, retry: 25 * time.Millisecond}
}

// Lock polls until the key is acquired.
func (l *RedisLocker) Lock(ctx context.Context, key string) (port.ReleaseFunc, error) {
	key = "lock:" + key
	token := uuid.NewString()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return func(ctx context.Context) error {
				if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
					return fmt.Errorf("release lock %s: %w", key, err)
				}
				return nil
			}, nil
		}
		select {
		case <-ctx.Done():
			if l.wait > 0 && ctx.Err() == context.DeadlineExceeded {
				return nil, port.ErrLockTimeout
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
