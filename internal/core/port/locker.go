package port

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when a lock could not be acquired in time.
var ErrLockTimeout = errors.New("lock wait timeout")

// ReleaseFunc releases a held lock.
type ReleaseFunc func(ctx context.Context) error

// AccountLocker serializes read-modify-write cycles on a single key. Lock
// blocks until the key is free, ctx is done or the implementation's wait
// limit is reached.
type AccountLocker interface {
	Lock(ctx context.Context, key string) (ReleaseFunc, error)
}
