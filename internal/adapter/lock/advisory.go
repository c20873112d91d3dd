package lock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"mesa-billing/internal/core/port"
)

// AdvisoryLocker maps keys onto PostgreSQL session advisory locks. Each held
// lock pins one connection from the pool until released, because advisory
// locks belong to the session that took them.
type AdvisoryLocker struct {
	db   *sql.DB
	wait time.Duration
}

var _ port.AccountLocker = (*AdvisoryLocker)(nil)

// NewAdvisoryLocker creates a locker over db. wait bounds how long Lock
// blocks; zero means until ctx is done.
func NewAdvisoryLocker(db *sql.DB, wait time.Duration) *AdvisoryLocker {
	return &AdvisoryLocker{db: db, wait: wait}
}

// Lock blocks in pg_advisory_lock until the key is free or ctx is done.
func (l *AdvisoryLocker) Lock(ctx context.Context, key string) (port.ReleaseFunc, error) {
	id := advisoryID(key)

	acquireCtx := ctx
	if l.wait > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	conn, err := l.db.Conn(acquireCtx)
	if err != nil {
		return nil, l.acquireErr(ctx, acquireCtx, fmt.Errorf("advisory lock conn: %w", err))
	}
	if _, err = conn.ExecContext(acquireCtx, "SELECT pg_advisory_lock($1)", id); err != nil {
		_ = conn.Close()
		return nil, l.acquireErr(ctx, acquireCtx, fmt.Errorf("advisory lock %s: %w", key, err))
	}
	return func(ctx context.Context) error {
		defer conn.Close()
		if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", id); err != nil {
			return fmt.Errorf("advisory unlock %s: %w", key, err)
		}
		return nil
	}, nil
}

// acquireErr reports ErrLockTimeout when only the wait deadline expired.
func (l *AdvisoryLocker) acquireErr(ctx, acquireCtx context.Context, err error) error {
	if ctx.Err() == nil && errors.Is(acquireCtx.Err(), context.DeadlineExceeded) {
		return port.ErrLockTimeout
	}
	return err
}

// advisoryID derives a stable 64-bit lock id from key.
func advisoryID(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}
