package lock

import (
	"context"
	"sync"
	"time"

	"mesa-billing/internal/core/port"
)

// KeyedLocker serializes callers per key inside a single process. Entries
// are reference counted and dropped once no goroutine holds or waits for
// them.
type KeyedLocker struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
	wait    time.Duration
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

var _ port.AccountLocker = (*KeyedLocker)(nil)

// NewKeyedLocker returns a locker; wait bounds how long Lock blocks, zero
// means until ctx is done.
func NewKeyedLocker(wait time.Duration) *KeyedLocker {
	return &KeyedLocker{entries: make(map[string]*keyedEntry), wait: wait}
}

// Lock acquires key.
func (l *KeyedLocker) Lock(ctx context.Context, key string) (port.ReleaseFunc, error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	var timeout <-chan time.Time
	if l.wait > 0 {
		t := time.NewTimer(l.wait)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ctx.Err()
	case <-timeout:
		l.unref(key, e)
		return nil, port.ErrLockTimeout
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
		return nil
	}, nil
}

func (l *KeyedLocker) unref(key string, e *keyedEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size reports the number of live keys.
func (l *KeyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
