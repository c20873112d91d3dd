package configs

import (
	"strings"
	"time"
)

// Lock backends.
const (
	LockBackendMemory   = "memory"
	LockBackendRedis    = "redis"
	LockBackendPostgres = "postgres"
)

// Lock selects how billing mutations are serialized per account. "memory"
// only protects a single instance; "redis" and "postgres" work across
// replicas.
type Lock struct {
	Backend string        `env:"BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"TTL" envDefault:"10s"`
	Wait    time.Duration `env:"WAIT_TIMEOUT" envDefault:"5s"`
}

// Normalized returns the lower-cased backend, defaulting unknown values to
// memory.
func (c Lock) Normalized() string {
	switch b := strings.ToLower(c.Backend); b {
	case LockBackendRedis, LockBackendPostgres:
		return b
	default:
		return LockBackendMemory
	}
}
