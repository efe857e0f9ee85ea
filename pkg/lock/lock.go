// Package lock serialises seeding across goroutines or processes.
package lock

import (
	"context"
	"time"
)

// Release gives up a held lock.
type Release func(ctx context.Context) error

// Locker hands out named mutual-exclusion locks.
type Locker interface {
	// Acquire blocks until the lock named key is held or ctx is done. ttl
	// bounds how long the lock survives a holder that never releases it;
	// implementations without expiry may ignore it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}
