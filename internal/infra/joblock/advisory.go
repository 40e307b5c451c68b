// Package joblock serializes batch jobs across processes using postgres
// advisory locks. The lock is session scoped: it is held until released or
// until the owning connection dies, so a crashed worker cannot wedge the job.
package joblock

import (
	"context"
	"hash/fnv"

	"resource-booking-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotAcquired = errs.New("job lock held by another process")

// O365SyncJob names the lock every o365 sync drain entry point shares, so a
// scheduled run and a manually triggered one cannot drain concurrently.
const O365SyncJob = "o365_sync"

type AdvisoryLock struct {
	pool *pgxpool.Pool
}

func NewAdvisoryLock(pool *pgxpool.Pool) *AdvisoryLock {
	return &AdvisoryLock{pool: pool}
}

// Run executes fn while holding the named lock. A second caller with the same
// name gets ErrNotAcquired immediately instead of queueing.
func (l *AdvisoryLock) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to acquire connection for job lock")
	}
	defer conn.Release()

	key := lockKey(name)

	var acquired bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&acquired); err != nil {
		return errs.Wrap(err, "failed to try advisory lock")
	}
	if !acquired {
		return ErrNotAcquired
	}

	defer func() {
		// Best effort: the lock dies with the session anyway.
		_, _ = conn.Exec(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", key)
	}()

	return fn(ctx)
}

func lockKey(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	// #nosec G115 -- advisory lock keys are opaque 64-bit values
	return int64(h.Sum64())
}
