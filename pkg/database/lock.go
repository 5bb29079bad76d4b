package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"hash/fnv"
)

// AdvisoryLock is a session-scoped PostgreSQL advisory lock pinned to a
// dedicated connection. The lock lives until Release (or the connection
// drops), which is exactly the crash-safety we want: a processor that dies
// mid-pass frees the lock automatically.
type AdvisoryLock struct {
	conn *stdsql.Conn
	key  int64
}

// LockKey derives a stable 64-bit advisory lock key from a name. Every
// replica computes the same key for the same name.
func LockKey(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}

// TryAdvisoryLock attempts to take the named lock without blocking. It
// returns (nil, false, nil) when another session holds it.
func TryAdvisoryLock(ctx context.Context, db *stdsql.DB, name string) (*AdvisoryLock, bool, error) {
	key := LockKey(name)

	// The lock is tied to the session, so it must live on its own pinned
	// connection rather than going through the pool.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire connection for advisory lock: %w", err)
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&acquired); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("failed to try advisory lock %q: %w", name, err)
	}

	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}

	return &AdvisoryLock{conn: conn, key: key}, true, nil
}

// Release unlocks and returns the pinned connection to the pool. Safe to
// call once per lock; the context bounds the unlock round-trip.
func (l *AdvisoryLock) Release(ctx context.Context) error {
	defer func() { _ = l.conn.Close() }()

	var released bool
	if err := l.conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", l.key).Scan(&released); err != nil {
		// Closing the connection drops the lock anyway.
		return fmt.Errorf("failed to release advisory lock: %w", err)
	}
	if !released {
		return fmt.Errorf("advisory lock %d was not held at release", l.key)
	}
	return nil
}
