// Package events carries cross-replica queue wakes over Postgres
// LISTEN/NOTIFY. Completions and enqueues publish a wake; each replica's
// listener coalesces bursts into single queue passes so freed capacity is
// reused within seconds instead of waiting for the next cron tick. Wakes are
// hints, not data: receivers re-read everything from the database, and when
// no listener is up the cron endpoint still drains the queue.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// WakeChannel is the NOTIFY channel queue wakes travel on.
const WakeChannel = "ringstack_queue_wake"

// wakePayload goes over NOTIFY. Kept tiny to stay far under the 8000-byte
// notify limit.
type wakePayload struct {
	Reason      string    `json:"reason"`
	PublishedAt time.Time `json:"published_at"`
}

// WakePublisher broadcasts queue wakes via pg_notify on the shared pool.
type WakePublisher struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewWakePublisher creates a WakePublisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewWakePublisher(db *sql.DB) *WakePublisher {
	if db == nil {
		panic("events.NewWakePublisher: db is required")
	}
	return &WakePublisher{
		db:     db,
		logger: slog.With("component", "wake_publisher"),
	}
}

// NotifyWake broadcasts a wake to every listening replica. Reason is
// free-form ("call-completed", "enqueue", ...) and only shows up in logs.
func (p *WakePublisher) NotifyWake(ctx context.Context, reason string) error {
	payload, err := json.Marshal(wakePayload{
		Reason:      reason,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal wake payload: %w", err)
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", WakeChannel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	p.logger.Debug("Queue wake published", "reason", reason)
	return nil
}
