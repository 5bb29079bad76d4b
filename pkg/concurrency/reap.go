package concurrency

import (
	"context"
	"fmt"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
)

// ReapResult summarizes one reap sweep.
type ReapResult struct {
	Released    int
	FailedCalls int
}

// ReapStale releases slots older than olderThan. A slot that old means the
// completion webhook never arrived (provider outage, crashed dispatch, lost
// delivery); leaving it would burn capacity forever. Calls still non-terminal
// at reap time are marked failed so the lifecycle invariant holds.
func (m *Manager) ReapStale(ctx context.Context, olderThan time.Duration) (ReapResult, error) {
	cutoff := time.Now().Add(-olderThan)

	stale, err := m.client.ActiveSlot.Query().
		Where(activeslot.AcquiredAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return ReapResult{}, fmt.Errorf("failed to query stale slots: %w", err)
	}

	var result ReapResult
	for _, slot := range stale {
		failed, err := m.reapSlot(ctx, slot)
		if err != nil {
			// Keep sweeping; the slot stays for the next pass.
			m.logger.Error("Failed to reap stale slot",
				"slot_id", slot.ID, "call_id", slot.CallID, "error", err)
			continue
		}
		result.Released++
		if failed {
			result.FailedCalls++
		}
		m.logger.Warn("Reaped stale concurrency slot",
			"slot_id", slot.ID,
			"call_id", slot.CallID,
			"tenant_id", slot.TenantID,
			"acquired_at", slot.AcquiredAt,
			"call_failed", failed)
	}
	return result, nil
}

func (m *Manager) reapSlot(ctx context.Context, slot *ent.ActiveSlot) (bool, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start reap transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	failedCall := false
	c, err := tx.Call.Query().
		Where(call.IDEQ(slot.CallID)).
		Only(ctx)
	switch {
	case err == nil:
		if !terminalLifecycle(c.LifecycleStatus) {
			if err := tx.Call.UpdateOneID(c.ID).
				SetStatus(call.StatusFailed).
				SetLifecycleStatus(call.LifecycleStatusFailed).
				SetFailureReason("no completion received before slot reap").
				SetEndedAt(time.Now()).
				Exec(ctx); err != nil {
				return false, fmt.Errorf("failed to fail reaped call: %w", err)
			}
			failedCall = true
		}
	case ent.IsNotFound(err):
		// Slot without a call: dispatch crashed between reserve and insert.
	default:
		return false, fmt.Errorf("failed to load call for slot: %w", err)
	}

	if _, err := tx.ActiveSlot.Delete().
		Where(activeslot.IDEQ(slot.ID)).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delete stale slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit reap: %w", err)
	}
	return failedCall, nil
}

func terminalLifecycle(ls call.LifecycleStatus) bool {
	switch ls {
	case call.LifecycleStatusCompleted, call.LifecycleStatusFailed, call.LifecycleStatusCancelled:
		return true
	default:
		return false
	}
}
