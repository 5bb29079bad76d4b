// Package concurrency enforces the system-wide and per-tenant caps on
// simultaneous calls. Usage is tracked as active_slots rows (one per
// in-flight call), so the caps hold across replicas: whoever can commit the
// row owns the slot.
package concurrency

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/services"
)

// Capacity reasons reported when a reservation is refused.
const (
	ReasonSystemCapacity = "system"
	ReasonTenantCapacity = "tenant"
)

// reserveAttempts bounds retries of the serializable reservation
// transaction. Conflicts are expected under load; three rounds is enough for
// the losers of a burst to re-read committed counts.
const reserveAttempts = 3

// Manager reserves and releases concurrency slots.
type Manager struct {
	client             *ent.Client
	systemLimit        int
	defaultTenantLimit int
	logger             *slog.Logger
}

// NewManager creates a Manager enforcing the given caps.
func NewManager(client *ent.Client, systemLimit, defaultTenantLimit int) *Manager {
	if client == nil {
		panic("concurrency.NewManager: client is required")
	}
	return &Manager{
		client:             client,
		systemLimit:        systemLimit,
		defaultTenantLimit: defaultTenantLimit,
		logger:             slog.With("component", "concurrency"),
	}
}

// Reservation is the outcome of a Reserve attempt. A refused reservation is
// not an error: the caller is expected to queue the call instead.
type Reservation struct {
	OK           bool
	SlotID       string
	Reason       string // ReasonSystemCapacity or ReasonTenantCapacity when !OK
	SystemActive int
	TenantActive int
	TenantLimit  int
}

// Reserve attempts to take a slot for callID. The slot row is inserted and
// the usage counted inside one serializable transaction: concurrent racers
// past the cap conflict at commit, lose, and retry against the committed
// counts. Over-cap attempts roll back and report which cap refused them.
func (m *Manager) Reserve(ctx context.Context, tenantID, callID string, kind activeslot.Kind) (Reservation, error) {
	if tenantID == "" {
		return Reservation{}, services.NewValidationError("tenant_id", "required")
	}
	if callID == "" {
		return Reservation{}, services.NewValidationError("call_id", "required")
	}

	var lastErr error
	for attempt := 1; attempt <= reserveAttempts; attempt++ {
		res, err := m.tryReserve(ctx, tenantID, callID, kind)
		if err == nil {
			return res, nil
		}
		if !database.IsSerializationFailure(err) {
			return Reservation{}, err
		}
		lastErr = err
		m.logger.Debug("Slot reservation conflicted, retrying",
			"tenant_id", tenantID, "call_id", callID, "attempt", attempt)
	}
	return Reservation{}, fmt.Errorf("slot reservation conflicted %d times: %w", reserveAttempts, lastErr)
}

func (m *Manager) tryReserve(ctx context.Context, tenantID, callID string, kind activeslot.Kind) (Reservation, error) {
	tx, err := m.client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to start reservation transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	limit, err := m.tenantLimitTx(ctx, tx, tenantID)
	if err != nil {
		return Reservation{}, err
	}

	slotID := uuid.New().String()
	if _, err := tx.ActiveSlot.Create().
		SetID(slotID).
		SetTenantID(tenantID).
		SetCallID(callID).
		SetKind(kind).
		Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// The call already holds a slot; reserving twice is a caller bug.
			return Reservation{}, services.ErrAlreadyExists
		}
		return Reservation{}, fmt.Errorf("failed to insert slot: %w", err)
	}

	systemActive, err := tx.ActiveSlot.Query().Count(ctx)
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to count system slots: %w", err)
	}
	tenantActive, err := tx.ActiveSlot.Query().
		Where(activeslot.TenantIDEQ(tenantID)).
		Count(ctx)
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to count tenant slots: %w", err)
	}

	// Counts include the row we just inserted.
	if systemActive > m.systemLimit {
		return Reservation{
			OK:           false,
			Reason:       ReasonSystemCapacity,
			SystemActive: systemActive - 1,
			TenantActive: tenantActive - 1,
			TenantLimit:  limit,
		}, nil
	}
	if tenantActive > limit {
		return Reservation{
			OK:           false,
			Reason:       ReasonTenantCapacity,
			SystemActive: systemActive - 1,
			TenantActive: tenantActive - 1,
			TenantLimit:  limit,
		}, nil
	}

	if err := tx.Commit(); err != nil {
		return Reservation{}, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return Reservation{
		OK:           true,
		SlotID:       slotID,
		SystemActive: systemActive,
		TenantActive: tenantActive,
		TenantLimit:  limit,
	}, nil
}

// Release frees the slot held by callID. Idempotent: releasing a call that
// holds no slot reports false without error, so crash-retry paths and
// replayed webhooks can call it blindly.
func (m *Manager) Release(ctx context.Context, callID string) (bool, error) {
	n, err := m.client.ActiveSlot.Delete().
		Where(activeslot.CallIDEQ(callID)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to release slot for call %s: %w", callID, err)
	}
	return n > 0, nil
}

// ReleaseTx frees the slot inside the caller's transaction, so completion
// processing commits the call update, the charge, and the freed capacity
// together. Same idempotency contract as Release.
func (m *Manager) ReleaseTx(ctx context.Context, tx *ent.Tx, callID string) (bool, error) {
	n, err := tx.ActiveSlot.Delete().
		Where(activeslot.CallIDEQ(callID)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to release slot for call %s: %w", callID, err)
	}
	return n > 0, nil
}

// Usage reports current slot occupancy for the status endpoints.
type Usage struct {
	SystemActive int `json:"system_active"`
	SystemLimit  int `json:"system_limit"`
	TenantActive int `json:"tenant_active"`
	TenantLimit  int `json:"tenant_limit"`
}

// Usage returns system-wide and tenant occupancy. The numbers are a
// snapshot, not a reservation; they can be stale by the next statement.
func (m *Manager) Usage(ctx context.Context, tenantID string) (Usage, error) {
	systemActive, err := m.client.ActiveSlot.Query().Count(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("failed to count system slots: %w", err)
	}
	tenantActive, err := m.client.ActiveSlot.Query().
		Where(activeslot.TenantIDEQ(tenantID)).
		Count(ctx)
	if err != nil {
		return Usage{}, fmt.Errorf("failed to count tenant slots: %w", err)
	}
	limit, err := m.TenantLimit(ctx, tenantID)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		SystemActive: systemActive,
		SystemLimit:  m.systemLimit,
		TenantActive: tenantActive,
		TenantLimit:  limit,
	}, nil
}

// SystemLimit returns the configured system-wide cap.
func (m *Manager) SystemLimit() int {
	return m.systemLimit
}

// SystemActive counts slots across all tenants.
func (m *Manager) SystemActive(ctx context.Context) (int, error) {
	n, err := m.client.ActiveSlot.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count system slots: %w", err)
	}
	return n, nil
}

// TenantLimit resolves the effective concurrency cap for a tenant: its own
// configured limit when set, the system default otherwise.
func (m *Manager) TenantLimit(ctx context.Context, tenantID string) (int, error) {
	t, err := m.client.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, services.ErrNotFound
		}
		return 0, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	return m.effectiveLimit(t), nil
}

func (m *Manager) tenantLimitTx(ctx context.Context, tx *ent.Tx, tenantID string) (int, error) {
	t, err := tx.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, services.ErrNotFound
		}
		return 0, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	return m.effectiveLimit(t), nil
}

func (m *Manager) effectiveLimit(t *ent.Tenant) int {
	if t.ConcurrentCallsLimit != nil && *t.ConcurrentCallsLimit > 0 {
		return *t.ConcurrentCallsLimit
	}
	return m.defaultTenantLimit
}
