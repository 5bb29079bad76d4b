package concurrency

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTenant(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(100).
		Save(context.Background())
	require.NoError(t, err)
}

func seedTenantWithLimit(t *testing.T, client *ent.Client, id string, limit int) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(100).
		SetConcurrentCallsLimit(limit).
		Save(context.Background())
	require.NoError(t, err)
}

func TestReserveUpToTenantLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	manager := NewManager(client.Client, 10, 2)

	for i := 0; i < 2; i++ {
		res, err := manager.Reserve(ctx, "tenant-1", uuid.New().String(), activeslot.KindDirect)
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.NotEmpty(t, res.SlotID)
	}

	// The slot past the cap is refused, not an error, and leaves no row.
	res, err := manager.Reserve(ctx, "tenant-1", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonTenantCapacity, res.Reason)
	assert.Equal(t, 2, res.TenantActive)
	assert.Equal(t, 2, res.TenantLimit)

	count, err := client.ActiveSlot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "refused reservation must roll back its row")
}

func TestReserveSystemLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	seedTenant(t, client.Client, "tenant-2")
	seedTenant(t, client.Client, "tenant-3")
	manager := NewManager(client.Client, 2, 5)

	for _, tenantID := range []string{"tenant-1", "tenant-2"} {
		res, err := manager.Reserve(ctx, tenantID, uuid.New().String(), activeslot.KindDirect)
		require.NoError(t, err)
		require.True(t, res.OK)
	}

	res, err := manager.Reserve(ctx, "tenant-3", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonSystemCapacity, res.Reason)
	assert.Equal(t, 2, res.SystemActive)
}

func TestReserveHonorsTenantOverride(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenantWithLimit(t, client.Client, "tenant-vip", 1)
	manager := NewManager(client.Client, 10, 5)

	limit, err := manager.TenantLimit(ctx, "tenant-vip")
	require.NoError(t, err)
	assert.Equal(t, 1, limit)

	res, err := manager.Reserve(ctx, "tenant-vip", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	res, err = manager.Reserve(ctx, "tenant-vip", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonTenantCapacity, res.Reason)
}

func TestReserveValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	manager := NewManager(client.Client, 10, 5)

	_, err := manager.Reserve(ctx, "", "call-1", activeslot.KindDirect)
	assert.True(t, services.IsValidationError(err))

	_, err = manager.Reserve(ctx, "tenant-1", "", activeslot.KindDirect)
	assert.True(t, services.IsValidationError(err))
}

func TestReserveDuplicateCall(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	manager := NewManager(client.Client, 10, 5)

	callID := uuid.New().String()
	res, err := manager.Reserve(ctx, "tenant-1", callID, activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	_, err = manager.Reserve(ctx, "tenant-1", callID, activeslot.KindDirect)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestReleaseIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	manager := NewManager(client.Client, 10, 5)

	callID := uuid.New().String()
	res, err := manager.Reserve(ctx, "tenant-1", callID, activeslot.KindCampaign)
	require.NoError(t, err)
	require.True(t, res.OK)

	released, err := manager.Release(ctx, callID)
	require.NoError(t, err)
	assert.True(t, released)

	released, err = manager.Release(ctx, callID)
	require.NoError(t, err)
	assert.False(t, released, "second release is a no-op")

	usage, err := manager.Usage(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 0, usage.TenantActive)
	assert.Equal(t, 0, usage.SystemActive)
}

func TestReleaseTxCommitsWithCaller(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	manager := NewManager(client.Client, 10, 5)

	callID := uuid.New().String()
	res, err := manager.Reserve(ctx, "tenant-1", callID, activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	// Rolled-back transaction keeps the slot.
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	released, err := manager.ReleaseTx(ctx, tx, callID)
	require.NoError(t, err)
	assert.True(t, released)
	require.NoError(t, tx.Rollback())

	active, err := manager.SystemActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	// Committed transaction frees it.
	tx, err = client.Tx(ctx)
	require.NoError(t, err)
	released, err = manager.ReleaseTx(ctx, tx, callID)
	require.NoError(t, err)
	assert.True(t, released)
	require.NoError(t, tx.Commit())

	active, err = manager.SystemActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, active)
}

func TestUsageSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	seedTenant(t, client.Client, "tenant-2")
	manager := NewManager(client.Client, 10, 5)

	for i := 0; i < 2; i++ {
		res, err := manager.Reserve(ctx, "tenant-1", uuid.New().String(), activeslot.KindDirect)
		require.NoError(t, err)
		require.True(t, res.OK)
	}
	res, err := manager.Reserve(ctx, "tenant-2", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	usage, err := manager.Usage(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 3, usage.SystemActive)
	assert.Equal(t, 10, usage.SystemLimit)
	assert.Equal(t, 2, usage.TenantActive)
	assert.Equal(t, 5, usage.TenantLimit)
}

func TestTenantLimitUnknownTenant(t *testing.T) {
	client := testdb.NewTestClient(t)
	manager := NewManager(client.Client, 10, 5)

	_, err := manager.TenantLimit(context.Background(), "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReapStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1")
	manager := NewManager(client.Client, 10, 5)

	staleTime := time.Now().Add(-2 * time.Hour)

	mkCall := func(lifecycle call.LifecycleStatus) string {
		id := uuid.New().String()
		_, err := client.Call.Create().
			SetID(id).
			SetTenantID("tenant-1").
			SetToPhone("+15550100").
			SetLifecycleStatus(lifecycle).
			Save(ctx)
		require.NoError(t, err)
		return id
	}
	mkSlot := func(callID string, acquiredAt time.Time) {
		_, err := client.ActiveSlot.Create().
			SetID(uuid.New().String()).
			SetTenantID("tenant-1").
			SetCallID(callID).
			SetKind(activeslot.KindDirect).
			SetAcquiredAt(acquiredAt).
			Save(ctx)
		require.NoError(t, err)
	}

	liveCall := mkCall(call.LifecycleStatusInProgress)
	doneCall := mkCall(call.LifecycleStatusCompleted)
	freshCall := mkCall(call.LifecycleStatusInProgress)
	orphanCallID := uuid.New().String() // no Call row behind it

	mkSlot(liveCall, staleTime)
	mkSlot(doneCall, staleTime)
	mkSlot(orphanCallID, staleTime)
	mkSlot(freshCall, time.Now())

	result, err := manager.ReapStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Released)
	assert.Equal(t, 1, result.FailedCalls, "only the live call gets failed")

	// The fresh slot survives.
	active, err := manager.SystemActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	c, err := client.Call.Get(ctx, liveCall)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusFailed, c.LifecycleStatus)
	assert.Equal(t, "no completion received before slot reap", *c.FailureReason)

	c, err = client.Call.Get(ctx, doneCall)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusCompleted, c.LifecycleStatus, "terminal calls stay as they ended")
}
