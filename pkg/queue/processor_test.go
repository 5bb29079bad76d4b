package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/voice"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDialer stands in for the voice provider. execID pins the returned
// execution id; empty means a fresh one per call.
type fakeDialer struct {
	mu     sync.Mutex
	calls  []*voice.CreateCallRequest
	execID string
	err    error
}

func (f *fakeDialer) CreateCall(_ context.Context, req *voice.CreateCallRequest) (*voice.CreateCallResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, req)
	id := f.execID
	if id == "" {
		id = "exec-" + uuid.New().String()
	}
	return &voice.CreateCallResponse{
		ExecutionID: id,
		Status:      "queued",
	}, nil
}

func (f *fakeDialer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type processorFixture struct {
	client *database.Client
	dialer *fakeDialer
	items  *Service
	slots  *concurrency.Manager
	proc   *Processor
}

func setupProcessor(t *testing.T, systemLimit, tenantLimit int) *processorFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	dialer := &fakeDialer{}
	items := NewService(client.Client, testQueueConfig())
	slots := concurrency.NewManager(client.Client, systemLimit, tenantLimit)
	dispatcher := NewDispatcher(client.Client, dialer, NewInflightIndex(), &config.WebhookConfig{
		CallbackBaseURL: "https://hooks.example.com",
	})
	proc := NewProcessor(ProcessorDeps{
		DB:    client.DB(),
		Items: items,
		// TTL zero keeps the gate honest between assertions.
		Cache:      NewScheduleCache(client.Client, 0),
		Slots:      slots,
		Billing:    billing.NewService(client.Client),
		Dispatcher: dispatcher,
	})
	return &processorFixture{
		client: client,
		dialer: dialer,
		items:  items,
		slots:  slots,
		proc:   proc,
	}
}

func (f *processorFixture) enqueueDirect(t *testing.T, tenantID, agentID string) string {
	t.Helper()
	item, err := f.items.Enqueue(context.Background(), EnqueueInput{
		TenantID:     tenantID,
		Kind:         queueitem.KindDirect,
		AgentID:      agentID,
		ContactPhone: "+15550100",
	})
	require.NoError(t, err)
	return item.ID
}

func TestProcessSmartSkipsWhenQueueEmpty(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	seedTenant(t, fx.client.Client, "tenant-1")

	result, err := fx.proc.ProcessSmart(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, SkipReasonSchedule, result.SkipReason)
	assert.Zero(t, fx.dialer.callCount())
}

func TestProcessSmartSkipsOffHoursCampaign(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")

	// Pick a one-hour window guaranteed closed right now; windows cannot
	// cross midnight, so the far side of the clock is chosen by half.
	first, last := "22:00", "23:00"
	if time.Now().UTC().Hour() >= 12 {
		first, last = "01:00", "02:00"
	}
	camp := seedCampaign(t, fx.client.Client, "tenant-1", "agent-1", campaign.StatusActive, first, last)

	_, err := fx.items.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindCampaign,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		CampaignID:   camp.ID,
	})
	require.NoError(t, err)

	result, err := fx.proc.ProcessSmart(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, SkipReasonSchedule, result.SkipReason)

	// The item is untouched, waiting for the window.
	stats, err := fx.items.Stats(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CampaignQueued)
}

func TestProcessSmartDispatchesDirectWork(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")
	itemID := fx.enqueueDirect(t, "tenant-1", "agent-1")

	result, err := fx.proc.ProcessSmart(ctx)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.Dispatched)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, fx.dialer.callCount())

	item, err := fx.client.QueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusCompleted, item.Status)
	require.NotNil(t, item.CallID)

	// The Call row exists with the provider execution recorded, and the slot
	// stays held until the completion webhook releases it.
	c, err := fx.client.Call.Get(ctx, *item.CallID)
	require.NoError(t, err)
	assert.NotNil(t, c.ExecutionID)
	assert.Equal(t, itemID, *c.QueueItemID)

	usage, err := fx.slots.Usage(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, usage.TenantActive)
}

func TestProcessorLeavesItemsQueuedAtTenantCapacity(t *testing.T) {
	fx := setupProcessor(t, 10, 1)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")
	fx.enqueueDirect(t, "tenant-1", "agent-1")
	fx.enqueueDirect(t, "tenant-1", "agent-1")

	result, err := fx.proc.ProcessImmediate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Dispatched)
	assert.Equal(t, 0, result.Failed, "capacity overflow must not fail items")

	stats, err := fx.items.Stats(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DirectQueued, "second item waits for a free slot")
}

func TestProcessorSkipsAtSystemCapacity(t *testing.T) {
	fx := setupProcessor(t, 1, 5)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")
	seedTenant(t, fx.client.Client, "tenant-2")

	// Another tenant holds the only system slot.
	res, err := fx.slots.Reserve(ctx, "tenant-2", uuid.New().String(), activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	fx.enqueueDirect(t, "tenant-1", "agent-1")

	result, err := fx.proc.ProcessImmediate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, SkipReasonCapacity, result.SkipReason)

	stats, err := fx.items.Stats(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DirectQueued)
}

func TestProcessorFailsItemsWithoutCredit(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	ctx := context.Background()

	tenant, err := fx.client.Tenant.Create().
		SetID("tenant-broke").
		SetName("Broke").
		SetEmail("broke@example.com").
		SetCredits(0).
		Save(ctx)
	require.NoError(t, err)
	seedAgent(t, fx.client.Client, tenant.ID, "agent-1")
	itemID := fx.enqueueDirect(t, tenant.ID, "agent-1")

	result, err := fx.proc.ProcessImmediate(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dispatched)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, fx.dialer.callCount())

	item, err := fx.client.QueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusFailed, item.Status)
	assert.Equal(t, "insufficient credits", *item.FailureReason)
}

func TestProcessorSettlesFailedDispatch(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")
	itemID := fx.enqueueDirect(t, "tenant-1", "agent-1")

	fx.dialer.err = errors.New("provider timeout")

	result, err := fx.proc.ProcessImmediate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dispatched)
	assert.Equal(t, 1, result.Failed)

	item, err := fx.client.QueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusFailed, item.Status)
	assert.Contains(t, *item.FailureReason, "provider timeout")

	// The slot came back and the pre-created call row settled as failed.
	usage, err := fx.slots.Usage(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 0, usage.TenantActive)

	c, err := fx.client.Call.Get(ctx, *item.CallID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusFailed, c.Status)
	assert.Equal(t, call.LifecycleStatusFailed, c.LifecycleStatus)
}

func TestProcessorDrainsMultipleTenants(t *testing.T) {
	fx := setupProcessor(t, 10, 2)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		tenantID := fmt.Sprintf("tenant-%d", i)
		agentID := fmt.Sprintf("agent-%d", i)
		seedTenant(t, fx.client.Client, tenantID)
		seedAgent(t, fx.client.Client, tenantID, agentID)
		fx.enqueueDirect(t, tenantID, agentID)
	}

	result, err := fx.proc.ProcessSmart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TenantsSeen)
	assert.Equal(t, 3, result.Dispatched)
	assert.Equal(t, 3, fx.dialer.callCount())
}

func TestProcessorSkipsCancelledItemWithoutFailing(t *testing.T) {
	fx := setupProcessor(t, 10, 5)
	ctx := context.Background()
	seedTenant(t, fx.client.Client, "tenant-1")
	seedAgent(t, fx.client.Client, "tenant-1", "agent-1")
	itemID := fx.enqueueDirect(t, "tenant-1", "agent-1")

	require.NoError(t, fx.items.Cancel(ctx, "tenant-1", itemID))

	result, err := fx.proc.ProcessImmediate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dispatched)
	assert.Equal(t, 0, result.Failed)
	assert.Zero(t, fx.dialer.callCount())

	item, err := fx.client.QueueItem.Get(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusCancelled, item.Status)
}
