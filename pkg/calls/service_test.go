package calls

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/queue"
	"github.com/ringstack/ringstack/pkg/services"
	"github.com/ringstack/ringstack/pkg/voice"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVoice covers both provider surfaces the call service touches.
type fakeVoice struct {
	mu      sync.Mutex
	dials   int
	stops   []string
	dialErr error
	stopErr error
}

func (f *fakeVoice) CreateCall(_ context.Context, _ *voice.CreateCallRequest) (*voice.CreateCallResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dialErr != nil {
		return nil, f.dialErr
	}
	f.dials++
	return &voice.CreateCallResponse{ExecutionID: "exec-" + uuid.New().String(), Status: "queued"}, nil
}

func (f *fakeVoice) StopCall(_ context.Context, executionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopErr != nil {
		return f.stopErr
	}
	f.stops = append(f.stops, executionID)
	return nil
}

type callFixture struct {
	client *database.Client
	voice  *fakeVoice
	slots  *concurrency.Manager
	queue  *queue.Service
	svc    *Service
}

func setupCallService(t *testing.T, systemLimit, tenantLimit int) *callFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	fv := &fakeVoice{}
	slots := concurrency.NewManager(client.Client, systemLimit, tenantLimit)
	queueSvc := queue.NewService(client.Client, config.DefaultQueueConfig())
	dispatcher := queue.NewDispatcher(client.Client, fv, queue.NewInflightIndex(), &config.WebhookConfig{
		CallbackBaseURL: "https://hooks.example.com",
	})
	svc := NewService(client.Client, slots, queueSvc, dispatcher, fv, billing.NewService(client.Client))
	return &callFixture{client: client, voice: fv, slots: slots, queue: queueSvc, svc: svc}
}

func (fx *callFixture) seedTenant(t *testing.T, id string, credits int) {
	t.Helper()
	_, err := fx.client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(credits).
		Save(context.Background())
	require.NoError(t, err)
}

func (fx *callFixture) seedAgent(t *testing.T, tenantID, id string) {
	t.Helper()
	_, err := fx.client.Agent.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetName("Agent " + id).
		SetProviderAgentID("prov-" + id).
		Save(context.Background())
	require.NoError(t, err)
}

func TestInitiateDispatchesWhenSlotFree(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.seedAgent(t, "tenant-1", "agent-1")

	res, err := fx.svc.Initiate(ctx, InitiateInput{
		TenantID:     "tenant-1",
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
	})
	require.NoError(t, err)
	assert.False(t, res.Queued)
	require.NotEmpty(t, res.CallID)
	assert.Equal(t, 1, fx.voice.dials)

	c, err := fx.client.Call.Get(ctx, res.CallID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusInitiated, c.Status)
	assert.NotNil(t, c.ExecutionID)

	usage, err := fx.slots.Usage(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 1, usage.TenantActive, "slot stays held until completion")
}

func TestInitiateQueuesAtCapacityInsteadOfRejecting(t *testing.T) {
	fx := setupCallService(t, 10, 1)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.seedAgent(t, "tenant-1", "agent-1")

	first, err := fx.svc.Initiate(ctx, InitiateInput{
		TenantID: "tenant-1", AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)
	require.False(t, first.Queued)

	second, err := fx.svc.Initiate(ctx, InitiateInput{
		TenantID: "tenant-1", AgentID: "agent-1", ContactPhone: "+15550101",
	})
	require.NoError(t, err, "capacity never turns a request away")
	assert.True(t, second.Queued)
	assert.NotEmpty(t, second.QueueItemID)
	assert.Equal(t, 1, second.QueuePosition)
	assert.Equal(t, concurrency.ReasonTenantCapacity, second.Reason)
	assert.Equal(t, 3, second.EstimatedWaitMinutes)

	item, err := fx.client.QueueItem.Get(ctx, second.QueueItemID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.KindDirect, item.Kind)
	assert.Equal(t, queueitem.StatusQueued, item.Status)
	assert.Equal(t, 1, fx.voice.dials, "no dial for the queued request")
}

func TestInitiateRequiresCredit(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 0)
	fx.seedAgent(t, "tenant-1", "agent-1")

	_, err := fx.svc.Initiate(ctx, InitiateInput{
		TenantID: "tenant-1", AgentID: "agent-1", ContactPhone: "+15550100",
	})
	assert.ErrorIs(t, err, services.ErrInsufficientCredits)
	assert.Zero(t, fx.voice.dials)
}

func TestInitiateValidation(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()

	for _, tt := range []struct {
		name  string
		input InitiateInput
	}{
		{"missing tenant", InitiateInput{AgentID: "a", ContactPhone: "+1"}},
		{"missing agent", InitiateInput{TenantID: "t", ContactPhone: "+1"}},
		{"missing phone", InitiateInput{TenantID: "t", AgentID: "a"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.Initiate(ctx, tt.input)
			assert.True(t, services.IsValidationError(err))
		})
	}
}

func TestInitiateReleasesSlotOnDispatchFailure(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.seedAgent(t, "tenant-1", "agent-1")
	fx.voice.dialErr = errors.New("provider down")

	_, err := fx.svc.Initiate(ctx, InitiateInput{
		TenantID: "tenant-1", AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.Error(t, err)

	active, err := fx.slots.SystemActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, active, "failed dispatch must not leak the slot")
}

func TestStopLiveCall(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		SetExecutionID("exec-live").
		SetLifecycleStatus(call.LifecycleStatusInProgress).
		SetStatus(call.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	got, err := fx.svc.Stop(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, []string{"exec-live"}, fx.voice.stops)

	// The provider's completion webhook settles the row; Stop does not.
	fresh, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusInProgress, fresh.LifecycleStatus)
}

func TestStopFinishedCall(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		SetLifecycleStatus(call.LifecycleStatusCompleted).
		SetStatus(call.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	_, err = fx.svc.Stop(ctx, "tenant-1", c.ID)
	assert.ErrorIs(t, err, ErrAlreadyFinished)
	assert.Empty(t, fx.voice.stops)
}

func TestStopBeforeProviderDispatchCancelsLocally(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	// Dispatch crashed between slot reserve and the provider call: row
	// exists, no execution id, slot held.
	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		Save(ctx)
	require.NoError(t, err)
	res, err := fx.slots.Reserve(ctx, "tenant-1", c.ID, activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	got, err := fx.svc.Stop(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusCancelled, got.Status)
	assert.Equal(t, call.LifecycleStatusCancelled, got.LifecycleStatus)
	assert.Empty(t, fx.voice.stops, "nothing to stop at the provider")

	active, err := fx.slots.SystemActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, active)
}

func TestStopProviderFailure(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.voice.stopErr = errors.New("timeout")

	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		SetExecutionID("exec-live").
		SetLifecycleStatus(call.LifecycleStatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	_, err = fx.svc.Stop(ctx, "tenant-1", c.ID)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)
}

func TestStopUnknownCall(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.seedTenant(t, "tenant-2", 10)

	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		Save(ctx)
	require.NoError(t, err)

	_, err = fx.svc.Stop(ctx, "tenant-2", c.ID)
	assert.ErrorIs(t, err, services.ErrNotFound, "cross-tenant lookups miss")

	_, err = fx.svc.Stop(ctx, "tenant-1", uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetIncludesTranscriptFlag(t *testing.T) {
	fx := setupCallService(t, 10, 5)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550100").
		Save(ctx)
	require.NoError(t, err)

	detail, err := fx.svc.Get(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.False(t, detail.HasTranscript)

	_, err = fx.client.Transcript.Create().
		SetID(uuid.New().String()).
		SetCallID(c.ID).
		SetTenantID("tenant-1").
		SetContent("agent: Hello").
		Save(ctx)
	require.NoError(t, err)

	detail, err = fx.svc.Get(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.True(t, detail.HasTranscript)
}

func TestQueueStatus(t *testing.T) {
	fx := setupCallService(t, 10, 2)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	fx.seedAgent(t, "tenant-1", "agent-1")

	// Empty queue: zero stats, no wait.
	status, err := fx.svc.QueueStatus(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Zero(t, status.Stats.TotalQueued())
	assert.Zero(t, status.OldestPosition)

	for i := 0; i < 2; i++ {
		_, err := fx.queue.Enqueue(ctx, queue.EnqueueInput{
			TenantID:     "tenant-1",
			Kind:         queueitem.KindDirect,
			AgentID:      "agent-1",
			ContactPhone: "+15550100",
		})
		require.NoError(t, err)
	}

	status, err = fx.svc.QueueStatus(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Stats.DirectQueued)
	assert.Equal(t, 1, status.OldestPosition)
	assert.Equal(t, 2, status.Slots.TenantLimit)
	// Rank 1 with two slots and three-minute calls.
	assert.Equal(t, 2, status.EstimatedWaitMinutes)
}
