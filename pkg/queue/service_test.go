package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQueueService(t *testing.T) (*Service, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	seedTenant(t, client.Client, "tenant-1")
	seedAgent(t, client.Client, "tenant-1", "agent-1")
	return NewService(client.Client, testQueueConfig()), client
}

func TestEnqueueValidation(t *testing.T) {
	svc, _ := setupQueueService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		input  EnqueueInput
		errMsg string
	}{
		{
			name:   "missing tenant",
			input:  EnqueueInput{Kind: queueitem.KindDirect, AgentID: "agent-1", ContactPhone: "+15550100"},
			errMsg: "tenant_id",
		},
		{
			name:   "missing agent",
			input:  EnqueueInput{TenantID: "tenant-1", Kind: queueitem.KindDirect, ContactPhone: "+15550100"},
			errMsg: "agent_id",
		},
		{
			name:   "missing phone",
			input:  EnqueueInput{TenantID: "tenant-1", Kind: queueitem.KindDirect, AgentID: "agent-1"},
			errMsg: "contact_phone",
		},
		{
			name: "direct item with campaign",
			input: EnqueueInput{
				TenantID: "tenant-1", Kind: queueitem.KindDirect,
				AgentID: "agent-1", ContactPhone: "+15550100", CampaignID: "camp-1",
			},
			errMsg: "campaign_id",
		},
		{
			name: "unknown kind",
			input: EnqueueInput{
				TenantID: "tenant-1", Kind: queueitem.Kind("bulk"),
				AgentID: "agent-1", ContactPhone: "+15550100",
			},
			errMsg: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Enqueue(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEnqueuePositionsMonotonic(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		item, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID:     "tenant-1",
			Kind:         queueitem.KindDirect,
			AgentID:      "agent-1",
			ContactPhone: "+15550100",
		})
		require.NoError(t, err)
		assert.Equal(t, want, item.Position)
	}

	// Positions are per tenant: a second tenant starts at 1.
	seedTenant(t, client.Client, "tenant-2")
	seedAgent(t, client.Client, "tenant-2", "agent-2")
	item, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-2",
		Kind:         queueitem.KindDirect,
		AgentID:      "agent-2",
		ContactPhone: "+15550200",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Position)
}

func TestEnqueuePriorities(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	tests := []struct {
		name         string
		kind         queueitem.Kind
		contactName  string
		campaignID   string
		wantPriority int
	}{
		{"direct call", queueitem.KindDirect, "", "", 100},
		{"direct call with name gets no extra boost", queueitem.KindDirect, "Ada", "", 100},
		{"anonymous campaign dial", queueitem.KindCampaign, "", camp.ID, 0},
		{"named campaign contact", queueitem.KindCampaign, "Ada Lovelace", camp.ID, 100},
		{"whitespace name is anonymous", queueitem.KindCampaign, "   ", camp.ID, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.Enqueue(ctx, EnqueueInput{
				TenantID:     "tenant-1",
				Kind:         tt.kind,
				AgentID:      "agent-1",
				ContactPhone: "+15550100",
				ContactName:  tt.contactName,
				CampaignID:   tt.campaignID,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPriority, item.Priority)
		})
	}
}

func TestNextEligibleOrdering(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	enqueue := func(kind queueitem.Kind, name, campaignID string) *ent.QueueItem {
		item, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID:     "tenant-1",
			Kind:         kind,
			AgentID:      "agent-1",
			ContactPhone: "+15550100",
			ContactName:  name,
			CampaignID:   campaignID,
		})
		require.NoError(t, err)
		return item
	}

	// Enqueued campaign-first so ordering cannot ride on insertion order.
	anon := enqueue(queueitem.KindCampaign, "", camp.ID)
	named := enqueue(queueitem.KindCampaign, "Ada Lovelace", camp.ID)
	direct := enqueue(queueitem.KindDirect, "", "")

	dispatch := func() *ent.QueueItem {
		item, err := svc.NextEligible(ctx, "tenant-1", now)
		require.NoError(t, err)
		ok, err := svc.MarkProcessing(ctx, item.ID, uuid.New().String())
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = svc.MarkCompleted(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, ok)
		return item
	}

	// Direct first even though it arrived last, then the named contact, then
	// the anonymous dial.
	assert.Equal(t, direct.ID, dispatch().ID)
	assert.Equal(t, named.ID, dispatch().ID)
	assert.Equal(t, anon.ID, dispatch().ID)

	_, err := svc.NextEligible(ctx, "tenant-1", now)
	assert.ErrorIs(t, err, ErrNoEligibleItems)
}

func TestNextEligiblePositionBreaksTies(t *testing.T) {
	svc, _ := setupQueueService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	first, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550101",
	})
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550102",
	})
	require.NoError(t, err)

	item, err := svc.NextEligible(ctx, "tenant-1", now)
	require.NoError(t, err)
	assert.Equal(t, first.ID, item.ID, "equal priority falls back to enqueue position")
}

func TestNextEligibleWindowGating(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "09:00", "17:00")

	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindCampaign,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		CampaignID:   camp.ID,
	})
	require.NoError(t, err)

	// 03:00 UTC: window closed, the item must not surface.
	_, err = svc.NextEligible(ctx, "tenant-1", time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoEligibleItems)

	// Noon: window open.
	item, err := svc.NextEligible(ctx, "tenant-1", time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, camp.ID, *item.CampaignID)
}

func TestNextEligiblePausedCampaignExcluded(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusPaused, "00:00", "23:59")

	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindCampaign,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		CampaignID:   camp.ID,
	})
	require.NoError(t, err)

	_, err = svc.NextEligible(ctx, "tenant-1", time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoEligibleItems)
}

func TestNextEligibleFlowItems(t *testing.T) {
	svc, _ := setupQueueService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)

	// Flow-created items are campaign-kind without a campaign: no calling
	// window applies, only scheduled_for.
	future := now.Add(time.Hour)
	item, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindCampaign,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		ScheduledFor: &future,
	})
	require.NoError(t, err)

	_, err = svc.NextEligible(ctx, "tenant-1", now)
	assert.ErrorIs(t, err, ErrNoEligibleItems, "not due yet")

	got, err := svc.NextEligible(ctx, "tenant-1", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
}

func TestNextEligibleScheduledDirect(t *testing.T) {
	svc, _ := setupQueueService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	scheduled := now.Add(30 * time.Minute)
	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindDirect,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		ScheduledFor: &scheduled,
	})
	require.NoError(t, err)

	_, err = svc.NextEligible(ctx, "tenant-1", now)
	assert.ErrorIs(t, err, ErrNoEligibleItems)

	got, err := svc.NextEligible(ctx, "tenant-1", scheduled)
	require.NoError(t, err)
	assert.NotNil(t, got, "scheduled_for is inclusive")
}

func TestMarkProcessingTransitions(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()

	item, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)

	callID := uuid.New().String()
	ok, err := svc.MarkProcessing(ctx, item.ID, callID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := client.QueueItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusProcessing, got.Status)
	assert.Equal(t, callID, *got.CallID)
	assert.Equal(t, 1, got.Attempts)

	// A second claim loses the swap.
	ok, err = svc.MarkProcessing(ctx, item.ID, uuid.New().String())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.MarkCompleted(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MarkCompleted(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, ok, "completed is terminal")

	ok, err = svc.MarkFailed(ctx, item.ID, "too late")
	require.NoError(t, err)
	assert.False(t, ok, "terminal items cannot fail")
}

func TestMarkFailedRecordsReason(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()

	item, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)

	ok, err := svc.MarkFailed(ctx, item.ID, "provider rejected dial")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := client.QueueItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusFailed, got.Status)
	assert.Equal(t, "provider rejected dial", *got.FailureReason)
}

func TestCancel(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()

	t.Run("queued item cancels", func(t *testing.T) {
		item, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID: "tenant-1", Kind: queueitem.KindDirect,
			AgentID: "agent-1", ContactPhone: "+15550100",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, "tenant-1", item.ID))
		got, err := client.QueueItem.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, queueitem.StatusCancelled, got.Status)
	})

	t.Run("processing item refuses", func(t *testing.T) {
		item, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID: "tenant-1", Kind: queueitem.KindDirect,
			AgentID: "agent-1", ContactPhone: "+15550100",
		})
		require.NoError(t, err)
		ok, err := svc.MarkProcessing(ctx, item.ID, uuid.New().String())
		require.NoError(t, err)
		require.True(t, ok)

		err = svc.Cancel(ctx, "tenant-1", item.ID)
		assert.ErrorIs(t, err, services.ErrConcurrentModification)
	})

	t.Run("unknown item", func(t *testing.T) {
		err := svc.Cancel(ctx, "tenant-1", uuid.New().String())
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("other tenant's item stays invisible", func(t *testing.T) {
		item, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID: "tenant-1", Kind: queueitem.KindDirect,
			AgentID: "agent-1", ContactPhone: "+15550100",
		})
		require.NoError(t, err)

		seedTenant(t, client.Client, "tenant-2")
		err = svc.Cancel(ctx, "tenant-2", item.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestStats(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	for i := 0; i < 2; i++ {
		_, err := svc.Enqueue(ctx, EnqueueInput{
			TenantID: "tenant-1", Kind: queueitem.KindDirect,
			AgentID: "agent-1", ContactPhone: "+15550100",
		})
		require.NoError(t, err)
	}
	campItem, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindCampaign,
		AgentID: "agent-1", ContactPhone: "+15550100", CampaignID: camp.ID,
	})
	require.NoError(t, err)
	ok, err := svc.MarkProcessing(ctx, campItem.ID, uuid.New().String())
	require.NoError(t, err)
	require.True(t, ok)

	stats, err := svc.Stats(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DirectQueued)
	assert.Equal(t, 0, stats.DirectProcessing)
	assert.Equal(t, 0, stats.CampaignQueued)
	assert.Equal(t, 1, stats.CampaignProcessing)
	assert.Equal(t, 2, stats.TotalQueued())
}

func TestPosition(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	anon, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindCampaign,
		AgentID: "agent-1", ContactPhone: "+15550100", CampaignID: camp.ID,
	})
	require.NoError(t, err)
	named, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindCampaign,
		AgentID: "agent-1", ContactPhone: "+15550100", ContactName: "Ada", CampaignID: camp.ID,
	})
	require.NoError(t, err)
	direct, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		item *ent.QueueItem
		want int
	}{
		{direct, 1},
		{named, 2},
		{anon, 3},
	} {
		pos, err := svc.Position(ctx, tc.item)
		require.NoError(t, err)
		assert.Equal(t, tc.want, pos)
	}
}

func TestEstimatedWaitMinutes(t *testing.T) {
	svc := &Service{cfg: testQueueConfig()} // AvgCallMinutes: 3

	tests := []struct {
		name     string
		position int
		limit    int
		want     int
	}{
		{"front of queue single slot", 1, 1, 3},
		{"two ahead two slots", 2, 2, 3},
		{"rounds up", 5, 2, 8},
		{"zero position", 0, 4, 0},
		{"zero limit treated as one", 2, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.EstimatedWaitMinutes(tt.position, tt.limit))
		})
	}
}

func TestOldestQueued(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()

	_, err := svc.OldestQueued(ctx, "tenant-1")
	assert.ErrorIs(t, err, ErrNoEligibleItems)

	first, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)
	// Force distinct created_at so ordering does not depend on insert timing.
	_, err = client.QueueItem.UpdateOneID(first.ID).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550101",
	})
	require.NoError(t, err)

	oldest, err := svc.OldestQueued(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, oldest.ID)
}

func TestTenantsWithQueuedWork(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	now := time.Now()

	seedTenant(t, client.Client, "tenant-2")
	seedAgent(t, client.Client, "tenant-2", "agent-2")
	seedTenant(t, client.Client, "tenant-3")
	seedAgent(t, client.Client, "tenant-3", "agent-3")

	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-2", Kind: queueitem.KindDirect,
		AgentID: "agent-2", ContactPhone: "+15550200",
	})
	require.NoError(t, err)

	// Future-scheduled work does not count yet.
	future := now.Add(time.Hour)
	_, err = svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-3", Kind: queueitem.KindDirect,
		AgentID: "agent-3", ContactPhone: "+15550300", ScheduledFor: &future,
	})
	require.NoError(t, err)

	tenants, err := svc.TenantsWithQueuedWork(ctx, now)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tenant-1", "tenant-2"}, tenants)
}

func TestReconcileStaleProcessing(t *testing.T) {
	svc, client := setupQueueService(t)
	ctx := context.Background()
	stale := time.Now().Add(-2 * time.Hour)

	mkProcessing := func(callID *string) *ent.QueueItem {
		builder := client.QueueItem.Create().
			SetID(uuid.New().String()).
			SetTenantID("tenant-1").
			SetKind(queueitem.KindDirect).
			SetStatus(queueitem.StatusProcessing).
			SetPriority(100).
			SetPosition(1).
			SetAgentID("agent-1").
			SetContactPhone("+15550100").
			SetAttempts(1)
		if callID != nil {
			builder.SetCallID(*callID)
		}
		item, err := builder.Save(ctx)
		require.NoError(t, err)
		item, err = client.QueueItem.UpdateOneID(item.ID).SetUpdatedAt(stale).Save(ctx)
		require.NoError(t, err)
		return item
	}

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

	completedCall := mkCall(call.LifecycleStatusCompleted)
	liveCall := mkCall(call.LifecycleStatusInProgress)

	orphan := mkProcessing(nil)
	settled := mkProcessing(&completedCall)
	inFlight := mkProcessing(&liveCall)

	completed, failed, err := svc.ReconcileStaleProcessing(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, failed)

	for _, tc := range []struct {
		item *ent.QueueItem
		want queueitem.Status
	}{
		{orphan, queueitem.StatusFailed},
		{settled, queueitem.StatusCompleted},
		{inFlight, queueitem.StatusProcessing},
	} {
		got, err := client.QueueItem.Get(ctx, tc.item.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Status)
	}

	// Fresh processing items are untouched regardless of call state.
	fresh := mkProcessing(nil)
	_, err = client.QueueItem.UpdateOneID(fresh.ID).SetUpdatedAt(time.Now()).Save(ctx)
	require.NoError(t, err)
	_, _, err = svc.ReconcileStaleProcessing(ctx, time.Hour)
	require.NoError(t, err)
	got, err := client.QueueItem.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, queueitem.StatusProcessing, got.Status)
}

func TestGet(t *testing.T) {
	svc, _ := setupQueueService(t)
	ctx := context.Background()

	item, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1", Kind: queueitem.KindDirect,
		AgentID: "agent-1", ContactPhone: "+15550100",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "tenant-1", item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	_, err = svc.Get(ctx, "tenant-1", uuid.New().String())
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
