package queue

import (
	"context"
	"testing"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCampaignService(t *testing.T) (*CampaignService, *ScheduleCache, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cache := NewScheduleCache(client.Client, time.Minute)
	svc := NewCampaignService(client.Client, NewService(client.Client, testQueueConfig()), cache)
	return svc, cache, client.Client
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	c, err := svc.Create(ctx, CreateCampaignInput{
		TenantID:      "tenant-1",
		AgentID:       "agent-1",
		Name:          "Spring Outreach",
		Timezone:      "America/New_York",
		FirstCallTime: "10:00",
		LastCallTime:  "16:00",
		FromPhone:     "+15550000",
	})
	require.NoError(t, err)

	assert.Equal(t, campaign.StatusDraft, c.Status, "campaigns are born draft")
	assert.Equal(t, "America/New_York", c.Timezone)
	assert.Equal(t, "10:00", c.FirstCallTime)
	assert.Equal(t, "16:00", c.LastCallTime)
	assert.Zero(t, c.TotalContacts)
	assert.Zero(t, c.CompletedCalls)
}

func TestCreateCampaignDefaultsWindow(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	c, err := svc.Create(ctx, CreateCampaignInput{
		TenantID: "tenant-1",
		AgentID:  "agent-1",
		Name:     "Defaults",
	})
	require.NoError(t, err)
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, "09:00", c.FirstCallTime)
	assert.Equal(t, "17:00", c.LastCallTime)
}

func TestCreateCampaignValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	inactive, err := client.Agent.Create().
		SetID("agent-off").
		SetTenantID("tenant-1").
		SetName("Retired").
		SetProviderAgentID("prov-off").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	tests := []struct {
		name   string
		in     CreateCampaignInput
		errMsg string
	}{
		{
			name:   "missing tenant",
			in:     CreateCampaignInput{AgentID: "agent-1", Name: "X"},
			errMsg: "tenant_id",
		},
		{
			name:   "missing name",
			in:     CreateCampaignInput{TenantID: "tenant-1", AgentID: "agent-1"},
			errMsg: "name",
		},
		{
			name: "midnight-crossing window",
			in: CreateCampaignInput{
				TenantID: "tenant-1", AgentID: "agent-1", Name: "X",
				FirstCallTime: "22:00", LastCallTime: "02:00",
			},
			errMsg: "must not cross midnight",
		},
		{
			name: "unknown timezone",
			in: CreateCampaignInput{
				TenantID: "tenant-1", AgentID: "agent-1", Name: "X",
				Timezone: "Mars/Olympus_Mons",
			},
			errMsg: "timezone",
		},
		{
			name:   "unknown agent",
			in:     CreateCampaignInput{TenantID: "tenant-1", AgentID: "ghost", Name: "X"},
			errMsg: "unknown or inactive agent",
		},
		{
			name:   "inactive agent",
			in:     CreateCampaignInput{TenantID: "tenant-1", AgentID: inactive.ID, Name: "X"},
			errMsg: "unknown or inactive agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCampaignStatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	c, err := svc.Create(ctx, CreateCampaignInput{
		TenantID: "tenant-1", AgentID: "agent-1", Name: "Lifecycle",
	})
	require.NoError(t, err)

	// draft -> active -> paused -> active again.
	c, err = svc.Activate(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusActive, c.Status)

	again, err := svc.Activate(ctx, "tenant-1", c.ID)
	require.NoError(t, err, "activating an active campaign is a no-op")
	assert.Equal(t, campaign.StatusActive, again.Status)

	c, err = svc.Pause(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusPaused, c.Status)

	c, err = svc.Activate(ctx, "tenant-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusActive, c.Status)
}

func TestCampaignTransitionGuards(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedTenant(t, client, "tenant-2")
	seedAgent(t, client, "tenant-1", "agent-1")

	draft := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusDraft, "09:00", "17:00")
	finished := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusCompleted, "09:00", "17:00")

	_, err := svc.Pause(ctx, "tenant-1", draft.ID)
	require.ErrorIs(t, err, services.ErrConcurrentModification, "only active campaigns pause")

	_, err = svc.Activate(ctx, "tenant-1", finished.ID)
	require.ErrorIs(t, err, services.ErrConcurrentModification, "completed campaigns stay completed")

	_, err = svc.Activate(ctx, "tenant-2", draft.ID)
	require.ErrorIs(t, err, services.ErrNotFound, "campaigns are invisible across tenants")
}

func TestCampaignTransitionInvalidatesScheduleCache(t *testing.T) {
	ctx := context.Background()
	svc, cache, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	c, err := svc.Create(ctx, CreateCampaignInput{
		TenantID: "tenant-1", AgentID: "agent-1", Name: "Cache probe",
		FirstCallTime: "00:00", LastCallTime: "23:59",
	})
	require.NoError(t, err)

	// Prime the cache with an empty snapshot; an activation must force the
	// next gate to rebuild.
	ok, _ := cache.ShouldProcess(ctx, time.Now())
	require.False(t, ok)

	_, err = svc.Activate(ctx, "tenant-1", c.ID)
	require.NoError(t, err)

	_, err = svc.EnqueueContacts(ctx, "tenant-1", c.ID, []CampaignContact{
		{Phone: "+15550101"},
	})
	require.NoError(t, err)

	ok, reason := cache.ShouldProcess(ctx, time.Now())
	assert.True(t, ok, "the fresh snapshot sees the activated campaign: %s", reason)
}

func TestEnqueueContacts(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	camp := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	enqueued, err := svc.EnqueueContacts(ctx, "tenant-1", camp.ID, []CampaignContact{
		{Phone: "+15550101", Name: "Jane Smith", Variables: map[string]interface{}{"plan": "pro"}},
		{Name: "No Phone"},
		{Phone: "+15550102"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, enqueued, "contacts without a phone are skipped")

	refreshed, err := svc.Get(ctx, "tenant-1", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.TotalContacts)

	items, err := client.QueueItem.Query().
		Where(queueitem.CampaignIDEQ(camp.ID)).
		Order(ent.Asc(queueitem.FieldPosition)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, queueitem.KindCampaign, items[0].Kind)
	assert.Equal(t, "agent-1", items[0].AgentID, "items dial with the campaign's agent")
	assert.Equal(t, "+15550101", items[0].ContactPhone)
	require.NotNil(t, items[0].ContactName)
	assert.Equal(t, "Jane Smith", *items[0].ContactName)
	assert.Equal(t, map[string]interface{}{"plan": "pro"}, items[0].Variables)
	assert.Nil(t, items[0].ScheduledFor)
}

func TestEnqueueContactsFutureStartDateDefers(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	camp, err := svc.Create(ctx, CreateCampaignInput{
		TenantID:  "tenant-1",
		AgentID:   "agent-1",
		Name:      "Launch day",
		StartDate: &start,
	})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, "tenant-1", camp.ID)
	require.NoError(t, err)

	_, err = svc.EnqueueContacts(ctx, "tenant-1", camp.ID, []CampaignContact{
		{Phone: "+15550101"},
	})
	require.NoError(t, err)

	item, err := client.QueueItem.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, item.ScheduledFor)
	assert.WithinDuration(t, start, *item.ScheduledFor, time.Second)
}

func TestEnqueueContactsGuards(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	camp := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusActive, "09:00", "17:00")
	done := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusCompleted, "09:00", "17:00")

	_, err := svc.EnqueueContacts(ctx, "tenant-1", camp.ID, nil)
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.Contains(t, err.Error(), "at least one contact")

	_, err = svc.EnqueueContacts(ctx, "tenant-1", done.ID, []CampaignContact{{Phone: "+15550101"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign is finished")

	_, err = svc.EnqueueContacts(ctx, "tenant-1", "missing", []CampaignContact{{Phone: "+15550101"}})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecordCallCompleted(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	camp := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	enqueued, err := svc.EnqueueContacts(ctx, "tenant-1", camp.ID, []CampaignContact{
		{Phone: "+15550101"},
		{Phone: "+15550102"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, enqueued)

	// Walk both items through the queue the way the processor would.
	items, err := client.QueueItem.Query().
		Where(queueitem.CampaignIDEQ(camp.ID)).
		Order(ent.Asc(queueitem.FieldPosition)).
		All(ctx)
	require.NoError(t, err)
	queueSvc := NewService(client, testQueueConfig())
	for i, item := range items {
		ok, err := queueSvc.MarkProcessing(ctx, item.ID, "call-"+item.ID)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = queueSvc.MarkCompleted(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, ok)

		c, finished, err := svc.RecordCallCompleted(ctx, camp.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, c.CompletedCalls)
		if i == 0 {
			assert.False(t, finished, "half-done campaigns stay active")
			assert.Equal(t, campaign.StatusActive, c.Status)
		} else {
			assert.True(t, finished, "the last completion flips the campaign")
			assert.Equal(t, campaign.StatusCompleted, c.Status)
		}
	}

	// A late replay bumps the counter but can never finish the campaign a
	// second time.
	_, finished, err := svc.RecordCallCompleted(ctx, camp.ID)
	require.NoError(t, err)
	assert.False(t, finished)

	_, _, err = svc.RecordCallCompleted(ctx, "missing")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecordCallCompletedWaitsForLiveItems(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupCampaignService(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	camp := seedCampaign(t, client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")
	_, err := svc.EnqueueContacts(ctx, "tenant-1", camp.ID, []CampaignContact{
		{Phone: "+15550101"},
		{Phone: "+15550102"},
	})
	require.NoError(t, err)

	// One item still queued: even with completed_calls at total_contacts the
	// campaign must not finish.
	items, err := client.QueueItem.Query().
		Where(queueitem.CampaignIDEQ(camp.ID)).
		All(ctx)
	require.NoError(t, err)
	queueSvc := NewService(client, testQueueConfig())
	ok, err := queueSvc.MarkProcessing(ctx, items[0].ID, "call-1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = queueSvc.MarkCompleted(ctx, items[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, finished, err := svc.RecordCallCompleted(ctx, camp.ID)
	require.NoError(t, err)
	assert.False(t, finished)

	_, finished, err = svc.RecordCallCompleted(ctx, camp.ID)
	require.NoError(t, err)
	assert.False(t, finished, "a queued sibling keeps the campaign open")

	c, err := svc.Get(ctx, "tenant-1", camp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusActive, c.Status)
}
