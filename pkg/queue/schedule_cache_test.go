package queue

import (
	"context"
	"testing"
	"time"

	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustWindow builds a window for snapshot tests; the gate logic is pure and
// needs no database.
func mustWindow(t *testing.T, timezone, first, last string) *Window {
	t.Helper()
	w, err := NewWindow(timezone, first, last)
	require.NoError(t, err)
	return w
}

func TestSnapshotShouldProcess(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * time.Minute)
	past := now.Add(-30 * time.Minute)

	tests := []struct {
		name       string
		snap       Snapshot
		want       bool
		wantReason string
	}{
		{
			name:       "empty snapshot skips",
			snap:       Snapshot{RefreshedAt: now},
			want:       false,
			wantReason: SkipReasonSchedule,
		},
		{
			name:       "direct work ready",
			snap:       Snapshot{RefreshedAt: now, DirectReady: true},
			want:       true,
			wantReason: "direct work ready",
		},
		{
			name: "direct item scheduled in the future does not open the gate",
			snap: Snapshot{RefreshedAt: now, NextDirectAt: &future},
			want: false,
		},
		{
			name: "scheduled direct item becomes due between refreshes",
			snap: Snapshot{RefreshedAt: past, NextDirectAt: &now},
			want: true,
		},
		{
			name:       "flow work due",
			snap:       Snapshot{RefreshedAt: now, FlowReady: true},
			want:       true,
			wantReason: "flow work due",
		},
		{
			name: "active campaign with queued work and open window",
			snap: Snapshot{RefreshedAt: now, Campaigns: []CampaignSchedule{{
				CampaignID:  "camp-1",
				Status:      string(campaign.StatusActive),
				QueuedItems: 3,
				window:      mustWindow(t, "UTC", "09:00", "17:00"),
			}}},
			want:       true,
			wantReason: "campaign camp-1 window open",
		},
		{
			name: "open window but campaign drained",
			snap: Snapshot{RefreshedAt: now, Campaigns: []CampaignSchedule{{
				CampaignID:  "camp-1",
				Status:      string(campaign.StatusActive),
				QueuedItems: 0,
				window:      mustWindow(t, "UTC", "09:00", "17:00"),
			}}},
			want: false,
		},
		{
			name: "queued work but window closed",
			snap: Snapshot{RefreshedAt: now, Campaigns: []CampaignSchedule{{
				CampaignID:  "camp-1",
				Status:      string(campaign.StatusActive),
				QueuedItems: 3,
				window:      mustWindow(t, "UTC", "13:00", "17:00"),
			}}},
			want: false,
		},
		{
			name: "paused campaign never opens the gate",
			snap: Snapshot{RefreshedAt: now, Campaigns: []CampaignSchedule{{
				CampaignID:  "camp-1",
				Status:      string(campaign.StatusPaused),
				QueuedItems: 3,
				window:      mustWindow(t, "UTC", "09:00", "17:00"),
			}}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := tt.snap.ShouldProcess(now)
			assert.Equal(t, tt.want, got)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, reason)
			}
		})
	}
}

func TestSnapshotNextWake(t *testing.T) {
	now := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)

	t.Run("nothing pending", func(t *testing.T) {
		snap := Snapshot{RefreshedAt: now}
		assert.Nil(t, snap.NextWake(now))
	})

	t.Run("ready work wakes immediately", func(t *testing.T) {
		snap := Snapshot{RefreshedAt: now, DirectReady: true}
		wake := snap.NextWake(now)
		require.NotNil(t, wake)
		assert.True(t, wake.Equal(now))
	})

	t.Run("earliest of scheduled item and window opening wins", func(t *testing.T) {
		scheduled := now.Add(5 * time.Hour) // 11:00
		snap := Snapshot{
			RefreshedAt: now,
			NextFlowAt:  &scheduled,
			Campaigns: []CampaignSchedule{{
				CampaignID:  "camp-1",
				Status:      string(campaign.StatusActive),
				QueuedItems: 1,
				window:      mustWindow(t, "UTC", "09:00", "17:00"),
			}},
		}
		wake := snap.NextWake(now)
		require.NotNil(t, wake)
		// Window opens at 09:00, before the 11:00 flow item.
		assert.True(t, wake.Equal(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
	})

	t.Run("past scheduled time clamps to now", func(t *testing.T) {
		past := now.Add(-time.Hour)
		snap := Snapshot{RefreshedAt: now, NextDirectAt: &past}
		wake := snap.NextWake(now)
		require.NotNil(t, wake)
		assert.True(t, wake.Equal(now))
	})
}

func TestScheduleCacheGate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedTenant(t, client.Client, "tenant-1")
	seedAgent(t, client.Client, "tenant-1", "agent-1")

	cache := NewScheduleCache(client.Client, time.Hour)

	// Empty queue: gate stays closed.
	ok, reason := cache.ShouldProcess(ctx, time.Now())
	assert.False(t, ok)
	assert.Equal(t, SkipReasonSchedule, reason)

	// Direct work arrives. The snapshot is still fresh, so the stale gate
	// would miss it until Invalidate.
	svc := NewService(client.Client, testQueueConfig())
	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindDirect,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
	})
	require.NoError(t, err)

	ok, _ = cache.ShouldProcess(ctx, time.Now())
	assert.False(t, ok, "fresh snapshot hides new work until invalidated or expired")

	cache.Invalidate()
	ok, reason = cache.ShouldProcess(ctx, time.Now())
	assert.True(t, ok)
	assert.Equal(t, "direct work ready", reason)
}

func TestScheduleCacheCampaignVisibility(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedTenant(t, client.Client, "tenant-1")
	seedAgent(t, client.Client, "tenant-1", "agent-1")

	// Round-the-clock active campaign with one queued item.
	camp := seedCampaign(t, client.Client, "tenant-1", "agent-1", campaign.StatusActive, "00:00", "23:59")

	svc := NewService(client.Client, testQueueConfig())
	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:     "tenant-1",
		Kind:         queueitem.KindCampaign,
		AgentID:      "agent-1",
		ContactPhone: "+15550100",
		CampaignID:   camp.ID,
	})
	require.NoError(t, err)

	cache := NewScheduleCache(client.Client, time.Hour)
	snap, err := cache.Current(ctx, time.Now())
	require.NoError(t, err)

	require.Len(t, snap.Campaigns, 1)
	assert.Equal(t, camp.ID, snap.Campaigns[0].CampaignID)
	assert.Equal(t, 1, snap.Campaigns[0].QueuedItems)

	ok, reason := snap.ShouldProcess(time.Now())
	assert.True(t, ok)
	assert.Contains(t, reason, camp.ID)
}
