package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
)

// CampaignSchedule is one campaign's calling window plus how much queued
// work it has, as of the snapshot. Paused campaigns appear for visibility
// but never open the processing gate.
type CampaignSchedule struct {
	CampaignID    string `json:"campaign_id"`
	TenantID      string `json:"tenant_id"`
	Status        string `json:"status"`
	Timezone      string `json:"timezone"`
	FirstCallTime string `json:"first_call_time"`
	LastCallTime  string `json:"last_call_time"`
	QueuedItems   int    `json:"queued_items"`

	window *Window
}

func (c CampaignSchedule) dispatchable() bool {
	return c.Status == string(campaign.StatusActive) && c.QueuedItems > 0 && c.window != nil
}

// Snapshot is a point-in-time view of everything the processor gate needs
// to decide whether a pass could possibly dispatch work.
type Snapshot struct {
	RefreshedAt time.Time `json:"refreshed_at"`

	// DirectReady reports queued direct work that was already dispatchable
	// at refresh time. NextDirectAt is the earliest future scheduled_for.
	DirectReady  bool       `json:"direct_ready"`
	NextDirectAt *time.Time `json:"next_direct_at,omitempty"`

	// FlowReady covers campaign-kind items without a campaign (engagement
	// flows), which gate on scheduled_for alone.
	FlowReady  bool       `json:"flow_ready"`
	NextFlowAt *time.Time `json:"next_flow_at,omitempty"`

	Campaigns []CampaignSchedule `json:"campaigns"`
}

// ShouldProcess reports whether any queued work could dispatch at now, given
// what the snapshot saw. Over-approximation is fine: a pass that finds
// nothing is cheap. Missing work is not, so direct and flow checks compare
// scheduled times against now, not against RefreshedAt.
func (s *Snapshot) ShouldProcess(now time.Time) (bool, string) {
	if s.DirectReady || due(s.NextDirectAt, now) {
		return true, "direct work ready"
	}
	if s.FlowReady || due(s.NextFlowAt, now) {
		return true, "flow work due"
	}
	for _, c := range s.Campaigns {
		if c.dispatchable() && c.window.Contains(now) {
			return true, fmt.Sprintf("campaign %s window open", c.CampaignID)
		}
	}
	return false, SkipReasonSchedule
}

// NextWake returns the earliest future instant at which work could become
// dispatchable, or nil when nothing is pending at all.
func (s *Snapshot) NextWake(now time.Time) *time.Time {
	var wake *time.Time
	consider := func(t time.Time) {
		if !t.After(now) {
			t = now
		}
		if wake == nil || t.Before(*wake) {
			tt := t
			wake = &tt
		}
	}

	if s.DirectReady || s.FlowReady {
		consider(now)
	}
	if s.NextDirectAt != nil {
		consider(*s.NextDirectAt)
	}
	if s.NextFlowAt != nil {
		consider(*s.NextFlowAt)
	}
	for _, c := range s.Campaigns {
		if c.dispatchable() {
			consider(c.window.NextOpen(now))
		}
	}
	return wake
}

func due(t *time.Time, now time.Time) bool {
	return t != nil && !t.After(now)
}

// ScheduleCache keeps a per-replica snapshot of campaign schedules and
// pending-work markers so the periodic processor tick can skip database
// passes that could not dispatch anything. Staleness is bounded by the TTL;
// campaign mutations call Invalidate to cut it short.
type ScheduleCache struct {
	client *ent.Client
	ttl    time.Duration
	logger *slog.Logger

	mu   sync.Mutex
	snap *Snapshot
}

// NewScheduleCache creates a schedule cache with the given snapshot TTL.
func NewScheduleCache(client *ent.Client, ttl time.Duration) *ScheduleCache {
	if client == nil {
		panic("queue.NewScheduleCache: client is required")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ScheduleCache{
		client: client,
		ttl:    ttl,
		logger: slog.With("component", "schedule_cache"),
	}
}

// ShouldProcess refreshes the snapshot if stale and evaluates the gate.
// A failed refresh never blocks dispatch: the gate opens and the pass
// itself decides against the live database.
func (c *ScheduleCache) ShouldProcess(ctx context.Context, now time.Time) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap == nil || now.Sub(c.snap.RefreshedAt) > c.ttl {
		snap, err := c.build(ctx, now)
		if err != nil {
			c.logger.Warn("Schedule refresh failed, processing anyway", "error", err)
			return true, "schedule refresh failed"
		}
		c.snap = snap
	}
	return c.snap.ShouldProcess(now)
}

// Current returns the snapshot, refreshing first if stale or absent.
func (c *ScheduleCache) Current(ctx context.Context, now time.Time) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap == nil || now.Sub(c.snap.RefreshedAt) > c.ttl {
		snap, err := c.build(ctx, now)
		if err != nil {
			return nil, err
		}
		c.snap = snap
	}
	return c.snap, nil
}

// Refresh rebuilds the snapshot unconditionally.
func (c *ScheduleCache) Refresh(ctx context.Context) (*Snapshot, error) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.build(ctx, now)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	return snap, nil
}

// Invalidate drops the snapshot so the next gate check rebuilds it. Called
// whenever campaign schedules or statuses change.
func (c *ScheduleCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}

func (c *ScheduleCache) build(ctx context.Context, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{RefreshedAt: now}

	directReady, nextDirect, err := c.pendingByKind(ctx, now, queueitem.KindDirect, false)
	if err != nil {
		return nil, err
	}
	snap.DirectReady = directReady
	snap.NextDirectAt = nextDirect

	flowReady, nextFlow, err := c.pendingByKind(ctx, now, queueitem.KindCampaign, true)
	if err != nil {
		return nil, err
	}
	snap.FlowReady = flowReady
	snap.NextFlowAt = nextFlow

	queuedByCampaign, err := c.queuedCampaignCounts(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := c.client.Campaign.Query().
		Where(campaign.StatusIn(campaign.StatusActive, campaign.StatusPaused)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedulable campaigns: %w", err)
	}
	for _, camp := range campaigns {
		sched := CampaignSchedule{
			CampaignID:    camp.ID,
			TenantID:      camp.TenantID,
			Status:        string(camp.Status),
			Timezone:      camp.Timezone,
			FirstCallTime: camp.FirstCallTime,
			LastCallTime:  camp.LastCallTime,
			QueuedItems:   queuedByCampaign[camp.ID],
		}
		w, err := NewWindow(camp.Timezone, camp.FirstCallTime, camp.LastCallTime)
		if err != nil {
			c.logger.Warn("Campaign has invalid calling window, excluded from schedule",
				"campaign_id", camp.ID, "error", err)
		} else {
			sched.window = w
		}
		snap.Campaigns = append(snap.Campaigns, sched)
	}

	return snap, nil
}

// pendingByKind reports whether any queued item of the kind is already
// dispatchable and, if not all are, the earliest future scheduled_for.
// flowOnly narrows campaign-kind items to those without a campaign.
func (c *ScheduleCache) pendingByKind(ctx context.Context, now time.Time, kind queueitem.Kind, flowOnly bool) (bool, *time.Time, error) {
	readyQ := c.client.QueueItem.Query().
		Where(
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(kind),
			scheduledReady(now),
		)
	if flowOnly {
		readyQ = readyQ.Where(queueitem.CampaignIDIsNil())
	}
	ready, err := readyQ.Exist(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("failed to check queued %s work: %w", kind, err)
	}

	futureQ := c.client.QueueItem.Query().
		Where(
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(kind),
			queueitem.ScheduledForNotNil(),
			queueitem.ScheduledForGT(now),
		)
	if flowOnly {
		futureQ = futureQ.Where(queueitem.CampaignIDIsNil())
	}
	next, err := futureQ.
		Order(ent.Asc(queueitem.FieldScheduledFor)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ready, nil, nil
		}
		return false, nil, fmt.Errorf("failed to find next scheduled %s item: %w", kind, err)
	}
	return ready, next.ScheduledFor, nil
}

func (c *ScheduleCache) queuedCampaignCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		CampaignID string `json:"campaign_id"`
		Count      int    `json:"count"`
	}
	err := c.client.QueueItem.Query().
		Where(
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(queueitem.KindCampaign),
			queueitem.CampaignIDNotNil(),
		).
		GroupBy(queueitem.FieldCampaignID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count queued items per campaign: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.CampaignID] = r.Count
	}
	return counts, nil
}
