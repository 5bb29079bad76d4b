package queue

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/predicate"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/services"
)

// enqueueAttempts bounds retries of the serializable position-allocating
// transaction.
const enqueueAttempts = 3

// Service owns queue intake, ordering, and item state transitions. All
// transitions are compare-and-swap updates so concurrent processors and
// admin actions cannot double-apply.
type Service struct {
	client *ent.Client
	cfg    *config.QueueConfig
	logger *slog.Logger
}

// NewService creates a queue Service.
func NewService(client *ent.Client, cfg *config.QueueConfig) *Service {
	if client == nil {
		panic("queue.NewService: client is required")
	}
	if cfg == nil {
		panic("queue.NewService: config is required")
	}
	return &Service{
		client: client,
		cfg:    cfg,
		logger: slog.With("component", "queue"),
	}
}

// EnqueueInput describes one call request entering the queue.
type EnqueueInput struct {
	TenantID     string
	Kind         queueitem.Kind
	AgentID      string
	ContactPhone string
	ContactName  string
	ContactID    string
	CampaignID   string
	ScheduledFor *time.Time
	Variables    map[string]interface{}
}

// Enqueue validates and inserts a queue item, allocating the next per-tenant
// position inside a serializable transaction. Racing enqueues for the same
// tenant conflict and retry, keeping positions strictly monotonic.
func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (*ent.QueueItem, error) {
	if in.TenantID == "" {
		return nil, services.NewValidationError("tenant_id", "required")
	}
	if in.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "required")
	}
	if in.ContactPhone == "" {
		return nil, services.NewValidationError("contact_phone", "required")
	}
	switch in.Kind {
	case queueitem.KindDirect:
		if in.CampaignID != "" {
			return nil, services.NewValidationError("campaign_id", "direct items carry no campaign")
		}
	case queueitem.KindCampaign:
		// Campaign items from campaigns carry the campaign id; items created
		// by engagement flows legitimately leave it empty.
	default:
		return nil, services.NewValidationError("kind", "must be direct or campaign")
	}

	var lastErr error
	for attempt := 1; attempt <= enqueueAttempts; attempt++ {
		item, err := s.tryEnqueue(ctx, in)
		if err == nil {
			s.logger.Info("Queue item enqueued",
				"queue_item_id", item.ID,
				"tenant_id", item.TenantID,
				"kind", item.Kind,
				"priority", item.Priority,
				"position", item.Position)
			return item, nil
		}
		if !database.IsSerializationFailure(err) {
			return nil, err
		}
		lastErr = err
		s.logger.Debug("Enqueue position conflicted, retrying",
			"tenant_id", in.TenantID, "attempt", attempt)
	}
	return nil, fmt.Errorf("enqueue conflicted %d times: %w", enqueueAttempts, lastErr)
}

func (s *Service) tryEnqueue(ctx context.Context, in EnqueueInput) (*ent.QueueItem, error) {
	tx, err := s.client.BeginTx(ctx, &stdsql.TxOptions{Isolation: stdsql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to start enqueue transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	position := 1
	last, err := tx.QueueItem.Query().
		Where(queueitem.TenantIDEQ(in.TenantID)).
		Order(ent.Desc(queueitem.FieldPosition)).
		First(ctx)
	switch {
	case err == nil:
		position = last.Position + 1
	case ent.IsNotFound(err):
		// First item for this tenant.
	default:
		return nil, fmt.Errorf("failed to read last position: %w", err)
	}

	builder := tx.QueueItem.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetKind(in.Kind).
		SetStatus(queueitem.StatusQueued).
		SetPriority(s.priorityFor(in.Kind, in.ContactName)).
		SetPosition(position).
		SetAgentID(in.AgentID).
		SetContactPhone(in.ContactPhone)

	if in.ContactName != "" {
		builder.SetContactName(in.ContactName)
	}
	if in.ContactID != "" {
		builder.SetContactID(in.ContactID)
	}
	if in.CampaignID != "" {
		builder.SetCampaignID(in.CampaignID)
	}
	if in.ScheduledFor != nil {
		builder.SetScheduledFor(*in.ScheduledFor)
	}
	if in.Variables != nil {
		builder.SetVariables(in.Variables)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert queue item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enqueue: %w", err)
	}
	return item, nil
}

// priorityFor computes the dispatch priority of a new item. Direct calls
// always outrank campaign traffic; within campaigns, named contacts outrank
// anonymous dials.
func (s *Service) priorityFor(kind queueitem.Kind, contactName string) int {
	if kind == queueitem.KindDirect {
		return s.cfg.DirectPriority
	}
	p := s.cfg.CampaignPriority
	if strings.TrimSpace(contactName) != "" {
		p += s.cfg.NamedContactBoost
	}
	return p
}

// scheduledReady matches items whose earliest dispatch time has passed.
func scheduledReady(now time.Time) predicate.QueueItem {
	return queueitem.Or(
		queueitem.ScheduledForIsNil(),
		queueitem.ScheduledForLTE(now),
	)
}

// NextEligible returns the item that should dispatch next for a tenant:
// direct items first regardless of priority values, then campaign items
// whose campaign window is open (flow items, which carry no campaign, gate
// on scheduled_for alone). Returns ErrNoEligibleItems when nothing can run.
func (s *Service) NextEligible(ctx context.Context, tenantID string, now time.Time) (*ent.QueueItem, error) {
	// Phase 1: direct calls.
	item, err := s.client.QueueItem.Query().
		Where(
			queueitem.TenantIDEQ(tenantID),
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(queueitem.KindDirect),
			scheduledReady(now),
		).
		Order(
			ent.Desc(queueitem.FieldPriority),
			ent.Asc(queueitem.FieldPosition),
			ent.Asc(queueitem.FieldCreatedAt),
		).
		First(ctx)
	if err == nil {
		return item, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query direct items: %w", err)
	}

	// Phase 2: campaign traffic, window-gated per campaign.
	inWindow, err := s.inWindowCampaignIDs(ctx, tenantID, now)
	if err != nil {
		return nil, err
	}
	campaignPred := queueitem.CampaignIDIsNil()
	if len(inWindow) > 0 {
		campaignPred = queueitem.Or(
			queueitem.CampaignIDIn(inWindow...),
			queueitem.CampaignIDIsNil(),
		)
	}

	item, err = s.client.QueueItem.Query().
		Where(
			queueitem.TenantIDEQ(tenantID),
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(queueitem.KindCampaign),
			campaignPred,
			scheduledReady(now),
		).
		Order(
			ent.Desc(queueitem.FieldPriority),
			ent.Asc(queueitem.FieldPosition),
			ent.Asc(queueitem.FieldCreatedAt),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoEligibleItems
		}
		return nil, fmt.Errorf("failed to query campaign items: %w", err)
	}
	return item, nil
}

// inWindowCampaignIDs lists the tenant's active campaigns whose calling
// window contains now. Campaigns with malformed windows are skipped with a
// warning rather than wedging the whole queue.
func (s *Service) inWindowCampaignIDs(ctx context.Context, tenantID string, now time.Time) ([]string, error) {
	campaigns, err := s.client.Campaign.Query().
		Where(
			campaign.TenantIDEQ(tenantID),
			campaign.StatusEQ(campaign.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active campaigns: %w", err)
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		w, err := NewWindow(c.Timezone, c.FirstCallTime, c.LastCallTime)
		if err != nil {
			s.logger.Warn("Campaign has invalid calling window, skipping",
				"campaign_id", c.ID, "error", err)
			continue
		}
		if w.Contains(now) {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

// TenantsWithQueuedWork lists tenants holding at least one queued item whose
// scheduled_for has passed. Window gating happens later, per item.
func (s *Service) TenantsWithQueuedWork(ctx context.Context, now time.Time) ([]string, error) {
	tenants, err := s.client.QueueItem.Query().
		Where(
			queueitem.StatusEQ(queueitem.StatusQueued),
			scheduledReady(now),
		).
		GroupBy(queueitem.FieldTenantID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants with queued work: %w", err)
	}
	return tenants, nil
}

// MarkProcessing transitions queued → processing and stamps the call id.
// Returns false when the item was no longer queued (cancelled or claimed).
func (s *Service) MarkProcessing(ctx context.Context, itemID, callID string) (bool, error) {
	n, err := s.client.QueueItem.Update().
		Where(
			queueitem.IDEQ(itemID),
			queueitem.StatusEQ(queueitem.StatusQueued),
		).
		SetStatus(queueitem.StatusProcessing).
		SetCallID(callID).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark item processing: %w", err)
	}
	return n > 0, nil
}

// MarkCompleted transitions processing → completed. The item's lifetime ends
// at successful handoff to the provider; the Call carries on from there.
func (s *Service) MarkCompleted(ctx context.Context, itemID string) (bool, error) {
	n, err := s.client.QueueItem.Update().
		Where(
			queueitem.IDEQ(itemID),
			queueitem.StatusEQ(queueitem.StatusProcessing),
		).
		SetStatus(queueitem.StatusCompleted).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark item completed: %w", err)
	}
	return n > 0, nil
}

// MarkFailed transitions a live item to failed with a reason. Items never
// auto-retry; an operator re-enqueues explicitly if wanted.
func (s *Service) MarkFailed(ctx context.Context, itemID, reason string) (bool, error) {
	n, err := s.client.QueueItem.Update().
		Where(
			queueitem.IDEQ(itemID),
			queueitem.StatusIn(queueitem.StatusQueued, queueitem.StatusProcessing),
		).
		SetStatus(queueitem.StatusFailed).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark item failed: %w", err)
	}
	return n > 0, nil
}

// Cancel withdraws a queued item. Only queued items can be cancelled: once
// processing, the provider call is already being placed.
func (s *Service) Cancel(ctx context.Context, tenantID, itemID string) error {
	item, err := s.client.QueueItem.Query().
		Where(
			queueitem.IDEQ(itemID),
			queueitem.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load queue item: %w", err)
	}

	n, err := s.client.QueueItem.Update().
		Where(
			queueitem.IDEQ(item.ID),
			queueitem.StatusEQ(queueitem.StatusQueued),
		).
		SetStatus(queueitem.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel queue item: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}
	return nil
}

// Get loads a tenant's queue item.
func (s *Service) Get(ctx context.Context, tenantID, itemID string) (*ent.QueueItem, error) {
	item, err := s.client.QueueItem.Query().
		Where(
			queueitem.IDEQ(itemID),
			queueitem.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load queue item: %w", err)
	}
	return item, nil
}

// Stats counts a tenant's live queue by kind.
func (s *Service) Stats(ctx context.Context, tenantID string) (Stats, error) {
	var stats Stats
	counts := []struct {
		kind   queueitem.Kind
		status queueitem.Status
		dst    *int
	}{
		{queueitem.KindDirect, queueitem.StatusQueued, &stats.DirectQueued},
		{queueitem.KindDirect, queueitem.StatusProcessing, &stats.DirectProcessing},
		{queueitem.KindCampaign, queueitem.StatusQueued, &stats.CampaignQueued},
		{queueitem.KindCampaign, queueitem.StatusProcessing, &stats.CampaignProcessing},
	}
	for _, c := range counts {
		n, err := s.client.QueueItem.Query().
			Where(
				queueitem.TenantIDEQ(tenantID),
				queueitem.KindEQ(c.kind),
				queueitem.StatusEQ(c.status),
			).
			Count(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to count queue items: %w", err)
		}
		*c.dst = n
	}
	return stats, nil
}

// OldestQueued returns the tenant's longest-waiting queued item, or
// ErrNoEligibleItems when nothing is queued. Waiting time is measured by
// enqueue order, not dispatch rank: the oldest item may still sit behind
// higher-priority newcomers.
func (s *Service) OldestQueued(ctx context.Context, tenantID string) (*ent.QueueItem, error) {
	item, err := s.client.QueueItem.Query().
		Where(
			queueitem.TenantIDEQ(tenantID),
			queueitem.StatusEQ(queueitem.StatusQueued),
		).
		Order(ent.Asc(queueitem.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoEligibleItems
		}
		return nil, fmt.Errorf("failed to load oldest queued item: %w", err)
	}
	return item, nil
}

// Position computes an item's 1-based rank in its tenant's dispatch order:
// all queued direct items precede all queued campaign items, then priority
// desc, position asc within the phase.
func (s *Service) Position(ctx context.Context, item *ent.QueueItem) (int, error) {
	ahead, err := s.client.QueueItem.Query().
		Where(
			queueitem.TenantIDEQ(item.TenantID),
			queueitem.StatusEQ(queueitem.StatusQueued),
			queueitem.KindEQ(item.Kind),
			queueitem.Or(
				queueitem.PriorityGT(item.Priority),
				queueitem.And(
					queueitem.PriorityEQ(item.Priority),
					queueitem.PositionLT(item.Position),
				),
			),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to rank queue item: %w", err)
	}

	if item.Kind == queueitem.KindCampaign {
		directAhead, err := s.client.QueueItem.Query().
			Where(
				queueitem.TenantIDEQ(item.TenantID),
				queueitem.StatusEQ(queueitem.StatusQueued),
				queueitem.KindEQ(queueitem.KindDirect),
			).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count direct items ahead: %w", err)
		}
		ahead += directAhead
	}
	return ahead + 1, nil
}

// EstimatedWaitMinutes projects how long an item at the given rank waits
// before dispatch, assuming the tenant's slots turn over every
// AvgCallMinutes.
func (s *Service) EstimatedWaitMinutes(position, tenantLimit int) int {
	if position <= 0 {
		return 0
	}
	if tenantLimit < 1 {
		tenantLimit = 1
	}
	return (position*s.cfg.AvgCallMinutes + tenantLimit - 1) / tenantLimit
}

// ReconcileStaleProcessing repairs items stuck in processing longer than
// olderThan: crashed dispatchers leave them behind. Items whose call reached
// a terminal state get the matching terminal status; items whose call is
// still live are left for the slot reaper to settle first.
func (s *Service) ReconcileStaleProcessing(ctx context.Context, olderThan time.Duration) (completed, failed int, err error) {
	cutoff := time.Now().Add(-olderThan)
	items, err := s.client.QueueItem.Query().
		Where(
			queueitem.StatusEQ(queueitem.StatusProcessing),
			queueitem.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query stale processing items: %w", err)
	}

	for _, item := range items {
		if item.CallID == nil || *item.CallID == "" {
			if _, err := s.MarkFailed(ctx, item.ID, "dispatch interrupted before call creation"); err != nil {
				s.logger.Error("Failed to fail stale item", "queue_item_id", item.ID, "error", err)
				continue
			}
			failed++
			continue
		}

		c, err := s.client.Call.Query().
			Where(call.IDEQ(*item.CallID)).
			Only(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				s.logger.Error("Failed to load call for stale item", "queue_item_id", item.ID, "error", err)
				continue
			}
			if _, err := s.MarkFailed(ctx, item.ID, "dispatch interrupted before call creation"); err == nil {
				failed++
			}
			continue
		}

		switch c.LifecycleStatus {
		case call.LifecycleStatusCompleted:
			if _, err := s.MarkCompleted(ctx, item.ID); err == nil {
				completed++
			}
		case call.LifecycleStatusFailed, call.LifecycleStatusCancelled:
			reason := "call failed"
			if c.FailureReason != nil {
				reason = *c.FailureReason
			}
			if _, err := s.MarkFailed(ctx, item.ID, reason); err == nil {
				failed++
			}
		default:
			// Call is still live; the webhook or the slot reaper decides.
		}
	}
	return completed, failed, nil
}
