package queue

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/database"
)

// processorLockName is the advisory lock serializing passes across replicas.
const processorLockName = "queue-processor"

// passBudget caps one pass's wall clock; leftover work waits for the next
// trigger rather than holding the lock indefinitely.
const passBudget = 60 * time.Second

// ProcessorDeps carries the collaborators a Processor needs.
type ProcessorDeps struct {
	DB         *stdsql.DB
	Items      *Service
	Cache      *ScheduleCache
	Slots      *concurrency.Manager
	Billing    *billing.Service
	Dispatcher *Dispatcher
}

// Processor drains the queue: one pass walks tenants in least-recently-served
// order and dispatches as much eligible work as capacity allows. Exactly one
// pass runs platform-wide at a time, guarded by a Postgres advisory lock, so
// any replica can host the cron endpoint or the NOTIFY listener.
type Processor struct {
	db         *stdsql.DB
	items      *Service
	cache      *ScheduleCache
	slots      *concurrency.Manager
	billing    *billing.Service
	dispatcher *Dispatcher
	logger     *slog.Logger

	// lastServed drives round-robin fairness. Per replica and advisory: the
	// lock means at most one replica dispatches at a time, so drift between
	// replicas only reshuffles the starting tenant.
	mu         sync.Mutex
	lastServed map[string]time.Time
}

// NewProcessor creates a Processor.
func NewProcessor(deps ProcessorDeps) *Processor {
	if deps.DB == nil {
		panic("queue.NewProcessor: db is required")
	}
	if deps.Items == nil {
		panic("queue.NewProcessor: item service is required")
	}
	if deps.Cache == nil {
		panic("queue.NewProcessor: schedule cache is required")
	}
	if deps.Slots == nil {
		panic("queue.NewProcessor: slot manager is required")
	}
	if deps.Billing == nil {
		panic("queue.NewProcessor: billing service is required")
	}
	if deps.Dispatcher == nil {
		panic("queue.NewProcessor: dispatcher is required")
	}
	return &Processor{
		db:         deps.DB,
		items:      deps.Items,
		cache:      deps.Cache,
		slots:      deps.Slots,
		billing:    deps.Billing,
		dispatcher: deps.Dispatcher,
		logger:     slog.With("component", "queue_processor"),
		lastServed: make(map[string]time.Time),
	}
}

// ProcessSmart runs a pass only when the schedule cache says queued work
// could dispatch right now. The cron endpoint and the wake listener call
// this; a skipped gate costs no database work at all.
func (p *Processor) ProcessSmart(ctx context.Context) (PassResult, error) {
	now := time.Now()
	if ok, reason := p.cache.ShouldProcess(ctx, now); !ok {
		return PassResult{Skipped: true, SkipReason: reason, StartedAt: now}, nil
	}
	return p.runPass(ctx, now, "")
}

// ProcessImmediate bypasses the gate. Handlers call it after enqueuing a
// direct call or freeing a slot; tenantID narrows the pass when non-empty.
func (p *Processor) ProcessImmediate(ctx context.Context, tenantID string) (PassResult, error) {
	return p.runPass(ctx, time.Now(), tenantID)
}

func (p *Processor) runPass(ctx context.Context, now time.Time, onlyTenant string) (PassResult, error) {
	result := PassResult{StartedAt: now}
	started := time.Now()

	lock, acquired, err := database.TryAdvisoryLock(ctx, p.db, processorLockName)
	if err != nil {
		return result, fmt.Errorf("failed to acquire processor lock: %w", err)
	}
	if !acquired {
		result.Skipped = true
		result.SkipReason = SkipReasonBusy
		return result, nil
	}
	defer func() {
		// Release on a fresh context; the pass context may already be done.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil {
			p.logger.Warn("Failed to release processor lock", "error", err)
		}
	}()

	sys, err := p.slots.SystemActive(ctx)
	if err != nil {
		return result, err
	}
	systemLimit := p.slots.SystemLimit()
	if sys >= systemLimit {
		result.Skipped = true
		result.SkipReason = SkipReasonCapacity
		return result, nil
	}

	tenants, err := p.items.TenantsWithQueuedWork(ctx, now)
	if err != nil {
		return result, err
	}
	if onlyTenant != "" {
		tenants = filterTenant(tenants, onlyTenant)
	}
	tenants = p.rankTenants(tenants)

	deadline := started.Add(passBudget)
	for _, tenantID := range tenants {
		if time.Now().After(deadline) {
			p.logger.Info("Pass budget exhausted, yielding", "tenants_seen", result.TenantsSeen)
			break
		}
		result.TenantsSeen++

		usage, err := p.slots.Usage(ctx, tenantID)
		if err != nil {
			p.logger.Error("Failed to read slot usage", "tenant_id", tenantID, "error", err)
			continue
		}
		sys = usage.SystemActive

		avail := usage.TenantLimit - usage.TenantActive
		if room := systemLimit - sys; room < avail {
			avail = room
		}
		if avail <= 0 {
			continue
		}

		full, err := p.processTenant(ctx, tenantID, now, avail, &result)
		if err != nil {
			// One tenant's failure never takes down the pass.
			p.logger.Error("Tenant processing failed", "tenant_id", tenantID, "error", err)
			continue
		}
		if full {
			break
		}
	}

	result.Duration = time.Since(started).String()
	p.logger.Info("Queue pass finished",
		"tenants_seen", result.TenantsSeen,
		"dispatched", result.Dispatched,
		"failed", result.Failed,
		"duration", result.Duration)

	if _, err := p.cache.Refresh(ctx); err != nil {
		p.logger.Warn("Schedule refresh after pass failed", "error", err)
	}
	return result, nil
}

// processTenant dispatches up to budget items for one tenant. Returns true
// when the system cap is reached and the whole pass should stop.
func (p *Processor) processTenant(ctx context.Context, tenantID string, now time.Time, budget int, result *PassResult) (bool, error) {
	for n := 0; n < budget; n++ {
		item, err := p.items.NextEligible(ctx, tenantID, now)
		if err != nil {
			if errors.Is(err, ErrNoEligibleItems) {
				return false, nil
			}
			return false, err
		}

		hasCredit, err := p.billing.HasCredit(ctx, tenantID)
		if err != nil {
			return false, err
		}
		if !hasCredit {
			if _, err := p.items.MarkFailed(ctx, item.ID, "insufficient credits"); err != nil {
				return false, err
			}
			result.Failed++
			p.logger.Info("Tenant out of credits, item failed",
				"tenant_id", tenantID, "queue_item_id", item.ID)
			return false, nil
		}

		callID := uuid.New().String()
		res, err := p.slots.Reserve(ctx, tenantID, callID, slotKindFor(item))
		if err != nil {
			return false, err
		}
		if !res.OK {
			// Completions and direct-call handlers race passes for slots;
			// re-reading counts next tenant keeps the pass honest.
			return res.Reason == concurrency.ReasonSystemCapacity, nil
		}

		claimed, err := p.items.MarkProcessing(ctx, item.ID, callID)
		if err != nil || !claimed {
			if _, rerr := p.slots.Release(ctx, callID); rerr != nil {
				p.logger.Error("Failed to release slot after claim miss", "call_id", callID, "error", rerr)
			}
			if err != nil {
				return false, err
			}
			// Item was cancelled under us; move on.
			continue
		}

		if err := p.dispatchItem(ctx, tenantID, callID, item); err != nil {
			if _, ferr := p.items.MarkFailed(ctx, item.ID, truncateReason(err.Error())); ferr != nil {
				p.logger.Error("Failed to fail queue item", "queue_item_id", item.ID, "error", ferr)
			}
			if _, rerr := p.slots.Release(ctx, callID); rerr != nil {
				p.logger.Error("Failed to release slot after dispatch error", "call_id", callID, "error", rerr)
			}
			result.Failed++
			p.logger.Warn("Dispatch failed",
				"tenant_id", tenantID, "queue_item_id", item.ID, "error", err)
			continue
		}

		if _, err := p.items.MarkCompleted(ctx, item.ID); err != nil {
			p.logger.Error("Failed to complete queue item", "queue_item_id", item.ID, "error", err)
		}
		result.Dispatched++
		p.bumpServed(tenantID)
	}
	return false, nil
}

func (p *Processor) dispatchItem(ctx context.Context, tenantID, callID string, item *ent.QueueItem) error {
	in := DispatchInput{
		TenantID:     tenantID,
		CallID:       callID,
		AgentID:      item.AgentID,
		ContactPhone: item.ContactPhone,
		QueueItemID:  item.ID,
		Variables:    item.Variables,
	}
	if item.ContactID != nil {
		in.ContactID = *item.ContactID
	}
	if item.CampaignID != nil {
		in.CampaignID = *item.CampaignID
	}
	_, err := p.dispatcher.Dispatch(ctx, in)
	return err
}

func slotKindFor(item *ent.QueueItem) activeslot.Kind {
	if item.Kind == queueitem.KindDirect {
		return activeslot.KindDirect
	}
	return activeslot.KindCampaign
}

// rankTenants orders tenants least-recently-served first; tenants this
// replica has never served go ahead of everyone, tiebroken by id for
// determinism.
func (p *Processor) rankTenants(tenants []string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	sort.SliceStable(tenants, func(i, j int) bool {
		ti, iSeen := p.lastServed[tenants[i]]
		tj, jSeen := p.lastServed[tenants[j]]
		if iSeen != jSeen {
			return !iSeen
		}
		if !iSeen {
			return tenants[i] < tenants[j]
		}
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return tenants[i] < tenants[j]
	})
	return tenants
}

func (p *Processor) bumpServed(tenantID string) {
	p.mu.Lock()
	p.lastServed[tenantID] = time.Now()
	p.mu.Unlock()
}

func filterTenant(tenants []string, only string) []string {
	for _, t := range tenants {
		if t == only {
			return []string{only}
		}
	}
	return nil
}
