// Package flows evaluates auto-engagement flows when contacts are created.
// Enabled flows are walked in ascending priority; the first flow whose
// conditions all match runs its actions, and nothing runs for contacts
// tagged dnc. Actions execute sequentially and are individually best-effort.
package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/engagementflow"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/notify"
	"github.com/ringstack/ringstack/pkg/queue"
)

// dncTag suppresses all engagement for a contact.
const dncTag = "dnc"

// MarketingNotifier dispatches flow-originated message/email actions.
type MarketingNotifier interface {
	Send(ctx context.Context, in notify.Input) (*ent.Notification, error)
}

// Evaluator matches contacts against flows and runs the winning flow's
// actions.
type Evaluator struct {
	client   *ent.Client
	queue    *queue.Service
	notifier MarketingNotifier
	logger   *slog.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(client *ent.Client, queueSvc *queue.Service, notifier MarketingNotifier) *Evaluator {
	if client == nil {
		panic("flows.NewEvaluator: client is required")
	}
	if queueSvc == nil {
		panic("flows.NewEvaluator: queue service is required")
	}
	if notifier == nil {
		panic("flows.NewEvaluator: notifier is required")
	}
	return &Evaluator{
		client:   client,
		queue:    queueSvc,
		notifier: notifier,
		logger:   slog.With("component", "flows"),
	}
}

// ContactCreated evaluates the tenant's flows for a new contact. At most one
// flow runs: the lowest-priority (first) match. A dnc tag aborts before any
// flow is considered.
func (e *Evaluator) ContactCreated(ctx context.Context, c *ent.Contact) error {
	if c == nil {
		return nil
	}
	if hasDNCTag(c) {
		e.logger.Debug("Contact is dnc-tagged, skipping flows", "contact_id", c.ID)
		return nil
	}

	rows, err := e.client.EngagementFlow.Query().
		Where(
			engagementflow.TenantIDEQ(c.TenantID),
			engagementflow.Enabled(true),
			engagementflow.TriggerTypeEQ(engagementflow.TriggerTypeContactCreated),
		).
		Order(
			ent.Asc(engagementflow.FieldPriority),
			ent.Asc(engagementflow.FieldCreatedAt),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list engagement flows: %w", err)
	}

	for _, f := range rows {
		conds, err := decodeConditions(f.Conditions)
		if err != nil {
			e.logger.Warn("Skipping misconfigured flow",
				"flow_id", f.ID, "error", err)
			continue
		}
		if !allMatch(conds, c) {
			continue
		}
		e.logger.Info("Flow matched",
			"flow_id", f.ID,
			"flow_name", f.Name,
			"contact_id", c.ID)
		return e.run(ctx, f, c)
	}
	return nil
}

// run executes the flow's actions in order. Wait actions shift the schedule
// cursor; every other action failure is logged and the flow continues.
func (e *Evaluator) run(ctx context.Context, f *ent.EngagementFlow, c *ent.Contact) error {
	actions, err := decodeActions(f.Actions)
	if err != nil {
		return fmt.Errorf("flow %s has invalid actions: %w", f.ID, err)
	}

	now := time.Now()
	cursor := time.Duration(0)
	for i, a := range actions {
		switch act := a.(type) {
		case WaitAction:
			cursor += time.Duration(act.Minutes) * time.Minute

		case CallAction:
			agentID := act.AgentID
			if agentID == "" {
				agentID = f.AgentID
			}
			if agentID == "" {
				e.logger.Error("Call action has no agent",
					"flow_id", f.ID, "action", i)
				continue
			}
			delay := cursor + time.Duration(act.DelayMinutes)*time.Minute
			var scheduledFor *time.Time
			if delay > 0 {
				t := now.Add(delay)
				scheduledFor = &t
			}
			item, err := e.queue.Enqueue(ctx, queue.EnqueueInput{
				TenantID:     c.TenantID,
				Kind:         queueitem.KindCampaign,
				AgentID:      agentID,
				ContactPhone: c.Phone,
				ContactName:  contactName(c),
				ContactID:    c.ID,
				ScheduledFor: scheduledFor,
			})
			if err != nil {
				e.logger.Error("Flow call enqueue failed",
					"flow_id", f.ID, "contact_id", c.ID, "error", err)
				continue
			}
			e.logger.Info("Flow call enqueued",
				"flow_id", f.ID,
				"queue_item_id", item.ID,
				"scheduled_for", scheduledFor)

		case MessageAction:
			e.sendMarketing(ctx, f, c, act.Template)

		case EmailAction:
			e.sendMarketing(ctx, f, c, act.Template)
		}
	}
	return nil
}

// sendMarketing routes a message/email action through the marketing bucket.
// The flow+contact idempotency key means one marketing send per contact per
// flow, however the flow is re-triggered.
func (e *Evaluator) sendMarketing(ctx context.Context, f *ent.EngagementFlow, c *ent.Contact, template string) {
	if c.Email == nil || *c.Email == "" {
		e.logger.Info("Contact has no email, marketing action skipped",
			"flow_id", f.ID, "contact_id", c.ID)
		return
	}
	_, err := e.notifier.Send(ctx, notify.Input{
		TenantID:       c.TenantID,
		Type:           notify.TypeMarketing,
		IdempotencyKey: fmt.Sprintf("marketing:flow_%s_%s", f.ID, c.ID),
		Recipient:      *c.Email,
		Subject:        f.Name,
		Template:       template,
		Payload: map[string]interface{}{
			"contact_name":  contactName(c),
			"contact_phone": c.Phone,
		},
	})
	if err != nil {
		e.logger.Error("Flow marketing send failed",
			"flow_id", f.ID, "contact_id", c.ID, "error", err)
	}
}

func allMatch(conds []Condition, c *ent.Contact) bool {
	for _, cond := range conds {
		if !cond.matches(c) {
			return false
		}
	}
	return true
}

func hasDNCTag(c *ent.Contact) bool {
	for _, tag := range c.Tags {
		if strings.EqualFold(tag, dncTag) {
			return true
		}
	}
	return false
}

func contactName(c *ent.Contact) string {
	if c.Name != nil {
		return *c.Name
	}
	return ""
}
