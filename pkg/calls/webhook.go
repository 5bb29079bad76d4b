package calls

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/contact"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/ent/phonenumber"
	"github.com/ringstack/ringstack/ent/transcript"
	"github.com/ringstack/ringstack/pkg/analysis"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/queue"
	"github.com/ringstack/ringstack/pkg/services"
	"github.com/ringstack/ringstack/pkg/voice"
)

// Analyzer runs post-call extraction; failures are logged, never fatal to
// the completion flow.
type Analyzer interface {
	AnalyzeCall(ctx context.Context, in analysis.AnalyzeInput) error
}

// Notifier is the slice of the notification dispatcher completion
// processing uses.
type Notifier interface {
	EvaluateLowCredit(ctx context.Context, tenantID string, balance int) (*ent.Notification, error)
	SendCampaignSummary(ctx context.Context, camp *ent.Campaign) (*ent.Notification, error)
}

// ContactTrigger fires engagement flows for newly created contacts.
type ContactTrigger interface {
	ContactCreated(ctx context.Context, c *ent.Contact) error
}

// QueueKicker runs an immediate dispatch pass for one tenant.
type QueueKicker interface {
	ProcessImmediate(ctx context.Context, tenantID string) (queue.PassResult, error)
}

// WakeBroadcaster tells every replica that capacity or queued work changed.
type WakeBroadcaster interface {
	NotifyWake(ctx context.Context, reason string) error
}

// WebhookDeps wires the webhook service. Client, Slots, Billing, Analyzer,
// Notifier, Campaigns, and Inflight are required; Flows, Kicker, and Wake
// are optional.
type WebhookDeps struct {
	Client    *ent.Client
	Slots     *concurrency.Manager
	Billing   *billing.Service
	Analyzer  Analyzer
	Notifier  Notifier
	Campaigns *queue.CampaignService
	Inflight  *queue.InflightIndex
	Flows     ContactTrigger
	Kicker    QueueKicker
	Wake      WakeBroadcaster
}

// WebhookService ingests provider webhooks. Lifecycle events advance the
// call row monotonically; the completion event settles the call, bills it,
// stores the transcript, and frees the concurrency slot in one transaction,
// then runs the best-effort follow-ups.
type WebhookService struct {
	client    *ent.Client
	slots     *concurrency.Manager
	billing   *billing.Service
	analyzer  Analyzer
	notifier  Notifier
	campaigns *queue.CampaignService
	inflight  *queue.InflightIndex
	flows     ContactTrigger
	kicker    QueueKicker
	wake      WakeBroadcaster
	logger    *slog.Logger
}

// NewWebhookService creates a WebhookService.
func NewWebhookService(deps WebhookDeps) *WebhookService {
	if deps.Client == nil {
		panic("calls.NewWebhookService: client is required")
	}
	if deps.Slots == nil {
		panic("calls.NewWebhookService: concurrency manager is required")
	}
	if deps.Billing == nil {
		panic("calls.NewWebhookService: billing service is required")
	}
	if deps.Analyzer == nil {
		panic("calls.NewWebhookService: analyzer is required")
	}
	if deps.Notifier == nil {
		panic("calls.NewWebhookService: notifier is required")
	}
	if deps.Campaigns == nil {
		panic("calls.NewWebhookService: campaign service is required")
	}
	if deps.Inflight == nil {
		panic("calls.NewWebhookService: inflight index is required")
	}
	return &WebhookService{
		client:    deps.Client,
		slots:     deps.Slots,
		billing:   deps.Billing,
		analyzer:  deps.Analyzer,
		notifier:  deps.Notifier,
		campaigns: deps.Campaigns,
		inflight:  deps.Inflight,
		flows:     deps.Flows,
		kicker:    deps.Kicker,
		wake:      deps.Wake,
		logger:    slog.With("component", "webhook"),
	}
}

// ProcessWebhook handles one provider event. A nil return means the event is
// fully persisted (or was a replay, or could not be attributed to any call);
// an error means the provider should retry.
func (s *WebhookService) ProcessWebhook(ctx context.Context, ev *WebhookEvent) error {
	if ev == nil {
		return services.NewValidationError("payload", "is required")
	}
	if ev.ExecutionID == "" {
		return services.NewValidationError("execution_id", "is required")
	}

	if ev.completion() {
		if ev.Status != CompletionDone && ev.Status != CompletionError {
			return services.NewValidationError("status",
				fmt.Sprintf("completion status must be %q or %q, got %q", CompletionDone, CompletionError, ev.Status))
		}
		if ev.DurationSeconds < 0 {
			return services.NewValidationError("duration_seconds", "must not be negative")
		}
		return s.handleCompletion(ctx, ev)
	}

	if _, ok := lifecycleFor(ev.Event); !ok {
		return services.NewValidationError("event", fmt.Sprintf("unknown event type %q", ev.Event))
	}
	return s.handleLifecycle(ctx, ev)
}

// handleLifecycle advances the call the event refers to. Regressions and
// replays are dropped; events for unknown executions leave a placeholder
// row when the tenant can be attributed.
func (s *WebhookService) handleLifecycle(ctx context.Context, ev *WebhookEvent) error {
	ls, _ := lifecycleFor(ev.Event)

	row, err := s.resolveCall(ctx, ev)
	if err != nil {
		return err
	}
	if row == nil {
		row, err = s.createPlaceholder(ctx, ev, ls)
		if err != nil {
			return err
		}
		if row == nil {
			s.logger.Warn("Dropping unattributable lifecycle event",
				"event", ev.Event, "execution_id", ev.ExecutionID)
			return nil
		}
		if row.Placeholder && row.LifecycleStatus == ls {
			// Fresh placeholder already carries this event's state.
			return nil
		}
	}

	if queue.TerminalLifecycle(row.LifecycleStatus) {
		s.logger.Debug("Ignoring lifecycle event after completion",
			"call_id", row.ID, "event", ev.Event)
		return nil
	}
	return s.advanceLifecycle(ctx, row.ID, ls)
}

// advanceLifecycle is a one-shot compare-and-set: the update applies only
// while the stored status ranks strictly below the event's, so replays and
// out-of-order deliveries fall through as zero-row updates.
func (s *WebhookService) advanceLifecycle(ctx context.Context, callID string, ls call.LifecycleStatus) error {
	now := time.Now()
	upd := s.client.Call.Update().
		Where(
			call.IDEQ(callID),
			call.LifecycleStatusIn(lifecycleBelow(ls)...),
		).
		SetLifecycleStatus(ls)

	switch ls {
	case call.LifecycleStatusRinging:
		upd.SetRingingStartedAt(now)
	case call.LifecycleStatusInProgress:
		upd.SetStatus(call.StatusInProgress).
			SetAnsweredAt(now).
			SetStartedAt(now)
	case call.LifecycleStatusCallDisconnected:
		upd.SetDisconnectedAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance call %s lifecycle: %w", callID, err)
	}
	if n == 0 {
		s.logger.Debug("Lifecycle event ignored (stale or replayed)",
			"call_id", callID, "to_status", ls)
	}
	return nil
}

// handleCompletion settles the call, transactionally, then runs the
// best-effort follow-ups outside the transaction.
func (s *WebhookService) handleCompletion(ctx context.Context, ev *WebhookEvent) error {
	row, err := s.resolveCall(ctx, ev)
	if err != nil {
		return err
	}
	if row == nil {
		row, err = s.createPlaceholder(ctx, ev, call.LifecycleStatusInitiated)
		if err != nil {
			return err
		}
		if row == nil {
			s.logger.Warn("Dropping unattributable completion",
				"execution_id", ev.ExecutionID)
			return nil
		}
	}

	outcome, err := s.completeCall(ctx, row.ID, ev)
	if err != nil {
		return err
	}
	if outcome == nil {
		return nil
	}
	s.afterCompletion(ctx, outcome)
	return nil
}

// completionOutcome carries results of the completion transaction into the
// best-effort follow-ups.
type completionOutcome struct {
	call       *ent.Call
	charge     *billing.Charge
	transcript string
}

// completeCall is the single completion transaction: terminal status,
// duration, billed minutes, transcript, the usage charge, and the slot
// release commit together or not at all. A call that is already terminal
// returns (nil, nil): the replay changed nothing.
func (s *WebhookService) completeCall(ctx context.Context, callID string, ev *WebhookEvent) (*completionOutcome, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Call.Query().
		Where(call.IDEQ(callID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock call %s: %w", callID, err)
	}
	if queue.TerminalLifecycle(c.LifecycleStatus) {
		s.logger.Info("Completion replay ignored",
			"call_id", c.ID, "execution_id", ev.ExecutionID)
		return nil, nil
	}

	now := time.Now()
	minutes := billing.BilledMinutes(ev.DurationSeconds)
	status, ls := call.StatusCompleted, call.LifecycleStatusCompleted
	if ev.Status == CompletionError {
		status, ls = call.StatusFailed, call.LifecycleStatusFailed
	}

	upd := tx.Call.UpdateOneID(c.ID).
		SetStatus(status).
		SetLifecycleStatus(ls).
		SetDurationSeconds(ev.DurationSeconds).
		SetBilledMinutes(minutes).
		SetCreditsUsed(minutes).
		SetEndedAt(now)
	if c.ExecutionID == nil {
		upd.SetExecutionID(ev.ExecutionID)
	}
	if ev.Summary != "" {
		upd.SetSummary(ev.Summary)
	}
	if ev.RecordingURL != "" {
		upd.SetRecordingURL(ev.RecordingURL)
	}
	if ev.HangupBy != "" {
		upd.SetHangupBy(ev.HangupBy)
	}
	if ev.HangupReason != "" {
		upd.SetHangupReason(ev.HangupReason)
	}
	if ev.HangupProviderCode != "" {
		upd.SetHangupProviderCode(ev.HangupProviderCode)
	}
	if ev.ProviderData != nil {
		upd.SetProviderPayload(ev.ProviderData)
	}
	if ev.Status == CompletionError && c.FailureReason == nil {
		reason := ev.HangupReason
		if reason == "" {
			reason = "provider reported error"
		}
		upd.SetFailureReason(reason)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to settle call %s: %w", c.ID, err)
	}

	content, segments := flattenTranscript(ev.Transcript)
	if content != "" {
		exists, err := tx.Transcript.Query().
			Where(transcript.CallIDEQ(c.ID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check transcript for call %s: %w", c.ID, err)
		}
		if !exists {
			create := tx.Transcript.Create().
				SetID(uuid.New().String()).
				SetCallID(c.ID).
				SetTenantID(c.TenantID).
				SetContent(content)
			if segments != nil {
				create.SetSegments(segments)
			}
			if _, err := create.Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to store transcript for call %s: %w", c.ID, err)
			}
		}
	}

	var charge *billing.Charge
	if minutes > 0 {
		charge, err = s.billing.ChargeCallTx(ctx, tx, c.TenantID, c.ID, minutes)
		if err != nil {
			return nil, fmt.Errorf("failed to charge call %s: %w", c.ID, err)
		}
	}

	released, err := s.slots.ReleaseTx(ctx, tx, c.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion for call %s: %w", c.ID, err)
	}

	s.logger.Info("Call completed",
		"call_id", c.ID,
		"tenant_id", c.TenantID,
		"status", status,
		"duration_seconds", ev.DurationSeconds,
		"billed_minutes", minutes,
		"slot_released", released)
	return &completionOutcome{call: updated, charge: charge, transcript: content}, nil
}

// afterCompletion runs the non-transactional follow-ups. Each one is
// logged-not-fatal: the call is already settled and the webhook will be
// acked regardless. The request context's cancellation is dropped so a
// hung-up provider connection cannot abort analysis midway.
func (s *WebhookService) afterCompletion(ctx context.Context, out *completionOutcome) {
	ctx = context.WithoutCancel(ctx)
	c := out.call
	phone := leadPhone(c)

	s.inflight.Forget(c.ToPhone, c.ID)

	if out.transcript != "" && phone != "" {
		execID := ""
		if c.ExecutionID != nil {
			execID = *c.ExecutionID
		}
		err := s.analyzer.AnalyzeCall(ctx, analysis.AnalyzeInput{
			TenantID:    c.TenantID,
			CallID:      c.ID,
			ExecutionID: execID,
			Phone:       phone,
			Transcript:  out.transcript,
		})
		if err != nil {
			s.logger.Error("Post-call analysis failed", "call_id", c.ID, "error", err)
		}
	}

	if phone != "" {
		created, contactRow, err := s.ensureContact(ctx, c, phone)
		if err != nil {
			s.logger.Error("Contact auto-create failed", "call_id", c.ID, "error", err)
		} else if created && s.flows != nil {
			if err := s.flows.ContactCreated(ctx, contactRow); err != nil {
				s.logger.Error("Engagement flow evaluation failed",
					"contact_id", contactRow.ID, "error", err)
			}
		}
	}

	if c.CampaignID != nil {
		camp, finished, err := s.campaigns.RecordCallCompleted(ctx, *c.CampaignID)
		if err != nil {
			s.logger.Error("Campaign progress update failed",
				"campaign_id", *c.CampaignID, "error", err)
		} else if finished {
			if _, err := s.notifier.SendCampaignSummary(ctx, camp); err != nil {
				s.logger.Error("Campaign summary notification failed",
					"campaign_id", camp.ID, "error", err)
			}
		}
	}

	if out.charge != nil {
		if _, err := s.notifier.EvaluateLowCredit(ctx, c.TenantID, out.charge.BalanceAfter); err != nil {
			s.logger.Error("Low-credit evaluation failed",
				"tenant_id", c.TenantID, "error", err)
		}
	}

	s.kickQueue(c.TenantID)
}

// kickQueue reuses the freed slot without waiting for the next cron pass:
// this replica tries immediately, the others are woken over NOTIFY.
func (s *WebhookService) kickQueue(tenantID string) {
	if s.wake != nil {
		if err := s.wake.NotifyWake(context.Background(), "call-completed"); err != nil {
			s.logger.Warn("Queue wake publish failed", "error", err)
		}
	}
	if s.kicker == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := s.kicker.ProcessImmediate(ctx, tenantID); err != nil {
			s.logger.Warn("Immediate queue pass failed", "tenant_id", tenantID, "error", err)
		}
	}()
}

// resolveCall finds the Call an event refers to, in order of confidence:
// stored execution id, echoed metadata, this replica's in-flight index. The
// fallback paths persist the execution id onto the row they find so the
// next event resolves directly. A (nil, nil) return means no call matched.
func (s *WebhookService) resolveCall(ctx context.Context, ev *WebhookEvent) (*ent.Call, error) {
	row, err := s.client.Call.Query().
		Where(call.ExecutionIDEQ(ev.ExecutionID)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve call by execution id: %w", err)
	}

	if id := voice.InternalCallID(ev.Metadata); id != "" {
		row, err := s.client.Call.Get(ctx, id)
		if err == nil {
			return s.adoptExecution(ctx, row, ev.ExecutionID), nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to resolve call by metadata: %w", err)
		}
	}

	if ev.ToPhone != "" {
		if attr, ok := s.inflight.Lookup(ev.ToPhone); ok {
			row, err := s.client.Call.Get(ctx, attr.CallID)
			if err == nil {
				return s.adoptExecution(ctx, row, ev.ExecutionID), nil
			}
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to resolve call by in-flight index: %w", err)
			}
		}
	}
	return nil, nil
}

// adoptExecution persists the execution id onto a call resolved through a
// fallback path. A unique conflict means another replica's placeholder
// holds the id; the dispatcher's merge resolves that, so it is only logged
// here.
func (s *WebhookService) adoptExecution(ctx context.Context, row *ent.Call, executionID string) *ent.Call {
	if row.ExecutionID != nil {
		return row
	}
	updated, err := s.client.Call.UpdateOneID(row.ID).
		SetExecutionID(executionID).
		Save(ctx)
	if err != nil {
		s.logger.Warn("Failed to adopt execution id",
			"call_id", row.ID, "execution_id", executionID, "error", err)
		return row
	}
	return updated
}

// createPlaceholder records progress for an execution no call row claims
// yet. The tenant is attributed through the provisioned phone number on
// either side of the call; without a match the event is unattributable and
// the caller drops it. Losing the execution-id unique race returns the
// winner's row.
func (s *WebhookService) createPlaceholder(ctx context.Context, ev *WebhookEvent, ls call.LifecycleStatus) (*ent.Call, error) {
	direction := call.DirectionOutbound
	num := s.lookupNumber(ctx, ev.FromPhone)
	if num == nil {
		num = s.lookupNumber(ctx, ev.ToPhone)
		if num != nil {
			direction = call.DirectionInbound
		}
	}
	if num == nil {
		return nil, nil
	}

	create := s.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID(num.TenantID).
		SetExecutionID(ev.ExecutionID).
		SetToPhone(ev.ToPhone).
		SetFromPhone(ev.FromPhone).
		SetDirection(direction).
		SetStatus(call.StatusInitiated).
		SetLifecycleStatus(ls).
		SetPlaceholder(true)
	if num.AssignedAgentID != nil {
		create.SetAgentID(*num.AssignedAgentID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.Call.Query().
				Where(call.ExecutionIDEQ(ev.ExecutionID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create placeholder call: %w", err)
	}

	s.logger.Info("Placeholder call created",
		"call_id", row.ID,
		"tenant_id", num.TenantID,
		"execution_id", ev.ExecutionID,
		"event", ev.Event)
	return row, nil
}

// lookupNumber maps a phone to its active provisioned row, or nil.
func (s *WebhookService) lookupNumber(ctx context.Context, phone string) *ent.PhoneNumber {
	if phone == "" {
		return nil
	}
	num, err := s.client.PhoneNumber.Query().
		Where(
			phonenumber.PhoneEQ(phone),
			phonenumber.IsActive(true),
		).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			s.logger.Warn("Phone number lookup failed", "phone", phone, "error", err)
		}
		return nil
	}
	return num
}

// ensureContact finds or auto-creates the contact for the lead phone,
// enriched from extraction output when the analysis already landed. The
// (tenant, phone) unique makes concurrent completions converge on one row.
func (s *WebhookService) ensureContact(ctx context.Context, c *ent.Call, phone string) (bool, *ent.Contact, error) {
	existing, err := s.client.Contact.Query().
		Where(
			contact.TenantIDEQ(c.TenantID),
			contact.PhoneEQ(phone),
		).
		Only(ctx)
	if err == nil {
		return false, existing, nil
	}
	if !ent.IsNotFound(err) {
		return false, nil, fmt.Errorf("failed to look up contact: %w", err)
	}

	create := s.client.Contact.Create().
		SetID(uuid.New().String()).
		SetTenantID(c.TenantID).
		SetPhone(phone).
		SetLeadSource("call").
		SetEntryType(contact.EntryTypeAutoCreated).
		SetIsAutoCreated(true).
		SetAutoCreationSource("webhook").
		SetAutoCreatedFromCallID(c.ID)

	if la := s.completeAnalytics(ctx, c.TenantID, phone); la != nil {
		if la.ExtractedName != nil && *la.ExtractedName != "" {
			create.SetName(*la.ExtractedName)
		}
		if la.ExtractedEmail != nil && *la.ExtractedEmail != "" {
			create.SetEmail(*la.ExtractedEmail)
		}
		if la.ExtractedCompany != nil && *la.ExtractedCompany != "" {
			create.SetCompany(*la.ExtractedCompany)
		}
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			row, err = s.client.Contact.Query().
				Where(
					contact.TenantIDEQ(c.TenantID),
					contact.PhoneEQ(phone),
				).
				Only(ctx)
			if err != nil {
				return false, nil, fmt.Errorf("failed to reload contact after race: %w", err)
			}
			return false, row, nil
		}
		return false, nil, fmt.Errorf("failed to auto-create contact: %w", err)
	}

	s.logger.Info("Contact auto-created",
		"contact_id", row.ID,
		"tenant_id", c.TenantID,
		"from_call_id", c.ID)
	return true, row, nil
}

// completeAnalytics fetches the lead's aggregate analysis row, or nil when
// extraction has not produced one (the contact is then created bare).
func (s *WebhookService) completeAnalytics(ctx context.Context, tenantID, phone string) *ent.LeadAnalytics {
	row, err := s.client.LeadAnalytics.Query().
		Where(
			leadanalytics.TenantIDEQ(tenantID),
			leadanalytics.PhoneEQ(phone),
			leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeComplete),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			s.logger.Warn("Lead analytics lookup failed",
				"tenant_id", tenantID, "phone", phone, "error", err)
		}
		return nil
	}
	return row
}

// leadPhone is the customer side of the call.
func leadPhone(c *ent.Call) string {
	if c.Direction == call.DirectionInbound {
		return c.FromPhone
	}
	return c.ToPhone
}

// lifecycleFor maps a webhook event name to the lifecycle status it sets.
func lifecycleFor(event string) (call.LifecycleStatus, bool) {
	switch event {
	case EventInitiated:
		return call.LifecycleStatusInitiated, true
	case EventRinging:
		return call.LifecycleStatusRinging, true
	case EventInProgress:
		return call.LifecycleStatusInProgress, true
	case EventNoAnswer:
		return call.LifecycleStatusNoAnswer, true
	case EventBusy:
		return call.LifecycleStatusBusy, true
	case EventCallDisconnected:
		return call.LifecycleStatusCallDisconnected, true
	}
	return "", false
}

// lifecycleBelow lists the non-terminal statuses ranked strictly below the
// target; the advance CAS matches only rows still in one of them.
func lifecycleBelow(target call.LifecycleStatus) []call.LifecycleStatus {
	all := []call.LifecycleStatus{
		call.LifecycleStatusInitiated,
		call.LifecycleStatusRinging,
		call.LifecycleStatusInProgress,
		call.LifecycleStatusNoAnswer,
		call.LifecycleStatusBusy,
		call.LifecycleStatusCallDisconnected,
	}
	out := make([]call.LifecycleStatus, 0, len(all))
	for _, ls := range all {
		if queue.LifecycleRank(ls) < queue.LifecycleRank(target) {
			out = append(out, ls)
		}
	}
	return out
}
