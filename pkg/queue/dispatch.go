package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/agent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/phonenumber"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/services"
	"github.com/ringstack/ringstack/pkg/voice"
)

// failureReasonMax truncates provider error bodies stored on failed calls.
const failureReasonMax = 500

// VoiceDialer is the slice of the provider client the dispatcher needs.
type VoiceDialer interface {
	CreateCall(ctx context.Context, req *voice.CreateCallRequest) (*voice.CreateCallResponse, error)
}

// Dispatcher turns an approved call request into a provider call. It
// pre-creates the Call row so webhooks can resolve it, records in-flight
// attribution before dialing, and persists the provider execution id the
// moment the response lands. The caller owns the concurrency slot and the
// queue item; the dispatcher owns the Call row.
type Dispatcher struct {
	client     *ent.Client
	dialer     VoiceDialer
	inflight   *InflightIndex
	webhookURL string
	logger     *slog.Logger
}

// NewDispatcher creates a Dispatcher. webhookCfg supplies the public
// callback base URL handed to the provider on every call.
func NewDispatcher(client *ent.Client, dialer VoiceDialer, inflight *InflightIndex, webhookCfg *config.WebhookConfig) *Dispatcher {
	if client == nil {
		panic("queue.NewDispatcher: client is required")
	}
	if dialer == nil {
		panic("queue.NewDispatcher: dialer is required")
	}
	if inflight == nil {
		panic("queue.NewDispatcher: inflight index is required")
	}
	url := ""
	if webhookCfg != nil && webhookCfg.CallbackBaseURL != "" {
		url = strings.TrimRight(webhookCfg.CallbackBaseURL, "/") + "/api/v1/webhooks/voice"
	}
	return &Dispatcher{
		client:     client,
		dialer:     dialer,
		inflight:   inflight,
		webhookURL: url,
		logger:     slog.With("component", "dispatcher"),
	}
}

// DispatchInput describes one call to place. CallID is allocated by the
// caller so the concurrency slot, the Call row, and the provider metadata
// all share one identity.
type DispatchInput struct {
	TenantID     string
	CallID       string
	AgentID      string
	ContactPhone string
	ContactID    string
	CampaignID   string
	QueueItemID  string
	Variables    map[string]interface{}
}

// Dispatch places the call. On provider failure the pre-created Call row is
// settled as failed and the error returned; the caller releases the slot and
// fails the queue item.
func (d *Dispatcher) Dispatch(ctx context.Context, in DispatchInput) (*ent.Call, error) {
	if in.TenantID == "" || in.CallID == "" || in.ContactPhone == "" {
		return nil, services.NewValidationError("dispatch", "tenant_id, call_id and contact_phone are required")
	}

	ag, err := d.client.Agent.Query().
		Where(
			agent.IDEQ(in.AgentID),
			agent.TenantIDEQ(in.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", in.AgentID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if !ag.IsActive {
		return nil, services.NewValidationError("agent_id", "agent is deactivated")
	}

	fromPhone := d.fromPhoneFor(ctx, in.TenantID, ag.ID)

	created := d.client.Call.Create().
		SetID(in.CallID).
		SetTenantID(in.TenantID).
		SetAgentID(ag.ID).
		SetToPhone(in.ContactPhone).
		SetDirection(call.DirectionOutbound).
		SetStatus(call.StatusInitiated).
		SetLifecycleStatus(call.LifecycleStatusInitiated)
	if fromPhone != "" {
		created.SetFromPhone(fromPhone)
	}
	if in.ContactID != "" {
		created.SetContactID(in.ContactID)
	}
	if in.CampaignID != "" {
		created.SetCampaignID(in.CampaignID)
	}
	if in.QueueItemID != "" {
		created.SetQueueItemID(in.QueueItemID)
	}
	pre, err := created.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("call %s: %w", in.CallID, services.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create call record: %w", err)
	}

	// Attribution goes in before the dial: the provider can deliver its
	// first webhook before CreateCall returns to us.
	d.inflight.Record(in.ContactPhone, Attribution{
		CallID:     in.CallID,
		TenantID:   in.TenantID,
		AgentID:    ag.ID,
		CampaignID: in.CampaignID,
	})

	resp, err := d.dialer.CreateCall(ctx, &voice.CreateCallRequest{
		AgentID:   ag.ProviderAgentID,
		ToPhone:   in.ContactPhone,
		FromPhone: fromPhone,
		Webhook:   d.webhookURL,
		Variables: in.Variables,
		Metadata:  voice.NewMetadata(in.CallID),
	})
	if err != nil {
		d.inflight.Forget(in.ContactPhone, in.CallID)
		d.settleFailedDispatch(ctx, in.CallID, err)
		return nil, fmt.Errorf("provider dispatch for call %s: %w", in.CallID, err)
	}

	if err := d.persistExecution(ctx, in.CallID, resp.ExecutionID); err != nil {
		// The call is live at the provider; completion webhooks carry the
		// internal call id in metadata, so losing this write is recoverable.
		d.logger.Error("Failed to persist execution id",
			"call_id", in.CallID,
			"execution_id", resp.ExecutionID,
			"error", err)
	}
	d.inflight.Forget(in.ContactPhone, in.CallID)

	d.logger.Info("Call dispatched",
		"call_id", in.CallID,
		"tenant_id", in.TenantID,
		"execution_id", resp.ExecutionID)

	dispatched, err := d.client.Call.Get(ctx, in.CallID)
	if err != nil {
		return pre, nil
	}
	return dispatched, nil
}

// fromPhoneFor returns the tenant number pinned to the agent, or empty when
// none is provisioned (the provider then uses its own default caller id).
func (d *Dispatcher) fromPhoneFor(ctx context.Context, tenantID, agentID string) string {
	num, err := d.client.PhoneNumber.Query().
		Where(
			phonenumber.TenantIDEQ(tenantID),
			phonenumber.AssignedAgentIDEQ(agentID),
			phonenumber.IsActive(true),
		).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			d.logger.Warn("Failed to resolve caller id", "agent_id", agentID, "error", err)
		}
		return ""
	}
	return num.Phone
}

// persistExecution writes the provider execution id onto the dispatched
// Call. A unique violation means a webhook beat us here and left a
// placeholder row; merge it.
func (d *Dispatcher) persistExecution(ctx context.Context, callID, executionID string) error {
	err := d.client.Call.UpdateOneID(callID).
		SetExecutionID(executionID).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to persist execution id: %w", err)
	}
	return d.mergePlaceholder(ctx, callID, executionID)
}

// mergePlaceholder folds a webhook-created placeholder row into the
// dispatched Call: the real row adopts whatever lifecycle progress the
// placeholder accumulated, the placeholder is deleted, and the execution id
// moves over, all in one transaction. Placeholders hold lifecycle progress
// only (completions always resolve the real row via metadata), so they are
// never terminal.
func (d *Dispatcher) mergePlaceholder(ctx context.Context, callID, executionID string) error {
	tx, err := d.client.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start merge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph, err := tx.Call.Query().
		Where(
			call.ExecutionIDEQ(executionID),
			call.Placeholder(true),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("execution id %s is held by a non-placeholder call", executionID)
		}
		return fmt.Errorf("failed to load placeholder call: %w", err)
	}

	real, err := tx.Call.Query().
		Where(call.IDEQ(callID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dispatched call: %w", err)
	}

	if err := tx.Call.DeleteOneID(ph.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete placeholder call: %w", err)
	}

	upd := tx.Call.UpdateOneID(real.ID).SetExecutionID(executionID)
	if LifecycleRank(ph.LifecycleStatus) > LifecycleRank(real.LifecycleStatus) {
		upd.SetLifecycleStatus(ph.LifecycleStatus)
		if ph.LifecycleStatus == call.LifecycleStatusInProgress {
			upd.SetStatus(call.StatusInProgress)
		}
	}
	if ph.RingingStartedAt != nil && real.RingingStartedAt == nil {
		upd.SetRingingStartedAt(*ph.RingingStartedAt)
	}
	if ph.AnsweredAt != nil && real.AnsweredAt == nil {
		upd.SetAnsweredAt(*ph.AnsweredAt)
	}
	if ph.DisconnectedAt != nil && real.DisconnectedAt == nil {
		upd.SetDisconnectedAt(*ph.DisconnectedAt)
	}
	if ph.HangupBy != nil && real.HangupBy == nil {
		upd.SetHangupBy(*ph.HangupBy)
	}
	if ph.HangupReason != nil && real.HangupReason == nil {
		upd.SetHangupReason(*ph.HangupReason)
	}
	if ph.HangupProviderCode != nil && real.HangupProviderCode == nil {
		upd.SetHangupProviderCode(*ph.HangupProviderCode)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to adopt placeholder fields: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit placeholder merge: %w", err)
	}
	d.logger.Info("Merged placeholder call",
		"call_id", callID,
		"placeholder_id", ph.ID,
		"execution_id", executionID)
	return nil
}

// settleFailedDispatch marks the pre-created Call failed after the provider
// rejected it. No webhooks will arrive for this call.
func (d *Dispatcher) settleFailedDispatch(ctx context.Context, callID string, dispatchErr error) {
	reason := truncateReason(dispatchErr.Error())
	err := d.client.Call.UpdateOneID(callID).
		SetStatus(call.StatusFailed).
		SetLifecycleStatus(call.LifecycleStatusFailed).
		SetFailureReason(reason).
		SetEndedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		d.logger.Error("Failed to settle failed dispatch", "call_id", callID, "error", err)
	}
}

func truncateReason(s string) string {
	if len(s) <= failureReasonMax {
		return s
	}
	return s[:failureReasonMax]
}

// LifecycleRank orders lifecycle statuses by progression so late or
// replayed webhooks never move a call backwards.
func LifecycleRank(ls call.LifecycleStatus) int {
	switch ls {
	case call.LifecycleStatusInitiated:
		return 0
	case call.LifecycleStatusRinging:
		return 1
	case call.LifecycleStatusInProgress:
		return 2
	case call.LifecycleStatusNoAnswer, call.LifecycleStatusBusy:
		return 3
	case call.LifecycleStatusCallDisconnected:
		return 4
	case call.LifecycleStatusCompleted, call.LifecycleStatusFailed, call.LifecycleStatusCancelled:
		return 5
	default:
		return 0
	}
}

// TerminalLifecycle reports whether a lifecycle status ends the call. Once
// terminal, replayed webhooks change nothing.
func TerminalLifecycle(ls call.LifecycleStatus) bool {
	switch ls {
	case call.LifecycleStatusCompleted, call.LifecycleStatusFailed, call.LifecycleStatusCancelled:
		return true
	default:
		return false
	}
}
