package calls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/ent/transcript"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/queue"
	"github.com/ringstack/ringstack/pkg/services"
)

// ErrAlreadyFinished is returned when stopping a call that reached a
// terminal state on its own.
var ErrAlreadyFinished = errors.New("call already finished")

// VoiceControl is the slice of the provider client the call service uses.
type VoiceControl interface {
	StopCall(ctx context.Context, executionID string) error
}

// Service handles direct call initiation and operator call control. Direct
// requests either dispatch immediately on a reserved slot or join the queue
// at direct priority; capacity never turns a request away.
type Service struct {
	client     *ent.Client
	slots      *concurrency.Manager
	queue      *queue.Service
	dispatcher *queue.Dispatcher
	voice      VoiceControl
	billing    *billing.Service
	logger     *slog.Logger
}

// NewService creates a call Service.
func NewService(client *ent.Client, slots *concurrency.Manager, queueSvc *queue.Service, dispatcher *queue.Dispatcher, voiceCtl VoiceControl, billingSvc *billing.Service) *Service {
	if client == nil {
		panic("calls.NewService: client is required")
	}
	if slots == nil {
		panic("calls.NewService: concurrency manager is required")
	}
	if queueSvc == nil {
		panic("calls.NewService: queue service is required")
	}
	if dispatcher == nil {
		panic("calls.NewService: dispatcher is required")
	}
	if voiceCtl == nil {
		panic("calls.NewService: voice client is required")
	}
	if billingSvc == nil {
		panic("calls.NewService: billing service is required")
	}
	return &Service{
		client:     client,
		slots:      slots,
		queue:      queueSvc,
		dispatcher: dispatcher,
		voice:      voiceCtl,
		billing:    billingSvc,
		logger:     slog.With("component", "calls"),
	}
}

// InitiateInput is one direct call request.
type InitiateInput struct {
	TenantID     string
	AgentID      string
	ContactPhone string
	ContactName  string
	ContactID    string
	Variables    map[string]interface{}
}

// InitiateResult reports either an immediate dispatch (CallID set) or the
// queued fallback (queue fields set).
type InitiateResult struct {
	Queued bool

	// Immediate path.
	CallID string

	// Queued path.
	QueueItemID          string
	QueuePosition        int
	EstimatedWaitMinutes int
	Reason               string
}

// Initiate places a direct call now if a slot is free, otherwise enqueues it
// at direct priority. Capacity is never an error: the caller always gets a
// call or a queue position. Zero credits are an error; completed calls must
// be billable.
func (s *Service) Initiate(ctx context.Context, in InitiateInput) (*InitiateResult, error) {
	if in.TenantID == "" {
		return nil, services.NewValidationError("tenant_id", "required")
	}
	if in.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "required")
	}
	if in.ContactPhone == "" {
		return nil, services.NewValidationError("contact_phone", "required")
	}

	hasCredit, err := s.billing.HasCredit(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if !hasCredit {
		return nil, services.ErrInsufficientCredits
	}

	callID := uuid.New().String()
	res, err := s.slots.Reserve(ctx, in.TenantID, callID, activeslot.KindDirect)
	if err != nil {
		return nil, err
	}

	if res.OK {
		_, err := s.dispatcher.Dispatch(ctx, queue.DispatchInput{
			TenantID:     in.TenantID,
			CallID:       callID,
			AgentID:      in.AgentID,
			ContactPhone: in.ContactPhone,
			ContactID:    in.ContactID,
			Variables:    in.Variables,
		})
		if err != nil {
			if _, rerr := s.slots.Release(ctx, callID); rerr != nil {
				s.logger.Error("Failed to release slot after dispatch error",
					"call_id", callID, "error", rerr)
			}
			return nil, err
		}
		s.logger.Info("Direct call dispatched",
			"call_id", callID, "tenant_id", in.TenantID)
		return &InitiateResult{CallID: callID}, nil
	}

	item, err := s.queue.Enqueue(ctx, queue.EnqueueInput{
		TenantID:     in.TenantID,
		Kind:         queueitem.KindDirect,
		AgentID:      in.AgentID,
		ContactPhone: in.ContactPhone,
		ContactName:  in.ContactName,
		ContactID:    in.ContactID,
		Variables:    in.Variables,
	})
	if err != nil {
		return nil, err
	}

	pos, err := s.queue.Position(ctx, item)
	if err != nil {
		s.logger.Warn("Failed to rank queued call", "queue_item_id", item.ID, "error", err)
		pos = 0
	}

	s.logger.Info("Direct call queued",
		"queue_item_id", item.ID,
		"tenant_id", in.TenantID,
		"position", pos,
		"reason", res.Reason)
	return &InitiateResult{
		Queued:               true,
		QueueItemID:          item.ID,
		QueuePosition:        pos,
		EstimatedWaitMinutes: s.queue.EstimatedWaitMinutes(pos, res.TenantLimit),
		Reason:               res.Reason,
	}, nil
}

// Stop asks the provider to terminate a live call. Calls that never reached
// the provider are cancelled locally; terminal calls return
// ErrAlreadyFinished. The completion webhook still settles billing for
// anything the provider actually ran.
func (s *Service) Stop(ctx context.Context, tenantID, callID string) (*ent.Call, error) {
	c, err := s.getCall(ctx, tenantID, callID)
	if err != nil {
		return nil, err
	}
	if queue.TerminalLifecycle(c.LifecycleStatus) {
		return c, ErrAlreadyFinished
	}

	if c.ExecutionID == nil || *c.ExecutionID == "" {
		return s.cancelLocally(ctx, c)
	}

	if err := s.voice.StopCall(ctx, *c.ExecutionID); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrProviderUnavailable, err)
	}
	s.logger.Info("Call stop requested",
		"call_id", c.ID, "execution_id", *c.ExecutionID)
	return c, nil
}

// cancelLocally settles a call the provider never saw: no webhook will ever
// arrive for it.
func (s *Service) cancelLocally(ctx context.Context, c *ent.Call) (*ent.Call, error) {
	updated, err := s.client.Call.UpdateOneID(c.ID).
		SetStatus(call.StatusCancelled).
		SetLifecycleStatus(call.LifecycleStatusCancelled).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel call %s: %w", c.ID, err)
	}
	if _, err := s.slots.Release(ctx, c.ID); err != nil {
		s.logger.Error("Failed to release slot for cancelled call",
			"call_id", c.ID, "error", err)
	}
	s.logger.Info("Call cancelled locally", "call_id", c.ID)
	return updated, nil
}

// Detail is a call with its transcript presence flag.
type Detail struct {
	Call          *ent.Call
	HasTranscript bool
}

// Get loads one call for the tenant.
func (s *Service) Get(ctx context.Context, tenantID, callID string) (*Detail, error) {
	c, err := s.getCall(ctx, tenantID, callID)
	if err != nil {
		return nil, err
	}
	has, err := s.client.Transcript.Query().
		Where(transcript.CallIDEQ(c.ID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check transcript for call %s: %w", c.ID, err)
	}
	return &Detail{Call: c, HasTranscript: has}, nil
}

// QueueStatus is the tenant's live view of its queue and slots.
type QueueStatus struct {
	Stats                queue.Stats       `json:"stats"`
	Slots                concurrency.Usage `json:"slots"`
	OldestPosition       int               `json:"oldest_position"`
	EstimatedWaitMinutes int               `json:"estimated_wait_minutes"`
}

// QueueStatus reports queue depth, slot occupancy, and the dispatch rank of
// the tenant's longest-waiting item.
func (s *Service) QueueStatus(ctx context.Context, tenantID string) (*QueueStatus, error) {
	stats, err := s.queue.Stats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	usage, err := s.slots.Usage(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	status := &QueueStatus{Stats: stats, Slots: usage}
	oldest, err := s.queue.OldestQueued(ctx, tenantID)
	if err != nil {
		if errors.Is(err, queue.ErrNoEligibleItems) {
			return status, nil
		}
		return nil, err
	}
	pos, err := s.queue.Position(ctx, oldest)
	if err != nil {
		return nil, err
	}
	status.OldestPosition = pos
	status.EstimatedWaitMinutes = s.queue.EstimatedWaitMinutes(pos, usage.TenantLimit)
	return status, nil
}

func (s *Service) getCall(ctx context.Context, tenantID, callID string) (*ent.Call, error) {
	c, err := s.client.Call.Query().
		Where(
			call.IDEQ(callID),
			call.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load call %s: %w", callID, err)
	}
	return c, nil
}
