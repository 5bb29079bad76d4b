package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/agent"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/services"
)

// CampaignService manages campaign definitions and feeds their contacts
// into the queue. Schedule changes invalidate the schedule cache so the
// next processor gate sees them.
type CampaignService struct {
	client *ent.Client
	queue  *Service
	cache  *ScheduleCache
	logger *slog.Logger
}

// NewCampaignService creates a CampaignService.
func NewCampaignService(client *ent.Client, queue *Service, cache *ScheduleCache) *CampaignService {
	if client == nil {
		panic("queue.NewCampaignService: client is required")
	}
	if queue == nil {
		panic("queue.NewCampaignService: queue service is required")
	}
	if cache == nil {
		panic("queue.NewCampaignService: schedule cache is required")
	}
	return &CampaignService{
		client: client,
		queue:  queue,
		cache:  cache,
		logger: slog.With("component", "campaigns"),
	}
}

// CreateCampaignInput describes a new campaign. Empty window fields fall
// back to UTC 09:00-17:00.
type CreateCampaignInput struct {
	TenantID      string
	AgentID       string
	Name          string
	Timezone      string
	FirstCallTime string
	LastCallTime  string
	FromPhone     string
	StartDate     *time.Time
}

// Create validates the calling window and inserts a draft campaign.
// Midnight-crossing windows and unknown zones are rejected here, so a
// campaign row always carries a usable schedule.
func (s *CampaignService) Create(ctx context.Context, in CreateCampaignInput) (*ent.Campaign, error) {
	if in.TenantID == "" {
		return nil, services.NewValidationError("tenant_id", "required")
	}
	if in.Name == "" {
		return nil, services.NewValidationError("name", "required")
	}

	tz := in.Timezone
	if tz == "" {
		tz = "UTC"
	}
	first := in.FirstCallTime
	if first == "" {
		first = "09:00"
	}
	last := in.LastCallTime
	if last == "" {
		last = "17:00"
	}
	if _, err := NewWindow(tz, first, last); err != nil {
		return nil, err
	}

	ok, err := s.client.Agent.Query().
		Where(
			agent.IDEQ(in.AgentID),
			agent.TenantIDEQ(in.TenantID),
			agent.IsActive(true),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify agent: %w", err)
	}
	if !ok {
		return nil, services.NewValidationError("agent_id", "unknown or inactive agent")
	}

	builder := s.client.Campaign.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetAgentID(in.AgentID).
		SetName(in.Name).
		SetStatus(campaign.StatusDraft).
		SetTimezone(tz).
		SetFirstCallTime(first).
		SetLastCallTime(last)
	if in.FromPhone != "" {
		builder.SetFromPhone(in.FromPhone)
	}
	if in.StartDate != nil {
		builder.SetStartDate(*in.StartDate)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	s.logger.Info("Campaign created",
		"campaign_id", c.ID,
		"tenant_id", c.TenantID,
		"window", first+"-"+last,
		"timezone", tz)
	return c, nil
}

// Get loads a tenant's campaign.
func (s *CampaignService) Get(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Query().
		Where(
			campaign.IDEQ(campaignID),
			campaign.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return c, nil
}

// Activate moves a draft or paused campaign to active and invalidates the
// schedule cache. Activating an active campaign is a no-op.
func (s *CampaignService) Activate(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	return s.transition(ctx, tenantID, campaignID, campaign.StatusActive,
		campaign.StatusDraft, campaign.StatusPaused)
}

// Pause moves an active campaign to paused; queued items stay queued and
// simply stop being eligible. Pausing a paused campaign is a no-op.
func (s *CampaignService) Pause(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	return s.transition(ctx, tenantID, campaignID, campaign.StatusPaused,
		campaign.StatusActive)
}

func (s *CampaignService) transition(ctx context.Context, tenantID, campaignID string, to campaign.Status, from ...campaign.Status) (*ent.Campaign, error) {
	c, err := s.Get(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status == to {
		return c, nil
	}

	n, err := s.client.Campaign.Update().
		Where(
			campaign.IDEQ(campaignID),
			campaign.StatusIn(from...),
		).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign status: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("campaign %s is %s: %w", campaignID, c.Status, services.ErrConcurrentModification)
	}

	s.cache.Invalidate()
	s.logger.Info("Campaign status changed",
		"campaign_id", campaignID,
		"from", c.Status,
		"to", to)
	return s.Get(ctx, tenantID, campaignID)
}

// CampaignContact is one dial target for bulk enqueue.
type CampaignContact struct {
	ContactID string                 `json:"contact_id,omitempty"`
	Phone     string                 `json:"phone"`
	Name      string                 `json:"name,omitempty"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// EnqueueContacts adds campaign-kind queue items for the given contacts and
// bumps the campaign's total_contacts by however many were accepted.
// Contacts without a phone are skipped; a future start_date defers dispatch
// via scheduled_for.
func (s *CampaignService) EnqueueContacts(ctx context.Context, tenantID, campaignID string, contacts []CampaignContact) (int, error) {
	c, err := s.Get(ctx, tenantID, campaignID)
	if err != nil {
		return 0, err
	}
	switch c.Status {
	case campaign.StatusCompleted, campaign.StatusCancelled:
		return 0, services.NewValidationError("campaign_id", "campaign is finished")
	}
	if len(contacts) == 0 {
		return 0, services.NewValidationError("contacts", "at least one contact is required")
	}

	var scheduledFor *time.Time
	if c.StartDate != nil && c.StartDate.After(time.Now()) {
		scheduledFor = c.StartDate
	}

	enqueued := 0
	for _, contact := range contacts {
		if contact.Phone == "" {
			s.logger.Warn("Skipping contact without phone", "campaign_id", campaignID)
			continue
		}
		_, err := s.queue.Enqueue(ctx, EnqueueInput{
			TenantID:     tenantID,
			Kind:         queueitem.KindCampaign,
			AgentID:      c.AgentID,
			ContactPhone: contact.Phone,
			ContactName:  contact.Name,
			ContactID:    contact.ContactID,
			CampaignID:   campaignID,
			ScheduledFor: scheduledFor,
			Variables:    contact.Variables,
		})
		if err != nil {
			s.finishEnqueue(ctx, campaignID, enqueued)
			return enqueued, fmt.Errorf("failed to enqueue contact %s: %w", contact.Phone, err)
		}
		enqueued++
	}

	s.finishEnqueue(ctx, campaignID, enqueued)
	return enqueued, nil
}

func (s *CampaignService) finishEnqueue(ctx context.Context, campaignID string, enqueued int) {
	if enqueued == 0 {
		return
	}
	if err := s.client.Campaign.UpdateOneID(campaignID).
		AddTotalContacts(enqueued).
		Exec(ctx); err != nil {
		s.logger.Error("Failed to bump campaign contact counter",
			"campaign_id", campaignID, "error", err)
	}
	s.cache.Invalidate()
}

// RecordCallCompleted bumps completed_calls for a campaign call that just
// finished and reports whether that finished the whole campaign: every
// contact dialed and nothing queued or processing anymore. The status flip
// is a compare-and-swap, so exactly one completion observes true.
func (s *CampaignService) RecordCallCompleted(ctx context.Context, campaignID string) (*ent.Campaign, bool, error) {
	c, err := s.client.Campaign.UpdateOneID(campaignID).
		AddCompletedCalls(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, services.ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to bump completed calls: %w", err)
	}

	if c.TotalContacts == 0 || c.CompletedCalls < c.TotalContacts {
		return c, false, nil
	}

	live, err := s.client.QueueItem.Query().
		Where(
			queueitem.CampaignIDEQ(campaignID),
			queueitem.StatusIn(queueitem.StatusQueued, queueitem.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return c, false, fmt.Errorf("failed to check live campaign items: %w", err)
	}
	if live {
		return c, false, nil
	}

	n, err := s.client.Campaign.Update().
		Where(
			campaign.IDEQ(campaignID),
			campaign.StatusIn(campaign.StatusActive, campaign.StatusPaused),
		).
		SetStatus(campaign.StatusCompleted).
		Save(ctx)
	if err != nil {
		return c, false, fmt.Errorf("failed to complete campaign: %w", err)
	}
	if n == 0 {
		return c, false, nil
	}

	s.cache.Invalidate()
	s.logger.Info("Campaign completed",
		"campaign_id", campaignID,
		"total_contacts", c.TotalContacts)
	c.Status = campaign.StatusCompleted
	return c, true, nil
}
