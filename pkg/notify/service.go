package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/notification"
	"github.com/ringstack/ringstack/ent/notificationpreference"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/mailer"
	"github.com/ringstack/ringstack/pkg/services"
)

// errMessageMax truncates mailer error bodies stored on failed rows.
const errMessageMax = 500

// Sender is the slice of the mail client the dispatcher needs.
type Sender interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// Service dispatches notifications and owns tenant preferences.
type Service struct {
	client     *ent.Client
	sender     Sender
	thresholds []int
	logger     *slog.Logger
}

// NewService creates a notify Service. billingCfg supplies the low-credit
// thresholds; nil falls back to 15 and 5.
func NewService(client *ent.Client, sender Sender, billingCfg *config.BillingConfig) *Service {
	if client == nil {
		panic("notify.NewService: client is required")
	}
	if sender == nil {
		panic("notify.NewService: sender is required")
	}
	thresholds := []int{15, 5}
	if billingCfg != nil && len(billingCfg.LowCreditThresholds) > 0 {
		thresholds = append([]int(nil), billingCfg.LowCreditThresholds...)
	}
	// Ascending, so the first threshold the balance fits under is the most
	// severe one.
	sort.Ints(thresholds)
	return &Service{
		client:     client,
		sender:     sender,
		thresholds: thresholds,
		logger:     slog.With("component", "notify"),
	}
}

// Input describes one notification to dispatch.
type Input struct {
	TenantID       string
	Type           Type
	IdempotencyKey string

	// Recipient overrides the tenant's account email when set.
	Recipient string

	Subject  string
	Template string

	// Payload is handed to the mail provider as template variables and kept
	// on the row for auditing.
	Payload map[string]interface{}

	RelatedCampaignID    string
	RelatedTransactionID string
}

// Send makes at most one delivery attempt for the given idempotency key,
// ever. The returned row reports what happened: sent, failed (mailer error
// recorded), or skipped (preference gate). Replays and insert races return
// the already-stored row. An error means nothing was recorded.
func (s *Service) Send(ctx context.Context, in Input) (*ent.Notification, error) {
	if in.TenantID == "" {
		return nil, services.NewValidationError("tenant_id", "is required")
	}
	if !knownType(in.Type) {
		return nil, services.NewValidationError("type", fmt.Sprintf("unknown notification type %q", in.Type))
	}
	if in.IdempotencyKey == "" {
		return nil, services.NewValidationError("idempotency_key", "is required")
	}

	existing, err := s.client.Notification.Query().
		Where(notification.IdempotencyKeyEQ(in.IdempotencyKey)).
		Only(ctx)
	if err == nil {
		s.logger.Debug("Duplicate notification suppressed",
			"idempotency_key", in.IdempotencyKey, "status", existing.Status)
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if in.Recipient == "" {
		email, err := s.tenantEmail(ctx, in.TenantID)
		if err != nil {
			return nil, err
		}
		in.Recipient = email
	}

	prefs, err := s.Preferences(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if !prefs.enabled(bucketFor(in.Type)) {
		return s.record(ctx, in, notification.StatusSkipped, prefDisabledMessage, nil)
	}

	sendErr := s.sender.Send(ctx, &mailer.Message{
		To:        in.Recipient,
		Subject:   in.Subject,
		Template:  in.Template,
		Variables: in.Payload,
	})
	if sendErr != nil {
		s.logger.Warn("Notification delivery failed",
			"tenant_id", in.TenantID,
			"type", in.Type,
			"error", sendErr)
		return s.record(ctx, in, notification.StatusFailed, truncate(sendErr.Error()), nil)
	}

	now := time.Now()
	row, err := s.record(ctx, in, notification.StatusSent, "", &now)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Notification sent",
		"tenant_id", in.TenantID,
		"type", in.Type,
		"recipient", in.Recipient)
	return row, nil
}

// record inserts the outcome row. Losing the unique-key race to a concurrent
// attempt means the notification already happened; the winner's row is
// returned.
func (s *Service) record(ctx context.Context, in Input, status notification.Status, errMsg string, sentAt *time.Time) (*ent.Notification, error) {
	create := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetType(string(in.Type)).
		SetIdempotencyKey(in.IdempotencyKey).
		SetStatus(status).
		SetRecipient(in.Recipient).
		SetSubject(in.Subject)
	if errMsg != "" {
		create.SetErrorMessage(errMsg)
	}
	if in.Payload != nil {
		create.SetPayload(in.Payload)
	}
	if in.RelatedCampaignID != "" {
		create.SetRelatedCampaignID(in.RelatedCampaignID)
	}
	if in.RelatedTransactionID != "" {
		create.SetRelatedTransactionID(in.RelatedTransactionID)
	}
	if sentAt != nil {
		create.SetSentAt(*sentAt)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.Notification.Query().
				Where(notification.IdempotencyKeyEQ(in.IdempotencyKey)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}
	return row, nil
}

// EvaluateLowCredit runs after a usage charge with the post-decrement
// balance. Only the most severe matching warning is emitted; day-scoped keys
// hold each warning to one email per tenant per UTC day. A healthy balance
// returns (nil, nil).
func (s *Service) EvaluateLowCredit(ctx context.Context, tenantID string, balance int) (*ent.Notification, error) {
	now := time.Now()

	var (
		typ       Type
		subject   string
		template  string
		threshold int
	)
	switch {
	case balance <= 0:
		typ = TypeCreditExhausted
		subject = "Your call credits are exhausted"
		template = "credit_exhausted"
	default:
		for _, t := range s.thresholds {
			if balance <= t {
				typ = TypeCreditLow(t)
				subject = "Your call credits are running low"
				template = "credit_low"
				threshold = t
				break
			}
		}
	}
	if typ == "" {
		return nil, nil
	}

	return s.Send(ctx, Input{
		TenantID:       tenantID,
		Type:           typ,
		IdempotencyKey: LowCreditKey(tenantID, typ, now),
		Subject:        subject,
		Template:       template,
		Payload: map[string]interface{}{
			"balance":   balance,
			"threshold": threshold,
		},
	})
}

// SendCampaignSummary emits the once-per-campaign completion summary.
func (s *Service) SendCampaignSummary(ctx context.Context, camp *ent.Campaign) (*ent.Notification, error) {
	if camp == nil {
		return nil, services.NewValidationError("campaign", "is required")
	}
	return s.Send(ctx, Input{
		TenantID:          camp.TenantID,
		Type:              TypeCampaignSummary,
		IdempotencyKey:    CampaignSummaryKey(camp.TenantID, camp.ID),
		Subject:           fmt.Sprintf("Campaign %q finished", camp.Name),
		Template:          "campaign_summary",
		RelatedCampaignID: camp.ID,
		Payload: map[string]interface{}{
			"campaign_name":   camp.Name,
			"total_contacts":  camp.TotalContacts,
			"completed_calls": camp.CompletedCalls,
		},
	})
}

// SendCreditsAdded emits the purchase receipt for one ledger transaction.
func (s *Service) SendCreditsAdded(ctx context.Context, txn *ent.CreditTransaction) (*ent.Notification, error) {
	if txn == nil {
		return nil, services.NewValidationError("transaction", "is required")
	}
	return s.Send(ctx, Input{
		TenantID:             txn.TenantID,
		Type:                 TypeCreditsAdded,
		IdempotencyKey:       CreditsAddedKey(txn.TenantID, txn.ID),
		Subject:              "Credits added to your account",
		Template:             "credits_added",
		RelatedTransactionID: txn.ID,
		Payload: map[string]interface{}{
			"amount":        txn.Amount,
			"balance_after": txn.BalanceAfter,
		},
	})
}

// Preferences returns the tenant's opt-out sheet; every bucket is enabled
// when no row exists.
func (s *Service) Preferences(ctx context.Context, tenantID string) (Preferences, error) {
	row, err := s.client.NotificationPreference.Query().
		Where(notificationpreference.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return defaultPreferences(), nil
		}
		return Preferences{}, fmt.Errorf("failed to load notification preferences: %w", err)
	}
	return Preferences{
		LowCreditAlerts:            row.LowCreditAlerts,
		CreditsAddedEmails:         row.CreditsAddedEmails,
		CampaignSummaryEmails:      row.CampaignSummaryEmails,
		EmailVerificationReminders: row.EmailVerificationReminders,
		MarketingEmails:            row.MarketingEmails,
	}, nil
}

// UpdatePreferences applies a partial update, creating the row on first
// write. Unset fields keep their current (or default) value.
func (s *Service) UpdatePreferences(ctx context.Context, tenantID string, patch PreferencesPatch) (Preferences, error) {
	if tenantID == "" {
		return Preferences{}, services.NewValidationError("tenant_id", "is required")
	}

	row, err := s.client.NotificationPreference.Query().
		Where(notificationpreference.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return Preferences{}, fmt.Errorf("failed to load notification preferences: %w", err)
	}

	if ent.IsNotFound(err) {
		base := defaultPreferences()
		applyPatch(&base, patch)
		created, err := s.client.NotificationPreference.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetLowCreditAlerts(base.LowCreditAlerts).
			SetCreditsAddedEmails(base.CreditsAddedEmails).
			SetCampaignSummaryEmails(base.CampaignSummaryEmails).
			SetEmailVerificationReminders(base.EmailVerificationReminders).
			SetMarketingEmails(base.MarketingEmails).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Concurrent first write; apply the patch to the winner.
				return s.UpdatePreferences(ctx, tenantID, patch)
			}
			return Preferences{}, fmt.Errorf("failed to create notification preferences: %w", err)
		}
		row = created
	} else {
		upd := row.Update()
		if patch.LowCreditAlerts != nil {
			upd.SetLowCreditAlerts(*patch.LowCreditAlerts)
		}
		if patch.CreditsAddedEmails != nil {
			upd.SetCreditsAddedEmails(*patch.CreditsAddedEmails)
		}
		if patch.CampaignSummaryEmails != nil {
			upd.SetCampaignSummaryEmails(*patch.CampaignSummaryEmails)
		}
		if patch.EmailVerificationReminders != nil {
			upd.SetEmailVerificationReminders(*patch.EmailVerificationReminders)
		}
		if patch.MarketingEmails != nil {
			upd.SetMarketingEmails(*patch.MarketingEmails)
		}
		row, err = upd.Save(ctx)
		if err != nil {
			return Preferences{}, fmt.Errorf("failed to update notification preferences: %w", err)
		}
	}

	return Preferences{
		LowCreditAlerts:            row.LowCreditAlerts,
		CreditsAddedEmails:         row.CreditsAddedEmails,
		CampaignSummaryEmails:      row.CampaignSummaryEmails,
		EmailVerificationReminders: row.EmailVerificationReminders,
		MarketingEmails:            row.MarketingEmails,
	}, nil
}

// History returns the tenant's notification rows, newest first.
func (s *Service) History(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.client.Notification.Query().
		Where(notification.TenantIDEQ(tenantID)).
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}

// tenantEmail resolves the default recipient.
func (s *Service) tenantEmail(ctx context.Context, tenantID string) (string, error) {
	t, err := s.client.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", services.ErrNotFound
		}
		return "", fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	return t.Email, nil
}

func applyPatch(p *Preferences, patch PreferencesPatch) {
	if patch.LowCreditAlerts != nil {
		p.LowCreditAlerts = *patch.LowCreditAlerts
	}
	if patch.CreditsAddedEmails != nil {
		p.CreditsAddedEmails = *patch.CreditsAddedEmails
	}
	if patch.CampaignSummaryEmails != nil {
		p.CampaignSummaryEmails = *patch.CampaignSummaryEmails
	}
	if patch.EmailVerificationReminders != nil {
		p.EmailVerificationReminders = *patch.EmailVerificationReminders
	}
	if patch.MarketingEmails != nil {
		p.MarketingEmails = *patch.MarketingEmails
	}
}

func truncate(s string) string {
	if len(s) <= errMessageMax {
		return s
	}
	return s[:errMessageMax]
}
