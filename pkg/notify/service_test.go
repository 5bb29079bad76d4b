package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/credittransaction"
	"github.com/ringstack/ringstack/ent/notification"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/mailer"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records outgoing messages and optionally fails every send.
type fakeSender struct {
	mu   sync.Mutex
	sent []*mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) messages() []*mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*mailer.Message(nil), f.sent...)
}

func setupNotify(t *testing.T) (*Service, *fakeSender, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sender := &fakeSender{}
	svc := NewService(client.Client, sender, &config.BillingConfig{LowCreditThresholds: []int{15, 5}})
	return svc, sender, client.Client
}

func seedTenant(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(100).
		Save(context.Background())
	require.NoError(t, err)
}

func TestSendDeliversAndRecords(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	row, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeCreditsAdded,
		IdempotencyKey: "key-1",
		Subject:        "Credits added",
		Template:       "credits_added",
		Payload:        map[string]interface{}{"amount": 50},
	})
	require.NoError(t, err)

	assert.Equal(t, notification.StatusSent, row.Status)
	assert.Equal(t, "tenant-1@example.com", row.Recipient, "recipient defaults to the account email")
	assert.Equal(t, "key-1", row.IdempotencyKey)
	assert.NotNil(t, row.SentAt)
	assert.Nil(t, row.ErrorMessage)
	assert.Equal(t, map[string]interface{}{"amount": 50}, row.Payload)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "tenant-1@example.com", msgs[0].To)
	assert.Equal(t, "Credits added", msgs[0].Subject)
	assert.Equal(t, "credits_added", msgs[0].Template)
	assert.Equal(t, map[string]interface{}{"amount": 50}, msgs[0].Variables)
}

func TestSendReplaySuppressed(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	in := Input{
		TenantID:       "tenant-1",
		Type:           TypeCreditsAdded,
		IdempotencyKey: "key-1",
		Subject:        "Credits added",
		Template:       "credits_added",
	}
	first, err := svc.Send(ctx, in)
	require.NoError(t, err)
	second, err := svc.Send(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "replay returns the stored row")
	assert.Len(t, sender.messages(), 1)

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSendPreferenceSkipLeavesAuditRow(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	off := false
	_, err := svc.UpdatePreferences(ctx, "tenant-1", PreferencesPatch{MarketingEmails: &off})
	require.NoError(t, err)

	row, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeMarketing,
		IdempotencyKey: "marketing-key",
		Subject:        "Spring offer",
		Template:       "marketing_offer",
	})
	require.NoError(t, err)

	assert.Equal(t, notification.StatusSkipped, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "User preference disabled", *row.ErrorMessage)
	assert.Equal(t, "marketing-key", row.IdempotencyKey)
	assert.Nil(t, row.SentAt)
	assert.Empty(t, sender.messages(), "a preference skip never reaches the mailer")

	// The key is burned: re-enabling does not resurrect the skipped send.
	on := true
	_, err = svc.UpdatePreferences(ctx, "tenant-1", PreferencesPatch{MarketingEmails: &on})
	require.NoError(t, err)
	replay, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeMarketing,
		IdempotencyKey: "marketing-key",
	})
	require.NoError(t, err)
	assert.Equal(t, row.ID, replay.ID)
	assert.Equal(t, notification.StatusSkipped, replay.Status)
	assert.Empty(t, sender.messages())
}

func TestSendMailerFailureRecordsFailedRow(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")
	sender.err = errors.New("provider returned 502")

	row, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeCampaignSummary,
		IdempotencyKey: "key-1",
		Subject:        "Campaign finished",
	})
	require.NoError(t, err, "a delivery failure is an outcome, not an error")

	assert.Equal(t, notification.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "provider returned 502")
	assert.Nil(t, row.SentAt)

	// No retries: a second attempt on the same key hits the stored row even
	// though the mailer is healthy again.
	sender.err = nil
	replay, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeCampaignSummary,
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, notification.StatusFailed, replay.Status)
	assert.Empty(t, sender.messages())

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSendTruncatesLongMailerErrors(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")
	sender.err = errors.New(strings.Repeat("x", 2000))

	row, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeCreditsAdded,
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	require.NotNil(t, row.ErrorMessage)
	assert.Len(t, *row.ErrorMessage, errMessageMax)
}

func TestSendValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	tests := []struct {
		name   string
		in     Input
		errMsg string
	}{
		{
			name:   "missing tenant",
			in:     Input{Type: TypeCreditsAdded, IdempotencyKey: "k"},
			errMsg: "tenant_id",
		},
		{
			name:   "missing idempotency key",
			in:     Input{TenantID: "tenant-1", Type: TypeCreditsAdded},
			errMsg: "idempotency_key",
		},
		{
			name:   "unknown type",
			in:     Input{TenantID: "tenant-1", Type: "carrier_pigeon", IdempotencyKey: "k"},
			errMsg: "unknown notification type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSendExplicitRecipientWins(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	row, err := svc.Send(ctx, Input{
		TenantID:       "tenant-1",
		Type:           TypeEmailVerification,
		IdempotencyKey: "key-1",
		Recipient:      "billing@acme.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.io", row.Recipient)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "billing@acme.io", msgs[0].To)
}

func TestSendUnknownTenant(t *testing.T) {
	ctx := context.Background()
	svc, sender, _ := setupNotify(t)

	_, err := svc.Send(ctx, Input{
		TenantID:       "ghost",
		Type:           TypeCreditsAdded,
		IdempotencyKey: "key-1",
	})
	require.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, sender.messages())
}

func TestEvaluateLowCredit(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	t.Run("healthy balance is silent", func(t *testing.T) {
		row, err := svc.EvaluateLowCredit(ctx, "tenant-1", 80)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Empty(t, sender.messages())
	})

	t.Run("most severe matching threshold wins", func(t *testing.T) {
		row, err := svc.EvaluateLowCredit(ctx, "tenant-1", 12)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "credit_low_15", row.Type)
		assert.Equal(t, notification.StatusSent, row.Status)
		assert.Equal(t, map[string]interface{}{"balance": 12, "threshold": 15}, row.Payload)
	})

	t.Run("same threshold same day emails once", func(t *testing.T) {
		row, err := svc.EvaluateLowCredit(ctx, "tenant-1", 11)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "credit_low_15", row.Type)
		assert.Len(t, sender.messages(), 1)
	})

	t.Run("crossing a deeper threshold emails again", func(t *testing.T) {
		row, err := svc.EvaluateLowCredit(ctx, "tenant-1", 4)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "credit_low_5", row.Type)
		assert.Len(t, sender.messages(), 2)
	})

	t.Run("exhaustion is its own warning", func(t *testing.T) {
		row, err := svc.EvaluateLowCredit(ctx, "tenant-1", 0)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, string(TypeCreditExhausted), row.Type)
		assert.Len(t, sender.messages(), 3)

		again, err := svc.EvaluateLowCredit(ctx, "tenant-1", -3)
		require.NoError(t, err)
		assert.Equal(t, row.ID, again.ID, "negative balances reuse the exhaustion key")
		assert.Len(t, sender.messages(), 3)
	})
}

func TestSendCampaignSummaryOncePerCampaign(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	camp, err := client.Campaign.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetAgentID("agent-1").
		SetName("Spring Outreach").
		SetTotalContacts(40).
		SetCompletedCalls(40).
		Save(ctx)
	require.NoError(t, err)

	row, err := svc.SendCampaignSummary(ctx, camp)
	require.NoError(t, err)
	assert.Equal(t, notification.StatusSent, row.Status)
	assert.Contains(t, row.Subject, "Spring Outreach")
	require.NotNil(t, row.RelatedCampaignID)
	assert.Equal(t, camp.ID, *row.RelatedCampaignID)
	assert.Equal(t, map[string]interface{}{
		"campaign_name":   "Spring Outreach",
		"total_contacts":  40,
		"completed_calls": 40,
	}, row.Payload)

	replay, err := svc.SendCampaignSummary(ctx, camp)
	require.NoError(t, err)
	assert.Equal(t, row.ID, replay.ID)
	assert.Len(t, sender.messages(), 1)
}

func TestSendCreditsAddedPerTransaction(t *testing.T) {
	ctx := context.Background()
	svc, sender, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	mkTxn := func(id string, amount, after int) *ent.CreditTransaction {
		txn, err := client.CreditTransaction.Create().
			SetID(id).
			SetTenantID("tenant-1").
			SetType(credittransaction.TypePurchase).
			SetAmount(amount).
			SetBalanceAfter(after).
			Save(ctx)
		require.NoError(t, err)
		return txn
	}

	first := mkTxn("txn-1", 50, 150)
	row, err := svc.SendCreditsAdded(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, notification.StatusSent, row.Status)
	require.NotNil(t, row.RelatedTransactionID)
	assert.Equal(t, "txn-1", *row.RelatedTransactionID)
	assert.Equal(t, map[string]interface{}{"amount": 50, "balance_after": 150}, row.Payload)

	replay, err := svc.SendCreditsAdded(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, row.ID, replay.ID)
	assert.Len(t, sender.messages(), 1)

	_, err = svc.SendCreditsAdded(ctx, mkTxn("txn-2", 20, 170))
	require.NoError(t, err)
	assert.Len(t, sender.messages(), 2, "each purchase gets its own receipt")
}

func TestPreferencesDefaultAllEnabled(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	prefs, err := svc.Preferences(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, Preferences{
		LowCreditAlerts:            true,
		CreditsAddedEmails:         true,
		CampaignSummaryEmails:      true,
		EmailVerificationReminders: true,
		MarketingEmails:            true,
	}, prefs)
}

func TestUpdatePreferencesPartialPatch(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")

	off := false
	prefs, err := svc.UpdatePreferences(ctx, "tenant-1", PreferencesPatch{MarketingEmails: &off})
	require.NoError(t, err)
	assert.False(t, prefs.MarketingEmails)
	assert.True(t, prefs.LowCreditAlerts, "unset fields keep their defaults")
	assert.True(t, prefs.CampaignSummaryEmails)

	// Second patch touches a different flag; the first one sticks.
	prefs, err = svc.UpdatePreferences(ctx, "tenant-1", PreferencesPatch{LowCreditAlerts: &off})
	require.NoError(t, err)
	assert.False(t, prefs.MarketingEmails)
	assert.False(t, prefs.LowCreditAlerts)

	stored, err := svc.Preferences(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, prefs, stored)

	_, err = svc.UpdatePreferences(ctx, "", PreferencesPatch{})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupNotify(t)
	seedTenant(t, client, "tenant-1")
	seedTenant(t, client, "tenant-2")

	for _, key := range []string{"key-a", "key-b", "key-c"} {
		_, err := svc.Send(ctx, Input{
			TenantID:       "tenant-1",
			Type:           TypeCreditsAdded,
			IdempotencyKey: key,
			Subject:        "Credits added",
		})
		require.NoError(t, err)
	}
	_, err := svc.Send(ctx, Input{
		TenantID:       "tenant-2",
		Type:           TypeCreditsAdded,
		IdempotencyKey: "other-tenant",
	})
	require.NoError(t, err)

	rows, err := svc.History(ctx, "tenant-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3, "history is tenant-scoped")
	for _, row := range rows {
		assert.Equal(t, "tenant-1", row.TenantID)
	}

	page, err := svc.History(ctx, "tenant-1", 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := svc.History(ctx, "tenant-1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	clamped, err := svc.History(ctx, "tenant-1", -1, 0)
	require.NoError(t, err)
	assert.Len(t, clamped, 3, "non-positive limits fall back to the default")
}
