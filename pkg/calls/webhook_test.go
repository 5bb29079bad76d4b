package calls

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/contact"
	"github.com/ringstack/ringstack/ent/credittransaction"
	"github.com/ringstack/ringstack/ent/transcript"
	"github.com/ringstack/ringstack/pkg/analysis"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/queue"
	"github.com/ringstack/ringstack/pkg/services"
	"github.com/ringstack/ringstack/pkg/voice"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	inputs []analysis.AnalyzeInput
	err    error
}

func (f *fakeAnalyzer) AnalyzeCall(_ context.Context, in analysis.AnalyzeInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return f.err
}

func (f *fakeAnalyzer) attempts() []analysis.AnalyzeInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]analysis.AnalyzeInput(nil), f.inputs...)
}

type fakeNotifier struct {
	mu        sync.Mutex
	lowCredit []int
	summaries []string
}

func (f *fakeNotifier) EvaluateLowCredit(_ context.Context, _ string, balance int) (*ent.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lowCredit = append(f.lowCredit, balance)
	return nil, nil
}

func (f *fakeNotifier) SendCampaignSummary(_ context.Context, camp *ent.Campaign) (*ent.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, camp.ID)
	return nil, nil
}

type fakeTrigger struct {
	mu       sync.Mutex
	contacts []string
}

func (f *fakeTrigger) ContactCreated(_ context.Context, c *ent.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = append(f.contacts, c.ID)
	return nil
}

type webhookFixture struct {
	client   *database.Client
	slots    *concurrency.Manager
	analyzer *fakeAnalyzer
	notifier *fakeNotifier
	trigger  *fakeTrigger
	svc      *WebhookService
}

func setupWebhookService(t *testing.T) *webhookFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	slots := concurrency.NewManager(client.Client, 10, 5)
	analyzer := &fakeAnalyzer{}
	notifier := &fakeNotifier{}
	trigger := &fakeTrigger{}

	queueSvc := queue.NewService(client.Client, config.DefaultQueueConfig())
	cache := queue.NewScheduleCache(client.Client, time.Minute)

	svc := NewWebhookService(WebhookDeps{
		Client:    client.Client,
		Slots:     slots,
		Billing:   billing.NewService(client.Client),
		Analyzer:  analyzer,
		Notifier:  notifier,
		Campaigns: queue.NewCampaignService(client.Client, queueSvc, cache),
		Inflight:  queue.NewInflightIndex(),
		Flows:     trigger,
	})

	return &webhookFixture{
		client:   client,
		slots:    slots,
		analyzer: analyzer,
		notifier: notifier,
		trigger:  trigger,
		svc:      svc,
	}
}

func (fx *webhookFixture) seedTenant(t *testing.T, id string, credits int) {
	t.Helper()
	_, err := fx.client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(credits).
		Save(context.Background())
	require.NoError(t, err)
}

// seedDispatchedCall mimics the dispatcher's footprint: a live call row with
// the provider execution id recorded and a concurrency slot held.
func (fx *webhookFixture) seedDispatchedCall(t *testing.T, tenantID, executionID string) *ent.Call {
	t.Helper()
	ctx := context.Background()
	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetToPhone("+15550123").
		SetFromPhone("+15550000").
		SetExecutionID(executionID).
		Save(ctx)
	require.NoError(t, err)

	res, err := fx.slots.Reserve(ctx, tenantID, c.ID, activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)
	return c
}

func completionEvent(executionID string) *WebhookEvent {
	return &WebhookEvent{
		Event:           EventCompleted,
		ExecutionID:     executionID,
		Status:          CompletionDone,
		DurationSeconds: 125,
		Summary:         "Lead wants a follow-up next week",
		RecordingURL:    "https://recordings.example.com/abc",
		Transcript: []TranscriptSegment{
			{Role: "agent", Message: "Hello"},
			{Role: "lead", Message: "Hi there"},
		},
		HangupBy: "lead",
	}
}

func TestProcessWebhookValidation(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		event  *WebhookEvent
		errMsg string
	}{
		{"nil payload", nil, "payload"},
		{"missing execution id", &WebhookEvent{Event: EventRinging}, "execution_id"},
		{
			"unknown event",
			&WebhookEvent{Event: "teleported", ExecutionID: "exec-1"},
			"unknown event",
		},
		{
			"completion with unknown status",
			&WebhookEvent{Event: EventCompleted, ExecutionID: "exec-1", Status: "maybe"},
			"status",
		},
		{
			"negative duration",
			&WebhookEvent{Event: EventCompleted, ExecutionID: "exec-1", Status: CompletionDone, DurationSeconds: -5},
			"duration_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.svc.ProcessWebhook(ctx, tt.event)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLifecycleEventsAdvanceMonotonically(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event: EventRinging, ExecutionID: "exec-1",
	}))
	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusRinging, got.LifecycleStatus)
	assert.NotNil(t, got.RingingStartedAt)

	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event: EventInProgress, ExecutionID: "exec-1",
	}))
	got, err = fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusInProgress, got.LifecycleStatus)
	assert.Equal(t, call.StatusInProgress, got.Status)
	assert.NotNil(t, got.AnsweredAt)

	// A late "ringing" replay must not move the call backwards.
	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event: EventRinging, ExecutionID: "exec-1",
	}))
	got, err = fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.LifecycleStatusInProgress, got.LifecycleStatus)
}

func TestCompletionSettlesCall(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, completionEvent("exec-1")))

	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusCompleted, got.Status)
	assert.Equal(t, call.LifecycleStatusCompleted, got.LifecycleStatus)
	assert.Equal(t, 125, got.DurationSeconds)
	assert.Equal(t, 3, got.BilledMinutes, "125s bills as 3 started minutes")
	assert.Equal(t, 3, got.CreditsUsed)
	assert.Equal(t, "Lead wants a follow-up next week", *got.Summary)
	assert.Equal(t, "lead", *got.HangupBy)
	assert.NotNil(t, got.EndedAt)

	// Transcript stored, flattened plus structured.
	tr, err := fx.client.Transcript.Query().
		Where(transcript.CallIDEQ(c.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent: Hello\nlead: Hi there", tr.Content)
	assert.Len(t, tr.Segments, 2)

	// Three minutes charged, ledger row written.
	tenant, err := fx.client.Tenant.Get(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 7, tenant.Credits)

	txn, err := fx.client.CreditTransaction.Query().
		Where(credittransaction.TenantIDEQ("tenant-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, credittransaction.TypeUsage, txn.Type)
	assert.Equal(t, -3, txn.Amount)
	assert.Equal(t, 7, txn.BalanceAfter)

	// Slot freed, extraction kicked with the lead's phone, low-credit check
	// ran against the post-charge balance.
	active, err := fx.slots.SystemActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, active)

	attempts := fx.analyzer.attempts()
	require.Len(t, attempts, 1)
	assert.Equal(t, c.ID, attempts[0].CallID)
	assert.Equal(t, "+15550123", attempts[0].Phone)
	assert.Contains(t, attempts[0].Transcript, "agent: Hello")

	require.Len(t, fx.notifier.lowCredit, 1)
	assert.Equal(t, 7, fx.notifier.lowCredit[0])

	// Lead auto-created and the engagement trigger saw it.
	row, err := fx.client.Contact.Query().
		Where(contact.TenantIDEQ("tenant-1"), contact.PhoneEQ("+15550123")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.IsAutoCreated)
	assert.Equal(t, contact.EntryTypeAutoCreated, row.EntryType)
	assert.Equal(t, []string{row.ID}, fx.trigger.contacts)
}

func TestCompletionReplayChangesNothing(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, completionEvent("exec-1")))
	// The provider redelivers; every effect must stay single-application.
	require.NoError(t, fx.svc.ProcessWebhook(ctx, completionEvent("exec-1")))

	tenant, err := fx.client.Tenant.Get(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 7, tenant.Credits, "charge applies once")

	txns, err := fx.client.CreditTransaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, txns)

	trs, err := fx.client.Transcript.Query().
		Where(transcript.CallIDEQ(c.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, trs)

	assert.Len(t, fx.analyzer.attempts(), 1, "extraction runs once")
	assert.Len(t, fx.notifier.lowCredit, 1)
	assert.Len(t, fx.trigger.contacts, 1)

	contacts, err := fx.client.Contact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, contacts)
}

func TestCompletionZeroDurationBillsNothing(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:           EventCompleted,
		ExecutionID:     "exec-1",
		Status:          CompletionDone,
		DurationSeconds: 0,
	}))

	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusCompleted, got.Status)
	assert.Equal(t, 0, got.BilledMinutes)

	tenant, err := fx.client.Tenant.Get(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 10, tenant.Credits)

	txns, err := fx.client.CreditTransaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, txns)
	assert.Empty(t, fx.notifier.lowCredit, "no charge means no low-credit check")

	// The slot is still freed even for unbilled calls.
	active, err := fx.slots.SystemActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, active)
}

func TestCompletionErrorStatus(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:           EventCompleted,
		ExecutionID:     "exec-1",
		Status:          CompletionError,
		DurationSeconds: 30,
		HangupReason:    "network failure",
	}))

	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusFailed, got.Status)
	assert.Equal(t, call.LifecycleStatusFailed, got.LifecycleStatus)
	assert.Equal(t, "network failure", *got.FailureReason)
	assert.Equal(t, 1, got.BilledMinutes, "reported airtime bills even on provider error")

	tenant, err := fx.client.Tenant.Get(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 9, tenant.Credits)
}

func TestCompletionSurvivesExtractionOutage(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")
	fx.analyzer.err = errors.New("extraction service unavailable")

	require.NoError(t, fx.svc.ProcessWebhook(ctx, completionEvent("exec-1")),
		"analysis failure must not bounce the webhook")

	// Billing and transcript landed; analytics did not.
	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, call.StatusCompleted, got.Status)
	assert.Equal(t, 3, got.BilledMinutes)

	tenant, err := fx.client.Tenant.Get(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 7, tenant.Credits)

	trs, err := fx.client.Transcript.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, trs)

	analytics, err := fx.client.LeadAnalytics.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, analytics)

	// Contact still created, just without extraction enrichment.
	row, err := fx.client.Contact.Query().
		Where(contact.TenantIDEQ("tenant-1"), contact.PhoneEQ("+15550123")).
		Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, row.Name)
	assert.Nil(t, row.Email)
}

func TestUnattributableWebhookDropped(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()

	// No call, no metadata, no provisioned number: acked and dropped.
	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:       EventRinging,
		ExecutionID: "exec-ghost",
		FromPhone:   "+19990001",
		ToPhone:     "+19990002",
	}))
	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:       EventCompleted,
		ExecutionID: "exec-ghost",
		Status:      CompletionDone,
	}))

	calls, err := fx.client.Call.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, calls, "unattributable events leave no rows")
}

func TestPlaceholderCreatedForProvisionedNumber(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	_, err := fx.client.PhoneNumber.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetPhone("+15551000").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:       EventRinging,
		ExecutionID: "exec-early",
		FromPhone:   "+15551000",
		ToPhone:     "+15550123",
	}))

	row, err := fx.client.Call.Query().
		Where(call.ExecutionIDEQ("exec-early")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.Placeholder)
	assert.Equal(t, "tenant-1", row.TenantID)
	assert.Equal(t, call.DirectionOutbound, row.Direction)
	assert.Equal(t, call.LifecycleStatusRinging, row.LifecycleStatus)

	// The replay resolves the same placeholder instead of adding another.
	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:       EventRinging,
		ExecutionID: "exec-early",
		FromPhone:   "+15551000",
	}))
	n, err := fx.client.Call.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInboundPlaceholderDirection(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)
	_, err := fx.client.PhoneNumber.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetPhone("+15551000").
		Save(ctx)
	require.NoError(t, err)

	// A customer dialing our provisioned number.
	require.NoError(t, fx.svc.ProcessWebhook(ctx, &WebhookEvent{
		Event:       EventInProgress,
		ExecutionID: "exec-inbound",
		FromPhone:   "+15559999",
		ToPhone:     "+15551000",
	}))

	row, err := fx.client.Call.Query().
		Where(call.ExecutionIDEQ("exec-inbound")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, call.DirectionInbound, row.Direction)
}

func TestResolveByMetadataAdoptsExecutionID(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	// Dispatch persisted no execution id (the write was lost), but webhooks
	// echo our metadata back.
	c, err := fx.client.Call.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetToPhone("+15550123").
		Save(ctx)
	require.NoError(t, err)
	res, err := fx.slots.Reserve(ctx, "tenant-1", c.ID, activeslot.KindDirect)
	require.NoError(t, err)
	require.True(t, res.OK)

	ev := completionEvent("exec-found")
	ev.Metadata = voice.NewMetadata(c.ID)
	require.NoError(t, fx.svc.ProcessWebhook(ctx, ev))

	got, err := fx.client.Call.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "exec-found", *got.ExecutionID)
	assert.Equal(t, call.StatusCompleted, got.Status)
}

func TestCampaignCompletionSendsSummary(t *testing.T) {
	fx := setupWebhookService(t)
	ctx := context.Background()
	fx.seedTenant(t, "tenant-1", 10)

	camp, err := fx.client.Campaign.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetAgentID("agent-1").
		SetName("Spring outreach").
		SetStatus("active").
		SetTotalContacts(1).
		Save(ctx)
	require.NoError(t, err)

	c := fx.seedDispatchedCall(t, "tenant-1", "exec-1")
	_, err = fx.client.Call.UpdateOneID(c.ID).SetCampaignID(camp.ID).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.svc.ProcessWebhook(ctx, completionEvent("exec-1")))

	got, err := fx.client.Campaign.Get(ctx, camp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedCalls)
	assert.Equal(t, "completed", string(got.Status))
	assert.Equal(t, []string{camp.ID}, fx.notifier.summaries)
}
