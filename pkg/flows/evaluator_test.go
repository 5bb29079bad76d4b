package flows

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/notify"
	"github.com/ringstack/ringstack/pkg/queue"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarketing records every marketing input the evaluator dispatches.
type fakeMarketing struct {
	mu   sync.Mutex
	sent []notify.Input
}

func (f *fakeMarketing) Send(_ context.Context, in notify.Input) (*ent.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &ent.Notification{}, nil
}

func (f *fakeMarketing) inputs() []notify.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Input(nil), f.sent...)
}

func setupEvaluator(t *testing.T) (*Evaluator, *fakeMarketing, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	notifier := &fakeMarketing{}
	ev := NewEvaluator(client.Client, queue.NewService(client.Client, config.DefaultQueueConfig()), notifier)
	return ev, notifier, client.Client
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

func seedAgent(t *testing.T, client *ent.Client, tenantID, id string) {
	t.Helper()
	_, err := client.Agent.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetName("Agent " + id).
		SetProviderAgentID("prov-" + id).
		Save(context.Background())
	require.NoError(t, err)
}

type contactSpec struct {
	phone  string
	name   string
	email  string
	source string
	tags   []string
}

func seedContact(t *testing.T, client *ent.Client, tenantID string, spec contactSpec) *ent.Contact {
	t.Helper()
	create := client.Contact.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPhone(spec.phone)
	if spec.name != "" {
		create.SetName(spec.name)
	}
	if spec.email != "" {
		create.SetEmail(spec.email)
	}
	if spec.source != "" {
		create.SetLeadSource(spec.source)
	}
	if len(spec.tags) > 0 {
		create.SetTags(spec.tags)
	}
	c, err := create.Save(context.Background())
	require.NoError(t, err)
	return c
}

func seedFlow(t *testing.T, client *ent.Client, tenantID, name string, priority int, conditions, actions []map[string]interface{}) *ent.EngagementFlow {
	t.Helper()
	if conditions == nil {
		conditions = []map[string]interface{}{}
	}
	f, err := client.EngagementFlow.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(name).
		SetPriority(priority).
		SetAgentID("agent-1").
		SetConditions(conditions).
		SetActions(actions).
		Save(context.Background())
	require.NoError(t, err)
	return f
}

func TestContactCreatedFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Webform welcome", 1,
		[]map[string]interface{}{{"field": "lead_source", "operator": "equals", "value": "webform"}},
		[]map[string]interface{}{{"type": "email", "template": "welcome_webform"}})
	seedFlow(t, client, "tenant-1", "Catch-all", 2,
		nil,
		[]map[string]interface{}{{"type": "email", "template": "welcome_generic"}})

	webform := seedContact(t, client, "tenant-1", contactSpec{
		phone: "+15550101", email: "jane@acme.io", source: "webform",
	})
	require.NoError(t, ev.ContactCreated(ctx, webform))

	sent := notifier.inputs()
	require.Len(t, sent, 1, "only the first matching flow runs")
	assert.Equal(t, "welcome_webform", sent[0].Template)

	imported := seedContact(t, client, "tenant-1", contactSpec{
		phone: "+15550102", email: "raj@acme.io", source: "import",
	})
	require.NoError(t, ev.ContactCreated(ctx, imported))

	sent = notifier.inputs()
	require.Len(t, sent, 2, "non-matching contacts fall through to the catch-all")
	assert.Equal(t, "welcome_generic", sent[1].Template)
}

func TestContactCreatedPriorityOrder(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	// Created out of priority order on purpose.
	seedFlow(t, client, "tenant-1", "Late", 20, nil,
		[]map[string]interface{}{{"type": "email", "template": "late"}})
	seedFlow(t, client, "tenant-1", "Early", 5, nil,
		[]map[string]interface{}{{"type": "email", "template": "early"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	sent := notifier.inputs()
	require.Len(t, sent, 1)
	assert.Equal(t, "early", sent[0].Template)
}

func TestContactCreatedDisabledFlowIgnored(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	_, err := client.EngagementFlow.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("Disabled").
		SetPriority(1).
		SetEnabled(false).
		SetAgentID("agent-1").
		SetConditions([]map[string]interface{}{}).
		SetActions([]map[string]interface{}{{"type": "email", "template": "never"}}).
		Save(ctx)
	require.NoError(t, err)
	seedFlow(t, client, "tenant-1", "Enabled", 2, nil,
		[]map[string]interface{}{{"type": "email", "template": "enabled"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	sent := notifier.inputs()
	require.Len(t, sent, 1)
	assert.Equal(t, "enabled", sent[0].Template)
}

func TestContactCreatedDNCTagSuppressesFlows(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Catch-all", 1, nil,
		[]map[string]interface{}{
			{"type": "email", "template": "welcome"},
			{"type": "call"},
		})

	c := seedContact(t, client, "tenant-1", contactSpec{
		phone: "+15550101", email: "x@acme.io", tags: []string{"vip", "DNC"},
	})
	require.NoError(t, ev.ContactCreated(ctx, c))

	assert.Empty(t, notifier.inputs())
	count, err := client.QueueItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, ev.ContactCreated(ctx, nil), "nil contact is a no-op")
}

func TestContactCreatedSkipsMisconfiguredConditions(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Broken", 1,
		[]map[string]interface{}{{"field": "lead_source", "operator": "regex", "value": ".*"}},
		[]map[string]interface{}{{"type": "email", "template": "never"}})
	seedFlow(t, client, "tenant-1", "Healthy", 2, nil,
		[]map[string]interface{}{{"type": "email", "template": "healthy"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	sent := notifier.inputs()
	require.Len(t, sent, 1, "a flow that cannot be decoded is skipped, not fatal")
	assert.Equal(t, "healthy", sent[0].Template)
}

func TestContactCreatedInvalidActionsFailTheFlow(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Bad actions", 1, nil,
		[]map[string]interface{}{{"type": "sms", "template": "hi"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	err := ev.ContactCreated(ctx, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid actions")
	assert.Empty(t, notifier.inputs(), "a half-valid flow runs none of its steps")
}

func TestContactCreatedCallActionsFollowWaitCursor(t *testing.T) {
	ctx := context.Background()
	ev, _, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Call ladder", 1, nil,
		[]map[string]interface{}{
			{"type": "call", "delay_minutes": float64(15)},
			{"type": "wait", "minutes": float64(30)},
			{"type": "call"},
		})

	c := seedContact(t, client, "tenant-1", contactSpec{
		phone: "+15550101", name: "Jane Smith",
	})
	start := time.Now()
	require.NoError(t, ev.ContactCreated(ctx, c))

	items, err := client.QueueItem.Query().
		Order(ent.Asc(queueitem.FieldPosition)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, queueitem.KindCampaign, item.Kind)
		assert.Equal(t, queueitem.StatusQueued, item.Status)
		assert.Nil(t, item.CampaignID, "flow calls belong to no campaign")
		require.NotNil(t, item.ContactID)
		assert.Equal(t, c.ID, *item.ContactID)
		assert.Equal(t, "agent-1", item.AgentID)
		assert.Equal(t, "+15550101", item.ContactPhone)
		require.NotNil(t, item.ContactName)
		assert.Equal(t, "Jane Smith", *item.ContactName)
	}

	// First call: its own 15m delay, before the wait shifts the cursor.
	require.NotNil(t, items[0].ScheduledFor)
	assert.WithinDuration(t, start.Add(15*time.Minute), *items[0].ScheduledFor, 10*time.Second)
	// Second call: the 30m cursor, no per-call delay.
	require.NotNil(t, items[1].ScheduledFor)
	assert.WithinDuration(t, start.Add(30*time.Minute), *items[1].ScheduledFor, 10*time.Second)
}

func TestContactCreatedImmediateCallHasNoSchedule(t *testing.T) {
	ctx := context.Background()
	ev, _, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Call now", 1, nil,
		[]map[string]interface{}{{"type": "call"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	item, err := client.QueueItem.Query().Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, item.ScheduledFor)
}

func TestContactCreatedCallActionAgentOverride(t *testing.T) {
	ctx := context.Background()
	ev, _, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")
	seedAgent(t, client, "tenant-1", "agent-2")

	seedFlow(t, client, "tenant-1", "Specialist", 1, nil,
		[]map[string]interface{}{{"type": "call", "agent_id": "agent-2"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	item, err := client.QueueItem.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-2", item.AgentID)
}

func TestContactCreatedCallActionWithoutAgentSkipped(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")

	_, err := client.EngagementFlow.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetName("No agent anywhere").
		SetPriority(1).
		SetConditions([]map[string]interface{}{}).
		SetActions([]map[string]interface{}{
			{"type": "call"},
			{"type": "email", "template": "still_runs"},
		}).
		Save(ctx)
	require.NoError(t, err)

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	count, err := client.QueueItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "a call action with no agent is dropped")

	sent := notifier.inputs()
	require.Len(t, sent, 1, "later actions still run")
	assert.Equal(t, "still_runs", sent[0].Template)
}

func TestContactCreatedEnqueueFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	// The call action names an agent that does not exist; the composite
	// tenant FK rejects the enqueue and the flow moves on.
	seedFlow(t, client, "tenant-1", "Ghost agent", 1, nil,
		[]map[string]interface{}{
			{"type": "call", "agent_id": "ghost"},
			{"type": "email", "template": "after_failure"},
		})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101", email: "x@acme.io"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	count, err := client.QueueItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	sent := notifier.inputs()
	require.Len(t, sent, 1)
	assert.Equal(t, "after_failure", sent[0].Template)
}

func TestContactCreatedMarketingSend(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	f := seedFlow(t, client, "tenant-1", "Welcome series", 1, nil,
		[]map[string]interface{}{{"type": "message", "template": "welcome_msg"}})

	c := seedContact(t, client, "tenant-1", contactSpec{
		phone: "+15550101", name: "Jane Smith", email: "jane@acme.io",
	})
	require.NoError(t, ev.ContactCreated(ctx, c))

	sent := notifier.inputs()
	require.Len(t, sent, 1)
	in := sent[0]
	assert.Equal(t, "tenant-1", in.TenantID)
	assert.Equal(t, notify.TypeMarketing, in.Type)
	assert.Equal(t, "marketing:flow_"+f.ID+"_"+c.ID, in.IdempotencyKey,
		"one marketing send per contact per flow")
	assert.Equal(t, "jane@acme.io", in.Recipient)
	assert.Equal(t, "Welcome series", in.Subject)
	assert.Equal(t, "welcome_msg", in.Template)
	assert.Equal(t, map[string]interface{}{
		"contact_name":  "Jane Smith",
		"contact_phone": "+15550101",
	}, in.Payload)
}

func TestContactCreatedMarketingRequiresEmail(t *testing.T) {
	ctx := context.Background()
	ev, notifier, client := setupEvaluator(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	seedFlow(t, client, "tenant-1", "Email only", 1, nil,
		[]map[string]interface{}{{"type": "email", "template": "welcome"}})

	c := seedContact(t, client, "tenant-1", contactSpec{phone: "+15550101"})
	require.NoError(t, ev.ContactCreated(ctx, c))

	assert.Empty(t, notifier.inputs(), "no email address, no marketing send")
}
