package queue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/services"
	"github.com/ringstack/ringstack/pkg/voice"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDispatcher(t *testing.T) (*Dispatcher, *fakeDialer, *InflightIndex, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	dialer := &fakeDialer{}
	inflight := NewInflightIndex()
	d := NewDispatcher(client.Client, dialer, inflight, &config.WebhookConfig{
		CallbackBaseURL: "https://hooks.example.com/",
	})
	return d, dialer, inflight, client.Client
}

func seedAgentPhone(t *testing.T, client *ent.Client, tenantID, agentID, phone string) {
	t.Helper()
	err := client.PhoneNumber.Create().
		SetID("num-" + agentID).
		SetTenantID(tenantID).
		SetPhone(phone).
		SetAssignedAgentID(agentID).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestDispatchCreatesCallAndRecordsExecution(t *testing.T) {
	ctx := context.Background()
	d, dialer, inflight, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")
	seedAgentPhone(t, client, "tenant-1", "agent-1", "+15559999")
	dialer.execID = "exec-123"

	c, err := d.Dispatch(ctx, DispatchInput{
		TenantID:     "tenant-1",
		CallID:       "call-1",
		AgentID:      "agent-1",
		ContactPhone: "+15550101",
		QueueItemID:  "item-1",
		Variables:    map[string]interface{}{"first_name": "Jane"},
	})
	require.NoError(t, err)

	assert.Equal(t, "call-1", c.ID)
	assert.Equal(t, call.StatusInitiated, c.Status)
	assert.Equal(t, call.DirectionOutbound, c.Direction)
	require.NotNil(t, c.ExecutionID)
	assert.Equal(t, "exec-123", *c.ExecutionID)
	assert.Equal(t, "+15559999", c.FromPhone, "caller id comes from the agent's provisioned number")
	require.NotNil(t, c.QueueItemID)
	assert.Equal(t, "item-1", *c.QueueItemID)

	// The provider sees its own agent id, the callback URL, and our call id
	// in the echoed metadata.
	require.Len(t, dialer.calls, 1)
	req := dialer.calls[0]
	assert.Equal(t, "prov-agent-1", req.AgentID)
	assert.Equal(t, "+15550101", req.ToPhone)
	assert.Equal(t, "+15559999", req.FromPhone)
	assert.Equal(t, "https://hooks.example.com/api/v1/webhooks/voice", req.Webhook)
	assert.Equal(t, map[string]interface{}{"first_name": "Jane"}, req.Variables)
	assert.Equal(t, "call-1", voice.InternalCallID(req.Metadata))

	// Attribution is dropped once the execution id is on the row.
	assert.Zero(t, inflight.Len())
}

func TestDispatchWithoutProvisionedNumber(t *testing.T) {
	ctx := context.Background()
	d, dialer, _, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	c, err := d.Dispatch(ctx, DispatchInput{
		TenantID:     "tenant-1",
		CallID:       "call-1",
		AgentID:      "agent-1",
		ContactPhone: "+15550101",
	})
	require.NoError(t, err)
	assert.Empty(t, c.FromPhone, "provider falls back to its default caller id")
	require.Len(t, dialer.calls, 1)
	assert.Empty(t, dialer.calls[0].FromPhone)
}

func TestDispatchValidation(t *testing.T) {
	ctx := context.Background()
	d, dialer, _, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	retired, err := client.Agent.Create().
		SetID("agent-off").
		SetTenantID("tenant-1").
		SetName("Retired").
		SetProviderAgentID("prov-off").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	t.Run("missing contact phone", func(t *testing.T) {
		_, err := d.Dispatch(ctx, DispatchInput{
			TenantID: "tenant-1", CallID: "call-x", AgentID: "agent-1",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := d.Dispatch(ctx, DispatchInput{
			TenantID: "tenant-1", CallID: "call-x", AgentID: "ghost",
			ContactPhone: "+15550101",
		})
		require.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("deactivated agent", func(t *testing.T) {
		_, err := d.Dispatch(ctx, DispatchInput{
			TenantID: "tenant-1", CallID: "call-x", AgentID: retired.ID,
			ContactPhone: "+15550101",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "deactivated")
	})

	// Nothing reached the provider and no call rows were written.
	assert.Zero(t, dialer.callCount())
	n, err := client.Call.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDispatchFailureSettlesCallRow(t *testing.T) {
	ctx := context.Background()
	d, dialer, inflight, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")
	dialer.err = errors.New("provider rejected: " + strings.Repeat("x", 600))

	_, err := d.Dispatch(ctx, DispatchInput{
		TenantID:     "tenant-1",
		CallID:       "call-1",
		AgentID:      "agent-1",
		ContactPhone: "+15550101",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider rejected")

	// The pre-created row settled as failed with the reason truncated; no
	// webhook will ever arrive for it.
	c, err := client.Call.Get(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, call.StatusFailed, c.Status)
	assert.Equal(t, call.LifecycleStatusFailed, c.LifecycleStatus)
	require.NotNil(t, c.FailureReason)
	assert.Len(t, *c.FailureReason, failureReasonMax)
	assert.NotNil(t, c.EndedAt)
	assert.Zero(t, inflight.Len())
}

func TestDispatchRejectsDuplicateCallID(t *testing.T) {
	ctx := context.Background()
	d, _, _, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")

	in := DispatchInput{
		TenantID:     "tenant-1",
		CallID:       "call-1",
		AgentID:      "agent-1",
		ContactPhone: "+15550101",
	}
	_, err := d.Dispatch(ctx, in)
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, in)
	require.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestDispatchMergesPlaceholderFromEarlierWebhook(t *testing.T) {
	ctx := context.Background()
	d, dialer, _, client := setupDispatcher(t)
	seedTenant(t, client, "tenant-1")
	seedAgent(t, client, "tenant-1", "agent-1")
	dialer.execID = "exec-123"

	// A webhook for exec-123 landed before our provider response did and
	// left a placeholder row carrying the lifecycle progress so far.
	answered := time.Now().Add(-30 * time.Second).Truncate(time.Second)
	ph, err := client.Call.Create().
		SetID("ph-1").
		SetTenantID("tenant-1").
		SetToPhone("+15550101").
		SetExecutionID("exec-123").
		SetPlaceholder(true).
		SetStatus(call.StatusInProgress).
		SetLifecycleStatus(call.LifecycleStatusInProgress).
		SetAnsweredAt(answered).
		Save(ctx)
	require.NoError(t, err)

	c, err := d.Dispatch(ctx, DispatchInput{
		TenantID:     "tenant-1",
		CallID:       "call-real",
		AgentID:      "agent-1",
		ContactPhone: "+15550101",
	})
	require.NoError(t, err)

	// The dispatched row adopted the placeholder's progress and owns the
	// execution id; the placeholder is gone.
	require.NotNil(t, c.ExecutionID)
	assert.Equal(t, "exec-123", *c.ExecutionID)
	assert.Equal(t, call.LifecycleStatusInProgress, c.LifecycleStatus)
	assert.Equal(t, call.StatusInProgress, c.Status)
	require.NotNil(t, c.AnsweredAt)
	assert.WithinDuration(t, answered, *c.AnsweredAt, time.Second)

	_, err = client.Call.Get(ctx, ph.ID)
	assert.True(t, ent.IsNotFound(err), "placeholder row must be deleted")

	n, err := client.Call.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLifecycleRank(t *testing.T) {
	// Replayed or late webhooks must never move a call backwards, so the
	// ordering of the progression is load-bearing.
	order := []call.LifecycleStatus{
		call.LifecycleStatusInitiated,
		call.LifecycleStatusRinging,
		call.LifecycleStatusInProgress,
		call.LifecycleStatusNoAnswer,
		call.LifecycleStatusCallDisconnected,
		call.LifecycleStatusCompleted,
	}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, LifecycleRank(order[i]), LifecycleRank(order[i-1]),
			"%s must outrank %s", order[i], order[i-1])
	}
	assert.Equal(t, LifecycleRank(call.LifecycleStatusNoAnswer), LifecycleRank(call.LifecycleStatusBusy))
	assert.Equal(t, LifecycleRank(call.LifecycleStatusCompleted), LifecycleRank(call.LifecycleStatusFailed))
}

func TestTerminalLifecycle(t *testing.T) {
	assert.True(t, TerminalLifecycle(call.LifecycleStatusCompleted))
	assert.True(t, TerminalLifecycle(call.LifecycleStatusFailed))
	assert.True(t, TerminalLifecycle(call.LifecycleStatusCancelled))
	assert.False(t, TerminalLifecycle(call.LifecycleStatusInitiated))
	assert.False(t, TerminalLifecycle(call.LifecycleStatusInProgress))
	assert.False(t, TerminalLifecycle(call.LifecycleStatusCallDisconnected))
}
