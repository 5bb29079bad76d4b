package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/stretchr/testify/require"
)

func testQueueConfig() *config.QueueConfig {
	return config.DefaultQueueConfig()
}

func seedTenant(t *testing.T, client *ent.Client, id string) *ent.Tenant {
	t.Helper()
	tenant, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(100).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func seedAgent(t *testing.T, client *ent.Client, tenantID, id string) *ent.Agent {
	t.Helper()
	agent, err := client.Agent.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetName("Agent " + id).
		SetProviderAgentID("prov-" + id).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func seedCampaign(t *testing.T, client *ent.Client, tenantID, agentID string, status campaign.Status, first, last string) *ent.Campaign {
	t.Helper()
	camp, err := client.Campaign.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAgentID(agentID).
		SetName("Campaign").
		SetStatus(status).
		SetTimezone("UTC").
		SetFirstCallTime(first).
		SetLastCallTime(last).
		SetFromPhone("+15550000").
		Save(context.Background())
	require.NoError(t, err)
	return camp
}
