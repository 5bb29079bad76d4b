package api

import (
	"time"

	"github.com/ringstack/ringstack/pkg/queue"
)

// InitiateCallRequest is the HTTP request body for POST /api/v1/calls/initiate.
type InitiateCallRequest struct {
	AgentID      string                 `json:"agent_id"`
	ContactPhone string                 `json:"contact_phone"`
	ContactName  string                 `json:"contact_name,omitempty"`
	ContactID    string                 `json:"contact_id,omitempty"`
	Variables    map[string]interface{} `json:"variables,omitempty"`
}

// CreateCampaignRequest is the HTTP request body for POST /api/v1/campaigns.
type CreateCampaignRequest struct {
	Name          string     `json:"name"`
	AgentID       string     `json:"agent_id"`
	Timezone      string     `json:"timezone,omitempty"`
	FirstCallTime string     `json:"first_call_time,omitempty"`
	LastCallTime  string     `json:"last_call_time,omitempty"`
	FromPhone     string     `json:"from_phone,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
}

// EnqueueContactsRequest is the HTTP request body for
// POST /api/v1/campaigns/:id/enqueue.
type EnqueueContactsRequest struct {
	Contacts []queue.CampaignContact `json:"contacts"`
}

// CreateContactRequest is the HTTP request body for POST /api/v1/contacts.
type CreateContactRequest struct {
	Phone        string                 `json:"phone"`
	Name         string                 `json:"name,omitempty"`
	Email        string                 `json:"email,omitempty"`
	Company      string                 `json:"company,omitempty"`
	LeadSource   string                 `json:"lead_source,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
}

// ProcessImmediateRequest optionally narrows an immediate pass to one tenant.
type ProcessImmediateRequest struct {
	TenantID string `json:"tenant_id,omitempty"`
}
