package api

import (
	"time"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/queue"
)

// WebhookAck is returned once a webhook event is fully persisted.
type WebhookAck struct {
	Status string `json:"status"`
}

// InitiateCallResponse is the immediate-dispatch shape of POST /calls/initiate.
type InitiateCallResponse struct {
	CallID string `json:"call_id"`
	Status string `json:"status"`
}

// QueuedCallResponse is the capacity-fallback shape of POST /calls/initiate.
// Hitting capacity is a 202, never an error.
type QueuedCallResponse struct {
	Queued               bool   `json:"queued"`
	QueueItemID          string `json:"queue_item_id"`
	QueuePosition        int    `json:"queue_position"`
	EstimatedWaitMinutes int    `json:"estimated_wait_minutes"`
	Reason               string `json:"reason,omitempty"`
}

// StopCallResponse acknowledges a stop request.
type StopCallResponse struct {
	CallID  string `json:"call_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateContactResponse wraps the created contact.
type CreateContactResponse struct {
	Contact *ent.Contact `json:"contact"`
}

// EnqueueContactsResponse reports how many contacts were accepted.
type EnqueueContactsResponse struct {
	CampaignID string `json:"campaign_id"`
	Enqueued   int    `json:"enqueued"`
}

// ScheduleResponse is the schedule cache snapshot plus the next instant any
// queued work could become dispatchable.
type ScheduleResponse struct {
	NextWake *time.Time      `json:"next_wake,omitempty"`
	Snapshot *queue.Snapshot `json:"snapshot"`
}

// NotificationHistoryResponse is a page of notification records, newest
// first.
type NotificationHistoryResponse struct {
	Notifications []*ent.Notification `json:"notifications"`
	Count         int                 `json:"count"`
	Offset        int                 `json:"offset"`
}

// HealthResponse reports service and database health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
}
