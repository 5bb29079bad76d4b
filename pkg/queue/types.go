// Package queue implements the call queue: priority-ordered intake of call
// requests, the campaign schedule cache, the cross-replica queue processor,
// and dispatch to the voice provider.
package queue

import (
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEligibleItems indicates nothing in the queue can dispatch right
	// now (empty, out of window, or scheduled in the future).
	ErrNoEligibleItems = errors.New("no eligible queue items")

	// ErrAtCapacity indicates the system-wide concurrency cap is filled.
	ErrAtCapacity = errors.New("at capacity")
)

// Stats summarizes a tenant's queue by kind and live status.
type Stats struct {
	DirectQueued       int `json:"direct_queued"`
	DirectProcessing   int `json:"direct_processing"`
	CampaignQueued     int `json:"campaign_queued"`
	CampaignProcessing int `json:"campaign_processing"`
}

// TotalQueued is the number of items still waiting to dispatch.
func (s Stats) TotalQueued() int {
	return s.DirectQueued + s.CampaignQueued
}

// PassResult summarizes one processor pass for logs and the process
// endpoints.
type PassResult struct {
	Skipped     bool      `json:"skipped"`
	SkipReason  string    `json:"skip_reason,omitempty"`
	TenantsSeen int       `json:"tenants_seen"`
	Dispatched  int       `json:"dispatched"`
	Failed      int       `json:"failed"`
	StartedAt   time.Time `json:"started_at"`
	Duration    string    `json:"duration"`
}

// Skip reasons reported by PassResult.
const (
	SkipReasonSchedule = "no scheduled work"
	SkipReasonBusy     = "another replica holds the processor lock"
	SkipReasonCapacity = "system at capacity"
)
