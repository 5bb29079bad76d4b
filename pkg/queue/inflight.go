package queue

import (
	"sync"
	"time"
)

// Attribution names who a dispatch belongs to. Recorded before the provider
// call is placed, so webhooks that arrive before the provider response is
// processed can still be attributed to a tenant and agent.
type Attribution struct {
	CallID     string
	TenantID   string
	AgentID    string
	CampaignID string
	RecordedAt time.Time
}

// InflightIndex is a process-local map of dialed phone number to dispatch
// attribution. The provider's execution id is unknown until its response
// lands, so the phone number from the webhook payload is the only join key
// available during that window. Entries are removed once the execution id is
// persisted and swept by age as a backstop.
type InflightIndex struct {
	mu      sync.RWMutex
	byPhone map[string]Attribution
}

// NewInflightIndex creates an empty index.
func NewInflightIndex() *InflightIndex {
	return &InflightIndex{byPhone: make(map[string]Attribution)}
}

// Record stores the attribution for a dialed phone, stamping RecordedAt.
// A concurrent dispatch to the same phone overwrites; the execution-id
// unique constraint reconciles any resulting misattribution at persist time.
func (i *InflightIndex) Record(phone string, a Attribution) {
	if phone == "" {
		return
	}
	a.RecordedAt = time.Now()
	i.mu.Lock()
	i.byPhone[phone] = a
	i.mu.Unlock()
}

// Lookup returns the attribution for a phone, if known.
func (i *InflightIndex) Lookup(phone string) (Attribution, bool) {
	i.mu.RLock()
	a, ok := i.byPhone[phone]
	i.mu.RUnlock()
	return a, ok
}

// Forget removes the entry for a phone if it still belongs to callID.
func (i *InflightIndex) Forget(phone, callID string) {
	i.mu.Lock()
	if a, ok := i.byPhone[phone]; ok && a.CallID == callID {
		delete(i.byPhone, phone)
	}
	i.mu.Unlock()
}

// Sweep drops entries older than maxAge and returns how many were removed.
func (i *InflightIndex) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	i.mu.Lock()
	defer i.mu.Unlock()

	removed := 0
	for phone, a := range i.byPhone {
		if a.RecordedAt.Before(cutoff) {
			delete(i.byPhone, phone)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries.
func (i *InflightIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byPhone)
}
