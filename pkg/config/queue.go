package config

import "time"

// QueueConfig contains call-queue and processor configuration.
// These values control how items are ordered, cached, and dispatched.
type QueueConfig struct {
	// DirectPriority is assigned to user-initiated calls that overflow into
	// the queue. Direct items always dispatch before campaign items.
	DirectPriority int

	// CampaignPriority is the base priority for campaign-originated items.
	CampaignPriority int

	// NamedContactBoost is added to campaign items that carry a contact
	// name, ordering them ahead of anonymous dials.
	NamedContactBoost int

	// ScheduleCacheTTL bounds how stale the in-memory campaign schedule
	// snapshot may get before a processor pass refreshes it.
	ScheduleCacheTTL time.Duration

	// ProcessIntervalHint is the expected cadence of the external cron that
	// hits /queue/process. Informational (schedule endpoint, wake math).
	ProcessIntervalHint time.Duration

	// AvgCallMinutes feeds the queued-wait estimate returned to callers.
	AvgCallMinutes int

	// ReapAfter is how old an active slot must be before the reaper treats
	// it as leaked by a crashed process.
	ReapAfter time.Duration

	// ReapInterval is how often the reaper scans for stale slots.
	ReapInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for the HTTP server
	// and background services to drain during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		DirectPriority:          100,
		CampaignPriority:        0,
		NamedContactBoost:       100,
		ScheduleCacheTTL:        10 * time.Minute,
		ProcessIntervalHint:     15 * time.Minute,
		AvgCallMinutes:          3,
		ReapAfter:               45 * time.Minute,
		ReapInterval:            5 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
