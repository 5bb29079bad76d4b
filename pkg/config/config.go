package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. Treated as read-only after load.
type Config struct {
	configDir string // Configuration directory path (for reference)

	System     *SystemConfig
	Queue      *QueueConfig
	Voice      *VoiceConfig
	Extraction *ExtractionConfig
	Mailer     *MailerConfig
	Billing    *BillingConfig
	Webhook    *WebhookConfig
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// SystemConfig groups platform-wide limits.
type SystemConfig struct {
	// MaxConcurrentCalls is the global cap on simultaneous calls across all
	// tenants and replicas, enforced by active-slot counting.
	MaxConcurrentCalls int

	// DefaultTenantConcurrentCalls applies to tenants without a per-tenant
	// concurrent_calls_limit override.
	DefaultTenantConcurrentCalls int
}

// VoiceConfig holds voice-provider client settings.
type VoiceConfig struct {
	BaseURL   string
	APIKeyEnv string
	Timeout   time.Duration
}

// ExtractionConfig holds LLM extraction client settings.
type ExtractionConfig struct {
	BaseURL            string
	APIKeyEnv          string
	Timeout            time.Duration
	MaxRetries         int
	InitialBackoff     time.Duration
	IndividualPromptID string
	CompletePromptID   string
}

// MailerConfig holds email-provider client settings.
type MailerConfig struct {
	BaseURL     string
	APIKeyEnv   string
	Timeout     time.Duration
	FromAddress string
	FromName    string
}

// BillingConfig holds credit accounting settings.
type BillingConfig struct {
	// LowCreditThresholds are evaluated high-to-low after every usage charge.
	// Exhaustion (<= 0) is always evaluated and not listed here.
	LowCreditThresholds []int
}

// WebhookConfig holds provider webhook settings.
type WebhookConfig struct {
	// SigningSecretEnv names the env var carrying the HMAC secret shared
	// with the voice provider.
	SigningSecretEnv string

	// CallbackBaseURL is the public base URL handed to the provider as the
	// webhook target (e.g. https://api.example.com).
	CallbackBaseURL string
}
