package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a configuration that passes every validator; tests
// mutate one section at a time from this baseline.
func validConfig() *Config {
	return &Config{
		System: &SystemConfig{
			MaxConcurrentCalls:           50,
			DefaultTenantConcurrentCalls: 10,
		},
		Queue: DefaultQueueConfig(),
		Voice: &VoiceConfig{
			BaseURL:   "https://voice.example.com",
			APIKeyEnv: "VOICE_API_KEY",
			Timeout:   30 * time.Second,
		},
		Extraction: &ExtractionConfig{
			BaseURL:            "https://llm.example.com",
			APIKeyEnv:          "EXTRACTION_API_KEY",
			Timeout:            30 * time.Second,
			MaxRetries:         3,
			InitialBackoff:     time.Second,
			IndividualPromptID: "individual",
			CompletePromptID:   "complete",
		},
		Mailer: &MailerConfig{
			BaseURL:     "https://mail.example.com",
			APIKeyEnv:   "EMAIL_API_KEY",
			Timeout:     10 * time.Second,
			FromAddress: "calls@example.com",
		},
		Billing: &BillingConfig{
			LowCreditThresholds: []int{15, 5},
		},
		Webhook: &WebhookConfig{
			SigningSecretEnv: "WEBHOOK_SIGNING_SECRET",
		},
	}
}

func TestValidateSystem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid system config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero global cap",
			mutate:  func(c *Config) { c.System.MaxConcurrentCalls = 0 },
			wantErr: true,
			errMsg:  "max_concurrent_calls",
		},
		{
			name:    "zero tenant default",
			mutate:  func(c *Config) { c.System.DefaultTenantConcurrentCalls = 0 },
			wantErr: true,
			errMsg:  "default_tenant_concurrent_calls",
		},
		{
			name: "tenant default above global cap",
			mutate: func(c *Config) {
				c.System.MaxConcurrentCalls = 5
				c.System.DefaultTenantConcurrentCalls = 10
			},
			wantErr: true,
			errMsg:  "cannot exceed max_concurrent_calls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).validateSystem()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid queue config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "negative named contact boost",
			mutate:  func(c *Config) { c.Queue.NamedContactBoost = -1 },
			wantErr: true,
			errMsg:  "named_contact_boost",
		},
		{
			name: "campaign priority above direct priority",
			mutate: func(c *Config) {
				c.Queue.CampaignPriority = 200
				c.Queue.DirectPriority = 100
			},
			wantErr: true,
			errMsg:  "must not exceed direct_priority",
		},
		{
			name:    "schedule cache TTL too small",
			mutate:  func(c *Config) { c.Queue.ScheduleCacheTTL = 100 * time.Millisecond },
			wantErr: true,
			errMsg:  "schedule_cache_ttl",
		},
		{
			name:    "zero average call minutes",
			mutate:  func(c *Config) { c.Queue.AvgCallMinutes = 0 },
			wantErr: true,
			errMsg:  "avg_call_minutes",
		},
		{
			name:    "reap threshold below a minute",
			mutate:  func(c *Config) { c.Queue.ReapAfter = 30 * time.Second },
			wantErr: true,
			errMsg:  "reap_after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).validateQueue()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateClients(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "voice base URL required",
			mutate: func(c *Config) { c.Voice.BaseURL = "" },
			errMsg: "base_url",
		},
		{
			name:   "voice API key env required",
			mutate: func(c *Config) { c.Voice.APIKeyEnv = "" },
			errMsg: "api_key_env",
		},
		{
			name:   "extraction base URL required",
			mutate: func(c *Config) { c.Extraction.BaseURL = "" },
			errMsg: "base_url",
		},
		{
			name:   "extraction backoff must be positive",
			mutate: func(c *Config) { c.Extraction.InitialBackoff = 0 },
			errMsg: "initial_backoff",
		},
		{
			name:   "extraction prompt IDs required",
			mutate: func(c *Config) { c.Extraction.CompletePromptID = "" },
			errMsg: "prompt_id",
		},
		{
			name:   "mailer from address required",
			mutate: func(c *Config) { c.Mailer.FromAddress = "" },
			errMsg: "from_address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateBilling(t *testing.T) {
	tests := []struct {
		name       string
		thresholds []int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "descending thresholds",
			thresholds: []int{15, 5},
			wantErr:    false,
		},
		{
			name:       "single threshold",
			thresholds: []int{10},
			wantErr:    false,
		},
		{
			name:       "empty thresholds disable low-credit warnings",
			thresholds: []int{},
			wantErr:    false,
		},
		{
			name:       "non-positive threshold",
			thresholds: []int{15, 0},
			wantErr:    true,
			errMsg:     "must be positive",
		},
		{
			name:       "ascending thresholds",
			thresholds: []int{5, 15},
			wantErr:    true,
			errMsg:     "strictly descending",
		},
		{
			name:       "duplicate thresholds",
			thresholds: []int{10, 10},
			wantErr:    true,
			errMsg:     "strictly descending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Billing.LowCreditThresholds = tt.thresholds

			err := NewValidator(cfg).validateBilling()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAllStopsAtFirstError(t *testing.T) {
	cfg := validConfig()
	cfg.System.MaxConcurrentCalls = 0
	cfg.Voice.BaseURL = ""

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "system validation failed")
	assert.NotContains(t, err.Error(), "voice")
}
