package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Values from the file win over built-in defaults
	assert.Equal(t, 80, cfg.System.MaxConcurrentCalls)
	assert.Equal(t, 8, cfg.System.DefaultTenantConcurrentCalls)
	assert.Equal(t, 5*time.Minute, cfg.Queue.ScheduleCacheTTL)
	assert.Equal(t, "https://voice.example.com", cfg.Voice.BaseURL)
	assert.Equal(t, "https://llm.example.com", cfg.Extraction.BaseURL)
	assert.Equal(t, "https://mail.example.com", cfg.Mailer.BaseURL)
	assert.Equal(t, "calls@example.com", cfg.Mailer.FromAddress)

	// Untouched sections keep their defaults
	assert.Equal(t, 100, cfg.Queue.DirectPriority)
	assert.Equal(t, 100, cfg.Queue.NamedContactBoost)
	assert.Equal(t, 45*time.Minute, cfg.Queue.ReapAfter)
	assert.Equal(t, []int{15, 5}, cfg.Billing.LowCreditThresholds)
	assert.Equal(t, "WEBHOOK_SIGNING_SECRET", cfg.Webhook.SigningSecretEnv)
	assert.Equal(t, "VOICE_API_KEY", cfg.Voice.APIKeyEnv)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `{{{`
	err := os.WriteFile(filepath.Join(configDir, "ringstack.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Tenant default above the global cap is rejected
	invalidConfig := `
system:
  max_concurrent_calls: 10
  default_tenant_concurrent_calls: 50

voice:
  base_url: "https://voice.example.com"

extraction:
  base_url: "https://llm.example.com"

mailer:
  base_url: "https://mail.example.com"
  from_address: "calls@example.com"
`
	err := os.WriteFile(filepath.Join(configDir, "ringstack.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "default_tenant_concurrent_calls")
}

func TestLoadRingstackYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  max_concurrent_calls: 25

queue:
  named_contact_boost: 50
  schedule_cache_ttl: "2m"
  avg_call_minutes: 4

voice:
  base_url: "https://voice.example.com"
  api_key_env: "CUSTOM_VOICE_KEY"
  timeout: "45s"
`
	err := os.WriteFile(filepath.Join(configDir, "ringstack.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	yamlCfg, err := loader.loadRingstackYAML()

	require.NoError(t, err)
	require.NotNil(t, yamlCfg.System)
	assert.Equal(t, 25, *yamlCfg.System.MaxConcurrentCalls)
	require.NotNil(t, yamlCfg.Queue)
	assert.Equal(t, 50, *yamlCfg.Queue.NamedContactBoost)
	assert.Equal(t, "2m", yamlCfg.Queue.ScheduleCacheTTL)
	require.NotNil(t, yamlCfg.Voice)
	assert.Equal(t, "CUSTOM_VOICE_KEY", yamlCfg.Voice.APIKeyEnv)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
voice:
  base_url: "{{.TEST_VOICE_URL}}"

extraction:
  base_url: "https://llm.example.com"

mailer:
  base_url: "https://mail.example.com"
  from_address: "calls@example.com"
`
	err := os.WriteFile(filepath.Join(configDir, "ringstack.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_VOICE_URL", "https://voice.internal:8443")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "https://voice.internal:8443", cfg.Voice.BaseURL)
}

func TestResolveQueueConfigZeroSurvives(t *testing.T) {
	// An explicit zero in the file must not be clobbered by the default.
	zero := 0
	cfg, err := resolveQueueConfig(&QueueYAMLConfig{CampaignPriority: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.CampaignPriority)
	assert.Equal(t, 100, cfg.DirectPriority)
}

func TestResolveQueueConfigBadDuration(t *testing.T) {
	// Malformed durations fall back to the default instead of failing load.
	cfg, err := resolveQueueConfig(&QueueYAMLConfig{ReapAfter: "not-a-duration"})
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.ReapAfter)
}

func TestResolveMailerConfigDefaults(t *testing.T) {
	cfg, err := resolveMailerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "EMAIL_API_KEY", cfg.APIKeyEnv)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "RingStack", cfg.FromName)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	ringstackYAML := `
system:
  max_concurrent_calls: 80
  default_tenant_concurrent_calls: 8

queue:
  schedule_cache_ttl: "5m"

voice:
  base_url: "https://voice.example.com"

extraction:
  base_url: "https://llm.example.com"

mailer:
  base_url: "https://mail.example.com"
  from_address: "calls@example.com"
`
	err := os.WriteFile(filepath.Join(dir, "ringstack.yaml"), []byte(ringstackYAML), 0644)
	require.NoError(t, err)

	return dir
}
