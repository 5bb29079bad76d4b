package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// RingstackYAMLConfig represents the complete ringstack.yaml file structure
type RingstackYAMLConfig struct {
	System     *SystemYAMLConfig     `yaml:"system"`
	Queue      *QueueYAMLConfig      `yaml:"queue"`
	Voice      *VoiceYAMLConfig      `yaml:"voice"`
	Extraction *ExtractionYAMLConfig `yaml:"extraction"`
	Mailer     *MailerYAMLConfig     `yaml:"mailer"`
	Billing    *BillingYAMLConfig    `yaml:"billing"`
	Webhook    *WebhookYAMLConfig    `yaml:"webhook"`
}

// SystemYAMLConfig holds platform-wide limits from YAML.
type SystemYAMLConfig struct {
	MaxConcurrentCalls           *int `yaml:"max_concurrent_calls,omitempty"`
	DefaultTenantConcurrentCalls *int `yaml:"default_tenant_concurrent_calls,omitempty"`
}

// QueueYAMLConfig holds queue/processor tunables from YAML.
// Durations are strings ("10m", "45s") parsed with time.ParseDuration;
// integers are pointers so an explicit zero survives resolution.
type QueueYAMLConfig struct {
	DirectPriority          *int   `yaml:"direct_priority,omitempty"`
	CampaignPriority        *int   `yaml:"campaign_priority,omitempty"`
	NamedContactBoost       *int   `yaml:"named_contact_boost,omitempty"`
	ScheduleCacheTTL        string `yaml:"schedule_cache_ttl,omitempty"`
	ProcessIntervalHint     string `yaml:"process_interval_hint,omitempty"`
	AvgCallMinutes          *int   `yaml:"avg_call_minutes,omitempty"`
	ReapAfter               string `yaml:"reap_after,omitempty"`
	ReapInterval            string `yaml:"reap_interval,omitempty"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout,omitempty"`
}

// VoiceYAMLConfig holds voice-provider settings from YAML.
type VoiceYAMLConfig struct {
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
}

// ExtractionYAMLConfig holds LLM extraction settings from YAML.
type ExtractionYAMLConfig struct {
	BaseURL            string `yaml:"base_url,omitempty"`
	APIKeyEnv          string `yaml:"api_key_env,omitempty"`
	Timeout            string `yaml:"timeout,omitempty"`
	MaxRetries         *int   `yaml:"max_retries,omitempty"`
	InitialBackoff     string `yaml:"initial_backoff,omitempty"`
	IndividualPromptID string `yaml:"individual_prompt_id,omitempty"`
	CompletePromptID   string `yaml:"complete_prompt_id,omitempty"`
}

// MailerYAMLConfig holds email-provider settings from YAML.
type MailerYAMLConfig struct {
	BaseURL     string `yaml:"base_url,omitempty"`
	APIKeyEnv   string `yaml:"api_key_env,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`
	FromAddress string `yaml:"from_address,omitempty"`
	FromName    string `yaml:"from_name,omitempty"`
}

// BillingYAMLConfig holds credit accounting settings from YAML.
type BillingYAMLConfig struct {
	LowCreditThresholds []int `yaml:"low_credit_thresholds,omitempty"`
}

// WebhookYAMLConfig holds provider webhook settings from YAML.
type WebhookYAMLConfig struct {
	SigningSecretEnv string `yaml:"signing_secret_env,omitempty"`
	CallbackBaseURL  string `yaml:"callback_base_url,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load ringstack.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"system_cap", cfg.System.MaxConcurrentCalls,
		"tenant_default_cap", cfg.System.DefaultTenantConcurrentCalls,
		"schedule_cache_ttl", cfg.Queue.ScheduleCacheTTL)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadRingstackYAML()
	if err != nil {
		return nil, NewLoadError("ringstack.yaml", err)
	}

	queueCfg, err := resolveQueueConfig(yamlCfg.Queue)
	if err != nil {
		return nil, err
	}

	voiceCfg, err := resolveVoiceConfig(yamlCfg.Voice)
	if err != nil {
		return nil, err
	}

	extractionCfg, err := resolveExtractionConfig(yamlCfg.Extraction)
	if err != nil {
		return nil, err
	}

	mailerCfg, err := resolveMailerConfig(yamlCfg.Mailer)
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir:  configDir,
		System:     resolveSystemConfig(yamlCfg.System),
		Queue:      queueCfg,
		Voice:      voiceCfg,
		Extraction: extractionCfg,
		Mailer:     mailerCfg,
		Billing:    resolveBillingConfig(yamlCfg.Billing),
		Webhook:    resolveWebhookConfig(yamlCfg.Webhook),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadRingstackYAML() (*RingstackYAMLConfig, error) {
	var config RingstackYAMLConfig
	if err := l.loadYAML("ringstack.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// resolveSystemConfig resolves system limits from YAML, applying defaults.
func resolveSystemConfig(y *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		MaxConcurrentCalls:           50,
		DefaultTenantConcurrentCalls: 10,
	}

	if y == nil {
		return cfg
	}
	if y.MaxConcurrentCalls != nil {
		cfg.MaxConcurrentCalls = *y.MaxConcurrentCalls
	}
	if y.DefaultTenantConcurrentCalls != nil {
		cfg.DefaultTenantConcurrentCalls = *y.DefaultTenantConcurrentCalls
	}
	return cfg
}

// resolveQueueConfig resolves queue tunables from YAML, applying defaults.
func resolveQueueConfig(y *QueueYAMLConfig) (*QueueConfig, error) {
	cfg := DefaultQueueConfig()
	if y == nil {
		return cfg, nil
	}

	if y.DirectPriority != nil {
		cfg.DirectPriority = *y.DirectPriority
	}
	if y.CampaignPriority != nil {
		cfg.CampaignPriority = *y.CampaignPriority
	}
	if y.NamedContactBoost != nil {
		cfg.NamedContactBoost = *y.NamedContactBoost
	}
	if y.AvgCallMinutes != nil {
		cfg.AvgCallMinutes = *y.AvgCallMinutes
	}
	cfg.ScheduleCacheTTL = parseDurationOrDefault("queue.schedule_cache_ttl", y.ScheduleCacheTTL, cfg.ScheduleCacheTTL)
	cfg.ProcessIntervalHint = parseDurationOrDefault("queue.process_interval_hint", y.ProcessIntervalHint, cfg.ProcessIntervalHint)
	cfg.ReapAfter = parseDurationOrDefault("queue.reap_after", y.ReapAfter, cfg.ReapAfter)
	cfg.ReapInterval = parseDurationOrDefault("queue.reap_interval", y.ReapInterval, cfg.ReapInterval)
	cfg.GracefulShutdownTimeout = parseDurationOrDefault("queue.graceful_shutdown_timeout", y.GracefulShutdownTimeout, cfg.GracefulShutdownTimeout)

	return cfg, nil
}

// resolveVoiceConfig resolves voice-provider settings from YAML, applying defaults.
func resolveVoiceConfig(y *VoiceYAMLConfig) (*VoiceConfig, error) {
	cfg := &VoiceConfig{
		APIKeyEnv: "VOICE_API_KEY",
		Timeout:   30 * time.Second,
	}
	if y == nil {
		return cfg, nil
	}

	user := &VoiceConfig{
		BaseURL:   y.BaseURL,
		APIKeyEnv: y.APIKeyEnv,
		Timeout:   parseDurationOrDefault("voice.timeout", y.Timeout, 0),
	}
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge voice config: %w", err)
	}
	return cfg, nil
}

// resolveExtractionConfig resolves extraction settings from YAML, applying defaults.
func resolveExtractionConfig(y *ExtractionYAMLConfig) (*ExtractionConfig, error) {
	cfg := &ExtractionConfig{
		APIKeyEnv:          "EXTRACTION_API_KEY",
		Timeout:            30 * time.Second,
		MaxRetries:         3,
		InitialBackoff:     1 * time.Second,
		IndividualPromptID: "individual",
		CompletePromptID:   "complete",
	}
	if y == nil {
		return cfg, nil
	}

	user := &ExtractionConfig{
		BaseURL:            y.BaseURL,
		APIKeyEnv:          y.APIKeyEnv,
		Timeout:            parseDurationOrDefault("extraction.timeout", y.Timeout, 0),
		InitialBackoff:     parseDurationOrDefault("extraction.initial_backoff", y.InitialBackoff, 0),
		IndividualPromptID: y.IndividualPromptID,
		CompletePromptID:   y.CompletePromptID,
	}
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge extraction config: %w", err)
	}
	if y.MaxRetries != nil {
		cfg.MaxRetries = *y.MaxRetries
	}
	return cfg, nil
}

// resolveMailerConfig resolves email-provider settings from YAML, applying defaults.
func resolveMailerConfig(y *MailerYAMLConfig) (*MailerConfig, error) {
	cfg := &MailerConfig{
		APIKeyEnv: "EMAIL_API_KEY",
		Timeout:   10 * time.Second,
		FromName:  "RingStack",
	}
	if y == nil {
		return cfg, nil
	}

	user := &MailerConfig{
		BaseURL:     y.BaseURL,
		APIKeyEnv:   y.APIKeyEnv,
		Timeout:     parseDurationOrDefault("mailer.timeout", y.Timeout, 0),
		FromAddress: y.FromAddress,
		FromName:    y.FromName,
	}
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge mailer config: %w", err)
	}
	return cfg, nil
}

// resolveBillingConfig resolves billing settings from YAML, applying defaults.
func resolveBillingConfig(y *BillingYAMLConfig) *BillingConfig {
	cfg := &BillingConfig{
		LowCreditThresholds: []int{15, 5},
	}
	if y != nil && y.LowCreditThresholds != nil {
		cfg.LowCreditThresholds = y.LowCreditThresholds
	}
	return cfg
}

// resolveWebhookConfig resolves webhook settings from YAML, applying defaults.
func resolveWebhookConfig(y *WebhookYAMLConfig) *WebhookConfig {
	cfg := &WebhookConfig{
		SigningSecretEnv: "WEBHOOK_SIGNING_SECRET",
	}
	if y == nil {
		return cfg
	}
	if y.SigningSecretEnv != "" {
		cfg.SigningSecretEnv = y.SigningSecretEnv
	}
	if y.CallbackBaseURL != "" {
		cfg.CallbackBaseURL = y.CallbackBaseURL
	}
	return cfg
}

// parseDurationOrDefault parses a duration string from YAML, falling back
// to def (and logging) when the value is empty or malformed.
func parseDurationOrDefault(field, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", value,
			"default", def,
			"error", err)
		return def
	}
	return d
}
