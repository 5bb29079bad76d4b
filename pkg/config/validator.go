package config

import (
	"fmt"
	"time"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateVoice(); err != nil {
		return fmt.Errorf("voice validation failed: %w", err)
	}

	if err := v.validateExtraction(); err != nil {
		return fmt.Errorf("extraction validation failed: %w", err)
	}

	if err := v.validateMailer(); err != nil {
		return fmt.Errorf("mailer validation failed: %w", err)
	}

	if err := v.validateBilling(); err != nil {
		return fmt.Errorf("billing validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	sys := v.cfg.System
	if sys.MaxConcurrentCalls < 1 {
		return NewValidationError("system", "max_concurrent_calls", fmt.Errorf("must be at least 1"))
	}
	if sys.DefaultTenantConcurrentCalls < 1 {
		return NewValidationError("system", "default_tenant_concurrent_calls", fmt.Errorf("must be at least 1"))
	}
	if sys.DefaultTenantConcurrentCalls > sys.MaxConcurrentCalls {
		return NewValidationError("system", "default_tenant_concurrent_calls",
			fmt.Errorf("cannot exceed max_concurrent_calls (%d)", sys.MaxConcurrentCalls))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.NamedContactBoost < 0 {
		return NewValidationError("queue", "named_contact_boost", fmt.Errorf("must not be negative"))
	}
	if q.CampaignPriority > q.DirectPriority {
		return NewValidationError("queue", "campaign_priority",
			fmt.Errorf("must not exceed direct_priority (%d)", q.DirectPriority))
	}
	if q.ScheduleCacheTTL < time.Second {
		return NewValidationError("queue", "schedule_cache_ttl", fmt.Errorf("must be at least 1s"))
	}
	if q.AvgCallMinutes < 1 {
		return NewValidationError("queue", "avg_call_minutes", fmt.Errorf("must be at least 1"))
	}
	if q.ReapAfter < time.Minute {
		return NewValidationError("queue", "reap_after", fmt.Errorf("must be at least 1m"))
	}
	if q.ReapInterval < time.Second {
		return NewValidationError("queue", "reap_interval", fmt.Errorf("must be at least 1s"))
	}
	return nil
}

func (v *ConfigValidator) validateVoice() error {
	vc := v.cfg.Voice
	if vc.BaseURL == "" {
		return NewValidationError("voice", "base_url", ErrMissingRequiredField)
	}
	if vc.APIKeyEnv == "" {
		return NewValidationError("voice", "api_key_env", ErrMissingRequiredField)
	}
	if vc.Timeout <= 0 {
		return NewValidationError("voice", "timeout", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateExtraction() error {
	ec := v.cfg.Extraction
	if ec.BaseURL == "" {
		return NewValidationError("extraction", "base_url", ErrMissingRequiredField)
	}
	if ec.Timeout <= 0 {
		return NewValidationError("extraction", "timeout", fmt.Errorf("must be positive"))
	}
	if ec.MaxRetries < 0 {
		return NewValidationError("extraction", "max_retries", fmt.Errorf("must not be negative"))
	}
	if ec.InitialBackoff <= 0 {
		return NewValidationError("extraction", "initial_backoff", fmt.Errorf("must be positive"))
	}
	if ec.IndividualPromptID == "" || ec.CompletePromptID == "" {
		return NewValidationError("extraction", "prompt_id", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateMailer() error {
	mc := v.cfg.Mailer
	if mc.BaseURL == "" {
		return NewValidationError("mailer", "base_url", ErrMissingRequiredField)
	}
	if mc.FromAddress == "" {
		return NewValidationError("mailer", "from_address", ErrMissingRequiredField)
	}
	if mc.Timeout <= 0 {
		return NewValidationError("mailer", "timeout", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateBilling() error {
	prev := 0
	for i, t := range v.cfg.Billing.LowCreditThresholds {
		if t < 1 {
			return NewValidationError("billing", "low_credit_thresholds", fmt.Errorf("thresholds must be positive"))
		}
		if i > 0 && t >= prev {
			return NewValidationError("billing", "low_credit_thresholds", fmt.Errorf("thresholds must be strictly descending"))
		}
		prev = t
	}
	return nil
}
