package config

import "time"

// RulesConfig controls the rule engine.
type RulesConfig struct {
	// CacheTTL bounds how stale the process-local rule cache can get
	// when a NOTIFY bust is missed.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// DefaultRulesConfig returns the built-in rule engine defaults.
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{CacheTTL: 5 * time.Minute}
}

// WebhookConfig controls inbound webhook verification.
type WebhookConfig struct {
	// Secret is the shared HMAC secret. Empty disables signature
	// verification (local development only).
	Secret string `yaml:"secret"`
}

// ProviderConfig holds the outbound messaging provider connection.
// Instances with their own api_key/api_base_url override these.
type ProviderConfig struct {
	// BaseURL is the provider API root. Empty disables outbound sends.
	BaseURL string `yaml:"base_url"`

	// APIKey is the global provider key.
	APIKey string `yaml:"api_key"`

	// RequestTimeout bounds each outbound call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{RequestTimeout: 10 * time.Second}
}

// RecoveryConfig controls the failed-event retry sweeper.
type RecoveryConfig struct {
	// SweepInterval is how often the sweeper looks for due retries.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// BatchSize is the maximum retries attempted per sweep.
	BatchSize int `yaml:"batch_size"`

	// MaxRetries is the default retry budget per failed event.
	MaxRetries int `yaml:"max_retries"`

	// BackoffCap bounds the exponential retry delay.
	BackoffCap time.Duration `yaml:"backoff_cap"`
}

// DefaultRecoveryConfig returns the built-in recovery defaults.
func DefaultRecoveryConfig() *RecoveryConfig {
	return &RecoveryConfig{
		SweepInterval: 1 * time.Minute,
		BatchSize:     50,
		MaxRetries:    5,
		BackoffCap:    10 * time.Minute,
	}
}

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTL is the maximum age of fan-out event rows. They exist
	// only to bridge SSE reconnect gaps.
	EventTTL time.Duration `yaml:"event_ttl"`

	// ProcessedChangeTTL is how long processed change-capture rows
	// are kept.
	ProcessedChangeTTL time.Duration `yaml:"processed_change_ttl"`

	// CompletedItemTTL is how long completed and dead-lettered queue
	// items are kept.
	CompletedItemTTL time.Duration `yaml:"completed_item_ttl"`

	// ResolvedEventTTL is how long resolved failed events are kept.
	ResolvedEventTTL time.Duration `yaml:"resolved_event_ttl"`

	// ExecutionLogTTL is how long rule execution logs are kept.
	ExecutionLogTTL time.Duration `yaml:"execution_log_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:           1 * time.Hour,
		ProcessedChangeTTL: 7 * 24 * time.Hour,
		CompletedItemTTL:   7 * 24 * time.Hour,
		ResolvedEventTTL:   7 * 24 * time.Hour,
		ExecutionLogTTL:    90 * 24 * time.Hour,
		CleanupInterval:    12 * time.Hour,
	}
}

// EventsConfig controls the fan-out pipeline (NOTIFY listener + SSE).
type EventsConfig struct {
	// ReconnectBackoffCap bounds the listener's reconnect delay.
	ReconnectBackoffCap time.Duration `yaml:"reconnect_backoff_cap"`

	// SubscriberBuffer is the per-SSE-subscriber channel depth; a full
	// buffer drops the subscriber rather than blocking the hub.
	SubscriberBuffer int `yaml:"subscriber_buffer"`
}

// DefaultEventsConfig returns the built-in fan-out defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		ReconnectBackoffCap: 30 * time.Second,
		SubscriberBuffer:    64,
	}
}
