package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ReflexYAMLConfig represents the complete reflex.yaml file structure.
type ReflexYAMLConfig struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Rules     *RulesConfig     `yaml:"rules"`
	Webhook   *WebhookConfig   `yaml:"webhook"`
	Provider  *ProviderConfig  `yaml:"provider"`
	Recovery  *RecoveryConfig  `yaml:"recovery"`
	Retention *RetentionConfig `yaml:"retention"`
	Events    *EventsConfig    `yaml:"events"`
}

// Initialize loads, resolves, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load reflex.yaml from configDir (missing file = defaults only)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Merge user YAML over built-in defaults
//  4. Apply environment variable overrides (secrets live only there)
//  5. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	userCfg, err := loadReflexYAML(configDir)
	if err != nil {
		return nil, NewLoadError("reflex.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
		Queue:     DefaultQueueConfig(),
		Rules:     DefaultRulesConfig(),
		Webhook:   &WebhookConfig{},
		Provider:  DefaultProviderConfig(),
		Recovery:  DefaultRecoveryConfig(),
		Retention: DefaultRetentionConfig(),
		Events:    DefaultEventsConfig(),
	}

	if userCfg != nil {
		for _, section := range []struct {
			dst, src any
		}{
			{cfg.Queue, userCfg.Queue},
			{cfg.Rules, userCfg.Rules},
			{cfg.Webhook, userCfg.Webhook},
			{cfg.Provider, userCfg.Provider},
			{cfg.Recovery, userCfg.Recovery},
			{cfg.Retention, userCfg.Retention},
			{cfg.Events, userCfg.Events},
		} {
			if isNilSection(section.src) {
				continue
			}
			if err := mergo.Merge(section.dst, section.src, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge configuration section: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"worker_count", cfg.Queue.WorkerCount,
		"provider_enabled", cfg.Provider.BaseURL != "",
		"webhook_signing", cfg.Webhook.Secret != "")
	return cfg, nil
}

func isNilSection(v any) bool {
	switch s := v.(type) {
	case *QueueConfig:
		return s == nil
	case *RulesConfig:
		return s == nil
	case *WebhookConfig:
		return s == nil
	case *ProviderConfig:
		return s == nil
	case *RecoveryConfig:
		return s == nil
	case *RetentionConfig:
		return s == nil
	case *EventsConfig:
		return s == nil
	}
	return v == nil
}

// loadReflexYAML reads and parses reflex.yaml. A missing file is not an
// error: the service runs on defaults plus environment variables.
func loadReflexYAML(configDir string) (*ReflexYAMLConfig, error) {
	path := filepath.Join(configDir, "reflex.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No reflex.yaml found, using defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg ReflexYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// applyEnvOverrides lets the documented environment variables win over
// YAML. Secrets have no YAML home at all.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		cfg.Webhook.Secret = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("QUEUE_WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.WorkerCount = n
		} else {
			slog.Warn("Invalid QUEUE_WORKER_COUNT, keeping configured value", "value", v)
		}
	}
	if v := os.Getenv("QUEUE_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Queue.PollInterval = d
		} else {
			slog.Warn("Invalid QUEUE_POLL_INTERVAL, keeping configured value", "value", v)
		}
	}
	if v := os.Getenv("QUEUE_RETRY_BACKOFF_CAP"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Queue.RetryBackoffCap = d
		} else {
			slog.Warn("Invalid QUEUE_RETRY_BACKOFF_CAP, keeping configured value", "value", v)
		}
	}
}

// validate rejects configurations that cannot run.
func validate(cfg *Config) error {
	var errs []error
	if cfg.Queue.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("queue.worker_count must be positive, got %d", cfg.Queue.WorkerCount))
	}
	if cfg.Queue.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("queue.batch_size must be positive, got %d", cfg.Queue.BatchSize))
	}
	if cfg.Queue.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("queue.poll_interval must be positive, got %v", cfg.Queue.PollInterval))
	}
	if cfg.Queue.PollIntervalJitter >= cfg.Queue.PollInterval {
		errs = append(errs, fmt.Errorf("queue.poll_interval_jitter %v must be below queue.poll_interval %v",
			cfg.Queue.PollIntervalJitter, cfg.Queue.PollInterval))
	}
	if cfg.Queue.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("queue.max_attempts must be positive, got %d", cfg.Queue.MaxAttempts))
	}
	if cfg.Recovery.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("recovery.batch_size must be positive, got %d", cfg.Recovery.BatchSize))
	}
	if cfg.Events.SubscriberBuffer <= 0 {
		errs = append(errs, fmt.Errorf("events.subscriber_buffer must be positive, got %d", cfg.Events.SubscriberBuffer))
	}
	return errors.Join(errs...)
}
