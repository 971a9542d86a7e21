// Package config loads and resolves the service configuration from
// reflex.yaml plus environment variables. Secrets never live in YAML;
// the file references them with {{.VAR}} template expansion.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application from main.
type Config struct {
	configDir string

	Queue     *QueueConfig
	Rules     *RulesConfig
	Webhook   *WebhookConfig
	Provider  *ProviderConfig
	Recovery  *RecoveryConfig
	Retention *RetentionConfig
	Events    *EventsConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
