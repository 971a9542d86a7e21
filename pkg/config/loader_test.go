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

func writeReflexYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reflex.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 10, cfg.Queue.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 24*time.Hour, cfg.Queue.DedupeWindow)
	assert.Equal(t, 5*time.Minute, cfg.Rules.CacheTTL)
	assert.Equal(t, 5, cfg.Recovery.MaxRetries)
	assert.Equal(t, time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 64, cfg.Events.SubscriberBuffer)
	assert.Empty(t, cfg.Webhook.Secret)
	assert.Empty(t, cfg.Provider.BaseURL)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	dir := writeReflexYAML(t, `
queue:
  worker_count: 7
  poll_interval: 2s
rules:
  cache_ttl: 30s
retention:
  event_ttl: 15m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Rules.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Retention.EventTTL)

	// Untouched sections keep their defaults.
	assert.Equal(t, 10, cfg.Queue.BatchSize)
	assert.Equal(t, 50, cfg.Recovery.BatchSize)
}

func TestInitialize_EnvOverridesYAML(t *testing.T) {
	dir := writeReflexYAML(t, `
queue:
  worker_count: 7
provider:
  base_url: https://yaml.example.com
`)
	t.Setenv("QUEUE_WORKER_COUNT", "12")
	t.Setenv("WEBHOOK_SECRET", "hush")
	t.Setenv("PROVIDER_BASE_URL", "https://env.example.com")
	t.Setenv("PROVIDER_API_KEY", "key-from-env")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	assert.Equal(t, "hush", cfg.Webhook.Secret)
	assert.Equal(t, "https://env.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, "key-from-env", cfg.Provider.APIKey)
}

func TestInitialize_InvalidEnvOverrideKeepsConfigured(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "banana")
	t.Setenv("QUEUE_POLL_INTERVAL", "-5s")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollInterval)
}

func TestInitialize_TemplateExpansion(t *testing.T) {
	dir := writeReflexYAML(t, `
provider:
  api_key: {{.TEST_PROVIDER_KEY}}
`)
	t.Setenv("TEST_PROVIDER_KEY", "expanded-secret")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Provider.APIKey)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeReflexYAML(t, `
queue:
  worker_count: -1
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeReflexYAML(t, "queue:\n  worker_count: [not a number\n")

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}
