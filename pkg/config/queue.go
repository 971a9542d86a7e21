package config

import "time"

// QueueConfig contains action-queue and worker pool configuration.
// These values control how queue items are polled, leased, and retried.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes leased batches.
	WorkerCount int `yaml:"worker_count"`

	// BatchSize is the maximum number of items one lease claims.
	BatchSize int `yaml:"batch_size"`

	// PollInterval is the base interval for checking pending items.
	// NOTIFY wakeups cut the effective latency well below this.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ItemTimeout bounds the processing of a single queue item.
	ItemTimeout time.Duration `yaml:"item_timeout"`

	// MaxAttempts is the default retry budget for enqueued items.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoffCap bounds the exponential retry delay.
	RetryBackoffCap time.Duration `yaml:"retry_backoff_cap"`

	// DedupeWindow is how long an idempotency key suppresses
	// duplicates after the original item completed.
	DedupeWindow time.Duration `yaml:"dedupe_window"`

	// LeaseTimeout is how long a processing item can hold its lease
	// before the orphan sweep returns it to pending.
	LeaseTimeout time.Duration `yaml:"lease_timeout"`

	// OrphanScanInterval is how often the orphan sweep runs.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// items to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		BatchSize:               10,
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      250 * time.Millisecond,
		ItemTimeout:             30 * time.Second,
		MaxAttempts:             3,
		RetryBackoffCap:         5 * time.Minute,
		DedupeWindow:            24 * time.Hour,
		LeaseTimeout:            5 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
