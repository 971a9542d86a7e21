// Package recovery re-runs failed webhook events from their stored
// payloads once their backoff elapses.
package recovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/pkg/config"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/pkg/webhook"
)

// Sweeper periodically replays auto-retryable failed events through the
// webhook adapter. The stored payload is the redacted envelope exactly
// as it arrived, so a replay exercises the same translation path as
// live traffic. All operations are idempotent and safe to run from
// multiple pods: a double replay hits the gateway's natural-key
// upserts and queue idempotency keys.
type Sweeper struct {
	config   *config.RecoveryConfig
	recovery *services.RecoveryService
	adapter  *webhook.Adapter

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a new recovery sweeper.
func NewSweeper(cfg *config.RecoveryConfig, recovery *services.RecoveryService, adapter *webhook.Adapter) *Sweeper {
	if cfg == nil || recovery == nil || adapter == nil {
		panic("NewSweeper: cfg, recovery, and adapter must not be nil")
	}
	return &Sweeper{
		config:   cfg,
		recovery: recovery,
		adapter:  adapter,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Recovery sweeper started",
		"sweep_interval", s.config.SweepInterval,
		"batch_size", s.config.BatchSize)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Recovery sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep replays one batch of due entries. Failures log and continue;
// the sweep itself never aborts the loop.
func (s *Sweeper) sweep(ctx context.Context) {
	due, err := s.recovery.DueForRetry(ctx, s.config.BatchSize)
	if err != nil {
		slog.Error("Recovery sweep query failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	recovered := 0
	for _, fe := range due {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if s.replay(ctx, fe) {
			recovered++
		}
	}
	slog.Info("Recovery sweep finished", "due", len(due), "recovered", recovered)
}

// replay re-runs one failed event and updates its bookkeeping.
func (s *Sweeper) replay(ctx context.Context, fe *ent.FailedEvent) bool {
	log := slog.With("failed_event_id", fe.ID, "event_type", fe.EventType, "retry_count", fe.RetryCount)

	env, err := webhook.EnvelopeFromStored(fe.RawPayload)
	if err != nil {
		// The stored payload itself is unusable; no number of retries
		// will fix that.
		log.Error("Stored payload is not replayable", "error", err)
		if markErr := s.recovery.MarkRetried(ctx, fe.ID, err); markErr != nil {
			log.Error("Failed to update retry bookkeeping", "error", markErr)
		}
		return false
	}

	if err := s.adapter.Replay(ctx, fe.InstanceID, env); err != nil {
		log.Warn("Replay failed", "error", err)
		if markErr := s.recovery.MarkRetried(ctx, fe.ID, err); markErr != nil {
			log.Error("Failed to update retry bookkeeping", "error", markErr)
		}
		return false
	}

	if err := s.recovery.Resolve(ctx, fe.ID); err != nil {
		log.Error("Failed to resolve recovered event", "error", err)
		return false
	}
	log.Info("Failed event recovered")
	return true
}
