// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/reflexhq/reflex/pkg/config"
	"github.com/reflexhq/reflex/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes fan-out event rows past their TTL
//   - Removes processed change-capture rows
//   - Removes completed and dead-lettered queue items
//   - Removes resolved failed events
//   - Removes old rule execution logs
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	eventService *services.EventService
	changes      *services.ChangeService
	queue        *services.QueueService
	recovery     *services.RecoveryService
	rules        *services.RuleService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	changes *services.ChangeService,
	queue *services.QueueService,
	recovery *services.RecoveryService,
	rules *services.RuleService,
) *Service {
	return &Service{
		config:       cfg,
		eventService: eventService,
		changes:      changes,
		queue:        queue,
		recovery:     recovery,
		rules:        rules,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"completed_item_ttl", s.config.CompletedItemTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	now := time.Now()
	s.sweep(ctx, "expired events", func(ctx context.Context) (int, error) {
		return s.eventService.CleanupExpiredEvents(ctx, now.Add(-s.config.EventTTL))
	})
	s.sweep(ctx, "processed changes", func(ctx context.Context) (int, error) {
		return s.changes.CleanupProcessedChanges(ctx, now.Add(-s.config.ProcessedChangeTTL))
	})
	s.sweep(ctx, "finished queue items", func(ctx context.Context) (int, error) {
		return s.queue.CleanupFinishedItems(ctx, now.Add(-s.config.CompletedItemTTL))
	})
	s.sweep(ctx, "resolved failed events", func(ctx context.Context) (int, error) {
		return s.recovery.CleanupResolved(ctx, now.Add(-s.config.ResolvedEventTTL))
	})
	s.sweep(ctx, "execution logs", func(ctx context.Context) (int, error) {
		return s.rules.CleanupExecutionLogs(ctx, now.Add(-s.config.ExecutionLogTTL))
	})
}

// sweep runs one retention operation. Failures log and continue; a bad
// sweep never takes the others down with it.
func (s *Service) sweep(ctx context.Context, name string, fn func(context.Context) (int, error)) {
	if ctx.Err() != nil {
		return
	}
	count, err := fn(ctx)
	if err != nil {
		slog.Error("Retention sweep failed", "target", name, "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention sweep removed rows", "target", name, "count", count)
	}
}
