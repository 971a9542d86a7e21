package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reflexhq/reflex/pkg/services"
)

// orphanState tracks orphan sweep metrics (thread-safe).
type orphanState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runOrphanSweep periodically returns stale leases to pending.
// All pods run this independently — the operation is idempotent.
func (p *WorkerPool) runOrphanSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweepOrphanedLeases(ctx); err != nil {
				slog.Error("Orphan lease sweep failed", "error", err)
			}
		}
	}
}

// sweepOrphanedLeases requeues processing items whose lease exceeded
// the timeout, regardless of which pod held them. Attempts are left
// alone: the crash itself doesn't burn retry budget.
func (p *WorkerPool) sweepOrphanedLeases(ctx context.Context) error {
	count, err := p.queue.RequeueOrphanedLeases(ctx, p.config.LeaseTimeout, "")
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned leases: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.requeued += count
	p.orphans.mu.Unlock()

	if count > 0 {
		slog.Warn("Requeued orphaned queue leases", "count", count)
	}
	return nil
}

// CleanupStartupOrphans performs a one-time requeue of items this pod
// was processing when it previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, queue *services.QueueService, podID string) error {
	count, err := queue.RequeueOrphanedLeases(ctx, 0, podID)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if count > 0 {
		slog.Warn("Requeued leases from previous run", "pod_id", podID, "count", count)
	}
	return nil
}
