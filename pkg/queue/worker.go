package queue

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/pkg/config"
	"github.com/reflexhq/reflex/pkg/services"
)

// Worker is a single queue worker that leases and processes item
// batches. Between polls it sleeps on a jittered timer or a NOTIFY
// wakeup, whichever fires first.
type Worker struct {
	id        string
	podID     string
	queue     *services.QueueService
	config    *config.QueueConfig
	processor *Processor
	wakeCh    chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentItemID  string
	itemsProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, queue *services.QueueService, cfg *config.QueueConfig, processor *Processor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		config:       cfg,
		processor:    processor,
		wakeCh:       make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Wake nudges the worker to poll immediately. Non-blocking; a pending
// wakeup absorbs further nudges.
func (w *Worker) Wake() {
	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentItemID:  w.currentItemID,
		ItemsProcessed: w.itemsProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if err == ErrNoItemsAvailable {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing batch", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the duration, a wakeup, or stop, whichever first.
func (w *Worker) sleep(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-w.stopCh:
	case <-w.wakeCh:
	case <-timer.C:
	}
}

// pollAndProcess leases a batch and processes the items sequentially.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	items, err := w.queue.LeaseBatch(ctx, w.config.BatchSize, w.podID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNoItemsAvailable
	}

	for _, item := range items {
		select {
		case <-w.stopCh:
			// Shutdown mid-batch: the pool requeues this pod's
			// remaining leases once every worker has stopped.
			return nil
		default:
		}
		w.processItem(ctx, item)
	}
	return nil
}

// processItem runs one item under its timeout and records the result.
func (w *Worker) processItem(ctx context.Context, item *ent.ActionQueueItem) {
	log := slog.With("worker_id", w.id, "item_id", item.ID, "event_type", item.EventType)

	w.setStatus(WorkerStatusWorking, item.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	itemCtx, cancel := context.WithTimeout(ctx, w.config.ItemTimeout)
	defer cancel()

	result, err := w.processor.Process(itemCtx, item)

	// Bookkeeping writes use a background context: the item context
	// may have expired, and losing the outcome would double-process.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelWrite()

	if err != nil {
		if failErr := w.queue.Fail(writeCtx, item.ID, err); failErr != nil {
			log.Error("Failed to record item failure", "error", failErr)
		}
		log.Warn("Queue item failed", "attempts", item.Attempts+1, "error", err)
		return
	}

	if err := w.queue.Complete(writeCtx, item.ID, result); err != nil {
		log.Error("Failed to complete queue item", "error", err)
		return
	}

	w.mu.Lock()
	w.itemsProcessed++
	w.mu.Unlock()
	log.Info("Queue item completed", "result", result)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, itemID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentItemID = itemID
	w.lastActivity = time.Now()
}
