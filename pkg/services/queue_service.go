package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/predicate"
)

// Queue priorities, stored as integers so priority-then-age is a plain
// ORDER BY priority DESC, created_at ASC.
const (
	PriorityHigh   = 100
	PriorityNormal = 50
	PriorityLow    = 10
)

// Completion substatuses recorded on completed items.
const (
	ResultExecuted    = "executed"
	ResultNoRules     = "no_rules"
	ResultParseFailed = "parse_failed"
	ResultSkipped     = "skipped"
)

// EnqueueInput describes one unit of deferred work.
type EnqueueInput struct {
	EventType      actionqueueitem.EventType
	EventData      map[string]any
	IdempotencyKey string
	Priority       int
	MaxAttempts    int
}

// QueueService owns the action queue: enqueue with idempotency-key
// dedupe, skip-locked batch leasing, and retry/backoff bookkeeping.
type QueueService struct {
	client *ent.Client

	// dedupeWindow suppresses duplicate idempotency keys even after the
	// earlier item completed.
	dedupeWindow time.Duration

	// backoffCap bounds the exponential retry delay.
	backoffCap time.Duration
}

// NewQueueService creates a new QueueService.
func NewQueueService(client *ent.Client, dedupeWindow, backoffCap time.Duration) *QueueService {
	if client == nil {
		panic("NewQueueService: client must not be nil")
	}
	if dedupeWindow <= 0 {
		dedupeWindow = 24 * time.Hour
	}
	if backoffCap <= 0 {
		backoffCap = 5 * time.Minute
	}
	return &QueueService{
		client:       client,
		dedupeWindow: dedupeWindow,
		backoffCap:   backoffCap,
	}
}

// Enqueue inserts a queue item unless one with the same idempotency
// key exists within the dedupe window; duplicates return ErrDuplicate.
func (s *QueueService) Enqueue(ctx context.Context, in EnqueueInput) (*ent.ActionQueueItem, error) {
	if in.IdempotencyKey == "" {
		return nil, NewValidationError("idempotency_key", "idempotency key is required")
	}
	if in.Priority == 0 {
		in.Priority = PriorityNormal
	}
	if in.MaxAttempts == 0 {
		in.MaxAttempts = 3
	}

	dup, err := s.client.ActionQueueItem.Query().
		Where(
			actionqueueitem.IdempotencyKey(in.IdempotencyKey),
			actionqueueitem.CreatedAtGTE(time.Now().Add(-s.dedupeWindow)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	if dup {
		return nil, fmt.Errorf("idempotency key %s: %w", in.IdempotencyKey, ErrDuplicate)
	}

	item, err := s.client.ActionQueueItem.Create().
		SetID(uuid.New().String()).
		SetEventType(in.EventType).
		SetEventData(in.EventData).
		SetIdempotencyKey(in.IdempotencyKey).
		SetPriority(in.Priority).
		SetMaxAttempts(in.MaxAttempts).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue item: %w", err)
	}
	return item, nil
}

// LeaseBatch atomically claims up to limit pending items in
// priority-then-age order. FOR UPDATE SKIP LOCKED keeps concurrent
// workers off each other's rows; claimed items flip to processing
// stamped with the leasing pod.
func (s *QueueService) LeaseBatch(ctx context.Context, limit int, podID string) ([]*ent.ActionQueueItem, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start lease transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	items, err := tx.ActionQueueItem.Query().
		Where(
			actionqueueitem.StatusEQ(actionqueueitem.StatusPending),
			actionqueueitem.RetryAfterTsLTE(time.Now()),
			attemptsBelowMax(),
		).
		Order(
			ent.Desc(actionqueueitem.FieldPriority),
			ent.Asc(actionqueueitem.FieldCreatedAt),
		).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	now := time.Now()
	leased := make([]*ent.ActionQueueItem, 0, len(items))
	for _, item := range items {
		claimed, err := item.Update().
			SetStatus(actionqueueitem.StatusProcessing).
			SetPodID(podID).
			SetLeasedAt(now).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim item %s: %w", item.ID, err)
		}
		leased = append(leased, claimed)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}
	return leased, nil
}

// attemptsBelowMax compares the attempts column against max_attempts.
func attemptsBelowMax() predicate.ActionQueueItem {
	return func(s *sql.Selector) {
		s.Where(sql.ColumnsLT(
			s.C(actionqueueitem.FieldAttempts),
			s.C(actionqueueitem.FieldMaxAttempts),
		))
	}
}

// Complete marks an item done with a result substatus.
func (s *QueueService) Complete(ctx context.Context, itemID, result string) error {
	err := s.client.ActionQueueItem.UpdateOneID(itemID).
		SetStatus(actionqueueitem.StatusCompleted).
		SetResult(result).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("queue item %q: %w", itemID, ErrNotFound)
	}
	return err
}

// Fail records a failure: attempts is incremented, retry_after_ts moves
// to now + min(2^attempts seconds, cap), and the item returns to
// pending unless attempts are exhausted, in which case it dead-letters
// as failed.
func (s *QueueService) Fail(ctx context.Context, itemID string, cause error) error {
	item, err := s.client.ActionQueueItem.Get(ctx, itemID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("queue item %q: %w", itemID, ErrNotFound)
		}
		return fmt.Errorf("failed to load queue item %s: %w", itemID, err)
	}

	attempts := item.Attempts + 1
	update := item.Update().
		SetAttempts(attempts).
		SetLastError(cause.Error()).
		ClearPodID()

	if attempts >= item.MaxAttempts {
		update.SetStatus(actionqueueitem.StatusFailed).
			SetCompletedAt(time.Now())
	} else {
		update.SetStatus(actionqueueitem.StatusPending).
			SetRetryAfterTs(time.Now().Add(s.backoff(attempts)))
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record failure on item %s: %w", itemID, err)
	}
	return nil
}

// backoff returns min(2^attempts seconds, cap).
func (s *QueueService) backoff(attempts int) time.Duration {
	if attempts > 30 {
		return s.backoffCap
	}
	d := time.Duration(1<<uint(attempts)) * time.Second
	if d > s.backoffCap {
		return s.backoffCap
	}
	return d
}

// ReprocessDeadLetters resets failed items back to pending with their
// counters cleared. Filters are optional: entityType matches the
// event_type column, since bounds created_at.
func (s *QueueService) ReprocessDeadLetters(ctx context.Context, entityType string, since time.Time) (int, error) {
	q := s.client.ActionQueueItem.Update().
		Where(actionqueueitem.StatusEQ(actionqueueitem.StatusFailed))
	if entityType != "" {
		q = q.Where(actionqueueitem.EventTypeEQ(actionqueueitem.EventType(entityType)))
	}
	if !since.IsZero() {
		q = q.Where(actionqueueitem.CreatedAtGTE(since))
	}

	count, err := q.
		SetStatus(actionqueueitem.StatusPending).
		SetAttempts(0).
		SetRetryAfterTs(time.Now()).
		ClearLastError().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reprocess dead letters: %w", err)
	}
	return count, nil
}

// CleanupFinishedItems deletes completed and dead-lettered items older
// than the cutoff. Pending and processing items are never touched.
func (s *QueueService) CleanupFinishedItems(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.ActionQueueItem.Delete().
		Where(
			actionqueueitem.StatusIn(actionqueueitem.StatusCompleted, actionqueueitem.StatusFailed),
			actionqueueitem.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup finished queue items: %w", err)
	}
	return count, nil
}

// QueueStats is a point-in-time snapshot for the health endpoint.
type QueueStats struct {
	Pending          int       `json:"pending"`
	Processing       int       `json:"processing"`
	Completed        int       `json:"completed"`
	Failed           int       `json:"failed"`
	OldestPendingAge float64   `json:"oldest_pending_age_seconds"`
	SampledAt        time.Time `json:"sampled_at"`
}

// Stats counts items by status and measures the oldest pending age.
func (s *QueueService) Stats(ctx context.Context) (*QueueStats, error) {
	stats := &QueueStats{SampledAt: time.Now()}

	for _, st := range []struct {
		status actionqueueitem.Status
		target *int
	}{
		{actionqueueitem.StatusPending, &stats.Pending},
		{actionqueueitem.StatusProcessing, &stats.Processing},
		{actionqueueitem.StatusCompleted, &stats.Completed},
		{actionqueueitem.StatusFailed, &stats.Failed},
	} {
		n, err := s.client.ActionQueueItem.Query().
			Where(actionqueueitem.StatusEQ(st.status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s items: %w", st.status, err)
		}
		*st.target = n
	}

	oldest, err := s.client.ActionQueueItem.Query().
		Where(actionqueueitem.StatusEQ(actionqueueitem.StatusPending)).
		Order(ent.Asc(actionqueueitem.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query oldest pending item: %w", err)
	}
	if oldest != nil {
		stats.OldestPendingAge = time.Since(oldest.CreatedAt).Seconds()
	}

	return stats, nil
}

// RequeueOrphanedLeases flips processing items with a stale lease back
// to pending. podID narrows to one pod's leases; empty matches any.
// Attempts are untouched so a crash still counts against max_attempts
// budget via subsequent failures, not the crash itself.
func (s *QueueService) RequeueOrphanedLeases(ctx context.Context, olderThan time.Duration, podID string) (int, error) {
	q := s.client.ActionQueueItem.Update().
		Where(actionqueueitem.StatusEQ(actionqueueitem.StatusProcessing))
	if olderThan > 0 {
		q = q.Where(actionqueueitem.LeasedAtLT(time.Now().Add(-olderThan)))
	}
	if podID != "" {
		q = q.Where(actionqueueitem.PodID(podID))
	}

	count, err := q.
		SetStatus(actionqueueitem.StatusPending).
		ClearPodID().
		ClearLeasedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned leases: %w", err)
	}
	return count, nil
}
