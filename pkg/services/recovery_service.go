package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/failedevent"
)

// FailedEventInput records one webhook event the adapter could not
// translate, with its classified error kind.
type FailedEventInput struct {
	InstanceID    string
	EventType     string
	RawPayload    map[string]any
	FailureReason string
	ErrorKind     failedevent.ErrorKind
	MaxRetries    int
}

// RecoveryService owns the failed-event bucket: recording failures,
// listing entries due for retry, and retry bookkeeping with capped
// exponential backoff. Only transient and fk_dependency kinds are
// auto-retried; validation and permanent entries wait for a human.
type RecoveryService struct {
	client *ent.Client

	// backoffCap bounds the retry delay.
	backoffCap time.Duration
}

// NewRecoveryService creates a new RecoveryService.
func NewRecoveryService(client *ent.Client, backoffCap time.Duration) *RecoveryService {
	if client == nil {
		panic("NewRecoveryService: client must not be nil")
	}
	if backoffCap <= 0 {
		backoffCap = 10 * time.Minute
	}
	return &RecoveryService{client: client, backoffCap: backoffCap}
}

// Record stores a failed event. The payload must already be redacted by
// the adapter before it reaches this layer.
func (s *RecoveryService) Record(ctx context.Context, in FailedEventInput) (*ent.FailedEvent, error) {
	if in.FailureReason == "" {
		return nil, NewValidationError("failure_reason", "failure reason is required")
	}

	create := s.client.FailedEvent.Create().
		SetID(uuid.New().String()).
		SetFailureReason(in.FailureReason).
		SetErrorKind(in.ErrorKind)
	if in.InstanceID != "" {
		create.SetInstanceID(in.InstanceID)
	}
	if in.EventType != "" {
		create.SetEventType(in.EventType)
	}
	if in.RawPayload != nil {
		create.SetRawPayload(in.RawPayload)
	}
	if in.MaxRetries > 0 {
		create.SetMaxRetries(in.MaxRetries)
	}

	fe, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record failed event: %w", err)
	}
	return fe, nil
}

// DueForRetry returns unresolved auto-retryable entries whose backoff
// has elapsed and that still have retries left, oldest due first.
func (s *RecoveryService) DueForRetry(ctx context.Context, limit int) ([]*ent.FailedEvent, error) {
	entries, err := s.client.FailedEvent.Query().
		Where(
			failedevent.Resolved(false),
			failedevent.NextRetryAtLTE(time.Now()),
			failedevent.ErrorKindIn(
				failedevent.ErrorKindTransient,
				failedevent.ErrorKindFkDependency,
			),
		).
		Order(ent.Asc(failedevent.FieldNextRetryAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed events due for retry: %w", err)
	}

	due := make([]*ent.FailedEvent, 0, len(entries))
	for _, fe := range entries {
		if fe.RetryCount < fe.MaxRetries {
			due = append(due, fe)
		}
	}
	return due, nil
}

// MarkRetried bumps the retry counter and reschedules with
// min(2^retry_count minutes, cap). Exhausted entries stay unresolved
// but fall out of the auto-retry query until manually reset.
func (s *RecoveryService) MarkRetried(ctx context.Context, failedEventID string, cause error) error {
	fe, err := s.client.FailedEvent.Get(ctx, failedEventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("failed event %q: %w", failedEventID, ErrNotFound)
		}
		return fmt.Errorf("failed to load failed event %s: %w", failedEventID, err)
	}

	retries := fe.RetryCount + 1
	update := fe.Update().
		SetRetryCount(retries).
		SetNextRetryAt(time.Now().Add(s.backoff(retries)))
	if cause != nil {
		update.SetFailureReason(cause.Error())
	}
	return update.Exec(ctx)
}

// Resolve marks an entry as successfully recovered.
func (s *RecoveryService) Resolve(ctx context.Context, failedEventID string) error {
	err := s.client.FailedEvent.UpdateOneID(failedEventID).
		SetResolved(true).
		SetResolvedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("failed event %q: %w", failedEventID, ErrNotFound)
	}
	return err
}

// ResetForRetry puts an entry back in the auto-retry rotation,
// regardless of its kind or exhausted counter. Manual path for
// validation/permanent entries after the underlying cause is fixed.
func (s *RecoveryService) ResetForRetry(ctx context.Context, failedEventID string) error {
	err := s.client.FailedEvent.UpdateOneID(failedEventID).
		SetRetryCount(0).
		SetNextRetryAt(time.Now()).
		SetErrorKind(failedevent.ErrorKindTransient).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("failed event %q: %w", failedEventID, ErrNotFound)
	}
	return err
}

// ListUnresolved returns unresolved entries, newest first, optionally
// filtered by error kind.
func (s *RecoveryService) ListUnresolved(ctx context.Context, kind failedevent.ErrorKind, limit int) ([]*ent.FailedEvent, error) {
	q := s.client.FailedEvent.Query().
		Where(failedevent.Resolved(false))
	if kind != "" {
		q = q.Where(failedevent.ErrorKindEQ(kind))
	}
	return q.Order(ent.Desc(failedevent.FieldCreatedAt)).Limit(limit).All(ctx)
}

// CleanupResolved deletes resolved entries older than the cutoff.
func (s *RecoveryService) CleanupResolved(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.FailedEvent.Delete().
		Where(
			failedevent.Resolved(true),
			failedevent.ResolvedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup resolved failed events: %w", err)
	}
	return count, nil
}

// backoff returns min(2^retries minutes, cap).
func (s *RecoveryService) backoff(retries int) time.Duration {
	if retries > 20 {
		return s.backoffCap
	}
	d := time.Duration(1<<uint(retries)) * time.Minute
	if d > s.backoffCap {
		return s.backoffCap
	}
	return d
}

// ErrorKindFor maps a storage error class onto the failed-event kind
// recorded for it.
func ErrorKindFor(class ErrorClass) failedevent.ErrorKind {
	switch class {
	case ClassFKViolation:
		return failedevent.ErrorKindFkDependency
	case ClassTransient:
		return failedevent.ErrorKindTransient
	case ClassValidation:
		return failedevent.ErrorKindValidation
	default:
		return failedevent.ErrorKindPermanent
	}
}
