package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/entitychange"
)

// Subscribed tables: every mutation through the gateway appends exactly
// one EntityChange row in the same transaction as the mutation.
const (
	TableMessages  = "messages"
	TableReactions = "message_reactions"
	TableTasks     = "tasks"
	TableEvents    = "calendar_events"
	TableBills     = "bills"
	TableNotes     = "notes"
)

// ChangeInput describes one row mutation for change capture.
type ChangeInput struct {
	TableName  string
	Operation  entitychange.Operation
	EntityID   string
	EntityType string
	OldData    map[string]any
	NewData    map[string]any
	Metadata   map[string]any
}

// captureChange appends an EntityChange row inside the caller's
// transaction. The post-commit NOTIFY that wakes queue workers is the
// caller's responsibility — pg_notify only fires at commit anyway.
func captureChange(ctx context.Context, tx *ent.Tx, in ChangeInput) error {
	create := tx.EntityChange.Create().
		SetID(uuid.New().String()).
		SetTableName(in.TableName).
		SetOperation(in.Operation).
		SetEntityID(in.EntityID).
		SetEntityType(in.EntityType)

	if in.OldData != nil {
		create.SetOldData(in.OldData)
	}
	if in.NewData != nil {
		create.SetNewData(in.NewData)
	}
	if in.Metadata != nil {
		create.SetMetadata(in.Metadata)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to capture %s change for %s: %w", in.Operation, in.TableName, err)
	}
	return nil
}

// ChangeService reads and maintains the change-capture feed.
type ChangeService struct {
	client *ent.Client
}

// NewChangeService creates a new ChangeService.
func NewChangeService(client *ent.Client) *ChangeService {
	if client == nil {
		panic("NewChangeService: client must not be nil")
	}
	return &ChangeService{client: client}
}

// PendingChanges returns the oldest unprocessed change rows.
func (s *ChangeService) PendingChanges(ctx context.Context, limit int) ([]*ent.EntityChange, error) {
	changes, err := s.client.EntityChange.Query().
		Where(entitychange.Processed(false)).
		Order(ent.Asc(entitychange.FieldChangedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending changes: %w", err)
	}
	return changes, nil
}

// MarkProcessed flags a change row as handled.
func (s *ChangeService) MarkProcessed(ctx context.Context, changeID string) error {
	err := s.client.EntityChange.UpdateOneID(changeID).
		SetProcessed(true).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// MarkFailed records a processing failure on a change row.
func (s *ChangeService) MarkFailed(ctx context.Context, changeID string, cause error) error {
	err := s.client.EntityChange.UpdateOneID(changeID).
		AddErrorCount(1).
		SetLastError(cause.Error()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CleanupProcessedChanges deletes processed change rows older than the
// cutoff. Unprocessed rows are never touched regardless of age.
func (s *ChangeService) CleanupProcessedChanges(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.EntityChange.Delete().
		Where(
			entitychange.Processed(true),
			entitychange.ChangedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup processed changes: %w", err)
	}
	return count, nil
}

// ResetForReprocess flips matching processed change rows back to
// pending and clears their error counters. Used by the manual
// reprocess hook; filters are optional.
func (s *ChangeService) ResetForReprocess(ctx context.Context, entityType string, since time.Time) (int, error) {
	q := s.client.EntityChange.Update().
		Where(entitychange.Processed(true))
	if entityType != "" {
		q = q.Where(entitychange.EntityTypeEQ(entityType))
	}
	if !since.IsZero() {
		q = q.Where(entitychange.ChangedAtGTE(since))
	}

	count, err := q.
		SetProcessed(false).
		SetErrorCount(0).
		ClearLastError().
		ClearProcessedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset changes for reprocess: %w", err)
	}
	return count, nil
}
