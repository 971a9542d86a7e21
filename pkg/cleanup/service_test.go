package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/pkg/config"
	"github.com/reflexhq/reflex/pkg/database"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/test/util"
)

func newService(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := util.NewTestClient(t)

	cfg := &config.RetentionConfig{
		EventTTL:           1 * time.Hour,
		ProcessedChangeTTL: 24 * time.Hour,
		CompletedItemTTL:   24 * time.Hour,
		ResolvedEventTTL:   24 * time.Hour,
		ExecutionLogTTL:    30 * 24 * time.Hour,
		CleanupInterval:    1 * time.Hour,
	}
	svc := NewService(cfg,
		services.NewEventService(client.Client),
		services.NewChangeService(client.Client),
		services.NewQueueService(client.Client, 24*time.Hour, 5*time.Minute),
		services.NewRecoveryService(client.Client, 10*time.Minute),
		services.NewRuleService(client.Client),
	)
	return client, svc
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetChannel("reflex_events").
		SetEventType("new_message").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent, err := client.Event.Create().
		SetChannel("reflex_events").
		SetEventType("new_message").
		SetPayload(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "old event should be deleted, recent event preserved")
	assert.Equal(t, recent.ID, remaining[0].ID)
}

func TestService_CleansUpProcessedChanges(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	// Processed and old: deleted.
	_, err := client.EntityChange.Create().
		SetID(uuid.New().String()).
		SetTableName("tasks").
		SetOperation(entitychange.OperationINSERT).
		SetEntityID("task-old").
		SetEntityType("task").
		SetProcessed(true).
		SetChangedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Unprocessed, even older: kept, still awaiting pickup.
	pending, err := client.EntityChange.Create().
		SetID(uuid.New().String()).
		SetTableName("tasks").
		SetOperation(entitychange.OperationINSERT).
		SetEntityID("task-pending").
		SetEntityType("task").
		SetChangedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.EntityChange.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, pending.ID, remaining[0].ID)
}

func TestService_CleansUpFinishedQueueItems(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)

	_, err := client.ActionQueueItem.Create().
		SetID(uuid.New().String()).
		SetEventType(actionqueueitem.EventTypeReaction).
		SetEventData(map[string]any{}).
		SetIdempotencyKey("done-old").
		SetStatus(actionqueueitem.StatusCompleted).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ActionQueueItem.Create().
		SetID(uuid.New().String()).
		SetEventType(actionqueueitem.EventTypeReaction).
		SetEventData(map[string]any{}).
		SetIdempotencyKey("dead-old").
		SetStatus(actionqueueitem.StatusFailed).
		SetCompletedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Pending items are never touched, whatever their age.
	pending, err := client.ActionQueueItem.Create().
		SetID(uuid.New().String()).
		SetEventType(actionqueueitem.EventTypeReaction).
		SetEventData(map[string]any{}).
		SetIdempotencyKey("pending-old").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.ActionQueueItem.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, pending.ID, remaining[0].ID)
}

func TestService_CleansUpResolvedFailedEvents(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	_, err := client.FailedEvent.Create().
		SetID(uuid.New().String()).
		SetFailureReason("chat missing").
		SetResolved(true).
		SetResolvedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Unresolved entries stay for manual inspection.
	unresolved, err := client.FailedEvent.Create().
		SetID(uuid.New().String()).
		SetFailureReason("still broken").
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.FailedEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, unresolved.ID, remaining[0].ID)
}

func TestService_PreservesRecentRows(t *testing.T) {
	client, svc := newService(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetChannel("reflex_events").
		SetEventType("new_reaction").
		SetPayload(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.FailedEvent.Create().
		SetID(uuid.New().String()).
		SetFailureReason("transient").
		SetResolved(true).
		SetResolvedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	events, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)

	failed, err := client.FailedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
}
