package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/test/util"
)

func newQueueService(t *testing.T, dedupeWindow time.Duration) (*QueueService, *ent.Client) {
	t.Helper()
	client := util.NewTestClient(t)
	return NewQueueService(client.Client, dedupeWindow, 5*time.Minute), client.Client
}

func enqueueReaction(t *testing.T, svc *QueueService, key string, priority int) *ent.ActionQueueItem {
	t.Helper()
	item, err := svc.Enqueue(context.Background(), EnqueueInput{
		EventType:      actionqueueitem.EventTypeReaction,
		EventData:      map[string]any{"emoji": "✅"},
		IdempotencyKey: key,
		Priority:       priority,
	})
	require.NoError(t, err)
	return item
}

func TestQueueService_Enqueue(t *testing.T) {
	svc, _ := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	item := enqueueReaction(t, svc, "reaction:inst-1:M1:a:✅", 0)
	assert.Equal(t, actionqueueitem.StatusPending, item.Status)
	assert.Equal(t, PriorityNormal, item.Priority)
	assert.Equal(t, 3, item.MaxAttempts)

	t.Run("same key within window suppressed", func(t *testing.T) {
		_, err := svc.Enqueue(ctx, EnqueueInput{
			EventType:      actionqueueitem.EventTypeReaction,
			IdempotencyKey: "reaction:inst-1:M1:a:✅",
		})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		_, err := svc.Enqueue(ctx, EnqueueInput{EventType: actionqueueitem.EventTypeReaction})
		assert.True(t, IsValidationError(err))
	})
}

func TestQueueService_DedupeWindowExpires(t *testing.T) {
	svc, _ := newQueueService(t, 50*time.Millisecond)
	ctx := context.Background()

	enqueueReaction(t, svc, "key-1", 0)
	time.Sleep(80 * time.Millisecond)

	_, err := svc.Enqueue(ctx, EnqueueInput{
		EventType:      actionqueueitem.EventTypeReaction,
		IdempotencyKey: "key-1",
	})
	assert.NoError(t, err)
}

func TestQueueService_LeaseBatch(t *testing.T) {
	svc, _ := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	normal := enqueueReaction(t, svc, "normal-1", PriorityNormal)
	high := enqueueReaction(t, svc, "high-1", PriorityHigh)
	low := enqueueReaction(t, svc, "low-1", PriorityLow)

	leased, err := svc.LeaseBatch(ctx, 10, "pod-a")
	require.NoError(t, err)
	require.Len(t, leased, 3)

	// Priority beats insertion order.
	assert.Equal(t, high.ID, leased[0].ID)
	assert.Equal(t, normal.ID, leased[1].ID)
	assert.Equal(t, low.ID, leased[2].ID)
	for _, item := range leased {
		assert.Equal(t, actionqueueitem.StatusProcessing, item.Status)
		require.NotNil(t, item.PodID)
		assert.Equal(t, "pod-a", *item.PodID)
	}

	t.Run("claimed items not re-leased", func(t *testing.T) {
		again, err := svc.LeaseBatch(ctx, 10, "pod-b")
		require.NoError(t, err)
		assert.Empty(t, again)
	})
}

func TestQueueService_CompleteAndFail(t *testing.T) {
	svc, client := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	done := enqueueReaction(t, svc, "done-1", 0)
	require.NoError(t, svc.Complete(ctx, done.ID, ResultExecuted))

	stored := client.ActionQueueItem.GetX(ctx, done.ID)
	assert.Equal(t, actionqueueitem.StatusCompleted, stored.Status)
	require.NotNil(t, stored.Result)
	assert.Equal(t, ResultExecuted, *stored.Result)
	require.NotNil(t, stored.CompletedAt)

	t.Run("failure backs off then dead-letters", func(t *testing.T) {
		flaky := enqueueReaction(t, svc, "flaky-1", 0)
		cause := errors.New("downstream unavailable")

		require.NoError(t, svc.Fail(ctx, flaky.ID, cause))
		stored := client.ActionQueueItem.GetX(ctx, flaky.ID)
		assert.Equal(t, actionqueueitem.StatusPending, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
		assert.True(t, stored.RetryAfterTs.After(time.Now()))
		require.NotNil(t, stored.LastError)
		assert.Equal(t, cause.Error(), *stored.LastError)

		// Backed-off items are not leasable yet.
		leased, err := svc.LeaseBatch(ctx, 10, "pod-a")
		require.NoError(t, err)
		assert.Empty(t, leased)

		require.NoError(t, svc.Fail(ctx, flaky.ID, cause))
		require.NoError(t, svc.Fail(ctx, flaky.ID, cause))
		stored = client.ActionQueueItem.GetX(ctx, flaky.ID)
		assert.Equal(t, actionqueueitem.StatusFailed, stored.Status)
		assert.Equal(t, 3, stored.Attempts)
	})

	t.Run("unknown item", func(t *testing.T) {
		assert.ErrorIs(t, svc.Complete(ctx, "no-such-item", ResultExecuted), ErrNotFound)
		assert.ErrorIs(t, svc.Fail(ctx, "no-such-item", errors.New("x")), ErrNotFound)
	})
}

func TestQueueService_ReprocessDeadLetters(t *testing.T) {
	svc, client := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	item := enqueueReaction(t, svc, "dead-1", 0)
	cause := errors.New("boom")
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Fail(ctx, item.ID, cause))
	}
	require.Equal(t, actionqueueitem.StatusFailed, client.ActionQueueItem.GetX(ctx, item.ID).Status)

	count, err := svc.ReprocessDeadLetters(ctx, "", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored := client.ActionQueueItem.GetX(ctx, item.ID)
	assert.Equal(t, actionqueueitem.StatusPending, stored.Status)
	assert.Equal(t, 0, stored.Attempts)
	assert.Nil(t, stored.LastError)

	t.Run("event type filter", func(t *testing.T) {
		count, err := svc.ReprocessDeadLetters(ctx, "message", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestQueueService_RequeueOrphanedLeases(t *testing.T) {
	svc, client := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	item := enqueueReaction(t, svc, "orphan-1", 0)
	leased, err := svc.LeaseBatch(ctx, 1, "pod-dead")
	require.NoError(t, err)
	require.Len(t, leased, 1)

	// Backdate the lease so it counts as stale.
	require.NoError(t, client.ActionQueueItem.UpdateOneID(item.ID).
		SetLeasedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	count, err := svc.RequeueOrphanedLeases(ctx, 5*time.Minute, "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored := client.ActionQueueItem.GetX(ctx, item.ID)
	assert.Equal(t, actionqueueitem.StatusPending, stored.Status)
	assert.Nil(t, stored.PodID)
	// A crash does not consume an attempt.
	assert.Equal(t, 0, stored.Attempts)
}

func TestQueueService_Stats(t *testing.T) {
	svc, _ := newQueueService(t, 24*time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		enqueueReaction(t, svc, fmt.Sprintf("stats-%d", i), 0)
	}
	leased, err := svc.LeaseBatch(ctx, 1, "pod-a")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, leased[0].ID, ResultExecuted))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 0, stats.Processing)
	assert.Equal(t, 1, stats.Completed)
	assert.GreaterOrEqual(t, stats.OldestPendingAge, 0.0)
}
