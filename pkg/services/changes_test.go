package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/test/util"
)

func newChangeService(t *testing.T) (*ChangeService, *ent.Client) {
	t.Helper()
	client := util.NewTestClient(t)
	return NewChangeService(client.Client), client.Client
}

func seedChange(t *testing.T, client *ent.Client, entityType string, changedAt time.Time) *ent.EntityChange {
	t.Helper()
	row, err := client.EntityChange.Create().
		SetID(uuid.New().String()).
		SetTableName(TableTasks).
		SetOperation(entitychange.OperationINSERT).
		SetEntityID(uuid.New().String()).
		SetEntityType(entityType).
		SetChangedAt(changedAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestChangeService_PendingChanges(t *testing.T) {
	svc, client := newChangeService(t)
	ctx := context.Background()

	now := time.Now()
	second := seedChange(t, client, "task", now)
	first := seedChange(t, client, "task", now.Add(-time.Minute))
	handled := seedChange(t, client, "task", now.Add(-2*time.Minute))
	require.NoError(t, svc.MarkProcessed(ctx, handled.ID))

	pending, err := svc.PendingChanges(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Oldest first, processed rows excluded.
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}

func TestChangeService_MarkProcessedAndFailed(t *testing.T) {
	svc, client := newChangeService(t)
	ctx := context.Background()

	row := seedChange(t, client, "task", time.Now())

	require.NoError(t, svc.MarkFailed(ctx, row.ID, errors.New("executor down")))
	failed := client.EntityChange.GetX(ctx, row.ID)
	assert.Equal(t, 1, failed.ErrorCount)
	require.NotNil(t, failed.LastError)
	assert.Equal(t, "executor down", *failed.LastError)
	assert.False(t, failed.Processed)

	require.NoError(t, svc.MarkProcessed(ctx, row.ID))
	done := client.EntityChange.GetX(ctx, row.ID)
	assert.True(t, done.Processed)
	require.NotNil(t, done.ProcessedAt)

	assert.ErrorIs(t, svc.MarkProcessed(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.MarkFailed(ctx, "missing", errors.New("x")), ErrNotFound)
}

func TestChangeService_CleanupProcessedChanges(t *testing.T) {
	svc, client := newChangeService(t)
	ctx := context.Background()

	oldProcessed := seedChange(t, client, "task", time.Now().Add(-48*time.Hour))
	require.NoError(t, svc.MarkProcessed(ctx, oldProcessed.ID))
	oldPending := seedChange(t, client, "task", time.Now().Add(-48*time.Hour))
	recent := seedChange(t, client, "task", time.Now())
	require.NoError(t, svc.MarkProcessed(ctx, recent.ID))

	count, err := svc.CleanupProcessedChanges(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Unprocessed rows survive regardless of age.
	assert.True(t, client.EntityChange.Query().Where(entitychange.ID(oldPending.ID)).ExistX(ctx))
	assert.True(t, client.EntityChange.Query().Where(entitychange.ID(recent.ID)).ExistX(ctx))
}

func TestChangeService_ResetForReprocess(t *testing.T) {
	svc, client := newChangeService(t)
	ctx := context.Background()

	task := seedChange(t, client, "task", time.Now())
	require.NoError(t, svc.MarkFailed(ctx, task.ID, errors.New("boom")))
	require.NoError(t, svc.MarkProcessed(ctx, task.ID))
	bill := seedChange(t, client, "bill", time.Now())
	require.NoError(t, svc.MarkProcessed(ctx, bill.ID))

	count, err := svc.ResetForReprocess(ctx, "task", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reset := client.EntityChange.GetX(ctx, task.ID)
	assert.False(t, reset.Processed)
	assert.Equal(t, 0, reset.ErrorCount)
	assert.Nil(t, reset.LastError)
	assert.Nil(t, reset.ProcessedAt)

	untouched := client.EntityChange.GetX(ctx, bill.ID)
	assert.True(t, untouched.Processed)

	t.Run("no filters resets everything processed", func(t *testing.T) {
		count, err := svc.ResetForReprocess(ctx, "", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
