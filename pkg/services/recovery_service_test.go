package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/test/util"
)

func newRecoveryService(t *testing.T) (*RecoveryService, *ent.Client) {
	t.Helper()
	client := util.NewTestClient(t)
	return NewRecoveryService(client.Client, 10*time.Minute), client.Client
}

func recordFailure(t *testing.T, svc *RecoveryService, kind failedevent.ErrorKind) *ent.FailedEvent {
	t.Helper()
	fe, err := svc.Record(context.Background(), FailedEventInput{
		InstanceID:    "inst-1",
		EventType:     "messages.upsert",
		RawPayload:    map[string]any{"event": "messages.upsert"},
		FailureReason: "missing dependency row",
		ErrorKind:     kind,
	})
	require.NoError(t, err)
	return fe
}

func TestRecoveryService_Record(t *testing.T) {
	svc, _ := newRecoveryService(t)

	fe := recordFailure(t, svc, failedevent.ErrorKindFkDependency)
	assert.False(t, fe.Resolved)
	assert.Equal(t, 0, fe.RetryCount)

	t.Run("reason required", func(t *testing.T) {
		_, err := svc.Record(context.Background(), FailedEventInput{InstanceID: "inst-1"})
		assert.True(t, IsValidationError(err))
	})
}

func TestRecoveryService_DueForRetry(t *testing.T) {
	svc, client := newRecoveryService(t)
	ctx := context.Background()

	retryable := recordFailure(t, svc, failedevent.ErrorKindTransient)
	fkDependent := recordFailure(t, svc, failedevent.ErrorKindFkDependency)
	recordFailure(t, svc, failedevent.ErrorKindValidation)
	recordFailure(t, svc, failedevent.ErrorKindPermanent)

	due, err := svc.DueForRetry(ctx, 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(due))
	for _, fe := range due {
		ids = append(ids, fe.ID)
	}
	// Only transient and fk_dependency kinds auto-retry.
	assert.ElementsMatch(t, []string{retryable.ID, fkDependent.ID}, ids)

	t.Run("backed-off entries excluded", func(t *testing.T) {
		require.NoError(t, svc.MarkRetried(ctx, retryable.ID, errors.New("still failing")))
		due, err := svc.DueForRetry(ctx, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, fkDependent.ID, due[0].ID)
	})

	t.Run("exhausted entries excluded", func(t *testing.T) {
		require.NoError(t, client.FailedEvent.UpdateOneID(fkDependent.ID).
			SetRetryCount(10).
			SetNextRetryAt(time.Now().Add(-time.Minute)).
			Exec(ctx))
		due, err := svc.DueForRetry(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestRecoveryService_ResolveAndReset(t *testing.T) {
	svc, client := newRecoveryService(t)
	ctx := context.Background()

	fe := recordFailure(t, svc, failedevent.ErrorKindValidation)

	require.NoError(t, svc.Resolve(ctx, fe.ID))
	stored := client.FailedEvent.GetX(ctx, fe.ID)
	assert.True(t, stored.Resolved)
	require.NotNil(t, stored.ResolvedAt)

	t.Run("reset puts any kind back in rotation", func(t *testing.T) {
		stuck := recordFailure(t, svc, failedevent.ErrorKindPermanent)
		require.NoError(t, svc.ResetForRetry(ctx, stuck.ID))

		due, err := svc.DueForRetry(ctx, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, stuck.ID, due[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Resolve(ctx, "missing"), ErrNotFound)
		assert.ErrorIs(t, svc.ResetForRetry(ctx, "missing"), ErrNotFound)
		assert.ErrorIs(t, svc.MarkRetried(ctx, "missing", nil), ErrNotFound)
	})
}

func TestRecoveryService_ListUnresolved(t *testing.T) {
	svc, _ := newRecoveryService(t)
	ctx := context.Background()

	recordFailure(t, svc, failedevent.ErrorKindTransient)
	validation := recordFailure(t, svc, failedevent.ErrorKindValidation)
	resolved := recordFailure(t, svc, failedevent.ErrorKindTransient)
	require.NoError(t, svc.Resolve(ctx, resolved.ID))

	all, err := svc.ListUnresolved(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListUnresolved(ctx, failedevent.ErrorKindValidation, 10)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, validation.ID, filtered[0].ID)
}

func TestRecoveryService_CleanupResolved(t *testing.T) {
	svc, client := newRecoveryService(t)
	ctx := context.Background()

	old := recordFailure(t, svc, failedevent.ErrorKindValidation)
	require.NoError(t, svc.Resolve(ctx, old.ID))
	require.NoError(t, client.FailedEvent.UpdateOneID(old.ID).
		SetResolvedAt(time.Now().Add(-72*time.Hour)).
		Exec(ctx))
	unresolved := recordFailure(t, svc, failedevent.ErrorKindValidation)

	count, err := svc.CleanupResolved(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, client.FailedEvent.Query().Where(failedevent.ID(unresolved.ID)).ExistX(ctx))
}

func TestRecoveryService_BackoffGrowsAndCaps(t *testing.T) {
	svc, client := newRecoveryService(t)
	ctx := context.Background()

	fe := recordFailure(t, svc, failedevent.ErrorKindTransient)

	require.NoError(t, svc.MarkRetried(ctx, fe.ID, errors.New("retry 1")))
	first := client.FailedEvent.GetX(ctx, fe.ID)
	assert.Equal(t, 1, first.RetryCount)
	assert.InDelta(t, 2*time.Minute.Seconds(), time.Until(first.NextRetryAt).Seconds(), 5)

	require.NoError(t, svc.MarkRetried(ctx, fe.ID, errors.New("retry 2")))
	second := client.FailedEvent.GetX(ctx, fe.ID)
	assert.InDelta(t, 4*time.Minute.Seconds(), time.Until(second.NextRetryAt).Seconds(), 5)

	// The cap bounds every later retry.
	require.NoError(t, client.FailedEvent.UpdateOneID(fe.ID).SetRetryCount(9).Exec(ctx))
	require.NoError(t, svc.MarkRetried(ctx, fe.ID, errors.New("retry 10")))
	capped := client.FailedEvent.GetX(ctx, fe.ID)
	assert.LessOrEqual(t, time.Until(capped.NextRetryAt), 10*time.Minute+time.Second)
}
