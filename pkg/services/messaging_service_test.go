package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/test/util"
)

func newMessagingService(t *testing.T) (*MessagingService, *ent.Client) {
	t.Helper()
	client := util.NewTestClient(t)
	_, err := client.Client.Instance.Create().
		SetID("inst-1").
		SetOwnerJid("owner@s.whatsapp.net").
		Save(context.Background())
	require.NoError(t, err)
	return NewMessagingService(client.Client), client.Client
}

func seedChat(t *testing.T, svc *MessagingService, jid string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.UpsertContact(ctx, ContactInput{JID: jid, InstanceID: "inst-1"})
	require.NoError(t, err)
	_, err = svc.UpsertChat(ctx, ChatInput{ChatID: jid, InstanceID: "inst-1", Type: chat.TypeIndividual})
	require.NoError(t, err)
}

func storeMessage(t *testing.T, svc *MessagingService, providerID, content string) *ent.Message {
	t.Helper()
	msg, err := svc.UpsertMessage(context.Background(), MessageInput{
		MessageID:  providerID,
		InstanceID: "inst-1",
		ChatID:     "ana@s.whatsapp.net",
		SenderJID:  "ana@s.whatsapp.net",
		Content:    content,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)
	return msg
}

func TestMessagingService_UpsertContact(t *testing.T) {
	svc, _ := newMessagingService(t)
	ctx := context.Background()

	first, err := svc.UpsertContact(ctx, ContactInput{
		JID:        "ana@s.whatsapp.net",
		InstanceID: "inst-1",
		PushName:   "Ana",
		IsMe:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.PushName)
	assert.True(t, first.IsMe)

	t.Run("omitted fields are not cleared", func(t *testing.T) {
		merged, err := svc.UpsertContact(ctx, ContactInput{
			JID:        "ana@s.whatsapp.net",
			InstanceID: "inst-1",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, merged.ID)
		assert.Equal(t, "Ana", merged.PushName)
		assert.True(t, merged.IsMe)
	})

	t.Run("supplied fields move forward", func(t *testing.T) {
		blocked := true
		merged, err := svc.UpsertContact(ctx, ContactInput{
			JID:        "ana@s.whatsapp.net",
			InstanceID: "inst-1",
			PushName:   "Ana Silva",
			IsBlocked:  &blocked,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana Silva", merged.PushName)
		assert.True(t, merged.IsBlocked)
	})

	t.Run("jid required", func(t *testing.T) {
		_, err := svc.UpsertContact(ctx, ContactInput{InstanceID: "inst-1"})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessagingService_UpsertChat(t *testing.T) {
	svc, _ := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")

	newer := time.Now()
	older := newer.Add(-time.Hour)

	unread := 3
	advanced, err := svc.UpsertChat(ctx, ChatInput{
		ChatID:        "ana@s.whatsapp.net",
		InstanceID:    "inst-1",
		Type:          chat.TypeIndividual,
		UnreadCount:   &unread,
		LastMessageTs: &newer,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, advanced.UnreadCount)
	require.NotNil(t, advanced.LastMessageTs)
	assert.WithinDuration(t, newer, *advanced.LastMessageTs, time.Second)

	t.Run("last_message_ts never regresses", func(t *testing.T) {
		stale, err := svc.UpsertChat(ctx, ChatInput{
			ChatID:        "ana@s.whatsapp.net",
			InstanceID:    "inst-1",
			Type:          chat.TypeIndividual,
			LastMessageTs: &older,
		})
		require.NoError(t, err)
		require.NotNil(t, stale.LastMessageTs)
		assert.WithinDuration(t, newer, *stale.LastMessageTs, time.Second)
	})
}

func TestMessagingService_GroupLifecycle(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	groupJID := "12345@g.us"

	require.NoError(t, svc.EnsureGroupPlaceholder(ctx, groupJID, "inst-1"))
	placeholder, err := svc.GetGroup(ctx, groupJID, "inst-1")
	require.NoError(t, err)
	assert.Empty(t, placeholder.Subject)
	assert.False(t, placeholder.SubjectAuthoritative)

	subject := "Familia"
	authoritative, err := svc.UpsertGroup(ctx, GroupInput{
		GroupJID:   groupJID,
		InstanceID: "inst-1",
		Subject:    &subject,
		OwnerJID:   "owner@s.whatsapp.net",
	})
	require.NoError(t, err)
	assert.Equal(t, placeholder.ID, authoritative.ID)
	assert.Equal(t, "Familia", authoritative.Subject)
	assert.True(t, authoritative.SubjectAuthoritative)

	t.Run("placeholder after real data keeps the subject", func(t *testing.T) {
		require.NoError(t, svc.EnsureGroupPlaceholder(ctx, groupJID, "inst-1"))
		g, err := svc.GetGroup(ctx, groupJID, "inst-1")
		require.NoError(t, err)
		assert.Equal(t, "Familia", g.Subject)
	})

	t.Run("participant actions", func(t *testing.T) {
		members := []string{"ana@s.whatsapp.net", "bia@s.whatsapp.net"}
		require.NoError(t, svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: ParticipantAdd, Participants: members,
		}))
		assert.Equal(t, 2, client.GroupParticipant.Query().CountX(ctx))

		// Re-adding an existing member is a no-op.
		require.NoError(t, svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: ParticipantAdd, Participants: members[:1],
		}))
		assert.Equal(t, 2, client.GroupParticipant.Query().CountX(ctx))

		require.NoError(t, svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: ParticipantPromote, Participants: members[:1],
		}))
		admin := client.GroupParticipant.Query().
			Where(groupparticipant.ParticipantJid("ana@s.whatsapp.net")).
			OnlyX(ctx)
		assert.True(t, admin.IsAdmin)

		require.NoError(t, svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: ParticipantDemote, Participants: members[:1],
		}))
		demoted := client.GroupParticipant.Query().
			Where(groupparticipant.ParticipantJid("ana@s.whatsapp.net")).
			OnlyX(ctx)
		assert.False(t, demoted.IsAdmin)

		require.NoError(t, svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: ParticipantRemove, Participants: members,
		}))
		assert.Equal(t, 0, client.GroupParticipant.Query().CountX(ctx))

		err := svc.ApplyParticipantUpdate(ctx, ParticipantUpdateInput{
			GroupJID: groupJID, InstanceID: "inst-1", Action: "ban", Participants: members[:1],
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessagingService_UpsertMessage(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")

	stored := storeMessage(t, svc, "MSG-1", "hello")
	assert.Equal(t, message.MessageTypeText, stored.MessageType)
	assert.False(t, stored.IsEdited)

	change := client.EntityChange.Query().
		Where(entitychange.EntityID(stored.ID)).
		OnlyX(ctx)
	assert.Equal(t, TableMessages, change.TableName)
	assert.Equal(t, entitychange.OperationINSERT, change.Operation)
	assert.False(t, change.Processed)

	t.Run("same key becomes an edit", func(t *testing.T) {
		edited := storeMessage(t, svc, "MSG-1", "hello again")
		assert.Equal(t, stored.ID, edited.ID)
		assert.Equal(t, "hello again", edited.Content)
		assert.True(t, edited.IsEdited)
		require.NotNil(t, edited.LastEditedAt)

		updates := client.EntityChange.Query().
			Where(
				entitychange.EntityID(stored.ID),
				entitychange.OperationEQ(entitychange.OperationUPDATE),
			).
			CountX(ctx)
		assert.Equal(t, 1, updates)
	})

	t.Run("missing instance surfaces as fk dependency", func(t *testing.T) {
		_, err := svc.UpsertMessage(ctx, MessageInput{
			MessageID:  "MSG-GHOST",
			InstanceID: "no-such-instance",
			ChatID:     "ana@s.whatsapp.net",
			SenderJID:  "ana@s.whatsapp.net",
			Timestamp:  time.Now(),
		})
		assert.ErrorIs(t, err, ErrFKDependency)
	})

	t.Run("zero timestamp rejected", func(t *testing.T) {
		_, err := svc.UpsertMessage(ctx, MessageInput{
			MessageID:  "MSG-2",
			InstanceID: "inst-1",
			ChatID:     "ana@s.whatsapp.net",
			SenderJID:  "ana@s.whatsapp.net",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessagingService_MarkMessageRevoked(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")
	stored := storeMessage(t, svc, "MSG-1", "delete me")

	require.NoError(t, svc.MarkMessageRevoked(ctx, "MSG-1", "inst-1"))

	revoked := client.Message.GetX(ctx, stored.ID)
	assert.Equal(t, message.MessageTypeRevoked, revoked.MessageType)
	assert.Empty(t, revoked.Content)

	assert.ErrorIs(t, svc.MarkMessageRevoked(ctx, "MSG-MISSING", "inst-1"), ErrNotFound)
}

func TestMessagingService_UpsertReaction(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")
	stored := storeMessage(t, svc, "MSG-1", "nice")

	first, err := svc.UpsertReaction(ctx, ReactionInput{
		MessageID:  stored.ID,
		InstanceID: "inst-1",
		ReactorJID: "owner@s.whatsapp.net",
		Emoji:      "✅",
	})
	require.NoError(t, err)
	assert.Equal(t, "✅", first.ReactionEmoji)

	t.Run("reactor keeps a single row", func(t *testing.T) {
		replaced, err := svc.UpsertReaction(ctx, ReactionInput{
			MessageID:  stored.ID,
			InstanceID: "inst-1",
			ReactorJID: "owner@s.whatsapp.net",
			Emoji:      "🔥",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, replaced.ID)
		assert.Equal(t, "🔥", replaced.ReactionEmoji)
		assert.Equal(t, 1, client.MessageReaction.Query().CountX(ctx))
	})

	t.Run("removal is stored as empty emoji", func(t *testing.T) {
		removed, err := svc.UpsertReaction(ctx, ReactionInput{
			MessageID:  stored.ID,
			InstanceID: "inst-1",
			ReactorJID: "owner@s.whatsapp.net",
			Emoji:      "",
		})
		require.NoError(t, err)
		assert.Empty(t, removed.ReactionEmoji)
		assert.Equal(t, 1, client.MessageReaction.Query().CountX(ctx))
	})

	t.Run("second reactor gets its own row", func(t *testing.T) {
		_, err := svc.UpsertReaction(ctx, ReactionInput{
			MessageID:  stored.ID,
			InstanceID: "inst-1",
			ReactorJID: "ana@s.whatsapp.net",
			Emoji:      "✅",
		})
		require.NoError(t, err)
		rows := client.MessageReaction.Query().
			Where(messagereaction.MessageID(stored.ID)).
			CountX(ctx)
		assert.Equal(t, 2, rows)
	})

	t.Run("reactor required", func(t *testing.T) {
		_, err := svc.UpsertReaction(ctx, ReactionInput{MessageID: stored.ID, InstanceID: "inst-1"})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessagingService_AppendStatusUpdate(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")
	stored := storeMessage(t, svc, "MSG-1", "hi")

	require.NoError(t, svc.AppendStatusUpdate(ctx, StatusUpdateInput{
		MessageID:  stored.ID,
		InstanceID: "inst-1",
		Status:     "delivered",
	}))
	require.NoError(t, svc.AppendStatusUpdate(ctx, StatusUpdateInput{
		MessageID:  stored.ID,
		InstanceID: "inst-1",
		Status:     "read",
	}))
	assert.Equal(t, 2, client.MessageStatusUpdate.Query().CountX(ctx))

	err := svc.AppendStatusUpdate(ctx, StatusUpdateInput{
		MessageID:  stored.ID,
		InstanceID: "inst-1",
		Status:     "teleported",
	})
	assert.True(t, IsValidationError(err))
}

func TestMessagingService_UpsertCallLog(t *testing.T) {
	svc, client := newMessagingService(t)
	ctx := context.Background()
	seedChat(t, svc, "ana@s.whatsapp.net")

	require.NoError(t, svc.UpsertCallLog(ctx, CallLogInput{
		CallLogID:  "CALL-1",
		InstanceID: "inst-1",
		ChatID:     "ana@s.whatsapp.net",
		FromJID:    "ana@s.whatsapp.net",
		Outcome:    calllog.OutcomeMissed,
	}))

	// The terminate event for the same call id converges the final state.
	require.NoError(t, svc.UpsertCallLog(ctx, CallLogInput{
		CallLogID:       "CALL-1",
		InstanceID:      "inst-1",
		ChatID:          "ana@s.whatsapp.net",
		FromJID:         "ana@s.whatsapp.net",
		Outcome:         calllog.OutcomeAnswered,
		DurationSeconds: 95,
	}))

	stored := client.CallLog.Query().OnlyX(ctx)
	assert.Equal(t, calllog.OutcomeAnswered, stored.Outcome)
	assert.Equal(t, 95, stored.DurationSeconds)
}
