package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/test/util"
)

// capturingPublisher records fan-out events instead of NOTIFYing.
type capturingPublisher struct {
	events []capturedEvent
}

type capturedEvent struct {
	eventType string
	payload   map[string]any
}

func (p *capturingPublisher) Publish(_ context.Context, eventType string, payload map[string]any) {
	p.events = append(p.events, capturedEvent{eventType: eventType, payload: payload})
}

func newTestAdapter(t *testing.T) (*Adapter, *ent.Client, *capturingPublisher) {
	t.Helper()
	client := util.NewTestClient(t)
	pub := &capturingPublisher{}
	adapter := NewAdapter(
		services.NewMessagingService(client.Client),
		services.NewQueueService(client.Client, 24*time.Hour, 5*time.Minute),
		services.NewRecoveryService(client.Client, 10*time.Minute),
		pub,
		3,
	)
	return adapter, client.Client, pub
}

func seedInstance(t *testing.T, client *ent.Client, ownerJID string) {
	t.Helper()
	_, err := client.Instance.Create().
		SetID("inst-1").
		SetOwnerJid(ownerJID).
		Save(context.Background())
	require.NoError(t, err)
}

func upsertEnvelope(t *testing.T, data any) *Envelope {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &Envelope{Event: "messages.upsert", Instance: "inst-1", Data: raw}
}

func textMessageData(messageID, chatJID, text string, ts int64) map[string]any {
	return map[string]any{
		"key": map[string]any{
			"remoteJid": chatJID,
			"fromMe":    false,
			"id":        messageID,
		},
		"pushName":         "Ana",
		"message":          map[string]any{"conversation": text},
		"messageTimestamp": ts,
	}
}

func reactionData(targetID, chatJID, reactorJID, emoji string, ts int64) map[string]any {
	return map[string]any{
		"key": map[string]any{
			"remoteJid":   chatJID,
			"fromMe":      false,
			"id":          fmt.Sprintf("REACT-%s-%s", targetID, emoji),
			"participant": reactorJID,
		},
		"message": map[string]any{
			"reactionMessage": map[string]any{
				"key":  map[string]any{"id": targetID},
				"text": emoji,
			},
		},
		"messageTimestamp": ts,
	}
}

func TestAdapter_StoresMessageAndMaterializesDependencies(t *testing.T) {
	adapter, client, pub := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	env := upsertEnvelope(t, textMessageData("MSG-1", "5511999999999@s.whatsapp.net", "hello", 1724600000))
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", env))

	msg := client.Message.Query().OnlyX(ctx)
	assert.Equal(t, "MSG-1", msg.MessageID)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "5511999999999@s.whatsapp.net", msg.ChatID)
	assert.Equal(t, "5511999999999@s.whatsapp.net", msg.SenderJid)
	assert.False(t, msg.FromMe)

	// Contact and chat rows materialized before the insert.
	assert.Equal(t, 1, client.Contact.Query().CountX(ctx))
	assert.Equal(t, 1, client.Chat.Query().CountX(ctx))

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventNewMessage, pub.events[0].eventType)
	assert.Equal(t, "inst-1", pub.events[0].payload["instance_id"])
}

func TestAdapter_GroupMessageResolvesParticipant(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	data := textMessageData("MSG-G1", "12036304@g.us", "group hello", 1724600000)
	data["key"].(map[string]any)["participant"] = "5511888888888:12@s.whatsapp.net"
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", upsertEnvelope(t, data)))

	msg := client.Message.Query().OnlyX(ctx)
	assert.Equal(t, "12036304@g.us", msg.ChatID)
	assert.Equal(t, "5511888888888@s.whatsapp.net", msg.SenderJid)

	// Group chats get both contacts, the chat row, and a group
	// placeholder.
	assert.Equal(t, 2, client.Contact.Query().CountX(ctx))
	assert.Equal(t, 1, client.Group.Query().CountX(ctx))
}

func TestAdapter_HashtagEnqueuesMessageEvent(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	env := upsertEnvelope(t, textMessageData("MSG-H1", "5511999999999@s.whatsapp.net", "pagar aluguel #tarefa", 1724600000))
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", env))

	item := client.ActionQueueItem.Query().OnlyX(ctx)
	assert.Equal(t, actionqueueitem.EventTypeMessage, item.EventType)
	assert.Equal(t, actionqueueitem.StatusPending, item.Status)

	data, err := models.QueueEventDataFromMap(item.EventData)
	require.NoError(t, err)
	assert.Equal(t, "tarefa", data.Hashtag)
	assert.Equal(t, "pagar aluguel #tarefa", data.Content)
}

func TestAdapter_ReactionFlow(t *testing.T) {
	adapter, client, pub := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	chatJID := "5511999999999@s.whatsapp.net"
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1",
		upsertEnvelope(t, textMessageData("MSG-R1", chatJID, "comprar leite", 1724600000))))
	pub.events = nil

	react := upsertEnvelope(t, reactionData("MSG-R1", chatJID, "5511777777777@s.whatsapp.net", "✅", 1724600100))
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", react))

	reaction := client.MessageReaction.Query().OnlyX(ctx)
	assert.Equal(t, "✅", reaction.ReactionEmoji)
	assert.Equal(t, "5511777777777@s.whatsapp.net", reaction.ReactorJid)

	item := client.ActionQueueItem.Query().OnlyX(ctx)
	assert.Equal(t, actionqueueitem.EventTypeReaction, item.EventType)
	assert.Equal(t, services.PriorityNormal, item.Priority)

	data, err := models.QueueEventDataFromMap(item.EventData)
	require.NoError(t, err)
	assert.Equal(t, "✅", data.Emoji)
	assert.Equal(t, "comprar leite", data.Content)
	assert.Equal(t, "5511777777777@s.whatsapp.net", data.ReactorJid)

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventNewReaction, pub.events[0].eventType)

	t.Run("duplicate reaction suppressed", func(t *testing.T) {
		require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", react))
		assert.Equal(t, 1, client.ActionQueueItem.Query().CountX(ctx))
	})

	t.Run("urgent emoji fast-tracked", func(t *testing.T) {
		urgent := upsertEnvelope(t, reactionData("MSG-R1", chatJID, "5511777777777@s.whatsapp.net", "🚨", 1724600200))
		require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", urgent))

		item := client.ActionQueueItem.Query().
			Where(actionqueueitem.PriorityEQ(services.PriorityHigh)).
			OnlyX(ctx)
		data, err := models.QueueEventDataFromMap(item.EventData)
		require.NoError(t, err)
		assert.Equal(t, "🚨", data.Emoji)
	})
}

func TestAdapter_ReactionRemovalStoredNotQueued(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	chatJID := "5511999999999@s.whatsapp.net"
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1",
		upsertEnvelope(t, textMessageData("MSG-RM1", chatJID, "task", 1724600000))))
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1",
		upsertEnvelope(t, reactionData("MSG-RM1", chatJID, "5511777777777@s.whatsapp.net", "✅", 1724600100))))

	removal := upsertEnvelope(t, reactionData("MSG-RM1", chatJID, "5511777777777@s.whatsapp.net", "", 1724600200))
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", removal))

	reaction := client.MessageReaction.Query().OnlyX(ctx)
	assert.Equal(t, "", reaction.ReactionEmoji)

	// The removal must not have queued a second item.
	assert.Equal(t, 1, client.ActionQueueItem.Query().CountX(ctx))
}

func TestAdapter_ReactionToUnknownMessageRecordsFailure(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	env := upsertEnvelope(t, reactionData("NEVER-SEEN", "5511999999999@s.whatsapp.net", "5511777777777@s.whatsapp.net", "✅", 1724600100))
	err := adapter.ProcessIncomingEvent(ctx, "inst-1", env)
	require.Error(t, err)

	fe := client.FailedEvent.Query().OnlyX(ctx)
	assert.Equal(t, failedevent.ErrorKindFkDependency, fe.ErrorKind)
	assert.Equal(t, "messages.upsert", fe.EventType)
	// The adapter's configured retry cap lands on the stored failure.
	assert.Equal(t, 3, fe.MaxRetries)
}

func TestAdapter_FailurePayloadIsRedacted(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	ctx := context.Background()

	env := upsertEnvelope(t, textMessageData("MSG-X1", "no-canonical-form", "hi", 1724600000))
	env.APIKey = "super-secret"
	require.Error(t, adapter.ProcessIncomingEvent(ctx, "inst-1", env))

	fe := client.FailedEvent.Query().OnlyX(ctx)
	assert.Equal(t, failedevent.ErrorKindValidation, fe.ErrorKind)
	assert.Equal(t, "[REDACTED]", fe.RawPayload["apikey"])
}

func TestAdapter_UnknownEventTypeIgnored(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	ctx := context.Background()

	env := &Envelope{Event: "presence.update", Instance: "inst-1", Data: json.RawMessage(`{}`)}
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", env))
	assert.Equal(t, 0, client.FailedEvent.Query().CountX(ctx))
}

func TestAdapter_MessageUpdateAppliesStatus(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	chatJID := "5511999999999@s.whatsapp.net"
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1",
		upsertEnvelope(t, textMessageData("MSG-S1", chatJID, "status me", 1724600000))))

	raw, err := json.Marshal(map[string]any{
		"key": map[string]any{
			"remoteJid": chatJID,
			"id":        "MSG-S1",
		},
		"status":           "READ",
		"messageTimestamp": 1724600100,
	})
	require.NoError(t, err)
	update := &Envelope{Event: "messages.update", Instance: "inst-1", Data: raw}
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", update))

	assert.Equal(t, 1, client.MessageStatusUpdate.Query().CountX(ctx))
}

func TestAdapter_MessagesDeleteMarksRevoked(t *testing.T) {
	adapter, client, _ := newTestAdapter(t)
	seedInstance(t, client, "owner@s.whatsapp.net")
	ctx := context.Background()

	chatJID := "5511999999999@s.whatsapp.net"
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1",
		upsertEnvelope(t, textMessageData("MSG-D1", chatJID, "delete me", 1724600000))))

	raw, err := json.Marshal(map[string]any{
		"key": map[string]any{"remoteJid": chatJID, "id": "MSG-D1"},
	})
	require.NoError(t, err)
	del := &Envelope{Event: "messages.delete", Instance: "inst-1", Data: raw}
	require.NoError(t, adapter.ProcessIncomingEvent(ctx, "inst-1", del))

	msg := client.Message.Query().OnlyX(ctx)
	assert.Equal(t, message.MessageTypeRevoked, msg.MessageType)
	assert.Empty(t, msg.Content)
}
