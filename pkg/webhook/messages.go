package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/services"
)

// highPriorityEmojis fast-track the queue item their reaction creates.
var highPriorityEmojis = map[string]struct{}{
	"🔴": {},
	"‼️": {},
	"🚨": {},
	"⚠️": {},
}

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// extractHashtags returns lowercase tags without the leading #.
func extractHashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func (a *Adapter) handleMessagesUpsert(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[MessageData](env.Data)
	if err != nil {
		return err
	}

	owner := a.ownerJID(ctx, instanceID)
	var errs []error
	for i := range entries {
		entry := &entries[i]
		if entry.Message != nil && entry.Message.ReactionMessage != nil {
			if err := a.handleReaction(ctx, instanceID, owner, env, entry); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := a.storeMessage(ctx, instanceID, owner, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// storeMessage materializes dependencies, inserts the message, and
// enqueues hashtag scanning when the content carries tags. An FK
// violation gets exactly one materialize-and-retry before it counts as
// a failure.
func (a *Adapter) storeMessage(ctx context.Context, instanceID, owner string, entry *MessageData) error {
	if entry.Key.ID == "" {
		return fmt.Errorf("message entry has no key.id: %w", ErrMalformedPayload)
	}

	chatJID, err := NormalizeJID(entry.Key.RemoteJid)
	if err != nil {
		return fmt.Errorf("chat id for message %s: %w", entry.Key.ID, err)
	}

	senderJID, err := a.resolveSender(entry, chatJID, owner)
	if err != nil {
		return fmt.Errorf("sender for message %s: %w", entry.Key.ID, err)
	}
	fromMe := entry.Key.FromMe || (owner != "" && senderJID == owner)

	in := services.MessageInput{
		MessageID:      entry.Key.ID,
		InstanceID:     instanceID,
		ChatID:         chatJID,
		SenderJID:      senderJID,
		FromMe:         fromMe,
		MessageType:    mapMessageType(entry.MessageType),
		Content:        entry.Message.Text(),
		Timestamp:      NormalizeTimestamp(entry.MessageTimestamp),
		SourcePlatform: entry.Source,
		RawPayload:     redactedEntry(entry),
	}
	if entry.ContextInfo != nil {
		if entry.ContextInfo.StanzaID != "" {
			quoted := entry.ContextInfo.StanzaID
			in.QuotedMessageID = &quoted
		}
		in.IsForwarded = entry.ContextInfo.IsForwarded
		in.ForwardingScore = entry.ContextInfo.ForwardingScore
	}

	if err := a.materializeDependencies(ctx, instanceID, senderJID, chatJID, entry.PushName, fromMe, in.Timestamp); err != nil {
		return err
	}

	stored, err := a.messaging.UpsertMessage(ctx, in)
	if errors.Is(err, services.ErrFKDependency) {
		// One-shot recovery: a dependency row may have been deleted
		// between materialization and insert.
		if depErr := a.materializeDependencies(ctx, instanceID, senderJID, chatJID, entry.PushName, fromMe, in.Timestamp); depErr != nil {
			return depErr
		}
		stored, err = a.messaging.UpsertMessage(ctx, in)
	}
	if err != nil {
		return err
	}

	a.publish(ctx, EventNewMessage, map[string]any{
		"message_id":  stored.ID,
		"provider_id": stored.MessageID,
		"instance_id": instanceID,
		"chat_jid":    chatJID,
		"sender_jid":  senderJID,
		"from_me":     fromMe,
	})

	if tags := extractHashtags(in.Content); len(tags) > 0 {
		a.enqueueHashtagScan(ctx, instanceID, stored.ID, entry.Key.ID, chatJID, senderJID, in.Content, tags[0], fromMe, in)
	}
	return nil
}

// resolveSender picks the author JID: group messages carry it in
// key.participant, individual inbound messages in key.remoteJid, and
// from-me messages fall back to the owner.
func (a *Adapter) resolveSender(entry *MessageData, chatJID, owner string) (string, error) {
	raw := entry.Key.Participant
	if raw == "" {
		raw = entry.Participant
	}
	if raw == "" {
		if entry.Key.FromMe && owner != "" {
			return owner, nil
		}
		if IsGroupJID(chatJID) {
			return "", fmt.Errorf("group message without participant: %w", ErrUnresolvableJID)
		}
		return chatJID, nil
	}
	return NormalizeJID(raw)
}

// materializeDependencies creates the rows a message insert references:
// sender contact, chat contact (groups get both), chat row, and group
// placeholder. Order matters — the composite message FKs point at
// (contact, chat).
func (a *Adapter) materializeDependencies(ctx context.Context, instanceID, senderJID, chatJID, pushName string, fromMe bool, ts time.Time) error {
	_, err := a.messaging.UpsertContact(ctx, services.ContactInput{
		JID:        senderJID,
		InstanceID: instanceID,
		PushName:   pushName,
		IsMe:       fromMe,
	})
	if err != nil {
		return err
	}

	if chatJID != senderJID {
		if _, err := a.messaging.UpsertContact(ctx, services.ContactInput{
			JID:        chatJID,
			InstanceID: instanceID,
		}); err != nil {
			return err
		}
	}

	chatType := chat.TypeIndividual
	if IsGroupJID(chatJID) {
		chatType = chat.TypeGroup
	}
	if _, err := a.messaging.UpsertChat(ctx, services.ChatInput{
		ChatID:        chatJID,
		InstanceID:    instanceID,
		Type:          chatType,
		LastMessageTs: &ts,
	}); err != nil {
		return err
	}

	if chatType == chat.TypeGroup {
		if err := a.messaging.EnsureGroupPlaceholder(ctx, chatJID, instanceID); err != nil {
			return err
		}
	}
	return nil
}

// enqueueHashtagScan queues a message event for rule matching.
// Duplicate keys are expected on webhook replays and ignored.
func (a *Adapter) enqueueHashtagScan(ctx context.Context, instanceID, rowID, providerID, chatJID, senderJID, content, firstTag string, fromMe bool, in services.MessageInput) {
	data := models.QueueEventData{
		MessageID:  rowID,
		ProviderID: providerID,
		InstanceID: instanceID,
		ChatJid:    chatJID,
		SenderJid:  senderJID,
		Hashtag:    firstTag,
		Content:    content,
		FromMe:     fromMe,
		Timestamp:  in.Timestamp,
	}
	payload, err := data.ToMap()
	if err != nil {
		slog.Error("Failed to encode hashtag queue payload", "message_id", rowID, "error", err)
		return
	}

	_, err = a.queue.Enqueue(ctx, services.EnqueueInput{
		EventType:      actionqueueitem.EventTypeMessage,
		EventData:      payload,
		IdempotencyKey: fmt.Sprintf("message:%s:%s:hashtag", instanceID, providerID),
		Priority:       services.PriorityNormal,
	})
	if err != nil && !errors.Is(err, services.ErrDuplicate) {
		slog.Error("Failed to enqueue hashtag scan", "message_id", rowID, "error", err)
	}
}

// handleReaction stores the reaction and queues it for rule matching.
// An empty text is a removal: stored as the latest state, never queued.
func (a *Adapter) handleReaction(ctx context.Context, instanceID, owner string, env *Envelope, entry *MessageData) error {
	rm := entry.Message.ReactionMessage
	if rm.Key.ID == "" {
		return fmt.Errorf("reaction has no target message id: %w", ErrMalformedPayload)
	}

	reactor, err := a.resolveReactor(env, entry)
	if err != nil {
		return err
	}

	target, err := a.messaging.GetMessageByProviderID(ctx, rm.Key.ID, instanceID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("reaction target %s not materialized: %w", rm.Key.ID, services.ErrFKDependency)
		}
		return err
	}

	fromMe := entry.Key.FromMe || (owner != "" && reactor == owner)
	ts := NormalizeTimestamp(entry.MessageTimestamp)

	if _, err := a.messaging.UpsertReaction(ctx, services.ReactionInput{
		MessageID:  target.ID,
		InstanceID: instanceID,
		ReactorJID: reactor,
		Emoji:      rm.Text,
		FromMe:     fromMe,
		Timestamp:  ts,
	}); err != nil {
		return err
	}

	if rm.Text == "" {
		return nil
	}

	a.publish(ctx, EventNewReaction, map[string]any{
		"message_id":  target.ID,
		"instance_id": instanceID,
		"chat_jid":    target.ChatID,
		"reactor_jid": reactor,
		"emoji":       rm.Text,
	})

	data := models.QueueEventData{
		MessageID:  target.ID,
		ProviderID: target.MessageID,
		InstanceID: instanceID,
		ChatJid:    target.ChatID,
		SenderJid:  target.SenderJid,
		ReactorJid: reactor,
		Emoji:      rm.Text,
		Content:    target.Content,
		FromMe:     target.FromMe,
		Timestamp:  ts,
	}
	payload, err := data.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode reaction queue payload: %w", err)
	}

	priority := services.PriorityNormal
	if _, urgent := highPriorityEmojis[rm.Text]; urgent {
		priority = services.PriorityHigh
	}

	_, err = a.queue.Enqueue(ctx, services.EnqueueInput{
		EventType:      actionqueueitem.EventTypeReaction,
		EventData:      payload,
		IdempotencyKey: fmt.Sprintf("reaction:%s:%s:%s:%s", instanceID, target.MessageID, reactor, rm.Text),
		Priority:       priority,
	})
	if errors.Is(err, services.ErrDuplicate) {
		slog.Debug("Suppressed duplicate reaction queue item",
			"message_id", target.ID, "reactor_jid", reactor, "emoji", rm.Text)
		return nil
	}
	return err
}

// resolveReactor extracts the reacting account in priority order:
// key.participant, then the envelope sender, then key.remoteJid.
func (a *Adapter) resolveReactor(env *Envelope, entry *MessageData) (string, error) {
	for _, candidate := range []string{entry.Key.Participant, env.Sender, entry.Key.RemoteJid} {
		if candidate == "" {
			continue
		}
		jid, err := NormalizeJID(candidate)
		if err == nil {
			return jid, nil
		}
	}
	return "", fmt.Errorf("no resolvable reactor jid: %w", ErrUnresolvableJID)
}

func (a *Adapter) handleMessagesUpdate(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[MessageData](env.Data)
	if err != nil {
		return err
	}

	owner := a.ownerJID(ctx, instanceID)
	var errs []error
	for i := range entries {
		entry := &entries[i]
		if entry.Message != nil && entry.Message.ReactionMessage != nil {
			if err := a.handleReaction(ctx, instanceID, owner, env, entry); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := a.applyMessageUpdate(ctx, instanceID, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// applyMessageUpdate handles the two non-reaction update shapes:
// delivery status receipts and content edits.
func (a *Adapter) applyMessageUpdate(ctx context.Context, instanceID string, entry *MessageData) error {
	providerID := entry.Key.ID
	if providerID == "" && entry.Message != nil && entry.Message.ProtocolMessage != nil {
		providerID = entry.Message.ProtocolMessage.Key.ID
	}
	if providerID == "" {
		return fmt.Errorf("message update has no key.id: %w", ErrMalformedPayload)
	}

	if entry.Status != "" {
		participant := entry.Participant
		if participant == "" {
			participant = entry.Key.Participant
		}
		if participant != "" {
			if jid, err := NormalizeJID(participant); err == nil {
				participant = jid
			}
		}
		return a.messaging.AppendStatusUpdate(ctx, services.StatusUpdateInput{
			MessageID:      providerID,
			InstanceID:     instanceID,
			Status:         strings.ToLower(entry.Status),
			ParticipantJID: participant,
			StatusTs:       NormalizeTimestamp(entry.MessageTimestamp),
		})
	}

	if text := entry.Message.Text(); text != "" {
		existing, err := a.messaging.GetMessageByProviderID(ctx, providerID, instanceID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return fmt.Errorf("edit target %s not materialized: %w", providerID, services.ErrFKDependency)
			}
			return err
		}
		_, err = a.messaging.UpsertMessage(ctx, services.MessageInput{
			MessageID:  providerID,
			InstanceID: instanceID,
			ChatID:     existing.ChatID,
			SenderJID:  existing.SenderJid,
			FromMe:     existing.FromMe,
			Content:    text,
			Timestamp:  existing.Timestamp,
		})
		return err
	}

	slog.Debug("Ignoring message update without status or content",
		"instance_id", instanceID, "provider_id", providerID)
	return nil
}

func (a *Adapter) handleMessagesDelete(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[MessageData](env.Data)
	if err != nil {
		return err
	}

	var errs []error
	for i := range entries {
		providerID := entries[i].Key.ID
		if providerID == "" && entries[i].Message != nil && entries[i].Message.ProtocolMessage != nil {
			providerID = entries[i].Message.ProtocolMessage.Key.ID
		}
		if providerID == "" {
			errs = append(errs, fmt.Errorf("delete entry has no key.id: %w", ErrMalformedPayload))
			continue
		}
		err := a.messaging.MarkMessageRevoked(ctx, providerID, instanceID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// mapMessageType folds the provider's container names onto the stored
// enum; unknown containers are kept as unsupported rather than dropped.
func mapMessageType(providerType string) message.MessageType {
	switch strings.TrimSuffix(providerType, "Message") {
	case "", "conversation", "extendedText":
		return message.MessageTypeText
	case "image":
		return message.MessageTypeImage
	case "video":
		return message.MessageTypeVideo
	case "audio", "ptt":
		return message.MessageTypeAudio
	case "document", "documentWithCaption":
		return message.MessageTypeDocument
	case "sticker":
		return message.MessageTypeSticker
	case "location", "liveLocation":
		return message.MessageTypeLocation
	case "contact":
		return message.MessageTypeContactCard
	case "contactsArray":
		return message.MessageTypeContactCardMulti
	case "order":
		return message.MessageTypeOrder
	case "reaction":
		return message.MessageTypeReaction
	case "edited":
		return message.MessageTypeEditedMessage
	case "call":
		return message.MessageTypeCallLog
	default:
		return message.MessageTypeUnsupported
	}
}

// redactedEntry re-encodes one message entry for raw_payload storage.
func redactedEntry(entry *MessageData) map[string]any {
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return Redact(m)
}
