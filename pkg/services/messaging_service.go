package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
)

// ContactInput carries normalized contact data from the webhook adapter.
// Zero values mean "not supplied" and are never written over existing data.
type ContactInput struct {
	JID               string
	InstanceID        string
	PushName          string
	VerifiedName      string
	ProfilePictureURL string
	IsBusiness        bool
	IsMe              bool
	IsBlocked         *bool
}

// ChatInput carries normalized chat data.
type ChatInput struct {
	ChatID        string
	InstanceID    string
	Type          chat.Type
	UnreadCount   *int
	Archived      *bool
	Pinned        *bool
	Muted         *bool
	MuteEndTs     *time.Time
	LastMessageTs *time.Time
}

// GroupInput carries authoritative group data from a groups event.
type GroupInput struct {
	GroupJID    string
	InstanceID  string
	Subject     *string
	OwnerJID    string
	Description string
	CreationTs  *time.Time
	IsLocked    *bool
}

// ParticipantAction is one of add, remove, promote, demote.
type ParticipantAction string

// Participant actions from group.participants.update events.
const (
	ParticipantAdd     ParticipantAction = "add"
	ParticipantRemove  ParticipantAction = "remove"
	ParticipantPromote ParticipantAction = "promote"
	ParticipantDemote  ParticipantAction = "demote"
)

// ParticipantUpdateInput applies one action to a set of participants.
type ParticipantUpdateInput struct {
	GroupJID     string
	InstanceID   string
	Action       ParticipantAction
	Participants []string
}

// MessageInput carries a fully normalized message. Dependency rows
// (sender contact, chat contact, chat, group placeholder) must exist.
type MessageInput struct {
	MessageID       string
	InstanceID      string
	ChatID          string
	SenderJID       string
	FromMe          bool
	MessageType     message.MessageType
	Content         string
	Timestamp       time.Time
	QuotedMessageID *string
	IsForwarded     bool
	ForwardingScore int
	SourcePlatform  string
	RawPayload      map[string]any
}

// ReactionInput carries one reaction event. An empty Emoji denotes
// removal and is stored as-is.
type ReactionInput struct {
	MessageID  string
	InstanceID string
	ReactorJID string
	Emoji      string
	FromMe     bool
	Timestamp  time.Time
}

// StatusUpdateInput appends one delivery-status entry.
type StatusUpdateInput struct {
	MessageID      string
	InstanceID     string
	Status         string
	ParticipantJID string
	StatusTs       time.Time
}

// CallLogInput carries one call event.
type CallLogInput struct {
	CallLogID       string
	InstanceID      string
	ChatID          string
	FromJID         string
	FromMe          bool
	StartTs         time.Time
	IsVideo         bool
	DurationSeconds int
	Outcome         calllog.Outcome
}

// MessagingService is the storage gateway for instance-owned messaging
// rows. Every upsert is ON-CONFLICT-by-natural-key with a per-field
// merge policy, and mutations of subscribed tables append an
// EntityChange row in the same transaction.
type MessagingService struct {
	client *ent.Client
}

// NewMessagingService creates a new MessagingService.
func NewMessagingService(client *ent.Client) *MessagingService {
	if client == nil {
		panic("NewMessagingService: client must not be nil")
	}
	return &MessagingService{client: client}
}

// GetInstance returns the instance row for a provider instance name.
func (s *MessagingService) GetInstance(ctx context.Context, instanceID string) (*ent.Instance, error) {
	inst, err := s.client.Instance.Get(ctx, instanceID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("instance %q: %w", instanceID, ErrNotFound)
	}
	return inst, err
}

// SetConnectionState updates the cached provider connection state.
func (s *MessagingService) SetConnectionState(ctx context.Context, instanceID string, state instance.ConnectionState) error {
	err := s.client.Instance.UpdateOneID(instanceID).
		SetConnectionState(state).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("instance %q: %w", instanceID, ErrNotFound)
	}
	return err
}

// UpsertContact inserts or merges a contact. push_name, verified_name
// and profile_picture_url only move forward (never cleared by an event
// that omits them), and is_me is never cleared once true.
func (s *MessagingService) UpsertContact(ctx context.Context, in ContactInput) (*ent.Contact, error) {
	if in.JID == "" {
		return nil, NewValidationError("jid", "contact jid is required")
	}

	create := s.client.Contact.Create().
		SetID(uuid.New().String()).
		SetJid(in.JID).
		SetInstanceID(in.InstanceID).
		SetIsBusiness(in.IsBusiness).
		SetIsMe(in.IsMe)
	if in.PushName != "" {
		create.SetPushName(in.PushName)
	}
	if in.VerifiedName != "" {
		create.SetVerifiedName(in.VerifiedName)
	}
	if in.ProfilePictureURL != "" {
		create.SetProfilePictureURL(in.ProfilePictureURL)
	}
	if in.IsBlocked != nil {
		create.SetIsBlocked(*in.IsBlocked)
	}

	err := create.
		OnConflictColumns(contact.FieldJid, contact.FieldInstanceID).
		Update(func(u *ent.ContactUpsert) {
			if in.PushName != "" {
				u.SetPushName(in.PushName)
			}
			if in.VerifiedName != "" {
				u.SetVerifiedName(in.VerifiedName)
			}
			if in.ProfilePictureURL != "" {
				u.SetProfilePictureURL(in.ProfilePictureURL)
			}
			if in.IsBusiness {
				u.SetIsBusiness(true)
			}
			if in.IsMe {
				u.SetIsMe(true)
			}
			if in.IsBlocked != nil {
				u.SetIsBlocked(*in.IsBlocked)
			}
			u.SetLastUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact %s: %w", in.JID, err)
	}

	return s.client.Contact.Query().
		Where(contact.Jid(in.JID), contact.InstanceID(in.InstanceID)).
		Only(ctx)
}

// GetContact returns the contact row for a JID.
func (s *MessagingService) GetContact(ctx context.Context, jid, instanceID string) (*ent.Contact, error) {
	c, err := s.client.Contact.Query().
		Where(contact.Jid(jid), contact.InstanceID(instanceID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("contact %q: %w", jid, ErrNotFound)
	}
	return c, err
}

// UpsertChat inserts or merges a chat. unread_count and flags are
// overwritten as given; last_message_ts only moves forward.
func (s *MessagingService) UpsertChat(ctx context.Context, in ChatInput) (*ent.Chat, error) {
	if in.ChatID == "" {
		return nil, NewValidationError("chat_id", "chat id is required")
	}

	create := s.client.Chat.Create().
		SetID(uuid.New().String()).
		SetChatID(in.ChatID).
		SetInstanceID(in.InstanceID).
		SetType(in.Type).
		SetNillableMuteEndTs(in.MuteEndTs).
		SetNillableLastMessageTs(in.LastMessageTs)
	if in.UnreadCount != nil {
		create.SetUnreadCount(*in.UnreadCount)
	}
	if in.Archived != nil {
		create.SetArchived(*in.Archived)
	}
	if in.Pinned != nil {
		create.SetPinned(*in.Pinned)
	}
	if in.Muted != nil {
		create.SetMuted(*in.Muted)
	}

	err := create.
		OnConflictColumns(chat.FieldChatID, chat.FieldInstanceID).
		Update(func(u *ent.ChatUpsert) {
			if in.UnreadCount != nil {
				u.SetUnreadCount(*in.UnreadCount)
			}
			if in.Archived != nil {
				u.SetArchived(*in.Archived)
			}
			if in.Pinned != nil {
				u.SetPinned(*in.Pinned)
			}
			if in.Muted != nil {
				u.SetMuted(*in.Muted)
			}
			if in.MuteEndTs != nil {
				u.SetMuteEndTs(*in.MuteEndTs)
			}
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert chat %s: %w", in.ChatID, err)
	}

	// last_message_ts is monotonically non-decreasing: the conflict
	// branch above never touches it, this conditional update does.
	if in.LastMessageTs != nil {
		_, err = s.client.Chat.Update().
			Where(
				chat.ChatID(in.ChatID),
				chat.InstanceID(in.InstanceID),
				chat.Or(
					chat.LastMessageTsIsNil(),
					chat.LastMessageTsLT(*in.LastMessageTs),
				),
			).
			SetLastMessageTs(*in.LastMessageTs).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to advance last_message_ts for chat %s: %w", in.ChatID, err)
		}
	}

	return s.client.Chat.Query().
		Where(chat.ChatID(in.ChatID), chat.InstanceID(in.InstanceID)).
		Only(ctx)
}

// EnsureGroupPlaceholder inserts a subject-less group row if absent so
// that group messages can reference it. It never updates anything:
// subjects belong to the groups-event path exclusively.
func (s *MessagingService) EnsureGroupPlaceholder(ctx context.Context, groupJID, instanceID string) error {
	err := s.client.Group.Create().
		SetID(uuid.New().String()).
		SetGroupJid(groupJID).
		SetInstanceID(instanceID).
		OnConflictColumns(group.FieldGroupJid, group.FieldInstanceID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure group placeholder %s: %w", groupJID, err)
	}
	return nil
}

// UpsertGroup writes authoritative group fields from a groups event.
// This is the only path that may set a non-null subject.
func (s *MessagingService) UpsertGroup(ctx context.Context, in GroupInput) (*ent.Group, error) {
	if in.GroupJID == "" {
		return nil, NewValidationError("group_jid", "group jid is required")
	}

	create := s.client.Group.Create().
		SetID(uuid.New().String()).
		SetGroupJid(in.GroupJID).
		SetInstanceID(in.InstanceID).
		SetNillableCreationTs(in.CreationTs)
	if in.Subject != nil {
		create.SetSubject(*in.Subject).SetSubjectAuthoritative(true)
	}
	if in.OwnerJID != "" {
		create.SetOwnerJid(in.OwnerJID)
	}
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if in.IsLocked != nil {
		create.SetIsLocked(*in.IsLocked)
	}

	err := create.
		OnConflictColumns(group.FieldGroupJid, group.FieldInstanceID).
		Update(func(u *ent.GroupUpsert) {
			if in.Subject != nil {
				u.SetSubject(*in.Subject)
				u.SetSubjectAuthoritative(true)
			}
			if in.OwnerJID != "" {
				u.SetOwnerJid(in.OwnerJID)
			}
			if in.Description != "" {
				u.SetDescription(in.Description)
			}
			if in.CreationTs != nil {
				u.SetCreationTs(*in.CreationTs)
			}
			if in.IsLocked != nil {
				u.SetIsLocked(*in.IsLocked)
			}
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert group %s: %w", in.GroupJID, err)
	}

	return s.GetGroup(ctx, in.GroupJID, in.InstanceID)
}

// GetGroup returns the group row for a group JID.
func (s *MessagingService) GetGroup(ctx context.Context, groupJID, instanceID string) (*ent.Group, error) {
	g, err := s.client.Group.Query().
		Where(group.GroupJid(groupJID), group.InstanceID(instanceID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("group %q: %w", groupJID, ErrNotFound)
	}
	return g, err
}

// ApplyParticipantUpdate applies one add/remove/promote/demote action.
// The group placeholder is materialized first if needed.
func (s *MessagingService) ApplyParticipantUpdate(ctx context.Context, in ParticipantUpdateInput) error {
	if err := s.EnsureGroupPlaceholder(ctx, in.GroupJID, in.InstanceID); err != nil {
		return err
	}
	g, err := s.GetGroup(ctx, in.GroupJID, in.InstanceID)
	if err != nil {
		return err
	}

	for _, jid := range in.Participants {
		switch in.Action {
		case ParticipantAdd:
			err = s.client.GroupParticipant.Create().
				SetID(uuid.New().String()).
				SetGroupID(g.ID).
				SetParticipantJid(jid).
				SetInstanceID(in.InstanceID).
				OnConflictColumns(groupparticipant.FieldGroupID, groupparticipant.FieldParticipantJid).
				Ignore().
				Exec(ctx)
		case ParticipantRemove:
			_, err = s.client.GroupParticipant.Delete().
				Where(
					groupparticipant.GroupID(g.ID),
					groupparticipant.ParticipantJid(jid),
				).
				Exec(ctx)
		case ParticipantPromote:
			_, err = s.client.GroupParticipant.Update().
				Where(
					groupparticipant.GroupID(g.ID),
					groupparticipant.ParticipantJid(jid),
				).
				SetIsAdmin(true).
				Save(ctx)
		case ParticipantDemote:
			_, err = s.client.GroupParticipant.Update().
				Where(
					groupparticipant.GroupID(g.ID),
					groupparticipant.ParticipantJid(jid),
				).
				SetIsAdmin(false).
				SetIsSuperAdmin(false).
				Save(ctx)
		default:
			return NewValidationError("action", fmt.Sprintf("unknown participant action %q", in.Action))
		}
		if err != nil {
			return fmt.Errorf("failed to apply %s for participant %s: %w", in.Action, jid, err)
		}
	}
	return nil
}

// UpsertMessage inserts a message or, on key collision, updates only
// content/is_edited/last_edited_at. The stored row is returned. A
// foreign-key failure here means dependency materialization was
// skipped or raced; callers must re-materialize, not blindly retry.
func (s *MessagingService) UpsertMessage(ctx context.Context, in MessageInput) (*ent.Message, error) {
	if in.MessageID == "" {
		return nil, NewValidationError("message_id", "message id is required")
	}
	if in.Timestamp.IsZero() {
		return nil, NewValidationError("timestamp", "timestamp must be normalized before insert")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Message.Query().
		Where(message.MessageID(in.MessageID), message.InstanceID(in.InstanceID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query message %s: %w", in.MessageID, err)
	}

	var (
		stored *ent.Message
		op     entitychange.Operation
	)
	if existing != nil {
		now := time.Now()
		stored, err = existing.Update().
			SetContent(in.Content).
			SetIsEdited(true).
			SetLastEditedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update message %s: %w", in.MessageID, err)
		}
		op = entitychange.OperationUPDATE
	} else {
		create := tx.Message.Create().
			SetID(uuid.New().String()).
			SetMessageID(in.MessageID).
			SetInstanceID(in.InstanceID).
			SetChatID(in.ChatID).
			SetSenderJid(in.SenderJID).
			SetFromMe(in.FromMe).
			SetMessageType(in.MessageType).
			SetContent(in.Content).
			SetTimestamp(in.Timestamp).
			SetNillableQuotedMessageID(in.QuotedMessageID).
			SetIsForwarded(in.IsForwarded).
			SetForwardingScore(in.ForwardingScore)
		if in.SourcePlatform != "" {
			create.SetSourcePlatform(in.SourcePlatform)
		}
		if in.RawPayload != nil {
			create.SetRawPayload(in.RawPayload)
		}
		stored, err = create.Save(ctx)
		if err != nil {
			if Classify(err) == ClassFKViolation {
				return nil, fmt.Errorf("message %s dependencies missing: %w", in.MessageID, ErrFKDependency)
			}
			return nil, fmt.Errorf("failed to insert message %s: %w", in.MessageID, err)
		}
		op = entitychange.OperationINSERT
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableMessages,
		Operation:  op,
		EntityID:   stored.ID,
		EntityType: "message",
		NewData: map[string]any{
			"message_id":   stored.MessageID,
			"chat_id":      stored.ChatID,
			"sender_jid":   stored.SenderJid,
			"from_me":      stored.FromMe,
			"message_type": stored.MessageType,
		},
		Metadata: map[string]any{
			"instance_id": in.InstanceID,
			"chat_id":     in.ChatID,
			"timestamp":   in.Timestamp.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message upsert: %w", err)
	}
	return stored, nil
}

// MarkMessageRevoked soft-deletes a message: the row stays for audit
// with message_type flipped to revoked and the content cleared.
func (s *MessagingService) MarkMessageRevoked(ctx context.Context, messageID, instanceID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.Message.Query().
		Where(message.MessageID(messageID), message.InstanceID(instanceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("message %q: %w", messageID, ErrNotFound)
		}
		return fmt.Errorf("failed to query message %s: %w", messageID, err)
	}

	if _, err := m.Update().
		SetMessageType(message.MessageTypeRevoked).
		SetContent("").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark message %s revoked: %w", messageID, err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableMessages,
		Operation:  entitychange.OperationUPDATE,
		EntityID:   m.ID,
		EntityType: "message",
		OldData:    map[string]any{"message_type": m.MessageType},
		NewData:    map[string]any{"message_type": message.MessageTypeRevoked},
		Metadata:   map[string]any{"instance_id": instanceID, "revoked": true},
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetMessage loads a message by its row ID.
func (s *MessagingService) GetMessage(ctx context.Context, rowID string) (*ent.Message, error) {
	m, err := s.client.Message.Get(ctx, rowID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("message %q: %w", rowID, ErrNotFound)
	}
	return m, err
}

// GetMessageByProviderID resolves a message by its provider key.
func (s *MessagingService) GetMessageByProviderID(ctx context.Context, messageID, instanceID string) (*ent.Message, error) {
	m, err := s.client.Message.Query().
		Where(message.MessageID(messageID), message.InstanceID(instanceID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("message %q: %w", messageID, ErrNotFound)
	}
	return m, err
}

// UpsertReaction stores a reaction, overwriting emoji and timestamp on
// collision. Removal (empty emoji) is retained as the latest state so
// that a remove/reapply round-trip leaves exactly one row.
func (s *MessagingService) UpsertReaction(ctx context.Context, in ReactionInput) (*ent.MessageReaction, error) {
	if in.ReactorJID == "" {
		return nil, NewValidationError("reactor_jid", "reactor jid is required")
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	op := entitychange.OperationINSERT
	exists, err := tx.MessageReaction.Query().
		Where(
			messagereaction.MessageID(in.MessageID),
			messagereaction.InstanceID(in.InstanceID),
			messagereaction.ReactorJid(in.ReactorJID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reaction: %w", err)
	}
	if exists {
		op = entitychange.OperationUPDATE
	}

	err = tx.MessageReaction.Create().
		SetID(uuid.New().String()).
		SetMessageID(in.MessageID).
		SetInstanceID(in.InstanceID).
		SetReactorJid(in.ReactorJID).
		SetReactionEmoji(in.Emoji).
		SetFromMe(in.FromMe).
		SetTimestamp(in.Timestamp).
		OnConflictColumns(
			messagereaction.FieldMessageID,
			messagereaction.FieldInstanceID,
			messagereaction.FieldReactorJid,
		).
		Update(func(u *ent.MessageReactionUpsert) {
			u.SetReactionEmoji(in.Emoji)
			u.SetFromMe(in.FromMe)
			u.SetTimestamp(in.Timestamp)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert reaction on %s: %w", in.MessageID, err)
	}

	stored, err := tx.MessageReaction.Query().
		Where(
			messagereaction.MessageID(in.MessageID),
			messagereaction.InstanceID(in.InstanceID),
			messagereaction.ReactorJid(in.ReactorJID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back reaction: %w", err)
	}

	err = captureChange(ctx, tx, ChangeInput{
		TableName:  TableReactions,
		Operation:  op,
		EntityID:   stored.ID,
		EntityType: "reaction",
		NewData: map[string]any{
			"message_id":     in.MessageID,
			"reactor_jid":    in.ReactorJID,
			"reaction_emoji": in.Emoji,
		},
		Metadata: map[string]any{
			"instance_id": in.InstanceID,
			"timestamp":   in.Timestamp.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reaction upsert: %w", err)
	}
	return stored, nil
}

// AppendStatusUpdate appends one delivery-status entry. Pure append:
// arrival order is preserved by created_at and never rewritten.
func (s *MessagingService) AppendStatusUpdate(ctx context.Context, in StatusUpdateInput) error {
	status := messagestatusupdate.Status(in.Status)
	if err := messagestatusupdate.StatusValidator(status); err != nil {
		return NewValidationError("status", fmt.Sprintf("unknown delivery status %q", in.Status))
	}
	if in.StatusTs.IsZero() {
		in.StatusTs = time.Now()
	}

	create := s.client.MessageStatusUpdate.Create().
		SetID(uuid.New().String()).
		SetMessageID(in.MessageID).
		SetInstanceID(in.InstanceID).
		SetStatus(status).
		SetStatusTs(in.StatusTs)
	if in.ParticipantJID != "" {
		create.SetParticipantJid(in.ParticipantJID)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append status update for %s: %w", in.MessageID, err)
	}
	return nil
}

// UpsertCallLog inserts or updates a call log entry. Providers send
// the same call id for offer/accept/terminate, so outcome and duration
// converge on the final values.
func (s *MessagingService) UpsertCallLog(ctx context.Context, in CallLogInput) error {
	if in.StartTs.IsZero() {
		in.StartTs = time.Now()
	}

	err := s.client.CallLog.Create().
		SetID(uuid.New().String()).
		SetCallLogID(in.CallLogID).
		SetInstanceID(in.InstanceID).
		SetChatID(in.ChatID).
		SetFromJid(in.FromJID).
		SetFromMe(in.FromMe).
		SetStartTs(in.StartTs).
		SetIsVideo(in.IsVideo).
		SetDurationSeconds(in.DurationSeconds).
		SetOutcome(in.Outcome).
		OnConflictColumns(calllog.FieldCallLogID, calllog.FieldInstanceID).
		Update(func(u *ent.CallLogUpsert) {
			u.SetOutcome(in.Outcome)
			u.SetDurationSeconds(in.DurationSeconds)
			u.SetIsVideo(in.IsVideo)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert call log %s: %w", in.CallLogID, err)
	}
	return nil
}
