package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/pkg/services"
)

func (a *Adapter) handleContacts(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[ContactData](env.Data)
	if err != nil {
		return err
	}

	owner := a.ownerJID(ctx, instanceID)
	var errs []error
	for _, entry := range entries {
		jid, err := NormalizeJID(entry.JID())
		if err != nil {
			errs = append(errs, fmt.Errorf("contact entry: %w", err))
			continue
		}
		_, err = a.messaging.UpsertContact(ctx, services.ContactInput{
			JID:               jid,
			InstanceID:        instanceID,
			PushName:          entry.PushName,
			VerifiedName:      entry.VerifiedName,
			ProfilePictureURL: entry.ProfilePicURL,
			IsBusiness:        entry.IsBusiness,
			IsMe:              owner != "" && jid == owner,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *Adapter) handleChats(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[ChatData](env.Data)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range entries {
		jid, err := NormalizeJID(entry.JID())
		if err != nil {
			errs = append(errs, fmt.Errorf("chat entry: %w", err))
			continue
		}

		chatType := chat.TypeIndividual
		if IsGroupJID(jid) {
			chatType = chat.TypeGroup
		}

		// The chat row FKs a contact of the same JID.
		if _, err := a.messaging.UpsertContact(ctx, services.ContactInput{
			JID:        jid,
			InstanceID: instanceID,
		}); err != nil {
			errs = append(errs, err)
			continue
		}
		if chatType == chat.TypeGroup {
			if err := a.messaging.EnsureGroupPlaceholder(ctx, jid, instanceID); err != nil {
				errs = append(errs, err)
				continue
			}
		}

		in := services.ChatInput{
			ChatID:      jid,
			InstanceID:  instanceID,
			Type:        chatType,
			UnreadCount: entry.UnreadMessages,
			Archived:    entry.Archived,
			Pinned:      entry.Pinned,
		}
		if n, ok := asInt64(entry.MuteEndTime); ok && n > 0 {
			muted := true
			muteEnd := NormalizeTimestamp(entry.MuteEndTime)
			in.Muted = &muted
			in.MuteEndTs = &muteEnd
		}
		if _, ok := asInt64(entry.LastMessageTs); ok {
			ts := NormalizeTimestamp(entry.LastMessageTs)
			in.LastMessageTs = &ts
		}

		if _, err := a.messaging.UpsertChat(ctx, in); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// handleGroups applies authoritative group metadata. This is the only
// event path allowed to write a subject.
func (a *Adapter) handleGroups(ctx context.Context, instanceID string, env *Envelope) error {
	entries, err := decodeOneOrMany[GroupData](env.Data)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range entries {
		jid, err := NormalizeJID(entry.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("group entry: %w", err))
			continue
		}

		in := services.GroupInput{
			GroupJID:    jid,
			InstanceID:  instanceID,
			Subject:     entry.Subject,
			Description: entry.Desc,
			IsLocked:    entry.Restrict,
		}
		if entry.Owner != "" {
			if ownerJID, err := NormalizeJID(entry.Owner); err == nil {
				in.OwnerJID = ownerJID
			}
		}
		if n, ok := asInt64(entry.Creation); ok && n > 0 {
			ts := NormalizeTimestamp(entry.Creation)
			in.CreationTs = &ts
		}

		if _, err := a.messaging.UpsertGroup(ctx, in); err != nil {
			errs = append(errs, err)
			continue
		}

		for _, p := range entry.Participants {
			pjid, err := NormalizeJID(p.ID)
			if err != nil {
				continue
			}
			action := services.ParticipantAdd
			if p.Admin == "admin" || p.Admin == "superadmin" {
				action = services.ParticipantPromote
			}
			if err := a.messaging.ApplyParticipantUpdate(ctx, services.ParticipantUpdateInput{
				GroupJID:     jid,
				InstanceID:   instanceID,
				Action:       action,
				Participants: []string{pjid},
			}); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (a *Adapter) handleParticipantsUpdate(ctx context.Context, instanceID string, env *Envelope) error {
	var data ParticipantsUpdateData
	if err := decodeData(env, &data); err != nil {
		return err
	}

	groupJID, err := NormalizeJID(data.ID)
	if err != nil {
		return fmt.Errorf("participants update: %w", err)
	}

	var action services.ParticipantAction
	switch strings.ToLower(data.Action) {
	case "add":
		action = services.ParticipantAdd
	case "remove":
		action = services.ParticipantRemove
	case "promote":
		action = services.ParticipantPromote
	case "demote":
		action = services.ParticipantDemote
	default:
		return fmt.Errorf("unknown participant action %q: %w", data.Action, ErrMalformedPayload)
	}

	participants := make([]string, 0, len(data.Participants))
	for _, raw := range data.Participants {
		jid, err := NormalizeJID(raw)
		if err != nil {
			slog.Warn("Skipping unresolvable participant",
				"group_jid", groupJID, "instance_id", instanceID, "raw", raw)
			continue
		}
		participants = append(participants, jid)
	}
	if len(participants) == 0 {
		return nil
	}

	return a.messaging.ApplyParticipantUpdate(ctx, services.ParticipantUpdateInput{
		GroupJID:     groupJID,
		InstanceID:   instanceID,
		Action:       action,
		Participants: participants,
	})
}

func (a *Adapter) handleCall(ctx context.Context, instanceID string, env *Envelope) error {
	var data CallData
	if err := decodeData(env, &data); err != nil {
		return err
	}
	if data.ID == "" {
		return fmt.Errorf("call event has no id: %w", ErrMalformedPayload)
	}

	fromJID, err := NormalizeJID(data.From)
	if err != nil {
		return fmt.Errorf("call from: %w", err)
	}
	chatJID := fromJID
	if data.ChatID != "" {
		if jid, err := NormalizeJID(data.ChatID); err == nil {
			chatJID = jid
		}
	}

	var startTs time.Time
	if _, ok := asInt64(data.Date); ok {
		startTs = NormalizeTimestamp(data.Date)
	} else {
		startTs = NormalizeTimestamp(data.Timestamp)
	}

	var outcome calllog.Outcome
	switch strings.ToLower(data.Status) {
	case "accept", "answered":
		outcome = calllog.OutcomeAnswered
	case "reject", "declined":
		outcome = calllog.OutcomeDeclined
	default:
		outcome = calllog.OutcomeMissed
	}

	// Call logs FK the chat like messages do.
	if _, err := a.messaging.UpsertContact(ctx, services.ContactInput{
		JID:        chatJID,
		InstanceID: instanceID,
	}); err != nil {
		return err
	}
	chatType := chat.TypeIndividual
	if IsGroupJID(chatJID) {
		chatType = chat.TypeGroup
	}
	if _, err := a.messaging.UpsertChat(ctx, services.ChatInput{
		ChatID:     chatJID,
		InstanceID: instanceID,
		Type:       chatType,
	}); err != nil {
		return err
	}

	return a.messaging.UpsertCallLog(ctx, services.CallLogInput{
		CallLogID:       data.ID,
		InstanceID:      instanceID,
		ChatID:          chatJID,
		FromJID:         fromJID,
		StartTs:         startTs,
		IsVideo:         data.IsVideo,
		DurationSeconds: data.Duration,
		Outcome:         outcome,
	})
}
