package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageKey is the provider's composite message identity.
type MessageKey struct {
	RemoteJid   string `json:"remoteJid"`
	FromMe      bool   `json:"fromMe"`
	ID          string `json:"id"`
	Participant string `json:"participant,omitempty"`
}

// ReactionMessage is the reaction container inside a message payload.
// Key references the message being reacted to; an empty Text means the
// reaction was removed.
type ReactionMessage struct {
	Key  MessageKey `json:"key"`
	Text string     `json:"text"`
}

// MessageContent holds the variant fields of a message body. Only the
// variants the adapter inspects are typed; everything else rides along
// in the raw envelope.
type MessageContent struct {
	Conversation        string           `json:"conversation,omitempty"`
	ExtendedTextMessage *struct {
		Text string `json:"text"`
	} `json:"extendedTextMessage,omitempty"`
	ImageMessage *struct {
		Caption string `json:"caption,omitempty"`
	} `json:"imageMessage,omitempty"`
	VideoMessage *struct {
		Caption string `json:"caption,omitempty"`
	} `json:"videoMessage,omitempty"`
	DocumentMessage *struct {
		Caption  string `json:"caption,omitempty"`
		FileName string `json:"fileName,omitempty"`
	} `json:"documentMessage,omitempty"`
	ReactionMessage *ReactionMessage `json:"reactionMessage,omitempty"`
	EditedMessage   *struct {
		Message *MessageContent `json:"message,omitempty"`
	} `json:"editedMessage,omitempty"`
	ProtocolMessage *struct {
		Key  MessageKey `json:"key"`
		Type string     `json:"type,omitempty"`
	} `json:"protocolMessage,omitempty"`
}

// Text returns the message's text content across the known variants.
func (c *MessageContent) Text() string {
	switch {
	case c == nil:
		return ""
	case c.Conversation != "":
		return c.Conversation
	case c.ExtendedTextMessage != nil:
		return c.ExtendedTextMessage.Text
	case c.ImageMessage != nil:
		return c.ImageMessage.Caption
	case c.VideoMessage != nil:
		return c.VideoMessage.Caption
	case c.DocumentMessage != nil:
		return c.DocumentMessage.Caption
	case c.EditedMessage != nil && c.EditedMessage.Message != nil:
		return c.EditedMessage.Message.Text()
	default:
		return ""
	}
}

// MessageData is one entry of a messages.upsert / messages.update
// payload.
type MessageData struct {
	Key              MessageKey      `json:"key"`
	PushName         string          `json:"pushName,omitempty"`
	Message          *MessageContent `json:"message,omitempty"`
	MessageType      string          `json:"messageType,omitempty"`
	MessageTimestamp any             `json:"messageTimestamp,omitempty"`
	Status           string          `json:"status,omitempty"`
	Participant      string          `json:"participant,omitempty"`
	Source           string          `json:"source,omitempty"`
	ContextInfo      *struct {
		StanzaID        string `json:"stanzaId,omitempty"`
		IsForwarded     bool   `json:"isForwarded,omitempty"`
		ForwardingScore int    `json:"forwardingScore,omitempty"`
	} `json:"contextInfo,omitempty"`
}

// ContactData is one entry of a contacts event payload.
type ContactData struct {
	ID            string `json:"id"`
	RemoteJid     string `json:"remoteJid,omitempty"`
	PushName      string `json:"pushName,omitempty"`
	VerifiedName  string `json:"verifiedName,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
	IsBusiness    bool   `json:"isBusiness,omitempty"`
}

// JID returns whichever identifier field the provider populated.
func (c ContactData) JID() string {
	if c.RemoteJid != "" {
		return c.RemoteJid
	}
	return c.ID
}

// ChatData is one entry of a chats event payload.
type ChatData struct {
	ID             string `json:"id"`
	RemoteJid      string `json:"remoteJid,omitempty"`
	UnreadMessages *int   `json:"unreadMessages,omitempty"`
	Archived       *bool  `json:"archived,omitempty"`
	Pinned         *bool  `json:"pinned,omitempty"`
	MuteEndTime    any    `json:"muteEndTime,omitempty"`
	LastMessageTs  any    `json:"lastMessageTimestamp,omitempty"`
}

// JID returns whichever identifier field the provider populated.
func (c ChatData) JID() string {
	if c.RemoteJid != "" {
		return c.RemoteJid
	}
	return c.ID
}

// GroupData is one entry of a groups event payload. Subject is a
// pointer so an absent field is distinguishable from an empty one.
type GroupData struct {
	ID           string  `json:"id"`
	Subject      *string `json:"subject,omitempty"`
	Owner        string  `json:"owner,omitempty"`
	Desc         string  `json:"desc,omitempty"`
	Creation     any     `json:"creation,omitempty"`
	Restrict     *bool   `json:"restrict,omitempty"`
	Participants []struct {
		ID    string `json:"id"`
		Admin string `json:"admin,omitempty"`
	} `json:"participants,omitempty"`
}

// ParticipantsUpdateData is the group.participants.update payload.
type ParticipantsUpdateData struct {
	ID           string   `json:"id"`
	Action       string   `json:"action"`
	Participants []string `json:"participants"`
}

// CallData is the call event payload.
type CallData struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	ChatID    string `json:"chatId,omitempty"`
	Date      any    `json:"date,omitempty"`
	Timestamp any    `json:"timestamp,omitempty"`
	IsVideo   bool   `json:"isVideo,omitempty"`
	Status    string `json:"status,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// ConnectionUpdateData is the connection.update payload.
type ConnectionUpdateData struct {
	State      string `json:"state,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// decodeData unmarshals the envelope's data into an event-specific
// shape.
func decodeData(env *Envelope, v any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("envelope has no data: %w", ErrMalformedPayload)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", env.Event, errors.Join(ErrMalformedPayload, err))
	}
	return nil
}

// decodeOneOrMany accepts both a single object and an array, which the
// provider sends interchangeably for upsert events.
func decodeOneOrMany[T any](raw json.RawMessage) ([]T, error) {
	var many []T
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("payload is neither object nor array: %w", ErrMalformedPayload)
	}
	return []T{one}, nil
}
