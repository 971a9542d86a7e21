package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Queue event types, mirrored by the action_queue_items.event_type
// enum.
const (
	QueueEventReaction     = "reaction"
	QueueEventMessage      = "message"
	QueueEventEntityChange = "entity_change"
)

// QueueEventData is the payload stored in a queue item's event_data
// column. It snapshots everything the processor needs so the rule
// engine and parsers run without re-reading the source row; MessageID
// still points back for link creation.
type QueueEventData struct {
	// MessageID is the messages row ID (not the provider key).
	MessageID  string `json:"message_id"`
	ProviderID string `json:"provider_id,omitempty"`
	InstanceID string `json:"instance_id"`
	ChatJid    string `json:"chat_jid"`
	SenderJid  string `json:"sender_jid,omitempty"`

	// ReactorJid and Emoji are set for reaction events.
	ReactorJid string `json:"reactor_jid,omitempty"`
	Emoji      string `json:"emoji,omitempty"`

	// Hashtag is set for hashtag-triggered message events, lowercase
	// without the leading #.
	Hashtag string `json:"hashtag,omitempty"`

	// Content is the triggering message's text at enqueue time.
	Content   string    `json:"content,omitempty"`
	FromMe    bool      `json:"from_me"`
	Timestamp time.Time `json:"timestamp"`
}

// ToMap converts the payload to the generic map ent stores.
func (d QueueEventData) ToMap() (map[string]any, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal queue event data: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert queue event data: %w", err)
	}
	return m, nil
}

// QueueEventDataFromMap decodes a stored event_data map.
func QueueEventDataFromMap(m map[string]any) (QueueEventData, error) {
	var d QueueEventData
	raw, err := json.Marshal(m)
	if err != nil {
		return d, fmt.Errorf("failed to marshal event data map: %w", err)
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("failed to decode queue event data: %w", err)
	}
	return d, nil
}
