package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageEventLink holds the schema definition for the MessageEventLink
// entity. Calendar-event counterpart of MessageTaskLink.
type MessageEventLink struct {
	ent.Schema
}

// Fields of the MessageEventLink.
func (MessageEventLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("link_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Message row ID (not the provider key)"),
		field.String("calendar_event_id").
			Immutable(),
		field.String("rule_id").
			Optional().
			Immutable(),
		field.Enum("link_type").
			Values("trigger", "context", "reply", "forward_from_task", "message_from_task").
			Default("trigger"),
		field.String("instance_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MessageEventLink.
func (MessageEventLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", Message.Type).
			Ref("event_links").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
		edge.From("calendar_event", CalendarEvent.Type).
			Ref("message_links").
			Field("calendar_event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageEventLink.
func (MessageEventLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "rule_id", "link_type").
			Unique(),
		index.Fields("calendar_event_id"),
	}
}
