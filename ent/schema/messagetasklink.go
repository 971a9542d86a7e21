package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageTaskLink holds the schema definition for the MessageTaskLink
// entity. A typed link proving a task came from a specific message via
// a specific rule; the `trigger` row is the idempotency anchor that
// turns a repeated reaction into an update instead of a re-create.
type MessageTaskLink struct {
	ent.Schema
}

// Fields of the MessageTaskLink.
func (MessageTaskLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("link_id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Message row ID (not the provider key)"),
		field.String("task_id").
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

// Edges of the MessageTaskLink.
func (MessageTaskLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", Message.Type).
			Ref("task_links").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
		edge.From("task", Task.Type).
			Ref("message_links").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageTaskLink.
func (MessageTaskLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "rule_id", "link_type").
			Unique(),
		index.Fields("task_id"),
	}
}
