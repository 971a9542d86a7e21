package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageStatusUpdate holds the schema definition for the
// MessageStatusUpdate entity. Append-only delivery trail per message,
// preserving arrival order.
type MessageStatusUpdate struct {
	ent.Schema
}

// Fields of the MessageStatusUpdate.
func (MessageStatusUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Provider message key; the message row may not exist yet"),
		field.String("instance_id").
			Immutable(),
		field.Enum("status").
			Values("error", "pending", "sent", "delivered", "read", "played"),
		field.String("participant_jid").
			Optional().
			Comment("Group receipts carry the acting participant"),
		field.Time("status_ts").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MessageStatusUpdate.
func (MessageStatusUpdate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("status_updates").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageStatusUpdate.
func (MessageStatusUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "instance_id", "created_at"),
	}
}
