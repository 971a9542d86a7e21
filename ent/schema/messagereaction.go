package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageReaction holds the schema definition for the MessageReaction
// entity. One row per (message, reactor); re-reacting overwrites emoji
// and timestamp. An empty emoji is retained and denotes removal.
type MessageReaction struct {
	ent.Schema
}

// Fields of the MessageReaction.
func (MessageReaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Provider key of the reacted-to message"),
		field.String("instance_id").
			Immutable(),
		field.String("reactor_jid").
			Immutable(),
		field.String("reaction_emoji").
			Comment("Empty string denotes removal"),
		field.Bool("from_me").
			Default(false),
		field.Time("timestamp").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MessageReaction.
func (MessageReaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("reactions").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageReaction.
func (MessageReaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "instance_id", "reactor_jid").
			Unique(),
		index.Fields("instance_id", "created_at"),
	}
}
