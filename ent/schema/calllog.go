package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallLog holds the schema definition for the CallLog entity.
type CallLog struct {
	ent.Schema
}

// Fields of the CallLog.
func (CallLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("call_log_id").
			Immutable().
			Comment("Provider call ID"),
		field.String("instance_id").
			Immutable(),
		field.String("chat_id").
			Optional(),
		field.String("from_jid").
			Optional(),
		field.Bool("from_me").
			Default(false),
		field.Time("start_ts").
			Default(time.Now),
		field.Bool("is_video").
			Default(false),
		field.Int("duration_seconds").
			Default(0),
		field.Enum("outcome").
			Values("answered", "missed", "declined").
			Default("missed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CallLog.
func (CallLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("call_logs").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CallLog.
func (CallLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("call_log_id", "instance_id").
			Unique(),
		index.Fields("chat_id", "instance_id"),
	}
}
