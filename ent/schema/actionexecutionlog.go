package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionExecutionLog holds the schema definition for the
// ActionExecutionLog entity. Append-only execution audit; also the
// source for cooldown and executions-per-day checks.
type ActionExecutionLog struct {
	ent.Schema
}

// Fields of the ActionExecutionLog.
func (ActionExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("rule_id").
			Immutable(),
		field.String("queue_item_id").
			Optional().
			Immutable(),
		field.Enum("status").
			Values("success", "failed", "parse_failed", "skipped"),
		field.Int("execution_time_ms").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("created_entity_refs", []map[string]string{}).
			Optional().
			Comment("entity_type + entity_id tuples"),
		field.String("chat_id").
			Optional().
			Comment("Cooldown context"),
		field.String("instance_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ActionExecutionLog.
func (ActionExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id", "created_at"),
		index.Fields("rule_id", "chat_id", "created_at"),
		index.Fields("queue_item_id"),
	}
}
