package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the fan-out
// feed persisted alongside pg_notify in the same transaction. Rows are
// retention-swept; the integer ID gives subscribers a stable ordering.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The default integer ID is intentional: pg_notify payloads reference
// db_event_id and SSE frames are ordered by it.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Immutable().
			Comment("Notify channel the event was published on"),
		field.String("event_type").
			Immutable().
			Comment("new_message, new_reaction, entity_created, rule_executed"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
		index.Fields("created_at"),
	}
}
