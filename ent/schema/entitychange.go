package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityChange holds the schema definition for the EntityChange entity.
// Append-only change capture: exactly one row per mutation of a
// subscribed table, written in the same transaction as the mutation.
type EntityChange struct {
	ent.Schema
}

// Fields of the EntityChange.
func (EntityChange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("change_id").
			Unique().
			Immutable(),
		field.String("table_name").
			Immutable(),
		field.Enum("operation").
			Values("INSERT", "UPDATE", "DELETE").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.JSON("old_data", map[string]interface{}{}).
			Optional(),
		field.JSON("new_data", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("user_id, chat_id, instance_id, timestamp"),
		field.Time("changed_at").
			Default(time.Now).
			Immutable(),
		field.Bool("processed").
			Default(false),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.Int("error_count").
			Default(0),
		field.Text("last_error").
			Optional().
			Nillable(),
	}
}

// Indexes of the EntityChange.
func (EntityChange) Indexes() []ent.Index {
	return []ent.Index{
		// Change sweeps read the unprocessed tail in order.
		index.Fields("processed", "changed_at").
			Annotations(entsql.IndexWhere("NOT processed")),
		index.Fields("entity_type", "changed_at"),
		index.Fields("table_name"),
	}
}
