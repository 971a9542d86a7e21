package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. Minimal shape:
// tasks exist here only as action outputs; the task domain proper lives
// in a downstream service.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "cancelled").
			Default("pending"),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("assignee").
			Optional(),
		field.String("space_id").
			Optional(),
		field.String("created_by").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("source, emoji, rule_id, message_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("message_links", MessageTaskLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("space_id"),
		index.Fields("created_at"),
	}
}
