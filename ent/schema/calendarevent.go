package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarEvent holds the schema definition for the CalendarEvent
// entity. Action output only; provider sync happens downstream.
type CalendarEvent struct {
	ent.Schema
}

// Fields of the CalendarEvent.
func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Time("start_time"),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("location").
			Optional(),
		field.String("conference_url").
			Optional().
			Comment("Filled when the parser flags a videocall location"),
		field.JSON("attendees", []string{}).
			Optional(),
		field.String("recurrence").
			Optional(),
		field.String("space_id").
			Optional(),
		field.String("created_by").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CalendarEvent.
func (CalendarEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("message_links", MessageEventLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CalendarEvent.
func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time"),
		index.Fields("space_id"),
	}
}
