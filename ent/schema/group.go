package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Group holds the schema definition for the Group entity.
//
// Subject authority: a NULL subject means only a placeholder row exists
// (inserted to satisfy message dependencies). Only groups.upsert/update
// events write the subject; the placeholder path never touches it.
type Group struct {
	ent.Schema
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("group_jid").
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.String("subject").
			Optional().
			Nillable().
			Comment("NULL until a groups event supplies it"),
		field.Bool("subject_authoritative").
			Default(false).
			Comment("Set by the groups event path only"),
		field.String("owner_jid").
			Optional(),
		field.Text("description").
			Optional(),
		field.Time("creation_ts").
			Optional().
			Nillable(),
		field.Bool("is_locked").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Group.
func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("groups").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
		edge.To("participants", GroupParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Group.
func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_jid", "instance_id").
			Unique(),
	}
}

// Annotations of the Group.
func (Group) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chat_groups"},
	}
}
