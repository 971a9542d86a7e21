package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
// Every JID the instance has seen — individuals and group JIDs alike —
// gets a contact row before any message referencing it is inserted.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("jid").
			Immutable().
			Comment("Canonical identifier (user@domain or groupid@g.us)"),
		field.String("instance_id").
			Immutable(),
		field.String("push_name").
			Optional().
			Comment("Display name from the provider; merged, never cleared"),
		field.String("verified_name").
			Optional(),
		field.String("profile_picture_url").
			Optional(),
		field.Bool("is_business").
			Default(false),
		field.Bool("is_me").
			Default(false).
			Comment("Never cleared once true"),
		field.Bool("is_blocked").
			Default(false),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("contacts").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("jid", "instance_id").
			Unique(),
		index.Fields("instance_id"),
	}
}
