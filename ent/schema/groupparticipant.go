package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupParticipant holds the schema definition for the GroupParticipant
// entity. Membership is maintained by group.participants.update events
// (add/remove/promote/demote).
type GroupParticipant struct {
	ent.Schema
}

// Fields of the GroupParticipant.
func (GroupParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable().
			Comment("Group row ID (not the JID)"),
		field.String("participant_jid").
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Bool("is_admin").
			Default(false),
		field.Bool("is_super_admin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the GroupParticipant.
func (GroupParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("participants").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
		edge.From("instance", Instance.Type).
			Ref("group_participants").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GroupParticipant.
func (GroupParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "participant_jid").
			Unique(),
		index.Fields("instance_id"),
	}
}
