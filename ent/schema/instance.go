package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Instance holds the schema definition for the Instance entity.
// One row per connected provider session; the unit of tenancy for all
// messaging rows. Rows are created by the workspace service — the core
// only updates connection_state.
type Instance struct {
	ent.Schema
}

// Fields of the Instance.
func (Instance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("instance_id").
			Unique().
			Immutable().
			Comment("Provider instance name (webhook path segment)"),
		field.String("owner_jid").
			Optional().
			Comment("JID of the connected account; used for from-me detection"),
		field.String("creator_user_id").
			Optional(),
		field.String("api_base_url").
			Optional().
			Comment("Per-instance provider base URL override"),
		field.String("api_key").
			Optional().
			Sensitive().
			Comment("Per-instance provider API key"),
		field.Bool("is_owner").
			Default(false).
			Comment("Cached: connected account belongs to the workspace owner"),
		field.Enum("connection_state").
			Values("open", "close", "connecting", "qr").
			Default("close"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Instance.
func (Instance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contacts", Contact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chats", Chat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("groups", Group.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("group_participants", GroupParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("status_updates", MessageStatusUpdate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reactions", MessageReaction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("call_logs", CallLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
