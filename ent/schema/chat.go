package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chat holds the schema definition for the Chat entity.
// One row per conversation (individual or group). chat_id is the JID of
// the counterpart or the group; it must also exist as a Contact row.
type Chat struct {
	ent.Schema
}

// Fields of the Chat.
func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable().
			Comment("Chat JID"),
		field.String("instance_id").
			Immutable(),
		field.Enum("type").
			Values("individual", "group").
			Comment("Derived from the JID suffix (@g.us means group)"),
		field.Int("unread_count").
			Default(0).
			Comment("Overwritten as given by the provider"),
		field.Bool("archived").
			Default(false),
		field.Bool("pinned").
			Default(false),
		field.Bool("muted").
			Default(false),
		field.Time("mute_end_ts").
			Optional().
			Nillable(),
		field.Time("last_message_ts").
			Optional().
			Nillable().
			Comment("Monotonically non-decreasing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Chat.
func (Chat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("chats").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Chat.
func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "instance_id").
			Unique(),
		index.Fields("instance_id", "last_message_ts"),
	}
}
