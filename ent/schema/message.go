package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
//
// A message row is inserted only after its sender contact, chat contact,
// chat row, and (for groups) group placeholder exist. quoted_message_id
// is stored as a value, not an enforced FK — replies may arrive before
// the quoted original and are resolved on read.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Provider message key (key.id)"),
		field.String("instance_id").
			Immutable(),
		field.String("chat_id").
			Immutable().
			Comment("Chat JID"),
		field.String("sender_jid").
			Immutable(),
		field.Bool("from_me").
			Default(false).
			Comment("key.fromMe OR sender_jid == instance.owner_jid"),
		field.Enum("message_type").
			Values(
				"text",
				"image",
				"video",
				"audio",
				"document",
				"sticker",
				"location",
				"contact_card",
				"contact_card_multi",
				"order",
				"revoked",
				"unsupported",
				"reaction",
				"call_log",
				"edited_message",
			).
			Default("text"),
		field.Text("content").
			Optional().
			Comment("Extracted text or caption"),
		field.Time("timestamp").
			Comment("Provider timestamp, normalized; never zero"),
		field.String("quoted_message_id").
			Optional().
			Nillable().
			Comment("Unenforced reference; resolved on read"),
		field.Bool("is_forwarded").
			Default(false),
		field.Int("forwarding_score").
			Default(0),
		field.Bool("is_starred").
			Default(false),
		field.Bool("is_edited").
			Default(false),
		field.Time("last_edited_at").
			Optional().
			Nillable(),
		field.String("source_platform").
			Optional(),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional().
			Comment("Full original event JSON, secret fields redacted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("messages").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
		edge.To("task_links", MessageTaskLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("event_links", MessageEventLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "instance_id").
			Unique(),
		// Chat history reads sort newest-first.
		index.Fields("chat_id", "instance_id", "timestamp").
			Annotations(entsql.DescColumns("timestamp")),
		index.Fields("sender_jid", "instance_id"),
	}
}
