package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FailedEvent holds the schema definition for the FailedEvent entity.
// Recovery bucket for webhook events the adapter could not translate.
// Transient and fk_dependency entries are retried by the recovery
// sweeper with capped exponential backoff; validation and permanent
// entries wait for manual reprocessing.
type FailedEvent struct {
	ent.Schema
}

// Fields of the FailedEvent.
func (FailedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("failed_event_id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Optional().
			Comment("Plain string: the instance row may not exist for malformed events"),
		field.String("event_type").
			Optional(),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional().
			Comment("Original envelope, secret fields redacted"),
		field.Text("failure_reason"),
		field.Enum("error_kind").
			Values("validation", "fk_dependency", "transient", "permanent").
			Default("validation"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(5),
		field.Time("next_retry_at").
			Default(time.Now),
		field.Bool("resolved").
			Default(false),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the FailedEvent.
func (FailedEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Sweep scans unresolved entries due for retry.
		index.Fields("resolved", "next_retry_at").
			Annotations(entsql.IndexWhere("NOT resolved")),
		index.Fields("instance_id"),
		index.Fields("error_kind"),
	}
}
