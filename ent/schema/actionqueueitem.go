package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionQueueItem holds the schema definition for the ActionQueueItem
// entity. One unit of deferred work for the action pipeline.
//
// Leasing selects pending items with retry_after_ts <= now in
// priority-then-age order under FOR UPDATE SKIP LOCKED, so concurrent
// workers never see the same row.
type ActionQueueItem struct {
	ent.Schema
}

// Fields of the ActionQueueItem.
func (ActionQueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_id").
			Unique().
			Immutable(),
		field.Enum("event_type").
			Values("reaction", "message", "entity_change"),
		field.JSON("event_data", map[string]interface{}{}).
			Comment("References the source row; never the payload of record"),
		field.String("idempotency_key").
			Comment("Deterministic: event_type + source identity"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("result").
			Optional().
			Nillable().
			Comment("Completion substatus: executed, no_rules, parse_failed, ..."),
		field.Int("priority").
			Default(50).
			Comment("Higher first: high=100, normal=50, low=10"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("retry_after_ts").
			Default(time.Now).
			Comment("Monotonically non-decreasing across retries"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Lease owner, for orphan recovery"),
		field.Time("leased_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable().
			Comment("When processing last started"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ActionQueueItem.
func (ActionQueueItem) Indexes() []ent.Index {
	return []ent.Index{
		// Lease scans touch pending rows only.
		index.Fields("status", "priority", "created_at").
			Annotations(entsql.IndexWhere("status = 'pending'")),
		index.Fields("idempotency_key", "created_at"),
		// Orphan sweeps scan processing rows by lease age.
		index.Fields("status", "leased_at"),
		index.Fields("completed_at"),
	}
}
