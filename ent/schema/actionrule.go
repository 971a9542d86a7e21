package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionRule holds the schema definition for the ActionRule entity.
//
// A rule maps a trigger (emoji reaction or hashtag) to an action type
// plus per-action config. At most one active rule may exist per
// (trigger_type, trigger_value, created_by); the service layer rejects
// conflicting writes and a partial unique index backs it up.
type ActionRule struct {
	ent.Schema
}

// Fields of the ActionRule.
func (ActionRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("rule_name"),
		field.Enum("rule_type").
			Values("simple_action", "nlp_action").
			Default("simple_action"),
		field.Enum("trigger_type").
			Values("reaction", "hashtag"),
		field.String("trigger_value").
			Comment("Emoji for reaction triggers, lowercase tag for hashtag triggers"),
		field.Enum("action_type").
			Values(
				"create_task",
				"create_calendar_event",
				"create_bill",
				"create_note",
				"update_task_status",
				"send_message",
			),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Per-action settings: defaults, nlp_parser, templates, targeting, hashtag_scope"),
		field.JSON("conditions", map[string]interface{}{}).
			Optional().
			Comment("Optional filters: instances, contacts, time windows"),
		field.Bool("active").
			Default(true),
		field.Int("cooldown_minutes").
			Default(0),
		field.Int("max_executions_per_day").
			Default(0).
			Comment("0 means unlimited"),
		field.Int("total_executions").
			Default(0),
		field.Time("last_executed_at").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional().
			Comment("Rule scope owner"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete"),
	}
}

// Indexes of the ActionRule.
func (ActionRule) Indexes() []ent.Index {
	return []ent.Index{
		// Trigger lookups hit active rules only.
		index.Fields("trigger_value").
			Annotations(entsql.IndexWhere("active AND deleted_at IS NULL")),
		index.Fields("trigger_type", "trigger_value"),
		index.Fields("created_by"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
