package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// Bill holds the schema definition for the Bill entity. Action output
// only; payment tracking lives in the finance service.
type Bill struct {
	ent.Schema
}

// Fields of the Bill.
func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bill_id").
			Unique().
			Immutable(),
		field.String("vendor"),
		field.Float("amount").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(14,2)",
			}),
		field.String("currency").
			Default("USD"),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("category").
			Optional(),
		field.Bool("is_recurring").
			Default(false),
		field.String("recurrence_type").
			Optional().
			Comment("weekly, monthly, yearly"),
		field.Int("recurrence_interval").
			Default(0),
		field.Time("recurrence_end_date").
			Optional().
			Nillable(),
		field.Time("next_due_date").
			Optional().
			Nillable(),
		field.Bool("auto_pay_enabled").
			Default(false),
		field.Enum("status").
			Values("pending", "paid", "overdue", "cancelled").
			Default("pending"),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium").
			Comment("high when the due date is near at parse time"),
		field.JSON("tags", []string{}).
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

// Indexes of the Bill.
func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "due_date"),
		index.Fields("space_id"),
	}
}
