// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/actionrule"
)

// ActionRule is the model entity for the ActionRule schema.
type ActionRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// RuleType holds the value of the "rule_type" field.
	RuleType actionrule.RuleType `json:"rule_type,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType actionrule.TriggerType `json:"trigger_type,omitempty"`
	// Emoji for reaction triggers, lowercase tag for hashtag triggers
	TriggerValue string `json:"trigger_value,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType actionrule.ActionType `json:"action_type,omitempty"`
	// Per-action settings: defaults, nlp_parser, templates, targeting, hashtag_scope
	Config map[string]interface{} `json:"config,omitempty"`
	// Optional filters: instances, contacts, time windows
	Conditions map[string]interface{} `json:"conditions,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CooldownMinutes holds the value of the "cooldown_minutes" field.
	CooldownMinutes int `json:"cooldown_minutes,omitempty"`
	// 0 means unlimited
	MaxExecutionsPerDay int `json:"max_executions_per_day,omitempty"`
	// TotalExecutions holds the value of the "total_executions" field.
	TotalExecutions int `json:"total_executions,omitempty"`
	// LastExecutedAt holds the value of the "last_executed_at" field.
	LastExecutedAt *time.Time `json:"last_executed_at,omitempty"`
	// Rule scope owner
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionrule.FieldConfig, actionrule.FieldConditions:
			values[i] = new([]byte)
		case actionrule.FieldActive:
			values[i] = new(sql.NullBool)
		case actionrule.FieldCooldownMinutes, actionrule.FieldMaxExecutionsPerDay, actionrule.FieldTotalExecutions:
			values[i] = new(sql.NullInt64)
		case actionrule.FieldID, actionrule.FieldRuleName, actionrule.FieldRuleType, actionrule.FieldTriggerType, actionrule.FieldTriggerValue, actionrule.FieldActionType, actionrule.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case actionrule.FieldLastExecutedAt, actionrule.FieldCreatedAt, actionrule.FieldUpdatedAt, actionrule.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionRule fields.
func (_m *ActionRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actionrule.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case actionrule.FieldRuleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_type", values[i])
			} else if value.Valid {
				_m.RuleType = actionrule.RuleType(value.String)
			}
		case actionrule.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = actionrule.TriggerType(value.String)
			}
		case actionrule.FieldTriggerValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_value", values[i])
			} else if value.Valid {
				_m.TriggerValue = value.String
			}
		case actionrule.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = actionrule.ActionType(value.String)
			}
		case actionrule.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case actionrule.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case actionrule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case actionrule.FieldCooldownMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_minutes", values[i])
			} else if value.Valid {
				_m.CooldownMinutes = int(value.Int64)
			}
		case actionrule.FieldMaxExecutionsPerDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_executions_per_day", values[i])
			} else if value.Valid {
				_m.MaxExecutionsPerDay = int(value.Int64)
			}
		case actionrule.FieldTotalExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_executions", values[i])
			} else if value.Valid {
				_m.TotalExecutions = int(value.Int64)
			}
		case actionrule.FieldLastExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_executed_at", values[i])
			} else if value.Valid {
				_m.LastExecutedAt = new(time.Time)
				*_m.LastExecutedAt = value.Time
			}
		case actionrule.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case actionrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case actionrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case actionrule.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionRule.
// This includes values selected through modifiers, order, etc.
func (_m *ActionRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActionRule.
// Note that you need to call ActionRule.Unwrap() before calling this method if this ActionRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionRule) Update() *ActionRuleUpdateOne {
	return NewActionRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionRule) Unwrap() *ActionRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionRule) String() string {
	var builder strings.Builder
	builder.WriteString("ActionRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("rule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleType))
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("trigger_value=")
	builder.WriteString(_m.TriggerValue)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("cooldown_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CooldownMinutes))
	builder.WriteString(", ")
	builder.WriteString("max_executions_per_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxExecutionsPerDay))
	builder.WriteString(", ")
	builder.WriteString("total_executions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExecutions))
	builder.WriteString(", ")
	if v := _m.LastExecutedAt; v != nil {
		builder.WriteString("last_executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActionRules is a parsable slice of ActionRule.
type ActionRules []*ActionRule
