// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
)

// ActionExecutionLog is the model entity for the ActionExecutionLog schema.
type ActionExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// QueueItemID holds the value of the "queue_item_id" field.
	QueueItemID string `json:"queue_item_id,omitempty"`
	// Status holds the value of the "status" field.
	Status actionexecutionlog.Status `json:"status,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs int `json:"execution_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// entity_type + entity_id tuples
	CreatedEntityRefs []map[string]string `json:"created_entity_refs,omitempty"`
	// Cooldown context
	ChatID string `json:"chat_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionexecutionlog.FieldCreatedEntityRefs:
			values[i] = new([]byte)
		case actionexecutionlog.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case actionexecutionlog.FieldID, actionexecutionlog.FieldRuleID, actionexecutionlog.FieldQueueItemID, actionexecutionlog.FieldStatus, actionexecutionlog.FieldErrorMessage, actionexecutionlog.FieldChatID, actionexecutionlog.FieldInstanceID:
			values[i] = new(sql.NullString)
		case actionexecutionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionExecutionLog fields.
func (_m *ActionExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionexecutionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actionexecutionlog.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case actionexecutionlog.FieldQueueItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_item_id", values[i])
			} else if value.Valid {
				_m.QueueItemID = value.String
			}
		case actionexecutionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = actionexecutionlog.Status(value.String)
			}
		case actionexecutionlog.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = int(value.Int64)
			}
		case actionexecutionlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case actionexecutionlog.FieldCreatedEntityRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field created_entity_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CreatedEntityRefs); err != nil {
					return fmt.Errorf("unmarshal field created_entity_refs: %w", err)
				}
			}
		case actionexecutionlog.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case actionexecutionlog.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case actionexecutionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ActionExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActionExecutionLog.
// Note that you need to call ActionExecutionLog.Unwrap() before calling this method if this ActionExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionExecutionLog) Update() *ActionExecutionLogUpdateOne {
	return NewActionExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionExecutionLog) Unwrap() *ActionExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ActionExecutionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("queue_item_id=")
	builder.WriteString(_m.QueueItemID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("execution_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimeMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_entity_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedEntityRefs))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ActionExecutionLogs is a parsable slice of ActionExecutionLog.
type ActionExecutionLogs []*ActionExecutionLog
