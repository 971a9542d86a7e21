// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/task"
)

// MessageTaskLink is the model entity for the MessageTaskLink schema.
type MessageTaskLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Message row ID (not the provider key)
	MessageID string `json:"message_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// LinkType holds the value of the "link_type" field.
	LinkType messagetasklink.LinkType `json:"link_type,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageTaskLinkQuery when eager-loading is set.
	Edges        MessageTaskLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageTaskLinkEdges holds the relations/edges for other nodes in the graph.
type MessageTaskLinkEdges struct {
	// Message holds the value of the message edge.
	Message *Message `json:"message,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageTaskLinkEdges) MessageOrErr() (*Message, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageTaskLinkEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageTaskLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagetasklink.FieldID, messagetasklink.FieldMessageID, messagetasklink.FieldTaskID, messagetasklink.FieldRuleID, messagetasklink.FieldLinkType, messagetasklink.FieldInstanceID:
			values[i] = new(sql.NullString)
		case messagetasklink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageTaskLink fields.
func (_m *MessageTaskLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagetasklink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messagetasklink.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messagetasklink.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case messagetasklink.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case messagetasklink.FieldLinkType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link_type", values[i])
			} else if value.Valid {
				_m.LinkType = messagetasklink.LinkType(value.String)
			}
		case messagetasklink.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case messagetasklink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MessageTaskLink.
// This includes values selected through modifiers, order, etc.
func (_m *MessageTaskLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the MessageTaskLink entity.
func (_m *MessageTaskLink) QueryMessage() *MessageQuery {
	return NewMessageTaskLinkClient(_m.config).QueryMessage(_m)
}

// QueryTask queries the "task" edge of the MessageTaskLink entity.
func (_m *MessageTaskLink) QueryTask() *TaskQuery {
	return NewMessageTaskLinkClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this MessageTaskLink.
// Note that you need to call MessageTaskLink.Unwrap() before calling this method if this MessageTaskLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageTaskLink) Update() *MessageTaskLinkUpdateOne {
	return NewMessageTaskLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageTaskLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageTaskLink) Unwrap() *MessageTaskLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageTaskLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageTaskLink) String() string {
	var builder strings.Builder
	builder.WriteString("MessageTaskLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("link_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkType))
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageTaskLinks is a parsable slice of MessageTaskLink.
type MessageTaskLinks []*MessageTaskLink
