// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
)

// MessageStatusUpdate is the model entity for the MessageStatusUpdate schema.
type MessageStatusUpdate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider message key; the message row may not exist yet
	MessageID string `json:"message_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// Status holds the value of the "status" field.
	Status messagestatusupdate.Status `json:"status,omitempty"`
	// Group receipts carry the acting participant
	ParticipantJid string `json:"participant_jid,omitempty"`
	// StatusTs holds the value of the "status_ts" field.
	StatusTs time.Time `json:"status_ts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageStatusUpdateQuery when eager-loading is set.
	Edges        MessageStatusUpdateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageStatusUpdateEdges holds the relations/edges for other nodes in the graph.
type MessageStatusUpdateEdges struct {
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageStatusUpdateEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageStatusUpdate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagestatusupdate.FieldID, messagestatusupdate.FieldMessageID, messagestatusupdate.FieldInstanceID, messagestatusupdate.FieldStatus, messagestatusupdate.FieldParticipantJid:
			values[i] = new(sql.NullString)
		case messagestatusupdate.FieldStatusTs, messagestatusupdate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageStatusUpdate fields.
func (_m *MessageStatusUpdate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagestatusupdate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messagestatusupdate.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messagestatusupdate.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case messagestatusupdate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = messagestatusupdate.Status(value.String)
			}
		case messagestatusupdate.FieldParticipantJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_jid", values[i])
			} else if value.Valid {
				_m.ParticipantJid = value.String
			}
		case messagestatusupdate.FieldStatusTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_ts", values[i])
			} else if value.Valid {
				_m.StatusTs = value.Time
			}
		case messagestatusupdate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MessageStatusUpdate.
// This includes values selected through modifiers, order, etc.
func (_m *MessageStatusUpdate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the MessageStatusUpdate entity.
func (_m *MessageStatusUpdate) QueryInstance() *InstanceQuery {
	return NewMessageStatusUpdateClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this MessageStatusUpdate.
// Note that you need to call MessageStatusUpdate.Unwrap() before calling this method if this MessageStatusUpdate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageStatusUpdate) Update() *MessageStatusUpdateUpdateOne {
	return NewMessageStatusUpdateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageStatusUpdate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageStatusUpdate) Unwrap() *MessageStatusUpdate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageStatusUpdate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageStatusUpdate) String() string {
	var builder strings.Builder
	builder.WriteString("MessageStatusUpdate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("participant_jid=")
	builder.WriteString(_m.ParticipantJid)
	builder.WriteString(", ")
	builder.WriteString("status_ts=")
	builder.WriteString(_m.StatusTs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageStatusUpdates is a parsable slice of MessageStatusUpdate.
type MessageStatusUpdates []*MessageStatusUpdate
