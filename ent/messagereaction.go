// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/messagereaction"
)

// MessageReaction is the model entity for the MessageReaction schema.
type MessageReaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider key of the reacted-to message
	MessageID string `json:"message_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// ReactorJid holds the value of the "reactor_jid" field.
	ReactorJid string `json:"reactor_jid,omitempty"`
	// Empty string denotes removal
	ReactionEmoji string `json:"reaction_emoji,omitempty"`
	// FromMe holds the value of the "from_me" field.
	FromMe bool `json:"from_me,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageReactionQuery when eager-loading is set.
	Edges        MessageReactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageReactionEdges holds the relations/edges for other nodes in the graph.
type MessageReactionEdges struct {
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageReactionEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageReaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagereaction.FieldFromMe:
			values[i] = new(sql.NullBool)
		case messagereaction.FieldID, messagereaction.FieldMessageID, messagereaction.FieldInstanceID, messagereaction.FieldReactorJid, messagereaction.FieldReactionEmoji:
			values[i] = new(sql.NullString)
		case messagereaction.FieldTimestamp, messagereaction.FieldCreatedAt, messagereaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageReaction fields.
func (_m *MessageReaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagereaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messagereaction.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messagereaction.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case messagereaction.FieldReactorJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reactor_jid", values[i])
			} else if value.Valid {
				_m.ReactorJid = value.String
			}
		case messagereaction.FieldReactionEmoji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reaction_emoji", values[i])
			} else if value.Valid {
				_m.ReactionEmoji = value.String
			}
		case messagereaction.FieldFromMe:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_me", values[i])
			} else if value.Valid {
				_m.FromMe = value.Bool
			}
		case messagereaction.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case messagereaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case messagereaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageReaction.
// This includes values selected through modifiers, order, etc.
func (_m *MessageReaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the MessageReaction entity.
func (_m *MessageReaction) QueryInstance() *InstanceQuery {
	return NewMessageReactionClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this MessageReaction.
// Note that you need to call MessageReaction.Unwrap() before calling this method if this MessageReaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageReaction) Update() *MessageReactionUpdateOne {
	return NewMessageReactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageReaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageReaction) Unwrap() *MessageReaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageReaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageReaction) String() string {
	var builder strings.Builder
	builder.WriteString("MessageReaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("reactor_jid=")
	builder.WriteString(_m.ReactorJid)
	builder.WriteString(", ")
	builder.WriteString("reaction_emoji=")
	builder.WriteString(_m.ReactionEmoji)
	builder.WriteString(", ")
	builder.WriteString("from_me=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromMe))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageReactions is a parsable slice of MessageReaction.
type MessageReactions []*MessageReaction
