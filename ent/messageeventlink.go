// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/calendarevent"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
)

// MessageEventLink is the model entity for the MessageEventLink schema.
type MessageEventLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Message row ID (not the provider key)
	MessageID string `json:"message_id,omitempty"`
	// CalendarEventID holds the value of the "calendar_event_id" field.
	CalendarEventID string `json:"calendar_event_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// LinkType holds the value of the "link_type" field.
	LinkType messageeventlink.LinkType `json:"link_type,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageEventLinkQuery when eager-loading is set.
	Edges        MessageEventLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEventLinkEdges holds the relations/edges for other nodes in the graph.
type MessageEventLinkEdges struct {
	// Message holds the value of the message edge.
	Message *Message `json:"message,omitempty"`
	// CalendarEvent holds the value of the calendar_event edge.
	CalendarEvent *CalendarEvent `json:"calendar_event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessageOrErr returns the Message value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEventLinkEdges) MessageOrErr() (*Message, error) {
	if e.Message != nil {
		return e.Message, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "message"}
}

// CalendarEventOrErr returns the CalendarEvent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEventLinkEdges) CalendarEventOrErr() (*CalendarEvent, error) {
	if e.CalendarEvent != nil {
		return e.CalendarEvent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: calendarevent.Label}
	}
	return nil, &NotLoadedError{edge: "calendar_event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageEventLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messageeventlink.FieldID, messageeventlink.FieldMessageID, messageeventlink.FieldCalendarEventID, messageeventlink.FieldRuleID, messageeventlink.FieldLinkType, messageeventlink.FieldInstanceID:
			values[i] = new(sql.NullString)
		case messageeventlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageEventLink fields.
func (_m *MessageEventLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messageeventlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messageeventlink.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case messageeventlink.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = value.String
			}
		case messageeventlink.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case messageeventlink.FieldLinkType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link_type", values[i])
			} else if value.Valid {
				_m.LinkType = messageeventlink.LinkType(value.String)
			}
		case messageeventlink.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case messageeventlink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MessageEventLink.
// This includes values selected through modifiers, order, etc.
func (_m *MessageEventLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessage queries the "message" edge of the MessageEventLink entity.
func (_m *MessageEventLink) QueryMessage() *MessageQuery {
	return NewMessageEventLinkClient(_m.config).QueryMessage(_m)
}

// QueryCalendarEvent queries the "calendar_event" edge of the MessageEventLink entity.
func (_m *MessageEventLink) QueryCalendarEvent() *CalendarEventQuery {
	return NewMessageEventLinkClient(_m.config).QueryCalendarEvent(_m)
}

// Update returns a builder for updating this MessageEventLink.
// Note that you need to call MessageEventLink.Unwrap() before calling this method if this MessageEventLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageEventLink) Update() *MessageEventLinkUpdateOne {
	return NewMessageEventLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageEventLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageEventLink) Unwrap() *MessageEventLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageEventLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageEventLink) String() string {
	var builder strings.Builder
	builder.WriteString("MessageEventLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("calendar_event_id=")
	builder.WriteString(_m.CalendarEventID)
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

// MessageEventLinks is a parsable slice of MessageEventLink.
type MessageEventLinks []*MessageEventLink
