// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/message"
)

// Message is the model entity for the Message schema.
type Message struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider message key (key.id)
	MessageID string `json:"message_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// Chat JID
	ChatID string `json:"chat_id,omitempty"`
	// SenderJid holds the value of the "sender_jid" field.
	SenderJid string `json:"sender_jid,omitempty"`
	// key.fromMe OR sender_jid == instance.owner_jid
	FromMe bool `json:"from_me,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType message.MessageType `json:"message_type,omitempty"`
	// Extracted text or caption
	Content string `json:"content,omitempty"`
	// Provider timestamp, normalized; never zero
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Unenforced reference; resolved on read
	QuotedMessageID *string `json:"quoted_message_id,omitempty"`
	// IsForwarded holds the value of the "is_forwarded" field.
	IsForwarded bool `json:"is_forwarded,omitempty"`
	// ForwardingScore holds the value of the "forwarding_score" field.
	ForwardingScore int `json:"forwarding_score,omitempty"`
	// IsStarred holds the value of the "is_starred" field.
	IsStarred bool `json:"is_starred,omitempty"`
	// IsEdited holds the value of the "is_edited" field.
	IsEdited bool `json:"is_edited,omitempty"`
	// LastEditedAt holds the value of the "last_edited_at" field.
	LastEditedAt *time.Time `json:"last_edited_at,omitempty"`
	// SourcePlatform holds the value of the "source_platform" field.
	SourcePlatform string `json:"source_platform,omitempty"`
	// Full original event JSON, secret fields redacted
	RawPayload map[string]interface{} `json:"raw_payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageQuery when eager-loading is set.
	Edges        MessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEdges holds the relations/edges for other nodes in the graph.
type MessageEdges struct {
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// TaskLinks holds the value of the task_links edge.
	TaskLinks []*MessageTaskLink `json:"task_links,omitempty"`
	// EventLinks holds the value of the event_links edge.
	EventLinks []*MessageEventLink `json:"event_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// TaskLinksOrErr returns the TaskLinks value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) TaskLinksOrErr() ([]*MessageTaskLink, error) {
	if e.loadedTypes[1] {
		return e.TaskLinks, nil
	}
	return nil, &NotLoadedError{edge: "task_links"}
}

// EventLinksOrErr returns the EventLinks value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) EventLinksOrErr() ([]*MessageEventLink, error) {
	if e.loadedTypes[2] {
		return e.EventLinks, nil
	}
	return nil, &NotLoadedError{edge: "event_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Message) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case message.FieldRawPayload:
			values[i] = new([]byte)
		case message.FieldFromMe, message.FieldIsForwarded, message.FieldIsStarred, message.FieldIsEdited:
			values[i] = new(sql.NullBool)
		case message.FieldForwardingScore:
			values[i] = new(sql.NullInt64)
		case message.FieldID, message.FieldMessageID, message.FieldInstanceID, message.FieldChatID, message.FieldSenderJid, message.FieldMessageType, message.FieldContent, message.FieldQuotedMessageID, message.FieldSourcePlatform:
			values[i] = new(sql.NullString)
		case message.FieldTimestamp, message.FieldLastEditedAt, message.FieldCreatedAt, message.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Message fields.
func (_m *Message) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case message.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case message.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case message.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case message.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case message.FieldSenderJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_jid", values[i])
			} else if value.Valid {
				_m.SenderJid = value.String
			}
		case message.FieldFromMe:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_me", values[i])
			} else if value.Valid {
				_m.FromMe = value.Bool
			}
		case message.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = message.MessageType(value.String)
			}
		case message.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case message.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case message.FieldQuotedMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quoted_message_id", values[i])
			} else if value.Valid {
				_m.QuotedMessageID = new(string)
				*_m.QuotedMessageID = value.String
			}
		case message.FieldIsForwarded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_forwarded", values[i])
			} else if value.Valid {
				_m.IsForwarded = value.Bool
			}
		case message.FieldForwardingScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field forwarding_score", values[i])
			} else if value.Valid {
				_m.ForwardingScore = int(value.Int64)
			}
		case message.FieldIsStarred:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_starred", values[i])
			} else if value.Valid {
				_m.IsStarred = value.Bool
			}
		case message.FieldIsEdited:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_edited", values[i])
			} else if value.Valid {
				_m.IsEdited = value.Bool
			}
		case message.FieldLastEditedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_edited_at", values[i])
			} else if value.Valid {
				_m.LastEditedAt = new(time.Time)
				*_m.LastEditedAt = value.Time
			}
		case message.FieldSourcePlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_platform", values[i])
			} else if value.Valid {
				_m.SourcePlatform = value.String
			}
		case message.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		case message.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case message.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Message.
// This includes values selected through modifiers, order, etc.
func (_m *Message) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the Message entity.
func (_m *Message) QueryInstance() *InstanceQuery {
	return NewMessageClient(_m.config).QueryInstance(_m)
}

// QueryTaskLinks queries the "task_links" edge of the Message entity.
func (_m *Message) QueryTaskLinks() *MessageTaskLinkQuery {
	return NewMessageClient(_m.config).QueryTaskLinks(_m)
}

// QueryEventLinks queries the "event_links" edge of the Message entity.
func (_m *Message) QueryEventLinks() *MessageEventLinkQuery {
	return NewMessageClient(_m.config).QueryEventLinks(_m)
}

// Update returns a builder for updating this Message.
// Note that you need to call Message.Unwrap() before calling this method if this Message
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Message) Update() *MessageUpdateOne {
	return NewMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Message entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Message) Unwrap() *Message {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Message is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Message) String() string {
	var builder strings.Builder
	builder.WriteString("Message(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("sender_jid=")
	builder.WriteString(_m.SenderJid)
	builder.WriteString(", ")
	builder.WriteString("from_me=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromMe))
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.QuotedMessageID; v != nil {
		builder.WriteString("quoted_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_forwarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsForwarded))
	builder.WriteString(", ")
	builder.WriteString("forwarding_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForwardingScore))
	builder.WriteString(", ")
	builder.WriteString("is_starred=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStarred))
	builder.WriteString(", ")
	builder.WriteString("is_edited=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEdited))
	builder.WriteString(", ")
	if v := _m.LastEditedAt; v != nil {
		builder.WriteString("last_edited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("source_platform=")
	builder.WriteString(_m.SourcePlatform)
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Messages is a parsable slice of Message.
type Messages []*Message
