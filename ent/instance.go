// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/instance"
)

// Instance is the model entity for the Instance schema.
type Instance struct {
	config `json:"-"`
	// ID of the ent.
	// Provider instance name (webhook path segment)
	ID string `json:"id,omitempty"`
	// JID of the connected account; used for from-me detection
	OwnerJid string `json:"owner_jid,omitempty"`
	// CreatorUserID holds the value of the "creator_user_id" field.
	CreatorUserID string `json:"creator_user_id,omitempty"`
	// Per-instance provider base URL override
	APIBaseURL string `json:"api_base_url,omitempty"`
	// Per-instance provider API key
	APIKey string `json:"-"`
	// Cached: connected account belongs to the workspace owner
	IsOwner bool `json:"is_owner,omitempty"`
	// ConnectionState holds the value of the "connection_state" field.
	ConnectionState instance.ConnectionState `json:"connection_state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstanceQuery when eager-loading is set.
	Edges        InstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstanceEdges holds the relations/edges for other nodes in the graph.
type InstanceEdges struct {
	// Contacts holds the value of the contacts edge.
	Contacts []*Contact `json:"contacts,omitempty"`
	// Chats holds the value of the chats edge.
	Chats []*Chat `json:"chats,omitempty"`
	// Groups holds the value of the groups edge.
	Groups []*Group `json:"groups,omitempty"`
	// GroupParticipants holds the value of the group_participants edge.
	GroupParticipants []*GroupParticipant `json:"group_participants,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// StatusUpdates holds the value of the status_updates edge.
	StatusUpdates []*MessageStatusUpdate `json:"status_updates,omitempty"`
	// Reactions holds the value of the reactions edge.
	Reactions []*MessageReaction `json:"reactions,omitempty"`
	// CallLogs holds the value of the call_logs edge.
	CallLogs []*CallLog `json:"call_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) ContactsOrErr() ([]*Contact, error) {
	if e.loadedTypes[0] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// ChatsOrErr returns the Chats value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) ChatsOrErr() ([]*Chat, error) {
	if e.loadedTypes[1] {
		return e.Chats, nil
	}
	return nil, &NotLoadedError{edge: "chats"}
}

// GroupsOrErr returns the Groups value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) GroupsOrErr() ([]*Group, error) {
	if e.loadedTypes[2] {
		return e.Groups, nil
	}
	return nil, &NotLoadedError{edge: "groups"}
}

// GroupParticipantsOrErr returns the GroupParticipants value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) GroupParticipantsOrErr() ([]*GroupParticipant, error) {
	if e.loadedTypes[3] {
		return e.GroupParticipants, nil
	}
	return nil, &NotLoadedError{edge: "group_participants"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[4] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// StatusUpdatesOrErr returns the StatusUpdates value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) StatusUpdatesOrErr() ([]*MessageStatusUpdate, error) {
	if e.loadedTypes[5] {
		return e.StatusUpdates, nil
	}
	return nil, &NotLoadedError{edge: "status_updates"}
}

// ReactionsOrErr returns the Reactions value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) ReactionsOrErr() ([]*MessageReaction, error) {
	if e.loadedTypes[6] {
		return e.Reactions, nil
	}
	return nil, &NotLoadedError{edge: "reactions"}
}

// CallLogsOrErr returns the CallLogs value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) CallLogsOrErr() ([]*CallLog, error) {
	if e.loadedTypes[7] {
		return e.CallLogs, nil
	}
	return nil, &NotLoadedError{edge: "call_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instance.FieldIsOwner:
			values[i] = new(sql.NullBool)
		case instance.FieldID, instance.FieldOwnerJid, instance.FieldCreatorUserID, instance.FieldAPIBaseURL, instance.FieldAPIKey, instance.FieldConnectionState:
			values[i] = new(sql.NullString)
		case instance.FieldCreatedAt, instance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instance fields.
func (_m *Instance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case instance.FieldOwnerJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_jid", values[i])
			} else if value.Valid {
				_m.OwnerJid = value.String
			}
		case instance.FieldCreatorUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_user_id", values[i])
			} else if value.Valid {
				_m.CreatorUserID = value.String
			}
		case instance.FieldAPIBaseURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_base_url", values[i])
			} else if value.Valid {
				_m.APIBaseURL = value.String
			}
		case instance.FieldAPIKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key", values[i])
			} else if value.Valid {
				_m.APIKey = value.String
			}
		case instance.FieldIsOwner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_owner", values[i])
			} else if value.Valid {
				_m.IsOwner = value.Bool
			}
		case instance.FieldConnectionState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_state", values[i])
			} else if value.Valid {
				_m.ConnectionState = instance.ConnectionState(value.String)
			}
		case instance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case instance.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Instance.
// This includes values selected through modifiers, order, etc.
func (_m *Instance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContacts queries the "contacts" edge of the Instance entity.
func (_m *Instance) QueryContacts() *ContactQuery {
	return NewInstanceClient(_m.config).QueryContacts(_m)
}

// QueryChats queries the "chats" edge of the Instance entity.
func (_m *Instance) QueryChats() *ChatQuery {
	return NewInstanceClient(_m.config).QueryChats(_m)
}

// QueryGroups queries the "groups" edge of the Instance entity.
func (_m *Instance) QueryGroups() *GroupQuery {
	return NewInstanceClient(_m.config).QueryGroups(_m)
}

// QueryGroupParticipants queries the "group_participants" edge of the Instance entity.
func (_m *Instance) QueryGroupParticipants() *GroupParticipantQuery {
	return NewInstanceClient(_m.config).QueryGroupParticipants(_m)
}

// QueryMessages queries the "messages" edge of the Instance entity.
func (_m *Instance) QueryMessages() *MessageQuery {
	return NewInstanceClient(_m.config).QueryMessages(_m)
}

// QueryStatusUpdates queries the "status_updates" edge of the Instance entity.
func (_m *Instance) QueryStatusUpdates() *MessageStatusUpdateQuery {
	return NewInstanceClient(_m.config).QueryStatusUpdates(_m)
}

// QueryReactions queries the "reactions" edge of the Instance entity.
func (_m *Instance) QueryReactions() *MessageReactionQuery {
	return NewInstanceClient(_m.config).QueryReactions(_m)
}

// QueryCallLogs queries the "call_logs" edge of the Instance entity.
func (_m *Instance) QueryCallLogs() *CallLogQuery {
	return NewInstanceClient(_m.config).QueryCallLogs(_m)
}

// Update returns a builder for updating this Instance.
// Note that you need to call Instance.Unwrap() before calling this method if this Instance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Instance) Update() *InstanceUpdateOne {
	return NewInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Instance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Instance) Unwrap() *Instance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Instance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Instance) String() string {
	var builder strings.Builder
	builder.WriteString("Instance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_jid=")
	builder.WriteString(_m.OwnerJid)
	builder.WriteString(", ")
	builder.WriteString("creator_user_id=")
	builder.WriteString(_m.CreatorUserID)
	builder.WriteString(", ")
	builder.WriteString("api_base_url=")
	builder.WriteString(_m.APIBaseURL)
	builder.WriteString(", ")
	builder.WriteString("api_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_owner=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOwner))
	builder.WriteString(", ")
	builder.WriteString("connection_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConnectionState))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Instances is a parsable slice of Instance.
type Instances []*Instance
