// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
)

// GroupParticipant is the model entity for the GroupParticipant schema.
type GroupParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Group row ID (not the JID)
	GroupID string `json:"group_id,omitempty"`
	// ParticipantJid holds the value of the "participant_jid" field.
	ParticipantJid string `json:"participant_jid,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// IsAdmin holds the value of the "is_admin" field.
	IsAdmin bool `json:"is_admin,omitempty"`
	// IsSuperAdmin holds the value of the "is_super_admin" field.
	IsSuperAdmin bool `json:"is_super_admin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GroupParticipantQuery when eager-loading is set.
	Edges        GroupParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GroupParticipantEdges holds the relations/edges for other nodes in the graph.
type GroupParticipantEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupParticipantEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupParticipantEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupparticipant.FieldIsAdmin, groupparticipant.FieldIsSuperAdmin:
			values[i] = new(sql.NullBool)
		case groupparticipant.FieldID, groupparticipant.FieldGroupID, groupparticipant.FieldParticipantJid, groupparticipant.FieldInstanceID:
			values[i] = new(sql.NullString)
		case groupparticipant.FieldCreatedAt, groupparticipant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupParticipant fields.
func (_m *GroupParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupparticipant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case groupparticipant.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case groupparticipant.FieldParticipantJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_jid", values[i])
			} else if value.Valid {
				_m.ParticipantJid = value.String
			}
		case groupparticipant.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case groupparticipant.FieldIsAdmin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_admin", values[i])
			} else if value.Valid {
				_m.IsAdmin = value.Bool
			}
		case groupparticipant.FieldIsSuperAdmin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_super_admin", values[i])
			} else if value.Valid {
				_m.IsSuperAdmin = value.Bool
			}
		case groupparticipant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case groupparticipant.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GroupParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *GroupParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the GroupParticipant entity.
func (_m *GroupParticipant) QueryGroup() *GroupQuery {
	return NewGroupParticipantClient(_m.config).QueryGroup(_m)
}

// QueryInstance queries the "instance" edge of the GroupParticipant entity.
func (_m *GroupParticipant) QueryInstance() *InstanceQuery {
	return NewGroupParticipantClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this GroupParticipant.
// Note that you need to call GroupParticipant.Unwrap() before calling this method if this GroupParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupParticipant) Update() *GroupParticipantUpdateOne {
	return NewGroupParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupParticipant) Unwrap() *GroupParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("GroupParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("participant_jid=")
	builder.WriteString(_m.ParticipantJid)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("is_admin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAdmin))
	builder.WriteString(", ")
	builder.WriteString("is_super_admin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSuperAdmin))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GroupParticipants is a parsable slice of GroupParticipant.
type GroupParticipants []*GroupParticipant
