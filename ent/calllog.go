// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/instance"
)

// CallLog is the model entity for the CallLog schema.
type CallLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider call ID
	CallLogID string `json:"call_log_id,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// FromJid holds the value of the "from_jid" field.
	FromJid string `json:"from_jid,omitempty"`
	// FromMe holds the value of the "from_me" field.
	FromMe bool `json:"from_me,omitempty"`
	// StartTs holds the value of the "start_ts" field.
	StartTs time.Time `json:"start_ts,omitempty"`
	// IsVideo holds the value of the "is_video" field.
	IsVideo bool `json:"is_video,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome calllog.Outcome `json:"outcome,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CallLogQuery when eager-loading is set.
	Edges        CallLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CallLogEdges holds the relations/edges for other nodes in the graph.
type CallLogEdges struct {
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallLogEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CallLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calllog.FieldFromMe, calllog.FieldIsVideo:
			values[i] = new(sql.NullBool)
		case calllog.FieldDurationSeconds:
			values[i] = new(sql.NullInt64)
		case calllog.FieldID, calllog.FieldCallLogID, calllog.FieldInstanceID, calllog.FieldChatID, calllog.FieldFromJid, calllog.FieldOutcome:
			values[i] = new(sql.NullString)
		case calllog.FieldStartTs, calllog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CallLog fields.
func (_m *CallLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calllog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case calllog.FieldCallLogID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_log_id", values[i])
			} else if value.Valid {
				_m.CallLogID = value.String
			}
		case calllog.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case calllog.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case calllog.FieldFromJid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_jid", values[i])
			} else if value.Valid {
				_m.FromJid = value.String
			}
		case calllog.FieldFromMe:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_me", values[i])
			} else if value.Valid {
				_m.FromMe = value.Bool
			}
		case calllog.FieldStartTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_ts", values[i])
			} else if value.Valid {
				_m.StartTs = value.Time
			}
		case calllog.FieldIsVideo:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_video", values[i])
			} else if value.Valid {
				_m.IsVideo = value.Bool
			}
		case calllog.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case calllog.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = calllog.Outcome(value.String)
			}
		case calllog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CallLog.
// This includes values selected through modifiers, order, etc.
func (_m *CallLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the CallLog entity.
func (_m *CallLog) QueryInstance() *InstanceQuery {
	return NewCallLogClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this CallLog.
// Note that you need to call CallLog.Unwrap() before calling this method if this CallLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CallLog) Update() *CallLogUpdateOne {
	return NewCallLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CallLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CallLog) Unwrap() *CallLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CallLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CallLog) String() string {
	var builder strings.Builder
	builder.WriteString("CallLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("call_log_id=")
	builder.WriteString(_m.CallLogID)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("from_jid=")
	builder.WriteString(_m.FromJid)
	builder.WriteString(", ")
	builder.WriteString("from_me=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromMe))
	builder.WriteString(", ")
	builder.WriteString("start_ts=")
	builder.WriteString(_m.StartTs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_video=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVideo))
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CallLogs is a parsable slice of CallLog.
type CallLogs []*CallLog
