// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/calendarevent"
)

// CalendarEvent is the model entity for the CalendarEvent schema.
type CalendarEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Filled when the parser flags a videocall location
	ConferenceURL string `json:"conference_url,omitempty"`
	// Attendees holds the value of the "attendees" field.
	Attendees []string `json:"attendees,omitempty"`
	// Recurrence holds the value of the "recurrence" field.
	Recurrence string `json:"recurrence,omitempty"`
	// SpaceID holds the value of the "space_id" field.
	SpaceID string `json:"space_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarEventQuery when eager-loading is set.
	Edges        CalendarEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarEventEdges holds the relations/edges for other nodes in the graph.
type CalendarEventEdges struct {
	// MessageLinks holds the value of the message_links edge.
	MessageLinks []*MessageEventLink `json:"message_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessageLinksOrErr returns the MessageLinks value or an error if the edge
// was not loaded in eager-loading.
func (e CalendarEventEdges) MessageLinksOrErr() ([]*MessageEventLink, error) {
	if e.loadedTypes[0] {
		return e.MessageLinks, nil
	}
	return nil, &NotLoadedError{edge: "message_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldAttendees, calendarevent.FieldMetadata:
			values[i] = new([]byte)
		case calendarevent.FieldID, calendarevent.FieldTitle, calendarevent.FieldLocation, calendarevent.FieldConferenceURL, calendarevent.FieldRecurrence, calendarevent.FieldSpaceID, calendarevent.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case calendarevent.FieldStartTime, calendarevent.FieldEndTime, calendarevent.FieldCreatedAt, calendarevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarEvent fields.
func (_m *CalendarEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case calendarevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case calendarevent.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case calendarevent.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case calendarevent.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case calendarevent.FieldConferenceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_url", values[i])
			} else if value.Valid {
				_m.ConferenceURL = value.String
			}
		case calendarevent.FieldAttendees:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attendees", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attendees); err != nil {
					return fmt.Errorf("unmarshal field attendees: %w", err)
				}
			}
		case calendarevent.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = value.String
			}
		case calendarevent.FieldSpaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field space_id", values[i])
			} else if value.Valid {
				_m.SpaceID = value.String
			}
		case calendarevent.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case calendarevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case calendarevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case calendarevent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessageLinks queries the "message_links" edge of the CalendarEvent entity.
func (_m *CalendarEvent) QueryMessageLinks() *MessageEventLinkQuery {
	return NewCalendarEventClient(_m.config).QueryMessageLinks(_m)
}

// Update returns a builder for updating this CalendarEvent.
// Note that you need to call CalendarEvent.Unwrap() before calling this method if this CalendarEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarEvent) Update() *CalendarEventUpdateOne {
	return NewCalendarEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarEvent) Unwrap() *CalendarEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("conference_url=")
	builder.WriteString(_m.ConferenceURL)
	builder.WriteString(", ")
	builder.WriteString("attendees=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attendees))
	builder.WriteString(", ")
	builder.WriteString("recurrence=")
	builder.WriteString(_m.Recurrence)
	builder.WriteString(", ")
	builder.WriteString("space_id=")
	builder.WriteString(_m.SpaceID)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarEvents is a parsable slice of CalendarEvent.
type CalendarEvents []*CalendarEvent
