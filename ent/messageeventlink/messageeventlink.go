// Code generated by ent, DO NOT EDIT.

package messageeventlink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the messageeventlink type in the database.
	Label = "message_event_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "link_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldCalendarEventID holds the string denoting the calendar_event_id field in the database.
	FieldCalendarEventID = "calendar_event_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldLinkType holds the string denoting the link_type field in the database.
	FieldLinkType = "link_type"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMessage holds the string denoting the message edge name in mutations.
	EdgeMessage = "message"
	// EdgeCalendarEvent holds the string denoting the calendar_event edge name in mutations.
	EdgeCalendarEvent = "calendar_event"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "id"
	// CalendarEventFieldID holds the string denoting the ID field of the CalendarEvent.
	CalendarEventFieldID = "event_id"
	// Table holds the table name of the messageeventlink in the database.
	Table = "message_event_links"
	// MessageTable is the table that holds the message relation/edge.
	MessageTable = "message_event_links"
	// MessageInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessageInverseTable = "messages"
	// MessageColumn is the table column denoting the message relation/edge.
	MessageColumn = "message_id"
	// CalendarEventTable is the table that holds the calendar_event relation/edge.
	CalendarEventTable = "message_event_links"
	// CalendarEventInverseTable is the table name for the CalendarEvent entity.
	// It exists in this package in order to avoid circular dependency with the "calendarevent" package.
	CalendarEventInverseTable = "calendar_events"
	// CalendarEventColumn is the table column denoting the calendar_event relation/edge.
	CalendarEventColumn = "calendar_event_id"
)

// Columns holds all SQL columns for messageeventlink fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldCalendarEventID,
	FieldRuleID,
	FieldLinkType,
	FieldInstanceID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LinkType defines the type for the "link_type" enum field.
type LinkType string

// LinkTypeTrigger is the default value of the LinkType enum.
const DefaultLinkType = LinkTypeTrigger

// LinkType values.
const (
	LinkTypeTrigger         LinkType = "trigger"
	LinkTypeContext         LinkType = "context"
	LinkTypeReply           LinkType = "reply"
	LinkTypeForwardFromTask LinkType = "forward_from_task"
	LinkTypeMessageFromTask LinkType = "message_from_task"
)

func (lt LinkType) String() string {
	return string(lt)
}

// LinkTypeValidator is a validator for the "link_type" field enum values. It is called by the builders before save.
func LinkTypeValidator(lt LinkType) error {
	switch lt {
	case LinkTypeTrigger, LinkTypeContext, LinkTypeReply, LinkTypeForwardFromTask, LinkTypeMessageFromTask:
		return nil
	default:
		return fmt.Errorf("messageeventlink: invalid enum value for link_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the MessageEventLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByCalendarEventID orders the results by the calendar_event_id field.
func ByCalendarEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarEventID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByLinkType orders the results by the link_type field.
func ByLinkType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkType, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMessageField orders the results by message field.
func ByMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageStep(), sql.OrderByField(field, opts...))
	}
}

// ByCalendarEventField orders the results by calendar_event field.
func ByCalendarEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCalendarEventStep(), sql.OrderByField(field, opts...))
	}
}
func newMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
	)
}
func newCalendarEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarEventInverseTable, CalendarEventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CalendarEventTable, CalendarEventColumn),
	)
}
