// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the calendarevent type in the database.
	Label = "calendar_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldConferenceURL holds the string denoting the conference_url field in the database.
	FieldConferenceURL = "conference_url"
	// FieldAttendees holds the string denoting the attendees field in the database.
	FieldAttendees = "attendees"
	// FieldRecurrence holds the string denoting the recurrence field in the database.
	FieldRecurrence = "recurrence"
	// FieldSpaceID holds the string denoting the space_id field in the database.
	FieldSpaceID = "space_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMessageLinks holds the string denoting the message_links edge name in mutations.
	EdgeMessageLinks = "message_links"
	// MessageEventLinkFieldID holds the string denoting the ID field of the MessageEventLink.
	MessageEventLinkFieldID = "link_id"
	// Table holds the table name of the calendarevent in the database.
	Table = "calendar_events"
	// MessageLinksTable is the table that holds the message_links relation/edge.
	MessageLinksTable = "message_event_links"
	// MessageLinksInverseTable is the table name for the MessageEventLink entity.
	// It exists in this package in order to avoid circular dependency with the "messageeventlink" package.
	MessageLinksInverseTable = "message_event_links"
	// MessageLinksColumn is the table column denoting the message_links relation/edge.
	MessageLinksColumn = "calendar_event_id"
)

// Columns holds all SQL columns for calendarevent fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldStartTime,
	FieldEndTime,
	FieldLocation,
	FieldConferenceURL,
	FieldAttendees,
	FieldRecurrence,
	FieldSpaceID,
	FieldCreatedBy,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CalendarEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByConferenceURL orders the results by the conference_url field.
func ByConferenceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceURL, opts...).ToFunc()
}

// ByRecurrence orders the results by the recurrence field.
func ByRecurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrence, opts...).ToFunc()
}

// BySpaceID orders the results by the space_id field.
func BySpaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpaceID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMessageLinksCount orders the results by message_links count.
func ByMessageLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessageLinksStep(), opts...)
	}
}

// ByMessageLinks orders the results by message_links terms.
func ByMessageLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessageLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageLinksInverseTable, MessageEventLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessageLinksTable, MessageLinksColumn),
	)
}
