// Code generated by ent, DO NOT EDIT.

package calllog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the calllog type in the database.
	Label = "call_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCallLogID holds the string denoting the call_log_id field in the database.
	FieldCallLogID = "call_log_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldFromJid holds the string denoting the from_jid field in the database.
	FieldFromJid = "from_jid"
	// FieldFromMe holds the string denoting the from_me field in the database.
	FieldFromMe = "from_me"
	// FieldStartTs holds the string denoting the start_ts field in the database.
	FieldStartTs = "start_ts"
	// FieldIsVideo holds the string denoting the is_video field in the database.
	FieldIsVideo = "is_video"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// Table holds the table name of the calllog in the database.
	Table = "call_logs"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "call_logs"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for calllog fields.
var Columns = []string{
	FieldID,
	FieldCallLogID,
	FieldInstanceID,
	FieldChatID,
	FieldFromJid,
	FieldFromMe,
	FieldStartTs,
	FieldIsVideo,
	FieldDurationSeconds,
	FieldOutcome,
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
	// DefaultFromMe holds the default value on creation for the "from_me" field.
	DefaultFromMe bool
	// DefaultStartTs holds the default value on creation for the "start_ts" field.
	DefaultStartTs func() time.Time
	// DefaultIsVideo holds the default value on creation for the "is_video" field.
	DefaultIsVideo bool
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// OutcomeMissed is the default value of the Outcome enum.
const DefaultOutcome = OutcomeMissed

// Outcome values.
const (
	OutcomeAnswered Outcome = "answered"
	OutcomeMissed   Outcome = "missed"
	OutcomeDeclined Outcome = "declined"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeAnswered, OutcomeMissed, OutcomeDeclined:
		return nil
	default:
		return fmt.Errorf("calllog: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the CallLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCallLogID orders the results by the call_log_id field.
func ByCallLogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallLogID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByFromJid orders the results by the from_jid field.
func ByFromJid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromJid, opts...).ToFunc()
}

// ByFromMe orders the results by the from_me field.
func ByFromMe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromMe, opts...).ToFunc()
}

// ByStartTs orders the results by the start_ts field.
func ByStartTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTs, opts...).ToFunc()
}

// ByIsVideo orders the results by the is_video field.
func ByIsVideo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVideo, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInstanceField orders the results by instance field.
func ByInstanceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstanceStep(), sql.OrderByField(field, opts...))
	}
}
func newInstanceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstanceInverseTable, InstanceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
	)
}
