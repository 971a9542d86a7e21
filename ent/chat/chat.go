// Code generated by ent, DO NOT EDIT.

package chat

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chat type in the database.
	Label = "chat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldUnreadCount holds the string denoting the unread_count field in the database.
	FieldUnreadCount = "unread_count"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldPinned holds the string denoting the pinned field in the database.
	FieldPinned = "pinned"
	// FieldMuted holds the string denoting the muted field in the database.
	FieldMuted = "muted"
	// FieldMuteEndTs holds the string denoting the mute_end_ts field in the database.
	FieldMuteEndTs = "mute_end_ts"
	// FieldLastMessageTs holds the string denoting the last_message_ts field in the database.
	FieldLastMessageTs = "last_message_ts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// Table holds the table name of the chat in the database.
	Table = "chats"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "chats"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for chat fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldInstanceID,
	FieldType,
	FieldUnreadCount,
	FieldArchived,
	FieldPinned,
	FieldMuted,
	FieldMuteEndTs,
	FieldLastMessageTs,
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
	// DefaultUnreadCount holds the default value on creation for the "unread_count" field.
	DefaultUnreadCount int
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultPinned holds the default value on creation for the "pinned" field.
	DefaultPinned bool
	// DefaultMuted holds the default value on creation for the "muted" field.
	DefaultMuted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeIndividual Type = "individual"
	TypeGroup      Type = "group"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeIndividual, TypeGroup:
		return nil
	default:
		return fmt.Errorf("chat: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Chat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByUnreadCount orders the results by the unread_count field.
func ByUnreadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnreadCount, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByPinned orders the results by the pinned field.
func ByPinned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPinned, opts...).ToFunc()
}

// ByMuted orders the results by the muted field.
func ByMuted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMuted, opts...).ToFunc()
}

// ByMuteEndTs orders the results by the mute_end_ts field.
func ByMuteEndTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMuteEndTs, opts...).ToFunc()
}

// ByLastMessageTs orders the results by the last_message_ts field.
func ByLastMessageTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageTs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
