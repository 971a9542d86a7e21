// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contact type in the database.
	Label = "contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJid holds the string denoting the jid field in the database.
	FieldJid = "jid"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldPushName holds the string denoting the push_name field in the database.
	FieldPushName = "push_name"
	// FieldVerifiedName holds the string denoting the verified_name field in the database.
	FieldVerifiedName = "verified_name"
	// FieldProfilePictureURL holds the string denoting the profile_picture_url field in the database.
	FieldProfilePictureURL = "profile_picture_url"
	// FieldIsBusiness holds the string denoting the is_business field in the database.
	FieldIsBusiness = "is_business"
	// FieldIsMe holds the string denoting the is_me field in the database.
	FieldIsMe = "is_me"
	// FieldIsBlocked holds the string denoting the is_blocked field in the database.
	FieldIsBlocked = "is_blocked"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastUpdatedAt holds the string denoting the last_updated_at field in the database.
	FieldLastUpdatedAt = "last_updated_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// Table holds the table name of the contact in the database.
	Table = "contacts"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "contacts"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for contact fields.
var Columns = []string{
	FieldID,
	FieldJid,
	FieldInstanceID,
	FieldPushName,
	FieldVerifiedName,
	FieldProfilePictureURL,
	FieldIsBusiness,
	FieldIsMe,
	FieldIsBlocked,
	FieldFirstSeenAt,
	FieldLastUpdatedAt,
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
	// DefaultIsBusiness holds the default value on creation for the "is_business" field.
	DefaultIsBusiness bool
	// DefaultIsMe holds the default value on creation for the "is_me" field.
	DefaultIsMe bool
	// DefaultIsBlocked holds the default value on creation for the "is_blocked" field.
	DefaultIsBlocked bool
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastUpdatedAt holds the default value on creation for the "last_updated_at" field.
	DefaultLastUpdatedAt func() time.Time
	// UpdateDefaultLastUpdatedAt holds the default value on update for the "last_updated_at" field.
	UpdateDefaultLastUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Contact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJid orders the results by the jid field.
func ByJid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJid, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByPushName orders the results by the push_name field.
func ByPushName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushName, opts...).ToFunc()
}

// ByVerifiedName orders the results by the verified_name field.
func ByVerifiedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedName, opts...).ToFunc()
}

// ByProfilePictureURL orders the results by the profile_picture_url field.
func ByProfilePictureURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilePictureURL, opts...).ToFunc()
}

// ByIsBusiness orders the results by the is_business field.
func ByIsBusiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBusiness, opts...).ToFunc()
}

// ByIsMe orders the results by the is_me field.
func ByIsMe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMe, opts...).ToFunc()
}

// ByIsBlocked orders the results by the is_blocked field.
func ByIsBlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBlocked, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastUpdatedAt orders the results by the last_updated_at field.
func ByLastUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdatedAt, opts...).ToFunc()
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
