// Code generated by ent, DO NOT EDIT.

package bill

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bill type in the database.
	Label = "bill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bill_id"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIsRecurring holds the string denoting the is_recurring field in the database.
	FieldIsRecurring = "is_recurring"
	// FieldRecurrenceType holds the string denoting the recurrence_type field in the database.
	FieldRecurrenceType = "recurrence_type"
	// FieldRecurrenceInterval holds the string denoting the recurrence_interval field in the database.
	FieldRecurrenceInterval = "recurrence_interval"
	// FieldRecurrenceEndDate holds the string denoting the recurrence_end_date field in the database.
	FieldRecurrenceEndDate = "recurrence_end_date"
	// FieldNextDueDate holds the string denoting the next_due_date field in the database.
	FieldNextDueDate = "next_due_date"
	// FieldAutoPayEnabled holds the string denoting the auto_pay_enabled field in the database.
	FieldAutoPayEnabled = "auto_pay_enabled"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
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
	// Table holds the table name of the bill in the database.
	Table = "bills"
)

// Columns holds all SQL columns for bill fields.
var Columns = []string{
	FieldID,
	FieldVendor,
	FieldAmount,
	FieldCurrency,
	FieldDueDate,
	FieldCategory,
	FieldIsRecurring,
	FieldRecurrenceType,
	FieldRecurrenceInterval,
	FieldRecurrenceEndDate,
	FieldNextDueDate,
	FieldAutoPayEnabled,
	FieldStatus,
	FieldPriority,
	FieldTags,
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
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultIsRecurring holds the default value on creation for the "is_recurring" field.
	DefaultIsRecurring bool
	// DefaultRecurrenceInterval holds the default value on creation for the "recurrence_interval" field.
	DefaultRecurrenceInterval int
	// DefaultAutoPayEnabled holds the default value on creation for the "auto_pay_enabled" field.
	DefaultAutoPayEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("bill: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("bill: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Bill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIsRecurring orders the results by the is_recurring field.
func ByIsRecurring(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRecurring, opts...).ToFunc()
}

// ByRecurrenceType orders the results by the recurrence_type field.
func ByRecurrenceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceType, opts...).ToFunc()
}

// ByRecurrenceInterval orders the results by the recurrence_interval field.
func ByRecurrenceInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceInterval, opts...).ToFunc()
}

// ByRecurrenceEndDate orders the results by the recurrence_end_date field.
func ByRecurrenceEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrenceEndDate, opts...).ToFunc()
}

// ByNextDueDate orders the results by the next_due_date field.
func ByNextDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDueDate, opts...).ToFunc()
}

// ByAutoPayEnabled orders the results by the auto_pay_enabled field.
func ByAutoPayEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoPayEnabled, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
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
