// Code generated by ent, DO NOT EDIT.

package actionrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the actionrule type in the database.
	Label = "action_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldRuleName holds the string denoting the rule_name field in the database.
	FieldRuleName = "rule_name"
	// FieldRuleType holds the string denoting the rule_type field in the database.
	FieldRuleType = "rule_type"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldTriggerValue holds the string denoting the trigger_value field in the database.
	FieldTriggerValue = "trigger_value"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCooldownMinutes holds the string denoting the cooldown_minutes field in the database.
	FieldCooldownMinutes = "cooldown_minutes"
	// FieldMaxExecutionsPerDay holds the string denoting the max_executions_per_day field in the database.
	FieldMaxExecutionsPerDay = "max_executions_per_day"
	// FieldTotalExecutions holds the string denoting the total_executions field in the database.
	FieldTotalExecutions = "total_executions"
	// FieldLastExecutedAt holds the string denoting the last_executed_at field in the database.
	FieldLastExecutedAt = "last_executed_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the actionrule in the database.
	Table = "action_rules"
)

// Columns holds all SQL columns for actionrule fields.
var Columns = []string{
	FieldID,
	FieldRuleName,
	FieldRuleType,
	FieldTriggerType,
	FieldTriggerValue,
	FieldActionType,
	FieldConfig,
	FieldConditions,
	FieldActive,
	FieldCooldownMinutes,
	FieldMaxExecutionsPerDay,
	FieldTotalExecutions,
	FieldLastExecutedAt,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCooldownMinutes holds the default value on creation for the "cooldown_minutes" field.
	DefaultCooldownMinutes int
	// DefaultMaxExecutionsPerDay holds the default value on creation for the "max_executions_per_day" field.
	DefaultMaxExecutionsPerDay int
	// DefaultTotalExecutions holds the default value on creation for the "total_executions" field.
	DefaultTotalExecutions int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RuleType defines the type for the "rule_type" enum field.
type RuleType string

// RuleTypeSimpleAction is the default value of the RuleType enum.
const DefaultRuleType = RuleTypeSimpleAction

// RuleType values.
const (
	RuleTypeSimpleAction RuleType = "simple_action"
	RuleTypeNlpAction    RuleType = "nlp_action"
)

func (rt RuleType) String() string {
	return string(rt)
}

// RuleTypeValidator is a validator for the "rule_type" field enum values. It is called by the builders before save.
func RuleTypeValidator(rt RuleType) error {
	switch rt {
	case RuleTypeSimpleAction, RuleTypeNlpAction:
		return nil
	default:
		return fmt.Errorf("actionrule: invalid enum value for rule_type field: %q", rt)
	}
}

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerType values.
const (
	TriggerTypeReaction TriggerType = "reaction"
	TriggerTypeHashtag  TriggerType = "hashtag"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeReaction, TriggerTypeHashtag:
		return nil
	default:
		return fmt.Errorf("actionrule: invalid enum value for trigger_type field: %q", tt)
	}
}

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeCreateTask          ActionType = "create_task"
	ActionTypeCreateCalendarEvent ActionType = "create_calendar_event"
	ActionTypeCreateBill          ActionType = "create_bill"
	ActionTypeCreateNote          ActionType = "create_note"
	ActionTypeUpdateTaskStatus    ActionType = "update_task_status"
	ActionTypeSendMessage         ActionType = "send_message"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeCreateTask, ActionTypeCreateCalendarEvent, ActionTypeCreateBill, ActionTypeCreateNote, ActionTypeUpdateTaskStatus, ActionTypeSendMessage:
		return nil
	default:
		return fmt.Errorf("actionrule: invalid enum value for action_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the ActionRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRuleName orders the results by the rule_name field.
func ByRuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleName, opts...).ToFunc()
}

// ByRuleType orders the results by the rule_type field.
func ByRuleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleType, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByTriggerValue orders the results by the trigger_value field.
func ByTriggerValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerValue, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCooldownMinutes orders the results by the cooldown_minutes field.
func ByCooldownMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownMinutes, opts...).ToFunc()
}

// ByMaxExecutionsPerDay orders the results by the max_executions_per_day field.
func ByMaxExecutionsPerDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxExecutionsPerDay, opts...).ToFunc()
}

// ByTotalExecutions orders the results by the total_executions field.
func ByTotalExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExecutions, opts...).ToFunc()
}

// ByLastExecutedAt orders the results by the last_executed_at field.
func ByLastExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecutedAt, opts...).ToFunc()
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
