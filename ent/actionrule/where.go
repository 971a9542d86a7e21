// Code generated by ent, DO NOT EDIT.

package actionrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContainsFold(FieldID, id))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldRuleName, v))
}

// TriggerValue applies equality check predicate on the "trigger_value" field. It's identical to TriggerValueEQ.
func TriggerValue(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldTriggerValue, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldActive, v))
}

// CooldownMinutes applies equality check predicate on the "cooldown_minutes" field. It's identical to CooldownMinutesEQ.
func CooldownMinutes(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCooldownMinutes, v))
}

// MaxExecutionsPerDay applies equality check predicate on the "max_executions_per_day" field. It's identical to MaxExecutionsPerDayEQ.
func MaxExecutionsPerDay(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldMaxExecutionsPerDay, v))
}

// TotalExecutions applies equality check predicate on the "total_executions" field. It's identical to TotalExecutionsEQ.
func TotalExecutions(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldTotalExecutions, v))
}

// LastExecutedAt applies equality check predicate on the "last_executed_at" field. It's identical to LastExecutedAtEQ.
func LastExecutedAt(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldLastExecutedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldDeletedAt, v))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContainsFold(FieldRuleName, v))
}

// RuleTypeEQ applies the EQ predicate on the "rule_type" field.
func RuleTypeEQ(v RuleType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldRuleType, v))
}

// RuleTypeNEQ applies the NEQ predicate on the "rule_type" field.
func RuleTypeNEQ(v RuleType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldRuleType, v))
}

// RuleTypeIn applies the In predicate on the "rule_type" field.
func RuleTypeIn(vs ...RuleType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldRuleType, vs...))
}

// RuleTypeNotIn applies the NotIn predicate on the "rule_type" field.
func RuleTypeNotIn(vs ...RuleType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldRuleType, vs...))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggerValueEQ applies the EQ predicate on the "trigger_value" field.
func TriggerValueEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldTriggerValue, v))
}

// TriggerValueNEQ applies the NEQ predicate on the "trigger_value" field.
func TriggerValueNEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldTriggerValue, v))
}

// TriggerValueIn applies the In predicate on the "trigger_value" field.
func TriggerValueIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldTriggerValue, vs...))
}

// TriggerValueNotIn applies the NotIn predicate on the "trigger_value" field.
func TriggerValueNotIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldTriggerValue, vs...))
}

// TriggerValueGT applies the GT predicate on the "trigger_value" field.
func TriggerValueGT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldTriggerValue, v))
}

// TriggerValueGTE applies the GTE predicate on the "trigger_value" field.
func TriggerValueGTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldTriggerValue, v))
}

// TriggerValueLT applies the LT predicate on the "trigger_value" field.
func TriggerValueLT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldTriggerValue, v))
}

// TriggerValueLTE applies the LTE predicate on the "trigger_value" field.
func TriggerValueLTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldTriggerValue, v))
}

// TriggerValueContains applies the Contains predicate on the "trigger_value" field.
func TriggerValueContains(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContains(FieldTriggerValue, v))
}

// TriggerValueHasPrefix applies the HasPrefix predicate on the "trigger_value" field.
func TriggerValueHasPrefix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasPrefix(FieldTriggerValue, v))
}

// TriggerValueHasSuffix applies the HasSuffix predicate on the "trigger_value" field.
func TriggerValueHasSuffix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasSuffix(FieldTriggerValue, v))
}

// TriggerValueEqualFold applies the EqualFold predicate on the "trigger_value" field.
func TriggerValueEqualFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEqualFold(FieldTriggerValue, v))
}

// TriggerValueContainsFold applies the ContainsFold predicate on the "trigger_value" field.
func TriggerValueContainsFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContainsFold(FieldTriggerValue, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldActionType, vs...))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotNull(FieldConfig))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotNull(FieldConditions))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldActive, v))
}

// CooldownMinutesEQ applies the EQ predicate on the "cooldown_minutes" field.
func CooldownMinutesEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesNEQ applies the NEQ predicate on the "cooldown_minutes" field.
func CooldownMinutesNEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldCooldownMinutes, v))
}

// CooldownMinutesIn applies the In predicate on the "cooldown_minutes" field.
func CooldownMinutesIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesNotIn applies the NotIn predicate on the "cooldown_minutes" field.
func CooldownMinutesNotIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldCooldownMinutes, vs...))
}

// CooldownMinutesGT applies the GT predicate on the "cooldown_minutes" field.
func CooldownMinutesGT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldCooldownMinutes, v))
}

// CooldownMinutesGTE applies the GTE predicate on the "cooldown_minutes" field.
func CooldownMinutesGTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldCooldownMinutes, v))
}

// CooldownMinutesLT applies the LT predicate on the "cooldown_minutes" field.
func CooldownMinutesLT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldCooldownMinutes, v))
}

// CooldownMinutesLTE applies the LTE predicate on the "cooldown_minutes" field.
func CooldownMinutesLTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldCooldownMinutes, v))
}

// MaxExecutionsPerDayEQ applies the EQ predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldMaxExecutionsPerDay, v))
}

// MaxExecutionsPerDayNEQ applies the NEQ predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayNEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldMaxExecutionsPerDay, v))
}

// MaxExecutionsPerDayIn applies the In predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldMaxExecutionsPerDay, vs...))
}

// MaxExecutionsPerDayNotIn applies the NotIn predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayNotIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldMaxExecutionsPerDay, vs...))
}

// MaxExecutionsPerDayGT applies the GT predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayGT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldMaxExecutionsPerDay, v))
}

// MaxExecutionsPerDayGTE applies the GTE predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayGTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldMaxExecutionsPerDay, v))
}

// MaxExecutionsPerDayLT applies the LT predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayLT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldMaxExecutionsPerDay, v))
}

// MaxExecutionsPerDayLTE applies the LTE predicate on the "max_executions_per_day" field.
func MaxExecutionsPerDayLTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldMaxExecutionsPerDay, v))
}

// TotalExecutionsEQ applies the EQ predicate on the "total_executions" field.
func TotalExecutionsEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldTotalExecutions, v))
}

// TotalExecutionsNEQ applies the NEQ predicate on the "total_executions" field.
func TotalExecutionsNEQ(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldTotalExecutions, v))
}

// TotalExecutionsIn applies the In predicate on the "total_executions" field.
func TotalExecutionsIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsNotIn applies the NotIn predicate on the "total_executions" field.
func TotalExecutionsNotIn(vs ...int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldTotalExecutions, vs...))
}

// TotalExecutionsGT applies the GT predicate on the "total_executions" field.
func TotalExecutionsGT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldTotalExecutions, v))
}

// TotalExecutionsGTE applies the GTE predicate on the "total_executions" field.
func TotalExecutionsGTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldTotalExecutions, v))
}

// TotalExecutionsLT applies the LT predicate on the "total_executions" field.
func TotalExecutionsLT(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldTotalExecutions, v))
}

// TotalExecutionsLTE applies the LTE predicate on the "total_executions" field.
func TotalExecutionsLTE(v int) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldTotalExecutions, v))
}

// LastExecutedAtEQ applies the EQ predicate on the "last_executed_at" field.
func LastExecutedAtEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtNEQ applies the NEQ predicate on the "last_executed_at" field.
func LastExecutedAtNEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtIn applies the In predicate on the "last_executed_at" field.
func LastExecutedAtIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtNotIn applies the NotIn predicate on the "last_executed_at" field.
func LastExecutedAtNotIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtGT applies the GT predicate on the "last_executed_at" field.
func LastExecutedAtGT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldLastExecutedAt, v))
}

// LastExecutedAtGTE applies the GTE predicate on the "last_executed_at" field.
func LastExecutedAtGTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldLastExecutedAt, v))
}

// LastExecutedAtLT applies the LT predicate on the "last_executed_at" field.
func LastExecutedAtLT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldLastExecutedAt, v))
}

// LastExecutedAtLTE applies the LTE predicate on the "last_executed_at" field.
func LastExecutedAtLTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldLastExecutedAt, v))
}

// LastExecutedAtIsNil applies the IsNil predicate on the "last_executed_at" field.
func LastExecutedAtIsNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIsNull(FieldLastExecutedAt))
}

// LastExecutedAtNotNil applies the NotNil predicate on the "last_executed_at" field.
func LastExecutedAtNotNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotNull(FieldLastExecutedAt))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ActionRule {
	return predicate.ActionRule(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ActionRule {
	return predicate.ActionRule(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionRule) predicate.ActionRule {
	return predicate.ActionRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionRule) predicate.ActionRule {
	return predicate.ActionRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionRule) predicate.ActionRule {
	return predicate.ActionRule(sql.NotPredicates(p))
}
