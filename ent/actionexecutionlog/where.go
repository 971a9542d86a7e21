// Code generated by ent, DO NOT EDIT.

package actionexecutionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldID, id))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldRuleID, v))
}

// QueueItemID applies equality check predicate on the "queue_item_id" field. It's identical to QueueItemIDEQ.
func QueueItemID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldQueueItemID, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldChatID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldInstanceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldRuleID, v))
}

// QueueItemIDEQ applies the EQ predicate on the "queue_item_id" field.
func QueueItemIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldQueueItemID, v))
}

// QueueItemIDNEQ applies the NEQ predicate on the "queue_item_id" field.
func QueueItemIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldQueueItemID, v))
}

// QueueItemIDIn applies the In predicate on the "queue_item_id" field.
func QueueItemIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldQueueItemID, vs...))
}

// QueueItemIDNotIn applies the NotIn predicate on the "queue_item_id" field.
func QueueItemIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldQueueItemID, vs...))
}

// QueueItemIDGT applies the GT predicate on the "queue_item_id" field.
func QueueItemIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldQueueItemID, v))
}

// QueueItemIDGTE applies the GTE predicate on the "queue_item_id" field.
func QueueItemIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldQueueItemID, v))
}

// QueueItemIDLT applies the LT predicate on the "queue_item_id" field.
func QueueItemIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldQueueItemID, v))
}

// QueueItemIDLTE applies the LTE predicate on the "queue_item_id" field.
func QueueItemIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldQueueItemID, v))
}

// QueueItemIDContains applies the Contains predicate on the "queue_item_id" field.
func QueueItemIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldQueueItemID, v))
}

// QueueItemIDHasPrefix applies the HasPrefix predicate on the "queue_item_id" field.
func QueueItemIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldQueueItemID, v))
}

// QueueItemIDHasSuffix applies the HasSuffix predicate on the "queue_item_id" field.
func QueueItemIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldQueueItemID, v))
}

// QueueItemIDIsNil applies the IsNil predicate on the "queue_item_id" field.
func QueueItemIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldQueueItemID))
}

// QueueItemIDNotNil applies the NotNil predicate on the "queue_item_id" field.
func QueueItemIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldQueueItemID))
}

// QueueItemIDEqualFold applies the EqualFold predicate on the "queue_item_id" field.
func QueueItemIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldQueueItemID, v))
}

// QueueItemIDContainsFold applies the ContainsFold predicate on the "queue_item_id" field.
func QueueItemIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldQueueItemID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedEntityRefsIsNil applies the IsNil predicate on the "created_entity_refs" field.
func CreatedEntityRefsIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldCreatedEntityRefs))
}

// CreatedEntityRefsNotNil applies the NotNil predicate on the "created_entity_refs" field.
func CreatedEntityRefsNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldCreatedEntityRefs))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldChatID))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldChatID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldInstanceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.NotPredicates(p))
}
