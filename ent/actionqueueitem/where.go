// Code generated by ent, DO NOT EDIT.

package actionqueueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContainsFold(FieldID, id))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldResult, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldPriority, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldAttempts, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// RetryAfterTs applies equality check predicate on the "retry_after_ts" field. It's identical to RetryAfterTsEQ.
func RetryAfterTs(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldRetryAfterTs, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldLastError, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldPodID, v))
}

// LeasedAt applies equality check predicate on the "leased_at" field. It's identical to LeasedAtEQ.
func LeasedAt(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldLeasedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldProcessedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldCompletedAt, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldEventType, vs...))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContainsFold(FieldResult, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldPriority, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldAttempts, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldMaxAttempts, v))
}

// RetryAfterTsEQ applies the EQ predicate on the "retry_after_ts" field.
func RetryAfterTsEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldRetryAfterTs, v))
}

// RetryAfterTsNEQ applies the NEQ predicate on the "retry_after_ts" field.
func RetryAfterTsNEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldRetryAfterTs, v))
}

// RetryAfterTsIn applies the In predicate on the "retry_after_ts" field.
func RetryAfterTsIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldRetryAfterTs, vs...))
}

// RetryAfterTsNotIn applies the NotIn predicate on the "retry_after_ts" field.
func RetryAfterTsNotIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldRetryAfterTs, vs...))
}

// RetryAfterTsGT applies the GT predicate on the "retry_after_ts" field.
func RetryAfterTsGT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldRetryAfterTs, v))
}

// RetryAfterTsGTE applies the GTE predicate on the "retry_after_ts" field.
func RetryAfterTsGTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldRetryAfterTs, v))
}

// RetryAfterTsLT applies the LT predicate on the "retry_after_ts" field.
func RetryAfterTsLT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldRetryAfterTs, v))
}

// RetryAfterTsLTE applies the LTE predicate on the "retry_after_ts" field.
func RetryAfterTsLTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldRetryAfterTs, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContainsFold(FieldLastError, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldContainsFold(FieldPodID, v))
}

// LeasedAtEQ applies the EQ predicate on the "leased_at" field.
func LeasedAtEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldLeasedAt, v))
}

// LeasedAtNEQ applies the NEQ predicate on the "leased_at" field.
func LeasedAtNEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldLeasedAt, v))
}

// LeasedAtIn applies the In predicate on the "leased_at" field.
func LeasedAtIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldLeasedAt, vs...))
}

// LeasedAtNotIn applies the NotIn predicate on the "leased_at" field.
func LeasedAtNotIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldLeasedAt, vs...))
}

// LeasedAtGT applies the GT predicate on the "leased_at" field.
func LeasedAtGT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldLeasedAt, v))
}

// LeasedAtGTE applies the GTE predicate on the "leased_at" field.
func LeasedAtGTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldLeasedAt, v))
}

// LeasedAtLT applies the LT predicate on the "leased_at" field.
func LeasedAtLT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldLeasedAt, v))
}

// LeasedAtLTE applies the LTE predicate on the "leased_at" field.
func LeasedAtLTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldLeasedAt, v))
}

// LeasedAtIsNil applies the IsNil predicate on the "leased_at" field.
func LeasedAtIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldLeasedAt))
}

// LeasedAtNotNil applies the NotNil predicate on the "leased_at" field.
func LeasedAtNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldLeasedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldProcessedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionQueueItem) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionQueueItem) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionQueueItem) predicate.ActionQueueItem {
	return predicate.ActionQueueItem(sql.NotPredicates(p))
}
