// Code generated by ent, DO NOT EDIT.

package calllog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContainsFold(FieldID, id))
}

// CallLogID applies equality check predicate on the "call_log_id" field. It's identical to CallLogIDEQ.
func CallLogID(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldCallLogID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldInstanceID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldChatID, v))
}

// FromJid applies equality check predicate on the "from_jid" field. It's identical to FromJidEQ.
func FromJid(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldFromJid, v))
}

// FromMe applies equality check predicate on the "from_me" field. It's identical to FromMeEQ.
func FromMe(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldFromMe, v))
}

// StartTs applies equality check predicate on the "start_ts" field. It's identical to StartTsEQ.
func StartTs(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldStartTs, v))
}

// IsVideo applies equality check predicate on the "is_video" field. It's identical to IsVideoEQ.
func IsVideo(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldIsVideo, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CallLogIDEQ applies the EQ predicate on the "call_log_id" field.
func CallLogIDEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldCallLogID, v))
}

// CallLogIDNEQ applies the NEQ predicate on the "call_log_id" field.
func CallLogIDNEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldCallLogID, v))
}

// CallLogIDIn applies the In predicate on the "call_log_id" field.
func CallLogIDIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldCallLogID, vs...))
}

// CallLogIDNotIn applies the NotIn predicate on the "call_log_id" field.
func CallLogIDNotIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldCallLogID, vs...))
}

// CallLogIDGT applies the GT predicate on the "call_log_id" field.
func CallLogIDGT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldCallLogID, v))
}

// CallLogIDGTE applies the GTE predicate on the "call_log_id" field.
func CallLogIDGTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldCallLogID, v))
}

// CallLogIDLT applies the LT predicate on the "call_log_id" field.
func CallLogIDLT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldCallLogID, v))
}

// CallLogIDLTE applies the LTE predicate on the "call_log_id" field.
func CallLogIDLTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldCallLogID, v))
}

// CallLogIDContains applies the Contains predicate on the "call_log_id" field.
func CallLogIDContains(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContains(FieldCallLogID, v))
}

// CallLogIDHasPrefix applies the HasPrefix predicate on the "call_log_id" field.
func CallLogIDHasPrefix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasPrefix(FieldCallLogID, v))
}

// CallLogIDHasSuffix applies the HasSuffix predicate on the "call_log_id" field.
func CallLogIDHasSuffix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasSuffix(FieldCallLogID, v))
}

// CallLogIDEqualFold applies the EqualFold predicate on the "call_log_id" field.
func CallLogIDEqualFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEqualFold(FieldCallLogID, v))
}

// CallLogIDContainsFold applies the ContainsFold predicate on the "call_log_id" field.
func CallLogIDContainsFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContainsFold(FieldCallLogID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContainsFold(FieldInstanceID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.CallLog {
	return predicate.CallLog(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.CallLog {
	return predicate.CallLog(sql.FieldNotNull(FieldChatID))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContainsFold(FieldChatID, v))
}

// FromJidEQ applies the EQ predicate on the "from_jid" field.
func FromJidEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldFromJid, v))
}

// FromJidNEQ applies the NEQ predicate on the "from_jid" field.
func FromJidNEQ(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldFromJid, v))
}

// FromJidIn applies the In predicate on the "from_jid" field.
func FromJidIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldFromJid, vs...))
}

// FromJidNotIn applies the NotIn predicate on the "from_jid" field.
func FromJidNotIn(vs ...string) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldFromJid, vs...))
}

// FromJidGT applies the GT predicate on the "from_jid" field.
func FromJidGT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldFromJid, v))
}

// FromJidGTE applies the GTE predicate on the "from_jid" field.
func FromJidGTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldFromJid, v))
}

// FromJidLT applies the LT predicate on the "from_jid" field.
func FromJidLT(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldFromJid, v))
}

// FromJidLTE applies the LTE predicate on the "from_jid" field.
func FromJidLTE(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldFromJid, v))
}

// FromJidContains applies the Contains predicate on the "from_jid" field.
func FromJidContains(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContains(FieldFromJid, v))
}

// FromJidHasPrefix applies the HasPrefix predicate on the "from_jid" field.
func FromJidHasPrefix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasPrefix(FieldFromJid, v))
}

// FromJidHasSuffix applies the HasSuffix predicate on the "from_jid" field.
func FromJidHasSuffix(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldHasSuffix(FieldFromJid, v))
}

// FromJidIsNil applies the IsNil predicate on the "from_jid" field.
func FromJidIsNil() predicate.CallLog {
	return predicate.CallLog(sql.FieldIsNull(FieldFromJid))
}

// FromJidNotNil applies the NotNil predicate on the "from_jid" field.
func FromJidNotNil() predicate.CallLog {
	return predicate.CallLog(sql.FieldNotNull(FieldFromJid))
}

// FromJidEqualFold applies the EqualFold predicate on the "from_jid" field.
func FromJidEqualFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldEqualFold(FieldFromJid, v))
}

// FromJidContainsFold applies the ContainsFold predicate on the "from_jid" field.
func FromJidContainsFold(v string) predicate.CallLog {
	return predicate.CallLog(sql.FieldContainsFold(FieldFromJid, v))
}

// FromMeEQ applies the EQ predicate on the "from_me" field.
func FromMeEQ(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldFromMe, v))
}

// FromMeNEQ applies the NEQ predicate on the "from_me" field.
func FromMeNEQ(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldFromMe, v))
}

// StartTsEQ applies the EQ predicate on the "start_ts" field.
func StartTsEQ(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldStartTs, v))
}

// StartTsNEQ applies the NEQ predicate on the "start_ts" field.
func StartTsNEQ(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldStartTs, v))
}

// StartTsIn applies the In predicate on the "start_ts" field.
func StartTsIn(vs ...time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldStartTs, vs...))
}

// StartTsNotIn applies the NotIn predicate on the "start_ts" field.
func StartTsNotIn(vs ...time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldStartTs, vs...))
}

// StartTsGT applies the GT predicate on the "start_ts" field.
func StartTsGT(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldStartTs, v))
}

// StartTsGTE applies the GTE predicate on the "start_ts" field.
func StartTsGTE(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldStartTs, v))
}

// StartTsLT applies the LT predicate on the "start_ts" field.
func StartTsLT(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldStartTs, v))
}

// StartTsLTE applies the LTE predicate on the "start_ts" field.
func StartTsLTE(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldStartTs, v))
}

// IsVideoEQ applies the EQ predicate on the "is_video" field.
func IsVideoEQ(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldIsVideo, v))
}

// IsVideoNEQ applies the NEQ predicate on the "is_video" field.
func IsVideoNEQ(v bool) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldIsVideo, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldDurationSeconds, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallLog {
	return predicate.CallLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.CallLog {
	return predicate.CallLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.CallLog {
	return predicate.CallLog(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallLog) predicate.CallLog {
	return predicate.CallLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallLog) predicate.CallLog {
	return predicate.CallLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallLog) predicate.CallLog {
	return predicate.CallLog(sql.NotPredicates(p))
}
