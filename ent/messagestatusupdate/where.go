// Code generated by ent, DO NOT EDIT.

package messagestatusupdate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContainsFold(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldMessageID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldInstanceID, v))
}

// ParticipantJid applies equality check predicate on the "participant_jid" field. It's identical to ParticipantJidEQ.
func ParticipantJid(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldParticipantJid, v))
}

// StatusTs applies equality check predicate on the "status_ts" field. It's identical to StatusTsEQ.
func StatusTs(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldStatusTs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldCreatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContainsFold(FieldMessageID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContainsFold(FieldInstanceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldStatus, vs...))
}

// ParticipantJidEQ applies the EQ predicate on the "participant_jid" field.
func ParticipantJidEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldParticipantJid, v))
}

// ParticipantJidNEQ applies the NEQ predicate on the "participant_jid" field.
func ParticipantJidNEQ(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldParticipantJid, v))
}

// ParticipantJidIn applies the In predicate on the "participant_jid" field.
func ParticipantJidIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldParticipantJid, vs...))
}

// ParticipantJidNotIn applies the NotIn predicate on the "participant_jid" field.
func ParticipantJidNotIn(vs ...string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldParticipantJid, vs...))
}

// ParticipantJidGT applies the GT predicate on the "participant_jid" field.
func ParticipantJidGT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldParticipantJid, v))
}

// ParticipantJidGTE applies the GTE predicate on the "participant_jid" field.
func ParticipantJidGTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldParticipantJid, v))
}

// ParticipantJidLT applies the LT predicate on the "participant_jid" field.
func ParticipantJidLT(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldParticipantJid, v))
}

// ParticipantJidLTE applies the LTE predicate on the "participant_jid" field.
func ParticipantJidLTE(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldParticipantJid, v))
}

// ParticipantJidContains applies the Contains predicate on the "participant_jid" field.
func ParticipantJidContains(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContains(FieldParticipantJid, v))
}

// ParticipantJidHasPrefix applies the HasPrefix predicate on the "participant_jid" field.
func ParticipantJidHasPrefix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasPrefix(FieldParticipantJid, v))
}

// ParticipantJidHasSuffix applies the HasSuffix predicate on the "participant_jid" field.
func ParticipantJidHasSuffix(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldHasSuffix(FieldParticipantJid, v))
}

// ParticipantJidIsNil applies the IsNil predicate on the "participant_jid" field.
func ParticipantJidIsNil() predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIsNull(FieldParticipantJid))
}

// ParticipantJidNotNil applies the NotNil predicate on the "participant_jid" field.
func ParticipantJidNotNil() predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotNull(FieldParticipantJid))
}

// ParticipantJidEqualFold applies the EqualFold predicate on the "participant_jid" field.
func ParticipantJidEqualFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEqualFold(FieldParticipantJid, v))
}

// ParticipantJidContainsFold applies the ContainsFold predicate on the "participant_jid" field.
func ParticipantJidContainsFold(v string) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldContainsFold(FieldParticipantJid, v))
}

// StatusTsEQ applies the EQ predicate on the "status_ts" field.
func StatusTsEQ(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldStatusTs, v))
}

// StatusTsNEQ applies the NEQ predicate on the "status_ts" field.
func StatusTsNEQ(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldStatusTs, v))
}

// StatusTsIn applies the In predicate on the "status_ts" field.
func StatusTsIn(vs ...time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldStatusTs, vs...))
}

// StatusTsNotIn applies the NotIn predicate on the "status_ts" field.
func StatusTsNotIn(vs ...time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldStatusTs, vs...))
}

// StatusTsGT applies the GT predicate on the "status_ts" field.
func StatusTsGT(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldStatusTs, v))
}

// StatusTsGTE applies the GTE predicate on the "status_ts" field.
func StatusTsGTE(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldStatusTs, v))
}

// StatusTsLT applies the LT predicate on the "status_ts" field.
func StatusTsLT(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldStatusTs, v))
}

// StatusTsLTE applies the LTE predicate on the "status_ts" field.
func StatusTsLTE(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldStatusTs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageStatusUpdate) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageStatusUpdate) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageStatusUpdate) predicate.MessageStatusUpdate {
	return predicate.MessageStatusUpdate(sql.NotPredicates(p))
}
