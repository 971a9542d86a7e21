// Code generated by ent, DO NOT EDIT.

package groupparticipant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContainsFold(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldGroupID, v))
}

// ParticipantJid applies equality check predicate on the "participant_jid" field. It's identical to ParticipantJidEQ.
func ParticipantJid(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldParticipantJid, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldInstanceID, v))
}

// IsAdmin applies equality check predicate on the "is_admin" field. It's identical to IsAdminEQ.
func IsAdmin(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldIsAdmin, v))
}

// IsSuperAdmin applies equality check predicate on the "is_super_admin" field. It's identical to IsSuperAdminEQ.
func IsSuperAdmin(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldIsSuperAdmin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldUpdatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContainsFold(FieldGroupID, v))
}

// ParticipantJidEQ applies the EQ predicate on the "participant_jid" field.
func ParticipantJidEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldParticipantJid, v))
}

// ParticipantJidNEQ applies the NEQ predicate on the "participant_jid" field.
func ParticipantJidNEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldParticipantJid, v))
}

// ParticipantJidIn applies the In predicate on the "participant_jid" field.
func ParticipantJidIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldParticipantJid, vs...))
}

// ParticipantJidNotIn applies the NotIn predicate on the "participant_jid" field.
func ParticipantJidNotIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldParticipantJid, vs...))
}

// ParticipantJidGT applies the GT predicate on the "participant_jid" field.
func ParticipantJidGT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldParticipantJid, v))
}

// ParticipantJidGTE applies the GTE predicate on the "participant_jid" field.
func ParticipantJidGTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldParticipantJid, v))
}

// ParticipantJidLT applies the LT predicate on the "participant_jid" field.
func ParticipantJidLT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldParticipantJid, v))
}

// ParticipantJidLTE applies the LTE predicate on the "participant_jid" field.
func ParticipantJidLTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldParticipantJid, v))
}

// ParticipantJidContains applies the Contains predicate on the "participant_jid" field.
func ParticipantJidContains(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContains(FieldParticipantJid, v))
}

// ParticipantJidHasPrefix applies the HasPrefix predicate on the "participant_jid" field.
func ParticipantJidHasPrefix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasPrefix(FieldParticipantJid, v))
}

// ParticipantJidHasSuffix applies the HasSuffix predicate on the "participant_jid" field.
func ParticipantJidHasSuffix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasSuffix(FieldParticipantJid, v))
}

// ParticipantJidEqualFold applies the EqualFold predicate on the "participant_jid" field.
func ParticipantJidEqualFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEqualFold(FieldParticipantJid, v))
}

// ParticipantJidContainsFold applies the ContainsFold predicate on the "participant_jid" field.
func ParticipantJidContainsFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContainsFold(FieldParticipantJid, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldContainsFold(FieldInstanceID, v))
}

// IsAdminEQ applies the EQ predicate on the "is_admin" field.
func IsAdminEQ(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldIsAdmin, v))
}

// IsAdminNEQ applies the NEQ predicate on the "is_admin" field.
func IsAdminNEQ(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldIsAdmin, v))
}

// IsSuperAdminEQ applies the EQ predicate on the "is_super_admin" field.
func IsSuperAdminEQ(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldIsSuperAdmin, v))
}

// IsSuperAdminNEQ applies the NEQ predicate on the "is_super_admin" field.
func IsSuperAdminNEQ(v bool) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldIsSuperAdmin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.GroupParticipant {
	return predicate.GroupParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.GroupParticipant {
	return predicate.GroupParticipant(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.GroupParticipant {
	return predicate.GroupParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.GroupParticipant {
	return predicate.GroupParticipant(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupParticipant) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupParticipant) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupParticipant) predicate.GroupParticipant {
	return predicate.GroupParticipant(sql.NotPredicates(p))
}
