// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldID, id))
}

// GroupJid applies equality check predicate on the "group_jid" field. It's identical to GroupJidEQ.
func GroupJid(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldGroupJid, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldInstanceID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldSubject, v))
}

// SubjectAuthoritative applies equality check predicate on the "subject_authoritative" field. It's identical to SubjectAuthoritativeEQ.
func SubjectAuthoritative(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldSubjectAuthoritative, v))
}

// OwnerJid applies equality check predicate on the "owner_jid" field. It's identical to OwnerJidEQ.
func OwnerJid(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldOwnerJid, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldDescription, v))
}

// CreationTs applies equality check predicate on the "creation_ts" field. It's identical to CreationTsEQ.
func CreationTs(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreationTs, v))
}

// IsLocked applies equality check predicate on the "is_locked" field. It's identical to IsLockedEQ.
func IsLocked(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldIsLocked, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldUpdatedAt, v))
}

// GroupJidEQ applies the EQ predicate on the "group_jid" field.
func GroupJidEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldGroupJid, v))
}

// GroupJidNEQ applies the NEQ predicate on the "group_jid" field.
func GroupJidNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldGroupJid, v))
}

// GroupJidIn applies the In predicate on the "group_jid" field.
func GroupJidIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldGroupJid, vs...))
}

// GroupJidNotIn applies the NotIn predicate on the "group_jid" field.
func GroupJidNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldGroupJid, vs...))
}

// GroupJidGT applies the GT predicate on the "group_jid" field.
func GroupJidGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldGroupJid, v))
}

// GroupJidGTE applies the GTE predicate on the "group_jid" field.
func GroupJidGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldGroupJid, v))
}

// GroupJidLT applies the LT predicate on the "group_jid" field.
func GroupJidLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldGroupJid, v))
}

// GroupJidLTE applies the LTE predicate on the "group_jid" field.
func GroupJidLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldGroupJid, v))
}

// GroupJidContains applies the Contains predicate on the "group_jid" field.
func GroupJidContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldGroupJid, v))
}

// GroupJidHasPrefix applies the HasPrefix predicate on the "group_jid" field.
func GroupJidHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldGroupJid, v))
}

// GroupJidHasSuffix applies the HasSuffix predicate on the "group_jid" field.
func GroupJidHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldGroupJid, v))
}

// GroupJidEqualFold applies the EqualFold predicate on the "group_jid" field.
func GroupJidEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldGroupJid, v))
}

// GroupJidContainsFold applies the ContainsFold predicate on the "group_jid" field.
func GroupJidContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldGroupJid, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldInstanceID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldSubject, v))
}

// SubjectAuthoritativeEQ applies the EQ predicate on the "subject_authoritative" field.
func SubjectAuthoritativeEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldSubjectAuthoritative, v))
}

// SubjectAuthoritativeNEQ applies the NEQ predicate on the "subject_authoritative" field.
func SubjectAuthoritativeNEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldSubjectAuthoritative, v))
}

// OwnerJidEQ applies the EQ predicate on the "owner_jid" field.
func OwnerJidEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldOwnerJid, v))
}

// OwnerJidNEQ applies the NEQ predicate on the "owner_jid" field.
func OwnerJidNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldOwnerJid, v))
}

// OwnerJidIn applies the In predicate on the "owner_jid" field.
func OwnerJidIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldOwnerJid, vs...))
}

// OwnerJidNotIn applies the NotIn predicate on the "owner_jid" field.
func OwnerJidNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldOwnerJid, vs...))
}

// OwnerJidGT applies the GT predicate on the "owner_jid" field.
func OwnerJidGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldOwnerJid, v))
}

// OwnerJidGTE applies the GTE predicate on the "owner_jid" field.
func OwnerJidGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldOwnerJid, v))
}

// OwnerJidLT applies the LT predicate on the "owner_jid" field.
func OwnerJidLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldOwnerJid, v))
}

// OwnerJidLTE applies the LTE predicate on the "owner_jid" field.
func OwnerJidLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldOwnerJid, v))
}

// OwnerJidContains applies the Contains predicate on the "owner_jid" field.
func OwnerJidContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldOwnerJid, v))
}

// OwnerJidHasPrefix applies the HasPrefix predicate on the "owner_jid" field.
func OwnerJidHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldOwnerJid, v))
}

// OwnerJidHasSuffix applies the HasSuffix predicate on the "owner_jid" field.
func OwnerJidHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldOwnerJid, v))
}

// OwnerJidIsNil applies the IsNil predicate on the "owner_jid" field.
func OwnerJidIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldOwnerJid))
}

// OwnerJidNotNil applies the NotNil predicate on the "owner_jid" field.
func OwnerJidNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldOwnerJid))
}

// OwnerJidEqualFold applies the EqualFold predicate on the "owner_jid" field.
func OwnerJidEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldOwnerJid, v))
}

// OwnerJidContainsFold applies the ContainsFold predicate on the "owner_jid" field.
func OwnerJidContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldOwnerJid, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldDescription, v))
}

// CreationTsEQ applies the EQ predicate on the "creation_ts" field.
func CreationTsEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreationTs, v))
}

// CreationTsNEQ applies the NEQ predicate on the "creation_ts" field.
func CreationTsNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldCreationTs, v))
}

// CreationTsIn applies the In predicate on the "creation_ts" field.
func CreationTsIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldCreationTs, vs...))
}

// CreationTsNotIn applies the NotIn predicate on the "creation_ts" field.
func CreationTsNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldCreationTs, vs...))
}

// CreationTsGT applies the GT predicate on the "creation_ts" field.
func CreationTsGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldCreationTs, v))
}

// CreationTsGTE applies the GTE predicate on the "creation_ts" field.
func CreationTsGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldCreationTs, v))
}

// CreationTsLT applies the LT predicate on the "creation_ts" field.
func CreationTsLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldCreationTs, v))
}

// CreationTsLTE applies the LTE predicate on the "creation_ts" field.
func CreationTsLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldCreationTs, v))
}

// CreationTsIsNil applies the IsNil predicate on the "creation_ts" field.
func CreationTsIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldCreationTs))
}

// CreationTsNotNil applies the NotNil predicate on the "creation_ts" field.
func CreationTsNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldCreationTs))
}

// IsLockedEQ applies the EQ predicate on the "is_locked" field.
func IsLockedEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldIsLocked, v))
}

// IsLockedNEQ applies the NEQ predicate on the "is_locked" field.
func IsLockedNEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldIsLocked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.GroupParticipant) predicate.Group {
	return predicate.Group(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Group) predicate.Group {
	return predicate.Group(sql.NotPredicates(p))
}
