// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldID, id))
}

// Jid applies equality check predicate on the "jid" field. It's identical to JidEQ.
func Jid(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldJid, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldInstanceID, v))
}

// PushName applies equality check predicate on the "push_name" field. It's identical to PushNameEQ.
func PushName(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPushName, v))
}

// VerifiedName applies equality check predicate on the "verified_name" field. It's identical to VerifiedNameEQ.
func VerifiedName(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldVerifiedName, v))
}

// ProfilePictureURL applies equality check predicate on the "profile_picture_url" field. It's identical to ProfilePictureURLEQ.
func ProfilePictureURL(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldProfilePictureURL, v))
}

// IsBusiness applies equality check predicate on the "is_business" field. It's identical to IsBusinessEQ.
func IsBusiness(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsBusiness, v))
}

// IsMe applies equality check predicate on the "is_me" field. It's identical to IsMeEQ.
func IsMe(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsMe, v))
}

// IsBlocked applies equality check predicate on the "is_blocked" field. It's identical to IsBlockedEQ.
func IsBlocked(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsBlocked, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// JidEQ applies the EQ predicate on the "jid" field.
func JidEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldJid, v))
}

// JidNEQ applies the NEQ predicate on the "jid" field.
func JidNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldJid, v))
}

// JidIn applies the In predicate on the "jid" field.
func JidIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldJid, vs...))
}

// JidNotIn applies the NotIn predicate on the "jid" field.
func JidNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldJid, vs...))
}

// JidGT applies the GT predicate on the "jid" field.
func JidGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldJid, v))
}

// JidGTE applies the GTE predicate on the "jid" field.
func JidGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldJid, v))
}

// JidLT applies the LT predicate on the "jid" field.
func JidLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldJid, v))
}

// JidLTE applies the LTE predicate on the "jid" field.
func JidLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldJid, v))
}

// JidContains applies the Contains predicate on the "jid" field.
func JidContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldJid, v))
}

// JidHasPrefix applies the HasPrefix predicate on the "jid" field.
func JidHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldJid, v))
}

// JidHasSuffix applies the HasSuffix predicate on the "jid" field.
func JidHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldJid, v))
}

// JidEqualFold applies the EqualFold predicate on the "jid" field.
func JidEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldJid, v))
}

// JidContainsFold applies the ContainsFold predicate on the "jid" field.
func JidContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldJid, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldInstanceID, v))
}

// PushNameEQ applies the EQ predicate on the "push_name" field.
func PushNameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPushName, v))
}

// PushNameNEQ applies the NEQ predicate on the "push_name" field.
func PushNameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPushName, v))
}

// PushNameIn applies the In predicate on the "push_name" field.
func PushNameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPushName, vs...))
}

// PushNameNotIn applies the NotIn predicate on the "push_name" field.
func PushNameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPushName, vs...))
}

// PushNameGT applies the GT predicate on the "push_name" field.
func PushNameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldPushName, v))
}

// PushNameGTE applies the GTE predicate on the "push_name" field.
func PushNameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldPushName, v))
}

// PushNameLT applies the LT predicate on the "push_name" field.
func PushNameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldPushName, v))
}

// PushNameLTE applies the LTE predicate on the "push_name" field.
func PushNameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldPushName, v))
}

// PushNameContains applies the Contains predicate on the "push_name" field.
func PushNameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldPushName, v))
}

// PushNameHasPrefix applies the HasPrefix predicate on the "push_name" field.
func PushNameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldPushName, v))
}

// PushNameHasSuffix applies the HasSuffix predicate on the "push_name" field.
func PushNameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldPushName, v))
}

// PushNameIsNil applies the IsNil predicate on the "push_name" field.
func PushNameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldPushName))
}

// PushNameNotNil applies the NotNil predicate on the "push_name" field.
func PushNameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldPushName))
}

// PushNameEqualFold applies the EqualFold predicate on the "push_name" field.
func PushNameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldPushName, v))
}

// PushNameContainsFold applies the ContainsFold predicate on the "push_name" field.
func PushNameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldPushName, v))
}

// VerifiedNameEQ applies the EQ predicate on the "verified_name" field.
func VerifiedNameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldVerifiedName, v))
}

// VerifiedNameNEQ applies the NEQ predicate on the "verified_name" field.
func VerifiedNameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldVerifiedName, v))
}

// VerifiedNameIn applies the In predicate on the "verified_name" field.
func VerifiedNameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldVerifiedName, vs...))
}

// VerifiedNameNotIn applies the NotIn predicate on the "verified_name" field.
func VerifiedNameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldVerifiedName, vs...))
}

// VerifiedNameGT applies the GT predicate on the "verified_name" field.
func VerifiedNameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldVerifiedName, v))
}

// VerifiedNameGTE applies the GTE predicate on the "verified_name" field.
func VerifiedNameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldVerifiedName, v))
}

// VerifiedNameLT applies the LT predicate on the "verified_name" field.
func VerifiedNameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldVerifiedName, v))
}

// VerifiedNameLTE applies the LTE predicate on the "verified_name" field.
func VerifiedNameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldVerifiedName, v))
}

// VerifiedNameContains applies the Contains predicate on the "verified_name" field.
func VerifiedNameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldVerifiedName, v))
}

// VerifiedNameHasPrefix applies the HasPrefix predicate on the "verified_name" field.
func VerifiedNameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldVerifiedName, v))
}

// VerifiedNameHasSuffix applies the HasSuffix predicate on the "verified_name" field.
func VerifiedNameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldVerifiedName, v))
}

// VerifiedNameIsNil applies the IsNil predicate on the "verified_name" field.
func VerifiedNameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldVerifiedName))
}

// VerifiedNameNotNil applies the NotNil predicate on the "verified_name" field.
func VerifiedNameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldVerifiedName))
}

// VerifiedNameEqualFold applies the EqualFold predicate on the "verified_name" field.
func VerifiedNameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldVerifiedName, v))
}

// VerifiedNameContainsFold applies the ContainsFold predicate on the "verified_name" field.
func VerifiedNameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldVerifiedName, v))
}

// ProfilePictureURLEQ applies the EQ predicate on the "profile_picture_url" field.
func ProfilePictureURLEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldProfilePictureURL, v))
}

// ProfilePictureURLNEQ applies the NEQ predicate on the "profile_picture_url" field.
func ProfilePictureURLNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldProfilePictureURL, v))
}

// ProfilePictureURLIn applies the In predicate on the "profile_picture_url" field.
func ProfilePictureURLIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldProfilePictureURL, vs...))
}

// ProfilePictureURLNotIn applies the NotIn predicate on the "profile_picture_url" field.
func ProfilePictureURLNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldProfilePictureURL, vs...))
}

// ProfilePictureURLGT applies the GT predicate on the "profile_picture_url" field.
func ProfilePictureURLGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldProfilePictureURL, v))
}

// ProfilePictureURLGTE applies the GTE predicate on the "profile_picture_url" field.
func ProfilePictureURLGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldProfilePictureURL, v))
}

// ProfilePictureURLLT applies the LT predicate on the "profile_picture_url" field.
func ProfilePictureURLLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldProfilePictureURL, v))
}

// ProfilePictureURLLTE applies the LTE predicate on the "profile_picture_url" field.
func ProfilePictureURLLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldProfilePictureURL, v))
}

// ProfilePictureURLContains applies the Contains predicate on the "profile_picture_url" field.
func ProfilePictureURLContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldProfilePictureURL, v))
}

// ProfilePictureURLHasPrefix applies the HasPrefix predicate on the "profile_picture_url" field.
func ProfilePictureURLHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldProfilePictureURL, v))
}

// ProfilePictureURLHasSuffix applies the HasSuffix predicate on the "profile_picture_url" field.
func ProfilePictureURLHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldProfilePictureURL, v))
}

// ProfilePictureURLIsNil applies the IsNil predicate on the "profile_picture_url" field.
func ProfilePictureURLIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldProfilePictureURL))
}

// ProfilePictureURLNotNil applies the NotNil predicate on the "profile_picture_url" field.
func ProfilePictureURLNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldProfilePictureURL))
}

// ProfilePictureURLEqualFold applies the EqualFold predicate on the "profile_picture_url" field.
func ProfilePictureURLEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldProfilePictureURL, v))
}

// ProfilePictureURLContainsFold applies the ContainsFold predicate on the "profile_picture_url" field.
func ProfilePictureURLContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldProfilePictureURL, v))
}

// IsBusinessEQ applies the EQ predicate on the "is_business" field.
func IsBusinessEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsBusiness, v))
}

// IsBusinessNEQ applies the NEQ predicate on the "is_business" field.
func IsBusinessNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldIsBusiness, v))
}

// IsMeEQ applies the EQ predicate on the "is_me" field.
func IsMeEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsMe, v))
}

// IsMeNEQ applies the NEQ predicate on the "is_me" field.
func IsMeNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldIsMe, v))
}

// IsBlockedEQ applies the EQ predicate on the "is_blocked" field.
func IsBlockedEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsBlocked, v))
}

// IsBlockedNEQ applies the NEQ predicate on the "is_blocked" field.
func IsBlockedNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldIsBlocked, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
