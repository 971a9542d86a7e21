// Code generated by ent, DO NOT EDIT.

package messagereaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContainsFold(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldMessageID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldInstanceID, v))
}

// ReactorJid applies equality check predicate on the "reactor_jid" field. It's identical to ReactorJidEQ.
func ReactorJid(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldReactorJid, v))
}

// ReactionEmoji applies equality check predicate on the "reaction_emoji" field. It's identical to ReactionEmojiEQ.
func ReactionEmoji(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldReactionEmoji, v))
}

// FromMe applies equality check predicate on the "from_me" field. It's identical to FromMeEQ.
func FromMe(v bool) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldFromMe, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContainsFold(FieldMessageID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContainsFold(FieldInstanceID, v))
}

// ReactorJidEQ applies the EQ predicate on the "reactor_jid" field.
func ReactorJidEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldReactorJid, v))
}

// ReactorJidNEQ applies the NEQ predicate on the "reactor_jid" field.
func ReactorJidNEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldReactorJid, v))
}

// ReactorJidIn applies the In predicate on the "reactor_jid" field.
func ReactorJidIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldReactorJid, vs...))
}

// ReactorJidNotIn applies the NotIn predicate on the "reactor_jid" field.
func ReactorJidNotIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldReactorJid, vs...))
}

// ReactorJidGT applies the GT predicate on the "reactor_jid" field.
func ReactorJidGT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldReactorJid, v))
}

// ReactorJidGTE applies the GTE predicate on the "reactor_jid" field.
func ReactorJidGTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldReactorJid, v))
}

// ReactorJidLT applies the LT predicate on the "reactor_jid" field.
func ReactorJidLT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldReactorJid, v))
}

// ReactorJidLTE applies the LTE predicate on the "reactor_jid" field.
func ReactorJidLTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldReactorJid, v))
}

// ReactorJidContains applies the Contains predicate on the "reactor_jid" field.
func ReactorJidContains(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContains(FieldReactorJid, v))
}

// ReactorJidHasPrefix applies the HasPrefix predicate on the "reactor_jid" field.
func ReactorJidHasPrefix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasPrefix(FieldReactorJid, v))
}

// ReactorJidHasSuffix applies the HasSuffix predicate on the "reactor_jid" field.
func ReactorJidHasSuffix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasSuffix(FieldReactorJid, v))
}

// ReactorJidEqualFold applies the EqualFold predicate on the "reactor_jid" field.
func ReactorJidEqualFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEqualFold(FieldReactorJid, v))
}

// ReactorJidContainsFold applies the ContainsFold predicate on the "reactor_jid" field.
func ReactorJidContainsFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContainsFold(FieldReactorJid, v))
}

// ReactionEmojiEQ applies the EQ predicate on the "reaction_emoji" field.
func ReactionEmojiEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldReactionEmoji, v))
}

// ReactionEmojiNEQ applies the NEQ predicate on the "reaction_emoji" field.
func ReactionEmojiNEQ(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldReactionEmoji, v))
}

// ReactionEmojiIn applies the In predicate on the "reaction_emoji" field.
func ReactionEmojiIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldReactionEmoji, vs...))
}

// ReactionEmojiNotIn applies the NotIn predicate on the "reaction_emoji" field.
func ReactionEmojiNotIn(vs ...string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldReactionEmoji, vs...))
}

// ReactionEmojiGT applies the GT predicate on the "reaction_emoji" field.
func ReactionEmojiGT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldReactionEmoji, v))
}

// ReactionEmojiGTE applies the GTE predicate on the "reaction_emoji" field.
func ReactionEmojiGTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldReactionEmoji, v))
}

// ReactionEmojiLT applies the LT predicate on the "reaction_emoji" field.
func ReactionEmojiLT(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldReactionEmoji, v))
}

// ReactionEmojiLTE applies the LTE predicate on the "reaction_emoji" field.
func ReactionEmojiLTE(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldReactionEmoji, v))
}

// ReactionEmojiContains applies the Contains predicate on the "reaction_emoji" field.
func ReactionEmojiContains(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContains(FieldReactionEmoji, v))
}

// ReactionEmojiHasPrefix applies the HasPrefix predicate on the "reaction_emoji" field.
func ReactionEmojiHasPrefix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasPrefix(FieldReactionEmoji, v))
}

// ReactionEmojiHasSuffix applies the HasSuffix predicate on the "reaction_emoji" field.
func ReactionEmojiHasSuffix(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldHasSuffix(FieldReactionEmoji, v))
}

// ReactionEmojiEqualFold applies the EqualFold predicate on the "reaction_emoji" field.
func ReactionEmojiEqualFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEqualFold(FieldReactionEmoji, v))
}

// ReactionEmojiContainsFold applies the ContainsFold predicate on the "reaction_emoji" field.
func ReactionEmojiContainsFold(v string) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldContainsFold(FieldReactionEmoji, v))
}

// FromMeEQ applies the EQ predicate on the "from_me" field.
func FromMeEQ(v bool) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldFromMe, v))
}

// FromMeNEQ applies the NEQ predicate on the "from_me" field.
func FromMeNEQ(v bool) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldFromMe, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldTimestamp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MessageReaction {
	return predicate.MessageReaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.MessageReaction {
	return predicate.MessageReaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.MessageReaction {
	return predicate.MessageReaction(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageReaction) predicate.MessageReaction {
	return predicate.MessageReaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageReaction) predicate.MessageReaction {
	return predicate.MessageReaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageReaction) predicate.MessageReaction {
	return predicate.MessageReaction(sql.NotPredicates(p))
}
