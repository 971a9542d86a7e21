// Code generated by ent, DO NOT EDIT.

package chat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Chat {
	return predicate.Chat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Chat {
	return predicate.Chat(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldChatID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldInstanceID, v))
}

// UnreadCount applies equality check predicate on the "unread_count" field. It's identical to UnreadCountEQ.
func UnreadCount(v int) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUnreadCount, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldArchived, v))
}

// Pinned applies equality check predicate on the "pinned" field. It's identical to PinnedEQ.
func Pinned(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldPinned, v))
}

// Muted applies equality check predicate on the "muted" field. It's identical to MutedEQ.
func Muted(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMuted, v))
}

// MuteEndTs applies equality check predicate on the "mute_end_ts" field. It's identical to MuteEndTsEQ.
func MuteEndTs(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMuteEndTs, v))
}

// LastMessageTs applies equality check predicate on the "last_message_ts" field. It's identical to LastMessageTsEQ.
func LastMessageTs(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldLastMessageTs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContainsFold(FieldChatID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.Chat {
	return predicate.Chat(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.Chat {
	return predicate.Chat(sql.FieldContainsFold(FieldInstanceID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldType, vs...))
}

// UnreadCountEQ applies the EQ predicate on the "unread_count" field.
func UnreadCountEQ(v int) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUnreadCount, v))
}

// UnreadCountNEQ applies the NEQ predicate on the "unread_count" field.
func UnreadCountNEQ(v int) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldUnreadCount, v))
}

// UnreadCountIn applies the In predicate on the "unread_count" field.
func UnreadCountIn(vs ...int) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldUnreadCount, vs...))
}

// UnreadCountNotIn applies the NotIn predicate on the "unread_count" field.
func UnreadCountNotIn(vs ...int) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldUnreadCount, vs...))
}

// UnreadCountGT applies the GT predicate on the "unread_count" field.
func UnreadCountGT(v int) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldUnreadCount, v))
}

// UnreadCountGTE applies the GTE predicate on the "unread_count" field.
func UnreadCountGTE(v int) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldUnreadCount, v))
}

// UnreadCountLT applies the LT predicate on the "unread_count" field.
func UnreadCountLT(v int) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldUnreadCount, v))
}

// UnreadCountLTE applies the LTE predicate on the "unread_count" field.
func UnreadCountLTE(v int) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldUnreadCount, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldArchived, v))
}

// PinnedEQ applies the EQ predicate on the "pinned" field.
func PinnedEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldPinned, v))
}

// PinnedNEQ applies the NEQ predicate on the "pinned" field.
func PinnedNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldPinned, v))
}

// MutedEQ applies the EQ predicate on the "muted" field.
func MutedEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMuted, v))
}

// MutedNEQ applies the NEQ predicate on the "muted" field.
func MutedNEQ(v bool) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldMuted, v))
}

// MuteEndTsEQ applies the EQ predicate on the "mute_end_ts" field.
func MuteEndTsEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldMuteEndTs, v))
}

// MuteEndTsNEQ applies the NEQ predicate on the "mute_end_ts" field.
func MuteEndTsNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldMuteEndTs, v))
}

// MuteEndTsIn applies the In predicate on the "mute_end_ts" field.
func MuteEndTsIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldMuteEndTs, vs...))
}

// MuteEndTsNotIn applies the NotIn predicate on the "mute_end_ts" field.
func MuteEndTsNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldMuteEndTs, vs...))
}

// MuteEndTsGT applies the GT predicate on the "mute_end_ts" field.
func MuteEndTsGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldMuteEndTs, v))
}

// MuteEndTsGTE applies the GTE predicate on the "mute_end_ts" field.
func MuteEndTsGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldMuteEndTs, v))
}

// MuteEndTsLT applies the LT predicate on the "mute_end_ts" field.
func MuteEndTsLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldMuteEndTs, v))
}

// MuteEndTsLTE applies the LTE predicate on the "mute_end_ts" field.
func MuteEndTsLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldMuteEndTs, v))
}

// MuteEndTsIsNil applies the IsNil predicate on the "mute_end_ts" field.
func MuteEndTsIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldMuteEndTs))
}

// MuteEndTsNotNil applies the NotNil predicate on the "mute_end_ts" field.
func MuteEndTsNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldMuteEndTs))
}

// LastMessageTsEQ applies the EQ predicate on the "last_message_ts" field.
func LastMessageTsEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldLastMessageTs, v))
}

// LastMessageTsNEQ applies the NEQ predicate on the "last_message_ts" field.
func LastMessageTsNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldLastMessageTs, v))
}

// LastMessageTsIn applies the In predicate on the "last_message_ts" field.
func LastMessageTsIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldLastMessageTs, vs...))
}

// LastMessageTsNotIn applies the NotIn predicate on the "last_message_ts" field.
func LastMessageTsNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldLastMessageTs, vs...))
}

// LastMessageTsGT applies the GT predicate on the "last_message_ts" field.
func LastMessageTsGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldLastMessageTs, v))
}

// LastMessageTsGTE applies the GTE predicate on the "last_message_ts" field.
func LastMessageTsGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldLastMessageTs, v))
}

// LastMessageTsLT applies the LT predicate on the "last_message_ts" field.
func LastMessageTsLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldLastMessageTs, v))
}

// LastMessageTsLTE applies the LTE predicate on the "last_message_ts" field.
func LastMessageTsLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldLastMessageTs, v))
}

// LastMessageTsIsNil applies the IsNil predicate on the "last_message_ts" field.
func LastMessageTsIsNil() predicate.Chat {
	return predicate.Chat(sql.FieldIsNull(FieldLastMessageTs))
}

// LastMessageTsNotNil applies the NotNil predicate on the "last_message_ts" field.
func LastMessageTsNotNil() predicate.Chat {
	return predicate.Chat(sql.FieldNotNull(FieldLastMessageTs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Chat {
	return predicate.Chat(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.Chat {
	return predicate.Chat(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chat) predicate.Chat {
	return predicate.Chat(sql.NotPredicates(p))
}
