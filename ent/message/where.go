// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMessageID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInstanceID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldChatID, v))
}

// SenderJid applies equality check predicate on the "sender_jid" field. It's identical to SenderJidEQ.
func SenderJid(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderJid, v))
}

// FromMe applies equality check predicate on the "from_me" field. It's identical to FromMeEQ.
func FromMe(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromMe, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// QuotedMessageID applies equality check predicate on the "quoted_message_id" field. It's identical to QuotedMessageIDEQ.
func QuotedMessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldQuotedMessageID, v))
}

// IsForwarded applies equality check predicate on the "is_forwarded" field. It's identical to IsForwardedEQ.
func IsForwarded(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsForwarded, v))
}

// ForwardingScore applies equality check predicate on the "forwarding_score" field. It's identical to ForwardingScoreEQ.
func ForwardingScore(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldForwardingScore, v))
}

// IsStarred applies equality check predicate on the "is_starred" field. It's identical to IsStarredEQ.
func IsStarred(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsStarred, v))
}

// IsEdited applies equality check predicate on the "is_edited" field. It's identical to IsEditedEQ.
func IsEdited(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsEdited, v))
}

// LastEditedAt applies equality check predicate on the "last_edited_at" field. It's identical to LastEditedAtEQ.
func LastEditedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldLastEditedAt, v))
}

// SourcePlatform applies equality check predicate on the "source_platform" field. It's identical to SourcePlatformEQ.
func SourcePlatform(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSourcePlatform, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldUpdatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldMessageID, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldInstanceID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldChatID, v))
}

// SenderJidEQ applies the EQ predicate on the "sender_jid" field.
func SenderJidEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderJid, v))
}

// SenderJidNEQ applies the NEQ predicate on the "sender_jid" field.
func SenderJidNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderJid, v))
}

// SenderJidIn applies the In predicate on the "sender_jid" field.
func SenderJidIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderJid, vs...))
}

// SenderJidNotIn applies the NotIn predicate on the "sender_jid" field.
func SenderJidNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderJid, vs...))
}

// SenderJidGT applies the GT predicate on the "sender_jid" field.
func SenderJidGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderJid, v))
}

// SenderJidGTE applies the GTE predicate on the "sender_jid" field.
func SenderJidGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderJid, v))
}

// SenderJidLT applies the LT predicate on the "sender_jid" field.
func SenderJidLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderJid, v))
}

// SenderJidLTE applies the LTE predicate on the "sender_jid" field.
func SenderJidLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderJid, v))
}

// SenderJidContains applies the Contains predicate on the "sender_jid" field.
func SenderJidContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderJid, v))
}

// SenderJidHasPrefix applies the HasPrefix predicate on the "sender_jid" field.
func SenderJidHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderJid, v))
}

// SenderJidHasSuffix applies the HasSuffix predicate on the "sender_jid" field.
func SenderJidHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderJid, v))
}

// SenderJidEqualFold applies the EqualFold predicate on the "sender_jid" field.
func SenderJidEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderJid, v))
}

// SenderJidContainsFold applies the ContainsFold predicate on the "sender_jid" field.
func SenderJidContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderJid, v))
}

// FromMeEQ applies the EQ predicate on the "from_me" field.
func FromMeEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromMe, v))
}

// FromMeNEQ applies the NEQ predicate on the "from_me" field.
func FromMeNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFromMe, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldMessageType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTimestamp, v))
}

// QuotedMessageIDEQ applies the EQ predicate on the "quoted_message_id" field.
func QuotedMessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldQuotedMessageID, v))
}

// QuotedMessageIDNEQ applies the NEQ predicate on the "quoted_message_id" field.
func QuotedMessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldQuotedMessageID, v))
}

// QuotedMessageIDIn applies the In predicate on the "quoted_message_id" field.
func QuotedMessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldQuotedMessageID, vs...))
}

// QuotedMessageIDNotIn applies the NotIn predicate on the "quoted_message_id" field.
func QuotedMessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldQuotedMessageID, vs...))
}

// QuotedMessageIDGT applies the GT predicate on the "quoted_message_id" field.
func QuotedMessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldQuotedMessageID, v))
}

// QuotedMessageIDGTE applies the GTE predicate on the "quoted_message_id" field.
func QuotedMessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldQuotedMessageID, v))
}

// QuotedMessageIDLT applies the LT predicate on the "quoted_message_id" field.
func QuotedMessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldQuotedMessageID, v))
}

// QuotedMessageIDLTE applies the LTE predicate on the "quoted_message_id" field.
func QuotedMessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldQuotedMessageID, v))
}

// QuotedMessageIDContains applies the Contains predicate on the "quoted_message_id" field.
func QuotedMessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldQuotedMessageID, v))
}

// QuotedMessageIDHasPrefix applies the HasPrefix predicate on the "quoted_message_id" field.
func QuotedMessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldQuotedMessageID, v))
}

// QuotedMessageIDHasSuffix applies the HasSuffix predicate on the "quoted_message_id" field.
func QuotedMessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldQuotedMessageID, v))
}

// QuotedMessageIDIsNil applies the IsNil predicate on the "quoted_message_id" field.
func QuotedMessageIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldQuotedMessageID))
}

// QuotedMessageIDNotNil applies the NotNil predicate on the "quoted_message_id" field.
func QuotedMessageIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldQuotedMessageID))
}

// QuotedMessageIDEqualFold applies the EqualFold predicate on the "quoted_message_id" field.
func QuotedMessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldQuotedMessageID, v))
}

// QuotedMessageIDContainsFold applies the ContainsFold predicate on the "quoted_message_id" field.
func QuotedMessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldQuotedMessageID, v))
}

// IsForwardedEQ applies the EQ predicate on the "is_forwarded" field.
func IsForwardedEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsForwarded, v))
}

// IsForwardedNEQ applies the NEQ predicate on the "is_forwarded" field.
func IsForwardedNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsForwarded, v))
}

// ForwardingScoreEQ applies the EQ predicate on the "forwarding_score" field.
func ForwardingScoreEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldForwardingScore, v))
}

// ForwardingScoreNEQ applies the NEQ predicate on the "forwarding_score" field.
func ForwardingScoreNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldForwardingScore, v))
}

// ForwardingScoreIn applies the In predicate on the "forwarding_score" field.
func ForwardingScoreIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldForwardingScore, vs...))
}

// ForwardingScoreNotIn applies the NotIn predicate on the "forwarding_score" field.
func ForwardingScoreNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldForwardingScore, vs...))
}

// ForwardingScoreGT applies the GT predicate on the "forwarding_score" field.
func ForwardingScoreGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldForwardingScore, v))
}

// ForwardingScoreGTE applies the GTE predicate on the "forwarding_score" field.
func ForwardingScoreGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldForwardingScore, v))
}

// ForwardingScoreLT applies the LT predicate on the "forwarding_score" field.
func ForwardingScoreLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldForwardingScore, v))
}

// ForwardingScoreLTE applies the LTE predicate on the "forwarding_score" field.
func ForwardingScoreLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldForwardingScore, v))
}

// IsStarredEQ applies the EQ predicate on the "is_starred" field.
func IsStarredEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsStarred, v))
}

// IsStarredNEQ applies the NEQ predicate on the "is_starred" field.
func IsStarredNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsStarred, v))
}

// IsEditedEQ applies the EQ predicate on the "is_edited" field.
func IsEditedEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsEdited, v))
}

// IsEditedNEQ applies the NEQ predicate on the "is_edited" field.
func IsEditedNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsEdited, v))
}

// LastEditedAtEQ applies the EQ predicate on the "last_edited_at" field.
func LastEditedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldLastEditedAt, v))
}

// LastEditedAtNEQ applies the NEQ predicate on the "last_edited_at" field.
func LastEditedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldLastEditedAt, v))
}

// LastEditedAtIn applies the In predicate on the "last_edited_at" field.
func LastEditedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldLastEditedAt, vs...))
}

// LastEditedAtNotIn applies the NotIn predicate on the "last_edited_at" field.
func LastEditedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldLastEditedAt, vs...))
}

// LastEditedAtGT applies the GT predicate on the "last_edited_at" field.
func LastEditedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldLastEditedAt, v))
}

// LastEditedAtGTE applies the GTE predicate on the "last_edited_at" field.
func LastEditedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldLastEditedAt, v))
}

// LastEditedAtLT applies the LT predicate on the "last_edited_at" field.
func LastEditedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldLastEditedAt, v))
}

// LastEditedAtLTE applies the LTE predicate on the "last_edited_at" field.
func LastEditedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldLastEditedAt, v))
}

// LastEditedAtIsNil applies the IsNil predicate on the "last_edited_at" field.
func LastEditedAtIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldLastEditedAt))
}

// LastEditedAtNotNil applies the NotNil predicate on the "last_edited_at" field.
func LastEditedAtNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldLastEditedAt))
}

// SourcePlatformEQ applies the EQ predicate on the "source_platform" field.
func SourcePlatformEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSourcePlatform, v))
}

// SourcePlatformNEQ applies the NEQ predicate on the "source_platform" field.
func SourcePlatformNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSourcePlatform, v))
}

// SourcePlatformIn applies the In predicate on the "source_platform" field.
func SourcePlatformIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSourcePlatform, vs...))
}

// SourcePlatformNotIn applies the NotIn predicate on the "source_platform" field.
func SourcePlatformNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSourcePlatform, vs...))
}

// SourcePlatformGT applies the GT predicate on the "source_platform" field.
func SourcePlatformGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSourcePlatform, v))
}

// SourcePlatformGTE applies the GTE predicate on the "source_platform" field.
func SourcePlatformGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSourcePlatform, v))
}

// SourcePlatformLT applies the LT predicate on the "source_platform" field.
func SourcePlatformLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSourcePlatform, v))
}

// SourcePlatformLTE applies the LTE predicate on the "source_platform" field.
func SourcePlatformLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSourcePlatform, v))
}

// SourcePlatformContains applies the Contains predicate on the "source_platform" field.
func SourcePlatformContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSourcePlatform, v))
}

// SourcePlatformHasPrefix applies the HasPrefix predicate on the "source_platform" field.
func SourcePlatformHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSourcePlatform, v))
}

// SourcePlatformHasSuffix applies the HasSuffix predicate on the "source_platform" field.
func SourcePlatformHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSourcePlatform, v))
}

// SourcePlatformIsNil applies the IsNil predicate on the "source_platform" field.
func SourcePlatformIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSourcePlatform))
}

// SourcePlatformNotNil applies the NotNil predicate on the "source_platform" field.
func SourcePlatformNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSourcePlatform))
}

// SourcePlatformEqualFold applies the EqualFold predicate on the "source_platform" field.
func SourcePlatformEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSourcePlatform, v))
}

// SourcePlatformContainsFold applies the ContainsFold predicate on the "source_platform" field.
func SourcePlatformContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSourcePlatform, v))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRawPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTaskLinks applies the HasEdge predicate on the "task_links" edge.
func HasTaskLinks() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TaskLinksTable, TaskLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskLinksWith applies the HasEdge predicate on the "task_links" edge with a given conditions (other predicates).
func HasTaskLinksWith(preds ...predicate.MessageTaskLink) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newTaskLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEventLinks applies the HasEdge predicate on the "event_links" edge.
func HasEventLinks() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventLinksWith applies the HasEdge predicate on the "event_links" edge with a given conditions (other predicates).
func HasEventLinksWith(preds ...predicate.MessageEventLink) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newEventLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
