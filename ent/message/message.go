// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldSenderJid holds the string denoting the sender_jid field in the database.
	FieldSenderJid = "sender_jid"
	// FieldFromMe holds the string denoting the from_me field in the database.
	FieldFromMe = "from_me"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuotedMessageID holds the string denoting the quoted_message_id field in the database.
	FieldQuotedMessageID = "quoted_message_id"
	// FieldIsForwarded holds the string denoting the is_forwarded field in the database.
	FieldIsForwarded = "is_forwarded"
	// FieldForwardingScore holds the string denoting the forwarding_score field in the database.
	FieldForwardingScore = "forwarding_score"
	// FieldIsStarred holds the string denoting the is_starred field in the database.
	FieldIsStarred = "is_starred"
	// FieldIsEdited holds the string denoting the is_edited field in the database.
	FieldIsEdited = "is_edited"
	// FieldLastEditedAt holds the string denoting the last_edited_at field in the database.
	FieldLastEditedAt = "last_edited_at"
	// FieldSourcePlatform holds the string denoting the source_platform field in the database.
	FieldSourcePlatform = "source_platform"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// EdgeTaskLinks holds the string denoting the task_links edge name in mutations.
	EdgeTaskLinks = "task_links"
	// EdgeEventLinks holds the string denoting the event_links edge name in mutations.
	EdgeEventLinks = "event_links"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// MessageTaskLinkFieldID holds the string denoting the ID field of the MessageTaskLink.
	MessageTaskLinkFieldID = "link_id"
	// MessageEventLinkFieldID holds the string denoting the ID field of the MessageEventLink.
	MessageEventLinkFieldID = "link_id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "messages"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
	// TaskLinksTable is the table that holds the task_links relation/edge.
	TaskLinksTable = "message_task_links"
	// TaskLinksInverseTable is the table name for the MessageTaskLink entity.
	// It exists in this package in order to avoid circular dependency with the "messagetasklink" package.
	TaskLinksInverseTable = "message_task_links"
	// TaskLinksColumn is the table column denoting the task_links relation/edge.
	TaskLinksColumn = "message_id"
	// EventLinksTable is the table that holds the event_links relation/edge.
	EventLinksTable = "message_event_links"
	// EventLinksInverseTable is the table name for the MessageEventLink entity.
	// It exists in this package in order to avoid circular dependency with the "messageeventlink" package.
	EventLinksInverseTable = "message_event_links"
	// EventLinksColumn is the table column denoting the event_links relation/edge.
	EventLinksColumn = "message_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldInstanceID,
	FieldChatID,
	FieldSenderJid,
	FieldFromMe,
	FieldMessageType,
	FieldContent,
	FieldTimestamp,
	FieldQuotedMessageID,
	FieldIsForwarded,
	FieldForwardingScore,
	FieldIsStarred,
	FieldIsEdited,
	FieldLastEditedAt,
	FieldSourcePlatform,
	FieldRawPayload,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFromMe holds the default value on creation for the "from_me" field.
	DefaultFromMe bool
	// DefaultIsForwarded holds the default value on creation for the "is_forwarded" field.
	DefaultIsForwarded bool
	// DefaultForwardingScore holds the default value on creation for the "forwarding_score" field.
	DefaultForwardingScore int
	// DefaultIsStarred holds the default value on creation for the "is_starred" field.
	DefaultIsStarred bool
	// DefaultIsEdited holds the default value on creation for the "is_edited" field.
	DefaultIsEdited bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageTypeText is the default value of the MessageType enum.
const DefaultMessageType = MessageTypeText

// MessageType values.
const (
	MessageTypeText             MessageType = "text"
	MessageTypeImage            MessageType = "image"
	MessageTypeVideo            MessageType = "video"
	MessageTypeAudio            MessageType = "audio"
	MessageTypeDocument         MessageType = "document"
	MessageTypeSticker          MessageType = "sticker"
	MessageTypeLocation         MessageType = "location"
	MessageTypeContactCard      MessageType = "contact_card"
	MessageTypeContactCardMulti MessageType = "contact_card_multi"
	MessageTypeOrder            MessageType = "order"
	MessageTypeRevoked          MessageType = "revoked"
	MessageTypeUnsupported      MessageType = "unsupported"
	MessageTypeReaction         MessageType = "reaction"
	MessageTypeCallLog          MessageType = "call_log"
	MessageTypeEditedMessage    MessageType = "edited_message"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeAudio, MessageTypeDocument, MessageTypeSticker, MessageTypeLocation, MessageTypeContactCard, MessageTypeContactCardMulti, MessageTypeOrder, MessageTypeRevoked, MessageTypeUnsupported, MessageTypeReaction, MessageTypeCallLog, MessageTypeEditedMessage:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for message_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// BySenderJid orders the results by the sender_jid field.
func BySenderJid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderJid, opts...).ToFunc()
}

// ByFromMe orders the results by the from_me field.
func ByFromMe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromMe, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuotedMessageID orders the results by the quoted_message_id field.
func ByQuotedMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuotedMessageID, opts...).ToFunc()
}

// ByIsForwarded orders the results by the is_forwarded field.
func ByIsForwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsForwarded, opts...).ToFunc()
}

// ByForwardingScore orders the results by the forwarding_score field.
func ByForwardingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForwardingScore, opts...).ToFunc()
}

// ByIsStarred orders the results by the is_starred field.
func ByIsStarred(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStarred, opts...).ToFunc()
}

// ByIsEdited orders the results by the is_edited field.
func ByIsEdited(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEdited, opts...).ToFunc()
}

// ByLastEditedAt orders the results by the last_edited_at field.
func ByLastEditedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEditedAt, opts...).ToFunc()
}

// BySourcePlatform orders the results by the source_platform field.
func BySourcePlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePlatform, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInstanceField orders the results by instance field.
func ByInstanceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstanceStep(), sql.OrderByField(field, opts...))
	}
}

// ByTaskLinksCount orders the results by task_links count.
func ByTaskLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTaskLinksStep(), opts...)
	}
}

// ByTaskLinks orders the results by task_links terms.
func ByTaskLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventLinksCount orders the results by event_links count.
func ByEventLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventLinksStep(), opts...)
	}
}

// ByEventLinks orders the results by event_links terms.
func ByEventLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInstanceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstanceInverseTable, InstanceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
	)
}
func newTaskLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskLinksInverseTable, MessageTaskLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TaskLinksTable, TaskLinksColumn),
	)
}
func newEventLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventLinksInverseTable, MessageEventLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
	)
}
