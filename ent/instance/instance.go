// Code generated by ent, DO NOT EDIT.

package instance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the instance type in the database.
	Label = "instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "instance_id"
	// FieldOwnerJid holds the string denoting the owner_jid field in the database.
	FieldOwnerJid = "owner_jid"
	// FieldCreatorUserID holds the string denoting the creator_user_id field in the database.
	FieldCreatorUserID = "creator_user_id"
	// FieldAPIBaseURL holds the string denoting the api_base_url field in the database.
	FieldAPIBaseURL = "api_base_url"
	// FieldAPIKey holds the string denoting the api_key field in the database.
	FieldAPIKey = "api_key"
	// FieldIsOwner holds the string denoting the is_owner field in the database.
	FieldIsOwner = "is_owner"
	// FieldConnectionState holds the string denoting the connection_state field in the database.
	FieldConnectionState = "connection_state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeContacts holds the string denoting the contacts edge name in mutations.
	EdgeContacts = "contacts"
	// EdgeChats holds the string denoting the chats edge name in mutations.
	EdgeChats = "chats"
	// EdgeGroups holds the string denoting the groups edge name in mutations.
	EdgeGroups = "groups"
	// EdgeGroupParticipants holds the string denoting the group_participants edge name in mutations.
	EdgeGroupParticipants = "group_participants"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeStatusUpdates holds the string denoting the status_updates edge name in mutations.
	EdgeStatusUpdates = "status_updates"
	// EdgeReactions holds the string denoting the reactions edge name in mutations.
	EdgeReactions = "reactions"
	// EdgeCallLogs holds the string denoting the call_logs edge name in mutations.
	EdgeCallLogs = "call_logs"
	// ContactFieldID holds the string denoting the ID field of the Contact.
	ContactFieldID = "id"
	// ChatFieldID holds the string denoting the ID field of the Chat.
	ChatFieldID = "id"
	// GroupFieldID holds the string denoting the ID field of the Group.
	GroupFieldID = "id"
	// GroupParticipantFieldID holds the string denoting the ID field of the GroupParticipant.
	GroupParticipantFieldID = "id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "id"
	// MessageStatusUpdateFieldID holds the string denoting the ID field of the MessageStatusUpdate.
	MessageStatusUpdateFieldID = "id"
	// MessageReactionFieldID holds the string denoting the ID field of the MessageReaction.
	MessageReactionFieldID = "id"
	// CallLogFieldID holds the string denoting the ID field of the CallLog.
	CallLogFieldID = "id"
	// Table holds the table name of the instance in the database.
	Table = "instances"
	// ContactsTable is the table that holds the contacts relation/edge.
	ContactsTable = "contacts"
	// ContactsInverseTable is the table name for the Contact entity.
	// It exists in this package in order to avoid circular dependency with the "contact" package.
	ContactsInverseTable = "contacts"
	// ContactsColumn is the table column denoting the contacts relation/edge.
	ContactsColumn = "instance_id"
	// ChatsTable is the table that holds the chats relation/edge.
	ChatsTable = "chats"
	// ChatsInverseTable is the table name for the Chat entity.
	// It exists in this package in order to avoid circular dependency with the "chat" package.
	ChatsInverseTable = "chats"
	// ChatsColumn is the table column denoting the chats relation/edge.
	ChatsColumn = "instance_id"
	// GroupsTable is the table that holds the groups relation/edge.
	GroupsTable = "chat_groups"
	// GroupsInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	GroupsInverseTable = "chat_groups"
	// GroupsColumn is the table column denoting the groups relation/edge.
	GroupsColumn = "instance_id"
	// GroupParticipantsTable is the table that holds the group_participants relation/edge.
	GroupParticipantsTable = "group_participants"
	// GroupParticipantsInverseTable is the table name for the GroupParticipant entity.
	// It exists in this package in order to avoid circular dependency with the "groupparticipant" package.
	GroupParticipantsInverseTable = "group_participants"
	// GroupParticipantsColumn is the table column denoting the group_participants relation/edge.
	GroupParticipantsColumn = "instance_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "instance_id"
	// StatusUpdatesTable is the table that holds the status_updates relation/edge.
	StatusUpdatesTable = "message_status_updates"
	// StatusUpdatesInverseTable is the table name for the MessageStatusUpdate entity.
	// It exists in this package in order to avoid circular dependency with the "messagestatusupdate" package.
	StatusUpdatesInverseTable = "message_status_updates"
	// StatusUpdatesColumn is the table column denoting the status_updates relation/edge.
	StatusUpdatesColumn = "instance_id"
	// ReactionsTable is the table that holds the reactions relation/edge.
	ReactionsTable = "message_reactions"
	// ReactionsInverseTable is the table name for the MessageReaction entity.
	// It exists in this package in order to avoid circular dependency with the "messagereaction" package.
	ReactionsInverseTable = "message_reactions"
	// ReactionsColumn is the table column denoting the reactions relation/edge.
	ReactionsColumn = "instance_id"
	// CallLogsTable is the table that holds the call_logs relation/edge.
	CallLogsTable = "call_logs"
	// CallLogsInverseTable is the table name for the CallLog entity.
	// It exists in this package in order to avoid circular dependency with the "calllog" package.
	CallLogsInverseTable = "call_logs"
	// CallLogsColumn is the table column denoting the call_logs relation/edge.
	CallLogsColumn = "instance_id"
)

// Columns holds all SQL columns for instance fields.
var Columns = []string{
	FieldID,
	FieldOwnerJid,
	FieldCreatorUserID,
	FieldAPIBaseURL,
	FieldAPIKey,
	FieldIsOwner,
	FieldConnectionState,
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
	// DefaultIsOwner holds the default value on creation for the "is_owner" field.
	DefaultIsOwner bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ConnectionState defines the type for the "connection_state" enum field.
type ConnectionState string

// ConnectionStateClose is the default value of the ConnectionState enum.
const DefaultConnectionState = ConnectionStateClose

// ConnectionState values.
const (
	ConnectionStateOpen       ConnectionState = "open"
	ConnectionStateClose      ConnectionState = "close"
	ConnectionStateConnecting ConnectionState = "connecting"
	ConnectionStateQr         ConnectionState = "qr"
)

func (cs ConnectionState) String() string {
	return string(cs)
}

// ConnectionStateValidator is a validator for the "connection_state" field enum values. It is called by the builders before save.
func ConnectionStateValidator(cs ConnectionState) error {
	switch cs {
	case ConnectionStateOpen, ConnectionStateClose, ConnectionStateConnecting, ConnectionStateQr:
		return nil
	default:
		return fmt.Errorf("instance: invalid enum value for connection_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Instance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerJid orders the results by the owner_jid field.
func ByOwnerJid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerJid, opts...).ToFunc()
}

// ByCreatorUserID orders the results by the creator_user_id field.
func ByCreatorUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorUserID, opts...).ToFunc()
}

// ByAPIBaseURL orders the results by the api_base_url field.
func ByAPIBaseURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIBaseURL, opts...).ToFunc()
}

// ByAPIKey orders the results by the api_key field.
func ByAPIKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKey, opts...).ToFunc()
}

// ByIsOwner orders the results by the is_owner field.
func ByIsOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOwner, opts...).ToFunc()
}

// ByConnectionState orders the results by the connection_state field.
func ByConnectionState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByContactsCount orders the results by contacts count.
func ByContactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContactsStep(), opts...)
	}
}

// ByContacts orders the results by contacts terms.
func ByContacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatsCount orders the results by chats count.
func ByChatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatsStep(), opts...)
	}
}

// ByChats orders the results by chats terms.
func ByChats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGroupsCount orders the results by groups count.
func ByGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupsStep(), opts...)
	}
}

// ByGroups orders the results by groups terms.
func ByGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGroupParticipantsCount orders the results by group_participants count.
func ByGroupParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupParticipantsStep(), opts...)
	}
}

// ByGroupParticipants orders the results by group_participants terms.
func ByGroupParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatusUpdatesCount orders the results by status_updates count.
func ByStatusUpdatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusUpdatesStep(), opts...)
	}
}

// ByStatusUpdates orders the results by status_updates terms.
func ByStatusUpdates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusUpdatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReactionsCount orders the results by reactions count.
func ByReactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReactionsStep(), opts...)
	}
}

// ByReactions orders the results by reactions terms.
func ByReactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCallLogsCount orders the results by call_logs count.
func ByCallLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCallLogsStep(), opts...)
	}
}

// ByCallLogs orders the results by call_logs terms.
func ByCallLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newContactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactsInverseTable, ContactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
	)
}
func newChatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatsInverseTable, ChatFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatsTable, ChatsColumn),
	)
}
func newGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupsInverseTable, GroupFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
	)
}
func newGroupParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupParticipantsInverseTable, GroupParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupParticipantsTable, GroupParticipantsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newStatusUpdatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusUpdatesInverseTable, MessageStatusUpdateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusUpdatesTable, StatusUpdatesColumn),
	)
}
func newReactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReactionsInverseTable, MessageReactionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReactionsTable, ReactionsColumn),
	)
}
func newCallLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallLogsInverseTable, CallLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CallLogsTable, CallLogsColumn),
	)
}
