// Code generated by ent, DO NOT EDIT.

package instance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldID, id))
}

// OwnerJid applies equality check predicate on the "owner_jid" field. It's identical to OwnerJidEQ.
func OwnerJid(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldOwnerJid, v))
}

// CreatorUserID applies equality check predicate on the "creator_user_id" field. It's identical to CreatorUserIDEQ.
func CreatorUserID(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatorUserID, v))
}

// APIBaseURL applies equality check predicate on the "api_base_url" field. It's identical to APIBaseURLEQ.
func APIBaseURL(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldAPIBaseURL, v))
}

// APIKey applies equality check predicate on the "api_key" field. It's identical to APIKeyEQ.
func APIKey(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldAPIKey, v))
}

// IsOwner applies equality check predicate on the "is_owner" field. It's identical to IsOwnerEQ.
func IsOwner(v bool) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldIsOwner, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerJidEQ applies the EQ predicate on the "owner_jid" field.
func OwnerJidEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldOwnerJid, v))
}

// OwnerJidNEQ applies the NEQ predicate on the "owner_jid" field.
func OwnerJidNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldOwnerJid, v))
}

// OwnerJidIn applies the In predicate on the "owner_jid" field.
func OwnerJidIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldOwnerJid, vs...))
}

// OwnerJidNotIn applies the NotIn predicate on the "owner_jid" field.
func OwnerJidNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldOwnerJid, vs...))
}

// OwnerJidGT applies the GT predicate on the "owner_jid" field.
func OwnerJidGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldOwnerJid, v))
}

// OwnerJidGTE applies the GTE predicate on the "owner_jid" field.
func OwnerJidGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldOwnerJid, v))
}

// OwnerJidLT applies the LT predicate on the "owner_jid" field.
func OwnerJidLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldOwnerJid, v))
}

// OwnerJidLTE applies the LTE predicate on the "owner_jid" field.
func OwnerJidLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldOwnerJid, v))
}

// OwnerJidContains applies the Contains predicate on the "owner_jid" field.
func OwnerJidContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldOwnerJid, v))
}

// OwnerJidHasPrefix applies the HasPrefix predicate on the "owner_jid" field.
func OwnerJidHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldOwnerJid, v))
}

// OwnerJidHasSuffix applies the HasSuffix predicate on the "owner_jid" field.
func OwnerJidHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldOwnerJid, v))
}

// OwnerJidIsNil applies the IsNil predicate on the "owner_jid" field.
func OwnerJidIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldOwnerJid))
}

// OwnerJidNotNil applies the NotNil predicate on the "owner_jid" field.
func OwnerJidNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldOwnerJid))
}

// OwnerJidEqualFold applies the EqualFold predicate on the "owner_jid" field.
func OwnerJidEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldOwnerJid, v))
}

// OwnerJidContainsFold applies the ContainsFold predicate on the "owner_jid" field.
func OwnerJidContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldOwnerJid, v))
}

// CreatorUserIDEQ applies the EQ predicate on the "creator_user_id" field.
func CreatorUserIDEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatorUserID, v))
}

// CreatorUserIDNEQ applies the NEQ predicate on the "creator_user_id" field.
func CreatorUserIDNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCreatorUserID, v))
}

// CreatorUserIDIn applies the In predicate on the "creator_user_id" field.
func CreatorUserIDIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCreatorUserID, vs...))
}

// CreatorUserIDNotIn applies the NotIn predicate on the "creator_user_id" field.
func CreatorUserIDNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCreatorUserID, vs...))
}

// CreatorUserIDGT applies the GT predicate on the "creator_user_id" field.
func CreatorUserIDGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCreatorUserID, v))
}

// CreatorUserIDGTE applies the GTE predicate on the "creator_user_id" field.
func CreatorUserIDGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCreatorUserID, v))
}

// CreatorUserIDLT applies the LT predicate on the "creator_user_id" field.
func CreatorUserIDLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCreatorUserID, v))
}

// CreatorUserIDLTE applies the LTE predicate on the "creator_user_id" field.
func CreatorUserIDLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCreatorUserID, v))
}

// CreatorUserIDContains applies the Contains predicate on the "creator_user_id" field.
func CreatorUserIDContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldCreatorUserID, v))
}

// CreatorUserIDHasPrefix applies the HasPrefix predicate on the "creator_user_id" field.
func CreatorUserIDHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldCreatorUserID, v))
}

// CreatorUserIDHasSuffix applies the HasSuffix predicate on the "creator_user_id" field.
func CreatorUserIDHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldCreatorUserID, v))
}

// CreatorUserIDIsNil applies the IsNil predicate on the "creator_user_id" field.
func CreatorUserIDIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldCreatorUserID))
}

// CreatorUserIDNotNil applies the NotNil predicate on the "creator_user_id" field.
func CreatorUserIDNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldCreatorUserID))
}

// CreatorUserIDEqualFold applies the EqualFold predicate on the "creator_user_id" field.
func CreatorUserIDEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldCreatorUserID, v))
}

// CreatorUserIDContainsFold applies the ContainsFold predicate on the "creator_user_id" field.
func CreatorUserIDContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldCreatorUserID, v))
}

// APIBaseURLEQ applies the EQ predicate on the "api_base_url" field.
func APIBaseURLEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldAPIBaseURL, v))
}

// APIBaseURLNEQ applies the NEQ predicate on the "api_base_url" field.
func APIBaseURLNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldAPIBaseURL, v))
}

// APIBaseURLIn applies the In predicate on the "api_base_url" field.
func APIBaseURLIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldAPIBaseURL, vs...))
}

// APIBaseURLNotIn applies the NotIn predicate on the "api_base_url" field.
func APIBaseURLNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldAPIBaseURL, vs...))
}

// APIBaseURLGT applies the GT predicate on the "api_base_url" field.
func APIBaseURLGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldAPIBaseURL, v))
}

// APIBaseURLGTE applies the GTE predicate on the "api_base_url" field.
func APIBaseURLGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldAPIBaseURL, v))
}

// APIBaseURLLT applies the LT predicate on the "api_base_url" field.
func APIBaseURLLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldAPIBaseURL, v))
}

// APIBaseURLLTE applies the LTE predicate on the "api_base_url" field.
func APIBaseURLLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldAPIBaseURL, v))
}

// APIBaseURLContains applies the Contains predicate on the "api_base_url" field.
func APIBaseURLContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldAPIBaseURL, v))
}

// APIBaseURLHasPrefix applies the HasPrefix predicate on the "api_base_url" field.
func APIBaseURLHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldAPIBaseURL, v))
}

// APIBaseURLHasSuffix applies the HasSuffix predicate on the "api_base_url" field.
func APIBaseURLHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldAPIBaseURL, v))
}

// APIBaseURLIsNil applies the IsNil predicate on the "api_base_url" field.
func APIBaseURLIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldAPIBaseURL))
}

// APIBaseURLNotNil applies the NotNil predicate on the "api_base_url" field.
func APIBaseURLNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldAPIBaseURL))
}

// APIBaseURLEqualFold applies the EqualFold predicate on the "api_base_url" field.
func APIBaseURLEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldAPIBaseURL, v))
}

// APIBaseURLContainsFold applies the ContainsFold predicate on the "api_base_url" field.
func APIBaseURLContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldAPIBaseURL, v))
}

// APIKeyEQ applies the EQ predicate on the "api_key" field.
func APIKeyEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldAPIKey, v))
}

// APIKeyNEQ applies the NEQ predicate on the "api_key" field.
func APIKeyNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldAPIKey, v))
}

// APIKeyIn applies the In predicate on the "api_key" field.
func APIKeyIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldAPIKey, vs...))
}

// APIKeyNotIn applies the NotIn predicate on the "api_key" field.
func APIKeyNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldAPIKey, vs...))
}

// APIKeyGT applies the GT predicate on the "api_key" field.
func APIKeyGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldAPIKey, v))
}

// APIKeyGTE applies the GTE predicate on the "api_key" field.
func APIKeyGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldAPIKey, v))
}

// APIKeyLT applies the LT predicate on the "api_key" field.
func APIKeyLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldAPIKey, v))
}

// APIKeyLTE applies the LTE predicate on the "api_key" field.
func APIKeyLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldAPIKey, v))
}

// APIKeyContains applies the Contains predicate on the "api_key" field.
func APIKeyContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldAPIKey, v))
}

// APIKeyHasPrefix applies the HasPrefix predicate on the "api_key" field.
func APIKeyHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldAPIKey, v))
}

// APIKeyHasSuffix applies the HasSuffix predicate on the "api_key" field.
func APIKeyHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldAPIKey, v))
}

// APIKeyIsNil applies the IsNil predicate on the "api_key" field.
func APIKeyIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldAPIKey))
}

// APIKeyNotNil applies the NotNil predicate on the "api_key" field.
func APIKeyNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldAPIKey))
}

// APIKeyEqualFold applies the EqualFold predicate on the "api_key" field.
func APIKeyEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldAPIKey, v))
}

// APIKeyContainsFold applies the ContainsFold predicate on the "api_key" field.
func APIKeyContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldAPIKey, v))
}

// IsOwnerEQ applies the EQ predicate on the "is_owner" field.
func IsOwnerEQ(v bool) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldIsOwner, v))
}

// IsOwnerNEQ applies the NEQ predicate on the "is_owner" field.
func IsOwnerNEQ(v bool) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldIsOwner, v))
}

// ConnectionStateEQ applies the EQ predicate on the "connection_state" field.
func ConnectionStateEQ(v ConnectionState) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldConnectionState, v))
}

// ConnectionStateNEQ applies the NEQ predicate on the "connection_state" field.
func ConnectionStateNEQ(v ConnectionState) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldConnectionState, v))
}

// ConnectionStateIn applies the In predicate on the "connection_state" field.
func ConnectionStateIn(vs ...ConnectionState) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldConnectionState, vs...))
}

// ConnectionStateNotIn applies the NotIn predicate on the "connection_state" field.
func ConnectionStateNotIn(vs ...ConnectionState) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldConnectionState, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContacts applies the HasEdge predicate on the "contacts" edge.
func HasContacts() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactsWith applies the HasEdge predicate on the "contacts" edge with a given conditions (other predicates).
func HasContactsWith(preds ...predicate.Contact) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newContactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChats applies the HasEdge predicate on the "chats" edge.
func HasChats() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatsTable, ChatsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatsWith applies the HasEdge predicate on the "chats" edge with a given conditions (other predicates).
func HasChatsWith(preds ...predicate.Chat) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newChatsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroups applies the HasEdge predicate on the "groups" edge.
func HasGroups() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupsWith applies the HasEdge predicate on the "groups" edge with a given conditions (other predicates).
func HasGroupsWith(preds ...predicate.Group) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroupParticipants applies the HasEdge predicate on the "group_participants" edge.
func HasGroupParticipants() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GroupParticipantsTable, GroupParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupParticipantsWith applies the HasEdge predicate on the "group_participants" edge with a given conditions (other predicates).
func HasGroupParticipantsWith(preds ...predicate.GroupParticipant) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newGroupParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusUpdates applies the HasEdge predicate on the "status_updates" edge.
func HasStatusUpdates() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusUpdatesTable, StatusUpdatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusUpdatesWith applies the HasEdge predicate on the "status_updates" edge with a given conditions (other predicates).
func HasStatusUpdatesWith(preds ...predicate.MessageStatusUpdate) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newStatusUpdatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReactions applies the HasEdge predicate on the "reactions" edge.
func HasReactions() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReactionsTable, ReactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReactionsWith applies the HasEdge predicate on the "reactions" edge with a given conditions (other predicates).
func HasReactionsWith(preds ...predicate.MessageReaction) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newReactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCallLogs applies the HasEdge predicate on the "call_logs" edge.
func HasCallLogs() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CallLogsTable, CallLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallLogsWith applies the HasEdge predicate on the "call_logs" edge with a given conditions (other predicates).
func HasCallLogsWith(preds ...predicate.CallLog) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newCallLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.NotPredicates(p))
}
