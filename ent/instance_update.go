// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
	"github.com/reflexhq/reflex/ent/predicate"
)

// InstanceUpdate is the builder for updating Instance entities.
type InstanceUpdate struct {
	config
	hooks    []Hook
	mutation *InstanceMutation
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdate) Where(ps ...predicate.Instance) *InstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerJid sets the "owner_jid" field.
func (_u *InstanceUpdate) SetOwnerJid(v string) *InstanceUpdate {
	_u.mutation.SetOwnerJid(v)
	return _u
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableOwnerJid(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetOwnerJid(*v)
	}
	return _u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (_u *InstanceUpdate) ClearOwnerJid() *InstanceUpdate {
	_u.mutation.ClearOwnerJid()
	return _u
}

// SetCreatorUserID sets the "creator_user_id" field.
func (_u *InstanceUpdate) SetCreatorUserID(v string) *InstanceUpdate {
	_u.mutation.SetCreatorUserID(v)
	return _u
}

// SetNillableCreatorUserID sets the "creator_user_id" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableCreatorUserID(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetCreatorUserID(*v)
	}
	return _u
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (_u *InstanceUpdate) ClearCreatorUserID() *InstanceUpdate {
	_u.mutation.ClearCreatorUserID()
	return _u
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_u *InstanceUpdate) SetAPIBaseURL(v string) *InstanceUpdate {
	_u.mutation.SetAPIBaseURL(v)
	return _u
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableAPIBaseURL(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetAPIBaseURL(*v)
	}
	return _u
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (_u *InstanceUpdate) ClearAPIBaseURL() *InstanceUpdate {
	_u.mutation.ClearAPIBaseURL()
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *InstanceUpdate) SetAPIKey(v string) *InstanceUpdate {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableAPIKey(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// ClearAPIKey clears the value of the "api_key" field.
func (_u *InstanceUpdate) ClearAPIKey() *InstanceUpdate {
	_u.mutation.ClearAPIKey()
	return _u
}

// SetIsOwner sets the "is_owner" field.
func (_u *InstanceUpdate) SetIsOwner(v bool) *InstanceUpdate {
	_u.mutation.SetIsOwner(v)
	return _u
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableIsOwner(v *bool) *InstanceUpdate {
	if v != nil {
		_u.SetIsOwner(*v)
	}
	return _u
}

// SetConnectionState sets the "connection_state" field.
func (_u *InstanceUpdate) SetConnectionState(v instance.ConnectionState) *InstanceUpdate {
	_u.mutation.SetConnectionState(v)
	return _u
}

// SetNillableConnectionState sets the "connection_state" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableConnectionState(v *instance.ConnectionState) *InstanceUpdate {
	if v != nil {
		_u.SetConnectionState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstanceUpdate) SetUpdatedAt(v time.Time) *InstanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *InstanceUpdate) AddContactIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *InstanceUpdate) AddContacts(v ...*Contact) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddChatIDs adds the "chats" edge to the Chat entity by IDs.
func (_u *InstanceUpdate) AddChatIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddChatIDs(ids...)
	return _u
}

// AddChats adds the "chats" edges to the Chat entity.
func (_u *InstanceUpdate) AddChats(v ...*Chat) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatIDs(ids...)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *InstanceUpdate) AddGroupIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *InstanceUpdate) AddGroups(v ...*Group) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddGroupParticipantIDs adds the "group_participants" edge to the GroupParticipant entity by IDs.
func (_u *InstanceUpdate) AddGroupParticipantIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddGroupParticipantIDs(ids...)
	return _u
}

// AddGroupParticipants adds the "group_participants" edges to the GroupParticipant entity.
func (_u *InstanceUpdate) AddGroupParticipants(v ...*GroupParticipant) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *InstanceUpdate) AddMessageIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *InstanceUpdate) AddMessages(v ...*Message) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the MessageStatusUpdate entity by IDs.
func (_u *InstanceUpdate) AddStatusUpdateIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddStatusUpdateIDs(ids...)
	return _u
}

// AddStatusUpdates adds the "status_updates" edges to the MessageStatusUpdate entity.
func (_u *InstanceUpdate) AddStatusUpdates(v ...*MessageStatusUpdate) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusUpdateIDs(ids...)
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_u *InstanceUpdate) AddReactionIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddReactionIDs(ids...)
	return _u
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_u *InstanceUpdate) AddReactions(v ...*MessageReaction) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReactionIDs(ids...)
}

// AddCallLogIDs adds the "call_logs" edge to the CallLog entity by IDs.
func (_u *InstanceUpdate) AddCallLogIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddCallLogIDs(ids...)
	return _u
}

// AddCallLogs adds the "call_logs" edges to the CallLog entity.
func (_u *InstanceUpdate) AddCallLogs(v ...*CallLog) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallLogIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdate) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *InstanceUpdate) ClearContacts() *InstanceUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *InstanceUpdate) RemoveContactIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *InstanceUpdate) RemoveContacts(v ...*Contact) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearChats clears all "chats" edges to the Chat entity.
func (_u *InstanceUpdate) ClearChats() *InstanceUpdate {
	_u.mutation.ClearChats()
	return _u
}

// RemoveChatIDs removes the "chats" edge to Chat entities by IDs.
func (_u *InstanceUpdate) RemoveChatIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveChatIDs(ids...)
	return _u
}

// RemoveChats removes "chats" edges to Chat entities.
func (_u *InstanceUpdate) RemoveChats(v ...*Chat) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatIDs(ids...)
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *InstanceUpdate) ClearGroups() *InstanceUpdate {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *InstanceUpdate) RemoveGroupIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *InstanceUpdate) RemoveGroups(v ...*Group) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearGroupParticipants clears all "group_participants" edges to the GroupParticipant entity.
func (_u *InstanceUpdate) ClearGroupParticipants() *InstanceUpdate {
	_u.mutation.ClearGroupParticipants()
	return _u
}

// RemoveGroupParticipantIDs removes the "group_participants" edge to GroupParticipant entities by IDs.
func (_u *InstanceUpdate) RemoveGroupParticipantIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveGroupParticipantIDs(ids...)
	return _u
}

// RemoveGroupParticipants removes "group_participants" edges to GroupParticipant entities.
func (_u *InstanceUpdate) RemoveGroupParticipants(v ...*GroupParticipant) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupParticipantIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *InstanceUpdate) ClearMessages() *InstanceUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *InstanceUpdate) RemoveMessageIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *InstanceUpdate) RemoveMessages(v ...*Message) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearStatusUpdates clears all "status_updates" edges to the MessageStatusUpdate entity.
func (_u *InstanceUpdate) ClearStatusUpdates() *InstanceUpdate {
	_u.mutation.ClearStatusUpdates()
	return _u
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to MessageStatusUpdate entities by IDs.
func (_u *InstanceUpdate) RemoveStatusUpdateIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveStatusUpdateIDs(ids...)
	return _u
}

// RemoveStatusUpdates removes "status_updates" edges to MessageStatusUpdate entities.
func (_u *InstanceUpdate) RemoveStatusUpdates(v ...*MessageStatusUpdate) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusUpdateIDs(ids...)
}

// ClearReactions clears all "reactions" edges to the MessageReaction entity.
func (_u *InstanceUpdate) ClearReactions() *InstanceUpdate {
	_u.mutation.ClearReactions()
	return _u
}

// RemoveReactionIDs removes the "reactions" edge to MessageReaction entities by IDs.
func (_u *InstanceUpdate) RemoveReactionIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveReactionIDs(ids...)
	return _u
}

// RemoveReactions removes "reactions" edges to MessageReaction entities.
func (_u *InstanceUpdate) RemoveReactions(v ...*MessageReaction) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReactionIDs(ids...)
}

// ClearCallLogs clears all "call_logs" edges to the CallLog entity.
func (_u *InstanceUpdate) ClearCallLogs() *InstanceUpdate {
	_u.mutation.ClearCallLogs()
	return _u
}

// RemoveCallLogIDs removes the "call_logs" edge to CallLog entities by IDs.
func (_u *InstanceUpdate) RemoveCallLogIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveCallLogIDs(ids...)
	return _u
}

// RemoveCallLogs removes "call_logs" edges to CallLog entities.
func (_u *InstanceUpdate) RemoveCallLogs(v ...*CallLog) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdate) check() error {
	if v, ok := _u.mutation.ConnectionState(); ok {
		if err := instance.ConnectionStateValidator(v); err != nil {
			return &ValidationError{Name: "connection_state", err: fmt.Errorf(`ent: validator failed for field "Instance.connection_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerJid(); ok {
		_spec.SetField(instance.FieldOwnerJid, field.TypeString, value)
	}
	if _u.mutation.OwnerJidCleared() {
		_spec.ClearField(instance.FieldOwnerJid, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorUserID(); ok {
		_spec.SetField(instance.FieldCreatorUserID, field.TypeString, value)
	}
	if _u.mutation.CreatorUserIDCleared() {
		_spec.ClearField(instance.FieldCreatorUserID, field.TypeString)
	}
	if value, ok := _u.mutation.APIBaseURL(); ok {
		_spec.SetField(instance.FieldAPIBaseURL, field.TypeString, value)
	}
	if _u.mutation.APIBaseURLCleared() {
		_spec.ClearField(instance.FieldAPIBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(instance.FieldAPIKey, field.TypeString, value)
	}
	if _u.mutation.APIKeyCleared() {
		_spec.ClearField(instance.FieldAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsOwner(); ok {
		_spec.SetField(instance.FieldIsOwner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConnectionState(); ok {
		_spec.SetField(instance.FieldConnectionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(instance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatsIDs(); len(nodes) > 0 && !_u.mutation.ChatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupParticipantsIDs(); len(nodes) > 0 && !_u.mutation.GroupParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusUpdatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusUpdatesIDs(); len(nodes) > 0 && !_u.mutation.StatusUpdatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReactionsIDs(); len(nodes) > 0 && !_u.mutation.ReactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallLogsIDs(); len(nodes) > 0 && !_u.mutation.CallLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstanceUpdateOne is the builder for updating a single Instance entity.
type InstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstanceMutation
}

// SetOwnerJid sets the "owner_jid" field.
func (_u *InstanceUpdateOne) SetOwnerJid(v string) *InstanceUpdateOne {
	_u.mutation.SetOwnerJid(v)
	return _u
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableOwnerJid(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetOwnerJid(*v)
	}
	return _u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (_u *InstanceUpdateOne) ClearOwnerJid() *InstanceUpdateOne {
	_u.mutation.ClearOwnerJid()
	return _u
}

// SetCreatorUserID sets the "creator_user_id" field.
func (_u *InstanceUpdateOne) SetCreatorUserID(v string) *InstanceUpdateOne {
	_u.mutation.SetCreatorUserID(v)
	return _u
}

// SetNillableCreatorUserID sets the "creator_user_id" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableCreatorUserID(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetCreatorUserID(*v)
	}
	return _u
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (_u *InstanceUpdateOne) ClearCreatorUserID() *InstanceUpdateOne {
	_u.mutation.ClearCreatorUserID()
	return _u
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_u *InstanceUpdateOne) SetAPIBaseURL(v string) *InstanceUpdateOne {
	_u.mutation.SetAPIBaseURL(v)
	return _u
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableAPIBaseURL(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetAPIBaseURL(*v)
	}
	return _u
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (_u *InstanceUpdateOne) ClearAPIBaseURL() *InstanceUpdateOne {
	_u.mutation.ClearAPIBaseURL()
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *InstanceUpdateOne) SetAPIKey(v string) *InstanceUpdateOne {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableAPIKey(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// ClearAPIKey clears the value of the "api_key" field.
func (_u *InstanceUpdateOne) ClearAPIKey() *InstanceUpdateOne {
	_u.mutation.ClearAPIKey()
	return _u
}

// SetIsOwner sets the "is_owner" field.
func (_u *InstanceUpdateOne) SetIsOwner(v bool) *InstanceUpdateOne {
	_u.mutation.SetIsOwner(v)
	return _u
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableIsOwner(v *bool) *InstanceUpdateOne {
	if v != nil {
		_u.SetIsOwner(*v)
	}
	return _u
}

// SetConnectionState sets the "connection_state" field.
func (_u *InstanceUpdateOne) SetConnectionState(v instance.ConnectionState) *InstanceUpdateOne {
	_u.mutation.SetConnectionState(v)
	return _u
}

// SetNillableConnectionState sets the "connection_state" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableConnectionState(v *instance.ConnectionState) *InstanceUpdateOne {
	if v != nil {
		_u.SetConnectionState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstanceUpdateOne) SetUpdatedAt(v time.Time) *InstanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *InstanceUpdateOne) AddContactIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *InstanceUpdateOne) AddContacts(v ...*Contact) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddChatIDs adds the "chats" edge to the Chat entity by IDs.
func (_u *InstanceUpdateOne) AddChatIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddChatIDs(ids...)
	return _u
}

// AddChats adds the "chats" edges to the Chat entity.
func (_u *InstanceUpdateOne) AddChats(v ...*Chat) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatIDs(ids...)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_u *InstanceUpdateOne) AddGroupIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the Group entity.
func (_u *InstanceUpdateOne) AddGroups(v ...*Group) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddGroupParticipantIDs adds the "group_participants" edge to the GroupParticipant entity by IDs.
func (_u *InstanceUpdateOne) AddGroupParticipantIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddGroupParticipantIDs(ids...)
	return _u
}

// AddGroupParticipants adds the "group_participants" edges to the GroupParticipant entity.
func (_u *InstanceUpdateOne) AddGroupParticipants(v ...*GroupParticipant) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *InstanceUpdateOne) AddMessageIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *InstanceUpdateOne) AddMessages(v ...*Message) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the MessageStatusUpdate entity by IDs.
func (_u *InstanceUpdateOne) AddStatusUpdateIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddStatusUpdateIDs(ids...)
	return _u
}

// AddStatusUpdates adds the "status_updates" edges to the MessageStatusUpdate entity.
func (_u *InstanceUpdateOne) AddStatusUpdates(v ...*MessageStatusUpdate) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusUpdateIDs(ids...)
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_u *InstanceUpdateOne) AddReactionIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddReactionIDs(ids...)
	return _u
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_u *InstanceUpdateOne) AddReactions(v ...*MessageReaction) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReactionIDs(ids...)
}

// AddCallLogIDs adds the "call_logs" edge to the CallLog entity by IDs.
func (_u *InstanceUpdateOne) AddCallLogIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddCallLogIDs(ids...)
	return _u
}

// AddCallLogs adds the "call_logs" edges to the CallLog entity.
func (_u *InstanceUpdateOne) AddCallLogs(v ...*CallLog) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCallLogIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdateOne) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *InstanceUpdateOne) ClearContacts() *InstanceUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *InstanceUpdateOne) RemoveContactIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *InstanceUpdateOne) RemoveContacts(v ...*Contact) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearChats clears all "chats" edges to the Chat entity.
func (_u *InstanceUpdateOne) ClearChats() *InstanceUpdateOne {
	_u.mutation.ClearChats()
	return _u
}

// RemoveChatIDs removes the "chats" edge to Chat entities by IDs.
func (_u *InstanceUpdateOne) RemoveChatIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveChatIDs(ids...)
	return _u
}

// RemoveChats removes "chats" edges to Chat entities.
func (_u *InstanceUpdateOne) RemoveChats(v ...*Chat) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatIDs(ids...)
}

// ClearGroups clears all "groups" edges to the Group entity.
func (_u *InstanceUpdateOne) ClearGroups() *InstanceUpdateOne {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to Group entities by IDs.
func (_u *InstanceUpdateOne) RemoveGroupIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to Group entities.
func (_u *InstanceUpdateOne) RemoveGroups(v ...*Group) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearGroupParticipants clears all "group_participants" edges to the GroupParticipant entity.
func (_u *InstanceUpdateOne) ClearGroupParticipants() *InstanceUpdateOne {
	_u.mutation.ClearGroupParticipants()
	return _u
}

// RemoveGroupParticipantIDs removes the "group_participants" edge to GroupParticipant entities by IDs.
func (_u *InstanceUpdateOne) RemoveGroupParticipantIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveGroupParticipantIDs(ids...)
	return _u
}

// RemoveGroupParticipants removes "group_participants" edges to GroupParticipant entities.
func (_u *InstanceUpdateOne) RemoveGroupParticipants(v ...*GroupParticipant) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupParticipantIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *InstanceUpdateOne) ClearMessages() *InstanceUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *InstanceUpdateOne) RemoveMessageIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *InstanceUpdateOne) RemoveMessages(v ...*Message) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearStatusUpdates clears all "status_updates" edges to the MessageStatusUpdate entity.
func (_u *InstanceUpdateOne) ClearStatusUpdates() *InstanceUpdateOne {
	_u.mutation.ClearStatusUpdates()
	return _u
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to MessageStatusUpdate entities by IDs.
func (_u *InstanceUpdateOne) RemoveStatusUpdateIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveStatusUpdateIDs(ids...)
	return _u
}

// RemoveStatusUpdates removes "status_updates" edges to MessageStatusUpdate entities.
func (_u *InstanceUpdateOne) RemoveStatusUpdates(v ...*MessageStatusUpdate) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusUpdateIDs(ids...)
}

// ClearReactions clears all "reactions" edges to the MessageReaction entity.
func (_u *InstanceUpdateOne) ClearReactions() *InstanceUpdateOne {
	_u.mutation.ClearReactions()
	return _u
}

// RemoveReactionIDs removes the "reactions" edge to MessageReaction entities by IDs.
func (_u *InstanceUpdateOne) RemoveReactionIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveReactionIDs(ids...)
	return _u
}

// RemoveReactions removes "reactions" edges to MessageReaction entities.
func (_u *InstanceUpdateOne) RemoveReactions(v ...*MessageReaction) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReactionIDs(ids...)
}

// ClearCallLogs clears all "call_logs" edges to the CallLog entity.
func (_u *InstanceUpdateOne) ClearCallLogs() *InstanceUpdateOne {
	_u.mutation.ClearCallLogs()
	return _u
}

// RemoveCallLogIDs removes the "call_logs" edge to CallLog entities by IDs.
func (_u *InstanceUpdateOne) RemoveCallLogIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveCallLogIDs(ids...)
	return _u
}

// RemoveCallLogs removes "call_logs" edges to CallLog entities.
func (_u *InstanceUpdateOne) RemoveCallLogs(v ...*CallLog) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCallLogIDs(ids...)
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdateOne) Where(ps ...predicate.Instance) *InstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstanceUpdateOne) Select(field string, fields ...string) *InstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Instance entity.
func (_u *InstanceUpdateOne) Save(ctx context.Context) (*Instance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdateOne) SaveX(ctx context.Context) *Instance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdateOne) check() error {
	if v, ok := _u.mutation.ConnectionState(); ok {
		if err := instance.ConnectionStateValidator(v); err != nil {
			return &ValidationError{Name: "connection_state", err: fmt.Errorf(`ent: validator failed for field "Instance.connection_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdateOne) sqlSave(ctx context.Context) (_node *Instance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Instance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instance.FieldID)
		for _, f := range fields {
			if !instance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerJid(); ok {
		_spec.SetField(instance.FieldOwnerJid, field.TypeString, value)
	}
	if _u.mutation.OwnerJidCleared() {
		_spec.ClearField(instance.FieldOwnerJid, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorUserID(); ok {
		_spec.SetField(instance.FieldCreatorUserID, field.TypeString, value)
	}
	if _u.mutation.CreatorUserIDCleared() {
		_spec.ClearField(instance.FieldCreatorUserID, field.TypeString)
	}
	if value, ok := _u.mutation.APIBaseURL(); ok {
		_spec.SetField(instance.FieldAPIBaseURL, field.TypeString, value)
	}
	if _u.mutation.APIBaseURLCleared() {
		_spec.ClearField(instance.FieldAPIBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(instance.FieldAPIKey, field.TypeString, value)
	}
	if _u.mutation.APIKeyCleared() {
		_spec.ClearField(instance.FieldAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsOwner(); ok {
		_spec.SetField(instance.FieldIsOwner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConnectionState(); ok {
		_spec.SetField(instance.FieldConnectionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(instance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ContactsTable,
			Columns: []string{instance.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatsIDs(); len(nodes) > 0 && !_u.mutation.ChatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ChatsTable,
			Columns: []string{instance.ChatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupsTable,
			Columns: []string{instance.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GroupParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupParticipantsIDs(); len(nodes) > 0 && !_u.mutation.GroupParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.GroupParticipantsTable,
			Columns: []string{instance.GroupParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.MessagesTable,
			Columns: []string{instance.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusUpdatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusUpdatesIDs(); len(nodes) > 0 && !_u.mutation.StatusUpdatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.StatusUpdatesTable,
			Columns: []string{instance.StatusUpdatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReactionsIDs(); len(nodes) > 0 && !_u.mutation.ReactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.ReactionsTable,
			Columns: []string{instance.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CallLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCallLogsIDs(); len(nodes) > 0 && !_u.mutation.CallLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CallLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CallLogsTable,
			Columns: []string{instance.CallLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Instance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
