// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
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
)

// InstanceCreate is the builder for creating a Instance entity.
type InstanceCreate struct {
	config
	mutation *InstanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerJid sets the "owner_jid" field.
func (_c *InstanceCreate) SetOwnerJid(v string) *InstanceCreate {
	_c.mutation.SetOwnerJid(v)
	return _c
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableOwnerJid(v *string) *InstanceCreate {
	if v != nil {
		_c.SetOwnerJid(*v)
	}
	return _c
}

// SetCreatorUserID sets the "creator_user_id" field.
func (_c *InstanceCreate) SetCreatorUserID(v string) *InstanceCreate {
	_c.mutation.SetCreatorUserID(v)
	return _c
}

// SetNillableCreatorUserID sets the "creator_user_id" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCreatorUserID(v *string) *InstanceCreate {
	if v != nil {
		_c.SetCreatorUserID(*v)
	}
	return _c
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_c *InstanceCreate) SetAPIBaseURL(v string) *InstanceCreate {
	_c.mutation.SetAPIBaseURL(v)
	return _c
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableAPIBaseURL(v *string) *InstanceCreate {
	if v != nil {
		_c.SetAPIBaseURL(*v)
	}
	return _c
}

// SetAPIKey sets the "api_key" field.
func (_c *InstanceCreate) SetAPIKey(v string) *InstanceCreate {
	_c.mutation.SetAPIKey(v)
	return _c
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableAPIKey(v *string) *InstanceCreate {
	if v != nil {
		_c.SetAPIKey(*v)
	}
	return _c
}

// SetIsOwner sets the "is_owner" field.
func (_c *InstanceCreate) SetIsOwner(v bool) *InstanceCreate {
	_c.mutation.SetIsOwner(v)
	return _c
}

// SetNillableIsOwner sets the "is_owner" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableIsOwner(v *bool) *InstanceCreate {
	if v != nil {
		_c.SetIsOwner(*v)
	}
	return _c
}

// SetConnectionState sets the "connection_state" field.
func (_c *InstanceCreate) SetConnectionState(v instance.ConnectionState) *InstanceCreate {
	_c.mutation.SetConnectionState(v)
	return _c
}

// SetNillableConnectionState sets the "connection_state" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableConnectionState(v *instance.ConnectionState) *InstanceCreate {
	if v != nil {
		_c.SetConnectionState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstanceCreate) SetCreatedAt(v time.Time) *InstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCreatedAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InstanceCreate) SetUpdatedAt(v time.Time) *InstanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableUpdatedAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstanceCreate) SetID(v string) *InstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_c *InstanceCreate) AddContactIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddContactIDs(ids...)
	return _c
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_c *InstanceCreate) AddContacts(v ...*Contact) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContactIDs(ids...)
}

// AddChatIDs adds the "chats" edge to the Chat entity by IDs.
func (_c *InstanceCreate) AddChatIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddChatIDs(ids...)
	return _c
}

// AddChats adds the "chats" edges to the Chat entity.
func (_c *InstanceCreate) AddChats(v ...*Chat) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatIDs(ids...)
}

// AddGroupIDs adds the "groups" edge to the Group entity by IDs.
func (_c *InstanceCreate) AddGroupIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddGroupIDs(ids...)
	return _c
}

// AddGroups adds the "groups" edges to the Group entity.
func (_c *InstanceCreate) AddGroups(v ...*Group) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupIDs(ids...)
}

// AddGroupParticipantIDs adds the "group_participants" edge to the GroupParticipant entity by IDs.
func (_c *InstanceCreate) AddGroupParticipantIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddGroupParticipantIDs(ids...)
	return _c
}

// AddGroupParticipants adds the "group_participants" edges to the GroupParticipant entity.
func (_c *InstanceCreate) AddGroupParticipants(v ...*GroupParticipant) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *InstanceCreate) AddMessageIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *InstanceCreate) AddMessages(v ...*Message) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddStatusUpdateIDs adds the "status_updates" edge to the MessageStatusUpdate entity by IDs.
func (_c *InstanceCreate) AddStatusUpdateIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddStatusUpdateIDs(ids...)
	return _c
}

// AddStatusUpdates adds the "status_updates" edges to the MessageStatusUpdate entity.
func (_c *InstanceCreate) AddStatusUpdates(v ...*MessageStatusUpdate) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusUpdateIDs(ids...)
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_c *InstanceCreate) AddReactionIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddReactionIDs(ids...)
	return _c
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_c *InstanceCreate) AddReactions(v ...*MessageReaction) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReactionIDs(ids...)
}

// AddCallLogIDs adds the "call_logs" edge to the CallLog entity by IDs.
func (_c *InstanceCreate) AddCallLogIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddCallLogIDs(ids...)
	return _c
}

// AddCallLogs adds the "call_logs" edges to the CallLog entity.
func (_c *InstanceCreate) AddCallLogs(v ...*CallLog) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCallLogIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_c *InstanceCreate) Mutation() *InstanceMutation {
	return _c.mutation
}

// Save creates the Instance in the database.
func (_c *InstanceCreate) Save(ctx context.Context) (*Instance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstanceCreate) SaveX(ctx context.Context) *Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstanceCreate) defaults() {
	if _, ok := _c.mutation.IsOwner(); !ok {
		v := instance.DefaultIsOwner
		_c.mutation.SetIsOwner(v)
	}
	if _, ok := _c.mutation.ConnectionState(); !ok {
		v := instance.DefaultConnectionState
		_c.mutation.SetConnectionState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := instance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstanceCreate) check() error {
	if _, ok := _c.mutation.IsOwner(); !ok {
		return &ValidationError{Name: "is_owner", err: errors.New(`ent: missing required field "Instance.is_owner"`)}
	}
	if _, ok := _c.mutation.ConnectionState(); !ok {
		return &ValidationError{Name: "connection_state", err: errors.New(`ent: missing required field "Instance.connection_state"`)}
	}
	if v, ok := _c.mutation.ConnectionState(); ok {
		if err := instance.ConnectionStateValidator(v); err != nil {
			return &ValidationError{Name: "connection_state", err: fmt.Errorf(`ent: validator failed for field "Instance.connection_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Instance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Instance.updated_at"`)}
	}
	return nil
}

func (_c *InstanceCreate) sqlSave(ctx context.Context) (*Instance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Instance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstanceCreate) createSpec() (*Instance, *sqlgraph.CreateSpec) {
	var (
		_node = &Instance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instance.Table, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerJid(); ok {
		_spec.SetField(instance.FieldOwnerJid, field.TypeString, value)
		_node.OwnerJid = value
	}
	if value, ok := _c.mutation.CreatorUserID(); ok {
		_spec.SetField(instance.FieldCreatorUserID, field.TypeString, value)
		_node.CreatorUserID = value
	}
	if value, ok := _c.mutation.APIBaseURL(); ok {
		_spec.SetField(instance.FieldAPIBaseURL, field.TypeString, value)
		_node.APIBaseURL = value
	}
	if value, ok := _c.mutation.APIKey(); ok {
		_spec.SetField(instance.FieldAPIKey, field.TypeString, value)
		_node.APIKey = value
	}
	if value, ok := _c.mutation.IsOwner(); ok {
		_spec.SetField(instance.FieldIsOwner, field.TypeBool, value)
		_node.IsOwner = value
	}
	if value, ok := _c.mutation.ConnectionState(); ok {
		_spec.SetField(instance.FieldConnectionState, field.TypeEnum, value)
		_node.ConnectionState = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(instance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GroupParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusUpdatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CallLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Instance.Create().
//		SetOwnerJid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstanceUpsert) {
//			SetOwnerJid(v+v).
//		}).
//		Exec(ctx)
func (_c *InstanceCreate) OnConflict(opts ...sql.ConflictOption) *InstanceUpsertOne {
	_c.conflict = opts
	return &InstanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Instance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstanceCreate) OnConflictColumns(columns ...string) *InstanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstanceUpsertOne{
		create: _c,
	}
}

type (
	// InstanceUpsertOne is the builder for "upsert"-ing
	//  one Instance node.
	InstanceUpsertOne struct {
		create *InstanceCreate
	}

	// InstanceUpsert is the "OnConflict" setter.
	InstanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerJid sets the "owner_jid" field.
func (u *InstanceUpsert) SetOwnerJid(v string) *InstanceUpsert {
	u.Set(instance.FieldOwnerJid, v)
	return u
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateOwnerJid() *InstanceUpsert {
	u.SetExcluded(instance.FieldOwnerJid)
	return u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *InstanceUpsert) ClearOwnerJid() *InstanceUpsert {
	u.SetNull(instance.FieldOwnerJid)
	return u
}

// SetCreatorUserID sets the "creator_user_id" field.
func (u *InstanceUpsert) SetCreatorUserID(v string) *InstanceUpsert {
	u.Set(instance.FieldCreatorUserID, v)
	return u
}

// UpdateCreatorUserID sets the "creator_user_id" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateCreatorUserID() *InstanceUpsert {
	u.SetExcluded(instance.FieldCreatorUserID)
	return u
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (u *InstanceUpsert) ClearCreatorUserID() *InstanceUpsert {
	u.SetNull(instance.FieldCreatorUserID)
	return u
}

// SetAPIBaseURL sets the "api_base_url" field.
func (u *InstanceUpsert) SetAPIBaseURL(v string) *InstanceUpsert {
	u.Set(instance.FieldAPIBaseURL, v)
	return u
}

// UpdateAPIBaseURL sets the "api_base_url" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateAPIBaseURL() *InstanceUpsert {
	u.SetExcluded(instance.FieldAPIBaseURL)
	return u
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (u *InstanceUpsert) ClearAPIBaseURL() *InstanceUpsert {
	u.SetNull(instance.FieldAPIBaseURL)
	return u
}

// SetAPIKey sets the "api_key" field.
func (u *InstanceUpsert) SetAPIKey(v string) *InstanceUpsert {
	u.Set(instance.FieldAPIKey, v)
	return u
}

// UpdateAPIKey sets the "api_key" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateAPIKey() *InstanceUpsert {
	u.SetExcluded(instance.FieldAPIKey)
	return u
}

// ClearAPIKey clears the value of the "api_key" field.
func (u *InstanceUpsert) ClearAPIKey() *InstanceUpsert {
	u.SetNull(instance.FieldAPIKey)
	return u
}

// SetIsOwner sets the "is_owner" field.
func (u *InstanceUpsert) SetIsOwner(v bool) *InstanceUpsert {
	u.Set(instance.FieldIsOwner, v)
	return u
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateIsOwner() *InstanceUpsert {
	u.SetExcluded(instance.FieldIsOwner)
	return u
}

// SetConnectionState sets the "connection_state" field.
func (u *InstanceUpsert) SetConnectionState(v instance.ConnectionState) *InstanceUpsert {
	u.Set(instance.FieldConnectionState, v)
	return u
}

// UpdateConnectionState sets the "connection_state" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateConnectionState() *InstanceUpsert {
	u.SetExcluded(instance.FieldConnectionState)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstanceUpsert) SetUpdatedAt(v time.Time) *InstanceUpsert {
	u.Set(instance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstanceUpsert) UpdateUpdatedAt() *InstanceUpsert {
	u.SetExcluded(instance.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Instance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstanceUpsertOne) UpdateNewValues() *InstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(instance.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(instance.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Instance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InstanceUpsertOne) Ignore() *InstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstanceUpsertOne) DoNothing() *InstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstanceCreate.OnConflict
// documentation for more info.
func (u *InstanceUpsertOne) Update(set func(*InstanceUpsert)) *InstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerJid sets the "owner_jid" field.
func (u *InstanceUpsertOne) SetOwnerJid(v string) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetOwnerJid(v)
	})
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateOwnerJid() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateOwnerJid()
	})
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *InstanceUpsertOne) ClearOwnerJid() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearOwnerJid()
	})
}

// SetCreatorUserID sets the "creator_user_id" field.
func (u *InstanceUpsertOne) SetCreatorUserID(v string) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetCreatorUserID(v)
	})
}

// UpdateCreatorUserID sets the "creator_user_id" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateCreatorUserID() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateCreatorUserID()
	})
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (u *InstanceUpsertOne) ClearCreatorUserID() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearCreatorUserID()
	})
}

// SetAPIBaseURL sets the "api_base_url" field.
func (u *InstanceUpsertOne) SetAPIBaseURL(v string) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetAPIBaseURL(v)
	})
}

// UpdateAPIBaseURL sets the "api_base_url" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateAPIBaseURL() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateAPIBaseURL()
	})
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (u *InstanceUpsertOne) ClearAPIBaseURL() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearAPIBaseURL()
	})
}

// SetAPIKey sets the "api_key" field.
func (u *InstanceUpsertOne) SetAPIKey(v string) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetAPIKey(v)
	})
}

// UpdateAPIKey sets the "api_key" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateAPIKey() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateAPIKey()
	})
}

// ClearAPIKey clears the value of the "api_key" field.
func (u *InstanceUpsertOne) ClearAPIKey() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearAPIKey()
	})
}

// SetIsOwner sets the "is_owner" field.
func (u *InstanceUpsertOne) SetIsOwner(v bool) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetIsOwner(v)
	})
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateIsOwner() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateIsOwner()
	})
}

// SetConnectionState sets the "connection_state" field.
func (u *InstanceUpsertOne) SetConnectionState(v instance.ConnectionState) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetConnectionState(v)
	})
}

// UpdateConnectionState sets the "connection_state" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateConnectionState() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateConnectionState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstanceUpsertOne) SetUpdatedAt(v time.Time) *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstanceUpsertOne) UpdateUpdatedAt() *InstanceUpsertOne {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InstanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InstanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InstanceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InstanceUpsertOne.ID is not supported by MySQL driver. Use InstanceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InstanceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InstanceCreateBulk is the builder for creating many Instance entities in bulk.
type InstanceCreateBulk struct {
	config
	err      error
	builders []*InstanceCreate
	conflict []sql.ConflictOption
}

// Save creates the Instance entities in the database.
func (_c *InstanceCreateBulk) Save(ctx context.Context) ([]*Instance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Instance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InstanceCreateBulk) SaveX(ctx context.Context) []*Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Instance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstanceUpsert) {
//			SetOwnerJid(v+v).
//		}).
//		Exec(ctx)
func (_c *InstanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InstanceUpsertBulk {
	_c.conflict = opts
	return &InstanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Instance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstanceCreateBulk) OnConflictColumns(columns ...string) *InstanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstanceUpsertBulk{
		create: _c,
	}
}

// InstanceUpsertBulk is the builder for "upsert"-ing
// a bulk of Instance nodes.
type InstanceUpsertBulk struct {
	create *InstanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Instance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstanceUpsertBulk) UpdateNewValues() *InstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(instance.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(instance.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Instance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InstanceUpsertBulk) Ignore() *InstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstanceUpsertBulk) DoNothing() *InstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstanceCreateBulk.OnConflict
// documentation for more info.
func (u *InstanceUpsertBulk) Update(set func(*InstanceUpsert)) *InstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerJid sets the "owner_jid" field.
func (u *InstanceUpsertBulk) SetOwnerJid(v string) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetOwnerJid(v)
	})
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateOwnerJid() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateOwnerJid()
	})
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *InstanceUpsertBulk) ClearOwnerJid() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearOwnerJid()
	})
}

// SetCreatorUserID sets the "creator_user_id" field.
func (u *InstanceUpsertBulk) SetCreatorUserID(v string) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetCreatorUserID(v)
	})
}

// UpdateCreatorUserID sets the "creator_user_id" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateCreatorUserID() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateCreatorUserID()
	})
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (u *InstanceUpsertBulk) ClearCreatorUserID() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearCreatorUserID()
	})
}

// SetAPIBaseURL sets the "api_base_url" field.
func (u *InstanceUpsertBulk) SetAPIBaseURL(v string) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetAPIBaseURL(v)
	})
}

// UpdateAPIBaseURL sets the "api_base_url" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateAPIBaseURL() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateAPIBaseURL()
	})
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (u *InstanceUpsertBulk) ClearAPIBaseURL() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearAPIBaseURL()
	})
}

// SetAPIKey sets the "api_key" field.
func (u *InstanceUpsertBulk) SetAPIKey(v string) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetAPIKey(v)
	})
}

// UpdateAPIKey sets the "api_key" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateAPIKey() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateAPIKey()
	})
}

// ClearAPIKey clears the value of the "api_key" field.
func (u *InstanceUpsertBulk) ClearAPIKey() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.ClearAPIKey()
	})
}

// SetIsOwner sets the "is_owner" field.
func (u *InstanceUpsertBulk) SetIsOwner(v bool) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetIsOwner(v)
	})
}

// UpdateIsOwner sets the "is_owner" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateIsOwner() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateIsOwner()
	})
}

// SetConnectionState sets the "connection_state" field.
func (u *InstanceUpsertBulk) SetConnectionState(v instance.ConnectionState) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetConnectionState(v)
	})
}

// UpdateConnectionState sets the "connection_state" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateConnectionState() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateConnectionState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstanceUpsertBulk) SetUpdatedAt(v time.Time) *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstanceUpsertBulk) UpdateUpdatedAt() *InstanceUpsertBulk {
	return u.Update(func(s *InstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InstanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InstanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InstanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
