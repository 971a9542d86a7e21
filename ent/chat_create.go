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
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/instance"
)

// ChatCreate is the builder for creating a Chat entity.
type ChatCreate struct {
	config
	mutation *ChatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *ChatCreate) SetChatID(v string) *ChatCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *ChatCreate) SetInstanceID(v string) *ChatCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ChatCreate) SetType(v chat.Type) *ChatCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetUnreadCount sets the "unread_count" field.
func (_c *ChatCreate) SetUnreadCount(v int) *ChatCreate {
	_c.mutation.SetUnreadCount(v)
	return _c
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_c *ChatCreate) SetNillableUnreadCount(v *int) *ChatCreate {
	if v != nil {
		_c.SetUnreadCount(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *ChatCreate) SetArchived(v bool) *ChatCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *ChatCreate) SetNillableArchived(v *bool) *ChatCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetPinned sets the "pinned" field.
func (_c *ChatCreate) SetPinned(v bool) *ChatCreate {
	_c.mutation.SetPinned(v)
	return _c
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_c *ChatCreate) SetNillablePinned(v *bool) *ChatCreate {
	if v != nil {
		_c.SetPinned(*v)
	}
	return _c
}

// SetMuted sets the "muted" field.
func (_c *ChatCreate) SetMuted(v bool) *ChatCreate {
	_c.mutation.SetMuted(v)
	return _c
}

// SetNillableMuted sets the "muted" field if the given value is not nil.
func (_c *ChatCreate) SetNillableMuted(v *bool) *ChatCreate {
	if v != nil {
		_c.SetMuted(*v)
	}
	return _c
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (_c *ChatCreate) SetMuteEndTs(v time.Time) *ChatCreate {
	_c.mutation.SetMuteEndTs(v)
	return _c
}

// SetNillableMuteEndTs sets the "mute_end_ts" field if the given value is not nil.
func (_c *ChatCreate) SetNillableMuteEndTs(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetMuteEndTs(*v)
	}
	return _c
}

// SetLastMessageTs sets the "last_message_ts" field.
func (_c *ChatCreate) SetLastMessageTs(v time.Time) *ChatCreate {
	_c.mutation.SetLastMessageTs(v)
	return _c
}

// SetNillableLastMessageTs sets the "last_message_ts" field if the given value is not nil.
func (_c *ChatCreate) SetNillableLastMessageTs(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetLastMessageTs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatCreate) SetCreatedAt(v time.Time) *ChatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatCreate) SetNillableCreatedAt(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatCreate) SetUpdatedAt(v time.Time) *ChatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatCreate) SetNillableUpdatedAt(v *time.Time) *ChatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatCreate) SetID(v string) *ChatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *ChatCreate) SetInstance(v *Instance) *ChatCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the ChatMutation object of the builder.
func (_c *ChatCreate) Mutation() *ChatMutation {
	return _c.mutation
}

// Save creates the Chat in the database.
func (_c *ChatCreate) Save(ctx context.Context) (*Chat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatCreate) SaveX(ctx context.Context) *Chat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatCreate) defaults() {
	if _, ok := _c.mutation.UnreadCount(); !ok {
		v := chat.DefaultUnreadCount
		_c.mutation.SetUnreadCount(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := chat.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		v := chat.DefaultPinned
		_c.mutation.SetPinned(v)
	}
	if _, ok := _c.mutation.Muted(); !ok {
		v := chat.DefaultMuted
		_c.mutation.SetMuted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Chat.chat_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "Chat.instance_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Chat.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := chat.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Chat.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnreadCount(); !ok {
		return &ValidationError{Name: "unread_count", err: errors.New(`ent: missing required field "Chat.unread_count"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Chat.archived"`)}
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		return &ValidationError{Name: "pinned", err: errors.New(`ent: missing required field "Chat.pinned"`)}
	}
	if _, ok := _c.mutation.Muted(); !ok {
		return &ValidationError{Name: "muted", err: errors.New(`ent: missing required field "Chat.muted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chat.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Chat.updated_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "Chat.instance"`)}
	}
	return nil
}

func (_c *ChatCreate) sqlSave(ctx context.Context) (*Chat, error) {
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
			return nil, fmt.Errorf("unexpected Chat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatCreate) createSpec() (*Chat, *sqlgraph.CreateSpec) {
	var (
		_node = &Chat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chat.Table, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(chat.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(chat.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.UnreadCount(); ok {
		_spec.SetField(chat.FieldUnreadCount, field.TypeInt, value)
		_node.UnreadCount = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(chat.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.Pinned(); ok {
		_spec.SetField(chat.FieldPinned, field.TypeBool, value)
		_node.Pinned = value
	}
	if value, ok := _c.mutation.Muted(); ok {
		_spec.SetField(chat.FieldMuted, field.TypeBool, value)
		_node.Muted = value
	}
	if value, ok := _c.mutation.MuteEndTs(); ok {
		_spec.SetField(chat.FieldMuteEndTs, field.TypeTime, value)
		_node.MuteEndTs = &value
	}
	if value, ok := _c.mutation.LastMessageTs(); ok {
		_spec.SetField(chat.FieldLastMessageTs, field.TypeTime, value)
		_node.LastMessageTs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chat.InstanceTable,
			Columns: []string{chat.InstanceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InstanceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chat.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatCreate) OnConflict(opts ...sql.ConflictOption) *ChatUpsertOne {
	_c.conflict = opts
	return &ChatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatCreate) OnConflictColumns(columns ...string) *ChatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatUpsertOne{
		create: _c,
	}
}

type (
	// ChatUpsertOne is the builder for "upsert"-ing
	//  one Chat node.
	ChatUpsertOne struct {
		create *ChatCreate
	}

	// ChatUpsert is the "OnConflict" setter.
	ChatUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *ChatUpsert) SetType(v chat.Type) *ChatUpsert {
	u.Set(chat.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ChatUpsert) UpdateType() *ChatUpsert {
	u.SetExcluded(chat.FieldType)
	return u
}

// SetUnreadCount sets the "unread_count" field.
func (u *ChatUpsert) SetUnreadCount(v int) *ChatUpsert {
	u.Set(chat.FieldUnreadCount, v)
	return u
}

// UpdateUnreadCount sets the "unread_count" field to the value that was provided on create.
func (u *ChatUpsert) UpdateUnreadCount() *ChatUpsert {
	u.SetExcluded(chat.FieldUnreadCount)
	return u
}

// AddUnreadCount adds v to the "unread_count" field.
func (u *ChatUpsert) AddUnreadCount(v int) *ChatUpsert {
	u.Add(chat.FieldUnreadCount, v)
	return u
}

// SetArchived sets the "archived" field.
func (u *ChatUpsert) SetArchived(v bool) *ChatUpsert {
	u.Set(chat.FieldArchived, v)
	return u
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ChatUpsert) UpdateArchived() *ChatUpsert {
	u.SetExcluded(chat.FieldArchived)
	return u
}

// SetPinned sets the "pinned" field.
func (u *ChatUpsert) SetPinned(v bool) *ChatUpsert {
	u.Set(chat.FieldPinned, v)
	return u
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *ChatUpsert) UpdatePinned() *ChatUpsert {
	u.SetExcluded(chat.FieldPinned)
	return u
}

// SetMuted sets the "muted" field.
func (u *ChatUpsert) SetMuted(v bool) *ChatUpsert {
	u.Set(chat.FieldMuted, v)
	return u
}

// UpdateMuted sets the "muted" field to the value that was provided on create.
func (u *ChatUpsert) UpdateMuted() *ChatUpsert {
	u.SetExcluded(chat.FieldMuted)
	return u
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (u *ChatUpsert) SetMuteEndTs(v time.Time) *ChatUpsert {
	u.Set(chat.FieldMuteEndTs, v)
	return u
}

// UpdateMuteEndTs sets the "mute_end_ts" field to the value that was provided on create.
func (u *ChatUpsert) UpdateMuteEndTs() *ChatUpsert {
	u.SetExcluded(chat.FieldMuteEndTs)
	return u
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (u *ChatUpsert) ClearMuteEndTs() *ChatUpsert {
	u.SetNull(chat.FieldMuteEndTs)
	return u
}

// SetLastMessageTs sets the "last_message_ts" field.
func (u *ChatUpsert) SetLastMessageTs(v time.Time) *ChatUpsert {
	u.Set(chat.FieldLastMessageTs, v)
	return u
}

// UpdateLastMessageTs sets the "last_message_ts" field to the value that was provided on create.
func (u *ChatUpsert) UpdateLastMessageTs() *ChatUpsert {
	u.SetExcluded(chat.FieldLastMessageTs)
	return u
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (u *ChatUpsert) ClearLastMessageTs() *ChatUpsert {
	u.SetNull(chat.FieldLastMessageTs)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsert) SetUpdatedAt(v time.Time) *ChatUpsert {
	u.Set(chat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsert) UpdateUpdatedAt() *ChatUpsert {
	u.SetExcluded(chat.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatUpsertOne) UpdateNewValues() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chat.FieldID)
		}
		if _, exists := u.create.mutation.ChatID(); exists {
			s.SetIgnore(chat.FieldChatID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(chat.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chat.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatUpsertOne) Ignore() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatUpsertOne) DoNothing() *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatCreate.OnConflict
// documentation for more info.
func (u *ChatUpsertOne) Update(set func(*ChatUpsert)) *ChatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *ChatUpsertOne) SetType(v chat.Type) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateType() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateType()
	})
}

// SetUnreadCount sets the "unread_count" field.
func (u *ChatUpsertOne) SetUnreadCount(v int) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetUnreadCount(v)
	})
}

// AddUnreadCount adds v to the "unread_count" field.
func (u *ChatUpsertOne) AddUnreadCount(v int) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.AddUnreadCount(v)
	})
}

// UpdateUnreadCount sets the "unread_count" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateUnreadCount() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUnreadCount()
	})
}

// SetArchived sets the "archived" field.
func (u *ChatUpsertOne) SetArchived(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateArchived() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateArchived()
	})
}

// SetPinned sets the "pinned" field.
func (u *ChatUpsertOne) SetPinned(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdatePinned() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdatePinned()
	})
}

// SetMuted sets the "muted" field.
func (u *ChatUpsertOne) SetMuted(v bool) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetMuted(v)
	})
}

// UpdateMuted sets the "muted" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateMuted() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMuted()
	})
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (u *ChatUpsertOne) SetMuteEndTs(v time.Time) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetMuteEndTs(v)
	})
}

// UpdateMuteEndTs sets the "mute_end_ts" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateMuteEndTs() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMuteEndTs()
	})
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (u *ChatUpsertOne) ClearMuteEndTs() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearMuteEndTs()
	})
}

// SetLastMessageTs sets the "last_message_ts" field.
func (u *ChatUpsertOne) SetLastMessageTs(v time.Time) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetLastMessageTs(v)
	})
}

// UpdateLastMessageTs sets the "last_message_ts" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateLastMessageTs() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateLastMessageTs()
	})
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (u *ChatUpsertOne) ClearLastMessageTs() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.ClearLastMessageTs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsertOne) SetUpdatedAt(v time.Time) *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsertOne) UpdateUpdatedAt() *ChatUpsertOne {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatUpsertOne.ID is not supported by MySQL driver. Use ChatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatCreateBulk is the builder for creating many Chat entities in bulk.
type ChatCreateBulk struct {
	config
	err      error
	builders []*ChatCreate
	conflict []sql.ConflictOption
}

// Save creates the Chat entities in the database.
func (_c *ChatCreateBulk) Save(ctx context.Context) ([]*Chat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMutation)
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
func (_c *ChatCreateBulk) SaveX(ctx context.Context) []*Chat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatUpsertBulk {
	_c.conflict = opts
	return &ChatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatCreateBulk) OnConflictColumns(columns ...string) *ChatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatUpsertBulk{
		create: _c,
	}
}

// ChatUpsertBulk is the builder for "upsert"-ing
// a bulk of Chat nodes.
type ChatUpsertBulk struct {
	create *ChatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatUpsertBulk) UpdateNewValues() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chat.FieldID)
			}
			if _, exists := b.mutation.ChatID(); exists {
				s.SetIgnore(chat.FieldChatID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(chat.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chat.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatUpsertBulk) Ignore() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatUpsertBulk) DoNothing() *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatCreateBulk.OnConflict
// documentation for more info.
func (u *ChatUpsertBulk) Update(set func(*ChatUpsert)) *ChatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *ChatUpsertBulk) SetType(v chat.Type) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateType() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateType()
	})
}

// SetUnreadCount sets the "unread_count" field.
func (u *ChatUpsertBulk) SetUnreadCount(v int) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetUnreadCount(v)
	})
}

// AddUnreadCount adds v to the "unread_count" field.
func (u *ChatUpsertBulk) AddUnreadCount(v int) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.AddUnreadCount(v)
	})
}

// UpdateUnreadCount sets the "unread_count" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateUnreadCount() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUnreadCount()
	})
}

// SetArchived sets the "archived" field.
func (u *ChatUpsertBulk) SetArchived(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateArchived() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateArchived()
	})
}

// SetPinned sets the "pinned" field.
func (u *ChatUpsertBulk) SetPinned(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdatePinned() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdatePinned()
	})
}

// SetMuted sets the "muted" field.
func (u *ChatUpsertBulk) SetMuted(v bool) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetMuted(v)
	})
}

// UpdateMuted sets the "muted" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateMuted() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMuted()
	})
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (u *ChatUpsertBulk) SetMuteEndTs(v time.Time) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetMuteEndTs(v)
	})
}

// UpdateMuteEndTs sets the "mute_end_ts" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateMuteEndTs() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateMuteEndTs()
	})
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (u *ChatUpsertBulk) ClearMuteEndTs() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearMuteEndTs()
	})
}

// SetLastMessageTs sets the "last_message_ts" field.
func (u *ChatUpsertBulk) SetLastMessageTs(v time.Time) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetLastMessageTs(v)
	})
}

// UpdateLastMessageTs sets the "last_message_ts" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateLastMessageTs() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateLastMessageTs()
	})
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (u *ChatUpsertBulk) ClearLastMessageTs() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.ClearLastMessageTs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatUpsertBulk) SetUpdatedAt(v time.Time) *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatUpsertBulk) UpdateUpdatedAt() *ChatUpsertBulk {
	return u.Update(func(s *ChatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
