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
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ChatUpdate is the builder for updating Chat entities.
type ChatUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMutation
}

// Where appends a list predicates to the ChatUpdate builder.
func (_u *ChatUpdate) Where(ps ...predicate.Chat) *ChatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ChatUpdate) SetType(v chat.Type) *ChatUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableType(v *chat.Type) *ChatUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ChatUpdate) SetUnreadCount(v int) *ChatUpdate {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableUnreadCount(v *int) *ChatUpdate {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ChatUpdate) AddUnreadCount(v int) *ChatUpdate {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ChatUpdate) SetArchived(v bool) *ChatUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableArchived(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetPinned sets the "pinned" field.
func (_u *ChatUpdate) SetPinned(v bool) *ChatUpdate {
	_u.mutation.SetPinned(v)
	return _u
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_u *ChatUpdate) SetNillablePinned(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetPinned(*v)
	}
	return _u
}

// SetMuted sets the "muted" field.
func (_u *ChatUpdate) SetMuted(v bool) *ChatUpdate {
	_u.mutation.SetMuted(v)
	return _u
}

// SetNillableMuted sets the "muted" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableMuted(v *bool) *ChatUpdate {
	if v != nil {
		_u.SetMuted(*v)
	}
	return _u
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (_u *ChatUpdate) SetMuteEndTs(v time.Time) *ChatUpdate {
	_u.mutation.SetMuteEndTs(v)
	return _u
}

// SetNillableMuteEndTs sets the "mute_end_ts" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableMuteEndTs(v *time.Time) *ChatUpdate {
	if v != nil {
		_u.SetMuteEndTs(*v)
	}
	return _u
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (_u *ChatUpdate) ClearMuteEndTs() *ChatUpdate {
	_u.mutation.ClearMuteEndTs()
	return _u
}

// SetLastMessageTs sets the "last_message_ts" field.
func (_u *ChatUpdate) SetLastMessageTs(v time.Time) *ChatUpdate {
	_u.mutation.SetLastMessageTs(v)
	return _u
}

// SetNillableLastMessageTs sets the "last_message_ts" field if the given value is not nil.
func (_u *ChatUpdate) SetNillableLastMessageTs(v *time.Time) *ChatUpdate {
	if v != nil {
		_u.SetLastMessageTs(*v)
	}
	return _u
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (_u *ChatUpdate) ClearLastMessageTs() *ChatUpdate {
	_u.mutation.ClearLastMessageTs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatUpdate) SetUpdatedAt(v time.Time) *ChatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatMutation object of the builder.
func (_u *ChatUpdate) Mutation() *ChatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := chat.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Chat.type": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chat.instance"`)
	}
	return nil
}

func (_u *ChatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chat.Table, chat.Columns, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chat.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(chat.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(chat.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(chat.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pinned(); ok {
		_spec.SetField(chat.FieldPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Muted(); ok {
		_spec.SetField(chat.FieldMuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MuteEndTs(); ok {
		_spec.SetField(chat.FieldMuteEndTs, field.TypeTime, value)
	}
	if _u.mutation.MuteEndTsCleared() {
		_spec.ClearField(chat.FieldMuteEndTs, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageTs(); ok {
		_spec.SetField(chat.FieldLastMessageTs, field.TypeTime, value)
	}
	if _u.mutation.LastMessageTsCleared() {
		_spec.ClearField(chat.FieldLastMessageTs, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatUpdateOne is the builder for updating a single Chat entity.
type ChatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMutation
}

// SetType sets the "type" field.
func (_u *ChatUpdateOne) SetType(v chat.Type) *ChatUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableType(v *chat.Type) *ChatUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ChatUpdateOne) SetUnreadCount(v int) *ChatUpdateOne {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableUnreadCount(v *int) *ChatUpdateOne {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ChatUpdateOne) AddUnreadCount(v int) *ChatUpdateOne {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ChatUpdateOne) SetArchived(v bool) *ChatUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableArchived(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetPinned sets the "pinned" field.
func (_u *ChatUpdateOne) SetPinned(v bool) *ChatUpdateOne {
	_u.mutation.SetPinned(v)
	return _u
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillablePinned(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetPinned(*v)
	}
	return _u
}

// SetMuted sets the "muted" field.
func (_u *ChatUpdateOne) SetMuted(v bool) *ChatUpdateOne {
	_u.mutation.SetMuted(v)
	return _u
}

// SetNillableMuted sets the "muted" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableMuted(v *bool) *ChatUpdateOne {
	if v != nil {
		_u.SetMuted(*v)
	}
	return _u
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (_u *ChatUpdateOne) SetMuteEndTs(v time.Time) *ChatUpdateOne {
	_u.mutation.SetMuteEndTs(v)
	return _u
}

// SetNillableMuteEndTs sets the "mute_end_ts" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableMuteEndTs(v *time.Time) *ChatUpdateOne {
	if v != nil {
		_u.SetMuteEndTs(*v)
	}
	return _u
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (_u *ChatUpdateOne) ClearMuteEndTs() *ChatUpdateOne {
	_u.mutation.ClearMuteEndTs()
	return _u
}

// SetLastMessageTs sets the "last_message_ts" field.
func (_u *ChatUpdateOne) SetLastMessageTs(v time.Time) *ChatUpdateOne {
	_u.mutation.SetLastMessageTs(v)
	return _u
}

// SetNillableLastMessageTs sets the "last_message_ts" field if the given value is not nil.
func (_u *ChatUpdateOne) SetNillableLastMessageTs(v *time.Time) *ChatUpdateOne {
	if v != nil {
		_u.SetLastMessageTs(*v)
	}
	return _u
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (_u *ChatUpdateOne) ClearLastMessageTs() *ChatUpdateOne {
	_u.mutation.ClearLastMessageTs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatUpdateOne) SetUpdatedAt(v time.Time) *ChatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatMutation object of the builder.
func (_u *ChatUpdateOne) Mutation() *ChatMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatUpdate builder.
func (_u *ChatUpdateOne) Where(ps ...predicate.Chat) *ChatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatUpdateOne) Select(field string, fields ...string) *ChatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chat entity.
func (_u *ChatUpdateOne) Save(ctx context.Context) (*Chat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatUpdateOne) SaveX(ctx context.Context) *Chat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := chat.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Chat.type": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chat.instance"`)
	}
	return nil
}

func (_u *ChatUpdateOne) sqlSave(ctx context.Context) (_node *Chat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chat.Table, chat.Columns, sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chat.FieldID)
		for _, f := range fields {
			if !chat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chat.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chat.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(chat.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(chat.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(chat.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pinned(); ok {
		_spec.SetField(chat.FieldPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Muted(); ok {
		_spec.SetField(chat.FieldMuted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MuteEndTs(); ok {
		_spec.SetField(chat.FieldMuteEndTs, field.TypeTime, value)
	}
	if _u.mutation.MuteEndTsCleared() {
		_spec.ClearField(chat.FieldMuteEndTs, field.TypeTime)
	}
	if value, ok := _u.mutation.LastMessageTs(); ok {
		_spec.SetField(chat.FieldLastMessageTs, field.TypeTime, value)
	}
	if _u.mutation.LastMessageTsCleared() {
		_spec.ClearField(chat.FieldLastMessageTs, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Chat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
