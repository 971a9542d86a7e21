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
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageReactionUpdate is the builder for updating MessageReaction entities.
type MessageReactionUpdate struct {
	config
	hooks    []Hook
	mutation *MessageReactionMutation
}

// Where appends a list predicates to the MessageReactionUpdate builder.
func (_u *MessageReactionUpdate) Where(ps ...predicate.MessageReaction) *MessageReactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (_u *MessageReactionUpdate) SetReactionEmoji(v string) *MessageReactionUpdate {
	_u.mutation.SetReactionEmoji(v)
	return _u
}

// SetNillableReactionEmoji sets the "reaction_emoji" field if the given value is not nil.
func (_u *MessageReactionUpdate) SetNillableReactionEmoji(v *string) *MessageReactionUpdate {
	if v != nil {
		_u.SetReactionEmoji(*v)
	}
	return _u
}

// SetFromMe sets the "from_me" field.
func (_u *MessageReactionUpdate) SetFromMe(v bool) *MessageReactionUpdate {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *MessageReactionUpdate) SetNillableFromMe(v *bool) *MessageReactionUpdate {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageReactionUpdate) SetTimestamp(v time.Time) *MessageReactionUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageReactionUpdate) SetNillableTimestamp(v *time.Time) *MessageReactionUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageReactionUpdate) SetUpdatedAt(v time.Time) *MessageReactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageReactionMutation object of the builder.
func (_u *MessageReactionUpdate) Mutation() *MessageReactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageReactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageReactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageReactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageReactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageReactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagereaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageReactionUpdate) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageReaction.instance"`)
	}
	return nil
}

func (_u *MessageReactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagereaction.Table, messagereaction.Columns, sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReactionEmoji(); ok {
		_spec.SetField(messagereaction.FieldReactionEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(messagereaction.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(messagereaction.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagereaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagereaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageReactionUpdateOne is the builder for updating a single MessageReaction entity.
type MessageReactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageReactionMutation
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (_u *MessageReactionUpdateOne) SetReactionEmoji(v string) *MessageReactionUpdateOne {
	_u.mutation.SetReactionEmoji(v)
	return _u
}

// SetNillableReactionEmoji sets the "reaction_emoji" field if the given value is not nil.
func (_u *MessageReactionUpdateOne) SetNillableReactionEmoji(v *string) *MessageReactionUpdateOne {
	if v != nil {
		_u.SetReactionEmoji(*v)
	}
	return _u
}

// SetFromMe sets the "from_me" field.
func (_u *MessageReactionUpdateOne) SetFromMe(v bool) *MessageReactionUpdateOne {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *MessageReactionUpdateOne) SetNillableFromMe(v *bool) *MessageReactionUpdateOne {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageReactionUpdateOne) SetTimestamp(v time.Time) *MessageReactionUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageReactionUpdateOne) SetNillableTimestamp(v *time.Time) *MessageReactionUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageReactionUpdateOne) SetUpdatedAt(v time.Time) *MessageReactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MessageReactionMutation object of the builder.
func (_u *MessageReactionUpdateOne) Mutation() *MessageReactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageReactionUpdate builder.
func (_u *MessageReactionUpdateOne) Where(ps ...predicate.MessageReaction) *MessageReactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageReactionUpdateOne) Select(field string, fields ...string) *MessageReactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageReaction entity.
func (_u *MessageReactionUpdateOne) Save(ctx context.Context) (*MessageReaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageReactionUpdateOne) SaveX(ctx context.Context) *MessageReaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageReactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageReactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageReactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := messagereaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageReactionUpdateOne) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageReaction.instance"`)
	}
	return nil
}

func (_u *MessageReactionUpdateOne) sqlSave(ctx context.Context) (_node *MessageReaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagereaction.Table, messagereaction.Columns, sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageReaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagereaction.FieldID)
		for _, f := range fields {
			if !messagereaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagereaction.FieldID {
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
	if value, ok := _u.mutation.ReactionEmoji(); ok {
		_spec.SetField(messagereaction.FieldReactionEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(messagereaction.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(messagereaction.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(messagereaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MessageReaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagereaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
