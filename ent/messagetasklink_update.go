// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageTaskLinkUpdate is the builder for updating MessageTaskLink entities.
type MessageTaskLinkUpdate struct {
	config
	hooks    []Hook
	mutation *MessageTaskLinkMutation
}

// Where appends a list predicates to the MessageTaskLinkUpdate builder.
func (_u *MessageTaskLinkUpdate) Where(ps ...predicate.MessageTaskLink) *MessageTaskLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLinkType sets the "link_type" field.
func (_u *MessageTaskLinkUpdate) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkUpdate {
	_u.mutation.SetLinkType(v)
	return _u
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_u *MessageTaskLinkUpdate) SetNillableLinkType(v *messagetasklink.LinkType) *MessageTaskLinkUpdate {
	if v != nil {
		_u.SetLinkType(*v)
	}
	return _u
}

// Mutation returns the MessageTaskLinkMutation object of the builder.
func (_u *MessageTaskLinkUpdate) Mutation() *MessageTaskLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageTaskLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTaskLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageTaskLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTaskLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTaskLinkUpdate) check() error {
	if v, ok := _u.mutation.LinkType(); ok {
		if err := messagetasklink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageTaskLink.link_type": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTaskLink.message"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTaskLink.task"`)
	}
	return nil
}

func (_u *MessageTaskLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetasklink.Table, messagetasklink.Columns, sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(messagetasklink.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkType(); ok {
		_spec.SetField(messagetasklink.FieldLinkType, field.TypeEnum, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(messagetasklink.FieldInstanceID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetasklink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageTaskLinkUpdateOne is the builder for updating a single MessageTaskLink entity.
type MessageTaskLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageTaskLinkMutation
}

// SetLinkType sets the "link_type" field.
func (_u *MessageTaskLinkUpdateOne) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkUpdateOne {
	_u.mutation.SetLinkType(v)
	return _u
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_u *MessageTaskLinkUpdateOne) SetNillableLinkType(v *messagetasklink.LinkType) *MessageTaskLinkUpdateOne {
	if v != nil {
		_u.SetLinkType(*v)
	}
	return _u
}

// Mutation returns the MessageTaskLinkMutation object of the builder.
func (_u *MessageTaskLinkUpdateOne) Mutation() *MessageTaskLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageTaskLinkUpdate builder.
func (_u *MessageTaskLinkUpdateOne) Where(ps ...predicate.MessageTaskLink) *MessageTaskLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageTaskLinkUpdateOne) Select(field string, fields ...string) *MessageTaskLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageTaskLink entity.
func (_u *MessageTaskLinkUpdateOne) Save(ctx context.Context) (*MessageTaskLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTaskLinkUpdateOne) SaveX(ctx context.Context) *MessageTaskLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageTaskLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTaskLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTaskLinkUpdateOne) check() error {
	if v, ok := _u.mutation.LinkType(); ok {
		if err := messagetasklink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageTaskLink.link_type": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTaskLink.message"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTaskLink.task"`)
	}
	return nil
}

func (_u *MessageTaskLinkUpdateOne) sqlSave(ctx context.Context) (_node *MessageTaskLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetasklink.Table, messagetasklink.Columns, sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageTaskLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagetasklink.FieldID)
		for _, f := range fields {
			if !messagetasklink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagetasklink.FieldID {
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
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(messagetasklink.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkType(); ok {
		_spec.SetField(messagetasklink.FieldLinkType, field.TypeEnum, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(messagetasklink.FieldInstanceID, field.TypeString)
	}
	_node = &MessageTaskLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetasklink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
