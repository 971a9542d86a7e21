// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageEventLinkUpdate is the builder for updating MessageEventLink entities.
type MessageEventLinkUpdate struct {
	config
	hooks    []Hook
	mutation *MessageEventLinkMutation
}

// Where appends a list predicates to the MessageEventLinkUpdate builder.
func (_u *MessageEventLinkUpdate) Where(ps ...predicate.MessageEventLink) *MessageEventLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLinkType sets the "link_type" field.
func (_u *MessageEventLinkUpdate) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkUpdate {
	_u.mutation.SetLinkType(v)
	return _u
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_u *MessageEventLinkUpdate) SetNillableLinkType(v *messageeventlink.LinkType) *MessageEventLinkUpdate {
	if v != nil {
		_u.SetLinkType(*v)
	}
	return _u
}

// Mutation returns the MessageEventLinkMutation object of the builder.
func (_u *MessageEventLinkUpdate) Mutation() *MessageEventLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageEventLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageEventLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventLinkUpdate) check() error {
	if v, ok := _u.mutation.LinkType(); ok {
		if err := messageeventlink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageEventLink.link_type": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageEventLink.message"`)
	}
	if _u.mutation.CalendarEventCleared() && len(_u.mutation.CalendarEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageEventLink.calendar_event"`)
	}
	return nil
}

func (_u *MessageEventLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageeventlink.Table, messageeventlink.Columns, sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(messageeventlink.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkType(); ok {
		_spec.SetField(messageeventlink.FieldLinkType, field.TypeEnum, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(messageeventlink.FieldInstanceID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageeventlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageEventLinkUpdateOne is the builder for updating a single MessageEventLink entity.
type MessageEventLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageEventLinkMutation
}

// SetLinkType sets the "link_type" field.
func (_u *MessageEventLinkUpdateOne) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkUpdateOne {
	_u.mutation.SetLinkType(v)
	return _u
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_u *MessageEventLinkUpdateOne) SetNillableLinkType(v *messageeventlink.LinkType) *MessageEventLinkUpdateOne {
	if v != nil {
		_u.SetLinkType(*v)
	}
	return _u
}

// Mutation returns the MessageEventLinkMutation object of the builder.
func (_u *MessageEventLinkUpdateOne) Mutation() *MessageEventLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageEventLinkUpdate builder.
func (_u *MessageEventLinkUpdateOne) Where(ps ...predicate.MessageEventLink) *MessageEventLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageEventLinkUpdateOne) Select(field string, fields ...string) *MessageEventLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageEventLink entity.
func (_u *MessageEventLinkUpdateOne) Save(ctx context.Context) (*MessageEventLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventLinkUpdateOne) SaveX(ctx context.Context) *MessageEventLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageEventLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventLinkUpdateOne) check() error {
	if v, ok := _u.mutation.LinkType(); ok {
		if err := messageeventlink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageEventLink.link_type": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageEventLink.message"`)
	}
	if _u.mutation.CalendarEventCleared() && len(_u.mutation.CalendarEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageEventLink.calendar_event"`)
	}
	return nil
}

func (_u *MessageEventLinkUpdateOne) sqlSave(ctx context.Context) (_node *MessageEventLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageeventlink.Table, messageeventlink.Columns, sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageEventLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageeventlink.FieldID)
		for _, f := range fields {
			if !messageeventlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageeventlink.FieldID {
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
		_spec.ClearField(messageeventlink.FieldRuleID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkType(); ok {
		_spec.SetField(messageeventlink.FieldLinkType, field.TypeEnum, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(messageeventlink.FieldInstanceID, field.TypeString)
	}
	_node = &MessageEventLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageeventlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
