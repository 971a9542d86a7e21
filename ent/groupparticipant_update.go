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
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/predicate"
)

// GroupParticipantUpdate is the builder for updating GroupParticipant entities.
type GroupParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *GroupParticipantMutation
}

// Where appends a list predicates to the GroupParticipantUpdate builder.
func (_u *GroupParticipantUpdate) Where(ps ...predicate.GroupParticipant) *GroupParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsAdmin sets the "is_admin" field.
func (_u *GroupParticipantUpdate) SetIsAdmin(v bool) *GroupParticipantUpdate {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *GroupParticipantUpdate) SetNillableIsAdmin(v *bool) *GroupParticipantUpdate {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (_u *GroupParticipantUpdate) SetIsSuperAdmin(v bool) *GroupParticipantUpdate {
	_u.mutation.SetIsSuperAdmin(v)
	return _u
}

// SetNillableIsSuperAdmin sets the "is_super_admin" field if the given value is not nil.
func (_u *GroupParticipantUpdate) SetNillableIsSuperAdmin(v *bool) *GroupParticipantUpdate {
	if v != nil {
		_u.SetIsSuperAdmin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupParticipantUpdate) SetUpdatedAt(v time.Time) *GroupParticipantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GroupParticipantMutation object of the builder.
func (_u *GroupParticipantUpdate) Mutation() *GroupParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupParticipantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupParticipantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupparticipant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupParticipantUpdate) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupParticipant.group"`)
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupParticipant.instance"`)
	}
	return nil
}

func (_u *GroupParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupparticipant.Table, groupparticipant.Columns, sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSuperAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsSuperAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(groupparticipant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupParticipantUpdateOne is the builder for updating a single GroupParticipant entity.
type GroupParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupParticipantMutation
}

// SetIsAdmin sets the "is_admin" field.
func (_u *GroupParticipantUpdateOne) SetIsAdmin(v bool) *GroupParticipantUpdateOne {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *GroupParticipantUpdateOne) SetNillableIsAdmin(v *bool) *GroupParticipantUpdateOne {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (_u *GroupParticipantUpdateOne) SetIsSuperAdmin(v bool) *GroupParticipantUpdateOne {
	_u.mutation.SetIsSuperAdmin(v)
	return _u
}

// SetNillableIsSuperAdmin sets the "is_super_admin" field if the given value is not nil.
func (_u *GroupParticipantUpdateOne) SetNillableIsSuperAdmin(v *bool) *GroupParticipantUpdateOne {
	if v != nil {
		_u.SetIsSuperAdmin(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupParticipantUpdateOne) SetUpdatedAt(v time.Time) *GroupParticipantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GroupParticipantMutation object of the builder.
func (_u *GroupParticipantUpdateOne) Mutation() *GroupParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupParticipantUpdate builder.
func (_u *GroupParticipantUpdateOne) Where(ps ...predicate.GroupParticipant) *GroupParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupParticipantUpdateOne) Select(field string, fields ...string) *GroupParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupParticipant entity.
func (_u *GroupParticipantUpdateOne) Save(ctx context.Context) (*GroupParticipant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupParticipantUpdateOne) SaveX(ctx context.Context) *GroupParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupParticipantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupparticipant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupParticipantUpdateOne) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupParticipant.group"`)
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupParticipant.instance"`)
	}
	return nil
}

func (_u *GroupParticipantUpdateOne) sqlSave(ctx context.Context) (_node *GroupParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupparticipant.Table, groupparticipant.Columns, sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupparticipant.FieldID)
		for _, f := range fields {
			if !groupparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupparticipant.FieldID {
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
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSuperAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsSuperAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(groupparticipant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GroupParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
