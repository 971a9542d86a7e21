// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageStatusUpdateDelete is the builder for deleting a MessageStatusUpdate entity.
type MessageStatusUpdateDelete struct {
	config
	hooks    []Hook
	mutation *MessageStatusUpdateMutation
}

// Where appends a list predicates to the MessageStatusUpdateDelete builder.
func (_d *MessageStatusUpdateDelete) Where(ps ...predicate.MessageStatusUpdate) *MessageStatusUpdateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MessageStatusUpdateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageStatusUpdateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MessageStatusUpdateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(messagestatusupdate.Table, sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MessageStatusUpdateDeleteOne is the builder for deleting a single MessageStatusUpdate entity.
type MessageStatusUpdateDeleteOne struct {
	_d *MessageStatusUpdateDelete
}

// Where appends a list predicates to the MessageStatusUpdateDelete builder.
func (_d *MessageStatusUpdateDeleteOne) Where(ps ...predicate.MessageStatusUpdate) *MessageStatusUpdateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MessageStatusUpdateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{messagestatusupdate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageStatusUpdateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
