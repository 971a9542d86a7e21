// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ActionQueueItemDelete is the builder for deleting a ActionQueueItem entity.
type ActionQueueItemDelete struct {
	config
	hooks    []Hook
	mutation *ActionQueueItemMutation
}

// Where appends a list predicates to the ActionQueueItemDelete builder.
func (_d *ActionQueueItemDelete) Where(ps ...predicate.ActionQueueItem) *ActionQueueItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActionQueueItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActionQueueItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActionQueueItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(actionqueueitem.Table, sqlgraph.NewFieldSpec(actionqueueitem.FieldID, field.TypeString))
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

// ActionQueueItemDeleteOne is the builder for deleting a single ActionQueueItem entity.
type ActionQueueItemDeleteOne struct {
	_d *ActionQueueItemDelete
}

// Where appends a list predicates to the ActionQueueItemDelete builder.
func (_d *ActionQueueItemDeleteOne) Where(ps ...predicate.ActionQueueItem) *ActionQueueItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActionQueueItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{actionqueueitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActionQueueItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
