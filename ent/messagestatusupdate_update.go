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
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageStatusUpdateUpdate is the builder for updating MessageStatusUpdate entities.
type MessageStatusUpdateUpdate struct {
	config
	hooks    []Hook
	mutation *MessageStatusUpdateMutation
}

// Where appends a list predicates to the MessageStatusUpdateUpdate builder.
func (_u *MessageStatusUpdateUpdate) Where(ps ...predicate.MessageStatusUpdate) *MessageStatusUpdateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageStatusUpdateUpdate) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdate) SetNillableStatus(v *messagestatusupdate.Status) *MessageStatusUpdateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParticipantJid sets the "participant_jid" field.
func (_u *MessageStatusUpdateUpdate) SetParticipantJid(v string) *MessageStatusUpdateUpdate {
	_u.mutation.SetParticipantJid(v)
	return _u
}

// SetNillableParticipantJid sets the "participant_jid" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdate) SetNillableParticipantJid(v *string) *MessageStatusUpdateUpdate {
	if v != nil {
		_u.SetParticipantJid(*v)
	}
	return _u
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (_u *MessageStatusUpdateUpdate) ClearParticipantJid() *MessageStatusUpdateUpdate {
	_u.mutation.ClearParticipantJid()
	return _u
}

// SetStatusTs sets the "status_ts" field.
func (_u *MessageStatusUpdateUpdate) SetStatusTs(v time.Time) *MessageStatusUpdateUpdate {
	_u.mutation.SetStatusTs(v)
	return _u
}

// SetNillableStatusTs sets the "status_ts" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdate) SetNillableStatusTs(v *time.Time) *MessageStatusUpdateUpdate {
	if v != nil {
		_u.SetStatusTs(*v)
	}
	return _u
}

// Mutation returns the MessageStatusUpdateMutation object of the builder.
func (_u *MessageStatusUpdateUpdate) Mutation() *MessageStatusUpdateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageStatusUpdateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageStatusUpdateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageStatusUpdateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageStatusUpdateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageStatusUpdateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := messagestatusupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageStatusUpdate.status": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageStatusUpdate.instance"`)
	}
	return nil
}

func (_u *MessageStatusUpdateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagestatusupdate.Table, messagestatusupdate.Columns, sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messagestatusupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParticipantJid(); ok {
		_spec.SetField(messagestatusupdate.FieldParticipantJid, field.TypeString, value)
	}
	if _u.mutation.ParticipantJidCleared() {
		_spec.ClearField(messagestatusupdate.FieldParticipantJid, field.TypeString)
	}
	if value, ok := _u.mutation.StatusTs(); ok {
		_spec.SetField(messagestatusupdate.FieldStatusTs, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagestatusupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageStatusUpdateUpdateOne is the builder for updating a single MessageStatusUpdate entity.
type MessageStatusUpdateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageStatusUpdateMutation
}

// SetStatus sets the "status" field.
func (_u *MessageStatusUpdateUpdateOne) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdateOne) SetNillableStatus(v *messagestatusupdate.Status) *MessageStatusUpdateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParticipantJid sets the "participant_jid" field.
func (_u *MessageStatusUpdateUpdateOne) SetParticipantJid(v string) *MessageStatusUpdateUpdateOne {
	_u.mutation.SetParticipantJid(v)
	return _u
}

// SetNillableParticipantJid sets the "participant_jid" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdateOne) SetNillableParticipantJid(v *string) *MessageStatusUpdateUpdateOne {
	if v != nil {
		_u.SetParticipantJid(*v)
	}
	return _u
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (_u *MessageStatusUpdateUpdateOne) ClearParticipantJid() *MessageStatusUpdateUpdateOne {
	_u.mutation.ClearParticipantJid()
	return _u
}

// SetStatusTs sets the "status_ts" field.
func (_u *MessageStatusUpdateUpdateOne) SetStatusTs(v time.Time) *MessageStatusUpdateUpdateOne {
	_u.mutation.SetStatusTs(v)
	return _u
}

// SetNillableStatusTs sets the "status_ts" field if the given value is not nil.
func (_u *MessageStatusUpdateUpdateOne) SetNillableStatusTs(v *time.Time) *MessageStatusUpdateUpdateOne {
	if v != nil {
		_u.SetStatusTs(*v)
	}
	return _u
}

// Mutation returns the MessageStatusUpdateMutation object of the builder.
func (_u *MessageStatusUpdateUpdateOne) Mutation() *MessageStatusUpdateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageStatusUpdateUpdate builder.
func (_u *MessageStatusUpdateUpdateOne) Where(ps ...predicate.MessageStatusUpdate) *MessageStatusUpdateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageStatusUpdateUpdateOne) Select(field string, fields ...string) *MessageStatusUpdateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageStatusUpdate entity.
func (_u *MessageStatusUpdateUpdateOne) Save(ctx context.Context) (*MessageStatusUpdate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageStatusUpdateUpdateOne) SaveX(ctx context.Context) *MessageStatusUpdate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageStatusUpdateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageStatusUpdateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageStatusUpdateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := messagestatusupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageStatusUpdate.status": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageStatusUpdate.instance"`)
	}
	return nil
}

func (_u *MessageStatusUpdateUpdateOne) sqlSave(ctx context.Context) (_node *MessageStatusUpdate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagestatusupdate.Table, messagestatusupdate.Columns, sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageStatusUpdate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagestatusupdate.FieldID)
		for _, f := range fields {
			if !messagestatusupdate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagestatusupdate.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messagestatusupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParticipantJid(); ok {
		_spec.SetField(messagestatusupdate.FieldParticipantJid, field.TypeString, value)
	}
	if _u.mutation.ParticipantJidCleared() {
		_spec.ClearField(messagestatusupdate.FieldParticipantJid, field.TypeString)
	}
	if value, ok := _u.mutation.StatusTs(); ok {
		_spec.SetField(messagestatusupdate.FieldStatusTs, field.TypeTime, value)
	}
	_node = &MessageStatusUpdate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagestatusupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
