// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ActionExecutionLogUpdate is the builder for updating ActionExecutionLog entities.
type ActionExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActionExecutionLogMutation
}

// Where appends a list predicates to the ActionExecutionLogUpdate builder.
func (_u *ActionExecutionLogUpdate) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionExecutionLogUpdate) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionExecutionLogUpdate) SetNillableStatus(v *actionexecutionlog.Status) *ActionExecutionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *ActionExecutionLogUpdate) SetExecutionTimeMs(v int) *ActionExecutionLogUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *ActionExecutionLogUpdate) SetNillableExecutionTimeMs(v *int) *ActionExecutionLogUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *ActionExecutionLogUpdate) AddExecutionTimeMs(v int) *ActionExecutionLogUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActionExecutionLogUpdate) SetErrorMessage(v string) *ActionExecutionLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActionExecutionLogUpdate) SetNillableErrorMessage(v *string) *ActionExecutionLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActionExecutionLogUpdate) ClearErrorMessage() *ActionExecutionLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdate) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpdate {
	_u.mutation.SetCreatedEntityRefs(v)
	return _u
}

// AppendCreatedEntityRefs appends value to the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdate) AppendCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpdate {
	_u.mutation.AppendCreatedEntityRefs(v)
	return _u
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdate) ClearCreatedEntityRefs() *ActionExecutionLogUpdate {
	_u.mutation.ClearCreatedEntityRefs()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ActionExecutionLogUpdate) SetChatID(v string) *ActionExecutionLogUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ActionExecutionLogUpdate) SetNillableChatID(v *string) *ActionExecutionLogUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *ActionExecutionLogUpdate) ClearChatID() *ActionExecutionLogUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *ActionExecutionLogUpdate) SetInstanceID(v string) *ActionExecutionLogUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *ActionExecutionLogUpdate) SetNillableInstanceID(v *string) *ActionExecutionLogUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *ActionExecutionLogUpdate) ClearInstanceID() *ActionExecutionLogUpdate {
	_u.mutation.ClearInstanceID()
	return _u
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_u *ActionExecutionLogUpdate) Mutation() *ActionExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionExecutionLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionexecutionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionExecutionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionexecutionlog.Table, actionexecutionlog.Columns, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.QueueItemIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldQueueItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionexecutionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(actionexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(actionexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(actionexecutionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(actionexecutionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedEntityRefs(); ok {
		_spec.SetField(actionexecutionlog.FieldCreatedEntityRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedEntityRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, actionexecutionlog.FieldCreatedEntityRefs, value)
		})
	}
	if _u.mutation.CreatedEntityRefsCleared() {
		_spec.ClearField(actionexecutionlog.FieldCreatedEntityRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(actionexecutionlog.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(actionexecutionlog.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldInstanceID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionExecutionLogUpdateOne is the builder for updating a single ActionExecutionLog entity.
type ActionExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionExecutionLogMutation
}

// SetStatus sets the "status" field.
func (_u *ActionExecutionLogUpdateOne) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionExecutionLogUpdateOne) SetNillableStatus(v *actionexecutionlog.Status) *ActionExecutionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *ActionExecutionLogUpdateOne) SetExecutionTimeMs(v int) *ActionExecutionLogUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *ActionExecutionLogUpdateOne) SetNillableExecutionTimeMs(v *int) *ActionExecutionLogUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *ActionExecutionLogUpdateOne) AddExecutionTimeMs(v int) *ActionExecutionLogUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActionExecutionLogUpdateOne) SetErrorMessage(v string) *ActionExecutionLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActionExecutionLogUpdateOne) SetNillableErrorMessage(v *string) *ActionExecutionLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActionExecutionLogUpdateOne) ClearErrorMessage() *ActionExecutionLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdateOne) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpdateOne {
	_u.mutation.SetCreatedEntityRefs(v)
	return _u
}

// AppendCreatedEntityRefs appends value to the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdateOne) AppendCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpdateOne {
	_u.mutation.AppendCreatedEntityRefs(v)
	return _u
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (_u *ActionExecutionLogUpdateOne) ClearCreatedEntityRefs() *ActionExecutionLogUpdateOne {
	_u.mutation.ClearCreatedEntityRefs()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ActionExecutionLogUpdateOne) SetChatID(v string) *ActionExecutionLogUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ActionExecutionLogUpdateOne) SetNillableChatID(v *string) *ActionExecutionLogUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *ActionExecutionLogUpdateOne) ClearChatID() *ActionExecutionLogUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *ActionExecutionLogUpdateOne) SetInstanceID(v string) *ActionExecutionLogUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *ActionExecutionLogUpdateOne) SetNillableInstanceID(v *string) *ActionExecutionLogUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *ActionExecutionLogUpdateOne) ClearInstanceID() *ActionExecutionLogUpdateOne {
	_u.mutation.ClearInstanceID()
	return _u
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_u *ActionExecutionLogUpdateOne) Mutation() *ActionExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionExecutionLogUpdate builder.
func (_u *ActionExecutionLogUpdateOne) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionExecutionLogUpdateOne) Select(field string, fields ...string) *ActionExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionExecutionLog entity.
func (_u *ActionExecutionLogUpdateOne) Save(ctx context.Context) (*ActionExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionExecutionLogUpdateOne) SaveX(ctx context.Context) *ActionExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionExecutionLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionexecutionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionExecutionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ActionExecutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionexecutionlog.Table, actionexecutionlog.Columns, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionexecutionlog.FieldID)
		for _, f := range fields {
			if !actionexecutionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionexecutionlog.FieldID {
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
	if _u.mutation.QueueItemIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldQueueItemID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionexecutionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(actionexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(actionexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(actionexecutionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(actionexecutionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedEntityRefs(); ok {
		_spec.SetField(actionexecutionlog.FieldCreatedEntityRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedEntityRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, actionexecutionlog.FieldCreatedEntityRefs, value)
		})
	}
	if _u.mutation.CreatedEntityRefsCleared() {
		_spec.ClearField(actionexecutionlog.FieldCreatedEntityRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(actionexecutionlog.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(actionexecutionlog.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldInstanceID, field.TypeString)
	}
	_node = &ActionExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
