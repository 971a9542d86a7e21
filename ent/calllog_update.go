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
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/predicate"
)

// CallLogUpdate is the builder for updating CallLog entities.
type CallLogUpdate struct {
	config
	hooks    []Hook
	mutation *CallLogMutation
}

// Where appends a list predicates to the CallLogUpdate builder.
func (_u *CallLogUpdate) Where(ps ...predicate.CallLog) *CallLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *CallLogUpdate) SetChatID(v string) *CallLogUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableChatID(v *string) *CallLogUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *CallLogUpdate) ClearChatID() *CallLogUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetFromJid sets the "from_jid" field.
func (_u *CallLogUpdate) SetFromJid(v string) *CallLogUpdate {
	_u.mutation.SetFromJid(v)
	return _u
}

// SetNillableFromJid sets the "from_jid" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableFromJid(v *string) *CallLogUpdate {
	if v != nil {
		_u.SetFromJid(*v)
	}
	return _u
}

// ClearFromJid clears the value of the "from_jid" field.
func (_u *CallLogUpdate) ClearFromJid() *CallLogUpdate {
	_u.mutation.ClearFromJid()
	return _u
}

// SetFromMe sets the "from_me" field.
func (_u *CallLogUpdate) SetFromMe(v bool) *CallLogUpdate {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableFromMe(v *bool) *CallLogUpdate {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetStartTs sets the "start_ts" field.
func (_u *CallLogUpdate) SetStartTs(v time.Time) *CallLogUpdate {
	_u.mutation.SetStartTs(v)
	return _u
}

// SetNillableStartTs sets the "start_ts" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableStartTs(v *time.Time) *CallLogUpdate {
	if v != nil {
		_u.SetStartTs(*v)
	}
	return _u
}

// SetIsVideo sets the "is_video" field.
func (_u *CallLogUpdate) SetIsVideo(v bool) *CallLogUpdate {
	_u.mutation.SetIsVideo(v)
	return _u
}

// SetNillableIsVideo sets the "is_video" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableIsVideo(v *bool) *CallLogUpdate {
	if v != nil {
		_u.SetIsVideo(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallLogUpdate) SetDurationSeconds(v int) *CallLogUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableDurationSeconds(v *int) *CallLogUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallLogUpdate) AddDurationSeconds(v int) *CallLogUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CallLogUpdate) SetOutcome(v calllog.Outcome) *CallLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CallLogUpdate) SetNillableOutcome(v *calllog.Outcome) *CallLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the CallLogMutation object of the builder.
func (_u *CallLogUpdate) Mutation() *CallLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallLogUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := calllog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CallLog.outcome": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallLog.instance"`)
	}
	return nil
}

func (_u *CallLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calllog.Table, calllog.Columns, sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(calllog.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(calllog.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.FromJid(); ok {
		_spec.SetField(calllog.FieldFromJid, field.TypeString, value)
	}
	if _u.mutation.FromJidCleared() {
		_spec.ClearField(calllog.FieldFromJid, field.TypeString)
	}
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(calllog.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartTs(); ok {
		_spec.SetField(calllog.FieldStartTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsVideo(); ok {
		_spec.SetField(calllog.FieldIsVideo, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(calllog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(calllog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(calllog.FieldOutcome, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallLogUpdateOne is the builder for updating a single CallLog entity.
type CallLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallLogMutation
}

// SetChatID sets the "chat_id" field.
func (_u *CallLogUpdateOne) SetChatID(v string) *CallLogUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableChatID(v *string) *CallLogUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *CallLogUpdateOne) ClearChatID() *CallLogUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetFromJid sets the "from_jid" field.
func (_u *CallLogUpdateOne) SetFromJid(v string) *CallLogUpdateOne {
	_u.mutation.SetFromJid(v)
	return _u
}

// SetNillableFromJid sets the "from_jid" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableFromJid(v *string) *CallLogUpdateOne {
	if v != nil {
		_u.SetFromJid(*v)
	}
	return _u
}

// ClearFromJid clears the value of the "from_jid" field.
func (_u *CallLogUpdateOne) ClearFromJid() *CallLogUpdateOne {
	_u.mutation.ClearFromJid()
	return _u
}

// SetFromMe sets the "from_me" field.
func (_u *CallLogUpdateOne) SetFromMe(v bool) *CallLogUpdateOne {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableFromMe(v *bool) *CallLogUpdateOne {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetStartTs sets the "start_ts" field.
func (_u *CallLogUpdateOne) SetStartTs(v time.Time) *CallLogUpdateOne {
	_u.mutation.SetStartTs(v)
	return _u
}

// SetNillableStartTs sets the "start_ts" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableStartTs(v *time.Time) *CallLogUpdateOne {
	if v != nil {
		_u.SetStartTs(*v)
	}
	return _u
}

// SetIsVideo sets the "is_video" field.
func (_u *CallLogUpdateOne) SetIsVideo(v bool) *CallLogUpdateOne {
	_u.mutation.SetIsVideo(v)
	return _u
}

// SetNillableIsVideo sets the "is_video" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableIsVideo(v *bool) *CallLogUpdateOne {
	if v != nil {
		_u.SetIsVideo(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallLogUpdateOne) SetDurationSeconds(v int) *CallLogUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableDurationSeconds(v *int) *CallLogUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallLogUpdateOne) AddDurationSeconds(v int) *CallLogUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CallLogUpdateOne) SetOutcome(v calllog.Outcome) *CallLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CallLogUpdateOne) SetNillableOutcome(v *calllog.Outcome) *CallLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the CallLogMutation object of the builder.
func (_u *CallLogUpdateOne) Mutation() *CallLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallLogUpdate builder.
func (_u *CallLogUpdateOne) Where(ps ...predicate.CallLog) *CallLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallLogUpdateOne) Select(field string, fields ...string) *CallLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallLog entity.
func (_u *CallLogUpdateOne) Save(ctx context.Context) (*CallLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallLogUpdateOne) SaveX(ctx context.Context) *CallLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallLogUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := calllog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CallLog.outcome": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallLog.instance"`)
	}
	return nil
}

func (_u *CallLogUpdateOne) sqlSave(ctx context.Context) (_node *CallLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calllog.Table, calllog.Columns, sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calllog.FieldID)
		for _, f := range fields {
			if !calllog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calllog.FieldID {
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
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(calllog.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(calllog.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.FromJid(); ok {
		_spec.SetField(calllog.FieldFromJid, field.TypeString, value)
	}
	if _u.mutation.FromJidCleared() {
		_spec.ClearField(calllog.FieldFromJid, field.TypeString)
	}
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(calllog.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartTs(); ok {
		_spec.SetField(calllog.FieldStartTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsVideo(); ok {
		_spec.SetField(calllog.FieldIsVideo, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(calllog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(calllog.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(calllog.FieldOutcome, field.TypeEnum, value)
	}
	_node = &CallLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
