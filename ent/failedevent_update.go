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
	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/ent/predicate"
)

// FailedEventUpdate is the builder for updating FailedEvent entities.
type FailedEventUpdate struct {
	config
	hooks    []Hook
	mutation *FailedEventMutation
}

// Where appends a list predicates to the FailedEventUpdate builder.
func (_u *FailedEventUpdate) Where(ps ...predicate.FailedEvent) *FailedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *FailedEventUpdate) SetInstanceID(v string) *FailedEventUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableInstanceID(v *string) *FailedEventUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *FailedEventUpdate) ClearInstanceID() *FailedEventUpdate {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *FailedEventUpdate) SetEventType(v string) *FailedEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableEventType(v *string) *FailedEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *FailedEventUpdate) ClearEventType() *FailedEventUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *FailedEventUpdate) SetRawPayload(v map[string]interface{}) *FailedEventUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *FailedEventUpdate) ClearRawPayload() *FailedEventUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *FailedEventUpdate) SetFailureReason(v string) *FailedEventUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableFailureReason(v *string) *FailedEventUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FailedEventUpdate) SetErrorKind(v failedevent.ErrorKind) *FailedEventUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableErrorKind(v *failedevent.ErrorKind) *FailedEventUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FailedEventUpdate) SetRetryCount(v int) *FailedEventUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableRetryCount(v *int) *FailedEventUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FailedEventUpdate) AddRetryCount(v int) *FailedEventUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *FailedEventUpdate) SetMaxRetries(v int) *FailedEventUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableMaxRetries(v *int) *FailedEventUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *FailedEventUpdate) AddMaxRetries(v int) *FailedEventUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *FailedEventUpdate) SetNextRetryAt(v time.Time) *FailedEventUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableNextRetryAt(v *time.Time) *FailedEventUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *FailedEventUpdate) SetResolved(v bool) *FailedEventUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableResolved(v *bool) *FailedEventUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *FailedEventUpdate) SetResolvedAt(v time.Time) *FailedEventUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *FailedEventUpdate) SetNillableResolvedAt(v *time.Time) *FailedEventUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *FailedEventUpdate) ClearResolvedAt() *FailedEventUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FailedEventUpdate) SetUpdatedAt(v time.Time) *FailedEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FailedEventMutation object of the builder.
func (_u *FailedEventUpdate) Mutation() *FailedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FailedEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FailedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FailedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FailedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FailedEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := failedevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FailedEventUpdate) check() error {
	if v, ok := _u.mutation.ErrorKind(); ok {
		if err := failedevent.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "FailedEvent.error_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *FailedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(failedevent.Table, failedevent.Columns, sqlgraph.NewFieldSpec(failedevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(failedevent.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(failedevent.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(failedevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(failedevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(failedevent.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(failedevent.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(failedevent.FieldFailureReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(failedevent.FieldErrorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(failedevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(failedevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(failedevent.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(failedevent.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(failedevent.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(failedevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(failedevent.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(failedevent.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(failedevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{failedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FailedEventUpdateOne is the builder for updating a single FailedEvent entity.
type FailedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FailedEventMutation
}

// SetInstanceID sets the "instance_id" field.
func (_u *FailedEventUpdateOne) SetInstanceID(v string) *FailedEventUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableInstanceID(v *string) *FailedEventUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *FailedEventUpdateOne) ClearInstanceID() *FailedEventUpdateOne {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *FailedEventUpdateOne) SetEventType(v string) *FailedEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableEventType(v *string) *FailedEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *FailedEventUpdateOne) ClearEventType() *FailedEventUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *FailedEventUpdateOne) SetRawPayload(v map[string]interface{}) *FailedEventUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *FailedEventUpdateOne) ClearRawPayload() *FailedEventUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *FailedEventUpdateOne) SetFailureReason(v string) *FailedEventUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableFailureReason(v *string) *FailedEventUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FailedEventUpdateOne) SetErrorKind(v failedevent.ErrorKind) *FailedEventUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableErrorKind(v *failedevent.ErrorKind) *FailedEventUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FailedEventUpdateOne) SetRetryCount(v int) *FailedEventUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableRetryCount(v *int) *FailedEventUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FailedEventUpdateOne) AddRetryCount(v int) *FailedEventUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *FailedEventUpdateOne) SetMaxRetries(v int) *FailedEventUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableMaxRetries(v *int) *FailedEventUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *FailedEventUpdateOne) AddMaxRetries(v int) *FailedEventUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *FailedEventUpdateOne) SetNextRetryAt(v time.Time) *FailedEventUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableNextRetryAt(v *time.Time) *FailedEventUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *FailedEventUpdateOne) SetResolved(v bool) *FailedEventUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableResolved(v *bool) *FailedEventUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *FailedEventUpdateOne) SetResolvedAt(v time.Time) *FailedEventUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *FailedEventUpdateOne) SetNillableResolvedAt(v *time.Time) *FailedEventUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *FailedEventUpdateOne) ClearResolvedAt() *FailedEventUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FailedEventUpdateOne) SetUpdatedAt(v time.Time) *FailedEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FailedEventMutation object of the builder.
func (_u *FailedEventUpdateOne) Mutation() *FailedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FailedEventUpdate builder.
func (_u *FailedEventUpdateOne) Where(ps ...predicate.FailedEvent) *FailedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FailedEventUpdateOne) Select(field string, fields ...string) *FailedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FailedEvent entity.
func (_u *FailedEventUpdateOne) Save(ctx context.Context) (*FailedEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FailedEventUpdateOne) SaveX(ctx context.Context) *FailedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FailedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FailedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FailedEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := failedevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FailedEventUpdateOne) check() error {
	if v, ok := _u.mutation.ErrorKind(); ok {
		if err := failedevent.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "FailedEvent.error_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *FailedEventUpdateOne) sqlSave(ctx context.Context) (_node *FailedEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(failedevent.Table, failedevent.Columns, sqlgraph.NewFieldSpec(failedevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FailedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, failedevent.FieldID)
		for _, f := range fields {
			if !failedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != failedevent.FieldID {
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
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(failedevent.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(failedevent.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(failedevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(failedevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(failedevent.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(failedevent.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(failedevent.FieldFailureReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(failedevent.FieldErrorKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(failedevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(failedevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(failedevent.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(failedevent.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(failedevent.FieldNextRetryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(failedevent.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(failedevent.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(failedevent.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(failedevent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FailedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{failedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
