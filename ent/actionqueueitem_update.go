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
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ActionQueueItemUpdate is the builder for updating ActionQueueItem entities.
type ActionQueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *ActionQueueItemMutation
}

// Where appends a list predicates to the ActionQueueItemUpdate builder.
func (_u *ActionQueueItemUpdate) Where(ps ...predicate.ActionQueueItem) *ActionQueueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ActionQueueItemUpdate) SetEventType(v actionqueueitem.EventType) *ActionQueueItemUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableEventType(v *actionqueueitem.EventType) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *ActionQueueItemUpdate) SetEventData(v map[string]interface{}) *ActionQueueItemUpdate {
	_u.mutation.SetEventData(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ActionQueueItemUpdate) SetIdempotencyKey(v string) *ActionQueueItemUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableIdempotencyKey(v *string) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionQueueItemUpdate) SetStatus(v actionqueueitem.Status) *ActionQueueItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableStatus(v *actionqueueitem.Status) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ActionQueueItemUpdate) SetResult(v string) *ActionQueueItemUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableResult(v *string) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ActionQueueItemUpdate) ClearResult() *ActionQueueItemUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ActionQueueItemUpdate) SetPriority(v int) *ActionQueueItemUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillablePriority(v *int) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ActionQueueItemUpdate) AddPriority(v int) *ActionQueueItemUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ActionQueueItemUpdate) SetAttempts(v int) *ActionQueueItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableAttempts(v *int) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ActionQueueItemUpdate) AddAttempts(v int) *ActionQueueItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ActionQueueItemUpdate) SetMaxAttempts(v int) *ActionQueueItemUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableMaxAttempts(v *int) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ActionQueueItemUpdate) AddMaxAttempts(v int) *ActionQueueItemUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (_u *ActionQueueItemUpdate) SetRetryAfterTs(v time.Time) *ActionQueueItemUpdate {
	_u.mutation.SetRetryAfterTs(v)
	return _u
}

// SetNillableRetryAfterTs sets the "retry_after_ts" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableRetryAfterTs(v *time.Time) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetRetryAfterTs(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ActionQueueItemUpdate) SetLastError(v string) *ActionQueueItemUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableLastError(v *string) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ActionQueueItemUpdate) ClearLastError() *ActionQueueItemUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ActionQueueItemUpdate) SetPodID(v string) *ActionQueueItemUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillablePodID(v *string) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ActionQueueItemUpdate) ClearPodID() *ActionQueueItemUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *ActionQueueItemUpdate) SetLeasedAt(v time.Time) *ActionQueueItemUpdate {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableLeasedAt(v *time.Time) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *ActionQueueItemUpdate) ClearLeasedAt() *ActionQueueItemUpdate {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ActionQueueItemUpdate) SetProcessedAt(v time.Time) *ActionQueueItemUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableProcessedAt(v *time.Time) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ActionQueueItemUpdate) ClearProcessedAt() *ActionQueueItemUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionQueueItemUpdate) SetCompletedAt(v time.Time) *ActionQueueItemUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdate) SetNillableCompletedAt(v *time.Time) *ActionQueueItemUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionQueueItemUpdate) ClearCompletedAt() *ActionQueueItemUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ActionQueueItemMutation object of the builder.
func (_u *ActionQueueItemUpdate) Mutation() *ActionQueueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionQueueItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionQueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionQueueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionQueueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionQueueItemUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := actionqueueitem.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := actionqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionQueueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionqueueitem.Table, actionqueueitem.Columns, sqlgraph.NewFieldSpec(actionqueueitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(actionqueueitem.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(actionqueueitem.FieldEventData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(actionqueueitem.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(actionqueueitem.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(actionqueueitem.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(actionqueueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(actionqueueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(actionqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(actionqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(actionqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(actionqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfterTs(); ok {
		_spec.SetField(actionqueueitem.FieldRetryAfterTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(actionqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(actionqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(actionqueueitem.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(actionqueueitem.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(actionqueueitem.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(actionqueueitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionqueueitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionQueueItemUpdateOne is the builder for updating a single ActionQueueItem entity.
type ActionQueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionQueueItemMutation
}

// SetEventType sets the "event_type" field.
func (_u *ActionQueueItemUpdateOne) SetEventType(v actionqueueitem.EventType) *ActionQueueItemUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableEventType(v *actionqueueitem.EventType) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *ActionQueueItemUpdateOne) SetEventData(v map[string]interface{}) *ActionQueueItemUpdateOne {
	_u.mutation.SetEventData(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ActionQueueItemUpdateOne) SetIdempotencyKey(v string) *ActionQueueItemUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableIdempotencyKey(v *string) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionQueueItemUpdateOne) SetStatus(v actionqueueitem.Status) *ActionQueueItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableStatus(v *actionqueueitem.Status) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ActionQueueItemUpdateOne) SetResult(v string) *ActionQueueItemUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableResult(v *string) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ActionQueueItemUpdateOne) ClearResult() *ActionQueueItemUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ActionQueueItemUpdateOne) SetPriority(v int) *ActionQueueItemUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillablePriority(v *int) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ActionQueueItemUpdateOne) AddPriority(v int) *ActionQueueItemUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ActionQueueItemUpdateOne) SetAttempts(v int) *ActionQueueItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableAttempts(v *int) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ActionQueueItemUpdateOne) AddAttempts(v int) *ActionQueueItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ActionQueueItemUpdateOne) SetMaxAttempts(v int) *ActionQueueItemUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableMaxAttempts(v *int) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ActionQueueItemUpdateOne) AddMaxAttempts(v int) *ActionQueueItemUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (_u *ActionQueueItemUpdateOne) SetRetryAfterTs(v time.Time) *ActionQueueItemUpdateOne {
	_u.mutation.SetRetryAfterTs(v)
	return _u
}

// SetNillableRetryAfterTs sets the "retry_after_ts" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableRetryAfterTs(v *time.Time) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetRetryAfterTs(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ActionQueueItemUpdateOne) SetLastError(v string) *ActionQueueItemUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableLastError(v *string) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ActionQueueItemUpdateOne) ClearLastError() *ActionQueueItemUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ActionQueueItemUpdateOne) SetPodID(v string) *ActionQueueItemUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillablePodID(v *string) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ActionQueueItemUpdateOne) ClearPodID() *ActionQueueItemUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *ActionQueueItemUpdateOne) SetLeasedAt(v time.Time) *ActionQueueItemUpdateOne {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableLeasedAt(v *time.Time) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *ActionQueueItemUpdateOne) ClearLeasedAt() *ActionQueueItemUpdateOne {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ActionQueueItemUpdateOne) SetProcessedAt(v time.Time) *ActionQueueItemUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableProcessedAt(v *time.Time) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ActionQueueItemUpdateOne) ClearProcessedAt() *ActionQueueItemUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionQueueItemUpdateOne) SetCompletedAt(v time.Time) *ActionQueueItemUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionQueueItemUpdateOne) SetNillableCompletedAt(v *time.Time) *ActionQueueItemUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionQueueItemUpdateOne) ClearCompletedAt() *ActionQueueItemUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ActionQueueItemMutation object of the builder.
func (_u *ActionQueueItemUpdateOne) Mutation() *ActionQueueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionQueueItemUpdate builder.
func (_u *ActionQueueItemUpdateOne) Where(ps ...predicate.ActionQueueItem) *ActionQueueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionQueueItemUpdateOne) Select(field string, fields ...string) *ActionQueueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionQueueItem entity.
func (_u *ActionQueueItemUpdateOne) Save(ctx context.Context) (*ActionQueueItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionQueueItemUpdateOne) SaveX(ctx context.Context) *ActionQueueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionQueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionQueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionQueueItemUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := actionqueueitem.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := actionqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionQueueItemUpdateOne) sqlSave(ctx context.Context) (_node *ActionQueueItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionqueueitem.Table, actionqueueitem.Columns, sqlgraph.NewFieldSpec(actionqueueitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionQueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionqueueitem.FieldID)
		for _, f := range fields {
			if !actionqueueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionqueueitem.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(actionqueueitem.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(actionqueueitem.FieldEventData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(actionqueueitem.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(actionqueueitem.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(actionqueueitem.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(actionqueueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(actionqueueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(actionqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(actionqueueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(actionqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(actionqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfterTs(); ok {
		_spec.SetField(actionqueueitem.FieldRetryAfterTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(actionqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(actionqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(actionqueueitem.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(actionqueueitem.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(actionqueueitem.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(actionqueueitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionqueueitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionqueueitem.FieldCompletedAt, field.TypeTime)
	}
	_node = &ActionQueueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
