// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
)

// ActionQueueItemCreate is the builder for creating a ActionQueueItem entity.
type ActionQueueItemCreate struct {
	config
	mutation *ActionQueueItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *ActionQueueItemCreate) SetEventType(v actionqueueitem.EventType) *ActionQueueItemCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventData sets the "event_data" field.
func (_c *ActionQueueItemCreate) SetEventData(v map[string]interface{}) *ActionQueueItemCreate {
	_c.mutation.SetEventData(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *ActionQueueItemCreate) SetIdempotencyKey(v string) *ActionQueueItemCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActionQueueItemCreate) SetStatus(v actionqueueitem.Status) *ActionQueueItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableStatus(v *actionqueueitem.Status) *ActionQueueItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ActionQueueItemCreate) SetResult(v string) *ActionQueueItemCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableResult(v *string) *ActionQueueItemCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ActionQueueItemCreate) SetPriority(v int) *ActionQueueItemCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillablePriority(v *int) *ActionQueueItemCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ActionQueueItemCreate) SetAttempts(v int) *ActionQueueItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableAttempts(v *int) *ActionQueueItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *ActionQueueItemCreate) SetMaxAttempts(v int) *ActionQueueItemCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableMaxAttempts(v *int) *ActionQueueItemCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (_c *ActionQueueItemCreate) SetRetryAfterTs(v time.Time) *ActionQueueItemCreate {
	_c.mutation.SetRetryAfterTs(v)
	return _c
}

// SetNillableRetryAfterTs sets the "retry_after_ts" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableRetryAfterTs(v *time.Time) *ActionQueueItemCreate {
	if v != nil {
		_c.SetRetryAfterTs(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ActionQueueItemCreate) SetLastError(v string) *ActionQueueItemCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableLastError(v *string) *ActionQueueItemCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ActionQueueItemCreate) SetPodID(v string) *ActionQueueItemCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillablePodID(v *string) *ActionQueueItemCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLeasedAt sets the "leased_at" field.
func (_c *ActionQueueItemCreate) SetLeasedAt(v time.Time) *ActionQueueItemCreate {
	_c.mutation.SetLeasedAt(v)
	return _c
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableLeasedAt(v *time.Time) *ActionQueueItemCreate {
	if v != nil {
		_c.SetLeasedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionQueueItemCreate) SetCreatedAt(v time.Time) *ActionQueueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableCreatedAt(v *time.Time) *ActionQueueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ActionQueueItemCreate) SetProcessedAt(v time.Time) *ActionQueueItemCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableProcessedAt(v *time.Time) *ActionQueueItemCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ActionQueueItemCreate) SetCompletedAt(v time.Time) *ActionQueueItemCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ActionQueueItemCreate) SetNillableCompletedAt(v *time.Time) *ActionQueueItemCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionQueueItemCreate) SetID(v string) *ActionQueueItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionQueueItemMutation object of the builder.
func (_c *ActionQueueItemCreate) Mutation() *ActionQueueItemMutation {
	return _c.mutation
}

// Save creates the ActionQueueItem in the database.
func (_c *ActionQueueItemCreate) Save(ctx context.Context) (*ActionQueueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionQueueItemCreate) SaveX(ctx context.Context) *ActionQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionQueueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionQueueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionQueueItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := actionqueueitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := actionqueueitem.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := actionqueueitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := actionqueueitem.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RetryAfterTs(); !ok {
		v := actionqueueitem.DefaultRetryAfterTs()
		_c.mutation.SetRetryAfterTs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionqueueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionQueueItemCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ActionQueueItem.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := actionqueueitem.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventData(); !ok {
		return &ValidationError{Name: "event_data", err: errors.New(`ent: missing required field "ActionQueueItem.event_data"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "ActionQueueItem.idempotency_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActionQueueItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := actionqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionQueueItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ActionQueueItem.priority"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ActionQueueItem.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "ActionQueueItem.max_attempts"`)}
	}
	if _, ok := _c.mutation.RetryAfterTs(); !ok {
		return &ValidationError{Name: "retry_after_ts", err: errors.New(`ent: missing required field "ActionQueueItem.retry_after_ts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActionQueueItem.created_at"`)}
	}
	return nil
}

func (_c *ActionQueueItemCreate) sqlSave(ctx context.Context) (*ActionQueueItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActionQueueItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionQueueItemCreate) createSpec() (*ActionQueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionQueueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionqueueitem.Table, sqlgraph.NewFieldSpec(actionqueueitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(actionqueueitem.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventData(); ok {
		_spec.SetField(actionqueueitem.FieldEventData, field.TypeJSON, value)
		_node.EventData = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(actionqueueitem.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(actionqueueitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(actionqueueitem.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(actionqueueitem.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(actionqueueitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(actionqueueitem.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RetryAfterTs(); ok {
		_spec.SetField(actionqueueitem.FieldRetryAfterTs, field.TypeTime, value)
		_node.RetryAfterTs = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(actionqueueitem.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(actionqueueitem.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LeasedAt(); ok {
		_spec.SetField(actionqueueitem.FieldLeasedAt, field.TypeTime, value)
		_node.LeasedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionqueueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(actionqueueitem.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(actionqueueitem.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionQueueItem.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionQueueItemUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionQueueItemCreate) OnConflict(opts ...sql.ConflictOption) *ActionQueueItemUpsertOne {
	_c.conflict = opts
	return &ActionQueueItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionQueueItemCreate) OnConflictColumns(columns ...string) *ActionQueueItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionQueueItemUpsertOne{
		create: _c,
	}
}

type (
	// ActionQueueItemUpsertOne is the builder for "upsert"-ing
	//  one ActionQueueItem node.
	ActionQueueItemUpsertOne struct {
		create *ActionQueueItemCreate
	}

	// ActionQueueItemUpsert is the "OnConflict" setter.
	ActionQueueItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *ActionQueueItemUpsert) SetEventType(v actionqueueitem.EventType) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateEventType() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldEventType)
	return u
}

// SetEventData sets the "event_data" field.
func (u *ActionQueueItemUpsert) SetEventData(v map[string]interface{}) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldEventData, v)
	return u
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateEventData() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldEventData)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *ActionQueueItemUpsert) SetIdempotencyKey(v string) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateIdempotencyKey() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldIdempotencyKey)
	return u
}

// SetStatus sets the "status" field.
func (u *ActionQueueItemUpsert) SetStatus(v actionqueueitem.Status) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateStatus() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldStatus)
	return u
}

// SetResult sets the "result" field.
func (u *ActionQueueItemUpsert) SetResult(v string) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateResult() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *ActionQueueItemUpsert) ClearResult() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldResult)
	return u
}

// SetPriority sets the "priority" field.
func (u *ActionQueueItemUpsert) SetPriority(v int) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdatePriority() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *ActionQueueItemUpsert) AddPriority(v int) *ActionQueueItemUpsert {
	u.Add(actionqueueitem.FieldPriority, v)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *ActionQueueItemUpsert) SetAttempts(v int) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateAttempts() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *ActionQueueItemUpsert) AddAttempts(v int) *ActionQueueItemUpsert {
	u.Add(actionqueueitem.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ActionQueueItemUpsert) SetMaxAttempts(v int) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateMaxAttempts() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ActionQueueItemUpsert) AddMaxAttempts(v int) *ActionQueueItemUpsert {
	u.Add(actionqueueitem.FieldMaxAttempts, v)
	return u
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (u *ActionQueueItemUpsert) SetRetryAfterTs(v time.Time) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldRetryAfterTs, v)
	return u
}

// UpdateRetryAfterTs sets the "retry_after_ts" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateRetryAfterTs() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldRetryAfterTs)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ActionQueueItemUpsert) SetLastError(v string) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateLastError() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ActionQueueItemUpsert) ClearLastError() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldLastError)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ActionQueueItemUpsert) SetPodID(v string) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdatePodID() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ActionQueueItemUpsert) ClearPodID() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldPodID)
	return u
}

// SetLeasedAt sets the "leased_at" field.
func (u *ActionQueueItemUpsert) SetLeasedAt(v time.Time) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldLeasedAt, v)
	return u
}

// UpdateLeasedAt sets the "leased_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateLeasedAt() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldLeasedAt)
	return u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (u *ActionQueueItemUpsert) ClearLeasedAt() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldLeasedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ActionQueueItemUpsert) SetProcessedAt(v time.Time) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateProcessedAt() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ActionQueueItemUpsert) ClearProcessedAt() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldProcessedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionQueueItemUpsert) SetCompletedAt(v time.Time) *ActionQueueItemUpsert {
	u.Set(actionqueueitem.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsert) UpdateCompletedAt() *ActionQueueItemUpsert {
	u.SetExcluded(actionqueueitem.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionQueueItemUpsert) ClearCompletedAt() *ActionQueueItemUpsert {
	u.SetNull(actionqueueitem.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionqueueitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionQueueItemUpsertOne) UpdateNewValues() *ActionQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actionqueueitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(actionqueueitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActionQueueItemUpsertOne) Ignore() *ActionQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionQueueItemUpsertOne) DoNothing() *ActionQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionQueueItemCreate.OnConflict
// documentation for more info.
func (u *ActionQueueItemUpsertOne) Update(set func(*ActionQueueItemUpsert)) *ActionQueueItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionQueueItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *ActionQueueItemUpsertOne) SetEventType(v actionqueueitem.EventType) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateEventType() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateEventType()
	})
}

// SetEventData sets the "event_data" field.
func (u *ActionQueueItemUpsertOne) SetEventData(v map[string]interface{}) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetEventData(v)
	})
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateEventData() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateEventData()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *ActionQueueItemUpsertOne) SetIdempotencyKey(v string) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateIdempotencyKey() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetStatus sets the "status" field.
func (u *ActionQueueItemUpsertOne) SetStatus(v actionqueueitem.Status) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateStatus() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *ActionQueueItemUpsertOne) SetResult(v string) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateResult() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *ActionQueueItemUpsertOne) ClearResult() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearResult()
	})
}

// SetPriority sets the "priority" field.
func (u *ActionQueueItemUpsertOne) SetPriority(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ActionQueueItemUpsertOne) AddPriority(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdatePriority() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ActionQueueItemUpsertOne) SetAttempts(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ActionQueueItemUpsertOne) AddAttempts(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateAttempts() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ActionQueueItemUpsertOne) SetMaxAttempts(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ActionQueueItemUpsertOne) AddMaxAttempts(v int) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateMaxAttempts() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (u *ActionQueueItemUpsertOne) SetRetryAfterTs(v time.Time) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetRetryAfterTs(v)
	})
}

// UpdateRetryAfterTs sets the "retry_after_ts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateRetryAfterTs() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateRetryAfterTs()
	})
}

// SetLastError sets the "last_error" field.
func (u *ActionQueueItemUpsertOne) SetLastError(v string) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateLastError() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ActionQueueItemUpsertOne) ClearLastError() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ActionQueueItemUpsertOne) SetPodID(v string) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdatePodID() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ActionQueueItemUpsertOne) ClearPodID() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearPodID()
	})
}

// SetLeasedAt sets the "leased_at" field.
func (u *ActionQueueItemUpsertOne) SetLeasedAt(v time.Time) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetLeasedAt(v)
	})
}

// UpdateLeasedAt sets the "leased_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateLeasedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateLeasedAt()
	})
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (u *ActionQueueItemUpsertOne) ClearLeasedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearLeasedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ActionQueueItemUpsertOne) SetProcessedAt(v time.Time) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateProcessedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ActionQueueItemUpsertOne) ClearProcessedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearProcessedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionQueueItemUpsertOne) SetCompletedAt(v time.Time) *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertOne) UpdateCompletedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionQueueItemUpsertOne) ClearCompletedAt() *ActionQueueItemUpsertOne {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ActionQueueItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionQueueItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionQueueItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActionQueueItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActionQueueItemUpsertOne.ID is not supported by MySQL driver. Use ActionQueueItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActionQueueItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActionQueueItemCreateBulk is the builder for creating many ActionQueueItem entities in bulk.
type ActionQueueItemCreateBulk struct {
	config
	err      error
	builders []*ActionQueueItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ActionQueueItem entities in the database.
func (_c *ActionQueueItemCreateBulk) Save(ctx context.Context) ([]*ActionQueueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionQueueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionQueueItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionQueueItemCreateBulk) SaveX(ctx context.Context) []*ActionQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionQueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionQueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionQueueItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionQueueItemUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionQueueItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActionQueueItemUpsertBulk {
	_c.conflict = opts
	return &ActionQueueItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionQueueItemCreateBulk) OnConflictColumns(columns ...string) *ActionQueueItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionQueueItemUpsertBulk{
		create: _c,
	}
}

// ActionQueueItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ActionQueueItem nodes.
type ActionQueueItemUpsertBulk struct {
	create *ActionQueueItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionqueueitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionQueueItemUpsertBulk) UpdateNewValues() *ActionQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actionqueueitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(actionqueueitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionQueueItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActionQueueItemUpsertBulk) Ignore() *ActionQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionQueueItemUpsertBulk) DoNothing() *ActionQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionQueueItemCreateBulk.OnConflict
// documentation for more info.
func (u *ActionQueueItemUpsertBulk) Update(set func(*ActionQueueItemUpsert)) *ActionQueueItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionQueueItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *ActionQueueItemUpsertBulk) SetEventType(v actionqueueitem.EventType) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateEventType() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateEventType()
	})
}

// SetEventData sets the "event_data" field.
func (u *ActionQueueItemUpsertBulk) SetEventData(v map[string]interface{}) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetEventData(v)
	})
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateEventData() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateEventData()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *ActionQueueItemUpsertBulk) SetIdempotencyKey(v string) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateIdempotencyKey() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetStatus sets the "status" field.
func (u *ActionQueueItemUpsertBulk) SetStatus(v actionqueueitem.Status) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateStatus() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *ActionQueueItemUpsertBulk) SetResult(v string) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateResult() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *ActionQueueItemUpsertBulk) ClearResult() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearResult()
	})
}

// SetPriority sets the "priority" field.
func (u *ActionQueueItemUpsertBulk) SetPriority(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ActionQueueItemUpsertBulk) AddPriority(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdatePriority() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ActionQueueItemUpsertBulk) SetAttempts(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ActionQueueItemUpsertBulk) AddAttempts(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateAttempts() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *ActionQueueItemUpsertBulk) SetMaxAttempts(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *ActionQueueItemUpsertBulk) AddMaxAttempts(v int) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateMaxAttempts() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (u *ActionQueueItemUpsertBulk) SetRetryAfterTs(v time.Time) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetRetryAfterTs(v)
	})
}

// UpdateRetryAfterTs sets the "retry_after_ts" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateRetryAfterTs() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateRetryAfterTs()
	})
}

// SetLastError sets the "last_error" field.
func (u *ActionQueueItemUpsertBulk) SetLastError(v string) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateLastError() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ActionQueueItemUpsertBulk) ClearLastError() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearLastError()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ActionQueueItemUpsertBulk) SetPodID(v string) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdatePodID() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ActionQueueItemUpsertBulk) ClearPodID() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearPodID()
	})
}

// SetLeasedAt sets the "leased_at" field.
func (u *ActionQueueItemUpsertBulk) SetLeasedAt(v time.Time) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetLeasedAt(v)
	})
}

// UpdateLeasedAt sets the "leased_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateLeasedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateLeasedAt()
	})
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (u *ActionQueueItemUpsertBulk) ClearLeasedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearLeasedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ActionQueueItemUpsertBulk) SetProcessedAt(v time.Time) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateProcessedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ActionQueueItemUpsertBulk) ClearProcessedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearProcessedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionQueueItemUpsertBulk) SetCompletedAt(v time.Time) *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionQueueItemUpsertBulk) UpdateCompletedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionQueueItemUpsertBulk) ClearCompletedAt() *ActionQueueItemUpsertBulk {
	return u.Update(func(s *ActionQueueItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ActionQueueItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActionQueueItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionQueueItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionQueueItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
