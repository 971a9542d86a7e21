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
	"github.com/reflexhq/reflex/ent/failedevent"
)

// FailedEventCreate is the builder for creating a FailedEvent entity.
type FailedEventCreate struct {
	config
	mutation *FailedEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInstanceID sets the "instance_id" field.
func (_c *FailedEventCreate) SetInstanceID(v string) *FailedEventCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableInstanceID(v *string) *FailedEventCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *FailedEventCreate) SetEventType(v string) *FailedEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableEventType(v *string) *FailedEventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *FailedEventCreate) SetRawPayload(v map[string]interface{}) *FailedEventCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *FailedEventCreate) SetFailureReason(v string) *FailedEventCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *FailedEventCreate) SetErrorKind(v failedevent.ErrorKind) *FailedEventCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableErrorKind(v *failedevent.ErrorKind) *FailedEventCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *FailedEventCreate) SetRetryCount(v int) *FailedEventCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableRetryCount(v *int) *FailedEventCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *FailedEventCreate) SetMaxRetries(v int) *FailedEventCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableMaxRetries(v *int) *FailedEventCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *FailedEventCreate) SetNextRetryAt(v time.Time) *FailedEventCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableNextRetryAt(v *time.Time) *FailedEventCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *FailedEventCreate) SetResolved(v bool) *FailedEventCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableResolved(v *bool) *FailedEventCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *FailedEventCreate) SetResolvedAt(v time.Time) *FailedEventCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableResolvedAt(v *time.Time) *FailedEventCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FailedEventCreate) SetCreatedAt(v time.Time) *FailedEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableCreatedAt(v *time.Time) *FailedEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FailedEventCreate) SetUpdatedAt(v time.Time) *FailedEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FailedEventCreate) SetNillableUpdatedAt(v *time.Time) *FailedEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FailedEventCreate) SetID(v string) *FailedEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FailedEventMutation object of the builder.
func (_c *FailedEventCreate) Mutation() *FailedEventMutation {
	return _c.mutation
}

// Save creates the FailedEvent in the database.
func (_c *FailedEventCreate) Save(ctx context.Context) (*FailedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FailedEventCreate) SaveX(ctx context.Context) *FailedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FailedEventCreate) defaults() {
	if _, ok := _c.mutation.ErrorKind(); !ok {
		v := failedevent.DefaultErrorKind
		_c.mutation.SetErrorKind(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := failedevent.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := failedevent.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		v := failedevent.DefaultNextRetryAt()
		_c.mutation.SetNextRetryAt(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := failedevent.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := failedevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := failedevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FailedEventCreate) check() error {
	if _, ok := _c.mutation.FailureReason(); !ok {
		return &ValidationError{Name: "failure_reason", err: errors.New(`ent: missing required field "FailedEvent.failure_reason"`)}
	}
	if _, ok := _c.mutation.ErrorKind(); !ok {
		return &ValidationError{Name: "error_kind", err: errors.New(`ent: missing required field "FailedEvent.error_kind"`)}
	}
	if v, ok := _c.mutation.ErrorKind(); ok {
		if err := failedevent.ErrorKindValidator(v); err != nil {
			return &ValidationError{Name: "error_kind", err: fmt.Errorf(`ent: validator failed for field "FailedEvent.error_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "FailedEvent.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "FailedEvent.max_retries"`)}
	}
	if _, ok := _c.mutation.NextRetryAt(); !ok {
		return &ValidationError{Name: "next_retry_at", err: errors.New(`ent: missing required field "FailedEvent.next_retry_at"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "FailedEvent.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FailedEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FailedEvent.updated_at"`)}
	}
	return nil
}

func (_c *FailedEventCreate) sqlSave(ctx context.Context) (*FailedEvent, error) {
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
			return nil, fmt.Errorf("unexpected FailedEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FailedEventCreate) createSpec() (*FailedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FailedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(failedevent.Table, sqlgraph.NewFieldSpec(failedevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(failedevent.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(failedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(failedevent.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(failedevent.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(failedevent.FieldErrorKind, field.TypeEnum, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(failedevent.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(failedevent.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(failedevent.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(failedevent.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(failedevent.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(failedevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(failedevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FailedEvent.Create().
//		SetInstanceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailedEventUpsert) {
//			SetInstanceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FailedEventCreate) OnConflict(opts ...sql.ConflictOption) *FailedEventUpsertOne {
	_c.conflict = opts
	return &FailedEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailedEventCreate) OnConflictColumns(columns ...string) *FailedEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailedEventUpsertOne{
		create: _c,
	}
}

type (
	// FailedEventUpsertOne is the builder for "upsert"-ing
	//  one FailedEvent node.
	FailedEventUpsertOne struct {
		create *FailedEventCreate
	}

	// FailedEventUpsert is the "OnConflict" setter.
	FailedEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetInstanceID sets the "instance_id" field.
func (u *FailedEventUpsert) SetInstanceID(v string) *FailedEventUpsert {
	u.Set(failedevent.FieldInstanceID, v)
	return u
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateInstanceID() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldInstanceID)
	return u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *FailedEventUpsert) ClearInstanceID() *FailedEventUpsert {
	u.SetNull(failedevent.FieldInstanceID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *FailedEventUpsert) SetEventType(v string) *FailedEventUpsert {
	u.Set(failedevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateEventType() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldEventType)
	return u
}

// ClearEventType clears the value of the "event_type" field.
func (u *FailedEventUpsert) ClearEventType() *FailedEventUpsert {
	u.SetNull(failedevent.FieldEventType)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *FailedEventUpsert) SetRawPayload(v map[string]interface{}) *FailedEventUpsert {
	u.Set(failedevent.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateRawPayload() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *FailedEventUpsert) ClearRawPayload() *FailedEventUpsert {
	u.SetNull(failedevent.FieldRawPayload)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *FailedEventUpsert) SetFailureReason(v string) *FailedEventUpsert {
	u.Set(failedevent.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateFailureReason() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldFailureReason)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *FailedEventUpsert) SetErrorKind(v failedevent.ErrorKind) *FailedEventUpsert {
	u.Set(failedevent.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateErrorKind() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldErrorKind)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *FailedEventUpsert) SetRetryCount(v int) *FailedEventUpsert {
	u.Set(failedevent.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateRetryCount() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FailedEventUpsert) AddRetryCount(v int) *FailedEventUpsert {
	u.Add(failedevent.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *FailedEventUpsert) SetMaxRetries(v int) *FailedEventUpsert {
	u.Set(failedevent.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateMaxRetries() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *FailedEventUpsert) AddMaxRetries(v int) *FailedEventUpsert {
	u.Add(failedevent.FieldMaxRetries, v)
	return u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *FailedEventUpsert) SetNextRetryAt(v time.Time) *FailedEventUpsert {
	u.Set(failedevent.FieldNextRetryAt, v)
	return u
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateNextRetryAt() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldNextRetryAt)
	return u
}

// SetResolved sets the "resolved" field.
func (u *FailedEventUpsert) SetResolved(v bool) *FailedEventUpsert {
	u.Set(failedevent.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateResolved() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldResolved)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *FailedEventUpsert) SetResolvedAt(v time.Time) *FailedEventUpsert {
	u.Set(failedevent.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateResolvedAt() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *FailedEventUpsert) ClearResolvedAt() *FailedEventUpsert {
	u.SetNull(failedevent.FieldResolvedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FailedEventUpsert) SetUpdatedAt(v time.Time) *FailedEventUpsert {
	u.Set(failedevent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FailedEventUpsert) UpdateUpdatedAt() *FailedEventUpsert {
	u.SetExcluded(failedevent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(failedevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FailedEventUpsertOne) UpdateNewValues() *FailedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(failedevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(failedevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FailedEventUpsertOne) Ignore() *FailedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailedEventUpsertOne) DoNothing() *FailedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailedEventCreate.OnConflict
// documentation for more info.
func (u *FailedEventUpsertOne) Update(set func(*FailedEventUpsert)) *FailedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailedEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstanceID sets the "instance_id" field.
func (u *FailedEventUpsertOne) SetInstanceID(v string) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateInstanceID() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *FailedEventUpsertOne) ClearInstanceID() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearInstanceID()
	})
}

// SetEventType sets the "event_type" field.
func (u *FailedEventUpsertOne) SetEventType(v string) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateEventType() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *FailedEventUpsertOne) ClearEventType() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearEventType()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *FailedEventUpsertOne) SetRawPayload(v map[string]interface{}) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateRawPayload() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *FailedEventUpsertOne) ClearRawPayload() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearRawPayload()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *FailedEventUpsertOne) SetFailureReason(v string) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateFailureReason() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateFailureReason()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FailedEventUpsertOne) SetErrorKind(v failedevent.ErrorKind) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateErrorKind() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateErrorKind()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *FailedEventUpsertOne) SetRetryCount(v int) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FailedEventUpsertOne) AddRetryCount(v int) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateRetryCount() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *FailedEventUpsertOne) SetMaxRetries(v int) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *FailedEventUpsertOne) AddMaxRetries(v int) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateMaxRetries() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *FailedEventUpsertOne) SetNextRetryAt(v time.Time) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateNextRetryAt() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateNextRetryAt()
	})
}

// SetResolved sets the "resolved" field.
func (u *FailedEventUpsertOne) SetResolved(v bool) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateResolved() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *FailedEventUpsertOne) SetResolvedAt(v time.Time) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateResolvedAt() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *FailedEventUpsertOne) ClearResolvedAt() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearResolvedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FailedEventUpsertOne) SetUpdatedAt(v time.Time) *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FailedEventUpsertOne) UpdateUpdatedAt() *FailedEventUpsertOne {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FailedEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailedEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailedEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FailedEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FailedEventUpsertOne.ID is not supported by MySQL driver. Use FailedEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FailedEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FailedEventCreateBulk is the builder for creating many FailedEvent entities in bulk.
type FailedEventCreateBulk struct {
	config
	err      error
	builders []*FailedEventCreate
	conflict []sql.ConflictOption
}

// Save creates the FailedEvent entities in the database.
func (_c *FailedEventCreateBulk) Save(ctx context.Context) ([]*FailedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FailedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FailedEventMutation)
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
func (_c *FailedEventCreateBulk) SaveX(ctx context.Context) []*FailedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FailedEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailedEventUpsert) {
//			SetInstanceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FailedEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *FailedEventUpsertBulk {
	_c.conflict = opts
	return &FailedEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailedEventCreateBulk) OnConflictColumns(columns ...string) *FailedEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailedEventUpsertBulk{
		create: _c,
	}
}

// FailedEventUpsertBulk is the builder for "upsert"-ing
// a bulk of FailedEvent nodes.
type FailedEventUpsertBulk struct {
	create *FailedEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(failedevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FailedEventUpsertBulk) UpdateNewValues() *FailedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(failedevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(failedevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FailedEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FailedEventUpsertBulk) Ignore() *FailedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailedEventUpsertBulk) DoNothing() *FailedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailedEventCreateBulk.OnConflict
// documentation for more info.
func (u *FailedEventUpsertBulk) Update(set func(*FailedEventUpsert)) *FailedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailedEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstanceID sets the "instance_id" field.
func (u *FailedEventUpsertBulk) SetInstanceID(v string) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateInstanceID() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *FailedEventUpsertBulk) ClearInstanceID() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearInstanceID()
	})
}

// SetEventType sets the "event_type" field.
func (u *FailedEventUpsertBulk) SetEventType(v string) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateEventType() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *FailedEventUpsertBulk) ClearEventType() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearEventType()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *FailedEventUpsertBulk) SetRawPayload(v map[string]interface{}) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateRawPayload() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *FailedEventUpsertBulk) ClearRawPayload() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearRawPayload()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *FailedEventUpsertBulk) SetFailureReason(v string) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateFailureReason() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateFailureReason()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FailedEventUpsertBulk) SetErrorKind(v failedevent.ErrorKind) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateErrorKind() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateErrorKind()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *FailedEventUpsertBulk) SetRetryCount(v int) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *FailedEventUpsertBulk) AddRetryCount(v int) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateRetryCount() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *FailedEventUpsertBulk) SetMaxRetries(v int) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *FailedEventUpsertBulk) AddMaxRetries(v int) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateMaxRetries() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *FailedEventUpsertBulk) SetNextRetryAt(v time.Time) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateNextRetryAt() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateNextRetryAt()
	})
}

// SetResolved sets the "resolved" field.
func (u *FailedEventUpsertBulk) SetResolved(v bool) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateResolved() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *FailedEventUpsertBulk) SetResolvedAt(v time.Time) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateResolvedAt() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *FailedEventUpsertBulk) ClearResolvedAt() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.ClearResolvedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FailedEventUpsertBulk) SetUpdatedAt(v time.Time) *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FailedEventUpsertBulk) UpdateUpdatedAt() *FailedEventUpsertBulk {
	return u.Update(func(s *FailedEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FailedEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FailedEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailedEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailedEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
