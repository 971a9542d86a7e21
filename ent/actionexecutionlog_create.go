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
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
)

// ActionExecutionLogCreate is the builder for creating a ActionExecutionLog entity.
type ActionExecutionLogCreate struct {
	config
	mutation *ActionExecutionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRuleID sets the "rule_id" field.
func (_c *ActionExecutionLogCreate) SetRuleID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetQueueItemID sets the "queue_item_id" field.
func (_c *ActionExecutionLogCreate) SetQueueItemID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetQueueItemID(v)
	return _c
}

// SetNillableQueueItemID sets the "queue_item_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableQueueItemID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetQueueItemID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActionExecutionLogCreate) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *ActionExecutionLogCreate) SetExecutionTimeMs(v int) *ActionExecutionLogCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableExecutionTimeMs(v *int) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ActionExecutionLogCreate) SetErrorMessage(v string) *ActionExecutionLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableErrorMessage(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (_c *ActionExecutionLogCreate) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogCreate {
	_c.mutation.SetCreatedEntityRefs(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *ActionExecutionLogCreate) SetChatID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableChatID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *ActionExecutionLogCreate) SetInstanceID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableInstanceID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionExecutionLogCreate) SetCreatedAt(v time.Time) *ActionExecutionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableCreatedAt(v *time.Time) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionExecutionLogCreate) SetID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_c *ActionExecutionLogCreate) Mutation() *ActionExecutionLogMutation {
	return _c.mutation
}

// Save creates the ActionExecutionLog in the database.
func (_c *ActionExecutionLogCreate) Save(ctx context.Context) (*ActionExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionExecutionLogCreate) SaveX(ctx context.Context) *ActionExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		v := actionexecutionlog.DefaultExecutionTimeMs
		_c.mutation.SetExecutionTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionexecutionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionExecutionLogCreate) check() error {
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "ActionExecutionLog.rule_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActionExecutionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := actionexecutionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionExecutionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`ent: missing required field "ActionExecutionLog.execution_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActionExecutionLog.created_at"`)}
	}
	return nil
}

func (_c *ActionExecutionLogCreate) sqlSave(ctx context.Context) (*ActionExecutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ActionExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionExecutionLogCreate) createSpec() (*ActionExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionexecutionlog.Table, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(actionexecutionlog.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.QueueItemID(); ok {
		_spec.SetField(actionexecutionlog.FieldQueueItemID, field.TypeString, value)
		_node.QueueItemID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(actionexecutionlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(actionexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(actionexecutionlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedEntityRefs(); ok {
		_spec.SetField(actionexecutionlog.FieldCreatedEntityRefs, field.TypeJSON, value)
		_node.CreatedEntityRefs = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(actionexecutionlog.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(actionexecutionlog.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionexecutionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionExecutionLog.Create().
//		SetRuleID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionExecutionLogUpsert) {
//			SetRuleID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionExecutionLogCreate) OnConflict(opts ...sql.ConflictOption) *ActionExecutionLogUpsertOne {
	_c.conflict = opts
	return &ActionExecutionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionExecutionLogCreate) OnConflictColumns(columns ...string) *ActionExecutionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionExecutionLogUpsertOne{
		create: _c,
	}
}

type (
	// ActionExecutionLogUpsertOne is the builder for "upsert"-ing
	//  one ActionExecutionLog node.
	ActionExecutionLogUpsertOne struct {
		create *ActionExecutionLogCreate
	}

	// ActionExecutionLogUpsert is the "OnConflict" setter.
	ActionExecutionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *ActionExecutionLogUpsert) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateStatus() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldStatus)
	return u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *ActionExecutionLogUpsert) SetExecutionTimeMs(v int) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldExecutionTimeMs, v)
	return u
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateExecutionTimeMs() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldExecutionTimeMs)
	return u
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *ActionExecutionLogUpsert) AddExecutionTimeMs(v int) *ActionExecutionLogUpsert {
	u.Add(actionexecutionlog.FieldExecutionTimeMs, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ActionExecutionLogUpsert) SetErrorMessage(v string) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateErrorMessage() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ActionExecutionLogUpsert) ClearErrorMessage() *ActionExecutionLogUpsert {
	u.SetNull(actionexecutionlog.FieldErrorMessage)
	return u
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (u *ActionExecutionLogUpsert) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldCreatedEntityRefs, v)
	return u
}

// UpdateCreatedEntityRefs sets the "created_entity_refs" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateCreatedEntityRefs() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldCreatedEntityRefs)
	return u
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (u *ActionExecutionLogUpsert) ClearCreatedEntityRefs() *ActionExecutionLogUpsert {
	u.SetNull(actionexecutionlog.FieldCreatedEntityRefs)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ActionExecutionLogUpsert) SetChatID(v string) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateChatID() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldChatID)
	return u
}

// ClearChatID clears the value of the "chat_id" field.
func (u *ActionExecutionLogUpsert) ClearChatID() *ActionExecutionLogUpsert {
	u.SetNull(actionexecutionlog.FieldChatID)
	return u
}

// SetInstanceID sets the "instance_id" field.
func (u *ActionExecutionLogUpsert) SetInstanceID(v string) *ActionExecutionLogUpsert {
	u.Set(actionexecutionlog.FieldInstanceID, v)
	return u
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsert) UpdateInstanceID() *ActionExecutionLogUpsert {
	u.SetExcluded(actionexecutionlog.FieldInstanceID)
	return u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ActionExecutionLogUpsert) ClearInstanceID() *ActionExecutionLogUpsert {
	u.SetNull(actionexecutionlog.FieldInstanceID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertOne) UpdateNewValues() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actionexecutionlog.FieldID)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(actionexecutionlog.FieldRuleID)
		}
		if _, exists := u.create.mutation.QueueItemID(); exists {
			s.SetIgnore(actionexecutionlog.FieldQueueItemID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(actionexecutionlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActionExecutionLogUpsertOne) Ignore() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionExecutionLogUpsertOne) DoNothing() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionExecutionLogCreate.OnConflict
// documentation for more info.
func (u *ActionExecutionLogUpsertOne) Update(set func(*ActionExecutionLogUpsert)) *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ActionExecutionLogUpsertOne) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateStatus() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *ActionExecutionLogUpsertOne) SetExecutionTimeMs(v int) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *ActionExecutionLogUpsertOne) AddExecutionTimeMs(v int) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateExecutionTimeMs() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ActionExecutionLogUpsertOne) SetErrorMessage(v string) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateErrorMessage() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ActionExecutionLogUpsertOne) ClearErrorMessage() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (u *ActionExecutionLogUpsertOne) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetCreatedEntityRefs(v)
	})
}

// UpdateCreatedEntityRefs sets the "created_entity_refs" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateCreatedEntityRefs() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateCreatedEntityRefs()
	})
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (u *ActionExecutionLogUpsertOne) ClearCreatedEntityRefs() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearCreatedEntityRefs()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ActionExecutionLogUpsertOne) SetChatID(v string) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateChatID() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateChatID()
	})
}

// ClearChatID clears the value of the "chat_id" field.
func (u *ActionExecutionLogUpsertOne) ClearChatID() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearChatID()
	})
}

// SetInstanceID sets the "instance_id" field.
func (u *ActionExecutionLogUpsertOne) SetInstanceID(v string) *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertOne) UpdateInstanceID() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ActionExecutionLogUpsertOne) ClearInstanceID() *ActionExecutionLogUpsertOne {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearInstanceID()
	})
}

// Exec executes the query.
func (u *ActionExecutionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionExecutionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionExecutionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActionExecutionLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActionExecutionLogUpsertOne.ID is not supported by MySQL driver. Use ActionExecutionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActionExecutionLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActionExecutionLogCreateBulk is the builder for creating many ActionExecutionLog entities in bulk.
type ActionExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ActionExecutionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ActionExecutionLog entities in the database.
func (_c *ActionExecutionLogCreateBulk) Save(ctx context.Context) ([]*ActionExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionExecutionLogMutation)
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
func (_c *ActionExecutionLogCreateBulk) SaveX(ctx context.Context) []*ActionExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionExecutionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionExecutionLogUpsert) {
//			SetRuleID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionExecutionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActionExecutionLogUpsertBulk {
	_c.conflict = opts
	return &ActionExecutionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionExecutionLogCreateBulk) OnConflictColumns(columns ...string) *ActionExecutionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionExecutionLogUpsertBulk{
		create: _c,
	}
}

// ActionExecutionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ActionExecutionLog nodes.
type ActionExecutionLogUpsertBulk struct {
	create *ActionExecutionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertBulk) UpdateNewValues() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actionexecutionlog.FieldID)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(actionexecutionlog.FieldRuleID)
			}
			if _, exists := b.mutation.QueueItemID(); exists {
				s.SetIgnore(actionexecutionlog.FieldQueueItemID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(actionexecutionlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertBulk) Ignore() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionExecutionLogUpsertBulk) DoNothing() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionExecutionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ActionExecutionLogUpsertBulk) Update(set func(*ActionExecutionLogUpsert)) *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ActionExecutionLogUpsertBulk) SetStatus(v actionexecutionlog.Status) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateStatus() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *ActionExecutionLogUpsertBulk) SetExecutionTimeMs(v int) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *ActionExecutionLogUpsertBulk) AddExecutionTimeMs(v int) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateExecutionTimeMs() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ActionExecutionLogUpsertBulk) SetErrorMessage(v string) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateErrorMessage() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ActionExecutionLogUpsertBulk) ClearErrorMessage() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (u *ActionExecutionLogUpsertBulk) SetCreatedEntityRefs(v []map[string]string) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetCreatedEntityRefs(v)
	})
}

// UpdateCreatedEntityRefs sets the "created_entity_refs" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateCreatedEntityRefs() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateCreatedEntityRefs()
	})
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (u *ActionExecutionLogUpsertBulk) ClearCreatedEntityRefs() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearCreatedEntityRefs()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ActionExecutionLogUpsertBulk) SetChatID(v string) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateChatID() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateChatID()
	})
}

// ClearChatID clears the value of the "chat_id" field.
func (u *ActionExecutionLogUpsertBulk) ClearChatID() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearChatID()
	})
}

// SetInstanceID sets the "instance_id" field.
func (u *ActionExecutionLogUpsertBulk) SetInstanceID(v string) *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ActionExecutionLogUpsertBulk) UpdateInstanceID() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ActionExecutionLogUpsertBulk) ClearInstanceID() *ActionExecutionLogUpsertBulk {
	return u.Update(func(s *ActionExecutionLogUpsert) {
		s.ClearInstanceID()
	})
}

// Exec executes the query.
func (u *ActionExecutionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActionExecutionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionExecutionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionExecutionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
