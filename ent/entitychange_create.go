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
	"github.com/reflexhq/reflex/ent/entitychange"
)

// EntityChangeCreate is the builder for creating a EntityChange entity.
type EntityChangeCreate struct {
	config
	mutation *EntityChangeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTableName sets the "table_name" field.
func (_c *EntityChangeCreate) SetTableName(v string) *EntityChangeCreate {
	_c.mutation.SetTableName(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *EntityChangeCreate) SetOperation(v entitychange.Operation) *EntityChangeCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityChangeCreate) SetEntityID(v string) *EntityChangeCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityChangeCreate) SetEntityType(v string) *EntityChangeCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetOldData sets the "old_data" field.
func (_c *EntityChangeCreate) SetOldData(v map[string]interface{}) *EntityChangeCreate {
	_c.mutation.SetOldData(v)
	return _c
}

// SetNewData sets the "new_data" field.
func (_c *EntityChangeCreate) SetNewData(v map[string]interface{}) *EntityChangeCreate {
	_c.mutation.SetNewData(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EntityChangeCreate) SetMetadata(v map[string]interface{}) *EntityChangeCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetChangedAt sets the "changed_at" field.
func (_c *EntityChangeCreate) SetChangedAt(v time.Time) *EntityChangeCreate {
	_c.mutation.SetChangedAt(v)
	return _c
}

// SetNillableChangedAt sets the "changed_at" field if the given value is not nil.
func (_c *EntityChangeCreate) SetNillableChangedAt(v *time.Time) *EntityChangeCreate {
	if v != nil {
		_c.SetChangedAt(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *EntityChangeCreate) SetProcessed(v bool) *EntityChangeCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *EntityChangeCreate) SetNillableProcessed(v *bool) *EntityChangeCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *EntityChangeCreate) SetProcessedAt(v time.Time) *EntityChangeCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *EntityChangeCreate) SetNillableProcessedAt(v *time.Time) *EntityChangeCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *EntityChangeCreate) SetErrorCount(v int) *EntityChangeCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *EntityChangeCreate) SetNillableErrorCount(v *int) *EntityChangeCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *EntityChangeCreate) SetLastError(v string) *EntityChangeCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *EntityChangeCreate) SetNillableLastError(v *string) *EntityChangeCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityChangeCreate) SetID(v string) *EntityChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityChangeMutation object of the builder.
func (_c *EntityChangeCreate) Mutation() *EntityChangeMutation {
	return _c.mutation
}

// Save creates the EntityChange in the database.
func (_c *EntityChangeCreate) Save(ctx context.Context) (*EntityChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityChangeCreate) SaveX(ctx context.Context) *EntityChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityChangeCreate) defaults() {
	if _, ok := _c.mutation.ChangedAt(); !ok {
		v := entitychange.DefaultChangedAt()
		_c.mutation.SetChangedAt(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := entitychange.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := entitychange.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityChangeCreate) check() error {
	if _, ok := _c.mutation.TableName(); !ok {
		return &ValidationError{Name: "table_name", err: errors.New(`ent: missing required field "EntityChange.table_name"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "EntityChange.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := entitychange.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "EntityChange.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityChange.entity_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityChange.entity_type"`)}
	}
	if _, ok := _c.mutation.ChangedAt(); !ok {
		return &ValidationError{Name: "changed_at", err: errors.New(`ent: missing required field "EntityChange.changed_at"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "EntityChange.processed"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "EntityChange.error_count"`)}
	}
	return nil
}

func (_c *EntityChangeCreate) sqlSave(ctx context.Context) (*EntityChange, error) {
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
			return nil, fmt.Errorf("unexpected EntityChange.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityChangeCreate) createSpec() (*EntityChange, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitychange.Table, sqlgraph.NewFieldSpec(entitychange.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TableName(); ok {
		_spec.SetField(entitychange.FieldTableName, field.TypeString, value)
		_node.TableName = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(entitychange.FieldOperation, field.TypeEnum, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitychange.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitychange.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.OldData(); ok {
		_spec.SetField(entitychange.FieldOldData, field.TypeJSON, value)
		_node.OldData = value
	}
	if value, ok := _c.mutation.NewData(); ok {
		_spec.SetField(entitychange.FieldNewData, field.TypeJSON, value)
		_node.NewData = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(entitychange.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.ChangedAt(); ok {
		_spec.SetField(entitychange.FieldChangedAt, field.TypeTime, value)
		_node.ChangedAt = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(entitychange.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(entitychange.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(entitychange.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(entitychange.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityChange.Create().
//		SetTableName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityChangeUpsert) {
//			SetTableName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityChangeCreate) OnConflict(opts ...sql.ConflictOption) *EntityChangeUpsertOne {
	_c.conflict = opts
	return &EntityChangeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityChangeCreate) OnConflictColumns(columns ...string) *EntityChangeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityChangeUpsertOne{
		create: _c,
	}
}

type (
	// EntityChangeUpsertOne is the builder for "upsert"-ing
	//  one EntityChange node.
	EntityChangeUpsertOne struct {
		create *EntityChangeCreate
	}

	// EntityChangeUpsert is the "OnConflict" setter.
	EntityChangeUpsert struct {
		*sql.UpdateSet
	}
)

// SetOldData sets the "old_data" field.
func (u *EntityChangeUpsert) SetOldData(v map[string]interface{}) *EntityChangeUpsert {
	u.Set(entitychange.FieldOldData, v)
	return u
}

// UpdateOldData sets the "old_data" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateOldData() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldOldData)
	return u
}

// ClearOldData clears the value of the "old_data" field.
func (u *EntityChangeUpsert) ClearOldData() *EntityChangeUpsert {
	u.SetNull(entitychange.FieldOldData)
	return u
}

// SetNewData sets the "new_data" field.
func (u *EntityChangeUpsert) SetNewData(v map[string]interface{}) *EntityChangeUpsert {
	u.Set(entitychange.FieldNewData, v)
	return u
}

// UpdateNewData sets the "new_data" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateNewData() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldNewData)
	return u
}

// ClearNewData clears the value of the "new_data" field.
func (u *EntityChangeUpsert) ClearNewData() *EntityChangeUpsert {
	u.SetNull(entitychange.FieldNewData)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *EntityChangeUpsert) SetMetadata(v map[string]interface{}) *EntityChangeUpsert {
	u.Set(entitychange.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateMetadata() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityChangeUpsert) ClearMetadata() *EntityChangeUpsert {
	u.SetNull(entitychange.FieldMetadata)
	return u
}

// SetProcessed sets the "processed" field.
func (u *EntityChangeUpsert) SetProcessed(v bool) *EntityChangeUpsert {
	u.Set(entitychange.FieldProcessed, v)
	return u
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateProcessed() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldProcessed)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *EntityChangeUpsert) SetProcessedAt(v time.Time) *EntityChangeUpsert {
	u.Set(entitychange.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateProcessedAt() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EntityChangeUpsert) ClearProcessedAt() *EntityChangeUpsert {
	u.SetNull(entitychange.FieldProcessedAt)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *EntityChangeUpsert) SetErrorCount(v int) *EntityChangeUpsert {
	u.Set(entitychange.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateErrorCount() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *EntityChangeUpsert) AddErrorCount(v int) *EntityChangeUpsert {
	u.Add(entitychange.FieldErrorCount, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *EntityChangeUpsert) SetLastError(v string) *EntityChangeUpsert {
	u.Set(entitychange.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EntityChangeUpsert) UpdateLastError() *EntityChangeUpsert {
	u.SetExcluded(entitychange.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *EntityChangeUpsert) ClearLastError() *EntityChangeUpsert {
	u.SetNull(entitychange.FieldLastError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitychange.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityChangeUpsertOne) UpdateNewValues() *EntityChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entitychange.FieldID)
		}
		if _, exists := u.create.mutation.TableName(); exists {
			s.SetIgnore(entitychange.FieldTableName)
		}
		if _, exists := u.create.mutation.Operation(); exists {
			s.SetIgnore(entitychange.FieldOperation)
		}
		if _, exists := u.create.mutation.EntityID(); exists {
			s.SetIgnore(entitychange.FieldEntityID)
		}
		if _, exists := u.create.mutation.EntityType(); exists {
			s.SetIgnore(entitychange.FieldEntityType)
		}
		if _, exists := u.create.mutation.ChangedAt(); exists {
			s.SetIgnore(entitychange.FieldChangedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityChangeUpsertOne) Ignore() *EntityChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityChangeUpsertOne) DoNothing() *EntityChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityChangeCreate.OnConflict
// documentation for more info.
func (u *EntityChangeUpsertOne) Update(set func(*EntityChangeUpsert)) *EntityChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityChangeUpsert{UpdateSet: update})
	}))
	return u
}

// SetOldData sets the "old_data" field.
func (u *EntityChangeUpsertOne) SetOldData(v map[string]interface{}) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetOldData(v)
	})
}

// UpdateOldData sets the "old_data" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateOldData() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateOldData()
	})
}

// ClearOldData clears the value of the "old_data" field.
func (u *EntityChangeUpsertOne) ClearOldData() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearOldData()
	})
}

// SetNewData sets the "new_data" field.
func (u *EntityChangeUpsertOne) SetNewData(v map[string]interface{}) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetNewData(v)
	})
}

// UpdateNewData sets the "new_data" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateNewData() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateNewData()
	})
}

// ClearNewData clears the value of the "new_data" field.
func (u *EntityChangeUpsertOne) ClearNewData() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearNewData()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityChangeUpsertOne) SetMetadata(v map[string]interface{}) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateMetadata() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityChangeUpsertOne) ClearMetadata() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearMetadata()
	})
}

// SetProcessed sets the "processed" field.
func (u *EntityChangeUpsertOne) SetProcessed(v bool) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateProcessed() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateProcessed()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *EntityChangeUpsertOne) SetProcessedAt(v time.Time) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateProcessedAt() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EntityChangeUpsertOne) ClearProcessedAt() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearProcessedAt()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *EntityChangeUpsertOne) SetErrorCount(v int) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *EntityChangeUpsertOne) AddErrorCount(v int) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateErrorCount() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateErrorCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *EntityChangeUpsertOne) SetLastError(v string) *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EntityChangeUpsertOne) UpdateLastError() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EntityChangeUpsertOne) ClearLastError() *EntityChangeUpsertOne {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *EntityChangeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityChangeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityChangeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityChangeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityChangeUpsertOne.ID is not supported by MySQL driver. Use EntityChangeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityChangeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityChangeCreateBulk is the builder for creating many EntityChange entities in bulk.
type EntityChangeCreateBulk struct {
	config
	err      error
	builders []*EntityChangeCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityChange entities in the database.
func (_c *EntityChangeCreateBulk) Save(ctx context.Context) ([]*EntityChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityChangeMutation)
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
func (_c *EntityChangeCreateBulk) SaveX(ctx context.Context) []*EntityChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityChange.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityChangeUpsert) {
//			SetTableName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityChangeCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityChangeUpsertBulk {
	_c.conflict = opts
	return &EntityChangeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityChangeCreateBulk) OnConflictColumns(columns ...string) *EntityChangeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityChangeUpsertBulk{
		create: _c,
	}
}

// EntityChangeUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityChange nodes.
type EntityChangeUpsertBulk struct {
	create *EntityChangeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitychange.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityChangeUpsertBulk) UpdateNewValues() *EntityChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entitychange.FieldID)
			}
			if _, exists := b.mutation.TableName(); exists {
				s.SetIgnore(entitychange.FieldTableName)
			}
			if _, exists := b.mutation.Operation(); exists {
				s.SetIgnore(entitychange.FieldOperation)
			}
			if _, exists := b.mutation.EntityID(); exists {
				s.SetIgnore(entitychange.FieldEntityID)
			}
			if _, exists := b.mutation.EntityType(); exists {
				s.SetIgnore(entitychange.FieldEntityType)
			}
			if _, exists := b.mutation.ChangedAt(); exists {
				s.SetIgnore(entitychange.FieldChangedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityChange.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityChangeUpsertBulk) Ignore() *EntityChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityChangeUpsertBulk) DoNothing() *EntityChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityChangeCreateBulk.OnConflict
// documentation for more info.
func (u *EntityChangeUpsertBulk) Update(set func(*EntityChangeUpsert)) *EntityChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityChangeUpsert{UpdateSet: update})
	}))
	return u
}

// SetOldData sets the "old_data" field.
func (u *EntityChangeUpsertBulk) SetOldData(v map[string]interface{}) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetOldData(v)
	})
}

// UpdateOldData sets the "old_data" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateOldData() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateOldData()
	})
}

// ClearOldData clears the value of the "old_data" field.
func (u *EntityChangeUpsertBulk) ClearOldData() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearOldData()
	})
}

// SetNewData sets the "new_data" field.
func (u *EntityChangeUpsertBulk) SetNewData(v map[string]interface{}) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetNewData(v)
	})
}

// UpdateNewData sets the "new_data" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateNewData() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateNewData()
	})
}

// ClearNewData clears the value of the "new_data" field.
func (u *EntityChangeUpsertBulk) ClearNewData() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearNewData()
	})
}

// SetMetadata sets the "metadata" field.
func (u *EntityChangeUpsertBulk) SetMetadata(v map[string]interface{}) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateMetadata() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *EntityChangeUpsertBulk) ClearMetadata() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearMetadata()
	})
}

// SetProcessed sets the "processed" field.
func (u *EntityChangeUpsertBulk) SetProcessed(v bool) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateProcessed() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateProcessed()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *EntityChangeUpsertBulk) SetProcessedAt(v time.Time) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateProcessedAt() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EntityChangeUpsertBulk) ClearProcessedAt() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearProcessedAt()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *EntityChangeUpsertBulk) SetErrorCount(v int) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *EntityChangeUpsertBulk) AddErrorCount(v int) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateErrorCount() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateErrorCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *EntityChangeUpsertBulk) SetLastError(v string) *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *EntityChangeUpsertBulk) UpdateLastError() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *EntityChangeUpsertBulk) ClearLastError() *EntityChangeUpsertBulk {
	return u.Update(func(s *EntityChangeUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *EntityChangeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityChangeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityChangeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityChangeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
