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
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/predicate"
)

// EntityChangeUpdate is the builder for updating EntityChange entities.
type EntityChangeUpdate struct {
	config
	hooks    []Hook
	mutation *EntityChangeMutation
}

// Where appends a list predicates to the EntityChangeUpdate builder.
func (_u *EntityChangeUpdate) Where(ps ...predicate.EntityChange) *EntityChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOldData sets the "old_data" field.
func (_u *EntityChangeUpdate) SetOldData(v map[string]interface{}) *EntityChangeUpdate {
	_u.mutation.SetOldData(v)
	return _u
}

// ClearOldData clears the value of the "old_data" field.
func (_u *EntityChangeUpdate) ClearOldData() *EntityChangeUpdate {
	_u.mutation.ClearOldData()
	return _u
}

// SetNewData sets the "new_data" field.
func (_u *EntityChangeUpdate) SetNewData(v map[string]interface{}) *EntityChangeUpdate {
	_u.mutation.SetNewData(v)
	return _u
}

// ClearNewData clears the value of the "new_data" field.
func (_u *EntityChangeUpdate) ClearNewData() *EntityChangeUpdate {
	_u.mutation.ClearNewData()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityChangeUpdate) SetMetadata(v map[string]interface{}) *EntityChangeUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityChangeUpdate) ClearMetadata() *EntityChangeUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *EntityChangeUpdate) SetProcessed(v bool) *EntityChangeUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *EntityChangeUpdate) SetNillableProcessed(v *bool) *EntityChangeUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EntityChangeUpdate) SetProcessedAt(v time.Time) *EntityChangeUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EntityChangeUpdate) SetNillableProcessedAt(v *time.Time) *EntityChangeUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EntityChangeUpdate) ClearProcessedAt() *EntityChangeUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *EntityChangeUpdate) SetErrorCount(v int) *EntityChangeUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *EntityChangeUpdate) SetNillableErrorCount(v *int) *EntityChangeUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *EntityChangeUpdate) AddErrorCount(v int) *EntityChangeUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EntityChangeUpdate) SetLastError(v string) *EntityChangeUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EntityChangeUpdate) SetNillableLastError(v *string) *EntityChangeUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EntityChangeUpdate) ClearLastError() *EntityChangeUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the EntityChangeMutation object of the builder.
func (_u *EntityChangeUpdate) Mutation() *EntityChangeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityChangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitychange.Table, entitychange.Columns, sqlgraph.NewFieldSpec(entitychange.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OldData(); ok {
		_spec.SetField(entitychange.FieldOldData, field.TypeJSON, value)
	}
	if _u.mutation.OldDataCleared() {
		_spec.ClearField(entitychange.FieldOldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewData(); ok {
		_spec.SetField(entitychange.FieldNewData, field.TypeJSON, value)
	}
	if _u.mutation.NewDataCleared() {
		_spec.ClearField(entitychange.FieldNewData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entitychange.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entitychange.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(entitychange.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(entitychange.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(entitychange.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(entitychange.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(entitychange.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(entitychange.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(entitychange.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitychange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityChangeUpdateOne is the builder for updating a single EntityChange entity.
type EntityChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityChangeMutation
}

// SetOldData sets the "old_data" field.
func (_u *EntityChangeUpdateOne) SetOldData(v map[string]interface{}) *EntityChangeUpdateOne {
	_u.mutation.SetOldData(v)
	return _u
}

// ClearOldData clears the value of the "old_data" field.
func (_u *EntityChangeUpdateOne) ClearOldData() *EntityChangeUpdateOne {
	_u.mutation.ClearOldData()
	return _u
}

// SetNewData sets the "new_data" field.
func (_u *EntityChangeUpdateOne) SetNewData(v map[string]interface{}) *EntityChangeUpdateOne {
	_u.mutation.SetNewData(v)
	return _u
}

// ClearNewData clears the value of the "new_data" field.
func (_u *EntityChangeUpdateOne) ClearNewData() *EntityChangeUpdateOne {
	_u.mutation.ClearNewData()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityChangeUpdateOne) SetMetadata(v map[string]interface{}) *EntityChangeUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityChangeUpdateOne) ClearMetadata() *EntityChangeUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *EntityChangeUpdateOne) SetProcessed(v bool) *EntityChangeUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *EntityChangeUpdateOne) SetNillableProcessed(v *bool) *EntityChangeUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EntityChangeUpdateOne) SetProcessedAt(v time.Time) *EntityChangeUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EntityChangeUpdateOne) SetNillableProcessedAt(v *time.Time) *EntityChangeUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EntityChangeUpdateOne) ClearProcessedAt() *EntityChangeUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *EntityChangeUpdateOne) SetErrorCount(v int) *EntityChangeUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *EntityChangeUpdateOne) SetNillableErrorCount(v *int) *EntityChangeUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *EntityChangeUpdateOne) AddErrorCount(v int) *EntityChangeUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *EntityChangeUpdateOne) SetLastError(v string) *EntityChangeUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *EntityChangeUpdateOne) SetNillableLastError(v *string) *EntityChangeUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *EntityChangeUpdateOne) ClearLastError() *EntityChangeUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the EntityChangeMutation object of the builder.
func (_u *EntityChangeUpdateOne) Mutation() *EntityChangeMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityChangeUpdate builder.
func (_u *EntityChangeUpdateOne) Where(ps ...predicate.EntityChange) *EntityChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityChangeUpdateOne) Select(field string, fields ...string) *EntityChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityChange entity.
func (_u *EntityChangeUpdateOne) Save(ctx context.Context) (*EntityChange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityChangeUpdateOne) SaveX(ctx context.Context) *EntityChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityChangeUpdateOne) sqlSave(ctx context.Context) (_node *EntityChange, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitychange.Table, entitychange.Columns, sqlgraph.NewFieldSpec(entitychange.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitychange.FieldID)
		for _, f := range fields {
			if !entitychange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitychange.FieldID {
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
	if value, ok := _u.mutation.OldData(); ok {
		_spec.SetField(entitychange.FieldOldData, field.TypeJSON, value)
	}
	if _u.mutation.OldDataCleared() {
		_spec.ClearField(entitychange.FieldOldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewData(); ok {
		_spec.SetField(entitychange.FieldNewData, field.TypeJSON, value)
	}
	if _u.mutation.NewDataCleared() {
		_spec.ClearField(entitychange.FieldNewData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entitychange.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entitychange.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(entitychange.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(entitychange.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(entitychange.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(entitychange.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(entitychange.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(entitychange.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(entitychange.FieldLastError, field.TypeString)
	}
	_node = &EntityChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitychange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
