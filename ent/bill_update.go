// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/predicate"
	"github.com/shopspring/decimal"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdate) SetVendor(v string) *BillUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendor(v *string) *BillUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdate) SetAmount(v decimal.Decimal) *BillUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmount(v *decimal.Decimal) *BillUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdate) AddAmount(v decimal.Decimal) *BillUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdate) SetCurrency(v string) *BillUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCurrency(v *string) *BillUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdate) SetDueDate(v time.Time) *BillUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDueDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillUpdate) ClearDueDate() *BillUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCategory sets the "category" field.
func (_u *BillUpdate) SetCategory(v string) *BillUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCategory(v *string) *BillUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BillUpdate) ClearCategory() *BillUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetIsRecurring sets the "is_recurring" field.
func (_u *BillUpdate) SetIsRecurring(v bool) *BillUpdate {
	_u.mutation.SetIsRecurring(v)
	return _u
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_u *BillUpdate) SetNillableIsRecurring(v *bool) *BillUpdate {
	if v != nil {
		_u.SetIsRecurring(*v)
	}
	return _u
}

// SetRecurrenceType sets the "recurrence_type" field.
func (_u *BillUpdate) SetRecurrenceType(v string) *BillUpdate {
	_u.mutation.SetRecurrenceType(v)
	return _u
}

// SetNillableRecurrenceType sets the "recurrence_type" field if the given value is not nil.
func (_u *BillUpdate) SetNillableRecurrenceType(v *string) *BillUpdate {
	if v != nil {
		_u.SetRecurrenceType(*v)
	}
	return _u
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (_u *BillUpdate) ClearRecurrenceType() *BillUpdate {
	_u.mutation.ClearRecurrenceType()
	return _u
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (_u *BillUpdate) SetRecurrenceInterval(v int) *BillUpdate {
	_u.mutation.ResetRecurrenceInterval()
	_u.mutation.SetRecurrenceInterval(v)
	return _u
}

// SetNillableRecurrenceInterval sets the "recurrence_interval" field if the given value is not nil.
func (_u *BillUpdate) SetNillableRecurrenceInterval(v *int) *BillUpdate {
	if v != nil {
		_u.SetRecurrenceInterval(*v)
	}
	return _u
}

// AddRecurrenceInterval adds value to the "recurrence_interval" field.
func (_u *BillUpdate) AddRecurrenceInterval(v int) *BillUpdate {
	_u.mutation.AddRecurrenceInterval(v)
	return _u
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (_u *BillUpdate) SetRecurrenceEndDate(v time.Time) *BillUpdate {
	_u.mutation.SetRecurrenceEndDate(v)
	return _u
}

// SetNillableRecurrenceEndDate sets the "recurrence_end_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableRecurrenceEndDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetRecurrenceEndDate(*v)
	}
	return _u
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (_u *BillUpdate) ClearRecurrenceEndDate() *BillUpdate {
	_u.mutation.ClearRecurrenceEndDate()
	return _u
}

// SetNextDueDate sets the "next_due_date" field.
func (_u *BillUpdate) SetNextDueDate(v time.Time) *BillUpdate {
	_u.mutation.SetNextDueDate(v)
	return _u
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableNextDueDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetNextDueDate(*v)
	}
	return _u
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (_u *BillUpdate) ClearNextDueDate() *BillUpdate {
	_u.mutation.ClearNextDueDate()
	return _u
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (_u *BillUpdate) SetAutoPayEnabled(v bool) *BillUpdate {
	_u.mutation.SetAutoPayEnabled(v)
	return _u
}

// SetNillableAutoPayEnabled sets the "auto_pay_enabled" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAutoPayEnabled(v *bool) *BillUpdate {
	if v != nil {
		_u.SetAutoPayEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdate) SetStatus(v bill.Status) *BillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdate) SetNillableStatus(v *bill.Status) *BillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BillUpdate) SetPriority(v bill.Priority) *BillUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BillUpdate) SetNillablePriority(v *bill.Priority) *BillUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *BillUpdate) SetTags(v []string) *BillUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *BillUpdate) AppendTags(v []string) *BillUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *BillUpdate) ClearTags() *BillUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *BillUpdate) SetSpaceID(v string) *BillUpdate {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableSpaceID(v *string) *BillUpdate {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// ClearSpaceID clears the value of the "space_id" field.
func (_u *BillUpdate) ClearSpaceID() *BillUpdate {
	_u.mutation.ClearSpaceID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BillUpdate) SetCreatedBy(v string) *BillUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedBy(v *string) *BillUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *BillUpdate) ClearCreatedBy() *BillUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BillUpdate) SetMetadata(v map[string]interface{}) *BillUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BillUpdate) ClearMetadata() *BillUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdate) SetUpdatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := bill.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bill.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(bill.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(bill.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(bill.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecurring(); ok {
		_spec.SetField(bill.FieldIsRecurring, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecurrenceType(); ok {
		_spec.SetField(bill.FieldRecurrenceType, field.TypeString, value)
	}
	if _u.mutation.RecurrenceTypeCleared() {
		_spec.ClearField(bill.FieldRecurrenceType, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrenceInterval(); ok {
		_spec.SetField(bill.FieldRecurrenceInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecurrenceInterval(); ok {
		_spec.AddField(bill.FieldRecurrenceInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecurrenceEndDate(); ok {
		_spec.SetField(bill.FieldRecurrenceEndDate, field.TypeTime, value)
	}
	if _u.mutation.RecurrenceEndDateCleared() {
		_spec.ClearField(bill.FieldRecurrenceEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDueDate(); ok {
		_spec.SetField(bill.FieldNextDueDate, field.TypeTime, value)
	}
	if _u.mutation.NextDueDateCleared() {
		_spec.ClearField(bill.FieldNextDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AutoPayEnabled(); ok {
		_spec.SetField(bill.FieldAutoPayEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(bill.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(bill.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(bill.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpaceID(); ok {
		_spec.SetField(bill.FieldSpaceID, field.TypeString, value)
	}
	if _u.mutation.SpaceIDCleared() {
		_spec.ClearField(bill.FieldSpaceID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(bill.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(bill.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bill.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bill.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetVendor sets the "vendor" field.
func (_u *BillUpdateOne) SetVendor(v string) *BillUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendor(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdateOne) SetAmount(v decimal.Decimal) *BillUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmount(v *decimal.Decimal) *BillUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdateOne) AddAmount(v decimal.Decimal) *BillUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdateOne) SetCurrency(v string) *BillUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCurrency(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdateOne) SetDueDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDueDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillUpdateOne) ClearDueDate() *BillUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCategory sets the "category" field.
func (_u *BillUpdateOne) SetCategory(v string) *BillUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCategory(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *BillUpdateOne) ClearCategory() *BillUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetIsRecurring sets the "is_recurring" field.
func (_u *BillUpdateOne) SetIsRecurring(v bool) *BillUpdateOne {
	_u.mutation.SetIsRecurring(v)
	return _u
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableIsRecurring(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetIsRecurring(*v)
	}
	return _u
}

// SetRecurrenceType sets the "recurrence_type" field.
func (_u *BillUpdateOne) SetRecurrenceType(v string) *BillUpdateOne {
	_u.mutation.SetRecurrenceType(v)
	return _u
}

// SetNillableRecurrenceType sets the "recurrence_type" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableRecurrenceType(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetRecurrenceType(*v)
	}
	return _u
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (_u *BillUpdateOne) ClearRecurrenceType() *BillUpdateOne {
	_u.mutation.ClearRecurrenceType()
	return _u
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (_u *BillUpdateOne) SetRecurrenceInterval(v int) *BillUpdateOne {
	_u.mutation.ResetRecurrenceInterval()
	_u.mutation.SetRecurrenceInterval(v)
	return _u
}

// SetNillableRecurrenceInterval sets the "recurrence_interval" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableRecurrenceInterval(v *int) *BillUpdateOne {
	if v != nil {
		_u.SetRecurrenceInterval(*v)
	}
	return _u
}

// AddRecurrenceInterval adds value to the "recurrence_interval" field.
func (_u *BillUpdateOne) AddRecurrenceInterval(v int) *BillUpdateOne {
	_u.mutation.AddRecurrenceInterval(v)
	return _u
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (_u *BillUpdateOne) SetRecurrenceEndDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetRecurrenceEndDate(v)
	return _u
}

// SetNillableRecurrenceEndDate sets the "recurrence_end_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableRecurrenceEndDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetRecurrenceEndDate(*v)
	}
	return _u
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (_u *BillUpdateOne) ClearRecurrenceEndDate() *BillUpdateOne {
	_u.mutation.ClearRecurrenceEndDate()
	return _u
}

// SetNextDueDate sets the "next_due_date" field.
func (_u *BillUpdateOne) SetNextDueDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetNextDueDate(v)
	return _u
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableNextDueDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetNextDueDate(*v)
	}
	return _u
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (_u *BillUpdateOne) ClearNextDueDate() *BillUpdateOne {
	_u.mutation.ClearNextDueDate()
	return _u
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (_u *BillUpdateOne) SetAutoPayEnabled(v bool) *BillUpdateOne {
	_u.mutation.SetAutoPayEnabled(v)
	return _u
}

// SetNillableAutoPayEnabled sets the "auto_pay_enabled" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAutoPayEnabled(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetAutoPayEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdateOne) SetStatus(v bill.Status) *BillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableStatus(v *bill.Status) *BillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BillUpdateOne) SetPriority(v bill.Priority) *BillUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillablePriority(v *bill.Priority) *BillUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *BillUpdateOne) SetTags(v []string) *BillUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *BillUpdateOne) AppendTags(v []string) *BillUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *BillUpdateOne) ClearTags() *BillUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *BillUpdateOne) SetSpaceID(v string) *BillUpdateOne {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableSpaceID(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// ClearSpaceID clears the value of the "space_id" field.
func (_u *BillUpdateOne) ClearSpaceID() *BillUpdateOne {
	_u.mutation.ClearSpaceID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BillUpdateOne) SetCreatedBy(v string) *BillUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedBy(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *BillUpdateOne) ClearCreatedBy() *BillUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BillUpdateOne) SetMetadata(v map[string]interface{}) *BillUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BillUpdateOne) ClearMetadata() *BillUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdateOne) SetUpdatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := bill.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bill.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
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
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(bill.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(bill.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(bill.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecurring(); ok {
		_spec.SetField(bill.FieldIsRecurring, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecurrenceType(); ok {
		_spec.SetField(bill.FieldRecurrenceType, field.TypeString, value)
	}
	if _u.mutation.RecurrenceTypeCleared() {
		_spec.ClearField(bill.FieldRecurrenceType, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrenceInterval(); ok {
		_spec.SetField(bill.FieldRecurrenceInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecurrenceInterval(); ok {
		_spec.AddField(bill.FieldRecurrenceInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecurrenceEndDate(); ok {
		_spec.SetField(bill.FieldRecurrenceEndDate, field.TypeTime, value)
	}
	if _u.mutation.RecurrenceEndDateCleared() {
		_spec.ClearField(bill.FieldRecurrenceEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDueDate(); ok {
		_spec.SetField(bill.FieldNextDueDate, field.TypeTime, value)
	}
	if _u.mutation.NextDueDateCleared() {
		_spec.ClearField(bill.FieldNextDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AutoPayEnabled(); ok {
		_spec.SetField(bill.FieldAutoPayEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(bill.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(bill.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bill.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(bill.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpaceID(); ok {
		_spec.SetField(bill.FieldSpaceID, field.TypeString, value)
	}
	if _u.mutation.SpaceIDCleared() {
		_spec.ClearField(bill.FieldSpaceID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(bill.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(bill.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(bill.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(bill.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
