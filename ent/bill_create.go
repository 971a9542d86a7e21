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
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/shopspring/decimal"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVendor sets the "vendor" field.
func (_c *BillCreate) SetVendor(v string) *BillCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillCreate) SetAmount(v decimal.Decimal) *BillCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *BillCreate) SetCurrency(v string) *BillCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *BillCreate) SetNillableCurrency(v *string) *BillCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *BillCreate) SetDueDate(v time.Time) *BillCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableDueDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *BillCreate) SetCategory(v string) *BillCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *BillCreate) SetNillableCategory(v *string) *BillCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetIsRecurring sets the "is_recurring" field.
func (_c *BillCreate) SetIsRecurring(v bool) *BillCreate {
	_c.mutation.SetIsRecurring(v)
	return _c
}

// SetNillableIsRecurring sets the "is_recurring" field if the given value is not nil.
func (_c *BillCreate) SetNillableIsRecurring(v *bool) *BillCreate {
	if v != nil {
		_c.SetIsRecurring(*v)
	}
	return _c
}

// SetRecurrenceType sets the "recurrence_type" field.
func (_c *BillCreate) SetRecurrenceType(v string) *BillCreate {
	_c.mutation.SetRecurrenceType(v)
	return _c
}

// SetNillableRecurrenceType sets the "recurrence_type" field if the given value is not nil.
func (_c *BillCreate) SetNillableRecurrenceType(v *string) *BillCreate {
	if v != nil {
		_c.SetRecurrenceType(*v)
	}
	return _c
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (_c *BillCreate) SetRecurrenceInterval(v int) *BillCreate {
	_c.mutation.SetRecurrenceInterval(v)
	return _c
}

// SetNillableRecurrenceInterval sets the "recurrence_interval" field if the given value is not nil.
func (_c *BillCreate) SetNillableRecurrenceInterval(v *int) *BillCreate {
	if v != nil {
		_c.SetRecurrenceInterval(*v)
	}
	return _c
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (_c *BillCreate) SetRecurrenceEndDate(v time.Time) *BillCreate {
	_c.mutation.SetRecurrenceEndDate(v)
	return _c
}

// SetNillableRecurrenceEndDate sets the "recurrence_end_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableRecurrenceEndDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetRecurrenceEndDate(*v)
	}
	return _c
}

// SetNextDueDate sets the "next_due_date" field.
func (_c *BillCreate) SetNextDueDate(v time.Time) *BillCreate {
	_c.mutation.SetNextDueDate(v)
	return _c
}

// SetNillableNextDueDate sets the "next_due_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableNextDueDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetNextDueDate(*v)
	}
	return _c
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (_c *BillCreate) SetAutoPayEnabled(v bool) *BillCreate {
	_c.mutation.SetAutoPayEnabled(v)
	return _c
}

// SetNillableAutoPayEnabled sets the "auto_pay_enabled" field if the given value is not nil.
func (_c *BillCreate) SetNillableAutoPayEnabled(v *bool) *BillCreate {
	if v != nil {
		_c.SetAutoPayEnabled(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BillCreate) SetStatus(v bill.Status) *BillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BillCreate) SetNillableStatus(v *bill.Status) *BillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *BillCreate) SetPriority(v bill.Priority) *BillCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *BillCreate) SetNillablePriority(v *bill.Priority) *BillCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *BillCreate) SetTags(v []string) *BillCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSpaceID sets the "space_id" field.
func (_c *BillCreate) SetSpaceID(v string) *BillCreate {
	_c.mutation.SetSpaceID(v)
	return _c
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_c *BillCreate) SetNillableSpaceID(v *string) *BillCreate {
	if v != nil {
		_c.SetSpaceID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *BillCreate) SetCreatedBy(v string) *BillCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedBy(v *string) *BillCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BillCreate) SetMetadata(v map[string]interface{}) *BillCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillCreate) SetUpdatedAt(v time.Time) *BillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableUpdatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v string) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := bill.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.IsRecurring(); !ok {
		v := bill.DefaultIsRecurring
		_c.mutation.SetIsRecurring(v)
	}
	if _, ok := _c.mutation.RecurrenceInterval(); !ok {
		v := bill.DefaultRecurrenceInterval
		_c.mutation.SetRecurrenceInterval(v)
	}
	if _, ok := _c.mutation.AutoPayEnabled(); !ok {
		v := bill.DefaultAutoPayEnabled
		_c.mutation.SetAutoPayEnabled(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := bill.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Bill.vendor"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Bill.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Bill.currency"`)}
	}
	if _, ok := _c.mutation.IsRecurring(); !ok {
		return &ValidationError{Name: "is_recurring", err: errors.New(`ent: missing required field "Bill.is_recurring"`)}
	}
	if _, ok := _c.mutation.RecurrenceInterval(); !ok {
		return &ValidationError{Name: "recurrence_interval", err: errors.New(`ent: missing required field "Bill.recurrence_interval"`)}
	}
	if _, ok := _c.mutation.AutoPayEnabled(); !ok {
		return &ValidationError{Name: "auto_pay_enabled", err: errors.New(`ent: missing required field "Bill.auto_pay_enabled"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Bill.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Bill.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := bill.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Bill.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bill.updated_at"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
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
			return nil, fmt.Errorf("unexpected Bill.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(bill.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(bill.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IsRecurring(); ok {
		_spec.SetField(bill.FieldIsRecurring, field.TypeBool, value)
		_node.IsRecurring = value
	}
	if value, ok := _c.mutation.RecurrenceType(); ok {
		_spec.SetField(bill.FieldRecurrenceType, field.TypeString, value)
		_node.RecurrenceType = value
	}
	if value, ok := _c.mutation.RecurrenceInterval(); ok {
		_spec.SetField(bill.FieldRecurrenceInterval, field.TypeInt, value)
		_node.RecurrenceInterval = value
	}
	if value, ok := _c.mutation.RecurrenceEndDate(); ok {
		_spec.SetField(bill.FieldRecurrenceEndDate, field.TypeTime, value)
		_node.RecurrenceEndDate = &value
	}
	if value, ok := _c.mutation.NextDueDate(); ok {
		_spec.SetField(bill.FieldNextDueDate, field.TypeTime, value)
		_node.NextDueDate = &value
	}
	if value, ok := _c.mutation.AutoPayEnabled(); ok {
		_spec.SetField(bill.FieldAutoPayEnabled, field.TypeBool, value)
		_node.AutoPayEnabled = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(bill.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(bill.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.SpaceID(); ok {
		_spec.SetField(bill.FieldSpaceID, field.TypeString, value)
		_node.SpaceID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(bill.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(bill.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bill.Create().
//		SetVendor(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillUpsert) {
//			SetVendor(v+v).
//		}).
//		Exec(ctx)
func (_c *BillCreate) OnConflict(opts ...sql.ConflictOption) *BillUpsertOne {
	_c.conflict = opts
	return &BillUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillCreate) OnConflictColumns(columns ...string) *BillUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillUpsertOne{
		create: _c,
	}
}

type (
	// BillUpsertOne is the builder for "upsert"-ing
	//  one Bill node.
	BillUpsertOne struct {
		create *BillCreate
	}

	// BillUpsert is the "OnConflict" setter.
	BillUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendor sets the "vendor" field.
func (u *BillUpsert) SetVendor(v string) *BillUpsert {
	u.Set(bill.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *BillUpsert) UpdateVendor() *BillUpsert {
	u.SetExcluded(bill.FieldVendor)
	return u
}

// SetAmount sets the "amount" field.
func (u *BillUpsert) SetAmount(v decimal.Decimal) *BillUpsert {
	u.Set(bill.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BillUpsert) UpdateAmount() *BillUpsert {
	u.SetExcluded(bill.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *BillUpsert) AddAmount(v decimal.Decimal) *BillUpsert {
	u.Add(bill.FieldAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *BillUpsert) SetCurrency(v string) *BillUpsert {
	u.Set(bill.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BillUpsert) UpdateCurrency() *BillUpsert {
	u.SetExcluded(bill.FieldCurrency)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *BillUpsert) SetDueDate(v time.Time) *BillUpsert {
	u.Set(bill.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *BillUpsert) UpdateDueDate() *BillUpsert {
	u.SetExcluded(bill.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *BillUpsert) ClearDueDate() *BillUpsert {
	u.SetNull(bill.FieldDueDate)
	return u
}

// SetCategory sets the "category" field.
func (u *BillUpsert) SetCategory(v string) *BillUpsert {
	u.Set(bill.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BillUpsert) UpdateCategory() *BillUpsert {
	u.SetExcluded(bill.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *BillUpsert) ClearCategory() *BillUpsert {
	u.SetNull(bill.FieldCategory)
	return u
}

// SetIsRecurring sets the "is_recurring" field.
func (u *BillUpsert) SetIsRecurring(v bool) *BillUpsert {
	u.Set(bill.FieldIsRecurring, v)
	return u
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *BillUpsert) UpdateIsRecurring() *BillUpsert {
	u.SetExcluded(bill.FieldIsRecurring)
	return u
}

// SetRecurrenceType sets the "recurrence_type" field.
func (u *BillUpsert) SetRecurrenceType(v string) *BillUpsert {
	u.Set(bill.FieldRecurrenceType, v)
	return u
}

// UpdateRecurrenceType sets the "recurrence_type" field to the value that was provided on create.
func (u *BillUpsert) UpdateRecurrenceType() *BillUpsert {
	u.SetExcluded(bill.FieldRecurrenceType)
	return u
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (u *BillUpsert) ClearRecurrenceType() *BillUpsert {
	u.SetNull(bill.FieldRecurrenceType)
	return u
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (u *BillUpsert) SetRecurrenceInterval(v int) *BillUpsert {
	u.Set(bill.FieldRecurrenceInterval, v)
	return u
}

// UpdateRecurrenceInterval sets the "recurrence_interval" field to the value that was provided on create.
func (u *BillUpsert) UpdateRecurrenceInterval() *BillUpsert {
	u.SetExcluded(bill.FieldRecurrenceInterval)
	return u
}

// AddRecurrenceInterval adds v to the "recurrence_interval" field.
func (u *BillUpsert) AddRecurrenceInterval(v int) *BillUpsert {
	u.Add(bill.FieldRecurrenceInterval, v)
	return u
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (u *BillUpsert) SetRecurrenceEndDate(v time.Time) *BillUpsert {
	u.Set(bill.FieldRecurrenceEndDate, v)
	return u
}

// UpdateRecurrenceEndDate sets the "recurrence_end_date" field to the value that was provided on create.
func (u *BillUpsert) UpdateRecurrenceEndDate() *BillUpsert {
	u.SetExcluded(bill.FieldRecurrenceEndDate)
	return u
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (u *BillUpsert) ClearRecurrenceEndDate() *BillUpsert {
	u.SetNull(bill.FieldRecurrenceEndDate)
	return u
}

// SetNextDueDate sets the "next_due_date" field.
func (u *BillUpsert) SetNextDueDate(v time.Time) *BillUpsert {
	u.Set(bill.FieldNextDueDate, v)
	return u
}

// UpdateNextDueDate sets the "next_due_date" field to the value that was provided on create.
func (u *BillUpsert) UpdateNextDueDate() *BillUpsert {
	u.SetExcluded(bill.FieldNextDueDate)
	return u
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (u *BillUpsert) ClearNextDueDate() *BillUpsert {
	u.SetNull(bill.FieldNextDueDate)
	return u
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (u *BillUpsert) SetAutoPayEnabled(v bool) *BillUpsert {
	u.Set(bill.FieldAutoPayEnabled, v)
	return u
}

// UpdateAutoPayEnabled sets the "auto_pay_enabled" field to the value that was provided on create.
func (u *BillUpsert) UpdateAutoPayEnabled() *BillUpsert {
	u.SetExcluded(bill.FieldAutoPayEnabled)
	return u
}

// SetStatus sets the "status" field.
func (u *BillUpsert) SetStatus(v bill.Status) *BillUpsert {
	u.Set(bill.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillUpsert) UpdateStatus() *BillUpsert {
	u.SetExcluded(bill.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *BillUpsert) SetPriority(v bill.Priority) *BillUpsert {
	u.Set(bill.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *BillUpsert) UpdatePriority() *BillUpsert {
	u.SetExcluded(bill.FieldPriority)
	return u
}

// SetTags sets the "tags" field.
func (u *BillUpsert) SetTags(v []string) *BillUpsert {
	u.Set(bill.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *BillUpsert) UpdateTags() *BillUpsert {
	u.SetExcluded(bill.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *BillUpsert) ClearTags() *BillUpsert {
	u.SetNull(bill.FieldTags)
	return u
}

// SetSpaceID sets the "space_id" field.
func (u *BillUpsert) SetSpaceID(v string) *BillUpsert {
	u.Set(bill.FieldSpaceID, v)
	return u
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *BillUpsert) UpdateSpaceID() *BillUpsert {
	u.SetExcluded(bill.FieldSpaceID)
	return u
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *BillUpsert) ClearSpaceID() *BillUpsert {
	u.SetNull(bill.FieldSpaceID)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *BillUpsert) SetCreatedBy(v string) *BillUpsert {
	u.Set(bill.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BillUpsert) UpdateCreatedBy() *BillUpsert {
	u.SetExcluded(bill.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BillUpsert) ClearCreatedBy() *BillUpsert {
	u.SetNull(bill.FieldCreatedBy)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *BillUpsert) SetMetadata(v map[string]interface{}) *BillUpsert {
	u.Set(bill.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BillUpsert) UpdateMetadata() *BillUpsert {
	u.SetExcluded(bill.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BillUpsert) ClearMetadata() *BillUpsert {
	u.SetNull(bill.FieldMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillUpsert) SetUpdatedAt(v time.Time) *BillUpsert {
	u.Set(bill.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillUpsert) UpdateUpdatedAt() *BillUpsert {
	u.SetExcluded(bill.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Bill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillUpsertOne) UpdateNewValues() *BillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bill.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bill.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BillUpsertOne) Ignore() *BillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillUpsertOne) DoNothing() *BillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillCreate.OnConflict
// documentation for more info.
func (u *BillUpsertOne) Update(set func(*BillUpsert)) *BillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendor sets the "vendor" field.
func (u *BillUpsertOne) SetVendor(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateVendor() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateVendor()
	})
}

// SetAmount sets the "amount" field.
func (u *BillUpsertOne) SetAmount(v decimal.Decimal) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *BillUpsertOne) AddAmount(v decimal.Decimal) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateAmount() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *BillUpsertOne) SetCurrency(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateCurrency() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCurrency()
	})
}

// SetDueDate sets the "due_date" field.
func (u *BillUpsertOne) SetDueDate(v time.Time) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateDueDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *BillUpsertOne) ClearDueDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearDueDate()
	})
}

// SetCategory sets the "category" field.
func (u *BillUpsertOne) SetCategory(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateCategory() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *BillUpsertOne) ClearCategory() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearCategory()
	})
}

// SetIsRecurring sets the "is_recurring" field.
func (u *BillUpsertOne) SetIsRecurring(v bool) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetIsRecurring(v)
	})
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateIsRecurring() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateIsRecurring()
	})
}

// SetRecurrenceType sets the "recurrence_type" field.
func (u *BillUpsertOne) SetRecurrenceType(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceType(v)
	})
}

// UpdateRecurrenceType sets the "recurrence_type" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateRecurrenceType() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceType()
	})
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (u *BillUpsertOne) ClearRecurrenceType() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearRecurrenceType()
	})
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (u *BillUpsertOne) SetRecurrenceInterval(v int) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceInterval(v)
	})
}

// AddRecurrenceInterval adds v to the "recurrence_interval" field.
func (u *BillUpsertOne) AddRecurrenceInterval(v int) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.AddRecurrenceInterval(v)
	})
}

// UpdateRecurrenceInterval sets the "recurrence_interval" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateRecurrenceInterval() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceInterval()
	})
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (u *BillUpsertOne) SetRecurrenceEndDate(v time.Time) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceEndDate(v)
	})
}

// UpdateRecurrenceEndDate sets the "recurrence_end_date" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateRecurrenceEndDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceEndDate()
	})
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (u *BillUpsertOne) ClearRecurrenceEndDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearRecurrenceEndDate()
	})
}

// SetNextDueDate sets the "next_due_date" field.
func (u *BillUpsertOne) SetNextDueDate(v time.Time) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetNextDueDate(v)
	})
}

// UpdateNextDueDate sets the "next_due_date" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateNextDueDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateNextDueDate()
	})
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (u *BillUpsertOne) ClearNextDueDate() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearNextDueDate()
	})
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (u *BillUpsertOne) SetAutoPayEnabled(v bool) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetAutoPayEnabled(v)
	})
}

// UpdateAutoPayEnabled sets the "auto_pay_enabled" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateAutoPayEnabled() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateAutoPayEnabled()
	})
}

// SetStatus sets the "status" field.
func (u *BillUpsertOne) SetStatus(v bill.Status) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateStatus() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *BillUpsertOne) SetPriority(v bill.Priority) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *BillUpsertOne) UpdatePriority() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdatePriority()
	})
}

// SetTags sets the "tags" field.
func (u *BillUpsertOne) SetTags(v []string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateTags() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *BillUpsertOne) ClearTags() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearTags()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *BillUpsertOne) SetSpaceID(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateSpaceID() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateSpaceID()
	})
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *BillUpsertOne) ClearSpaceID() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearSpaceID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *BillUpsertOne) SetCreatedBy(v string) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateCreatedBy() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BillUpsertOne) ClearCreatedBy() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearCreatedBy()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BillUpsertOne) SetMetadata(v map[string]interface{}) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateMetadata() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BillUpsertOne) ClearMetadata() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillUpsertOne) SetUpdatedAt(v time.Time) *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillUpsertOne) UpdateUpdatedAt() *BillUpsertOne {
	return u.Update(func(s *BillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BillUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BillUpsertOne.ID is not supported by MySQL driver. Use BillUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BillUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
	conflict []sql.ConflictOption
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
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
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillUpsert) {
//			SetVendor(v+v).
//		}).
//		Exec(ctx)
func (_c *BillCreateBulk) OnConflict(opts ...sql.ConflictOption) *BillUpsertBulk {
	_c.conflict = opts
	return &BillUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BillCreateBulk) OnConflictColumns(columns ...string) *BillUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BillUpsertBulk{
		create: _c,
	}
}

// BillUpsertBulk is the builder for "upsert"-ing
// a bulk of Bill nodes.
type BillUpsertBulk struct {
	create *BillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Bill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillUpsertBulk) UpdateNewValues() *BillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bill.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bill.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BillUpsertBulk) Ignore() *BillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillUpsertBulk) DoNothing() *BillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillCreateBulk.OnConflict
// documentation for more info.
func (u *BillUpsertBulk) Update(set func(*BillUpsert)) *BillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendor sets the "vendor" field.
func (u *BillUpsertBulk) SetVendor(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateVendor() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateVendor()
	})
}

// SetAmount sets the "amount" field.
func (u *BillUpsertBulk) SetAmount(v decimal.Decimal) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *BillUpsertBulk) AddAmount(v decimal.Decimal) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateAmount() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *BillUpsertBulk) SetCurrency(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateCurrency() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCurrency()
	})
}

// SetDueDate sets the "due_date" field.
func (u *BillUpsertBulk) SetDueDate(v time.Time) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateDueDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *BillUpsertBulk) ClearDueDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearDueDate()
	})
}

// SetCategory sets the "category" field.
func (u *BillUpsertBulk) SetCategory(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateCategory() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *BillUpsertBulk) ClearCategory() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearCategory()
	})
}

// SetIsRecurring sets the "is_recurring" field.
func (u *BillUpsertBulk) SetIsRecurring(v bool) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetIsRecurring(v)
	})
}

// UpdateIsRecurring sets the "is_recurring" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateIsRecurring() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateIsRecurring()
	})
}

// SetRecurrenceType sets the "recurrence_type" field.
func (u *BillUpsertBulk) SetRecurrenceType(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceType(v)
	})
}

// UpdateRecurrenceType sets the "recurrence_type" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateRecurrenceType() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceType()
	})
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (u *BillUpsertBulk) ClearRecurrenceType() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearRecurrenceType()
	})
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (u *BillUpsertBulk) SetRecurrenceInterval(v int) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceInterval(v)
	})
}

// AddRecurrenceInterval adds v to the "recurrence_interval" field.
func (u *BillUpsertBulk) AddRecurrenceInterval(v int) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.AddRecurrenceInterval(v)
	})
}

// UpdateRecurrenceInterval sets the "recurrence_interval" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateRecurrenceInterval() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceInterval()
	})
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (u *BillUpsertBulk) SetRecurrenceEndDate(v time.Time) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetRecurrenceEndDate(v)
	})
}

// UpdateRecurrenceEndDate sets the "recurrence_end_date" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateRecurrenceEndDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateRecurrenceEndDate()
	})
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (u *BillUpsertBulk) ClearRecurrenceEndDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearRecurrenceEndDate()
	})
}

// SetNextDueDate sets the "next_due_date" field.
func (u *BillUpsertBulk) SetNextDueDate(v time.Time) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetNextDueDate(v)
	})
}

// UpdateNextDueDate sets the "next_due_date" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateNextDueDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateNextDueDate()
	})
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (u *BillUpsertBulk) ClearNextDueDate() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearNextDueDate()
	})
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (u *BillUpsertBulk) SetAutoPayEnabled(v bool) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetAutoPayEnabled(v)
	})
}

// UpdateAutoPayEnabled sets the "auto_pay_enabled" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateAutoPayEnabled() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateAutoPayEnabled()
	})
}

// SetStatus sets the "status" field.
func (u *BillUpsertBulk) SetStatus(v bill.Status) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateStatus() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *BillUpsertBulk) SetPriority(v bill.Priority) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdatePriority() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdatePriority()
	})
}

// SetTags sets the "tags" field.
func (u *BillUpsertBulk) SetTags(v []string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateTags() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *BillUpsertBulk) ClearTags() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearTags()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *BillUpsertBulk) SetSpaceID(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateSpaceID() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateSpaceID()
	})
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *BillUpsertBulk) ClearSpaceID() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearSpaceID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *BillUpsertBulk) SetCreatedBy(v string) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateCreatedBy() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BillUpsertBulk) ClearCreatedBy() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearCreatedBy()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BillUpsertBulk) SetMetadata(v map[string]interface{}) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateMetadata() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BillUpsertBulk) ClearMetadata() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillUpsertBulk) SetUpdatedAt(v time.Time) *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillUpsertBulk) UpdateUpdatedAt() *BillUpsertBulk {
	return u.Update(func(s *BillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
