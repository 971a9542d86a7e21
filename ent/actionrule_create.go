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
	"github.com/reflexhq/reflex/ent/actionrule"
)

// ActionRuleCreate is the builder for creating a ActionRule entity.
type ActionRuleCreate struct {
	config
	mutation *ActionRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRuleName sets the "rule_name" field.
func (_c *ActionRuleCreate) SetRuleName(v string) *ActionRuleCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetRuleType sets the "rule_type" field.
func (_c *ActionRuleCreate) SetRuleType(v actionrule.RuleType) *ActionRuleCreate {
	_c.mutation.SetRuleType(v)
	return _c
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableRuleType(v *actionrule.RuleType) *ActionRuleCreate {
	if v != nil {
		_c.SetRuleType(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *ActionRuleCreate) SetTriggerType(v actionrule.TriggerType) *ActionRuleCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetTriggerValue sets the "trigger_value" field.
func (_c *ActionRuleCreate) SetTriggerValue(v string) *ActionRuleCreate {
	_c.mutation.SetTriggerValue(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ActionRuleCreate) SetActionType(v actionrule.ActionType) *ActionRuleCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ActionRuleCreate) SetConfig(v map[string]interface{}) *ActionRuleCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *ActionRuleCreate) SetConditions(v map[string]interface{}) *ActionRuleCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ActionRuleCreate) SetActive(v bool) *ActionRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableActive(v *bool) *ActionRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_c *ActionRuleCreate) SetCooldownMinutes(v int) *ActionRuleCreate {
	_c.mutation.SetCooldownMinutes(v)
	return _c
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableCooldownMinutes(v *int) *ActionRuleCreate {
	if v != nil {
		_c.SetCooldownMinutes(*v)
	}
	return _c
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (_c *ActionRuleCreate) SetMaxExecutionsPerDay(v int) *ActionRuleCreate {
	_c.mutation.SetMaxExecutionsPerDay(v)
	return _c
}

// SetNillableMaxExecutionsPerDay sets the "max_executions_per_day" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableMaxExecutionsPerDay(v *int) *ActionRuleCreate {
	if v != nil {
		_c.SetMaxExecutionsPerDay(*v)
	}
	return _c
}

// SetTotalExecutions sets the "total_executions" field.
func (_c *ActionRuleCreate) SetTotalExecutions(v int) *ActionRuleCreate {
	_c.mutation.SetTotalExecutions(v)
	return _c
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableTotalExecutions(v *int) *ActionRuleCreate {
	if v != nil {
		_c.SetTotalExecutions(*v)
	}
	return _c
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_c *ActionRuleCreate) SetLastExecutedAt(v time.Time) *ActionRuleCreate {
	_c.mutation.SetLastExecutedAt(v)
	return _c
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableLastExecutedAt(v *time.Time) *ActionRuleCreate {
	if v != nil {
		_c.SetLastExecutedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ActionRuleCreate) SetCreatedBy(v string) *ActionRuleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableCreatedBy(v *string) *ActionRuleCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionRuleCreate) SetCreatedAt(v time.Time) *ActionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableCreatedAt(v *time.Time) *ActionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActionRuleCreate) SetUpdatedAt(v time.Time) *ActionRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableUpdatedAt(v *time.Time) *ActionRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ActionRuleCreate) SetDeletedAt(v time.Time) *ActionRuleCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ActionRuleCreate) SetNillableDeletedAt(v *time.Time) *ActionRuleCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionRuleCreate) SetID(v string) *ActionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionRuleMutation object of the builder.
func (_c *ActionRuleCreate) Mutation() *ActionRuleMutation {
	return _c.mutation
}

// Save creates the ActionRule in the database.
func (_c *ActionRuleCreate) Save(ctx context.Context) (*ActionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionRuleCreate) SaveX(ctx context.Context) *ActionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionRuleCreate) defaults() {
	if _, ok := _c.mutation.RuleType(); !ok {
		v := actionrule.DefaultRuleType
		_c.mutation.SetRuleType(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := actionrule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		v := actionrule.DefaultCooldownMinutes
		_c.mutation.SetCooldownMinutes(v)
	}
	if _, ok := _c.mutation.MaxExecutionsPerDay(); !ok {
		v := actionrule.DefaultMaxExecutionsPerDay
		_c.mutation.SetMaxExecutionsPerDay(v)
	}
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		v := actionrule.DefaultTotalExecutions
		_c.mutation.SetTotalExecutions(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := actionrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionRuleCreate) check() error {
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "ActionRule.rule_name"`)}
	}
	if _, ok := _c.mutation.RuleType(); !ok {
		return &ValidationError{Name: "rule_type", err: errors.New(`ent: missing required field "ActionRule.rule_type"`)}
	}
	if v, ok := _c.mutation.RuleType(); ok {
		if err := actionrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.rule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "ActionRule.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := actionrule.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerValue(); !ok {
		return &ValidationError{Name: "trigger_value", err: errors.New(`ent: missing required field "ActionRule.trigger_value"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "ActionRule.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := actionrule.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ActionRule.active"`)}
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		return &ValidationError{Name: "cooldown_minutes", err: errors.New(`ent: missing required field "ActionRule.cooldown_minutes"`)}
	}
	if _, ok := _c.mutation.MaxExecutionsPerDay(); !ok {
		return &ValidationError{Name: "max_executions_per_day", err: errors.New(`ent: missing required field "ActionRule.max_executions_per_day"`)}
	}
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		return &ValidationError{Name: "total_executions", err: errors.New(`ent: missing required field "ActionRule.total_executions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActionRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ActionRule.updated_at"`)}
	}
	return nil
}

func (_c *ActionRuleCreate) sqlSave(ctx context.Context) (*ActionRule, error) {
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
			return nil, fmt.Errorf("unexpected ActionRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionRuleCreate) createSpec() (*ActionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionrule.Table, sqlgraph.NewFieldSpec(actionrule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(actionrule.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.RuleType(); ok {
		_spec.SetField(actionrule.FieldRuleType, field.TypeEnum, value)
		_node.RuleType = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(actionrule.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.TriggerValue(); ok {
		_spec.SetField(actionrule.FieldTriggerValue, field.TypeString, value)
		_node.TriggerValue = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(actionrule.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(actionrule.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(actionrule.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(actionrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CooldownMinutes(); ok {
		_spec.SetField(actionrule.FieldCooldownMinutes, field.TypeInt, value)
		_node.CooldownMinutes = value
	}
	if value, ok := _c.mutation.MaxExecutionsPerDay(); ok {
		_spec.SetField(actionrule.FieldMaxExecutionsPerDay, field.TypeInt, value)
		_node.MaxExecutionsPerDay = value
	}
	if value, ok := _c.mutation.TotalExecutions(); ok {
		_spec.SetField(actionrule.FieldTotalExecutions, field.TypeInt, value)
		_node.TotalExecutions = value
	}
	if value, ok := _c.mutation.LastExecutedAt(); ok {
		_spec.SetField(actionrule.FieldLastExecutedAt, field.TypeTime, value)
		_node.LastExecutedAt = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(actionrule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(actionrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(actionrule.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionRule.Create().
//		SetRuleName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionRuleUpsert) {
//			SetRuleName(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionRuleCreate) OnConflict(opts ...sql.ConflictOption) *ActionRuleUpsertOne {
	_c.conflict = opts
	return &ActionRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionRuleCreate) OnConflictColumns(columns ...string) *ActionRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionRuleUpsertOne{
		create: _c,
	}
}

type (
	// ActionRuleUpsertOne is the builder for "upsert"-ing
	//  one ActionRule node.
	ActionRuleUpsertOne struct {
		create *ActionRuleCreate
	}

	// ActionRuleUpsert is the "OnConflict" setter.
	ActionRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetRuleName sets the "rule_name" field.
func (u *ActionRuleUpsert) SetRuleName(v string) *ActionRuleUpsert {
	u.Set(actionrule.FieldRuleName, v)
	return u
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateRuleName() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldRuleName)
	return u
}

// SetRuleType sets the "rule_type" field.
func (u *ActionRuleUpsert) SetRuleType(v actionrule.RuleType) *ActionRuleUpsert {
	u.Set(actionrule.FieldRuleType, v)
	return u
}

// UpdateRuleType sets the "rule_type" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateRuleType() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldRuleType)
	return u
}

// SetTriggerType sets the "trigger_type" field.
func (u *ActionRuleUpsert) SetTriggerType(v actionrule.TriggerType) *ActionRuleUpsert {
	u.Set(actionrule.FieldTriggerType, v)
	return u
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateTriggerType() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldTriggerType)
	return u
}

// SetTriggerValue sets the "trigger_value" field.
func (u *ActionRuleUpsert) SetTriggerValue(v string) *ActionRuleUpsert {
	u.Set(actionrule.FieldTriggerValue, v)
	return u
}

// UpdateTriggerValue sets the "trigger_value" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateTriggerValue() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldTriggerValue)
	return u
}

// SetActionType sets the "action_type" field.
func (u *ActionRuleUpsert) SetActionType(v actionrule.ActionType) *ActionRuleUpsert {
	u.Set(actionrule.FieldActionType, v)
	return u
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateActionType() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldActionType)
	return u
}

// SetConfig sets the "config" field.
func (u *ActionRuleUpsert) SetConfig(v map[string]interface{}) *ActionRuleUpsert {
	u.Set(actionrule.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateConfig() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *ActionRuleUpsert) ClearConfig() *ActionRuleUpsert {
	u.SetNull(actionrule.FieldConfig)
	return u
}

// SetConditions sets the "conditions" field.
func (u *ActionRuleUpsert) SetConditions(v map[string]interface{}) *ActionRuleUpsert {
	u.Set(actionrule.FieldConditions, v)
	return u
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateConditions() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldConditions)
	return u
}

// ClearConditions clears the value of the "conditions" field.
func (u *ActionRuleUpsert) ClearConditions() *ActionRuleUpsert {
	u.SetNull(actionrule.FieldConditions)
	return u
}

// SetActive sets the "active" field.
func (u *ActionRuleUpsert) SetActive(v bool) *ActionRuleUpsert {
	u.Set(actionrule.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateActive() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldActive)
	return u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *ActionRuleUpsert) SetCooldownMinutes(v int) *ActionRuleUpsert {
	u.Set(actionrule.FieldCooldownMinutes, v)
	return u
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateCooldownMinutes() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldCooldownMinutes)
	return u
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *ActionRuleUpsert) AddCooldownMinutes(v int) *ActionRuleUpsert {
	u.Add(actionrule.FieldCooldownMinutes, v)
	return u
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (u *ActionRuleUpsert) SetMaxExecutionsPerDay(v int) *ActionRuleUpsert {
	u.Set(actionrule.FieldMaxExecutionsPerDay, v)
	return u
}

// UpdateMaxExecutionsPerDay sets the "max_executions_per_day" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateMaxExecutionsPerDay() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldMaxExecutionsPerDay)
	return u
}

// AddMaxExecutionsPerDay adds v to the "max_executions_per_day" field.
func (u *ActionRuleUpsert) AddMaxExecutionsPerDay(v int) *ActionRuleUpsert {
	u.Add(actionrule.FieldMaxExecutionsPerDay, v)
	return u
}

// SetTotalExecutions sets the "total_executions" field.
func (u *ActionRuleUpsert) SetTotalExecutions(v int) *ActionRuleUpsert {
	u.Set(actionrule.FieldTotalExecutions, v)
	return u
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateTotalExecutions() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldTotalExecutions)
	return u
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *ActionRuleUpsert) AddTotalExecutions(v int) *ActionRuleUpsert {
	u.Add(actionrule.FieldTotalExecutions, v)
	return u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (u *ActionRuleUpsert) SetLastExecutedAt(v time.Time) *ActionRuleUpsert {
	u.Set(actionrule.FieldLastExecutedAt, v)
	return u
}

// UpdateLastExecutedAt sets the "last_executed_at" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateLastExecutedAt() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldLastExecutedAt)
	return u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (u *ActionRuleUpsert) ClearLastExecutedAt() *ActionRuleUpsert {
	u.SetNull(actionrule.FieldLastExecutedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *ActionRuleUpsert) SetCreatedBy(v string) *ActionRuleUpsert {
	u.Set(actionrule.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateCreatedBy() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ActionRuleUpsert) ClearCreatedBy() *ActionRuleUpsert {
	u.SetNull(actionrule.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionRuleUpsert) SetUpdatedAt(v time.Time) *ActionRuleUpsert {
	u.Set(actionrule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateUpdatedAt() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActionRuleUpsert) SetDeletedAt(v time.Time) *ActionRuleUpsert {
	u.Set(actionrule.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActionRuleUpsert) UpdateDeletedAt() *ActionRuleUpsert {
	u.SetExcluded(actionrule.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActionRuleUpsert) ClearDeletedAt() *ActionRuleUpsert {
	u.SetNull(actionrule.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionRuleUpsertOne) UpdateNewValues() *ActionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actionrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(actionrule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActionRuleUpsertOne) Ignore() *ActionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionRuleUpsertOne) DoNothing() *ActionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionRuleCreate.OnConflict
// documentation for more info.
func (u *ActionRuleUpsertOne) Update(set func(*ActionRuleUpsert)) *ActionRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRuleName sets the "rule_name" field.
func (u *ActionRuleUpsertOne) SetRuleName(v string) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateRuleName() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateRuleName()
	})
}

// SetRuleType sets the "rule_type" field.
func (u *ActionRuleUpsertOne) SetRuleType(v actionrule.RuleType) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetRuleType(v)
	})
}

// UpdateRuleType sets the "rule_type" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateRuleType() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateRuleType()
	})
}

// SetTriggerType sets the "trigger_type" field.
func (u *ActionRuleUpsertOne) SetTriggerType(v actionrule.TriggerType) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTriggerType(v)
	})
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateTriggerType() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTriggerType()
	})
}

// SetTriggerValue sets the "trigger_value" field.
func (u *ActionRuleUpsertOne) SetTriggerValue(v string) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTriggerValue(v)
	})
}

// UpdateTriggerValue sets the "trigger_value" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateTriggerValue() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTriggerValue()
	})
}

// SetActionType sets the "action_type" field.
func (u *ActionRuleUpsertOne) SetActionType(v actionrule.ActionType) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateActionType() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateActionType()
	})
}

// SetConfig sets the "config" field.
func (u *ActionRuleUpsertOne) SetConfig(v map[string]interface{}) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateConfig() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *ActionRuleUpsertOne) ClearConfig() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearConfig()
	})
}

// SetConditions sets the "conditions" field.
func (u *ActionRuleUpsertOne) SetConditions(v map[string]interface{}) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateConditions() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *ActionRuleUpsertOne) ClearConditions() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearConditions()
	})
}

// SetActive sets the "active" field.
func (u *ActionRuleUpsertOne) SetActive(v bool) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateActive() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateActive()
	})
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *ActionRuleUpsertOne) SetCooldownMinutes(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetCooldownMinutes(v)
	})
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *ActionRuleUpsertOne) AddCooldownMinutes(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddCooldownMinutes(v)
	})
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateCooldownMinutes() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateCooldownMinutes()
	})
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (u *ActionRuleUpsertOne) SetMaxExecutionsPerDay(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetMaxExecutionsPerDay(v)
	})
}

// AddMaxExecutionsPerDay adds v to the "max_executions_per_day" field.
func (u *ActionRuleUpsertOne) AddMaxExecutionsPerDay(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddMaxExecutionsPerDay(v)
	})
}

// UpdateMaxExecutionsPerDay sets the "max_executions_per_day" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateMaxExecutionsPerDay() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateMaxExecutionsPerDay()
	})
}

// SetTotalExecutions sets the "total_executions" field.
func (u *ActionRuleUpsertOne) SetTotalExecutions(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTotalExecutions(v)
	})
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *ActionRuleUpsertOne) AddTotalExecutions(v int) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddTotalExecutions(v)
	})
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateTotalExecutions() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTotalExecutions()
	})
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (u *ActionRuleUpsertOne) SetLastExecutedAt(v time.Time) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetLastExecutedAt(v)
	})
}

// UpdateLastExecutedAt sets the "last_executed_at" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateLastExecutedAt() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateLastExecutedAt()
	})
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (u *ActionRuleUpsertOne) ClearLastExecutedAt() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearLastExecutedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ActionRuleUpsertOne) SetCreatedBy(v string) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateCreatedBy() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ActionRuleUpsertOne) ClearCreatedBy() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionRuleUpsertOne) SetUpdatedAt(v time.Time) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateUpdatedAt() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActionRuleUpsertOne) SetDeletedAt(v time.Time) *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActionRuleUpsertOne) UpdateDeletedAt() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActionRuleUpsertOne) ClearDeletedAt() *ActionRuleUpsertOne {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ActionRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActionRuleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActionRuleUpsertOne.ID is not supported by MySQL driver. Use ActionRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActionRuleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActionRuleCreateBulk is the builder for creating many ActionRule entities in bulk.
type ActionRuleCreateBulk struct {
	config
	err      error
	builders []*ActionRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the ActionRule entities in the database.
func (_c *ActionRuleCreateBulk) Save(ctx context.Context) ([]*ActionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionRuleMutation)
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
func (_c *ActionRuleCreateBulk) SaveX(ctx context.Context) []*ActionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionRuleUpsert) {
//			SetRuleName(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActionRuleUpsertBulk {
	_c.conflict = opts
	return &ActionRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionRuleCreateBulk) OnConflictColumns(columns ...string) *ActionRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionRuleUpsertBulk{
		create: _c,
	}
}

// ActionRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of ActionRule nodes.
type ActionRuleUpsertBulk struct {
	create *ActionRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionRuleUpsertBulk) UpdateNewValues() *ActionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actionrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(actionrule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActionRuleUpsertBulk) Ignore() *ActionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionRuleUpsertBulk) DoNothing() *ActionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionRuleCreateBulk.OnConflict
// documentation for more info.
func (u *ActionRuleUpsertBulk) Update(set func(*ActionRuleUpsert)) *ActionRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRuleName sets the "rule_name" field.
func (u *ActionRuleUpsertBulk) SetRuleName(v string) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateRuleName() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateRuleName()
	})
}

// SetRuleType sets the "rule_type" field.
func (u *ActionRuleUpsertBulk) SetRuleType(v actionrule.RuleType) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetRuleType(v)
	})
}

// UpdateRuleType sets the "rule_type" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateRuleType() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateRuleType()
	})
}

// SetTriggerType sets the "trigger_type" field.
func (u *ActionRuleUpsertBulk) SetTriggerType(v actionrule.TriggerType) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTriggerType(v)
	})
}

// UpdateTriggerType sets the "trigger_type" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateTriggerType() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTriggerType()
	})
}

// SetTriggerValue sets the "trigger_value" field.
func (u *ActionRuleUpsertBulk) SetTriggerValue(v string) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTriggerValue(v)
	})
}

// UpdateTriggerValue sets the "trigger_value" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateTriggerValue() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTriggerValue()
	})
}

// SetActionType sets the "action_type" field.
func (u *ActionRuleUpsertBulk) SetActionType(v actionrule.ActionType) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateActionType() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateActionType()
	})
}

// SetConfig sets the "config" field.
func (u *ActionRuleUpsertBulk) SetConfig(v map[string]interface{}) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateConfig() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *ActionRuleUpsertBulk) ClearConfig() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearConfig()
	})
}

// SetConditions sets the "conditions" field.
func (u *ActionRuleUpsertBulk) SetConditions(v map[string]interface{}) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateConditions() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *ActionRuleUpsertBulk) ClearConditions() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearConditions()
	})
}

// SetActive sets the "active" field.
func (u *ActionRuleUpsertBulk) SetActive(v bool) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateActive() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateActive()
	})
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *ActionRuleUpsertBulk) SetCooldownMinutes(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetCooldownMinutes(v)
	})
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *ActionRuleUpsertBulk) AddCooldownMinutes(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddCooldownMinutes(v)
	})
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateCooldownMinutes() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateCooldownMinutes()
	})
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (u *ActionRuleUpsertBulk) SetMaxExecutionsPerDay(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetMaxExecutionsPerDay(v)
	})
}

// AddMaxExecutionsPerDay adds v to the "max_executions_per_day" field.
func (u *ActionRuleUpsertBulk) AddMaxExecutionsPerDay(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddMaxExecutionsPerDay(v)
	})
}

// UpdateMaxExecutionsPerDay sets the "max_executions_per_day" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateMaxExecutionsPerDay() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateMaxExecutionsPerDay()
	})
}

// SetTotalExecutions sets the "total_executions" field.
func (u *ActionRuleUpsertBulk) SetTotalExecutions(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetTotalExecutions(v)
	})
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *ActionRuleUpsertBulk) AddTotalExecutions(v int) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.AddTotalExecutions(v)
	})
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateTotalExecutions() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateTotalExecutions()
	})
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (u *ActionRuleUpsertBulk) SetLastExecutedAt(v time.Time) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetLastExecutedAt(v)
	})
}

// UpdateLastExecutedAt sets the "last_executed_at" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateLastExecutedAt() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateLastExecutedAt()
	})
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (u *ActionRuleUpsertBulk) ClearLastExecutedAt() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearLastExecutedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ActionRuleUpsertBulk) SetCreatedBy(v string) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateCreatedBy() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ActionRuleUpsertBulk) ClearCreatedBy() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionRuleUpsertBulk) SetUpdatedAt(v time.Time) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateUpdatedAt() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActionRuleUpsertBulk) SetDeletedAt(v time.Time) *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActionRuleUpsertBulk) UpdateDeletedAt() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActionRuleUpsertBulk) ClearDeletedAt() *ActionRuleUpsertBulk {
	return u.Update(func(s *ActionRuleUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ActionRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActionRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
