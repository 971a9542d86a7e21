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
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ActionRuleUpdate is the builder for updating ActionRule entities.
type ActionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ActionRuleMutation
}

// Where appends a list predicates to the ActionRuleUpdate builder.
func (_u *ActionRuleUpdate) Where(ps ...predicate.ActionRule) *ActionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ActionRuleUpdate) SetRuleName(v string) *ActionRuleUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableRuleName(v *string) *ActionRuleUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *ActionRuleUpdate) SetRuleType(v actionrule.RuleType) *ActionRuleUpdate {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableRuleType(v *actionrule.RuleType) *ActionRuleUpdate {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ActionRuleUpdate) SetTriggerType(v actionrule.TriggerType) *ActionRuleUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableTriggerType(v *actionrule.TriggerType) *ActionRuleUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerValue sets the "trigger_value" field.
func (_u *ActionRuleUpdate) SetTriggerValue(v string) *ActionRuleUpdate {
	_u.mutation.SetTriggerValue(v)
	return _u
}

// SetNillableTriggerValue sets the "trigger_value" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableTriggerValue(v *string) *ActionRuleUpdate {
	if v != nil {
		_u.SetTriggerValue(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ActionRuleUpdate) SetActionType(v actionrule.ActionType) *ActionRuleUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableActionType(v *actionrule.ActionType) *ActionRuleUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ActionRuleUpdate) SetConfig(v map[string]interface{}) *ActionRuleUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ActionRuleUpdate) ClearConfig() *ActionRuleUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *ActionRuleUpdate) SetConditions(v map[string]interface{}) *ActionRuleUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *ActionRuleUpdate) ClearConditions() *ActionRuleUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetActive sets the "active" field.
func (_u *ActionRuleUpdate) SetActive(v bool) *ActionRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableActive(v *bool) *ActionRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *ActionRuleUpdate) SetCooldownMinutes(v int) *ActionRuleUpdate {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableCooldownMinutes(v *int) *ActionRuleUpdate {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *ActionRuleUpdate) AddCooldownMinutes(v int) *ActionRuleUpdate {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (_u *ActionRuleUpdate) SetMaxExecutionsPerDay(v int) *ActionRuleUpdate {
	_u.mutation.ResetMaxExecutionsPerDay()
	_u.mutation.SetMaxExecutionsPerDay(v)
	return _u
}

// SetNillableMaxExecutionsPerDay sets the "max_executions_per_day" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableMaxExecutionsPerDay(v *int) *ActionRuleUpdate {
	if v != nil {
		_u.SetMaxExecutionsPerDay(*v)
	}
	return _u
}

// AddMaxExecutionsPerDay adds value to the "max_executions_per_day" field.
func (_u *ActionRuleUpdate) AddMaxExecutionsPerDay(v int) *ActionRuleUpdate {
	_u.mutation.AddMaxExecutionsPerDay(v)
	return _u
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *ActionRuleUpdate) SetTotalExecutions(v int) *ActionRuleUpdate {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableTotalExecutions(v *int) *ActionRuleUpdate {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *ActionRuleUpdate) AddTotalExecutions(v int) *ActionRuleUpdate {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *ActionRuleUpdate) SetLastExecutedAt(v time.Time) *ActionRuleUpdate {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableLastExecutedAt(v *time.Time) *ActionRuleUpdate {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *ActionRuleUpdate) ClearLastExecutedAt() *ActionRuleUpdate {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ActionRuleUpdate) SetCreatedBy(v string) *ActionRuleUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableCreatedBy(v *string) *ActionRuleUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ActionRuleUpdate) ClearCreatedBy() *ActionRuleUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionRuleUpdate) SetUpdatedAt(v time.Time) *ActionRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActionRuleUpdate) SetDeletedAt(v time.Time) *ActionRuleUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActionRuleUpdate) SetNillableDeletedAt(v *time.Time) *ActionRuleUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActionRuleUpdate) ClearDeletedAt() *ActionRuleUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ActionRuleMutation object of the builder.
func (_u *ActionRuleUpdate) Mutation() *ActionRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := actionrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := actionrule.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := actionrule.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionrule.Table, actionrule.Columns, sqlgraph.NewFieldSpec(actionrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(actionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(actionrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(actionrule.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerValue(); ok {
		_spec.SetField(actionrule.FieldTriggerValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(actionrule.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(actionrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(actionrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(actionrule.FieldConditions, field.TypeJSON, value)
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(actionrule.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(actionrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(actionrule.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(actionrule.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxExecutionsPerDay(); ok {
		_spec.SetField(actionrule.FieldMaxExecutionsPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionsPerDay(); ok {
		_spec.AddField(actionrule.FieldMaxExecutionsPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(actionrule.FieldTotalExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(actionrule.FieldTotalExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(actionrule.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(actionrule.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(actionrule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(actionrule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(actionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(actionrule.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(actionrule.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionRuleUpdateOne is the builder for updating a single ActionRule entity.
type ActionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionRuleMutation
}

// SetRuleName sets the "rule_name" field.
func (_u *ActionRuleUpdateOne) SetRuleName(v string) *ActionRuleUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableRuleName(v *string) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *ActionRuleUpdateOne) SetRuleType(v actionrule.RuleType) *ActionRuleUpdateOne {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableRuleType(v *actionrule.RuleType) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ActionRuleUpdateOne) SetTriggerType(v actionrule.TriggerType) *ActionRuleUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableTriggerType(v *actionrule.TriggerType) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerValue sets the "trigger_value" field.
func (_u *ActionRuleUpdateOne) SetTriggerValue(v string) *ActionRuleUpdateOne {
	_u.mutation.SetTriggerValue(v)
	return _u
}

// SetNillableTriggerValue sets the "trigger_value" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableTriggerValue(v *string) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetTriggerValue(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ActionRuleUpdateOne) SetActionType(v actionrule.ActionType) *ActionRuleUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableActionType(v *actionrule.ActionType) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ActionRuleUpdateOne) SetConfig(v map[string]interface{}) *ActionRuleUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ActionRuleUpdateOne) ClearConfig() *ActionRuleUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *ActionRuleUpdateOne) SetConditions(v map[string]interface{}) *ActionRuleUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *ActionRuleUpdateOne) ClearConditions() *ActionRuleUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetActive sets the "active" field.
func (_u *ActionRuleUpdateOne) SetActive(v bool) *ActionRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableActive(v *bool) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *ActionRuleUpdateOne) SetCooldownMinutes(v int) *ActionRuleUpdateOne {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableCooldownMinutes(v *int) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *ActionRuleUpdateOne) AddCooldownMinutes(v int) *ActionRuleUpdateOne {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (_u *ActionRuleUpdateOne) SetMaxExecutionsPerDay(v int) *ActionRuleUpdateOne {
	_u.mutation.ResetMaxExecutionsPerDay()
	_u.mutation.SetMaxExecutionsPerDay(v)
	return _u
}

// SetNillableMaxExecutionsPerDay sets the "max_executions_per_day" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableMaxExecutionsPerDay(v *int) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetMaxExecutionsPerDay(*v)
	}
	return _u
}

// AddMaxExecutionsPerDay adds value to the "max_executions_per_day" field.
func (_u *ActionRuleUpdateOne) AddMaxExecutionsPerDay(v int) *ActionRuleUpdateOne {
	_u.mutation.AddMaxExecutionsPerDay(v)
	return _u
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *ActionRuleUpdateOne) SetTotalExecutions(v int) *ActionRuleUpdateOne {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableTotalExecutions(v *int) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *ActionRuleUpdateOne) AddTotalExecutions(v int) *ActionRuleUpdateOne {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (_u *ActionRuleUpdateOne) SetLastExecutedAt(v time.Time) *ActionRuleUpdateOne {
	_u.mutation.SetLastExecutedAt(v)
	return _u
}

// SetNillableLastExecutedAt sets the "last_executed_at" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableLastExecutedAt(v *time.Time) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetLastExecutedAt(*v)
	}
	return _u
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (_u *ActionRuleUpdateOne) ClearLastExecutedAt() *ActionRuleUpdateOne {
	_u.mutation.ClearLastExecutedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ActionRuleUpdateOne) SetCreatedBy(v string) *ActionRuleUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableCreatedBy(v *string) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ActionRuleUpdateOne) ClearCreatedBy() *ActionRuleUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionRuleUpdateOne) SetUpdatedAt(v time.Time) *ActionRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActionRuleUpdateOne) SetDeletedAt(v time.Time) *ActionRuleUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActionRuleUpdateOne) SetNillableDeletedAt(v *time.Time) *ActionRuleUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActionRuleUpdateOne) ClearDeletedAt() *ActionRuleUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the ActionRuleMutation object of the builder.
func (_u *ActionRuleUpdateOne) Mutation() *ActionRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionRuleUpdate builder.
func (_u *ActionRuleUpdateOne) Where(ps ...predicate.ActionRule) *ActionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionRuleUpdateOne) Select(field string, fields ...string) *ActionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionRule entity.
func (_u *ActionRuleUpdateOne) Save(ctx context.Context) (*ActionRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionRuleUpdateOne) SaveX(ctx context.Context) *ActionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleType(); ok {
		if err := actionrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := actionrule.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := actionrule.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "ActionRule.action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionRuleUpdateOne) sqlSave(ctx context.Context) (_node *ActionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionrule.Table, actionrule.Columns, sqlgraph.NewFieldSpec(actionrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionrule.FieldID)
		for _, f := range fields {
			if !actionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionrule.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(actionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(actionrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(actionrule.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerValue(); ok {
		_spec.SetField(actionrule.FieldTriggerValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(actionrule.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(actionrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(actionrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(actionrule.FieldConditions, field.TypeJSON, value)
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(actionrule.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(actionrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(actionrule.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(actionrule.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxExecutionsPerDay(); ok {
		_spec.SetField(actionrule.FieldMaxExecutionsPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionsPerDay(); ok {
		_spec.AddField(actionrule.FieldMaxExecutionsPerDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(actionrule.FieldTotalExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(actionrule.FieldTotalExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastExecutedAt(); ok {
		_spec.SetField(actionrule.FieldLastExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedAtCleared() {
		_spec.ClearField(actionrule.FieldLastExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(actionrule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(actionrule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(actionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(actionrule.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(actionrule.FieldDeletedAt, field.TypeTime)
	}
	_node = &ActionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
