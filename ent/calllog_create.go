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
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/instance"
)

// CallLogCreate is the builder for creating a CallLog entity.
type CallLogCreate struct {
	config
	mutation *CallLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCallLogID sets the "call_log_id" field.
func (_c *CallLogCreate) SetCallLogID(v string) *CallLogCreate {
	_c.mutation.SetCallLogID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *CallLogCreate) SetInstanceID(v string) *CallLogCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *CallLogCreate) SetChatID(v string) *CallLogCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableChatID(v *string) *CallLogCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetFromJid sets the "from_jid" field.
func (_c *CallLogCreate) SetFromJid(v string) *CallLogCreate {
	_c.mutation.SetFromJid(v)
	return _c
}

// SetNillableFromJid sets the "from_jid" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableFromJid(v *string) *CallLogCreate {
	if v != nil {
		_c.SetFromJid(*v)
	}
	return _c
}

// SetFromMe sets the "from_me" field.
func (_c *CallLogCreate) SetFromMe(v bool) *CallLogCreate {
	_c.mutation.SetFromMe(v)
	return _c
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableFromMe(v *bool) *CallLogCreate {
	if v != nil {
		_c.SetFromMe(*v)
	}
	return _c
}

// SetStartTs sets the "start_ts" field.
func (_c *CallLogCreate) SetStartTs(v time.Time) *CallLogCreate {
	_c.mutation.SetStartTs(v)
	return _c
}

// SetNillableStartTs sets the "start_ts" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableStartTs(v *time.Time) *CallLogCreate {
	if v != nil {
		_c.SetStartTs(*v)
	}
	return _c
}

// SetIsVideo sets the "is_video" field.
func (_c *CallLogCreate) SetIsVideo(v bool) *CallLogCreate {
	_c.mutation.SetIsVideo(v)
	return _c
}

// SetNillableIsVideo sets the "is_video" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableIsVideo(v *bool) *CallLogCreate {
	if v != nil {
		_c.SetIsVideo(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *CallLogCreate) SetDurationSeconds(v int) *CallLogCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableDurationSeconds(v *int) *CallLogCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *CallLogCreate) SetOutcome(v calllog.Outcome) *CallLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableOutcome(v *calllog.Outcome) *CallLogCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallLogCreate) SetCreatedAt(v time.Time) *CallLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallLogCreate) SetNillableCreatedAt(v *time.Time) *CallLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallLogCreate) SetID(v string) *CallLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *CallLogCreate) SetInstance(v *Instance) *CallLogCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the CallLogMutation object of the builder.
func (_c *CallLogCreate) Mutation() *CallLogMutation {
	return _c.mutation
}

// Save creates the CallLog in the database.
func (_c *CallLogCreate) Save(ctx context.Context) (*CallLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallLogCreate) SaveX(ctx context.Context) *CallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallLogCreate) defaults() {
	if _, ok := _c.mutation.FromMe(); !ok {
		v := calllog.DefaultFromMe
		_c.mutation.SetFromMe(v)
	}
	if _, ok := _c.mutation.StartTs(); !ok {
		v := calllog.DefaultStartTs()
		_c.mutation.SetStartTs(v)
	}
	if _, ok := _c.mutation.IsVideo(); !ok {
		v := calllog.DefaultIsVideo
		_c.mutation.SetIsVideo(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := calllog.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := calllog.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calllog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallLogCreate) check() error {
	if _, ok := _c.mutation.CallLogID(); !ok {
		return &ValidationError{Name: "call_log_id", err: errors.New(`ent: missing required field "CallLog.call_log_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "CallLog.instance_id"`)}
	}
	if _, ok := _c.mutation.FromMe(); !ok {
		return &ValidationError{Name: "from_me", err: errors.New(`ent: missing required field "CallLog.from_me"`)}
	}
	if _, ok := _c.mutation.StartTs(); !ok {
		return &ValidationError{Name: "start_ts", err: errors.New(`ent: missing required field "CallLog.start_ts"`)}
	}
	if _, ok := _c.mutation.IsVideo(); !ok {
		return &ValidationError{Name: "is_video", err: errors.New(`ent: missing required field "CallLog.is_video"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "CallLog.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "CallLog.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := calllog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CallLog.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallLog.created_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "CallLog.instance"`)}
	}
	return nil
}

func (_c *CallLogCreate) sqlSave(ctx context.Context) (*CallLog, error) {
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
			return nil, fmt.Errorf("unexpected CallLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallLogCreate) createSpec() (*CallLog, *sqlgraph.CreateSpec) {
	var (
		_node = &CallLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calllog.Table, sqlgraph.NewFieldSpec(calllog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallLogID(); ok {
		_spec.SetField(calllog.FieldCallLogID, field.TypeString, value)
		_node.CallLogID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(calllog.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.FromJid(); ok {
		_spec.SetField(calllog.FieldFromJid, field.TypeString, value)
		_node.FromJid = value
	}
	if value, ok := _c.mutation.FromMe(); ok {
		_spec.SetField(calllog.FieldFromMe, field.TypeBool, value)
		_node.FromMe = value
	}
	if value, ok := _c.mutation.StartTs(); ok {
		_spec.SetField(calllog.FieldStartTs, field.TypeTime, value)
		_node.StartTs = value
	}
	if value, ok := _c.mutation.IsVideo(); ok {
		_spec.SetField(calllog.FieldIsVideo, field.TypeBool, value)
		_node.IsVideo = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(calllog.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(calllog.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calllog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calllog.InstanceTable,
			Columns: []string{calllog.InstanceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InstanceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallLog.Create().
//		SetCallLogID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallLogUpsert) {
//			SetCallLogID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallLogCreate) OnConflict(opts ...sql.ConflictOption) *CallLogUpsertOne {
	_c.conflict = opts
	return &CallLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallLogCreate) OnConflictColumns(columns ...string) *CallLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallLogUpsertOne{
		create: _c,
	}
}

type (
	// CallLogUpsertOne is the builder for "upsert"-ing
	//  one CallLog node.
	CallLogUpsertOne struct {
		create *CallLogCreate
	}

	// CallLogUpsert is the "OnConflict" setter.
	CallLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *CallLogUpsert) SetChatID(v string) *CallLogUpsert {
	u.Set(calllog.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateChatID() *CallLogUpsert {
	u.SetExcluded(calllog.FieldChatID)
	return u
}

// ClearChatID clears the value of the "chat_id" field.
func (u *CallLogUpsert) ClearChatID() *CallLogUpsert {
	u.SetNull(calllog.FieldChatID)
	return u
}

// SetFromJid sets the "from_jid" field.
func (u *CallLogUpsert) SetFromJid(v string) *CallLogUpsert {
	u.Set(calllog.FieldFromJid, v)
	return u
}

// UpdateFromJid sets the "from_jid" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateFromJid() *CallLogUpsert {
	u.SetExcluded(calllog.FieldFromJid)
	return u
}

// ClearFromJid clears the value of the "from_jid" field.
func (u *CallLogUpsert) ClearFromJid() *CallLogUpsert {
	u.SetNull(calllog.FieldFromJid)
	return u
}

// SetFromMe sets the "from_me" field.
func (u *CallLogUpsert) SetFromMe(v bool) *CallLogUpsert {
	u.Set(calllog.FieldFromMe, v)
	return u
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateFromMe() *CallLogUpsert {
	u.SetExcluded(calllog.FieldFromMe)
	return u
}

// SetStartTs sets the "start_ts" field.
func (u *CallLogUpsert) SetStartTs(v time.Time) *CallLogUpsert {
	u.Set(calllog.FieldStartTs, v)
	return u
}

// UpdateStartTs sets the "start_ts" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateStartTs() *CallLogUpsert {
	u.SetExcluded(calllog.FieldStartTs)
	return u
}

// SetIsVideo sets the "is_video" field.
func (u *CallLogUpsert) SetIsVideo(v bool) *CallLogUpsert {
	u.Set(calllog.FieldIsVideo, v)
	return u
}

// UpdateIsVideo sets the "is_video" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateIsVideo() *CallLogUpsert {
	u.SetExcluded(calllog.FieldIsVideo)
	return u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallLogUpsert) SetDurationSeconds(v int) *CallLogUpsert {
	u.Set(calllog.FieldDurationSeconds, v)
	return u
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateDurationSeconds() *CallLogUpsert {
	u.SetExcluded(calllog.FieldDurationSeconds)
	return u
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallLogUpsert) AddDurationSeconds(v int) *CallLogUpsert {
	u.Add(calllog.FieldDurationSeconds, v)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *CallLogUpsert) SetOutcome(v calllog.Outcome) *CallLogUpsert {
	u.Set(calllog.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *CallLogUpsert) UpdateOutcome() *CallLogUpsert {
	u.SetExcluded(calllog.FieldOutcome)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CallLogUpsertOne) UpdateNewValues() *CallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calllog.FieldID)
		}
		if _, exists := u.create.mutation.CallLogID(); exists {
			s.SetIgnore(calllog.FieldCallLogID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(calllog.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(calllog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CallLogUpsertOne) Ignore() *CallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallLogUpsertOne) DoNothing() *CallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallLogCreate.OnConflict
// documentation for more info.
func (u *CallLogUpsertOne) Update(set func(*CallLogUpsert)) *CallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *CallLogUpsertOne) SetChatID(v string) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateChatID() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateChatID()
	})
}

// ClearChatID clears the value of the "chat_id" field.
func (u *CallLogUpsertOne) ClearChatID() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.ClearChatID()
	})
}

// SetFromJid sets the "from_jid" field.
func (u *CallLogUpsertOne) SetFromJid(v string) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetFromJid(v)
	})
}

// UpdateFromJid sets the "from_jid" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateFromJid() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateFromJid()
	})
}

// ClearFromJid clears the value of the "from_jid" field.
func (u *CallLogUpsertOne) ClearFromJid() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.ClearFromJid()
	})
}

// SetFromMe sets the "from_me" field.
func (u *CallLogUpsertOne) SetFromMe(v bool) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateFromMe() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateFromMe()
	})
}

// SetStartTs sets the "start_ts" field.
func (u *CallLogUpsertOne) SetStartTs(v time.Time) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetStartTs(v)
	})
}

// UpdateStartTs sets the "start_ts" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateStartTs() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateStartTs()
	})
}

// SetIsVideo sets the "is_video" field.
func (u *CallLogUpsertOne) SetIsVideo(v bool) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetIsVideo(v)
	})
}

// UpdateIsVideo sets the "is_video" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateIsVideo() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateIsVideo()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallLogUpsertOne) SetDurationSeconds(v int) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallLogUpsertOne) AddDurationSeconds(v int) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateDurationSeconds() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetOutcome sets the "outcome" field.
func (u *CallLogUpsertOne) SetOutcome(v calllog.Outcome) *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *CallLogUpsertOne) UpdateOutcome() *CallLogUpsertOne {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateOutcome()
	})
}

// Exec executes the query.
func (u *CallLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CallLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CallLogUpsertOne.ID is not supported by MySQL driver. Use CallLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CallLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CallLogCreateBulk is the builder for creating many CallLog entities in bulk.
type CallLogCreateBulk struct {
	config
	err      error
	builders []*CallLogCreate
	conflict []sql.ConflictOption
}

// Save creates the CallLog entities in the database.
func (_c *CallLogCreateBulk) Save(ctx context.Context) ([]*CallLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallLogMutation)
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
func (_c *CallLogCreateBulk) SaveX(ctx context.Context) []*CallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallLogUpsert) {
//			SetCallLogID(v+v).
//		}).
//		Exec(ctx)
func (_c *CallLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *CallLogUpsertBulk {
	_c.conflict = opts
	return &CallLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CallLogCreateBulk) OnConflictColumns(columns ...string) *CallLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CallLogUpsertBulk{
		create: _c,
	}
}

// CallLogUpsertBulk is the builder for "upsert"-ing
// a bulk of CallLog nodes.
type CallLogUpsertBulk struct {
	create *CallLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CallLogUpsertBulk) UpdateNewValues() *CallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calllog.FieldID)
			}
			if _, exists := b.mutation.CallLogID(); exists {
				s.SetIgnore(calllog.FieldCallLogID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(calllog.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(calllog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CallLogUpsertBulk) Ignore() *CallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallLogUpsertBulk) DoNothing() *CallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallLogCreateBulk.OnConflict
// documentation for more info.
func (u *CallLogUpsertBulk) Update(set func(*CallLogUpsert)) *CallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *CallLogUpsertBulk) SetChatID(v string) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateChatID() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateChatID()
	})
}

// ClearChatID clears the value of the "chat_id" field.
func (u *CallLogUpsertBulk) ClearChatID() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.ClearChatID()
	})
}

// SetFromJid sets the "from_jid" field.
func (u *CallLogUpsertBulk) SetFromJid(v string) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetFromJid(v)
	})
}

// UpdateFromJid sets the "from_jid" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateFromJid() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateFromJid()
	})
}

// ClearFromJid clears the value of the "from_jid" field.
func (u *CallLogUpsertBulk) ClearFromJid() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.ClearFromJid()
	})
}

// SetFromMe sets the "from_me" field.
func (u *CallLogUpsertBulk) SetFromMe(v bool) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateFromMe() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateFromMe()
	})
}

// SetStartTs sets the "start_ts" field.
func (u *CallLogUpsertBulk) SetStartTs(v time.Time) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetStartTs(v)
	})
}

// UpdateStartTs sets the "start_ts" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateStartTs() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateStartTs()
	})
}

// SetIsVideo sets the "is_video" field.
func (u *CallLogUpsertBulk) SetIsVideo(v bool) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetIsVideo(v)
	})
}

// UpdateIsVideo sets the "is_video" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateIsVideo() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateIsVideo()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *CallLogUpsertBulk) SetDurationSeconds(v int) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *CallLogUpsertBulk) AddDurationSeconds(v int) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateDurationSeconds() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateDurationSeconds()
	})
}

// SetOutcome sets the "outcome" field.
func (u *CallLogUpsertBulk) SetOutcome(v calllog.Outcome) *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *CallLogUpsertBulk) UpdateOutcome() *CallLogUpsertBulk {
	return u.Update(func(s *CallLogUpsert) {
		s.UpdateOutcome()
	})
}

// Exec executes the query.
func (u *CallLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CallLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
