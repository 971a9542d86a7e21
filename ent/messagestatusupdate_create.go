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
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
)

// MessageStatusUpdateCreate is the builder for creating a MessageStatusUpdate entity.
type MessageStatusUpdateCreate struct {
	config
	mutation *MessageStatusUpdateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *MessageStatusUpdateCreate) SetMessageID(v string) *MessageStatusUpdateCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *MessageStatusUpdateCreate) SetInstanceID(v string) *MessageStatusUpdateCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MessageStatusUpdateCreate) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetParticipantJid sets the "participant_jid" field.
func (_c *MessageStatusUpdateCreate) SetParticipantJid(v string) *MessageStatusUpdateCreate {
	_c.mutation.SetParticipantJid(v)
	return _c
}

// SetNillableParticipantJid sets the "participant_jid" field if the given value is not nil.
func (_c *MessageStatusUpdateCreate) SetNillableParticipantJid(v *string) *MessageStatusUpdateCreate {
	if v != nil {
		_c.SetParticipantJid(*v)
	}
	return _c
}

// SetStatusTs sets the "status_ts" field.
func (_c *MessageStatusUpdateCreate) SetStatusTs(v time.Time) *MessageStatusUpdateCreate {
	_c.mutation.SetStatusTs(v)
	return _c
}

// SetNillableStatusTs sets the "status_ts" field if the given value is not nil.
func (_c *MessageStatusUpdateCreate) SetNillableStatusTs(v *time.Time) *MessageStatusUpdateCreate {
	if v != nil {
		_c.SetStatusTs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageStatusUpdateCreate) SetCreatedAt(v time.Time) *MessageStatusUpdateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageStatusUpdateCreate) SetNillableCreatedAt(v *time.Time) *MessageStatusUpdateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageStatusUpdateCreate) SetID(v string) *MessageStatusUpdateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *MessageStatusUpdateCreate) SetInstance(v *Instance) *MessageStatusUpdateCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the MessageStatusUpdateMutation object of the builder.
func (_c *MessageStatusUpdateCreate) Mutation() *MessageStatusUpdateMutation {
	return _c.mutation
}

// Save creates the MessageStatusUpdate in the database.
func (_c *MessageStatusUpdateCreate) Save(ctx context.Context) (*MessageStatusUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageStatusUpdateCreate) SaveX(ctx context.Context) *MessageStatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageStatusUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageStatusUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageStatusUpdateCreate) defaults() {
	if _, ok := _c.mutation.StatusTs(); !ok {
		v := messagestatusupdate.DefaultStatusTs()
		_c.mutation.SetStatusTs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagestatusupdate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageStatusUpdateCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageStatusUpdate.message_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "MessageStatusUpdate.instance_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MessageStatusUpdate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := messagestatusupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageStatusUpdate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusTs(); !ok {
		return &ValidationError{Name: "status_ts", err: errors.New(`ent: missing required field "MessageStatusUpdate.status_ts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageStatusUpdate.created_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "MessageStatusUpdate.instance"`)}
	}
	return nil
}

func (_c *MessageStatusUpdateCreate) sqlSave(ctx context.Context) (*MessageStatusUpdate, error) {
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
			return nil, fmt.Errorf("unexpected MessageStatusUpdate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageStatusUpdateCreate) createSpec() (*MessageStatusUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageStatusUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagestatusupdate.Table, sqlgraph.NewFieldSpec(messagestatusupdate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messagestatusupdate.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(messagestatusupdate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParticipantJid(); ok {
		_spec.SetField(messagestatusupdate.FieldParticipantJid, field.TypeString, value)
		_node.ParticipantJid = value
	}
	if value, ok := _c.mutation.StatusTs(); ok {
		_spec.SetField(messagestatusupdate.FieldStatusTs, field.TypeTime, value)
		_node.StatusTs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagestatusupdate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagestatusupdate.InstanceTable,
			Columns: []string{messagestatusupdate.InstanceColumn},
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
//	client.MessageStatusUpdate.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageStatusUpdateUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageStatusUpdateCreate) OnConflict(opts ...sql.ConflictOption) *MessageStatusUpdateUpsertOne {
	_c.conflict = opts
	return &MessageStatusUpdateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageStatusUpdateCreate) OnConflictColumns(columns ...string) *MessageStatusUpdateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageStatusUpdateUpsertOne{
		create: _c,
	}
}

type (
	// MessageStatusUpdateUpsertOne is the builder for "upsert"-ing
	//  one MessageStatusUpdate node.
	MessageStatusUpdateUpsertOne struct {
		create *MessageStatusUpdateCreate
	}

	// MessageStatusUpdateUpsert is the "OnConflict" setter.
	MessageStatusUpdateUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *MessageStatusUpdateUpsert) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateUpsert {
	u.Set(messagestatusupdate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsert) UpdateStatus() *MessageStatusUpdateUpsert {
	u.SetExcluded(messagestatusupdate.FieldStatus)
	return u
}

// SetParticipantJid sets the "participant_jid" field.
func (u *MessageStatusUpdateUpsert) SetParticipantJid(v string) *MessageStatusUpdateUpsert {
	u.Set(messagestatusupdate.FieldParticipantJid, v)
	return u
}

// UpdateParticipantJid sets the "participant_jid" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsert) UpdateParticipantJid() *MessageStatusUpdateUpsert {
	u.SetExcluded(messagestatusupdate.FieldParticipantJid)
	return u
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (u *MessageStatusUpdateUpsert) ClearParticipantJid() *MessageStatusUpdateUpsert {
	u.SetNull(messagestatusupdate.FieldParticipantJid)
	return u
}

// SetStatusTs sets the "status_ts" field.
func (u *MessageStatusUpdateUpsert) SetStatusTs(v time.Time) *MessageStatusUpdateUpsert {
	u.Set(messagestatusupdate.FieldStatusTs, v)
	return u
}

// UpdateStatusTs sets the "status_ts" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsert) UpdateStatusTs() *MessageStatusUpdateUpsert {
	u.SetExcluded(messagestatusupdate.FieldStatusTs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagestatusupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageStatusUpdateUpsertOne) UpdateNewValues() *MessageStatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(messagestatusupdate.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(messagestatusupdate.FieldMessageID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(messagestatusupdate.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(messagestatusupdate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageStatusUpdateUpsertOne) Ignore() *MessageStatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageStatusUpdateUpsertOne) DoNothing() *MessageStatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageStatusUpdateCreate.OnConflict
// documentation for more info.
func (u *MessageStatusUpdateUpsertOne) Update(set func(*MessageStatusUpdateUpsert)) *MessageStatusUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageStatusUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *MessageStatusUpdateUpsertOne) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertOne) UpdateStatus() *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateStatus()
	})
}

// SetParticipantJid sets the "participant_jid" field.
func (u *MessageStatusUpdateUpsertOne) SetParticipantJid(v string) *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetParticipantJid(v)
	})
}

// UpdateParticipantJid sets the "participant_jid" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertOne) UpdateParticipantJid() *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateParticipantJid()
	})
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (u *MessageStatusUpdateUpsertOne) ClearParticipantJid() *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.ClearParticipantJid()
	})
}

// SetStatusTs sets the "status_ts" field.
func (u *MessageStatusUpdateUpsertOne) SetStatusTs(v time.Time) *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetStatusTs(v)
	})
}

// UpdateStatusTs sets the "status_ts" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertOne) UpdateStatusTs() *MessageStatusUpdateUpsertOne {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateStatusTs()
	})
}

// Exec executes the query.
func (u *MessageStatusUpdateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageStatusUpdateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageStatusUpdateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageStatusUpdateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageStatusUpdateUpsertOne.ID is not supported by MySQL driver. Use MessageStatusUpdateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageStatusUpdateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageStatusUpdateCreateBulk is the builder for creating many MessageStatusUpdate entities in bulk.
type MessageStatusUpdateCreateBulk struct {
	config
	err      error
	builders []*MessageStatusUpdateCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageStatusUpdate entities in the database.
func (_c *MessageStatusUpdateCreateBulk) Save(ctx context.Context) ([]*MessageStatusUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageStatusUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageStatusUpdateMutation)
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
func (_c *MessageStatusUpdateCreateBulk) SaveX(ctx context.Context) []*MessageStatusUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageStatusUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageStatusUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageStatusUpdate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageStatusUpdateUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageStatusUpdateCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageStatusUpdateUpsertBulk {
	_c.conflict = opts
	return &MessageStatusUpdateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageStatusUpdateCreateBulk) OnConflictColumns(columns ...string) *MessageStatusUpdateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageStatusUpdateUpsertBulk{
		create: _c,
	}
}

// MessageStatusUpdateUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageStatusUpdate nodes.
type MessageStatusUpdateUpsertBulk struct {
	create *MessageStatusUpdateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagestatusupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageStatusUpdateUpsertBulk) UpdateNewValues() *MessageStatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(messagestatusupdate.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(messagestatusupdate.FieldMessageID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(messagestatusupdate.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(messagestatusupdate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageStatusUpdate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageStatusUpdateUpsertBulk) Ignore() *MessageStatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageStatusUpdateUpsertBulk) DoNothing() *MessageStatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageStatusUpdateCreateBulk.OnConflict
// documentation for more info.
func (u *MessageStatusUpdateUpsertBulk) Update(set func(*MessageStatusUpdateUpsert)) *MessageStatusUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageStatusUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *MessageStatusUpdateUpsertBulk) SetStatus(v messagestatusupdate.Status) *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertBulk) UpdateStatus() *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateStatus()
	})
}

// SetParticipantJid sets the "participant_jid" field.
func (u *MessageStatusUpdateUpsertBulk) SetParticipantJid(v string) *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetParticipantJid(v)
	})
}

// UpdateParticipantJid sets the "participant_jid" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertBulk) UpdateParticipantJid() *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateParticipantJid()
	})
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (u *MessageStatusUpdateUpsertBulk) ClearParticipantJid() *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.ClearParticipantJid()
	})
}

// SetStatusTs sets the "status_ts" field.
func (u *MessageStatusUpdateUpsertBulk) SetStatusTs(v time.Time) *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.SetStatusTs(v)
	})
}

// UpdateStatusTs sets the "status_ts" field to the value that was provided on create.
func (u *MessageStatusUpdateUpsertBulk) UpdateStatusTs() *MessageStatusUpdateUpsertBulk {
	return u.Update(func(s *MessageStatusUpdateUpsert) {
		s.UpdateStatusTs()
	})
}

// Exec executes the query.
func (u *MessageStatusUpdateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageStatusUpdateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageStatusUpdateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageStatusUpdateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
