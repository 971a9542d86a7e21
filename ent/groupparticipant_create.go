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
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
)

// GroupParticipantCreate is the builder for creating a GroupParticipant entity.
type GroupParticipantCreate struct {
	config
	mutation *GroupParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *GroupParticipantCreate) SetGroupID(v string) *GroupParticipantCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetParticipantJid sets the "participant_jid" field.
func (_c *GroupParticipantCreate) SetParticipantJid(v string) *GroupParticipantCreate {
	_c.mutation.SetParticipantJid(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *GroupParticipantCreate) SetInstanceID(v string) *GroupParticipantCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetIsAdmin sets the "is_admin" field.
func (_c *GroupParticipantCreate) SetIsAdmin(v bool) *GroupParticipantCreate {
	_c.mutation.SetIsAdmin(v)
	return _c
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_c *GroupParticipantCreate) SetNillableIsAdmin(v *bool) *GroupParticipantCreate {
	if v != nil {
		_c.SetIsAdmin(*v)
	}
	return _c
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (_c *GroupParticipantCreate) SetIsSuperAdmin(v bool) *GroupParticipantCreate {
	_c.mutation.SetIsSuperAdmin(v)
	return _c
}

// SetNillableIsSuperAdmin sets the "is_super_admin" field if the given value is not nil.
func (_c *GroupParticipantCreate) SetNillableIsSuperAdmin(v *bool) *GroupParticipantCreate {
	if v != nil {
		_c.SetIsSuperAdmin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupParticipantCreate) SetCreatedAt(v time.Time) *GroupParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupParticipantCreate) SetNillableCreatedAt(v *time.Time) *GroupParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupParticipantCreate) SetUpdatedAt(v time.Time) *GroupParticipantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupParticipantCreate) SetNillableUpdatedAt(v *time.Time) *GroupParticipantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupParticipantCreate) SetID(v string) *GroupParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroup sets the "group" edge to the Group entity.
func (_c *GroupParticipantCreate) SetGroup(v *Group) *GroupParticipantCreate {
	return _c.SetGroupID(v.ID)
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *GroupParticipantCreate) SetInstance(v *Instance) *GroupParticipantCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the GroupParticipantMutation object of the builder.
func (_c *GroupParticipantCreate) Mutation() *GroupParticipantMutation {
	return _c.mutation
}

// Save creates the GroupParticipant in the database.
func (_c *GroupParticipantCreate) Save(ctx context.Context) (*GroupParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupParticipantCreate) SaveX(ctx context.Context) *GroupParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupParticipantCreate) defaults() {
	if _, ok := _c.mutation.IsAdmin(); !ok {
		v := groupparticipant.DefaultIsAdmin
		_c.mutation.SetIsAdmin(v)
	}
	if _, ok := _c.mutation.IsSuperAdmin(); !ok {
		v := groupparticipant.DefaultIsSuperAdmin
		_c.mutation.SetIsSuperAdmin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := groupparticipant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := groupparticipant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupParticipantCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "GroupParticipant.group_id"`)}
	}
	if _, ok := _c.mutation.ParticipantJid(); !ok {
		return &ValidationError{Name: "participant_jid", err: errors.New(`ent: missing required field "GroupParticipant.participant_jid"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "GroupParticipant.instance_id"`)}
	}
	if _, ok := _c.mutation.IsAdmin(); !ok {
		return &ValidationError{Name: "is_admin", err: errors.New(`ent: missing required field "GroupParticipant.is_admin"`)}
	}
	if _, ok := _c.mutation.IsSuperAdmin(); !ok {
		return &ValidationError{Name: "is_super_admin", err: errors.New(`ent: missing required field "GroupParticipant.is_super_admin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GroupParticipant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GroupParticipant.updated_at"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "GroupParticipant.group"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "GroupParticipant.instance"`)}
	}
	return nil
}

func (_c *GroupParticipantCreate) sqlSave(ctx context.Context) (*GroupParticipant, error) {
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
			return nil, fmt.Errorf("unexpected GroupParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupParticipantCreate) createSpec() (*GroupParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupparticipant.Table, sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantJid(); ok {
		_spec.SetField(groupparticipant.FieldParticipantJid, field.TypeString, value)
		_node.ParticipantJid = value
	}
	if value, ok := _c.mutation.IsAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsAdmin, field.TypeBool, value)
		_node.IsAdmin = value
	}
	if value, ok := _c.mutation.IsSuperAdmin(); ok {
		_spec.SetField(groupparticipant.FieldIsSuperAdmin, field.TypeBool, value)
		_node.IsSuperAdmin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(groupparticipant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(groupparticipant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupparticipant.GroupTable,
			Columns: []string{groupparticipant.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupparticipant.InstanceTable,
			Columns: []string{groupparticipant.InstanceColumn},
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
//	client.GroupParticipant.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupParticipantUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupParticipantCreate) OnConflict(opts ...sql.ConflictOption) *GroupParticipantUpsertOne {
	_c.conflict = opts
	return &GroupParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupParticipantCreate) OnConflictColumns(columns ...string) *GroupParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupParticipantUpsertOne{
		create: _c,
	}
}

type (
	// GroupParticipantUpsertOne is the builder for "upsert"-ing
	//  one GroupParticipant node.
	GroupParticipantUpsertOne struct {
		create *GroupParticipantCreate
	}

	// GroupParticipantUpsert is the "OnConflict" setter.
	GroupParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetIsAdmin sets the "is_admin" field.
func (u *GroupParticipantUpsert) SetIsAdmin(v bool) *GroupParticipantUpsert {
	u.Set(groupparticipant.FieldIsAdmin, v)
	return u
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsert) UpdateIsAdmin() *GroupParticipantUpsert {
	u.SetExcluded(groupparticipant.FieldIsAdmin)
	return u
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (u *GroupParticipantUpsert) SetIsSuperAdmin(v bool) *GroupParticipantUpsert {
	u.Set(groupparticipant.FieldIsSuperAdmin, v)
	return u
}

// UpdateIsSuperAdmin sets the "is_super_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsert) UpdateIsSuperAdmin() *GroupParticipantUpsert {
	u.SetExcluded(groupparticipant.FieldIsSuperAdmin)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupParticipantUpsert) SetUpdatedAt(v time.Time) *GroupParticipantUpsert {
	u.Set(groupparticipant.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupParticipantUpsert) UpdateUpdatedAt() *GroupParticipantUpsert {
	u.SetExcluded(groupparticipant.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(groupparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupParticipantUpsertOne) UpdateNewValues() *GroupParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(groupparticipant.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(groupparticipant.FieldGroupID)
		}
		if _, exists := u.create.mutation.ParticipantJid(); exists {
			s.SetIgnore(groupparticipant.FieldParticipantJid)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(groupparticipant.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(groupparticipant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GroupParticipantUpsertOne) Ignore() *GroupParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupParticipantUpsertOne) DoNothing() *GroupParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupParticipantCreate.OnConflict
// documentation for more info.
func (u *GroupParticipantUpsertOne) Update(set func(*GroupParticipantUpsert)) *GroupParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsAdmin sets the "is_admin" field.
func (u *GroupParticipantUpsertOne) SetIsAdmin(v bool) *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetIsAdmin(v)
	})
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsertOne) UpdateIsAdmin() *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateIsAdmin()
	})
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (u *GroupParticipantUpsertOne) SetIsSuperAdmin(v bool) *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetIsSuperAdmin(v)
	})
}

// UpdateIsSuperAdmin sets the "is_super_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsertOne) UpdateIsSuperAdmin() *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateIsSuperAdmin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupParticipantUpsertOne) SetUpdatedAt(v time.Time) *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupParticipantUpsertOne) UpdateUpdatedAt() *GroupParticipantUpsertOne {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GroupParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GroupParticipantUpsertOne.ID is not supported by MySQL driver. Use GroupParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GroupParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GroupParticipantCreateBulk is the builder for creating many GroupParticipant entities in bulk.
type GroupParticipantCreateBulk struct {
	config
	err      error
	builders []*GroupParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the GroupParticipant entities in the database.
func (_c *GroupParticipantCreateBulk) Save(ctx context.Context) ([]*GroupParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupParticipantMutation)
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
func (_c *GroupParticipantCreateBulk) SaveX(ctx context.Context) []*GroupParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GroupParticipant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupParticipantUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *GroupParticipantUpsertBulk {
	_c.conflict = opts
	return &GroupParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupParticipantCreateBulk) OnConflictColumns(columns ...string) *GroupParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupParticipantUpsertBulk{
		create: _c,
	}
}

// GroupParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of GroupParticipant nodes.
type GroupParticipantUpsertBulk struct {
	create *GroupParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(groupparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupParticipantUpsertBulk) UpdateNewValues() *GroupParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(groupparticipant.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(groupparticipant.FieldGroupID)
			}
			if _, exists := b.mutation.ParticipantJid(); exists {
				s.SetIgnore(groupparticipant.FieldParticipantJid)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(groupparticipant.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(groupparticipant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupParticipant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GroupParticipantUpsertBulk) Ignore() *GroupParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupParticipantUpsertBulk) DoNothing() *GroupParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *GroupParticipantUpsertBulk) Update(set func(*GroupParticipantUpsert)) *GroupParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsAdmin sets the "is_admin" field.
func (u *GroupParticipantUpsertBulk) SetIsAdmin(v bool) *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetIsAdmin(v)
	})
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsertBulk) UpdateIsAdmin() *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateIsAdmin()
	})
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (u *GroupParticipantUpsertBulk) SetIsSuperAdmin(v bool) *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetIsSuperAdmin(v)
	})
}

// UpdateIsSuperAdmin sets the "is_super_admin" field to the value that was provided on create.
func (u *GroupParticipantUpsertBulk) UpdateIsSuperAdmin() *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateIsSuperAdmin()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupParticipantUpsertBulk) SetUpdatedAt(v time.Time) *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupParticipantUpsertBulk) UpdateUpdatedAt() *GroupParticipantUpsertBulk {
	return u.Update(func(s *GroupParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GroupParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
