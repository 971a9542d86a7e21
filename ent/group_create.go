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

// GroupCreate is the builder for creating a Group entity.
type GroupCreate struct {
	config
	mutation *GroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupJid sets the "group_jid" field.
func (_c *GroupCreate) SetGroupJid(v string) *GroupCreate {
	_c.mutation.SetGroupJid(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *GroupCreate) SetInstanceID(v string) *GroupCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GroupCreate) SetSubject(v string) *GroupCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *GroupCreate) SetNillableSubject(v *string) *GroupCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (_c *GroupCreate) SetSubjectAuthoritative(v bool) *GroupCreate {
	_c.mutation.SetSubjectAuthoritative(v)
	return _c
}

// SetNillableSubjectAuthoritative sets the "subject_authoritative" field if the given value is not nil.
func (_c *GroupCreate) SetNillableSubjectAuthoritative(v *bool) *GroupCreate {
	if v != nil {
		_c.SetSubjectAuthoritative(*v)
	}
	return _c
}

// SetOwnerJid sets the "owner_jid" field.
func (_c *GroupCreate) SetOwnerJid(v string) *GroupCreate {
	_c.mutation.SetOwnerJid(v)
	return _c
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_c *GroupCreate) SetNillableOwnerJid(v *string) *GroupCreate {
	if v != nil {
		_c.SetOwnerJid(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *GroupCreate) SetDescription(v string) *GroupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GroupCreate) SetNillableDescription(v *string) *GroupCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreationTs sets the "creation_ts" field.
func (_c *GroupCreate) SetCreationTs(v time.Time) *GroupCreate {
	_c.mutation.SetCreationTs(v)
	return _c
}

// SetNillableCreationTs sets the "creation_ts" field if the given value is not nil.
func (_c *GroupCreate) SetNillableCreationTs(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetCreationTs(*v)
	}
	return _c
}

// SetIsLocked sets the "is_locked" field.
func (_c *GroupCreate) SetIsLocked(v bool) *GroupCreate {
	_c.mutation.SetIsLocked(v)
	return _c
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_c *GroupCreate) SetNillableIsLocked(v *bool) *GroupCreate {
	if v != nil {
		_c.SetIsLocked(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupCreate) SetCreatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableCreatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupCreate) SetUpdatedAt(v time.Time) *GroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupCreate) SetNillableUpdatedAt(v *time.Time) *GroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupCreate) SetID(v string) *GroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *GroupCreate) SetInstance(v *Instance) *GroupCreate {
	return _c.SetInstanceID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the GroupParticipant entity by IDs.
func (_c *GroupCreate) AddParticipantIDs(ids ...string) *GroupCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the GroupParticipant entity.
func (_c *GroupCreate) AddParticipants(v ...*GroupParticipant) *GroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_c *GroupCreate) Mutation() *GroupMutation {
	return _c.mutation
}

// Save creates the Group in the database.
func (_c *GroupCreate) Save(ctx context.Context) (*Group, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupCreate) SaveX(ctx context.Context) *Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupCreate) defaults() {
	if _, ok := _c.mutation.SubjectAuthoritative(); !ok {
		v := group.DefaultSubjectAuthoritative
		_c.mutation.SetSubjectAuthoritative(v)
	}
	if _, ok := _c.mutation.IsLocked(); !ok {
		v := group.DefaultIsLocked
		_c.mutation.SetIsLocked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := group.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := group.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupCreate) check() error {
	if _, ok := _c.mutation.GroupJid(); !ok {
		return &ValidationError{Name: "group_jid", err: errors.New(`ent: missing required field "Group.group_jid"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "Group.instance_id"`)}
	}
	if _, ok := _c.mutation.SubjectAuthoritative(); !ok {
		return &ValidationError{Name: "subject_authoritative", err: errors.New(`ent: missing required field "Group.subject_authoritative"`)}
	}
	if _, ok := _c.mutation.IsLocked(); !ok {
		return &ValidationError{Name: "is_locked", err: errors.New(`ent: missing required field "Group.is_locked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Group.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Group.updated_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "Group.instance"`)}
	}
	return nil
}

func (_c *GroupCreate) sqlSave(ctx context.Context) (*Group, error) {
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
			return nil, fmt.Errorf("unexpected Group.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupCreate) createSpec() (*Group, *sqlgraph.CreateSpec) {
	var (
		_node = &Group{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(group.Table, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GroupJid(); ok {
		_spec.SetField(group.FieldGroupJid, field.TypeString, value)
		_node.GroupJid = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(group.FieldSubject, field.TypeString, value)
		_node.Subject = &value
	}
	if value, ok := _c.mutation.SubjectAuthoritative(); ok {
		_spec.SetField(group.FieldSubjectAuthoritative, field.TypeBool, value)
		_node.SubjectAuthoritative = value
	}
	if value, ok := _c.mutation.OwnerJid(); ok {
		_spec.SetField(group.FieldOwnerJid, field.TypeString, value)
		_node.OwnerJid = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreationTs(); ok {
		_spec.SetField(group.FieldCreationTs, field.TypeTime, value)
		_node.CreationTs = &value
	}
	if value, ok := _c.mutation.IsLocked(); ok {
		_spec.SetField(group.FieldIsLocked, field.TypeBool, value)
		_node.IsLocked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(group.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   group.InstanceTable,
			Columns: []string{group.InstanceColumn},
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
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   group.ParticipantsTable,
			Columns: []string{group.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Group.Create().
//		SetGroupJid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupUpsert) {
//			SetGroupJid(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupCreate) OnConflict(opts ...sql.ConflictOption) *GroupUpsertOne {
	_c.conflict = opts
	return &GroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupCreate) OnConflictColumns(columns ...string) *GroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupUpsertOne{
		create: _c,
	}
}

type (
	// GroupUpsertOne is the builder for "upsert"-ing
	//  one Group node.
	GroupUpsertOne struct {
		create *GroupCreate
	}

	// GroupUpsert is the "OnConflict" setter.
	GroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubject sets the "subject" field.
func (u *GroupUpsert) SetSubject(v string) *GroupUpsert {
	u.Set(group.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *GroupUpsert) UpdateSubject() *GroupUpsert {
	u.SetExcluded(group.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *GroupUpsert) ClearSubject() *GroupUpsert {
	u.SetNull(group.FieldSubject)
	return u
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (u *GroupUpsert) SetSubjectAuthoritative(v bool) *GroupUpsert {
	u.Set(group.FieldSubjectAuthoritative, v)
	return u
}

// UpdateSubjectAuthoritative sets the "subject_authoritative" field to the value that was provided on create.
func (u *GroupUpsert) UpdateSubjectAuthoritative() *GroupUpsert {
	u.SetExcluded(group.FieldSubjectAuthoritative)
	return u
}

// SetOwnerJid sets the "owner_jid" field.
func (u *GroupUpsert) SetOwnerJid(v string) *GroupUpsert {
	u.Set(group.FieldOwnerJid, v)
	return u
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *GroupUpsert) UpdateOwnerJid() *GroupUpsert {
	u.SetExcluded(group.FieldOwnerJid)
	return u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *GroupUpsert) ClearOwnerJid() *GroupUpsert {
	u.SetNull(group.FieldOwnerJid)
	return u
}

// SetDescription sets the "description" field.
func (u *GroupUpsert) SetDescription(v string) *GroupUpsert {
	u.Set(group.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsert) UpdateDescription() *GroupUpsert {
	u.SetExcluded(group.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsert) ClearDescription() *GroupUpsert {
	u.SetNull(group.FieldDescription)
	return u
}

// SetCreationTs sets the "creation_ts" field.
func (u *GroupUpsert) SetCreationTs(v time.Time) *GroupUpsert {
	u.Set(group.FieldCreationTs, v)
	return u
}

// UpdateCreationTs sets the "creation_ts" field to the value that was provided on create.
func (u *GroupUpsert) UpdateCreationTs() *GroupUpsert {
	u.SetExcluded(group.FieldCreationTs)
	return u
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (u *GroupUpsert) ClearCreationTs() *GroupUpsert {
	u.SetNull(group.FieldCreationTs)
	return u
}

// SetIsLocked sets the "is_locked" field.
func (u *GroupUpsert) SetIsLocked(v bool) *GroupUpsert {
	u.Set(group.FieldIsLocked, v)
	return u
}

// UpdateIsLocked sets the "is_locked" field to the value that was provided on create.
func (u *GroupUpsert) UpdateIsLocked() *GroupUpsert {
	u.SetExcluded(group.FieldIsLocked)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsert) SetUpdatedAt(v time.Time) *GroupUpsert {
	u.Set(group.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsert) UpdateUpdatedAt() *GroupUpsert {
	u.SetExcluded(group.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(group.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupUpsertOne) UpdateNewValues() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(group.FieldID)
		}
		if _, exists := u.create.mutation.GroupJid(); exists {
			s.SetIgnore(group.FieldGroupJid)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(group.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(group.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GroupUpsertOne) Ignore() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupUpsertOne) DoNothing() *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupCreate.OnConflict
// documentation for more info.
func (u *GroupUpsertOne) Update(set func(*GroupUpsert)) *GroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *GroupUpsertOne) SetSubject(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateSubject() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *GroupUpsertOne) ClearSubject() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearSubject()
	})
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (u *GroupUpsertOne) SetSubjectAuthoritative(v bool) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetSubjectAuthoritative(v)
	})
}

// UpdateSubjectAuthoritative sets the "subject_authoritative" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateSubjectAuthoritative() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSubjectAuthoritative()
	})
}

// SetOwnerJid sets the "owner_jid" field.
func (u *GroupUpsertOne) SetOwnerJid(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetOwnerJid(v)
	})
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateOwnerJid() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateOwnerJid()
	})
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *GroupUpsertOne) ClearOwnerJid() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearOwnerJid()
	})
}

// SetDescription sets the "description" field.
func (u *GroupUpsertOne) SetDescription(v string) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateDescription() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsertOne) ClearDescription() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearDescription()
	})
}

// SetCreationTs sets the "creation_ts" field.
func (u *GroupUpsertOne) SetCreationTs(v time.Time) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetCreationTs(v)
	})
}

// UpdateCreationTs sets the "creation_ts" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateCreationTs() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateCreationTs()
	})
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (u *GroupUpsertOne) ClearCreationTs() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.ClearCreationTs()
	})
}

// SetIsLocked sets the "is_locked" field.
func (u *GroupUpsertOne) SetIsLocked(v bool) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetIsLocked(v)
	})
}

// UpdateIsLocked sets the "is_locked" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateIsLocked() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateIsLocked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsertOne) SetUpdatedAt(v time.Time) *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsertOne) UpdateUpdatedAt() *GroupUpsertOne {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GroupUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GroupUpsertOne.ID is not supported by MySQL driver. Use GroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GroupUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GroupCreateBulk is the builder for creating many Group entities in bulk.
type GroupCreateBulk struct {
	config
	err      error
	builders []*GroupCreate
	conflict []sql.ConflictOption
}

// Save creates the Group entities in the database.
func (_c *GroupCreateBulk) Save(ctx context.Context) ([]*Group, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Group, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupMutation)
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
func (_c *GroupCreateBulk) SaveX(ctx context.Context) []*Group {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Group.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupUpsert) {
//			SetGroupJid(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *GroupUpsertBulk {
	_c.conflict = opts
	return &GroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupCreateBulk) OnConflictColumns(columns ...string) *GroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupUpsertBulk{
		create: _c,
	}
}

// GroupUpsertBulk is the builder for "upsert"-ing
// a bulk of Group nodes.
type GroupUpsertBulk struct {
	create *GroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(group.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupUpsertBulk) UpdateNewValues() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(group.FieldID)
			}
			if _, exists := b.mutation.GroupJid(); exists {
				s.SetIgnore(group.FieldGroupJid)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(group.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(group.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Group.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GroupUpsertBulk) Ignore() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupUpsertBulk) DoNothing() *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupCreateBulk.OnConflict
// documentation for more info.
func (u *GroupUpsertBulk) Update(set func(*GroupUpsert)) *GroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *GroupUpsertBulk) SetSubject(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateSubject() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *GroupUpsertBulk) ClearSubject() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearSubject()
	})
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (u *GroupUpsertBulk) SetSubjectAuthoritative(v bool) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetSubjectAuthoritative(v)
	})
}

// UpdateSubjectAuthoritative sets the "subject_authoritative" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateSubjectAuthoritative() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateSubjectAuthoritative()
	})
}

// SetOwnerJid sets the "owner_jid" field.
func (u *GroupUpsertBulk) SetOwnerJid(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetOwnerJid(v)
	})
}

// UpdateOwnerJid sets the "owner_jid" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateOwnerJid() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateOwnerJid()
	})
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (u *GroupUpsertBulk) ClearOwnerJid() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearOwnerJid()
	})
}

// SetDescription sets the "description" field.
func (u *GroupUpsertBulk) SetDescription(v string) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateDescription() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GroupUpsertBulk) ClearDescription() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearDescription()
	})
}

// SetCreationTs sets the "creation_ts" field.
func (u *GroupUpsertBulk) SetCreationTs(v time.Time) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetCreationTs(v)
	})
}

// UpdateCreationTs sets the "creation_ts" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateCreationTs() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateCreationTs()
	})
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (u *GroupUpsertBulk) ClearCreationTs() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.ClearCreationTs()
	})
}

// SetIsLocked sets the "is_locked" field.
func (u *GroupUpsertBulk) SetIsLocked(v bool) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetIsLocked(v)
	})
}

// UpdateIsLocked sets the "is_locked" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateIsLocked() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateIsLocked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupUpsertBulk) SetUpdatedAt(v time.Time) *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupUpsertBulk) UpdateUpdatedAt() *GroupUpsertBulk {
	return u.Update(func(s *GroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
