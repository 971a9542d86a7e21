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
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/instance"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJid sets the "jid" field.
func (_c *ContactCreate) SetJid(v string) *ContactCreate {
	_c.mutation.SetJid(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *ContactCreate) SetInstanceID(v string) *ContactCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetPushName sets the "push_name" field.
func (_c *ContactCreate) SetPushName(v string) *ContactCreate {
	_c.mutation.SetPushName(v)
	return _c
}

// SetNillablePushName sets the "push_name" field if the given value is not nil.
func (_c *ContactCreate) SetNillablePushName(v *string) *ContactCreate {
	if v != nil {
		_c.SetPushName(*v)
	}
	return _c
}

// SetVerifiedName sets the "verified_name" field.
func (_c *ContactCreate) SetVerifiedName(v string) *ContactCreate {
	_c.mutation.SetVerifiedName(v)
	return _c
}

// SetNillableVerifiedName sets the "verified_name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableVerifiedName(v *string) *ContactCreate {
	if v != nil {
		_c.SetVerifiedName(*v)
	}
	return _c
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (_c *ContactCreate) SetProfilePictureURL(v string) *ContactCreate {
	_c.mutation.SetProfilePictureURL(v)
	return _c
}

// SetNillableProfilePictureURL sets the "profile_picture_url" field if the given value is not nil.
func (_c *ContactCreate) SetNillableProfilePictureURL(v *string) *ContactCreate {
	if v != nil {
		_c.SetProfilePictureURL(*v)
	}
	return _c
}

// SetIsBusiness sets the "is_business" field.
func (_c *ContactCreate) SetIsBusiness(v bool) *ContactCreate {
	_c.mutation.SetIsBusiness(v)
	return _c
}

// SetNillableIsBusiness sets the "is_business" field if the given value is not nil.
func (_c *ContactCreate) SetNillableIsBusiness(v *bool) *ContactCreate {
	if v != nil {
		_c.SetIsBusiness(*v)
	}
	return _c
}

// SetIsMe sets the "is_me" field.
func (_c *ContactCreate) SetIsMe(v bool) *ContactCreate {
	_c.mutation.SetIsMe(v)
	return _c
}

// SetNillableIsMe sets the "is_me" field if the given value is not nil.
func (_c *ContactCreate) SetNillableIsMe(v *bool) *ContactCreate {
	if v != nil {
		_c.SetIsMe(*v)
	}
	return _c
}

// SetIsBlocked sets the "is_blocked" field.
func (_c *ContactCreate) SetIsBlocked(v bool) *ContactCreate {
	_c.mutation.SetIsBlocked(v)
	return _c
}

// SetNillableIsBlocked sets the "is_blocked" field if the given value is not nil.
func (_c *ContactCreate) SetNillableIsBlocked(v *bool) *ContactCreate {
	if v != nil {
		_c.SetIsBlocked(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ContactCreate) SetFirstSeenAt(v time.Time) *ContactCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFirstSeenAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *ContactCreate) SetLastUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLastUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactCreate) SetID(v string) *ContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *ContactCreate) SetInstance(v *Instance) *ContactCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.IsBusiness(); !ok {
		v := contact.DefaultIsBusiness
		_c.mutation.SetIsBusiness(v)
	}
	if _, ok := _c.mutation.IsMe(); !ok {
		v := contact.DefaultIsMe
		_c.mutation.SetIsMe(v)
	}
	if _, ok := _c.mutation.IsBlocked(); !ok {
		v := contact.DefaultIsBlocked
		_c.mutation.SetIsBlocked(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := contact.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := contact.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.Jid(); !ok {
		return &ValidationError{Name: "jid", err: errors.New(`ent: missing required field "Contact.jid"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "Contact.instance_id"`)}
	}
	if _, ok := _c.mutation.IsBusiness(); !ok {
		return &ValidationError{Name: "is_business", err: errors.New(`ent: missing required field "Contact.is_business"`)}
	}
	if _, ok := _c.mutation.IsMe(); !ok {
		return &ValidationError{Name: "is_me", err: errors.New(`ent: missing required field "Contact.is_me"`)}
	}
	if _, ok := _c.mutation.IsBlocked(); !ok {
		return &ValidationError{Name: "is_blocked", err: errors.New(`ent: missing required field "Contact.is_blocked"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Contact.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "Contact.last_updated_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "Contact.instance"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
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
			return nil, fmt.Errorf("unexpected Contact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Jid(); ok {
		_spec.SetField(contact.FieldJid, field.TypeString, value)
		_node.Jid = value
	}
	if value, ok := _c.mutation.PushName(); ok {
		_spec.SetField(contact.FieldPushName, field.TypeString, value)
		_node.PushName = value
	}
	if value, ok := _c.mutation.VerifiedName(); ok {
		_spec.SetField(contact.FieldVerifiedName, field.TypeString, value)
		_node.VerifiedName = value
	}
	if value, ok := _c.mutation.ProfilePictureURL(); ok {
		_spec.SetField(contact.FieldProfilePictureURL, field.TypeString, value)
		_node.ProfilePictureURL = value
	}
	if value, ok := _c.mutation.IsBusiness(); ok {
		_spec.SetField(contact.FieldIsBusiness, field.TypeBool, value)
		_node.IsBusiness = value
	}
	if value, ok := _c.mutation.IsMe(); ok {
		_spec.SetField(contact.FieldIsMe, field.TypeBool, value)
		_node.IsMe = value
	}
	if value, ok := _c.mutation.IsBlocked(); ok {
		_spec.SetField(contact.FieldIsBlocked, field.TypeBool, value)
		_node.IsBlocked = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(contact.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(contact.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.InstanceTable,
			Columns: []string{contact.InstanceColumn},
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
//	client.Contact.Create().
//		SetJid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContactUpsert) {
//			SetJid(v+v).
//		}).
//		Exec(ctx)
func (_c *ContactCreate) OnConflict(opts ...sql.ConflictOption) *ContactUpsertOne {
	_c.conflict = opts
	return &ContactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContactCreate) OnConflictColumns(columns ...string) *ContactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContactUpsertOne{
		create: _c,
	}
}

type (
	// ContactUpsertOne is the builder for "upsert"-ing
	//  one Contact node.
	ContactUpsertOne struct {
		create *ContactCreate
	}

	// ContactUpsert is the "OnConflict" setter.
	ContactUpsert struct {
		*sql.UpdateSet
	}
)

// SetPushName sets the "push_name" field.
func (u *ContactUpsert) SetPushName(v string) *ContactUpsert {
	u.Set(contact.FieldPushName, v)
	return u
}

// UpdatePushName sets the "push_name" field to the value that was provided on create.
func (u *ContactUpsert) UpdatePushName() *ContactUpsert {
	u.SetExcluded(contact.FieldPushName)
	return u
}

// ClearPushName clears the value of the "push_name" field.
func (u *ContactUpsert) ClearPushName() *ContactUpsert {
	u.SetNull(contact.FieldPushName)
	return u
}

// SetVerifiedName sets the "verified_name" field.
func (u *ContactUpsert) SetVerifiedName(v string) *ContactUpsert {
	u.Set(contact.FieldVerifiedName, v)
	return u
}

// UpdateVerifiedName sets the "verified_name" field to the value that was provided on create.
func (u *ContactUpsert) UpdateVerifiedName() *ContactUpsert {
	u.SetExcluded(contact.FieldVerifiedName)
	return u
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (u *ContactUpsert) ClearVerifiedName() *ContactUpsert {
	u.SetNull(contact.FieldVerifiedName)
	return u
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (u *ContactUpsert) SetProfilePictureURL(v string) *ContactUpsert {
	u.Set(contact.FieldProfilePictureURL, v)
	return u
}

// UpdateProfilePictureURL sets the "profile_picture_url" field to the value that was provided on create.
func (u *ContactUpsert) UpdateProfilePictureURL() *ContactUpsert {
	u.SetExcluded(contact.FieldProfilePictureURL)
	return u
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (u *ContactUpsert) ClearProfilePictureURL() *ContactUpsert {
	u.SetNull(contact.FieldProfilePictureURL)
	return u
}

// SetIsBusiness sets the "is_business" field.
func (u *ContactUpsert) SetIsBusiness(v bool) *ContactUpsert {
	u.Set(contact.FieldIsBusiness, v)
	return u
}

// UpdateIsBusiness sets the "is_business" field to the value that was provided on create.
func (u *ContactUpsert) UpdateIsBusiness() *ContactUpsert {
	u.SetExcluded(contact.FieldIsBusiness)
	return u
}

// SetIsMe sets the "is_me" field.
func (u *ContactUpsert) SetIsMe(v bool) *ContactUpsert {
	u.Set(contact.FieldIsMe, v)
	return u
}

// UpdateIsMe sets the "is_me" field to the value that was provided on create.
func (u *ContactUpsert) UpdateIsMe() *ContactUpsert {
	u.SetExcluded(contact.FieldIsMe)
	return u
}

// SetIsBlocked sets the "is_blocked" field.
func (u *ContactUpsert) SetIsBlocked(v bool) *ContactUpsert {
	u.Set(contact.FieldIsBlocked, v)
	return u
}

// UpdateIsBlocked sets the "is_blocked" field to the value that was provided on create.
func (u *ContactUpsert) UpdateIsBlocked() *ContactUpsert {
	u.SetExcluded(contact.FieldIsBlocked)
	return u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (u *ContactUpsert) SetLastUpdatedAt(v time.Time) *ContactUpsert {
	u.Set(contact.FieldLastUpdatedAt, v)
	return u
}

// UpdateLastUpdatedAt sets the "last_updated_at" field to the value that was provided on create.
func (u *ContactUpsert) UpdateLastUpdatedAt() *ContactUpsert {
	u.SetExcluded(contact.FieldLastUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Contact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContactUpsertOne) UpdateNewValues() *ContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contact.FieldID)
		}
		if _, exists := u.create.mutation.Jid(); exists {
			s.SetIgnore(contact.FieldJid)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(contact.FieldInstanceID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(contact.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContactUpsertOne) Ignore() *ContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContactUpsertOne) DoNothing() *ContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContactCreate.OnConflict
// documentation for more info.
func (u *ContactUpsertOne) Update(set func(*ContactUpsert)) *ContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetPushName sets the "push_name" field.
func (u *ContactUpsertOne) SetPushName(v string) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetPushName(v)
	})
}

// UpdatePushName sets the "push_name" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdatePushName() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdatePushName()
	})
}

// ClearPushName clears the value of the "push_name" field.
func (u *ContactUpsertOne) ClearPushName() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.ClearPushName()
	})
}

// SetVerifiedName sets the "verified_name" field.
func (u *ContactUpsertOne) SetVerifiedName(v string) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetVerifiedName(v)
	})
}

// UpdateVerifiedName sets the "verified_name" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateVerifiedName() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateVerifiedName()
	})
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (u *ContactUpsertOne) ClearVerifiedName() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.ClearVerifiedName()
	})
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (u *ContactUpsertOne) SetProfilePictureURL(v string) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetProfilePictureURL(v)
	})
}

// UpdateProfilePictureURL sets the "profile_picture_url" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateProfilePictureURL() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateProfilePictureURL()
	})
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (u *ContactUpsertOne) ClearProfilePictureURL() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.ClearProfilePictureURL()
	})
}

// SetIsBusiness sets the "is_business" field.
func (u *ContactUpsertOne) SetIsBusiness(v bool) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsBusiness(v)
	})
}

// UpdateIsBusiness sets the "is_business" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateIsBusiness() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsBusiness()
	})
}

// SetIsMe sets the "is_me" field.
func (u *ContactUpsertOne) SetIsMe(v bool) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsMe(v)
	})
}

// UpdateIsMe sets the "is_me" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateIsMe() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsMe()
	})
}

// SetIsBlocked sets the "is_blocked" field.
func (u *ContactUpsertOne) SetIsBlocked(v bool) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsBlocked(v)
	})
}

// UpdateIsBlocked sets the "is_blocked" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateIsBlocked() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsBlocked()
	})
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (u *ContactUpsertOne) SetLastUpdatedAt(v time.Time) *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.SetLastUpdatedAt(v)
	})
}

// UpdateLastUpdatedAt sets the "last_updated_at" field to the value that was provided on create.
func (u *ContactUpsertOne) UpdateLastUpdatedAt() *ContactUpsertOne {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateLastUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContactUpsertOne.ID is not supported by MySQL driver. Use ContactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
	conflict []sql.ConflictOption
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
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
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContactUpsert) {
//			SetJid(v+v).
//		}).
//		Exec(ctx)
func (_c *ContactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContactUpsertBulk {
	_c.conflict = opts
	return &ContactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContactCreateBulk) OnConflictColumns(columns ...string) *ContactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContactUpsertBulk{
		create: _c,
	}
}

// ContactUpsertBulk is the builder for "upsert"-ing
// a bulk of Contact nodes.
type ContactUpsertBulk struct {
	create *ContactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Contact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContactUpsertBulk) UpdateNewValues() *ContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contact.FieldID)
			}
			if _, exists := b.mutation.Jid(); exists {
				s.SetIgnore(contact.FieldJid)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(contact.FieldInstanceID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(contact.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContactUpsertBulk) Ignore() *ContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContactUpsertBulk) DoNothing() *ContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContactCreateBulk.OnConflict
// documentation for more info.
func (u *ContactUpsertBulk) Update(set func(*ContactUpsert)) *ContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetPushName sets the "push_name" field.
func (u *ContactUpsertBulk) SetPushName(v string) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetPushName(v)
	})
}

// UpdatePushName sets the "push_name" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdatePushName() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdatePushName()
	})
}

// ClearPushName clears the value of the "push_name" field.
func (u *ContactUpsertBulk) ClearPushName() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.ClearPushName()
	})
}

// SetVerifiedName sets the "verified_name" field.
func (u *ContactUpsertBulk) SetVerifiedName(v string) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetVerifiedName(v)
	})
}

// UpdateVerifiedName sets the "verified_name" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateVerifiedName() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateVerifiedName()
	})
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (u *ContactUpsertBulk) ClearVerifiedName() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.ClearVerifiedName()
	})
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (u *ContactUpsertBulk) SetProfilePictureURL(v string) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetProfilePictureURL(v)
	})
}

// UpdateProfilePictureURL sets the "profile_picture_url" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateProfilePictureURL() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateProfilePictureURL()
	})
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (u *ContactUpsertBulk) ClearProfilePictureURL() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.ClearProfilePictureURL()
	})
}

// SetIsBusiness sets the "is_business" field.
func (u *ContactUpsertBulk) SetIsBusiness(v bool) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsBusiness(v)
	})
}

// UpdateIsBusiness sets the "is_business" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateIsBusiness() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsBusiness()
	})
}

// SetIsMe sets the "is_me" field.
func (u *ContactUpsertBulk) SetIsMe(v bool) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsMe(v)
	})
}

// UpdateIsMe sets the "is_me" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateIsMe() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsMe()
	})
}

// SetIsBlocked sets the "is_blocked" field.
func (u *ContactUpsertBulk) SetIsBlocked(v bool) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetIsBlocked(v)
	})
}

// UpdateIsBlocked sets the "is_blocked" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateIsBlocked() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateIsBlocked()
	})
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (u *ContactUpsertBulk) SetLastUpdatedAt(v time.Time) *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.SetLastUpdatedAt(v)
	})
}

// UpdateLastUpdatedAt sets the "last_updated_at" field to the value that was provided on create.
func (u *ContactUpsertBulk) UpdateLastUpdatedAt() *ContactUpsertBulk {
	return u.Update(func(s *ContactUpsert) {
		s.UpdateLastUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
