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
	"github.com/reflexhq/reflex/ent/messagereaction"
)

// MessageReactionCreate is the builder for creating a MessageReaction entity.
type MessageReactionCreate struct {
	config
	mutation *MessageReactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *MessageReactionCreate) SetMessageID(v string) *MessageReactionCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *MessageReactionCreate) SetInstanceID(v string) *MessageReactionCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetReactorJid sets the "reactor_jid" field.
func (_c *MessageReactionCreate) SetReactorJid(v string) *MessageReactionCreate {
	_c.mutation.SetReactorJid(v)
	return _c
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (_c *MessageReactionCreate) SetReactionEmoji(v string) *MessageReactionCreate {
	_c.mutation.SetReactionEmoji(v)
	return _c
}

// SetFromMe sets the "from_me" field.
func (_c *MessageReactionCreate) SetFromMe(v bool) *MessageReactionCreate {
	_c.mutation.SetFromMe(v)
	return _c
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_c *MessageReactionCreate) SetNillableFromMe(v *bool) *MessageReactionCreate {
	if v != nil {
		_c.SetFromMe(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageReactionCreate) SetTimestamp(v time.Time) *MessageReactionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MessageReactionCreate) SetNillableTimestamp(v *time.Time) *MessageReactionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageReactionCreate) SetCreatedAt(v time.Time) *MessageReactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageReactionCreate) SetNillableCreatedAt(v *time.Time) *MessageReactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MessageReactionCreate) SetUpdatedAt(v time.Time) *MessageReactionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MessageReactionCreate) SetNillableUpdatedAt(v *time.Time) *MessageReactionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageReactionCreate) SetID(v string) *MessageReactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *MessageReactionCreate) SetInstance(v *Instance) *MessageReactionCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the MessageReactionMutation object of the builder.
func (_c *MessageReactionCreate) Mutation() *MessageReactionMutation {
	return _c.mutation
}

// Save creates the MessageReaction in the database.
func (_c *MessageReactionCreate) Save(ctx context.Context) (*MessageReaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageReactionCreate) SaveX(ctx context.Context) *MessageReaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageReactionCreate) defaults() {
	if _, ok := _c.mutation.FromMe(); !ok {
		v := messagereaction.DefaultFromMe
		_c.mutation.SetFromMe(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := messagereaction.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagereaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := messagereaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageReactionCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageReaction.message_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "MessageReaction.instance_id"`)}
	}
	if _, ok := _c.mutation.ReactorJid(); !ok {
		return &ValidationError{Name: "reactor_jid", err: errors.New(`ent: missing required field "MessageReaction.reactor_jid"`)}
	}
	if _, ok := _c.mutation.ReactionEmoji(); !ok {
		return &ValidationError{Name: "reaction_emoji", err: errors.New(`ent: missing required field "MessageReaction.reaction_emoji"`)}
	}
	if _, ok := _c.mutation.FromMe(); !ok {
		return &ValidationError{Name: "from_me", err: errors.New(`ent: missing required field "MessageReaction.from_me"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MessageReaction.timestamp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageReaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MessageReaction.updated_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "MessageReaction.instance"`)}
	}
	return nil
}

func (_c *MessageReactionCreate) sqlSave(ctx context.Context) (*MessageReaction, error) {
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
			return nil, fmt.Errorf("unexpected MessageReaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageReactionCreate) createSpec() (*MessageReaction, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageReaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagereaction.Table, sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messagereaction.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ReactorJid(); ok {
		_spec.SetField(messagereaction.FieldReactorJid, field.TypeString, value)
		_node.ReactorJid = value
	}
	if value, ok := _c.mutation.ReactionEmoji(); ok {
		_spec.SetField(messagereaction.FieldReactionEmoji, field.TypeString, value)
		_node.ReactionEmoji = value
	}
	if value, ok := _c.mutation.FromMe(); ok {
		_spec.SetField(messagereaction.FieldFromMe, field.TypeBool, value)
		_node.FromMe = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(messagereaction.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagereaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(messagereaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagereaction.InstanceTable,
			Columns: []string{messagereaction.InstanceColumn},
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
//	client.MessageReaction.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageReactionUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageReactionCreate) OnConflict(opts ...sql.ConflictOption) *MessageReactionUpsertOne {
	_c.conflict = opts
	return &MessageReactionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageReactionCreate) OnConflictColumns(columns ...string) *MessageReactionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageReactionUpsertOne{
		create: _c,
	}
}

type (
	// MessageReactionUpsertOne is the builder for "upsert"-ing
	//  one MessageReaction node.
	MessageReactionUpsertOne struct {
		create *MessageReactionCreate
	}

	// MessageReactionUpsert is the "OnConflict" setter.
	MessageReactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetReactionEmoji sets the "reaction_emoji" field.
func (u *MessageReactionUpsert) SetReactionEmoji(v string) *MessageReactionUpsert {
	u.Set(messagereaction.FieldReactionEmoji, v)
	return u
}

// UpdateReactionEmoji sets the "reaction_emoji" field to the value that was provided on create.
func (u *MessageReactionUpsert) UpdateReactionEmoji() *MessageReactionUpsert {
	u.SetExcluded(messagereaction.FieldReactionEmoji)
	return u
}

// SetFromMe sets the "from_me" field.
func (u *MessageReactionUpsert) SetFromMe(v bool) *MessageReactionUpsert {
	u.Set(messagereaction.FieldFromMe, v)
	return u
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageReactionUpsert) UpdateFromMe() *MessageReactionUpsert {
	u.SetExcluded(messagereaction.FieldFromMe)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageReactionUpsert) SetTimestamp(v time.Time) *MessageReactionUpsert {
	u.Set(messagereaction.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageReactionUpsert) UpdateTimestamp() *MessageReactionUpsert {
	u.SetExcluded(messagereaction.FieldTimestamp)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageReactionUpsert) SetUpdatedAt(v time.Time) *MessageReactionUpsert {
	u.Set(messagereaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageReactionUpsert) UpdateUpdatedAt() *MessageReactionUpsert {
	u.SetExcluded(messagereaction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagereaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageReactionUpsertOne) UpdateNewValues() *MessageReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(messagereaction.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(messagereaction.FieldMessageID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(messagereaction.FieldInstanceID)
		}
		if _, exists := u.create.mutation.ReactorJid(); exists {
			s.SetIgnore(messagereaction.FieldReactorJid)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(messagereaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageReactionUpsertOne) Ignore() *MessageReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageReactionUpsertOne) DoNothing() *MessageReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageReactionCreate.OnConflict
// documentation for more info.
func (u *MessageReactionUpsertOne) Update(set func(*MessageReactionUpsert)) *MessageReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageReactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (u *MessageReactionUpsertOne) SetReactionEmoji(v string) *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetReactionEmoji(v)
	})
}

// UpdateReactionEmoji sets the "reaction_emoji" field to the value that was provided on create.
func (u *MessageReactionUpsertOne) UpdateReactionEmoji() *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateReactionEmoji()
	})
}

// SetFromMe sets the "from_me" field.
func (u *MessageReactionUpsertOne) SetFromMe(v bool) *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageReactionUpsertOne) UpdateFromMe() *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateFromMe()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageReactionUpsertOne) SetTimestamp(v time.Time) *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageReactionUpsertOne) UpdateTimestamp() *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateTimestamp()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageReactionUpsertOne) SetUpdatedAt(v time.Time) *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageReactionUpsertOne) UpdateUpdatedAt() *MessageReactionUpsertOne {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageReactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageReactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageReactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageReactionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageReactionUpsertOne.ID is not supported by MySQL driver. Use MessageReactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageReactionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageReactionCreateBulk is the builder for creating many MessageReaction entities in bulk.
type MessageReactionCreateBulk struct {
	config
	err      error
	builders []*MessageReactionCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageReaction entities in the database.
func (_c *MessageReactionCreateBulk) Save(ctx context.Context) ([]*MessageReaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageReaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageReactionMutation)
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
func (_c *MessageReactionCreateBulk) SaveX(ctx context.Context) []*MessageReaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageReaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageReactionUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageReactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageReactionUpsertBulk {
	_c.conflict = opts
	return &MessageReactionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageReactionCreateBulk) OnConflictColumns(columns ...string) *MessageReactionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageReactionUpsertBulk{
		create: _c,
	}
}

// MessageReactionUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageReaction nodes.
type MessageReactionUpsertBulk struct {
	create *MessageReactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagereaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageReactionUpsertBulk) UpdateNewValues() *MessageReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(messagereaction.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(messagereaction.FieldMessageID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(messagereaction.FieldInstanceID)
			}
			if _, exists := b.mutation.ReactorJid(); exists {
				s.SetIgnore(messagereaction.FieldReactorJid)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(messagereaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageReaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageReactionUpsertBulk) Ignore() *MessageReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageReactionUpsertBulk) DoNothing() *MessageReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageReactionCreateBulk.OnConflict
// documentation for more info.
func (u *MessageReactionUpsertBulk) Update(set func(*MessageReactionUpsert)) *MessageReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageReactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (u *MessageReactionUpsertBulk) SetReactionEmoji(v string) *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetReactionEmoji(v)
	})
}

// UpdateReactionEmoji sets the "reaction_emoji" field to the value that was provided on create.
func (u *MessageReactionUpsertBulk) UpdateReactionEmoji() *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateReactionEmoji()
	})
}

// SetFromMe sets the "from_me" field.
func (u *MessageReactionUpsertBulk) SetFromMe(v bool) *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageReactionUpsertBulk) UpdateFromMe() *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateFromMe()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageReactionUpsertBulk) SetTimestamp(v time.Time) *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageReactionUpsertBulk) UpdateTimestamp() *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateTimestamp()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageReactionUpsertBulk) SetUpdatedAt(v time.Time) *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageReactionUpsertBulk) UpdateUpdatedAt() *MessageReactionUpsertBulk {
	return u.Update(func(s *MessageReactionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageReactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageReactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageReactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageReactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
