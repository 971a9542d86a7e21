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
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/task"
)

// MessageTaskLinkCreate is the builder for creating a MessageTaskLink entity.
type MessageTaskLinkCreate struct {
	config
	mutation *MessageTaskLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *MessageTaskLinkCreate) SetMessageID(v string) *MessageTaskLinkCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *MessageTaskLinkCreate) SetTaskID(v string) *MessageTaskLinkCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *MessageTaskLinkCreate) SetRuleID(v string) *MessageTaskLinkCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *MessageTaskLinkCreate) SetNillableRuleID(v *string) *MessageTaskLinkCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetLinkType sets the "link_type" field.
func (_c *MessageTaskLinkCreate) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkCreate {
	_c.mutation.SetLinkType(v)
	return _c
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_c *MessageTaskLinkCreate) SetNillableLinkType(v *messagetasklink.LinkType) *MessageTaskLinkCreate {
	if v != nil {
		_c.SetLinkType(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *MessageTaskLinkCreate) SetInstanceID(v string) *MessageTaskLinkCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *MessageTaskLinkCreate) SetNillableInstanceID(v *string) *MessageTaskLinkCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageTaskLinkCreate) SetCreatedAt(v time.Time) *MessageTaskLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageTaskLinkCreate) SetNillableCreatedAt(v *time.Time) *MessageTaskLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageTaskLinkCreate) SetID(v string) *MessageTaskLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMessage sets the "message" edge to the Message entity.
func (_c *MessageTaskLinkCreate) SetMessage(v *Message) *MessageTaskLinkCreate {
	return _c.SetMessageID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_c *MessageTaskLinkCreate) SetTask(v *Task) *MessageTaskLinkCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the MessageTaskLinkMutation object of the builder.
func (_c *MessageTaskLinkCreate) Mutation() *MessageTaskLinkMutation {
	return _c.mutation
}

// Save creates the MessageTaskLink in the database.
func (_c *MessageTaskLinkCreate) Save(ctx context.Context) (*MessageTaskLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageTaskLinkCreate) SaveX(ctx context.Context) *MessageTaskLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTaskLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTaskLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageTaskLinkCreate) defaults() {
	if _, ok := _c.mutation.LinkType(); !ok {
		v := messagetasklink.DefaultLinkType
		_c.mutation.SetLinkType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagetasklink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageTaskLinkCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageTaskLink.message_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "MessageTaskLink.task_id"`)}
	}
	if _, ok := _c.mutation.LinkType(); !ok {
		return &ValidationError{Name: "link_type", err: errors.New(`ent: missing required field "MessageTaskLink.link_type"`)}
	}
	if v, ok := _c.mutation.LinkType(); ok {
		if err := messagetasklink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageTaskLink.link_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageTaskLink.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "MessageTaskLink.message"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "MessageTaskLink.task"`)}
	}
	return nil
}

func (_c *MessageTaskLinkCreate) sqlSave(ctx context.Context) (*MessageTaskLink, error) {
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
			return nil, fmt.Errorf("unexpected MessageTaskLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageTaskLinkCreate) createSpec() (*MessageTaskLink, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageTaskLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagetasklink.Table, sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(messagetasklink.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.LinkType(); ok {
		_spec.SetField(messagetasklink.FieldLinkType, field.TypeEnum, value)
		_node.LinkType = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(messagetasklink.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagetasklink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagetasklink.MessageTable,
			Columns: []string{messagetasklink.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagetasklink.TaskTable,
			Columns: []string{messagetasklink.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageTaskLink.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageTaskLinkUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageTaskLinkCreate) OnConflict(opts ...sql.ConflictOption) *MessageTaskLinkUpsertOne {
	_c.conflict = opts
	return &MessageTaskLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageTaskLinkCreate) OnConflictColumns(columns ...string) *MessageTaskLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageTaskLinkUpsertOne{
		create: _c,
	}
}

type (
	// MessageTaskLinkUpsertOne is the builder for "upsert"-ing
	//  one MessageTaskLink node.
	MessageTaskLinkUpsertOne struct {
		create *MessageTaskLinkCreate
	}

	// MessageTaskLinkUpsert is the "OnConflict" setter.
	MessageTaskLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetLinkType sets the "link_type" field.
func (u *MessageTaskLinkUpsert) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkUpsert {
	u.Set(messagetasklink.FieldLinkType, v)
	return u
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageTaskLinkUpsert) UpdateLinkType() *MessageTaskLinkUpsert {
	u.SetExcluded(messagetasklink.FieldLinkType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagetasklink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageTaskLinkUpsertOne) UpdateNewValues() *MessageTaskLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(messagetasklink.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(messagetasklink.FieldMessageID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(messagetasklink.FieldTaskID)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(messagetasklink.FieldRuleID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(messagetasklink.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(messagetasklink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageTaskLinkUpsertOne) Ignore() *MessageTaskLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageTaskLinkUpsertOne) DoNothing() *MessageTaskLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageTaskLinkCreate.OnConflict
// documentation for more info.
func (u *MessageTaskLinkUpsertOne) Update(set func(*MessageTaskLinkUpsert)) *MessageTaskLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageTaskLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetLinkType sets the "link_type" field.
func (u *MessageTaskLinkUpsertOne) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkUpsertOne {
	return u.Update(func(s *MessageTaskLinkUpsert) {
		s.SetLinkType(v)
	})
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageTaskLinkUpsertOne) UpdateLinkType() *MessageTaskLinkUpsertOne {
	return u.Update(func(s *MessageTaskLinkUpsert) {
		s.UpdateLinkType()
	})
}

// Exec executes the query.
func (u *MessageTaskLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageTaskLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageTaskLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageTaskLinkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageTaskLinkUpsertOne.ID is not supported by MySQL driver. Use MessageTaskLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageTaskLinkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageTaskLinkCreateBulk is the builder for creating many MessageTaskLink entities in bulk.
type MessageTaskLinkCreateBulk struct {
	config
	err      error
	builders []*MessageTaskLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageTaskLink entities in the database.
func (_c *MessageTaskLinkCreateBulk) Save(ctx context.Context) ([]*MessageTaskLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageTaskLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageTaskLinkMutation)
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
func (_c *MessageTaskLinkCreateBulk) SaveX(ctx context.Context) []*MessageTaskLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTaskLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTaskLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageTaskLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageTaskLinkUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageTaskLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageTaskLinkUpsertBulk {
	_c.conflict = opts
	return &MessageTaskLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageTaskLinkCreateBulk) OnConflictColumns(columns ...string) *MessageTaskLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageTaskLinkUpsertBulk{
		create: _c,
	}
}

// MessageTaskLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageTaskLink nodes.
type MessageTaskLinkUpsertBulk struct {
	create *MessageTaskLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messagetasklink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageTaskLinkUpsertBulk) UpdateNewValues() *MessageTaskLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(messagetasklink.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(messagetasklink.FieldMessageID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(messagetasklink.FieldTaskID)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(messagetasklink.FieldRuleID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(messagetasklink.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(messagetasklink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageTaskLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageTaskLinkUpsertBulk) Ignore() *MessageTaskLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageTaskLinkUpsertBulk) DoNothing() *MessageTaskLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageTaskLinkCreateBulk.OnConflict
// documentation for more info.
func (u *MessageTaskLinkUpsertBulk) Update(set func(*MessageTaskLinkUpsert)) *MessageTaskLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageTaskLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetLinkType sets the "link_type" field.
func (u *MessageTaskLinkUpsertBulk) SetLinkType(v messagetasklink.LinkType) *MessageTaskLinkUpsertBulk {
	return u.Update(func(s *MessageTaskLinkUpsert) {
		s.SetLinkType(v)
	})
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageTaskLinkUpsertBulk) UpdateLinkType() *MessageTaskLinkUpsertBulk {
	return u.Update(func(s *MessageTaskLinkUpsert) {
		s.UpdateLinkType()
	})
}

// Exec executes the query.
func (u *MessageTaskLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageTaskLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageTaskLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageTaskLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
