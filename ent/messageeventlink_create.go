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
	"github.com/reflexhq/reflex/ent/calendarevent"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
)

// MessageEventLinkCreate is the builder for creating a MessageEventLink entity.
type MessageEventLinkCreate struct {
	config
	mutation *MessageEventLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *MessageEventLinkCreate) SetMessageID(v string) *MessageEventLinkCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *MessageEventLinkCreate) SetCalendarEventID(v string) *MessageEventLinkCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *MessageEventLinkCreate) SetRuleID(v string) *MessageEventLinkCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *MessageEventLinkCreate) SetNillableRuleID(v *string) *MessageEventLinkCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetLinkType sets the "link_type" field.
func (_c *MessageEventLinkCreate) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkCreate {
	_c.mutation.SetLinkType(v)
	return _c
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_c *MessageEventLinkCreate) SetNillableLinkType(v *messageeventlink.LinkType) *MessageEventLinkCreate {
	if v != nil {
		_c.SetLinkType(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *MessageEventLinkCreate) SetInstanceID(v string) *MessageEventLinkCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *MessageEventLinkCreate) SetNillableInstanceID(v *string) *MessageEventLinkCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageEventLinkCreate) SetCreatedAt(v time.Time) *MessageEventLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageEventLinkCreate) SetNillableCreatedAt(v *time.Time) *MessageEventLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageEventLinkCreate) SetID(v string) *MessageEventLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMessage sets the "message" edge to the Message entity.
func (_c *MessageEventLinkCreate) SetMessage(v *Message) *MessageEventLinkCreate {
	return _c.SetMessageID(v.ID)
}

// SetCalendarEvent sets the "calendar_event" edge to the CalendarEvent entity.
func (_c *MessageEventLinkCreate) SetCalendarEvent(v *CalendarEvent) *MessageEventLinkCreate {
	return _c.SetCalendarEventID(v.ID)
}

// Mutation returns the MessageEventLinkMutation object of the builder.
func (_c *MessageEventLinkCreate) Mutation() *MessageEventLinkMutation {
	return _c.mutation
}

// Save creates the MessageEventLink in the database.
func (_c *MessageEventLinkCreate) Save(ctx context.Context) (*MessageEventLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageEventLinkCreate) SaveX(ctx context.Context) *MessageEventLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageEventLinkCreate) defaults() {
	if _, ok := _c.mutation.LinkType(); !ok {
		v := messageeventlink.DefaultLinkType
		_c.mutation.SetLinkType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messageeventlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageEventLinkCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageEventLink.message_id"`)}
	}
	if _, ok := _c.mutation.CalendarEventID(); !ok {
		return &ValidationError{Name: "calendar_event_id", err: errors.New(`ent: missing required field "MessageEventLink.calendar_event_id"`)}
	}
	if _, ok := _c.mutation.LinkType(); !ok {
		return &ValidationError{Name: "link_type", err: errors.New(`ent: missing required field "MessageEventLink.link_type"`)}
	}
	if v, ok := _c.mutation.LinkType(); ok {
		if err := messageeventlink.LinkTypeValidator(v); err != nil {
			return &ValidationError{Name: "link_type", err: fmt.Errorf(`ent: validator failed for field "MessageEventLink.link_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageEventLink.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "MessageEventLink.message"`)}
	}
	if len(_c.mutation.CalendarEventIDs()) == 0 {
		return &ValidationError{Name: "calendar_event", err: errors.New(`ent: missing required edge "MessageEventLink.calendar_event"`)}
	}
	return nil
}

func (_c *MessageEventLinkCreate) sqlSave(ctx context.Context) (*MessageEventLink, error) {
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
			return nil, fmt.Errorf("unexpected MessageEventLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageEventLinkCreate) createSpec() (*MessageEventLink, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageEventLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageeventlink.Table, sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(messageeventlink.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.LinkType(); ok {
		_spec.SetField(messageeventlink.FieldLinkType, field.TypeEnum, value)
		_node.LinkType = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(messageeventlink.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messageeventlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messageeventlink.MessageTable,
			Columns: []string{messageeventlink.MessageColumn},
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
	if nodes := _c.mutation.CalendarEventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messageeventlink.CalendarEventTable,
			Columns: []string{messageeventlink.CalendarEventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CalendarEventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageEventLink.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageEventLinkUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageEventLinkCreate) OnConflict(opts ...sql.ConflictOption) *MessageEventLinkUpsertOne {
	_c.conflict = opts
	return &MessageEventLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageEventLinkCreate) OnConflictColumns(columns ...string) *MessageEventLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageEventLinkUpsertOne{
		create: _c,
	}
}

type (
	// MessageEventLinkUpsertOne is the builder for "upsert"-ing
	//  one MessageEventLink node.
	MessageEventLinkUpsertOne struct {
		create *MessageEventLinkCreate
	}

	// MessageEventLinkUpsert is the "OnConflict" setter.
	MessageEventLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetLinkType sets the "link_type" field.
func (u *MessageEventLinkUpsert) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkUpsert {
	u.Set(messageeventlink.FieldLinkType, v)
	return u
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageEventLinkUpsert) UpdateLinkType() *MessageEventLinkUpsert {
	u.SetExcluded(messageeventlink.FieldLinkType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messageeventlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageEventLinkUpsertOne) UpdateNewValues() *MessageEventLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(messageeventlink.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(messageeventlink.FieldMessageID)
		}
		if _, exists := u.create.mutation.CalendarEventID(); exists {
			s.SetIgnore(messageeventlink.FieldCalendarEventID)
		}
		if _, exists := u.create.mutation.RuleID(); exists {
			s.SetIgnore(messageeventlink.FieldRuleID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(messageeventlink.FieldInstanceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(messageeventlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageEventLinkUpsertOne) Ignore() *MessageEventLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageEventLinkUpsertOne) DoNothing() *MessageEventLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageEventLinkCreate.OnConflict
// documentation for more info.
func (u *MessageEventLinkUpsertOne) Update(set func(*MessageEventLinkUpsert)) *MessageEventLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageEventLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetLinkType sets the "link_type" field.
func (u *MessageEventLinkUpsertOne) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkUpsertOne {
	return u.Update(func(s *MessageEventLinkUpsert) {
		s.SetLinkType(v)
	})
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageEventLinkUpsertOne) UpdateLinkType() *MessageEventLinkUpsertOne {
	return u.Update(func(s *MessageEventLinkUpsert) {
		s.UpdateLinkType()
	})
}

// Exec executes the query.
func (u *MessageEventLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageEventLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageEventLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageEventLinkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageEventLinkUpsertOne.ID is not supported by MySQL driver. Use MessageEventLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageEventLinkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageEventLinkCreateBulk is the builder for creating many MessageEventLink entities in bulk.
type MessageEventLinkCreateBulk struct {
	config
	err      error
	builders []*MessageEventLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageEventLink entities in the database.
func (_c *MessageEventLinkCreateBulk) Save(ctx context.Context) ([]*MessageEventLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageEventLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageEventLinkMutation)
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
func (_c *MessageEventLinkCreateBulk) SaveX(ctx context.Context) []*MessageEventLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageEventLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageEventLinkUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageEventLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageEventLinkUpsertBulk {
	_c.conflict = opts
	return &MessageEventLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageEventLinkCreateBulk) OnConflictColumns(columns ...string) *MessageEventLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageEventLinkUpsertBulk{
		create: _c,
	}
}

// MessageEventLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageEventLink nodes.
type MessageEventLinkUpsertBulk struct {
	create *MessageEventLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messageeventlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageEventLinkUpsertBulk) UpdateNewValues() *MessageEventLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(messageeventlink.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(messageeventlink.FieldMessageID)
			}
			if _, exists := b.mutation.CalendarEventID(); exists {
				s.SetIgnore(messageeventlink.FieldCalendarEventID)
			}
			if _, exists := b.mutation.RuleID(); exists {
				s.SetIgnore(messageeventlink.FieldRuleID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(messageeventlink.FieldInstanceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(messageeventlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageEventLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageEventLinkUpsertBulk) Ignore() *MessageEventLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageEventLinkUpsertBulk) DoNothing() *MessageEventLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageEventLinkCreateBulk.OnConflict
// documentation for more info.
func (u *MessageEventLinkUpsertBulk) Update(set func(*MessageEventLinkUpsert)) *MessageEventLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageEventLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetLinkType sets the "link_type" field.
func (u *MessageEventLinkUpsertBulk) SetLinkType(v messageeventlink.LinkType) *MessageEventLinkUpsertBulk {
	return u.Update(func(s *MessageEventLinkUpsert) {
		s.SetLinkType(v)
	})
}

// UpdateLinkType sets the "link_type" field to the value that was provided on create.
func (u *MessageEventLinkUpsertBulk) UpdateLinkType() *MessageEventLinkUpsertBulk {
	return u.Update(func(s *MessageEventLinkUpsert) {
		s.UpdateLinkType()
	})
}

// Exec executes the query.
func (u *MessageEventLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageEventLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageEventLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageEventLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
