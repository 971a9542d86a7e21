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
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/predicate"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GroupUpdate) SetSubject(v string) *GroupUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableSubject(v *string) *GroupUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GroupUpdate) ClearSubject() *GroupUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (_u *GroupUpdate) SetSubjectAuthoritative(v bool) *GroupUpdate {
	_u.mutation.SetSubjectAuthoritative(v)
	return _u
}

// SetNillableSubjectAuthoritative sets the "subject_authoritative" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableSubjectAuthoritative(v *bool) *GroupUpdate {
	if v != nil {
		_u.SetSubjectAuthoritative(*v)
	}
	return _u
}

// SetOwnerJid sets the "owner_jid" field.
func (_u *GroupUpdate) SetOwnerJid(v string) *GroupUpdate {
	_u.mutation.SetOwnerJid(v)
	return _u
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableOwnerJid(v *string) *GroupUpdate {
	if v != nil {
		_u.SetOwnerJid(*v)
	}
	return _u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (_u *GroupUpdate) ClearOwnerJid() *GroupUpdate {
	_u.mutation.ClearOwnerJid()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GroupUpdate) SetDescription(v string) *GroupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableDescription(v *string) *GroupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GroupUpdate) ClearDescription() *GroupUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreationTs sets the "creation_ts" field.
func (_u *GroupUpdate) SetCreationTs(v time.Time) *GroupUpdate {
	_u.mutation.SetCreationTs(v)
	return _u
}

// SetNillableCreationTs sets the "creation_ts" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableCreationTs(v *time.Time) *GroupUpdate {
	if v != nil {
		_u.SetCreationTs(*v)
	}
	return _u
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (_u *GroupUpdate) ClearCreationTs() *GroupUpdate {
	_u.mutation.ClearCreationTs()
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *GroupUpdate) SetIsLocked(v bool) *GroupUpdate {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *GroupUpdate) SetNillableIsLocked(v *bool) *GroupUpdate {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdate) SetUpdatedAt(v time.Time) *GroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the GroupParticipant entity by IDs.
func (_u *GroupUpdate) AddParticipantIDs(ids ...string) *GroupUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the GroupParticipant entity.
func (_u *GroupUpdate) AddParticipants(v ...*GroupParticipant) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdate) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the GroupParticipant entity.
func (_u *GroupUpdate) ClearParticipants() *GroupUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to GroupParticipant entities by IDs.
func (_u *GroupUpdate) RemoveParticipantIDs(ids ...string) *GroupUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to GroupParticipant entities.
func (_u *GroupUpdate) RemoveParticipants(v ...*GroupParticipant) *GroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdate) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Group.instance"`)
	}
	return nil
}

func (_u *GroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(group.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(group.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectAuthoritative(); ok {
		_spec.SetField(group.FieldSubjectAuthoritative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerJid(); ok {
		_spec.SetField(group.FieldOwnerJid, field.TypeString, value)
	}
	if _u.mutation.OwnerJidCleared() {
		_spec.ClearField(group.FieldOwnerJid, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(group.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreationTs(); ok {
		_spec.SetField(group.FieldCreationTs, field.TypeTime, value)
	}
	if _u.mutation.CreationTsCleared() {
		_spec.ClearField(group.FieldCreationTs, field.TypeTime)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(group.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetSubject sets the "subject" field.
func (_u *GroupUpdateOne) SetSubject(v string) *GroupUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableSubject(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GroupUpdateOne) ClearSubject() *GroupUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (_u *GroupUpdateOne) SetSubjectAuthoritative(v bool) *GroupUpdateOne {
	_u.mutation.SetSubjectAuthoritative(v)
	return _u
}

// SetNillableSubjectAuthoritative sets the "subject_authoritative" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableSubjectAuthoritative(v *bool) *GroupUpdateOne {
	if v != nil {
		_u.SetSubjectAuthoritative(*v)
	}
	return _u
}

// SetOwnerJid sets the "owner_jid" field.
func (_u *GroupUpdateOne) SetOwnerJid(v string) *GroupUpdateOne {
	_u.mutation.SetOwnerJid(v)
	return _u
}

// SetNillableOwnerJid sets the "owner_jid" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableOwnerJid(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetOwnerJid(*v)
	}
	return _u
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (_u *GroupUpdateOne) ClearOwnerJid() *GroupUpdateOne {
	_u.mutation.ClearOwnerJid()
	return _u
}

// SetDescription sets the "description" field.
func (_u *GroupUpdateOne) SetDescription(v string) *GroupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableDescription(v *string) *GroupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GroupUpdateOne) ClearDescription() *GroupUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreationTs sets the "creation_ts" field.
func (_u *GroupUpdateOne) SetCreationTs(v time.Time) *GroupUpdateOne {
	_u.mutation.SetCreationTs(v)
	return _u
}

// SetNillableCreationTs sets the "creation_ts" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableCreationTs(v *time.Time) *GroupUpdateOne {
	if v != nil {
		_u.SetCreationTs(*v)
	}
	return _u
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (_u *GroupUpdateOne) ClearCreationTs() *GroupUpdateOne {
	_u.mutation.ClearCreationTs()
	return _u
}

// SetIsLocked sets the "is_locked" field.
func (_u *GroupUpdateOne) SetIsLocked(v bool) *GroupUpdateOne {
	_u.mutation.SetIsLocked(v)
	return _u
}

// SetNillableIsLocked sets the "is_locked" field if the given value is not nil.
func (_u *GroupUpdateOne) SetNillableIsLocked(v *bool) *GroupUpdateOne {
	if v != nil {
		_u.SetIsLocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupUpdateOne) SetUpdatedAt(v time.Time) *GroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the GroupParticipant entity by IDs.
func (_u *GroupUpdateOne) AddParticipantIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the GroupParticipant entity.
func (_u *GroupUpdateOne) AddParticipants(v ...*GroupParticipant) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the GroupMutation object of the builder.
func (_u *GroupUpdateOne) Mutation() *GroupMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the GroupParticipant entity.
func (_u *GroupUpdateOne) ClearParticipants() *GroupUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to GroupParticipant entities by IDs.
func (_u *GroupUpdateOne) RemoveParticipantIDs(ids ...string) *GroupUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to GroupParticipant entities.
func (_u *GroupUpdateOne) RemoveParticipants(v ...*GroupParticipant) *GroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Where appends a list predicates to the GroupUpdate builder.
func (_u *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Group entity.
func (_u *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := group.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupUpdateOne) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Group.instance"`)
	}
	return nil
}

func (_u *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != group.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(group.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(group.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectAuthoritative(); ok {
		_spec.SetField(group.FieldSubjectAuthoritative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerJid(); ok {
		_spec.SetField(group.FieldOwnerJid, field.TypeString, value)
	}
	if _u.mutation.OwnerJidCleared() {
		_spec.ClearField(group.FieldOwnerJid, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(group.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(group.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreationTs(); ok {
		_spec.SetField(group.FieldCreationTs, field.TypeTime, value)
	}
	if _u.mutation.CreationTsCleared() {
		_spec.ClearField(group.FieldCreationTs, field.TypeTime)
	}
	if value, ok := _u.mutation.IsLocked(); ok {
		_spec.SetField(group.FieldIsLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(group.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Group{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
