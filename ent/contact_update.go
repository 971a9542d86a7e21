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
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPushName sets the "push_name" field.
func (_u *ContactUpdate) SetPushName(v string) *ContactUpdate {
	_u.mutation.SetPushName(v)
	return _u
}

// SetNillablePushName sets the "push_name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePushName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPushName(*v)
	}
	return _u
}

// ClearPushName clears the value of the "push_name" field.
func (_u *ContactUpdate) ClearPushName() *ContactUpdate {
	_u.mutation.ClearPushName()
	return _u
}

// SetVerifiedName sets the "verified_name" field.
func (_u *ContactUpdate) SetVerifiedName(v string) *ContactUpdate {
	_u.mutation.SetVerifiedName(v)
	return _u
}

// SetNillableVerifiedName sets the "verified_name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableVerifiedName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetVerifiedName(*v)
	}
	return _u
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (_u *ContactUpdate) ClearVerifiedName() *ContactUpdate {
	_u.mutation.ClearVerifiedName()
	return _u
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (_u *ContactUpdate) SetProfilePictureURL(v string) *ContactUpdate {
	_u.mutation.SetProfilePictureURL(v)
	return _u
}

// SetNillableProfilePictureURL sets the "profile_picture_url" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableProfilePictureURL(v *string) *ContactUpdate {
	if v != nil {
		_u.SetProfilePictureURL(*v)
	}
	return _u
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (_u *ContactUpdate) ClearProfilePictureURL() *ContactUpdate {
	_u.mutation.ClearProfilePictureURL()
	return _u
}

// SetIsBusiness sets the "is_business" field.
func (_u *ContactUpdate) SetIsBusiness(v bool) *ContactUpdate {
	_u.mutation.SetIsBusiness(v)
	return _u
}

// SetNillableIsBusiness sets the "is_business" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableIsBusiness(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetIsBusiness(*v)
	}
	return _u
}

// SetIsMe sets the "is_me" field.
func (_u *ContactUpdate) SetIsMe(v bool) *ContactUpdate {
	_u.mutation.SetIsMe(v)
	return _u
}

// SetNillableIsMe sets the "is_me" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableIsMe(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetIsMe(*v)
	}
	return _u
}

// SetIsBlocked sets the "is_blocked" field.
func (_u *ContactUpdate) SetIsBlocked(v bool) *ContactUpdate {
	_u.mutation.SetIsBlocked(v)
	return _u
}

// SetNillableIsBlocked sets the "is_blocked" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableIsBlocked(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetIsBlocked(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *ContactUpdate) SetLastUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := contact.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contact.instance"`)
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PushName(); ok {
		_spec.SetField(contact.FieldPushName, field.TypeString, value)
	}
	if _u.mutation.PushNameCleared() {
		_spec.ClearField(contact.FieldPushName, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedName(); ok {
		_spec.SetField(contact.FieldVerifiedName, field.TypeString, value)
	}
	if _u.mutation.VerifiedNameCleared() {
		_spec.ClearField(contact.FieldVerifiedName, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePictureURL(); ok {
		_spec.SetField(contact.FieldProfilePictureURL, field.TypeString, value)
	}
	if _u.mutation.ProfilePictureURLCleared() {
		_spec.ClearField(contact.FieldProfilePictureURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsBusiness(); ok {
		_spec.SetField(contact.FieldIsBusiness, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsMe(); ok {
		_spec.SetField(contact.FieldIsMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBlocked(); ok {
		_spec.SetField(contact.FieldIsBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(contact.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetPushName sets the "push_name" field.
func (_u *ContactUpdateOne) SetPushName(v string) *ContactUpdateOne {
	_u.mutation.SetPushName(v)
	return _u
}

// SetNillablePushName sets the "push_name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePushName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPushName(*v)
	}
	return _u
}

// ClearPushName clears the value of the "push_name" field.
func (_u *ContactUpdateOne) ClearPushName() *ContactUpdateOne {
	_u.mutation.ClearPushName()
	return _u
}

// SetVerifiedName sets the "verified_name" field.
func (_u *ContactUpdateOne) SetVerifiedName(v string) *ContactUpdateOne {
	_u.mutation.SetVerifiedName(v)
	return _u
}

// SetNillableVerifiedName sets the "verified_name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableVerifiedName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetVerifiedName(*v)
	}
	return _u
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (_u *ContactUpdateOne) ClearVerifiedName() *ContactUpdateOne {
	_u.mutation.ClearVerifiedName()
	return _u
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (_u *ContactUpdateOne) SetProfilePictureURL(v string) *ContactUpdateOne {
	_u.mutation.SetProfilePictureURL(v)
	return _u
}

// SetNillableProfilePictureURL sets the "profile_picture_url" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableProfilePictureURL(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetProfilePictureURL(*v)
	}
	return _u
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (_u *ContactUpdateOne) ClearProfilePictureURL() *ContactUpdateOne {
	_u.mutation.ClearProfilePictureURL()
	return _u
}

// SetIsBusiness sets the "is_business" field.
func (_u *ContactUpdateOne) SetIsBusiness(v bool) *ContactUpdateOne {
	_u.mutation.SetIsBusiness(v)
	return _u
}

// SetNillableIsBusiness sets the "is_business" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableIsBusiness(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetIsBusiness(*v)
	}
	return _u
}

// SetIsMe sets the "is_me" field.
func (_u *ContactUpdateOne) SetIsMe(v bool) *ContactUpdateOne {
	_u.mutation.SetIsMe(v)
	return _u
}

// SetNillableIsMe sets the "is_me" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableIsMe(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetIsMe(*v)
	}
	return _u
}

// SetIsBlocked sets the "is_blocked" field.
func (_u *ContactUpdateOne) SetIsBlocked(v bool) *ContactUpdateOne {
	_u.mutation.SetIsBlocked(v)
	return _u
}

// SetNillableIsBlocked sets the "is_blocked" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableIsBlocked(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetIsBlocked(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *ContactUpdateOne) SetLastUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := contact.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contact.instance"`)
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
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
	if value, ok := _u.mutation.PushName(); ok {
		_spec.SetField(contact.FieldPushName, field.TypeString, value)
	}
	if _u.mutation.PushNameCleared() {
		_spec.ClearField(contact.FieldPushName, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedName(); ok {
		_spec.SetField(contact.FieldVerifiedName, field.TypeString, value)
	}
	if _u.mutation.VerifiedNameCleared() {
		_spec.ClearField(contact.FieldVerifiedName, field.TypeString)
	}
	if value, ok := _u.mutation.ProfilePictureURL(); ok {
		_spec.SetField(contact.FieldProfilePictureURL, field.TypeString, value)
	}
	if _u.mutation.ProfilePictureURLCleared() {
		_spec.ClearField(contact.FieldProfilePictureURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsBusiness(); ok {
		_spec.SetField(contact.FieldIsBusiness, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsMe(); ok {
		_spec.SetField(contact.FieldIsMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBlocked(); ok {
		_spec.SetField(contact.FieldIsBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(contact.FieldLastUpdatedAt, field.TypeTime, value)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
