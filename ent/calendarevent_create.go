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
	"github.com/reflexhq/reflex/ent/messageeventlink"
)

// CalendarEventCreate is the builder for creating a CalendarEvent entity.
type CalendarEventCreate struct {
	config
	mutation *CalendarEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *CalendarEventCreate) SetTitle(v string) *CalendarEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *CalendarEventCreate) SetStartTime(v time.Time) *CalendarEventCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *CalendarEventCreate) SetEndTime(v time.Time) *CalendarEventCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableEndTime(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *CalendarEventCreate) SetLocation(v string) *CalendarEventCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableLocation(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetConferenceURL sets the "conference_url" field.
func (_c *CalendarEventCreate) SetConferenceURL(v string) *CalendarEventCreate {
	_c.mutation.SetConferenceURL(v)
	return _c
}

// SetNillableConferenceURL sets the "conference_url" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableConferenceURL(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetConferenceURL(*v)
	}
	return _c
}

// SetAttendees sets the "attendees" field.
func (_c *CalendarEventCreate) SetAttendees(v []string) *CalendarEventCreate {
	_c.mutation.SetAttendees(v)
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *CalendarEventCreate) SetRecurrence(v string) *CalendarEventCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableRecurrence(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetRecurrence(*v)
	}
	return _c
}

// SetSpaceID sets the "space_id" field.
func (_c *CalendarEventCreate) SetSpaceID(v string) *CalendarEventCreate {
	_c.mutation.SetSpaceID(v)
	return _c
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableSpaceID(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetSpaceID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CalendarEventCreate) SetCreatedBy(v string) *CalendarEventCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCreatedBy(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CalendarEventCreate) SetMetadata(v map[string]interface{}) *CalendarEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarEventCreate) SetCreatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCreatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarEventCreate) SetUpdatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableUpdatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEventCreate) SetID(v string) *CalendarEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageLinkIDs adds the "message_links" edge to the MessageEventLink entity by IDs.
func (_c *CalendarEventCreate) AddMessageLinkIDs(ids ...string) *CalendarEventCreate {
	_c.mutation.AddMessageLinkIDs(ids...)
	return _c
}

// AddMessageLinks adds the "message_links" edges to the MessageEventLink entity.
func (_c *CalendarEventCreate) AddMessageLinks(v ...*MessageEventLink) *CalendarEventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageLinkIDs(ids...)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_c *CalendarEventCreate) Mutation() *CalendarEventMutation {
	return _c.mutation
}

// Save creates the CalendarEvent in the database.
func (_c *CalendarEventCreate) Save(ctx context.Context) (*CalendarEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEventCreate) SaveX(ctx context.Context) *CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEventCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CalendarEvent.title"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "CalendarEvent.start_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CalendarEvent.updated_at"`)}
	}
	return nil
}

func (_c *CalendarEventCreate) sqlSave(ctx context.Context) (*CalendarEvent, error) {
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
			return nil, fmt.Errorf("unexpected CalendarEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarEventCreate) createSpec() (*CalendarEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarevent.Table, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(calendarevent.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(calendarevent.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(calendarevent.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.ConferenceURL(); ok {
		_spec.SetField(calendarevent.FieldConferenceURL, field.TypeString, value)
		_node.ConferenceURL = value
	}
	if value, ok := _c.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
		_node.Attendees = value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(calendarevent.FieldRecurrence, field.TypeString, value)
		_node.Recurrence = value
	}
	if value, ok := _c.mutation.SpaceID(); ok {
		_spec.SetField(calendarevent.FieldSpaceID, field.TypeString, value)
		_node.SpaceID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(calendarevent.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(calendarevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessageLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarevent.MessageLinksTable,
			Columns: []string{calendarevent.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString),
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
//	client.CalendarEvent.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEventUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEventCreate) OnConflict(opts ...sql.ConflictOption) *CalendarEventUpsertOne {
	_c.conflict = opts
	return &CalendarEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEventCreate) OnConflictColumns(columns ...string) *CalendarEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEventUpsertOne{
		create: _c,
	}
}

type (
	// CalendarEventUpsertOne is the builder for "upsert"-ing
	//  one CalendarEvent node.
	CalendarEventUpsertOne struct {
		create *CalendarEventCreate
	}

	// CalendarEventUpsert is the "OnConflict" setter.
	CalendarEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *CalendarEventUpsert) SetTitle(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateTitle() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldTitle)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *CalendarEventUpsert) SetStartTime(v time.Time) *CalendarEventUpsert {
	u.Set(calendarevent.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateStartTime() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *CalendarEventUpsert) SetEndTime(v time.Time) *CalendarEventUpsert {
	u.Set(calendarevent.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateEndTime() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *CalendarEventUpsert) ClearEndTime() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldEndTime)
	return u
}

// SetLocation sets the "location" field.
func (u *CalendarEventUpsert) SetLocation(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateLocation() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *CalendarEventUpsert) ClearLocation() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldLocation)
	return u
}

// SetConferenceURL sets the "conference_url" field.
func (u *CalendarEventUpsert) SetConferenceURL(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldConferenceURL, v)
	return u
}

// UpdateConferenceURL sets the "conference_url" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateConferenceURL() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldConferenceURL)
	return u
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (u *CalendarEventUpsert) ClearConferenceURL() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldConferenceURL)
	return u
}

// SetAttendees sets the "attendees" field.
func (u *CalendarEventUpsert) SetAttendees(v []string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldAttendees, v)
	return u
}

// UpdateAttendees sets the "attendees" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateAttendees() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldAttendees)
	return u
}

// ClearAttendees clears the value of the "attendees" field.
func (u *CalendarEventUpsert) ClearAttendees() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldAttendees)
	return u
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEventUpsert) SetRecurrence(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldRecurrence, v)
	return u
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateRecurrence() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldRecurrence)
	return u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEventUpsert) ClearRecurrence() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldRecurrence)
	return u
}

// SetSpaceID sets the "space_id" field.
func (u *CalendarEventUpsert) SetSpaceID(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldSpaceID, v)
	return u
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateSpaceID() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldSpaceID)
	return u
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *CalendarEventUpsert) ClearSpaceID() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldSpaceID)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *CalendarEventUpsert) SetCreatedBy(v string) *CalendarEventUpsert {
	u.Set(calendarevent.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateCreatedBy() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *CalendarEventUpsert) ClearCreatedBy() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldCreatedBy)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *CalendarEventUpsert) SetMetadata(v map[string]interface{}) *CalendarEventUpsert {
	u.Set(calendarevent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateMetadata() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CalendarEventUpsert) ClearMetadata() *CalendarEventUpsert {
	u.SetNull(calendarevent.FieldMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarEventUpsert) SetUpdatedAt(v time.Time) *CalendarEventUpsert {
	u.Set(calendarevent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarEventUpsert) UpdateUpdatedAt() *CalendarEventUpsert {
	u.SetExcluded(calendarevent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEventUpsertOne) UpdateNewValues() *CalendarEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calendarevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(calendarevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalendarEventUpsertOne) Ignore() *CalendarEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEventUpsertOne) DoNothing() *CalendarEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEventCreate.OnConflict
// documentation for more info.
func (u *CalendarEventUpsertOne) Update(set func(*CalendarEventUpsert)) *CalendarEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CalendarEventUpsertOne) SetTitle(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateTitle() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateTitle()
	})
}

// SetStartTime sets the "start_time" field.
func (u *CalendarEventUpsertOne) SetStartTime(v time.Time) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateStartTime() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *CalendarEventUpsertOne) SetEndTime(v time.Time) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateEndTime() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *CalendarEventUpsertOne) ClearEndTime() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearEndTime()
	})
}

// SetLocation sets the "location" field.
func (u *CalendarEventUpsertOne) SetLocation(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateLocation() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CalendarEventUpsertOne) ClearLocation() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearLocation()
	})
}

// SetConferenceURL sets the "conference_url" field.
func (u *CalendarEventUpsertOne) SetConferenceURL(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetConferenceURL(v)
	})
}

// UpdateConferenceURL sets the "conference_url" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateConferenceURL() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateConferenceURL()
	})
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (u *CalendarEventUpsertOne) ClearConferenceURL() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearConferenceURL()
	})
}

// SetAttendees sets the "attendees" field.
func (u *CalendarEventUpsertOne) SetAttendees(v []string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetAttendees(v)
	})
}

// UpdateAttendees sets the "attendees" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateAttendees() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateAttendees()
	})
}

// ClearAttendees clears the value of the "attendees" field.
func (u *CalendarEventUpsertOne) ClearAttendees() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearAttendees()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEventUpsertOne) SetRecurrence(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateRecurrence() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEventUpsertOne) ClearRecurrence() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearRecurrence()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *CalendarEventUpsertOne) SetSpaceID(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateSpaceID() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateSpaceID()
	})
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *CalendarEventUpsertOne) ClearSpaceID() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearSpaceID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *CalendarEventUpsertOne) SetCreatedBy(v string) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateCreatedBy() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *CalendarEventUpsertOne) ClearCreatedBy() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearCreatedBy()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CalendarEventUpsertOne) SetMetadata(v map[string]interface{}) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateMetadata() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CalendarEventUpsertOne) ClearMetadata() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarEventUpsertOne) SetUpdatedAt(v time.Time) *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarEventUpsertOne) UpdateUpdatedAt() *CalendarEventUpsertOne {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CalendarEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalendarEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CalendarEventUpsertOne.ID is not supported by MySQL driver. Use CalendarEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalendarEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalendarEventCreateBulk is the builder for creating many CalendarEvent entities in bulk.
type CalendarEventCreateBulk struct {
	config
	err      error
	builders []*CalendarEventCreate
	conflict []sql.ConflictOption
}

// Save creates the CalendarEvent entities in the database.
func (_c *CalendarEventCreateBulk) Save(ctx context.Context) ([]*CalendarEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEventMutation)
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
func (_c *CalendarEventCreateBulk) SaveX(ctx context.Context) []*CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEventUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalendarEventUpsertBulk {
	_c.conflict = opts
	return &CalendarEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEventCreateBulk) OnConflictColumns(columns ...string) *CalendarEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEventUpsertBulk{
		create: _c,
	}
}

// CalendarEventUpsertBulk is the builder for "upsert"-ing
// a bulk of CalendarEvent nodes.
type CalendarEventUpsertBulk struct {
	create *CalendarEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEventUpsertBulk) UpdateNewValues() *CalendarEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calendarevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(calendarevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalendarEventUpsertBulk) Ignore() *CalendarEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEventUpsertBulk) DoNothing() *CalendarEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEventCreateBulk.OnConflict
// documentation for more info.
func (u *CalendarEventUpsertBulk) Update(set func(*CalendarEventUpsert)) *CalendarEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CalendarEventUpsertBulk) SetTitle(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateTitle() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateTitle()
	})
}

// SetStartTime sets the "start_time" field.
func (u *CalendarEventUpsertBulk) SetStartTime(v time.Time) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateStartTime() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *CalendarEventUpsertBulk) SetEndTime(v time.Time) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateEndTime() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *CalendarEventUpsertBulk) ClearEndTime() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearEndTime()
	})
}

// SetLocation sets the "location" field.
func (u *CalendarEventUpsertBulk) SetLocation(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateLocation() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *CalendarEventUpsertBulk) ClearLocation() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearLocation()
	})
}

// SetConferenceURL sets the "conference_url" field.
func (u *CalendarEventUpsertBulk) SetConferenceURL(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetConferenceURL(v)
	})
}

// UpdateConferenceURL sets the "conference_url" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateConferenceURL() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateConferenceURL()
	})
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (u *CalendarEventUpsertBulk) ClearConferenceURL() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearConferenceURL()
	})
}

// SetAttendees sets the "attendees" field.
func (u *CalendarEventUpsertBulk) SetAttendees(v []string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetAttendees(v)
	})
}

// UpdateAttendees sets the "attendees" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateAttendees() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateAttendees()
	})
}

// ClearAttendees clears the value of the "attendees" field.
func (u *CalendarEventUpsertBulk) ClearAttendees() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearAttendees()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEventUpsertBulk) SetRecurrence(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateRecurrence() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEventUpsertBulk) ClearRecurrence() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearRecurrence()
	})
}

// SetSpaceID sets the "space_id" field.
func (u *CalendarEventUpsertBulk) SetSpaceID(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetSpaceID(v)
	})
}

// UpdateSpaceID sets the "space_id" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateSpaceID() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateSpaceID()
	})
}

// ClearSpaceID clears the value of the "space_id" field.
func (u *CalendarEventUpsertBulk) ClearSpaceID() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearSpaceID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *CalendarEventUpsertBulk) SetCreatedBy(v string) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateCreatedBy() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *CalendarEventUpsertBulk) ClearCreatedBy() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearCreatedBy()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CalendarEventUpsertBulk) SetMetadata(v map[string]interface{}) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateMetadata() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CalendarEventUpsertBulk) ClearMetadata() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CalendarEventUpsertBulk) SetUpdatedAt(v time.Time) *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CalendarEventUpsertBulk) UpdateUpdatedAt() *CalendarEventUpsertBulk {
	return u.Update(func(s *CalendarEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CalendarEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalendarEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
