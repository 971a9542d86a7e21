// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reflexhq/reflex/ent/calendarevent"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/predicate"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdate) SetTitle(v string) *CalendarEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableTitle(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CalendarEventUpdate) SetStartTime(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableStartTime(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *CalendarEventUpdate) SetEndTime(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableEndTime(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *CalendarEventUpdate) ClearEndTime() *CalendarEventUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CalendarEventUpdate) SetLocation(v string) *CalendarEventUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableLocation(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CalendarEventUpdate) ClearLocation() *CalendarEventUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetConferenceURL sets the "conference_url" field.
func (_u *CalendarEventUpdate) SetConferenceURL(v string) *CalendarEventUpdate {
	_u.mutation.SetConferenceURL(v)
	return _u
}

// SetNillableConferenceURL sets the "conference_url" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableConferenceURL(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetConferenceURL(*v)
	}
	return _u
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (_u *CalendarEventUpdate) ClearConferenceURL() *CalendarEventUpdate {
	_u.mutation.ClearConferenceURL()
	return _u
}

// SetAttendees sets the "attendees" field.
func (_u *CalendarEventUpdate) SetAttendees(v []string) *CalendarEventUpdate {
	_u.mutation.SetAttendees(v)
	return _u
}

// AppendAttendees appends value to the "attendees" field.
func (_u *CalendarEventUpdate) AppendAttendees(v []string) *CalendarEventUpdate {
	_u.mutation.AppendAttendees(v)
	return _u
}

// ClearAttendees clears the value of the "attendees" field.
func (_u *CalendarEventUpdate) ClearAttendees() *CalendarEventUpdate {
	_u.mutation.ClearAttendees()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *CalendarEventUpdate) SetRecurrence(v string) *CalendarEventUpdate {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableRecurrence(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *CalendarEventUpdate) ClearRecurrence() *CalendarEventUpdate {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *CalendarEventUpdate) SetSpaceID(v string) *CalendarEventUpdate {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableSpaceID(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// ClearSpaceID clears the value of the "space_id" field.
func (_u *CalendarEventUpdate) ClearSpaceID() *CalendarEventUpdate {
	_u.mutation.ClearSpaceID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CalendarEventUpdate) SetCreatedBy(v string) *CalendarEventUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableCreatedBy(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CalendarEventUpdate) ClearCreatedBy() *CalendarEventUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CalendarEventUpdate) SetMetadata(v map[string]interface{}) *CalendarEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CalendarEventUpdate) ClearMetadata() *CalendarEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarEventUpdate) SetUpdatedAt(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageLinkIDs adds the "message_links" edge to the MessageEventLink entity by IDs.
func (_u *CalendarEventUpdate) AddMessageLinkIDs(ids ...string) *CalendarEventUpdate {
	_u.mutation.AddMessageLinkIDs(ids...)
	return _u
}

// AddMessageLinks adds the "message_links" edges to the MessageEventLink entity.
func (_u *CalendarEventUpdate) AddMessageLinks(v ...*MessageEventLink) *CalendarEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageLinkIDs(ids...)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// ClearMessageLinks clears all "message_links" edges to the MessageEventLink entity.
func (_u *CalendarEventUpdate) ClearMessageLinks() *CalendarEventUpdate {
	_u.mutation.ClearMessageLinks()
	return _u
}

// RemoveMessageLinkIDs removes the "message_links" edge to MessageEventLink entities by IDs.
func (_u *CalendarEventUpdate) RemoveMessageLinkIDs(ids ...string) *CalendarEventUpdate {
	_u.mutation.RemoveMessageLinkIDs(ids...)
	return _u
}

// RemoveMessageLinks removes "message_links" edges to MessageEventLink entities.
func (_u *CalendarEventUpdate) RemoveMessageLinks(v ...*MessageEventLink) *CalendarEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(calendarevent.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(calendarevent.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(calendarevent.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(calendarevent.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(calendarevent.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceURL(); ok {
		_spec.SetField(calendarevent.FieldConferenceURL, field.TypeString, value)
	}
	if _u.mutation.ConferenceURLCleared() {
		_spec.ClearField(calendarevent.FieldConferenceURL, field.TypeString)
	}
	if value, ok := _u.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttendees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarevent.FieldAttendees, value)
		})
	}
	if _u.mutation.AttendeesCleared() {
		_spec.ClearField(calendarevent.FieldAttendees, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(calendarevent.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(calendarevent.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.SpaceID(); ok {
		_spec.SetField(calendarevent.FieldSpaceID, field.TypeString, value)
	}
	if _u.mutation.SpaceIDCleared() {
		_spec.ClearField(calendarevent.FieldSpaceID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(calendarevent.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(calendarevent.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(calendarevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(calendarevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessageLinksIDs(); len(nodes) > 0 && !_u.mutation.MessageLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdateOne) SetTitle(v string) *CalendarEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableTitle(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *CalendarEventUpdateOne) SetStartTime(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableStartTime(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *CalendarEventUpdateOne) SetEndTime(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableEndTime(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *CalendarEventUpdateOne) ClearEndTime() *CalendarEventUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CalendarEventUpdateOne) SetLocation(v string) *CalendarEventUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableLocation(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CalendarEventUpdateOne) ClearLocation() *CalendarEventUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetConferenceURL sets the "conference_url" field.
func (_u *CalendarEventUpdateOne) SetConferenceURL(v string) *CalendarEventUpdateOne {
	_u.mutation.SetConferenceURL(v)
	return _u
}

// SetNillableConferenceURL sets the "conference_url" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableConferenceURL(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetConferenceURL(*v)
	}
	return _u
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (_u *CalendarEventUpdateOne) ClearConferenceURL() *CalendarEventUpdateOne {
	_u.mutation.ClearConferenceURL()
	return _u
}

// SetAttendees sets the "attendees" field.
func (_u *CalendarEventUpdateOne) SetAttendees(v []string) *CalendarEventUpdateOne {
	_u.mutation.SetAttendees(v)
	return _u
}

// AppendAttendees appends value to the "attendees" field.
func (_u *CalendarEventUpdateOne) AppendAttendees(v []string) *CalendarEventUpdateOne {
	_u.mutation.AppendAttendees(v)
	return _u
}

// ClearAttendees clears the value of the "attendees" field.
func (_u *CalendarEventUpdateOne) ClearAttendees() *CalendarEventUpdateOne {
	_u.mutation.ClearAttendees()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *CalendarEventUpdateOne) SetRecurrence(v string) *CalendarEventUpdateOne {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableRecurrence(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *CalendarEventUpdateOne) ClearRecurrence() *CalendarEventUpdateOne {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetSpaceID sets the "space_id" field.
func (_u *CalendarEventUpdateOne) SetSpaceID(v string) *CalendarEventUpdateOne {
	_u.mutation.SetSpaceID(v)
	return _u
}

// SetNillableSpaceID sets the "space_id" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableSpaceID(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetSpaceID(*v)
	}
	return _u
}

// ClearSpaceID clears the value of the "space_id" field.
func (_u *CalendarEventUpdateOne) ClearSpaceID() *CalendarEventUpdateOne {
	_u.mutation.ClearSpaceID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CalendarEventUpdateOne) SetCreatedBy(v string) *CalendarEventUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableCreatedBy(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CalendarEventUpdateOne) ClearCreatedBy() *CalendarEventUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CalendarEventUpdateOne) SetMetadata(v map[string]interface{}) *CalendarEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CalendarEventUpdateOne) ClearMetadata() *CalendarEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarEventUpdateOne) SetUpdatedAt(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageLinkIDs adds the "message_links" edge to the MessageEventLink entity by IDs.
func (_u *CalendarEventUpdateOne) AddMessageLinkIDs(ids ...string) *CalendarEventUpdateOne {
	_u.mutation.AddMessageLinkIDs(ids...)
	return _u
}

// AddMessageLinks adds the "message_links" edges to the MessageEventLink entity.
func (_u *CalendarEventUpdateOne) AddMessageLinks(v ...*MessageEventLink) *CalendarEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageLinkIDs(ids...)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// ClearMessageLinks clears all "message_links" edges to the MessageEventLink entity.
func (_u *CalendarEventUpdateOne) ClearMessageLinks() *CalendarEventUpdateOne {
	_u.mutation.ClearMessageLinks()
	return _u
}

// RemoveMessageLinkIDs removes the "message_links" edge to MessageEventLink entities by IDs.
func (_u *CalendarEventUpdateOne) RemoveMessageLinkIDs(ids ...string) *CalendarEventUpdateOne {
	_u.mutation.RemoveMessageLinkIDs(ids...)
	return _u
}

// RemoveMessageLinks removes "message_links" edges to MessageEventLink entities.
func (_u *CalendarEventUpdateOne) RemoveMessageLinks(v ...*MessageEventLink) *CalendarEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageLinkIDs(ids...)
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(calendarevent.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(calendarevent.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(calendarevent.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(calendarevent.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(calendarevent.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceURL(); ok {
		_spec.SetField(calendarevent.FieldConferenceURL, field.TypeString, value)
	}
	if _u.mutation.ConferenceURLCleared() {
		_spec.ClearField(calendarevent.FieldConferenceURL, field.TypeString)
	}
	if value, ok := _u.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttendees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarevent.FieldAttendees, value)
		})
	}
	if _u.mutation.AttendeesCleared() {
		_spec.ClearField(calendarevent.FieldAttendees, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(calendarevent.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(calendarevent.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.SpaceID(); ok {
		_spec.SetField(calendarevent.FieldSpaceID, field.TypeString, value)
	}
	if _u.mutation.SpaceIDCleared() {
		_spec.ClearField(calendarevent.FieldSpaceID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(calendarevent.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(calendarevent.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(calendarevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(calendarevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessageLinksIDs(); len(nodes) > 0 && !_u.mutation.MessageLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
