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
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromMe sets the "from_me" field.
func (_u *MessageUpdate) SetFromMe(v bool) *MessageUpdate {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFromMe(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdate) SetMessageType(v message.MessageType) *MessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMessageType(v *message.MessageType) *MessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MessageUpdate) ClearContent() *MessageUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageUpdate) SetTimestamp(v time.Time) *MessageUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTimestamp(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (_u *MessageUpdate) SetQuotedMessageID(v string) *MessageUpdate {
	_u.mutation.SetQuotedMessageID(v)
	return _u
}

// SetNillableQuotedMessageID sets the "quoted_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableQuotedMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetQuotedMessageID(*v)
	}
	return _u
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (_u *MessageUpdate) ClearQuotedMessageID() *MessageUpdate {
	_u.mutation.ClearQuotedMessageID()
	return _u
}

// SetIsForwarded sets the "is_forwarded" field.
func (_u *MessageUpdate) SetIsForwarded(v bool) *MessageUpdate {
	_u.mutation.SetIsForwarded(v)
	return _u
}

// SetNillableIsForwarded sets the "is_forwarded" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsForwarded(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsForwarded(*v)
	}
	return _u
}

// SetForwardingScore sets the "forwarding_score" field.
func (_u *MessageUpdate) SetForwardingScore(v int) *MessageUpdate {
	_u.mutation.ResetForwardingScore()
	_u.mutation.SetForwardingScore(v)
	return _u
}

// SetNillableForwardingScore sets the "forwarding_score" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableForwardingScore(v *int) *MessageUpdate {
	if v != nil {
		_u.SetForwardingScore(*v)
	}
	return _u
}

// AddForwardingScore adds value to the "forwarding_score" field.
func (_u *MessageUpdate) AddForwardingScore(v int) *MessageUpdate {
	_u.mutation.AddForwardingScore(v)
	return _u
}

// SetIsStarred sets the "is_starred" field.
func (_u *MessageUpdate) SetIsStarred(v bool) *MessageUpdate {
	_u.mutation.SetIsStarred(v)
	return _u
}

// SetNillableIsStarred sets the "is_starred" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsStarred(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsStarred(*v)
	}
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *MessageUpdate) SetIsEdited(v bool) *MessageUpdate {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsEdited(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetLastEditedAt sets the "last_edited_at" field.
func (_u *MessageUpdate) SetLastEditedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetLastEditedAt(v)
	return _u
}

// SetNillableLastEditedAt sets the "last_edited_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableLastEditedAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetLastEditedAt(*v)
	}
	return _u
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (_u *MessageUpdate) ClearLastEditedAt() *MessageUpdate {
	_u.mutation.ClearLastEditedAt()
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *MessageUpdate) SetSourcePlatform(v string) *MessageUpdate {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSourcePlatform(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *MessageUpdate) ClearSourcePlatform() *MessageUpdate {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *MessageUpdate) SetRawPayload(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *MessageUpdate) ClearRawPayload() *MessageUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageUpdate) SetUpdatedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskLinkIDs adds the "task_links" edge to the MessageTaskLink entity by IDs.
func (_u *MessageUpdate) AddTaskLinkIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddTaskLinkIDs(ids...)
	return _u
}

// AddTaskLinks adds the "task_links" edges to the MessageTaskLink entity.
func (_u *MessageUpdate) AddTaskLinks(v ...*MessageTaskLink) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the MessageEventLink entity by IDs.
func (_u *MessageUpdate) AddEventLinkIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the MessageEventLink entity.
func (_u *MessageUpdate) AddEventLinks(v ...*MessageEventLink) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearTaskLinks clears all "task_links" edges to the MessageTaskLink entity.
func (_u *MessageUpdate) ClearTaskLinks() *MessageUpdate {
	_u.mutation.ClearTaskLinks()
	return _u
}

// RemoveTaskLinkIDs removes the "task_links" edge to MessageTaskLink entities by IDs.
func (_u *MessageUpdate) RemoveTaskLinkIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveTaskLinkIDs(ids...)
	return _u
}

// RemoveTaskLinks removes "task_links" edges to MessageTaskLink entities.
func (_u *MessageUpdate) RemoveTaskLinks(v ...*MessageTaskLink) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskLinkIDs(ids...)
}

// ClearEventLinks clears all "event_links" edges to the MessageEventLink entity.
func (_u *MessageUpdate) ClearEventLinks() *MessageUpdate {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to MessageEventLink entities by IDs.
func (_u *MessageUpdate) RemoveEventLinkIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to MessageEventLink entities.
func (_u *MessageUpdate) RemoveEventLinks(v ...*MessageEventLink) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := message.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.instance"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(message.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(message.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuotedMessageID(); ok {
		_spec.SetField(message.FieldQuotedMessageID, field.TypeString, value)
	}
	if _u.mutation.QuotedMessageIDCleared() {
		_spec.ClearField(message.FieldQuotedMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.IsForwarded(); ok {
		_spec.SetField(message.FieldIsForwarded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForwardingScore(); ok {
		_spec.SetField(message.FieldForwardingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForwardingScore(); ok {
		_spec.AddField(message.FieldForwardingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsStarred(); ok {
		_spec.SetField(message.FieldIsStarred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(message.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastEditedAt(); ok {
		_spec.SetField(message.FieldLastEditedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEditedAtCleared() {
		_spec.ClearField(message.FieldLastEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(message.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(message.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(message.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(message.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(message.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskLinksIDs(); len(nodes) > 0 && !_u.mutation.TaskLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
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
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
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
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetFromMe sets the "from_me" field.
func (_u *MessageUpdateOne) SetFromMe(v bool) *MessageUpdateOne {
	_u.mutation.SetFromMe(v)
	return _u
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFromMe(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetFromMe(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdateOne) SetMessageType(v message.MessageType) *MessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMessageType(v *message.MessageType) *MessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MessageUpdateOne) ClearContent() *MessageUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MessageUpdateOne) SetTimestamp(v time.Time) *MessageUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTimestamp(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (_u *MessageUpdateOne) SetQuotedMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetQuotedMessageID(v)
	return _u
}

// SetNillableQuotedMessageID sets the "quoted_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableQuotedMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetQuotedMessageID(*v)
	}
	return _u
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (_u *MessageUpdateOne) ClearQuotedMessageID() *MessageUpdateOne {
	_u.mutation.ClearQuotedMessageID()
	return _u
}

// SetIsForwarded sets the "is_forwarded" field.
func (_u *MessageUpdateOne) SetIsForwarded(v bool) *MessageUpdateOne {
	_u.mutation.SetIsForwarded(v)
	return _u
}

// SetNillableIsForwarded sets the "is_forwarded" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsForwarded(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsForwarded(*v)
	}
	return _u
}

// SetForwardingScore sets the "forwarding_score" field.
func (_u *MessageUpdateOne) SetForwardingScore(v int) *MessageUpdateOne {
	_u.mutation.ResetForwardingScore()
	_u.mutation.SetForwardingScore(v)
	return _u
}

// SetNillableForwardingScore sets the "forwarding_score" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableForwardingScore(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetForwardingScore(*v)
	}
	return _u
}

// AddForwardingScore adds value to the "forwarding_score" field.
func (_u *MessageUpdateOne) AddForwardingScore(v int) *MessageUpdateOne {
	_u.mutation.AddForwardingScore(v)
	return _u
}

// SetIsStarred sets the "is_starred" field.
func (_u *MessageUpdateOne) SetIsStarred(v bool) *MessageUpdateOne {
	_u.mutation.SetIsStarred(v)
	return _u
}

// SetNillableIsStarred sets the "is_starred" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsStarred(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsStarred(*v)
	}
	return _u
}

// SetIsEdited sets the "is_edited" field.
func (_u *MessageUpdateOne) SetIsEdited(v bool) *MessageUpdateOne {
	_u.mutation.SetIsEdited(v)
	return _u
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsEdited(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsEdited(*v)
	}
	return _u
}

// SetLastEditedAt sets the "last_edited_at" field.
func (_u *MessageUpdateOne) SetLastEditedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetLastEditedAt(v)
	return _u
}

// SetNillableLastEditedAt sets the "last_edited_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableLastEditedAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetLastEditedAt(*v)
	}
	return _u
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (_u *MessageUpdateOne) ClearLastEditedAt() *MessageUpdateOne {
	_u.mutation.ClearLastEditedAt()
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *MessageUpdateOne) SetSourcePlatform(v string) *MessageUpdateOne {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSourcePlatform(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *MessageUpdateOne) ClearSourcePlatform() *MessageUpdateOne {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *MessageUpdateOne) SetRawPayload(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *MessageUpdateOne) ClearRawPayload() *MessageUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MessageUpdateOne) SetUpdatedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskLinkIDs adds the "task_links" edge to the MessageTaskLink entity by IDs.
func (_u *MessageUpdateOne) AddTaskLinkIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddTaskLinkIDs(ids...)
	return _u
}

// AddTaskLinks adds the "task_links" edges to the MessageTaskLink entity.
func (_u *MessageUpdateOne) AddTaskLinks(v ...*MessageTaskLink) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the MessageEventLink entity by IDs.
func (_u *MessageUpdateOne) AddEventLinkIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the MessageEventLink entity.
func (_u *MessageUpdateOne) AddEventLinks(v ...*MessageEventLink) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearTaskLinks clears all "task_links" edges to the MessageTaskLink entity.
func (_u *MessageUpdateOne) ClearTaskLinks() *MessageUpdateOne {
	_u.mutation.ClearTaskLinks()
	return _u
}

// RemoveTaskLinkIDs removes the "task_links" edge to MessageTaskLink entities by IDs.
func (_u *MessageUpdateOne) RemoveTaskLinkIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveTaskLinkIDs(ids...)
	return _u
}

// RemoveTaskLinks removes "task_links" edges to MessageTaskLink entities.
func (_u *MessageUpdateOne) RemoveTaskLinks(v ...*MessageTaskLink) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskLinkIDs(ids...)
}

// ClearEventLinks clears all "event_links" edges to the MessageEventLink entity.
func (_u *MessageUpdateOne) ClearEventLinks() *MessageUpdateOne {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to MessageEventLink entities by IDs.
func (_u *MessageUpdateOne) RemoveEventLinkIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to MessageEventLink entities.
func (_u *MessageUpdateOne) RemoveEventLinks(v ...*MessageEventLink) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := message.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if _u.mutation.InstanceCleared() && len(_u.mutation.InstanceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.instance"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.FromMe(); ok {
		_spec.SetField(message.FieldFromMe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(message.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuotedMessageID(); ok {
		_spec.SetField(message.FieldQuotedMessageID, field.TypeString, value)
	}
	if _u.mutation.QuotedMessageIDCleared() {
		_spec.ClearField(message.FieldQuotedMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.IsForwarded(); ok {
		_spec.SetField(message.FieldIsForwarded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForwardingScore(); ok {
		_spec.SetField(message.FieldForwardingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForwardingScore(); ok {
		_spec.AddField(message.FieldForwardingScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsStarred(); ok {
		_spec.SetField(message.FieldIsStarred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEdited(); ok {
		_spec.SetField(message.FieldIsEdited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastEditedAt(); ok {
		_spec.SetField(message.FieldLastEditedAt, field.TypeTime, value)
	}
	if _u.mutation.LastEditedAtCleared() {
		_spec.ClearField(message.FieldLastEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(message.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(message.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(message.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(message.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(message.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskLinksIDs(); len(nodes) > 0 && !_u.mutation.TaskLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.TaskLinksTable,
			Columns: []string{message.TaskLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetasklink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageeventlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
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
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.EventLinksTable,
			Columns: []string{message.EventLinksColumn},
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
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
