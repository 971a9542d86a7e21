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
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagetasklink"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *MessageCreate) SetMessageID(v string) *MessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *MessageCreate) SetInstanceID(v string) *MessageCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *MessageCreate) SetChatID(v string) *MessageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetSenderJid sets the "sender_jid" field.
func (_c *MessageCreate) SetSenderJid(v string) *MessageCreate {
	_c.mutation.SetSenderJid(v)
	return _c
}

// SetFromMe sets the "from_me" field.
func (_c *MessageCreate) SetFromMe(v bool) *MessageCreate {
	_c.mutation.SetFromMe(v)
	return _c
}

// SetNillableFromMe sets the "from_me" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFromMe(v *bool) *MessageCreate {
	if v != nil {
		_c.SetFromMe(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *MessageCreate) SetMessageType(v message.MessageType) *MessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *MessageCreate) SetNillableMessageType(v *message.MessageType) *MessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *MessageCreate) SetNillableContent(v *string) *MessageCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageCreate) SetTimestamp(v time.Time) *MessageCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (_c *MessageCreate) SetQuotedMessageID(v string) *MessageCreate {
	_c.mutation.SetQuotedMessageID(v)
	return _c
}

// SetNillableQuotedMessageID sets the "quoted_message_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableQuotedMessageID(v *string) *MessageCreate {
	if v != nil {
		_c.SetQuotedMessageID(*v)
	}
	return _c
}

// SetIsForwarded sets the "is_forwarded" field.
func (_c *MessageCreate) SetIsForwarded(v bool) *MessageCreate {
	_c.mutation.SetIsForwarded(v)
	return _c
}

// SetNillableIsForwarded sets the "is_forwarded" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsForwarded(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsForwarded(*v)
	}
	return _c
}

// SetForwardingScore sets the "forwarding_score" field.
func (_c *MessageCreate) SetForwardingScore(v int) *MessageCreate {
	_c.mutation.SetForwardingScore(v)
	return _c
}

// SetNillableForwardingScore sets the "forwarding_score" field if the given value is not nil.
func (_c *MessageCreate) SetNillableForwardingScore(v *int) *MessageCreate {
	if v != nil {
		_c.SetForwardingScore(*v)
	}
	return _c
}

// SetIsStarred sets the "is_starred" field.
func (_c *MessageCreate) SetIsStarred(v bool) *MessageCreate {
	_c.mutation.SetIsStarred(v)
	return _c
}

// SetNillableIsStarred sets the "is_starred" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsStarred(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsStarred(*v)
	}
	return _c
}

// SetIsEdited sets the "is_edited" field.
func (_c *MessageCreate) SetIsEdited(v bool) *MessageCreate {
	_c.mutation.SetIsEdited(v)
	return _c
}

// SetNillableIsEdited sets the "is_edited" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsEdited(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsEdited(*v)
	}
	return _c
}

// SetLastEditedAt sets the "last_edited_at" field.
func (_c *MessageCreate) SetLastEditedAt(v time.Time) *MessageCreate {
	_c.mutation.SetLastEditedAt(v)
	return _c
}

// SetNillableLastEditedAt sets the "last_edited_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableLastEditedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetLastEditedAt(*v)
	}
	return _c
}

// SetSourcePlatform sets the "source_platform" field.
func (_c *MessageCreate) SetSourcePlatform(v string) *MessageCreate {
	_c.mutation.SetSourcePlatform(v)
	return _c
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSourcePlatform(v *string) *MessageCreate {
	if v != nil {
		_c.SetSourcePlatform(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *MessageCreate) SetRawPayload(v map[string]interface{}) *MessageCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MessageCreate) SetUpdatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableUpdatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *MessageCreate) SetInstance(v *Instance) *MessageCreate {
	return _c.SetInstanceID(v.ID)
}

// AddTaskLinkIDs adds the "task_links" edge to the MessageTaskLink entity by IDs.
func (_c *MessageCreate) AddTaskLinkIDs(ids ...string) *MessageCreate {
	_c.mutation.AddTaskLinkIDs(ids...)
	return _c
}

// AddTaskLinks adds the "task_links" edges to the MessageTaskLink entity.
func (_c *MessageCreate) AddTaskLinks(v ...*MessageTaskLink) *MessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the MessageEventLink entity by IDs.
func (_c *MessageCreate) AddEventLinkIDs(ids ...string) *MessageCreate {
	_c.mutation.AddEventLinkIDs(ids...)
	return _c
}

// AddEventLinks adds the "event_links" edges to the MessageEventLink entity.
func (_c *MessageCreate) AddEventLinks(v ...*MessageEventLink) *MessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventLinkIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.FromMe(); !ok {
		v := message.DefaultFromMe
		_c.mutation.SetFromMe(v)
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		v := message.DefaultMessageType
		_c.mutation.SetMessageType(v)
	}
	if _, ok := _c.mutation.IsForwarded(); !ok {
		v := message.DefaultIsForwarded
		_c.mutation.SetIsForwarded(v)
	}
	if _, ok := _c.mutation.ForwardingScore(); !ok {
		v := message.DefaultForwardingScore
		_c.mutation.SetForwardingScore(v)
	}
	if _, ok := _c.mutation.IsStarred(); !ok {
		v := message.DefaultIsStarred
		_c.mutation.SetIsStarred(v)
	}
	if _, ok := _c.mutation.IsEdited(); !ok {
		v := message.DefaultIsEdited
		_c.mutation.SetIsEdited(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := message.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "Message.message_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "Message.instance_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Message.chat_id"`)}
	}
	if _, ok := _c.mutation.SenderJid(); !ok {
		return &ValidationError{Name: "sender_jid", err: errors.New(`ent: missing required field "Message.sender_jid"`)}
	}
	if _, ok := _c.mutation.FromMe(); !ok {
		return &ValidationError{Name: "from_me", err: errors.New(`ent: missing required field "Message.from_me"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "Message.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Message.timestamp"`)}
	}
	if _, ok := _c.mutation.IsForwarded(); !ok {
		return &ValidationError{Name: "is_forwarded", err: errors.New(`ent: missing required field "Message.is_forwarded"`)}
	}
	if _, ok := _c.mutation.ForwardingScore(); !ok {
		return &ValidationError{Name: "forwarding_score", err: errors.New(`ent: missing required field "Message.forwarding_score"`)}
	}
	if _, ok := _c.mutation.IsStarred(); !ok {
		return &ValidationError{Name: "is_starred", err: errors.New(`ent: missing required field "Message.is_starred"`)}
	}
	if _, ok := _c.mutation.IsEdited(); !ok {
		return &ValidationError{Name: "is_edited", err: errors.New(`ent: missing required field "Message.is_edited"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Message.updated_at"`)}
	}
	if len(_c.mutation.InstanceIDs()) == 0 {
		return &ValidationError{Name: "instance", err: errors.New(`ent: missing required edge "Message.instance"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(message.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(message.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.SenderJid(); ok {
		_spec.SetField(message.FieldSenderJid, field.TypeString, value)
		_node.SenderJid = value
	}
	if value, ok := _c.mutation.FromMe(); ok {
		_spec.SetField(message.FieldFromMe, field.TypeBool, value)
		_node.FromMe = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuotedMessageID(); ok {
		_spec.SetField(message.FieldQuotedMessageID, field.TypeString, value)
		_node.QuotedMessageID = &value
	}
	if value, ok := _c.mutation.IsForwarded(); ok {
		_spec.SetField(message.FieldIsForwarded, field.TypeBool, value)
		_node.IsForwarded = value
	}
	if value, ok := _c.mutation.ForwardingScore(); ok {
		_spec.SetField(message.FieldForwardingScore, field.TypeInt, value)
		_node.ForwardingScore = value
	}
	if value, ok := _c.mutation.IsStarred(); ok {
		_spec.SetField(message.FieldIsStarred, field.TypeBool, value)
		_node.IsStarred = value
	}
	if value, ok := _c.mutation.IsEdited(); ok {
		_spec.SetField(message.FieldIsEdited, field.TypeBool, value)
		_node.IsEdited = value
	}
	if value, ok := _c.mutation.LastEditedAt(); ok {
		_spec.SetField(message.FieldLastEditedAt, field.TypeTime, value)
		_node.LastEditedAt = &value
	}
	if value, ok := _c.mutation.SourcePlatform(); ok {
		_spec.SetField(message.FieldSourcePlatform, field.TypeString, value)
		_node.SourcePlatform = value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(message.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(message.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.InstanceTable,
			Columns: []string{message.InstanceColumn},
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
	if nodes := _c.mutation.TaskLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetFromMe sets the "from_me" field.
func (u *MessageUpsert) SetFromMe(v bool) *MessageUpsert {
	u.Set(message.FieldFromMe, v)
	return u
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFromMe() *MessageUpsert {
	u.SetExcluded(message.FieldFromMe)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsert) SetMessageType(v message.MessageType) *MessageUpsert {
	u.Set(message.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMessageType() *MessageUpsert {
	u.SetExcluded(message.FieldMessageType)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsert) ClearContent() *MessageUpsert {
	u.SetNull(message.FieldContent)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsert) SetTimestamp(v time.Time) *MessageUpsert {
	u.Set(message.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsert) UpdateTimestamp() *MessageUpsert {
	u.SetExcluded(message.FieldTimestamp)
	return u
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (u *MessageUpsert) SetQuotedMessageID(v string) *MessageUpsert {
	u.Set(message.FieldQuotedMessageID, v)
	return u
}

// UpdateQuotedMessageID sets the "quoted_message_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateQuotedMessageID() *MessageUpsert {
	u.SetExcluded(message.FieldQuotedMessageID)
	return u
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (u *MessageUpsert) ClearQuotedMessageID() *MessageUpsert {
	u.SetNull(message.FieldQuotedMessageID)
	return u
}

// SetIsForwarded sets the "is_forwarded" field.
func (u *MessageUpsert) SetIsForwarded(v bool) *MessageUpsert {
	u.Set(message.FieldIsForwarded, v)
	return u
}

// UpdateIsForwarded sets the "is_forwarded" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIsForwarded() *MessageUpsert {
	u.SetExcluded(message.FieldIsForwarded)
	return u
}

// SetForwardingScore sets the "forwarding_score" field.
func (u *MessageUpsert) SetForwardingScore(v int) *MessageUpsert {
	u.Set(message.FieldForwardingScore, v)
	return u
}

// UpdateForwardingScore sets the "forwarding_score" field to the value that was provided on create.
func (u *MessageUpsert) UpdateForwardingScore() *MessageUpsert {
	u.SetExcluded(message.FieldForwardingScore)
	return u
}

// AddForwardingScore adds v to the "forwarding_score" field.
func (u *MessageUpsert) AddForwardingScore(v int) *MessageUpsert {
	u.Add(message.FieldForwardingScore, v)
	return u
}

// SetIsStarred sets the "is_starred" field.
func (u *MessageUpsert) SetIsStarred(v bool) *MessageUpsert {
	u.Set(message.FieldIsStarred, v)
	return u
}

// UpdateIsStarred sets the "is_starred" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIsStarred() *MessageUpsert {
	u.SetExcluded(message.FieldIsStarred)
	return u
}

// SetIsEdited sets the "is_edited" field.
func (u *MessageUpsert) SetIsEdited(v bool) *MessageUpsert {
	u.Set(message.FieldIsEdited, v)
	return u
}

// UpdateIsEdited sets the "is_edited" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIsEdited() *MessageUpsert {
	u.SetExcluded(message.FieldIsEdited)
	return u
}

// SetLastEditedAt sets the "last_edited_at" field.
func (u *MessageUpsert) SetLastEditedAt(v time.Time) *MessageUpsert {
	u.Set(message.FieldLastEditedAt, v)
	return u
}

// UpdateLastEditedAt sets the "last_edited_at" field to the value that was provided on create.
func (u *MessageUpsert) UpdateLastEditedAt() *MessageUpsert {
	u.SetExcluded(message.FieldLastEditedAt)
	return u
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (u *MessageUpsert) ClearLastEditedAt() *MessageUpsert {
	u.SetNull(message.FieldLastEditedAt)
	return u
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MessageUpsert) SetSourcePlatform(v string) *MessageUpsert {
	u.Set(message.FieldSourcePlatform, v)
	return u
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSourcePlatform() *MessageUpsert {
	u.SetExcluded(message.FieldSourcePlatform)
	return u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MessageUpsert) ClearSourcePlatform() *MessageUpsert {
	u.SetNull(message.FieldSourcePlatform)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *MessageUpsert) SetRawPayload(v map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRawPayload() *MessageUpsert {
	u.SetExcluded(message.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *MessageUpsert) ClearRawPayload() *MessageUpsert {
	u.SetNull(message.FieldRawPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageUpsert) SetUpdatedAt(v time.Time) *MessageUpsert {
	u.Set(message.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageUpsert) UpdateUpdatedAt() *MessageUpsert {
	u.SetExcluded(message.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(message.FieldMessageID)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(message.FieldInstanceID)
		}
		if _, exists := u.create.mutation.ChatID(); exists {
			s.SetIgnore(message.FieldChatID)
		}
		if _, exists := u.create.mutation.SenderJid(); exists {
			s.SetIgnore(message.FieldSenderJid)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromMe sets the "from_me" field.
func (u *MessageUpsertOne) SetFromMe(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFromMe() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFromMe()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertOne) SetMessageType(v message.MessageType) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMessageType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsertOne) ClearContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearContent()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsertOne) SetTimestamp(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateTimestamp() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTimestamp()
	})
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (u *MessageUpsertOne) SetQuotedMessageID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetQuotedMessageID(v)
	})
}

// UpdateQuotedMessageID sets the "quoted_message_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateQuotedMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateQuotedMessageID()
	})
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (u *MessageUpsertOne) ClearQuotedMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearQuotedMessageID()
	})
}

// SetIsForwarded sets the "is_forwarded" field.
func (u *MessageUpsertOne) SetIsForwarded(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsForwarded(v)
	})
}

// UpdateIsForwarded sets the "is_forwarded" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIsForwarded() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsForwarded()
	})
}

// SetForwardingScore sets the "forwarding_score" field.
func (u *MessageUpsertOne) SetForwardingScore(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetForwardingScore(v)
	})
}

// AddForwardingScore adds v to the "forwarding_score" field.
func (u *MessageUpsertOne) AddForwardingScore(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddForwardingScore(v)
	})
}

// UpdateForwardingScore sets the "forwarding_score" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateForwardingScore() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateForwardingScore()
	})
}

// SetIsStarred sets the "is_starred" field.
func (u *MessageUpsertOne) SetIsStarred(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsStarred(v)
	})
}

// UpdateIsStarred sets the "is_starred" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIsStarred() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsStarred()
	})
}

// SetIsEdited sets the "is_edited" field.
func (u *MessageUpsertOne) SetIsEdited(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsEdited(v)
	})
}

// UpdateIsEdited sets the "is_edited" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIsEdited() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsEdited()
	})
}

// SetLastEditedAt sets the "last_edited_at" field.
func (u *MessageUpsertOne) SetLastEditedAt(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetLastEditedAt(v)
	})
}

// UpdateLastEditedAt sets the "last_edited_at" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateLastEditedAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateLastEditedAt()
	})
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (u *MessageUpsertOne) ClearLastEditedAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearLastEditedAt()
	})
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MessageUpsertOne) SetSourcePlatform(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSourcePlatform(v)
	})
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSourcePlatform() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSourcePlatform()
	})
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MessageUpsertOne) ClearSourcePlatform() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSourcePlatform()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *MessageUpsertOne) SetRawPayload(v map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRawPayload() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *MessageUpsertOne) ClearRawPayload() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearRawPayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageUpsertOne) SetUpdatedAt(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateUpdatedAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(message.FieldMessageID)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(message.FieldInstanceID)
			}
			if _, exists := b.mutation.ChatID(); exists {
				s.SetIgnore(message.FieldChatID)
			}
			if _, exists := b.mutation.SenderJid(); exists {
				s.SetIgnore(message.FieldSenderJid)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromMe sets the "from_me" field.
func (u *MessageUpsertBulk) SetFromMe(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFromMe(v)
	})
}

// UpdateFromMe sets the "from_me" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFromMe() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFromMe()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertBulk) SetMessageType(v message.MessageType) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMessageType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsertBulk) ClearContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearContent()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MessageUpsertBulk) SetTimestamp(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateTimestamp() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateTimestamp()
	})
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (u *MessageUpsertBulk) SetQuotedMessageID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetQuotedMessageID(v)
	})
}

// UpdateQuotedMessageID sets the "quoted_message_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateQuotedMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateQuotedMessageID()
	})
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (u *MessageUpsertBulk) ClearQuotedMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearQuotedMessageID()
	})
}

// SetIsForwarded sets the "is_forwarded" field.
func (u *MessageUpsertBulk) SetIsForwarded(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsForwarded(v)
	})
}

// UpdateIsForwarded sets the "is_forwarded" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIsForwarded() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsForwarded()
	})
}

// SetForwardingScore sets the "forwarding_score" field.
func (u *MessageUpsertBulk) SetForwardingScore(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetForwardingScore(v)
	})
}

// AddForwardingScore adds v to the "forwarding_score" field.
func (u *MessageUpsertBulk) AddForwardingScore(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddForwardingScore(v)
	})
}

// UpdateForwardingScore sets the "forwarding_score" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateForwardingScore() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateForwardingScore()
	})
}

// SetIsStarred sets the "is_starred" field.
func (u *MessageUpsertBulk) SetIsStarred(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsStarred(v)
	})
}

// UpdateIsStarred sets the "is_starred" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIsStarred() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsStarred()
	})
}

// SetIsEdited sets the "is_edited" field.
func (u *MessageUpsertBulk) SetIsEdited(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsEdited(v)
	})
}

// UpdateIsEdited sets the "is_edited" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIsEdited() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsEdited()
	})
}

// SetLastEditedAt sets the "last_edited_at" field.
func (u *MessageUpsertBulk) SetLastEditedAt(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetLastEditedAt(v)
	})
}

// UpdateLastEditedAt sets the "last_edited_at" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateLastEditedAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateLastEditedAt()
	})
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (u *MessageUpsertBulk) ClearLastEditedAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearLastEditedAt()
	})
}

// SetSourcePlatform sets the "source_platform" field.
func (u *MessageUpsertBulk) SetSourcePlatform(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSourcePlatform(v)
	})
}

// UpdateSourcePlatform sets the "source_platform" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSourcePlatform() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSourcePlatform()
	})
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (u *MessageUpsertBulk) ClearSourcePlatform() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSourcePlatform()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *MessageUpsertBulk) SetRawPayload(v map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRawPayload() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *MessageUpsertBulk) ClearRawPayload() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearRawPayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MessageUpsertBulk) SetUpdatedAt(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateUpdatedAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
