// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/calendarevent"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/event"
	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/note"
	"github.com/reflexhq/reflex/ent/predicate"
	"github.com/reflexhq/reflex/ent/task"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionExecutionLog  = "ActionExecutionLog"
	TypeActionQueueItem     = "ActionQueueItem"
	TypeActionRule          = "ActionRule"
	TypeBill                = "Bill"
	TypeCalendarEvent       = "CalendarEvent"
	TypeCallLog             = "CallLog"
	TypeChat                = "Chat"
	TypeContact             = "Contact"
	TypeEntityChange        = "EntityChange"
	TypeEvent               = "Event"
	TypeFailedEvent         = "FailedEvent"
	TypeGroup               = "Group"
	TypeGroupParticipant    = "GroupParticipant"
	TypeInstance            = "Instance"
	TypeMessage             = "Message"
	TypeMessageEventLink    = "MessageEventLink"
	TypeMessageReaction     = "MessageReaction"
	TypeMessageStatusUpdate = "MessageStatusUpdate"
	TypeMessageTaskLink     = "MessageTaskLink"
	TypeNote                = "Note"
	TypeTask                = "Task"
)

// ActionExecutionLogMutation represents an operation that mutates the ActionExecutionLog nodes in the graph.
type ActionExecutionLogMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	rule_id                   *string
	queue_item_id             *string
	status                    *actionexecutionlog.Status
	execution_time_ms         *int
	addexecution_time_ms      *int
	error_message             *string
	created_entity_refs       *[]map[string]string
	appendcreated_entity_refs []map[string]string
	chat_id                   *string
	instance_id               *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ActionExecutionLog, error)
	predicates                []predicate.ActionExecutionLog
}

var _ ent.Mutation = (*ActionExecutionLogMutation)(nil)

// actionexecutionlogOption allows management of the mutation configuration using functional options.
type actionexecutionlogOption func(*ActionExecutionLogMutation)

// newActionExecutionLogMutation creates new mutation for the ActionExecutionLog entity.
func newActionExecutionLogMutation(c config, op Op, opts ...actionexecutionlogOption) *ActionExecutionLogMutation {
	m := &ActionExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActionExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionExecutionLogID sets the ID field of the mutation.
func withActionExecutionLogID(id string) actionexecutionlogOption {
	return func(m *ActionExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ActionExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionExecutionLog sets the old ActionExecutionLog of the mutation.
func withActionExecutionLog(node *ActionExecutionLog) actionexecutionlogOption {
	return func(m *ActionExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ActionExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionExecutionLog entities.
func (m *ActionExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleID sets the "rule_id" field.
func (m *ActionExecutionLogMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *ActionExecutionLogMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *ActionExecutionLogMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetQueueItemID sets the "queue_item_id" field.
func (m *ActionExecutionLogMutation) SetQueueItemID(s string) {
	m.queue_item_id = &s
}

// QueueItemID returns the value of the "queue_item_id" field in the mutation.
func (m *ActionExecutionLogMutation) QueueItemID() (r string, exists bool) {
	v := m.queue_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueItemID returns the old "queue_item_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldQueueItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueItemID: %w", err)
	}
	return oldValue.QueueItemID, nil
}

// ClearQueueItemID clears the value of the "queue_item_id" field.
func (m *ActionExecutionLogMutation) ClearQueueItemID() {
	m.queue_item_id = nil
	m.clearedFields[actionexecutionlog.FieldQueueItemID] = struct{}{}
}

// QueueItemIDCleared returns if the "queue_item_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) QueueItemIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldQueueItemID]
	return ok
}

// ResetQueueItemID resets all changes to the "queue_item_id" field.
func (m *ActionExecutionLogMutation) ResetQueueItemID() {
	m.queue_item_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldQueueItemID)
}

// SetStatus sets the "status" field.
func (m *ActionExecutionLogMutation) SetStatus(a actionexecutionlog.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActionExecutionLogMutation) Status() (r actionexecutionlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldStatus(ctx context.Context) (v actionexecutionlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActionExecutionLogMutation) ResetStatus() {
	m.status = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *ActionExecutionLogMutation) SetExecutionTimeMs(i int) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *ActionExecutionLogMutation) ExecutionTimeMs() (r int, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldExecutionTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *ActionExecutionLogMutation) AddExecutionTimeMs(i int) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *ActionExecutionLogMutation) AddedExecutionTimeMs() (r int, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *ActionExecutionLogMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ActionExecutionLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ActionExecutionLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ActionExecutionLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[actionexecutionlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ActionExecutionLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, actionexecutionlog.FieldErrorMessage)
}

// SetCreatedEntityRefs sets the "created_entity_refs" field.
func (m *ActionExecutionLogMutation) SetCreatedEntityRefs(value []map[string]string) {
	m.created_entity_refs = &value
	m.appendcreated_entity_refs = nil
}

// CreatedEntityRefs returns the value of the "created_entity_refs" field in the mutation.
func (m *ActionExecutionLogMutation) CreatedEntityRefs() (r []map[string]string, exists bool) {
	v := m.created_entity_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedEntityRefs returns the old "created_entity_refs" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldCreatedEntityRefs(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedEntityRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedEntityRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedEntityRefs: %w", err)
	}
	return oldValue.CreatedEntityRefs, nil
}

// AppendCreatedEntityRefs adds value to the "created_entity_refs" field.
func (m *ActionExecutionLogMutation) AppendCreatedEntityRefs(value []map[string]string) {
	m.appendcreated_entity_refs = append(m.appendcreated_entity_refs, value...)
}

// AppendedCreatedEntityRefs returns the list of values that were appended to the "created_entity_refs" field in this mutation.
func (m *ActionExecutionLogMutation) AppendedCreatedEntityRefs() ([]map[string]string, bool) {
	if len(m.appendcreated_entity_refs) == 0 {
		return nil, false
	}
	return m.appendcreated_entity_refs, true
}

// ClearCreatedEntityRefs clears the value of the "created_entity_refs" field.
func (m *ActionExecutionLogMutation) ClearCreatedEntityRefs() {
	m.created_entity_refs = nil
	m.appendcreated_entity_refs = nil
	m.clearedFields[actionexecutionlog.FieldCreatedEntityRefs] = struct{}{}
}

// CreatedEntityRefsCleared returns if the "created_entity_refs" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) CreatedEntityRefsCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldCreatedEntityRefs]
	return ok
}

// ResetCreatedEntityRefs resets all changes to the "created_entity_refs" field.
func (m *ActionExecutionLogMutation) ResetCreatedEntityRefs() {
	m.created_entity_refs = nil
	m.appendcreated_entity_refs = nil
	delete(m.clearedFields, actionexecutionlog.FieldCreatedEntityRefs)
}

// SetChatID sets the "chat_id" field.
func (m *ActionExecutionLogMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ActionExecutionLogMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ClearChatID clears the value of the "chat_id" field.
func (m *ActionExecutionLogMutation) ClearChatID() {
	m.chat_id = nil
	m.clearedFields[actionexecutionlog.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ActionExecutionLogMutation) ResetChatID() {
	m.chat_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldChatID)
}

// SetInstanceID sets the "instance_id" field.
func (m *ActionExecutionLogMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ActionExecutionLogMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *ActionExecutionLogMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[actionexecutionlog.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ActionExecutionLogMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldInstanceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionExecutionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionExecutionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionExecutionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActionExecutionLogMutation builder.
func (m *ActionExecutionLogMutation) Where(ps ...predicate.ActionExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionExecutionLog).
func (m *ActionExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.rule_id != nil {
		fields = append(fields, actionexecutionlog.FieldRuleID)
	}
	if m.queue_item_id != nil {
		fields = append(fields, actionexecutionlog.FieldQueueItemID)
	}
	if m.status != nil {
		fields = append(fields, actionexecutionlog.FieldStatus)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, actionexecutionlog.FieldExecutionTimeMs)
	}
	if m.error_message != nil {
		fields = append(fields, actionexecutionlog.FieldErrorMessage)
	}
	if m.created_entity_refs != nil {
		fields = append(fields, actionexecutionlog.FieldCreatedEntityRefs)
	}
	if m.chat_id != nil {
		fields = append(fields, actionexecutionlog.FieldChatID)
	}
	if m.instance_id != nil {
		fields = append(fields, actionexecutionlog.FieldInstanceID)
	}
	if m.created_at != nil {
		fields = append(fields, actionexecutionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionexecutionlog.FieldRuleID:
		return m.RuleID()
	case actionexecutionlog.FieldQueueItemID:
		return m.QueueItemID()
	case actionexecutionlog.FieldStatus:
		return m.Status()
	case actionexecutionlog.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case actionexecutionlog.FieldErrorMessage:
		return m.ErrorMessage()
	case actionexecutionlog.FieldCreatedEntityRefs:
		return m.CreatedEntityRefs()
	case actionexecutionlog.FieldChatID:
		return m.ChatID()
	case actionexecutionlog.FieldInstanceID:
		return m.InstanceID()
	case actionexecutionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionexecutionlog.FieldRuleID:
		return m.OldRuleID(ctx)
	case actionexecutionlog.FieldQueueItemID:
		return m.OldQueueItemID(ctx)
	case actionexecutionlog.FieldStatus:
		return m.OldStatus(ctx)
	case actionexecutionlog.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case actionexecutionlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case actionexecutionlog.FieldCreatedEntityRefs:
		return m.OldCreatedEntityRefs(ctx)
	case actionexecutionlog.FieldChatID:
		return m.OldChatID(ctx)
	case actionexecutionlog.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case actionexecutionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionexecutionlog.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case actionexecutionlog.FieldQueueItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueItemID(v)
		return nil
	case actionexecutionlog.FieldStatus:
		v, ok := value.(actionexecutionlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case actionexecutionlog.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case actionexecutionlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case actionexecutionlog.FieldCreatedEntityRefs:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedEntityRefs(v)
		return nil
	case actionexecutionlog.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case actionexecutionlog.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case actionexecutionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_time_ms != nil {
		fields = append(fields, actionexecutionlog.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionexecutionlog.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionexecutionlog.FieldExecutionTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionexecutionlog.FieldQueueItemID) {
		fields = append(fields, actionexecutionlog.FieldQueueItemID)
	}
	if m.FieldCleared(actionexecutionlog.FieldErrorMessage) {
		fields = append(fields, actionexecutionlog.FieldErrorMessage)
	}
	if m.FieldCleared(actionexecutionlog.FieldCreatedEntityRefs) {
		fields = append(fields, actionexecutionlog.FieldCreatedEntityRefs)
	}
	if m.FieldCleared(actionexecutionlog.FieldChatID) {
		fields = append(fields, actionexecutionlog.FieldChatID)
	}
	if m.FieldCleared(actionexecutionlog.FieldInstanceID) {
		fields = append(fields, actionexecutionlog.FieldInstanceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionExecutionLogMutation) ClearField(name string) error {
	switch name {
	case actionexecutionlog.FieldQueueItemID:
		m.ClearQueueItemID()
		return nil
	case actionexecutionlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case actionexecutionlog.FieldCreatedEntityRefs:
		m.ClearCreatedEntityRefs()
		return nil
	case actionexecutionlog.FieldChatID:
		m.ClearChatID()
		return nil
	case actionexecutionlog.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionExecutionLogMutation) ResetField(name string) error {
	switch name {
	case actionexecutionlog.FieldRuleID:
		m.ResetRuleID()
		return nil
	case actionexecutionlog.FieldQueueItemID:
		m.ResetQueueItemID()
		return nil
	case actionexecutionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case actionexecutionlog.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case actionexecutionlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case actionexecutionlog.FieldCreatedEntityRefs:
		m.ResetCreatedEntityRefs()
		return nil
	case actionexecutionlog.FieldChatID:
		m.ResetChatID()
		return nil
	case actionexecutionlog.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case actionexecutionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionExecutionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionExecutionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionExecutionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionExecutionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionExecutionLog edge %s", name)
}

// ActionQueueItemMutation represents an operation that mutates the ActionQueueItem nodes in the graph.
type ActionQueueItemMutation struct {
	config
	op              Op
	typ             string
	id              *string
	event_type      *actionqueueitem.EventType
	event_data      *map[string]interface{}
	idempotency_key *string
	status          *actionqueueitem.Status
	result          *string
	priority        *int
	addpriority     *int
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	retry_after_ts  *time.Time
	last_error      *string
	pod_id          *string
	leased_at       *time.Time
	created_at      *time.Time
	processed_at    *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ActionQueueItem, error)
	predicates      []predicate.ActionQueueItem
}

var _ ent.Mutation = (*ActionQueueItemMutation)(nil)

// actionqueueitemOption allows management of the mutation configuration using functional options.
type actionqueueitemOption func(*ActionQueueItemMutation)

// newActionQueueItemMutation creates new mutation for the ActionQueueItem entity.
func newActionQueueItemMutation(c config, op Op, opts ...actionqueueitemOption) *ActionQueueItemMutation {
	m := &ActionQueueItemMutation{
		config:        c,
		op:            op,
		typ:           TypeActionQueueItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionQueueItemID sets the ID field of the mutation.
func withActionQueueItemID(id string) actionqueueitemOption {
	return func(m *ActionQueueItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionQueueItem
		)
		m.oldValue = func(ctx context.Context) (*ActionQueueItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionQueueItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionQueueItem sets the old ActionQueueItem of the mutation.
func withActionQueueItem(node *ActionQueueItem) actionqueueitemOption {
	return func(m *ActionQueueItemMutation) {
		m.oldValue = func(context.Context) (*ActionQueueItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionQueueItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionQueueItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionQueueItem entities.
func (m *ActionQueueItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionQueueItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionQueueItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionQueueItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *ActionQueueItemMutation) SetEventType(at actionqueueitem.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ActionQueueItemMutation) EventType() (r actionqueueitem.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldEventType(ctx context.Context) (v actionqueueitem.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ActionQueueItemMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *ActionQueueItemMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *ActionQueueItemMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ResetEventData resets all changes to the "event_data" field.
func (m *ActionQueueItemMutation) ResetEventData() {
	m.event_data = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *ActionQueueItemMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *ActionQueueItemMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *ActionQueueItemMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetStatus sets the "status" field.
func (m *ActionQueueItemMutation) SetStatus(a actionqueueitem.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActionQueueItemMutation) Status() (r actionqueueitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldStatus(ctx context.Context) (v actionqueueitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActionQueueItemMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ActionQueueItemMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *ActionQueueItemMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ActionQueueItemMutation) ClearResult() {
	m.result = nil
	m.clearedFields[actionqueueitem.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ActionQueueItemMutation) ResultCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ActionQueueItemMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, actionqueueitem.FieldResult)
}

// SetPriority sets the "priority" field.
func (m *ActionQueueItemMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ActionQueueItemMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ActionQueueItemMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ActionQueueItemMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ActionQueueItemMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempts sets the "attempts" field.
func (m *ActionQueueItemMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ActionQueueItemMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ActionQueueItemMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ActionQueueItemMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ActionQueueItemMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *ActionQueueItemMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *ActionQueueItemMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *ActionQueueItemMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *ActionQueueItemMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *ActionQueueItemMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRetryAfterTs sets the "retry_after_ts" field.
func (m *ActionQueueItemMutation) SetRetryAfterTs(t time.Time) {
	m.retry_after_ts = &t
}

// RetryAfterTs returns the value of the "retry_after_ts" field in the mutation.
func (m *ActionQueueItemMutation) RetryAfterTs() (r time.Time, exists bool) {
	v := m.retry_after_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAfterTs returns the old "retry_after_ts" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldRetryAfterTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAfterTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAfterTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAfterTs: %w", err)
	}
	return oldValue.RetryAfterTs, nil
}

// ResetRetryAfterTs resets all changes to the "retry_after_ts" field.
func (m *ActionQueueItemMutation) ResetRetryAfterTs() {
	m.retry_after_ts = nil
}

// SetLastError sets the "last_error" field.
func (m *ActionQueueItemMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ActionQueueItemMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ActionQueueItemMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[actionqueueitem.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ActionQueueItemMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ActionQueueItemMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, actionqueueitem.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *ActionQueueItemMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ActionQueueItemMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ActionQueueItemMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[actionqueueitem.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ActionQueueItemMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ActionQueueItemMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, actionqueueitem.FieldPodID)
}

// SetLeasedAt sets the "leased_at" field.
func (m *ActionQueueItemMutation) SetLeasedAt(t time.Time) {
	m.leased_at = &t
}

// LeasedAt returns the value of the "leased_at" field in the mutation.
func (m *ActionQueueItemMutation) LeasedAt() (r time.Time, exists bool) {
	v := m.leased_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedAt returns the old "leased_at" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldLeasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedAt: %w", err)
	}
	return oldValue.LeasedAt, nil
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (m *ActionQueueItemMutation) ClearLeasedAt() {
	m.leased_at = nil
	m.clearedFields[actionqueueitem.FieldLeasedAt] = struct{}{}
}

// LeasedAtCleared returns if the "leased_at" field was cleared in this mutation.
func (m *ActionQueueItemMutation) LeasedAtCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldLeasedAt]
	return ok
}

// ResetLeasedAt resets all changes to the "leased_at" field.
func (m *ActionQueueItemMutation) ResetLeasedAt() {
	m.leased_at = nil
	delete(m.clearedFields, actionqueueitem.FieldLeasedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionQueueItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionQueueItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionQueueItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ActionQueueItemMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ActionQueueItemMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ActionQueueItemMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[actionqueueitem.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ActionQueueItemMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ActionQueueItemMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, actionqueueitem.FieldProcessedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ActionQueueItemMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ActionQueueItemMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ActionQueueItem entity.
// If the ActionQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionQueueItemMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ActionQueueItemMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[actionqueueitem.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ActionQueueItemMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[actionqueueitem.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ActionQueueItemMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, actionqueueitem.FieldCompletedAt)
}

// Where appends a list predicates to the ActionQueueItemMutation builder.
func (m *ActionQueueItemMutation) Where(ps ...predicate.ActionQueueItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionQueueItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionQueueItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionQueueItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionQueueItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionQueueItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionQueueItem).
func (m *ActionQueueItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionQueueItemMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.event_type != nil {
		fields = append(fields, actionqueueitem.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, actionqueueitem.FieldEventData)
	}
	if m.idempotency_key != nil {
		fields = append(fields, actionqueueitem.FieldIdempotencyKey)
	}
	if m.status != nil {
		fields = append(fields, actionqueueitem.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, actionqueueitem.FieldResult)
	}
	if m.priority != nil {
		fields = append(fields, actionqueueitem.FieldPriority)
	}
	if m.attempts != nil {
		fields = append(fields, actionqueueitem.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, actionqueueitem.FieldMaxAttempts)
	}
	if m.retry_after_ts != nil {
		fields = append(fields, actionqueueitem.FieldRetryAfterTs)
	}
	if m.last_error != nil {
		fields = append(fields, actionqueueitem.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, actionqueueitem.FieldPodID)
	}
	if m.leased_at != nil {
		fields = append(fields, actionqueueitem.FieldLeasedAt)
	}
	if m.created_at != nil {
		fields = append(fields, actionqueueitem.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, actionqueueitem.FieldProcessedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, actionqueueitem.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionQueueItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionqueueitem.FieldEventType:
		return m.EventType()
	case actionqueueitem.FieldEventData:
		return m.EventData()
	case actionqueueitem.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case actionqueueitem.FieldStatus:
		return m.Status()
	case actionqueueitem.FieldResult:
		return m.Result()
	case actionqueueitem.FieldPriority:
		return m.Priority()
	case actionqueueitem.FieldAttempts:
		return m.Attempts()
	case actionqueueitem.FieldMaxAttempts:
		return m.MaxAttempts()
	case actionqueueitem.FieldRetryAfterTs:
		return m.RetryAfterTs()
	case actionqueueitem.FieldLastError:
		return m.LastError()
	case actionqueueitem.FieldPodID:
		return m.PodID()
	case actionqueueitem.FieldLeasedAt:
		return m.LeasedAt()
	case actionqueueitem.FieldCreatedAt:
		return m.CreatedAt()
	case actionqueueitem.FieldProcessedAt:
		return m.ProcessedAt()
	case actionqueueitem.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionQueueItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionqueueitem.FieldEventType:
		return m.OldEventType(ctx)
	case actionqueueitem.FieldEventData:
		return m.OldEventData(ctx)
	case actionqueueitem.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case actionqueueitem.FieldStatus:
		return m.OldStatus(ctx)
	case actionqueueitem.FieldResult:
		return m.OldResult(ctx)
	case actionqueueitem.FieldPriority:
		return m.OldPriority(ctx)
	case actionqueueitem.FieldAttempts:
		return m.OldAttempts(ctx)
	case actionqueueitem.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case actionqueueitem.FieldRetryAfterTs:
		return m.OldRetryAfterTs(ctx)
	case actionqueueitem.FieldLastError:
		return m.OldLastError(ctx)
	case actionqueueitem.FieldPodID:
		return m.OldPodID(ctx)
	case actionqueueitem.FieldLeasedAt:
		return m.OldLeasedAt(ctx)
	case actionqueueitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case actionqueueitem.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case actionqueueitem.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionQueueItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionQueueItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionqueueitem.FieldEventType:
		v, ok := value.(actionqueueitem.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case actionqueueitem.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case actionqueueitem.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case actionqueueitem.FieldStatus:
		v, ok := value.(actionqueueitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case actionqueueitem.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case actionqueueitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case actionqueueitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case actionqueueitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case actionqueueitem.FieldRetryAfterTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAfterTs(v)
		return nil
	case actionqueueitem.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case actionqueueitem.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case actionqueueitem.FieldLeasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedAt(v)
		return nil
	case actionqueueitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case actionqueueitem.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case actionqueueitem.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionQueueItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionQueueItemMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, actionqueueitem.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, actionqueueitem.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, actionqueueitem.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionQueueItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionqueueitem.FieldPriority:
		return m.AddedPriority()
	case actionqueueitem.FieldAttempts:
		return m.AddedAttempts()
	case actionqueueitem.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionQueueItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionqueueitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case actionqueueitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case actionqueueitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ActionQueueItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionQueueItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionqueueitem.FieldResult) {
		fields = append(fields, actionqueueitem.FieldResult)
	}
	if m.FieldCleared(actionqueueitem.FieldLastError) {
		fields = append(fields, actionqueueitem.FieldLastError)
	}
	if m.FieldCleared(actionqueueitem.FieldPodID) {
		fields = append(fields, actionqueueitem.FieldPodID)
	}
	if m.FieldCleared(actionqueueitem.FieldLeasedAt) {
		fields = append(fields, actionqueueitem.FieldLeasedAt)
	}
	if m.FieldCleared(actionqueueitem.FieldProcessedAt) {
		fields = append(fields, actionqueueitem.FieldProcessedAt)
	}
	if m.FieldCleared(actionqueueitem.FieldCompletedAt) {
		fields = append(fields, actionqueueitem.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionQueueItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionQueueItemMutation) ClearField(name string) error {
	switch name {
	case actionqueueitem.FieldResult:
		m.ClearResult()
		return nil
	case actionqueueitem.FieldLastError:
		m.ClearLastError()
		return nil
	case actionqueueitem.FieldPodID:
		m.ClearPodID()
		return nil
	case actionqueueitem.FieldLeasedAt:
		m.ClearLeasedAt()
		return nil
	case actionqueueitem.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case actionqueueitem.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionQueueItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionQueueItemMutation) ResetField(name string) error {
	switch name {
	case actionqueueitem.FieldEventType:
		m.ResetEventType()
		return nil
	case actionqueueitem.FieldEventData:
		m.ResetEventData()
		return nil
	case actionqueueitem.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case actionqueueitem.FieldStatus:
		m.ResetStatus()
		return nil
	case actionqueueitem.FieldResult:
		m.ResetResult()
		return nil
	case actionqueueitem.FieldPriority:
		m.ResetPriority()
		return nil
	case actionqueueitem.FieldAttempts:
		m.ResetAttempts()
		return nil
	case actionqueueitem.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case actionqueueitem.FieldRetryAfterTs:
		m.ResetRetryAfterTs()
		return nil
	case actionqueueitem.FieldLastError:
		m.ResetLastError()
		return nil
	case actionqueueitem.FieldPodID:
		m.ResetPodID()
		return nil
	case actionqueueitem.FieldLeasedAt:
		m.ResetLeasedAt()
		return nil
	case actionqueueitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case actionqueueitem.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case actionqueueitem.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionQueueItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionQueueItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionQueueItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionQueueItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionQueueItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionQueueItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionQueueItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionQueueItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionQueueItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionQueueItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionQueueItem edge %s", name)
}

// ActionRuleMutation represents an operation that mutates the ActionRule nodes in the graph.
type ActionRuleMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	rule_name                 *string
	rule_type                 *actionrule.RuleType
	trigger_type              *actionrule.TriggerType
	trigger_value             *string
	action_type               *actionrule.ActionType
	_config                   *map[string]interface{}
	conditions                *map[string]interface{}
	active                    *bool
	cooldown_minutes          *int
	addcooldown_minutes       *int
	max_executions_per_day    *int
	addmax_executions_per_day *int
	total_executions          *int
	addtotal_executions       *int
	last_executed_at          *time.Time
	created_by                *string
	created_at                *time.Time
	updated_at                *time.Time
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ActionRule, error)
	predicates                []predicate.ActionRule
}

var _ ent.Mutation = (*ActionRuleMutation)(nil)

// actionruleOption allows management of the mutation configuration using functional options.
type actionruleOption func(*ActionRuleMutation)

// newActionRuleMutation creates new mutation for the ActionRule entity.
func newActionRuleMutation(c config, op Op, opts ...actionruleOption) *ActionRuleMutation {
	m := &ActionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeActionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionRuleID sets the ID field of the mutation.
func withActionRuleID(id string) actionruleOption {
	return func(m *ActionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionRule
		)
		m.oldValue = func(ctx context.Context) (*ActionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionRule sets the old ActionRule of the mutation.
func withActionRule(node *ActionRule) actionruleOption {
	return func(m *ActionRuleMutation) {
		m.oldValue = func(context.Context) (*ActionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionRule entities.
func (m *ActionRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleName sets the "rule_name" field.
func (m *ActionRuleMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *ActionRuleMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *ActionRuleMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetRuleType sets the "rule_type" field.
func (m *ActionRuleMutation) SetRuleType(at actionrule.RuleType) {
	m.rule_type = &at
}

// RuleType returns the value of the "rule_type" field in the mutation.
func (m *ActionRuleMutation) RuleType() (r actionrule.RuleType, exists bool) {
	v := m.rule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleType returns the old "rule_type" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldRuleType(ctx context.Context) (v actionrule.RuleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleType: %w", err)
	}
	return oldValue.RuleType, nil
}

// ResetRuleType resets all changes to the "rule_type" field.
func (m *ActionRuleMutation) ResetRuleType() {
	m.rule_type = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *ActionRuleMutation) SetTriggerType(at actionrule.TriggerType) {
	m.trigger_type = &at
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *ActionRuleMutation) TriggerType() (r actionrule.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldTriggerType(ctx context.Context) (v actionrule.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *ActionRuleMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggerValue sets the "trigger_value" field.
func (m *ActionRuleMutation) SetTriggerValue(s string) {
	m.trigger_value = &s
}

// TriggerValue returns the value of the "trigger_value" field in the mutation.
func (m *ActionRuleMutation) TriggerValue() (r string, exists bool) {
	v := m.trigger_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerValue returns the old "trigger_value" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldTriggerValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerValue: %w", err)
	}
	return oldValue.TriggerValue, nil
}

// ResetTriggerValue resets all changes to the "trigger_value" field.
func (m *ActionRuleMutation) ResetTriggerValue() {
	m.trigger_value = nil
}

// SetActionType sets the "action_type" field.
func (m *ActionRuleMutation) SetActionType(at actionrule.ActionType) {
	m.action_type = &at
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *ActionRuleMutation) ActionType() (r actionrule.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldActionType(ctx context.Context) (v actionrule.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *ActionRuleMutation) ResetActionType() {
	m.action_type = nil
}

// SetConfig sets the "config" field.
func (m *ActionRuleMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ActionRuleMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ActionRuleMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[actionrule.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ActionRuleMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[actionrule.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ActionRuleMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, actionrule.FieldConfig)
}

// SetConditions sets the "conditions" field.
func (m *ActionRuleMutation) SetConditions(value map[string]interface{}) {
	m.conditions = &value
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *ActionRuleMutation) Conditions() (r map[string]interface{}, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldConditions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// ClearConditions clears the value of the "conditions" field.
func (m *ActionRuleMutation) ClearConditions() {
	m.conditions = nil
	m.clearedFields[actionrule.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *ActionRuleMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[actionrule.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *ActionRuleMutation) ResetConditions() {
	m.conditions = nil
	delete(m.clearedFields, actionrule.FieldConditions)
}

// SetActive sets the "active" field.
func (m *ActionRuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ActionRuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ActionRuleMutation) ResetActive() {
	m.active = nil
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (m *ActionRuleMutation) SetCooldownMinutes(i int) {
	m.cooldown_minutes = &i
	m.addcooldown_minutes = nil
}

// CooldownMinutes returns the value of the "cooldown_minutes" field in the mutation.
func (m *ActionRuleMutation) CooldownMinutes() (r int, exists bool) {
	v := m.cooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownMinutes returns the old "cooldown_minutes" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldCooldownMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownMinutes: %w", err)
	}
	return oldValue.CooldownMinutes, nil
}

// AddCooldownMinutes adds i to the "cooldown_minutes" field.
func (m *ActionRuleMutation) AddCooldownMinutes(i int) {
	if m.addcooldown_minutes != nil {
		*m.addcooldown_minutes += i
	} else {
		m.addcooldown_minutes = &i
	}
}

// AddedCooldownMinutes returns the value that was added to the "cooldown_minutes" field in this mutation.
func (m *ActionRuleMutation) AddedCooldownMinutes() (r int, exists bool) {
	v := m.addcooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCooldownMinutes resets all changes to the "cooldown_minutes" field.
func (m *ActionRuleMutation) ResetCooldownMinutes() {
	m.cooldown_minutes = nil
	m.addcooldown_minutes = nil
}

// SetMaxExecutionsPerDay sets the "max_executions_per_day" field.
func (m *ActionRuleMutation) SetMaxExecutionsPerDay(i int) {
	m.max_executions_per_day = &i
	m.addmax_executions_per_day = nil
}

// MaxExecutionsPerDay returns the value of the "max_executions_per_day" field in the mutation.
func (m *ActionRuleMutation) MaxExecutionsPerDay() (r int, exists bool) {
	v := m.max_executions_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxExecutionsPerDay returns the old "max_executions_per_day" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldMaxExecutionsPerDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxExecutionsPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxExecutionsPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxExecutionsPerDay: %w", err)
	}
	return oldValue.MaxExecutionsPerDay, nil
}

// AddMaxExecutionsPerDay adds i to the "max_executions_per_day" field.
func (m *ActionRuleMutation) AddMaxExecutionsPerDay(i int) {
	if m.addmax_executions_per_day != nil {
		*m.addmax_executions_per_day += i
	} else {
		m.addmax_executions_per_day = &i
	}
}

// AddedMaxExecutionsPerDay returns the value that was added to the "max_executions_per_day" field in this mutation.
func (m *ActionRuleMutation) AddedMaxExecutionsPerDay() (r int, exists bool) {
	v := m.addmax_executions_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxExecutionsPerDay resets all changes to the "max_executions_per_day" field.
func (m *ActionRuleMutation) ResetMaxExecutionsPerDay() {
	m.max_executions_per_day = nil
	m.addmax_executions_per_day = nil
}

// SetTotalExecutions sets the "total_executions" field.
func (m *ActionRuleMutation) SetTotalExecutions(i int) {
	m.total_executions = &i
	m.addtotal_executions = nil
}

// TotalExecutions returns the value of the "total_executions" field in the mutation.
func (m *ActionRuleMutation) TotalExecutions() (r int, exists bool) {
	v := m.total_executions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExecutions returns the old "total_executions" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldTotalExecutions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExecutions: %w", err)
	}
	return oldValue.TotalExecutions, nil
}

// AddTotalExecutions adds i to the "total_executions" field.
func (m *ActionRuleMutation) AddTotalExecutions(i int) {
	if m.addtotal_executions != nil {
		*m.addtotal_executions += i
	} else {
		m.addtotal_executions = &i
	}
}

// AddedTotalExecutions returns the value that was added to the "total_executions" field in this mutation.
func (m *ActionRuleMutation) AddedTotalExecutions() (r int, exists bool) {
	v := m.addtotal_executions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExecutions resets all changes to the "total_executions" field.
func (m *ActionRuleMutation) ResetTotalExecutions() {
	m.total_executions = nil
	m.addtotal_executions = nil
}

// SetLastExecutedAt sets the "last_executed_at" field.
func (m *ActionRuleMutation) SetLastExecutedAt(t time.Time) {
	m.last_executed_at = &t
}

// LastExecutedAt returns the value of the "last_executed_at" field in the mutation.
func (m *ActionRuleMutation) LastExecutedAt() (r time.Time, exists bool) {
	v := m.last_executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExecutedAt returns the old "last_executed_at" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldLastExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExecutedAt: %w", err)
	}
	return oldValue.LastExecutedAt, nil
}

// ClearLastExecutedAt clears the value of the "last_executed_at" field.
func (m *ActionRuleMutation) ClearLastExecutedAt() {
	m.last_executed_at = nil
	m.clearedFields[actionrule.FieldLastExecutedAt] = struct{}{}
}

// LastExecutedAtCleared returns if the "last_executed_at" field was cleared in this mutation.
func (m *ActionRuleMutation) LastExecutedAtCleared() bool {
	_, ok := m.clearedFields[actionrule.FieldLastExecutedAt]
	return ok
}

// ResetLastExecutedAt resets all changes to the "last_executed_at" field.
func (m *ActionRuleMutation) ResetLastExecutedAt() {
	m.last_executed_at = nil
	delete(m.clearedFields, actionrule.FieldLastExecutedAt)
}

// SetCreatedBy sets the "created_by" field.
func (m *ActionRuleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ActionRuleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ActionRuleMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[actionrule.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ActionRuleMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[actionrule.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ActionRuleMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, actionrule.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ActionRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ActionRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ActionRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ActionRuleMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ActionRuleMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ActionRule entity.
// If the ActionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRuleMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ActionRuleMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[actionrule.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ActionRuleMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[actionrule.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ActionRuleMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, actionrule.FieldDeletedAt)
}

// Where appends a list predicates to the ActionRuleMutation builder.
func (m *ActionRuleMutation) Where(ps ...predicate.ActionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionRule).
func (m *ActionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionRuleMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.rule_name != nil {
		fields = append(fields, actionrule.FieldRuleName)
	}
	if m.rule_type != nil {
		fields = append(fields, actionrule.FieldRuleType)
	}
	if m.trigger_type != nil {
		fields = append(fields, actionrule.FieldTriggerType)
	}
	if m.trigger_value != nil {
		fields = append(fields, actionrule.FieldTriggerValue)
	}
	if m.action_type != nil {
		fields = append(fields, actionrule.FieldActionType)
	}
	if m._config != nil {
		fields = append(fields, actionrule.FieldConfig)
	}
	if m.conditions != nil {
		fields = append(fields, actionrule.FieldConditions)
	}
	if m.active != nil {
		fields = append(fields, actionrule.FieldActive)
	}
	if m.cooldown_minutes != nil {
		fields = append(fields, actionrule.FieldCooldownMinutes)
	}
	if m.max_executions_per_day != nil {
		fields = append(fields, actionrule.FieldMaxExecutionsPerDay)
	}
	if m.total_executions != nil {
		fields = append(fields, actionrule.FieldTotalExecutions)
	}
	if m.last_executed_at != nil {
		fields = append(fields, actionrule.FieldLastExecutedAt)
	}
	if m.created_by != nil {
		fields = append(fields, actionrule.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, actionrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, actionrule.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, actionrule.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionrule.FieldRuleName:
		return m.RuleName()
	case actionrule.FieldRuleType:
		return m.RuleType()
	case actionrule.FieldTriggerType:
		return m.TriggerType()
	case actionrule.FieldTriggerValue:
		return m.TriggerValue()
	case actionrule.FieldActionType:
		return m.ActionType()
	case actionrule.FieldConfig:
		return m.Config()
	case actionrule.FieldConditions:
		return m.Conditions()
	case actionrule.FieldActive:
		return m.Active()
	case actionrule.FieldCooldownMinutes:
		return m.CooldownMinutes()
	case actionrule.FieldMaxExecutionsPerDay:
		return m.MaxExecutionsPerDay()
	case actionrule.FieldTotalExecutions:
		return m.TotalExecutions()
	case actionrule.FieldLastExecutedAt:
		return m.LastExecutedAt()
	case actionrule.FieldCreatedBy:
		return m.CreatedBy()
	case actionrule.FieldCreatedAt:
		return m.CreatedAt()
	case actionrule.FieldUpdatedAt:
		return m.UpdatedAt()
	case actionrule.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionrule.FieldRuleName:
		return m.OldRuleName(ctx)
	case actionrule.FieldRuleType:
		return m.OldRuleType(ctx)
	case actionrule.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case actionrule.FieldTriggerValue:
		return m.OldTriggerValue(ctx)
	case actionrule.FieldActionType:
		return m.OldActionType(ctx)
	case actionrule.FieldConfig:
		return m.OldConfig(ctx)
	case actionrule.FieldConditions:
		return m.OldConditions(ctx)
	case actionrule.FieldActive:
		return m.OldActive(ctx)
	case actionrule.FieldCooldownMinutes:
		return m.OldCooldownMinutes(ctx)
	case actionrule.FieldMaxExecutionsPerDay:
		return m.OldMaxExecutionsPerDay(ctx)
	case actionrule.FieldTotalExecutions:
		return m.OldTotalExecutions(ctx)
	case actionrule.FieldLastExecutedAt:
		return m.OldLastExecutedAt(ctx)
	case actionrule.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case actionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case actionrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case actionrule.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionrule.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case actionrule.FieldRuleType:
		v, ok := value.(actionrule.RuleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleType(v)
		return nil
	case actionrule.FieldTriggerType:
		v, ok := value.(actionrule.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case actionrule.FieldTriggerValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerValue(v)
		return nil
	case actionrule.FieldActionType:
		v, ok := value.(actionrule.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case actionrule.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case actionrule.FieldConditions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case actionrule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case actionrule.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownMinutes(v)
		return nil
	case actionrule.FieldMaxExecutionsPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxExecutionsPerDay(v)
		return nil
	case actionrule.FieldTotalExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExecutions(v)
		return nil
	case actionrule.FieldLastExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExecutedAt(v)
		return nil
	case actionrule.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case actionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case actionrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case actionrule.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionRuleMutation) AddedFields() []string {
	var fields []string
	if m.addcooldown_minutes != nil {
		fields = append(fields, actionrule.FieldCooldownMinutes)
	}
	if m.addmax_executions_per_day != nil {
		fields = append(fields, actionrule.FieldMaxExecutionsPerDay)
	}
	if m.addtotal_executions != nil {
		fields = append(fields, actionrule.FieldTotalExecutions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionrule.FieldCooldownMinutes:
		return m.AddedCooldownMinutes()
	case actionrule.FieldMaxExecutionsPerDay:
		return m.AddedMaxExecutionsPerDay()
	case actionrule.FieldTotalExecutions:
		return m.AddedTotalExecutions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionrule.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCooldownMinutes(v)
		return nil
	case actionrule.FieldMaxExecutionsPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxExecutionsPerDay(v)
		return nil
	case actionrule.FieldTotalExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExecutions(v)
		return nil
	}
	return fmt.Errorf("unknown ActionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionrule.FieldConfig) {
		fields = append(fields, actionrule.FieldConfig)
	}
	if m.FieldCleared(actionrule.FieldConditions) {
		fields = append(fields, actionrule.FieldConditions)
	}
	if m.FieldCleared(actionrule.FieldLastExecutedAt) {
		fields = append(fields, actionrule.FieldLastExecutedAt)
	}
	if m.FieldCleared(actionrule.FieldCreatedBy) {
		fields = append(fields, actionrule.FieldCreatedBy)
	}
	if m.FieldCleared(actionrule.FieldDeletedAt) {
		fields = append(fields, actionrule.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionRuleMutation) ClearField(name string) error {
	switch name {
	case actionrule.FieldConfig:
		m.ClearConfig()
		return nil
	case actionrule.FieldConditions:
		m.ClearConditions()
		return nil
	case actionrule.FieldLastExecutedAt:
		m.ClearLastExecutedAt()
		return nil
	case actionrule.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case actionrule.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionRuleMutation) ResetField(name string) error {
	switch name {
	case actionrule.FieldRuleName:
		m.ResetRuleName()
		return nil
	case actionrule.FieldRuleType:
		m.ResetRuleType()
		return nil
	case actionrule.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case actionrule.FieldTriggerValue:
		m.ResetTriggerValue()
		return nil
	case actionrule.FieldActionType:
		m.ResetActionType()
		return nil
	case actionrule.FieldConfig:
		m.ResetConfig()
		return nil
	case actionrule.FieldConditions:
		m.ResetConditions()
		return nil
	case actionrule.FieldActive:
		m.ResetActive()
		return nil
	case actionrule.FieldCooldownMinutes:
		m.ResetCooldownMinutes()
		return nil
	case actionrule.FieldMaxExecutionsPerDay:
		m.ResetMaxExecutionsPerDay()
		return nil
	case actionrule.FieldTotalExecutions:
		m.ResetTotalExecutions()
		return nil
	case actionrule.FieldLastExecutedAt:
		m.ResetLastExecutedAt()
		return nil
	case actionrule.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case actionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case actionrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case actionrule.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionRule edge %s", name)
}

// BillMutation represents an operation that mutates the Bill nodes in the graph.
type BillMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	vendor                 *string
	amount                 *decimal.Decimal
	addamount              *decimal.Decimal
	currency               *string
	due_date               *time.Time
	category               *string
	is_recurring           *bool
	recurrence_type        *string
	recurrence_interval    *int
	addrecurrence_interval *int
	recurrence_end_date    *time.Time
	next_due_date          *time.Time
	auto_pay_enabled       *bool
	status                 *bill.Status
	priority               *bill.Priority
	tags                   *[]string
	appendtags             []string
	space_id               *string
	created_by             *string
	metadata               *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Bill, error)
	predicates             []predicate.Bill
}

var _ ent.Mutation = (*BillMutation)(nil)

// billOption allows management of the mutation configuration using functional options.
type billOption func(*BillMutation)

// newBillMutation creates new mutation for the Bill entity.
func newBillMutation(c config, op Op, opts ...billOption) *BillMutation {
	m := &BillMutation{
		config:        c,
		op:            op,
		typ:           TypeBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillID sets the ID field of the mutation.
func withBillID(id string) billOption {
	return func(m *BillMutation) {
		var (
			err   error
			once  sync.Once
			value *Bill
		)
		m.oldValue = func(ctx context.Context) (*Bill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBill sets the old Bill of the mutation.
func withBill(node *Bill) billOption {
	return func(m *BillMutation) {
		m.oldValue = func(context.Context) (*Bill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bill entities.
func (m *BillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendor sets the "vendor" field.
func (m *BillMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *BillMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *BillMutation) ResetVendor() {
	m.vendor = nil
}

// SetAmount sets the "amount" field.
func (m *BillMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BillMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds d to the "amount" field.
func (m *BillMutation) AddAmount(d decimal.Decimal) {
	if m.addamount != nil {
		*m.addamount = m.addamount.Add(d)
	} else {
		m.addamount = &d
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BillMutation) AddedAmount() (r decimal.Decimal, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BillMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *BillMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *BillMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *BillMutation) ResetCurrency() {
	m.currency = nil
}

// SetDueDate sets the "due_date" field.
func (m *BillMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *BillMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *BillMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[bill.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *BillMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *BillMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, bill.FieldDueDate)
}

// SetCategory sets the "category" field.
func (m *BillMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *BillMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *BillMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[bill.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *BillMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[bill.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *BillMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, bill.FieldCategory)
}

// SetIsRecurring sets the "is_recurring" field.
func (m *BillMutation) SetIsRecurring(b bool) {
	m.is_recurring = &b
}

// IsRecurring returns the value of the "is_recurring" field in the mutation.
func (m *BillMutation) IsRecurring() (r bool, exists bool) {
	v := m.is_recurring
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRecurring returns the old "is_recurring" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldIsRecurring(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRecurring is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRecurring requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRecurring: %w", err)
	}
	return oldValue.IsRecurring, nil
}

// ResetIsRecurring resets all changes to the "is_recurring" field.
func (m *BillMutation) ResetIsRecurring() {
	m.is_recurring = nil
}

// SetRecurrenceType sets the "recurrence_type" field.
func (m *BillMutation) SetRecurrenceType(s string) {
	m.recurrence_type = &s
}

// RecurrenceType returns the value of the "recurrence_type" field in the mutation.
func (m *BillMutation) RecurrenceType() (r string, exists bool) {
	v := m.recurrence_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceType returns the old "recurrence_type" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldRecurrenceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceType: %w", err)
	}
	return oldValue.RecurrenceType, nil
}

// ClearRecurrenceType clears the value of the "recurrence_type" field.
func (m *BillMutation) ClearRecurrenceType() {
	m.recurrence_type = nil
	m.clearedFields[bill.FieldRecurrenceType] = struct{}{}
}

// RecurrenceTypeCleared returns if the "recurrence_type" field was cleared in this mutation.
func (m *BillMutation) RecurrenceTypeCleared() bool {
	_, ok := m.clearedFields[bill.FieldRecurrenceType]
	return ok
}

// ResetRecurrenceType resets all changes to the "recurrence_type" field.
func (m *BillMutation) ResetRecurrenceType() {
	m.recurrence_type = nil
	delete(m.clearedFields, bill.FieldRecurrenceType)
}

// SetRecurrenceInterval sets the "recurrence_interval" field.
func (m *BillMutation) SetRecurrenceInterval(i int) {
	m.recurrence_interval = &i
	m.addrecurrence_interval = nil
}

// RecurrenceInterval returns the value of the "recurrence_interval" field in the mutation.
func (m *BillMutation) RecurrenceInterval() (r int, exists bool) {
	v := m.recurrence_interval
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceInterval returns the old "recurrence_interval" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldRecurrenceInterval(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceInterval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceInterval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceInterval: %w", err)
	}
	return oldValue.RecurrenceInterval, nil
}

// AddRecurrenceInterval adds i to the "recurrence_interval" field.
func (m *BillMutation) AddRecurrenceInterval(i int) {
	if m.addrecurrence_interval != nil {
		*m.addrecurrence_interval += i
	} else {
		m.addrecurrence_interval = &i
	}
}

// AddedRecurrenceInterval returns the value that was added to the "recurrence_interval" field in this mutation.
func (m *BillMutation) AddedRecurrenceInterval() (r int, exists bool) {
	v := m.addrecurrence_interval
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecurrenceInterval resets all changes to the "recurrence_interval" field.
func (m *BillMutation) ResetRecurrenceInterval() {
	m.recurrence_interval = nil
	m.addrecurrence_interval = nil
}

// SetRecurrenceEndDate sets the "recurrence_end_date" field.
func (m *BillMutation) SetRecurrenceEndDate(t time.Time) {
	m.recurrence_end_date = &t
}

// RecurrenceEndDate returns the value of the "recurrence_end_date" field in the mutation.
func (m *BillMutation) RecurrenceEndDate() (r time.Time, exists bool) {
	v := m.recurrence_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrenceEndDate returns the old "recurrence_end_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldRecurrenceEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrenceEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrenceEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrenceEndDate: %w", err)
	}
	return oldValue.RecurrenceEndDate, nil
}

// ClearRecurrenceEndDate clears the value of the "recurrence_end_date" field.
func (m *BillMutation) ClearRecurrenceEndDate() {
	m.recurrence_end_date = nil
	m.clearedFields[bill.FieldRecurrenceEndDate] = struct{}{}
}

// RecurrenceEndDateCleared returns if the "recurrence_end_date" field was cleared in this mutation.
func (m *BillMutation) RecurrenceEndDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldRecurrenceEndDate]
	return ok
}

// ResetRecurrenceEndDate resets all changes to the "recurrence_end_date" field.
func (m *BillMutation) ResetRecurrenceEndDate() {
	m.recurrence_end_date = nil
	delete(m.clearedFields, bill.FieldRecurrenceEndDate)
}

// SetNextDueDate sets the "next_due_date" field.
func (m *BillMutation) SetNextDueDate(t time.Time) {
	m.next_due_date = &t
}

// NextDueDate returns the value of the "next_due_date" field in the mutation.
func (m *BillMutation) NextDueDate() (r time.Time, exists bool) {
	v := m.next_due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextDueDate returns the old "next_due_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldNextDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextDueDate: %w", err)
	}
	return oldValue.NextDueDate, nil
}

// ClearNextDueDate clears the value of the "next_due_date" field.
func (m *BillMutation) ClearNextDueDate() {
	m.next_due_date = nil
	m.clearedFields[bill.FieldNextDueDate] = struct{}{}
}

// NextDueDateCleared returns if the "next_due_date" field was cleared in this mutation.
func (m *BillMutation) NextDueDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldNextDueDate]
	return ok
}

// ResetNextDueDate resets all changes to the "next_due_date" field.
func (m *BillMutation) ResetNextDueDate() {
	m.next_due_date = nil
	delete(m.clearedFields, bill.FieldNextDueDate)
}

// SetAutoPayEnabled sets the "auto_pay_enabled" field.
func (m *BillMutation) SetAutoPayEnabled(b bool) {
	m.auto_pay_enabled = &b
}

// AutoPayEnabled returns the value of the "auto_pay_enabled" field in the mutation.
func (m *BillMutation) AutoPayEnabled() (r bool, exists bool) {
	v := m.auto_pay_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoPayEnabled returns the old "auto_pay_enabled" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldAutoPayEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoPayEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoPayEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoPayEnabled: %w", err)
	}
	return oldValue.AutoPayEnabled, nil
}

// ResetAutoPayEnabled resets all changes to the "auto_pay_enabled" field.
func (m *BillMutation) ResetAutoPayEnabled() {
	m.auto_pay_enabled = nil
}

// SetStatus sets the "status" field.
func (m *BillMutation) SetStatus(b bill.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BillMutation) Status() (r bill.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldStatus(ctx context.Context) (v bill.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BillMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *BillMutation) SetPriority(b bill.Priority) {
	m.priority = &b
}

// Priority returns the value of the "priority" field in the mutation.
func (m *BillMutation) Priority() (r bill.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldPriority(ctx context.Context) (v bill.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *BillMutation) ResetPriority() {
	m.priority = nil
}

// SetTags sets the "tags" field.
func (m *BillMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *BillMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *BillMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *BillMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *BillMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[bill.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *BillMutation) TagsCleared() bool {
	_, ok := m.clearedFields[bill.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *BillMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, bill.FieldTags)
}

// SetSpaceID sets the "space_id" field.
func (m *BillMutation) SetSpaceID(s string) {
	m.space_id = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *BillMutation) SpaceID() (r string, exists bool) {
	v := m.space_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ClearSpaceID clears the value of the "space_id" field.
func (m *BillMutation) ClearSpaceID() {
	m.space_id = nil
	m.clearedFields[bill.FieldSpaceID] = struct{}{}
}

// SpaceIDCleared returns if the "space_id" field was cleared in this mutation.
func (m *BillMutation) SpaceIDCleared() bool {
	_, ok := m.clearedFields[bill.FieldSpaceID]
	return ok
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *BillMutation) ResetSpaceID() {
	m.space_id = nil
	delete(m.clearedFields, bill.FieldSpaceID)
}

// SetCreatedBy sets the "created_by" field.
func (m *BillMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *BillMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *BillMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[bill.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *BillMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[bill.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *BillMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, bill.FieldCreatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *BillMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BillMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BillMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[bill.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BillMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[bill.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BillMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, bill.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BillMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BillMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BillMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BillMutation builder.
func (m *BillMutation) Where(ps ...predicate.Bill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bill).
func (m *BillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.vendor != nil {
		fields = append(fields, bill.FieldVendor)
	}
	if m.amount != nil {
		fields = append(fields, bill.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, bill.FieldCurrency)
	}
	if m.due_date != nil {
		fields = append(fields, bill.FieldDueDate)
	}
	if m.category != nil {
		fields = append(fields, bill.FieldCategory)
	}
	if m.is_recurring != nil {
		fields = append(fields, bill.FieldIsRecurring)
	}
	if m.recurrence_type != nil {
		fields = append(fields, bill.FieldRecurrenceType)
	}
	if m.recurrence_interval != nil {
		fields = append(fields, bill.FieldRecurrenceInterval)
	}
	if m.recurrence_end_date != nil {
		fields = append(fields, bill.FieldRecurrenceEndDate)
	}
	if m.next_due_date != nil {
		fields = append(fields, bill.FieldNextDueDate)
	}
	if m.auto_pay_enabled != nil {
		fields = append(fields, bill.FieldAutoPayEnabled)
	}
	if m.status != nil {
		fields = append(fields, bill.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, bill.FieldPriority)
	}
	if m.tags != nil {
		fields = append(fields, bill.FieldTags)
	}
	if m.space_id != nil {
		fields = append(fields, bill.FieldSpaceID)
	}
	if m.created_by != nil {
		fields = append(fields, bill.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, bill.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, bill.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bill.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldVendor:
		return m.Vendor()
	case bill.FieldAmount:
		return m.Amount()
	case bill.FieldCurrency:
		return m.Currency()
	case bill.FieldDueDate:
		return m.DueDate()
	case bill.FieldCategory:
		return m.Category()
	case bill.FieldIsRecurring:
		return m.IsRecurring()
	case bill.FieldRecurrenceType:
		return m.RecurrenceType()
	case bill.FieldRecurrenceInterval:
		return m.RecurrenceInterval()
	case bill.FieldRecurrenceEndDate:
		return m.RecurrenceEndDate()
	case bill.FieldNextDueDate:
		return m.NextDueDate()
	case bill.FieldAutoPayEnabled:
		return m.AutoPayEnabled()
	case bill.FieldStatus:
		return m.Status()
	case bill.FieldPriority:
		return m.Priority()
	case bill.FieldTags:
		return m.Tags()
	case bill.FieldSpaceID:
		return m.SpaceID()
	case bill.FieldCreatedBy:
		return m.CreatedBy()
	case bill.FieldMetadata:
		return m.Metadata()
	case bill.FieldCreatedAt:
		return m.CreatedAt()
	case bill.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bill.FieldVendor:
		return m.OldVendor(ctx)
	case bill.FieldAmount:
		return m.OldAmount(ctx)
	case bill.FieldCurrency:
		return m.OldCurrency(ctx)
	case bill.FieldDueDate:
		return m.OldDueDate(ctx)
	case bill.FieldCategory:
		return m.OldCategory(ctx)
	case bill.FieldIsRecurring:
		return m.OldIsRecurring(ctx)
	case bill.FieldRecurrenceType:
		return m.OldRecurrenceType(ctx)
	case bill.FieldRecurrenceInterval:
		return m.OldRecurrenceInterval(ctx)
	case bill.FieldRecurrenceEndDate:
		return m.OldRecurrenceEndDate(ctx)
	case bill.FieldNextDueDate:
		return m.OldNextDueDate(ctx)
	case bill.FieldAutoPayEnabled:
		return m.OldAutoPayEnabled(ctx)
	case bill.FieldStatus:
		return m.OldStatus(ctx)
	case bill.FieldPriority:
		return m.OldPriority(ctx)
	case bill.FieldTags:
		return m.OldTags(ctx)
	case bill.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case bill.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case bill.FieldMetadata:
		return m.OldMetadata(ctx)
	case bill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bill.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bill.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case bill.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case bill.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case bill.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case bill.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case bill.FieldIsRecurring:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRecurring(v)
		return nil
	case bill.FieldRecurrenceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceType(v)
		return nil
	case bill.FieldRecurrenceInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceInterval(v)
		return nil
	case bill.FieldRecurrenceEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrenceEndDate(v)
		return nil
	case bill.FieldNextDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextDueDate(v)
		return nil
	case bill.FieldAutoPayEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoPayEnabled(v)
		return nil
	case bill.FieldStatus:
		v, ok := value.(bill.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bill.FieldPriority:
		v, ok := value.(bill.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case bill.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case bill.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case bill.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case bill.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case bill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bill.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, bill.FieldAmount)
	}
	if m.addrecurrence_interval != nil {
		fields = append(fields, bill.FieldRecurrenceInterval)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldAmount:
		return m.AddedAmount()
	case bill.FieldRecurrenceInterval:
		return m.AddedRecurrenceInterval()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bill.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case bill.FieldRecurrenceInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecurrenceInterval(v)
		return nil
	}
	return fmt.Errorf("unknown Bill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bill.FieldDueDate) {
		fields = append(fields, bill.FieldDueDate)
	}
	if m.FieldCleared(bill.FieldCategory) {
		fields = append(fields, bill.FieldCategory)
	}
	if m.FieldCleared(bill.FieldRecurrenceType) {
		fields = append(fields, bill.FieldRecurrenceType)
	}
	if m.FieldCleared(bill.FieldRecurrenceEndDate) {
		fields = append(fields, bill.FieldRecurrenceEndDate)
	}
	if m.FieldCleared(bill.FieldNextDueDate) {
		fields = append(fields, bill.FieldNextDueDate)
	}
	if m.FieldCleared(bill.FieldTags) {
		fields = append(fields, bill.FieldTags)
	}
	if m.FieldCleared(bill.FieldSpaceID) {
		fields = append(fields, bill.FieldSpaceID)
	}
	if m.FieldCleared(bill.FieldCreatedBy) {
		fields = append(fields, bill.FieldCreatedBy)
	}
	if m.FieldCleared(bill.FieldMetadata) {
		fields = append(fields, bill.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillMutation) ClearField(name string) error {
	switch name {
	case bill.FieldDueDate:
		m.ClearDueDate()
		return nil
	case bill.FieldCategory:
		m.ClearCategory()
		return nil
	case bill.FieldRecurrenceType:
		m.ClearRecurrenceType()
		return nil
	case bill.FieldRecurrenceEndDate:
		m.ClearRecurrenceEndDate()
		return nil
	case bill.FieldNextDueDate:
		m.ClearNextDueDate()
		return nil
	case bill.FieldTags:
		m.ClearTags()
		return nil
	case bill.FieldSpaceID:
		m.ClearSpaceID()
		return nil
	case bill.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case bill.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Bill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillMutation) ResetField(name string) error {
	switch name {
	case bill.FieldVendor:
		m.ResetVendor()
		return nil
	case bill.FieldAmount:
		m.ResetAmount()
		return nil
	case bill.FieldCurrency:
		m.ResetCurrency()
		return nil
	case bill.FieldDueDate:
		m.ResetDueDate()
		return nil
	case bill.FieldCategory:
		m.ResetCategory()
		return nil
	case bill.FieldIsRecurring:
		m.ResetIsRecurring()
		return nil
	case bill.FieldRecurrenceType:
		m.ResetRecurrenceType()
		return nil
	case bill.FieldRecurrenceInterval:
		m.ResetRecurrenceInterval()
		return nil
	case bill.FieldRecurrenceEndDate:
		m.ResetRecurrenceEndDate()
		return nil
	case bill.FieldNextDueDate:
		m.ResetNextDueDate()
		return nil
	case bill.FieldAutoPayEnabled:
		m.ResetAutoPayEnabled()
		return nil
	case bill.FieldStatus:
		m.ResetStatus()
		return nil
	case bill.FieldPriority:
		m.ResetPriority()
		return nil
	case bill.FieldTags:
		m.ResetTags()
		return nil
	case bill.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case bill.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case bill.FieldMetadata:
		m.ResetMetadata()
		return nil
	case bill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bill.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Bill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Bill edge %s", name)
}

// CalendarEventMutation represents an operation that mutates the CalendarEvent nodes in the graph.
type CalendarEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	start_time           *time.Time
	end_time             *time.Time
	location             *string
	conference_url       *string
	attendees            *[]string
	appendattendees      []string
	recurrence           *string
	space_id             *string
	created_by           *string
	metadata             *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	message_links        map[string]struct{}
	removedmessage_links map[string]struct{}
	clearedmessage_links bool
	done                 bool
	oldValue             func(context.Context) (*CalendarEvent, error)
	predicates           []predicate.CalendarEvent
}

var _ ent.Mutation = (*CalendarEventMutation)(nil)

// calendareventOption allows management of the mutation configuration using functional options.
type calendareventOption func(*CalendarEventMutation)

// newCalendarEventMutation creates new mutation for the CalendarEvent entity.
func newCalendarEventMutation(c config, op Op, opts ...calendareventOption) *CalendarEventMutation {
	m := &CalendarEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEventID sets the ID field of the mutation.
func withCalendarEventID(id string) calendareventOption {
	return func(m *CalendarEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEvent
		)
		m.oldValue = func(ctx context.Context) (*CalendarEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEvent sets the old CalendarEvent of the mutation.
func withCalendarEvent(node *CalendarEvent) calendareventOption {
	return func(m *CalendarEventMutation) {
		m.oldValue = func(context.Context) (*CalendarEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEvent entities.
func (m *CalendarEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CalendarEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CalendarEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CalendarEventMutation) ResetTitle() {
	m.title = nil
}

// SetStartTime sets the "start_time" field.
func (m *CalendarEventMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *CalendarEventMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *CalendarEventMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *CalendarEventMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *CalendarEventMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *CalendarEventMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[calendarevent.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *CalendarEventMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *CalendarEventMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, calendarevent.FieldEndTime)
}

// SetLocation sets the "location" field.
func (m *CalendarEventMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *CalendarEventMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *CalendarEventMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[calendarevent.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *CalendarEventMutation) LocationCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *CalendarEventMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, calendarevent.FieldLocation)
}

// SetConferenceURL sets the "conference_url" field.
func (m *CalendarEventMutation) SetConferenceURL(s string) {
	m.conference_url = &s
}

// ConferenceURL returns the value of the "conference_url" field in the mutation.
func (m *CalendarEventMutation) ConferenceURL() (r string, exists bool) {
	v := m.conference_url
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceURL returns the old "conference_url" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldConferenceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceURL: %w", err)
	}
	return oldValue.ConferenceURL, nil
}

// ClearConferenceURL clears the value of the "conference_url" field.
func (m *CalendarEventMutation) ClearConferenceURL() {
	m.conference_url = nil
	m.clearedFields[calendarevent.FieldConferenceURL] = struct{}{}
}

// ConferenceURLCleared returns if the "conference_url" field was cleared in this mutation.
func (m *CalendarEventMutation) ConferenceURLCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldConferenceURL]
	return ok
}

// ResetConferenceURL resets all changes to the "conference_url" field.
func (m *CalendarEventMutation) ResetConferenceURL() {
	m.conference_url = nil
	delete(m.clearedFields, calendarevent.FieldConferenceURL)
}

// SetAttendees sets the "attendees" field.
func (m *CalendarEventMutation) SetAttendees(s []string) {
	m.attendees = &s
	m.appendattendees = nil
}

// Attendees returns the value of the "attendees" field in the mutation.
func (m *CalendarEventMutation) Attendees() (r []string, exists bool) {
	v := m.attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldAttendees returns the old "attendees" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldAttendees(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttendees: %w", err)
	}
	return oldValue.Attendees, nil
}

// AppendAttendees adds s to the "attendees" field.
func (m *CalendarEventMutation) AppendAttendees(s []string) {
	m.appendattendees = append(m.appendattendees, s...)
}

// AppendedAttendees returns the list of values that were appended to the "attendees" field in this mutation.
func (m *CalendarEventMutation) AppendedAttendees() ([]string, bool) {
	if len(m.appendattendees) == 0 {
		return nil, false
	}
	return m.appendattendees, true
}

// ClearAttendees clears the value of the "attendees" field.
func (m *CalendarEventMutation) ClearAttendees() {
	m.attendees = nil
	m.appendattendees = nil
	m.clearedFields[calendarevent.FieldAttendees] = struct{}{}
}

// AttendeesCleared returns if the "attendees" field was cleared in this mutation.
func (m *CalendarEventMutation) AttendeesCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldAttendees]
	return ok
}

// ResetAttendees resets all changes to the "attendees" field.
func (m *CalendarEventMutation) ResetAttendees() {
	m.attendees = nil
	m.appendattendees = nil
	delete(m.clearedFields, calendarevent.FieldAttendees)
}

// SetRecurrence sets the "recurrence" field.
func (m *CalendarEventMutation) SetRecurrence(s string) {
	m.recurrence = &s
}

// Recurrence returns the value of the "recurrence" field in the mutation.
func (m *CalendarEventMutation) Recurrence() (r string, exists bool) {
	v := m.recurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrence returns the old "recurrence" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldRecurrence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrence: %w", err)
	}
	return oldValue.Recurrence, nil
}

// ClearRecurrence clears the value of the "recurrence" field.
func (m *CalendarEventMutation) ClearRecurrence() {
	m.recurrence = nil
	m.clearedFields[calendarevent.FieldRecurrence] = struct{}{}
}

// RecurrenceCleared returns if the "recurrence" field was cleared in this mutation.
func (m *CalendarEventMutation) RecurrenceCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldRecurrence]
	return ok
}

// ResetRecurrence resets all changes to the "recurrence" field.
func (m *CalendarEventMutation) ResetRecurrence() {
	m.recurrence = nil
	delete(m.clearedFields, calendarevent.FieldRecurrence)
}

// SetSpaceID sets the "space_id" field.
func (m *CalendarEventMutation) SetSpaceID(s string) {
	m.space_id = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *CalendarEventMutation) SpaceID() (r string, exists bool) {
	v := m.space_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ClearSpaceID clears the value of the "space_id" field.
func (m *CalendarEventMutation) ClearSpaceID() {
	m.space_id = nil
	m.clearedFields[calendarevent.FieldSpaceID] = struct{}{}
}

// SpaceIDCleared returns if the "space_id" field was cleared in this mutation.
func (m *CalendarEventMutation) SpaceIDCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldSpaceID]
	return ok
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *CalendarEventMutation) ResetSpaceID() {
	m.space_id = nil
	delete(m.clearedFields, calendarevent.FieldSpaceID)
}

// SetCreatedBy sets the "created_by" field.
func (m *CalendarEventMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CalendarEventMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CalendarEventMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[calendarevent.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CalendarEventMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CalendarEventMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, calendarevent.FieldCreatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *CalendarEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CalendarEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CalendarEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[calendarevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CalendarEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CalendarEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, calendarevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CalendarEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CalendarEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CalendarEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageLinkIDs adds the "message_links" edge to the MessageEventLink entity by ids.
func (m *CalendarEventMutation) AddMessageLinkIDs(ids ...string) {
	if m.message_links == nil {
		m.message_links = make(map[string]struct{})
	}
	for i := range ids {
		m.message_links[ids[i]] = struct{}{}
	}
}

// ClearMessageLinks clears the "message_links" edge to the MessageEventLink entity.
func (m *CalendarEventMutation) ClearMessageLinks() {
	m.clearedmessage_links = true
}

// MessageLinksCleared reports if the "message_links" edge to the MessageEventLink entity was cleared.
func (m *CalendarEventMutation) MessageLinksCleared() bool {
	return m.clearedmessage_links
}

// RemoveMessageLinkIDs removes the "message_links" edge to the MessageEventLink entity by IDs.
func (m *CalendarEventMutation) RemoveMessageLinkIDs(ids ...string) {
	if m.removedmessage_links == nil {
		m.removedmessage_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.message_links, ids[i])
		m.removedmessage_links[ids[i]] = struct{}{}
	}
}

// RemovedMessageLinks returns the removed IDs of the "message_links" edge to the MessageEventLink entity.
func (m *CalendarEventMutation) RemovedMessageLinksIDs() (ids []string) {
	for id := range m.removedmessage_links {
		ids = append(ids, id)
	}
	return
}

// MessageLinksIDs returns the "message_links" edge IDs in the mutation.
func (m *CalendarEventMutation) MessageLinksIDs() (ids []string) {
	for id := range m.message_links {
		ids = append(ids, id)
	}
	return
}

// ResetMessageLinks resets all changes to the "message_links" edge.
func (m *CalendarEventMutation) ResetMessageLinks() {
	m.message_links = nil
	m.clearedmessage_links = false
	m.removedmessage_links = nil
}

// Where appends a list predicates to the CalendarEventMutation builder.
func (m *CalendarEventMutation) Where(ps ...predicate.CalendarEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEvent).
func (m *CalendarEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.title != nil {
		fields = append(fields, calendarevent.FieldTitle)
	}
	if m.start_time != nil {
		fields = append(fields, calendarevent.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, calendarevent.FieldEndTime)
	}
	if m.location != nil {
		fields = append(fields, calendarevent.FieldLocation)
	}
	if m.conference_url != nil {
		fields = append(fields, calendarevent.FieldConferenceURL)
	}
	if m.attendees != nil {
		fields = append(fields, calendarevent.FieldAttendees)
	}
	if m.recurrence != nil {
		fields = append(fields, calendarevent.FieldRecurrence)
	}
	if m.space_id != nil {
		fields = append(fields, calendarevent.FieldSpaceID)
	}
	if m.created_by != nil {
		fields = append(fields, calendarevent.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, calendarevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, calendarevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, calendarevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldTitle:
		return m.Title()
	case calendarevent.FieldStartTime:
		return m.StartTime()
	case calendarevent.FieldEndTime:
		return m.EndTime()
	case calendarevent.FieldLocation:
		return m.Location()
	case calendarevent.FieldConferenceURL:
		return m.ConferenceURL()
	case calendarevent.FieldAttendees:
		return m.Attendees()
	case calendarevent.FieldRecurrence:
		return m.Recurrence()
	case calendarevent.FieldSpaceID:
		return m.SpaceID()
	case calendarevent.FieldCreatedBy:
		return m.CreatedBy()
	case calendarevent.FieldMetadata:
		return m.Metadata()
	case calendarevent.FieldCreatedAt:
		return m.CreatedAt()
	case calendarevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarevent.FieldTitle:
		return m.OldTitle(ctx)
	case calendarevent.FieldStartTime:
		return m.OldStartTime(ctx)
	case calendarevent.FieldEndTime:
		return m.OldEndTime(ctx)
	case calendarevent.FieldLocation:
		return m.OldLocation(ctx)
	case calendarevent.FieldConferenceURL:
		return m.OldConferenceURL(ctx)
	case calendarevent.FieldAttendees:
		return m.OldAttendees(ctx)
	case calendarevent.FieldRecurrence:
		return m.OldRecurrence(ctx)
	case calendarevent.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case calendarevent.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case calendarevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case calendarevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case calendarevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case calendarevent.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case calendarevent.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case calendarevent.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case calendarevent.FieldConferenceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceURL(v)
		return nil
	case calendarevent.FieldAttendees:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttendees(v)
		return nil
	case calendarevent.FieldRecurrence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrence(v)
		return nil
	case calendarevent.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case calendarevent.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case calendarevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case calendarevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case calendarevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarevent.FieldEndTime) {
		fields = append(fields, calendarevent.FieldEndTime)
	}
	if m.FieldCleared(calendarevent.FieldLocation) {
		fields = append(fields, calendarevent.FieldLocation)
	}
	if m.FieldCleared(calendarevent.FieldConferenceURL) {
		fields = append(fields, calendarevent.FieldConferenceURL)
	}
	if m.FieldCleared(calendarevent.FieldAttendees) {
		fields = append(fields, calendarevent.FieldAttendees)
	}
	if m.FieldCleared(calendarevent.FieldRecurrence) {
		fields = append(fields, calendarevent.FieldRecurrence)
	}
	if m.FieldCleared(calendarevent.FieldSpaceID) {
		fields = append(fields, calendarevent.FieldSpaceID)
	}
	if m.FieldCleared(calendarevent.FieldCreatedBy) {
		fields = append(fields, calendarevent.FieldCreatedBy)
	}
	if m.FieldCleared(calendarevent.FieldMetadata) {
		fields = append(fields, calendarevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEventMutation) ClearField(name string) error {
	switch name {
	case calendarevent.FieldEndTime:
		m.ClearEndTime()
		return nil
	case calendarevent.FieldLocation:
		m.ClearLocation()
		return nil
	case calendarevent.FieldConferenceURL:
		m.ClearConferenceURL()
		return nil
	case calendarevent.FieldAttendees:
		m.ClearAttendees()
		return nil
	case calendarevent.FieldRecurrence:
		m.ClearRecurrence()
		return nil
	case calendarevent.FieldSpaceID:
		m.ClearSpaceID()
		return nil
	case calendarevent.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case calendarevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEventMutation) ResetField(name string) error {
	switch name {
	case calendarevent.FieldTitle:
		m.ResetTitle()
		return nil
	case calendarevent.FieldStartTime:
		m.ResetStartTime()
		return nil
	case calendarevent.FieldEndTime:
		m.ResetEndTime()
		return nil
	case calendarevent.FieldLocation:
		m.ResetLocation()
		return nil
	case calendarevent.FieldConferenceURL:
		m.ResetConferenceURL()
		return nil
	case calendarevent.FieldAttendees:
		m.ResetAttendees()
		return nil
	case calendarevent.FieldRecurrence:
		m.ResetRecurrence()
		return nil
	case calendarevent.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case calendarevent.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case calendarevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case calendarevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case calendarevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message_links != nil {
		edges = append(edges, calendarevent.EdgeMessageLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarevent.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.message_links))
		for id := range m.message_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessage_links != nil {
		edges = append(edges, calendarevent.EdgeMessageLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case calendarevent.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.removedmessage_links))
		for id := range m.removedmessage_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage_links {
		edges = append(edges, calendarevent.EdgeMessageLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEventMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarevent.EdgeMessageLinks:
		return m.clearedmessage_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEventMutation) ResetEdge(name string) error {
	switch name {
	case calendarevent.EdgeMessageLinks:
		m.ResetMessageLinks()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent edge %s", name)
}

// CallLogMutation represents an operation that mutates the CallLog nodes in the graph.
type CallLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	call_log_id         *string
	chat_id             *string
	from_jid            *string
	from_me             *bool
	start_ts            *time.Time
	is_video            *bool
	duration_seconds    *int
	addduration_seconds *int
	outcome             *calllog.Outcome
	created_at          *time.Time
	clearedFields       map[string]struct{}
	instance            *string
	clearedinstance     bool
	done                bool
	oldValue            func(context.Context) (*CallLog, error)
	predicates          []predicate.CallLog
}

var _ ent.Mutation = (*CallLogMutation)(nil)

// calllogOption allows management of the mutation configuration using functional options.
type calllogOption func(*CallLogMutation)

// newCallLogMutation creates new mutation for the CallLog entity.
func newCallLogMutation(c config, op Op, opts ...calllogOption) *CallLogMutation {
	m := &CallLogMutation{
		config:        c,
		op:            op,
		typ:           TypeCallLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallLogID sets the ID field of the mutation.
func withCallLogID(id string) calllogOption {
	return func(m *CallLogMutation) {
		var (
			err   error
			once  sync.Once
			value *CallLog
		)
		m.oldValue = func(ctx context.Context) (*CallLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallLog sets the old CallLog of the mutation.
func withCallLog(node *CallLog) calllogOption {
	return func(m *CallLogMutation) {
		m.oldValue = func(context.Context) (*CallLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallLog entities.
func (m *CallLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallLogID sets the "call_log_id" field.
func (m *CallLogMutation) SetCallLogID(s string) {
	m.call_log_id = &s
}

// CallLogID returns the value of the "call_log_id" field in the mutation.
func (m *CallLogMutation) CallLogID() (r string, exists bool) {
	v := m.call_log_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallLogID returns the old "call_log_id" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldCallLogID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallLogID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallLogID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallLogID: %w", err)
	}
	return oldValue.CallLogID, nil
}

// ResetCallLogID resets all changes to the "call_log_id" field.
func (m *CallLogMutation) ResetCallLogID() {
	m.call_log_id = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *CallLogMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *CallLogMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *CallLogMutation) ResetInstanceID() {
	m.instance = nil
}

// SetChatID sets the "chat_id" field.
func (m *CallLogMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *CallLogMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ClearChatID clears the value of the "chat_id" field.
func (m *CallLogMutation) ClearChatID() {
	m.chat_id = nil
	m.clearedFields[calllog.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *CallLogMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[calllog.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *CallLogMutation) ResetChatID() {
	m.chat_id = nil
	delete(m.clearedFields, calllog.FieldChatID)
}

// SetFromJid sets the "from_jid" field.
func (m *CallLogMutation) SetFromJid(s string) {
	m.from_jid = &s
}

// FromJid returns the value of the "from_jid" field in the mutation.
func (m *CallLogMutation) FromJid() (r string, exists bool) {
	v := m.from_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldFromJid returns the old "from_jid" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldFromJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromJid: %w", err)
	}
	return oldValue.FromJid, nil
}

// ClearFromJid clears the value of the "from_jid" field.
func (m *CallLogMutation) ClearFromJid() {
	m.from_jid = nil
	m.clearedFields[calllog.FieldFromJid] = struct{}{}
}

// FromJidCleared returns if the "from_jid" field was cleared in this mutation.
func (m *CallLogMutation) FromJidCleared() bool {
	_, ok := m.clearedFields[calllog.FieldFromJid]
	return ok
}

// ResetFromJid resets all changes to the "from_jid" field.
func (m *CallLogMutation) ResetFromJid() {
	m.from_jid = nil
	delete(m.clearedFields, calllog.FieldFromJid)
}

// SetFromMe sets the "from_me" field.
func (m *CallLogMutation) SetFromMe(b bool) {
	m.from_me = &b
}

// FromMe returns the value of the "from_me" field in the mutation.
func (m *CallLogMutation) FromMe() (r bool, exists bool) {
	v := m.from_me
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMe returns the old "from_me" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldFromMe(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMe: %w", err)
	}
	return oldValue.FromMe, nil
}

// ResetFromMe resets all changes to the "from_me" field.
func (m *CallLogMutation) ResetFromMe() {
	m.from_me = nil
}

// SetStartTs sets the "start_ts" field.
func (m *CallLogMutation) SetStartTs(t time.Time) {
	m.start_ts = &t
}

// StartTs returns the value of the "start_ts" field in the mutation.
func (m *CallLogMutation) StartTs() (r time.Time, exists bool) {
	v := m.start_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTs returns the old "start_ts" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldStartTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTs: %w", err)
	}
	return oldValue.StartTs, nil
}

// ResetStartTs resets all changes to the "start_ts" field.
func (m *CallLogMutation) ResetStartTs() {
	m.start_ts = nil
}

// SetIsVideo sets the "is_video" field.
func (m *CallLogMutation) SetIsVideo(b bool) {
	m.is_video = &b
}

// IsVideo returns the value of the "is_video" field in the mutation.
func (m *CallLogMutation) IsVideo() (r bool, exists bool) {
	v := m.is_video
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVideo returns the old "is_video" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldIsVideo(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVideo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVideo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVideo: %w", err)
	}
	return oldValue.IsVideo, nil
}

// ResetIsVideo resets all changes to the "is_video" field.
func (m *CallLogMutation) ResetIsVideo() {
	m.is_video = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CallLogMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CallLogMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CallLogMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CallLogMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CallLogMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetOutcome sets the "outcome" field.
func (m *CallLogMutation) SetOutcome(c calllog.Outcome) {
	m.outcome = &c
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *CallLogMutation) Outcome() (r calllog.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldOutcome(ctx context.Context) (v calllog.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *CallLogMutation) ResetOutcome() {
	m.outcome = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CallLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallLog entity.
// If the CallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *CallLogMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[calllog.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *CallLogMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *CallLogMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *CallLogMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the CallLogMutation builder.
func (m *CallLogMutation) Where(ps ...predicate.CallLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallLog).
func (m *CallLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.call_log_id != nil {
		fields = append(fields, calllog.FieldCallLogID)
	}
	if m.instance != nil {
		fields = append(fields, calllog.FieldInstanceID)
	}
	if m.chat_id != nil {
		fields = append(fields, calllog.FieldChatID)
	}
	if m.from_jid != nil {
		fields = append(fields, calllog.FieldFromJid)
	}
	if m.from_me != nil {
		fields = append(fields, calllog.FieldFromMe)
	}
	if m.start_ts != nil {
		fields = append(fields, calllog.FieldStartTs)
	}
	if m.is_video != nil {
		fields = append(fields, calllog.FieldIsVideo)
	}
	if m.duration_seconds != nil {
		fields = append(fields, calllog.FieldDurationSeconds)
	}
	if m.outcome != nil {
		fields = append(fields, calllog.FieldOutcome)
	}
	if m.created_at != nil {
		fields = append(fields, calllog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calllog.FieldCallLogID:
		return m.CallLogID()
	case calllog.FieldInstanceID:
		return m.InstanceID()
	case calllog.FieldChatID:
		return m.ChatID()
	case calllog.FieldFromJid:
		return m.FromJid()
	case calllog.FieldFromMe:
		return m.FromMe()
	case calllog.FieldStartTs:
		return m.StartTs()
	case calllog.FieldIsVideo:
		return m.IsVideo()
	case calllog.FieldDurationSeconds:
		return m.DurationSeconds()
	case calllog.FieldOutcome:
		return m.Outcome()
	case calllog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calllog.FieldCallLogID:
		return m.OldCallLogID(ctx)
	case calllog.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case calllog.FieldChatID:
		return m.OldChatID(ctx)
	case calllog.FieldFromJid:
		return m.OldFromJid(ctx)
	case calllog.FieldFromMe:
		return m.OldFromMe(ctx)
	case calllog.FieldStartTs:
		return m.OldStartTs(ctx)
	case calllog.FieldIsVideo:
		return m.OldIsVideo(ctx)
	case calllog.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case calllog.FieldOutcome:
		return m.OldOutcome(ctx)
	case calllog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calllog.FieldCallLogID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallLogID(v)
		return nil
	case calllog.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case calllog.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case calllog.FieldFromJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromJid(v)
		return nil
	case calllog.FieldFromMe:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMe(v)
		return nil
	case calllog.FieldStartTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTs(v)
		return nil
	case calllog.FieldIsVideo:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVideo(v)
		return nil
	case calllog.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case calllog.FieldOutcome:
		v, ok := value.(calllog.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case calllog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallLogMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, calllog.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calllog.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calllog.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown CallLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calllog.FieldChatID) {
		fields = append(fields, calllog.FieldChatID)
	}
	if m.FieldCleared(calllog.FieldFromJid) {
		fields = append(fields, calllog.FieldFromJid)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallLogMutation) ClearField(name string) error {
	switch name {
	case calllog.FieldChatID:
		m.ClearChatID()
		return nil
	case calllog.FieldFromJid:
		m.ClearFromJid()
		return nil
	}
	return fmt.Errorf("unknown CallLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallLogMutation) ResetField(name string) error {
	switch name {
	case calllog.FieldCallLogID:
		m.ResetCallLogID()
		return nil
	case calllog.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case calllog.FieldChatID:
		m.ResetChatID()
		return nil
	case calllog.FieldFromJid:
		m.ResetFromJid()
		return nil
	case calllog.FieldFromMe:
		m.ResetFromMe()
		return nil
	case calllog.FieldStartTs:
		m.ResetStartTs()
		return nil
	case calllog.FieldIsVideo:
		m.ResetIsVideo()
		return nil
	case calllog.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case calllog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case calllog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, calllog.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calllog.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, calllog.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallLogMutation) EdgeCleared(name string) bool {
	switch name {
	case calllog.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallLogMutation) ClearEdge(name string) error {
	switch name {
	case calllog.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown CallLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallLogMutation) ResetEdge(name string) error {
	switch name {
	case calllog.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown CallLog edge %s", name)
}

// ChatMutation represents an operation that mutates the Chat nodes in the graph.
type ChatMutation struct {
	config
	op              Op
	typ             string
	id              *string
	chat_id         *string
	_type           *chat.Type
	unread_count    *int
	addunread_count *int
	archived        *bool
	pinned          *bool
	muted           *bool
	mute_end_ts     *time.Time
	last_message_ts *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	instance        *string
	clearedinstance bool
	done            bool
	oldValue        func(context.Context) (*Chat, error)
	predicates      []predicate.Chat
}

var _ ent.Mutation = (*ChatMutation)(nil)

// chatOption allows management of the mutation configuration using functional options.
type chatOption func(*ChatMutation)

// newChatMutation creates new mutation for the Chat entity.
func newChatMutation(c config, op Op, opts ...chatOption) *ChatMutation {
	m := &ChatMutation{
		config:        c,
		op:            op,
		typ:           TypeChat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatID sets the ID field of the mutation.
func withChatID(id string) chatOption {
	return func(m *ChatMutation) {
		var (
			err   error
			once  sync.Once
			value *Chat
		)
		m.oldValue = func(ctx context.Context) (*Chat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChat sets the old Chat of the mutation.
func withChat(node *Chat) chatOption {
	return func(m *ChatMutation) {
		m.oldValue = func(context.Context) (*Chat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chat entities.
func (m *ChatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ChatMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatMutation) ResetChatID() {
	m.chat_id = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *ChatMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ChatMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ChatMutation) ResetInstanceID() {
	m.instance = nil
}

// SetType sets the "type" field.
func (m *ChatMutation) SetType(c chat.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *ChatMutation) GetType() (r chat.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldType(ctx context.Context) (v chat.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ChatMutation) ResetType() {
	m._type = nil
}

// SetUnreadCount sets the "unread_count" field.
func (m *ChatMutation) SetUnreadCount(i int) {
	m.unread_count = &i
	m.addunread_count = nil
}

// UnreadCount returns the value of the "unread_count" field in the mutation.
func (m *ChatMutation) UnreadCount() (r int, exists bool) {
	v := m.unread_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUnreadCount returns the old "unread_count" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldUnreadCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnreadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnreadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnreadCount: %w", err)
	}
	return oldValue.UnreadCount, nil
}

// AddUnreadCount adds i to the "unread_count" field.
func (m *ChatMutation) AddUnreadCount(i int) {
	if m.addunread_count != nil {
		*m.addunread_count += i
	} else {
		m.addunread_count = &i
	}
}

// AddedUnreadCount returns the value that was added to the "unread_count" field in this mutation.
func (m *ChatMutation) AddedUnreadCount() (r int, exists bool) {
	v := m.addunread_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnreadCount resets all changes to the "unread_count" field.
func (m *ChatMutation) ResetUnreadCount() {
	m.unread_count = nil
	m.addunread_count = nil
}

// SetArchived sets the "archived" field.
func (m *ChatMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *ChatMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *ChatMutation) ResetArchived() {
	m.archived = nil
}

// SetPinned sets the "pinned" field.
func (m *ChatMutation) SetPinned(b bool) {
	m.pinned = &b
}

// Pinned returns the value of the "pinned" field in the mutation.
func (m *ChatMutation) Pinned() (r bool, exists bool) {
	v := m.pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldPinned returns the old "pinned" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinned: %w", err)
	}
	return oldValue.Pinned, nil
}

// ResetPinned resets all changes to the "pinned" field.
func (m *ChatMutation) ResetPinned() {
	m.pinned = nil
}

// SetMuted sets the "muted" field.
func (m *ChatMutation) SetMuted(b bool) {
	m.muted = &b
}

// Muted returns the value of the "muted" field in the mutation.
func (m *ChatMutation) Muted() (r bool, exists bool) {
	v := m.muted
	if v == nil {
		return
	}
	return *v, true
}

// OldMuted returns the old "muted" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldMuted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMuted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMuted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMuted: %w", err)
	}
	return oldValue.Muted, nil
}

// ResetMuted resets all changes to the "muted" field.
func (m *ChatMutation) ResetMuted() {
	m.muted = nil
}

// SetMuteEndTs sets the "mute_end_ts" field.
func (m *ChatMutation) SetMuteEndTs(t time.Time) {
	m.mute_end_ts = &t
}

// MuteEndTs returns the value of the "mute_end_ts" field in the mutation.
func (m *ChatMutation) MuteEndTs() (r time.Time, exists bool) {
	v := m.mute_end_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldMuteEndTs returns the old "mute_end_ts" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldMuteEndTs(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMuteEndTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMuteEndTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMuteEndTs: %w", err)
	}
	return oldValue.MuteEndTs, nil
}

// ClearMuteEndTs clears the value of the "mute_end_ts" field.
func (m *ChatMutation) ClearMuteEndTs() {
	m.mute_end_ts = nil
	m.clearedFields[chat.FieldMuteEndTs] = struct{}{}
}

// MuteEndTsCleared returns if the "mute_end_ts" field was cleared in this mutation.
func (m *ChatMutation) MuteEndTsCleared() bool {
	_, ok := m.clearedFields[chat.FieldMuteEndTs]
	return ok
}

// ResetMuteEndTs resets all changes to the "mute_end_ts" field.
func (m *ChatMutation) ResetMuteEndTs() {
	m.mute_end_ts = nil
	delete(m.clearedFields, chat.FieldMuteEndTs)
}

// SetLastMessageTs sets the "last_message_ts" field.
func (m *ChatMutation) SetLastMessageTs(t time.Time) {
	m.last_message_ts = &t
}

// LastMessageTs returns the value of the "last_message_ts" field in the mutation.
func (m *ChatMutation) LastMessageTs() (r time.Time, exists bool) {
	v := m.last_message_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageTs returns the old "last_message_ts" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldLastMessageTs(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageTs: %w", err)
	}
	return oldValue.LastMessageTs, nil
}

// ClearLastMessageTs clears the value of the "last_message_ts" field.
func (m *ChatMutation) ClearLastMessageTs() {
	m.last_message_ts = nil
	m.clearedFields[chat.FieldLastMessageTs] = struct{}{}
}

// LastMessageTsCleared returns if the "last_message_ts" field was cleared in this mutation.
func (m *ChatMutation) LastMessageTsCleared() bool {
	_, ok := m.clearedFields[chat.FieldLastMessageTs]
	return ok
}

// ResetLastMessageTs resets all changes to the "last_message_ts" field.
func (m *ChatMutation) ResetLastMessageTs() {
	m.last_message_ts = nil
	delete(m.clearedFields, chat.FieldLastMessageTs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *ChatMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[chat.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *ChatMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *ChatMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *ChatMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the ChatMutation builder.
func (m *ChatMutation) Where(ps ...predicate.Chat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chat).
func (m *ChatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.chat_id != nil {
		fields = append(fields, chat.FieldChatID)
	}
	if m.instance != nil {
		fields = append(fields, chat.FieldInstanceID)
	}
	if m._type != nil {
		fields = append(fields, chat.FieldType)
	}
	if m.unread_count != nil {
		fields = append(fields, chat.FieldUnreadCount)
	}
	if m.archived != nil {
		fields = append(fields, chat.FieldArchived)
	}
	if m.pinned != nil {
		fields = append(fields, chat.FieldPinned)
	}
	if m.muted != nil {
		fields = append(fields, chat.FieldMuted)
	}
	if m.mute_end_ts != nil {
		fields = append(fields, chat.FieldMuteEndTs)
	}
	if m.last_message_ts != nil {
		fields = append(fields, chat.FieldLastMessageTs)
	}
	if m.created_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldChatID:
		return m.ChatID()
	case chat.FieldInstanceID:
		return m.InstanceID()
	case chat.FieldType:
		return m.GetType()
	case chat.FieldUnreadCount:
		return m.UnreadCount()
	case chat.FieldArchived:
		return m.Archived()
	case chat.FieldPinned:
		return m.Pinned()
	case chat.FieldMuted:
		return m.Muted()
	case chat.FieldMuteEndTs:
		return m.MuteEndTs()
	case chat.FieldLastMessageTs:
		return m.LastMessageTs()
	case chat.FieldCreatedAt:
		return m.CreatedAt()
	case chat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chat.FieldChatID:
		return m.OldChatID(ctx)
	case chat.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case chat.FieldType:
		return m.OldType(ctx)
	case chat.FieldUnreadCount:
		return m.OldUnreadCount(ctx)
	case chat.FieldArchived:
		return m.OldArchived(ctx)
	case chat.FieldPinned:
		return m.OldPinned(ctx)
	case chat.FieldMuted:
		return m.OldMuted(ctx)
	case chat.FieldMuteEndTs:
		return m.OldMuteEndTs(ctx)
	case chat.FieldLastMessageTs:
		return m.OldLastMessageTs(ctx)
	case chat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chat.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chat.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case chat.FieldType:
		v, ok := value.(chat.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case chat.FieldUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnreadCount(v)
		return nil
	case chat.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case chat.FieldPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinned(v)
		return nil
	case chat.FieldMuted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMuted(v)
		return nil
	case chat.FieldMuteEndTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMuteEndTs(v)
		return nil
	case chat.FieldLastMessageTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageTs(v)
		return nil
	case chat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMutation) AddedFields() []string {
	var fields []string
	if m.addunread_count != nil {
		fields = append(fields, chat.FieldUnreadCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldUnreadCount:
		return m.AddedUnreadCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chat.FieldUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnreadCount(v)
		return nil
	}
	return fmt.Errorf("unknown Chat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chat.FieldMuteEndTs) {
		fields = append(fields, chat.FieldMuteEndTs)
	}
	if m.FieldCleared(chat.FieldLastMessageTs) {
		fields = append(fields, chat.FieldLastMessageTs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMutation) ClearField(name string) error {
	switch name {
	case chat.FieldMuteEndTs:
		m.ClearMuteEndTs()
		return nil
	case chat.FieldLastMessageTs:
		m.ClearLastMessageTs()
		return nil
	}
	return fmt.Errorf("unknown Chat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMutation) ResetField(name string) error {
	switch name {
	case chat.FieldChatID:
		m.ResetChatID()
		return nil
	case chat.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case chat.FieldType:
		m.ResetType()
		return nil
	case chat.FieldUnreadCount:
		m.ResetUnreadCount()
		return nil
	case chat.FieldArchived:
		m.ResetArchived()
		return nil
	case chat.FieldPinned:
		m.ResetPinned()
		return nil
	case chat.FieldMuted:
		m.ResetMuted()
		return nil
	case chat.FieldMuteEndTs:
		m.ResetMuteEndTs()
		return nil
	case chat.FieldLastMessageTs:
		m.ResetLastMessageTs()
		return nil
	case chat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, chat.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, chat.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMutation) EdgeCleared(name string) bool {
	switch name {
	case chat.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMutation) ClearEdge(name string) error {
	switch name {
	case chat.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Chat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMutation) ResetEdge(name string) error {
	switch name {
	case chat.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown Chat edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	jid                 *string
	push_name           *string
	verified_name       *string
	profile_picture_url *string
	is_business         *bool
	is_me               *bool
	is_blocked          *bool
	first_seen_at       *time.Time
	last_updated_at     *time.Time
	clearedFields       map[string]struct{}
	instance            *string
	clearedinstance     bool
	done                bool
	oldValue            func(context.Context) (*Contact, error)
	predicates          []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id string) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contact entities.
func (m *ContactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJid sets the "jid" field.
func (m *ContactMutation) SetJid(s string) {
	m.jid = &s
}

// Jid returns the value of the "jid" field in the mutation.
func (m *ContactMutation) Jid() (r string, exists bool) {
	v := m.jid
	if v == nil {
		return
	}
	return *v, true
}

// OldJid returns the old "jid" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJid: %w", err)
	}
	return oldValue.Jid, nil
}

// ResetJid resets all changes to the "jid" field.
func (m *ContactMutation) ResetJid() {
	m.jid = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *ContactMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ContactMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ContactMutation) ResetInstanceID() {
	m.instance = nil
}

// SetPushName sets the "push_name" field.
func (m *ContactMutation) SetPushName(s string) {
	m.push_name = &s
}

// PushName returns the value of the "push_name" field in the mutation.
func (m *ContactMutation) PushName() (r string, exists bool) {
	v := m.push_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPushName returns the old "push_name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPushName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushName: %w", err)
	}
	return oldValue.PushName, nil
}

// ClearPushName clears the value of the "push_name" field.
func (m *ContactMutation) ClearPushName() {
	m.push_name = nil
	m.clearedFields[contact.FieldPushName] = struct{}{}
}

// PushNameCleared returns if the "push_name" field was cleared in this mutation.
func (m *ContactMutation) PushNameCleared() bool {
	_, ok := m.clearedFields[contact.FieldPushName]
	return ok
}

// ResetPushName resets all changes to the "push_name" field.
func (m *ContactMutation) ResetPushName() {
	m.push_name = nil
	delete(m.clearedFields, contact.FieldPushName)
}

// SetVerifiedName sets the "verified_name" field.
func (m *ContactMutation) SetVerifiedName(s string) {
	m.verified_name = &s
}

// VerifiedName returns the value of the "verified_name" field in the mutation.
func (m *ContactMutation) VerifiedName() (r string, exists bool) {
	v := m.verified_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedName returns the old "verified_name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldVerifiedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedName: %w", err)
	}
	return oldValue.VerifiedName, nil
}

// ClearVerifiedName clears the value of the "verified_name" field.
func (m *ContactMutation) ClearVerifiedName() {
	m.verified_name = nil
	m.clearedFields[contact.FieldVerifiedName] = struct{}{}
}

// VerifiedNameCleared returns if the "verified_name" field was cleared in this mutation.
func (m *ContactMutation) VerifiedNameCleared() bool {
	_, ok := m.clearedFields[contact.FieldVerifiedName]
	return ok
}

// ResetVerifiedName resets all changes to the "verified_name" field.
func (m *ContactMutation) ResetVerifiedName() {
	m.verified_name = nil
	delete(m.clearedFields, contact.FieldVerifiedName)
}

// SetProfilePictureURL sets the "profile_picture_url" field.
func (m *ContactMutation) SetProfilePictureURL(s string) {
	m.profile_picture_url = &s
}

// ProfilePictureURL returns the value of the "profile_picture_url" field in the mutation.
func (m *ContactMutation) ProfilePictureURL() (r string, exists bool) {
	v := m.profile_picture_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilePictureURL returns the old "profile_picture_url" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldProfilePictureURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilePictureURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilePictureURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilePictureURL: %w", err)
	}
	return oldValue.ProfilePictureURL, nil
}

// ClearProfilePictureURL clears the value of the "profile_picture_url" field.
func (m *ContactMutation) ClearProfilePictureURL() {
	m.profile_picture_url = nil
	m.clearedFields[contact.FieldProfilePictureURL] = struct{}{}
}

// ProfilePictureURLCleared returns if the "profile_picture_url" field was cleared in this mutation.
func (m *ContactMutation) ProfilePictureURLCleared() bool {
	_, ok := m.clearedFields[contact.FieldProfilePictureURL]
	return ok
}

// ResetProfilePictureURL resets all changes to the "profile_picture_url" field.
func (m *ContactMutation) ResetProfilePictureURL() {
	m.profile_picture_url = nil
	delete(m.clearedFields, contact.FieldProfilePictureURL)
}

// SetIsBusiness sets the "is_business" field.
func (m *ContactMutation) SetIsBusiness(b bool) {
	m.is_business = &b
}

// IsBusiness returns the value of the "is_business" field in the mutation.
func (m *ContactMutation) IsBusiness() (r bool, exists bool) {
	v := m.is_business
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBusiness returns the old "is_business" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldIsBusiness(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBusiness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBusiness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBusiness: %w", err)
	}
	return oldValue.IsBusiness, nil
}

// ResetIsBusiness resets all changes to the "is_business" field.
func (m *ContactMutation) ResetIsBusiness() {
	m.is_business = nil
}

// SetIsMe sets the "is_me" field.
func (m *ContactMutation) SetIsMe(b bool) {
	m.is_me = &b
}

// IsMe returns the value of the "is_me" field in the mutation.
func (m *ContactMutation) IsMe() (r bool, exists bool) {
	v := m.is_me
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMe returns the old "is_me" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldIsMe(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMe: %w", err)
	}
	return oldValue.IsMe, nil
}

// ResetIsMe resets all changes to the "is_me" field.
func (m *ContactMutation) ResetIsMe() {
	m.is_me = nil
}

// SetIsBlocked sets the "is_blocked" field.
func (m *ContactMutation) SetIsBlocked(b bool) {
	m.is_blocked = &b
}

// IsBlocked returns the value of the "is_blocked" field in the mutation.
func (m *ContactMutation) IsBlocked() (r bool, exists bool) {
	v := m.is_blocked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBlocked returns the old "is_blocked" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldIsBlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBlocked: %w", err)
	}
	return oldValue.IsBlocked, nil
}

// ResetIsBlocked resets all changes to the "is_blocked" field.
func (m *ContactMutation) ResetIsBlocked() {
	m.is_blocked = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ContactMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ContactMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ContactMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *ContactMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *ContactMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *ContactMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *ContactMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[contact.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *ContactMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *ContactMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *ContactMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.jid != nil {
		fields = append(fields, contact.FieldJid)
	}
	if m.instance != nil {
		fields = append(fields, contact.FieldInstanceID)
	}
	if m.push_name != nil {
		fields = append(fields, contact.FieldPushName)
	}
	if m.verified_name != nil {
		fields = append(fields, contact.FieldVerifiedName)
	}
	if m.profile_picture_url != nil {
		fields = append(fields, contact.FieldProfilePictureURL)
	}
	if m.is_business != nil {
		fields = append(fields, contact.FieldIsBusiness)
	}
	if m.is_me != nil {
		fields = append(fields, contact.FieldIsMe)
	}
	if m.is_blocked != nil {
		fields = append(fields, contact.FieldIsBlocked)
	}
	if m.first_seen_at != nil {
		fields = append(fields, contact.FieldFirstSeenAt)
	}
	if m.last_updated_at != nil {
		fields = append(fields, contact.FieldLastUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldJid:
		return m.Jid()
	case contact.FieldInstanceID:
		return m.InstanceID()
	case contact.FieldPushName:
		return m.PushName()
	case contact.FieldVerifiedName:
		return m.VerifiedName()
	case contact.FieldProfilePictureURL:
		return m.ProfilePictureURL()
	case contact.FieldIsBusiness:
		return m.IsBusiness()
	case contact.FieldIsMe:
		return m.IsMe()
	case contact.FieldIsBlocked:
		return m.IsBlocked()
	case contact.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case contact.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldJid:
		return m.OldJid(ctx)
	case contact.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case contact.FieldPushName:
		return m.OldPushName(ctx)
	case contact.FieldVerifiedName:
		return m.OldVerifiedName(ctx)
	case contact.FieldProfilePictureURL:
		return m.OldProfilePictureURL(ctx)
	case contact.FieldIsBusiness:
		return m.OldIsBusiness(ctx)
	case contact.FieldIsMe:
		return m.OldIsMe(ctx)
	case contact.FieldIsBlocked:
		return m.OldIsBlocked(ctx)
	case contact.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case contact.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJid(v)
		return nil
	case contact.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case contact.FieldPushName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushName(v)
		return nil
	case contact.FieldVerifiedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedName(v)
		return nil
	case contact.FieldProfilePictureURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilePictureURL(v)
		return nil
	case contact.FieldIsBusiness:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBusiness(v)
		return nil
	case contact.FieldIsMe:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMe(v)
		return nil
	case contact.FieldIsBlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBlocked(v)
		return nil
	case contact.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case contact.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldPushName) {
		fields = append(fields, contact.FieldPushName)
	}
	if m.FieldCleared(contact.FieldVerifiedName) {
		fields = append(fields, contact.FieldVerifiedName)
	}
	if m.FieldCleared(contact.FieldProfilePictureURL) {
		fields = append(fields, contact.FieldProfilePictureURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldPushName:
		m.ClearPushName()
		return nil
	case contact.FieldVerifiedName:
		m.ClearVerifiedName()
		return nil
	case contact.FieldProfilePictureURL:
		m.ClearProfilePictureURL()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldJid:
		m.ResetJid()
		return nil
	case contact.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case contact.FieldPushName:
		m.ResetPushName()
		return nil
	case contact.FieldVerifiedName:
		m.ResetVerifiedName()
		return nil
	case contact.FieldProfilePictureURL:
		m.ResetProfilePictureURL()
		return nil
	case contact.FieldIsBusiness:
		m.ResetIsBusiness()
		return nil
	case contact.FieldIsMe:
		m.ResetIsMe()
		return nil
	case contact.FieldIsBlocked:
		m.ResetIsBlocked()
		return nil
	case contact.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case contact.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, contact.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, contact.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	switch name {
	case contact.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	switch name {
	case contact.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	switch name {
	case contact.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown Contact edge %s", name)
}

// EntityChangeMutation represents an operation that mutates the EntityChange nodes in the graph.
type EntityChangeMutation struct {
	config
	op             Op
	typ            string
	id             *string
	table_name     *string
	operation      *entitychange.Operation
	entity_id      *string
	entity_type    *string
	old_data       *map[string]interface{}
	new_data       *map[string]interface{}
	metadata       *map[string]interface{}
	changed_at     *time.Time
	processed      *bool
	processed_at   *time.Time
	error_count    *int
	adderror_count *int
	last_error     *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*EntityChange, error)
	predicates     []predicate.EntityChange
}

var _ ent.Mutation = (*EntityChangeMutation)(nil)

// entitychangeOption allows management of the mutation configuration using functional options.
type entitychangeOption func(*EntityChangeMutation)

// newEntityChangeMutation creates new mutation for the EntityChange entity.
func newEntityChangeMutation(c config, op Op, opts ...entitychangeOption) *EntityChangeMutation {
	m := &EntityChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityChangeID sets the ID field of the mutation.
func withEntityChangeID(id string) entitychangeOption {
	return func(m *EntityChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityChange
		)
		m.oldValue = func(ctx context.Context) (*EntityChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityChange sets the old EntityChange of the mutation.
func withEntityChange(node *EntityChange) entitychangeOption {
	return func(m *EntityChangeMutation) {
		m.oldValue = func(context.Context) (*EntityChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityChange entities.
func (m *EntityChangeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityChangeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityChangeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTableName sets the "table_name" field.
func (m *EntityChangeMutation) SetTableName(s string) {
	m.table_name = &s
}

// TableName returns the value of the "table_name" field in the mutation.
func (m *EntityChangeMutation) TableName() (r string, exists bool) {
	v := m.table_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTableName returns the old "table_name" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldTableName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableName: %w", err)
	}
	return oldValue.TableName, nil
}

// ResetTableName resets all changes to the "table_name" field.
func (m *EntityChangeMutation) ResetTableName() {
	m.table_name = nil
}

// SetOperation sets the "operation" field.
func (m *EntityChangeMutation) SetOperation(e entitychange.Operation) {
	m.operation = &e
}

// Operation returns the value of the "operation" field in the mutation.
func (m *EntityChangeMutation) Operation() (r entitychange.Operation, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldOperation(ctx context.Context) (v entitychange.Operation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *EntityChangeMutation) ResetOperation() {
	m.operation = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntityChangeMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityChangeMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityChangeMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityChangeMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityChangeMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityChangeMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetOldData sets the "old_data" field.
func (m *EntityChangeMutation) SetOldData(value map[string]interface{}) {
	m.old_data = &value
}

// OldData returns the value of the "old_data" field in the mutation.
func (m *EntityChangeMutation) OldData() (r map[string]interface{}, exists bool) {
	v := m.old_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOldData returns the old "old_data" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldOldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldData: %w", err)
	}
	return oldValue.OldData, nil
}

// ClearOldData clears the value of the "old_data" field.
func (m *EntityChangeMutation) ClearOldData() {
	m.old_data = nil
	m.clearedFields[entitychange.FieldOldData] = struct{}{}
}

// OldDataCleared returns if the "old_data" field was cleared in this mutation.
func (m *EntityChangeMutation) OldDataCleared() bool {
	_, ok := m.clearedFields[entitychange.FieldOldData]
	return ok
}

// ResetOldData resets all changes to the "old_data" field.
func (m *EntityChangeMutation) ResetOldData() {
	m.old_data = nil
	delete(m.clearedFields, entitychange.FieldOldData)
}

// SetNewData sets the "new_data" field.
func (m *EntityChangeMutation) SetNewData(value map[string]interface{}) {
	m.new_data = &value
}

// NewData returns the value of the "new_data" field in the mutation.
func (m *EntityChangeMutation) NewData() (r map[string]interface{}, exists bool) {
	v := m.new_data
	if v == nil {
		return
	}
	return *v, true
}

// OldNewData returns the old "new_data" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldNewData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewData: %w", err)
	}
	return oldValue.NewData, nil
}

// ClearNewData clears the value of the "new_data" field.
func (m *EntityChangeMutation) ClearNewData() {
	m.new_data = nil
	m.clearedFields[entitychange.FieldNewData] = struct{}{}
}

// NewDataCleared returns if the "new_data" field was cleared in this mutation.
func (m *EntityChangeMutation) NewDataCleared() bool {
	_, ok := m.clearedFields[entitychange.FieldNewData]
	return ok
}

// ResetNewData resets all changes to the "new_data" field.
func (m *EntityChangeMutation) ResetNewData() {
	m.new_data = nil
	delete(m.clearedFields, entitychange.FieldNewData)
}

// SetMetadata sets the "metadata" field.
func (m *EntityChangeMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityChangeMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EntityChangeMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[entitychange.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EntityChangeMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[entitychange.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityChangeMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, entitychange.FieldMetadata)
}

// SetChangedAt sets the "changed_at" field.
func (m *EntityChangeMutation) SetChangedAt(t time.Time) {
	m.changed_at = &t
}

// ChangedAt returns the value of the "changed_at" field in the mutation.
func (m *EntityChangeMutation) ChangedAt() (r time.Time, exists bool) {
	v := m.changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedAt returns the old "changed_at" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedAt: %w", err)
	}
	return oldValue.ChangedAt, nil
}

// ResetChangedAt resets all changes to the "changed_at" field.
func (m *EntityChangeMutation) ResetChangedAt() {
	m.changed_at = nil
}

// SetProcessed sets the "processed" field.
func (m *EntityChangeMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *EntityChangeMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *EntityChangeMutation) ResetProcessed() {
	m.processed = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *EntityChangeMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *EntityChangeMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *EntityChangeMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[entitychange.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *EntityChangeMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[entitychange.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *EntityChangeMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, entitychange.FieldProcessedAt)
}

// SetErrorCount sets the "error_count" field.
func (m *EntityChangeMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *EntityChangeMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *EntityChangeMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *EntityChangeMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *EntityChangeMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetLastError sets the "last_error" field.
func (m *EntityChangeMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *EntityChangeMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the EntityChange entity.
// If the EntityChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityChangeMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *EntityChangeMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[entitychange.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *EntityChangeMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[entitychange.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *EntityChangeMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, entitychange.FieldLastError)
}

// Where appends a list predicates to the EntityChangeMutation builder.
func (m *EntityChangeMutation) Where(ps ...predicate.EntityChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityChange).
func (m *EntityChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityChangeMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.table_name != nil {
		fields = append(fields, entitychange.FieldTableName)
	}
	if m.operation != nil {
		fields = append(fields, entitychange.FieldOperation)
	}
	if m.entity_id != nil {
		fields = append(fields, entitychange.FieldEntityID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitychange.FieldEntityType)
	}
	if m.old_data != nil {
		fields = append(fields, entitychange.FieldOldData)
	}
	if m.new_data != nil {
		fields = append(fields, entitychange.FieldNewData)
	}
	if m.metadata != nil {
		fields = append(fields, entitychange.FieldMetadata)
	}
	if m.changed_at != nil {
		fields = append(fields, entitychange.FieldChangedAt)
	}
	if m.processed != nil {
		fields = append(fields, entitychange.FieldProcessed)
	}
	if m.processed_at != nil {
		fields = append(fields, entitychange.FieldProcessedAt)
	}
	if m.error_count != nil {
		fields = append(fields, entitychange.FieldErrorCount)
	}
	if m.last_error != nil {
		fields = append(fields, entitychange.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitychange.FieldTableName:
		return m.TableName()
	case entitychange.FieldOperation:
		return m.Operation()
	case entitychange.FieldEntityID:
		return m.EntityID()
	case entitychange.FieldEntityType:
		return m.EntityType()
	case entitychange.FieldOldData:
		return m.OldData()
	case entitychange.FieldNewData:
		return m.NewData()
	case entitychange.FieldMetadata:
		return m.Metadata()
	case entitychange.FieldChangedAt:
		return m.ChangedAt()
	case entitychange.FieldProcessed:
		return m.Processed()
	case entitychange.FieldProcessedAt:
		return m.ProcessedAt()
	case entitychange.FieldErrorCount:
		return m.ErrorCount()
	case entitychange.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitychange.FieldTableName:
		return m.OldTableName(ctx)
	case entitychange.FieldOperation:
		return m.OldOperation(ctx)
	case entitychange.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitychange.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitychange.FieldOldData:
		return m.OldOldData(ctx)
	case entitychange.FieldNewData:
		return m.OldNewData(ctx)
	case entitychange.FieldMetadata:
		return m.OldMetadata(ctx)
	case entitychange.FieldChangedAt:
		return m.OldChangedAt(ctx)
	case entitychange.FieldProcessed:
		return m.OldProcessed(ctx)
	case entitychange.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case entitychange.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case entitychange.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown EntityChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitychange.FieldTableName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableName(v)
		return nil
	case entitychange.FieldOperation:
		v, ok := value.(entitychange.Operation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case entitychange.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitychange.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitychange.FieldOldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldData(v)
		return nil
	case entitychange.FieldNewData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewData(v)
		return nil
	case entitychange.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case entitychange.FieldChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedAt(v)
		return nil
	case entitychange.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case entitychange.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case entitychange.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case entitychange.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown EntityChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityChangeMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, entitychange.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityChangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitychange.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitychange.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown EntityChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitychange.FieldOldData) {
		fields = append(fields, entitychange.FieldOldData)
	}
	if m.FieldCleared(entitychange.FieldNewData) {
		fields = append(fields, entitychange.FieldNewData)
	}
	if m.FieldCleared(entitychange.FieldMetadata) {
		fields = append(fields, entitychange.FieldMetadata)
	}
	if m.FieldCleared(entitychange.FieldProcessedAt) {
		fields = append(fields, entitychange.FieldProcessedAt)
	}
	if m.FieldCleared(entitychange.FieldLastError) {
		fields = append(fields, entitychange.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityChangeMutation) ClearField(name string) error {
	switch name {
	case entitychange.FieldOldData:
		m.ClearOldData()
		return nil
	case entitychange.FieldNewData:
		m.ClearNewData()
		return nil
	case entitychange.FieldMetadata:
		m.ClearMetadata()
		return nil
	case entitychange.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case entitychange.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown EntityChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityChangeMutation) ResetField(name string) error {
	switch name {
	case entitychange.FieldTableName:
		m.ResetTableName()
		return nil
	case entitychange.FieldOperation:
		m.ResetOperation()
		return nil
	case entitychange.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitychange.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitychange.FieldOldData:
		m.ResetOldData()
		return nil
	case entitychange.FieldNewData:
		m.ResetNewData()
		return nil
	case entitychange.FieldMetadata:
		m.ResetMetadata()
		return nil
	case entitychange.FieldChangedAt:
		m.ResetChangedAt()
		return nil
	case entitychange.FieldProcessed:
		m.ResetProcessed()
		return nil
	case entitychange.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case entitychange.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case entitychange.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown EntityChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityChangeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityChangeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityChangeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntityChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityChangeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntityChange edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FailedEventMutation represents an operation that mutates the FailedEvent nodes in the graph.
type FailedEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	instance_id    *string
	event_type     *string
	raw_payload    *map[string]interface{}
	failure_reason *string
	error_kind     *failedevent.ErrorKind
	retry_count    *int
	addretry_count *int
	max_retries    *int
	addmax_retries *int
	next_retry_at  *time.Time
	resolved       *bool
	resolved_at    *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FailedEvent, error)
	predicates     []predicate.FailedEvent
}

var _ ent.Mutation = (*FailedEventMutation)(nil)

// failedeventOption allows management of the mutation configuration using functional options.
type failedeventOption func(*FailedEventMutation)

// newFailedEventMutation creates new mutation for the FailedEvent entity.
func newFailedEventMutation(c config, op Op, opts ...failedeventOption) *FailedEventMutation {
	m := &FailedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeFailedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFailedEventID sets the ID field of the mutation.
func withFailedEventID(id string) failedeventOption {
	return func(m *FailedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *FailedEvent
		)
		m.oldValue = func(ctx context.Context) (*FailedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FailedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFailedEvent sets the old FailedEvent of the mutation.
func withFailedEvent(node *FailedEvent) failedeventOption {
	return func(m *FailedEventMutation) {
		m.oldValue = func(context.Context) (*FailedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FailedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FailedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FailedEvent entities.
func (m *FailedEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FailedEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FailedEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FailedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstanceID sets the "instance_id" field.
func (m *FailedEventMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *FailedEventMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *FailedEventMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[failedevent.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *FailedEventMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[failedevent.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *FailedEventMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, failedevent.FieldInstanceID)
}

// SetEventType sets the "event_type" field.
func (m *FailedEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *FailedEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *FailedEventMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[failedevent.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *FailedEventMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[failedevent.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *FailedEventMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, failedevent.FieldEventType)
}

// SetRawPayload sets the "raw_payload" field.
func (m *FailedEventMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *FailedEventMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *FailedEventMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[failedevent.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *FailedEventMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[failedevent.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *FailedEventMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, failedevent.FieldRawPayload)
}

// SetFailureReason sets the "failure_reason" field.
func (m *FailedEventMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *FailedEventMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *FailedEventMutation) ResetFailureReason() {
	m.failure_reason = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *FailedEventMutation) SetErrorKind(fk failedevent.ErrorKind) {
	m.error_kind = &fk
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *FailedEventMutation) ErrorKind() (r failedevent.ErrorKind, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldErrorKind(ctx context.Context) (v failedevent.ErrorKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *FailedEventMutation) ResetErrorKind() {
	m.error_kind = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *FailedEventMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FailedEventMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FailedEventMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FailedEventMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FailedEventMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *FailedEventMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *FailedEventMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *FailedEventMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *FailedEventMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *FailedEventMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *FailedEventMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *FailedEventMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldNextRetryAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *FailedEventMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
}

// SetResolved sets the "resolved" field.
func (m *FailedEventMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *FailedEventMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *FailedEventMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *FailedEventMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *FailedEventMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *FailedEventMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[failedevent.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *FailedEventMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[failedevent.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *FailedEventMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, failedevent.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FailedEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FailedEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FailedEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FailedEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FailedEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FailedEvent entity.
// If the FailedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailedEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FailedEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FailedEventMutation builder.
func (m *FailedEventMutation) Where(ps ...predicate.FailedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FailedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FailedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FailedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FailedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FailedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FailedEvent).
func (m *FailedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FailedEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.instance_id != nil {
		fields = append(fields, failedevent.FieldInstanceID)
	}
	if m.event_type != nil {
		fields = append(fields, failedevent.FieldEventType)
	}
	if m.raw_payload != nil {
		fields = append(fields, failedevent.FieldRawPayload)
	}
	if m.failure_reason != nil {
		fields = append(fields, failedevent.FieldFailureReason)
	}
	if m.error_kind != nil {
		fields = append(fields, failedevent.FieldErrorKind)
	}
	if m.retry_count != nil {
		fields = append(fields, failedevent.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, failedevent.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, failedevent.FieldNextRetryAt)
	}
	if m.resolved != nil {
		fields = append(fields, failedevent.FieldResolved)
	}
	if m.resolved_at != nil {
		fields = append(fields, failedevent.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, failedevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, failedevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FailedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case failedevent.FieldInstanceID:
		return m.InstanceID()
	case failedevent.FieldEventType:
		return m.EventType()
	case failedevent.FieldRawPayload:
		return m.RawPayload()
	case failedevent.FieldFailureReason:
		return m.FailureReason()
	case failedevent.FieldErrorKind:
		return m.ErrorKind()
	case failedevent.FieldRetryCount:
		return m.RetryCount()
	case failedevent.FieldMaxRetries:
		return m.MaxRetries()
	case failedevent.FieldNextRetryAt:
		return m.NextRetryAt()
	case failedevent.FieldResolved:
		return m.Resolved()
	case failedevent.FieldResolvedAt:
		return m.ResolvedAt()
	case failedevent.FieldCreatedAt:
		return m.CreatedAt()
	case failedevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FailedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case failedevent.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case failedevent.FieldEventType:
		return m.OldEventType(ctx)
	case failedevent.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case failedevent.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case failedevent.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case failedevent.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case failedevent.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case failedevent.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case failedevent.FieldResolved:
		return m.OldResolved(ctx)
	case failedevent.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case failedevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case failedevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FailedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case failedevent.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case failedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case failedevent.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case failedevent.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case failedevent.FieldErrorKind:
		v, ok := value.(failedevent.ErrorKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case failedevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case failedevent.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case failedevent.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case failedevent.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case failedevent.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case failedevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case failedevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FailedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FailedEventMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, failedevent.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, failedevent.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FailedEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case failedevent.FieldRetryCount:
		return m.AddedRetryCount()
	case failedevent.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case failedevent.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case failedevent.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown FailedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FailedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(failedevent.FieldInstanceID) {
		fields = append(fields, failedevent.FieldInstanceID)
	}
	if m.FieldCleared(failedevent.FieldEventType) {
		fields = append(fields, failedevent.FieldEventType)
	}
	if m.FieldCleared(failedevent.FieldRawPayload) {
		fields = append(fields, failedevent.FieldRawPayload)
	}
	if m.FieldCleared(failedevent.FieldResolvedAt) {
		fields = append(fields, failedevent.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FailedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FailedEventMutation) ClearField(name string) error {
	switch name {
	case failedevent.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	case failedevent.FieldEventType:
		m.ClearEventType()
		return nil
	case failedevent.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	case failedevent.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown FailedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FailedEventMutation) ResetField(name string) error {
	switch name {
	case failedevent.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case failedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case failedevent.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case failedevent.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case failedevent.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case failedevent.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case failedevent.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case failedevent.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case failedevent.FieldResolved:
		m.ResetResolved()
		return nil
	case failedevent.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case failedevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case failedevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FailedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FailedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FailedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FailedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FailedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FailedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FailedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FailedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FailedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FailedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FailedEvent edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	group_jid             *string
	subject               *string
	subject_authoritative *bool
	owner_jid             *string
	description           *string
	creation_ts           *time.Time
	is_locked             *bool
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	instance              *string
	clearedinstance       bool
	participants          map[string]struct{}
	removedparticipants   map[string]struct{}
	clearedparticipants   bool
	done                  bool
	oldValue              func(context.Context) (*Group, error)
	predicates            []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id string) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupJid sets the "group_jid" field.
func (m *GroupMutation) SetGroupJid(s string) {
	m.group_jid = &s
}

// GroupJid returns the value of the "group_jid" field in the mutation.
func (m *GroupMutation) GroupJid() (r string, exists bool) {
	v := m.group_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupJid returns the old "group_jid" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldGroupJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupJid: %w", err)
	}
	return oldValue.GroupJid, nil
}

// ResetGroupJid resets all changes to the "group_jid" field.
func (m *GroupMutation) ResetGroupJid() {
	m.group_jid = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *GroupMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *GroupMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *GroupMutation) ResetInstanceID() {
	m.instance = nil
}

// SetSubject sets the "subject" field.
func (m *GroupMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *GroupMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *GroupMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[group.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *GroupMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[group.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *GroupMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, group.FieldSubject)
}

// SetSubjectAuthoritative sets the "subject_authoritative" field.
func (m *GroupMutation) SetSubjectAuthoritative(b bool) {
	m.subject_authoritative = &b
}

// SubjectAuthoritative returns the value of the "subject_authoritative" field in the mutation.
func (m *GroupMutation) SubjectAuthoritative() (r bool, exists bool) {
	v := m.subject_authoritative
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectAuthoritative returns the old "subject_authoritative" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldSubjectAuthoritative(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectAuthoritative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectAuthoritative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectAuthoritative: %w", err)
	}
	return oldValue.SubjectAuthoritative, nil
}

// ResetSubjectAuthoritative resets all changes to the "subject_authoritative" field.
func (m *GroupMutation) ResetSubjectAuthoritative() {
	m.subject_authoritative = nil
}

// SetOwnerJid sets the "owner_jid" field.
func (m *GroupMutation) SetOwnerJid(s string) {
	m.owner_jid = &s
}

// OwnerJid returns the value of the "owner_jid" field in the mutation.
func (m *GroupMutation) OwnerJid() (r string, exists bool) {
	v := m.owner_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerJid returns the old "owner_jid" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldOwnerJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerJid: %w", err)
	}
	return oldValue.OwnerJid, nil
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (m *GroupMutation) ClearOwnerJid() {
	m.owner_jid = nil
	m.clearedFields[group.FieldOwnerJid] = struct{}{}
}

// OwnerJidCleared returns if the "owner_jid" field was cleared in this mutation.
func (m *GroupMutation) OwnerJidCleared() bool {
	_, ok := m.clearedFields[group.FieldOwnerJid]
	return ok
}

// ResetOwnerJid resets all changes to the "owner_jid" field.
func (m *GroupMutation) ResetOwnerJid() {
	m.owner_jid = nil
	delete(m.clearedFields, group.FieldOwnerJid)
}

// SetDescription sets the "description" field.
func (m *GroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[group.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[group.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, group.FieldDescription)
}

// SetCreationTs sets the "creation_ts" field.
func (m *GroupMutation) SetCreationTs(t time.Time) {
	m.creation_ts = &t
}

// CreationTs returns the value of the "creation_ts" field in the mutation.
func (m *GroupMutation) CreationTs() (r time.Time, exists bool) {
	v := m.creation_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldCreationTs returns the old "creation_ts" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreationTs(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreationTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreationTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreationTs: %w", err)
	}
	return oldValue.CreationTs, nil
}

// ClearCreationTs clears the value of the "creation_ts" field.
func (m *GroupMutation) ClearCreationTs() {
	m.creation_ts = nil
	m.clearedFields[group.FieldCreationTs] = struct{}{}
}

// CreationTsCleared returns if the "creation_ts" field was cleared in this mutation.
func (m *GroupMutation) CreationTsCleared() bool {
	_, ok := m.clearedFields[group.FieldCreationTs]
	return ok
}

// ResetCreationTs resets all changes to the "creation_ts" field.
func (m *GroupMutation) ResetCreationTs() {
	m.creation_ts = nil
	delete(m.clearedFields, group.FieldCreationTs)
}

// SetIsLocked sets the "is_locked" field.
func (m *GroupMutation) SetIsLocked(b bool) {
	m.is_locked = &b
}

// IsLocked returns the value of the "is_locked" field in the mutation.
func (m *GroupMutation) IsLocked() (r bool, exists bool) {
	v := m.is_locked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLocked returns the old "is_locked" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldIsLocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLocked: %w", err)
	}
	return oldValue.IsLocked, nil
}

// ResetIsLocked resets all changes to the "is_locked" field.
func (m *GroupMutation) ResetIsLocked() {
	m.is_locked = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *GroupMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[group.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *GroupMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *GroupMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *GroupMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// AddParticipantIDs adds the "participants" edge to the GroupParticipant entity by ids.
func (m *GroupMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the GroupParticipant entity.
func (m *GroupMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the GroupParticipant entity was cleared.
func (m *GroupMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the GroupParticipant entity by IDs.
func (m *GroupMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the GroupParticipant entity.
func (m *GroupMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *GroupMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *GroupMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.group_jid != nil {
		fields = append(fields, group.FieldGroupJid)
	}
	if m.instance != nil {
		fields = append(fields, group.FieldInstanceID)
	}
	if m.subject != nil {
		fields = append(fields, group.FieldSubject)
	}
	if m.subject_authoritative != nil {
		fields = append(fields, group.FieldSubjectAuthoritative)
	}
	if m.owner_jid != nil {
		fields = append(fields, group.FieldOwnerJid)
	}
	if m.description != nil {
		fields = append(fields, group.FieldDescription)
	}
	if m.creation_ts != nil {
		fields = append(fields, group.FieldCreationTs)
	}
	if m.is_locked != nil {
		fields = append(fields, group.FieldIsLocked)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, group.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldGroupJid:
		return m.GroupJid()
	case group.FieldInstanceID:
		return m.InstanceID()
	case group.FieldSubject:
		return m.Subject()
	case group.FieldSubjectAuthoritative:
		return m.SubjectAuthoritative()
	case group.FieldOwnerJid:
		return m.OwnerJid()
	case group.FieldDescription:
		return m.Description()
	case group.FieldCreationTs:
		return m.CreationTs()
	case group.FieldIsLocked:
		return m.IsLocked()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	case group.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldGroupJid:
		return m.OldGroupJid(ctx)
	case group.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case group.FieldSubject:
		return m.OldSubject(ctx)
	case group.FieldSubjectAuthoritative:
		return m.OldSubjectAuthoritative(ctx)
	case group.FieldOwnerJid:
		return m.OldOwnerJid(ctx)
	case group.FieldDescription:
		return m.OldDescription(ctx)
	case group.FieldCreationTs:
		return m.OldCreationTs(ctx)
	case group.FieldIsLocked:
		return m.OldIsLocked(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case group.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldGroupJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupJid(v)
		return nil
	case group.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case group.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case group.FieldSubjectAuthoritative:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectAuthoritative(v)
		return nil
	case group.FieldOwnerJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerJid(v)
		return nil
	case group.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case group.FieldCreationTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreationTs(v)
		return nil
	case group.FieldIsLocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLocked(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case group.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldSubject) {
		fields = append(fields, group.FieldSubject)
	}
	if m.FieldCleared(group.FieldOwnerJid) {
		fields = append(fields, group.FieldOwnerJid)
	}
	if m.FieldCleared(group.FieldDescription) {
		fields = append(fields, group.FieldDescription)
	}
	if m.FieldCleared(group.FieldCreationTs) {
		fields = append(fields, group.FieldCreationTs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldSubject:
		m.ClearSubject()
		return nil
	case group.FieldOwnerJid:
		m.ClearOwnerJid()
		return nil
	case group.FieldDescription:
		m.ClearDescription()
		return nil
	case group.FieldCreationTs:
		m.ClearCreationTs()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldGroupJid:
		m.ResetGroupJid()
		return nil
	case group.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case group.FieldSubject:
		m.ResetSubject()
		return nil
	case group.FieldSubjectAuthoritative:
		m.ResetSubjectAuthoritative()
		return nil
	case group.FieldOwnerJid:
		m.ResetOwnerJid()
		return nil
	case group.FieldDescription:
		m.ResetDescription()
		return nil
	case group.FieldCreationTs:
		m.ResetCreationTs()
		return nil
	case group.FieldIsLocked:
		m.ResetIsLocked()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case group.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.instance != nil {
		edges = append(edges, group.EdgeInstance)
	}
	if m.participants != nil {
		edges = append(edges, group.EdgeParticipants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	case group.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipants != nil {
		edges = append(edges, group.EdgeParticipants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinstance {
		edges = append(edges, group.EdgeInstance)
	}
	if m.clearedparticipants {
		edges = append(edges, group.EdgeParticipants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeInstance:
		return m.clearedinstance
	case group.EdgeParticipants:
		return m.clearedparticipants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	case group.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeInstance:
		m.ResetInstance()
		return nil
	case group.EdgeParticipants:
		m.ResetParticipants()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// GroupParticipantMutation represents an operation that mutates the GroupParticipant nodes in the graph.
type GroupParticipantMutation struct {
	config
	op              Op
	typ             string
	id              *string
	participant_jid *string
	is_admin        *bool
	is_super_admin  *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	group           *string
	clearedgroup    bool
	instance        *string
	clearedinstance bool
	done            bool
	oldValue        func(context.Context) (*GroupParticipant, error)
	predicates      []predicate.GroupParticipant
}

var _ ent.Mutation = (*GroupParticipantMutation)(nil)

// groupparticipantOption allows management of the mutation configuration using functional options.
type groupparticipantOption func(*GroupParticipantMutation)

// newGroupParticipantMutation creates new mutation for the GroupParticipant entity.
func newGroupParticipantMutation(c config, op Op, opts ...groupparticipantOption) *GroupParticipantMutation {
	m := &GroupParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupParticipantID sets the ID field of the mutation.
func withGroupParticipantID(id string) groupparticipantOption {
	return func(m *GroupParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupParticipant
		)
		m.oldValue = func(ctx context.Context) (*GroupParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupParticipant sets the old GroupParticipant of the mutation.
func withGroupParticipant(node *GroupParticipant) groupparticipantOption {
	return func(m *GroupParticipantMutation) {
		m.oldValue = func(context.Context) (*GroupParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GroupParticipant entities.
func (m *GroupParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *GroupParticipantMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupParticipantMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupParticipantMutation) ResetGroupID() {
	m.group = nil
}

// SetParticipantJid sets the "participant_jid" field.
func (m *GroupParticipantMutation) SetParticipantJid(s string) {
	m.participant_jid = &s
}

// ParticipantJid returns the value of the "participant_jid" field in the mutation.
func (m *GroupParticipantMutation) ParticipantJid() (r string, exists bool) {
	v := m.participant_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantJid returns the old "participant_jid" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldParticipantJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantJid: %w", err)
	}
	return oldValue.ParticipantJid, nil
}

// ResetParticipantJid resets all changes to the "participant_jid" field.
func (m *GroupParticipantMutation) ResetParticipantJid() {
	m.participant_jid = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *GroupParticipantMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *GroupParticipantMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *GroupParticipantMutation) ResetInstanceID() {
	m.instance = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *GroupParticipantMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *GroupParticipantMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *GroupParticipantMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetIsSuperAdmin sets the "is_super_admin" field.
func (m *GroupParticipantMutation) SetIsSuperAdmin(b bool) {
	m.is_super_admin = &b
}

// IsSuperAdmin returns the value of the "is_super_admin" field in the mutation.
func (m *GroupParticipantMutation) IsSuperAdmin() (r bool, exists bool) {
	v := m.is_super_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuperAdmin returns the old "is_super_admin" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldIsSuperAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuperAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuperAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuperAdmin: %w", err)
	}
	return oldValue.IsSuperAdmin, nil
}

// ResetIsSuperAdmin resets all changes to the "is_super_admin" field.
func (m *GroupParticipantMutation) ResetIsSuperAdmin() {
	m.is_super_admin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupParticipantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupParticipantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GroupParticipant entity.
// If the GroupParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupParticipantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupParticipantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *GroupParticipantMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[groupparticipant.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *GroupParticipantMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GroupParticipantMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GroupParticipantMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *GroupParticipantMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[groupparticipant.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *GroupParticipantMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *GroupParticipantMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *GroupParticipantMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the GroupParticipantMutation builder.
func (m *GroupParticipantMutation) Where(ps ...predicate.GroupParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupParticipant).
func (m *GroupParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupParticipantMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.group != nil {
		fields = append(fields, groupparticipant.FieldGroupID)
	}
	if m.participant_jid != nil {
		fields = append(fields, groupparticipant.FieldParticipantJid)
	}
	if m.instance != nil {
		fields = append(fields, groupparticipant.FieldInstanceID)
	}
	if m.is_admin != nil {
		fields = append(fields, groupparticipant.FieldIsAdmin)
	}
	if m.is_super_admin != nil {
		fields = append(fields, groupparticipant.FieldIsSuperAdmin)
	}
	if m.created_at != nil {
		fields = append(fields, groupparticipant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, groupparticipant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupparticipant.FieldGroupID:
		return m.GroupID()
	case groupparticipant.FieldParticipantJid:
		return m.ParticipantJid()
	case groupparticipant.FieldInstanceID:
		return m.InstanceID()
	case groupparticipant.FieldIsAdmin:
		return m.IsAdmin()
	case groupparticipant.FieldIsSuperAdmin:
		return m.IsSuperAdmin()
	case groupparticipant.FieldCreatedAt:
		return m.CreatedAt()
	case groupparticipant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupparticipant.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupparticipant.FieldParticipantJid:
		return m.OldParticipantJid(ctx)
	case groupparticipant.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case groupparticipant.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case groupparticipant.FieldIsSuperAdmin:
		return m.OldIsSuperAdmin(ctx)
	case groupparticipant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case groupparticipant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GroupParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupparticipant.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupparticipant.FieldParticipantJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantJid(v)
		return nil
	case groupparticipant.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case groupparticipant.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case groupparticipant.FieldIsSuperAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuperAdmin(v)
		return nil
	case groupparticipant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case groupparticipant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GroupParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupParticipantMutation) ResetField(name string) error {
	switch name {
	case groupparticipant.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupparticipant.FieldParticipantJid:
		m.ResetParticipantJid()
		return nil
	case groupparticipant.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case groupparticipant.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case groupparticipant.FieldIsSuperAdmin:
		m.ResetIsSuperAdmin()
		return nil
	case groupparticipant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case groupparticipant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GroupParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, groupparticipant.EdgeGroup)
	}
	if m.instance != nil {
		edges = append(edges, groupparticipant.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case groupparticipant.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case groupparticipant.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, groupparticipant.EdgeGroup)
	}
	if m.clearedinstance {
		edges = append(edges, groupparticipant.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case groupparticipant.EdgeGroup:
		return m.clearedgroup
	case groupparticipant.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupParticipantMutation) ClearEdge(name string) error {
	switch name {
	case groupparticipant.EdgeGroup:
		m.ClearGroup()
		return nil
	case groupparticipant.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown GroupParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupParticipantMutation) ResetEdge(name string) error {
	switch name {
	case groupparticipant.EdgeGroup:
		m.ResetGroup()
		return nil
	case groupparticipant.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown GroupParticipant edge %s", name)
}

// InstanceMutation represents an operation that mutates the Instance nodes in the graph.
type InstanceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	owner_jid                 *string
	creator_user_id           *string
	api_base_url              *string
	api_key                   *string
	is_owner                  *bool
	connection_state          *instance.ConnectionState
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	contacts                  map[string]struct{}
	removedcontacts           map[string]struct{}
	clearedcontacts           bool
	chats                     map[string]struct{}
	removedchats              map[string]struct{}
	clearedchats              bool
	groups                    map[string]struct{}
	removedgroups             map[string]struct{}
	clearedgroups             bool
	group_participants        map[string]struct{}
	removedgroup_participants map[string]struct{}
	clearedgroup_participants bool
	messages                  map[string]struct{}
	removedmessages           map[string]struct{}
	clearedmessages           bool
	status_updates            map[string]struct{}
	removedstatus_updates     map[string]struct{}
	clearedstatus_updates     bool
	reactions                 map[string]struct{}
	removedreactions          map[string]struct{}
	clearedreactions          bool
	call_logs                 map[string]struct{}
	removedcall_logs          map[string]struct{}
	clearedcall_logs          bool
	done                      bool
	oldValue                  func(context.Context) (*Instance, error)
	predicates                []predicate.Instance
}

var _ ent.Mutation = (*InstanceMutation)(nil)

// instanceOption allows management of the mutation configuration using functional options.
type instanceOption func(*InstanceMutation)

// newInstanceMutation creates new mutation for the Instance entity.
func newInstanceMutation(c config, op Op, opts ...instanceOption) *InstanceMutation {
	m := &InstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstanceID sets the ID field of the mutation.
func withInstanceID(id string) instanceOption {
	return func(m *InstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Instance
		)
		m.oldValue = func(ctx context.Context) (*Instance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstance sets the old Instance of the mutation.
func withInstance(node *Instance) instanceOption {
	return func(m *InstanceMutation) {
		m.oldValue = func(context.Context) (*Instance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instance entities.
func (m *InstanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerJid sets the "owner_jid" field.
func (m *InstanceMutation) SetOwnerJid(s string) {
	m.owner_jid = &s
}

// OwnerJid returns the value of the "owner_jid" field in the mutation.
func (m *InstanceMutation) OwnerJid() (r string, exists bool) {
	v := m.owner_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerJid returns the old "owner_jid" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldOwnerJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerJid: %w", err)
	}
	return oldValue.OwnerJid, nil
}

// ClearOwnerJid clears the value of the "owner_jid" field.
func (m *InstanceMutation) ClearOwnerJid() {
	m.owner_jid = nil
	m.clearedFields[instance.FieldOwnerJid] = struct{}{}
}

// OwnerJidCleared returns if the "owner_jid" field was cleared in this mutation.
func (m *InstanceMutation) OwnerJidCleared() bool {
	_, ok := m.clearedFields[instance.FieldOwnerJid]
	return ok
}

// ResetOwnerJid resets all changes to the "owner_jid" field.
func (m *InstanceMutation) ResetOwnerJid() {
	m.owner_jid = nil
	delete(m.clearedFields, instance.FieldOwnerJid)
}

// SetCreatorUserID sets the "creator_user_id" field.
func (m *InstanceMutation) SetCreatorUserID(s string) {
	m.creator_user_id = &s
}

// CreatorUserID returns the value of the "creator_user_id" field in the mutation.
func (m *InstanceMutation) CreatorUserID() (r string, exists bool) {
	v := m.creator_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorUserID returns the old "creator_user_id" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCreatorUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorUserID: %w", err)
	}
	return oldValue.CreatorUserID, nil
}

// ClearCreatorUserID clears the value of the "creator_user_id" field.
func (m *InstanceMutation) ClearCreatorUserID() {
	m.creator_user_id = nil
	m.clearedFields[instance.FieldCreatorUserID] = struct{}{}
}

// CreatorUserIDCleared returns if the "creator_user_id" field was cleared in this mutation.
func (m *InstanceMutation) CreatorUserIDCleared() bool {
	_, ok := m.clearedFields[instance.FieldCreatorUserID]
	return ok
}

// ResetCreatorUserID resets all changes to the "creator_user_id" field.
func (m *InstanceMutation) ResetCreatorUserID() {
	m.creator_user_id = nil
	delete(m.clearedFields, instance.FieldCreatorUserID)
}

// SetAPIBaseURL sets the "api_base_url" field.
func (m *InstanceMutation) SetAPIBaseURL(s string) {
	m.api_base_url = &s
}

// APIBaseURL returns the value of the "api_base_url" field in the mutation.
func (m *InstanceMutation) APIBaseURL() (r string, exists bool) {
	v := m.api_base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIBaseURL returns the old "api_base_url" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldAPIBaseURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIBaseURL: %w", err)
	}
	return oldValue.APIBaseURL, nil
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (m *InstanceMutation) ClearAPIBaseURL() {
	m.api_base_url = nil
	m.clearedFields[instance.FieldAPIBaseURL] = struct{}{}
}

// APIBaseURLCleared returns if the "api_base_url" field was cleared in this mutation.
func (m *InstanceMutation) APIBaseURLCleared() bool {
	_, ok := m.clearedFields[instance.FieldAPIBaseURL]
	return ok
}

// ResetAPIBaseURL resets all changes to the "api_base_url" field.
func (m *InstanceMutation) ResetAPIBaseURL() {
	m.api_base_url = nil
	delete(m.clearedFields, instance.FieldAPIBaseURL)
}

// SetAPIKey sets the "api_key" field.
func (m *InstanceMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *InstanceMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ClearAPIKey clears the value of the "api_key" field.
func (m *InstanceMutation) ClearAPIKey() {
	m.api_key = nil
	m.clearedFields[instance.FieldAPIKey] = struct{}{}
}

// APIKeyCleared returns if the "api_key" field was cleared in this mutation.
func (m *InstanceMutation) APIKeyCleared() bool {
	_, ok := m.clearedFields[instance.FieldAPIKey]
	return ok
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *InstanceMutation) ResetAPIKey() {
	m.api_key = nil
	delete(m.clearedFields, instance.FieldAPIKey)
}

// SetIsOwner sets the "is_owner" field.
func (m *InstanceMutation) SetIsOwner(b bool) {
	m.is_owner = &b
}

// IsOwner returns the value of the "is_owner" field in the mutation.
func (m *InstanceMutation) IsOwner() (r bool, exists bool) {
	v := m.is_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOwner returns the old "is_owner" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldIsOwner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOwner: %w", err)
	}
	return oldValue.IsOwner, nil
}

// ResetIsOwner resets all changes to the "is_owner" field.
func (m *InstanceMutation) ResetIsOwner() {
	m.is_owner = nil
}

// SetConnectionState sets the "connection_state" field.
func (m *InstanceMutation) SetConnectionState(is instance.ConnectionState) {
	m.connection_state = &is
}

// ConnectionState returns the value of the "connection_state" field in the mutation.
func (m *InstanceMutation) ConnectionState() (r instance.ConnectionState, exists bool) {
	v := m.connection_state
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionState returns the old "connection_state" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldConnectionState(ctx context.Context) (v instance.ConnectionState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionState: %w", err)
	}
	return oldValue.ConnectionState, nil
}

// ResetConnectionState resets all changes to the "connection_state" field.
func (m *InstanceMutation) ResetConnectionState() {
	m.connection_state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContactIDs adds the "contacts" edge to the Contact entity by ids.
func (m *InstanceMutation) AddContactIDs(ids ...string) {
	if m.contacts == nil {
		m.contacts = make(map[string]struct{})
	}
	for i := range ids {
		m.contacts[ids[i]] = struct{}{}
	}
}

// ClearContacts clears the "contacts" edge to the Contact entity.
func (m *InstanceMutation) ClearContacts() {
	m.clearedcontacts = true
}

// ContactsCleared reports if the "contacts" edge to the Contact entity was cleared.
func (m *InstanceMutation) ContactsCleared() bool {
	return m.clearedcontacts
}

// RemoveContactIDs removes the "contacts" edge to the Contact entity by IDs.
func (m *InstanceMutation) RemoveContactIDs(ids ...string) {
	if m.removedcontacts == nil {
		m.removedcontacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contacts, ids[i])
		m.removedcontacts[ids[i]] = struct{}{}
	}
}

// RemovedContacts returns the removed IDs of the "contacts" edge to the Contact entity.
func (m *InstanceMutation) RemovedContactsIDs() (ids []string) {
	for id := range m.removedcontacts {
		ids = append(ids, id)
	}
	return
}

// ContactsIDs returns the "contacts" edge IDs in the mutation.
func (m *InstanceMutation) ContactsIDs() (ids []string) {
	for id := range m.contacts {
		ids = append(ids, id)
	}
	return
}

// ResetContacts resets all changes to the "contacts" edge.
func (m *InstanceMutation) ResetContacts() {
	m.contacts = nil
	m.clearedcontacts = false
	m.removedcontacts = nil
}

// AddChatIDs adds the "chats" edge to the Chat entity by ids.
func (m *InstanceMutation) AddChatIDs(ids ...string) {
	if m.chats == nil {
		m.chats = make(map[string]struct{})
	}
	for i := range ids {
		m.chats[ids[i]] = struct{}{}
	}
}

// ClearChats clears the "chats" edge to the Chat entity.
func (m *InstanceMutation) ClearChats() {
	m.clearedchats = true
}

// ChatsCleared reports if the "chats" edge to the Chat entity was cleared.
func (m *InstanceMutation) ChatsCleared() bool {
	return m.clearedchats
}

// RemoveChatIDs removes the "chats" edge to the Chat entity by IDs.
func (m *InstanceMutation) RemoveChatIDs(ids ...string) {
	if m.removedchats == nil {
		m.removedchats = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chats, ids[i])
		m.removedchats[ids[i]] = struct{}{}
	}
}

// RemovedChats returns the removed IDs of the "chats" edge to the Chat entity.
func (m *InstanceMutation) RemovedChatsIDs() (ids []string) {
	for id := range m.removedchats {
		ids = append(ids, id)
	}
	return
}

// ChatsIDs returns the "chats" edge IDs in the mutation.
func (m *InstanceMutation) ChatsIDs() (ids []string) {
	for id := range m.chats {
		ids = append(ids, id)
	}
	return
}

// ResetChats resets all changes to the "chats" edge.
func (m *InstanceMutation) ResetChats() {
	m.chats = nil
	m.clearedchats = false
	m.removedchats = nil
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *InstanceMutation) AddGroupIDs(ids ...string) {
	if m.groups == nil {
		m.groups = make(map[string]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *InstanceMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *InstanceMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *InstanceMutation) RemoveGroupIDs(ids ...string) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *InstanceMutation) RemovedGroupsIDs() (ids []string) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *InstanceMutation) GroupsIDs() (ids []string) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *InstanceMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddGroupParticipantIDs adds the "group_participants" edge to the GroupParticipant entity by ids.
func (m *InstanceMutation) AddGroupParticipantIDs(ids ...string) {
	if m.group_participants == nil {
		m.group_participants = make(map[string]struct{})
	}
	for i := range ids {
		m.group_participants[ids[i]] = struct{}{}
	}
}

// ClearGroupParticipants clears the "group_participants" edge to the GroupParticipant entity.
func (m *InstanceMutation) ClearGroupParticipants() {
	m.clearedgroup_participants = true
}

// GroupParticipantsCleared reports if the "group_participants" edge to the GroupParticipant entity was cleared.
func (m *InstanceMutation) GroupParticipantsCleared() bool {
	return m.clearedgroup_participants
}

// RemoveGroupParticipantIDs removes the "group_participants" edge to the GroupParticipant entity by IDs.
func (m *InstanceMutation) RemoveGroupParticipantIDs(ids ...string) {
	if m.removedgroup_participants == nil {
		m.removedgroup_participants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.group_participants, ids[i])
		m.removedgroup_participants[ids[i]] = struct{}{}
	}
}

// RemovedGroupParticipants returns the removed IDs of the "group_participants" edge to the GroupParticipant entity.
func (m *InstanceMutation) RemovedGroupParticipantsIDs() (ids []string) {
	for id := range m.removedgroup_participants {
		ids = append(ids, id)
	}
	return
}

// GroupParticipantsIDs returns the "group_participants" edge IDs in the mutation.
func (m *InstanceMutation) GroupParticipantsIDs() (ids []string) {
	for id := range m.group_participants {
		ids = append(ids, id)
	}
	return
}

// ResetGroupParticipants resets all changes to the "group_participants" edge.
func (m *InstanceMutation) ResetGroupParticipants() {
	m.group_participants = nil
	m.clearedgroup_participants = false
	m.removedgroup_participants = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *InstanceMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *InstanceMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *InstanceMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *InstanceMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *InstanceMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *InstanceMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *InstanceMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddStatusUpdateIDs adds the "status_updates" edge to the MessageStatusUpdate entity by ids.
func (m *InstanceMutation) AddStatusUpdateIDs(ids ...string) {
	if m.status_updates == nil {
		m.status_updates = make(map[string]struct{})
	}
	for i := range ids {
		m.status_updates[ids[i]] = struct{}{}
	}
}

// ClearStatusUpdates clears the "status_updates" edge to the MessageStatusUpdate entity.
func (m *InstanceMutation) ClearStatusUpdates() {
	m.clearedstatus_updates = true
}

// StatusUpdatesCleared reports if the "status_updates" edge to the MessageStatusUpdate entity was cleared.
func (m *InstanceMutation) StatusUpdatesCleared() bool {
	return m.clearedstatus_updates
}

// RemoveStatusUpdateIDs removes the "status_updates" edge to the MessageStatusUpdate entity by IDs.
func (m *InstanceMutation) RemoveStatusUpdateIDs(ids ...string) {
	if m.removedstatus_updates == nil {
		m.removedstatus_updates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.status_updates, ids[i])
		m.removedstatus_updates[ids[i]] = struct{}{}
	}
}

// RemovedStatusUpdates returns the removed IDs of the "status_updates" edge to the MessageStatusUpdate entity.
func (m *InstanceMutation) RemovedStatusUpdatesIDs() (ids []string) {
	for id := range m.removedstatus_updates {
		ids = append(ids, id)
	}
	return
}

// StatusUpdatesIDs returns the "status_updates" edge IDs in the mutation.
func (m *InstanceMutation) StatusUpdatesIDs() (ids []string) {
	for id := range m.status_updates {
		ids = append(ids, id)
	}
	return
}

// ResetStatusUpdates resets all changes to the "status_updates" edge.
func (m *InstanceMutation) ResetStatusUpdates() {
	m.status_updates = nil
	m.clearedstatus_updates = false
	m.removedstatus_updates = nil
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by ids.
func (m *InstanceMutation) AddReactionIDs(ids ...string) {
	if m.reactions == nil {
		m.reactions = make(map[string]struct{})
	}
	for i := range ids {
		m.reactions[ids[i]] = struct{}{}
	}
}

// ClearReactions clears the "reactions" edge to the MessageReaction entity.
func (m *InstanceMutation) ClearReactions() {
	m.clearedreactions = true
}

// ReactionsCleared reports if the "reactions" edge to the MessageReaction entity was cleared.
func (m *InstanceMutation) ReactionsCleared() bool {
	return m.clearedreactions
}

// RemoveReactionIDs removes the "reactions" edge to the MessageReaction entity by IDs.
func (m *InstanceMutation) RemoveReactionIDs(ids ...string) {
	if m.removedreactions == nil {
		m.removedreactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reactions, ids[i])
		m.removedreactions[ids[i]] = struct{}{}
	}
}

// RemovedReactions returns the removed IDs of the "reactions" edge to the MessageReaction entity.
func (m *InstanceMutation) RemovedReactionsIDs() (ids []string) {
	for id := range m.removedreactions {
		ids = append(ids, id)
	}
	return
}

// ReactionsIDs returns the "reactions" edge IDs in the mutation.
func (m *InstanceMutation) ReactionsIDs() (ids []string) {
	for id := range m.reactions {
		ids = append(ids, id)
	}
	return
}

// ResetReactions resets all changes to the "reactions" edge.
func (m *InstanceMutation) ResetReactions() {
	m.reactions = nil
	m.clearedreactions = false
	m.removedreactions = nil
}

// AddCallLogIDs adds the "call_logs" edge to the CallLog entity by ids.
func (m *InstanceMutation) AddCallLogIDs(ids ...string) {
	if m.call_logs == nil {
		m.call_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.call_logs[ids[i]] = struct{}{}
	}
}

// ClearCallLogs clears the "call_logs" edge to the CallLog entity.
func (m *InstanceMutation) ClearCallLogs() {
	m.clearedcall_logs = true
}

// CallLogsCleared reports if the "call_logs" edge to the CallLog entity was cleared.
func (m *InstanceMutation) CallLogsCleared() bool {
	return m.clearedcall_logs
}

// RemoveCallLogIDs removes the "call_logs" edge to the CallLog entity by IDs.
func (m *InstanceMutation) RemoveCallLogIDs(ids ...string) {
	if m.removedcall_logs == nil {
		m.removedcall_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.call_logs, ids[i])
		m.removedcall_logs[ids[i]] = struct{}{}
	}
}

// RemovedCallLogs returns the removed IDs of the "call_logs" edge to the CallLog entity.
func (m *InstanceMutation) RemovedCallLogsIDs() (ids []string) {
	for id := range m.removedcall_logs {
		ids = append(ids, id)
	}
	return
}

// CallLogsIDs returns the "call_logs" edge IDs in the mutation.
func (m *InstanceMutation) CallLogsIDs() (ids []string) {
	for id := range m.call_logs {
		ids = append(ids, id)
	}
	return
}

// ResetCallLogs resets all changes to the "call_logs" edge.
func (m *InstanceMutation) ResetCallLogs() {
	m.call_logs = nil
	m.clearedcall_logs = false
	m.removedcall_logs = nil
}

// Where appends a list predicates to the InstanceMutation builder.
func (m *InstanceMutation) Where(ps ...predicate.Instance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instance).
func (m *InstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstanceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_jid != nil {
		fields = append(fields, instance.FieldOwnerJid)
	}
	if m.creator_user_id != nil {
		fields = append(fields, instance.FieldCreatorUserID)
	}
	if m.api_base_url != nil {
		fields = append(fields, instance.FieldAPIBaseURL)
	}
	if m.api_key != nil {
		fields = append(fields, instance.FieldAPIKey)
	}
	if m.is_owner != nil {
		fields = append(fields, instance.FieldIsOwner)
	}
	if m.connection_state != nil {
		fields = append(fields, instance.FieldConnectionState)
	}
	if m.created_at != nil {
		fields = append(fields, instance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, instance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instance.FieldOwnerJid:
		return m.OwnerJid()
	case instance.FieldCreatorUserID:
		return m.CreatorUserID()
	case instance.FieldAPIBaseURL:
		return m.APIBaseURL()
	case instance.FieldAPIKey:
		return m.APIKey()
	case instance.FieldIsOwner:
		return m.IsOwner()
	case instance.FieldConnectionState:
		return m.ConnectionState()
	case instance.FieldCreatedAt:
		return m.CreatedAt()
	case instance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instance.FieldOwnerJid:
		return m.OldOwnerJid(ctx)
	case instance.FieldCreatorUserID:
		return m.OldCreatorUserID(ctx)
	case instance.FieldAPIBaseURL:
		return m.OldAPIBaseURL(ctx)
	case instance.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case instance.FieldIsOwner:
		return m.OldIsOwner(ctx)
	case instance.FieldConnectionState:
		return m.OldConnectionState(ctx)
	case instance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instance.FieldOwnerJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerJid(v)
		return nil
	case instance.FieldCreatorUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorUserID(v)
		return nil
	case instance.FieldAPIBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIBaseURL(v)
		return nil
	case instance.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case instance.FieldIsOwner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOwner(v)
		return nil
	case instance.FieldConnectionState:
		v, ok := value.(instance.ConnectionState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionState(v)
		return nil
	case instance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstanceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstanceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Instance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instance.FieldOwnerJid) {
		fields = append(fields, instance.FieldOwnerJid)
	}
	if m.FieldCleared(instance.FieldCreatorUserID) {
		fields = append(fields, instance.FieldCreatorUserID)
	}
	if m.FieldCleared(instance.FieldAPIBaseURL) {
		fields = append(fields, instance.FieldAPIBaseURL)
	}
	if m.FieldCleared(instance.FieldAPIKey) {
		fields = append(fields, instance.FieldAPIKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstanceMutation) ClearField(name string) error {
	switch name {
	case instance.FieldOwnerJid:
		m.ClearOwnerJid()
		return nil
	case instance.FieldCreatorUserID:
		m.ClearCreatorUserID()
		return nil
	case instance.FieldAPIBaseURL:
		m.ClearAPIBaseURL()
		return nil
	case instance.FieldAPIKey:
		m.ClearAPIKey()
		return nil
	}
	return fmt.Errorf("unknown Instance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstanceMutation) ResetField(name string) error {
	switch name {
	case instance.FieldOwnerJid:
		m.ResetOwnerJid()
		return nil
	case instance.FieldCreatorUserID:
		m.ResetCreatorUserID()
		return nil
	case instance.FieldAPIBaseURL:
		m.ResetAPIBaseURL()
		return nil
	case instance.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case instance.FieldIsOwner:
		m.ResetIsOwner()
		return nil
	case instance.FieldConnectionState:
		m.ResetConnectionState()
		return nil
	case instance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.contacts != nil {
		edges = append(edges, instance.EdgeContacts)
	}
	if m.chats != nil {
		edges = append(edges, instance.EdgeChats)
	}
	if m.groups != nil {
		edges = append(edges, instance.EdgeGroups)
	}
	if m.group_participants != nil {
		edges = append(edges, instance.EdgeGroupParticipants)
	}
	if m.messages != nil {
		edges = append(edges, instance.EdgeMessages)
	}
	if m.status_updates != nil {
		edges = append(edges, instance.EdgeStatusUpdates)
	}
	if m.reactions != nil {
		edges = append(edges, instance.EdgeReactions)
	}
	if m.call_logs != nil {
		edges = append(edges, instance.EdgeCallLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instance.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.contacts))
		for id := range m.contacts {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeChats:
		ids := make([]ent.Value, 0, len(m.chats))
		for id := range m.chats {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeGroupParticipants:
		ids := make([]ent.Value, 0, len(m.group_participants))
		for id := range m.group_participants {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeStatusUpdates:
		ids := make([]ent.Value, 0, len(m.status_updates))
		for id := range m.status_updates {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeReactions:
		ids := make([]ent.Value, 0, len(m.reactions))
		for id := range m.reactions {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCallLogs:
		ids := make([]ent.Value, 0, len(m.call_logs))
		for id := range m.call_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedcontacts != nil {
		edges = append(edges, instance.EdgeContacts)
	}
	if m.removedchats != nil {
		edges = append(edges, instance.EdgeChats)
	}
	if m.removedgroups != nil {
		edges = append(edges, instance.EdgeGroups)
	}
	if m.removedgroup_participants != nil {
		edges = append(edges, instance.EdgeGroupParticipants)
	}
	if m.removedmessages != nil {
		edges = append(edges, instance.EdgeMessages)
	}
	if m.removedstatus_updates != nil {
		edges = append(edges, instance.EdgeStatusUpdates)
	}
	if m.removedreactions != nil {
		edges = append(edges, instance.EdgeReactions)
	}
	if m.removedcall_logs != nil {
		edges = append(edges, instance.EdgeCallLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstanceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case instance.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.removedcontacts))
		for id := range m.removedcontacts {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeChats:
		ids := make([]ent.Value, 0, len(m.removedchats))
		for id := range m.removedchats {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeGroupParticipants:
		ids := make([]ent.Value, 0, len(m.removedgroup_participants))
		for id := range m.removedgroup_participants {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeStatusUpdates:
		ids := make([]ent.Value, 0, len(m.removedstatus_updates))
		for id := range m.removedstatus_updates {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeReactions:
		ids := make([]ent.Value, 0, len(m.removedreactions))
		for id := range m.removedreactions {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCallLogs:
		ids := make([]ent.Value, 0, len(m.removedcall_logs))
		for id := range m.removedcall_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedcontacts {
		edges = append(edges, instance.EdgeContacts)
	}
	if m.clearedchats {
		edges = append(edges, instance.EdgeChats)
	}
	if m.clearedgroups {
		edges = append(edges, instance.EdgeGroups)
	}
	if m.clearedgroup_participants {
		edges = append(edges, instance.EdgeGroupParticipants)
	}
	if m.clearedmessages {
		edges = append(edges, instance.EdgeMessages)
	}
	if m.clearedstatus_updates {
		edges = append(edges, instance.EdgeStatusUpdates)
	}
	if m.clearedreactions {
		edges = append(edges, instance.EdgeReactions)
	}
	if m.clearedcall_logs {
		edges = append(edges, instance.EdgeCallLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case instance.EdgeContacts:
		return m.clearedcontacts
	case instance.EdgeChats:
		return m.clearedchats
	case instance.EdgeGroups:
		return m.clearedgroups
	case instance.EdgeGroupParticipants:
		return m.clearedgroup_participants
	case instance.EdgeMessages:
		return m.clearedmessages
	case instance.EdgeStatusUpdates:
		return m.clearedstatus_updates
	case instance.EdgeReactions:
		return m.clearedreactions
	case instance.EdgeCallLogs:
		return m.clearedcall_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstanceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Instance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstanceMutation) ResetEdge(name string) error {
	switch name {
	case instance.EdgeContacts:
		m.ResetContacts()
		return nil
	case instance.EdgeChats:
		m.ResetChats()
		return nil
	case instance.EdgeGroups:
		m.ResetGroups()
		return nil
	case instance.EdgeGroupParticipants:
		m.ResetGroupParticipants()
		return nil
	case instance.EdgeMessages:
		m.ResetMessages()
		return nil
	case instance.EdgeStatusUpdates:
		m.ResetStatusUpdates()
		return nil
	case instance.EdgeReactions:
		m.ResetReactions()
		return nil
	case instance.EdgeCallLogs:
		m.ResetCallLogs()
		return nil
	}
	return fmt.Errorf("unknown Instance edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	message_id          *string
	chat_id             *string
	sender_jid          *string
	from_me             *bool
	message_type        *message.MessageType
	content             *string
	timestamp           *time.Time
	quoted_message_id   *string
	is_forwarded        *bool
	forwarding_score    *int
	addforwarding_score *int
	is_starred          *bool
	is_edited           *bool
	last_edited_at      *time.Time
	source_platform     *string
	raw_payload         *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	instance            *string
	clearedinstance     bool
	task_links          map[string]struct{}
	removedtask_links   map[string]struct{}
	clearedtask_links   bool
	event_links         map[string]struct{}
	removedevent_links  map[string]struct{}
	clearedevent_links  bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageMutation) ResetMessageID() {
	m.message_id = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *MessageMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *MessageMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *MessageMutation) ResetInstanceID() {
	m.instance = nil
}

// SetChatID sets the "chat_id" field.
func (m *MessageMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MessageMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MessageMutation) ResetChatID() {
	m.chat_id = nil
}

// SetSenderJid sets the "sender_jid" field.
func (m *MessageMutation) SetSenderJid(s string) {
	m.sender_jid = &s
}

// SenderJid returns the value of the "sender_jid" field in the mutation.
func (m *MessageMutation) SenderJid() (r string, exists bool) {
	v := m.sender_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderJid returns the old "sender_jid" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderJid: %w", err)
	}
	return oldValue.SenderJid, nil
}

// ResetSenderJid resets all changes to the "sender_jid" field.
func (m *MessageMutation) ResetSenderJid() {
	m.sender_jid = nil
}

// SetFromMe sets the "from_me" field.
func (m *MessageMutation) SetFromMe(b bool) {
	m.from_me = &b
}

// FromMe returns the value of the "from_me" field in the mutation.
func (m *MessageMutation) FromMe() (r bool, exists bool) {
	v := m.from_me
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMe returns the old "from_me" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFromMe(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMe: %w", err)
	}
	return oldValue.FromMe, nil
}

// ResetFromMe resets all changes to the "from_me" field.
func (m *MessageMutation) ResetFromMe() {
	m.from_me = nil
}

// SetMessageType sets the "message_type" field.
func (m *MessageMutation) SetMessageType(mt message.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageMutation) MessageType() (r message.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageType(ctx context.Context) (v message.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *MessageMutation) ClearContent() {
	m.content = nil
	m.clearedFields[message.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *MessageMutation) ContentCleared() bool {
	_, ok := m.clearedFields[message.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, message.FieldContent)
}

// SetTimestamp sets the "timestamp" field.
func (m *MessageMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MessageMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetQuotedMessageID sets the "quoted_message_id" field.
func (m *MessageMutation) SetQuotedMessageID(s string) {
	m.quoted_message_id = &s
}

// QuotedMessageID returns the value of the "quoted_message_id" field in the mutation.
func (m *MessageMutation) QuotedMessageID() (r string, exists bool) {
	v := m.quoted_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuotedMessageID returns the old "quoted_message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldQuotedMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuotedMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuotedMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuotedMessageID: %w", err)
	}
	return oldValue.QuotedMessageID, nil
}

// ClearQuotedMessageID clears the value of the "quoted_message_id" field.
func (m *MessageMutation) ClearQuotedMessageID() {
	m.quoted_message_id = nil
	m.clearedFields[message.FieldQuotedMessageID] = struct{}{}
}

// QuotedMessageIDCleared returns if the "quoted_message_id" field was cleared in this mutation.
func (m *MessageMutation) QuotedMessageIDCleared() bool {
	_, ok := m.clearedFields[message.FieldQuotedMessageID]
	return ok
}

// ResetQuotedMessageID resets all changes to the "quoted_message_id" field.
func (m *MessageMutation) ResetQuotedMessageID() {
	m.quoted_message_id = nil
	delete(m.clearedFields, message.FieldQuotedMessageID)
}

// SetIsForwarded sets the "is_forwarded" field.
func (m *MessageMutation) SetIsForwarded(b bool) {
	m.is_forwarded = &b
}

// IsForwarded returns the value of the "is_forwarded" field in the mutation.
func (m *MessageMutation) IsForwarded() (r bool, exists bool) {
	v := m.is_forwarded
	if v == nil {
		return
	}
	return *v, true
}

// OldIsForwarded returns the old "is_forwarded" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsForwarded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsForwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsForwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsForwarded: %w", err)
	}
	return oldValue.IsForwarded, nil
}

// ResetIsForwarded resets all changes to the "is_forwarded" field.
func (m *MessageMutation) ResetIsForwarded() {
	m.is_forwarded = nil
}

// SetForwardingScore sets the "forwarding_score" field.
func (m *MessageMutation) SetForwardingScore(i int) {
	m.forwarding_score = &i
	m.addforwarding_score = nil
}

// ForwardingScore returns the value of the "forwarding_score" field in the mutation.
func (m *MessageMutation) ForwardingScore() (r int, exists bool) {
	v := m.forwarding_score
	if v == nil {
		return
	}
	return *v, true
}

// OldForwardingScore returns the old "forwarding_score" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldForwardingScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForwardingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForwardingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForwardingScore: %w", err)
	}
	return oldValue.ForwardingScore, nil
}

// AddForwardingScore adds i to the "forwarding_score" field.
func (m *MessageMutation) AddForwardingScore(i int) {
	if m.addforwarding_score != nil {
		*m.addforwarding_score += i
	} else {
		m.addforwarding_score = &i
	}
}

// AddedForwardingScore returns the value that was added to the "forwarding_score" field in this mutation.
func (m *MessageMutation) AddedForwardingScore() (r int, exists bool) {
	v := m.addforwarding_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetForwardingScore resets all changes to the "forwarding_score" field.
func (m *MessageMutation) ResetForwardingScore() {
	m.forwarding_score = nil
	m.addforwarding_score = nil
}

// SetIsStarred sets the "is_starred" field.
func (m *MessageMutation) SetIsStarred(b bool) {
	m.is_starred = &b
}

// IsStarred returns the value of the "is_starred" field in the mutation.
func (m *MessageMutation) IsStarred() (r bool, exists bool) {
	v := m.is_starred
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStarred returns the old "is_starred" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsStarred(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStarred is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStarred requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStarred: %w", err)
	}
	return oldValue.IsStarred, nil
}

// ResetIsStarred resets all changes to the "is_starred" field.
func (m *MessageMutation) ResetIsStarred() {
	m.is_starred = nil
}

// SetIsEdited sets the "is_edited" field.
func (m *MessageMutation) SetIsEdited(b bool) {
	m.is_edited = &b
}

// IsEdited returns the value of the "is_edited" field in the mutation.
func (m *MessageMutation) IsEdited() (r bool, exists bool) {
	v := m.is_edited
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEdited returns the old "is_edited" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsEdited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEdited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEdited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEdited: %w", err)
	}
	return oldValue.IsEdited, nil
}

// ResetIsEdited resets all changes to the "is_edited" field.
func (m *MessageMutation) ResetIsEdited() {
	m.is_edited = nil
}

// SetLastEditedAt sets the "last_edited_at" field.
func (m *MessageMutation) SetLastEditedAt(t time.Time) {
	m.last_edited_at = &t
}

// LastEditedAt returns the value of the "last_edited_at" field in the mutation.
func (m *MessageMutation) LastEditedAt() (r time.Time, exists bool) {
	v := m.last_edited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEditedAt returns the old "last_edited_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldLastEditedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEditedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEditedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEditedAt: %w", err)
	}
	return oldValue.LastEditedAt, nil
}

// ClearLastEditedAt clears the value of the "last_edited_at" field.
func (m *MessageMutation) ClearLastEditedAt() {
	m.last_edited_at = nil
	m.clearedFields[message.FieldLastEditedAt] = struct{}{}
}

// LastEditedAtCleared returns if the "last_edited_at" field was cleared in this mutation.
func (m *MessageMutation) LastEditedAtCleared() bool {
	_, ok := m.clearedFields[message.FieldLastEditedAt]
	return ok
}

// ResetLastEditedAt resets all changes to the "last_edited_at" field.
func (m *MessageMutation) ResetLastEditedAt() {
	m.last_edited_at = nil
	delete(m.clearedFields, message.FieldLastEditedAt)
}

// SetSourcePlatform sets the "source_platform" field.
func (m *MessageMutation) SetSourcePlatform(s string) {
	m.source_platform = &s
}

// SourcePlatform returns the value of the "source_platform" field in the mutation.
func (m *MessageMutation) SourcePlatform() (r string, exists bool) {
	v := m.source_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePlatform returns the old "source_platform" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSourcePlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePlatform: %w", err)
	}
	return oldValue.SourcePlatform, nil
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (m *MessageMutation) ClearSourcePlatform() {
	m.source_platform = nil
	m.clearedFields[message.FieldSourcePlatform] = struct{}{}
}

// SourcePlatformCleared returns if the "source_platform" field was cleared in this mutation.
func (m *MessageMutation) SourcePlatformCleared() bool {
	_, ok := m.clearedFields[message.FieldSourcePlatform]
	return ok
}

// ResetSourcePlatform resets all changes to the "source_platform" field.
func (m *MessageMutation) ResetSourcePlatform() {
	m.source_platform = nil
	delete(m.clearedFields, message.FieldSourcePlatform)
}

// SetRawPayload sets the "raw_payload" field.
func (m *MessageMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *MessageMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *MessageMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[message.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *MessageMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[message.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *MessageMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, message.FieldRawPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *MessageMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[message.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *MessageMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *MessageMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// AddTaskLinkIDs adds the "task_links" edge to the MessageTaskLink entity by ids.
func (m *MessageMutation) AddTaskLinkIDs(ids ...string) {
	if m.task_links == nil {
		m.task_links = make(map[string]struct{})
	}
	for i := range ids {
		m.task_links[ids[i]] = struct{}{}
	}
}

// ClearTaskLinks clears the "task_links" edge to the MessageTaskLink entity.
func (m *MessageMutation) ClearTaskLinks() {
	m.clearedtask_links = true
}

// TaskLinksCleared reports if the "task_links" edge to the MessageTaskLink entity was cleared.
func (m *MessageMutation) TaskLinksCleared() bool {
	return m.clearedtask_links
}

// RemoveTaskLinkIDs removes the "task_links" edge to the MessageTaskLink entity by IDs.
func (m *MessageMutation) RemoveTaskLinkIDs(ids ...string) {
	if m.removedtask_links == nil {
		m.removedtask_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.task_links, ids[i])
		m.removedtask_links[ids[i]] = struct{}{}
	}
}

// RemovedTaskLinks returns the removed IDs of the "task_links" edge to the MessageTaskLink entity.
func (m *MessageMutation) RemovedTaskLinksIDs() (ids []string) {
	for id := range m.removedtask_links {
		ids = append(ids, id)
	}
	return
}

// TaskLinksIDs returns the "task_links" edge IDs in the mutation.
func (m *MessageMutation) TaskLinksIDs() (ids []string) {
	for id := range m.task_links {
		ids = append(ids, id)
	}
	return
}

// ResetTaskLinks resets all changes to the "task_links" edge.
func (m *MessageMutation) ResetTaskLinks() {
	m.task_links = nil
	m.clearedtask_links = false
	m.removedtask_links = nil
}

// AddEventLinkIDs adds the "event_links" edge to the MessageEventLink entity by ids.
func (m *MessageMutation) AddEventLinkIDs(ids ...string) {
	if m.event_links == nil {
		m.event_links = make(map[string]struct{})
	}
	for i := range ids {
		m.event_links[ids[i]] = struct{}{}
	}
}

// ClearEventLinks clears the "event_links" edge to the MessageEventLink entity.
func (m *MessageMutation) ClearEventLinks() {
	m.clearedevent_links = true
}

// EventLinksCleared reports if the "event_links" edge to the MessageEventLink entity was cleared.
func (m *MessageMutation) EventLinksCleared() bool {
	return m.clearedevent_links
}

// RemoveEventLinkIDs removes the "event_links" edge to the MessageEventLink entity by IDs.
func (m *MessageMutation) RemoveEventLinkIDs(ids ...string) {
	if m.removedevent_links == nil {
		m.removedevent_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.event_links, ids[i])
		m.removedevent_links[ids[i]] = struct{}{}
	}
}

// RemovedEventLinks returns the removed IDs of the "event_links" edge to the MessageEventLink entity.
func (m *MessageMutation) RemovedEventLinksIDs() (ids []string) {
	for id := range m.removedevent_links {
		ids = append(ids, id)
	}
	return
}

// EventLinksIDs returns the "event_links" edge IDs in the mutation.
func (m *MessageMutation) EventLinksIDs() (ids []string) {
	for id := range m.event_links {
		ids = append(ids, id)
	}
	return
}

// ResetEventLinks resets all changes to the "event_links" edge.
func (m *MessageMutation) ResetEventLinks() {
	m.event_links = nil
	m.clearedevent_links = false
	m.removedevent_links = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.message_id != nil {
		fields = append(fields, message.FieldMessageID)
	}
	if m.instance != nil {
		fields = append(fields, message.FieldInstanceID)
	}
	if m.chat_id != nil {
		fields = append(fields, message.FieldChatID)
	}
	if m.sender_jid != nil {
		fields = append(fields, message.FieldSenderJid)
	}
	if m.from_me != nil {
		fields = append(fields, message.FieldFromMe)
	}
	if m.message_type != nil {
		fields = append(fields, message.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.timestamp != nil {
		fields = append(fields, message.FieldTimestamp)
	}
	if m.quoted_message_id != nil {
		fields = append(fields, message.FieldQuotedMessageID)
	}
	if m.is_forwarded != nil {
		fields = append(fields, message.FieldIsForwarded)
	}
	if m.forwarding_score != nil {
		fields = append(fields, message.FieldForwardingScore)
	}
	if m.is_starred != nil {
		fields = append(fields, message.FieldIsStarred)
	}
	if m.is_edited != nil {
		fields = append(fields, message.FieldIsEdited)
	}
	if m.last_edited_at != nil {
		fields = append(fields, message.FieldLastEditedAt)
	}
	if m.source_platform != nil {
		fields = append(fields, message.FieldSourcePlatform)
	}
	if m.raw_payload != nil {
		fields = append(fields, message.FieldRawPayload)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, message.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldMessageID:
		return m.MessageID()
	case message.FieldInstanceID:
		return m.InstanceID()
	case message.FieldChatID:
		return m.ChatID()
	case message.FieldSenderJid:
		return m.SenderJid()
	case message.FieldFromMe:
		return m.FromMe()
	case message.FieldMessageType:
		return m.MessageType()
	case message.FieldContent:
		return m.Content()
	case message.FieldTimestamp:
		return m.Timestamp()
	case message.FieldQuotedMessageID:
		return m.QuotedMessageID()
	case message.FieldIsForwarded:
		return m.IsForwarded()
	case message.FieldForwardingScore:
		return m.ForwardingScore()
	case message.FieldIsStarred:
		return m.IsStarred()
	case message.FieldIsEdited:
		return m.IsEdited()
	case message.FieldLastEditedAt:
		return m.LastEditedAt()
	case message.FieldSourcePlatform:
		return m.SourcePlatform()
	case message.FieldRawPayload:
		return m.RawPayload()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldMessageID:
		return m.OldMessageID(ctx)
	case message.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case message.FieldChatID:
		return m.OldChatID(ctx)
	case message.FieldSenderJid:
		return m.OldSenderJid(ctx)
	case message.FieldFromMe:
		return m.OldFromMe(ctx)
	case message.FieldMessageType:
		return m.OldMessageType(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case message.FieldQuotedMessageID:
		return m.OldQuotedMessageID(ctx)
	case message.FieldIsForwarded:
		return m.OldIsForwarded(ctx)
	case message.FieldForwardingScore:
		return m.OldForwardingScore(ctx)
	case message.FieldIsStarred:
		return m.OldIsStarred(ctx)
	case message.FieldIsEdited:
		return m.OldIsEdited(ctx)
	case message.FieldLastEditedAt:
		return m.OldLastEditedAt(ctx)
	case message.FieldSourcePlatform:
		return m.OldSourcePlatform(ctx)
	case message.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case message.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case message.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case message.FieldSenderJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderJid(v)
		return nil
	case message.FieldFromMe:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMe(v)
		return nil
	case message.FieldMessageType:
		v, ok := value.(message.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case message.FieldQuotedMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuotedMessageID(v)
		return nil
	case message.FieldIsForwarded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsForwarded(v)
		return nil
	case message.FieldForwardingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForwardingScore(v)
		return nil
	case message.FieldIsStarred:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStarred(v)
		return nil
	case message.FieldIsEdited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEdited(v)
		return nil
	case message.FieldLastEditedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEditedAt(v)
		return nil
	case message.FieldSourcePlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePlatform(v)
		return nil
	case message.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addforwarding_score != nil {
		fields = append(fields, message.FieldForwardingScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldForwardingScore:
		return m.AddedForwardingScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldForwardingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddForwardingScore(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldContent) {
		fields = append(fields, message.FieldContent)
	}
	if m.FieldCleared(message.FieldQuotedMessageID) {
		fields = append(fields, message.FieldQuotedMessageID)
	}
	if m.FieldCleared(message.FieldLastEditedAt) {
		fields = append(fields, message.FieldLastEditedAt)
	}
	if m.FieldCleared(message.FieldSourcePlatform) {
		fields = append(fields, message.FieldSourcePlatform)
	}
	if m.FieldCleared(message.FieldRawPayload) {
		fields = append(fields, message.FieldRawPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldContent:
		m.ClearContent()
		return nil
	case message.FieldQuotedMessageID:
		m.ClearQuotedMessageID()
		return nil
	case message.FieldLastEditedAt:
		m.ClearLastEditedAt()
		return nil
	case message.FieldSourcePlatform:
		m.ClearSourcePlatform()
		return nil
	case message.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldMessageID:
		m.ResetMessageID()
		return nil
	case message.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case message.FieldChatID:
		m.ResetChatID()
		return nil
	case message.FieldSenderJid:
		m.ResetSenderJid()
		return nil
	case message.FieldFromMe:
		m.ResetFromMe()
		return nil
	case message.FieldMessageType:
		m.ResetMessageType()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case message.FieldQuotedMessageID:
		m.ResetQuotedMessageID()
		return nil
	case message.FieldIsForwarded:
		m.ResetIsForwarded()
		return nil
	case message.FieldForwardingScore:
		m.ResetForwardingScore()
		return nil
	case message.FieldIsStarred:
		m.ResetIsStarred()
		return nil
	case message.FieldIsEdited:
		m.ResetIsEdited()
		return nil
	case message.FieldLastEditedAt:
		m.ResetLastEditedAt()
		return nil
	case message.FieldSourcePlatform:
		m.ResetSourcePlatform()
		return nil
	case message.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.instance != nil {
		edges = append(edges, message.EdgeInstance)
	}
	if m.task_links != nil {
		edges = append(edges, message.EdgeTaskLinks)
	}
	if m.event_links != nil {
		edges = append(edges, message.EdgeEventLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	case message.EdgeTaskLinks:
		ids := make([]ent.Value, 0, len(m.task_links))
		for id := range m.task_links {
			ids = append(ids, id)
		}
		return ids
	case message.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.event_links))
		for id := range m.event_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtask_links != nil {
		edges = append(edges, message.EdgeTaskLinks)
	}
	if m.removedevent_links != nil {
		edges = append(edges, message.EdgeEventLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeTaskLinks:
		ids := make([]ent.Value, 0, len(m.removedtask_links))
		for id := range m.removedtask_links {
			ids = append(ids, id)
		}
		return ids
	case message.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.removedevent_links))
		for id := range m.removedevent_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedinstance {
		edges = append(edges, message.EdgeInstance)
	}
	if m.clearedtask_links {
		edges = append(edges, message.EdgeTaskLinks)
	}
	if m.clearedevent_links {
		edges = append(edges, message.EdgeEventLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeInstance:
		return m.clearedinstance
	case message.EdgeTaskLinks:
		return m.clearedtask_links
	case message.EdgeEventLinks:
		return m.clearedevent_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeInstance:
		m.ResetInstance()
		return nil
	case message.EdgeTaskLinks:
		m.ResetTaskLinks()
		return nil
	case message.EdgeEventLinks:
		m.ResetEventLinks()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageEventLinkMutation represents an operation that mutates the MessageEventLink nodes in the graph.
type MessageEventLinkMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	rule_id               *string
	link_type             *messageeventlink.LinkType
	instance_id           *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	message               *string
	clearedmessage        bool
	calendar_event        *string
	clearedcalendar_event bool
	done                  bool
	oldValue              func(context.Context) (*MessageEventLink, error)
	predicates            []predicate.MessageEventLink
}

var _ ent.Mutation = (*MessageEventLinkMutation)(nil)

// messageeventlinkOption allows management of the mutation configuration using functional options.
type messageeventlinkOption func(*MessageEventLinkMutation)

// newMessageEventLinkMutation creates new mutation for the MessageEventLink entity.
func newMessageEventLinkMutation(c config, op Op, opts ...messageeventlinkOption) *MessageEventLinkMutation {
	m := &MessageEventLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageEventLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageEventLinkID sets the ID field of the mutation.
func withMessageEventLinkID(id string) messageeventlinkOption {
	return func(m *MessageEventLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageEventLink
		)
		m.oldValue = func(ctx context.Context) (*MessageEventLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageEventLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageEventLink sets the old MessageEventLink of the mutation.
func withMessageEventLink(node *MessageEventLink) messageeventlinkOption {
	return func(m *MessageEventLinkMutation) {
		m.oldValue = func(context.Context) (*MessageEventLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageEventLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageEventLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageEventLink entities.
func (m *MessageEventLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageEventLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageEventLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageEventLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageEventLinkMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageEventLinkMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageEventLinkMutation) ResetMessageID() {
	m.message = nil
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (m *MessageEventLinkMutation) SetCalendarEventID(s string) {
	m.calendar_event = &s
}

// CalendarEventID returns the value of the "calendar_event_id" field in the mutation.
func (m *MessageEventLinkMutation) CalendarEventID() (r string, exists bool) {
	v := m.calendar_event
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarEventID returns the old "calendar_event_id" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldCalendarEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarEventID: %w", err)
	}
	return oldValue.CalendarEventID, nil
}

// ResetCalendarEventID resets all changes to the "calendar_event_id" field.
func (m *MessageEventLinkMutation) ResetCalendarEventID() {
	m.calendar_event = nil
}

// SetRuleID sets the "rule_id" field.
func (m *MessageEventLinkMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *MessageEventLinkMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *MessageEventLinkMutation) ClearRuleID() {
	m.rule_id = nil
	m.clearedFields[messageeventlink.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *MessageEventLinkMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[messageeventlink.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *MessageEventLinkMutation) ResetRuleID() {
	m.rule_id = nil
	delete(m.clearedFields, messageeventlink.FieldRuleID)
}

// SetLinkType sets the "link_type" field.
func (m *MessageEventLinkMutation) SetLinkType(mt messageeventlink.LinkType) {
	m.link_type = &mt
}

// LinkType returns the value of the "link_type" field in the mutation.
func (m *MessageEventLinkMutation) LinkType() (r messageeventlink.LinkType, exists bool) {
	v := m.link_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkType returns the old "link_type" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldLinkType(ctx context.Context) (v messageeventlink.LinkType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkType: %w", err)
	}
	return oldValue.LinkType, nil
}

// ResetLinkType resets all changes to the "link_type" field.
func (m *MessageEventLinkMutation) ResetLinkType() {
	m.link_type = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *MessageEventLinkMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *MessageEventLinkMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *MessageEventLinkMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[messageeventlink.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *MessageEventLinkMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[messageeventlink.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *MessageEventLinkMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, messageeventlink.FieldInstanceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageEventLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageEventLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageEventLink entity.
// If the MessageEventLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageEventLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageEventLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMessage clears the "message" edge to the Message entity.
func (m *MessageEventLinkMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[messageeventlink.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the Message entity was cleared.
func (m *MessageEventLinkMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *MessageEventLinkMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *MessageEventLinkMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// ClearCalendarEvent clears the "calendar_event" edge to the CalendarEvent entity.
func (m *MessageEventLinkMutation) ClearCalendarEvent() {
	m.clearedcalendar_event = true
	m.clearedFields[messageeventlink.FieldCalendarEventID] = struct{}{}
}

// CalendarEventCleared reports if the "calendar_event" edge to the CalendarEvent entity was cleared.
func (m *MessageEventLinkMutation) CalendarEventCleared() bool {
	return m.clearedcalendar_event
}

// CalendarEventIDs returns the "calendar_event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CalendarEventID instead. It exists only for internal usage by the builders.
func (m *MessageEventLinkMutation) CalendarEventIDs() (ids []string) {
	if id := m.calendar_event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCalendarEvent resets all changes to the "calendar_event" edge.
func (m *MessageEventLinkMutation) ResetCalendarEvent() {
	m.calendar_event = nil
	m.clearedcalendar_event = false
}

// Where appends a list predicates to the MessageEventLinkMutation builder.
func (m *MessageEventLinkMutation) Where(ps ...predicate.MessageEventLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageEventLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageEventLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageEventLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageEventLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageEventLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageEventLink).
func (m *MessageEventLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageEventLinkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.message != nil {
		fields = append(fields, messageeventlink.FieldMessageID)
	}
	if m.calendar_event != nil {
		fields = append(fields, messageeventlink.FieldCalendarEventID)
	}
	if m.rule_id != nil {
		fields = append(fields, messageeventlink.FieldRuleID)
	}
	if m.link_type != nil {
		fields = append(fields, messageeventlink.FieldLinkType)
	}
	if m.instance_id != nil {
		fields = append(fields, messageeventlink.FieldInstanceID)
	}
	if m.created_at != nil {
		fields = append(fields, messageeventlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageEventLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messageeventlink.FieldMessageID:
		return m.MessageID()
	case messageeventlink.FieldCalendarEventID:
		return m.CalendarEventID()
	case messageeventlink.FieldRuleID:
		return m.RuleID()
	case messageeventlink.FieldLinkType:
		return m.LinkType()
	case messageeventlink.FieldInstanceID:
		return m.InstanceID()
	case messageeventlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageEventLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messageeventlink.FieldMessageID:
		return m.OldMessageID(ctx)
	case messageeventlink.FieldCalendarEventID:
		return m.OldCalendarEventID(ctx)
	case messageeventlink.FieldRuleID:
		return m.OldRuleID(ctx)
	case messageeventlink.FieldLinkType:
		return m.OldLinkType(ctx)
	case messageeventlink.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case messageeventlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageEventLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageEventLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messageeventlink.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messageeventlink.FieldCalendarEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarEventID(v)
		return nil
	case messageeventlink.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case messageeventlink.FieldLinkType:
		v, ok := value.(messageeventlink.LinkType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkType(v)
		return nil
	case messageeventlink.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case messageeventlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageEventLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageEventLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageEventLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageEventLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageEventLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageEventLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messageeventlink.FieldRuleID) {
		fields = append(fields, messageeventlink.FieldRuleID)
	}
	if m.FieldCleared(messageeventlink.FieldInstanceID) {
		fields = append(fields, messageeventlink.FieldInstanceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageEventLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageEventLinkMutation) ClearField(name string) error {
	switch name {
	case messageeventlink.FieldRuleID:
		m.ClearRuleID()
		return nil
	case messageeventlink.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	}
	return fmt.Errorf("unknown MessageEventLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageEventLinkMutation) ResetField(name string) error {
	switch name {
	case messageeventlink.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messageeventlink.FieldCalendarEventID:
		m.ResetCalendarEventID()
		return nil
	case messageeventlink.FieldRuleID:
		m.ResetRuleID()
		return nil
	case messageeventlink.FieldLinkType:
		m.ResetLinkType()
		return nil
	case messageeventlink.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case messageeventlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageEventLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageEventLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.message != nil {
		edges = append(edges, messageeventlink.EdgeMessage)
	}
	if m.calendar_event != nil {
		edges = append(edges, messageeventlink.EdgeCalendarEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageEventLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messageeventlink.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	case messageeventlink.EdgeCalendarEvent:
		if id := m.calendar_event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageEventLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageEventLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageEventLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessage {
		edges = append(edges, messageeventlink.EdgeMessage)
	}
	if m.clearedcalendar_event {
		edges = append(edges, messageeventlink.EdgeCalendarEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageEventLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case messageeventlink.EdgeMessage:
		return m.clearedmessage
	case messageeventlink.EdgeCalendarEvent:
		return m.clearedcalendar_event
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageEventLinkMutation) ClearEdge(name string) error {
	switch name {
	case messageeventlink.EdgeMessage:
		m.ClearMessage()
		return nil
	case messageeventlink.EdgeCalendarEvent:
		m.ClearCalendarEvent()
		return nil
	}
	return fmt.Errorf("unknown MessageEventLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageEventLinkMutation) ResetEdge(name string) error {
	switch name {
	case messageeventlink.EdgeMessage:
		m.ResetMessage()
		return nil
	case messageeventlink.EdgeCalendarEvent:
		m.ResetCalendarEvent()
		return nil
	}
	return fmt.Errorf("unknown MessageEventLink edge %s", name)
}

// MessageReactionMutation represents an operation that mutates the MessageReaction nodes in the graph.
type MessageReactionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	message_id      *string
	reactor_jid     *string
	reaction_emoji  *string
	from_me         *bool
	timestamp       *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	instance        *string
	clearedinstance bool
	done            bool
	oldValue        func(context.Context) (*MessageReaction, error)
	predicates      []predicate.MessageReaction
}

var _ ent.Mutation = (*MessageReactionMutation)(nil)

// messagereactionOption allows management of the mutation configuration using functional options.
type messagereactionOption func(*MessageReactionMutation)

// newMessageReactionMutation creates new mutation for the MessageReaction entity.
func newMessageReactionMutation(c config, op Op, opts ...messagereactionOption) *MessageReactionMutation {
	m := &MessageReactionMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageReaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageReactionID sets the ID field of the mutation.
func withMessageReactionID(id string) messagereactionOption {
	return func(m *MessageReactionMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageReaction
		)
		m.oldValue = func(ctx context.Context) (*MessageReaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageReaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageReaction sets the old MessageReaction of the mutation.
func withMessageReaction(node *MessageReaction) messagereactionOption {
	return func(m *MessageReactionMutation) {
		m.oldValue = func(context.Context) (*MessageReaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageReactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageReactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageReaction entities.
func (m *MessageReactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageReactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageReactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageReaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageReactionMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageReactionMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageReactionMutation) ResetMessageID() {
	m.message_id = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *MessageReactionMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *MessageReactionMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *MessageReactionMutation) ResetInstanceID() {
	m.instance = nil
}

// SetReactorJid sets the "reactor_jid" field.
func (m *MessageReactionMutation) SetReactorJid(s string) {
	m.reactor_jid = &s
}

// ReactorJid returns the value of the "reactor_jid" field in the mutation.
func (m *MessageReactionMutation) ReactorJid() (r string, exists bool) {
	v := m.reactor_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldReactorJid returns the old "reactor_jid" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldReactorJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactorJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactorJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactorJid: %w", err)
	}
	return oldValue.ReactorJid, nil
}

// ResetReactorJid resets all changes to the "reactor_jid" field.
func (m *MessageReactionMutation) ResetReactorJid() {
	m.reactor_jid = nil
}

// SetReactionEmoji sets the "reaction_emoji" field.
func (m *MessageReactionMutation) SetReactionEmoji(s string) {
	m.reaction_emoji = &s
}

// ReactionEmoji returns the value of the "reaction_emoji" field in the mutation.
func (m *MessageReactionMutation) ReactionEmoji() (r string, exists bool) {
	v := m.reaction_emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldReactionEmoji returns the old "reaction_emoji" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldReactionEmoji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReactionEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReactionEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReactionEmoji: %w", err)
	}
	return oldValue.ReactionEmoji, nil
}

// ResetReactionEmoji resets all changes to the "reaction_emoji" field.
func (m *MessageReactionMutation) ResetReactionEmoji() {
	m.reaction_emoji = nil
}

// SetFromMe sets the "from_me" field.
func (m *MessageReactionMutation) SetFromMe(b bool) {
	m.from_me = &b
}

// FromMe returns the value of the "from_me" field in the mutation.
func (m *MessageReactionMutation) FromMe() (r bool, exists bool) {
	v := m.from_me
	if v == nil {
		return
	}
	return *v, true
}

// OldFromMe returns the old "from_me" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldFromMe(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromMe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromMe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromMe: %w", err)
	}
	return oldValue.FromMe, nil
}

// ResetFromMe resets all changes to the "from_me" field.
func (m *MessageReactionMutation) ResetFromMe() {
	m.from_me = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MessageReactionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MessageReactionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MessageReactionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageReactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageReactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageReactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MessageReactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MessageReactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MessageReactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *MessageReactionMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[messagereaction.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *MessageReactionMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *MessageReactionMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *MessageReactionMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the MessageReactionMutation builder.
func (m *MessageReactionMutation) Where(ps ...predicate.MessageReaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageReactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageReactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageReaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageReactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageReactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageReaction).
func (m *MessageReactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageReactionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.message_id != nil {
		fields = append(fields, messagereaction.FieldMessageID)
	}
	if m.instance != nil {
		fields = append(fields, messagereaction.FieldInstanceID)
	}
	if m.reactor_jid != nil {
		fields = append(fields, messagereaction.FieldReactorJid)
	}
	if m.reaction_emoji != nil {
		fields = append(fields, messagereaction.FieldReactionEmoji)
	}
	if m.from_me != nil {
		fields = append(fields, messagereaction.FieldFromMe)
	}
	if m.timestamp != nil {
		fields = append(fields, messagereaction.FieldTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, messagereaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, messagereaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageReactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagereaction.FieldMessageID:
		return m.MessageID()
	case messagereaction.FieldInstanceID:
		return m.InstanceID()
	case messagereaction.FieldReactorJid:
		return m.ReactorJid()
	case messagereaction.FieldReactionEmoji:
		return m.ReactionEmoji()
	case messagereaction.FieldFromMe:
		return m.FromMe()
	case messagereaction.FieldTimestamp:
		return m.Timestamp()
	case messagereaction.FieldCreatedAt:
		return m.CreatedAt()
	case messagereaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageReactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagereaction.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagereaction.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case messagereaction.FieldReactorJid:
		return m.OldReactorJid(ctx)
	case messagereaction.FieldReactionEmoji:
		return m.OldReactionEmoji(ctx)
	case messagereaction.FieldFromMe:
		return m.OldFromMe(ctx)
	case messagereaction.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case messagereaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case messagereaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageReaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageReactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagereaction.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagereaction.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case messagereaction.FieldReactorJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactorJid(v)
		return nil
	case messagereaction.FieldReactionEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReactionEmoji(v)
		return nil
	case messagereaction.FieldFromMe:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromMe(v)
		return nil
	case messagereaction.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case messagereaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case messagereaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageReaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageReactionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageReactionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageReactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageReaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageReactionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageReactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageReactionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MessageReaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageReactionMutation) ResetField(name string) error {
	switch name {
	case messagereaction.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagereaction.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case messagereaction.FieldReactorJid:
		m.ResetReactorJid()
		return nil
	case messagereaction.FieldReactionEmoji:
		m.ResetReactionEmoji()
		return nil
	case messagereaction.FieldFromMe:
		m.ResetFromMe()
		return nil
	case messagereaction.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case messagereaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case messagereaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageReactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, messagereaction.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageReactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagereaction.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageReactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageReactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageReactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, messagereaction.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageReactionMutation) EdgeCleared(name string) bool {
	switch name {
	case messagereaction.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageReactionMutation) ClearEdge(name string) error {
	switch name {
	case messagereaction.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageReactionMutation) ResetEdge(name string) error {
	switch name {
	case messagereaction.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction edge %s", name)
}

// MessageStatusUpdateMutation represents an operation that mutates the MessageStatusUpdate nodes in the graph.
type MessageStatusUpdateMutation struct {
	config
	op              Op
	typ             string
	id              *string
	message_id      *string
	status          *messagestatusupdate.Status
	participant_jid *string
	status_ts       *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	instance        *string
	clearedinstance bool
	done            bool
	oldValue        func(context.Context) (*MessageStatusUpdate, error)
	predicates      []predicate.MessageStatusUpdate
}

var _ ent.Mutation = (*MessageStatusUpdateMutation)(nil)

// messagestatusupdateOption allows management of the mutation configuration using functional options.
type messagestatusupdateOption func(*MessageStatusUpdateMutation)

// newMessageStatusUpdateMutation creates new mutation for the MessageStatusUpdate entity.
func newMessageStatusUpdateMutation(c config, op Op, opts ...messagestatusupdateOption) *MessageStatusUpdateMutation {
	m := &MessageStatusUpdateMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageStatusUpdate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageStatusUpdateID sets the ID field of the mutation.
func withMessageStatusUpdateID(id string) messagestatusupdateOption {
	return func(m *MessageStatusUpdateMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageStatusUpdate
		)
		m.oldValue = func(ctx context.Context) (*MessageStatusUpdate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageStatusUpdate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageStatusUpdate sets the old MessageStatusUpdate of the mutation.
func withMessageStatusUpdate(node *MessageStatusUpdate) messagestatusupdateOption {
	return func(m *MessageStatusUpdateMutation) {
		m.oldValue = func(context.Context) (*MessageStatusUpdate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageStatusUpdateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageStatusUpdateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageStatusUpdate entities.
func (m *MessageStatusUpdateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageStatusUpdateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageStatusUpdateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageStatusUpdate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageStatusUpdateMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageStatusUpdateMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageStatusUpdateMutation) ResetMessageID() {
	m.message_id = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *MessageStatusUpdateMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *MessageStatusUpdateMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *MessageStatusUpdateMutation) ResetInstanceID() {
	m.instance = nil
}

// SetStatus sets the "status" field.
func (m *MessageStatusUpdateMutation) SetStatus(value messagestatusupdate.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageStatusUpdateMutation) Status() (r messagestatusupdate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldStatus(ctx context.Context) (v messagestatusupdate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageStatusUpdateMutation) ResetStatus() {
	m.status = nil
}

// SetParticipantJid sets the "participant_jid" field.
func (m *MessageStatusUpdateMutation) SetParticipantJid(s string) {
	m.participant_jid = &s
}

// ParticipantJid returns the value of the "participant_jid" field in the mutation.
func (m *MessageStatusUpdateMutation) ParticipantJid() (r string, exists bool) {
	v := m.participant_jid
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantJid returns the old "participant_jid" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldParticipantJid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantJid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantJid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantJid: %w", err)
	}
	return oldValue.ParticipantJid, nil
}

// ClearParticipantJid clears the value of the "participant_jid" field.
func (m *MessageStatusUpdateMutation) ClearParticipantJid() {
	m.participant_jid = nil
	m.clearedFields[messagestatusupdate.FieldParticipantJid] = struct{}{}
}

// ParticipantJidCleared returns if the "participant_jid" field was cleared in this mutation.
func (m *MessageStatusUpdateMutation) ParticipantJidCleared() bool {
	_, ok := m.clearedFields[messagestatusupdate.FieldParticipantJid]
	return ok
}

// ResetParticipantJid resets all changes to the "participant_jid" field.
func (m *MessageStatusUpdateMutation) ResetParticipantJid() {
	m.participant_jid = nil
	delete(m.clearedFields, messagestatusupdate.FieldParticipantJid)
}

// SetStatusTs sets the "status_ts" field.
func (m *MessageStatusUpdateMutation) SetStatusTs(t time.Time) {
	m.status_ts = &t
}

// StatusTs returns the value of the "status_ts" field in the mutation.
func (m *MessageStatusUpdateMutation) StatusTs() (r time.Time, exists bool) {
	v := m.status_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusTs returns the old "status_ts" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldStatusTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusTs: %w", err)
	}
	return oldValue.StatusTs, nil
}

// ResetStatusTs resets all changes to the "status_ts" field.
func (m *MessageStatusUpdateMutation) ResetStatusTs() {
	m.status_ts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageStatusUpdateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageStatusUpdateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageStatusUpdate entity.
// If the MessageStatusUpdate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageStatusUpdateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageStatusUpdateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *MessageStatusUpdateMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[messagestatusupdate.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *MessageStatusUpdateMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *MessageStatusUpdateMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *MessageStatusUpdateMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the MessageStatusUpdateMutation builder.
func (m *MessageStatusUpdateMutation) Where(ps ...predicate.MessageStatusUpdate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageStatusUpdateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageStatusUpdateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageStatusUpdate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageStatusUpdateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageStatusUpdateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageStatusUpdate).
func (m *MessageStatusUpdateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageStatusUpdateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.message_id != nil {
		fields = append(fields, messagestatusupdate.FieldMessageID)
	}
	if m.instance != nil {
		fields = append(fields, messagestatusupdate.FieldInstanceID)
	}
	if m.status != nil {
		fields = append(fields, messagestatusupdate.FieldStatus)
	}
	if m.participant_jid != nil {
		fields = append(fields, messagestatusupdate.FieldParticipantJid)
	}
	if m.status_ts != nil {
		fields = append(fields, messagestatusupdate.FieldStatusTs)
	}
	if m.created_at != nil {
		fields = append(fields, messagestatusupdate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageStatusUpdateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagestatusupdate.FieldMessageID:
		return m.MessageID()
	case messagestatusupdate.FieldInstanceID:
		return m.InstanceID()
	case messagestatusupdate.FieldStatus:
		return m.Status()
	case messagestatusupdate.FieldParticipantJid:
		return m.ParticipantJid()
	case messagestatusupdate.FieldStatusTs:
		return m.StatusTs()
	case messagestatusupdate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageStatusUpdateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagestatusupdate.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagestatusupdate.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case messagestatusupdate.FieldStatus:
		return m.OldStatus(ctx)
	case messagestatusupdate.FieldParticipantJid:
		return m.OldParticipantJid(ctx)
	case messagestatusupdate.FieldStatusTs:
		return m.OldStatusTs(ctx)
	case messagestatusupdate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageStatusUpdate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageStatusUpdateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagestatusupdate.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagestatusupdate.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case messagestatusupdate.FieldStatus:
		v, ok := value.(messagestatusupdate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case messagestatusupdate.FieldParticipantJid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantJid(v)
		return nil
	case messagestatusupdate.FieldStatusTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusTs(v)
		return nil
	case messagestatusupdate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageStatusUpdate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageStatusUpdateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageStatusUpdateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageStatusUpdateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageStatusUpdate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageStatusUpdateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagestatusupdate.FieldParticipantJid) {
		fields = append(fields, messagestatusupdate.FieldParticipantJid)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageStatusUpdateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageStatusUpdateMutation) ClearField(name string) error {
	switch name {
	case messagestatusupdate.FieldParticipantJid:
		m.ClearParticipantJid()
		return nil
	}
	return fmt.Errorf("unknown MessageStatusUpdate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageStatusUpdateMutation) ResetField(name string) error {
	switch name {
	case messagestatusupdate.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagestatusupdate.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case messagestatusupdate.FieldStatus:
		m.ResetStatus()
		return nil
	case messagestatusupdate.FieldParticipantJid:
		m.ResetParticipantJid()
		return nil
	case messagestatusupdate.FieldStatusTs:
		m.ResetStatusTs()
		return nil
	case messagestatusupdate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageStatusUpdate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageStatusUpdateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, messagestatusupdate.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageStatusUpdateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagestatusupdate.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageStatusUpdateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageStatusUpdateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageStatusUpdateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, messagestatusupdate.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageStatusUpdateMutation) EdgeCleared(name string) bool {
	switch name {
	case messagestatusupdate.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageStatusUpdateMutation) ClearEdge(name string) error {
	switch name {
	case messagestatusupdate.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown MessageStatusUpdate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageStatusUpdateMutation) ResetEdge(name string) error {
	switch name {
	case messagestatusupdate.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown MessageStatusUpdate edge %s", name)
}

// MessageTaskLinkMutation represents an operation that mutates the MessageTaskLink nodes in the graph.
type MessageTaskLinkMutation struct {
	config
	op             Op
	typ            string
	id             *string
	rule_id        *string
	link_type      *messagetasklink.LinkType
	instance_id    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*MessageTaskLink, error)
	predicates     []predicate.MessageTaskLink
}

var _ ent.Mutation = (*MessageTaskLinkMutation)(nil)

// messagetasklinkOption allows management of the mutation configuration using functional options.
type messagetasklinkOption func(*MessageTaskLinkMutation)

// newMessageTaskLinkMutation creates new mutation for the MessageTaskLink entity.
func newMessageTaskLinkMutation(c config, op Op, opts ...messagetasklinkOption) *MessageTaskLinkMutation {
	m := &MessageTaskLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageTaskLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageTaskLinkID sets the ID field of the mutation.
func withMessageTaskLinkID(id string) messagetasklinkOption {
	return func(m *MessageTaskLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageTaskLink
		)
		m.oldValue = func(ctx context.Context) (*MessageTaskLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageTaskLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageTaskLink sets the old MessageTaskLink of the mutation.
func withMessageTaskLink(node *MessageTaskLink) messagetasklinkOption {
	return func(m *MessageTaskLinkMutation) {
		m.oldValue = func(context.Context) (*MessageTaskLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageTaskLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageTaskLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageTaskLink entities.
func (m *MessageTaskLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageTaskLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageTaskLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageTaskLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageTaskLinkMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageTaskLinkMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageTaskLinkMutation) ResetMessageID() {
	m.message = nil
}

// SetTaskID sets the "task_id" field.
func (m *MessageTaskLinkMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *MessageTaskLinkMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *MessageTaskLinkMutation) ResetTaskID() {
	m.task = nil
}

// SetRuleID sets the "rule_id" field.
func (m *MessageTaskLinkMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *MessageTaskLinkMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *MessageTaskLinkMutation) ClearRuleID() {
	m.rule_id = nil
	m.clearedFields[messagetasklink.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *MessageTaskLinkMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[messagetasklink.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *MessageTaskLinkMutation) ResetRuleID() {
	m.rule_id = nil
	delete(m.clearedFields, messagetasklink.FieldRuleID)
}

// SetLinkType sets the "link_type" field.
func (m *MessageTaskLinkMutation) SetLinkType(mt messagetasklink.LinkType) {
	m.link_type = &mt
}

// LinkType returns the value of the "link_type" field in the mutation.
func (m *MessageTaskLinkMutation) LinkType() (r messagetasklink.LinkType, exists bool) {
	v := m.link_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkType returns the old "link_type" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldLinkType(ctx context.Context) (v messagetasklink.LinkType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkType: %w", err)
	}
	return oldValue.LinkType, nil
}

// ResetLinkType resets all changes to the "link_type" field.
func (m *MessageTaskLinkMutation) ResetLinkType() {
	m.link_type = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *MessageTaskLinkMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *MessageTaskLinkMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *MessageTaskLinkMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[messagetasklink.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *MessageTaskLinkMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[messagetasklink.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *MessageTaskLinkMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, messagetasklink.FieldInstanceID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageTaskLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageTaskLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageTaskLink entity.
// If the MessageTaskLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTaskLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageTaskLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMessage clears the "message" edge to the Message entity.
func (m *MessageTaskLinkMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[messagetasklink.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the Message entity was cleared.
func (m *MessageTaskLinkMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *MessageTaskLinkMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *MessageTaskLinkMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// ClearTask clears the "task" edge to the Task entity.
func (m *MessageTaskLinkMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[messagetasklink.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *MessageTaskLinkMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *MessageTaskLinkMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *MessageTaskLinkMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the MessageTaskLinkMutation builder.
func (m *MessageTaskLinkMutation) Where(ps ...predicate.MessageTaskLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageTaskLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageTaskLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageTaskLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageTaskLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageTaskLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageTaskLink).
func (m *MessageTaskLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageTaskLinkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.message != nil {
		fields = append(fields, messagetasklink.FieldMessageID)
	}
	if m.task != nil {
		fields = append(fields, messagetasklink.FieldTaskID)
	}
	if m.rule_id != nil {
		fields = append(fields, messagetasklink.FieldRuleID)
	}
	if m.link_type != nil {
		fields = append(fields, messagetasklink.FieldLinkType)
	}
	if m.instance_id != nil {
		fields = append(fields, messagetasklink.FieldInstanceID)
	}
	if m.created_at != nil {
		fields = append(fields, messagetasklink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageTaskLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagetasklink.FieldMessageID:
		return m.MessageID()
	case messagetasklink.FieldTaskID:
		return m.TaskID()
	case messagetasklink.FieldRuleID:
		return m.RuleID()
	case messagetasklink.FieldLinkType:
		return m.LinkType()
	case messagetasklink.FieldInstanceID:
		return m.InstanceID()
	case messagetasklink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageTaskLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagetasklink.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagetasklink.FieldTaskID:
		return m.OldTaskID(ctx)
	case messagetasklink.FieldRuleID:
		return m.OldRuleID(ctx)
	case messagetasklink.FieldLinkType:
		return m.OldLinkType(ctx)
	case messagetasklink.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case messagetasklink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageTaskLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTaskLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagetasklink.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagetasklink.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case messagetasklink.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case messagetasklink.FieldLinkType:
		v, ok := value.(messagetasklink.LinkType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkType(v)
		return nil
	case messagetasklink.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case messagetasklink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTaskLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageTaskLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageTaskLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTaskLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageTaskLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageTaskLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messagetasklink.FieldRuleID) {
		fields = append(fields, messagetasklink.FieldRuleID)
	}
	if m.FieldCleared(messagetasklink.FieldInstanceID) {
		fields = append(fields, messagetasklink.FieldInstanceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageTaskLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageTaskLinkMutation) ClearField(name string) error {
	switch name {
	case messagetasklink.FieldRuleID:
		m.ClearRuleID()
		return nil
	case messagetasklink.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	}
	return fmt.Errorf("unknown MessageTaskLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageTaskLinkMutation) ResetField(name string) error {
	switch name {
	case messagetasklink.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagetasklink.FieldTaskID:
		m.ResetTaskID()
		return nil
	case messagetasklink.FieldRuleID:
		m.ResetRuleID()
		return nil
	case messagetasklink.FieldLinkType:
		m.ResetLinkType()
		return nil
	case messagetasklink.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case messagetasklink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageTaskLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageTaskLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.message != nil {
		edges = append(edges, messagetasklink.EdgeMessage)
	}
	if m.task != nil {
		edges = append(edges, messagetasklink.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageTaskLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagetasklink.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	case messagetasklink.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageTaskLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageTaskLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageTaskLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessage {
		edges = append(edges, messagetasklink.EdgeMessage)
	}
	if m.clearedtask {
		edges = append(edges, messagetasklink.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageTaskLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case messagetasklink.EdgeMessage:
		return m.clearedmessage
	case messagetasklink.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageTaskLinkMutation) ClearEdge(name string) error {
	switch name {
	case messagetasklink.EdgeMessage:
		m.ClearMessage()
		return nil
	case messagetasklink.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown MessageTaskLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageTaskLinkMutation) ResetEdge(name string) error {
	switch name {
	case messagetasklink.EdgeMessage:
		m.ResetMessage()
		return nil
	case messagetasklink.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown MessageTaskLink edge %s", name)
}

// NoteMutation represents an operation that mutates the Note nodes in the graph.
type NoteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	content       *string
	tags          *[]string
	appendtags    []string
	space_id      *string
	created_by    *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Note, error)
	predicates    []predicate.Note
}

var _ ent.Mutation = (*NoteMutation)(nil)

// noteOption allows management of the mutation configuration using functional options.
type noteOption func(*NoteMutation)

// newNoteMutation creates new mutation for the Note entity.
func newNoteMutation(c config, op Op, opts ...noteOption) *NoteMutation {
	m := &NoteMutation{
		config:        c,
		op:            op,
		typ:           TypeNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoteID sets the ID field of the mutation.
func withNoteID(id string) noteOption {
	return func(m *NoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Note
		)
		m.oldValue = func(ctx context.Context) (*Note, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Note.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNote sets the old Note of the mutation.
func withNote(node *Note) noteOption {
	return func(m *NoteMutation) {
		m.oldValue = func(context.Context) (*Note, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Note entities.
func (m *NoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Note.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *NoteMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NoteMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NoteMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *NoteMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *NoteMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *NoteMutation) ClearContent() {
	m.content = nil
	m.clearedFields[note.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *NoteMutation) ContentCleared() bool {
	_, ok := m.clearedFields[note.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *NoteMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, note.FieldContent)
}

// SetTags sets the "tags" field.
func (m *NoteMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *NoteMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *NoteMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *NoteMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *NoteMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[note.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *NoteMutation) TagsCleared() bool {
	_, ok := m.clearedFields[note.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *NoteMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, note.FieldTags)
}

// SetSpaceID sets the "space_id" field.
func (m *NoteMutation) SetSpaceID(s string) {
	m.space_id = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *NoteMutation) SpaceID() (r string, exists bool) {
	v := m.space_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ClearSpaceID clears the value of the "space_id" field.
func (m *NoteMutation) ClearSpaceID() {
	m.space_id = nil
	m.clearedFields[note.FieldSpaceID] = struct{}{}
}

// SpaceIDCleared returns if the "space_id" field was cleared in this mutation.
func (m *NoteMutation) SpaceIDCleared() bool {
	_, ok := m.clearedFields[note.FieldSpaceID]
	return ok
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *NoteMutation) ResetSpaceID() {
	m.space_id = nil
	delete(m.clearedFields, note.FieldSpaceID)
}

// SetCreatedBy sets the "created_by" field.
func (m *NoteMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *NoteMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *NoteMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[note.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *NoteMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[note.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *NoteMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, note.FieldCreatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *NoteMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *NoteMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *NoteMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[note.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *NoteMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[note.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *NoteMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, note.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *NoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NoteMutation builder.
func (m *NoteMutation) Where(ps ...predicate.Note) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Note, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Note).
func (m *NoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoteMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, note.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, note.FieldContent)
	}
	if m.tags != nil {
		fields = append(fields, note.FieldTags)
	}
	if m.space_id != nil {
		fields = append(fields, note.FieldSpaceID)
	}
	if m.created_by != nil {
		fields = append(fields, note.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, note.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, note.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, note.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case note.FieldTitle:
		return m.Title()
	case note.FieldContent:
		return m.Content()
	case note.FieldTags:
		return m.Tags()
	case note.FieldSpaceID:
		return m.SpaceID()
	case note.FieldCreatedBy:
		return m.CreatedBy()
	case note.FieldMetadata:
		return m.Metadata()
	case note.FieldCreatedAt:
		return m.CreatedAt()
	case note.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case note.FieldTitle:
		return m.OldTitle(ctx)
	case note.FieldContent:
		return m.OldContent(ctx)
	case note.FieldTags:
		return m.OldTags(ctx)
	case note.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case note.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case note.FieldMetadata:
		return m.OldMetadata(ctx)
	case note.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case note.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Note field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case note.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case note.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case note.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case note.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case note.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case note.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case note.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case note.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Note numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(note.FieldContent) {
		fields = append(fields, note.FieldContent)
	}
	if m.FieldCleared(note.FieldTags) {
		fields = append(fields, note.FieldTags)
	}
	if m.FieldCleared(note.FieldSpaceID) {
		fields = append(fields, note.FieldSpaceID)
	}
	if m.FieldCleared(note.FieldCreatedBy) {
		fields = append(fields, note.FieldCreatedBy)
	}
	if m.FieldCleared(note.FieldMetadata) {
		fields = append(fields, note.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoteMutation) ClearField(name string) error {
	switch name {
	case note.FieldContent:
		m.ClearContent()
		return nil
	case note.FieldTags:
		m.ClearTags()
		return nil
	case note.FieldSpaceID:
		m.ClearSpaceID()
		return nil
	case note.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case note.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Note nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoteMutation) ResetField(name string) error {
	switch name {
	case note.FieldTitle:
		m.ResetTitle()
		return nil
	case note.FieldContent:
		m.ResetContent()
		return nil
	case note.FieldTags:
		m.ResetTags()
		return nil
	case note.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case note.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case note.FieldMetadata:
		m.ResetMetadata()
		return nil
	case note.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case note.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Note unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Note edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	description          *string
	priority             *task.Priority
	status               *task.Status
	due_date             *time.Time
	tags                 *[]string
	appendtags           []string
	assignee             *string
	space_id             *string
	created_by           *string
	metadata             *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	message_links        map[string]struct{}
	removedmessage_links map[string]struct{}
	clearedmessage_links bool
	done                 bool
	oldValue             func(context.Context) (*Task, error)
	predicates           []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetDueDate sets the "due_date" field.
func (m *TaskMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *TaskMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *TaskMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[task.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *TaskMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[task.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *TaskMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, task.FieldDueDate)
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TaskMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[task.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TaskMutation) TagsCleared() bool {
	_, ok := m.clearedFields[task.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, task.FieldTags)
}

// SetAssignee sets the "assignee" field.
func (m *TaskMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *TaskMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ClearAssignee clears the value of the "assignee" field.
func (m *TaskMutation) ClearAssignee() {
	m.assignee = nil
	m.clearedFields[task.FieldAssignee] = struct{}{}
}

// AssigneeCleared returns if the "assignee" field was cleared in this mutation.
func (m *TaskMutation) AssigneeCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignee]
	return ok
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	delete(m.clearedFields, task.FieldAssignee)
}

// SetSpaceID sets the "space_id" field.
func (m *TaskMutation) SetSpaceID(s string) {
	m.space_id = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *TaskMutation) SpaceID() (r string, exists bool) {
	v := m.space_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ClearSpaceID clears the value of the "space_id" field.
func (m *TaskMutation) ClearSpaceID() {
	m.space_id = nil
	m.clearedFields[task.FieldSpaceID] = struct{}{}
}

// SpaceIDCleared returns if the "space_id" field was cleared in this mutation.
func (m *TaskMutation) SpaceIDCleared() bool {
	_, ok := m.clearedFields[task.FieldSpaceID]
	return ok
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *TaskMutation) ResetSpaceID() {
	m.space_id = nil
	delete(m.clearedFields, task.FieldSpaceID)
}

// SetCreatedBy sets the "created_by" field.
func (m *TaskMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TaskMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *TaskMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[task.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *TaskMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TaskMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, task.FieldCreatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *TaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[task.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[task.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, task.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageLinkIDs adds the "message_links" edge to the MessageTaskLink entity by ids.
func (m *TaskMutation) AddMessageLinkIDs(ids ...string) {
	if m.message_links == nil {
		m.message_links = make(map[string]struct{})
	}
	for i := range ids {
		m.message_links[ids[i]] = struct{}{}
	}
}

// ClearMessageLinks clears the "message_links" edge to the MessageTaskLink entity.
func (m *TaskMutation) ClearMessageLinks() {
	m.clearedmessage_links = true
}

// MessageLinksCleared reports if the "message_links" edge to the MessageTaskLink entity was cleared.
func (m *TaskMutation) MessageLinksCleared() bool {
	return m.clearedmessage_links
}

// RemoveMessageLinkIDs removes the "message_links" edge to the MessageTaskLink entity by IDs.
func (m *TaskMutation) RemoveMessageLinkIDs(ids ...string) {
	if m.removedmessage_links == nil {
		m.removedmessage_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.message_links, ids[i])
		m.removedmessage_links[ids[i]] = struct{}{}
	}
}

// RemovedMessageLinks returns the removed IDs of the "message_links" edge to the MessageTaskLink entity.
func (m *TaskMutation) RemovedMessageLinksIDs() (ids []string) {
	for id := range m.removedmessage_links {
		ids = append(ids, id)
	}
	return
}

// MessageLinksIDs returns the "message_links" edge IDs in the mutation.
func (m *TaskMutation) MessageLinksIDs() (ids []string) {
	for id := range m.message_links {
		ids = append(ids, id)
	}
	return
}

// ResetMessageLinks resets all changes to the "message_links" edge.
func (m *TaskMutation) ResetMessageLinks() {
	m.message_links = nil
	m.clearedmessage_links = false
	m.removedmessage_links = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.due_date != nil {
		fields = append(fields, task.FieldDueDate)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.assignee != nil {
		fields = append(fields, task.FieldAssignee)
	}
	if m.space_id != nil {
		fields = append(fields, task.FieldSpaceID)
	}
	if m.created_by != nil {
		fields = append(fields, task.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, task.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldDueDate:
		return m.DueDate()
	case task.FieldTags:
		return m.Tags()
	case task.FieldAssignee:
		return m.Assignee()
	case task.FieldSpaceID:
		return m.SpaceID()
	case task.FieldCreatedBy:
		return m.CreatedBy()
	case task.FieldMetadata:
		return m.Metadata()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldDueDate:
		return m.OldDueDate(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldAssignee:
		return m.OldAssignee(ctx)
	case task.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case task.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case task.FieldMetadata:
		return m.OldMetadata(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case task.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case task.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case task.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldDueDate) {
		fields = append(fields, task.FieldDueDate)
	}
	if m.FieldCleared(task.FieldTags) {
		fields = append(fields, task.FieldTags)
	}
	if m.FieldCleared(task.FieldAssignee) {
		fields = append(fields, task.FieldAssignee)
	}
	if m.FieldCleared(task.FieldSpaceID) {
		fields = append(fields, task.FieldSpaceID)
	}
	if m.FieldCleared(task.FieldCreatedBy) {
		fields = append(fields, task.FieldCreatedBy)
	}
	if m.FieldCleared(task.FieldMetadata) {
		fields = append(fields, task.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldDueDate:
		m.ClearDueDate()
		return nil
	case task.FieldTags:
		m.ClearTags()
		return nil
	case task.FieldAssignee:
		m.ClearAssignee()
		return nil
	case task.FieldSpaceID:
		m.ClearSpaceID()
		return nil
	case task.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case task.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldDueDate:
		m.ResetDueDate()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldAssignee:
		m.ResetAssignee()
		return nil
	case task.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case task.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case task.FieldMetadata:
		m.ResetMetadata()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message_links != nil {
		edges = append(edges, task.EdgeMessageLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.message_links))
		for id := range m.message_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessage_links != nil {
		edges = append(edges, task.EdgeMessageLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.removedmessage_links))
		for id := range m.removedmessage_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage_links {
		edges = append(edges, task.EdgeMessageLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeMessageLinks:
		return m.clearedmessage_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeMessageLinks:
		m.ResetMessageLinks()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
