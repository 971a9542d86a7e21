// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/reflexhq/reflex/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/reflexhq/reflex/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActionExecutionLog is the client for interacting with the ActionExecutionLog builders.
	ActionExecutionLog *ActionExecutionLogClient
	// ActionQueueItem is the client for interacting with the ActionQueueItem builders.
	ActionQueueItem *ActionQueueItemClient
	// ActionRule is the client for interacting with the ActionRule builders.
	ActionRule *ActionRuleClient
	// Bill is the client for interacting with the Bill builders.
	Bill *BillClient
	// CalendarEvent is the client for interacting with the CalendarEvent builders.
	CalendarEvent *CalendarEventClient
	// CallLog is the client for interacting with the CallLog builders.
	CallLog *CallLogClient
	// Chat is the client for interacting with the Chat builders.
	Chat *ChatClient
	// Contact is the client for interacting with the Contact builders.
	Contact *ContactClient
	// EntityChange is the client for interacting with the EntityChange builders.
	EntityChange *EntityChangeClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// FailedEvent is the client for interacting with the FailedEvent builders.
	FailedEvent *FailedEventClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// GroupParticipant is the client for interacting with the GroupParticipant builders.
	GroupParticipant *GroupParticipantClient
	// Instance is the client for interacting with the Instance builders.
	Instance *InstanceClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageEventLink is the client for interacting with the MessageEventLink builders.
	MessageEventLink *MessageEventLinkClient
	// MessageReaction is the client for interacting with the MessageReaction builders.
	MessageReaction *MessageReactionClient
	// MessageStatusUpdate is the client for interacting with the MessageStatusUpdate builders.
	MessageStatusUpdate *MessageStatusUpdateClient
	// MessageTaskLink is the client for interacting with the MessageTaskLink builders.
	MessageTaskLink *MessageTaskLinkClient
	// Note is the client for interacting with the Note builders.
	Note *NoteClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActionExecutionLog = NewActionExecutionLogClient(c.config)
	c.ActionQueueItem = NewActionQueueItemClient(c.config)
	c.ActionRule = NewActionRuleClient(c.config)
	c.Bill = NewBillClient(c.config)
	c.CalendarEvent = NewCalendarEventClient(c.config)
	c.CallLog = NewCallLogClient(c.config)
	c.Chat = NewChatClient(c.config)
	c.Contact = NewContactClient(c.config)
	c.EntityChange = NewEntityChangeClient(c.config)
	c.Event = NewEventClient(c.config)
	c.FailedEvent = NewFailedEventClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.GroupParticipant = NewGroupParticipantClient(c.config)
	c.Instance = NewInstanceClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageEventLink = NewMessageEventLinkClient(c.config)
	c.MessageReaction = NewMessageReactionClient(c.config)
	c.MessageStatusUpdate = NewMessageStatusUpdateClient(c.config)
	c.MessageTaskLink = NewMessageTaskLinkClient(c.config)
	c.Note = NewNoteClient(c.config)
	c.Task = NewTaskClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ActionExecutionLog:  NewActionExecutionLogClient(cfg),
		ActionQueueItem:     NewActionQueueItemClient(cfg),
		ActionRule:          NewActionRuleClient(cfg),
		Bill:                NewBillClient(cfg),
		CalendarEvent:       NewCalendarEventClient(cfg),
		CallLog:             NewCallLogClient(cfg),
		Chat:                NewChatClient(cfg),
		Contact:             NewContactClient(cfg),
		EntityChange:        NewEntityChangeClient(cfg),
		Event:               NewEventClient(cfg),
		FailedEvent:         NewFailedEventClient(cfg),
		Group:               NewGroupClient(cfg),
		GroupParticipant:    NewGroupParticipantClient(cfg),
		Instance:            NewInstanceClient(cfg),
		Message:             NewMessageClient(cfg),
		MessageEventLink:    NewMessageEventLinkClient(cfg),
		MessageReaction:     NewMessageReactionClient(cfg),
		MessageStatusUpdate: NewMessageStatusUpdateClient(cfg),
		MessageTaskLink:     NewMessageTaskLinkClient(cfg),
		Note:                NewNoteClient(cfg),
		Task:                NewTaskClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		ActionExecutionLog:  NewActionExecutionLogClient(cfg),
		ActionQueueItem:     NewActionQueueItemClient(cfg),
		ActionRule:          NewActionRuleClient(cfg),
		Bill:                NewBillClient(cfg),
		CalendarEvent:       NewCalendarEventClient(cfg),
		CallLog:             NewCallLogClient(cfg),
		Chat:                NewChatClient(cfg),
		Contact:             NewContactClient(cfg),
		EntityChange:        NewEntityChangeClient(cfg),
		Event:               NewEventClient(cfg),
		FailedEvent:         NewFailedEventClient(cfg),
		Group:               NewGroupClient(cfg),
		GroupParticipant:    NewGroupParticipantClient(cfg),
		Instance:            NewInstanceClient(cfg),
		Message:             NewMessageClient(cfg),
		MessageEventLink:    NewMessageEventLinkClient(cfg),
		MessageReaction:     NewMessageReactionClient(cfg),
		MessageStatusUpdate: NewMessageStatusUpdateClient(cfg),
		MessageTaskLink:     NewMessageTaskLinkClient(cfg),
		Note:                NewNoteClient(cfg),
		Task:                NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActionExecutionLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActionExecutionLog, c.ActionQueueItem, c.ActionRule, c.Bill, c.CalendarEvent,
		c.CallLog, c.Chat, c.Contact, c.EntityChange, c.Event, c.FailedEvent, c.Group,
		c.GroupParticipant, c.Instance, c.Message, c.MessageEventLink,
		c.MessageReaction, c.MessageStatusUpdate, c.MessageTaskLink, c.Note, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActionExecutionLog, c.ActionQueueItem, c.ActionRule, c.Bill, c.CalendarEvent,
		c.CallLog, c.Chat, c.Contact, c.EntityChange, c.Event, c.FailedEvent, c.Group,
		c.GroupParticipant, c.Instance, c.Message, c.MessageEventLink,
		c.MessageReaction, c.MessageStatusUpdate, c.MessageTaskLink, c.Note, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActionExecutionLogMutation:
		return c.ActionExecutionLog.mutate(ctx, m)
	case *ActionQueueItemMutation:
		return c.ActionQueueItem.mutate(ctx, m)
	case *ActionRuleMutation:
		return c.ActionRule.mutate(ctx, m)
	case *BillMutation:
		return c.Bill.mutate(ctx, m)
	case *CalendarEventMutation:
		return c.CalendarEvent.mutate(ctx, m)
	case *CallLogMutation:
		return c.CallLog.mutate(ctx, m)
	case *ChatMutation:
		return c.Chat.mutate(ctx, m)
	case *ContactMutation:
		return c.Contact.mutate(ctx, m)
	case *EntityChangeMutation:
		return c.EntityChange.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FailedEventMutation:
		return c.FailedEvent.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *GroupParticipantMutation:
		return c.GroupParticipant.mutate(ctx, m)
	case *InstanceMutation:
		return c.Instance.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageEventLinkMutation:
		return c.MessageEventLink.mutate(ctx, m)
	case *MessageReactionMutation:
		return c.MessageReaction.mutate(ctx, m)
	case *MessageStatusUpdateMutation:
		return c.MessageStatusUpdate.mutate(ctx, m)
	case *MessageTaskLinkMutation:
		return c.MessageTaskLink.mutate(ctx, m)
	case *NoteMutation:
		return c.Note.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActionExecutionLogClient is a client for the ActionExecutionLog schema.
type ActionExecutionLogClient struct {
	config
}

// NewActionExecutionLogClient returns a client for the ActionExecutionLog from the given config.
func NewActionExecutionLogClient(c config) *ActionExecutionLogClient {
	return &ActionExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionexecutionlog.Hooks(f(g(h())))`.
func (c *ActionExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ActionExecutionLog = append(c.hooks.ActionExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionexecutionlog.Intercept(f(g(h())))`.
func (c *ActionExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionExecutionLog = append(c.inters.ActionExecutionLog, interceptors...)
}

// Create returns a builder for creating a ActionExecutionLog entity.
func (c *ActionExecutionLogClient) Create() *ActionExecutionLogCreate {
	mutation := newActionExecutionLogMutation(c.config, OpCreate)
	return &ActionExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionExecutionLog entities.
func (c *ActionExecutionLogClient) CreateBulk(builders ...*ActionExecutionLogCreate) *ActionExecutionLogCreateBulk {
	return &ActionExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ActionExecutionLogCreate, int)) *ActionExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionExecutionLogCreateBulk{err: fmt.Errorf("calling to ActionExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Update() *ActionExecutionLogUpdate {
	mutation := newActionExecutionLogMutation(c.config, OpUpdate)
	return &ActionExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionExecutionLogClient) UpdateOne(_m *ActionExecutionLog) *ActionExecutionLogUpdateOne {
	mutation := newActionExecutionLogMutation(c.config, OpUpdateOne, withActionExecutionLog(_m))
	return &ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionExecutionLogClient) UpdateOneID(id string) *ActionExecutionLogUpdateOne {
	mutation := newActionExecutionLogMutation(c.config, OpUpdateOne, withActionExecutionLogID(id))
	return &ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Delete() *ActionExecutionLogDelete {
	mutation := newActionExecutionLogMutation(c.config, OpDelete)
	return &ActionExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionExecutionLogClient) DeleteOne(_m *ActionExecutionLog) *ActionExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionExecutionLogClient) DeleteOneID(id string) *ActionExecutionLogDeleteOne {
	builder := c.Delete().Where(actionexecutionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Query() *ActionExecutionLogQuery {
	return &ActionExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionExecutionLog entity by its id.
func (c *ActionExecutionLogClient) Get(ctx context.Context, id string) (*ActionExecutionLog, error) {
	return c.Query().Where(actionexecutionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionExecutionLogClient) GetX(ctx context.Context, id string) *ActionExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionExecutionLogClient) Hooks() []Hook {
	return c.hooks.ActionExecutionLog
}

// Interceptors returns the client interceptors.
func (c *ActionExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ActionExecutionLog
}

func (c *ActionExecutionLogClient) mutate(ctx context.Context, m *ActionExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionExecutionLog mutation op: %q", m.Op())
	}
}

// ActionQueueItemClient is a client for the ActionQueueItem schema.
type ActionQueueItemClient struct {
	config
}

// NewActionQueueItemClient returns a client for the ActionQueueItem from the given config.
func NewActionQueueItemClient(c config) *ActionQueueItemClient {
	return &ActionQueueItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionqueueitem.Hooks(f(g(h())))`.
func (c *ActionQueueItemClient) Use(hooks ...Hook) {
	c.hooks.ActionQueueItem = append(c.hooks.ActionQueueItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionqueueitem.Intercept(f(g(h())))`.
func (c *ActionQueueItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionQueueItem = append(c.inters.ActionQueueItem, interceptors...)
}

// Create returns a builder for creating a ActionQueueItem entity.
func (c *ActionQueueItemClient) Create() *ActionQueueItemCreate {
	mutation := newActionQueueItemMutation(c.config, OpCreate)
	return &ActionQueueItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionQueueItem entities.
func (c *ActionQueueItemClient) CreateBulk(builders ...*ActionQueueItemCreate) *ActionQueueItemCreateBulk {
	return &ActionQueueItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionQueueItemClient) MapCreateBulk(slice any, setFunc func(*ActionQueueItemCreate, int)) *ActionQueueItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionQueueItemCreateBulk{err: fmt.Errorf("calling to ActionQueueItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionQueueItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionQueueItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionQueueItem.
func (c *ActionQueueItemClient) Update() *ActionQueueItemUpdate {
	mutation := newActionQueueItemMutation(c.config, OpUpdate)
	return &ActionQueueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionQueueItemClient) UpdateOne(_m *ActionQueueItem) *ActionQueueItemUpdateOne {
	mutation := newActionQueueItemMutation(c.config, OpUpdateOne, withActionQueueItem(_m))
	return &ActionQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionQueueItemClient) UpdateOneID(id string) *ActionQueueItemUpdateOne {
	mutation := newActionQueueItemMutation(c.config, OpUpdateOne, withActionQueueItemID(id))
	return &ActionQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionQueueItem.
func (c *ActionQueueItemClient) Delete() *ActionQueueItemDelete {
	mutation := newActionQueueItemMutation(c.config, OpDelete)
	return &ActionQueueItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionQueueItemClient) DeleteOne(_m *ActionQueueItem) *ActionQueueItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionQueueItemClient) DeleteOneID(id string) *ActionQueueItemDeleteOne {
	builder := c.Delete().Where(actionqueueitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionQueueItemDeleteOne{builder}
}

// Query returns a query builder for ActionQueueItem.
func (c *ActionQueueItemClient) Query() *ActionQueueItemQuery {
	return &ActionQueueItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionQueueItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionQueueItem entity by its id.
func (c *ActionQueueItemClient) Get(ctx context.Context, id string) (*ActionQueueItem, error) {
	return c.Query().Where(actionqueueitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionQueueItemClient) GetX(ctx context.Context, id string) *ActionQueueItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionQueueItemClient) Hooks() []Hook {
	return c.hooks.ActionQueueItem
}

// Interceptors returns the client interceptors.
func (c *ActionQueueItemClient) Interceptors() []Interceptor {
	return c.inters.ActionQueueItem
}

func (c *ActionQueueItemClient) mutate(ctx context.Context, m *ActionQueueItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionQueueItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionQueueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionQueueItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionQueueItem mutation op: %q", m.Op())
	}
}

// ActionRuleClient is a client for the ActionRule schema.
type ActionRuleClient struct {
	config
}

// NewActionRuleClient returns a client for the ActionRule from the given config.
func NewActionRuleClient(c config) *ActionRuleClient {
	return &ActionRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionrule.Hooks(f(g(h())))`.
func (c *ActionRuleClient) Use(hooks ...Hook) {
	c.hooks.ActionRule = append(c.hooks.ActionRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionrule.Intercept(f(g(h())))`.
func (c *ActionRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionRule = append(c.inters.ActionRule, interceptors...)
}

// Create returns a builder for creating a ActionRule entity.
func (c *ActionRuleClient) Create() *ActionRuleCreate {
	mutation := newActionRuleMutation(c.config, OpCreate)
	return &ActionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionRule entities.
func (c *ActionRuleClient) CreateBulk(builders ...*ActionRuleCreate) *ActionRuleCreateBulk {
	return &ActionRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionRuleClient) MapCreateBulk(slice any, setFunc func(*ActionRuleCreate, int)) *ActionRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionRuleCreateBulk{err: fmt.Errorf("calling to ActionRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionRule.
func (c *ActionRuleClient) Update() *ActionRuleUpdate {
	mutation := newActionRuleMutation(c.config, OpUpdate)
	return &ActionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionRuleClient) UpdateOne(_m *ActionRule) *ActionRuleUpdateOne {
	mutation := newActionRuleMutation(c.config, OpUpdateOne, withActionRule(_m))
	return &ActionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionRuleClient) UpdateOneID(id string) *ActionRuleUpdateOne {
	mutation := newActionRuleMutation(c.config, OpUpdateOne, withActionRuleID(id))
	return &ActionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionRule.
func (c *ActionRuleClient) Delete() *ActionRuleDelete {
	mutation := newActionRuleMutation(c.config, OpDelete)
	return &ActionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionRuleClient) DeleteOne(_m *ActionRule) *ActionRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionRuleClient) DeleteOneID(id string) *ActionRuleDeleteOne {
	builder := c.Delete().Where(actionrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionRuleDeleteOne{builder}
}

// Query returns a query builder for ActionRule.
func (c *ActionRuleClient) Query() *ActionRuleQuery {
	return &ActionRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionRule entity by its id.
func (c *ActionRuleClient) Get(ctx context.Context, id string) (*ActionRule, error) {
	return c.Query().Where(actionrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionRuleClient) GetX(ctx context.Context, id string) *ActionRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionRuleClient) Hooks() []Hook {
	return c.hooks.ActionRule
}

// Interceptors returns the client interceptors.
func (c *ActionRuleClient) Interceptors() []Interceptor {
	return c.inters.ActionRule
}

func (c *ActionRuleClient) mutate(ctx context.Context, m *ActionRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionRule mutation op: %q", m.Op())
	}
}

// BillClient is a client for the Bill schema.
type BillClient struct {
	config
}

// NewBillClient returns a client for the Bill from the given config.
func NewBillClient(c config) *BillClient {
	return &BillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bill.Hooks(f(g(h())))`.
func (c *BillClient) Use(hooks ...Hook) {
	c.hooks.Bill = append(c.hooks.Bill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bill.Intercept(f(g(h())))`.
func (c *BillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bill = append(c.inters.Bill, interceptors...)
}

// Create returns a builder for creating a Bill entity.
func (c *BillClient) Create() *BillCreate {
	mutation := newBillMutation(c.config, OpCreate)
	return &BillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bill entities.
func (c *BillClient) CreateBulk(builders ...*BillCreate) *BillCreateBulk {
	return &BillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillClient) MapCreateBulk(slice any, setFunc func(*BillCreate, int)) *BillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillCreateBulk{err: fmt.Errorf("calling to BillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bill.
func (c *BillClient) Update() *BillUpdate {
	mutation := newBillMutation(c.config, OpUpdate)
	return &BillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillClient) UpdateOne(_m *Bill) *BillUpdateOne {
	mutation := newBillMutation(c.config, OpUpdateOne, withBill(_m))
	return &BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillClient) UpdateOneID(id string) *BillUpdateOne {
	mutation := newBillMutation(c.config, OpUpdateOne, withBillID(id))
	return &BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bill.
func (c *BillClient) Delete() *BillDelete {
	mutation := newBillMutation(c.config, OpDelete)
	return &BillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillClient) DeleteOne(_m *Bill) *BillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillClient) DeleteOneID(id string) *BillDeleteOne {
	builder := c.Delete().Where(bill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillDeleteOne{builder}
}

// Query returns a query builder for Bill.
func (c *BillClient) Query() *BillQuery {
	return &BillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBill},
		inters: c.Interceptors(),
	}
}

// Get returns a Bill entity by its id.
func (c *BillClient) Get(ctx context.Context, id string) (*Bill, error) {
	return c.Query().Where(bill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillClient) GetX(ctx context.Context, id string) *Bill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BillClient) Hooks() []Hook {
	return c.hooks.Bill
}

// Interceptors returns the client interceptors.
func (c *BillClient) Interceptors() []Interceptor {
	return c.inters.Bill
}

func (c *BillClient) mutate(ctx context.Context, m *BillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bill mutation op: %q", m.Op())
	}
}

// CalendarEventClient is a client for the CalendarEvent schema.
type CalendarEventClient struct {
	config
}

// NewCalendarEventClient returns a client for the CalendarEvent from the given config.
func NewCalendarEventClient(c config) *CalendarEventClient {
	return &CalendarEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarevent.Hooks(f(g(h())))`.
func (c *CalendarEventClient) Use(hooks ...Hook) {
	c.hooks.CalendarEvent = append(c.hooks.CalendarEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarevent.Intercept(f(g(h())))`.
func (c *CalendarEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarEvent = append(c.inters.CalendarEvent, interceptors...)
}

// Create returns a builder for creating a CalendarEvent entity.
func (c *CalendarEventClient) Create() *CalendarEventCreate {
	mutation := newCalendarEventMutation(c.config, OpCreate)
	return &CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarEvent entities.
func (c *CalendarEventClient) CreateBulk(builders ...*CalendarEventCreate) *CalendarEventCreateBulk {
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarEventClient) MapCreateBulk(slice any, setFunc func(*CalendarEventCreate, int)) *CalendarEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarEventCreateBulk{err: fmt.Errorf("calling to CalendarEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarEvent.
func (c *CalendarEventClient) Update() *CalendarEventUpdate {
	mutation := newCalendarEventMutation(c.config, OpUpdate)
	return &CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarEventClient) UpdateOne(_m *CalendarEvent) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEvent(_m))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarEventClient) UpdateOneID(id string) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEventID(id))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarEvent.
func (c *CalendarEventClient) Delete() *CalendarEventDelete {
	mutation := newCalendarEventMutation(c.config, OpDelete)
	return &CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarEventClient) DeleteOne(_m *CalendarEvent) *CalendarEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarEventClient) DeleteOneID(id string) *CalendarEventDeleteOne {
	builder := c.Delete().Where(calendarevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarEventDeleteOne{builder}
}

// Query returns a query builder for CalendarEvent.
func (c *CalendarEventClient) Query() *CalendarEventQuery {
	return &CalendarEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarEvent entity by its id.
func (c *CalendarEventClient) Get(ctx context.Context, id string) (*CalendarEvent, error) {
	return c.Query().Where(calendarevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarEventClient) GetX(ctx context.Context, id string) *CalendarEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessageLinks queries the message_links edge of a CalendarEvent.
func (c *CalendarEventClient) QueryMessageLinks(_m *CalendarEvent) *MessageEventLinkQuery {
	query := (&MessageEventLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarevent.Table, calendarevent.FieldID, id),
			sqlgraph.To(messageeventlink.Table, messageeventlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, calendarevent.MessageLinksTable, calendarevent.MessageLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarEventClient) Hooks() []Hook {
	return c.hooks.CalendarEvent
}

// Interceptors returns the client interceptors.
func (c *CalendarEventClient) Interceptors() []Interceptor {
	return c.inters.CalendarEvent
}

func (c *CalendarEventClient) mutate(ctx context.Context, m *CalendarEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarEvent mutation op: %q", m.Op())
	}
}

// CallLogClient is a client for the CallLog schema.
type CallLogClient struct {
	config
}

// NewCallLogClient returns a client for the CallLog from the given config.
func NewCallLogClient(c config) *CallLogClient {
	return &CallLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calllog.Hooks(f(g(h())))`.
func (c *CallLogClient) Use(hooks ...Hook) {
	c.hooks.CallLog = append(c.hooks.CallLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calllog.Intercept(f(g(h())))`.
func (c *CallLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallLog = append(c.inters.CallLog, interceptors...)
}

// Create returns a builder for creating a CallLog entity.
func (c *CallLogClient) Create() *CallLogCreate {
	mutation := newCallLogMutation(c.config, OpCreate)
	return &CallLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallLog entities.
func (c *CallLogClient) CreateBulk(builders ...*CallLogCreate) *CallLogCreateBulk {
	return &CallLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallLogClient) MapCreateBulk(slice any, setFunc func(*CallLogCreate, int)) *CallLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallLogCreateBulk{err: fmt.Errorf("calling to CallLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallLog.
func (c *CallLogClient) Update() *CallLogUpdate {
	mutation := newCallLogMutation(c.config, OpUpdate)
	return &CallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallLogClient) UpdateOne(_m *CallLog) *CallLogUpdateOne {
	mutation := newCallLogMutation(c.config, OpUpdateOne, withCallLog(_m))
	return &CallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallLogClient) UpdateOneID(id string) *CallLogUpdateOne {
	mutation := newCallLogMutation(c.config, OpUpdateOne, withCallLogID(id))
	return &CallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallLog.
func (c *CallLogClient) Delete() *CallLogDelete {
	mutation := newCallLogMutation(c.config, OpDelete)
	return &CallLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallLogClient) DeleteOne(_m *CallLog) *CallLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallLogClient) DeleteOneID(id string) *CallLogDeleteOne {
	builder := c.Delete().Where(calllog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallLogDeleteOne{builder}
}

// Query returns a query builder for CallLog.
func (c *CallLogClient) Query() *CallLogQuery {
	return &CallLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallLog},
		inters: c.Interceptors(),
	}
}

// Get returns a CallLog entity by its id.
func (c *CallLogClient) Get(ctx context.Context, id string) (*CallLog, error) {
	return c.Query().Where(calllog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallLogClient) GetX(ctx context.Context, id string) *CallLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a CallLog.
func (c *CallLogClient) QueryInstance(_m *CallLog) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calllog.Table, calllog.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calllog.InstanceTable, calllog.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallLogClient) Hooks() []Hook {
	return c.hooks.CallLog
}

// Interceptors returns the client interceptors.
func (c *CallLogClient) Interceptors() []Interceptor {
	return c.inters.CallLog
}

func (c *CallLogClient) mutate(ctx context.Context, m *CallLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallLog mutation op: %q", m.Op())
	}
}

// ChatClient is a client for the Chat schema.
type ChatClient struct {
	config
}

// NewChatClient returns a client for the Chat from the given config.
func NewChatClient(c config) *ChatClient {
	return &ChatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chat.Hooks(f(g(h())))`.
func (c *ChatClient) Use(hooks ...Hook) {
	c.hooks.Chat = append(c.hooks.Chat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chat.Intercept(f(g(h())))`.
func (c *ChatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chat = append(c.inters.Chat, interceptors...)
}

// Create returns a builder for creating a Chat entity.
func (c *ChatClient) Create() *ChatCreate {
	mutation := newChatMutation(c.config, OpCreate)
	return &ChatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chat entities.
func (c *ChatClient) CreateBulk(builders ...*ChatCreate) *ChatCreateBulk {
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatClient) MapCreateBulk(slice any, setFunc func(*ChatCreate, int)) *ChatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatCreateBulk{err: fmt.Errorf("calling to ChatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chat.
func (c *ChatClient) Update() *ChatUpdate {
	mutation := newChatMutation(c.config, OpUpdate)
	return &ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatClient) UpdateOne(_m *Chat) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChat(_m))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatClient) UpdateOneID(id string) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChatID(id))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chat.
func (c *ChatClient) Delete() *ChatDelete {
	mutation := newChatMutation(c.config, OpDelete)
	return &ChatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatClient) DeleteOne(_m *Chat) *ChatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatClient) DeleteOneID(id string) *ChatDeleteOne {
	builder := c.Delete().Where(chat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatDeleteOne{builder}
}

// Query returns a query builder for Chat.
func (c *ChatClient) Query() *ChatQuery {
	return &ChatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChat},
		inters: c.Interceptors(),
	}
}

// Get returns a Chat entity by its id.
func (c *ChatClient) Get(ctx context.Context, id string) (*Chat, error) {
	return c.Query().Where(chat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatClient) GetX(ctx context.Context, id string) *Chat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a Chat.
func (c *ChatClient) QueryInstance(_m *Chat) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chat.InstanceTable, chat.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatClient) Hooks() []Hook {
	return c.hooks.Chat
}

// Interceptors returns the client interceptors.
func (c *ChatClient) Interceptors() []Interceptor {
	return c.inters.Chat
}

func (c *ChatClient) mutate(ctx context.Context, m *ChatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chat mutation op: %q", m.Op())
	}
}

// ContactClient is a client for the Contact schema.
type ContactClient struct {
	config
}

// NewContactClient returns a client for the Contact from the given config.
func NewContactClient(c config) *ContactClient {
	return &ContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contact.Hooks(f(g(h())))`.
func (c *ContactClient) Use(hooks ...Hook) {
	c.hooks.Contact = append(c.hooks.Contact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contact.Intercept(f(g(h())))`.
func (c *ContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contact = append(c.inters.Contact, interceptors...)
}

// Create returns a builder for creating a Contact entity.
func (c *ContactClient) Create() *ContactCreate {
	mutation := newContactMutation(c.config, OpCreate)
	return &ContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contact entities.
func (c *ContactClient) CreateBulk(builders ...*ContactCreate) *ContactCreateBulk {
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactClient) MapCreateBulk(slice any, setFunc func(*ContactCreate, int)) *ContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactCreateBulk{err: fmt.Errorf("calling to ContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contact.
func (c *ContactClient) Update() *ContactUpdate {
	mutation := newContactMutation(c.config, OpUpdate)
	return &ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactClient) UpdateOne(_m *Contact) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContact(_m))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactClient) UpdateOneID(id string) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContactID(id))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contact.
func (c *ContactClient) Delete() *ContactDelete {
	mutation := newContactMutation(c.config, OpDelete)
	return &ContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactClient) DeleteOne(_m *Contact) *ContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactClient) DeleteOneID(id string) *ContactDeleteOne {
	builder := c.Delete().Where(contact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactDeleteOne{builder}
}

// Query returns a query builder for Contact.
func (c *ContactClient) Query() *ContactQuery {
	return &ContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContact},
		inters: c.Interceptors(),
	}
}

// Get returns a Contact entity by its id.
func (c *ContactClient) Get(ctx context.Context, id string) (*Contact, error) {
	return c.Query().Where(contact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactClient) GetX(ctx context.Context, id string) *Contact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a Contact.
func (c *ContactClient) QueryInstance(_m *Contact) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contact.Table, contact.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contact.InstanceTable, contact.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactClient) Hooks() []Hook {
	return c.hooks.Contact
}

// Interceptors returns the client interceptors.
func (c *ContactClient) Interceptors() []Interceptor {
	return c.inters.Contact
}

func (c *ContactClient) mutate(ctx context.Context, m *ContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contact mutation op: %q", m.Op())
	}
}

// EntityChangeClient is a client for the EntityChange schema.
type EntityChangeClient struct {
	config
}

// NewEntityChangeClient returns a client for the EntityChange from the given config.
func NewEntityChangeClient(c config) *EntityChangeClient {
	return &EntityChangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitychange.Hooks(f(g(h())))`.
func (c *EntityChangeClient) Use(hooks ...Hook) {
	c.hooks.EntityChange = append(c.hooks.EntityChange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitychange.Intercept(f(g(h())))`.
func (c *EntityChangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityChange = append(c.inters.EntityChange, interceptors...)
}

// Create returns a builder for creating a EntityChange entity.
func (c *EntityChangeClient) Create() *EntityChangeCreate {
	mutation := newEntityChangeMutation(c.config, OpCreate)
	return &EntityChangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityChange entities.
func (c *EntityChangeClient) CreateBulk(builders ...*EntityChangeCreate) *EntityChangeCreateBulk {
	return &EntityChangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityChangeClient) MapCreateBulk(slice any, setFunc func(*EntityChangeCreate, int)) *EntityChangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityChangeCreateBulk{err: fmt.Errorf("calling to EntityChangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityChangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityChangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityChange.
func (c *EntityChangeClient) Update() *EntityChangeUpdate {
	mutation := newEntityChangeMutation(c.config, OpUpdate)
	return &EntityChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityChangeClient) UpdateOne(_m *EntityChange) *EntityChangeUpdateOne {
	mutation := newEntityChangeMutation(c.config, OpUpdateOne, withEntityChange(_m))
	return &EntityChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityChangeClient) UpdateOneID(id string) *EntityChangeUpdateOne {
	mutation := newEntityChangeMutation(c.config, OpUpdateOne, withEntityChangeID(id))
	return &EntityChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityChange.
func (c *EntityChangeClient) Delete() *EntityChangeDelete {
	mutation := newEntityChangeMutation(c.config, OpDelete)
	return &EntityChangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityChangeClient) DeleteOne(_m *EntityChange) *EntityChangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityChangeClient) DeleteOneID(id string) *EntityChangeDeleteOne {
	builder := c.Delete().Where(entitychange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityChangeDeleteOne{builder}
}

// Query returns a query builder for EntityChange.
func (c *EntityChangeClient) Query() *EntityChangeQuery {
	return &EntityChangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityChange},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityChange entity by its id.
func (c *EntityChangeClient) Get(ctx context.Context, id string) (*EntityChange, error) {
	return c.Query().Where(entitychange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityChangeClient) GetX(ctx context.Context, id string) *EntityChange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityChangeClient) Hooks() []Hook {
	return c.hooks.EntityChange
}

// Interceptors returns the client interceptors.
func (c *EntityChangeClient) Interceptors() []Interceptor {
	return c.inters.EntityChange
}

func (c *EntityChangeClient) mutate(ctx context.Context, m *EntityChangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityChangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityChangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityChange mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FailedEventClient is a client for the FailedEvent schema.
type FailedEventClient struct {
	config
}

// NewFailedEventClient returns a client for the FailedEvent from the given config.
func NewFailedEventClient(c config) *FailedEventClient {
	return &FailedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `failedevent.Hooks(f(g(h())))`.
func (c *FailedEventClient) Use(hooks ...Hook) {
	c.hooks.FailedEvent = append(c.hooks.FailedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `failedevent.Intercept(f(g(h())))`.
func (c *FailedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FailedEvent = append(c.inters.FailedEvent, interceptors...)
}

// Create returns a builder for creating a FailedEvent entity.
func (c *FailedEventClient) Create() *FailedEventCreate {
	mutation := newFailedEventMutation(c.config, OpCreate)
	return &FailedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FailedEvent entities.
func (c *FailedEventClient) CreateBulk(builders ...*FailedEventCreate) *FailedEventCreateBulk {
	return &FailedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FailedEventClient) MapCreateBulk(slice any, setFunc func(*FailedEventCreate, int)) *FailedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FailedEventCreateBulk{err: fmt.Errorf("calling to FailedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FailedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FailedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FailedEvent.
func (c *FailedEventClient) Update() *FailedEventUpdate {
	mutation := newFailedEventMutation(c.config, OpUpdate)
	return &FailedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FailedEventClient) UpdateOne(_m *FailedEvent) *FailedEventUpdateOne {
	mutation := newFailedEventMutation(c.config, OpUpdateOne, withFailedEvent(_m))
	return &FailedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FailedEventClient) UpdateOneID(id string) *FailedEventUpdateOne {
	mutation := newFailedEventMutation(c.config, OpUpdateOne, withFailedEventID(id))
	return &FailedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FailedEvent.
func (c *FailedEventClient) Delete() *FailedEventDelete {
	mutation := newFailedEventMutation(c.config, OpDelete)
	return &FailedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FailedEventClient) DeleteOne(_m *FailedEvent) *FailedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FailedEventClient) DeleteOneID(id string) *FailedEventDeleteOne {
	builder := c.Delete().Where(failedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FailedEventDeleteOne{builder}
}

// Query returns a query builder for FailedEvent.
func (c *FailedEventClient) Query() *FailedEventQuery {
	return &FailedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFailedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FailedEvent entity by its id.
func (c *FailedEventClient) Get(ctx context.Context, id string) (*FailedEvent, error) {
	return c.Query().Where(failedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FailedEventClient) GetX(ctx context.Context, id string) *FailedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FailedEventClient) Hooks() []Hook {
	return c.hooks.FailedEvent
}

// Interceptors returns the client interceptors.
func (c *FailedEventClient) Interceptors() []Interceptor {
	return c.inters.FailedEvent
}

func (c *FailedEventClient) mutate(ctx context.Context, m *FailedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FailedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FailedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FailedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FailedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FailedEvent mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id string) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id string) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id string) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id string) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a Group.
func (c *GroupClient) QueryInstance(_m *Group) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, group.InstanceTable, group.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a Group.
func (c *GroupClient) QueryParticipants(_m *Group) *GroupParticipantQuery {
	query := (&GroupParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(groupparticipant.Table, groupparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.ParticipantsTable, group.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// GroupParticipantClient is a client for the GroupParticipant schema.
type GroupParticipantClient struct {
	config
}

// NewGroupParticipantClient returns a client for the GroupParticipant from the given config.
func NewGroupParticipantClient(c config) *GroupParticipantClient {
	return &GroupParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupparticipant.Hooks(f(g(h())))`.
func (c *GroupParticipantClient) Use(hooks ...Hook) {
	c.hooks.GroupParticipant = append(c.hooks.GroupParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupparticipant.Intercept(f(g(h())))`.
func (c *GroupParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupParticipant = append(c.inters.GroupParticipant, interceptors...)
}

// Create returns a builder for creating a GroupParticipant entity.
func (c *GroupParticipantClient) Create() *GroupParticipantCreate {
	mutation := newGroupParticipantMutation(c.config, OpCreate)
	return &GroupParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupParticipant entities.
func (c *GroupParticipantClient) CreateBulk(builders ...*GroupParticipantCreate) *GroupParticipantCreateBulk {
	return &GroupParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupParticipantClient) MapCreateBulk(slice any, setFunc func(*GroupParticipantCreate, int)) *GroupParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupParticipantCreateBulk{err: fmt.Errorf("calling to GroupParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupParticipant.
func (c *GroupParticipantClient) Update() *GroupParticipantUpdate {
	mutation := newGroupParticipantMutation(c.config, OpUpdate)
	return &GroupParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupParticipantClient) UpdateOne(_m *GroupParticipant) *GroupParticipantUpdateOne {
	mutation := newGroupParticipantMutation(c.config, OpUpdateOne, withGroupParticipant(_m))
	return &GroupParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupParticipantClient) UpdateOneID(id string) *GroupParticipantUpdateOne {
	mutation := newGroupParticipantMutation(c.config, OpUpdateOne, withGroupParticipantID(id))
	return &GroupParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupParticipant.
func (c *GroupParticipantClient) Delete() *GroupParticipantDelete {
	mutation := newGroupParticipantMutation(c.config, OpDelete)
	return &GroupParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupParticipantClient) DeleteOne(_m *GroupParticipant) *GroupParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupParticipantClient) DeleteOneID(id string) *GroupParticipantDeleteOne {
	builder := c.Delete().Where(groupparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupParticipantDeleteOne{builder}
}

// Query returns a query builder for GroupParticipant.
func (c *GroupParticipantClient) Query() *GroupParticipantQuery {
	return &GroupParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupParticipant entity by its id.
func (c *GroupParticipantClient) Get(ctx context.Context, id string) (*GroupParticipant, error) {
	return c.Query().Where(groupparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupParticipantClient) GetX(ctx context.Context, id string) *GroupParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a GroupParticipant.
func (c *GroupParticipantClient) QueryGroup(_m *GroupParticipant) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupparticipant.Table, groupparticipant.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, groupparticipant.GroupTable, groupparticipant.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInstance queries the instance edge of a GroupParticipant.
func (c *GroupParticipantClient) QueryInstance(_m *GroupParticipant) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupparticipant.Table, groupparticipant.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, groupparticipant.InstanceTable, groupparticipant.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupParticipantClient) Hooks() []Hook {
	return c.hooks.GroupParticipant
}

// Interceptors returns the client interceptors.
func (c *GroupParticipantClient) Interceptors() []Interceptor {
	return c.inters.GroupParticipant
}

func (c *GroupParticipantClient) mutate(ctx context.Context, m *GroupParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupParticipant mutation op: %q", m.Op())
	}
}

// InstanceClient is a client for the Instance schema.
type InstanceClient struct {
	config
}

// NewInstanceClient returns a client for the Instance from the given config.
func NewInstanceClient(c config) *InstanceClient {
	return &InstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instance.Hooks(f(g(h())))`.
func (c *InstanceClient) Use(hooks ...Hook) {
	c.hooks.Instance = append(c.hooks.Instance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instance.Intercept(f(g(h())))`.
func (c *InstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instance = append(c.inters.Instance, interceptors...)
}

// Create returns a builder for creating a Instance entity.
func (c *InstanceClient) Create() *InstanceCreate {
	mutation := newInstanceMutation(c.config, OpCreate)
	return &InstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instance entities.
func (c *InstanceClient) CreateBulk(builders ...*InstanceCreate) *InstanceCreateBulk {
	return &InstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstanceClient) MapCreateBulk(slice any, setFunc func(*InstanceCreate, int)) *InstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstanceCreateBulk{err: fmt.Errorf("calling to InstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instance.
func (c *InstanceClient) Update() *InstanceUpdate {
	mutation := newInstanceMutation(c.config, OpUpdate)
	return &InstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstanceClient) UpdateOne(_m *Instance) *InstanceUpdateOne {
	mutation := newInstanceMutation(c.config, OpUpdateOne, withInstance(_m))
	return &InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstanceClient) UpdateOneID(id string) *InstanceUpdateOne {
	mutation := newInstanceMutation(c.config, OpUpdateOne, withInstanceID(id))
	return &InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instance.
func (c *InstanceClient) Delete() *InstanceDelete {
	mutation := newInstanceMutation(c.config, OpDelete)
	return &InstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstanceClient) DeleteOne(_m *Instance) *InstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstanceClient) DeleteOneID(id string) *InstanceDeleteOne {
	builder := c.Delete().Where(instance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstanceDeleteOne{builder}
}

// Query returns a query builder for Instance.
func (c *InstanceClient) Query() *InstanceQuery {
	return &InstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a Instance entity by its id.
func (c *InstanceClient) Get(ctx context.Context, id string) (*Instance, error) {
	return c.Query().Where(instance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstanceClient) GetX(ctx context.Context, id string) *Instance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContacts queries the contacts edge of a Instance.
func (c *InstanceClient) QueryContacts(_m *Instance) *ContactQuery {
	query := (&ContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.ContactsTable, instance.ContactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChats queries the chats edge of a Instance.
func (c *InstanceClient) QueryChats(_m *Instance) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.ChatsTable, instance.ChatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroups queries the groups edge of a Instance.
func (c *InstanceClient) QueryGroups(_m *Instance) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.GroupsTable, instance.GroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroupParticipants queries the group_participants edge of a Instance.
func (c *InstanceClient) QueryGroupParticipants(_m *Instance) *GroupParticipantQuery {
	query := (&GroupParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(groupparticipant.Table, groupparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.GroupParticipantsTable, instance.GroupParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Instance.
func (c *InstanceClient) QueryMessages(_m *Instance) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.MessagesTable, instance.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatusUpdates queries the status_updates edge of a Instance.
func (c *InstanceClient) QueryStatusUpdates(_m *Instance) *MessageStatusUpdateQuery {
	query := (&MessageStatusUpdateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(messagestatusupdate.Table, messagestatusupdate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.StatusUpdatesTable, instance.StatusUpdatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReactions queries the reactions edge of a Instance.
func (c *InstanceClient) QueryReactions(_m *Instance) *MessageReactionQuery {
	query := (&MessageReactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(messagereaction.Table, messagereaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.ReactionsTable, instance.ReactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCallLogs queries the call_logs edge of a Instance.
func (c *InstanceClient) QueryCallLogs(_m *Instance) *CallLogQuery {
	query := (&CallLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instance.Table, instance.FieldID, id),
			sqlgraph.To(calllog.Table, calllog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, instance.CallLogsTable, instance.CallLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstanceClient) Hooks() []Hook {
	return c.hooks.Instance
}

// Interceptors returns the client interceptors.
func (c *InstanceClient) Interceptors() []Interceptor {
	return c.inters.Instance
}

func (c *InstanceClient) mutate(ctx context.Context, m *InstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Instance mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a Message.
func (c *MessageClient) QueryInstance(_m *Message) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.InstanceTable, message.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTaskLinks queries the task_links edge of a Message.
func (c *MessageClient) QueryTaskLinks(_m *Message) *MessageTaskLinkQuery {
	query := (&MessageTaskLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(messagetasklink.Table, messagetasklink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, message.TaskLinksTable, message.TaskLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEventLinks queries the event_links edge of a Message.
func (c *MessageClient) QueryEventLinks(_m *Message) *MessageEventLinkQuery {
	query := (&MessageEventLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(messageeventlink.Table, messageeventlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, message.EventLinksTable, message.EventLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MessageEventLinkClient is a client for the MessageEventLink schema.
type MessageEventLinkClient struct {
	config
}

// NewMessageEventLinkClient returns a client for the MessageEventLink from the given config.
func NewMessageEventLinkClient(c config) *MessageEventLinkClient {
	return &MessageEventLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageeventlink.Hooks(f(g(h())))`.
func (c *MessageEventLinkClient) Use(hooks ...Hook) {
	c.hooks.MessageEventLink = append(c.hooks.MessageEventLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageeventlink.Intercept(f(g(h())))`.
func (c *MessageEventLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageEventLink = append(c.inters.MessageEventLink, interceptors...)
}

// Create returns a builder for creating a MessageEventLink entity.
func (c *MessageEventLinkClient) Create() *MessageEventLinkCreate {
	mutation := newMessageEventLinkMutation(c.config, OpCreate)
	return &MessageEventLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageEventLink entities.
func (c *MessageEventLinkClient) CreateBulk(builders ...*MessageEventLinkCreate) *MessageEventLinkCreateBulk {
	return &MessageEventLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageEventLinkClient) MapCreateBulk(slice any, setFunc func(*MessageEventLinkCreate, int)) *MessageEventLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageEventLinkCreateBulk{err: fmt.Errorf("calling to MessageEventLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageEventLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageEventLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageEventLink.
func (c *MessageEventLinkClient) Update() *MessageEventLinkUpdate {
	mutation := newMessageEventLinkMutation(c.config, OpUpdate)
	return &MessageEventLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageEventLinkClient) UpdateOne(_m *MessageEventLink) *MessageEventLinkUpdateOne {
	mutation := newMessageEventLinkMutation(c.config, OpUpdateOne, withMessageEventLink(_m))
	return &MessageEventLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageEventLinkClient) UpdateOneID(id string) *MessageEventLinkUpdateOne {
	mutation := newMessageEventLinkMutation(c.config, OpUpdateOne, withMessageEventLinkID(id))
	return &MessageEventLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageEventLink.
func (c *MessageEventLinkClient) Delete() *MessageEventLinkDelete {
	mutation := newMessageEventLinkMutation(c.config, OpDelete)
	return &MessageEventLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageEventLinkClient) DeleteOne(_m *MessageEventLink) *MessageEventLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageEventLinkClient) DeleteOneID(id string) *MessageEventLinkDeleteOne {
	builder := c.Delete().Where(messageeventlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageEventLinkDeleteOne{builder}
}

// Query returns a query builder for MessageEventLink.
func (c *MessageEventLinkClient) Query() *MessageEventLinkQuery {
	return &MessageEventLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageEventLink},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageEventLink entity by its id.
func (c *MessageEventLinkClient) Get(ctx context.Context, id string) (*MessageEventLink, error) {
	return c.Query().Where(messageeventlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageEventLinkClient) GetX(ctx context.Context, id string) *MessageEventLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a MessageEventLink.
func (c *MessageEventLinkClient) QueryMessage(_m *MessageEventLink) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messageeventlink.Table, messageeventlink.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messageeventlink.MessageTable, messageeventlink.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalendarEvent queries the calendar_event edge of a MessageEventLink.
func (c *MessageEventLinkClient) QueryCalendarEvent(_m *MessageEventLink) *CalendarEventQuery {
	query := (&CalendarEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messageeventlink.Table, messageeventlink.FieldID, id),
			sqlgraph.To(calendarevent.Table, calendarevent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messageeventlink.CalendarEventTable, messageeventlink.CalendarEventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageEventLinkClient) Hooks() []Hook {
	return c.hooks.MessageEventLink
}

// Interceptors returns the client interceptors.
func (c *MessageEventLinkClient) Interceptors() []Interceptor {
	return c.inters.MessageEventLink
}

func (c *MessageEventLinkClient) mutate(ctx context.Context, m *MessageEventLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageEventLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageEventLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageEventLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageEventLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageEventLink mutation op: %q", m.Op())
	}
}

// MessageReactionClient is a client for the MessageReaction schema.
type MessageReactionClient struct {
	config
}

// NewMessageReactionClient returns a client for the MessageReaction from the given config.
func NewMessageReactionClient(c config) *MessageReactionClient {
	return &MessageReactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagereaction.Hooks(f(g(h())))`.
func (c *MessageReactionClient) Use(hooks ...Hook) {
	c.hooks.MessageReaction = append(c.hooks.MessageReaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagereaction.Intercept(f(g(h())))`.
func (c *MessageReactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageReaction = append(c.inters.MessageReaction, interceptors...)
}

// Create returns a builder for creating a MessageReaction entity.
func (c *MessageReactionClient) Create() *MessageReactionCreate {
	mutation := newMessageReactionMutation(c.config, OpCreate)
	return &MessageReactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageReaction entities.
func (c *MessageReactionClient) CreateBulk(builders ...*MessageReactionCreate) *MessageReactionCreateBulk {
	return &MessageReactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageReactionClient) MapCreateBulk(slice any, setFunc func(*MessageReactionCreate, int)) *MessageReactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageReactionCreateBulk{err: fmt.Errorf("calling to MessageReactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageReactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageReactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageReaction.
func (c *MessageReactionClient) Update() *MessageReactionUpdate {
	mutation := newMessageReactionMutation(c.config, OpUpdate)
	return &MessageReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageReactionClient) UpdateOne(_m *MessageReaction) *MessageReactionUpdateOne {
	mutation := newMessageReactionMutation(c.config, OpUpdateOne, withMessageReaction(_m))
	return &MessageReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageReactionClient) UpdateOneID(id string) *MessageReactionUpdateOne {
	mutation := newMessageReactionMutation(c.config, OpUpdateOne, withMessageReactionID(id))
	return &MessageReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageReaction.
func (c *MessageReactionClient) Delete() *MessageReactionDelete {
	mutation := newMessageReactionMutation(c.config, OpDelete)
	return &MessageReactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageReactionClient) DeleteOne(_m *MessageReaction) *MessageReactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageReactionClient) DeleteOneID(id string) *MessageReactionDeleteOne {
	builder := c.Delete().Where(messagereaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageReactionDeleteOne{builder}
}

// Query returns a query builder for MessageReaction.
func (c *MessageReactionClient) Query() *MessageReactionQuery {
	return &MessageReactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageReaction},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageReaction entity by its id.
func (c *MessageReactionClient) Get(ctx context.Context, id string) (*MessageReaction, error) {
	return c.Query().Where(messagereaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageReactionClient) GetX(ctx context.Context, id string) *MessageReaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a MessageReaction.
func (c *MessageReactionClient) QueryInstance(_m *MessageReaction) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagereaction.Table, messagereaction.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagereaction.InstanceTable, messagereaction.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageReactionClient) Hooks() []Hook {
	return c.hooks.MessageReaction
}

// Interceptors returns the client interceptors.
func (c *MessageReactionClient) Interceptors() []Interceptor {
	return c.inters.MessageReaction
}

func (c *MessageReactionClient) mutate(ctx context.Context, m *MessageReactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageReactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageReactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageReaction mutation op: %q", m.Op())
	}
}

// MessageStatusUpdateClient is a client for the MessageStatusUpdate schema.
type MessageStatusUpdateClient struct {
	config
}

// NewMessageStatusUpdateClient returns a client for the MessageStatusUpdate from the given config.
func NewMessageStatusUpdateClient(c config) *MessageStatusUpdateClient {
	return &MessageStatusUpdateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagestatusupdate.Hooks(f(g(h())))`.
func (c *MessageStatusUpdateClient) Use(hooks ...Hook) {
	c.hooks.MessageStatusUpdate = append(c.hooks.MessageStatusUpdate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagestatusupdate.Intercept(f(g(h())))`.
func (c *MessageStatusUpdateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageStatusUpdate = append(c.inters.MessageStatusUpdate, interceptors...)
}

// Create returns a builder for creating a MessageStatusUpdate entity.
func (c *MessageStatusUpdateClient) Create() *MessageStatusUpdateCreate {
	mutation := newMessageStatusUpdateMutation(c.config, OpCreate)
	return &MessageStatusUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageStatusUpdate entities.
func (c *MessageStatusUpdateClient) CreateBulk(builders ...*MessageStatusUpdateCreate) *MessageStatusUpdateCreateBulk {
	return &MessageStatusUpdateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageStatusUpdateClient) MapCreateBulk(slice any, setFunc func(*MessageStatusUpdateCreate, int)) *MessageStatusUpdateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageStatusUpdateCreateBulk{err: fmt.Errorf("calling to MessageStatusUpdateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageStatusUpdateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageStatusUpdateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageStatusUpdate.
func (c *MessageStatusUpdateClient) Update() *MessageStatusUpdateUpdate {
	mutation := newMessageStatusUpdateMutation(c.config, OpUpdate)
	return &MessageStatusUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageStatusUpdateClient) UpdateOne(_m *MessageStatusUpdate) *MessageStatusUpdateUpdateOne {
	mutation := newMessageStatusUpdateMutation(c.config, OpUpdateOne, withMessageStatusUpdate(_m))
	return &MessageStatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageStatusUpdateClient) UpdateOneID(id string) *MessageStatusUpdateUpdateOne {
	mutation := newMessageStatusUpdateMutation(c.config, OpUpdateOne, withMessageStatusUpdateID(id))
	return &MessageStatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageStatusUpdate.
func (c *MessageStatusUpdateClient) Delete() *MessageStatusUpdateDelete {
	mutation := newMessageStatusUpdateMutation(c.config, OpDelete)
	return &MessageStatusUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageStatusUpdateClient) DeleteOne(_m *MessageStatusUpdate) *MessageStatusUpdateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageStatusUpdateClient) DeleteOneID(id string) *MessageStatusUpdateDeleteOne {
	builder := c.Delete().Where(messagestatusupdate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageStatusUpdateDeleteOne{builder}
}

// Query returns a query builder for MessageStatusUpdate.
func (c *MessageStatusUpdateClient) Query() *MessageStatusUpdateQuery {
	return &MessageStatusUpdateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageStatusUpdate},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageStatusUpdate entity by its id.
func (c *MessageStatusUpdateClient) Get(ctx context.Context, id string) (*MessageStatusUpdate, error) {
	return c.Query().Where(messagestatusupdate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageStatusUpdateClient) GetX(ctx context.Context, id string) *MessageStatusUpdate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstance queries the instance edge of a MessageStatusUpdate.
func (c *MessageStatusUpdateClient) QueryInstance(_m *MessageStatusUpdate) *InstanceQuery {
	query := (&InstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagestatusupdate.Table, messagestatusupdate.FieldID, id),
			sqlgraph.To(instance.Table, instance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagestatusupdate.InstanceTable, messagestatusupdate.InstanceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageStatusUpdateClient) Hooks() []Hook {
	return c.hooks.MessageStatusUpdate
}

// Interceptors returns the client interceptors.
func (c *MessageStatusUpdateClient) Interceptors() []Interceptor {
	return c.inters.MessageStatusUpdate
}

func (c *MessageStatusUpdateClient) mutate(ctx context.Context, m *MessageStatusUpdateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageStatusUpdateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageStatusUpdateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageStatusUpdateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageStatusUpdateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageStatusUpdate mutation op: %q", m.Op())
	}
}

// MessageTaskLinkClient is a client for the MessageTaskLink schema.
type MessageTaskLinkClient struct {
	config
}

// NewMessageTaskLinkClient returns a client for the MessageTaskLink from the given config.
func NewMessageTaskLinkClient(c config) *MessageTaskLinkClient {
	return &MessageTaskLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagetasklink.Hooks(f(g(h())))`.
func (c *MessageTaskLinkClient) Use(hooks ...Hook) {
	c.hooks.MessageTaskLink = append(c.hooks.MessageTaskLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagetasklink.Intercept(f(g(h())))`.
func (c *MessageTaskLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageTaskLink = append(c.inters.MessageTaskLink, interceptors...)
}

// Create returns a builder for creating a MessageTaskLink entity.
func (c *MessageTaskLinkClient) Create() *MessageTaskLinkCreate {
	mutation := newMessageTaskLinkMutation(c.config, OpCreate)
	return &MessageTaskLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageTaskLink entities.
func (c *MessageTaskLinkClient) CreateBulk(builders ...*MessageTaskLinkCreate) *MessageTaskLinkCreateBulk {
	return &MessageTaskLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageTaskLinkClient) MapCreateBulk(slice any, setFunc func(*MessageTaskLinkCreate, int)) *MessageTaskLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageTaskLinkCreateBulk{err: fmt.Errorf("calling to MessageTaskLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageTaskLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageTaskLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageTaskLink.
func (c *MessageTaskLinkClient) Update() *MessageTaskLinkUpdate {
	mutation := newMessageTaskLinkMutation(c.config, OpUpdate)
	return &MessageTaskLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageTaskLinkClient) UpdateOne(_m *MessageTaskLink) *MessageTaskLinkUpdateOne {
	mutation := newMessageTaskLinkMutation(c.config, OpUpdateOne, withMessageTaskLink(_m))
	return &MessageTaskLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageTaskLinkClient) UpdateOneID(id string) *MessageTaskLinkUpdateOne {
	mutation := newMessageTaskLinkMutation(c.config, OpUpdateOne, withMessageTaskLinkID(id))
	return &MessageTaskLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageTaskLink.
func (c *MessageTaskLinkClient) Delete() *MessageTaskLinkDelete {
	mutation := newMessageTaskLinkMutation(c.config, OpDelete)
	return &MessageTaskLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageTaskLinkClient) DeleteOne(_m *MessageTaskLink) *MessageTaskLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageTaskLinkClient) DeleteOneID(id string) *MessageTaskLinkDeleteOne {
	builder := c.Delete().Where(messagetasklink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageTaskLinkDeleteOne{builder}
}

// Query returns a query builder for MessageTaskLink.
func (c *MessageTaskLinkClient) Query() *MessageTaskLinkQuery {
	return &MessageTaskLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageTaskLink},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageTaskLink entity by its id.
func (c *MessageTaskLinkClient) Get(ctx context.Context, id string) (*MessageTaskLink, error) {
	return c.Query().Where(messagetasklink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageTaskLinkClient) GetX(ctx context.Context, id string) *MessageTaskLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a MessageTaskLink.
func (c *MessageTaskLinkClient) QueryMessage(_m *MessageTaskLink) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagetasklink.Table, messagetasklink.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagetasklink.MessageTable, messagetasklink.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTask queries the task edge of a MessageTaskLink.
func (c *MessageTaskLinkClient) QueryTask(_m *MessageTaskLink) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagetasklink.Table, messagetasklink.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagetasklink.TaskTable, messagetasklink.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageTaskLinkClient) Hooks() []Hook {
	return c.hooks.MessageTaskLink
}

// Interceptors returns the client interceptors.
func (c *MessageTaskLinkClient) Interceptors() []Interceptor {
	return c.inters.MessageTaskLink
}

func (c *MessageTaskLinkClient) mutate(ctx context.Context, m *MessageTaskLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageTaskLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageTaskLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageTaskLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageTaskLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageTaskLink mutation op: %q", m.Op())
	}
}

// NoteClient is a client for the Note schema.
type NoteClient struct {
	config
}

// NewNoteClient returns a client for the Note from the given config.
func NewNoteClient(c config) *NoteClient {
	return &NoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `note.Hooks(f(g(h())))`.
func (c *NoteClient) Use(hooks ...Hook) {
	c.hooks.Note = append(c.hooks.Note, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `note.Intercept(f(g(h())))`.
func (c *NoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Note = append(c.inters.Note, interceptors...)
}

// Create returns a builder for creating a Note entity.
func (c *NoteClient) Create() *NoteCreate {
	mutation := newNoteMutation(c.config, OpCreate)
	return &NoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Note entities.
func (c *NoteClient) CreateBulk(builders ...*NoteCreate) *NoteCreateBulk {
	return &NoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NoteClient) MapCreateBulk(slice any, setFunc func(*NoteCreate, int)) *NoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NoteCreateBulk{err: fmt.Errorf("calling to NoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Note.
func (c *NoteClient) Update() *NoteUpdate {
	mutation := newNoteMutation(c.config, OpUpdate)
	return &NoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NoteClient) UpdateOne(_m *Note) *NoteUpdateOne {
	mutation := newNoteMutation(c.config, OpUpdateOne, withNote(_m))
	return &NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NoteClient) UpdateOneID(id string) *NoteUpdateOne {
	mutation := newNoteMutation(c.config, OpUpdateOne, withNoteID(id))
	return &NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Note.
func (c *NoteClient) Delete() *NoteDelete {
	mutation := newNoteMutation(c.config, OpDelete)
	return &NoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NoteClient) DeleteOne(_m *Note) *NoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NoteClient) DeleteOneID(id string) *NoteDeleteOne {
	builder := c.Delete().Where(note.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NoteDeleteOne{builder}
}

// Query returns a query builder for Note.
func (c *NoteClient) Query() *NoteQuery {
	return &NoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNote},
		inters: c.Interceptors(),
	}
}

// Get returns a Note entity by its id.
func (c *NoteClient) Get(ctx context.Context, id string) (*Note, error) {
	return c.Query().Where(note.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NoteClient) GetX(ctx context.Context, id string) *Note {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NoteClient) Hooks() []Hook {
	return c.hooks.Note
}

// Interceptors returns the client interceptors.
func (c *NoteClient) Interceptors() []Interceptor {
	return c.inters.Note
}

func (c *NoteClient) mutate(ctx context.Context, m *NoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Note mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessageLinks queries the message_links edge of a Task.
func (c *TaskClient) QueryMessageLinks(_m *Task) *MessageTaskLinkQuery {
	query := (&MessageTaskLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(messagetasklink.Table, messagetasklink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.MessageLinksTable, task.MessageLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActionExecutionLog, ActionQueueItem, ActionRule, Bill, CalendarEvent, CallLog,
		Chat, Contact, EntityChange, Event, FailedEvent, Group, GroupParticipant,
		Instance, Message, MessageEventLink, MessageReaction, MessageStatusUpdate,
		MessageTaskLink, Note, Task []ent.Hook
	}
	inters struct {
		ActionExecutionLog, ActionQueueItem, ActionRule, Bill, CalendarEvent, CallLog,
		Chat, Contact, EntityChange, Event, FailedEvent, Group, GroupParticipant,
		Instance, Message, MessageEventLink, MessageReaction, MessageStatusUpdate,
		MessageTaskLink, Note, Task []ent.Interceptor
	}
)
