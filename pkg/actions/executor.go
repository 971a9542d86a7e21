package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/task"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/nlp"
	"github.com/reflexhq/reflex/pkg/provider"
	"github.com/reflexhq/reflex/pkg/services"
)

// Publisher pushes fan-out events after a successful action.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload map[string]any)
}

// Fan-out event types emitted by the executor.
const (
	EventEntityCreated = "entity_created"
	EventRuleExecuted  = "rule_executed"
)

// ConferenceProvider supplies a meeting URL for videocall events. The
// default implementation returns empty; a calendar collaborator can be
// wired in deployments that have one.
type ConferenceProvider interface {
	ConferenceURL(ctx context.Context, title string, start time.Time) (string, error)
}

// Outcome is one action execution's result for queue bookkeeping.
type Outcome struct {
	// Result is a queue completion substatus (executed, parse_failed,
	// skipped).
	Result string

	// EntityRefs lists created/updated entities for the audit log.
	EntityRefs []map[string]string
}

// Executor runs one rule against one queue event. Entity writes, link
// rows, and change capture commit atomically; confirmations and
// fan-out happen after commit and never fail the action.
type Executor struct {
	client     *ent.Client
	entities   *services.EntityService
	links      *services.LinkService
	messaging  *services.MessagingService
	nlp        *nlp.Service
	provider   *provider.Service
	publisher  Publisher
	conference ConferenceProvider
}

// NewExecutor creates a new Executor. provider, publisher, and
// conference may be nil.
func NewExecutor(
	client *ent.Client,
	entities *services.EntityService,
	links *services.LinkService,
	messaging *services.MessagingService,
	nlpService *nlp.Service,
	providerService *provider.Service,
	publisher Publisher,
	conference ConferenceProvider,
) *Executor {
	if client == nil {
		panic("NewExecutor: client must not be nil")
	}
	if entities == nil || links == nil || messaging == nil || nlpService == nil {
		panic("NewExecutor: entities, links, messaging, and nlp must not be nil")
	}
	return &Executor{
		client:     client,
		entities:   entities,
		links:      links,
		messaging:  messaging,
		nlp:        nlpService,
		provider:   providerService,
		publisher:  publisher,
		conference: conference,
	}
}

// Execute runs the rule's action for the event. The returned Outcome
// maps onto the queue item's completion substatus; an error means the
// item should retry per its backoff budget.
func (e *Executor) Execute(ctx context.Context, rule *ent.ActionRule, data models.QueueEventData) (*Outcome, error) {
	cfg, err := models.RuleConfigFromMap(rule.Config)
	if err != nil {
		return nil, fmt.Errorf("rule %s has undecodable config: %w", rule.ID, err)
	}

	msg, err := e.messaging.GetMessage(ctx, data.MessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load triggering message: %w", err)
	}

	text, quoted := e.assembleText(ctx, msg, data)

	switch rule.ActionType {
	case actionrule.ActionTypeCreateTask:
		return e.createTask(ctx, rule, cfg, msg, quoted, data, text)
	case actionrule.ActionTypeCreateCalendarEvent:
		return e.createCalendarEvent(ctx, rule, cfg, msg, data, text)
	case actionrule.ActionTypeCreateBill:
		return e.createBill(ctx, rule, cfg, msg, data, text)
	case actionrule.ActionTypeCreateNote:
		return e.createNote(ctx, rule, cfg, msg, data, text)
	case actionrule.ActionTypeUpdateTaskStatus:
		return e.updateTaskStatus(ctx, rule, cfg, msg, data)
	case actionrule.ActionTypeSendMessage:
		return e.sendMessage(ctx, rule, cfg, msg, data)
	default:
		return nil, fmt.Errorf("unknown action type %q on rule %s", rule.ActionType, rule.ID)
	}
}

// assembleText concatenates the triggering message with its quoted
// message so the parser sees the full context.
func (e *Executor) assembleText(ctx context.Context, msg *ent.Message, data models.QueueEventData) (string, *ent.Message) {
	text := msg.Content
	if text == "" {
		text = data.Content
	}

	if msg.QuotedMessageID == nil || *msg.QuotedMessageID == "" {
		return text, nil
	}
	quoted, err := e.messaging.GetMessageByProviderID(ctx, *msg.QuotedMessageID, msg.InstanceID)
	if err != nil {
		return text, nil
	}
	if quoted.Content != "" {
		text = strings.TrimSpace(text + "\n" + quoted.Content)
	}
	return text, quoted
}

// parserFor maps an action type to its parser unless the rule names
// one explicitly.
func parserFor(cfg models.RuleConfig, actionType actionrule.ActionType) string {
	if cfg.NlpParser != "" {
		return cfg.NlpParser
	}
	switch actionType {
	case actionrule.ActionTypeCreateCalendarEvent:
		return nlp.ParserCalendar
	case actionrule.ActionTypeCreateBill:
		return nlp.ParserBill
	case actionrule.ActionTypeCreateNote:
		return nlp.ParserNote
	default:
		return nlp.ParserTask
	}
}

// parse runs the NLP service for NLP rules. Simple-action rules skip
// parsing and work from templates alone.
func (e *Executor) parse(ctx context.Context, text string, rule *ent.ActionRule, cfg models.RuleConfig) (*nlp.ParseResult, error) {
	return e.nlp.Parse(ctx, text, parserFor(cfg, rule.ActionType), cfg.Language, cfg)
}

// parseFailed handles an unsuccessful parse: localized help to the
// performer, item completed with parse_failed, no retry.
func (e *Executor) parseFailed(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, data models.QueueEventData, result *nlp.ParseResult) *Outcome {
	slog.Info("Parse failed for rule",
		"rule_id", rule.ID,
		"error_code", result.ErrorCode,
		"language", result.Language)
	e.sendBestEffort(ctx, data, helpMessage(parserFor(cfg, rule.ActionType), result.Language))
	return &Outcome{Result: services.ResultParseFailed}
}

// templateVars builds the substitution set for outbound templates.
func templateVars(rule *ent.ActionRule, msg *ent.Message, data models.QueueEventData) map[string]string {
	return map[string]string{
		"sender":    msg.SenderJid,
		"content":   msg.Content,
		"reaction":  data.Emoji,
		"chat":      msg.ChatID,
		"date":      formatDate(time.Now()),
		"rule_name": rule.RuleName,
	}
}

// sendBestEffort delivers an outbound message to the performer,
// quoting the triggering message. Failures log only.
func (e *Executor) sendBestEffort(ctx context.Context, data models.QueueEventData, text string) {
	if text == "" {
		return
	}
	to := data.ReactorJid
	if to == "" {
		to = data.SenderJid
	}
	if to == "" {
		return
	}
	if err := e.provider.SendText(ctx, data.InstanceID, to, text, data.ProviderID); err != nil {
		slog.Warn("Best-effort send failed", "instance_id", data.InstanceID, "to", to, "error", err)
	}
}

// confirm sends the action confirmation unless the rule disabled it or
// overrides the template.
func (e *Executor) confirm(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData, fallback string) {
	if cfg.SendConfirmation != nil && !*cfg.SendConfirmation {
		return
	}
	text := fallback
	if cfg.ConfirmationTemplate != "" {
		text = RenderTemplate(cfg.ConfirmationTemplate, templateVars(rule, msg, data))
	}
	e.sendBestEffort(ctx, data, text)
}

// publishEntityCreated emits the fan-out event for a new entity.
func (e *Executor) publishEntityCreated(ctx context.Context, rule *ent.ActionRule, data models.QueueEventData, entityType, entityID string) {
	if e.publisher == nil {
		return
	}
	e.publisher.Publish(ctx, EventEntityCreated, map[string]any{
		"entity_type": entityType,
		"entity_id":   entityID,
		"rule_id":     rule.ID,
		"instance_id": data.InstanceID,
		"chat_jid":    data.ChatJid,
	})
}

func entityRef(entityType, entityID string) map[string]string {
	return map[string]string{"entity_type": entityType, "entity_id": entityID}
}

func (e *Executor) createTask(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, quoted *ent.Message, data models.QueueEventData, text string) (*Outcome, error) {
	result, err := e.parse(ctx, text, rule, cfg)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return e.parseFailed(ctx, rule, cfg, data, result), nil
	}
	parsed := result.Task

	// An existing trigger link turns a retried or repeated reaction
	// into an update instead of a second task.
	existing, err := e.links.FindTriggerTaskLink(ctx, msg.ID, rule.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		updated, err := e.updateExistingTask(ctx, existing.TaskID, parsed)
		if err != nil {
			return nil, err
		}
		e.confirm(ctx, rule, cfg, msg, data,
			fmt.Sprintf(localized(taskUpdatedConfirmations, result.Language), updated.Title))
		return &Outcome{
			Result:     services.ResultExecuted,
			EntityRefs: []map[string]string{entityRef("task", updated.TaskID())},
		}, nil
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start action transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := e.entities.CreateTask(ctx, tx, services.TaskInput{
		Title:       parsed.Title,
		Description: parsed.Description,
		Priority:    task.Priority(parsed.Priority),
		DueDate:     parsed.DueDate,
		Tags:        parsed.Tags,
		Assignee:    parsed.Assignee,
		SpaceID:     cfg.SpaceID,
		CreatedBy:   data.ReactorJid,
		Metadata: map[string]any{
			"source":     "whatsapp_reaction",
			"emoji":      data.Emoji,
			"rule_id":    rule.ID,
			"message_id": msg.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := e.links.LinkTask(ctx, tx, msg.ID, created.ID, rule.ID, data.InstanceID, messagetasklink.LinkTypeTrigger); err != nil {
		return nil, err
	}
	if quoted != nil {
		if _, err := e.links.LinkTask(ctx, tx, quoted.ID, created.ID, rule.ID, data.InstanceID, messagetasklink.LinkTypeContext); err != nil && !errors.Is(err, services.ErrConflict) {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task action: %w", err)
	}

	e.confirm(ctx, rule, cfg, msg, data,
		fmt.Sprintf(localized(taskConfirmations, result.Language), created.Title))
	e.publishEntityCreated(ctx, rule, data, "task", created.ID)

	return &Outcome{
		Result:     services.ResultExecuted,
		EntityRefs: []map[string]string{entityRef("task", created.ID)},
	}, nil
}

// taskUpdate is the subset of parsed fields a repeat execution applies
// to an existing task.
type taskUpdate struct {
	taskID string
	Title  string
}

func (u *taskUpdate) TaskID() string { return u.taskID }

func (e *Executor) updateExistingTask(ctx context.Context, taskID string, parsed *nlp.TaskData) (*taskUpdate, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start update transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updated, err := e.entities.UpdateTask(ctx, tx, taskID, services.TaskInput{
		Title:       parsed.Title,
		Description: parsed.Description,
		Priority:    task.Priority(parsed.Priority),
		DueDate:     parsed.DueDate,
		Tags:        parsed.Tags,
		Assignee:    parsed.Assignee,
	})
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task update: %w", err)
	}
	return &taskUpdate{taskID: updated.ID, Title: updated.Title}, nil
}

func (e *Executor) createCalendarEvent(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData, text string) (*Outcome, error) {
	result, err := e.parse(ctx, text, rule, cfg)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return e.parseFailed(ctx, rule, cfg, data, result), nil
	}
	parsed := result.Event

	existing, err := e.links.FindTriggerEventLink(ctx, msg.ID, rule.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Outcome{
			Result:     services.ResultExecuted,
			EntityRefs: []map[string]string{entityRef("calendar_event", existing.CalendarEventID)},
		}, nil
	}

	location := parsed.Location
	conferenceURL := ""
	if location == nlp.VideocallLocation {
		location = ""
		if e.conference != nil {
			conferenceURL, err = e.conference.ConferenceURL(ctx, parsed.Title, parsed.DateTime)
			if err != nil {
				slog.Warn("Conference URL provisioning failed", "rule_id", rule.ID, "error", err)
			}
		}
	}

	end := parsed.DateTime.Add(time.Duration(parsed.DurationMinutes) * time.Minute)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start action transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := e.entities.CreateCalendarEvent(ctx, tx, services.EventInput{
		Title:         parsed.Title,
		StartTime:     parsed.DateTime,
		EndTime:       &end,
		Location:      location,
		ConferenceURL: conferenceURL,
		Attendees:     parsed.Attendees,
		Recurrence:    parsed.Recurrence,
		SpaceID:       cfg.SpaceID,
		CreatedBy:     data.ReactorJid,
		Metadata: map[string]any{
			"source":     "whatsapp_reaction",
			"emoji":      data.Emoji,
			"rule_id":    rule.ID,
			"message_id": msg.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := e.links.LinkCalendarEvent(ctx, tx, msg.ID, created.ID, rule.ID, data.InstanceID, messageeventlink.LinkTypeTrigger); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event action: %w", err)
	}

	e.confirm(ctx, rule, cfg, msg, data,
		fmt.Sprintf(localized(eventConfirmations, result.Language), created.Title, formatDate(created.StartTime)))
	e.publishEntityCreated(ctx, rule, data, "calendar_event", created.ID)

	return &Outcome{
		Result:     services.ResultExecuted,
		EntityRefs: []map[string]string{entityRef("calendar_event", created.ID)},
	}, nil
}

func (e *Executor) createBill(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData, text string) (*Outcome, error) {
	result, err := e.parse(ctx, text, rule, cfg)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return e.parseFailed(ctx, rule, cfg, data, result), nil
	}

	items := []nlp.BillData{}
	switch result.Type {
	case nlp.TypeMultipleBills:
		items = result.Bills.Items
	default:
		items = append(items, *result.Bill)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start action transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	refs := make([]map[string]string, 0, len(items))
	for _, item := range items {
		created, err := e.entities.CreateBill(ctx, tx, services.BillInput{
			Vendor:             item.Vendor,
			Amount:             item.Amount,
			Currency:           item.Currency,
			DueDate:            item.DueDate,
			Category:           item.Category,
			Priority:           bill.Priority(item.Priority),
			IsRecurring:        cfg.RecurrenceType != "",
			RecurrenceType:     cfg.RecurrenceType,
			RecurrenceInterval: cfg.RecurrenceInterval,
			Tags:               billTags(cfg),
			SpaceID:            cfg.SpaceID,
			CreatedBy:          data.ReactorJid,
			Metadata: map[string]any{
				"source":     "whatsapp_reaction",
				"emoji":      data.Emoji,
				"rule_id":    rule.ID,
				"message_id": msg.ID,
				"auto_pay":   cfg.AutoPayEnabled,
			},
		})
		if err != nil {
			return nil, err
		}
		refs = append(refs, entityRef("bill", created.ID))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bill action: %w", err)
	}

	if result.Type == nlp.TypeMultipleBills {
		e.confirm(ctx, rule, cfg, msg, data,
			fmt.Sprintf(localized(multiBillConfirmations, result.Language), len(items), result.Bills.Total.StringFixed(2)))
	} else {
		item := items[0]
		e.confirm(ctx, rule, cfg, msg, data,
			fmt.Sprintf(localized(billConfirmations, result.Language), item.Vendor, item.Amount.StringFixed(2), item.Currency))
	}
	for _, ref := range refs {
		e.publishEntityCreated(ctx, rule, data, "bill", ref["entity_id"])
	}

	return &Outcome{Result: services.ResultExecuted, EntityRefs: refs}, nil
}

// billTags merges the implicit bill tag with the rule's configured
// defaults, deduped.
func billTags(cfg models.RuleConfig) []string {
	tags := []string{"bill"}
	for _, tag := range cfg.DefaultTags {
		if tag != "bill" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (e *Executor) createNote(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData, text string) (*Outcome, error) {
	result, err := e.parse(ctx, text, rule, cfg)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return e.parseFailed(ctx, rule, cfg, data, result), nil
	}
	parsed := result.Note

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start action transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := e.entities.CreateNote(ctx, tx, services.NoteInput{
		Title:     parsed.Title,
		Content:   parsed.Content,
		Tags:      parsed.Tags,
		SpaceID:   cfg.SpaceID,
		CreatedBy: data.ReactorJid,
		Metadata: map[string]any{
			"source":     "whatsapp_reaction",
			"emoji":      data.Emoji,
			"rule_id":    rule.ID,
			"message_id": msg.ID,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note action: %w", err)
	}

	e.confirm(ctx, rule, cfg, msg, data,
		fmt.Sprintf(localized(noteConfirmations, result.Language), created.Title))
	e.publishEntityCreated(ctx, rule, data, "note", created.ID)

	return &Outcome{
		Result:     services.ResultExecuted,
		EntityRefs: []map[string]string{entityRef("note", created.ID)},
	}, nil
}

// updateTaskStatus moves a linked (or configured) task to
// config.new_status. Without a target task the item is skipped, not
// failed — the reaction may predate the task's creation rule.
func (e *Executor) updateTaskStatus(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData) (*Outcome, error) {
	if cfg.NewStatus == "" {
		return nil, fmt.Errorf("rule %s has no new_status configured", rule.ID)
	}

	taskID := cfg.TaskID
	if taskID == "" {
		// Any trigger link on the message resolves the target task,
		// regardless of which rule created it.
		link, err := e.links.FindTriggerTaskLink(ctx, msg.ID, "")
		if err != nil {
			return nil, err
		}
		if link == nil {
			slog.Info("No linked task for status update", "rule_id", rule.ID, "message_id", msg.ID)
			return &Outcome{Result: services.ResultSkipped}, nil
		}
		taskID = link.TaskID
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start action transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updated, err := e.entities.SetTaskStatus(ctx, tx, taskID, task.Status(cfg.NewStatus))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	e.confirm(ctx, rule, cfg, msg, data,
		fmt.Sprintf(localized(statusConfirmations, nlp.LangEnglish), cfg.NewStatus, updated.Title))

	return &Outcome{
		Result:     services.ResultExecuted,
		EntityRefs: []map[string]string{entityRef("task", updated.ID)},
	}, nil
}

// sendMessage renders the rule's template and delivers it. The send is
// the action itself here, so its failure fails the item.
func (e *Executor) sendMessage(ctx context.Context, rule *ent.ActionRule, cfg models.RuleConfig, msg *ent.Message, data models.QueueEventData) (*Outcome, error) {
	if cfg.MessageTemplate == "" {
		return nil, fmt.Errorf("rule %s has no message_template configured", rule.ID)
	}

	to := data.ReactorJid
	if to == "" {
		to = data.SenderJid
	}
	if to == "" {
		return nil, fmt.Errorf("no recipient for send_message rule %s", rule.ID)
	}

	text := RenderTemplate(cfg.MessageTemplate, templateVars(rule, msg, data))
	if err := e.provider.SendText(ctx, data.InstanceID, to, text, data.ProviderID); err != nil {
		return nil, fmt.Errorf("failed to send rule message: %w", err)
	}
	return &Outcome{Result: services.ResultExecuted}, nil
}
