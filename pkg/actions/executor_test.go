package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/task"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/nlp"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/test/util"
)

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ map[string]any) {
	p.events = append(p.events, eventType)
}

type executorFixture struct {
	executor  *Executor
	client    *ent.Client
	messaging *services.MessagingService
	rules     *services.RuleService
	publisher *recordingPublisher
}

func newExecutorFixture(t *testing.T) *executorFixture {
	t.Helper()
	client := util.NewTestClient(t)
	messaging := services.NewMessagingService(client.Client)
	pub := &recordingPublisher{}
	executor := NewExecutor(
		client.Client,
		services.NewEntityService(client.Client),
		services.NewLinkService(client.Client),
		messaging,
		nlp.NewService(nil),
		nil,
		pub,
		nil,
	)
	return &executorFixture{
		executor:  executor,
		client:    client.Client,
		messaging: messaging,
		rules:     services.NewRuleService(client.Client),
		publisher: pub,
	}
}

// seedMessage stores one inbound message with its dependency rows and
// returns the row plus the queue event a reaction to it would carry.
func (f *executorFixture) seedMessage(t *testing.T, content string) (*ent.Message, models.QueueEventData) {
	t.Helper()
	ctx := context.Background()

	if n, _ := f.client.Instance.Query().Count(ctx); n == 0 {
		_, err := f.client.Instance.Create().
			SetID("inst-1").
			SetOwnerJid("owner@s.whatsapp.net").
			Save(ctx)
		require.NoError(t, err)
	}

	sender := "ana@s.whatsapp.net"
	_, err := f.messaging.UpsertContact(ctx, services.ContactInput{JID: sender, InstanceID: "inst-1"})
	require.NoError(t, err)
	_, err = f.messaging.UpsertChat(ctx, services.ChatInput{ChatID: sender, InstanceID: "inst-1", Type: chat.TypeIndividual})
	require.NoError(t, err)

	msg, err := f.messaging.UpsertMessage(ctx, services.MessageInput{
		MessageID:  "MSG-" + content[:min(8, len(content))],
		InstanceID: "inst-1",
		ChatID:     sender,
		SenderJID:  sender,
		Content:    content,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	return msg, models.QueueEventData{
		MessageID:  msg.ID,
		ProviderID: msg.MessageID,
		InstanceID: "inst-1",
		ChatJid:    sender,
		SenderJid:  sender,
		ReactorJid: "owner@s.whatsapp.net",
		Emoji:      "✅",
		Content:    content,
		Timestamp:  time.Now(),
	}
}

func (f *executorFixture) createRule(t *testing.T, actionType actionrule.ActionType, config map[string]any) *ent.ActionRule {
	t.Helper()
	rule, err := f.rules.CreateRule(context.Background(), services.RuleInput{
		RuleName:     "test " + string(actionType),
		TriggerType:  actionrule.TriggerTypeReaction,
		TriggerValue: "✅",
		ActionType:   actionType,
		Config:       config,
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)
	return rule
}

func TestExecutor_CreateTask(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	msg, data := f.seedMessage(t, "buy milk tomorrow")
	rule := f.createRule(t, actionrule.ActionTypeCreateTask, map[string]any{"language": "en"})

	outcome, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, outcome.Result)
	require.Len(t, outcome.EntityRefs, 1)

	created := f.client.Task.Query().OnlyX(ctx)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, task.PriorityMedium, created.Priority)
	assert.Equal(t, task.StatusPending, created.Status)
	require.NotNil(t, created.DueDate)

	link := f.client.MessageTaskLink.Query().OnlyX(ctx)
	assert.Equal(t, msg.ID, link.MessageID)
	assert.Equal(t, created.ID, link.TaskID)
	assert.Equal(t, messagetasklink.LinkTypeTrigger, link.LinkType)

	assert.Contains(t, f.publisher.events, EventEntityCreated)

	t.Run("repeat execution updates instead of duplicating", func(t *testing.T) {
		outcome, err := f.executor.Execute(ctx, rule, data)
		require.NoError(t, err)
		assert.Equal(t, services.ResultExecuted, outcome.Result)
		assert.Equal(t, 1, f.client.Task.Query().CountX(ctx))
	})
}

func TestExecutor_CreateCalendarEvent(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "dentist tomorrow at 3pm")
	rule := f.createRule(t, actionrule.ActionTypeCreateCalendarEvent, map[string]any{
		"language":                 "en",
		"default_duration_minutes": 30,
	})

	outcome, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, outcome.Result)

	event := f.client.CalendarEvent.Query().OnlyX(ctx)
	assert.Equal(t, "Dentist", event.Title)
	require.NotNil(t, event.EndTime)
	assert.Equal(t, 30*time.Minute, event.EndTime.Sub(event.StartTime))

	t.Run("repeat execution reuses the linked event", func(t *testing.T) {
		outcome, err := f.executor.Execute(ctx, rule, data)
		require.NoError(t, err)
		assert.Equal(t, services.ResultExecuted, outcome.Result)
		require.Len(t, outcome.EntityRefs, 1)
		assert.Equal(t, event.ID, outcome.EntityRefs[0]["entity_id"])
		assert.Equal(t, 1, f.client.CalendarEvent.Query().CountX(ctx))
	})
}

func TestExecutor_CalendarWithoutDateIsParseFailed(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "team sync notes")
	rule := f.createRule(t, actionrule.ActionTypeCreateCalendarEvent, map[string]any{"language": "en"})

	outcome, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultParseFailed, outcome.Result)
	assert.Equal(t, 0, f.client.CalendarEvent.Query().CountX(ctx))
}

func TestExecutor_CreateBills(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "luz R$ 120,50\naluguel R$ 1.500,00")
	rule := f.createRule(t, actionrule.ActionTypeCreateBill, map[string]any{
		"language":     "pt",
		"default_tags": []any{"casa"},
	})

	outcome, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, outcome.Result)
	assert.Len(t, outcome.EntityRefs, 2)

	bills := f.client.Bill.Query().AllX(ctx)
	require.Len(t, bills, 2)
	for _, b := range bills {
		assert.Equal(t, "BRL", b.Currency)
		assert.Equal(t, []string{"bill", "casa"}, b.Tags)
		// No due date on the message, so nothing is due soon.
		assert.Equal(t, bill.PriorityMedium, b.Priority)
	}
}

func TestExecutor_CreateNote(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "wifi password\nguest: hunter2 #casa")
	rule := f.createRule(t, actionrule.ActionTypeCreateNote, map[string]any{"language": "en"})

	outcome, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, outcome.Result)

	note := f.client.Note.Query().OnlyX(ctx)
	assert.Equal(t, "Wifi password", note.Title)
	assert.Equal(t, []string{"casa"}, note.Tags)
}

func TestExecutor_UpdateTaskStatus(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "buy milk")
	createRule := f.createRule(t, actionrule.ActionTypeCreateTask, map[string]any{"language": "en"})
	_, err := f.executor.Execute(ctx, createRule, data)
	require.NoError(t, err)

	statusRule, err := f.rules.CreateRule(ctx, services.RuleInput{
		RuleName:     "mark done",
		TriggerType:  actionrule.TriggerTypeReaction,
		TriggerValue: "👍",
		ActionType:   actionrule.ActionTypeUpdateTaskStatus,
		Config:       map[string]any{"new_status": "completed"},
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)

	outcome, err := f.executor.Execute(ctx, statusRule, data)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, outcome.Result)

	updated := f.client.Task.Query().OnlyX(ctx)
	assert.Equal(t, task.StatusCompleted, updated.Status)

	t.Run("no linked task is skipped not failed", func(t *testing.T) {
		_, orphan := f.seedMessage(t, "nothing linked here")
		outcome, err := f.executor.Execute(ctx, statusRule, orphan)
		require.NoError(t, err)
		assert.Equal(t, services.ResultSkipped, outcome.Result)
	})
}

func TestExecutor_SendMessageRequiresTemplate(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "ping")
	rule := f.createRule(t, actionrule.ActionTypeSendMessage, nil)

	_, err := f.executor.Execute(ctx, rule, data)
	assert.Error(t, err)
}

func TestExecutor_TaskDefaultsFromRuleConfig(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	_, data := f.seedMessage(t, "water the plants")
	rule := f.createRule(t, actionrule.ActionTypeCreateTask, map[string]any{
		"language":         "en",
		"default_priority": "low",
		"default_tags":     []string{"garden"},
		"default_due_days": 2,
	})

	_, err := f.executor.Execute(ctx, rule, data)
	require.NoError(t, err)

	created := f.client.Task.Query().OnlyX(ctx)
	assert.Equal(t, task.PriorityLow, created.Priority)
	assert.Equal(t, []string{"garden"}, created.Tags)
	require.NotNil(t, created.DueDate)
}
