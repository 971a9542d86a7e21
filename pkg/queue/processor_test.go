package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/pkg/actions"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/nlp"
	"github.com/reflexhq/reflex/pkg/rules"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/test/util"
)

type itemObservation struct {
	eventType string
	result    string
}

type captureObserver struct {
	observed []itemObservation
}

func (o *captureObserver) ObserveItem(eventType, result string, _ time.Duration) {
	o.observed = append(o.observed, itemObservation{eventType: eventType, result: result})
}

type processorFixture struct {
	processor *Processor
	client    *ent.Client
	messaging *services.MessagingService
	rules     *services.RuleService
	queue     *services.QueueService
	observer  *captureObserver
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()
	client := util.NewTestClient(t)
	messaging := services.NewMessagingService(client.Client)
	ruleSvc := services.NewRuleService(client.Client)
	engine := rules.NewEngine(ruleSvc, rules.NewCache(time.Minute))
	executor := actions.NewExecutor(
		client.Client,
		services.NewEntityService(client.Client),
		services.NewLinkService(client.Client),
		messaging,
		nlp.NewService(nil),
		nil,
		nil,
		nil,
	)
	observer := &captureObserver{}
	return &processorFixture{
		processor: NewProcessor(ruleSvc, engine, executor, observer),
		client:    client.Client,
		messaging: messaging,
		rules:     ruleSvc,
		queue:     services.NewQueueService(client.Client, 24*time.Hour, 5*time.Minute),
		observer:  observer,
	}
}

// seedItem stores a message with its dependency rows and enqueues one
// queue item carrying the given event payload.
func (f *processorFixture) seedItem(t *testing.T, eventType actionqueueitem.EventType, content string, mutate func(*models.QueueEventData)) *ent.ActionQueueItem {
	t.Helper()
	ctx := context.Background()

	if n, _ := f.client.Instance.Query().Count(ctx); n == 0 {
		_, err := f.client.Instance.Create().
			SetID("inst-1").
			SetOwnerJid("owner@s.whatsapp.net").
			Save(ctx)
		require.NoError(t, err)
	}

	sender := "owner@s.whatsapp.net"
	_, err := f.messaging.UpsertContact(ctx, services.ContactInput{JID: sender, InstanceID: "inst-1"})
	require.NoError(t, err)
	_, err = f.messaging.UpsertChat(ctx, services.ChatInput{ChatID: sender, InstanceID: "inst-1", Type: chat.TypeIndividual})
	require.NoError(t, err)

	msg, err := f.messaging.UpsertMessage(ctx, services.MessageInput{
		MessageID:  "MSG-" + string(eventType),
		InstanceID: "inst-1",
		ChatID:     sender,
		SenderJID:  sender,
		Content:    content,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	data := models.QueueEventData{
		MessageID:  msg.ID,
		ProviderID: msg.MessageID,
		InstanceID: "inst-1",
		ChatJid:    sender,
		SenderJid:  sender,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if mutate != nil {
		mutate(&data)
	}
	payload, err := data.ToMap()
	require.NoError(t, err)

	item, err := f.queue.Enqueue(ctx, services.EnqueueInput{
		EventType:      eventType,
		EventData:      payload,
		IdempotencyKey: "item-" + msg.ID,
	})
	require.NoError(t, err)
	return item
}

func (f *processorFixture) createRule(t *testing.T, triggerType actionrule.TriggerType, triggerValue string) *ent.ActionRule {
	t.Helper()
	rule, err := f.rules.CreateRule(context.Background(), services.RuleInput{
		RuleName:     "rule for " + triggerValue,
		TriggerType:  triggerType,
		TriggerValue: triggerValue,
		ActionType:   actionrule.ActionTypeCreateTask,
		Config:       map[string]any{"language": "en"},
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)
	return rule
}

func TestProcessor_NoMatchingRules(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, actionqueueitem.EventTypeReaction, "buy milk", func(d *models.QueueEventData) {
		d.ReactorJid = "owner@s.whatsapp.net"
		d.Emoji = "✅"
	})

	result, err := f.processor.Process(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, services.ResultNoRules, result)

	require.Len(t, f.observer.observed, 1)
	assert.Equal(t, "reaction", f.observer.observed[0].eventType)
	assert.Equal(t, services.ResultNoRules, f.observer.observed[0].result)
}

func TestProcessor_ReactionExecutesMatchingRule(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	rule := f.createRule(t, actionrule.TriggerTypeReaction, "✅")
	item := f.seedItem(t, actionqueueitem.EventTypeReaction, "buy milk tomorrow", func(d *models.QueueEventData) {
		d.ReactorJid = "owner@s.whatsapp.net"
		d.Emoji = "✅"
	})

	result, err := f.processor.Process(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, result)

	assert.Equal(t, 1, f.client.Task.Query().CountX(ctx))

	log := f.client.ActionExecutionLog.Query().OnlyX(ctx)
	assert.Equal(t, rule.ID, log.RuleID)
	assert.Equal(t, actionexecutionlog.StatusSuccess, log.Status)
}

func TestProcessor_FailingRuleRecordsFailure(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	// send_message without a template errors at execution time.
	rule, err := f.rules.CreateRule(ctx, services.RuleInput{
		RuleName:     "broken notifier",
		TriggerType:  actionrule.TriggerTypeReaction,
		TriggerValue: "✅",
		ActionType:   actionrule.ActionTypeSendMessage,
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)

	item := f.seedItem(t, actionqueueitem.EventTypeReaction, "ping", func(d *models.QueueEventData) {
		d.ReactorJid = "owner@s.whatsapp.net"
		d.Emoji = "✅"
	})

	_, err = f.processor.Process(ctx, item)
	require.Error(t, err)

	log := f.client.ActionExecutionLog.Query().OnlyX(ctx)
	assert.Equal(t, rule.ID, log.RuleID)
	assert.Equal(t, actionexecutionlog.StatusFailed, log.Status)
	require.NotNil(t, log.ErrorMessage)
	assert.NotEmpty(t, *log.ErrorMessage)
}

func TestProcessor_HashtagMatchesTagsFromContent(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	// The rule is on the second tag; matching must tokenize the full
	// content rather than trust the single tag captured at enqueue.
	f.createRule(t, actionrule.TriggerTypeHashtag, "casa")
	item := f.seedItem(t, actionqueueitem.EventTypeMessage, "#tarefa fix the sink #casa", func(d *models.QueueEventData) {
		d.Hashtag = "tarefa"
	})

	result, err := f.processor.Process(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, services.ResultExecuted, result)
	assert.Equal(t, 1, f.client.Task.Query().CountX(ctx))
}

func TestProcessor_UndecodableEventData(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	item, err := f.queue.Enqueue(ctx, services.EnqueueInput{
		EventType:      actionqueueitem.EventTypeReaction,
		EventData:      map[string]any{"timestamp": "not-a-time"},
		IdempotencyKey: "garbage-1",
	})
	require.NoError(t, err)

	_, err = f.processor.Process(ctx, item)
	assert.Error(t, err)
	require.Len(t, f.observer.observed, 1)
	assert.Equal(t, "error", f.observer.observed[0].result)
}

func TestCleanupStartupOrphans(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	for _, key := range []string{"a", "b"} {
		_, err := f.queue.Enqueue(ctx, services.EnqueueInput{
			EventType:      actionqueueitem.EventTypeReaction,
			EventData:      map[string]any{},
			IdempotencyKey: "orphan-" + key,
		})
		require.NoError(t, err)
	}

	mine, err := f.queue.LeaseBatch(ctx, 1, "pod-restarted")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	other, err := f.queue.LeaseBatch(ctx, 1, "pod-alive")
	require.NoError(t, err)
	require.Len(t, other, 1)

	require.NoError(t, CleanupStartupOrphans(ctx, f.queue, "pod-restarted"))

	released := f.client.ActionQueueItem.GetX(ctx, mine[0].ID)
	assert.Equal(t, actionqueueitem.StatusPending, released.Status)
	assert.Nil(t, released.PodID)

	held := f.client.ActionQueueItem.GetX(ctx, other[0].ID)
	assert.Equal(t, actionqueueitem.StatusProcessing, held.Status)
}

func TestExtractHashtags(t *testing.T) {
	assert.Equal(t, []string{"tarefa", "casa"}, extractHashtags("#Tarefa do dia #casa #tarefa"))
	assert.Nil(t, extractHashtags("no tags here"))
}

func TestMergeResults(t *testing.T) {
	assert.Equal(t, services.ResultExecuted, mergeResults(services.ResultSkipped, services.ResultExecuted))
	assert.Equal(t, services.ResultExecuted, mergeResults(services.ResultExecuted, services.ResultParseFailed))
	assert.Equal(t, services.ResultParseFailed, mergeResults(services.ResultSkipped, services.ResultParseFailed))
}
