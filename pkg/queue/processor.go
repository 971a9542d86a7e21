package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/pkg/actions"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/rules"
	"github.com/reflexhq/reflex/pkg/services"
)

// ExecutionObserver receives per-item processing metrics. May be nil.
type ExecutionObserver interface {
	ObserveItem(eventType, result string, duration time.Duration)
}

// Processor turns one leased queue item into rule executions: decode
// the event, find matching rules, run each rule's action, and record
// the outcome on the execution log.
type Processor struct {
	ruleService *services.RuleService
	engine      *rules.Engine
	executor    *actions.Executor
	observer    ExecutionObserver
}

// NewProcessor creates a new Processor. observer may be nil.
func NewProcessor(ruleService *services.RuleService, engine *rules.Engine, executor *actions.Executor, observer ExecutionObserver) *Processor {
	if ruleService == nil || engine == nil || executor == nil {
		panic("NewProcessor: ruleService, engine, and executor must not be nil")
	}
	return &Processor{
		ruleService: ruleService,
		engine:      engine,
		executor:    executor,
		observer:    observer,
	}
}

// Process runs all matching rules for the item and returns the item's
// completion result. An error means the item should retry.
func (p *Processor) Process(ctx context.Context, item *ent.ActionQueueItem) (string, error) {
	started := time.Now()
	result, err := p.process(ctx, item)
	if p.observer != nil {
		observed := result
		if err != nil {
			observed = "error"
		}
		p.observer.ObserveItem(string(item.EventType), observed, time.Since(started))
	}
	return result, err
}

func (p *Processor) process(ctx context.Context, item *ent.ActionQueueItem) (string, error) {
	data, err := models.QueueEventDataFromMap(item.EventData)
	if err != nil {
		return "", fmt.Errorf("queue item %s has undecodable event data: %w", item.ID, err)
	}

	matched, err := p.matchRules(ctx, item, data)
	if err != nil {
		return "", err
	}
	if len(matched) == 0 {
		slog.Debug("No rules matched queue item", "item_id", item.ID, "event_type", item.EventType)
		return services.ResultNoRules, nil
	}

	// Each rule executes independently; one failing rule retries the
	// whole item, and trigger-link idempotency makes the replays of
	// already-executed rules harmless.
	finalResult := services.ResultSkipped
	var failures []error
	for _, rule := range matched {
		outcome := p.executeRule(ctx, rule, item, data)
		if outcome.err != nil {
			failures = append(failures, outcome.err)
			continue
		}
		finalResult = mergeResults(finalResult, outcome.result)
	}

	if len(failures) > 0 {
		return "", errors.Join(failures...)
	}
	return finalResult, nil
}

// matchRules resolves the trigger and asks the engine for admitted
// rules. Hashtag messages match every tag in the content.
func (p *Processor) matchRules(ctx context.Context, item *ent.ActionQueueItem, data models.QueueEventData) ([]*ent.ActionRule, error) {
	eval := rules.EvalContext{
		InstanceID: data.InstanceID,
		Performer:  data.SenderJid,
		ChatJid:    data.ChatJid,
		FromMe:     data.FromMe,
		Timestamp:  data.Timestamp,
	}

	switch item.EventType {
	case actionqueueitem.EventTypeReaction:
		if data.ReactorJid != "" {
			eval.Performer = data.ReactorJid
		}
		return p.engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, data.Emoji, eval)

	case actionqueueitem.EventTypeMessage:
		tags := hashtagsForMatching(data)
		seen := make(map[string]bool, len(tags))
		var matched []*ent.ActionRule
		for _, tag := range tags {
			rulesForTag, err := p.engine.FindMatchingRules(ctx, actionrule.TriggerTypeHashtag, tag, eval)
			if err != nil {
				return nil, err
			}
			for _, r := range rulesForTag {
				if !seen[r.ID] {
					seen[r.ID] = true
					matched = append(matched, r)
				}
			}
		}
		return matched, nil

	default:
		slog.Warn("Unhandled queue event type", "item_id", item.ID, "event_type", item.EventType)
		return nil, nil
	}
}

type ruleOutcome struct {
	result string
	err    error
}

// executeRule runs one rule and records the execution log row. Log
// write failures never mask the execution outcome.
func (p *Processor) executeRule(ctx context.Context, rule *ent.ActionRule, item *ent.ActionQueueItem, data models.QueueEventData) ruleOutcome {
	log := slog.With("rule_id", rule.ID, "item_id", item.ID, "action_type", rule.ActionType)
	started := time.Now()

	outcome, err := p.executor.Execute(ctx, rule, data)
	elapsed := time.Since(started)

	record := services.ExecutionRecord{
		RuleID:          rule.ID,
		QueueItemID:     item.ID,
		ExecutionTimeMs: int(elapsed.Milliseconds()),
		ChatID:          data.ChatJid,
		InstanceID:      data.InstanceID,
	}
	if err != nil {
		record.Status = actionexecutionlog.StatusFailed
		record.ErrorMessage = err.Error()
	} else {
		record.Status = actionexecutionlog.StatusSuccess
		record.CreatedEntityRefs = outcome.EntityRefs
	}
	if recErr := p.ruleService.RecordExecution(ctx, record); recErr != nil {
		log.Error("Failed to record rule execution", "error", recErr)
	}

	if err != nil {
		log.Error("Rule execution failed", "error", err, "elapsed_ms", elapsed.Milliseconds())
		return ruleOutcome{err: err}
	}
	log.Info("Rule executed", "result", outcome.Result, "elapsed_ms", elapsed.Milliseconds())
	return ruleOutcome{result: outcome.Result}
}

// hashtagsForMatching prefers the full content (all tags) over the
// single tag captured at enqueue time.
func hashtagsForMatching(data models.QueueEventData) []string {
	if data.Content != "" {
		if tags := extractHashtags(data.Content); len(tags) > 0 {
			return tags
		}
	}
	if data.Hashtag != "" {
		return []string{data.Hashtag}
	}
	return nil
}

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// extractHashtags returns lowercased tags without '#', deduped in
// first-seen order. Matches the webhook intake's tokenization so every
// tag stored at intake is matchable here.
func extractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	var tags []string
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// mergeResults keeps the most significant completion substatus when
// multiple rules ran for one item.
func mergeResults(current, next string) string {
	rank := map[string]int{
		services.ResultSkipped:     1,
		services.ResultParseFailed: 2,
		services.ResultExecuted:    3,
	}
	if rank[next] > rank[current] {
		return next
	}
	return current
}
