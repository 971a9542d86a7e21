package rules

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/services"
)

// EvalContext carries the event-side facts a rule's conditions are
// checked against.
type EvalContext struct {
	InstanceID string

	// Performer is who triggered: the reactor for reactions, the
	// sender for hashtag messages.
	Performer string

	ChatJid   string
	FromMe    bool
	Timestamp time.Time
}

// Engine finds the active rules a trigger should execute. Storage
// lookups go through a TTL cache; condition and rate-limit checks
// always hit the database so cooldowns stay accurate.
type Engine struct {
	rules *services.RuleService
	cache *Cache
}

// NewEngine creates a new Engine.
func NewEngine(rules *services.RuleService, cache *Cache) *Engine {
	if rules == nil {
		panic("NewEngine: rules must not be nil")
	}
	if cache == nil {
		cache = NewCache(5 * time.Minute)
	}
	return &Engine{rules: rules, cache: cache}
}

// InvalidateCache drops cached lookups after a rule write.
func (e *Engine) InvalidateCache() {
	e.cache.Invalidate()
}

// FindMatchingRules returns the active rules whose trigger and
// conditions admit the event, in creation order.
func (e *Engine) FindMatchingRules(ctx context.Context, triggerType actionrule.TriggerType, triggerValue string, eval EvalContext) ([]*ent.ActionRule, error) {
	candidates, err := e.candidates(ctx, triggerType, triggerValue, eval.InstanceID)
	if err != nil {
		return nil, err
	}

	var matched []*ent.ActionRule
	for _, rule := range candidates {
		ok, err := e.admits(ctx, rule, triggerType, eval)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

// candidates resolves the trigger lookup through the cache.
func (e *Engine) candidates(ctx context.Context, triggerType actionrule.TriggerType, triggerValue, instanceID string) ([]*ent.ActionRule, error) {
	key := fmt.Sprintf("%s|%s|%s", triggerType, strings.ToLower(triggerValue), instanceID)
	if rules, ok := e.cache.Get(key); ok {
		return rules, nil
	}

	rules, err := e.rules.FindRulesByTrigger(ctx, triggerType, triggerValue)
	if err != nil {
		return nil, err
	}
	e.cache.Set(key, rules)
	return rules, nil
}

// admits runs one rule's condition and rate-limit checks.
func (e *Engine) admits(ctx context.Context, rule *ent.ActionRule, triggerType actionrule.TriggerType, eval EvalContext) (bool, error) {
	conditions, err := models.RuleConditionsFromMap(rule.Conditions)
	if err != nil {
		slog.Warn("Skipping rule with undecodable conditions", "rule_id", rule.ID, "error", err)
		return false, nil
	}

	if !admitsValue(eval.InstanceID, conditions.Instances, conditions.ExcludeInstances) {
		return false, nil
	}
	if !admitsValue(eval.Performer, conditions.Performers, conditions.ExcludePerformers) {
		return false, nil
	}
	if !admitsValue(eval.ChatJid, conditions.Chats, conditions.ExcludeChats) {
		return false, nil
	}
	if conditions.FromMe != nil && *conditions.FromMe != eval.FromMe {
		return false, nil
	}
	if !admitsTime(eval.Timestamp, conditions.TimeWindows, conditions.Weekdays) {
		return false, nil
	}

	if triggerType == actionrule.TriggerTypeHashtag {
		config, err := models.RuleConfigFromMap(rule.Config)
		if err != nil {
			slog.Warn("Skipping rule with undecodable config", "rule_id", rule.ID, "error", err)
			return false, nil
		}
		if config.EffectiveHashtagScope() == models.HashtagScopeOwner && !eval.FromMe {
			return false, nil
		}
	}

	return e.withinRateLimits(ctx, rule, eval)
}

// withinRateLimits checks cooldown (scoped to the chat) and the daily
// execution budget.
func (e *Engine) withinRateLimits(ctx context.Context, rule *ent.ActionRule, eval EvalContext) (bool, error) {
	if rule.CooldownMinutes > 0 {
		last, err := e.rules.LastSuccessfulExecution(ctx, rule.ID, eval.ChatJid)
		if err != nil {
			return false, err
		}
		if last != nil && time.Since(*last) < time.Duration(rule.CooldownMinutes)*time.Minute {
			slog.Debug("Rule in cooldown", "rule_id", rule.ID, "chat_jid", eval.ChatJid)
			return false, nil
		}
	}

	if rule.MaxExecutionsPerDay > 0 {
		now := time.Now().UTC()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		count, err := e.rules.CountExecutionsSince(ctx, rule.ID, startOfDay)
		if err != nil {
			return false, err
		}
		if count >= rule.MaxExecutionsPerDay {
			slog.Debug("Rule daily budget exhausted", "rule_id", rule.ID, "count", count)
			return false, nil
		}
	}
	return true, nil
}

// admitsValue applies an include list (empty admits everything) and an
// exclude list.
func admitsValue(value string, include, exclude []string) bool {
	for _, v := range exclude {
		if v == value {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, v := range include {
		if v == value {
			return true
		}
	}
	return false
}

// admitsTime checks the timestamp against daily windows and weekday
// filters, each evaluated in the window's timezone.
func admitsTime(ts time.Time, windows []models.TimeWindow, weekdays []string) bool {
	if len(windows) == 0 && len(weekdays) == 0 {
		return true
	}

	if len(weekdays) > 0 {
		day := strings.ToLower(ts.Weekday().String())
		ok := false
		for _, w := range weekdays {
			if strings.ToLower(w) == day {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if inWindow(ts, w) {
			return true
		}
	}
	return false
}

// inWindow checks one daily window; Start > End wraps midnight.
func inWindow(ts time.Time, w models.TimeWindow) bool {
	loc := time.UTC
	if w.Timezone != "" {
		if l, err := time.LoadLocation(w.Timezone); err == nil {
			loc = l
		}
	}
	local := ts.In(loc)
	minutes := local.Hour()*60 + local.Minute()

	start, okStart := parseClock(w.Start)
	end, okEnd := parseClock(w.End)
	if !okStart || !okEnd {
		return false
	}

	if start <= end {
		return minutes >= start && minutes <= end
	}
	return minutes >= start || minutes <= end
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
