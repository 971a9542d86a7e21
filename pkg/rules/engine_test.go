package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/pkg/models"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/test/util"
)

func newTestEngine(t *testing.T) (*Engine, *services.RuleService) {
	t.Helper()
	client := util.NewTestClient(t)
	ruleSvc := services.NewRuleService(client.Client)
	return NewEngine(ruleSvc, NewCache(5*time.Minute)), ruleSvc
}

func createReactionRule(t *testing.T, svc *services.RuleService, emoji string, mutate func(*services.RuleInput)) *ent.ActionRule {
	t.Helper()
	in := services.RuleInput{
		RuleName:     "rule for " + emoji,
		TriggerType:  actionrule.TriggerTypeReaction,
		TriggerValue: emoji,
		ActionType:   actionrule.ActionTypeCreateTask,
		CreatedBy:    "owner@s.whatsapp.net",
	}
	if mutate != nil {
		mutate(&in)
	}
	rule, err := svc.CreateRule(context.Background(), in)
	require.NoError(t, err)
	return rule
}

func evalAt(ts time.Time) EvalContext {
	return EvalContext{
		InstanceID: "inst-1",
		Performer:  "reactor@s.whatsapp.net",
		ChatJid:    "family@g.us",
		Timestamp:  ts,
	}
}

func TestEngine_MatchesActiveTrigger(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()
	rule := createReactionRule(t, svc, "✅", nil)

	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", evalAt(time.Now()))
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, rule.ID, matched[0].ID)

	t.Run("different emoji no match", func(t *testing.T) {
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "🔥", evalAt(time.Now()))
		require.NoError(t, err)
		assert.Empty(t, matched)
	})
}

func TestEngine_PerformerConditions(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	createReactionRule(t, svc, "✅", func(in *services.RuleInput) {
		in.Conditions = map[string]any{
			"performers": []string{"alice@s.whatsapp.net"},
		}
	})
	createReactionRule(t, svc, "🔥", func(in *services.RuleInput) {
		in.Conditions = map[string]any{
			"exclude_performers": []string{"spammer@s.whatsapp.net"},
		}
	})

	eval := evalAt(time.Now())

	t.Run("include list rejects others", func(t *testing.T) {
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("include list admits listed performer", func(t *testing.T) {
		allowed := eval
		allowed.Performer = "alice@s.whatsapp.net"
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", allowed)
		require.NoError(t, err)
		assert.Len(t, matched, 1)
	})

	t.Run("exclude list rejects listed performer", func(t *testing.T) {
		blocked := eval
		blocked.Performer = "spammer@s.whatsapp.net"
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "🔥", blocked)
		require.NoError(t, err)
		assert.Empty(t, matched)

		matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "🔥", eval)
		require.NoError(t, err)
		assert.Len(t, matched, 1)
	})
}

func TestEngine_FromMeCondition(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	fromMe := true
	createReactionRule(t, svc, "✅", func(in *services.RuleInput) {
		in.Conditions = map[string]any{"from_me": fromMe}
	})

	eval := evalAt(time.Now())
	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	assert.Empty(t, matched)

	eval.FromMe = true
	matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestEngine_TimeWindows(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	createReactionRule(t, svc, "✅", func(in *services.RuleInput) {
		in.Conditions = map[string]any{
			"time_windows": []map[string]any{
				{"start": "09:00", "end": "18:00"},
			},
			"weekdays": []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		}
	})

	// 2026-08-25 is a Tuesday.
	inside := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", evalAt(inside))
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	t.Run("outside daily window", func(t *testing.T) {
		night := time.Date(2026, 8, 25, 22, 0, 0, 0, time.UTC)
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", evalAt(night))
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("weekend rejected", func(t *testing.T) {
		saturday := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", evalAt(saturday))
		require.NoError(t, err)
		assert.Empty(t, matched)
	})
}

func TestEngine_HashtagOwnerScope(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, services.RuleInput{
		RuleName:     "owner-only hashtag",
		TriggerType:  actionrule.TriggerTypeHashtag,
		TriggerValue: "tarefa",
		ActionType:   actionrule.ActionTypeCreateTask,
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)
	_, err = svc.CreateRule(ctx, services.RuleInput{
		RuleName:     "open hashtag",
		TriggerType:  actionrule.TriggerTypeHashtag,
		TriggerValue: "nota",
		ActionType:   actionrule.ActionTypeCreateNote,
		Config:       map[string]any{"hashtag_scope": "all"},
		CreatedBy:    "owner@s.whatsapp.net",
	})
	require.NoError(t, err)

	other := evalAt(time.Now())

	// Default scope admits only the owner's own messages.
	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeHashtag, "tarefa", other)
	require.NoError(t, err)
	assert.Empty(t, matched)

	mine := other
	mine.FromMe = true
	matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeHashtag, "tarefa", mine)
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	// "all" scope admits anyone.
	matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeHashtag, "nota", other)
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestEngine_Cooldown(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	cooldown := 30
	rule := createReactionRule(t, svc, "✅", func(in *services.RuleInput) {
		in.CooldownMinutes = &cooldown
	})

	eval := evalAt(time.Now())
	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	require.Len(t, matched, 1)

	require.NoError(t, svc.RecordExecution(ctx, services.ExecutionRecord{
		RuleID:     rule.ID,
		Status:     actionexecutionlog.StatusSuccess,
		ChatID:     eval.ChatJid,
		InstanceID: eval.InstanceID,
	}))

	t.Run("same chat in cooldown", func(t *testing.T) {
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("cooldown scoped per chat", func(t *testing.T) {
		elsewhere := eval
		elsewhere.ChatJid = "work@g.us"
		matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", elsewhere)
		require.NoError(t, err)
		assert.Len(t, matched, 1)
	})
}

func TestEngine_DailyBudget(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()

	budget := 2
	rule := createReactionRule(t, svc, "✅", func(in *services.RuleInput) {
		in.MaxExecutionsPerDay = &budget
	})

	eval := evalAt(time.Now())
	for i := 0; i < budget; i++ {
		require.NoError(t, svc.RecordExecution(ctx, services.ExecutionRecord{
			RuleID:     rule.ID,
			Status:     actionexecutionlog.StatusSuccess,
			ChatID:     eval.ChatJid,
			InstanceID: eval.InstanceID,
		}))
	}

	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestEngine_CacheInvalidation(t *testing.T) {
	engine, svc := newTestEngine(t)
	ctx := context.Background()
	eval := evalAt(time.Now())

	// Prime the cache with an empty lookup.
	matched, err := engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	require.Empty(t, matched)

	createReactionRule(t, svc, "✅", nil)

	// Still served from cache.
	matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	assert.Empty(t, matched)

	engine.InvalidateCache()
	matched, err = engine.FindMatchingRules(ctx, actionrule.TriggerTypeReaction, "✅", eval)
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestCache(t *testing.T) {
	t.Run("expired entries dropped", func(t *testing.T) {
		cache := NewCache(time.Millisecond)
		cache.Set("k", []*ent.ActionRule{{}})
		time.Sleep(5 * time.Millisecond)
		_, ok := cache.Get("k")
		assert.False(t, ok)
	})

	t.Run("hit within ttl", func(t *testing.T) {
		cache := NewCache(time.Minute)
		cache.Set("k", nil)
		rules, ok := cache.Get("k")
		assert.True(t, ok)
		assert.Nil(t, rules)
	})

	t.Run("invalidate drops everything", func(t *testing.T) {
		cache := NewCache(time.Minute)
		cache.Set("a", nil)
		cache.Set("b", nil)
		cache.Invalidate()
		_, okA := cache.Get("a")
		_, okB := cache.Get("b")
		assert.False(t, okA)
		assert.False(t, okB)
	})
}

func TestAdmitsValue(t *testing.T) {
	assert.True(t, admitsValue("x", nil, nil))
	assert.True(t, admitsValue("x", []string{"x", "y"}, nil))
	assert.False(t, admitsValue("z", []string{"x", "y"}, nil))
	assert.False(t, admitsValue("x", []string{"x"}, []string{"x"}))
}

func TestInWindow(t *testing.T) {
	t.Run("midnight wrap", func(t *testing.T) {
		w := models.TimeWindow{Start: "22:00", End: "06:00"}
		assert.True(t, inWindow(time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC), w))
		assert.True(t, inWindow(time.Date(2026, 8, 25, 5, 0, 0, 0, time.UTC), w))
		assert.False(t, inWindow(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), w))
	})

	t.Run("timezone applied", func(t *testing.T) {
		w := models.TimeWindow{Start: "09:00", End: "18:00", Timezone: "America/Sao_Paulo"}
		// 13:00 UTC is 10:00 in São Paulo.
		assert.True(t, inWindow(time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC), w))
		// 23:00 UTC is 20:00 in São Paulo.
		assert.False(t, inWindow(time.Date(2026, 8, 25, 23, 0, 0, 0, time.UTC), w))
	})

	t.Run("unparseable clock rejects", func(t *testing.T) {
		w := models.TimeWindow{Start: "soon", End: "later"}
		assert.False(t, inWindow(time.Now(), w))
	})
}
