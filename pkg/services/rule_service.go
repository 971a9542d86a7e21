package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionrule"
)

// RuleInput carries rule creation/update data.
type RuleInput struct {
	RuleName            string
	RuleType            actionrule.RuleType
	TriggerType         actionrule.TriggerType
	TriggerValue        string
	ActionType          actionrule.ActionType
	Config              map[string]any
	Conditions          map[string]any
	Active              *bool
	CooldownMinutes     *int
	MaxExecutionsPerDay *int
	CreatedBy           string
}

// ExecutionRecord captures one rule execution for the audit log.
type ExecutionRecord struct {
	RuleID            string
	QueueItemID       string
	Status            actionexecutionlog.Status
	ExecutionTimeMs   int
	ErrorMessage      string
	CreatedEntityRefs []map[string]string
	ChatID            string
	InstanceID        string
}

// RuleService stores action rules and their execution audit trail.
// Condition evaluation (time windows, cooldowns, contact filters)
// lives in pkg/rules; this layer owns persistence and the
// one-active-rule-per-trigger invariant.
type RuleService struct {
	client *ent.Client
}

// NewRuleService creates a new RuleService.
func NewRuleService(client *ent.Client) *RuleService {
	if client == nil {
		panic("NewRuleService: client must not be nil")
	}
	return &RuleService{client: client}
}

// normalizeTriggerValue lowercases hashtag triggers so matching is
// case-insensitive; emoji triggers are stored verbatim.
func normalizeTriggerValue(triggerType actionrule.TriggerType, value string) string {
	if triggerType == actionrule.TriggerTypeHashtag {
		return strings.ToLower(strings.TrimPrefix(value, "#"))
	}
	return value
}

// CreateRule validates and stores a rule. At most one active rule may
// exist per (trigger_type, trigger_value, created_by); violations
// return ErrConflict. A partial unique index backs this up against
// concurrent writers.
func (s *RuleService) CreateRule(ctx context.Context, in RuleInput) (*ent.ActionRule, error) {
	if in.RuleName == "" {
		return nil, NewValidationError("rule_name", "rule name is required")
	}
	if in.TriggerValue == "" {
		return nil, NewValidationError("trigger_value", "trigger value is required")
	}
	triggerValue := normalizeTriggerValue(in.TriggerType, in.TriggerValue)

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	if active {
		if err := s.checkConflict(ctx, in.TriggerType, triggerValue, in.CreatedBy, ""); err != nil {
			return nil, err
		}
	}

	create := s.client.ActionRule.Create().
		SetID(uuid.New().String()).
		SetRuleName(in.RuleName).
		SetRuleType(in.RuleType).
		SetTriggerType(in.TriggerType).
		SetTriggerValue(triggerValue).
		SetActionType(in.ActionType).
		SetActive(active)
	if in.Config != nil {
		create.SetConfig(in.Config)
	}
	if in.Conditions != nil {
		create.SetConditions(in.Conditions)
	}
	if in.CooldownMinutes != nil {
		create.SetCooldownMinutes(*in.CooldownMinutes)
	}
	if in.MaxExecutionsPerDay != nil {
		create.SetMaxExecutionsPerDay(*in.MaxExecutionsPerDay)
	}
	if in.CreatedBy != "" {
		create.SetCreatedBy(in.CreatedBy)
	}

	rule, err := create.Save(ctx)
	if err != nil {
		if Classify(err) == ClassConflict {
			return nil, fmt.Errorf("active rule for trigger %q exists: %w", triggerValue, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// UpdateRule applies a partial update, re-running the conflict check
// when the trigger or active flag changes.
func (s *RuleService) UpdateRule(ctx context.Context, ruleID string, in RuleInput) (*ent.ActionRule, error) {
	existing, err := s.GetRule(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	triggerType := existing.TriggerType
	if in.TriggerType != "" {
		triggerType = in.TriggerType
	}
	triggerValue := existing.TriggerValue
	if in.TriggerValue != "" {
		triggerValue = normalizeTriggerValue(triggerType, in.TriggerValue)
	}
	active := existing.Active
	if in.Active != nil {
		active = *in.Active
	}
	if active {
		if err := s.checkConflict(ctx, triggerType, triggerValue, existing.CreatedBy, ruleID); err != nil {
			return nil, err
		}
	}

	update := existing.Update().
		SetTriggerType(triggerType).
		SetTriggerValue(triggerValue).
		SetActive(active)
	if in.RuleName != "" {
		update.SetRuleName(in.RuleName)
	}
	if in.RuleType != "" {
		update.SetRuleType(in.RuleType)
	}
	if in.ActionType != "" {
		update.SetActionType(in.ActionType)
	}
	if in.Config != nil {
		update.SetConfig(in.Config)
	}
	if in.Conditions != nil {
		update.SetConditions(in.Conditions)
	}
	if in.CooldownMinutes != nil {
		update.SetCooldownMinutes(*in.CooldownMinutes)
	}
	if in.MaxExecutionsPerDay != nil {
		update.SetMaxExecutionsPerDay(*in.MaxExecutionsPerDay)
	}

	rule, err := update.Save(ctx)
	if err != nil {
		if Classify(err) == ClassConflict {
			return nil, fmt.Errorf("active rule for trigger %q exists: %w", triggerValue, ErrConflict)
		}
		return nil, fmt.Errorf("failed to update rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// checkConflict rejects a write that would create a second active rule
// for the same (trigger_type, trigger_value, created_by) scope.
func (s *RuleService) checkConflict(ctx context.Context, triggerType actionrule.TriggerType, triggerValue, createdBy, excludeID string) error {
	q := s.client.ActionRule.Query().
		Where(
			actionrule.TriggerTypeEQ(triggerType),
			actionrule.TriggerValue(triggerValue),
			actionrule.Active(true),
			actionrule.DeletedAtIsNil(),
		)
	if createdBy != "" {
		q = q.Where(actionrule.CreatedBy(createdBy))
	} else {
		q = q.Where(actionrule.Or(actionrule.CreatedByIsNil(), actionrule.CreatedBy("")))
	}
	if excludeID != "" {
		q = q.Where(actionrule.IDNEQ(excludeID))
	}

	exists, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check rule conflict: %w", err)
	}
	if exists {
		return fmt.Errorf("active rule for (%s, %s) exists in this scope: %w", triggerType, triggerValue, ErrConflict)
	}
	return nil
}

// GetRule loads one rule (soft-deleted rules excluded).
func (s *RuleService) GetRule(ctx context.Context, ruleID string) (*ent.ActionRule, error) {
	rule, err := s.client.ActionRule.Query().
		Where(actionrule.ID(ruleID), actionrule.DeletedAtIsNil()).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("rule %q: %w", ruleID, ErrNotFound)
	}
	return rule, err
}

// ListRules returns all non-deleted rules, newest first.
func (s *RuleService) ListRules(ctx context.Context) ([]*ent.ActionRule, error) {
	return s.client.ActionRule.Query().
		Where(actionrule.DeletedAtIsNil()).
		Order(ent.Desc(actionrule.FieldCreatedAt)).
		All(ctx)
}

// DeleteRule soft-deletes a rule and deactivates it.
func (s *RuleService) DeleteRule(ctx context.Context, ruleID string) error {
	rule, err := s.GetRule(ctx, ruleID)
	if err != nil {
		return err
	}
	return rule.Update().
		SetActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// FindRulesByTrigger returns active rules matching a trigger, oldest
// first so earlier rules win ties deterministically. Hashtag values
// are matched case-insensitively via stored lowercase normalization.
func (s *RuleService) FindRulesByTrigger(ctx context.Context, triggerType actionrule.TriggerType, triggerValue string) ([]*ent.ActionRule, error) {
	rules, err := s.client.ActionRule.Query().
		Where(
			actionrule.TriggerTypeEQ(triggerType),
			actionrule.TriggerValue(normalizeTriggerValue(triggerType, triggerValue)),
			actionrule.Active(true),
			actionrule.DeletedAtIsNil(),
		).
		Order(ent.Asc(actionrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules for trigger %q: %w", triggerValue, err)
	}
	return rules, nil
}

// RecordExecution appends an audit log row and, on success, bumps the
// rule's execution counters. The log doubles as the data source for
// cooldown and executions-per-day checks.
func (s *RuleService) RecordExecution(ctx context.Context, rec ExecutionRecord) error {
	create := s.client.ActionExecutionLog.Create().
		SetID(uuid.New().String()).
		SetRuleID(rec.RuleID).
		SetStatus(rec.Status).
		SetExecutionTimeMs(rec.ExecutionTimeMs)
	if rec.QueueItemID != "" {
		create.SetQueueItemID(rec.QueueItemID)
	}
	if rec.ErrorMessage != "" {
		create.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.CreatedEntityRefs != nil {
		create.SetCreatedEntityRefs(rec.CreatedEntityRefs)
	}
	if rec.ChatID != "" {
		create.SetChatID(rec.ChatID)
	}
	if rec.InstanceID != "" {
		create.SetInstanceID(rec.InstanceID)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record execution for rule %s: %w", rec.RuleID, err)
	}

	if rec.Status == actionexecutionlog.StatusSuccess {
		err := s.client.ActionRule.UpdateOneID(rec.RuleID).
			AddTotalExecutions(1).
			SetLastExecutedAt(time.Now()).
			Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to bump counters for rule %s: %w", rec.RuleID, err)
		}
	}
	return nil
}

// LastSuccessfulExecution returns the newest success timestamp for a
// rule within an optional chat context; nil when none exists.
func (s *RuleService) LastSuccessfulExecution(ctx context.Context, ruleID, chatID string) (*time.Time, error) {
	q := s.client.ActionExecutionLog.Query().
		Where(
			actionexecutionlog.RuleID(ruleID),
			actionexecutionlog.StatusEQ(actionexecutionlog.StatusSuccess),
		)
	if chatID != "" {
		q = q.Where(actionexecutionlog.ChatID(chatID))
	}

	last, err := q.Order(ent.Desc(actionexecutionlog.FieldCreatedAt)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last execution for rule %s: %w", ruleID, err)
	}
	t := last.CreatedAt
	return &t, nil
}

// CountExecutionsSince counts successful executions of a rule since a
// point in time (used for max_executions_per_day).
func (s *RuleService) CountExecutionsSince(ctx context.Context, ruleID string, since time.Time) (int, error) {
	n, err := s.client.ActionExecutionLog.Query().
		Where(
			actionexecutionlog.RuleID(ruleID),
			actionexecutionlog.StatusEQ(actionexecutionlog.StatusSuccess),
			actionexecutionlog.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count executions for rule %s: %w", ruleID, err)
	}
	return n, nil
}

// CleanupExecutionLogs deletes execution log rows older than the
// cutoff. Rule counters (total_executions, last_executed_at) survive.
func (s *RuleService) CleanupExecutionLogs(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.ActionExecutionLog.Delete().
		Where(actionexecutionlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup execution logs: %w", err)
	}
	return count, nil
}
