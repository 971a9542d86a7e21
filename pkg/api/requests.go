package api

import (
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/pkg/services"
)

// RuleRequest is the create/update body for action rules. On update
// every field is optional; zero values leave the stored value alone.
type RuleRequest struct {
	RuleName     string `json:"rule_name"`
	RuleType     string `json:"rule_type" binding:"omitempty,oneof=simple_action nlp_action"`
	TriggerType  string `json:"trigger_type" binding:"omitempty,oneof=reaction hashtag"`
	TriggerValue string `json:"trigger_value"`
	ActionType   string `json:"action_type" binding:"omitempty,oneof=create_task create_calendar_event create_bill create_note update_task_status send_message"`

	Config     map[string]any `json:"config"`
	Conditions map[string]any `json:"conditions"`

	Active              *bool  `json:"active"`
	CooldownMinutes     *int   `json:"cooldown_minutes"`
	MaxExecutionsPerDay *int   `json:"max_executions_per_day"`
	CreatedBy           string `json:"created_by"`
}

func (r RuleRequest) toInput() services.RuleInput {
	return services.RuleInput{
		RuleName:            r.RuleName,
		RuleType:            actionrule.RuleType(r.RuleType),
		TriggerType:         actionrule.TriggerType(r.TriggerType),
		TriggerValue:        r.TriggerValue,
		ActionType:          actionrule.ActionType(r.ActionType),
		Config:              r.Config,
		Conditions:          r.Conditions,
		Active:              r.Active,
		CooldownMinutes:     r.CooldownMinutes,
		MaxExecutionsPerDay: r.MaxExecutionsPerDay,
		CreatedBy:           r.CreatedBy,
	}
}

// ReprocessRequest filters the dead-letter/change reset in
// POST /admin/reprocess. Since is RFC3339; empty means the last 24h.
type ReprocessRequest struct {
	EntityType string `json:"entity_type"`
	Since      string `json:"since"`
}
