package api

import (
	"time"

	"github.com/reflexhq/reflex/ent"
)

// RuleResponse is the wire form of an action rule.
type RuleResponse struct {
	RuleID       string `json:"rule_id"`
	RuleName     string `json:"rule_name"`
	RuleType     string `json:"rule_type"`
	TriggerType  string `json:"trigger_type"`
	TriggerValue string `json:"trigger_value"`
	ActionType   string `json:"action_type"`

	Config     map[string]any `json:"config,omitempty"`
	Conditions map[string]any `json:"conditions,omitempty"`

	Active              bool `json:"active"`
	CooldownMinutes     int  `json:"cooldown_minutes"`
	MaxExecutionsPerDay int  `json:"max_executions_per_day"`
	TotalExecutions     int  `json:"total_executions"`

	LastExecutedAt *time.Time `json:"last_executed_at,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ruleResponse(r *ent.ActionRule) RuleResponse {
	return RuleResponse{
		RuleID:              r.ID,
		RuleName:            r.RuleName,
		RuleType:            string(r.RuleType),
		TriggerType:         string(r.TriggerType),
		TriggerValue:        r.TriggerValue,
		ActionType:          string(r.ActionType),
		Config:              r.Config,
		Conditions:          r.Conditions,
		Active:              r.Active,
		CooldownMinutes:     r.CooldownMinutes,
		MaxExecutionsPerDay: r.MaxExecutionsPerDay,
		TotalExecutions:     r.TotalExecutions,
		LastExecutedAt:      r.LastExecutedAt,
		CreatedBy:           r.CreatedBy,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func ruleResponses(list []*ent.ActionRule) []RuleResponse {
	out := make([]RuleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ruleResponse(r))
	}
	return out
}

// FailedEventResponse is the wire form of a recovery bucket entry. The
// stored payload is already redacted and is not echoed back here.
type FailedEventResponse struct {
	FailedEventID string     `json:"failed_event_id"`
	InstanceID    string     `json:"instance_id,omitempty"`
	EventType     string     `json:"event_type,omitempty"`
	FailureReason string     `json:"failure_reason"`
	ErrorKind     string     `json:"error_kind"`
	RetryCount    int        `json:"retry_count"`
	MaxRetries    int        `json:"max_retries"`
	NextRetryAt   time.Time  `json:"next_retry_at"`
	Resolved      bool       `json:"resolved"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func failedEventResponse(fe *ent.FailedEvent) FailedEventResponse {
	return FailedEventResponse{
		FailedEventID: fe.ID,
		InstanceID:    fe.InstanceID,
		EventType:     fe.EventType,
		FailureReason: fe.FailureReason,
		ErrorKind:     string(fe.ErrorKind),
		RetryCount:    fe.RetryCount,
		MaxRetries:    fe.MaxRetries,
		NextRetryAt:   fe.NextRetryAt,
		Resolved:      fe.Resolved,
		ResolvedAt:    fe.ResolvedAt,
		CreatedAt:     fe.CreatedAt,
	}
}
