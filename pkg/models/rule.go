package models

import (
	"encoding/json"
	"fmt"
)

// Hashtag scan scopes.
const (
	HashtagScopeOwner = "owner"
	HashtagScopeAll   = "all"
)

// RuleConfig is the typed view of an action rule's config column. All
// fields are optional; parsers use them as defaults that fill only
// missing extracted values.
type RuleConfig struct {
	// Language forces a parser language; empty means auto-detect.
	Language string `json:"language,omitempty"`

	// NlpParser overrides the parser implied by the action type.
	NlpParser string `json:"nlp_parser,omitempty"`

	DefaultPriority        string   `json:"default_priority,omitempty"`
	DefaultTags            []string `json:"default_tags,omitempty"`
	DefaultDurationMinutes int      `json:"default_duration_minutes,omitempty"`
	DefaultCurrency        string   `json:"default_currency,omitempty"`
	DefaultDueDays         int      `json:"default_due_days,omitempty"`

	// SpaceID targets entities at a downstream workspace.
	SpaceID string `json:"space_id,omitempty"`

	// TaskID targets update_task_status rules at a fixed task; empty
	// means resolve via the message's trigger link.
	TaskID    string `json:"task_id,omitempty"`
	NewStatus string `json:"new_status,omitempty"`

	AutoPayEnabled     bool   `json:"auto_pay_enabled,omitempty"`
	RecurrenceType     string `json:"recurrence_type,omitempty"`
	RecurrenceInterval int    `json:"recurrence_interval,omitempty"`

	// MessageTemplate is the outbound text for send_message actions;
	// ConfirmationTemplate overrides the default confirmation text.
	MessageTemplate      string `json:"message_template,omitempty"`
	ConfirmationTemplate string `json:"confirmation_template,omitempty"`
	SendConfirmation     *bool  `json:"send_confirmation,omitempty"`

	// HashtagScope limits hashtag scanning: "owner" (default) only
	// scans from-me messages, "all" scans everyone's.
	HashtagScope string `json:"hashtag_scope,omitempty"`
}

// EffectiveHashtagScope applies the default.
func (c RuleConfig) EffectiveHashtagScope() string {
	if c.HashtagScope == HashtagScopeAll {
		return HashtagScopeAll
	}
	return HashtagScopeOwner
}

// TimeWindow is an inclusive daily window in a named location.
type TimeWindow struct {
	// Start and End are "HH:MM"; a window wrapping midnight has
	// Start > End.
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone,omitempty"`
}

// RuleConditions is the typed view of an action rule's conditions
// column. Empty lists admit everything.
type RuleConditions struct {
	Instances        []string `json:"instances,omitempty"`
	ExcludeInstances []string `json:"exclude_instances,omitempty"`

	// Performers filter on who triggered (reactor for reactions,
	// sender for hashtags).
	Performers        []string `json:"performers,omitempty"`
	ExcludePerformers []string `json:"exclude_performers,omitempty"`

	Chats        []string `json:"chats,omitempty"`
	ExcludeChats []string `json:"exclude_chats,omitempty"`

	// FromMe restricts to own (true) or others' (false) messages.
	FromMe *bool `json:"from_me,omitempty"`

	TimeWindows []TimeWindow `json:"time_windows,omitempty"`

	// Weekdays admits only the named days ("monday".."sunday"),
	// evaluated in each window's timezone.
	Weekdays []string `json:"weekdays,omitempty"`
}

// RuleConfigFromMap decodes a stored config column.
func RuleConfigFromMap(m map[string]any) (RuleConfig, error) {
	var c RuleConfig
	if m == nil {
		return c, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return c, fmt.Errorf("failed to marshal rule config: %w", err)
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("failed to decode rule config: %w", err)
	}
	return c, nil
}

// RuleConditionsFromMap decodes a stored conditions column.
func RuleConditionsFromMap(m map[string]any) (RuleConditions, error) {
	var c RuleConditions
	if m == nil {
		return c, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return c, fmt.Errorf("failed to marshal rule conditions: %w", err)
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("failed to decode rule conditions: %w", err)
	}
	return c, nil
}
