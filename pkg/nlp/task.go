package nlp

import (
	"time"

	"github.com/reflexhq/reflex/pkg/models"
)

// parseTask extracts a task from free text. Title comes from the first
// line with indicator tokens and date fragments stripped; the rest
// becomes the description. Rule-config defaults fill only fields the
// text did not provide.
func parseTask(dp *dateParser, text, language string, cfg models.RuleConfig, now time.Time) *ParseResult {
	result := &ParseResult{Type: TypeTask, Language: language, Task: &TaskData{}}
	head, rest := firstLine(text)
	if head == "" {
		result.ErrorCode = ErrCodeEmptyText
		return result
	}

	due, matched := dp.extract(text, language, now)

	title := stripLeadingTokens(head, taskIndicators[language])
	title = stripDateText(title, matched)
	title = capitalize(stripMarkup(title))

	priority := detectPriority(text, language)
	tags := extractTags(text)
	var assignee string
	if mentions := extractMentions(text); len(mentions) > 0 {
		assignee = mentions[0]
	}

	task := result.Task
	task.Title = title
	task.Description = rest
	task.Priority = priority
	task.DueDate = due
	task.Tags = tags
	task.Assignee = assignee

	// Defaults fill gaps only; extracted values always win.
	if task.Priority == "" {
		if cfg.DefaultPriority != "" {
			task.Priority = cfg.DefaultPriority
		} else {
			task.Priority = "medium"
		}
	}
	if len(task.Tags) == 0 && len(cfg.DefaultTags) > 0 {
		task.Tags = cfg.DefaultTags
	}
	if task.DueDate == nil && cfg.DefaultDueDays > 0 {
		d := now.AddDate(0, 0, cfg.DefaultDueDays)
		task.DueDate = &d
	}

	if task.Title == "" {
		result.ErrorCode = ErrCodeMissingTitle
		return result
	}

	confidence := 0.5
	if due != nil {
		confidence += 0.3
	}
	if priority != "" {
		confidence += 0.2
	}
	result.Success = true
	result.Confidence = confidence
	return result
}
