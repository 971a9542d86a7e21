package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/reflexhq/reflex/pkg/models"
)

var videocallKeywords = []string{
	"zoom", "google meet", "meet.google", "teams", "videocall",
	"video call", "videollamada", "videochamada", "hangout", "webex",
}

var recurrenceKeywords = map[string][]string{
	"daily":   {"every day", "daily", "cada día", "cada dia", "todos los días", "todos os dias", "diariamente"},
	"weekly":  {"every week", "weekly", "cada semana", "semanal", "semanalmente", "toda semana"},
	"monthly": {"every month", "monthly", "cada mes", "mensual", "mensalmente", "todo mês", "todo mes"},
}

var locationPattern = regexp.MustCompile(`(?i)\b(?:at|in|en|em|na|no)\s+([A-ZÁÉÍÓÚÑ][\p{L}\p{N} '.\-]{2,40})`)

// parseCalendar extracts a calendar event. A date/time is required;
// without one the parse fails with whatever else was found as partial
// data.
func parseCalendar(dp *dateParser, text, language string, cfg models.RuleConfig, now time.Time) *ParseResult {
	result := &ParseResult{Type: TypeCalendarEvent, Language: language, Event: &EventData{}}
	head, _ := firstLine(text)
	if head == "" {
		result.ErrorCode = ErrCodeEmptyText
		return result
	}

	event := result.Event
	lower := strings.ToLower(text)

	when, matched := dp.extract(text, language, now)

	title := stripDateText(head, matched)
	title = capitalize(stripMarkup(title))
	event.Title = title

	for _, kw := range videocallKeywords {
		if strings.Contains(lower, kw) {
			event.Location = VideocallLocation
			break
		}
	}
	if event.Location == "" {
		if m := locationPattern.FindStringSubmatch(text); m != nil {
			event.Location = strings.TrimSpace(m[1])
		}
	}

	for recurrence, keywords := range recurrenceKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				event.Recurrence = recurrence
				break
			}
		}
		if event.Recurrence != "" {
			break
		}
	}

	event.Attendees = extractMentions(text)

	event.DurationMinutes = cfg.DefaultDurationMinutes
	if event.DurationMinutes == 0 {
		event.DurationMinutes = 60
	}

	if when == nil {
		result.ErrorCode = ErrCodeMissingDateTime
		return result
	}
	event.DateTime = *when

	confidence := 0.6
	if event.Title != "" {
		confidence += 0.3
	}
	if event.Location != "" {
		confidence += 0.1
	}
	result.Success = true
	result.Confidence = confidence
	return result
}
