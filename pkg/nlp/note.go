package nlp

import (
	"github.com/reflexhq/reflex/pkg/models"
)

// parseNote splits text into a title (first line) and content. Notes
// have no required extraction beyond a non-empty title, so this parser
// rarely fails.
func parseNote(text, language string, cfg models.RuleConfig) *ParseResult {
	result := &ParseResult{Type: TypeNote, Language: language, Note: &NoteData{}}
	head, rest := firstLine(text)
	if head == "" {
		result.ErrorCode = ErrCodeEmptyText
		return result
	}

	note := result.Note
	note.Title = capitalize(stripMarkup(head))
	note.Content = rest
	if note.Content == "" {
		note.Content = head
	}
	note.Tags = extractTags(text)
	if len(note.Tags) == 0 && len(cfg.DefaultTags) > 0 {
		note.Tags = cfg.DefaultTags
	}

	if note.Title == "" {
		result.ErrorCode = ErrCodeMissingTitle
		return result
	}

	result.Success = true
	result.Confidence = 0.9
	return result
}
