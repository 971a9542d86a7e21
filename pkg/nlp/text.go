package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagPattern     = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	mentionPattern = regexp.MustCompile(`@([\p{L}\p{N}_.\-]+)`)
)

// extractTags returns lowercase hashtags without the leading #.
func extractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// extractMentions returns @-mentions without the sigil.
func extractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, m[1])
	}
	return mentions
}

// stripMarkup removes hashtags and mentions from title text.
func stripMarkup(text string) string {
	out := tagPattern.ReplaceAllString(text, "")
	out = mentionPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(strings.Join(strings.Fields(out), " "))
}

// stripLeadingTokens removes task-indicator prefixes ("todo:", "tarea
// -") from the start of a line, including a trailing separator.
func stripLeadingTokens(line string, tokens []string) string {
	out := strings.TrimSpace(line)
	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(out)
		for _, token := range tokens {
			if !strings.HasPrefix(lower, token) {
				continue
			}
			rest := out[len(token):]
			if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, "-") {
				continue
			}
			out = strings.TrimSpace(strings.TrimLeft(rest, " :-–"))
			changed = true
			break
		}
	}
	return out
}

// capitalize uppercases the first rune.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// firstLine splits text at the first newline.
func firstLine(text string) (head, rest string) {
	trimmed := strings.TrimSpace(text)
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		return strings.TrimSpace(trimmed[:i]), strings.TrimSpace(trimmed[i+1:])
	}
	return trimmed, ""
}

// keyword lists per language

var taskIndicators = map[string][]string{
	LangEnglish:    {"task", "todo", "to-do", "reminder", "remember to", "don't forget to", "don't forget"},
	LangSpanish:    {"tarea", "pendiente", "recordatorio", "recordar", "no olvidar"},
	LangPortuguese: {"tarefa", "pendência", "pendencia", "lembrete", "lembrar de", "lembrar", "não esquecer de", "não esquecer"},
}

var highPriorityWords = map[string][]string{
	LangEnglish:    {"urgent", "asap", "critical", "high priority", "important"},
	LangSpanish:    {"urgente", "crítico", "critico", "prioridad alta", "importante"},
	LangPortuguese: {"urgente", "crítico", "critico", "prioridade alta", "importante"},
}

var lowPriorityWords = map[string][]string{
	LangEnglish:    {"low priority", "whenever", "someday", "no rush"},
	LangSpanish:    {"prioridad baja", "cuando puedas", "sin prisa"},
	LangPortuguese: {"prioridade baixa", "quando puder", "sem pressa"},
}

// detectPriority scans for priority keywords; empty when none matched.
func detectPriority(text, language string) string {
	lower := strings.ToLower(text)
	for _, w := range highPriorityWords[language] {
		if strings.Contains(lower, w) {
			return "high"
		}
	}
	for _, w := range lowPriorityWords[language] {
		if strings.Contains(lower, w) {
			return "low"
		}
	}
	return ""
}
