package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/br"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// dateParser extracts date/time expressions per language. English and
// Portuguese ride on the when rule sets; Spanish has no when rules, so
// it uses explicit patterns for the constructs bills and events
// actually use.
type dateParser struct {
	en *when.Parser
	pt *when.Parser
}

func newDateParser() *dateParser {
	enParser := when.New(nil)
	enParser.Add(en.All...)
	enParser.Add(common.All...)

	ptParser := when.New(nil)
	ptParser.Add(br.All...)
	ptParser.Add(common.All...)

	return &dateParser{en: enParser, pt: ptParser}
}

// extract finds the first date/time expression in text. The returned
// string is the matched fragment, so callers can strip it from titles.
// Results are always in the future relative to base (forward-date
// policy).
func (p *dateParser) extract(text, language string, base time.Time) (*time.Time, string) {
	switch language {
	case LangSpanish:
		return extractSpanishDate(text, base)
	case LangPortuguese:
		return p.extractWith(p.pt, text, base)
	default:
		return p.extractWith(p.en, text, base)
	}
}

func (p *dateParser) extractWith(w *when.Parser, text string, base time.Time) (*time.Time, string) {
	r, err := w.Parse(text, base)
	if err != nil || r == nil {
		return nil, ""
	}
	t := forwardDate(r.Time, base)
	return &t, r.Text
}

// forwardDate maps a past result forward: an earlier time today rolls
// to tomorrow, an earlier calendar date rolls to next year.
func forwardDate(t, base time.Time) time.Time {
	if !t.Before(base) {
		return t
	}
	if base.Sub(t) < 24*time.Hour {
		return t.Add(24 * time.Hour)
	}
	return t.AddDate(1, 0, 0)
}

var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var spanishWeekdays = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miércoles": time.Wednesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sábado":    time.Saturday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

var (
	// "de" is frequently dropped in terse bill reminders ("vence 15
	// enero"), so both joints accept it as optional.
	esExplicitDate = regexp.MustCompile(`(?i)\b(?:el\s+)?(\d{1,2})\s+(?:de\s+)?(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)(?:\s+(?:de\s+)?(\d{4}))?`)
	esTime         = regexp.MustCompile(`(?i)\ba\s+las?\s+(\d{1,2})(?::(\d{2}))?\s*(?:(am|pm)|de\s+la\s+(mañana|tarde|noche))?`)
	esWeekdayExpr  = func() *regexp.Regexp {
		names := make([]string, 0, len(spanishWeekdays))
		for name := range spanishWeekdays {
			names = append(names, name)
		}
		return regexp.MustCompile(`(?i)\b(?:el\s+)?(` + strings.Join(names, "|") + `)\b`)
	}()
)

// extractSpanishDate handles the Spanish constructs the parsers need:
// hoy / mañana / pasado mañana, weekday names, "15 de enero [de 2026]",
// and an optional "a las HH[:MM]" time.
func extractSpanishDate(text string, base time.Time) (*time.Time, string) {
	var (
		day      time.Time
		matched  []string
		haveDate bool
	)

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "pasado mañana"):
		day = base.AddDate(0, 0, 2)
		matched = append(matched, "pasado mañana")
		haveDate = true
	case strings.Contains(lower, "mañana") && !esMorningOnly(lower):
		day = base.AddDate(0, 0, 1)
		matched = append(matched, "mañana")
		haveDate = true
	case strings.Contains(lower, "hoy"):
		day = base
		matched = append(matched, "hoy")
		haveDate = true
	}

	if !haveDate {
		if m := esExplicitDate.FindStringSubmatch(text); m != nil {
			dayNum, _ := strconv.Atoi(m[1])
			month := spanishMonths[strings.ToLower(m[2])]
			year := base.Year()
			explicit := m[3] != ""
			if explicit {
				year, _ = strconv.Atoi(m[3])
			}
			day = time.Date(year, month, dayNum, base.Hour(), base.Minute(), 0, 0, base.Location())
			if !explicit && day.Before(base) {
				day = day.AddDate(1, 0, 0)
			}
			matched = append(matched, m[0])
			haveDate = true
		}
	}

	if !haveDate {
		if m := esWeekdayExpr.FindStringSubmatch(text); m != nil {
			target := spanishWeekdays[strings.ToLower(m[1])]
			delta := (int(target) - int(base.Weekday()) + 7) % 7
			if delta == 0 {
				delta = 7
			}
			day = base.AddDate(0, 0, delta)
			matched = append(matched, m[0])
			haveDate = true
		}
	}

	hour, minute, timeText, haveTime := extractSpanishTime(text)
	if !haveDate && !haveTime {
		return nil, ""
	}
	if !haveDate {
		day = base
	}
	if haveTime {
		day = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
		matched = append(matched, timeText)
	}

	t := forwardDate(day, base)
	return &t, strings.Join(matched, "\n")
}

// esMorningOnly reports whether every "mañana" occurrence is the noun
// ("de la mañana" = morning), not the adverb (tomorrow).
func esMorningOnly(lower string) bool {
	rest := lower
	for {
		i := strings.Index(rest, "mañana")
		if i < 0 {
			return true
		}
		prefix := rest[:i]
		if !strings.HasSuffix(strings.TrimRight(prefix, " "), "de la") &&
			!strings.HasSuffix(strings.TrimRight(prefix, " "), "por la") {
			return false
		}
		rest = rest[i+len("mañana"):]
	}
}

func extractSpanishTime(text string) (hour, minute int, matched string, ok bool) {
	m := esTime.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, "", false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, 0, "", false
	}
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return 0, 0, "", false
		}
	}

	meridiem := strings.ToLower(m[3])
	dayPart := strings.ToLower(m[4])
	if hour < 12 && (meridiem == "pm" || dayPart == "tarde" || dayPart == "noche") {
		hour += 12
	}
	return hour, minute, m[0], true
}

// stripDateText removes matched date fragments and dangling
// connectives from title text. The Spanish extractor can return two
// non-adjacent fragments joined by a space, so each is stripped
// separately.
func stripDateText(text, matched string) string {
	if matched == "" {
		return text
	}
	out := text
	for _, fragment := range splitFragments(matched) {
		idx := strings.Index(strings.ToLower(out), strings.ToLower(fragment))
		if idx >= 0 {
			out = out[:idx] + out[idx+len(fragment):]
		}
	}
	for _, connective := range []string{" on ", " at ", " by ", " el ", " às ", " em ", " para "} {
		out = strings.ReplaceAll(out, connective, " ")
	}
	return strings.TrimSpace(strings.Join(strings.Fields(out), " "))
}

// splitFragments undoes the newline join the Spanish extractor uses
// for non-adjacent date and time fragments.
func splitFragments(matched string) []string {
	if matched == "" {
		return nil
	}
	return strings.Split(matched, "\n")
}
