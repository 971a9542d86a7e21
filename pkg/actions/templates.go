// Package actions executes the rule-driven side of queue items:
// entity creation, status updates, and outbound messages.
package actions

import (
	"regexp"
	"time"

	"github.com/reflexhq/reflex/pkg/nlp"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// RenderTemplate substitutes the known placeholders ({{sender}},
// {{content}}, {{reaction}}, {{chat}}, {{date}}, {{rule_name}}).
// Unknown placeholders stay literal so a typo is visible instead of
// silently blank.
func RenderTemplate(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// confirmation templates per language and result type

var taskConfirmations = map[string]string{
	nlp.LangEnglish:    "✅ Task created: %s",
	nlp.LangSpanish:    "✅ Tarea creada: %s",
	nlp.LangPortuguese: "✅ Tarefa criada: %s",
}

var taskUpdatedConfirmations = map[string]string{
	nlp.LangEnglish:    "🔄 Task updated: %s",
	nlp.LangSpanish:    "🔄 Tarea actualizada: %s",
	nlp.LangPortuguese: "🔄 Tarefa atualizada: %s",
}

var eventConfirmations = map[string]string{
	nlp.LangEnglish:    "📅 Event scheduled: %s on %s",
	nlp.LangSpanish:    "📅 Evento agendado: %s el %s",
	nlp.LangPortuguese: "📅 Evento agendado: %s em %s",
}

var billConfirmations = map[string]string{
	nlp.LangEnglish:    "💳 Bill recorded: %s — %s %s",
	nlp.LangSpanish:    "💳 Cuenta registrada: %s — %s %s",
	nlp.LangPortuguese: "💳 Conta registrada: %s — %s %s",
}

var multiBillConfirmations = map[string]string{
	nlp.LangEnglish:    "💳 %d bills recorded, total %s",
	nlp.LangSpanish:    "💳 %d cuentas registradas, total %s",
	nlp.LangPortuguese: "💳 %d contas registradas, total %s",
}

var noteConfirmations = map[string]string{
	nlp.LangEnglish:    "📝 Note saved: %s",
	nlp.LangSpanish:    "📝 Nota guardada: %s",
	nlp.LangPortuguese: "📝 Nota salva: %s",
}

var statusConfirmations = map[string]string{
	nlp.LangEnglish:    "🔄 Task moved to %s: %s",
	nlp.LangSpanish:    "🔄 Tarea movida a %s: %s",
	nlp.LangPortuguese: "🔄 Tarefa movida para %s: %s",
}

// parse-failure help templates per parser and language; shown with an
// example so the user can fix the message format.
var parseHelp = map[string]map[string]string{
	nlp.ParserTask: {
		nlp.LangEnglish:    "🤔 I couldn't make a task out of that. Try: \"Buy milk tomorrow #errands\"",
		nlp.LangSpanish:    "🤔 No pude crear una tarea con eso. Prueba: \"Comprar leche mañana #pendientes\"",
		nlp.LangPortuguese: "🤔 Não consegui criar uma tarefa com isso. Tente: \"Comprar leite amanhã #pendências\"",
	},
	nlp.ParserCalendar: {
		nlp.LangEnglish:    "🤔 I need a date or time for the event. Try: \"Team sync tomorrow at 3pm\"",
		nlp.LangSpanish:    "🤔 Necesito una fecha u hora para el evento. Prueba: \"Reunión mañana a las 3pm\"",
		nlp.LangPortuguese: "🤔 Preciso de uma data ou hora para o evento. Tente: \"Reunião amanhã às 15h\"",
	},
	nlp.ParserBill: {
		nlp.LangEnglish:    "🤔 I couldn't find a vendor and amount. Try: \"Electricity $45.20 due friday\"",
		nlp.LangSpanish:    "🤔 No encontré un proveedor y un monto. Prueba: \"Luz $45.20 vence viernes\"",
		nlp.LangPortuguese: "🤔 Não encontrei um fornecedor e um valor. Tente: \"Luz R$45,20 vence sexta\"",
	},
	nlp.ParserNote: {
		nlp.LangEnglish:    "🤔 I couldn't save that note — it looks empty.",
		nlp.LangSpanish:    "🤔 No pude guardar esa nota — parece vacía.",
		nlp.LangPortuguese: "🤔 Não consegui salvar essa nota — parece vazia.",
	},
}

// localized picks a language variant, defaulting to English.
func localized(templates map[string]string, language string) string {
	if t, ok := templates[language]; ok {
		return t
	}
	return templates[nlp.LangEnglish]
}

// helpMessage returns the localized parse-failure help for a parser.
func helpMessage(parserType, language string) string {
	byLang, ok := parseHelp[parserType]
	if !ok {
		byLang = parseHelp[nlp.ParserTask]
	}
	return localized(byLang, language)
}

// formatDate renders a timestamp for user-facing confirmations.
func formatDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 15:04")
}
