package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reflexhq/reflex/pkg/nlp"
)

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{
		"sender":   "ana@s.whatsapp.net",
		"content":  "comprar leite",
		"reaction": "✅",
	}

	t.Run("substitutes known placeholders", func(t *testing.T) {
		out := RenderTemplate("{{sender}} reacted {{reaction}} to: {{content}}", vars)
		assert.Equal(t, "ana@s.whatsapp.net reacted ✅ to: comprar leite", out)
	})

	t.Run("unknown placeholder stays literal", func(t *testing.T) {
		out := RenderTemplate("hello {{nobody}}", vars)
		assert.Equal(t, "hello {{nobody}}", out)
	})

	t.Run("no placeholders", func(t *testing.T) {
		assert.Equal(t, "plain text", RenderTemplate("plain text", vars))
	})
}

func TestLocalized(t *testing.T) {
	assert.Equal(t, "✅ Tarefa criada: %s", localized(taskConfirmations, nlp.LangPortuguese))
	assert.Equal(t, "✅ Tarea creada: %s", localized(taskConfirmations, nlp.LangSpanish))
	// Unknown languages fall back to English.
	assert.Equal(t, "✅ Task created: %s", localized(taskConfirmations, "de"))
}

func TestHelpMessage(t *testing.T) {
	assert.Contains(t, helpMessage(nlp.ParserCalendar, nlp.LangPortuguese), "data ou hora")
	assert.Contains(t, helpMessage(nlp.ParserBill, nlp.LangEnglish), "vendor and amount")
	// Unknown parsers get the task help.
	assert.Contains(t, helpMessage("sentiment", nlp.LangEnglish), "task")
}
