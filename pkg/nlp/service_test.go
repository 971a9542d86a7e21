package nlp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/pkg/models"
)

// base is a Tuesday morning, so weekday and "tomorrow" math is stable.
var base = time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

var (
	datesOnce   sync.Once
	sharedDates *dateParser
)

// testDates shares one dateParser across tests; building the when rule
// chains repeatedly adds nothing.
func testDates() *dateParser {
	datesOnce.Do(func() { sharedDates = newDateParser() })
	return sharedDates
}

func TestParseTask(t *testing.T) {
	dp := testDates()

	t.Run("indicator and date stripped from title", func(t *testing.T) {
		result := parseTask(dp, "todo: buy milk tomorrow", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "Buy milk", result.Task.Title)
		require.NotNil(t, result.Task.DueDate)
		assert.Equal(t, base.AddDate(0, 0, 1).Day(), result.Task.DueDate.Day())
	})

	t.Run("priority tags and assignee", func(t *testing.T) {
		result := parseTask(dp, "urgent: call the plumber @joao #casa #casa", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "high", result.Task.Priority)
		assert.Equal(t, []string{"casa"}, result.Task.Tags)
		assert.Equal(t, "joao", result.Task.Assignee)
	})

	t.Run("second line becomes description", func(t *testing.T) {
		result := parseTask(dp, "fix the fence\nthe back gate hinge is loose", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "Fix the fence", result.Task.Title)
		assert.Equal(t, "the back gate hinge is loose", result.Task.Description)
	})

	t.Run("config defaults fill gaps only", func(t *testing.T) {
		cfg := models.RuleConfig{
			DefaultPriority: "low",
			DefaultTags:     []string{"family"},
			DefaultDueDays:  3,
		}
		result := parseTask(dp, "water the plants", LangEnglish, cfg, base)
		require.True(t, result.Success)
		assert.Equal(t, "low", result.Task.Priority)
		assert.Equal(t, []string{"family"}, result.Task.Tags)
		require.NotNil(t, result.Task.DueDate)
		assert.Equal(t, base.AddDate(0, 0, 3).Day(), result.Task.DueDate.Day())

		extracted := parseTask(dp, "urgent water the plants #garden", LangEnglish, cfg, base)
		assert.Equal(t, "high", extracted.Task.Priority)
		assert.Equal(t, []string{"garden"}, extracted.Task.Tags)
	})

	t.Run("portuguese indicator", func(t *testing.T) {
		result := parseTask(dp, "tarefa: pagar aluguel", LangPortuguese, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "Pagar aluguel", result.Task.Title)
		assert.Equal(t, "medium", result.Task.Priority)
	})

	t.Run("empty text fails", func(t *testing.T) {
		result := parseTask(dp, "   ", LangEnglish, models.RuleConfig{}, base)
		assert.False(t, result.Success)
		assert.Equal(t, ErrCodeEmptyText, result.ErrorCode)
	})

	t.Run("markup-only text fails with missing title", func(t *testing.T) {
		result := parseTask(dp, "#tag @someone", LangEnglish, models.RuleConfig{}, base)
		assert.False(t, result.Success)
		assert.Equal(t, ErrCodeMissingTitle, result.ErrorCode)
	})
}

func TestParseCalendar(t *testing.T) {
	dp := testDates()

	t.Run("datetime required", func(t *testing.T) {
		result := parseCalendar(dp, "team sync", LangEnglish, models.RuleConfig{}, base)
		assert.False(t, result.Success)
		assert.Equal(t, ErrCodeMissingDateTime, result.ErrorCode)
		// Partial data survives for user feedback.
		assert.Equal(t, "Team sync", result.Event.Title)
	})

	t.Run("tomorrow afternoon", func(t *testing.T) {
		result := parseCalendar(dp, "dentist tomorrow at 3pm", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "Dentist", result.Event.Title)
		assert.Equal(t, base.AddDate(0, 0, 1).Day(), result.Event.DateTime.Day())
		assert.Equal(t, 15, result.Event.DateTime.Hour())
		assert.Equal(t, 60, result.Event.DurationMinutes)
	})

	t.Run("videocall keyword wins over location", func(t *testing.T) {
		result := parseCalendar(dp, "planning tomorrow at 10am on zoom", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, VideocallLocation, result.Event.Location)
	})

	t.Run("recurrence and duration default", func(t *testing.T) {
		cfg := models.RuleConfig{DefaultDurationMinutes: 30}
		result := parseCalendar(dp, "standup every day tomorrow at 9am", LangEnglish, cfg, base)
		require.True(t, result.Success)
		assert.Equal(t, "daily", result.Event.Recurrence)
		assert.Equal(t, 30, result.Event.DurationMinutes)
	})

	t.Run("attendees from mentions", func(t *testing.T) {
		result := parseCalendar(dp, "review tomorrow at 2pm @ana @rui", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, []string{"ana", "rui"}, result.Event.Attendees)
	})
}

func TestParseBill(t *testing.T) {
	dp := testDates()

	t.Run("single bill with symbol currency", func(t *testing.T) {
		result := parseBill(dp, "aluguel R$ 1.500,00", LangPortuguese, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, TypeBill, result.Type)
		assert.Equal(t, "Aluguel", result.Bill.Vendor)
		assert.Equal(t, "1500", result.Bill.Amount.String())
		assert.Equal(t, "BRL", result.Bill.Currency)
		assert.Equal(t, "housing", result.Bill.Category)
	})

	t.Run("currency code after amount", func(t *testing.T) {
		result := parseBill(dp, "internet 49.90 usd", LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		assert.Equal(t, "USD", result.Bill.Currency)
		assert.Equal(t, "49.9", result.Bill.Amount.String())
		assert.Equal(t, "utilities", result.Bill.Category)
	})

	t.Run("default currency from config", func(t *testing.T) {
		cfg := models.RuleConfig{DefaultCurrency: "BRL"}
		result := parseBill(dp, "mercado $ 230", LangPortuguese, cfg, base)
		require.True(t, result.Success)
		// The bare $ sign carries no code, so the config default holds.
		assert.Equal(t, "BRL", result.Bill.Currency)
	})

	t.Run("due marker applies to every line", func(t *testing.T) {
		text := "contas due tomorrow\nluz R$ 120,50\nagua R$ 80,00"
		result := parseBill(dp, text, LangEnglish, models.RuleConfig{}, base)
		require.True(t, result.Success)
		require.Equal(t, TypeMultipleBills, result.Type)
		require.Len(t, result.Bills.Items, 2)
		assert.Equal(t, "200.5", result.Bills.Total.String())
		for _, item := range result.Bills.Items {
			require.NotNil(t, item.DueDate)
			assert.Equal(t, base.AddDate(0, 0, 1).Day(), item.DueDate.Day())
		}
	})

	t.Run("payment verb and category word stripped from vendor", func(t *testing.T) {
		cfg := models.RuleConfig{DefaultCurrency: "MXN"}
		janBase := time.Date(2027, 1, 10, 9, 0, 0, 0, time.UTC)
		result := parseBill(dp, "Pagar luz CFE $890 vence 15 enero", LangSpanish, cfg, janBase)
		require.True(t, result.Success)
		assert.Equal(t, "CFE", result.Bill.Vendor)
		assert.Equal(t, "890", result.Bill.Amount.String())
		assert.Equal(t, "MXN", result.Bill.Currency)
		assert.Equal(t, "utilities", result.Bill.Category)
		require.NotNil(t, result.Bill.DueDate)
		assert.Equal(t, time.January, result.Bill.DueDate.Month())
		assert.Equal(t, 15, result.Bill.DueDate.Day())
		assert.Equal(t, janBase.Year(), result.Bill.DueDate.Year())
		assert.Equal(t, "high", result.Bill.Priority)
	})

	t.Run("distant due date keeps medium priority", func(t *testing.T) {
		cfg := models.RuleConfig{DefaultCurrency: "MXN"}
		result := parseBill(dp, "Pagar luz CFE $890 vence 15 enero", LangSpanish, cfg, base)
		require.True(t, result.Success)
		require.NotNil(t, result.Bill.DueDate)
		assert.Equal(t, base.Year()+1, result.Bill.DueDate.Year())
		assert.Equal(t, "medium", result.Bill.Priority)
	})

	t.Run("no amounts fails", func(t *testing.T) {
		result := parseBill(dp, "remember the bills", LangEnglish, models.RuleConfig{}, base)
		assert.False(t, result.Success)
		assert.Equal(t, ErrCodeNoBills, result.ErrorCode)
	})

	t.Run("amount without vendor skipped", func(t *testing.T) {
		result := parseBill(dp, "$50", LangEnglish, models.RuleConfig{}, base)
		assert.False(t, result.Success)
		assert.Equal(t, ErrCodeNoBills, result.ErrorCode)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "1.500,00", expected: "1500"},
		{in: "1,500.00", expected: "1500"},
		{in: "49,90", expected: "49.9"},
		{in: "49.90", expected: "49.9"},
		{in: "1.500", expected: "1500"},
		{in: "1,500", expected: "1500"},
		{in: "230", expected: "230"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			amount, ok := parseAmount(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestParseNote(t *testing.T) {
	t.Run("first line titles the note", func(t *testing.T) {
		result := parseNote("wifi password\nguest: hunter2 #casa", LangEnglish, models.RuleConfig{})
		require.True(t, result.Success)
		assert.Equal(t, "Wifi password", result.Note.Title)
		assert.Equal(t, "guest: hunter2 #casa", result.Note.Content)
		assert.Equal(t, []string{"casa"}, result.Note.Tags)
	})

	t.Run("single line doubles as content", func(t *testing.T) {
		result := parseNote("gate code 4412", LangEnglish, models.RuleConfig{})
		require.True(t, result.Success)
		assert.Equal(t, "gate code 4412", result.Note.Content)
	})
}

func TestExtractSpanishDate(t *testing.T) {
	t.Run("manana with time of day", func(t *testing.T) {
		got, matched := extractSpanishDate("reunión mañana a las 3 de la tarde", base)
		require.NotNil(t, got)
		assert.Equal(t, base.AddDate(0, 0, 1).Day(), got.Day())
		assert.Equal(t, 15, got.Hour())
		assert.NotEmpty(t, matched)
	})

	t.Run("de la manana is morning not tomorrow", func(t *testing.T) {
		got, _ := extractSpanishDate("cita el viernes a las 9 de la mañana", base)
		require.NotNil(t, got)
		assert.Equal(t, time.Friday, got.Weekday())
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("explicit date rolls forward without year", func(t *testing.T) {
		got, _ := extractSpanishDate("pagar el 15 de enero", base)
		require.NotNil(t, got)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
		assert.Equal(t, base.Year()+1, got.Year())
	})

	t.Run("explicit date without de", func(t *testing.T) {
		got, _ := extractSpanishDate("vence 15 enero", base)
		require.NotNil(t, got)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
		assert.Equal(t, base.Year()+1, got.Year())
	})

	t.Run("explicit year kept", func(t *testing.T) {
		got, _ := extractSpanishDate("entrega el 3 de octubre de 2026", base)
		require.NotNil(t, got)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.October, got.Month())
	})

	t.Run("no date expression", func(t *testing.T) {
		got, matched := extractSpanishDate("comprar leche", base)
		assert.Nil(t, got)
		assert.Empty(t, matched)
	})
}

func TestForwardDate(t *testing.T) {
	earlierToday := base.Add(-2 * time.Hour)
	assert.Equal(t, earlierToday.Add(24*time.Hour), forwardDate(earlierToday, base))

	lastMonth := base.AddDate(0, -1, 0)
	assert.Equal(t, lastMonth.AddDate(1, 0, 0), forwardDate(lastMonth, base))

	future := base.Add(time.Hour)
	assert.Equal(t, future, forwardDate(future, base))
}

type captureObserver struct {
	parserType string
	language   string
	success    bool
}

func (o *captureObserver) ObserveParse(parserType, language string, success bool, _ time.Duration) {
	o.parserType = parserType
	o.language = language
	o.success = success
}

func TestServiceParse(t *testing.T) {
	obs := &captureObserver{}
	svc := NewService(obs)
	ctx := context.Background()

	t.Run("explicit language skips detection", func(t *testing.T) {
		result, err := svc.Parse(ctx, "tarefa: pagar aluguel", "task", "pt", models.RuleConfig{})
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, LangPortuguese, result.Language)
		assert.Equal(t, "task", obs.parserType)
		assert.True(t, obs.success)
	})

	t.Run("auto-detects spanish", func(t *testing.T) {
		result, err := svc.Parse(ctx, "recordatorio: llamar al médico mañana por la tarde", "task", "auto", models.RuleConfig{})
		require.NoError(t, err)
		assert.Equal(t, LangSpanish, result.Language)
	})

	t.Run("unknown parser type", func(t *testing.T) {
		_, err := svc.Parse(ctx, "anything", "sentiment", "en", models.RuleConfig{})
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Parse(cancelled, "text", "task", "en", models.RuleConfig{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestResolveLanguage(t *testing.T) {
	detector := newDetector()
	assert.Equal(t, LangSpanish, resolveLanguage(detector, "ES", "whatever"))
	assert.Equal(t, LangEnglish, resolveLanguage(detector, "", "please remember to bring the documents tomorrow"))
	assert.Equal(t, LangPortuguese, resolveLanguage(detector, "auto", "não esquecer de pagar o condomínio amanhã"))
	assert.Equal(t, LangEnglish, resolveLanguage(detector, "fr", "the detector only narrows to supported languages"))
}
