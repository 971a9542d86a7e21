package nlp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pemistahl/lingua-go"

	"github.com/reflexhq/reflex/pkg/models"
)

// ParseObserver receives one observation per parse, for metrics.
type ParseObserver interface {
	ObserveParse(parserType, language string, success bool, duration time.Duration)
}

// Service dispatches text to the per-type parsers with language
// detection. Construction is expensive (the lingua models load
// lazily but the detector itself is shared), so one Service serves all
// workers.
type Service struct {
	detector lingua.LanguageDetector
	dates    *dateParser
	observer ParseObserver
}

// NewService creates a new Service. observer may be nil.
func NewService(observer ParseObserver) *Service {
	return &Service{
		detector: newDetector(),
		dates:    newDateParser(),
		observer: observer,
	}
}

// Parse runs one parser over text. language is "en", "es", "pt", or
// "auto"/empty for detection; cfg supplies rule-level defaults that
// fill only fields the text did not provide.
func (s *Service) Parse(ctx context.Context, text, parserType, language string, cfg models.RuleConfig) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	lang := resolveLanguage(s.detector, language, text)
	now := time.Now()

	var result *ParseResult
	switch parserType {
	case ParserTask:
		result = parseTask(s.dates, text, lang, cfg, now)
	case ParserCalendar:
		result = parseCalendar(s.dates, text, lang, cfg, now)
	case ParserBill:
		result = parseBill(s.dates, text, lang, cfg, now)
	case ParserNote:
		result = parseNote(text, lang, cfg)
	default:
		return nil, fmt.Errorf("unknown parser type %q", parserType)
	}

	elapsed := time.Since(start)
	slog.Info("Parsed message text",
		"parser_type", parserType,
		"language", lang,
		"success", result.Success,
		"confidence", result.Confidence,
		"error_code", result.ErrorCode,
		"processing_ms", elapsed.Milliseconds())
	if s.observer != nil {
		s.observer.ObserveParse(parserType, lang, result.Success, elapsed)
	}
	return result, nil
}
