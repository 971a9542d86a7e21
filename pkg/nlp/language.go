package nlp

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Supported parser languages.
const (
	LangEnglish    = "en"
	LangSpanish    = "es"
	LangPortuguese = "pt"
)

// newDetector builds a lingua detector restricted to the supported
// languages. Restricting the set keeps short-text detection usable.
func newDetector() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.Portuguese).
		Build()
}

// detectLanguage maps text onto a supported language code, defaulting
// to English when detection is inconclusive.
func detectLanguage(detector lingua.LanguageDetector, text string) string {
	if strings.TrimSpace(text) == "" {
		return LangEnglish
	}
	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return LangEnglish
	}
	switch lang {
	case lingua.Spanish:
		return LangSpanish
	case lingua.Portuguese:
		return LangPortuguese
	default:
		return LangEnglish
	}
}

// resolveLanguage honors an explicit language ("en", "es", "pt") and
// auto-detects otherwise.
func resolveLanguage(detector lingua.LanguageDetector, language, text string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case LangEnglish, LangSpanish, LangPortuguese:
		return strings.ToLower(strings.TrimSpace(language))
	default:
		return detectLanguage(detector, text)
	}
}
