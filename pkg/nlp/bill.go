package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reflexhq/reflex/pkg/models"
)

var amountPattern = regexp.MustCompile(`(?i)(R\$|US\$|MX\$|\$|€|£)\s*(\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?)|(\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?)\s*(usd|eur|gbp|brl|mxn|reais|reales|dólares|dolares|euros)\b`)

var currencySymbols = map[string]string{
	"R$":  "BRL",
	"US$": "USD",
	"MX$": "MXN",
	"€":   "EUR",
	"£":   "GBP",
}

var currencyCodes = map[string]string{
	"usd":     "USD",
	"eur":     "EUR",
	"gbp":     "GBP",
	"brl":     "BRL",
	"mxn":     "MXN",
	"reais":   "BRL",
	"reales":  "MXN",
	"dólares": "USD",
	"dolares": "USD",
	"euros":   "EUR",
}

var dueMarkers = []string{"due", "vence", "vencimiento", "vencimento"}

// vendorLeadWords are payment verbs and articles that precede the real
// vendor name ("pagar luz CFE" -> "CFE" after the category word drops
// too).
var vendorLeadWords = map[string]bool{
	"pay": true, "pagar": true, "paga": true, "pague": true, "pago": true,
	"pagamento": true,
	"the": true, "el": true, "la": true, "los": true, "las": true,
	"de": true, "del": true, "da": true, "do": true, "o": true, "a": true,
}

var billCategories = map[string][]string{
	"utilities":    {"electricity", "electric", "water", "gas", "luz", "agua", "água", "energía", "energia", "internet", "phone", "teléfono", "telefono", "telefone"},
	"housing":      {"rent", "renta", "alquiler", "aluguel", "mortgage", "hipoteca", "condominio", "condomínio"},
	"insurance":    {"insurance", "seguro"},
	"subscription": {"netflix", "spotify", "subscription", "suscripción", "suscripcion", "assinatura"},
	"groceries":    {"groceries", "supermarket", "supermercado", "mercado"},
}

// parseBill extracts one or more vendor+amount pairs. Several pairs
// produce a multiple_bills result with a computed total; zero pairs
// fail the parse.
func parseBill(dp *dateParser, text, language string, cfg models.RuleConfig, now time.Time) *ParseResult {
	result := &ParseResult{Type: TypeBill, Language: language}
	if strings.TrimSpace(text) == "" {
		result.Bill = &BillData{}
		result.ErrorCode = ErrCodeEmptyText
		return result
	}

	defaultCurrency := cfg.DefaultCurrency
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}

	// A due marker anywhere applies to every pair on the message.
	var due *time.Time
	lower := strings.ToLower(text)
	for _, marker := range dueMarkers {
		if idx := strings.Index(lower, marker); idx >= 0 {
			due, _ = dp.extract(text[idx:], language, now)
			break
		}
	}

	var items []BillData
	for _, line := range strings.Split(text, "\n") {
		items = append(items, billsInLine(line, defaultCurrency, due)...)
	}
	for i := range items {
		items[i].Priority = billPriority(items[i].DueDate, now)
	}

	switch len(items) {
	case 0:
		result.Bill = &BillData{Currency: defaultCurrency, DueDate: due}
		result.ErrorCode = ErrCodeNoBills
		return result
	case 1:
		result.Bill = &items[0]
		result.Success = true
		result.Confidence = billConfidence(items[0], due)
		return result
	default:
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Amount)
		}
		result.Type = TypeMultipleBills
		result.Bills = &MultiBillData{Items: items, Total: total}
		result.Success = true
		result.Confidence = 0.8
		return result
	}
}

// billsInLine pairs each amount on a line with the vendor text
// preceding it.
func billsInLine(line, defaultCurrency string, due *time.Time) []BillData {
	matches := amountPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	var items []BillData
	prevEnd := 0
	for _, m := range matches {
		sub := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return line[m[2*i]:m[2*i+1]]
		}

		currency := defaultCurrency
		var amountText string
		if sub(2) != "" {
			amountText = sub(2)
			if code, ok := currencySymbols[strings.ToUpper(sub(1))]; ok {
				currency = code
			}
		} else {
			amountText = sub(3)
			if code, ok := currencyCodes[strings.ToLower(sub(4))]; ok {
				currency = code
			}
		}

		amount, ok := parseAmount(amountText)
		if !ok || amount.IsZero() {
			prevEnd = m[1]
			continue
		}

		// Category detection reads the raw segment: cleaning may strip
		// the very keyword that names the category ("luz" in
		// "pagar luz CFE").
		segment := line[prevEnd:m[0]]
		vendor := cleanVendor(segment)
		prevEnd = m[1]
		if vendor == "" {
			segment = line[m[1]:]
			vendor = cleanVendor(segment)
		}
		if vendor == "" {
			continue
		}

		items = append(items, BillData{
			Vendor:   vendor,
			Amount:   amount,
			Currency: currency,
			DueDate:  due,
			Category: detectCategory(segment),
		})
	}
	return items
}

// parseAmount handles both decimal conventions: when comma and period
// are mixed the last separator is the decimal mark; a lone separator
// followed by exactly two digits is decimal, otherwise thousands.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	normalized := s
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			normalized = strings.ReplaceAll(s, ".", "")
			normalized = strings.Replace(normalized, ",", ".", 1)
		} else {
			normalized = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if len(s)-lastComma-1 == 2 {
			normalized = strings.Replace(s, ",", ".", 1)
		} else {
			normalized = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if len(s)-lastDot-1 != 2 {
			normalized = strings.ReplaceAll(s, ".", "")
		}
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// cleanVendor strips bullets, separators, due-marker residue, and
// leading verb/category words from vendor text. Lead words only drop
// while another token remains, so single-word vendors like "luz" or
// "aluguel" survive.
func cleanVendor(s string) string {
	out := strings.TrimSpace(s)
	out = strings.Trim(out, "-–*•:,.;")
	lower := strings.ToLower(out)
	for _, marker := range dueMarkers {
		if idx := strings.Index(lower, marker); idx >= 0 {
			out = out[:idx]
			break
		}
	}
	out = strings.TrimSpace(strings.Trim(out, "-–*•:,.;"))

	fields := strings.Fields(out)
	for len(fields) > 1 && droppableLeadWord(fields[0]) {
		fields = fields[1:]
	}
	out = strings.Join(fields, " ")

	if len(out) > 60 {
		out = strings.TrimSpace(out[:60])
	}
	return capitalize(out)
}

func droppableLeadWord(word string) bool {
	lower := strings.ToLower(strings.Trim(word, ",.:;"))
	if vendorLeadWords[lower] {
		return true
	}
	for _, keywords := range billCategories {
		for _, kw := range keywords {
			if lower == kw {
				return true
			}
		}
	}
	return false
}

func detectCategory(vendor string) string {
	lower := strings.ToLower(vendor)
	for category, keywords := range billCategories {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}
	return ""
}

// dueSoonWindow is how close a due date must be for a bill to be
// flagged high priority.
const dueSoonWindow = 7 * 24 * time.Hour

func billPriority(due *time.Time, now time.Time) string {
	if due != nil && due.Sub(now) <= dueSoonWindow {
		return "high"
	}
	return "medium"
}

func billConfidence(item BillData, due *time.Time) float64 {
	confidence := 0.6
	if due != nil {
		confidence += 0.2
	}
	if item.Category != "" {
		confidence += 0.1
	}
	if item.Currency != "" {
		confidence += 0.1
	}
	return confidence
}
