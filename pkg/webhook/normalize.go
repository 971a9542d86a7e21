package webhook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeJID canonicalizes a provider identifier. Canonical JIDs
// contain "@"; device suffixes ("1234:31@s.whatsapp.net") are
// stripped. An ID without "@" is unresolvable and rejected — no
// heuristic matching.
func NormalizeJID(raw string) (string, error) {
	jid := strings.TrimSpace(raw)
	if jid == "" {
		return "", fmt.Errorf("jid is empty: %w", ErrUnresolvableJID)
	}
	at := strings.IndexByte(jid, '@')
	if at < 1 {
		return "", fmt.Errorf("jid %q has no canonical form: %w", raw, ErrUnresolvableJID)
	}

	local, domain := jid[:at], jid[at+1:]
	if colon := strings.IndexByte(local, ':'); colon >= 0 {
		local = local[:colon]
	}
	return local + "@" + domain, nil
}

// IsGroupJID reports whether a canonical JID addresses a group chat.
func IsGroupJID(jid string) bool {
	return strings.HasSuffix(jid, "@g.us")
}

// NormalizeTimestamp maps the provider's loosely typed timestamps onto
// a valid time: values above 10^12 are epoch milliseconds, above 10^9
// epoch seconds, anything else (zero, negative, absent, garbage)
// becomes now. Never an invalid date.
func NormalizeTimestamp(raw any) time.Time {
	n, ok := asInt64(raw)
	switch {
	case !ok:
		return time.Now()
	case n > 1_000_000_000_000:
		return time.UnixMilli(n)
	case n > 1_000_000_000:
		return time.Unix(n, 0)
	default:
		return time.Now()
	}
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
