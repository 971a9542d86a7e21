package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Adapter-level sentinel errors.
var (
	// ErrUnresolvableJID flags an identifier with no canonical form.
	ErrUnresolvableJID = errors.New("unresolvable jid")

	// ErrUnknownEventType flags an event the adapter has no handler
	// for. Not a failure at the HTTP level.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrMalformedPayload flags an envelope whose data does not decode
	// into the shape its event type requires.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Envelope is the provider's webhook wrapper. Data stays raw until the
// dispatcher knows which event-specific shape to decode.
type Envelope struct {
	Event       string          `json:"event"`
	Instance    string          `json:"instance"`
	Data        json.RawMessage `json:"data"`
	Destination string          `json:"destination,omitempty"`
	DateTime    string          `json:"date_time,omitempty"`
	Sender      string          `json:"sender,omitempty"`
	ServerURL   string          `json:"server_url,omitempty"`
	APIKey      string          `json:"apikey,omitempty"`
}

// DecodeEnvelope parses a raw webhook body.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode webhook envelope: %w", errors.Join(ErrMalformedPayload, err))
	}
	if env.Event == "" {
		return nil, fmt.Errorf("envelope has no event type: %w", ErrMalformedPayload)
	}
	return &env, nil
}

// NormalizeEventType folds the provider's two spellings
// ("messages.upsert" and "MESSAGES-UPSERT") onto the dotted lowercase
// form the dispatcher switches on.
func NormalizeEventType(eventType string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(eventType), "-", "."))
}

// redactedValue replaces secret material in stored payloads.
const redactedValue = "[REDACTED]"

// secretField reports whether a JSON key carries credential material.
func secretField(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "apikey") ||
		strings.Contains(k, "api_key") ||
		strings.Contains(k, "token") ||
		strings.Contains(k, "secret") ||
		strings.Contains(k, "password")
}

// Redact walks a decoded payload and blanks credential-bearing fields
// in place of their values. Applied to every envelope before it is
// persisted in raw_payload or the recovery bucket.
func Redact(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if secretField(k) {
			out[k] = redactedValue
			continue
		}
		out[k] = redactValue(v)
	}
	return out
}

func redactValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return Redact(vv)
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = redactValue(item)
		}
		return out
	default:
		return v
	}
}

// EnvelopeFromStored rebuilds an envelope from a stored (redacted)
// payload map, the replay path of the recovery sweeper.
func EnvelopeFromStored(payload map[string]any) (*Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode stored payload: %w", err)
	}
	return DecodeEnvelope(raw)
}

// RedactedEnvelope re-encodes an envelope as a generic map with secret
// fields blanked, for storage alongside failures and raw messages.
func RedactedEnvelope(env *Envelope) map[string]any {
	raw, err := json.Marshal(env)
	if err != nil {
		return map[string]any{"event": env.Event, "instance": env.Instance}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"event": env.Event, "instance": env.Instance}
	}
	return Redact(m)
}
