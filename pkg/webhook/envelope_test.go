package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/ent/message"
)

func TestNormalizeJID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "canonical passes through", raw: "5511999999999@s.whatsapp.net", expected: "5511999999999@s.whatsapp.net"},
		{name: "device suffix stripped", raw: "5511999999999:31@s.whatsapp.net", expected: "5511999999999@s.whatsapp.net"},
		{name: "group jid passes through", raw: "12036304@g.us", expected: "12036304@g.us"},
		{name: "surrounding whitespace trimmed", raw: "  a@b  ", expected: "a@b"},
		{name: "bare phone number rejected", raw: "5511999999999", wantErr: true},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "leading at rejected", raw: "@s.whatsapp.net", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jid, err := NormalizeJID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnresolvableJID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, jid)
		})
	}
}

func TestIsGroupJID(t *testing.T) {
	assert.True(t, IsGroupJID("12036304@g.us"))
	assert.False(t, IsGroupJID("5511999999999@s.whatsapp.net"))
}

func TestNormalizeTimestamp(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		ts := NormalizeTimestamp(int64(1724600000))
		assert.Equal(t, time.Unix(1724600000, 0), ts)
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		ts := NormalizeTimestamp(float64(1724600000123))
		assert.Equal(t, time.UnixMilli(1724600000123), ts)
	})

	t.Run("numeric string", func(t *testing.T) {
		ts := NormalizeTimestamp("1724600000")
		assert.Equal(t, time.Unix(1724600000, 0), ts)
	})

	t.Run("garbage becomes now", func(t *testing.T) {
		before := time.Now()
		for _, raw := range []any{nil, "soon", int64(0), int64(-5), true} {
			ts := NormalizeTimestamp(raw)
			assert.False(t, ts.Before(before), "raw %v", raw)
		}
	})
}

func TestNormalizeEventType(t *testing.T) {
	assert.Equal(t, "messages.upsert", NormalizeEventType("MESSAGES-UPSERT"))
	assert.Equal(t, "messages.upsert", NormalizeEventType("messages.upsert"))
	assert.Equal(t, "group.participants.update", NormalizeEventType(" GROUP-PARTICIPANTS-UPDATE "))
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"event":"messages.upsert","instance":"inst-1","data":{"key":{"id":"M1"}}}`))
		require.NoError(t, err)
		assert.Equal(t, "messages.upsert", env.Event)
		assert.Equal(t, "inst-1", env.Instance)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte("not json"))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("missing event type", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"instance":"inst-1"}`))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}

func TestRedact(t *testing.T) {
	payload := map[string]any{
		"event":    "messages.upsert",
		"apikey":   "super-secret-key",
		"Token":    "tok",
		"password": "pw",
		"data": map[string]any{
			"api_key": "nested-secret",
			"text":    "hello",
			"items": []any{
				map[string]any{"access_token": "t2", "id": "x"},
			},
		},
	}

	out := Redact(payload)

	assert.Equal(t, "[REDACTED]", out["apikey"])
	assert.Equal(t, "[REDACTED]", out["Token"])
	assert.Equal(t, "[REDACTED]", out["password"])
	assert.Equal(t, "messages.upsert", out["event"])

	data := out["data"].(map[string]any)
	assert.Equal(t, "[REDACTED]", data["api_key"])
	assert.Equal(t, "hello", data["text"])

	item := data["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "[REDACTED]", item["access_token"])
	assert.Equal(t, "x", item["id"])

	// Original untouched.
	assert.Equal(t, "super-secret-key", payload["apikey"])
}

func TestRedactedEnvelope(t *testing.T) {
	env := &Envelope{
		Event:    "messages.upsert",
		Instance: "inst-1",
		APIKey:   "leaked",
	}
	m := RedactedEnvelope(env)
	assert.Equal(t, "[REDACTED]", m["apikey"])
	assert.Equal(t, "messages.upsert", m["event"])
}

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "single tag", text: "pay rent #tarefa", expected: []string{"tarefa"}},
		{name: "lowercased and deduped", text: "#Compra do mês #compra #evento", expected: []string{"compra", "evento"}},
		{name: "unicode letters", text: "#reunião amanhã", expected: []string{"reunião"}},
		{name: "digits and underscore", text: "#q3_2026 review", expected: []string{"q3_2026"}},
		{name: "no tags", text: "plain message", expected: nil},
		{name: "bare hash ignored", text: "# nothing", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractHashtags(tt.text))
		})
	}
}

func TestMapMessageType(t *testing.T) {
	assert.Equal(t, message.MessageTypeText, mapMessageType("conversation"))
	assert.Equal(t, message.MessageTypeText, mapMessageType("extendedTextMessage"))
	assert.Equal(t, message.MessageTypeText, mapMessageType(""))
	assert.Equal(t, message.MessageTypeImage, mapMessageType("imageMessage"))
	assert.Equal(t, message.MessageTypeAudio, mapMessageType("pttMessage"))
	assert.Equal(t, message.MessageTypeDocument, mapMessageType("documentWithCaptionMessage"))
	assert.Equal(t, message.MessageTypeUnsupported, mapMessageType("somethingNew"))
}
