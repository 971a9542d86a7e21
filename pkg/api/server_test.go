package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflexhq/reflex/pkg/database"
	"github.com/reflexhq/reflex/pkg/rules"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/pkg/webhook"
	"github.com/reflexhq/reflex/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a full server over an isolated test schema.
func newTestServer(t *testing.T, webhookSecret string) (*gin.Engine, *database.Client) {
	t.Helper()
	client := util.NewTestClient(t)

	messaging := services.NewMessagingService(client.Client)
	queueSvc := services.NewQueueService(client.Client, 24*time.Hour, 5*time.Minute)
	recovery := services.NewRecoveryService(client.Client, 10*time.Minute)
	ruleSvc := services.NewRuleService(client.Client)
	adapter := webhook.NewAdapter(messaging, queueSvc, recovery, nil, 0)
	engine := rules.NewEngine(ruleSvc, rules.NewCache(5*time.Minute))

	srv := NewServer(Deps{
		DB:            client,
		Adapter:       adapter,
		Rules:         ruleSvc,
		Engine:        engine,
		Queue:         queueSvc,
		Changes:       services.NewChangeService(client.Client),
		Recovery:      recovery,
		Messaging:     messaging,
		Events:        services.NewEventService(client.Client),
		WebhookSecret: webhookSecret,
	})
	return srv.Router(), client
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(router *gin.Engine, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func messageUpsertBody(t *testing.T, messageID, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event":    "messages.upsert",
		"instance": "inst-1",
		"data": map[string]any{
			"key": map[string]any{
				"remoteJid": "5511999999999@s.whatsapp.net",
				"fromMe":    false,
				"id":        messageID,
			},
			"pushName":         "Ana",
			"message":          map[string]any{"conversation": text},
			"messageTimestamp": 1724600000,
		},
	})
	require.NoError(t, err)
	return body
}

func createInstance(t *testing.T, client *database.Client) {
	t.Helper()
	_, err := client.Instance.Create().
		SetID("inst-1").
		SetOwnerJid("owner@s.whatsapp.net").
		Save(context.Background())
	require.NoError(t, err)
}

func TestWebhook_SignatureVerification(t *testing.T) {
	router, client := newTestServer(t, "topsecret")
	createInstance(t, client)
	body := messageUpsertBody(t, "SIG-1", "hello")

	t.Run("missing signature rejected", func(t *testing.T) {
		w := postJSON(router, "/webhook/inst-1", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signature rejected", func(t *testing.T) {
		w := postJSON(router, "/webhook/inst-1", body, map[string]string{
			"X-Webhook-Signature": sign("wrong-secret", body),
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid signature accepted", func(t *testing.T) {
		w := postJSON(router, "/webhook/inst-1", body, map[string]string{
			"X-Webhook-Signature": sign("topsecret", body),
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sha256 prefix accepted", func(t *testing.T) {
		w := postJSON(router, "/webhook/inst-1", body, map[string]string{
			"X-Webhook-Signature": "sha256=" + sign("topsecret", body),
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWebhook_MessagesUpsertStoresMessage(t *testing.T) {
	router, client := newTestServer(t, "")
	createInstance(t, client)
	ctx := context.Background()

	w := postJSON(router, "/webhook/inst-1", messageUpsertBody(t, "MSG-1", "hello world"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	messaging := services.NewMessagingService(client.Client)
	msg, err := messaging.GetMessageByProviderID(ctx, "MSG-1", "inst-1")
	require.NoError(t, err)
	assert.Equal(t, "hello world", msg.Content)
	assert.Equal(t, "5511999999999@s.whatsapp.net", msg.ChatID)
}

func TestWebhook_FailuresStillAnswer200(t *testing.T) {
	router, client := newTestServer(t, "")
	// No instance row: the message insert fails on its FK and lands in
	// the recovery bucket, but the provider still sees 200.
	w := postJSON(router, "/webhook/ghost-instance", messageUpsertBody(t, "MSG-2", "hi"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	recovery := services.NewRecoveryService(client.Client, time.Minute)
	entries, err := recovery.ListUnresolved(context.Background(), "", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestWebhook_UndecodableBodyIgnored(t *testing.T) {
	router, _ := newTestServer(t, "")
	w := postJSON(router, "/webhook/inst-1", []byte("not json"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestRules_CRUD(t *testing.T) {
	router, _ := newTestServer(t, "")

	create := func(name, trigger string) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]any{
			"rule_name":     name,
			"trigger_type":  "reaction",
			"trigger_value": trigger,
			"action_type":   "create_task",
			"created_by":    "owner@s.whatsapp.net",
		})
		require.NoError(t, err)
		return postJSON(router, "/rules", body, nil)
	}

	w := create("task on check", "✅")
	require.Equal(t, http.StatusCreated, w.Code)
	var created RuleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.RuleID)
	assert.True(t, created.Active)

	t.Run("duplicate active trigger conflicts", func(t *testing.T) {
		w := create("second rule same trigger", "✅")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("list includes the rule", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rules", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), created.RuleID)
	})

	t.Run("update renames", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"rule_name": "renamed"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/rules/"+created.RuleID, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var updated RuleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "renamed", updated.RuleName)
	})

	t.Run("delete then get 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/rules/"+created.RuleID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/rules/"+created.RuleID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing rule name rejected", func(t *testing.T) {
		w := create("", "🔥")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"event":"messages.upsert"}`)
	assert.True(t, validSignature("s3cret", body, sign("s3cret", body)))
	assert.False(t, validSignature("s3cret", body, sign("other", body)))
	assert.False(t, validSignature("s3cret", body, "zz-not-hex"))
}
