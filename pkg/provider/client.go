// Package provider is the outbound client for the messaging provider
// API (message sends, media fetches, group listings).
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// ClientConfig holds the provider connection parameters.
type ClientConfig struct {
	// BaseURL is the provider API root, no trailing slash.
	BaseURL string

	// APIKey is the global key; per-instance keys override it.
	APIKey string

	// RequestTimeout bounds each outbound call (default 10s).
	RequestTimeout time.Duration
}

// Client wraps the provider's HTTP API behind a circuit breaker, so a
// dead provider fails queue items fast instead of stacking up worker
// timeouts.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient creates a new provider client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "provider-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Provider circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  slog.Default().With("component", "provider-client"),
	}
}

// SendTextInput addresses one outbound text message.
type SendTextInput struct {
	InstanceID string
	Number     string
	Text       string

	// QuotedMessageID replies to an existing provider message.
	QuotedMessageID string

	// APIKey / BaseURL override the client defaults for instances with
	// their own credentials.
	APIKey  string
	BaseURL string
}

// SendText posts a text message through the provider.
func (c *Client) SendText(ctx context.Context, in SendTextInput) error {
	body := map[string]any{
		"number": in.Number,
		"textMessage": map[string]any{
			"text": in.Text,
		},
	}
	if in.QuotedMessageID != "" {
		body["options"] = map[string]any{
			"quoted": map[string]any{
				"key": map[string]any{"id": in.QuotedMessageID},
			},
		}
	}

	path := fmt.Sprintf("/message/sendText/%s", in.InstanceID)
	_, err := c.post(ctx, in.BaseURL, path, in.APIKey, body)
	return err
}

// FetchMediaBase64 fetches a message's media content; the inbound
// webhook never carries the bytes, so this second call does.
func (c *Client) FetchMediaBase64(ctx context.Context, instanceID, providerMessageID, apiKey, baseURL string) (string, error) {
	body := map[string]any{
		"message": map[string]any{
			"key": map[string]any{"id": providerMessageID},
		},
	}

	path := fmt.Sprintf("/chat/getBase64/%s", instanceID)
	raw, err := c.post(ctx, baseURL, path, apiKey, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Base64 string `json:"base64"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode media response: %w", err)
	}
	return resp.Base64, nil
}

// GroupInfo is one group from the provider's listing.
type GroupInfo struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Owner    string `json:"owner,omitempty"`
	Desc     string `json:"desc,omitempty"`
	Creation int64  `json:"creation,omitempty"`
}

// FetchAllGroups lists every group the instance participates in, used
// by the group-subject reconciliation sweep.
func (c *Client) FetchAllGroups(ctx context.Context, instanceID, apiKey, baseURL string) ([]GroupInfo, error) {
	path := fmt.Sprintf("/group/fetchAllGroups/%s?getParticipants=false", instanceID)
	raw, err := c.get(ctx, baseURL, path, apiKey)
	if err != nil {
		return nil, err
	}

	var groups []GroupInfo
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode group listing: %w", err)
	}
	return groups, nil
}

func (c *Client) post(ctx context.Context, baseURL, path, apiKey string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, baseURL, path, apiKey, payload)
}

func (c *Client) get(ctx context.Context, baseURL, path, apiKey string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, baseURL, path, apiKey, nil)
}

func (c *Client) do(ctx context.Context, method, baseURL, path, apiKey string, payload []byte) ([]byte, error) {
	base := c.baseURL
	if baseURL != "" {
		base = strings.TrimRight(baseURL, "/")
	}
	key := c.apiKey
	if apiKey != "" {
		key = apiKey
	}

	raw, err := c.breaker.Execute(func() (any, error) {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(reqCtx, method, base+path, body)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", key)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("provider request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read provider response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("provider returned %d for %s %s: %s",
				resp.StatusCode, method, path, truncateBody(data))
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return raw.([]byte), nil
}

func truncateBody(data []byte) string {
	const max = 256
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
