package provider

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reflexhq/reflex/pkg/services"
)

// Service sends outbound messages with per-instance credential
// resolution. Nil-safe: all methods are no-ops when service is nil, so
// deployments without a provider configured still process rules — they
// just skip confirmations.
type Service struct {
	client    *Client
	messaging *services.MessagingService
	logger    *slog.Logger
}

// NewService creates a new provider Service. Returns nil when no base
// URL is configured.
func NewService(cfg ClientConfig, messaging *services.MessagingService) *Service {
	if cfg.BaseURL == "" {
		return nil
	}
	return &Service{
		client:    NewClient(cfg),
		messaging: messaging,
		logger:    slog.Default().With("component", "provider-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, messaging *services.MessagingService) *Service {
	return &Service{
		client:    client,
		messaging: messaging,
		logger:    slog.Default().With("component", "provider-service"),
	}
}

// instanceCredentials resolves per-instance API overrides; zero values
// fall back to the client defaults.
func (s *Service) instanceCredentials(ctx context.Context, instanceID string) (apiKey, baseURL string) {
	inst, err := s.messaging.GetInstance(ctx, instanceID)
	if err != nil {
		s.logger.Warn("Failed to load instance credentials; using defaults",
			"instance_id", instanceID, "error", err)
		return "", ""
	}
	return inst.APIKey, inst.APIBaseURL
}

// SendText delivers a text message to a JID. Fail-open: errors are
// logged and returned, but callers treat sends as best-effort.
func (s *Service) SendText(ctx context.Context, instanceID, toJID, text, quotedMessageID string) error {
	if s == nil {
		return nil
	}

	apiKey, baseURL := s.instanceCredentials(ctx, instanceID)
	err := s.client.SendText(ctx, SendTextInput{
		InstanceID:      instanceID,
		Number:          jidToNumber(toJID),
		Text:            text,
		QuotedMessageID: quotedMessageID,
		APIKey:          apiKey,
		BaseURL:         baseURL,
	})
	if err != nil {
		s.logger.Error("Failed to send provider message",
			"instance_id", instanceID, "to", toJID, "error", err)
	}
	return err
}

// FetchMediaBase64 fetches media bytes for a stored message.
func (s *Service) FetchMediaBase64(ctx context.Context, instanceID, providerMessageID string) (string, error) {
	if s == nil {
		return "", nil
	}
	apiKey, baseURL := s.instanceCredentials(ctx, instanceID)
	return s.client.FetchMediaBase64(ctx, instanceID, providerMessageID, apiKey, baseURL)
}

// FetchAllGroups lists the instance's groups for subject
// reconciliation.
func (s *Service) FetchAllGroups(ctx context.Context, instanceID string) ([]GroupInfo, error) {
	if s == nil {
		return nil, nil
	}
	apiKey, baseURL := s.instanceCredentials(ctx, instanceID)
	return s.client.FetchAllGroups(ctx, instanceID, apiKey, baseURL)
}

// jidToNumber strips the domain for the provider's number field; group
// JIDs are passed through whole.
func jidToNumber(jid string) string {
	if strings.HasSuffix(jid, "@g.us") {
		return jid
	}
	if at := strings.IndexByte(jid, '@'); at > 0 {
		return jid[:at]
	}
	return jid
}
