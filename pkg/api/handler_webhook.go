package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflexhq/reflex/pkg/webhook"
)

// handleWebhook ingests one provider event. Everything past the
// signature check answers 200: the provider treats non-2xx as an
// invitation to retry-storm, and failures are already parked in the
// recovery bucket.
func (s *Server) handleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var env webhook.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Nothing to replay without a decodable envelope.
		slog.Warn("Undecodable webhook body",
			"instance", c.Param("instance"), "error", err)
		s.observeWebhook("unknown", "ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	// Path segments fill envelope gaps: some provider configurations
	// post per-event URLs with a sparse body.
	if env.Event == "" {
		env.Event = c.Param("event_type")
	}
	if env.Event == "" {
		slog.Warn("Webhook body has no event type", "instance", c.Param("instance"))
		s.observeWebhook("unknown", "ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	instanceID := c.Param("instance")
	if instanceID == "" {
		instanceID = env.Instance
	}

	eventType := webhook.NormalizeEventType(env.Event)
	if err := s.deps.Adapter.ProcessIncomingEvent(c.Request.Context(), instanceID, &env); err != nil {
		s.observeWebhook(eventType, "failed")
	} else {
		s.observeWebhook(eventType, "accepted")
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}
