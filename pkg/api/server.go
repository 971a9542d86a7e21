// Package api exposes the HTTP surface: webhook intake, rule
// administration, health, metrics, and the SSE event stream.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflexhq/reflex/pkg/database"
	"github.com/reflexhq/reflex/pkg/events"
	"github.com/reflexhq/reflex/pkg/metrics"
	"github.com/reflexhq/reflex/pkg/provider"
	"github.com/reflexhq/reflex/pkg/queue"
	"github.com/reflexhq/reflex/pkg/rules"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/pkg/webhook"
)

// Deps carries everything the handlers need. Adapter and Rules are
// required; the rest degrade gracefully when nil so tests can construct
// partial servers.
type Deps struct {
	DB        *database.Client
	Adapter   *webhook.Adapter
	Rules     *services.RuleService
	Engine    *rules.Engine
	Publisher *events.Publisher
	Queue     *services.QueueService
	Changes   *services.ChangeService
	Recovery  *services.RecoveryService
	Provider  *provider.Service
	Messaging *services.MessagingService
	Events    *services.EventService
	Hub       *events.Hub
	Pool      *queue.WorkerPool
	Metrics   *metrics.Metrics

	// WebhookSecret signs inbound payloads; empty disables verification
	// (development only).
	WebhookSecret string
}

// Server is the HTTP layer over the pipeline services.
type Server struct {
	deps Deps
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	if deps.Adapter == nil {
		panic("NewServer: adapter must not be nil")
	}
	if deps.Rules == nil {
		panic("NewServer: rules must not be nil")
	}
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	hook := r.Group("/webhook", s.verifySignature())
	hook.POST("/:instance", s.handleWebhook)
	hook.POST("/:instance/:event_type", s.handleWebhook)

	r.POST("/rules", s.createRule)
	r.GET("/rules", s.listRules)
	r.GET("/rules/:id", s.getRule)
	r.PUT("/rules/:id", s.updateRule)
	r.DELETE("/rules/:id", s.deleteRule)

	admin := r.Group("/admin")
	admin.POST("/sync-groups/:instance", s.syncGroups)
	admin.POST("/reprocess", s.reprocess)
	admin.GET("/failed-events", s.listFailedEvents)
	admin.POST("/failed-events/:id/retry", s.retryFailedEvent)

	r.GET("/health", s.health)
	r.GET("/events", s.streamEvents)
	if s.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	}

	return r
}

// observeWebhook reports one intake outcome when metrics are wired.
func (s *Server) observeWebhook(eventType, outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveWebhook(eventType, outcome)
	}
}

// HTTPServer wraps the router in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
}
