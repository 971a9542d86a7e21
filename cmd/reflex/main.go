// Reflex server — ingests chat-provider webhooks, runs the
// reaction/hashtag rule pipeline, and serves the admin API and event
// stream.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/reflexhq/reflex/pkg/actions"
	"github.com/reflexhq/reflex/pkg/api"
	"github.com/reflexhq/reflex/pkg/cleanup"
	"github.com/reflexhq/reflex/pkg/config"
	"github.com/reflexhq/reflex/pkg/database"
	"github.com/reflexhq/reflex/pkg/events"
	"github.com/reflexhq/reflex/pkg/metrics"
	"github.com/reflexhq/reflex/pkg/nlp"
	"github.com/reflexhq/reflex/pkg/provider"
	"github.com/reflexhq/reflex/pkg/queue"
	"github.com/reflexhq/reflex/pkg/recovery"
	"github.com/reflexhq/reflex/pkg/rules"
	"github.com/reflexhq/reflex/pkg/services"
	"github.com/reflexhq/reflex/pkg/version"
	"github.com/reflexhq/reflex/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// setupLogging applies LOG_LEVEL to the default slog logger.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	setupLogging()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Reflex",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	messaging := services.NewMessagingService(dbClient.Client)
	queueService := services.NewQueueService(dbClient.Client, cfg.Queue.DedupeWindow, cfg.Queue.RetryBackoffCap)
	recoveryService := services.NewRecoveryService(dbClient.Client, cfg.Recovery.BackoffCap)
	ruleService := services.NewRuleService(dbClient.Client)
	changeService := services.NewChangeService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	entityService := services.NewEntityService(dbClient.Client)
	linkService := services.NewLinkService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, queueService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Fan-out publisher and webhook adapter
	m := metrics.New()
	publisher := events.NewPublisher(dbClient.DB())
	adapter := webhook.NewAdapter(messaging, queueService, recoveryService, publisher, cfg.Recovery.MaxRetries)

	// 6. Rule engine, parsers, action executor, worker pool
	engine := rules.NewEngine(ruleService, rules.NewCache(cfg.Rules.CacheTTL))
	nlpService := nlp.NewService(m)
	providerService := provider.NewService(provider.ClientConfig{
		BaseURL:        cfg.Provider.BaseURL,
		APIKey:         cfg.Provider.APIKey,
		RequestTimeout: cfg.Provider.RequestTimeout,
	}, messaging)
	executor := actions.NewExecutor(
		dbClient.Client, entityService, linkService, messaging,
		nlpService, providerService, publisher, nil,
	)
	processor := queue.NewProcessor(ruleService, engine, executor, m)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, queueService, cfg.Queue, processor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. SSE hub and LISTEN bridge
	hub := events.NewHub(cfg.Events.SubscriberBuffer)
	notifyListener := events.NewNotifyListener(dbClient.DSN(), map[string]events.Handler{
		events.ChannelEvents: hub.Broadcast,
		events.ChannelQueue:  func([]byte) { workerPool.Wake() },
		events.ChannelRules:  func([]byte) { engine.InvalidateCache() },
	}, cfg.Events.ReconnectBackoffCap)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	slog.Info("Streaming infrastructure initialized")

	// 8. Background sweepers
	sweeper := recovery.NewSweeper(cfg.Recovery, recoveryService, adapter)
	sweeper.Start(ctx)

	cleaner := cleanup.NewService(cfg.Retention,
		eventService, changeService, queueService, recoveryService, ruleService)
	cleaner.Start(ctx)

	// 9. HTTP server
	httpServer := api.NewServer(api.Deps{
		DB:            dbClient,
		Adapter:       adapter,
		Rules:         ruleService,
		Engine:        engine,
		Publisher:     publisher,
		Queue:         queueService,
		Changes:       changeService,
		Recovery:      recoveryService,
		Provider:      providerService,
		Messaging:     messaging,
		Events:        eventService,
		Hub:           hub,
		Pool:          workerPool,
		Metrics:       m,
		WebhookSecret: cfg.Webhook.Secret,
	}).HTTPServer(":" + httpPort)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Reflex started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain HTTP first so no new work arrives,
	// then the pool, then everything that feeds it.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer poolCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — leased items will be orphan-recovered")
	}

	sweeper.Stop()
	cleaner.Stop()

	listenerCtx, listenerCancel := context.WithTimeout(ctx, 5*time.Second)
	defer listenerCancel()
	notifyListener.Stop(listenerCtx)
	hub.Close()

	slog.Info("Shutdown complete")
}
