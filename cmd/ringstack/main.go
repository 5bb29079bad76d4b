// RingStack call orchestration server — provides the HTTP API, processes
// the call queue, and ingests voice-provider webhooks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ringstack/ringstack/pkg/analysis"
	"github.com/ringstack/ringstack/pkg/api"
	"github.com/ringstack/ringstack/pkg/billing"
	"github.com/ringstack/ringstack/pkg/calls"
	"github.com/ringstack/ringstack/pkg/concurrency"
	"github.com/ringstack/ringstack/pkg/config"
	"github.com/ringstack/ringstack/pkg/contacts"
	"github.com/ringstack/ringstack/pkg/database"
	"github.com/ringstack/ringstack/pkg/events"
	"github.com/ringstack/ringstack/pkg/flows"
	"github.com/ringstack/ringstack/pkg/mailer"
	"github.com/ringstack/ringstack/pkg/notify"
	"github.com/ringstack/ringstack/pkg/queue"
	"github.com/ringstack/ringstack/pkg/version"
	"github.com/ringstack/ringstack/pkg/voice"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting RingStack",
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

	// The webhook signing secret is shared with the voice provider; refusing
	// to start without it beats silently accepting unsigned webhooks.
	webhookSecret := os.Getenv(cfg.Webhook.SigningSecretEnv)
	if webhookSecret == "" {
		slog.Error("Webhook signing secret is not set", "env", cfg.Webhook.SigningSecretEnv)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
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

	// 3. Provider clients. Both read their API keys from the environment
	// variables named in config; neither dials until first use.
	voiceClient, err := voice.NewClient(cfg.Voice)
	if err != nil {
		slog.Error("Failed to initialize voice client", "error", err)
		os.Exit(1)
	}
	mailClient, err := mailer.NewClient(cfg.Mailer)
	if err != nil {
		slog.Error("Failed to initialize mailer client", "error", err)
		os.Exit(1)
	}
	extractionClient := analysis.NewClient(cfg.Extraction)
	slog.Info("Provider clients initialized",
		"voice", cfg.Voice.BaseURL,
		"mailer", cfg.Mailer.BaseURL,
		"extraction", cfg.Extraction.BaseURL)

	// 4. Domain services
	slots := concurrency.NewManager(dbClient.Client, cfg.System.MaxConcurrentCalls, cfg.System.DefaultTenantConcurrentCalls)
	billingSvc := billing.NewService(dbClient.Client)
	queueSvc := queue.NewService(dbClient.Client, cfg.Queue)
	scheduleCache := queue.NewScheduleCache(dbClient.Client, cfg.Queue.ScheduleCacheTTL)
	inflight := queue.NewInflightIndex()
	dispatcher := queue.NewDispatcher(dbClient.Client, voiceClient, inflight, cfg.Webhook)
	processor := queue.NewProcessor(queue.ProcessorDeps{
		DB:         dbClient.DB(),
		Items:      queueSvc,
		Cache:      scheduleCache,
		Slots:      slots,
		Billing:    billingSvc,
		Dispatcher: dispatcher,
	})
	campaignSvc := queue.NewCampaignService(dbClient.Client, queueSvc, scheduleCache)
	notifySvc := notify.NewService(dbClient.Client, mailClient, cfg.Billing)
	analyzer := analysis.NewOrchestrator(dbClient.Client, extractionClient, cfg.Extraction)
	flowEvaluator := flows.NewEvaluator(dbClient.Client, queueSvc, notifySvc)
	contactSvc := contacts.NewService(dbClient.Client, flowEvaluator)
	wakePublisher := events.NewWakePublisher(dbClient.DB())

	callSvc := calls.NewService(dbClient.Client, slots, queueSvc, dispatcher, voiceClient, billingSvc)
	webhookSvc := calls.NewWebhookService(calls.WebhookDeps{
		Client:    dbClient.Client,
		Slots:     slots,
		Billing:   billingSvc,
		Analyzer:  analyzer,
		Notifier:  notifySvc,
		Campaigns: campaignSvc,
		Inflight:  inflight,
		Flows:     flowEvaluator,
		Kicker:    processor,
		Wake:      wakePublisher,
	})
	slog.Info("Services initialized")

	// 5. Start the reaper (immediate sweep frees slots leaked by a crashed
	// predecessor before traffic resumes)
	reaper := queue.NewReaper(slots, queueSvc, inflight, processor, cfg.Queue)
	reaper.Start()

	// 6. Start the wake listener (dedicated pgx connection for LISTEN)
	wakeListener := events.NewWakeListener(dbConfig.DSN(), processor)
	if err := wakeListener.Start(ctx); err != nil {
		slog.Error("Failed to start wake listener", "error", err)
		os.Exit(1)
	}

	// 7. Create HTTP server
	httpServer := api.NewServer(api.ServerDeps{
		DBClient:      dbClient,
		Calls:         callSvc,
		Webhooks:      webhookSvc,
		Processor:     processor,
		Cache:         scheduleCache,
		Campaigns:     campaignSvc,
		Contacts:      contactSvc,
		Notifications: notifySvc,
		WebhookSecret: webhookSecret,
	})

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RingStack started successfully",
		"pod_id", podID,
		"system_cap", cfg.System.MaxConcurrentCalls)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown. Stop taking requests first, then the wake
	// listener so no new pass starts, then the reaper. In-flight calls keep
	// their slots; the webhook for each completion lands on another replica
	// or on this one after restart.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	stopCtx, stopCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer stopCancel()

	listenerDone := make(chan struct{})
	go func() {
		wakeListener.Stop(stopCtx)
		close(listenerDone)
	}()
	select {
	case <-listenerDone:
		slog.Info("Wake listener stopped gracefully")
	case <-stopCtx.Done():
		slog.Warn("Wake listener shutdown timeout exceeded")
	}

	reaper.Stop()

	slog.Info("Shutdown complete")
}
