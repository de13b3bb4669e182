// Gapfinder worker: consumes gap analysis requests from the message
// bus, runs the identification pipeline against the paper store, and
// serves the read-side HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scholarai/gapfinder/pkg/api"
	"github.com/scholarai/gapfinder/pkg/bus"
	"github.com/scholarai/gapfinder/pkg/config"
	"github.com/scholarai/gapfinder/pkg/database"
	"github.com/scholarai/gapfinder/pkg/extraction"
	"github.com/scholarai/gapfinder/pkg/llm"
	"github.com/scholarai/gapfinder/pkg/pipeline"
	"github.com/scholarai/gapfinder/pkg/search"
	"github.com/scholarai/gapfinder/pkg/services"
	"github.com/scholarai/gapfinder/pkg/version"
)

const (
	probeTimeout = 10 * time.Second

	// consumerDrainTimeout bounds how long shutdown waits for the
	// in-flight analysis. An interrupted delivery is redelivered and
	// the upsert makes the retry safe.
	consumerDrainTimeout = 30 * time.Second
	httpShutdownTimeout  = 5 * time.Second
)

func configureLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	// Load .env if present; container deployments set real env vars.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// 1. Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	configureLogging(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting gapfinder",
		"version", version.Full(),
		"model", cfg.GeminiModel,
		"api_port", cfg.APIPort)

	ctx := context.Background()

	// 2. Initialize database (runs migrations)
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

	// 3. Build external service clients
	llmClient := llm.NewClient(llm.Config{
		APIKey:    cfg.GeminiAPIKey,
		Model:     cfg.GeminiModel,
		RateLimit: cfg.GeminiRateLimit,
	})
	searchClient := search.NewClient(search.Config{Timeout: cfg.SearchTimeout})
	extractClient := extraction.NewClient(extraction.Config{
		GrobidURL: cfg.GrobidURL,
		Timeout:   cfg.GrobidTimeout,
	})

	// 4. Probe external services before taking work
	probeCtx, probeCancel := context.WithTimeout(ctx, probeTimeout)
	if err := llmClient.Probe(probeCtx); err != nil {
		probeCancel()
		slog.Error("Generation API probe failed", "error", err)
		os.Exit(1)
	}
	if err := extractClient.Probe(probeCtx); err != nil {
		probeCancel()
		slog.Error("GROBID probe failed", "url", cfg.GrobidURL, "error", err)
		os.Exit(1)
	}
	probeCancel()
	slog.Info("External services reachable", "grobid", cfg.GrobidURL)

	// 5. Domain services and the analysis pipeline
	analysisService := services.NewAnalysisService(dbClient.Client)
	paperService := services.NewPaperService(dbClient.Client)
	pipe := pipeline.New(analysisService, paperService, llmClient, searchClient, extractClient, cfg.ValidationPapers)
	slog.Info("Services initialized")

	// 6. Connect the bus and start consuming (prefetch=1)
	consumer := bus.NewConsumer(cfg, pipe, analysisService)
	if err := consumer.Connect(ctx); err != nil {
		slog.Error("Failed to connect to message bus", "error", err)
		os.Exit(1)
	}
	if err := consumer.Start(ctx); err != nil {
		slog.Error("Failed to start consumer", "error", err)
		os.Exit(1)
	}

	// 7. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, analysisService, consumer, extractClient)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("gapfinder started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop the consumer first so the in-flight
	// analysis settles before the store goes away
	drainCtx, drainCancel := context.WithTimeout(ctx, consumerDrainTimeout)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		consumer.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Consumer stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Consumer drain timeout exceeded, delivery will be redelivered")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, httpShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
