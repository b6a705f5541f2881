package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
	"github.com/MikeSquared-Agency/libra/internal/api"
	"github.com/MikeSquared-Agency/libra/internal/config"
	"github.com/MikeSquared-Agency/libra/internal/hermes"
	"github.com/MikeSquared-Agency/libra/internal/tagline"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("libra starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tagline generator (optional — without it the engine uses its built-in
	// summary table)
	var taglineGen analyze.TaglineGenerator
	if cfg.OpenAIAPIKey != "" {
		taglineGen = tagline.New(cfg.OpenAIAPIKey, cfg.TaglineModel, slog.Default())
		slog.Info("tagline generator ready", "model", cfg.TaglineModel)
	} else {
		slog.Warn("openai not configured — using fallback taglines")
	}

	// NATS/Hermes (optional — without it analysis events are not emitted)
	var events api.Publisher
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		var err error
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		events = hermesClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without event publishing")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, taglineGen, events, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if hermesClient != nil {
		if err := hermesClient.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("libra ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("libra stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
