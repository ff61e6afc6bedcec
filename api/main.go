package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/assistant"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/production"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/rest/handlers"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/config"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	productionClient, err := production.NewClient(cfg.ProductionAddress, log)
	if err != nil {
		log.Error("cannot init production adapter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = productionClient.Close() }()

	if cfg.Assistant.BaseURL == "" {
		log.Warn("assistant base url not set, chat will answer with the fallback reply")
	}
	assistantClient := assistant.NewClient(log, assistant.Options{
		BaseURL:     cfg.Assistant.BaseURL,
		APIKey:      cfg.Assistant.APIKey,
		Model:       cfg.Assistant.Model,
		Timeout:     cfg.Assistant.Timeout,
		MaxFailures: cfg.Assistant.MaxFailures,
		Cooldown:    cfg.Assistant.Cooldown,
	})

	deps := core.Deps{
		Production: productionClient,
		Assistant:  assistantClient,
	}

	mux := http.NewServeMux()
	handlers.Register(mux, log, deps, cfg.HTTP.Timeout, cfg.Assistant.Timeout)

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("api gateway http server", "address", server.Addr, "production", cfg.ProductionAddress)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
