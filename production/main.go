package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/adapters/db"
	productiongrpc "github.com/LuizRMSilva1973/projeto-pastelaria/production/adapters/grpc"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/adapters/memory"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/config"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

func main() {
	// config
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "production-service server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	// logger
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting production-service server")

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %v", err)
	}
	log.Debug("catalog loaded", "flavors", len(cat.Flavors()), "machines", len(cat.Machines()))

	rule, err := core.NewProductionDateRule(cfg.Cutoff, cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid production date rule: %v", err)
	}

	// task store, optionally journaled
	var store *memory.Store
	if cfg.DBAddress != "" {
		journal, err := db.New(log, cfg.DBAddress)
		if err != nil {
			return fmt.Errorf("failed to connect to db: %v", err)
		}
		defer func(journal *db.DB) {
			if err := journal.Close(); err != nil {
				log.Error("failed to close db connection", "error", err)
			}
		}(journal)

		if err := journal.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate db: %v", err)
		}

		store, err = memory.Restore(ctx, journal)
		if err != nil {
			return fmt.Errorf("failed to restore tasks: %v", err)
		}
		log.Info("task store restored from journal")
	} else {
		store = memory.New()
		log.Info("task store is in-memory only")
	}

	// service
	distributor := core.NewDistributor(cat.Machines(), rule)
	productionService := core.NewService(store, cat, distributor, core.WithStrictFlavors(cfg.StrictFlavors))

	// grpc
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	s := grpc.NewServer()

	// grpc handler
	handler := productiongrpc.NewServer(log, productionService)
	productionpb.RegisterProductionServiceServer(s, handler)
	reflection.Register(s)

	go func() {
		<-ctx.Done()
		log.Debug("shutting down production-service server")
		s.GracefulStop()
	}()

	log.Info("production-service gRPC server is running", "address", cfg.Address)

	// blocking
	if err := s.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %v", err)
	}

	return nil
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
