package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/weckerleben/bday-guests/internal/config"
	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
	"github.com/weckerleben/bday-guests/internal/remote"
	"github.com/weckerleben/bday-guests/internal/store"
	"github.com/weckerleben/bday-guests/internal/transport"
)

func main() {
	// A missing .env is fine; credentials can come from the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	baseRoster, err := guest.LoadRoster(cfg.Roster.Path)
	if err != nil {
		logger.Error("failed to load base roster", "path", cfg.Roster.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("base roster loaded", "families", len(baseRoster))

	st, err := store.New(cfg.Data.Path, logger)
	if err != nil {
		logger.Error("failed to open local store", "path", cfg.Data.Path, "error", err)
		os.Exit(1)
	}

	client := remote.NewClient(cfg.Sync.APIURL, cfg.Sync.BinID, cfg.Sync.APIKey)
	coordinator := remote.NewCoordinator(st, client, remote.Config{
		SyncInterval:  time.Duration(cfg.Sync.IntervalMinutes) * time.Minute,
		CheckInterval: time.Duration(cfg.Sync.CheckIntervalSeconds) * time.Second,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if coordinator.IsConfigured() {
		// Fresh start: the remote copy wins, like a page load in the client.
		pullCtx, pullCancel := context.WithTimeout(ctx, 20*time.Second)
		if err := coordinator.PullRemote(pullCtx, true); err != nil {
			logger.Warn("initial sync failed, continuing with local data", "error", err)
		}
		pullCancel()
		go coordinator.Run(ctx)
	} else {
		logger.Info("remote sync not configured, operating on local data only")
	}

	guestSvc := guest.NewService(baseRoster, st, coordinator, logger)
	pricingSvc := pricing.NewService(st, coordinator, logger)

	handler := transport.NewHandler(guestSvc, pricingSvc, st, coordinator, transport.Payment{
		PayerOneName: cfg.Payment.PayerOneName,
		PayerTwoName: cfg.Payment.PayerTwoName,
		Contribution: cfg.Payment.Contribution,
	}, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: transport.NewRouter(handler),
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
