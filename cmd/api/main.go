// Package main is the entry point for the Budget Tracker API server.
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

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/infra/dependency"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Budget Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
	)

	storage, err := dependency.OpenStorage(cfg)
	if err != nil {
		slog.Error("Failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	injector, err := dependency.NewInjector(context.Background(), cfg, storage)
	if err != nil {
		slog.Error("Failed to load budget data", "error", err)
		os.Exit(1)
	}
	if injector.TokenService == nil {
		slog.Warn("JWT_SECRET is empty, the API is not authenticated")
	}

	stopCleanup := make(chan struct{})
	go injector.RateLimiter.RunCleanup(cfg.RateLimit.Window, stopCleanup)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
