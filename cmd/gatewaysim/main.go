package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/middleware"
	"github.com/benx421/payment-gateway/pos/internal/simulator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger("gateway-simulator")
	slog.SetDefault(logger)

	sim, err := simulator.New(&cfg.Simulator, logger)
	if err != nil {
		logger.Error("failed to create simulator", "error", err)
		os.Exit(1)
	}

	logger.Info("starting gateway simulator",
		"port", cfg.Simulator.Port,
		"approval_limit", cfg.Simulator.ApprovalLimit,
		"failure_rate", cfg.Simulator.FailureRate,
		"min_latency_ms", cfg.Simulator.MinLatencyMS,
		"max_latency_ms", cfg.Simulator.MaxLatencyMS,
	)

	var handler http.Handler = sim
	handler = middleware.FailureInjection(&cfg.Simulator, logger)(handler)
	handler = middleware.RequestLogger(logger)(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Simulator.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("simulator listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("simulator failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down simulator...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("simulator forced to shutdown", "error", err)
	}

	logger.Info("simulator stopped")
}
