package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/internal/config"
	"crop-yield-platform/internal/handlers"
	"crop-yield-platform/internal/middleware"
	"crop-yield-platform/internal/services"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := logging.NewStructuredLogger("crop-yield-api", "1.0.0", logging.ParseLevel(cfg.Logging.Level))

	ctx := context.Background()
	logger.Info(ctx, "[STARTUP] Starting crop yield platform API server", logging.Fields{
		"version":       "1.0.0",
		"server_host":   cfg.Server.Host,
		"server_port":   cfg.Server.Port,
		"artifacts_dir": cfg.Artifacts.Dir,
	})

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector("crop_yield_platform")

	// Load model artifacts. A missing or corrupt artifact is fatal: the
	// process must not serve the form without a complete bundle.
	store := artifacts.NewStore(cfg.Artifacts.Dir, logger, metricsCollector)

	bundle, err := store.LoadBundle(ctx)
	if err != nil {
		logger.Fatal(ctx, "[STARTUP_ERROR] Failed to load model artifacts", logging.Fields{
			"artifacts_dir": cfg.Artifacts.Dir,
		}, err)
	}

	// Initialize services
	optionsService := services.NewOptionsService(bundle, logger)
	predictionService := services.NewPredictionService(bundle, optionsService, logger, metricsCollector)

	// Initialize handlers
	predictionHandler := handlers.NewPredictionHandler(predictionService, optionsService, store, logger, metricsCollector)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(logger, metricsCollector))

	// Register routes
	predictionHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info(ctx, "[SERVER_START] HTTP server listening", logging.Fields{
			"address": server.Addr,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "[SERVER_ERROR] Server failed", logging.Fields{}, err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "[SHUTDOWN] Shutting down server...", logging.Fields{})

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "[SHUTDOWN_ERROR] Server forced to shutdown", logging.Fields{}, err)
	}

	logger.Info(ctx, "[SHUTDOWN_COMPLETE] Server stopped", logging.Fields{})
}
