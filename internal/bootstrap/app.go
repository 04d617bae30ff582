// Package bootstrap handles application initialization and lifecycle
// management for the linkmeta service.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonesrussell/linkmeta/internal/api"
	"github.com/jonesrussell/linkmeta/internal/logger"
	"github.com/jonesrussell/linkmeta/internal/metrics"
	"github.com/jonesrussell/linkmeta/internal/resolver"
)

const version = "dev"

const shutdownGrace = 10 * time.Second

// Start initializes and runs the linkmeta service until interrupted.
func Start() error {
	// Phase 1: config and logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: core pipeline
	registry := BuildRegistry(cfg, log)
	promRegistry := prometheus.NewRegistry()
	res := resolver.New(registry, log, metrics.New(promRegistry))

	// Phase 3: HTTP server
	handler := api.NewHandler(res, log)
	router := api.NewRouter(handler, api.RouterConfig{
		Debug:       cfg.Debug,
		CORSOrigins: cfg.Server.CORSOrigins,
	}, promRegistry, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return run(server, log)
}

// run serves until SIGINT/SIGTERM, then shuts down gracefully.
func run(server *http.Server, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
