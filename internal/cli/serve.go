package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/config"
	"github.com/automationexercise/storefront-e2e/internal/handlers"
	"github.com/automationexercise/storefront-e2e/internal/services"
	"go.uber.org/zap"
)

// ServerDependencies holds all dependencies needed for the report server
type ServerDependencies struct {
	ServerConfig config.ServerConfig
	Logger       *zap.Logger
	IndexHandler http.Handler
	ReportFiles  http.Handler
	// RunsHandler and RunHandler are nil when run history is disabled.
	RunsHandler http.Handler
	RunHandler  http.Handler
}

// NewServerDependencies wires the report server handlers. history may be nil.
func NewServerDependencies(cfg config.ServerConfig, history services.HistoryService, logger *zap.Logger) (ServerDependencies, error) {
	index, err := handlers.NewReportIndexHandler(cfg.ReportDir, logger)
	if err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create report index handler: %w", err)
	}

	deps := ServerDependencies{
		ServerConfig: cfg,
		Logger:       logger,
		IndexHandler: index,
		ReportFiles:  http.FileServer(http.Dir(cfg.ReportDir)),
	}
	if history != nil {
		deps.RunsHandler = handlers.NewRunsHandler(history, logger)
		deps.RunHandler = handlers.NewRunHandler(history, logger)
	}
	return deps, nil
}

// RunServe starts the report server and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.Logger)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.Handle("/{$}", deps.IndexHandler)
	mux.Handle("/reports/", http.StripPrefix("/reports/", deps.ReportFiles))
	mux.Handle("/api/runs", handlerOrDisabled(deps.RunsHandler))
	mux.Handle("/api/runs/{id}", handlerOrDisabled(deps.RunHandler))

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("report server listening", zap.String("addr", listener.Addr().String()))
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("report server error", zap.Error(err))
		}
	}()

	return listener, server, nil
}

func handlerOrDisabled(h http.Handler) http.Handler {
	if h != nil {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, config.ErrHistoryDisabled.Error(), http.StatusServiceUnavailable)
	})
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger *zap.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, logger)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.Info("shutting down report server", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this
		// only fails on a server that cannot be closed at all.
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("report server stopped")
	return nil
}
