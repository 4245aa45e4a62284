package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/hellogate/pkg/config"
	"github.com/ideamans/hellogate/pkg/shared/filewatcher"
	"github.com/ideamans/hellogate/pkg/shared/logging"
)

// Config represents the configuration for running the server
type Config struct {
	ConfigPath string
	Host       string // From command-line flag
	Port       int    // From command-line flag
	HostSet    bool   // Whether host was explicitly set via flag
	PortSet    bool   // Whether port was explicitly set via flag
	Logger     logging.Logger
	Version    string
}

// ResolvedConfig represents the final resolved listen address
type ResolvedConfig struct {
	Host string
	Port int
}

// Run starts the server with the given configuration
// This is the main entry point for starting the server
func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewSimpleLogger("main", logging.LevelInfo, true)
	}

	logger.Info("Starting hellogate", "version", cfg.Version)

	// A missing config file is not fatal, the environment covers everything
	configPath := cfg.ConfigPath
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			logger.Warn("Config file not found, using environment configuration", "path", configPath)
			configPath = ""
		}
	}

	var loader config.Loader
	if configPath != "" {
		loader = config.NewFileLoader(configPath)
	} else {
		loader = config.NewEnvLoader()
	}

	loaded, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	resolved := resolveListenAddr(cfg, loaded, logger)

	// Create gate manager (atomically swappable gate + routes)
	manager, err := NewGateManager(loader, resolved.Port, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize gate: %w", err)
	}

	logger.Info("Gate manager initialized successfully")

	// Create file watcher for hot reload (100ms debounce) only if a config file exists
	var watcher *filewatcher.Watcher
	if configPath != "" {
		watcher, err = filewatcher.NewWatcher(configPath, 100*time.Millisecond)
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		watcher.AddListener(manager)
		logger.Info("File watcher initialized for hot reload", "config_file", configPath)
	}

	addr := fmt.Sprintf("%s:%d", resolved.Host, resolved.Port)

	// Setup signal handling
	sigCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Start file watcher in background (only if watcher was created)
	if watcher != nil {
		go func() {
			if err := watcher.Start(sigCtx); err != nil && err != context.Canceled {
				logger.Error("File watcher error", "error", err)
			}
		}()
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: manager.Handler(),
	}

	logger.Info("Starting server", "addr", addr)

	// Run server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		} else {
			errChan <- nil
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-stop:
		logger.Info("Shutdown signal received, stopping server...")
		cancel()

		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := <-errChan; err != nil {
			logger.Error("Server stopped with error", "error", err)
			return err
		}
	case err := <-errChan:
		if err != nil {
			logger.Error("Server stopped with error", "error", err)
			return err
		}
	}

	logger.Info("Server stopped successfully")
	return nil
}

// resolveListenAddr resolves the final host and port
// Priority: Command-line flags > Config file > Environment > Default values
func resolveListenAddr(cfg Config, loaded *config.Config, logger logging.Logger) ResolvedConfig {
	resolved := ResolvedConfig{
		Host: loaded.Server.Host,
		Port: loaded.Server.Port,
	}

	if cfg.HostSet {
		resolved.Host = cfg.Host
		logger.Info("Using host from command-line flag", "host", resolved.Host)
	}

	if cfg.PortSet {
		resolved.Port = cfg.Port
		logger.Info("Using port from command-line flag", "port", resolved.Port)
	}

	return resolved
}
