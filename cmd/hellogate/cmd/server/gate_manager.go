package server

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/ideamans/hellogate/pkg/config"
	"github.com/ideamans/hellogate/pkg/gate"
	"github.com/ideamans/hellogate/pkg/handlers"
	"github.com/ideamans/hellogate/pkg/shared/filewatcher"
	"github.com/ideamans/hellogate/pkg/shared/logging"
)

// GateManager owns the request gate and route table, and swaps them
// atomically when the configuration file changes. Each request reads one
// consistent snapshot, nothing is mutated in place.
type GateManager struct {
	handler atomic.Value // Stores http.Handler
	loader  config.Loader
	port    int // Listen port, fixed for the process lifetime
	logger  logging.Logger
}

// NewGateManager creates a new GateManager and builds the initial gate
func NewGateManager(loader config.Loader, port int, logger logging.Logger) (*GateManager, error) {
	if logger == nil {
		logger = logging.NewSimpleLogger("gate-manager", logging.LevelInfo, true)
	}

	m := &GateManager{
		loader: loader,
		port:   port,
		logger: logger,
	}

	h, err := m.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build initial gate: %w", err)
	}

	m.handler.Store(h)

	return m, nil
}

// build loads the configuration and assembles the gate around the routes
func (m *GateManager) build() (http.Handler, error) {
	cfg, err := m.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load gate config: %w", err)
	}

	h := handlers.New(m.port, m.logger.WithModule("handlers"))
	mw := gate.New(cfg, m.logger.WithModule("gate"))

	// Host restriction wraps the whole route table, basic auth only the
	// routes that opt in (wired inside Routes)
	return mw.Wrap(h.Routes(mw.RequireBasicAuth)), nil
}

// OnFileChange implements filewatcher.ChangeListener
// This method is called when the configuration file changes
func (m *GateManager) OnFileChange(event filewatcher.ChangeEvent) {
	if event.Error != nil {
		m.logger.Error("File change event error", "error", event.Error)
		return
	}

	m.logger.Info("Config change detected, reloading gate", "path", event.Path)

	h, err := m.build()
	if err != nil {
		m.logger.Error("Failed to reload gate, keeping current configuration", "error", err)
		return
	}

	m.handler.Store(h)
	m.logger.Info("Gate configuration reloaded successfully")
}

// Handler returns the HTTP handler
// The handler always dispatches to the latest gate stored atomically
func (m *GateManager) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := m.handler.Load().(http.Handler)
		h.ServeHTTP(w, r)
	})
}
