// Package handlers contains the HTTP route handlers. All routes are
// read-only and derive their responses from startup configuration or the
// runtime, so they are safe for arbitrary concurrent use.
package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"

	"github.com/ideamans/hellogate/pkg/shared/logging"
)

// ServiceTitle is the title shown on the index page
const ServiceTitle = "Hello Gate"

// Handlers holds the route handlers
type Handlers struct {
	port   int
	logger logging.Logger
}

// New creates the route handlers
// port is the server's listening port, used only for display on the index page
func New(port int, logger logging.Logger) *Handlers {
	return &Handlers{
		port:   port,
		logger: logger,
	}
}

// Routes builds the route table. requireAuth wraps the handlers of routes
// that opt in to basic authentication (the index pages).
func (h *Handlers) Routes(requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleHello)
	mux.HandleFunc("GET /hostname", h.HandleHostname)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /info", h.HandleInfo)
	mux.HandleFunc("GET /favicon.ico", h.HandleFavicon)
	mux.HandleFunc("GET /index", requireAuth(h.HandleIndex))
	mux.HandleFunc("GET /index.html", requireAuth(h.HandleIndex))

	return mux
}

// HandleHello serves the plain text greeting
func (h *Handlers) HandleHello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello World"))
}

// HandleHostname serves the machine hostname as JSON
func (h *Handlers) HandleHostname(w http.ResponseWriter, r *http.Request) {
	hostname, err := os.Hostname()
	if err != nil {
		h.logger.Error("Failed to resolve hostname", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{"hostname": hostname})
}

// HandleHealth serves the health check
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}

// HandleInfo serves runtime identifiers as JSON
func (h *Handlers) HandleInfo(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()

	h.writeJSON(w, map[string]string{
		"hostname":   hostname,
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		"go_version": runtime.Version(),
	})
}

// HandleFavicon serves the embedded icon
func (h *Handlers) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/x-icon")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(faviconICO)
}

// HandleIndex serves the HTML index page
// Callers wrap this handler with the basic auth check
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	data := indexPageData{
		Title: ServiceTitle,
		Port:  h.port,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render index page", "error", err)
	}
}

// writeJSON encodes v as a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}
