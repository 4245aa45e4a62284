// Package gate implements the request gates applied in front of handler
// dispatch: Host header allow-listing for every request and HTTP Basic
// Authentication (gated on HTTPS detection) for routes that opt in.
//
// Each check is a guard returning either nil ("continue") or a terminal
// *Rejection carrying the response to write. Checks never panic and never
// log as fatal, a misconfigured check merely disables itself.
package gate

import (
	"net/http"

	"github.com/ideamans/hellogate/pkg/config"
	"github.com/ideamans/hellogate/pkg/shared/logging"
)

// Rejection is a terminal gate decision
type Rejection struct {
	Status  int
	Message string
	Header  http.Header // Extra response headers, e.g. the auth challenge
}

// Write writes the rejection to the response as plain text
func (rej *Rejection) Write(w http.ResponseWriter) {
	for key, values := range rej.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	http.Error(w, rej.Message, rej.Status)
}

// Middleware applies the host restriction check to every request before
// dispatching to the next handler. It implements http.Handler and can wrap
// any http.Handler.
type Middleware struct {
	cfg    *config.Config
	logger logging.Logger
	next   http.Handler
}

// New creates a new gate middleware
func New(cfg *config.Config, logger logging.Logger) *Middleware {
	return &Middleware{
		cfg:    cfg,
		logger: logger,
	}
}

// Wrap wraps a http.Handler with the host restriction check
// This is the main entry point for using the middleware
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	m.next = next
	return m
}

// ServeHTTP implements http.Handler
func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rej := CheckHost(m.cfg.Gate.AllowedHost, r.Host); rej != nil {
		m.logger.Debug("Host restriction rejected request", "host", r.Host, "path", r.URL.Path)
		rej.Write(w)
		return
	}

	m.next.ServeHTTP(w, r)
}

// RequireBasicAuth wraps a handler with the basic auth check, for routes
// that opt in to authentication
func (m *Middleware) RequireBasicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rej := CheckBasicAuth(m.cfg.BasicAuth, r); rej != nil {
			m.logger.Debug("Basic auth rejected request", "path", r.URL.Path, "status", rej.Status)
			rej.Write(w)
			return
		}

		next(w, r)
	}
}
