package server

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ideamans/hellogate/pkg/config"
	"github.com/ideamans/hellogate/pkg/handlers"
	"github.com/ideamans/hellogate/pkg/shared/filewatcher"
	"github.com/ideamans/hellogate/pkg/shared/logging"
)

func filewatcherEvent(path string) filewatcher.ChangeEvent {
	return filewatcher.ChangeEvent{Path: path}
}

func clearGateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "ALLOWED_HOST", "AUTH_ENABLED", "BASIC_AUTH_USER", "BASIC_AUTH_PASS"} {
		t.Setenv(key, "")
	}
}

func newEnvManager(t *testing.T) *GateManager {
	t.Helper()
	m, err := NewGateManager(config.NewEnvLoader(), 5000, logging.NewTestLogger())
	if err != nil {
		t.Fatalf("failed to create gate manager: %v", err)
	}
	return m
}

func doRequest(handler http.Handler, method, path, host string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	// httptest defaults Host to example.com, force the requested value
	// so an empty host means a missing Host header
	req.Host = host
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestServer_NoRestrictionsAdmitsAll(t *testing.T) {
	clearGateEnv(t)
	handler := newEnvManager(t).Handler()

	for _, host := range []string{"example.com", "127.0.0.1", "whatever:9999", ""} {
		rec := doRequest(handler, "GET", "/", host, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("host %q: expected 200, got %d", host, rec.Code)
		}
		if rec.Body.String() != "Hello World" {
			t.Errorf("host %q: unexpected body %q", host, rec.Body.String())
		}
	}
}

func TestServer_HostRestriction(t *testing.T) {
	clearGateEnv(t)
	t.Setenv("ALLOWED_HOST", "example.com")
	handler := newEnvManager(t).Handler()

	tests := []struct {
		host       string
		wantStatus int
	}{
		{"example.com", http.StatusOK},
		{"example.com:8080", http.StatusOK},
		{"127.0.0.1", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range tests {
		rec := doRequest(handler, "GET", "/", tt.host, nil)
		if rec.Code != tt.wantStatus {
			t.Errorf("host %q: expected %d, got %d", tt.host, tt.wantStatus, rec.Code)
		}
	}

	// The restriction covers every route, not just the greeting
	rec := doRequest(handler, "GET", "/health", "evil.example.com", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 on /health for disallowed host, got %d", rec.Code)
	}
}

func TestServer_IndexBasicAuthFlow(t *testing.T) {
	clearGateEnv(t)
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("BASIC_AUTH_USER", "admin")
	t.Setenv("BASIC_AUTH_PASS", "secret")
	handler := newEnvManager(t).Handler()

	// Plain HTTP, no forwarded proto: credentials must not be requested
	rec := doRequest(handler, "GET", "/index", "", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 without HTTPS, got %d", rec.Code)
	}

	// HTTPS but no credentials: challenged
	rec = doRequest(handler, "GET", "/index", "", map[string]string{
		"X-Forwarded-Proto": "https",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without credentials, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="Restricted"` {
		t.Errorf("expected challenge header, got %q", got)
	}

	// Valid credentials: index page served
	rec = doRequest(handler, "GET", "/index", "", map[string]string{
		"X-Forwarded-Proto": "https",
		"Authorization":     basicAuth("admin", "secret"),
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with valid credentials, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), handlers.ServiceTitle) {
		t.Error("expected index body to contain the service title")
	}

	// Wrong credentials: challenged again
	rec = doRequest(handler, "GET", "/index", "", map[string]string{
		"X-Forwarded-Proto": "https",
		"Authorization":     basicAuth("admin", "wrong"),
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong credentials, got %d", rec.Code)
	}

	// Malformed authorization value: challenged, not crashed
	rec = doRequest(handler, "GET", "/index", "", map[string]string{
		"X-Forwarded-Proto": "https",
		"Authorization":     "Basic !!!not-base64!!!",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with malformed credentials, got %d", rec.Code)
	}

	// index.html is gated the same way
	rec = doRequest(handler, "GET", "/index.html", "", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 on /index.html without HTTPS, got %d", rec.Code)
	}

	// Other routes are not gated by basic auth
	rec = doRequest(handler, "GET", "/", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 on ungated route, got %d", rec.Code)
	}
}

func TestServer_Idempotence(t *testing.T) {
	clearGateEnv(t)
	t.Setenv("ALLOWED_HOST", "example.com")
	handler := newEnvManager(t).Handler()

	first := doRequest(handler, "GET", "/hostname", "example.com", nil)
	second := doRequest(handler, "GET", "/hostname", "example.com", nil)

	if first.Code != second.Code {
		t.Errorf("status drifted between identical requests: %d then %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("body drifted between identical requests: %q then %q", first.Body.String(), second.Body.String())
	}
}

func TestGateManager_HotReload(t *testing.T) {
	clearGateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gate:\n  allowed_host: example.com\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m, err := NewGateManager(config.NewFileLoader(path), 5000, logging.NewTestLogger())
	if err != nil {
		t.Fatalf("failed to create gate manager: %v", err)
	}
	handler := m.Handler()

	if rec := doRequest(handler, "GET", "/", "other.example.com", nil); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before reload, got %d", rec.Code)
	}

	if err := os.WriteFile(path, []byte("gate:\n  allowed_host: other.example.com\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	m.OnFileChange(filewatcherEvent(path))

	if rec := doRequest(handler, "GET", "/", "other.example.com", nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200 after reload, got %d", rec.Code)
	}
	if rec := doRequest(handler, "GET", "/", "example.com", nil); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for the old host after reload, got %d", rec.Code)
	}
}

func TestGateManager_ReloadFailureKeepsCurrentConfig(t *testing.T) {
	clearGateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gate:\n  allowed_host: example.com\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m, err := NewGateManager(config.NewFileLoader(path), 5000, logging.NewTestLogger())
	if err != nil {
		t.Fatalf("failed to create gate manager: %v", err)
	}

	if err := os.WriteFile(path, []byte("gate: [broken"), 0o644); err != nil {
		t.Fatalf("failed to corrupt config: %v", err)
	}
	m.OnFileChange(filewatcherEvent(path))

	// The previous allow-list must still be in effect
	handler := m.Handler()
	if rec := doRequest(handler, "GET", "/", "example.com", nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for the previous host, got %d", rec.Code)
	}
	if rec := doRequest(handler, "GET", "/", "other.example.com", nil); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a disallowed host, got %d", rec.Code)
	}
}

func TestResolveListenAddr(t *testing.T) {
	loaded := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
	}
	logger := logging.NewTestLogger()

	// Flags not set: config values win
	resolved := resolveListenAddr(Config{Host: "0.0.0.0", Port: 5000}, loaded, logger)
	if resolved.Host != "127.0.0.1" || resolved.Port != 8080 {
		t.Errorf("expected config values, got %s:%d", resolved.Host, resolved.Port)
	}

	// Flags explicitly set: flags win
	resolved = resolveListenAddr(Config{Host: "0.0.0.0", Port: 9000, HostSet: true, PortSet: true}, loaded, logger)
	if resolved.Host != "0.0.0.0" || resolved.Port != 9000 {
		t.Errorf("expected flag values, got %s:%d", resolved.Host, resolved.Port)
	}
}
