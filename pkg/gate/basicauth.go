package gate

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/ideamans/hellogate/pkg/config"
)

const (
	basicPrefix      = "Basic "
	challengeHeader  = "WWW-Authenticate"
	challengeContent = `Basic realm="Restricted"`
)

// CheckBasicAuth decides whether a request passes HTTP Basic Authentication.
//
// The guards run in a fixed order, each an early exit:
//
//  1. auth disabled            -> admit
//  2. transport not HTTPS      -> 403 (credentials must not travel in plaintext)
//  3. incomplete credentials   -> admit (auth effectively off)
//  4. missing/non-Basic header -> 401 + challenge
//  5. undecodable token        -> 401 + challenge
//  6. credential mismatch      -> 401 + challenge
//
// The HTTPS guard runs before the completeness guard: enabling auth with an
// empty username or password still forces HTTPS on the gated routes. The
// order is observable behavior, keep it.
func CheckBasicAuth(cfg config.BasicAuthConfig, r *http.Request) *Rejection {
	if !cfg.Enabled {
		return nil
	}

	if !isSecure(r) {
		return &Rejection{
			Status:  http.StatusForbidden,
			Message: "HTTPS required",
		}
	}

	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, basicPrefix) {
		return challenge()
	}

	decoded, err := base64.StdEncoding.DecodeString(auth[len(basicPrefix):])
	if err != nil {
		return challenge()
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return challenge()
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1
	if !usernameMatch || !passwordMatch {
		return challenge()
	}

	return nil
}

// isSecure reports whether the request arrived over a secure transport,
// either directly via TLS or through a TLS-terminating proxy announcing
// itself with X-Forwarded-Proto
func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// challenge builds the 401 rejection carrying the auth challenge header.
// Missing, malformed and mismatched credentials are deliberately
// indistinguishable to the client.
func challenge() *Rejection {
	header := http.Header{}
	header.Set(challengeHeader, challengeContent)
	return &Rejection{
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
		Header:  header,
	}
}
