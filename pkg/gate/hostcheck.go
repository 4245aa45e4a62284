package gate

import (
	"net/http"
	"strings"
)

// CheckHost decides whether a request's Host header value is admissible.
// An empty allowedHost disables the restriction. Otherwise any port suffix
// is stripped from the header and the remainder must equal allowedHost
// exactly, case-sensitively. No wildcard or subdomain matching.
//
// A missing Host header yields an empty string, which never matches a
// configured host.
func CheckHost(allowedHost, hostHeader string) *Rejection {
	if allowedHost == "" {
		return nil
	}

	host := hostHeader
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	if host != allowedHost {
		return &Rejection{
			Status:  http.StatusForbidden,
			Message: "Forbidden: host not allowed",
		}
	}

	return nil
}
