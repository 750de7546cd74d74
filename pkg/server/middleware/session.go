// Package middleware provides the HTTP authentication middleware that turns
// a bearer session token into a request Identity.
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/session"
)

// SessionAuthenticator is middleware that validates session tokens
type SessionAuthenticator struct {
	Sessions *session.Issuer
}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator(sessions *session.Issuer) *SessionAuthenticator {
	return &SessionAuthenticator{Sessions: sessions}
}

// tokenFromRequest extracts the bearer token from the Authorization header.
// Returns "" when no token is present.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(prefix):])
}

func remoteIP(r *http.Request) net.IP {
	host := r.RemoteAddr
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}
	return net.ParseIP(host)
}

// Require returns middleware that rejects requests without a valid session
// token with a 401. Malformed, expired and unverifiable tokens are all
// treated the same as a missing one.
func (a *SessionAuthenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}

		id, err := a.Sessions.Verify(tokenStr)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}

		id.WithRemoteIP(remoteIP(r))
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// Optional returns middleware that attaches an identity when a valid token
// is present and otherwise lets the request through as anonymous. A bad
// token is indistinguishable from no token (fail closed).
func (a *SessionAuthenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenStr := tokenFromRequest(r); tokenStr != "" {
			if id, err := a.Sessions.Verify(tokenStr); err == nil {
				id.WithRemoteIP(remoteIP(r))
				r = r.WithContext(identity.Set(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}
