package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/session"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func issueTestToken(t *testing.T, sessions *session.Issuer) string {
	t.Helper()
	token, err := sessions.Issue(&model.User{ID: "u1", Name: "Alice", Role: model.RoleUser})
	require.NoError(t, err)
	return token
}

func identityEcho(t *testing.T, captured **identity.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		*captured = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireWithValidToken(t *testing.T) {
	sessions := session.NewIssuer(testKey, time.Hour)
	auth := NewSessionAuthenticator(sessions)

	var got *identity.Identity
	handler := auth.Require(identityEcho(t, &got))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, sessions))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}

func TestRequireRejectsMissingAndBadTokens(t *testing.T) {
	sessions := session.NewIssuer(testKey, time.Hour)
	auth := NewSessionAuthenticator(sessions)

	handler := auth.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	headers := []string{"", "Bearer garbage", "Token abc", "Bearer "}
	for _, h := range headers {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}
}

func TestOptionalPassesAnonymous(t *testing.T) {
	sessions := session.NewIssuer(testKey, time.Hour)
	auth := NewSessionAuthenticator(sessions)

	var got *identity.Identity
	handler := auth.Optional(identityEcho(t, &got))

	// No token: anonymous
	req := httptest.NewRequest("GET", "/projects", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got)

	// Bad token: still anonymous, not an error
	req = httptest.NewRequest("GET", "/projects", nil)
	req.Header.Set("Authorization", "Bearer tampered")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got)

	// Valid token: identity attached
	req = httptest.NewRequest("GET", "/projects", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, sessions))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}
