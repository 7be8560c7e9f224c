package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyber-bank-auth/internal/token"
)

func newGateHandler(t *testing.T, codec *token.Codec, required ...token.Scope) http.Handler {
	t.Helper()

	gate := NewScopeGate(codec)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return gate.Require(required...)(next)
}

func TestScopeGateRejections(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec([]byte("test-secret"))
	handler := newGateHandler(t, codec, token.ScopeUser, token.ScopeUserInfo)

	userOnly, err := codec.Issue([]token.Scope{token.ScopeUser}, "subject-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	expired, err := codec.Issue(token.LoginScopes, "subject-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no credential after scheme", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"lowercase scheme", "bearer " + userOnly},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"insufficient scopes", "Bearer " + userOnly},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Every rejection must look identical from the outside.
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestScopeGateForwardsAuthorizedRequests(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec([]byte("test-secret"))

	t.Run("exact scope set", func(t *testing.T) {
		handler := newGateHandler(t, codec, token.ScopeUser, token.ScopeUserInfo)
		signed, err := codec.Issue(token.LoginScopes, "subject-1", time.Now().Add(time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("superset of required scopes", func(t *testing.T) {
		handler := newGateHandler(t, codec, token.ScopeUser)
		signed, err := codec.Issue(token.LoginScopes, "subject-1", time.Now().Add(time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestScopeGateExposesClaims(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec([]byte("test-secret"))
	gate := NewScopeGate(codec)

	var got token.Claims
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	signed, err := codec.Issue(token.LoginScopes, "subject-42", time.Now().Add(time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	gate.Require(token.ScopeUser)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "subject-42", got.Subject)
	assert.Equal(t, token.LoginScopes, got.Scopes)
}
