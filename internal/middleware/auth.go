package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"cyber-bank-auth/internal/token"
)

type tokenParser interface {
	Parse(tokenString string) (token.Claims, error)
}

type contextKey string

const claimsContextKey contextKey = "token_claims"

// ScopeGate guards protected boundaries. Each request walks the same checks
// in order: header present, header splits into scheme and credential,
// scheme is Bearer, token parses, token scopes cover the required set.
// Every rejection is an identical bare forbidden response so callers cannot
// probe which check failed; the concrete reason only reaches debug logs.
type ScopeGate struct {
	parser tokenParser
}

func NewScopeGate(parser tokenParser) *ScopeGate {
	return &ScopeGate{parser: parser}
}

// Require returns a decorator enforcing the given scope set. On success the
// request is forwarded unchanged, with the parsed claims additionally made
// available to downstream handlers via the request context.
func (g *ScopeGate) Require(required ...token.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				forbid(w, r, "authorization header missing")
				return
			}

			scheme, credential, found := strings.Cut(header, " ")
			if !found {
				forbid(w, r, "authorization header has no credential")
				return
			}
			if scheme != "Bearer" {
				forbid(w, r, "authorization scheme is not Bearer")
				return
			}

			claims, err := g.parser.Parse(credential)
			if err != nil {
				forbid(w, r, "token rejected", "error", err)
				return
			}

			if !token.HasAll(claims.Scopes, required) {
				forbid(w, r, "token scopes insufficient",
					"granted", token.Strings(claims.Scopes),
					"required", token.Strings(required))
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims attached by the gate, if any.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(token.Claims)
	return claims, ok
}

func forbid(w http.ResponseWriter, r *http.Request, reason string, attrs ...any) {
	args := append([]any{"path", r.URL.Path, "reason", reason}, attrs...)
	slog.Debug("request forbidden", args...)
	w.WriteHeader(http.StatusForbidden)
}
