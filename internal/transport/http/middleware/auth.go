package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gcn-portal/internal/domain"
	jwtinfra "github.com/gcn-portal/internal/infrastructure/jwt"
)

type contextKey string

const identityKey contextKey = "identity"

type tokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, claims *jwtinfra.Claims) (domain.Identity, error)
}

// Auth returns middleware that validates the Bearer JWT, resolves the caller
// identity and injects it into the request context. A request without a
// valid identity is refused with 403.
func Auth(verifier tokenVerifier, resolver identityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusForbidden, "not signed in")
				return
			}
			claims, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}
			id, err := resolver.Resolve(r.Context(), claims)
			if err != nil {
				if errors.Is(err, domain.ErrUpstream) {
					writeJSONError(w, http.StatusBadGateway, "identity provider unavailable")
					return
				}
				writeJSONError(w, http.StatusForbidden, "not signed in")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the caller identity from the request context.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok && id.Sub != ""
}
