package middleware

import (
	"net/http"
)

// RequireGroup returns middleware that allows access only to callers that
// belong to at least one of the given groups.
func RequireGroup(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusForbidden, "not signed in")
				return
			}
			for _, g := range allowed {
				if id.InGroup(g) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeJSONError(w, http.StatusForbidden, "forbidden")
		})
	}
}
