package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey struct{ name string }

var identityKey = contextKey{"identity_email"}

// BearerIdentity records the email claim of a valid access token in the
// request context. It never rejects: the admin endpoints take their identity
// from the admin_email query parameter and only fall back to the token.
// Expects jwtauth.Verifier upstream.
func BearerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			next.ServeHTTP(w, r)
			return
		}

		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			next.ServeHTTP(w, r)
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the authenticated email, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	return email, ok
}
