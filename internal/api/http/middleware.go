package http

import (
	"context"
	"net/http"
	"strings"

	"volunteerhub-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "account_claims"

// AuthMiddleware validates the Bearer token and stores the account claims
// on the request context
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "missing or malformed authorization header",
				})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "invalid or expired token",
				})
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the authenticated account claims stored by
// AuthMiddleware, or nil on unauthenticated routes
func claimsFrom(r *http.Request) *security.AccountClaims {
	claims, _ := r.Context().Value(claimsContextKey).(*security.AccountClaims)
	return claims
}
