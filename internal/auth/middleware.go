package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is an unexported type for context keys in this package.
// A package-private key type means only this package can read or write
// the claims value — no collisions with other packages' context values.
type contextKey string

const claimsKey contextKey = "adminClaims"

const bearerPrefix = "Bearer "

// ExtractToken reads the bearer token from an Authorization header value.
// Returns "" when the header is absent or lacks the "Bearer " prefix.
// A missing token is not an error here — the middleware decides whether
// that means 401.
func ExtractToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}

// RequireAdmin is a middleware that enforces authentication on admin routes.
//
// It reads the JWT from the Authorization header, validates it, and stores
// the claims in the request context. Missing or invalid tokens stop the
// chain with 401 — the protected handler never runs, and storage is never
// touched.
func RequireAdmin(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, "No token provided")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retrieves the authenticated admin's claims.
// Returns (nil, false) if the request did not pass RequireAdmin.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized","message":"` + message + `"}`))
}
