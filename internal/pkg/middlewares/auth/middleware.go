package auth

import (
	"context"
	"net/http"
	"strings"

	"fleetservice/internal/service/auth"
)

type TokenVerifier interface {
	VerifyToken(tokenString string) (*auth.Claims, error)
}

type contextKey struct{}

var claimsKey contextKey

// ClaimsFromContext returns the verified claims placed by Middleware, nil
// when the request never passed through it.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// Middleware guards a route with a bearer token and an allowed-role list.
// An empty role list accepts any authenticated user.
func Middleware(verifier TokenVerifier, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if len(allowedRoles) > 0 && !roleAllowed(claims.UserType, allowedRoles) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roleAllowed(userType string, allowedRoles []string) bool {
	for _, role := range allowedRoles {
		if role == userType {
			return true
		}
	}
	return false
}
