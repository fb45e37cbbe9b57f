package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/benefitnavigator/backend/internal/middlewares"
	"go.uber.org/zap"
)

// SessionChecker is the interface that wraps the session lookup of a client namespace
type SessionChecker interface {
	// Method HasSession reports whether the namespace is logged in to the account with the email.
	//
	// If the session can not be read, the error will be returned together with "false" value.
	HasSession(ctx context.Context, clientID, email string) (bool, error)
}

// AuthMiddleware validates the JWT access token and requires an active session.
//
// The client namespace of the token replaces the one resolved from the X-Client-ID header.
// The token must name the account currently logged in to that namespace, so logout and
// re-registration with another email both revoke it.
func AuthMiddleware(tokenGenerator *TokenGenerator, sessions SessionChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			// If no token found, return 401
			if token == "" {
				writeUnauthorized(w, "authentication required")
				return
			}

			clientID, email, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			authed, err := sessions.HasSession(r.Context(), clientID, email)
			if err != nil {
				logger.Error("failed to check session", zap.String("client_id", clientID), zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))
				return
			}
			if !authed {
				writeUnauthorized(w, "session expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(middlewares.WithClientID(r.Context(), clientID)))
		})
	}
}

// extractToken reads the token from the Authorization header or the access_token cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
