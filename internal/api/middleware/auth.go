package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/auth"
)

type contextKey string

const sessionUserKey contextKey = "session_user"

// Auth validates the bearer token and stashes the session user it carries in
// the request context.
func Auth(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string

			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
			if token == "" {
				token = r.Header.Get("X-Auth-Token")
			}
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user := claims.SessionUser()
			ctx := context.WithValue(r.Context(), sessionUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionUser extracts the authenticated session user from the context.
func GetSessionUser(ctx context.Context) (admin.SessionUser, bool) {
	user, ok := ctx.Value(sessionUserKey).(admin.SessionUser)
	return user, ok
}
