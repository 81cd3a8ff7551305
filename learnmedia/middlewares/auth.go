package middlewares

import (
	"context"
	"net/http"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/utils/tokens"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware gates a route group on the x-auth-token header.
// Missing token -> 401, invalid/expired token -> 403; on success the
// embedded user id rides the request context for the rest of handling.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get("x-auth-token")
			if tokenStr == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			claims, err := tokens.Parse(tokenStr, cfg.JWTSecret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}
