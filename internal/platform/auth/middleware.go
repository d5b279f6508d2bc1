package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/kovfs/api/internal/platform/httpx"
)

type contextKey string

const adminContextKey contextKey = "github.com/kovfs/api/internal/platform/auth/admin"

// AdminUser returns the verified admin username stored on the context.
func AdminUser(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if name, ok := ctx.Value(adminContextKey).(string); ok {
		return name
	}
	return ""
}

// RequireAdmin gates a route subtree behind a valid Bearer session token.
func RequireAdmin(manager *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "missing session token", http.StatusUnauthorized))
				return
			}

			username, err := manager.Verify(token)
			if err != nil {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "invalid or expired session token", http.StatusUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
