package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	jwtinfra "github.com/go-crm-api/internal/infrastructure/jwt"
)

type contextKey string

const SubjectKey contextKey = "subject"

// Auth returns middleware that validates the Bearer JWT and injects the
// authenticated subject into the request context. Every failure — missing
// header, malformed token, bad signature, expiry — surfaces to the client as
// the same 401; the specific kind is only logged.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			subject, err := provider.Verify(tokenStr)
			if err != nil {
				slog.Debug("rejected bearer token", "path", r.URL.Path, "err", err)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext extracts the authenticated subject from the request context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(SubjectKey).(string)
	return s, ok
}
