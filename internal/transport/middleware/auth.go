package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/opsdesk-backend/internal/auth"
	"github.com/heartmarshall/opsdesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth requires a valid bearer token and stores the caller's id and role in
// the request context. isAdmin decides which roles count as dashboard admins.
func Auth(validator tokenValidator, isAdmin func(role string) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithRole(ctx, id.Role, isAdmin(id.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
