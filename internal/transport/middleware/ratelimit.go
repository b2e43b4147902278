package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/opsdesk-backend/internal/config"
)

// RateLimit limits each client IP to cfg.RequestsPerMinute requests in a
// sliding one-minute window.
func RateLimit(cfg config.RateLimitConfig) Middleware {
	return httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
