package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/opsdesk-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:       splitList(cfg.AllowedOrigins),
		AllowedMethods:       splitList(cfg.AllowedMethods),
		AllowedHeaders:       splitList(cfg.AllowedHeaders),
		ExposedHeaders:       []string{RequestIDHeader},
		AllowCredentials:     cfg.AllowCredentials,
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
