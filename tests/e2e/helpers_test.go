//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/opsdesk-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/opsdesk-backend/internal/app"
	"github.com/heartmarshall/opsdesk-backend/internal/auth"
	"github.com/heartmarshall/opsdesk-backend/internal/config"
)

const (
	testJWTSecret  = "e2e-secret-at-least-32-chars-long!!"
	testJWTIssuer  = "https://auth.e2e.test/auth/v1"
	testAudience   = "authenticated"
	testSealingKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     testJWTSecret,
			JWTIssuer:     testJWTIssuer,
			JWTAudience:   testAudience,
			AdminRolesRaw: "admin,service_role",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		RateLimit:   config.RateLimitConfig{RequestsPerMinute: 10_000},
		Credentials: config.CredentialsConfig{SealingKey: testSealingKey},
		ImageGen:    config.ImageGenConfig{Model: "dall-e-3", Size: "1024x1024", Timeout: 5 * time.Second},
		Metrics:     config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	handler, err := app.NewHandler(cfg, logger, pool, prometheus.NewRegistry())
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience),
	}
}

// token mints an access token for a fresh user with the given role.
func (ts *testServer) token(t *testing.T, role string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(uuid.New(), role, 15*time.Minute)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	return ts.token(t, "admin")
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()
	status, raw := ts.do(t, method, path, body, token)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
