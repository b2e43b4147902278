package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Credentials CredentialsConfig `yaml:"credentials"`
	ImageGen    ImageGenConfig    `yaml:"image_gen"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds settings for verifying access tokens issued by the BaaS.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"     env:"AUTH_JWT_SECRET"     env-required:"true"`
	JWTIssuer     string `yaml:"jwt_issuer"     env:"AUTH_JWT_ISSUER"`
	JWTAudience   string `yaml:"jwt_audience"   env:"AUTH_JWT_AUDIENCE"   env-default:"authenticated"`
	AdminRolesRaw string `yaml:"admin_roles"    env:"AUTH_ADMIN_ROLES"    env-default:"admin"`
}

// AdminRoles returns the role claims that grant dashboard access.
func (c AuthConfig) AdminRoles() []string {
	var roles []string
	for _, r := range strings.Split(c.AdminRolesRaw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// IsAdminRole checks if the given role grants dashboard access.
func (c AuthConfig) IsAdminRole(role string) bool {
	return slices.Contains(c.AdminRoles(), role)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM" env-default:"300"`
}

// CredentialsConfig holds the key used to seal stored credential passwords.
// SealingKey is 32 bytes, hex encoded.
type CredentialsConfig struct {
	SealingKey string `yaml:"sealing_key" env:"CREDENTIALS_SEALING_KEY" env-required:"true"`
}

// ImageGenConfig holds settings for the character image generation API.
// Generation is disabled when APIKey is empty.
type ImageGenConfig struct {
	APIKey  string        `yaml:"api_key"  env:"IMAGE_GEN_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"IMAGE_GEN_BASE_URL"`
	Model   string        `yaml:"model"    env:"IMAGE_GEN_MODEL"   env-default:"dall-e-3"`
	Size    string        `yaml:"size"     env:"IMAGE_GEN_SIZE"    env-default:"1024x1024"`
	Timeout time.Duration `yaml:"timeout"  env:"IMAGE_GEN_TIMEOUT" env-default:"60s"`
}

// Enabled reports whether image generation is configured.
func (c ImageGenConfig) Enabled() bool {
	return c.APIKey != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
