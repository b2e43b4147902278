package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Auth.AdminRoles()) == 0 {
		return fmt.Errorf("auth.admin_roles must list at least one role")
	}

	if _, err := ParseSealingKey(c.Credentials.SealingKey); err != nil {
		return fmt.Errorf("credentials.sealing_key: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

// ParseSealingKey decodes a hex-encoded 32-byte key.
func ParseSealingKey(raw string) ([32]byte, error) {
	var key [32]byte

	b, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return key, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("must be %d bytes (got %d)", len(key), len(b))
	}

	copy(key[:], b)
	return key, nil
}
