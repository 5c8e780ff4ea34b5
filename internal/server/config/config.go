// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the WallMagic server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs. Do not use test defaults in prod.
//   - Algorithm: JWT signing algorithm name (HMAC family, e.g. "HS256").
//   - AccessTokenValidityDuration: access token lifetime.
//   - HashCost: bcrypt cost used when hashing new passwords.
//   - AllowedOrigins: comma-separated CORS origins, "*" for any.
//   - AppName / Version: identity reported by the root and health endpoints.
//   - Debug: enables debug logging and verbose error payloads.
type Config struct {
	EndpointAddr                string
	DatabaseDSN                 string
	SecretKey                   string
	Algorithm                   string
	AccessTokenValidityDuration time.Duration
	HashCost                    int
	AllowedOrigins              string
	AppName                     string
	Version                     string
	Debug                       bool
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = ""
	c.SecretKey = "your-super-secret-key-change-in-production"
	c.Algorithm = "HS256"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.HashCost = bcrypt.DefaultCost
	c.AllowedOrigins = "*"
	c.AppName = "WallMagic"
	c.Version = "1.0.0"
	c.Debug = false
}

// CORSOrigins returns AllowedOrigins split on commas, with surrounding
// whitespace and empty entries removed.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables (optionally seeded from an env file) and
// finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
