// Package config loads runtime configuration for the WallMagic CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional .env file (see parseEnv) selected via flags: -c or -config,
//     plus process environment variables.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP endpoint
//
// Supported environment variables
//
//	SERVER_ADDR   base URL of the backend HTTP endpoint
//
// Primary API
//
//   - type Config                     — holds ServerEndpointAddr
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
