package config

// Config holds runtime settings for the WallMagic CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
type Config struct {
	ServerEndpointAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally from a .env file) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
