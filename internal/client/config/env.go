package config

import (
	"os"

	"github.com/joho/godotenv"

	"wallmagic/internal/flagx"
)

// parseEnv overlays Config fields from the environment. An env file named
// with -c/-config is loaded first and must exist; otherwise a .env file in
// the working directory is tried silently.
func parseEnv(config *Config) {
	envFile := flagx.EnvFileFlags()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v, ok := os.LookupEnv("SERVER_ADDR"); ok && v != "" {
		config.ServerEndpointAddr = v
	}
}
