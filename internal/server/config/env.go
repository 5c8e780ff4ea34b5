package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"wallmagic/internal/flagx"
)

// parseEnv overlays Config values from environment variables. If the -c or
// -config flag names an env file, that file is loaded first and must exist;
// otherwise a .env file in the working directory is loaded when present.
//
// Recognized variables:
//
//	ADDRESS                      bind address (e.g., ":8000")
//	DATABASE_URL                 PostgreSQL DSN; empty keeps the in-memory store
//	SECRET_KEY                   JWT HMAC secret
//	ALGORITHM                    JWT signing algorithm (e.g., "HS256")
//	ACCESS_TOKEN_EXPIRE_MINUTES  access token lifetime, minutes
//	HASH_COST                    bcrypt cost for new password hashes
//	ALLOWED_ORIGINS              comma-separated CORS origins
//	APP_NAME                     service name
//	VERSION                      service version
//	DEBUG                        "true" enables debug mode
func parseEnv(config *Config) {
	envFile := flagx.EnvFileFlags()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else {
		// Optional .env in the working directory.
		_ = godotenv.Load()
	}

	config.EndpointAddr = getEnvString("ADDRESS", config.EndpointAddr)
	config.DatabaseDSN = getEnvString("DATABASE_URL", config.DatabaseDSN)
	config.SecretKey = getEnvString("SECRET_KEY", config.SecretKey)
	config.Algorithm = getEnvString("ALGORITHM", config.Algorithm)
	config.HashCost = getEnvInt("HASH_COST", config.HashCost)
	config.AllowedOrigins = getEnvString("ALLOWED_ORIGINS", config.AllowedOrigins)
	config.AppName = getEnvString("APP_NAME", config.AppName)
	config.Version = getEnvString("VERSION", config.Version)
	config.Debug = getEnvBool("DEBUG", config.Debug)

	minutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", int(config.AccessTokenValidityDuration.Minutes()))
	config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
