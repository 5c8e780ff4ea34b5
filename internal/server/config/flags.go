package config

import (
	"flag"
	"os"
	"time"

	"wallmagic/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN; empty keeps the in-memory store
//	-s string   JWT HMAC secret key
//	-g string   JWT signing algorithm (e.g., "HS256")
//	-t int      access token validity, minutes
//	-w int      bcrypt cost for new password hashes
//	-o string   comma-separated CORS origins
//	-v          enable debug mode
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-g", "-t", "-w", "-o", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.Algorithm, "g", config.Algorithm, "JWT signing algorithm")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.IntVar(&config.HashCost, "w", config.HashCost, "bcrypt cost")
	fs.StringVar(&config.AllowedOrigins, "o", config.AllowedOrigins, "allowed CORS origins")
	fs.BoolVar(&config.Debug, "v", config.Debug, "debug mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
