// Package cli provides the interactive WallMagic command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL.
// Typical flow: register or log in, then inspect the account with 'me'
// while the API client carries the issued bearer token.
//
// Key features:
//   - Register / Login / Logout
//   - Show the current account (me, whoami)
//   - Check server availability (health)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
