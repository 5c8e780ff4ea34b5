// Package client contains client-side building blocks for WallMagic.
//
// # Overview
//
// The package provides:
//  1. Response types mirroring the server's API payloads: AuthResult,
//     UserView, Token, and HealthStatus.
//  2. A concrete HTTP implementation (see HTTPClient) that talks to the
//     account API, remembers the bearer token from the last successful
//     register or login, and maps HTTP statuses to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable (the server cannot be reached or is unhealthy) and
// ErrUnauthorized (missing, invalid, or expired credentials). Other error
// responses surface the server's detail message in the error text.
//
// Concurrency & Contexts
//
// HTTPClient is not safe for concurrent use: the stored access token is
// written on login. All operations accept context.Context and honor
// cancellation/timeouts.
package client
