// Package common defines shared constants and sentinel errors used across
// client and server layers of WallMagic. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Registration conflicts. Also returned for unique constraint violations
	// raised by the insert itself.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// Input validation errors, wrapped with a human-readable reason.
	ErrValidation = errors.New("validation error")

	// Token lifecycle errors.
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	// Stored password hash integrity errors.
	ErrHashMalformed = errors.New("password hash malformed")

	// ErrorUnauthorized = errors.New("unauthorized")
)
