// Package auth implements the credential primitives of the server:
// bcrypt password hashing and HMAC-signed JWT issuance/verification.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wallmagic/internal/common"
)

// maxPasswordBytes is the bcrypt input limit. Bytes past this offset never
// participate in the hash, so inputs are truncated to it before hashing
// and verification.
const maxPasswordBytes = 72

// PasswordHasher derives and checks salted bcrypt hashes with a fixed cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Costs outside the supported range are clamped to it.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted hash of password. The salt is random, so two calls
// with the same password produce different hashes.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(clip([]byte(password)), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches the encoded hash. A mismatch is
// (false, nil); an encoded value that is not a parseable bcrypt hash is
// (false, err) with common.ErrHashMalformed in the chain.
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), clip([]byte(password)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrHashMalformed, err)
	}
}

// clip truncates b to the bcrypt input limit.
func clip(b []byte) []byte {
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}
