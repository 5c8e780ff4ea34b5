package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wallmagic/internal/common"
)

// Claims carries the registered JWT claims plus the numeric account ID.
// Subject holds the normalized account email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenIssuer signs and verifies JWTs with a single configured HMAC secret,
// algorithm and lifetime. The zero value is not usable; construct with
// NewTokenIssuer.
type TokenIssuer struct {
	secret   []byte
	method   jwt.SigningMethod
	validity time.Duration
	now      func() time.Time
}

// NewTokenIssuer builds an issuer for the named algorithm. Only the HMAC
// family (HS256, HS384, HS512) is accepted.
func NewTokenIssuer(secret string, algorithm string, validity time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenIssuer{
		secret:   []byte(secret),
		method:   method,
		validity: validity,
		now:      time.Now,
	}, nil
}

// Issue returns a signed token for the given subject and account ID together
// with the token lifetime in seconds. Every token carries a unique jti.
func (i *TokenIssuer) Issue(subject string, userID int64) (string, int64, error) {
	now := i.now()

	token := jwt.NewWithClaims(i.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", 0, err
	}

	return tokenString, int64(i.validity.Seconds()), nil
}

// Verify parses and validates tokenString. Failures map onto sentinels:
// common.ErrTokenSignature for a wrong signature or algorithm,
// common.ErrTokenExpired for a correctly signed but expired token, and
// common.ErrTokenMalformed for everything else.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}
