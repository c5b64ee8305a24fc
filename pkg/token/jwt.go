package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CHEATEY13/Last/core"
)

// DevSecret is the insecure built-in fallback used when no signing
// secret is configured. Callers are expected to log a warning when
// falling back to it.
const DevSecret = "dev-secret-change-in-production"

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Claims carries the user ID in the subject of a registered claim set.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT implements core.TokenManager backed by symmetric HMAC.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

var _ core.TokenManager = (*JWT)(nil)

// New creates a JWT token manager. An empty secret degrades to the
// built-in dev secret; an unset ttl degrades to DefaultTTL. Negative
// ttls are kept as-is so tests can mint already-expired tokens.
func New(secret string, ttl time.Duration) *JWT {
	if secret == "" {
		secret = DevSecret
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &JWT{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the user ID, valid for the
// configured ttl.
func (j *JWT) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})

	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token and extracts the user ID. Expired tokens
// yield core.ErrTokenExpired; everything else wrong yields
// core.ErrTokenInvalid.
func (j *JWT) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", core.ErrTokenExpired
		}
		return "", core.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", core.ErrTokenInvalid
	}

	return claims.Subject, nil
}
