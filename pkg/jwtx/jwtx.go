// Package jwtx issues and verifies the symmetric session tokens used by the
// society API. One service signs and verifies, so HS256 with a shared secret
// is sufficient; there is no key rotation or JWKS surface.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a login session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpiredToken = errors.New("jwtx: token expired")
)

// Claims carried by a session token.
type Claims struct {
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewCodec(secret, issuer string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("jwtx: empty signing secret")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Codec{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Sign mints a session token for the given subject and role.
func (c *Codec) Sign(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
