// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures. Callers that gate requests collapse all three
// to 401; the distinction is kept for logging and tests.
var (
	// ErrTokenMalformed means the token is not structurally a JWT.
	ErrTokenMalformed = errors.New("auth: malformed token")
	// ErrTokenSignature means the signature does not verify (tampered
	// token, wrong key, or wrong signing algorithm).
	ErrTokenSignature = errors.New("auth: invalid token signature")
	// ErrTokenExpired means the token was valid but its expiry has passed.
	ErrTokenExpired = errors.New("auth: token expired")
)

const issuer = "clubsite"

// TokenService issues and validates signed, time-limited bearer tokens.
// Tokens are stateless: there is no revocation list, expiry is the only
// invalidation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
// All issued tokens share the same fixed lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a compact HS256-signed token carrying the subject identity
// and an expiration timestamp.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a token and returns its
// subject. Failures are reported as ErrTokenMalformed, ErrTokenSignature
// or ErrTokenExpired.
func (s *TokenService) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		default:
			// Signature mismatch and rejected signing methods both land
			// here; neither is distinguishable to an attacker.
			return "", ErrTokenSignature
		}
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
