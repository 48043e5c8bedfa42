// Package auth issues and verifies the HS256 access tokens handed out at login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "hospitality-hub"

// Claims is the access token payload. SessionID ties the token to a server-side
// session so it can be revoked on sign-out.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses access tokens.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue signs a token for accountID bound to sessionID.
func (m *TokenManager) Issue(accountID, email, role, sessionID string, expiresAt time.Time) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Email:     email,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, algorithm and expiry, and returns the claims.
func (m *TokenManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.SessionID == "" {
		return nil, errors.New("parse access token: incomplete claims")
	}
	return claims, nil
}
