package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret")

	token, err := m.Issue("acc-1", "ana@example.com", "vendor", "sess-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "acc-1" || claims.SessionID != "sess-1" || claims.Role != "vendor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	m := NewTokenManager("secret")

	token, err := m.Issue("acc-1", "ana@example.com", "vendor", "sess-1", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret").Issue("acc-1", "a@example.com", "", "sess-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenManager("other").Parse(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestTokenManager_Parse_MissingSession(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "acc-1",
		"iss": issuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenManager("secret").Parse(signed); err == nil {
		t.Fatalf("expected token without sid to be rejected")
	}
}
