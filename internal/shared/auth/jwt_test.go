package auth

import (
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("CH_JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{Sub: "google:123", Email: "user@example.com", Name: "Jordan"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three token segments, got %q", token)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Sub != "google:123" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Exp <= claims.Iat {
		t.Fatalf("expected expiry after issue time: %+v", claims)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("CH_JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{Sub: "google:123"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := VerifyJWT(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("CH_JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{
		Sub: "google:123",
		Iat: time.Now().UTC().Add(-2 * time.Hour).Unix(),
		Exp: time.Now().UTC().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	if _, err := VerifyJWT(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("CH_JWT_SECRET", "test-secret")

	for _, token := range []string{"", "a.b", "a.b.c.d", "!!!.@@@.###"} {
		if _, err := VerifyJWT(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
