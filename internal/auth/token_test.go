package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("68b1c2d3e4f5a6b7c8d9e0f1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != "68b1c2d3e4f5a6b7c8d9e0f1" {
		t.Errorf("subject = %q, want %q", subject, "68b1c2d3e4f5a6b7c8d9e0f1")
	}
}

func TestTokenService_Expired(t *testing.T) {
	// A negative TTL produces a token whose expiry is already in the past.
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Issue("68b1c2d3e4f5a6b7c8d9e0f1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Validate error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuing := NewTokenService(testSecret, time.Hour)
	validating := NewTokenService("another-secret-key-32-bytes-long", time.Hour)

	token, err := issuing.Issue("68b1c2d3e4f5a6b7c8d9e0f1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = validating.Validate(token)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("Validate error = %v, want ErrTokenSignature", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("68b1c2d3e4f5a6b7c8d9e0f1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Validate(tampered); err == nil {
		t.Fatal("tampered token validated successfully")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not_a_jwt", "not-a-token"},
		{"two_segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.raw)
			if !errors.Is(err, ErrTokenMalformed) {
				t.Fatalf("Validate error = %v, want ErrTokenMalformed", err)
			}
		})
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	// Token using the "none" algorithm must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "68b1c2d3e4f5a6b7c8d9e0f1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token: %v", err)
	}

	if _, err := svc.Validate(raw); err == nil {
		t.Fatal("token with alg=none validated successfully")
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("token without subject validated successfully")
	}
}
