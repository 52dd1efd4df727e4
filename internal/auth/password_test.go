package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "" {
		t.Fatal("HashPassword returned empty digest")
	}
	if !strings.HasPrefix(digest, "$argon2id$") {
		t.Fatalf("digest has unexpected format: %s", digest)
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatal("two digests of the same password are identical; salt is not random")
	}

	for _, digest := range []string{first, second} {
		valid, err := VerifyPassword("changeme", digest)
		if err != nil {
			t.Fatalf("VerifyPassword error: %v", err)
		}
		if !valid {
			t.Fatalf("digest %s rejected its own password", digest)
		}
	}
}

func TestVerifyPassword_Correct(t *testing.T) {
	digest, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := VerifyPassword("changeme", digest)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !valid {
		t.Fatal("Correct password was rejected")
	}
}

func TestVerifyPassword_Wrong(t *testing.T) {
	digest, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := VerifyPassword("wrongpassword", digest)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if valid {
		t.Fatal("Wrong password was accepted")
	}
}

func TestVerifyPassword_ForeignParams(t *testing.T) {
	// Digest created with different cost parameters (m=65536,t=1,p=4) must
	// still verify, since parameters are read from the digest itself.
	digest := "$argon2id$v=19$m=65536,t=1,p=4$mucMvOaS6lZ2LWNS1OEFKw$UYEWv8cvCOO6l2zGeqv3JPVe1nyy0x9GXBfYEuDM544"

	valid, err := VerifyPassword("changeme", digest)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !valid {
		t.Fatal("digest with foreign parameters rejected correct password")
	}

	valid, err = VerifyPassword("wrongpassword", digest)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if valid {
		t.Fatal("digest with foreign parameters accepted wrong password")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not_a_digest", "plaintext"},
		{"wrong_algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"bad_salt_encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyPassword("changeme", tt.digest); err == nil {
				t.Fatal("expected error for malformed digest")
			}
		})
	}
}
