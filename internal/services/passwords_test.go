package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected argon2id hash, got %q", hash)
	}
	if !VerifyPassword("rahasia123", hash) {
		t.Error("expected password to verify")
	}
	if VerifyPassword("salah", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if !VerifyPassword("rahasia123", string(hash)) {
		t.Error("expected bcrypt hash to verify")
	}
	if VerifyPassword("salah", string(hash)) {
		t.Error("expected wrong password to fail")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("x", "$argon2id$broken") {
		t.Error("expected malformed hash to fail verification")
	}
}
