package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash = %q, want bcrypt format", hash)
	}

	if err := VerifyPassword(hash, "correct-horse"); err != nil {
		t.Errorf("VerifyPassword() with correct password error = %v", err)
	}
	if err := VerifyPassword(hash, "battery-staple"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword() with wrong password error = %v, want ErrPasswordMismatch", err)
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword() error = %v, want ErrPasswordTooShort", err)
	}
}
