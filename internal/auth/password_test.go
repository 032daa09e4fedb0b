package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordAt72ByteBoundary(t *testing.T) {
	ok := strings.Repeat("a", 72)
	if _, err := HashPassword(ok); err != nil {
		t.Fatalf("72-byte password must hash, got error: %v", err)
	}

	tooLong := strings.Repeat("a", 73)
	if _, err := HashPassword(tooLong); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("73-byte password must fail with ErrPasswordTooLong, got: %v", err)
	}
}

// "あ" is 3 bytes in UTF-8: 24 characters fit exactly in 72 bytes,
// 25 characters do not.
func TestHashPasswordMultibyteBoundary(t *testing.T) {
	ok := strings.Repeat("あ", 24)
	if _, err := HashPassword(ok); err != nil {
		t.Fatalf("24-char multibyte password must hash, got error: %v", err)
	}

	tooLong := strings.Repeat("あ", 25)
	if _, err := HashPassword(tooLong); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("25-char multibyte password must fail with ErrPasswordTooLong, got: %v", err)
	}
}

func TestHashPasswordMinimumLength(t *testing.T) {
	if _, err := HashPassword("short7c"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("7-char password must fail with ErrPasswordTooShort, got: %v", err)
	}

	if _, err := HashPassword("exactly8"); err != nil {
		t.Fatalf("8-char password must hash, got error: %v", err)
	}

	// minimum counts characters, not bytes
	if _, err := HashPassword("あいうえおかきく"); err != nil {
		t.Fatalf("8-char multibyte password must hash, got error: %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !VerifyPassword("Password@123", hash) {
		t.Fatal("correct password must verify")
	}
	if VerifyPassword("WrongPassword", hash) {
		t.Fatal("wrong password must not verify")
	}
}
