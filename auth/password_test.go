package auth

import (
	"strings"
	"testing"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"usuario.riego-01@dominio.com.mx", true},
		{"a@b", false},
		{"@dominio.com", false},
		{"usuario@", false},
		{"usuario dominio.com", false},
		{"", false},
		{"a@b.c", false}, // TLD needs at least two letters
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abc123", true},
		{"abc123$", true},
		{"A1b2C3d4!", true},
		{"abcdef", false},  // no digit
		{"123456", false},  // no letter
		{"a1", false},      // too short
		{"abc 123", false}, // space outside charset
		{"abc123^", false}, // ^ outside charset
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidPassword(tc.password); got != tc.want {
			t.Errorf("ValidPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("abc123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash should be a bcrypt string, got %q", hash)
	}
	if hash == "abc123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "abc123") {
		t.Error("CheckPassword() should accept the correct password")
	}
	if CheckPassword(hash, "abc124") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("abc123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("abc123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ by salt")
	}
}
