package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{6,}$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

// ValidEmail reports whether the address has a usuario@dominio.com shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword enforces the registration policy: at least 6 characters from
// a restricted charset, with at least one letter and one digit.
func ValidPassword(password string) bool {
	return passwordCharset.MatchString(password) &&
		hasLetter.MatchString(password) &&
		hasDigit.MatchString(password)
}

// HashPassword returns a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
// bcrypt's comparison is constant-time with respect to the password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
