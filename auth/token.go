package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is the fixed validity window of a session token. There is no
// revocation: a token stays valid until it expires.
const TokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs a bearer token carrying the user ID.
func IssueToken(secret []byte, userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenLifetime).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and returns the embedded user ID.
// Any failure collapses to ErrInvalidToken.
func ParseToken(secret []byte, tokenString string) (uint, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	// JSON numbers decode as float64.
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
