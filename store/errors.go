package store

import "errors"

var (
	// ErrEmailTaken signals a duplicate registration attempt.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike so
	// login responses carry no user-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound signals an empty result where the caller expects one row.
	ErrNotFound = errors.New("record not found")
)
