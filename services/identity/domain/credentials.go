// Package domain holds the identity context's single-account credential check.
package domain

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the user ID or password is wrong.
// Both failure modes map to the same error so login does not reveal which
// field was incorrect.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the shop's single account. The password is held only as a
// bcrypt hash; the plaintext is discarded at construction.
type Credentials struct {
	userID       string
	passwordHash []byte
}

// NewCredentials hashes the configured password.
func NewCredentials(userID, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Credentials{userID: userID, passwordHash: hash}, nil
}

// Verify checks a login attempt. Returns ErrInvalidCredentials unless both
// the user ID and the password match.
func (c *Credentials) Verify(userID, password string) error {
	if userID != c.userID {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UserID returns the account's user ID.
func (c *Credentials) UserID() string {
	return c.userID
}
