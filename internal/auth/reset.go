package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidResetToken covers unknown, used and expired reset tokens alike.
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// NewResetToken returns a random token to mail to the operator and the hash
// to store in its place.
func NewResetToken() (token, hash string) {
	token = rand.Text()
	return token, HashResetToken(token)
}

// HashResetToken returns the hex SHA-256 of a reset token.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
