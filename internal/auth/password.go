package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinTokenLength is the minimum accepted API token length.
const MinTokenLength = 12

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenTooShort = errors.New("token must be at least 12 characters")
	ErrTokenTooLong  = errors.New("token exceeds maximum length of 72 bytes")
)

// HashToken creates a bcrypt hash of the token.
func HashToken(token string, cost int) (string, error) {
	if len(token) < MinTokenLength {
		return "", ErrTokenTooShort
	}
	// bcrypt has a 72-byte limit
	if len(token) > 72 {
		return "", ErrTokenTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckToken compares a token with its hash.
func CheckToken(token, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

// GenerateToken creates a cryptographically secure random token.
func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
