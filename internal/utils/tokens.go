package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// NewResetToken returns a URL-safe random token. nBytes defaults to 32
// (256 bits), which matches the minimum entropy required for reset links.
func NewResetToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
