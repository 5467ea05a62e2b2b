package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext.
// Unsalted on purpose: stored digests from the original deployment must
// keep verifying, and login compares digests by string equality.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
