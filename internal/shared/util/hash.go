package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// OwnerKey returns a filesystem-safe identifier derived from a user ID.
func OwnerKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])
}
