package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// ShortHash returns the first 8 hex digits of the BLAKE3 digest of s.
func ShortHash(s string) string {
	sum := blake3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:4])
}

// ContentHash returns the full BLAKE3 hex digest of data.
func ContentHash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
