package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken32 returns an opaque 32-hex-character token (no separators or
// prefixes), used for session identifiers.
func NewToken32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
