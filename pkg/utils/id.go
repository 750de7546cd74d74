// Package utils holds small helpers shared across the server.
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random 32-character hex identifier.
func NewID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err) // rand.Read only fails if the OS entropy source is broken
	}
	return hex.EncodeToString(b)
}
