package random

import (
	"crypto/rand"
	"encoding/base64"
)

// Random provides id generation that can be mocked for testing
type Random interface {
	// ID generates a fresh opaque unique id with the given prefix
	ID(prefix string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID generates a random URL-safe id with the given prefix
func (r *CryptoRandom) ID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
