// Package hash provides content fingerprints for cache identity and recipe
// integrity.
//
// Obscura fingerprints table sets so the rune lookup index for a given list of
// alphabets is built once and shared across calls, and fingerprints recipe
// options so an edited recipe file can be told apart from the saved one. The
// package provides a real implementation using crypto/sha256 and a fake
// implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Hasher provides an abstraction for fingerprinting operations.
type Hasher interface {
	// HashStrings computes the hash of an ordered list of strings.
	// Boundaries between parts are significant: ("ab", "c") and ("a", "bc")
	// hash differently.
	HashStrings(parts ...string) string

	// HashBytes computes the hash of raw bytes.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashStrings computes the SHA-256 hash of the length-prefixed parts.
func (h *SHA256Hasher) HashStrings(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		_, _ = hasher.Write([]byte(strconv.Itoa(len(part))))
		_, _ = hasher.Write([]byte{':'})
		_, _ = hasher.Write([]byte(part))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashBytes computes the SHA-256 hash of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Strings fingerprints parts with the default SHA-256 hasher.
func Strings(parts ...string) string {
	return (&SHA256Hasher{}).HashStrings(parts...)
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for a specific input (for testing).
// Multiple parts are keyed by their NUL-joined form.
func (h *FakeHasher) SetHash(input, hash string) {
	h.hashes[input] = hash
}

// HashStrings returns the predetermined hash for the joined parts.
func (h *FakeHasher) HashStrings(parts ...string) string {
	return h.lookup(strings.Join(parts, "\x00"))
}

// HashBytes returns the predetermined hash for data.
func (h *FakeHasher) HashBytes(data []byte) string {
	return h.lookup(string(data))
}

func (h *FakeHasher) lookup(key string) string {
	if hash, ok := h.hashes[key]; ok {
		return hash
	}
	// Default hash if not set
	return "fakehash"
}
