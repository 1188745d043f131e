// Package types defines core primitive types shared by the keyderive packages.
package types

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length of a SHA-256 digest in bytes.
const HashSize = 32

// Hash160Size is the length of a HASH160 (RIPEMD-160 of SHA-256) digest in bytes.
const Hash160Size = 20

// Hash represents a 256-bit hash value.
type Hash [HashSize]byte

// Hash160 represents a 160-bit public key hash.
type Hash160 [Hash160Size]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// String returns the hex-encoded hash.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// HexToHash converts a hex string to a Hash.
// Returns an error if the string is not exactly 64 hex characters.
func HexToHash(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}
