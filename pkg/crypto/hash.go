// Package crypto provides the hashing, secret key and public key
// primitives used to derive addresses and WIF strings.
package crypto

import (
	"crypto/sha256"

	"github.com/Klingon-tech/keyderive/pkg/types"
	"golang.org/x/crypto/ripemd160"
)

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// DoubleHash computes Hash(Hash(data)).
// Used for Base58Check checksums.
func DoubleHash(data []byte) types.Hash {
	first := Hash(data)
	return Hash(first[:])
}

// Hash160 computes RIPEMD160(SHA256(data)).
// Used to shrink a serialized public key into an address body.
func Hash160(data []byte) types.Hash160 {
	h := Hash(data)
	r := ripemd160.New()
	r.Write(h[:])
	var out types.Hash160
	copy(out[:], r.Sum(nil))
	return out
}
