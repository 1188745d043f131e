package crypto

import (
	"encoding/hex"
	"fmt"
)

// ScalarSize is the length of a serialized secret scalar in bytes.
const ScalarSize = 32

// Scalar is a 256-bit secret key held as 32 big-endian bytes.
// Call Zero once the scalar is no longer needed.
type Scalar struct {
	b [ScalarSize]byte
}

// HexToBytes decodes a hex string.
// Odd-length input or non-hex characters yield ErrDecode.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

// BytesToScalar copies a 32-byte big-endian secret into a Scalar.
func BytesToScalar(b []byte) (*Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrLength, ScalarSize, len(b))
	}
	s := &Scalar{}
	copy(s.b[:], b)
	return s, nil
}

// ScalarFromHex decodes a 64-character hex string into a Scalar.
// The intermediate decode buffer is wiped before returning.
func ScalarFromHex(s string) (*Scalar, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return nil, err
	}
	defer wipe(b)
	return BytesToScalar(b)
}

// Bytes returns the 32-byte big-endian serialization of the scalar.
func (s *Scalar) Bytes() [ScalarSize]byte {
	return s.b
}

// IsZero reports whether every byte of the scalar is zero.
func (s *Scalar) IsZero() bool {
	var acc byte
	for _, v := range s.b {
		acc |= v
	}
	return acc == 0
}

// Swapped returns a new scalar with the two 16-byte halves exchanged.
func (s *Scalar) Swapped() *Scalar {
	out := &Scalar{}
	copy(out.b[:16], s.b[16:])
	copy(out.b[16:], s.b[:16])
	return out
}

// Zero wipes the scalar.
func (s *Scalar) Zero() {
	if s == nil {
		return
	}
	wipe(s.b[:])
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
