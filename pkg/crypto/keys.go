package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Serialized public key sizes.
const (
	CompressedPubKeySize   = 33
	UncompressedPubKeySize = 65
)

// PublicKeys holds both serializations of a secp256k1 public key.
type PublicKeys struct {
	// Compressed is 0x02/0x03 (Y parity) followed by X.
	Compressed [CompressedPubKeySize]byte
	// Uncompressed is 0x04 followed by X and Y.
	Uncompressed [UncompressedPubKeySize]byte
}

// DerivePublicKeys multiplies the secp256k1 generator by the scalar.
// Returns ErrInvalidKey if the scalar is zero or >= the group order.
func DerivePublicKeys(s *Scalar) (*PublicKeys, error) {
	var k secp256k1.ModNScalar
	defer k.Zero()

	buf := s.Bytes()
	defer wipe(buf[:])

	if overflow := k.SetBytes(&buf); overflow != 0 {
		return nil, fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidKey)
	}
	if k.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}

	priv := secp256k1.NewPrivateKey(&k)
	defer priv.Zero()
	pub := priv.PubKey()

	out := &PublicKeys{}
	copy(out.Compressed[:], pub.SerializeCompressed())
	copy(out.Uncompressed[:], pub.SerializeUncompressed())
	return out, nil
}
