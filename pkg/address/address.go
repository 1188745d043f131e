// Package address derives pay-to-pubkey-hash addresses from serialized
// secp256k1 public keys.
package address

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/keyderive/pkg/base58check"
	"github.com/Klingon-tech/keyderive/pkg/crypto"
	"github.com/Klingon-tech/keyderive/pkg/types"
)

// ErrWrongNetwork is returned when an address version byte does not match
// the expected network.
var ErrWrongNetwork = errors.New("address belongs to a different network")

// FromPubKey returns Base58Check(net.PubKeyHashVersion, HASH160(pubKey)).
// pubKey may be either the compressed or the uncompressed serialization;
// the two produce different addresses.
func FromPubKey(pubKey []byte, net *types.Network) string {
	return FromHash160(crypto.Hash160(pubKey), net)
}

// FromHash160 encodes an already hashed public key.
func FromHash160(h types.Hash160, net *types.Network) string {
	return base58check.Encode([]byte{net.PubKeyHashVersion}, h[:])
}

// Decode verifies an address string and returns its public key hash.
func Decode(addr string, net *types.Network) (types.Hash160, error) {
	version, body, err := base58check.Decode(addr, 1)
	if err != nil {
		return types.Hash160{}, fmt.Errorf("decode address: %w", err)
	}
	if version[0] != net.PubKeyHashVersion {
		return types.Hash160{}, fmt.Errorf("%w: version %#02x, want %#02x (%s)",
			ErrWrongNetwork, version[0], net.PubKeyHashVersion, net)
	}
	if len(body) != types.Hash160Size {
		return types.Hash160{}, fmt.Errorf("%w: address body is %d bytes, want %d",
			crypto.ErrLength, len(body), types.Hash160Size)
	}
	var h types.Hash160
	copy(h[:], body)
	return h, nil
}
