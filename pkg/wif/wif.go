// Package wif encodes secret keys in Wallet Import Format.
//
// A WIF string is Base58Check(version, secret [|| 0x01]). The trailing 0x01
// marks a key whose public key is used in compressed form.
package wif

import (
	"fmt"

	"github.com/Klingon-tech/keyderive/pkg/base58check"
	"github.com/Klingon-tech/keyderive/pkg/crypto"
	"github.com/Klingon-tech/keyderive/pkg/types"
)

// CompressFlag is appended to the secret for compressed keys.
const CompressFlag = 0x01

// Key is a decoded WIF string.
type Key struct {
	Network    *types.Network
	Secret     [crypto.ScalarSize]byte
	Compressed bool
}

// Encode returns the WIF string for a 32-byte secret.
func Encode(secret [crypto.ScalarSize]byte, compressed bool, net *types.Network) string {
	body := make([]byte, 0, crypto.ScalarSize+1)
	body = append(body, secret[:]...)
	if compressed {
		body = append(body, CompressFlag)
	}
	s := base58check.Encode([]byte{net.WIFVersion}, body)
	for i := range body {
		body[i] = 0
	}
	return s
}

// Decode parses a WIF string. The network is inferred from the version byte.
func Decode(s string) (*Key, error) {
	version, body, err := base58check.Decode(s, 1)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	defer func() {
		for i := range body {
			body[i] = 0
		}
	}()

	net, ok := types.NetworkByWIFVersion(version[0])
	if !ok {
		return nil, fmt.Errorf("unknown wif version %#02x", version[0])
	}

	k := &Key{Network: net}
	switch {
	case len(body) == crypto.ScalarSize:
	case len(body) == crypto.ScalarSize+1 && body[crypto.ScalarSize] == CompressFlag:
		k.Compressed = true
	default:
		return nil, fmt.Errorf("%w: wif body is %d bytes", crypto.ErrLength, len(body))
	}
	copy(k.Secret[:], body[:crypto.ScalarSize])
	return k, nil
}

// Zero wipes the decoded secret.
func (k *Key) Zero() {
	for i := range k.Secret {
		k.Secret[i] = 0
	}
}
