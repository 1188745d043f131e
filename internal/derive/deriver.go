// Package derive runs the key derivation pipeline: hex secret key to
// public keys, addresses and WIF strings, one key at a time or in batches.
package derive

import (
	"github.com/Klingon-tech/keyderive/internal/log"
	"github.com/Klingon-tech/keyderive/pkg/address"
	"github.com/Klingon-tech/keyderive/pkg/crypto"
	"github.com/Klingon-tech/keyderive/pkg/types"
	"github.com/Klingon-tech/keyderive/pkg/wif"
)

// Deriver turns secret keys into addresses and WIF strings.
type Deriver struct {
	Network *types.Network

	// LegacyByteSwap makes WIF strings encode the secret with its two 16-byte
	// halves exchanged, while public keys and addresses come from the secret
	// as given. Output then matches the legacy tool, but the WIF keys do not
	// control the printed addresses.
	LegacyByteSwap bool
}

// Result holds everything derived from one secret key.
type Result struct {
	PubKeys             crypto.PublicKeys
	CompressedAddress   string
	UncompressedAddress string
	CompressedWIF       string
	UncompressedWIF     string
}

// Field returns the value selected by mode.
func (r *Result) Field(m Mode) string {
	switch m {
	case ModeCompressedAddress:
		return r.CompressedAddress
	case ModeUncompressedAddress:
		return r.UncompressedAddress
	case ModeCompressedWIF:
		return r.CompressedWIF
	case ModeUncompressedWIF:
		return r.UncompressedWIF
	default:
		return ""
	}
}

// New returns a Deriver for net. A nil net selects mainnet.
func New(net *types.Network, legacyByteSwap bool) *Deriver {
	if net == nil {
		net = types.Mainnet
	}
	return &Deriver{Network: net, LegacyByteSwap: legacyByteSwap}
}

// Derive decodes a hex secret key and derives its outputs.
func (d *Deriver) Derive(hexKey string) (*Result, error) {
	s, err := crypto.ScalarFromHex(hexKey)
	if err != nil {
		return nil, err
	}
	defer s.Zero()
	return d.DeriveScalar(s)
}

// DeriveScalar derives outputs from an already decoded secret.
// The caller keeps ownership of s.
func (d *Deriver) DeriveScalar(s *crypto.Scalar) (*Result, error) {
	pub, err := crypto.DerivePublicKeys(s)
	if err != nil {
		return nil, err
	}

	wifKey := s
	if d.LegacyByteSwap {
		wifKey = s.Swapped()
		defer wifKey.Zero()
	}

	net := d.network()
	secret := wifKey.Bytes()
	defer func() {
		for i := range secret {
			secret[i] = 0
		}
	}()

	res := &Result{
		PubKeys:             *pub,
		CompressedAddress:   address.FromPubKey(pub.Compressed[:], net),
		UncompressedAddress: address.FromPubKey(pub.Uncompressed[:], net),
		CompressedWIF:       wif.Encode(secret, true, net),
		UncompressedWIF:     wif.Encode(secret, false, net),
	}
	log.Derive.Debug().
		Str("address", res.CompressedAddress).
		Bool("legacy_swap", d.LegacyByteSwap).
		Msg("derived key")
	return res, nil
}

func (d *Deriver) network() *types.Network {
	if d.Network == nil {
		return types.Mainnet
	}
	return d.Network
}
