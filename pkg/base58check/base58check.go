// Package base58check implements the checksummed Base58 encoding used for
// addresses and WIF secret keys.
//
// Layout: Base58(version || body || checksum), where checksum is the first
// four bytes of SHA256(SHA256(version || body)).
package base58check

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Klingon-tech/keyderive/pkg/crypto"
	"github.com/mr-tron/base58"
)

// ChecksumSize is the length of the trailing checksum in bytes.
const ChecksumSize = 4

// ErrChecksum is returned when the trailing checksum does not match the payload.
var ErrChecksum = errors.New("checksum mismatch")

// Checksum returns the first four bytes of DoubleHash(payload).
func Checksum(payload []byte) [ChecksumSize]byte {
	h := crypto.DoubleHash(payload)
	var c [ChecksumSize]byte
	copy(c[:], h[:ChecksumSize])
	return c
}

// Encode returns Base58(version || body || checksum).
// Leading zero bytes are preserved as leading '1' characters.
func Encode(version, body []byte) string {
	buf := make([]byte, 0, len(version)+len(body)+ChecksumSize)
	buf = append(buf, version...)
	buf = append(buf, body...)
	sum := Checksum(buf)
	buf = append(buf, sum[:]...)
	s := base58.Encode(buf)
	wipe(buf)
	return s
}

// Decode reverses Encode, splitting off a version of versionLen bytes.
// Returns crypto.ErrDecode for characters outside the alphabet,
// crypto.ErrLength if the payload cannot hold the version and checksum,
// and ErrChecksum if the checksum does not verify.
func Decode(s string, versionLen int) (version, body []byte, err error) {
	if versionLen < 0 {
		return nil, nil, fmt.Errorf("negative version length %d", versionLen)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", crypto.ErrDecode, err)
	}
	if len(raw) < versionLen+ChecksumSize {
		return nil, nil, fmt.Errorf("%w: payload is %d bytes, need at least %d",
			crypto.ErrLength, len(raw), versionLen+ChecksumSize)
	}

	payload := raw[:len(raw)-ChecksumSize]
	want := Checksum(payload)
	if !bytes.Equal(raw[len(payload):], want[:]) {
		return nil, nil, ErrChecksum
	}

	version = append([]byte(nil), payload[:versionLen]...)
	body = append([]byte(nil), payload[versionLen:]...)
	wipe(raw)
	return version, body, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
