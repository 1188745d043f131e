package crypto

import "errors"

var (
	// ErrDecode is returned for malformed hex or base58 text.
	ErrDecode = errors.New("decode error")
	// ErrLength is returned when a decoded byte string has the wrong size.
	ErrLength = errors.New("invalid length")
	// ErrInvalidKey is returned for a scalar that is zero or not below the curve order.
	ErrInvalidKey = errors.New("invalid secret key")
)
