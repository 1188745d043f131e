package derive

import "fmt"

// Mode selects which derived value is emitted per key.
type Mode string

const (
	ModeCompressedAddress   Mode = "ac"
	ModeUncompressedAddress Mode = "au"
	ModeCompressedWIF       Mode = "wc"
	ModeUncompressedWIF     Mode = "wu"
)

// Modes lists every output mode in display order.
var Modes = []Mode{
	ModeCompressedAddress,
	ModeUncompressedAddress,
	ModeCompressedWIF,
	ModeUncompressedWIF,
}

// ParseMode converts a mode name ("ac", "au", "wc", "wu") to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Description returns a human-readable name for the mode.
func (m Mode) Description() string {
	switch m {
	case ModeCompressedAddress:
		return "compressed address"
	case ModeUncompressedAddress:
		return "uncompressed address"
	case ModeCompressedWIF:
		return "compressed WIF"
	case ModeUncompressedWIF:
		return "uncompressed WIF"
	default:
		return string(m)
	}
}
