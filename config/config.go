// Package config handles keyderive configuration.
//
// Settings are layered: built-in defaults, then an optional .conf file,
// then command-line flags.
package config

import (
	"github.com/Klingon-tech/keyderive/pkg/types"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// MaxWorkers caps the derivation worker pool.
const MaxWorkers = 256

// Config holds runtime configuration.
type Config struct {
	Network NetworkType `conf:"network"`

	// Mode selects the output: ac, au, wc or wu (command line only).
	Mode string
	// InputFile is the path of the newline-delimited hex key list (command line only).
	InputFile string

	Derive DeriveConfig

	Log LogConfig
}

// DeriveConfig holds derivation pipeline settings.
type DeriveConfig struct {
	// LegacyByteSwap reproduces the legacy tool's WIF output, which encodes
	// each secret with its 16-byte halves exchanged. Addresses are unaffected.
	LegacyByteSwap bool `conf:"derive.legacy_byte_swap"`
	// Workers is the number of derivation goroutines (0 = one per CPU).
	Workers int `conf:"derive.workers"`
	// Strict aborts on the first bad record.
	Strict bool `conf:"derive.strict"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// NetworkParams returns the address and WIF version bytes for the
// configured network.
func (c *Config) NetworkParams() *types.Network {
	net, err := types.NetworkByName(string(c.Network))
	if err != nil {
		return types.Mainnet
	}
	return net
}
