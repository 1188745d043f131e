package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Klingon-tech/keyderive/internal/derive"
)

// Version is the keyderive release version.
const Version = "0.1.0"

// ErrUsage is returned when the command line does not select exactly one
// mode and an input file. Callers print the usage text and exit cleanly.
var ErrUsage = errors.New("usage")

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help       bool
	Version    bool
	InitConfig string

	// Output mode (exactly one)
	CompressedAddress   bool
	UncompressedAddress bool
	CompressedWIF       bool
	UncompressedWIF     bool

	// Input
	File string

	// Core
	Network string
	Config  string

	// Derivation
	LegacyByteSwap bool
	Workers        int
	Strict         bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags (for true/false and zero-value overrides).
	SetLegacyByteSwap bool
	SetWorkers        bool
	SetStrict         bool
	SetLogJSON        bool
}

// ParseFlags parses command-line arguments (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("keyderive", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")
	fs.StringVar(&f.InitConfig, "init-config", "", "Write a default config file to this path and exit")

	// Modes
	fs.BoolVar(&f.CompressedAddress, "ac", false, "Print compressed-key addresses")
	fs.BoolVar(&f.UncompressedAddress, "au", false, "Print uncompressed-key addresses")
	fs.BoolVar(&f.CompressedWIF, "wc", false, "Print compressed WIF keys")
	fs.BoolVar(&f.UncompressedWIF, "wu", false, "Print uncompressed WIF keys")

	// Input
	fs.StringVar(&f.File, "f", "", "File with one hex secret key per line")

	// Core
	fs.StringVar(&f.Network, "network", "", "Network type (mainnet or testnet)")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Derivation
	fs.BoolVar(&f.LegacyByteSwap, "legacy-byte-swap", true, "Swap secret key halves in WIF output (addresses are unaffected)")
	fs.IntVar(&f.Workers, "workers", 1, "Derivation goroutines (0 = one per CPU)")
	fs.BoolVar(&f.Strict, "strict", false, "Stop at the first bad key")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			f.Help = true
			return f, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	f.SetLegacyByteSwap = isFlagSet(fs, "legacy-byte-swap")
	f.SetWorkers = isFlagSet(fs, "workers")
	f.SetStrict = isFlagSet(fs, "strict")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	f.Args = fs.Args()
	return f, nil
}

// Mode returns the single selected output mode.
// It fails with ErrUsage unless exactly one mode flag is set.
func (f *Flags) Mode() (derive.Mode, error) {
	var modes []derive.Mode
	if f.CompressedAddress {
		modes = append(modes, derive.ModeCompressedAddress)
	}
	if f.UncompressedAddress {
		modes = append(modes, derive.ModeUncompressedAddress)
	}
	if f.CompressedWIF {
		modes = append(modes, derive.ModeCompressedWIF)
	}
	if f.UncompressedWIF {
		modes = append(modes, derive.ModeUncompressedWIF)
	}
	if len(modes) != 1 {
		return "", fmt.Errorf("%w: exactly one of -ac, -au, -wc, -wu is required", ErrUsage)
	}
	return modes[0], nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Network != "" {
		cfg.Network = NetworkType(strings.ToLower(f.Network))
	}
	if m, err := f.Mode(); err == nil {
		cfg.Mode = string(m)
	}
	if f.File != "" {
		cfg.InputFile = f.File
	}

	// Derivation
	if f.SetLegacyByteSwap {
		cfg.Derive.LegacyByteSwap = f.LegacyByteSwap
	}
	if f.SetWorkers {
		cfg.Derive.Workers = f.Workers
	}
	if f.SetStrict {
		cfg.Derive.Strict = f.Strict
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer, prog string) {
	usage := `keyderive - derive addresses and WIF keys from hex secret keys

Usage:
  ` + prog + ` <-ac | -au | -wc | -wu> -f <filename> [options]
  ` + prog + ` --help

Modes (exactly one):
  -ac             Address of the compressed public key
  -au             Address of the uncompressed public key
  -wc             WIF of the secret key, compressed flag set
  -wu             WIF of the secret key, no compressed flag

Input:
  -f              File with one 64-character hex secret key per line

Options:
  --network           Network type: mainnet (default) or testnet
  --config, -c        Config file path
  --init-config       Write a default config file to the given path and exit
  --legacy-byte-swap  Swap the 16-byte halves of each key in WIF output,
                      as the legacy tool did (default: true; addresses
                      are unaffected)
  --workers           Derivation goroutines, 0 = one per CPU (default: 1)
  --strict            Stop at the first malformed or invalid key

Logging Options (written to stderr):
  --log-level     Log level: debug, info, warn, error (default: info)
  --log-file      Also write JSON logs to this file
  --log-json      Output logs as JSON

Examples:
  # Compressed addresses, standard derivation
  ` + prog + ` -ac -f keys.txt --legacy-byte-swap=false

  # Testnet WIF keys using 4 workers
  ` + prog + ` -wc -f keys.txt --network=testnet --workers=4
`
	fmt.Fprint(w, usage)
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (when --config is given)
// 3. Command-line flags
//
// Help, version and init-config requests are returned in Flags with a nil
// Config; the caller handles them. Missing mode or input file yields ErrUsage.
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}
	if flags.Help || flags.Version || flags.InitConfig != "" {
		return nil, flags, nil
	}

	if len(flags.Args) != 0 {
		return nil, flags, fmt.Errorf("%w: unexpected argument %q", ErrUsage, flags.Args[0])
	}
	if _, err := flags.Mode(); err != nil {
		return nil, flags, err
	}
	if flags.File == "" {
		return nil, flags, fmt.Errorf("%w: -f <filename> is required", ErrUsage)
	}

	network := Mainnet
	if strings.ToLower(flags.Network) == string(Testnet) {
		network = Testnet
	}
	cfg := Default(network)

	if flags.Config != "" {
		if _, err := os.Stat(flags.Config); err != nil {
			return nil, flags, fmt.Errorf("config file: %w", err)
		}
		fileValues, err := LoadFile(flags.Config)
		if err != nil {
			return nil, flags, fmt.Errorf("loading config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, fileValues); err != nil {
			return nil, flags, fmt.Errorf("applying config file: %w", err)
		}
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, flags, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}
