// keyderive derives addresses and WIF keys from a file of hex secret keys.
//
// Usage:
//
//	keyderive <-ac | -au | -wc | -wu> -f <filename> [options]
//	keyderive --help
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/Klingon-tech/keyderive/config"
	"github.com/Klingon-tech/keyderive/internal/derive"
	"github.com/Klingon-tech/keyderive/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	prog := filepath.Base(args[0])

	cfg, flags, err := config.Load(args[1:])
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			config.PrintUsage(stdout, prog)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case flags.Help:
		config.PrintUsage(stdout, prog)
		return 0
	case flags.Version:
		fmt.Fprintf(stdout, "keyderive version %s\n", config.Version)
		return 0
	case flags.InitConfig != "":
		network := config.Mainnet
		if flags.Network == string(config.Testnet) {
			network = config.Testnet
		}
		if err := config.WriteDefaultConfig(flags.InitConfig, network); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %s\n", flags.InitConfig)
		return 0
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(stderr, "Error: opening log file: %v\n", err)
		return 1
	}

	in, err := os.Open(cfg.InputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer in.Close()

	batch, err := newBatch(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log.Batch.Debug().
		Str("file", cfg.InputFile).
		Str("network", string(cfg.Network)).
		Str("mode", batch.Mode.Description()).
		Bool("legacy_byte_swap", cfg.Derive.LegacyByteSwap).
		Int("workers", batch.Workers).
		Msg("starting batch")

	if _, err := batch.Run(ctx, in, stdout); err != nil {
		log.Batch.Error().Err(err).Msg("batch aborted")
		return 1
	}
	return 0
}

// newBatch builds the batch processor described by cfg.
func newBatch(cfg *config.Config) (*derive.Batch, error) {
	mode, err := derive.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("mode: %w", err)
	}

	batch := derive.NewBatch(derive.New(cfg.NetworkParams(), cfg.Derive.LegacyByteSwap), mode)
	batch.Workers = cfg.Derive.Workers
	if batch.Workers == 0 {
		batch.Workers = runtime.NumCPU()
	}
	batch.Strict = cfg.Derive.Strict
	return batch, nil
}
