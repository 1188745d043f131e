package config

import (
	"fmt"

	"github.com/Klingon-tech/keyderive/internal/derive"
	"github.com/Klingon-tech/keyderive/internal/log"
)

// Validate checks the configuration for operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if cfg.Mode != "" {
		if _, err := derive.ParseMode(cfg.Mode); err != nil {
			return fmt.Errorf("mode: %w", err)
		}
	}
	if cfg.Derive.Workers < 0 || cfg.Derive.Workers > MaxWorkers {
		return fmt.Errorf("derive.workers must be in range [0, %d]", MaxWorkers)
	}
	if cfg.Log.Level != "" && !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	return nil
}
