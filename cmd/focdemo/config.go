package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/frenofclaw/ledger"
)

// fileConfig is the TOML layout, all fields optional.
type fileConfig struct {
	Curator   string `toml:"curator"`
	Treasury  string `toml:"treasury"`
	Fulfiller string `toml:"fulfiller"`

	MinTip         int64 `toml:"min_tip"`
	TreasuryFeeBPS int64 `toml:"treasury_fee_bps"`
}

// envConfig overrides role identities from the environment.
type envConfig struct {
	Curator   string `env:"FOC_CURATOR"`
	Treasury  string `env:"FOC_TREASURY"`
	Fulfiller string `env:"FOC_FULFILLER"`
}

// loadConfig layers defaults, an optional TOML file, and environment
// variables, in that order.
func loadConfig(path string) (ledger.Config, error) {
	cfg := ledger.DefaultConfig()

	if path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if fc.Curator != "" {
			cfg.Curator = fc.Curator
		}
		if fc.Treasury != "" {
			cfg.Treasury = fc.Treasury
		}
		if fc.Fulfiller != "" {
			cfg.Fulfiller = fc.Fulfiller
		}
		if fc.MinTip > 0 {
			cfg.MinTip = fc.MinTip
		}
		if fc.TreasuryFeeBPS > 0 {
			cfg.TreasuryFeeBPS = fc.TreasuryFeeBPS
		}
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if ec.Curator != "" {
		cfg.Curator = ec.Curator
	}
	if ec.Treasury != "" {
		cfg.Treasury = ec.Treasury
	}
	if ec.Fulfiller != "" {
		cfg.Fulfiller = ec.Fulfiller
	}

	return cfg, nil
}
