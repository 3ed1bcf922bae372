package config

import (
	"fmt"
	"time"
)

const defaultCurrencyCode = "NBL"

// XrplConfig carries the fixed ledger endpoint and the settlement token
// configuration. The issuer address is derived once from the system wallet
// seed at startup; it is never a per-request input.
type XrplConfig struct {
	// Endpoint is the URL of the XRPL JSON-RPC node, including the protocol prefix.
	Endpoint         string        `mapstructure:"endpoint"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SystemWalletSeed string        `mapstructure:"system-wallet-seed"`
	CurrencyCode     string        `mapstructure:"currency-code"`
}

func (cfg *XrplConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("XRPL node endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("XRPL request timeout must be positive")
	}
	if cfg.SystemWalletSeed == "" {
		return fmt.Errorf("system wallet seed is required")
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = defaultCurrencyCode
	}

	return nil
}
