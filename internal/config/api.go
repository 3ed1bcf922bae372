package config

import (
	"fmt"
)

const defaultMaxConcurrentEnrichments = 16

type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// MaxConcurrentEnrichments caps the per-request enrichment fan-out so a
	// large wallet cannot thundering-herd the marketplace API.
	MaxConcurrentEnrichments int `mapstructure:"max-concurrent-enrichments"`
}

func (cfg *APIConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("api host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("api port must be in range 1-65535")
	}
	if cfg.MaxConcurrentEnrichments == 0 {
		cfg.MaxConcurrentEnrichments = defaultMaxConcurrentEnrichments
	}
	if cfg.MaxConcurrentEnrichments < 0 {
		return fmt.Errorf("max-concurrent-enrichments must be positive")
	}

	return nil
}
