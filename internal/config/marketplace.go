package config

import (
	"fmt"
	"time"
)

const (
	defaultMarketplaceBaseURL = "https://marketplace-api.onxrp.com"
	defaultImageProxyURL      = "https://marketplace-image.onxrp.com/?uri="
	defaultMarketplaceTimeout = 10 * time.Second
)

type MarketplaceConfig struct {
	BaseURL       string        `mapstructure:"base-url"`
	ImageProxyURL string        `mapstructure:"image-proxy-url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

func (cfg *MarketplaceConfig) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultMarketplaceBaseURL
	}
	if cfg.ImageProxyURL == "" {
		cfg.ImageProxyURL = defaultImageProxyURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultMarketplaceTimeout
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("marketplace timeout must be positive")
	}

	return nil
}
