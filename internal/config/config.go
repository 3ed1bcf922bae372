package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Db          DbConfig          `mapstructure:"db"`
	Xrpl        XrplConfig        `mapstructure:"xrpl"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.API.Validate(); err != nil {
		return err
	}
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Xrpl.Validate(); err != nil {
		return err
	}
	if err := cfg.Marketplace.Validate(); err != nil {
		return err
	}
	return cfg.Metrics.Validate()
}

// New loads the config file at cfgPath, layering environment variables on top
// (dots and dashes in key paths map to underscores).
func New(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
