package main

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/salvagekit/salvage/extract"
)

// Config is the tool configuration, loaded from salvage.yml when present.
// Command-line flags override it.
type Config struct {
	Database string `mapstructure:"database"`
	Locale   string `mapstructure:"locale"`
}

// loadConfig reads salvage.yml / salvage.yaml from the working directory and
// the SALVAGE_* environment, falling back to defaults.
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("database", "Tools-prod.sqlite")
	v.SetDefault("locale", extract.DefaultLocale)

	v.SetConfigName("salvage")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("salvage")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// resolveConfig merges the config file with command-line overrides.
func resolveConfig() (*Config, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if flagDB != "" {
		config.Database = flagDB
	}
	if flagLocale != "" {
		config.Locale = flagLocale
	}

	return config, nil
}

// buildLogger returns a console logger for verbose runs and a silent one
// otherwise.
func buildLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// openStore opens the configured catalog database.
func openStore(config *Config) (*extract.Store, error) {
	return extract.Open(config.Database, extract.WithLogger(buildLogger()))
}
