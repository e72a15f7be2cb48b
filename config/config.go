// Package config loads converter settings from TRIVYIGNORE_* environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every setting when read from the environment
const EnvPrefix = "TRIVYIGNORE"

const (
	keyExpiryMonths = "expiry_months"
	keyLogLevel     = "log_level"
)

// DefaultExpiryMonths is how far past today generated suppressions expire
const DefaultExpiryMonths = 6

// Config holds the settings that are not exposed as command line flags
type Config struct {
	ExpiryMonths int
	LogLevel     string
}

// New returns a viper instance bound to the environment with defaults applied
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyExpiryMonths, DefaultExpiryMonths)
	v.SetDefault(keyLogLevel, "info")
	return v
}

// Load reads and validates the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ExpiryMonths: v.GetInt(keyExpiryMonths),
		LogLevel:     v.GetString(keyLogLevel),
	}

	if cfg.ExpiryMonths < 0 {
		return nil, fmt.Errorf("%s_%s must not be negative, got %d", EnvPrefix, "EXPIRY_MONTHS", cfg.ExpiryMonths)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s_%s: %w", EnvPrefix, "LOG_LEVEL", err)
	}

	return cfg, nil
}
