// Package config provides configuration management for the hydralink
// client and CLI.
//
// Configuration is loaded from multiple sources (later sources override
// earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ~/.hydralink/config.yaml, /etc/hydralink/config.yaml)
//  3. .env files
//  4. Environment variables (HYDRALINK_ prefix)
//
// Use the HYDRALINK_ prefix and underscores for nested keys:
//   - HYDRALINK_CLIENT_TIMEOUT=15s
//   - HYDRALINK_CLIENT_STRIP_HYPERMEDIA=true
//   - HYDRALINK_LOGGING_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	// Client contains resource client settings
	Client ClientConfig `mapstructure:"client"`

	// Logging contains logging settings
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig contains resource client settings.
type ClientConfig struct {
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`

	// UserAgent overrides the User-Agent header; empty keeps the default
	UserAgent string `mapstructure:"user_agent"`

	// StripHypermedia removes hypermedia-vocabulary content from
	// returned payloads instead of leaving documents untouched
	StripHypermedia bool `mapstructure:"strip_hypermedia"`

	// RateLimit caps outgoing requests per second; zero disables the limiter
	RateLimit float64 `mapstructure:"rate_limit" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

var cfg *Config

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.hydralink")
		v.AddConfigPath("/etc/hydralink")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("HYDRALINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.user_agent", "")
	v.SetDefault("client.strip_hypermedia", false)
	v.SetDefault("client.rate_limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Get returns the last loaded configuration.
func Get() *Config {
	return cfg
}

func isFileNotFoundError(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	var pathErr *os.PathError
	return errors.As(err, &pathErr)
}
