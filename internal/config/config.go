// Package config loads barrelgen settings from an optional config file and
// environment variables. Explicit CLI flags always override what it returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/componentry/barrelgen/pkg/barrel"
)

// configName is the config file name without extension.
const configName = ".barrelgen"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for barrelgen settings.
const envPrefix = "BARRELGEN"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Sentinel validation errors.
var (
	ErrInvalidThreshold = errors.New("single_line_threshold must not be negative")
	ErrInvalidExtMode   = errors.New("ext_mode must be one of auto, none, actual, override")
)

// Config mirrors the file/env-adjustable generation settings.
type Config struct {
	Dir                 string   `mapstructure:"dir"`
	Output              string   `mapstructure:"output"`
	Sort                bool     `mapstructure:"sort"`
	SingleLineThreshold int      `mapstructure:"single_line_threshold"`
	Header              string   `mapstructure:"header"`
	TypePatterns        []string `mapstructure:"type_patterns"`
	Exclude             []string `mapstructure:"exclude"`
	ExtMode             string   `mapstructure:"ext_mode"`
	Ext                 string   `mapstructure:"ext"`
}

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty it is used as the explicit config file path; otherwise the
// config file is searched in CWD and $HOME. A missing config file is not an
// error; defaults apply.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("dir", "")
	viperCfg.SetDefault("output", barrel.DefaultOutput)
	viperCfg.SetDefault("sort", true)
	viperCfg.SetDefault("single_line_threshold", barrel.DefaultSingleLineThreshold)
	viperCfg.SetDefault("header", "")
	viperCfg.SetDefault("ext_mode", "auto")
	viperCfg.SetDefault("ext", "")
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.SingleLineThreshold < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, c.SingleLineThreshold)
	}

	_, err := c.ExtensionMode()

	return err
}

// ExtensionMode maps the configured ext_mode string onto the barrel enum.
func (c *Config) ExtensionMode() (barrel.ExtensionMode, error) {
	switch strings.ToLower(c.ExtMode) {
	case "", "auto":
		return barrel.ExtModeAuto, nil
	case "none":
		return barrel.ExtModeNone, nil
	case "actual":
		return barrel.ExtModeActual, nil
	case "override":
		return barrel.ExtModeOverride, nil
	default:
		return barrel.ExtModeAuto, fmt.Errorf("%w: got %q", ErrInvalidExtMode, c.ExtMode)
	}
}
