// Package config provides Viper-based configuration loading for the game client.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ContentConfig locates the world content documents.
type ContentConfig struct {
	// Dir is the directory holding the zone configuration and room-list
	// documents.
	Dir string `mapstructure:"dir"`
	// ZoneConfig is the zone configuration file name within Dir.
	ZoneConfig string `mapstructure:"zone_config"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// MinimapDistance is the maximum axis distance of the local map.
	MinimapDistance int `mapstructure:"minimap_distance"`
	// SettingsFile is the path of the persisted user settings file.
	SettingsFile string `mapstructure:"settings_file"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Content.Dir == "" {
		errs = append(errs, "content.dir must not be empty")
	}
	if c.Content.ZoneConfig == "" {
		errs = append(errs, "content.zone_config must not be empty")
	}
	if c.Display.MinimapDistance < 0 {
		errs = append(errs, fmt.Sprintf("display.minimap_distance must be >= 0, got %d", c.Display.MinimapDistance))
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path loads defaults
// plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with MUDDY_ prefix
	v.SetEnvPrefix("MUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.dir", "content")
	v.SetDefault("content.zone_config", "zones.yaml")

	v.SetDefault("display.minimap_distance", 2)
	v.SetDefault("display.settings_file", "settings.json")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
