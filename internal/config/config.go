// Package config loads and validates the console front-end configuration.
// The rules engine itself takes no configuration beyond game.Settings;
// everything here belongs to the surrounding CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/roshambo/internal/game"
)

type Config struct {
	Labels   Labels `yaml:"labels" mapstructure:"labels"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	FirstTo  uint   `yaml:"first_to" mapstructure:"first_to"`
	Seed     int64  `yaml:"seed,omitempty" mapstructure:"seed"`
	Color    bool   `yaml:"color" mapstructure:"color"`
}

// Labels are the display names used for the two parties in console output.
type Labels struct {
	First  string `yaml:"first" mapstructure:"first"`
	Second string `yaml:"second" mapstructure:"second"`
}

// Default returns the shipped configuration: a colored first-to-3 match
// between "You" and "Enemy", seeded from entropy.
func Default() *Config {
	return &Config{
		FirstTo:  3,
		Labels:   Labels{First: "You", Second: "Enemy"},
		Color:    true,
		Seed:     0,
		LogLevel: "info",
	}
}

// Load reads and validates the config file through the given filesystem.
func Load(fs afero.Fs, path string) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetFs(fs)
	viperInstance.SetConfigFile(path)
	setDefaults(viperInstance)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")
	setDefaults(viperInstance)

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults registers the shipped defaults so a partial file only needs
// to name the keys it changes.
func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("first_to", defaults.FirstTo)
	v.SetDefault("labels.first", defaults.Labels.First)
	v.SetDefault("labels.second", defaults.Labels.Second)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log_level", defaults.LogLevel)
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if _, err := game.NewSettings(c.FirstTo); err != nil {
		return fmt.Errorf("first_to: %w", err)
	}

	if c.Labels.First == "" || c.Labels.Second == "" {
		return fmt.Errorf("labels must not be empty: first %q, second %q",
			c.Labels.First, c.Labels.Second)
	}

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}

// Settings builds the validated match settings from the config.
func (c *Config) Settings() (game.Settings, error) {
	return game.NewSettings(c.FirstTo)
}
