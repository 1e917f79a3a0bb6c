// Package config loads pace settings from the config file and command-line
// flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Catalog       CatalogConfig
		Display       DisplayConfig
		Settings      SettingsConfig
		CLI           CLIConfig
		Player        PlayerConfig
		Notifications NotificationConfig
	}

	// PlayerConfig holds workout player settings
	PlayerConfig struct {
		// TransitionDelay is how long the player lingers on a finished
		// exercise before the next one becomes ready.
		TransitionDelay time.Duration
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
		Sound   bool
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		AccentColor string
		DarkTheme   bool
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		SessionCmd     string
		TwentyFourHour bool
	}

	// CatalogConfig locates the workout catalog
	CatalogConfig struct {
		// Path overrides the default catalog in the data directory.
		Path string
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		WorkoutID string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.4.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// TimeFormat returns the clock layout selected by the user.
func (c *Config) TimeFormat() string {
	if c.Settings.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}
