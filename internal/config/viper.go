package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTransitionDelay      = "player.transition_delay"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySessionCmd           = "settings.session_cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyAccentColor          = "display.accent_color"
	keyCatalogPath          = "catalog.path"
)

const (
	defaultTransitionDelay = "1s"
	defaultAccentColor     = "#B0DB43"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file with the default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyTransitionDelay, defaultTransitionDelay)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyAccentColor, defaultAccentColor)
	v.SetDefault(keyCatalogPath, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	delay, err := parseDuration(v.GetString(keyTransitionDelay))
	if err != nil {
		return errInvalidConfigValue.Fmt(keyTransitionDelay).Wrap(err)
	}

	c.Player.TransitionDelay = delay
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Notifications.Sound = v.GetBool(keyNotificationsSound)
	c.Settings.SessionCmd = v.GetString(keySessionCmd)
	c.Settings.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.AccentColor = v.GetString(keyAccentColor)
	c.Catalog.Path = v.GetString(keyCatalogPath)

	return nil
}

// parseDuration parses duration strings. A bare number is taken as seconds.
func parseDuration(s string) (time.Duration, error) {
	// Try parsing as duration string first
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	// Try parsing as seconds in case duration unit is absent
	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, errInvalidDurationFormat.Fmt(s)
	}

	return secs, nil
}
