package config

import (
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

var (
	// Transition delay bounds.
	minTransitionDelay = time.Duration(0)
	maxTransitionDelay = 10 * time.Second

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	return c.validateSettings()
}

func (c *Config) validatePlayer() error {
	d := c.Player.TransitionDelay
	if d < minTransitionDelay || d > maxTransitionDelay {
		return errInvalidDuration.Fmt(
			"transition delay",
			minTransitionDelay,
			maxTransitionDelay,
		)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.AccentColor == "" {
		return nil
	}

	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt("accent", c.Display.AccentColor)
	}

	return nil
}

// validateSettings checks that the session command can be parsed and that a
// custom catalog exists.
func (c *Config) validateSettings() error {
	if cmd := strings.TrimSpace(c.Settings.SessionCmd); cmd != "" {
		if _, err := shellquote.Split(cmd); err != nil {
			return errInvalidSessionCmd.Wrap(err)
		}
	}

	if c.Catalog.Path != "" {
		if _, err := os.Stat(c.Catalog.Path); err != nil {
			return errCatalogNotFound.Fmt(c.Catalog.Path).Wrap(err)
		}
	}

	return nil
}
