package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	WorkoutID       string
	TransitionDelay string
	SessionCmd      string
	DisableNotify   bool
	NoSound         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// It must come after WithViperConfig so that flags win over the file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			WorkoutID:       ctx.String("workout"),
			TransitionDelay: ctx.String("transition-delay"),
			SessionCmd:      ctx.String("session-cmd"),
			DisableNotify:   ctx.Bool("disable-notification"),
			NoSound:         ctx.Bool("no-sound"),
		}

		if opts.WorkoutID == "" {
			opts.WorkoutID = ctx.Args().First()
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.WorkoutID != "" {
		c.CLI.WorkoutID = opts.WorkoutID
	}

	if opts.TransitionDelay != "" {
		delay, err := parseDuration(opts.TransitionDelay)
		if err != nil {
			return errInvalidCLIDuration.Fmt("transition-delay").Wrap(err)
		}

		c.Player.TransitionDelay = delay
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoSound {
		c.Notifications.Sound = false
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	return nil
}
