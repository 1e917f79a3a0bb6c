// Package app defines the pace command-line interface
package app

import (
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pacefit/pace/internal/config"
	"github.com/pacefit/pace/internal/pathutil"
)

// env carries what every command needs. It is filled in by the Before
// hook unless a test has set it up already.
type env struct {
	paths  *pathutil.Paths
	now    func() time.Time
	stdout io.Writer
	stdin  io.Reader
	logs   io.Closer
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pace app instance.
func Get() *cli.App {
	return newApp(&env{
		now:    time.Now,
		stdout: config.Stdout,
		stdin:  config.Stdin,
	})
}

func newApp(e *env) *cli.App {
	return &cli.App{
		Name: "pace",
		Usage: `
		Pace is a guided workout player for the command-line. Pick a workout
		from the catalog and it walks you through each timed exercise, then
		logs the session so you can track your progress.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Play a workout",
				ArgsUsage: "[workout-id]",
				Flags:     playerFlags,
				Action:    e.startAction,
			},
			{
				Name:  "list",
				Usage: "List the workouts in the catalog",
				Flags: []cli.Flag{
					difficultyFlag,
					equipmentFlag,
					muscleFlag,
					recommendedFlag,
				},
				Action: e.listAction,
			},
			{
				Name:      "show",
				Usage:     "Show the exercises in a workout",
				ArgsUsage: "<workout-id>",
				Action:    e.showAction,
			},
			{
				Name: "history",
				Usage: `
				List the workouts you have finished. Defaults to a reporting period
				of 7 days`,
				Flags:  append([]cli.Flag{deleteFlag}, filterFlags...),
				Action: e.historyAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a 
				reporting period of 7 days`,
				Flags:  filterFlags,
				Action: e.statsAction,
			},
			{
				Name:  "profile",
				Usage: "Show or update your fitness profile",
				Flags: []cli.Flag{
					nameFlag,
					levelFlag,
					profileEquipmentFlag,
					frequencyFlag,
				},
				Action: e.profileAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running workout",
				Action: e.statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: e.editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, playerFlags...),
		Action: e.startAction,
		Before: e.beforeAction,
		After:  e.afterAction,
	}
}
