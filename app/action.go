package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pacefit/pace/internal/alert"
	"github.com/pacefit/pace/internal/catalog"
	"github.com/pacefit/pace/internal/config"
	"github.com/pacefit/pace/internal/pathutil"
	"github.com/pacefit/pace/internal/static"
	"github.com/pacefit/pace/internal/ui"
	"github.com/pacefit/pace/player"
	"github.com/pacefit/pace/stats"
	"github.com/pacefit/pace/store"
	"github.com/pacefit/pace/tui"
)

const (
	envNoColor     = "NO_COLOR"
	envPaceNoColor = "PACE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies the command-line overrides.
func (e *env) loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(e.paths.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func (e *env) loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := firstNonEmptyString(cfg.Catalog.Path, e.paths.CatalogFilePath())

	return catalog.Load(path)
}

func (e *env) filterOptions(ctx *cli.Context) (*stats.Options, error) {
	f, err := config.Filter(ctx, e.now())
	if err != nil {
		return nil, err
	}

	return &stats.Options{
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Stdout:    e.stdout,
		Stdin:     e.stdin,
		JSON:      ctx.Bool("json"),
	}, nil
}

// startAction plays a workout and records it once it is complete.
func (e *env) startAction(ctx *cli.Context) error {
	cfg, err := e.loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := e.loadCatalog(cfg)
	if err != nil {
		return err
	}

	w, err := chooseWorkout(cat, cfg.CLI.WorkoutID)
	if err != nil {
		return err
	}

	db, err := store.NewClient(e.paths.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	alerter := alert.New(alert.Options{
		Logger:     slog.Default(),
		SessionCmd: cfg.Settings.SessionCmd,
		Notify:     cfg.Notifications.Enabled,
		Sound:      cfg.Notifications.Sound,
	})

	s := newSession(ctx.Context, db, alerter)

	engine, err := player.New(
		w,
		s.hooks(),
		player.WithTransitionDelay(cfg.Player.TransitionDelay),
	)
	if err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"starting workout",
		slog.String("workout_id", w.ID),
		slog.Int("exercises", len(w.Exercises)),
	)

	result, err := tui.Run(ctx.Context, tui.Options{
		Engine:         engine,
		Config:         cfg,
		StatusFile:     e.paths.StatusFilePath(),
		OnExerciseDone: alerter.ExerciseDone,
	})

	s.wait()

	if err != nil {
		return err
	}

	if err := s.error(); err != nil {
		return err
	}

	if result != nil && result.Err != nil {
		return result.Err
	}

	return nil
}

// historyAction lists or deletes the workouts finished within the reporting
// period.
func (e *env) historyAction(ctx *cli.Context) error {
	opts, err := e.filterOptions(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(e.paths.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("delete") {
		return stats.Delete(db, opts)
	}

	return stats.List(db, opts)
}

// statsAction computes the stats for the specified time period.
func (e *env) statsAction(ctx *cli.Context) error {
	opts, err := e.filterOptions(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(e.paths.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Show(db, opts, e.now())
}

// statusAction handles the status command and prints the status of the
// running workout, if any.
func (e *env) statusAction(_ *cli.Context) error {
	running, err := store.IsRunning(e.paths.DBFilePath())
	if err != nil || !running {
		return err
	}

	s, err := tui.ReadStatus(e.paths.StatusFilePath())
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	fmt.Fprintln(e.stdout, s.String())

	return nil
}

// editConfigAction handles the edit-config command which opens the pace
// config file in the user's default text editor.
func (e *env) editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, e.paths.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func (e *env) beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PACE_NO_COLOR is set
	if _, exists := os.LookupEnv(envPaceNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if e.paths == nil {
		p, err := pathutil.New()
		if err != nil {
			return err
		}

		e.paths = p
	}

	if e.logs == nil {
		e.logs = setupLogger(e.paths.LogFilePath())
	}

	return static.Install(e.paths.DataDir())
}

func (e *env) afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pace")

	return nil
}
