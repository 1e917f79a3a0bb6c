// Package tui renders a workout session in the terminal and turns key
// presses into player intents
package tui

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pacefit/pace/internal/config"
	"github.com/pacefit/pace/player"
)

const eventBuffer = 64

type (
	eventMsg player.Event
	doneMsg  player.Result
)

// Options configures a Model.
type Options struct {
	Engine *player.Engine
	Config *config.Config
	// StatusFile receives a snapshot after every event. Empty disables it.
	StatusFile string
	// OnExerciseDone runs whenever an exercise finishes and the session
	// moves on.
	OnExerciseDone func()
}

// Model is the Bubble Tea model for a workout session.
type Model struct {
	engine      *player.Engine
	result      *player.Result
	confirm     *huh.Form
	skip        *bool
	events      chan player.Event
	unsubscribe func()
	opts        Options
	quote       string
	current     player.Progress
	help        help.Model
	progress    progress.Model
	styles      styles
	now         func() time.Time
}

// New returns a Model listening to the engine in opts.
func New(opts Options) *Model {
	accent, dark := "", true
	if opts.Config != nil {
		accent, dark = opts.Config.Display.AccentColor, opts.Config.Display.DarkTheme
	}

	bar := progress.New(progress.WithDefaultGradient())
	if accent != "" {
		bar = progress.New(progress.WithSolidFill(accent))
	}

	m := &Model{
		engine:   opts.Engine,
		opts:     opts,
		events:   make(chan player.Event, eventBuffer),
		current:  opts.Engine.Progress(),
		help:     help.New(),
		progress: bar,
		styles:   newStyles(accent, dark),
		quote:    RandomQuote(),
		now:      time.Now,
	}

	m.unsubscribe = m.engine.Listen(m.events)

	return m
}

// Result returns the outcome of the session once the engine has finished.
func (m *Model) Result() *player.Result {
	return m.result
}

func waitForEvent(ch <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-ch)
	}
}

func waitForDone(ch <-chan player.Result) tea.Cmd {
	return func() tea.Msg {
		return doneMsg(<-ch)
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForDone(m.engine.Done()))
}

func (m *Model) handleEvent(e player.Event) tea.Cmd {
	prev := m.current
	m.current = e.Progress

	// with no transition delay the next exercise arrives directly
	finished := prev.Phase != player.Transitioning &&
		(e.Progress.Phase == player.Transitioning ||
			e.Progress.ExerciseIndex > prev.ExerciseIndex)

	if finished && m.opts.OnExerciseDone != nil {
		go m.opts.OnExerciseDone()
	}

	m.writeStatusFile()

	return waitForEvent(m.events)
}

func (m *Model) handleDone(r player.Result) tea.Cmd {
	m.result = &r
	m.unsubscribe()

	if m.opts.StatusFile != "" {
		_ = os.Remove(m.opts.StatusFile)
	}

	if r.Err != nil {
		slog.Error("session aborted", slog.Any("error", r.Err))
	}

	if r.Summary == nil {
		return tea.Quit
	}

	return nil
}

func (m *Model) writeStatusFile() {
	if m.opts.StatusFile == "" {
		return
	}

	s := NewStatus(m.engine.Workout().Name, &m.current, m.now())

	if err := WriteStatus(m.opts.StatusFile, &s); err != nil {
		slog.Debug("unable to write status file", slog.Any("error", err))
	}
}

// intent forwards a user action to the engine. Rejected intents are
// logged, the renderer stays as it is.
func (m *Model) intent(name string, fn func() error) {
	if err := fn(); err != nil {
		slog.Debug(
			"intent rejected",
			slog.String("intent", name),
			slog.Any("error", err),
		)
	}
}

func (m *Model) quit() tea.Cmd {
	if m.result != nil {
		return tea.Quit
	}

	if err := m.engine.Exit(); err != nil {
		return tea.Quit
	}

	// the Done result ends the program
	return nil
}

// Run plays the session in a Bubble Tea program and returns its result.
// A nil result means the program ended before the engine did.
func Run(ctx context.Context, opts Options) (*player.Result, error) {
	m := New(opts)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return m.Result(), err
	}

	if m.Result() == nil {
		_ = opts.Engine.Exit()
	}

	return m.Result(), nil
}
