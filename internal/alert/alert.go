// Package alert announces the end of exercises and workouts: a desktop
// notification, a short chime and the user's session command. Failures are
// logged and never interrupt the session.
package alert

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"
)

const sampleRate = beep.SampleRate(44100)

// Options toggles the side effects.
type Options struct {
	Logger     *slog.Logger
	SessionCmd string
	Notify     bool
	Sound      bool
}

// Alerter performs the side effects selected by its Options.
type Alerter struct {
	opts   Options
	notify func(title, msg, icon string) error
	play   func(s beep.Streamer) error
	run    func(ctx context.Context, name string, args ...string) error
}

// New returns an Alerter backed by the desktop notifier and the speaker.
func New(opts Options) *Alerter {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Alerter{
		opts:   opts,
		notify: beeep.Notify,
		play:   playOnSpeaker,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// ExerciseDone plays the chime for a finished exercise.
func (a *Alerter) ExerciseDone() {
	a.chime(false)
}

// WorkoutDone announces a finished workout and then runs the session
// command.
func (a *Alerter) WorkoutDone(ctx context.Context, title, msg string) {
	if a.opts.Notify {
		if err := a.notify(title, msg, ""); err != nil {
			a.opts.Logger.WarnContext(
				ctx,
				"unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	a.chime(true)

	if err := a.RunSessionCmd(ctx); err != nil {
		a.opts.Logger.ErrorContext(
			ctx,
			"session command failed",
			slog.String("cmd", a.opts.SessionCmd),
			slog.Any("error", err),
		)
	}
}

func (a *Alerter) chime(final bool) {
	if !a.opts.Sound {
		return
	}

	s, err := Chime(final)
	if err == nil {
		err = a.play(s)
	}

	if err != nil {
		a.opts.Logger.Warn("unable to play sound", slog.Any("error", err))
	}
}

// RunSessionCmd executes the configured session command, if any.
func (a *Alerter) RunSessionCmd(ctx context.Context) error {
	sessionCmd := strings.TrimSpace(a.opts.SessionCmd)
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(ctx, cmdSlice[0], cmdSlice[1:]...)
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func playOnSpeaker(s beep.Streamer) error {
	speakerOnce.Do(func() {
		bufferSize := 10

		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
