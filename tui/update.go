package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/pacefit/pace/player"
)

// openSkipConfirm asks before skipping the current exercise. The session
// keeps running while the prompt is shown.
func (m *Model) openSkipConfirm() tea.Cmd {
	skip := false
	m.skip = &skip

	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Skip " + m.current.Current.Name + "?").
				Affirmative("Skip").
				Negative("Keep going").
				Value(m.skip),
		),
	).WithShowHelp(false)

	return m.confirm.Init()
}

func (m *Model) closeConfirm() tea.Cmd {
	if m.confirm.State == huh.StateCompleted && m.skip != nil && *m.skip {
		m.intent("skip", m.engine.Skip)
	}

	m.confirm = nil
	m.skip = nil

	return nil
}

func (m *Model) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State != huh.StateNormal {
		return m, m.closeConfirm()
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.forceQuit) {
		return m, m.quit()
	}

	if m.result != nil {
		if key.Matches(msg, defaultKeymap.quit, defaultKeymap.start) {
			return m, tea.Quit
		}

		return m, nil
	}

	if m.confirm != nil {
		return m.handleConfirm(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		switch m.current.Phase {
		case player.Running:
			m.intent("pause", m.engine.Pause)
		case player.Paused:
			m.intent("resume", m.engine.Resume)
		default:
			m.intent("start", m.engine.Start)
		}

	case key.Matches(msg, defaultKeymap.start):
		m.intent("start", m.engine.Start)

	case key.Matches(msg, defaultKeymap.skip):
		if m.current.Phase == player.Running ||
			m.current.Phase == player.Paused {
			return m, m.openSkipConfirm()
		}

	case key.Matches(msg, defaultKeymap.complete):
		m.intent("complete", m.engine.CompleteCurrent)

	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, m.handleEvent(player.Event(msg))

	case doneMsg:
		return m, m.handleDone(player.Result(msg))

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.confirm != nil {
		return m.handleConfirm(msg)
	}

	return m, nil
}
