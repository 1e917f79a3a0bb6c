package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/player"
)

// timerText returns "Ready" before the first start and M:SS afterwards.
func (m *Model) timerText() string {
	if m.current.Phase == player.Idle {
		return "Ready"
	}

	return timeutil.FormatClock(m.current.RemainingSeconds)
}

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render(m.engine.Workout().Name))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.current.PercentComplete))
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.Render(fmt.Sprintf(
		"%d of %d exercises",
		m.current.ExerciseIndex+1,
		m.current.TotalExercises,
	)))

	return s.String()
}

func (m *Model) exerciseView() string {
	var s strings.Builder

	ex := m.current.Current

	s.WriteString(m.styles.Timer.Render(m.timerText()))
	s.WriteString(m.styles.Secondary.Render(ex.Name))

	if m.current.Phase == player.Paused {
		s.WriteString(" " + m.styles.Hint.Render("[Paused]"))
	}

	if ex.Description != "" {
		s.WriteString("\n\n" + ex.Description)
	}

	if len(ex.Instructions) > 0 {
		s.WriteString("\n\n" + m.styles.Secondary.Render("Instructions"))

		for i, step := range ex.Instructions {
			fmt.Fprintf(&s, "\n %d. %s", i+1, step)
		}
	}

	if len(ex.MuscleGroups) > 0 {
		s.WriteString("\n\n" + m.styles.Hint.Render(
			"Target: "+strings.Join(ex.MuscleGroups, ", "),
		))
	}

	return s.String()
}

func (m *Model) upNextView() string {
	next := m.current.Next
	if next == nil {
		return m.styles.Hint.Render("Last exercise")
	}

	return m.styles.Hint.Render(fmt.Sprintf(
		"Up next: %s (%s)",
		next.Name,
		timeutil.FormatClock(next.Duration),
	))
}

func (m *Model) transitionView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render("Nice work!"))
	s.WriteString("\n\n" + m.styles.Secondary.Render(
		m.current.Current.Name+" is done",
	))
	s.WriteString("\n\n" + m.upNextView())

	return s.String()
}

func (m *Model) summaryView() string {
	var s strings.Builder

	sum := m.result.Summary

	s.WriteString(m.styles.Main.Render("Workout complete!"))
	s.WriteString("\n\n" + m.styles.Secondary.Render(sum.WorkoutName))
	fmt.Fprintf(
		&s,
		"\n\nExercises: %d/%d completed",
		sum.CompletedCount,
		sum.TotalCount,
	)

	if sum.SkippedCount > 0 {
		fmt.Fprintf(&s, " (%d skipped)", sum.SkippedCount)
	}

	fmt.Fprintf(&s, "\nDuration:  %s", timeutil.FormatDuration(sum.TotalDuration))
	fmt.Fprintf(&s, "\nCalories:  %.0f kcal", sum.CaloriesEstimate)
	s.WriteString("\n\n" + m.styles.Quote.Render(`"`+m.quote+`"`))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) helpView() string {
	bindings := []key.Binding{defaultKeymap.togglePlay}

	switch m.current.Phase {
	case player.Idle:
		bindings = []key.Binding{defaultKeymap.start}
	case player.Running, player.Paused:
		bindings = append(bindings, defaultKeymap.skip, defaultKeymap.complete)
	case player.Transitioning:
		bindings = nil
	}

	return m.help.ShortHelpView(append(bindings, defaultKeymap.quit))
}

func (m *Model) View() string {
	if m.result != nil {
		if m.result.Summary == nil {
			return ""
		}

		return m.styles.Base.Render(m.summaryView())
	}

	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")

	if m.current.Phase == player.Transitioning {
		s.WriteString(m.transitionView())
	} else {
		s.WriteString(m.exerciseView())
		s.WriteString("\n\n" + m.upNextView())
	}

	if m.confirm != nil {
		s.WriteString("\n\n" + m.confirm.View())
	} else {
		s.WriteString("\n\n" + m.helpView())
	}

	return m.styles.Base.Render(s.String())
}
