// Package ui holds the colours and tables shared by pace's reports
package ui

import (
	"github.com/pterm/pterm"

	"github.com/pacefit/pace/internal/models"
)

// DarkTheme switches every colour to the variant that reads on a dark
// terminal background.
var DarkTheme bool

type shade struct {
	light pterm.Color
	dark  pterm.Color
}

func (s shade) paint(a any) string {
	if DarkTheme {
		return s.dark.Sprint(a)
	}

	return s.light.Sprint(a)
}

var (
	green     = shade{pterm.FgGreen, pterm.FgLightGreen}
	cyan      = shade{pterm.FgCyan, pterm.FgLightCyan}
	magenta   = shade{pterm.FgMagenta, pterm.FgLightMagenta}
	blue      = shade{pterm.FgBlue, pterm.FgLightBlue}
	highlight = shade{pterm.FgBlack, pterm.FgLightWhite}
)

// Green marks values: counts, durations, totals.
func Green(a any) string {
	return green.paint(a)
}

// Cyan marks identifiers the user can pass back to a command.
func Cyan(a any) string {
	return cyan.paint(a)
}

// Magenta marks skipped exercises.
func Magenta(a any) string {
	return magenta.paint(a)
}

// Blue marks section headings.
func Blue(a any) string {
	return blue.paint(a)
}

func Highlight(a any) string {
	return highlight.paint(a)
}

// Difficulty renders a tier in its own colour.
func Difficulty(d models.Difficulty) string {
	switch d {
	case models.Beginner:
		return Green(d)
	case models.Intermediate:
		return Blue(d)
	case models.Advanced:
		return Magenta(d)
	}

	return string(d)
}
