package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/pacefit/pace/internal/models"
)

func TestShadeFollowsTheme(t *testing.T) {
	pterm.EnableColor()

	t.Cleanup(func() {
		DarkTheme = false
	})

	DarkTheme = false
	assert.Equal(t, pterm.FgMagenta.Sprint("2"), Magenta("2"))

	DarkTheme = true
	assert.Equal(t, pterm.FgLightMagenta.Sprint("2"), Magenta("2"))
	assert.Equal(t, pterm.FgLightWhite.Sprint("Core"), Highlight("Core"))
}

func TestDifficulty(t *testing.T) {
	pterm.EnableColor()

	cases := []struct {
		tier models.Difficulty
		want string
	}{
		{models.Beginner, pterm.FgGreen.Sprint(models.Beginner)},
		{models.Intermediate, pterm.FgBlue.Sprint(models.Intermediate)},
		{models.Advanced, pterm.FgMagenta.Sprint(models.Advanced)},
		{"elite", "elite"},
	}

	for _, tc := range cases {
		t.Run(string(tc.tier), func(t *testing.T) {
			assert.Equal(t, tc.want, Difficulty(tc.tier))
		})
	}
}

func TestTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	Table(&buf, [][]string{
		{"#", "WORKOUT"},
		{"1", "Morning Mobility"},
	})

	out := buf.String()
	assert.Contains(t, out, "WORKOUT")
	assert.Contains(t, out, "Morning Mobility")

	buf.Reset()
	Table(&buf, nil)
	assert.Empty(t, buf.String())
}
