package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/report"
	"github.com/pacefit/pace/internal/ui"
	"github.com/pacefit/pace/store"
)

const (
	minFrequency = 1
	maxFrequency = 7
)

func printProfile(w io.Writer, p *models.Profile) {
	equipment := strings.Join(p.Equipment, ", ")
	if equipment == "" {
		equipment = models.EquipmentNone
	}

	frequency := "-"
	if p.Frequency > 0 {
		frequency = fmt.Sprintf("%d days/week", p.Frequency)
	}

	ui.Table(w, [][]string{
		{"FIELD", "VALUE"},
		{"Name", p.Name},
		{"Fitness level", string(p.FitnessLevel)},
		{"Equipment", equipment},
		{"Frequency", frequency},
	})
}

// applyProfileFlags updates p from the flags that were set and reports
// whether anything changed.
func applyProfileFlags(ctx *cli.Context, p *models.Profile) (bool, error) {
	changed := false

	if ctx.IsSet("name") {
		p.Name = ctx.String("name")
		changed = true
	}

	if ctx.IsSet("level") {
		d, err := parseDifficulty(ctx.String("level"))
		if err != nil || d == "" {
			return false, errInvalidLevel.Fmt(ctx.String("level"))
		}

		p.FitnessLevel = d
		changed = true
	}

	if ctx.IsSet("equipment") {
		p.Equipment = ctx.StringSlice("equipment")
		changed = true
	}

	if ctx.IsSet("frequency") {
		f := ctx.Int("frequency")
		if f < minFrequency || f > maxFrequency {
			return false, errInvalidFrequency.Fmt(f)
		}

		p.Frequency = f
		changed = true
	}

	return changed, nil
}

// profileAction prints the profile, updating it first if any flag is set.
func (e *env) profileAction(ctx *cli.Context) error {
	db, err := store.NewClient(e.paths.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	p, err := db.GetProfile()
	if err != nil {
		return err
	}

	if p == nil {
		p = &models.Profile{FitnessLevel: models.Beginner}
	}

	changed, err := applyProfileFlags(ctx, p)
	if err != nil {
		return err
	}

	if changed {
		p.UpdatedAt = e.now()

		if err := db.SaveProfile(p); err != nil {
			return err
		}

		report.ProfileUpdated()
	}

	printProfile(e.stdout, p)

	return nil
}
