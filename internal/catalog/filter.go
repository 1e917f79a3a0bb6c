package catalog

import (
	"slices"
	"strings"

	"github.com/pacefit/pace/internal/models"
)

// Filter selects workouts. Zero fields match everything.
type Filter struct {
	Difficulty models.Difficulty
	// Equipment matches workouts that use any of the listed tags.
	Equipment []string
	// MuscleGroup matches workouts that target the group.
	MuscleGroup string
	// Owned restricts the result to workouts that need only the listed
	// equipment. Bodyweight exercises are always allowed.
	Owned []string
	// RestrictOwned enables the Owned check, so that an empty Owned list
	// means bodyweight only.
	RestrictOwned bool
}

// Match reports whether w satisfies every criterion in f.
func (f Filter) Match(w *models.Workout) bool {
	if f.Difficulty != "" && w.Difficulty != f.Difficulty {
		return false
	}

	equipment := w.Equipment()

	if len(f.Equipment) > 0 && !anyOf(equipment, f.Equipment) {
		return false
	}

	if f.MuscleGroup != "" && !anyOf(w.MuscleGroups(), []string{f.MuscleGroup}) {
		return false
	}

	if f.RestrictOwned {
		for _, e := range equipment {
			if strings.EqualFold(e, models.EquipmentNone) {
				continue
			}

			if !anyOf(f.Owned, []string{e}) {
				return false
			}
		}
	}

	return true
}

func anyOf(have, want []string) bool {
	return slices.ContainsFunc(want, func(w string) bool {
		return slices.ContainsFunc(have, func(h string) bool {
			return strings.EqualFold(h, w)
		})
	})
}

// Recommended returns the workouts suited to p: those at the profile's
// fitness level that need no equipment beyond what the profile owns.
func (c *Catalog) Recommended(p *models.Profile) []*models.Workout {
	level := p.FitnessLevel
	if !level.Valid() {
		level = models.Beginner
	}

	return c.List(Filter{
		Difficulty:    level,
		Owned:         p.Equipment,
		RestrictOwned: true,
	})
}
