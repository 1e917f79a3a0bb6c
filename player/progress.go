package player

import (
	"slices"
	"time"

	"github.com/pacefit/pace/internal/models"
)

// State is a point-in-time copy of the session state.
type State struct {
	StartedAt        time.Time
	Completed        []int
	Skipped          []int
	ExerciseIndex    int
	RemainingSeconds int
	Phase            Phase
	Exited           bool
}

// IsCompleted reports whether the exercise at index i has been completed.
func (s State) IsCompleted(i int) bool {
	_, found := slices.BinarySearch(s.Completed, i)
	return found
}

// Progress is the renderer's view of a session.
type Progress struct {
	Current          models.Exercise
	Next             *models.Exercise
	ExerciseIndex    int
	TotalExercises   int
	PercentComplete  float64
	RemainingSeconds int
	Phase            Phase
}

// Project derives the progress of state over w. It does not retain or
// modify either argument.
func Project(state State, w *models.Workout) Progress {
	total := len(w.Exercises)

	p := Progress{
		ExerciseIndex:    state.ExerciseIndex,
		TotalExercises:   total,
		RemainingSeconds: state.RemainingSeconds,
		Phase:            state.Phase,
	}

	if total == 0 {
		return p
	}

	p.PercentComplete = float64(state.ExerciseIndex) / float64(total)
	p.Current = w.Exercises[state.ExerciseIndex]

	if state.ExerciseIndex < total-1 {
		next := w.Exercises[state.ExerciseIndex+1]
		p.Next = &next
	}

	return p
}
