package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pacefit/pace/internal/osutil"
	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/player"
)

// Status is a snapshot of the running session written to disk so that
// `pace status` can report on it from another process.
type Status struct {
	UpdatedAt        time.Time `json:"updated_at"`
	Workout          string    `json:"workout"`
	Exercise         string    `json:"exercise"`
	Phase            string    `json:"phase"`
	ExerciseIndex    int       `json:"exercise_index"`
	TotalExercises   int       `json:"total_exercises"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

// NewStatus captures p for the named workout.
func NewStatus(workout string, p *player.Progress, now time.Time) Status {
	return Status{
		UpdatedAt:        now,
		Workout:          workout,
		Exercise:         p.Current.Name,
		Phase:            p.Phase.String(),
		ExerciseIndex:    p.ExerciseIndex,
		TotalExercises:   p.TotalExercises,
		RemainingSeconds: p.RemainingSeconds,
	}
}

func (s *Status) String() string {
	prefix := fmt.Sprintf(
		"[%s %d/%d]",
		s.Exercise,
		s.ExerciseIndex+1,
		s.TotalExercises,
	)

	switch s.Phase {
	case player.Running.String():
		return prefix + ": " + timeutil.FormatClock(s.RemainingSeconds)
	case player.Idle.String():
		return prefix + ": Ready"
	}

	return prefix + ": " + s.Phase
}

// MarshalStatus encodes s the way it is stored in the status file.
func MarshalStatus(s *Status) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// WriteStatus replaces the status file at path.
func WriteStatus(path string, s *Status) error {
	b, err := MarshalStatus(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

// ReadStatus loads the status file at path.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errCorruptStatus.Wrap(err)
	}

	return &s, nil
}
