package player

import (
	"time"

	"github.com/google/uuid"

	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/timeutil"
)

// ExerciseResult is the outcome of a single exercise in a finished session.
type ExerciseResult struct {
	ID           string
	Name         string
	MuscleGroups []string
	Calories     float64
	Completed    bool
	Skipped      bool
}

// Summary is produced once when a session reaches Complete.
type Summary struct {
	StartedAt   time.Time
	FinishedAt  time.Time
	WorkoutID   string
	WorkoutName string
	Exercises   []ExerciseResult
	// TotalDuration is the wall-clock time from the first start to
	// completion, pauses included.
	TotalDuration    time.Duration
	CompletedCount   int
	TotalCount       int
	SkippedCount     int
	CaloriesEstimate float64
}

// TotalDurationSeconds returns the precise duration in seconds.
func (s *Summary) TotalDurationSeconds() float64 {
	return s.TotalDuration.Seconds()
}

// DurationMinutes returns the duration rounded to whole minutes for display.
func (s *Summary) DurationMinutes() int {
	return timeutil.Round(s.TotalDuration.Minutes())
}

// Log converts s into the record kept by the session store.
func (s *Summary) Log() *models.SessionLog {
	l := &models.SessionLog{
		ID:             uuid.NewString(),
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
		WorkoutID:      s.WorkoutID,
		WorkoutName:    s.WorkoutName,
		Duration:       s.TotalDuration,
		Calories:       s.CaloriesEstimate,
		CompletedCount: s.CompletedCount,
		TotalCount:     s.TotalCount,
		SkippedCount:   s.SkippedCount,
		Exercises:      make([]models.ExerciseLog, len(s.Exercises)),
	}

	for i, ex := range s.Exercises {
		l.Exercises[i] = models.ExerciseLog{
			ExerciseID:   ex.ID,
			Name:         ex.Name,
			MuscleGroups: ex.MuscleGroups,
			Calories:     ex.Calories,
			Completed:    ex.Completed,
			Skipped:      ex.Skipped,
		}
	}

	return l
}

// buildSummary computes the session summary. Skipped exercises count as
// completed and contribute their calorie cost. Callers hold e.mu.
func (e *Engine) buildSummary(finishedAt time.Time) Summary {
	s := Summary{
		StartedAt:     e.startedAt,
		FinishedAt:    finishedAt,
		WorkoutID:     e.workout.ID,
		WorkoutName:   e.workout.Name,
		TotalDuration: finishedAt.Sub(e.startedAt),
		TotalCount:    len(e.workout.Exercises),
		Exercises:     make([]ExerciseResult, len(e.workout.Exercises)),
	}

	for i := range e.workout.Exercises {
		ex := &e.workout.Exercises[i]

		res := ExerciseResult{
			ID:           ex.ID,
			Name:         ex.Name,
			MuscleGroups: ex.MuscleGroups,
			Calories:     ex.Calories,
			Completed:    e.completed[i],
			Skipped:      e.skipped[i],
		}

		if res.Completed {
			s.CompletedCount++
			s.CaloriesEstimate += ex.Calories
		}

		if res.Skipped {
			s.SkippedCount++
		}

		s.Exercises[i] = res
	}

	return s
}
