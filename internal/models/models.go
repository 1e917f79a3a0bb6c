// Package models holds the records shared between the player, the catalog
// and the store
package models

import (
	"time"
)

// Difficulty is the tier of an exercise or workout.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}

	return false
}

// EquipmentNone is implied for every profile.
const EquipmentNone = "none"

// Exercise is a single timed movement within a workout.
type Exercise struct {
	ID           string     `json:"id"            yaml:"id"`
	Name         string     `json:"name"          yaml:"name"`
	Description  string     `json:"description"   yaml:"description"`
	Instructions []string   `json:"instructions"  yaml:"instructions"`
	MuscleGroups []string   `json:"muscle_groups" yaml:"muscle_groups"`
	Equipment    []string   `json:"equipment"     yaml:"equipment"`
	Difficulty   Difficulty `json:"difficulty"    yaml:"difficulty"`
	// Duration is the nominal length in whole seconds.
	Duration int     `json:"duration" yaml:"duration"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// Workout is an ordered sequence of exercises.
type Workout struct {
	CreatedAt   time.Time  `json:"created_at"  yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"  yaml:"updated_at"`
	ID          string     `json:"id"          yaml:"id"`
	Name        string     `json:"name"        yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Difficulty  Difficulty `json:"difficulty"  yaml:"difficulty"`
	CreatedBy   string     `json:"created_by"  yaml:"created_by"`
	Exercises   []Exercise `json:"exercises"   yaml:"exercises"`
	// Duration is the nominal total in minutes.
	Duration int     `json:"duration" yaml:"duration"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// TotalSeconds is the sum of the nominal exercise durations.
func (w *Workout) TotalSeconds() int {
	var total int
	for i := range w.Exercises {
		total += w.Exercises[i].Duration
	}

	return total
}

// Equipment returns the distinct equipment tags required by the workout in
// first-seen order.
func (w *Workout) Equipment() []string {
	return distinct(w.Exercises, func(e *Exercise) []string {
		return e.Equipment
	})
}

// MuscleGroups returns the distinct muscle groups targeted by the workout in
// first-seen order.
func (w *Workout) MuscleGroups() []string {
	return distinct(w.Exercises, func(e *Exercise) []string {
		return e.MuscleGroups
	})
}

func distinct(exercises []Exercise, field func(*Exercise) []string) []string {
	seen := make(map[string]bool)

	var out []string

	for i := range exercises {
		for _, v := range field(&exercises[i]) {
			if seen[v] {
				continue
			}

			seen[v] = true

			out = append(out, v)
		}
	}

	return out
}

// ExerciseLog records the outcome of one exercise in a finished session.
type ExerciseLog struct {
	ExerciseID   string   `json:"exercise_id"`
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscle_groups"`
	Calories     float64  `json:"calories"`
	Completed    bool     `json:"completed"`
	Skipped      bool     `json:"skipped"`
}

// SessionLog is the persisted summary of a finished session.
type SessionLog struct {
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	ID             string        `json:"id"`
	WorkoutID      string        `json:"workout_id"`
	WorkoutName    string        `json:"workout_name"`
	Exercises      []ExerciseLog `json:"exercises"`
	Duration       time.Duration `json:"duration"`
	Calories       float64       `json:"calories"`
	CompletedCount int           `json:"completed_count"`
	TotalCount     int           `json:"total_count"`
	SkippedCount   int           `json:"skipped_count"`
}

// Profile holds the user attributes that drive recommendations.
type Profile struct {
	UpdatedAt    time.Time  `json:"updated_at"`
	Name         string     `json:"name"`
	FitnessLevel Difficulty `json:"fitness_level"`
	Equipment    []string   `json:"equipment"`
	// Frequency is the number of workout days per week.
	Frequency int `json:"frequency"`
}

// Validate checks the invariants a workout must satisfy before it can be
// played: at least one exercise, and every exercise with a positive duration
// and a non-negative calorie cost.
func (w *Workout) Validate() error {
	if len(w.Exercises) == 0 {
		return errNoExercises
	}

	for i := range w.Exercises {
		ex := &w.Exercises[i]

		if ex.Duration <= 0 {
			return errNonPositiveDuration.Fmt(i, ex.Name, ex.Duration)
		}

		if ex.Calories < 0 {
			return errNegativeCalories.Fmt(i, ex.Name)
		}
	}

	return nil
}
