package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutAggregates(t *testing.T) {
	w := Workout{
		Exercises: []Exercise{
			{Duration: 30, Equipment: []string{"none"}, MuscleGroups: []string{"chest", "core"}},
			{Duration: 45, Equipment: []string{"dumbbells", "none"}, MuscleGroups: []string{"core", "legs"}},
		},
	}

	assert.Equal(t, 75, w.TotalSeconds())
	assert.Equal(t, []string{"none", "dumbbells"}, w.Equipment())
	assert.Equal(t, []string{"chest", "core", "legs"}, w.MuscleGroups())
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, Beginner.Valid())
	assert.True(t, Advanced.Valid())
	assert.False(t, Difficulty("expert").Valid())
	assert.False(t, Difficulty("").Valid())
}

func TestWorkoutValidate(t *testing.T) {
	cases := []struct {
		Want    error
		Name    string
		Workout Workout
	}{
		{
			Name:    "no exercises",
			Workout: Workout{},
			Want:    errNoExercises,
		},
		{
			Name: "zero duration",
			Workout: Workout{Exercises: []Exercise{
				{Name: "Plank", Duration: 30},
				{Name: "Squats", Duration: 0},
			}},
			Want: errNonPositiveDuration,
		},
		{
			Name: "negative calories",
			Workout: Workout{Exercises: []Exercise{
				{Name: "Plank", Duration: 30, Calories: -1},
			}},
			Want: errNegativeCalories,
		},
		{
			Name: "valid",
			Workout: Workout{Exercises: []Exercise{
				{Name: "Plank", Duration: 30, Calories: 3},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Workout.Validate()
			if tc.Want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.Want)
		})
	}
}
