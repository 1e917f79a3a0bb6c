package app

import "github.com/pacefit/pace/internal/apperr"

var (
	errWorkoutRequired = &apperr.Error{
		Message: "a workout id is required (see 'pace list')",
	}

	errInvalidLevel = &apperr.Error{
		Message: "invalid fitness level %q: expected beginner, intermediate or advanced",
	}

	errInvalidFrequency = &apperr.Error{
		Message: "workout frequency must be between 1 and 7 days per week, got %d",
	}

	errNoWorkouts = &apperr.Error{
		Message: "the catalog has no workouts",
	}

	errRecordSession = &apperr.Error{
		Message: "unable to save the workout to your history",
	}
)
