package models

import "github.com/pacefit/pace/internal/apperr"

var (
	errNoExercises = &apperr.Error{
		Message: "workout has no exercises",
	}

	errNonPositiveDuration = &apperr.Error{
		Message: "exercise %d (%s) must have a positive duration, got %d",
	}

	errNegativeCalories = &apperr.Error{
		Message: "exercise %d (%s) cannot have a negative calorie cost",
	}
)
