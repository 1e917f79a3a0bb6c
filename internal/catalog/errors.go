package catalog

import "github.com/pacefit/pace/internal/apperr"

var (
	ErrWorkoutNotFound = &apperr.Error{
		Message: "workout %q not found in the catalog",
	}

	errReadCatalog = &apperr.Error{
		Message: "unable to read workout catalog at %s",
	}

	errParseCatalog = &apperr.Error{
		Message: "invalid workout catalog",
	}

	errUnknownExercise = &apperr.Error{
		Message: "workout %q references unknown exercise %q",
	}

	errDuplicateID = &apperr.Error{
		Message: "duplicate %s id %q",
	}

	errMissingID = &apperr.Error{
		Message: "%s %q has no id",
	}

	errInvalidDifficulty = &apperr.Error{
		Message: "%s %q has invalid difficulty %q: expected beginner, intermediate or advanced",
	}

	errInvalidWorkout = &apperr.Error{
		Message: "workout %q cannot be played",
	}
)
