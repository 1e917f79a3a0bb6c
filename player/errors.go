package player

import "github.com/pacefit/pace/internal/apperr"

var (
	// ErrInvalidWorkout is returned by New when the workout cannot be played.
	ErrInvalidWorkout = &apperr.Error{
		Message: "invalid workout",
	}

	// ErrInvalidTransition is returned by an intent that the current phase
	// does not support. The session is left untouched.
	ErrInvalidTransition = &apperr.Error{
		Message: "cannot %s while %s",
	}

	// ErrTimerFault reports a countdown timer that misfired or could not be
	// acquired.
	ErrTimerFault = &apperr.Error{
		Message: "timer fault: %s",
	}

	errInvalidInterval = &apperr.Error{
		Message: "tick interval must be positive, got %v",
	}
)

var errNilWorkout = &apperr.Error{
	Message: "workout is nil",
}
