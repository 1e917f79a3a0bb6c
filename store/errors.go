package store

import (
	"errors"

	"github.com/pacefit/pace/internal/apperr"
)

var (
	errPaceRunning = &apperr.Error{
		Message: "is pace already running? Only one instance can be active at a time",
	}

	errCorruptLog = &apperr.Error{
		Message: "unreadable session log at key %s",
	}

	errMissingFinishTime = &apperr.Error{
		Message: "session log %q has no finish time",
	}
)

// IsLocked reports whether err means the database is held by another pace
// process.
func IsLocked(err error) bool {
	return errors.Is(err, errPaceRunning)
}
