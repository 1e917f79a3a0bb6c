package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "cannot %s while %s"}

func TestFmtMatchesTemplate(t *testing.T) {
	err := errTemplate.Fmt("pause", "Idle")

	assert.Equal(t, "cannot pause while Idle", err.Error())
	assert.ErrorIs(t, err, errTemplate)

	wrapped := fmt.Errorf("intent failed: %w", err)
	assert.ErrorIs(t, wrapped, errTemplate)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	base := &Error{Message: "saving session"}

	err := base.Wrap(cause)

	assert.Equal(t, "saving session: disk full", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, cause)
}

func TestDistinctTemplatesDoNotMatch(t *testing.T) {
	other := &Error{Message: "cannot %s while %s"}

	assert.NotErrorIs(t, errTemplate.Fmt("skip", "Idle"), other)
}
