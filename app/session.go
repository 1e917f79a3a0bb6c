package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pacefit/pace/internal/alert"
	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/player"
	"github.com/pacefit/pace/store"
)

// session connects a running engine to the session log and the alerts.
type session struct {
	ctx     context.Context
	db      store.DB
	alerter *alert.Alerter
	err     error
	wg      sync.WaitGroup
	mu      sync.Mutex
}

func newSession(
	ctx context.Context,
	db store.DB,
	alerter *alert.Alerter,
) *session {
	return &session{
		ctx:     ctx,
		db:      db,
		alerter: alerter,
	}
}

func (s *session) hooks() player.Hooks {
	return player.Hooks{
		OnComplete: s.complete,
		OnExit: func() {
			slog.InfoContext(s.ctx, "workout ended early")
		},
	}
}

func (s *session) complete(sum player.Summary) {
	l := sum.Log()

	if err := s.db.RecordSession(l); err != nil {
		s.mu.Lock()
		s.err = errRecordSession.Wrap(err)
		s.mu.Unlock()
	} else {
		slog.InfoContext(
			s.ctx,
			"workout recorded",
			slog.String("id", l.ID),
			slog.String("workout_id", l.WorkoutID),
			slog.Int("completed", l.CompletedCount),
			slog.Int("skipped", l.SkippedCount),
		)
	}

	msg := fmt.Sprintf(
		"%s: %d/%d exercises in %s, about %.0f kcal",
		sum.WorkoutName,
		sum.CompletedCount,
		sum.TotalCount,
		timeutil.FormatDuration(sum.TotalDuration),
		sum.CaloriesEstimate,
	)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.alerter.WorkoutDone(s.ctx, "Workout complete", msg)
	}()
}

// wait blocks until the completion alerts have finished.
func (s *session) wait() {
	s.wg.Wait()
}

func (s *session) error() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}
