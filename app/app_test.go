package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacefit/pace/internal/alert"
	"github.com/pacefit/pace/internal/catalog"
	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/pathutil"
	"github.com/pacefit/pace/player"
	"github.com/pacefit/pace/store"
	"github.com/pacefit/pace/tui"
)

var now = time.Date(2026, time.October, 18, 18, 0, 0, 0, time.UTC)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type harness struct {
	env *env
	out *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	out := &bytes.Buffer{}

	return &harness{
		out: out,
		env: &env{
			paths:  pathutil.InDir(t.TempDir()),
			now:    func() time.Time { return now },
			stdout: out,
			stdin:  strings.NewReader("\n"),
			logs:   nopCloser{},
		},
	}
}

func (h *harness) run(args ...string) error {
	h.out.Reset()

	return newApp(h.env).Run(append([]string{"pace", "--no-color"}, args...))
}

func TestList(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "difficulty",
			args:    []string{"list", "--difficulty", "Intermediate"},
			want:    []string{"Quick Cardio HIIT", "Strength Builder", "Core Crusher"},
			notWant: []string{"Beginner Bodyweight Blast", "Full Body Power"},
		},
		{
			name:    "equipment",
			args:    []string{"list", "--equipment", "barbell"},
			want:    []string{"Strength Builder"},
			notWant: []string{"Core Crusher"},
		},
		{
			name:    "muscle group",
			args:    []string{"list", "--muscle", "core", "--difficulty", "advanced"},
			want:    []string{"Full Body Power"},
			notWant: []string{"Core Crusher"},
		},
		{
			name:    "recommended without a profile",
			args:    []string{"list", "--recommended"},
			want:    []string{"Beginner Bodyweight Blast"},
			notWant: []string{"Quick Cardio HIIT"},
		},
		{
			name: "everything",
			args: []string{"list"},
			want: []string{
				"Beginner Bodyweight Blast",
				"Quick Cardio HIIT",
				"Strength Builder",
				"Core Crusher",
				"Full Body Power",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)

			require.NoError(t, h.run(tc.args...))

			for _, w := range tc.want {
				assert.Contains(t, h.out.String(), w)
			}

			for _, w := range tc.notWant {
				assert.NotContains(t, h.out.String(), w)
			}
		})
	}
}

func TestListRejectsUnknownDifficulty(t *testing.T) {
	h := newHarness(t)

	err := h.run("list", "--difficulty", "expert")
	assert.ErrorIs(t, err, errInvalidLevel)
}

func TestProfileDrivesRecommendations(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(
		"profile",
		"--name", "Sam",
		"--level", "intermediate",
		"--equipment", "dumbbells",
		"--equipment", "bench",
		"--frequency", "4",
	))
	assert.Contains(t, h.out.String(), "Sam")
	assert.Contains(t, h.out.String(), "4 days/week")

	require.NoError(t, h.run("list", "--recommended"))
	assert.Contains(t, h.out.String(), "Quick Cardio HIIT")
	assert.Contains(t, h.out.String(), "Core Crusher")
	assert.NotContains(t, h.out.String(), "Strength Builder", "needs a barbell")

	require.NoError(t, h.run("profile"))
	assert.Contains(t, h.out.String(), "dumbbells, bench")
}

func TestProfileValidation(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.run("profile", "--frequency", "9"), errInvalidFrequency)
	assert.ErrorIs(t, h.run("profile", "--level", ""), errInvalidLevel)
}

func TestShow(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("show", "core-crusher"))
	assert.Contains(t, h.out.String(), "Core Crusher")
	assert.Contains(t, h.out.String(), "Plank")
	assert.Contains(t, h.out.String(), "Mountain Climbers")

	assert.ErrorIs(t, h.run("show", "yoga"), catalog.ErrWorkoutNotFound)
	assert.ErrorIs(t, h.run("show"), errWorkoutRequired)
}

func seedLog(t *testing.T, paths *pathutil.Paths, l *models.SessionLog) {
	t.Helper()

	db, err := store.NewClient(paths.DBFilePath())
	require.NoError(t, err)

	defer db.Close()

	require.NoError(t, db.RecordSession(l))
}

func TestHistoryAndStats(t *testing.T) {
	h := newHarness(t)

	// installs the catalog and creates the data directory
	require.NoError(t, h.run("list"))

	seedLog(t, h.env.paths, &models.SessionLog{
		ID:             "log-1",
		WorkoutID:      "core-crusher",
		WorkoutName:    "Core Crusher",
		StartedAt:      now.Add(-2 * time.Hour),
		FinishedAt:     now.Add(-time.Hour),
		Duration:       25 * time.Minute,
		Calories:       150,
		CompletedCount: 2,
		TotalCount:     2,
		Exercises: []models.ExerciseLog{
			{ExerciseID: "plank", MuscleGroups: []string{"core"}, Completed: true},
		},
	})

	require.NoError(t, h.run("history"))
	assert.Contains(t, h.out.String(), "Core Crusher")

	require.NoError(t, h.run("history", "--period", "yesterday"))
	assert.NotContains(t, h.out.String(), "Core Crusher")

	require.NoError(t, h.run("stats", "--period", "today"))
	assert.NotEmpty(t, h.out.String())

	require.NoError(t, h.run("stats", "--json"))
	assert.Contains(t, h.out.String(), `"total_workouts":1`)

	assert.Error(t, h.run("history", "--period", "fortnight"))
}

func TestStatus(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("list"))

	require.NoError(t, h.run("status"))
	assert.Empty(t, h.out.String(), "nothing is running")

	db, err := store.NewClient(h.env.paths.DBFilePath())
	require.NoError(t, err)

	defer db.Close()

	s := tui.Status{
		Workout:          "Core Crusher",
		Exercise:         "Plank",
		Phase:            player.Running.String(),
		TotalExercises:   2,
		RemainingSeconds: 27,
	}
	require.NoError(t, tui.WriteStatus(h.env.paths.StatusFilePath(), &s))

	require.NoError(t, h.run("status"))
	assert.Equal(t, "[Plank 1/2]: 0:27\n", h.out.String())
}

type failingDB struct {
	store.DB
}

func (failingDB) RecordSession(*models.SessionLog) error {
	return errors.New("disk full")
}

func testSummary() player.Summary {
	return player.Summary{
		StartedAt:        now.Add(-10 * time.Minute),
		FinishedAt:       now,
		WorkoutID:        "core-crusher",
		WorkoutName:      "Core Crusher",
		TotalDuration:    10 * time.Minute,
		CompletedCount:   2,
		TotalCount:       2,
		CaloriesEstimate: 10,
	}
}

func TestSessionRecordsCompletedWorkout(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "pace.db"))
	require.NoError(t, err)

	defer db.Close()

	s := newSession(t.Context(), db, alert.New(alert.Options{}))
	s.hooks().OnComplete(testSummary())
	s.wait()

	require.NoError(t, s.error())

	logs, err := db.GetSessions(now.Add(-time.Hour), now)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, "core-crusher", logs[0].WorkoutID)
	assert.NotEmpty(t, logs[0].ID)
}

func TestSessionReportsRecordFailure(t *testing.T) {
	s := newSession(t.Context(), failingDB{}, alert.New(alert.Options{}))
	s.hooks().OnComplete(testSummary())
	s.wait()

	assert.ErrorIs(t, s.error(), errRecordSession)
}
