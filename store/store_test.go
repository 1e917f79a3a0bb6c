package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/pacefit/pace/internal/models"
)

var day = time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "pace.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func sessionLog(id string, finished time.Time) *models.SessionLog {
	return &models.SessionLog{
		ID:          id,
		WorkoutID:   "core-crusher",
		WorkoutName: "Core Crusher",
		StartedAt:   finished.Add(-10 * time.Minute),
		FinishedAt:  finished,
		Duration:    10 * time.Minute,
		Calories:    11,
		Exercises: []models.ExerciseLog{
			{ExerciseID: "plank", Name: "Plank", Completed: true},
		},
		CompletedCount: 1,
		TotalCount:     1,
	}
}

func TestRecordAndGetSessions(t *testing.T) {
	c := newTestClient(t)

	logs := []*models.SessionLog{
		sessionLog("a", day.Add(7*time.Hour)),
		sessionLog("b", day.Add(7*time.Hour+500*time.Millisecond)),
		sessionLog("c", day.Add(7*time.Hour+5*time.Second)),
		sessionLog("d", day.Add(30*time.Hour)),
	}

	// insert out of order; reads come back in finish order
	for _, i := range []int{3, 1, 0, 2} {
		require.NoError(t, c.RecordSession(logs[i]))
	}

	got, err := c.GetSessions(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for i := range got {
		ids = append(ids, got[i].ID)
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids)

	if diff := cmp.Diff(*logs[0], got[0], cmp.Comparer(func(a, b time.Time) bool {
		return a.Equal(b)
	})); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}

	all, err := c.GetSessions(time.Time{}, day.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := c.GetSessions(day.Add(40*time.Hour), day.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetSessionsAcrossTimeZones(t *testing.T) {
	c := newTestClient(t)

	lagos := time.FixedZone("WAT", 3600)

	require.NoError(t, c.RecordSession(sessionLog("a", day.Add(10*time.Hour).In(lagos))))

	got, err := c.GetSessions(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestRecordSessionRequiresFinishTime(t *testing.T) {
	c := newTestClient(t)

	err := c.RecordSession(&models.SessionLog{ID: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingFinishTime)
}

func TestDeleteSessions(t *testing.T) {
	c := newTestClient(t)

	a := sessionLog("a", day.Add(time.Hour))
	b := sessionLog("b", day.Add(2*time.Hour))

	require.NoError(t, c.RecordSession(a))
	require.NoError(t, c.RecordSession(b))

	require.NoError(t, c.DeleteSessions([]models.SessionLog{*a}))

	got, err := c.GetSessions(day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestProfile(t *testing.T) {
	c := newTestClient(t)

	p, err := c.GetProfile()
	require.NoError(t, err)
	assert.Nil(t, p)

	want := &models.Profile{
		Name:         "Ada",
		FitnessLevel: models.Intermediate,
		Equipment:    []string{"dumbbells"},
		Frequency:    3,
		UpdatedAt:    day,
	}

	require.NoError(t, c.SaveProfile(want))

	p, err = c.GetProfile()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, want.UpdatedAt.Equal(p.UpdatedAt))

	p.UpdatedAt = want.UpdatedAt
	assert.Equal(t, want, p)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pace.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	require.Error(t, err)
	assert.True(t, IsLocked(err))
	assert.ErrorIs(t, err, bolt.ErrTimeout)
}

func TestIsRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pace.db")

	running, err := IsRunning(path)
	require.NoError(t, err)
	assert.False(t, running, "missing database")

	c, err := NewClient(path)
	require.NoError(t, err)

	running, err = IsRunning(path)
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, c.Close())

	running, err = IsRunning(path)
	require.NoError(t, err)
	assert.False(t, running)
}

func TestReopen(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.RecordSession(sessionLog("a", day)))
	require.NoError(t, c.Close())
	require.NoError(t, c.Open())

	got, err := c.GetSessions(day, day)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMigrateAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pace.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	legacy := sessionLog("", day)
	legacy.Exercises = append(legacy.Exercises, models.ExerciseLog{
		ExerciseID: "burpees",
		Skipped:    true,
	})

	v, err := json.Marshal(legacy)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte(logBucket))
		if err != nil {
			return err
		}

		return b.Put(logKey(legacy.FinishedAt), v)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	got, err := c.GetSessions(day, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, 1, got[0].SkippedCount)

	err = c.View(func(tx *bolt.Tx) error {
		assert.Equal(t, schemaVersion, c.version(tx))
		return nil
	})
	require.NoError(t, err)
}
