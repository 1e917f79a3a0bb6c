package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/static"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Parse(static.Catalog())
	require.NoError(t, err)

	return c
}

func names(workouts []*models.Workout) []string {
	out := make([]string, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, w.Name)
	}

	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, 5, c.Len())

	want := []string{
		"Beginner Bodyweight Blast",
		"Core Crusher",
		"Full Body Power",
		"Quick Cardio HIIT",
		"Strength Builder",
	}

	if diff := cmp.Diff(want, names(c.List(Filter{}))); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	w, err := c.Get("bodyweight-blast")
	require.NoError(t, err)
	require.Len(t, w.Exercises, 3)
	assert.Equal(t, "Push-ups", w.Exercises[0].Name)
	assert.Equal(t, 90, w.TotalSeconds())
	assert.Equal(t, 15, w.Duration)

	ex, ok := c.Exercise("burpees")
	require.True(t, ok)
	assert.Equal(t, models.Advanced, ex.Difficulty)
}

func TestGetReturnsCopy(t *testing.T) {
	c := defaultCatalog(t)

	w, err := c.Get("core-crusher")
	require.NoError(t, err)

	w.Exercises[0].Duration = 1

	again, err := c.Get("core-crusher")
	require.NoError(t, err)
	assert.Equal(t, 30, again.Exercises[0].Duration)
}

func TestGetUnknown(t *testing.T) {
	c := defaultCatalog(t)

	_, err := c.Get("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestList(t *testing.T) {
	c := defaultCatalog(t)

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "difficulty",
			filter: Filter{Difficulty: models.Intermediate},
			want:   []string{"Core Crusher", "Quick Cardio HIIT", "Strength Builder"},
		},
		{
			name:   "equipment",
			filter: Filter{Equipment: []string{"Dumbbells"}},
			want:   []string{"Strength Builder"},
		},
		{
			name:   "muscle group",
			filter: Filter{MuscleGroup: "legs"},
			want:   []string{"Core Crusher", "Full Body Power", "Quick Cardio HIIT"},
		},
		{
			name:   "bodyweight only",
			filter: Filter{RestrictOwned: true},
			want: []string{
				"Beginner Bodyweight Blast",
				"Core Crusher",
				"Full Body Power",
				"Quick Cardio HIIT",
			},
		},
		{
			name:   "no match",
			filter: Filter{Difficulty: models.Advanced, MuscleGroup: "back"},
			want:   []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(c.List(tc.filter))

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("List() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecommended(t *testing.T) {
	c := defaultCatalog(t)

	cases := []struct {
		name    string
		profile models.Profile
		want    []string
	}{
		{
			name:    "intermediate without equipment",
			profile: models.Profile{FitnessLevel: models.Intermediate},
			want:    []string{"Core Crusher", "Quick Cardio HIIT"},
		},
		{
			name: "intermediate with a home gym",
			profile: models.Profile{
				FitnessLevel: models.Intermediate,
				Equipment:    []string{"dumbbells", "bench", "barbell"},
			},
			want: []string{"Core Crusher", "Quick Cardio HIIT", "Strength Builder"},
		},
		{
			name: "missing one piece of equipment",
			profile: models.Profile{
				FitnessLevel: models.Intermediate,
				Equipment:    []string{"dumbbells", "bench"},
			},
			want: []string{"Core Crusher", "Quick Cardio HIIT"},
		},
		{
			name:    "unset level falls back to beginner",
			profile: models.Profile{},
			want:    []string{"Beginner Bodyweight Blast"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(c.Recommended(&tc.profile))

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Recommended() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNaturalOrder(t *testing.T) {
	doc := `
exercises:
  - {id: a, name: A, difficulty: beginner, duration: 10}
workouts:
  - {id: w10, name: Circuit 10, difficulty: beginner, exercises: [a]}
  - {id: w2, name: Circuit 2, difficulty: beginner, exercises: [a]}
  - {id: w1, name: Circuit 1, difficulty: beginner, exercises: [a, a]}
`

	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Circuit 1", "Circuit 2", "Circuit 10"}, names(c.List(Filter{})))

	w, err := c.Get("w1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Duration, "duration defaults to the rounded up exercise total")
	assert.Equal(t, []string{models.EquipmentNone}, w.Exercises[0].Equipment)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown exercise",
			doc: `
workouts:
  - {id: w, name: W, difficulty: beginner, exercises: [missing]}
`,
			want: `unknown exercise "missing"`,
		},
		{
			name: "duplicate exercise",
			doc: `
exercises:
  - {id: a, name: A, difficulty: beginner, duration: 10}
  - {id: a, name: B, difficulty: beginner, duration: 10}
`,
			want: `duplicate exercise id "a"`,
		},
		{
			name: "non-positive duration",
			doc: `
exercises:
  - {id: a, name: A, difficulty: beginner, duration: 0}
workouts:
  - {id: w, name: W, difficulty: beginner, exercises: [a]}
`,
			want: `workout "w" cannot be played`,
		},
		{
			name: "empty workout",
			doc: `
workouts:
  - {id: w, name: W, difficulty: beginner, exercises: []}
`,
			want: `workout "w" cannot be played`,
		},
		{
			name: "bad difficulty",
			doc: `
exercises:
  - {id: a, name: A, difficulty: elite, duration: 10}
`,
			want: `invalid difficulty "elite"`,
		},
		{
			name: "missing id",
			doc: `
exercises:
  - {name: A, difficulty: beginner, duration: 10}
`,
			want: "has no id",
		},
		{
			name: "unknown field",
			doc: `
exercises:
  - {id: a, name: A, difficulty: beginner, duraton: 10}
`,
			want: "duraton",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errParseCatalog)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workouts.yml")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errReadCatalog)

	require.NoError(t, os.WriteFile(path, static.Catalog(), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}
