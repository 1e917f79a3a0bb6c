// Package catalog provides the workouts available to the player. Workouts
// are read from a YAML file where exercises are defined once and referenced
// by id.
package catalog

import (
	"bytes"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"

	"github.com/pacefit/pace/internal/models"
)

type fileWorkout struct {
	CreatedAt   time.Time         `yaml:"created_at"`
	UpdatedAt   time.Time         `yaml:"updated_at"`
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Difficulty  models.Difficulty `yaml:"difficulty"`
	CreatedBy   string            `yaml:"created_by"`
	Exercises   []string          `yaml:"exercises"`
	Duration    int               `yaml:"duration"`
	Calories    float64           `yaml:"calories"`
}

type file struct {
	Exercises []models.Exercise `yaml:"exercises"`
	Workouts  []fileWorkout     `yaml:"workouts"`
}

// Catalog is an immutable, validated set of workouts.
type Catalog struct {
	workouts  map[string]*models.Workout
	exercises map[string]*models.Exercise
	order     []string
}

// Load reads the catalog at path.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadCatalog.Fmt(path).Wrap(err)
	}

	return Parse(b)
}

// Parse decodes and validates a catalog document. Unknown fields are
// rejected so that typos surface instead of being silently ignored.
func Parse(b []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f file

	if err := dec.Decode(&f); err != nil {
		return nil, errParseCatalog.Wrap(err)
	}

	c := &Catalog{
		workouts:  make(map[string]*models.Workout, len(f.Workouts)),
		exercises: make(map[string]*models.Exercise, len(f.Exercises)),
	}

	for i := range f.Exercises {
		ex := &f.Exercises[i]

		if err := checkEntry("exercise", ex.ID, ex.Name, ex.Difficulty); err != nil {
			return nil, errParseCatalog.Wrap(err)
		}

		if _, ok := c.exercises[ex.ID]; ok {
			return nil, errParseCatalog.Wrap(errDuplicateID.Fmt("exercise", ex.ID))
		}

		if len(ex.Equipment) == 0 {
			ex.Equipment = []string{models.EquipmentNone}
		}

		c.exercises[ex.ID] = ex
	}

	for i := range f.Workouts {
		w, err := c.resolve(&f.Workouts[i])
		if err != nil {
			return nil, errParseCatalog.Wrap(err)
		}

		c.workouts[w.ID] = w
		c.order = append(c.order, w.ID)
	}

	slices.SortFunc(c.order, func(a, b string) int {
		return compareNames(c.workouts[a].Name, c.workouts[b].Name)
	})

	return c, nil
}

func compareNames(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}

	return 0
}

func checkEntry(kind, id, name string, d models.Difficulty) error {
	if strings.TrimSpace(id) == "" {
		return errMissingID.Fmt(kind, name)
	}

	if !d.Valid() {
		return errInvalidDifficulty.Fmt(kind, id, d)
	}

	return nil
}

func (c *Catalog) resolve(fw *fileWorkout) (*models.Workout, error) {
	if err := checkEntry("workout", fw.ID, fw.Name, fw.Difficulty); err != nil {
		return nil, err
	}

	if _, ok := c.workouts[fw.ID]; ok {
		return nil, errDuplicateID.Fmt("workout", fw.ID)
	}

	w := &models.Workout{
		CreatedAt:   fw.CreatedAt,
		UpdatedAt:   fw.UpdatedAt,
		ID:          fw.ID,
		Name:        fw.Name,
		Description: fw.Description,
		Difficulty:  fw.Difficulty,
		CreatedBy:   fw.CreatedBy,
		Duration:    fw.Duration,
		Calories:    fw.Calories,
		Exercises:   make([]models.Exercise, 0, len(fw.Exercises)),
	}

	for _, id := range fw.Exercises {
		ex, ok := c.exercises[id]
		if !ok {
			return nil, errUnknownExercise.Fmt(fw.ID, id)
		}

		w.Exercises = append(w.Exercises, *ex)
	}

	if err := w.Validate(); err != nil {
		return nil, errInvalidWorkout.Fmt(fw.ID).Wrap(err)
	}

	if w.Duration == 0 {
		w.Duration = (w.TotalSeconds() + 59) / 60
	}

	if w.Calories == 0 {
		for i := range w.Exercises {
			w.Calories += w.Exercises[i].Calories
		}
	}

	return w, nil
}

// Get returns the workout with the given id. The returned workout is a copy.
func (c *Catalog) Get(id string) (*models.Workout, error) {
	w, ok := c.workouts[id]
	if !ok {
		return nil, ErrWorkoutNotFound.Fmt(id)
	}

	return clone(w), nil
}

// Exercise returns the exercise with the given id.
func (c *Catalog) Exercise(id string) (models.Exercise, bool) {
	ex, ok := c.exercises[id]
	if !ok {
		return models.Exercise{}, false
	}

	return *ex, true
}

// List returns the workouts matching f in natural name order.
func (c *Catalog) List(f Filter) []*models.Workout {
	var out []*models.Workout

	for _, id := range c.order {
		w := c.workouts[id]
		if f.Match(w) {
			out = append(out, clone(w))
		}
	}

	return out
}

// Len returns the number of workouts in the catalog.
func (c *Catalog) Len() int {
	return len(c.workouts)
}

func clone(w *models.Workout) *models.Workout {
	cp := *w
	cp.Exercises = slices.Clone(w.Exercises)

	return &cp
}
