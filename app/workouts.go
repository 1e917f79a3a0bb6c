package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pacefit/pace/internal/catalog"
	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/internal/ui"
	"github.com/pacefit/pace/store"
)

const noWorkoutsMsg = "No workouts match the given filters"

// chooseWorkout returns the workout with id, or asks the user to pick one
// when id is empty.
func chooseWorkout(cat *catalog.Catalog, id string) (*models.Workout, error) {
	if id != "" {
		return cat.Get(id)
	}

	workouts := cat.List(catalog.Filter{})
	if len(workouts) == 0 {
		return nil, errNoWorkouts
	}

	opts := make([]huh.Option[string], 0, len(workouts))

	for _, w := range workouts {
		label := fmt.Sprintf("%s (%s, %d min)", w.Name, w.Difficulty, w.Duration)
		opts = append(opts, huh.NewOption(label, w.ID))
	}

	err := huh.NewSelect[string]().
		Title("Choose a workout").
		Options(opts...).
		Value(&id).
		Run()
	if err != nil {
		return nil, err
	}

	return cat.Get(id)
}

func parseDifficulty(s string) (models.Difficulty, error) {
	if s == "" {
		return "", nil
	}

	d := models.Difficulty(strings.ToLower(s))
	if !d.Valid() {
		return "", errInvalidLevel.Fmt(s)
	}

	return d, nil
}

// printWorkoutsTable prints a workout table to the command-line.
func printWorkoutsTable(w io.Writer, workouts []*models.Workout) {
	data := [][]string{
		{"#", "ID", "NAME", "DIFFICULTY", "DURATION", "CALORIES", "EQUIPMENT"},
	}

	for i, wk := range workouts {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			ui.Cyan(wk.ID),
			wk.Name,
			ui.Difficulty(wk.Difficulty),
			fmt.Sprintf("%d min", wk.Duration),
			fmt.Sprintf("%.0f", wk.Calories),
			strings.Join(wk.Equipment(), ", "),
		})
	}

	ui.Table(w, data)
}

// listAction prints the catalog workouts that match the filter flags.
func (e *env) listAction(ctx *cli.Context) error {
	cfg, err := e.loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := e.loadCatalog(cfg)
	if err != nil {
		return err
	}

	d, err := parseDifficulty(ctx.String("difficulty"))
	if err != nil {
		return err
	}

	f := catalog.Filter{
		Difficulty:  d,
		Equipment:   ctx.StringSlice("equipment"),
		MuscleGroup: ctx.String("muscle"),
	}

	workouts := cat.List(f)

	if ctx.Bool("recommended") {
		p, err := e.profile()
		if err != nil {
			return err
		}

		var recommended []*models.Workout

		for _, w := range cat.Recommended(p) {
			if f.Match(w) {
				recommended = append(recommended, w)
			}
		}

		workouts = recommended
	}

	if len(workouts) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return nil
	}

	printWorkoutsTable(e.stdout, workouts)

	return nil
}

// showAction prints the details of a single workout.
func (e *env) showAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errWorkoutRequired
	}

	cfg, err := e.loadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := e.loadCatalog(cfg)
	if err != nil {
		return err
	}

	w, err := cat.Get(id)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, ui.Highlight(w.Name))

	if w.Description != "" {
		fmt.Fprintln(e.stdout, w.Description)
	}

	fmt.Fprintf(
		e.stdout,
		"\n%s: %s  %s: %d min  %s: %.0f kcal\n\n",
		ui.Green("Difficulty"),
		ui.Difficulty(w.Difficulty),
		ui.Green("Duration"),
		w.Duration,
		ui.Green("Calories"),
		w.Calories,
	)

	data := [][]string{
		{"#", "EXERCISE", "TIME", "MUSCLES", "EQUIPMENT"},
	}

	for i := range w.Exercises {
		ex := &w.Exercises[i]

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			ex.Name,
			timeutil.FormatClock(ex.Duration),
			strings.Join(ex.MuscleGroups, ", "),
			strings.Join(ex.Equipment, ", "),
		})
	}

	ui.Table(e.stdout, data)

	return nil
}

// profile returns the saved profile or a beginner profile with no
// equipment.
func (e *env) profile() (*models.Profile, error) {
	db, err := store.NewClient(e.paths.DBFilePath())
	if err != nil {
		return nil, err
	}

	defer db.Close()

	p, err := db.GetProfile()
	if err != nil {
		return nil, err
	}

	if p == nil {
		p = &models.Profile{FitnessLevel: models.Beginner}
	}

	return p, nil
}
