// Package stats reports workout history and statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/internal/ui"
	"github.com/pacefit/pace/store"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No workouts found for the specified time range"

	// NoFavorite is reported when no exercise has been completed.
	NoFavorite = "None"
)

// Options bounds the reporting period and sets where output goes.
type Options struct {
	StartTime time.Time
	EndTime   time.Time
	Stdout    io.Writer
	Stdin     io.Reader
	// JSON selects machine-readable output.
	JSON bool
}

// WorkoutStats aggregates a set of session logs.
type WorkoutStats struct {
	LastWorkout         time.Time      `json:"last_workout"`
	MuscleGroups        map[string]int `json:"muscle_groups"`
	FavoriteMuscleGroup string         `json:"favorite_muscle_group"`
	TotalDuration       time.Duration  `json:"total_duration"`
	AverageDuration     time.Duration  `json:"average_duration"`
	TotalCalories       float64        `json:"total_calories"`
	TotalWorkouts       int            `json:"total_workouts"`
	CurrentStreak       int            `json:"current_streak"`
	CompletedExercises  int            `json:"completed_exercises"`
	SkippedExercises    int            `json:"skipped_exercises"`
}

// Compute aggregates logs. The streak is the number of consecutive calendar
// days, ending on the day of now, with at least one finished workout.
func Compute(logs []models.SessionLog, now time.Time) WorkoutStats {
	s := WorkoutStats{
		MuscleGroups:        make(map[string]int),
		FavoriteMuscleGroup: NoFavorite,
	}

	if len(logs) == 0 {
		return s
	}

	days := make(map[int]bool)

	for i := range logs {
		l := &logs[i]

		s.TotalWorkouts++
		s.TotalDuration += l.Duration
		s.TotalCalories += l.Calories

		if l.FinishedAt.After(s.LastWorkout) {
			s.LastWorkout = l.FinishedAt
		}

		days[timeutil.DayFormat(l.FinishedAt.In(now.Location()))] = true

		for j := range l.Exercises {
			ex := &l.Exercises[j]

			if ex.Skipped {
				s.SkippedExercises++
				continue
			}

			if !ex.Completed {
				continue
			}

			s.CompletedExercises++

			for _, m := range ex.MuscleGroups {
				s.MuscleGroups[m]++
			}
		}
	}

	s.AverageDuration = s.TotalDuration / time.Duration(s.TotalWorkouts)

	for d := now; days[timeutil.DayFormat(d)]; d = d.AddDate(0, 0, -1) {
		s.CurrentStreak++
	}

	best := 0

	for _, m := range slices.Sorted(maps.Keys(s.MuscleGroups)) {
		if s.MuscleGroups[m] > best {
			best = s.MuscleGroups[m]
			s.FavoriteMuscleGroup = m
		}
	}

	return s
}

// DailyMinutes returns the minutes trained on each day between start and
// end, keyed by timeutil.DayFormat. Every day in the range is present.
func DailyMinutes(
	logs []models.SessionLog,
	start, end time.Time,
) map[int]time.Duration {
	m := make(map[int]time.Duration)

	for d := timeutil.RoundToStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		m[timeutil.DayFormat(d)] = 0
	}

	for i := range logs {
		k := timeutil.DayFormat(logs[i].FinishedAt.In(start.Location()))
		if _, ok := m[k]; ok {
			m[k] += logs[i].Duration
		}
	}

	return m
}

// WeekdayMinutes returns the minutes trained on each day of the week.
func WeekdayMinutes(logs []models.SessionLog) map[int]time.Duration {
	m := make(map[int]time.Duration)

	//nolint:gomnd // 0-6 days
	for i := 0; i <= 6; i++ {
		m[i] = 0
	}

	for i := range logs {
		m[int(logs[i].FinishedAt.Weekday())] += logs[i].Duration
	}

	return m
}

func getBarChart(
	data map[int]time.Duration,
	title string,
	label func(int) string,
) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", title))

	bars := make(pterm.Bars, 0, len(data))

	for _, k := range slices.Sorted(maps.Keys(data)) {
		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(data[k].Minutes()),
			Label: label(k),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func dayLabel(k int) string {
	d, err := time.Parse("20060102", fmt.Sprintf("%08d", k))
	if err != nil {
		return fmt.Sprint(k)
	}

	return d.Format("Jan 02, 2006")
}

func weekdayLabel(k int) string {
	return time.Weekday(k).String()
}

func getSummary(s *WorkoutStats) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	lines := []string{
		fmt.Sprintln("Workouts:", ui.Green(s.TotalWorkouts)),
		fmt.Sprintln("Time trained:", ui.Green(timeutil.FormatDuration(s.TotalDuration))),
		fmt.Sprintln("Calories burned:", ui.Green(fmt.Sprintf("%.0f", s.TotalCalories))),
		fmt.Sprintln("Exercises completed:", ui.Green(s.CompletedExercises)),
		fmt.Sprintln("Exercises skipped:", ui.Magenta(s.SkippedExercises)),
		fmt.Sprintln("Current streak:", ui.Green(pluralize(s.CurrentStreak, "day"))),
		fmt.Sprintln("Favourite muscle group:", ui.Green(s.FavoriteMuscleGroup)),
	}

	return header + strings.Join(lines, "")
}

func getAverages(s *WorkoutStats, days int) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Averages"))

	perDay := float64(s.TotalWorkouts) / float64(max(days, 1))

	return header +
		fmt.Sprintln("Workout length:", ui.Green(timeutil.FormatDuration(s.AverageDuration))) +
		fmt.Sprintln("Workouts per day:", ui.Green(fmt.Sprintf("%.1f", perDay)))
}

func getMuscleGroups(s *WorkoutStats) string {
	if len(s.MuscleGroups) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Muscle groups")))

	groups := slices.Sorted(maps.Keys(s.MuscleGroups))

	slices.SortStableFunc(groups, func(a, b string) int {
		return s.MuscleGroups[b] - s.MuscleGroups[a]
	})

	for _, g := range groups {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			g,
			ui.Green(pluralize(s.MuscleGroups[g], "exercise")),
		))
	}

	return builder.String()
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// Show displays the statistics for the reporting period.
func Show(db store.DB, opts *Options, now time.Time) error {
	logs, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(opts.Stdout, Compute(logs, now))
	}

	if len(logs) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	start := opts.StartTime

	// For all-time, start from the day of the first workout
	if start.IsZero() {
		start = timeutil.RoundToStart(logs[0].FinishedAt.In(now.Location()))
	}

	s := Compute(logs, now)

	timePeriod := "Reporting period: " + start.Format("January 02, 2006") +
		" - " + opts.EndTime.Format("January 02, 2006")

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(timePeriod)

	hoursDiff := timeutil.Round(opts.EndTime.Sub(start).Hours())
	days := (hoursDiff + timeutil.HoursInADay - 1) / timeutil.HoursInADay

	var history string
	if hoursDiff > timeutil.HoursInADay && hoursDiff <= timeutil.MaxHoursInAMonth {
		history = getBarChart(DailyMinutes(logs, start, opts.EndTime), "Daily", dayLabel)
	}

	output := fmt.Sprint(
		header,
		getSummary(&s),
		getAverages(&s, days),
		getMuscleGroups(&s),
		history,
		getBarChart(WeekdayMinutes(logs), "Weekly", weekdayLabel),
	)

	fmt.Fprintln(
		opts.Stdout,
		strings.TrimSpace(output),
	)

	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
