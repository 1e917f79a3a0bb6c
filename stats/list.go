package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/pacefit/pace/internal/models"
	"github.com/pacefit/pace/internal/timeutil"
	"github.com/pacefit/pace/internal/ui"
	"github.com/pacefit/pace/store"
)

const dateLayout = "January 02, 2006 03:04 PM"

func printSessionsTable(w io.Writer, logs []models.SessionLog) {
	data := [][]string{
		{"#", "FINISHED", "WORKOUT", "DURATION", "EXERCISES", "CALORIES"},
	}

	for i := range logs {
		l := &logs[i]

		exercises := ui.Green(fmt.Sprintf("%d/%d", l.CompletedCount, l.TotalCount))
		if l.SkippedCount > 0 {
			exercises += " " + ui.Magenta(fmt.Sprintf("(%d skipped)", l.SkippedCount))
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			l.FinishedAt.Format(dateLayout),
			l.WorkoutName,
			timeutil.FormatDuration(l.Duration),
			exercises,
			fmt.Sprintf("%.0f", l.Calories),
		})
	}

	ui.Table(w, data)
}

// List prints out a table of the workouts finished within the reporting
// period.
func List(db store.DB, opts *Options) error {
	logs, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	if opts.JSON {
		if logs == nil {
			logs = []models.SessionLog{}
		}

		return writeJSON(opts.Stdout, logs)
	}

	if len(logs) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(opts.Stdout, logs)

	return nil
}
