package stats

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/pacefit/pace/store"
)

// Delete attempts to delete all workout logs that fall in the reporting
// period. It requests for confirmation before proceeding with the permanent
// removal of the logs from the database.
func Delete(db store.DB, opts *Options) error {
	logs, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(opts.Stdout, logs)

	warning := pterm.Warning.Sprint(
		"The above workouts will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(opts.Stdout, warning)

	reader := bufio.NewReader(opts.Stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteSessions(logs)
}
