// Package report prints user-facing messages
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/pacefit/pace/internal/osutil"
)

func ProfileUpdated() {
	pterm.Success.Println("profile updated")
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
