package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// Table writes rows to w as a boxed table. The first row is the header.
func Table(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	out, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(rows).
		Srender()
	if err != nil {
		slog.Error("unable to render table", slog.Any("error", err))
		return
	}

	fmt.Fprintln(w, out)
}
