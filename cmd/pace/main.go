package main

import (
	"os"

	"github.com/pacefit/pace/app"
	"github.com/pacefit/pace/internal/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
