package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pacefit/pace/internal/timeutil"
)

// FilterConfig selects the reporting window of the history and stats
// commands.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Period    timeutil.Period
}

// DefaultPeriod applies when neither --period nor --since is given.
const DefaultPeriod = timeutil.Period7Days

// Filter builds a FilterConfig from the --period, --since and --until flags.
// --since and --until take precedence over --period.
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		Period: timeutil.Period(ctx.String("period")),
	}

	if f.Period == "" {
		f.Period = DefaultPeriod
	}

	var err error

	f.StartTime, f.EndTime, err = timeutil.Bounds(f.Period, now)
	if err != nil {
		return nil, errInvalidPeriod.Fmt(f.Period, timeutil.PeriodCollection)
	}

	if since := ctx.String("since"); since != "" {
		f.StartTime, err = timeutil.FromStr(since, now)
		if err != nil {
			return nil, err
		}

		f.EndTime = timeutil.RoundToEnd(now)
	}

	if until := ctx.String("until"); until != "" {
		f.EndTime, err = timeutil.FromStr(until, now)
		if err != nil {
			return nil, err
		}
	}

	if f.EndTime.Before(f.StartTime) {
		return nil, errInvalidRange.Fmt(
			f.StartTime.Format(time.DateOnly),
			f.EndTime.Format(time.DateOnly),
		)
	}

	return f, nil
}
