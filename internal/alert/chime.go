package alert

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	exerciseChime = []note{
		{880, 150 * time.Millisecond},
	}

	workoutChime = []note{
		{660, 150 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{880, 150 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{1320, 300 * time.Millisecond},
	}
)

// Chime synthesizes the alert played at the end of an exercise, or of the
// whole workout when final is true. A zero frequency is a rest.
func Chime(final bool) (beep.Streamer, error) {
	notes := exerciseChime
	if final {
		notes = workoutChime
	}

	parts := make([]beep.Streamer, 0, len(notes))

	for _, n := range notes {
		samples := sampleRate.N(n.dur)

		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}

		parts = append(parts, beep.Take(samples, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -1,
	}, nil
}
