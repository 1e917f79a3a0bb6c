package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	workoutFlag = &cli.StringFlag{
		Name:    "workout",
		Aliases: []string{"w"},
		Usage:   "ID of the workout to play (see 'pace list')",
	}

	transitionDelayFlag = &cli.StringFlag{
		Name:    "transition-delay",
		Aliases: []string{"t"},
		Usage:   "Pause between exercises, e.g. '3s' or '3' (default: 1s)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a workout is completed",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play a chime when an exercise or workout ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed workout",
	}

	difficultyFlag = &cli.StringFlag{
		Name:  "difficulty",
		Usage: "Only list workouts of this difficulty (beginner, intermediate, advanced)",
	}

	equipmentFlag = &cli.StringSliceFlag{
		Name:  "equipment",
		Usage: "Only list workouts that use any of the given equipment",
	}

	muscleFlag = &cli.StringFlag{
		Name:  "muscle",
		Usage: "Only list workouts that target the muscle group",
	}

	recommendedFlag = &cli.BoolFlag{
		Name:  "recommended",
		Usage: "Only list workouts that suit your profile",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start of the reporting period (e.g. '2 weeks ago', '2026-01-02')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "End of the reporting period",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	deleteFlag = &cli.BoolFlag{
		Name:  "delete",
		Usage: "Delete the workouts in the reporting period",
	}

	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Your name",
	}

	levelFlag = &cli.StringFlag{
		Name:  "level",
		Usage: "Fitness level: beginner, intermediate, advanced",
	}

	profileEquipmentFlag = &cli.StringSliceFlag{
		Name:  "equipment",
		Usage: "Equipment you own, e.g. --equipment dumbbells --equipment bench",
	}

	frequencyFlag = &cli.IntFlag{
		Name:  "frequency",
		Usage: "Workout days per week (1-7)",
	}

	playerFlags = []cli.Flag{
		workoutFlag,
		transitionDelayFlag,
		disableNotificationFlag,
		noSoundFlag,
		sessionCmdFlag,
	}

	filterFlags = []cli.Flag{
		periodFlag,
		sinceFlag,
		untilFlag,
		jsonFlag,
	}
)
