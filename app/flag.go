package app

import "github.com/urfave/cli/v2"

var (
	presetFlag = &cli.UintFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Load a focus session of this many minutes instead of the configured length",
	}

	ephemeralFlag = &cli.BoolFlag{
		Name:  "ephemeral",
		Usage: "Keep settings and sessions in memory only. Nothing is saved on exit",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	soundFileFlag = &cli.StringFlag{
		Name:  "sound-file",
		Usage: "Play this mp3, ogg, flac, or wav file when a session ends instead of the built-in chime",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list sessions started after this time (e.g. '3 days ago', 'last monday')",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Compute today's figures for another day (e.g. 'yesterday', '2024-01-05')",
	}

	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory to write the export file to (default: the data directory)",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration in minutes (1-180)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (1-60)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (1-90)",
	}

	longBreakEveryFlag = &cli.StringFlag{
		Name:    "long-break-every",
		Aliases: []string{"every"},
		Usage:   "The number of focus sessions before a long break (1-12)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play a sound when a session ends: on or off",
	}

	autoNextFlag = &cli.StringFlag{
		Name:  "auto-next",
		Usage: "Start the next session automatically: on or off",
	}
)
