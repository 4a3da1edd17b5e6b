// Package app defines the calmclock command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/calmclock/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the calmclock app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "calmclock",
		Usage: `
		CalmClock is a Pomodoro timer for the terminal. It alternates focus
		sessions with short and long breaks, keeps a log of every completed
		session and tracks your daily focus time and best streak.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "log",
				Usage:  "List completed sessions, newest first",
				Flags:  []cli.Flag{jsonFlag, sinceFlag},
				Action: logAction,
			},
			{
				Name:   "stats",
				Usage:  "Show today's focus time, totals and the best streak",
				Flags:  []cli.Flag{jsonFlag, dateFlag},
				Action: statsAction,
			},
			{
				Name:   "export",
				Usage:  "Write the session log to a JSON file",
				Flags:  []cli.Flag{dirFlag},
				Action: exportAction,
			},
			{
				Name:   "clear",
				Usage:  "Permanently delete all logged sessions",
				Flags:  []cli.Flag{yesFlag},
				Action: clearAction,
			},
			{
				Name:      "note",
				Usage:     "Attach a note to the most recently completed session",
				ArgsUsage: "TEXT",
				Action:    noteAction,
			},
			{
				Name:  "settings",
				Usage: "View or change the timer settings. Without flags, opens an interactive form",
				Flags: []cli.Flag{
					focusFlag,
					shortBreakFlag,
					longBreakFlag,
					longBreakEveryFlag,
					soundFlag,
					autoNextFlag,
				},
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			presetFlag,
			ephemeralFlag,
			noColorFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			soundFileFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
