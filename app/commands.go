package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/pathutil"
	"github.com/ayoisaiah/calmclock/internal/timeutil"
	"github.com/ayoisaiah/calmclock/internal/ui"
	"github.com/ayoisaiah/calmclock/stats"
)

// statsAction handles the stats command.
func statsAction(ctx *cli.Context) error {
	today := timeutil.DateKey(time.Now())

	if s := ctx.String("date"); s != "" {
		t, err := timeutil.FromStr(s)
		if err != nil {
			return errParseDate.Fmt("date").Wrap(err)
		}

		today = timeutil.DateKey(t)
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	st := stats.Compute(e.repo.Logs(), today, time.Local)

	if ctx.Bool("json") {
		b, err := st.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	st.Report(os.Stdout)

	return nil
}

// exportAction handles the export command.
func exportAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	dir := firstNonEmptyString(ctx.String("dir"), pathutil.DataDir())

	path, err := e.newTimer().Export(dir, newCLIPrompt(true))
	if err != nil {
		return err
	}

	if path != "" {
		pterm.Success.Printfln("Exported to %s", path)
	}

	return nil
}

// clearAction handles the clear command which deletes the whole session log
// after confirmation.
func clearAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	return e.newTimer().Clear(newCLIPrompt(ctx.Bool("yes")))
}

// noteAction handles the note command.
func noteAction(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		return errNoteRequired
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	return e.newTimer().AttachNote(text, newCLIPrompt(true))
}

// settingsFlags holds the raw values of the settings command flags.
type settingsFlags struct {
	focus          string
	shortBreak     string
	longBreak      string
	longBreakEvery string
	sound          string
	autoNext       string
}

func settingsFlagsFrom(ctx *cli.Context) settingsFlags {
	return settingsFlags{
		focus:          ctx.String("focus"),
		shortBreak:     ctx.String("short-break"),
		longBreak:      ctx.String("long-break"),
		longBreakEvery: ctx.String("long-break-every"),
		sound:          ctx.String("sound"),
		autoNext:       ctx.String("auto-next"),
	}
}

func (f settingsFlags) empty() bool {
	return f == settingsFlags{}
}

// apply overrides the fields of in that have a flag set. Numbers are passed
// through as typed so that they are clamped like form input.
func (f settingsFlags) apply(in config.SettingsInput) (config.SettingsInput, error) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&in.FocusLen, f.focus)
	override(&in.ShortBreakLen, f.shortBreak)
	override(&in.LongBreakLen, f.longBreak)
	override(&in.LongBreakEvery, f.longBreakEvery)

	var err error

	in.SoundEnabled, err = config.ParseToggle("sound", f.sound, in.SoundEnabled)
	if err != nil {
		return in, err
	}

	in.AutoNext, err = config.ParseToggle("auto-next", f.autoNext, in.AutoNext)
	if err != nil {
		return in, err
	}

	return in, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func printSettings(w io.Writer, s config.Settings) {
	ui.PrintTable([][]string{
		{"SETTING", "VALUE"},
		{"Focus", fmt.Sprintf("%dm", s.FocusLen)},
		{"Short break", fmt.Sprintf("%dm", s.ShortBreakLen)},
		{"Long break", fmt.Sprintf("%dm", s.LongBreakLen)},
		{"Long break every", fmt.Sprintf("%d", s.LongBreakEvery)},
		{"Sound", onOff(s.SoundEnabled)},
		{"Auto next", onOff(s.AutoNext)},
	}, w)
}

// settingsAction handles the settings command. Without flags the settings
// are edited in an interactive form.
func settingsAction(ctx *cli.Context) error {
	flags := settingsFlagsFrom(ctx)

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	t := e.newTimer()
	current := t.Settings()

	var in config.SettingsInput

	if flags.empty() {
		s, err := config.PromptSettings(current)
		if err != nil {
			return err
		}

		in = s.Input()
	} else {
		in, err = flags.apply(current.Input())
		if err != nil {
			return err
		}
	}

	s, err := t.ApplySettings(in)
	if err != nil {
		return err
	}

	printSettings(os.Stdout, s)

	return nil
}
