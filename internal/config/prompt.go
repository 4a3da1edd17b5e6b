package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ██████╗ █████╗ ██╗     ███╗   ███╗ ██████╗██╗      ██████╗  ██████╗██╗  ██╗
██╔════╝██╔══██╗██║     ████╗ ████║██╔════╝██║     ██╔═══██╗██╔════╝██║ ██╔╝
██║     ███████║██║     ██╔████╔██║██║     ██║     ██║   ██║██║     █████╔╝
██║     ██╔══██║██║     ██║╚██╔╝██║██║     ██║     ██║   ██║██║     ██╔═██╗
╚██████╗██║  ██║███████╗██║ ╚═╝ ██║╚██████╗███████╗╚██████╔╝╚██████╗██║  ██╗
 ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝ ╚═════╝╚══════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝`

// NewSettingsForm builds the settings form. Submitted values are written to
// in and should be passed through SettingsInput.Clamp.
func NewSettingsForm(in *SettingsInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus length").
				Description(fmt.Sprintf("minutes, %d-%d", MinFocusLen, MaxFocusLen)).
				Value(&in.FocusLen),
			huh.NewInput().
				Title("Short break length").
				Description(fmt.Sprintf("minutes, %d-%d", MinShortBreakLen, MaxShortBreakLen)).
				Value(&in.ShortBreakLen),
			huh.NewInput().
				Title("Long break length").
				Description(fmt.Sprintf("minutes, %d-%d", MinLongBreakLen, MaxLongBreakLen)).
				Value(&in.LongBreakLen),
			huh.NewInput().
				Title("Focus sessions before a long break").
				Description(fmt.Sprintf("%d-%d", MinLongBreakEvery, MaxLongBreakEvery)).
				Value(&in.LongBreakEvery),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a sound when a session ends?").
				Value(&in.SoundEnabled),
			huh.NewConfirm().
				Title("Start the next session automatically?").
				Value(&in.AutoNext),
		),
	)
}

// PromptSettings asks the user for new timer settings, starting from current.
func PromptSettings(current Settings) (Settings, error) {
	in := current.Input()

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Update the values below and press ENTER to accept them.
Invalid numbers fall back to the defaults; out of range numbers are clamped.`, " ").
		Render()

	err := NewSettingsForm(&in).Run()
	if err != nil {
		return current, fmt.Errorf("form interaction failed: %w", err)
	}

	return in.Clamp(), nil
}
