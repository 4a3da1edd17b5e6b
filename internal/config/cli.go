package config

import (
	"strconv"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SoundFile     string
	SessionCmd    string
	Preset        uint
	DisableNotify bool
	Ephemeral     bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SoundFile:     ctx.String("sound-file"),
			SessionCmd:    ctx.String("session-cmd"),
			Preset:        ctx.Uint("preset"),
			DisableNotify: ctx.Bool("disable-notification"),
			Ephemeral:     ctx.Bool("ephemeral"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.SoundFile != "" {
		c.Sound.File = opts.SoundFile
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Preset > 0 {
		c.CLI.Preset = min(MaxFocusLen, max(MinFocusLen, int(opts.Preset)))
	}

	c.CLI.Ephemeral = opts.Ephemeral
	c.CLI.NoColor = opts.NoColor
}

// ParseToggle reads an on/off flag value. An empty value keeps current.
func ParseToggle(flag, value string, current bool) (bool, error) {
	switch value {
	case "":
		return current, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return current, errInvalidToggle.Fmt(value, flag)
	}

	return b, nil
}
