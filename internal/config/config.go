// Package config loads the calmclock application configuration and the timer
// settings
package config

import (
	"io"
	"os"
)

type (
	// Config holds the application configuration. Timer settings live in the
	// store (see Settings); this is everything around them.
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		PathToConfig  string             `mapstructure:"-"`
		PathToDB      string             `mapstructure:"-"`
		PathToLog     string             `mapstructure:"-"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SoundConfig holds the alert sound. An empty file plays the built-in
	// chime.
	SoundConfig struct {
		File string `mapstructure:"file"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds behaviour that is not part of the timer settings.
	SettingsConfig struct {
		SessionCmd string `mapstructure:"session_cmd"`
		Presets    []int  `mapstructure:"presets"`
	}

	// StorageConfig selects the key-value store backend.
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// LogConfig controls the application log file.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds options that only come from the command line.
	CLIConfig struct {
		Preset    int
		Ephemeral bool
		NoColor   bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies each option in turn.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths returns an Option that records where the config, database and log
// files live.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.PathToConfig = configPath
		c.PathToDB = dbPath
		c.PathToLog = logPath

		return nil
	}
}
