package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
// Out of range presets are clamped rather than rejected.
func (c *Config) Validate() error {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverBolt
	}

	if c.Storage.Driver != DriverBolt && c.Storage.Driver != DriverSQLite {
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}

	if err := validateSound(c.Sound.File); err != nil {
		return err
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	for i, p := range c.Settings.Presets {
		c.Settings.Presets[i] = min(MaxFocusLen, max(MinFocusLen, p))
	}

	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return level, nil
}

func validateSound(sound string) error {
	if sound == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	if _, err := os.Stat(sound); errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return nil
}
