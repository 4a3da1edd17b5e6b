package config

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ayoisaiah/calmclock/internal/models"
)

// Bounds for each timer setting. Lengths are in minutes.
const (
	MinFocusLen       = 1
	MaxFocusLen       = 180
	MinShortBreakLen  = 1
	MaxShortBreakLen  = 60
	MinLongBreakLen   = 1
	MaxLongBreakLen   = 90
	MinLongBreakEvery = 1
	MaxLongBreakEvery = 12
)

// Settings controls the shape of the timer. It is persisted in the store and
// read afresh on every transition.
type Settings struct {
	FocusLen       int  `json:"focusLen"`
	ShortBreakLen  int  `json:"shortBreakLen"`
	LongBreakLen   int  `json:"longBreakLen"`
	LongBreakEvery int  `json:"longBreakEvery"`
	SoundEnabled   bool `json:"soundEnabled"`
	AutoNext       bool `json:"autoNext"`
}

// SettingsInput holds raw user input for the numeric settings, exactly as
// typed.
type SettingsInput struct {
	FocusLen       string
	ShortBreakLen  string
	LongBreakLen   string
	LongBreakEvery string
	SoundEnabled   bool
	AutoNext       bool
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		FocusLen:       25,
		ShortBreakLen:  5,
		LongBreakLen:   15,
		LongBreakEvery: 4,
		SoundEnabled:   true,
		AutoNext:       false,
	}
}

// Length returns the configured length of t in minutes.
func (s Settings) Length(t models.SessionType) int {
	switch t {
	case models.Focus:
		return s.FocusLen
	case models.ShortBreak:
		return s.ShortBreakLen
	default:
		return s.LongBreakLen
	}
}

// Normalize clamps every numeric setting into its valid range. Values that
// are zero or negative fall back to the default.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()

	s.FocusLen = clampOrDefault(s.FocusLen, MinFocusLen, MaxFocusLen, d.FocusLen)
	s.ShortBreakLen = clampOrDefault(
		s.ShortBreakLen,
		MinShortBreakLen,
		MaxShortBreakLen,
		d.ShortBreakLen,
	)
	s.LongBreakLen = clampOrDefault(
		s.LongBreakLen,
		MinLongBreakLen,
		MaxLongBreakLen,
		d.LongBreakLen,
	)
	s.LongBreakEvery = clampOrDefault(
		s.LongBreakEvery,
		MinLongBreakEvery,
		MaxLongBreakEvery,
		d.LongBreakEvery,
	)

	return s
}

// Input returns the settings as form input.
func (s Settings) Input() SettingsInput {
	return SettingsInput{
		FocusLen:       strconv.Itoa(s.FocusLen),
		ShortBreakLen:  strconv.Itoa(s.ShortBreakLen),
		LongBreakLen:   strconv.Itoa(s.LongBreakLen),
		LongBreakEvery: strconv.Itoa(s.LongBreakEvery),
		SoundEnabled:   s.SoundEnabled,
		AutoNext:       s.AutoNext,
	}
}

// Clamp converts raw input to Settings. Invalid numbers are replaced by the
// default and out of range numbers are clamped to the nearest bound.
func (in SettingsInput) Clamp() Settings {
	d := DefaultSettings()

	return Settings{
		FocusLen: ClampInt(in.FocusLen, MinFocusLen, MaxFocusLen, d.FocusLen),
		ShortBreakLen: ClampInt(
			in.ShortBreakLen,
			MinShortBreakLen,
			MaxShortBreakLen,
			d.ShortBreakLen,
		),
		LongBreakLen: ClampInt(
			in.LongBreakLen,
			MinLongBreakLen,
			MaxLongBreakLen,
			d.LongBreakLen,
		),
		LongBreakEvery: ClampInt(
			in.LongBreakEvery,
			MinLongBreakEvery,
			MaxLongBreakEvery,
			d.LongBreakEvery,
		),
		SoundEnabled: in.SoundEnabled,
		AutoNext:     in.AutoNext,
	}
}

// ClampInt parses the leading integer in raw and clamps it to [minVal, maxVal].
// Leading whitespace and a sign are accepted and anything after the digits is
// ignored, so "12 minutes" reads as 12. Input without leading digits yields
// fallback.
func ClampInt(raw string, minVal, maxVal, fallback int) int {
	n, ok := leadingInt(raw)
	if !ok {
		return fallback
	}

	return min(maxVal, max(minVal, n))
}

func leadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow: saturate in the direction of the sign
		if s[0] == '-' {
			return minInt, true
		}

		return maxInt, true
	}

	return n, true
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

func clampOrDefault(v, minVal, maxVal, fallback int) int {
	if v <= 0 {
		return fallback
	}

	return min(maxVal, max(minVal, v))
}
