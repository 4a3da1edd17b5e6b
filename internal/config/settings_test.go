package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/calmclock/internal/models"
)

func TestClampInt(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"abc", 25},
		{"", 25},
		{"   ", 25},
		{"500", 180},
		{"0", 1},
		{"-7", 1},
		{"45", 45},
		{" 30", 30},
		{"12 minutes", 12},
		{"3.9", 3},
		{"+60", 60},
		{"99999999999999999999999", 180},
		{"-99999999999999999999999", 1},
	}

	for _, tc := range cases {
		got := ClampInt(tc.raw, MinFocusLen, MaxFocusLen, 25)
		if got != tc.want {
			t.Errorf("ClampInt(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestSettingsInputClamp(t *testing.T) {
	in := SettingsInput{
		FocusLen:       "abc",
		ShortBreakLen:  "61",
		LongBreakLen:   "0",
		LongBreakEvery: "13",
		SoundEnabled:   false,
		AutoNext:       true,
	}

	want := Settings{
		FocusLen:       25,
		ShortBreakLen:  60,
		LongBreakLen:   1,
		LongBreakEvery: 12,
		SoundEnabled:   false,
		AutoNext:       true,
	}

	if diff := cmp.Diff(want, in.Clamp()); diff != "" {
		t.Errorf("Clamp() mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{
		FocusLen:       0,
		ShortBreakLen:  400,
		LongBreakLen:   -2,
		LongBreakEvery: 4,
		SoundEnabled:   true,
	}

	want := Settings{
		FocusLen:       25,
		ShortBreakLen:  60,
		LongBreakLen:   15,
		LongBreakEvery: 4,
		SoundEnabled:   true,
	}

	if diff := cmp.Diff(want, s.Normalize()); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsLength(t *testing.T) {
	s := DefaultSettings()

	for typ, want := range map[models.SessionType]int{
		models.Focus:      25,
		models.ShortBreak: 5,
		models.LongBreak:  15,
	} {
		if got := s.Length(typ); got != want {
			t.Errorf("Length(%s) = %d, want %d", typ, got, want)
		}
	}
}

func TestSettingsInputRoundTrip(t *testing.T) {
	s := Settings{
		FocusLen:       50,
		ShortBreakLen:  10,
		LongBreakLen:   30,
		LongBreakEvery: 6,
		SoundEnabled:   false,
		AutoNext:       true,
	}

	if diff := cmp.Diff(s, s.Input().Clamp()); diff != "" {
		t.Errorf("Input().Clamp() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseToggle(t *testing.T) {
	got, err := ParseToggle("sound", "", true)
	if err != nil || !got {
		t.Errorf("empty value should keep current, got %v, %v", got, err)
	}

	got, err = ParseToggle("sound", "off", true)
	if err != nil || got {
		t.Errorf("off should disable, got %v, %v", got, err)
	}

	got, err = ParseToggle("auto-next", "on", false)
	if err != nil || !got {
		t.Errorf("on should enable, got %v, %v", got, err)
	}

	_, err = ParseToggle("sound", "maybe", false)
	if err == nil {
		t.Error("expected an error for an unknown toggle value")
	}
}
