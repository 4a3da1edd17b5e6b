package timer

import (
	"github.com/ayoisaiah/calmclock/internal/models"
)

// DurationClampFactor bounds the logged duration of an interval to this many
// times its planned length. Clock jumps (sleep, skew) would otherwise produce
// absurd durations.
const DurationClampFactor = 3

// State is the transient state of the timer. It is never persisted.
type State struct {
	Type models.SessionType `json:"type"`
	// SecondsLeft only decreases while running and never drops below zero.
	SecondsLeft int  `json:"seconds_left"`
	Running     bool `json:"running"`
	// StartedAt is when the current interval first started running, in
	// milliseconds since the epoch. Zero means it has not started.
	StartedAt      int64 `json:"started_at"`
	CompletedFocus int   `json:"completed_focus"`
	// PlannedSeconds is the full length of the loaded interval.
	PlannedSeconds int `json:"planned_seconds"`
}

// Elapsed returns the fraction of the planned interval that has run.
func (s State) Elapsed() float64 {
	if s.PlannedSeconds <= 0 {
		return 0
	}

	return 1 - float64(s.SecondsLeft)/float64(s.PlannedSeconds)
}

// FocusNumber is the position of the current focus interval within the
// long break cycle, starting at 1.
func (s State) FocusNumber(every int) int {
	return s.CompletedFocus%max(every, 1) + 1
}

// UntilLongBreak is the number of focus intervals left before a long break.
func (s State) UntilLongBreak(every int) int {
	every = max(every, 1)

	return every - s.CompletedFocus%every
}

// clampDuration keeps elapsed within [1, DurationClampFactor*planned].
func clampDuration(elapsed, planned int) int {
	upper := max(1, DurationClampFactor*planned)

	return min(upper, max(1, elapsed))
}

// nextType decides the interval that follows a completed one.
func nextType(completed models.SessionType, completedFocus, every int) models.SessionType {
	if completed != models.Focus {
		return models.Focus
	}

	if completedFocus%max(every, 1) == 0 {
		return models.LongBreak
	}

	return models.ShortBreak
}
