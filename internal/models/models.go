// Package models holds the types persisted by calmclock
package models

import (
	"time"
)

// SessionType identifies the kind of interval loaded in the timer.
type SessionType string

const (
	Focus      SessionType = "focus"
	ShortBreak SessionType = "shortBreak"
	LongBreak  SessionType = "longBreak"
)

// SessionTypes lists every session type in rotation order.
var SessionTypes = []SessionType{Focus, ShortBreak, LongBreak}

// Label returns the human readable name of the session type.
func (s SessionType) Label() string {
	switch s {
	case Focus:
		return "Focus"
	case ShortBreak:
		return "Short Break"
	default:
		return "Long Break"
	}
}

func (s SessionType) Valid() bool {
	return s == Focus || s == ShortBreak || s == LongBreak
}

// Next returns the session type that follows s in the selector.
func (s SessionType) Next() SessionType {
	for i, v := range SessionTypes {
		if v == s {
			return SessionTypes[(i+1)%len(SessionTypes)]
		}
	}

	return Focus
}

// ParseSessionType converts a stored or user supplied value to a SessionType.
func ParseSessionType(v string) (SessionType, bool) {
	s := SessionType(v)

	return s, s.Valid()
}

// Entry is one completed interval in the session log. Start and End are
// milliseconds since the Unix epoch.
type Entry struct {
	ID          string      `json:"id"`
	Type        SessionType `json:"type"`
	Note        string      `json:"note"`
	Start       int64       `json:"start"`
	End         int64       `json:"end"`
	DurationSec int         `json:"durationSec"`
}

// StartTime returns the start of the entry in the local time zone.
func (e *Entry) StartTime() time.Time {
	return time.UnixMilli(e.Start)
}

// EndTime returns the end of the entry in the local time zone.
func (e *Entry) EndTime() time.Time {
	return time.UnixMilli(e.End)
}
