// Package timeutil provides utility functions for working with dates,
// durations and countdown values.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
	hoursInADay      = 24
)

// dateKeyLayout is the layout of a date key (YYYY-MM-DD).
const dateKeyLayout = "2006-01-02"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// DateKey returns the calendar date of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey returns the midnight (UTC) of the calendar date named by key.
// Anchoring every key to UTC keeps day arithmetic free of daylight saving
// shifts.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b string) (int, error) {
	start, err := ParseDateKey(a)
	if err != nil {
		return 0, err
	}

	end, err := ParseDateKey(b)
	if err != nil {
		return 0, err
	}

	return Round(end.Sub(start).Hours() / hoursInADay), nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromMillis converts milliseconds since the Unix epoch to a local time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// ToMillis converts t to milliseconds since the Unix epoch.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// SecsToMinsAndSecs splits a countdown value into minutes and seconds.
func SecsToMinsAndSecs(secs int) (mins, s int) {
	return secs / secondsInAMinute, secs % secondsInAMinute
}

// FormatClock formats a countdown value as MM:SS.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}

	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// HumanDuration renders a duration in seconds as "42m" or "1h 5m", rounded
// to the nearest minute.
func HumanDuration(secs int) string {
	m := Round(float64(secs) / secondsInAMinute)
	if m < minutesInAnHour {
		return fmt.Sprintf("%dm", m)
	}

	hrs, mins := MinsToHoursAndMins(m)

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// FromStr parses a natural language date such as "3 days ago" or
// "2024-01-05" relative to the current time.
func FromStr(s string) (time.Time, error) {
	return FromStrAt(s, time.Now())
}

// FromStrAt parses a natural language date relative to now.
func FromStrAt(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errUnparsableDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
