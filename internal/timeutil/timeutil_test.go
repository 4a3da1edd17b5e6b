package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyUsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)

	// 20:30 UTC on Jan 1 is already Jan 2 in UTC+10
	ts := time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01", DateKey(ts))
	assert.Equal(t, "2024-01-02", DateKey(ts.In(loc)))
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-31", "2024-02-01", 1},
		{"2024-03-09", "2024-03-11", 2},
		{"2023-12-31", "2024-01-01", 1},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-02-28", "2024-03-01", 2},
	}

	for _, tc := range cases {
		got, err := DaysBetween(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.a, tc.b)
	}

	_, err := DaysBetween("yesterday", "2024-01-01")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(-4))
	assert.Equal(t, "180:00", FormatClock(180*60))
}

func TestHumanDuration(t *testing.T) {
	cases := map[int]string{
		0:    "0m",
		29:   "0m",
		30:   "1m",
		1500: "25m",
		3569: "59m",
		3570: "1h 0m",
		3900: "1h 5m",
	}

	for secs, want := range cases {
		assert.Equal(t, want, HumanDuration(secs), "secs=%d", secs)
	}
}

func TestFromStrAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	got, err := FromStrAt("2024-01-05", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", DateKey(got))

	_, err = FromStrAt("not a date at all", now)
	assert.ErrorIs(t, err, errUnparsableDate)
}
