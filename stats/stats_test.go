package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/calmclock/internal/models"
)

var loc = time.FixedZone("UTC-5", -5*60*60)

func entryAt(typ models.SessionType, t time.Time, secs int) models.Entry {
	return models.Entry{
		ID:          t.Format(time.RFC3339),
		Type:        typ,
		Start:       t.UnixMilli(),
		End:         t.Add(time.Duration(secs) * time.Second).UnixMilli(),
		DurationSec: secs,
	}
}

func TestBestStreak(t *testing.T) {
	cases := []struct {
		Name string
		Keys []string
		Want int
	}{
		{
			Name: "empty set",
			Keys: nil,
			Want: 0,
		},
		{
			Name: "single date",
			Keys: []string{"2024-01-01"},
			Want: 1,
		},
		{
			Name: "run broken by a gap",
			Keys: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"},
			Want: 3,
		},
		{
			Name: "unordered with duplicates",
			Keys: []string{"2024-01-05", "2024-01-02", "2024-01-01", "2024-01-02", "2024-01-03"},
			Want: 3,
		},
		{
			Name: "longest run is last",
			Keys: []string{"2024-01-01", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06"},
			Want: 4,
		},
		{
			Name: "across month and year boundaries",
			Keys: []string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-02-01"},
			Want: 3,
		},
		{
			Name: "across a daylight saving change",
			Keys: []string{"2024-03-09", "2024-03-10", "2024-03-11", "2024-11-02", "2024-11-03"},
			Want: 3,
		},
		{
			Name: "no consecutive days",
			Keys: []string{"2024-01-01", "2024-01-03", "2024-01-05"},
			Want: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, BestStreak(tc.Keys))
		})
	}
}

func TestBestStreakDoesNotModifyInput(t *testing.T) {
	keys := []string{"2024-01-03", "2024-01-01"}

	BestStreak(keys)

	assert.Equal(t, []string{"2024-01-03", "2024-01-01"}, keys)
}

func TestCompute(t *testing.T) {
	day := func(d, h, m int) time.Time {
		return time.Date(2024, 1, d, h, m, 0, 0, loc)
	}

	entries := []models.Entry{
		entryAt(models.Focus, day(1, 9, 0), 1500),
		entryAt(models.ShortBreak, day(1, 9, 25), 300),
		entryAt(models.Focus, day(2, 9, 0), 1500),
		entryAt(models.Focus, day(3, 23, 50), 1500),
		entryAt(models.Focus, day(5, 8, 0), 1500),
		entryAt(models.LongBreak, day(5, 8, 25), 900),
		entryAt(models.Focus, day(5, 10, 0), 1520),
	}

	got := Compute(entries, "2024-01-05", loc)

	assert.Equal(t, "2024-01-05", got.Today)
	assert.Equal(t, 2, got.TodaySessions)
	// 3020 seconds is 50.33 minutes
	assert.Equal(t, 50, got.TodayMinutes)
	assert.Equal(t, 3, got.BestStreak)
	assert.Equal(t, 5, got.TotalFocusSessions)
	assert.Equal(t, 125, got.TotalFocusMinutes)

	wantHistory := []Day{
		{Date: "2023-12-30", Minutes: 0},
		{Date: "2023-12-31", Minutes: 0},
		{Date: "2024-01-01", Minutes: 25},
		{Date: "2024-01-02", Minutes: 25},
		{Date: "2024-01-03", Minutes: 25},
		{Date: "2024-01-04", Minutes: 0},
		{Date: "2024-01-05", Minutes: 50},
	}

	if diff := cmp.Diff(wantHistory, got.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeGroupsByLocalDate(t *testing.T) {
	// 01:30 UTC on Jan 2 is still Jan 1 in UTC-5
	start := time.Date(2024, 1, 2, 1, 30, 0, 0, time.UTC)

	entries := []models.Entry{entryAt(models.Focus, start, 600)}

	assert.Equal(t, 1, Compute(entries, "2024-01-01", loc).TodaySessions)
	assert.Equal(t, 0, Compute(entries, "2024-01-02", loc).TodaySessions)
	assert.Equal(t, 1, Compute(entries, "2024-01-02", time.UTC).TodaySessions)
}

func TestComputeEmptyLog(t *testing.T) {
	got := Compute(nil, "2024-01-05", loc)

	assert.Zero(t, got.TodaySessions)
	assert.Zero(t, got.TodayMinutes)
	assert.Zero(t, got.BestStreak)
	assert.Len(t, got.History, historyDays)
}

func TestToJSON(t *testing.T) {
	s := Compute(nil, "2024-01-05", loc)

	b, err := s.ToJSON()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(b), `{"today":"2024-01-05","today_sessions":0`))
}

func TestReport(t *testing.T) {
	var b strings.Builder

	s := Compute([]models.Entry{
		entryAt(models.Focus, time.Date(2024, 1, 5, 9, 0, 0, 0, loc), 1500),
	}, "2024-01-05", loc)

	s.Report(&b)

	out := b.String()
	assert.Contains(t, out, "Statistics for 2024-01-05")
	assert.Contains(t, out, "Best streak (days):")
	assert.Contains(t, out, barChartChar)
}
