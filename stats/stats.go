// Package stats derives daily and streak statistics from the session log
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/calmclock/internal/models"
	"github.com/ayoisaiah/calmclock/internal/timeutil"
	"github.com/ayoisaiah/calmclock/internal/ui"
)

const (
	barChartChar = "▇"
	historyDays  = 7
)

// Stats is the statistics computed from a session log for one day.
type Stats struct {
	Today              string `json:"today"`
	TodaySessions      int    `json:"today_sessions"`
	TodayMinutes       int    `json:"today_minutes"`
	BestStreak         int    `json:"best_streak"`
	TotalFocusSessions int    `json:"total_focus_sessions"`
	TotalFocusMinutes  int    `json:"total_focus_minutes"`
	// History holds focus minutes for the days leading up to and including
	// Today, oldest first.
	History []Day `json:"history"`
}

// Day is the focus time logged on one calendar day.
type Day struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Compute derives the statistics for the day named by today. Entry start times
// are grouped by their calendar date in loc. It holds no state, so the result
// can be recomputed from the log at any time.
func Compute(entries []models.Entry, today string, loc *time.Location) Stats {
	if loc == nil {
		loc = time.Local
	}

	s := Stats{
		Today: today,
	}

	var (
		todaySecs int
		totalSecs int
		days      []string
	)

	secsPerDay := make(map[string]int)

	for i := range entries {
		e := &entries[i]

		if e.Type != models.Focus {
			continue
		}

		key := timeutil.DateKey(e.StartTime().In(loc))

		if _, seen := secsPerDay[key]; !seen {
			days = append(days, key)
		}

		secsPerDay[key] += e.DurationSec

		s.TotalFocusSessions++
		totalSecs += e.DurationSec

		if key == today {
			s.TodaySessions++
			todaySecs += e.DurationSec
		}
	}

	s.TodayMinutes = timeutil.Round(float64(todaySecs) / 60)
	s.TotalFocusMinutes = timeutil.Round(float64(totalSecs) / 60)
	s.BestStreak = BestStreak(days)
	s.History = history(secsPerDay, today)

	return s
}

// BestStreak returns the length of the longest run of consecutive calendar
// days in keys. Duplicates and ordering do not matter; an empty set yields 0.
func BestStreak(keys []string) int {
	if len(keys) == 0 {
		return 0
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	best, cur := 1, 1

	for i := 1; i < len(sorted); i++ {
		gap, err := timeutil.DaysBetween(sorted[i-1], sorted[i])
		if err == nil && gap == 1 {
			cur++
		} else {
			cur = 1
		}

		best = max(best, cur)
	}

	return best
}

func history(secsPerDay map[string]int, today string) []Day {
	end, err := timeutil.ParseDateKey(today)
	if err != nil {
		return nil
	}

	days := make([]Day, 0, historyDays)

	for i := historyDays - 1; i >= 0; i-- {
		key := timeutil.DateKey(end.AddDate(0, 0, -i))

		days = append(days, Day{
			Date:    key,
			Minutes: timeutil.Round(float64(secsPerDay[key]) / 60),
		})
	}

	return days
}

// ToJSON returns the statistics as JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// Report prints a summary of the statistics to w.
func (s *Stats) Report(w io.Writer) {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Statistics for %s", s.Today)

	output := fmt.Sprint(
		header,
		s.summary(),
		s.historyChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

func (s *Stats) summary() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Today")))
	b.WriteString(fmt.Sprintln("Focus sessions:", ui.Green(s.TodaySessions)))
	b.WriteString(fmt.Sprintf("Focus time: %s\n", ui.Green(fmt.Sprintf("%dm", s.TodayMinutes))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("All time")))
	b.WriteString(fmt.Sprintln("Focus sessions:", ui.Green(s.TotalFocusSessions)))
	b.WriteString(fmt.Sprintf(
		"Focus time: %s\n",
		ui.Green(timeutil.HumanDuration(s.TotalFocusMinutes*60)),
	))
	b.WriteString(fmt.Sprintln("Best streak (days):", ui.Green(s.BestStreak)))

	return b.String()
}

func (s *Stats) historyChart() string {
	if len(s.History) == 0 {
		return ""
	}

	var (
		b       strings.Builder
		longest int
	)

	for _, d := range s.History {
		longest = max(longest, d.Minutes)
	}

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Last 7 days")))

	const maxBar = 40

	for _, d := range s.History {
		var bar string

		if longest > 0 {
			bar = strings.Repeat(barChartChar, d.Minutes*maxBar/longest)
		}

		b.WriteString(fmt.Sprintf(
			"%s %s %s\n",
			d.Date,
			ui.Cyan(bar),
			timeutil.HumanDuration(d.Minutes*60),
		))
	}

	return b.String()
}
