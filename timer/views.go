package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/calmclock/internal/models"
	"github.com/ayoisaiah/calmclock/internal/timeutil"
)

const noSessionsYet = "No sessions yet"

// metaLine describes where the current interval sits in the cycle.
func metaLine(s State, every int) string {
	if s.Type != models.Focus {
		return s.Type.Label()
	}

	return fmt.Sprintf(
		"Focus #%d · %d to long break",
		s.FocusNumber(every),
		s.UntilLongBreak(every),
	)
}

func (m *Model) clockFormat() string {
	if m.opts.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

func (m *Model) timerView(snap *Snapshot) string {
	var s strings.Builder

	st := snap.State

	s.WriteString(m.styles.Accent(st.Type).Render(st.Type.Label()))
	s.WriteString(m.styles.Meta.Render(metaLine(st, snap.Settings.LongBreakEvery)))

	if !st.Running {
		s.WriteString(" " + m.styles.Paused.Render("[Paused]"))
	}

	s.WriteString("\n")
	s.WriteString(m.styles.Clock.Render(timeutil.FormatClock(st.SecondsLeft)))
	s.WriteString("\n")
	s.WriteString(m.progress.ViewAs(st.Elapsed()))

	return s.String()
}

func (m *Model) statsView(snap *Snapshot) string {
	st := snap.Stats

	return m.styles.Section.Render("Today") + "\n" + fmt.Sprintf(
		"%d focus sessions · %s · best streak %d days",
		st.TodaySessions,
		timeutil.HumanDuration(st.TodayMinutes*60),
		st.BestStreak,
	)
}

func (m *Model) logView(snap *Snapshot) string {
	var s strings.Builder

	s.WriteString(m.styles.Section.Render("Recent sessions"))
	s.WriteString("\n")

	if len(snap.Logs) == 0 {
		s.WriteString(m.styles.Row.Render(noSessionsYet))
		return s.String()
	}

	rows := snap.Logs[:min(recentLogRows, len(snap.Logs))]

	for i := range rows {
		e := &rows[i]

		row := fmt.Sprintf(
			"%s  %-11s %s",
			e.StartTime().In(m.timer.Location()).Format(m.clockFormat()),
			e.Type.Label(),
			timeutil.HumanDuration(e.DurationSec),
		)

		s.WriteString(m.styles.Row.Render(row))

		if e.Note != "" {
			s.WriteString("  " + m.styles.Note.Render(e.Note))
		}

		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m *Model) footerView() string {
	switch m.mode {
	case modeConfirm:
		return m.styles.Modal.Render(
			m.confirm.question + "\n\n" + m.help.ShortHelpView([]key.Binding{
				defaultKeymap.confirm,
				defaultKeymap.decline,
			}),
		)
	case modeNote:
		return m.note.View() + "\n\n" + m.help.ShortHelpView([]key.Binding{
			defaultKeymap.submit,
			defaultKeymap.cancel,
		})
	}

	var s strings.Builder

	if m.notice != "" {
		s.WriteString(m.styles.Notice.Render(m.notice))
		s.WriteString("\n")
	}

	s.WriteString("\n" + m.help.ShortHelpView(defaultKeymap.timerHelp()))

	return s.String()
}

func (m *Model) View() string {
	if m.mode == modeSettings && m.form != nil {
		return m.styles.Base.Render(m.form.View())
	}

	snap := m.timer.Snapshot()

	view := strings.Join([]string{
		m.timerView(&snap),
		m.statsView(&snap),
		m.logView(&snap),
		m.footerView(),
	}, "\n")

	return m.styles.Base.Render(view)
}
