package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/calmclock/internal/models"
)

var (
	colorFocus      = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E06C75"}
	colorShortBreak = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#98C379"}
	colorLongBreak  = lipgloss.AdaptiveColor{Light: "#1F618D", Dark: "#61AFEF"}
	colorMuted      = lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#828997"}
	colorWarn       = lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#E5C07B"}
	colorBorder     = lipgloss.AdaptiveColor{Light: "#BDC3C7", Dark: "#3F4451"}
)

// Styles used by the timer interface.
type Styles struct {
	Base      lipgloss.Style
	Label     lipgloss.Style
	Meta      lipgloss.Style
	Clock     lipgloss.Style
	Paused    lipgloss.Style
	Section   lipgloss.Style
	Row       lipgloss.Style
	Note      lipgloss.Style
	Notice    lipgloss.Style
	Modal     lipgloss.Style
	accentFor map[models.SessionType]lipgloss.AdaptiveColor
}

// NewStyles returns the default timer styles.
func NewStyles() Styles {
	return Styles{
		Base: lipgloss.NewStyle().Padding(1, 2),
		Label: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		Meta:    lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(1),
		Clock:   lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1),
		Paused:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Section: lipgloss.NewStyle().Bold(true).MarginTop(1),
		Row:     lipgloss.NewStyle().Foreground(colorMuted),
		Note:    lipgloss.NewStyle().Italic(true),
		Notice:  lipgloss.NewStyle().Foreground(colorWarn).MarginTop(1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginTop(1),
		accentFor: map[models.SessionType]lipgloss.AdaptiveColor{
			models.Focus:      colorFocus,
			models.ShortBreak: colorShortBreak,
			models.LongBreak:  colorLongBreak,
		},
	}
}

// Accent returns the label style for a session type.
func (s Styles) Accent(t models.SessionType) lipgloss.Style {
	return s.Label.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(s.accentFor[t])
}
