package timer

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/calmclock/internal/config"
	"github.com/ayoisaiah/calmclock/internal/ui"
)

const (
	padding         = 2
	maxWidth        = 60
	recentLogRows   = 5
	noteCharLimit   = 280
	settingsSaved   = "Settings saved."
	exportedToFmt   = "Exported to %s"
	noteInputPrompt = "Note: "
)

type mode int

const (
	modeTimer mode = iota
	modeNote
	modeConfirm
	modeSettings
)

type callbackMsg func()

type confirmation struct {
	question string
	action   func(Prompt)
}

// answer is the Prompt handed to the controller once the interface has
// collected the user's response.
type answer struct {
	m   *Model
	yes bool
}

func (a answer) Confirm(string) bool {
	return a.yes
}

func (a answer) Notice(msg string) {
	a.m.notice = msg
}

// UIOptions configures the terminal interface.
type UIOptions struct {
	ExportDir      string
	TwentyFourHour bool
}

// Model is the Bubble Tea model that drives a Timer from the terminal.
type Model struct {
	timer    *Timer
	opts     UIOptions
	styles   ui.Styles
	help     help.Model
	progress progress.Model
	note     textinput.Model
	form     *huh.Form
	input    config.SettingsInput
	confirm  *confirmation
	notice   string
	mode     mode
}

// NewModel returns the interface for t.
func NewModel(t *Timer, opts UIOptions) *Model {
	ti := textinput.New()
	ti.Placeholder = "What did you work on?"
	ti.Prompt = noteInputPrompt
	ti.CharLimit = noteCharLimit
	ti.Width = maxWidth - len(noteInputPrompt)

	return &Model{
		timer:    t,
		opts:     opts,
		styles:   ui.NewStyles(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		note:     ti,
	}
}

// Run starts the terminal interface and blocks until the user quits.
func Run(t *Timer, opts UIOptions) error {
	defer t.Close()

	t.WatchDay()

	_, err := tea.NewProgram(NewModel(t, opts), tea.WithAltScreen()).Run()

	return err
}

func waitForCallback(c <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return callbackMsg(<-c)
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForCallback(m.timer.Callbacks())
}

func (m *Model) prompt(yes bool) Prompt {
	return answer{m: m, yes: yes}
}

func (m *Model) ask(question string, action func(Prompt)) {
	m.confirm = &confirmation{
		question: question,
		action:   action,
	}
	m.mode = modeConfirm
}

func (m *Model) showError(err error) {
	slog.Error(err.Error())
	m.notice = err.Error()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg()

		return m, waitForCallback(m.timer.Callbacks())

	case tea.WindowSizeMsg:
		m.progress.Width = min(maxWidth, msg.Width-padding*2-4)
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSettings:
			return m.updateSettings(msg)
		case modeNote:
			return m.updateNote(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.handleKeyPress(msg)
		}
	}

	switch m.mode {
	case modeSettings:
		return m.updateSettings(msg)
	case modeNote:
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	t := m.timer

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		t.Toggle()

	case key.Matches(msg, defaultKeymap.reset):
		t.Reset()

	case key.Matches(msg, defaultKeymap.cycle):
		next := t.State().Type.Next()

		if t.State().Running {
			m.ask(SwitchTypeQuestion, func(p Prompt) {
				t.SelectType(next, p)
			})

			return m, nil
		}

		t.SelectType(next, m.prompt(true))

	case key.Matches(msg, defaultKeymap.presets):
		i := int(msg.String()[0] - '1')

		if presets := t.Presets(); i < len(presets) {
			t.Preset(presets[i])
		}

	case key.Matches(msg, defaultKeymap.note):
		m.mode = modeNote
		m.note.Reset()

		return m, m.note.Focus()

	case key.Matches(msg, defaultKeymap.export):
		path, err := t.Export(m.opts.ExportDir, m.prompt(true))
		if err != nil {
			m.showError(err)
			break
		}

		if path != "" {
			m.notice = fmt.Sprintf(exportedToFmt, path)
		}

	case key.Matches(msg, defaultKeymap.clear):
		if len(t.Logs()) == 0 {
			_ = t.Clear(m.prompt(false))
			break
		}

		m.ask(ClearLogsQuestion, func(p Prompt) {
			if err := t.Clear(p); err != nil {
				m.showError(err)
			}
		})

	case key.Matches(msg, defaultKeymap.settings):
		m.input = t.Settings().Input()
		m.form = config.NewSettingsForm(&m.input).WithShowHelp(true)
		m.mode = modeSettings

		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var yes bool

	switch {
	case key.Matches(msg, defaultKeymap.confirm):
		yes = true
	case key.Matches(msg, defaultKeymap.decline):
	default:
		return m, nil
	}

	c := m.confirm

	m.confirm = nil
	m.mode = modeTimer

	c.action(m.prompt(yes))

	return m, nil
}

func (m *Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.submit):
		text := m.note.Value()

		m.note.Blur()
		m.mode = modeTimer

		if err := m.timer.AttachNote(text, m.prompt(true)); err != nil {
			m.showError(err)
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.cancel):
		m.note.Blur()
		m.mode = modeTimer

		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)

	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		m.mode = modeTimer

		if _, err := m.timer.ApplySettings(m.input); err != nil {
			m.showError(err)
			return m, nil
		}

		m.notice = settingsSaved

		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.mode = modeTimer

		return m, nil
	}

	return m, cmd
}
