package timer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	togglePlay key.Binding
	reset      key.Binding
	cycle      key.Binding
	presets    key.Binding
	note       key.Binding
	export     key.Binding
	clear      key.Binding
	settings   key.Binding
	quit       key.Binding
	confirm    key.Binding
	decline    key.Binding
	submit     key.Binding
	cancel     key.Binding
}

var defaultKeymap = keyMap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	cycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch type"),
	),
	presets: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "presets"),
	),
	note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "note"),
	),
	export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	clear: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "clear log"),
	),
	settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	decline: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

func (k keyMap) timerHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.reset,
		k.cycle,
		k.presets,
		k.note,
		k.export,
		k.clear,
		k.settings,
		k.quit,
	}
}
