package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	toggle   key.Binding
	reset    key.Binding
	settings key.Binding
	mute     key.Binding
	help     key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys("e", " "),
		key.WithHelp("e/space", "start/stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.reset, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.toggle, k.reset, k.settings},
		{k.mute, k.help, k.quit},
	}
}
