package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application.
// Global bindings avoid plain letters because the terminal and assistant windows take text input.
type KeyMap struct {
	// Navigation inside a window
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	GotoTop  key.Binding
	GotoBot  key.Binding
	Enter    key.Binding
	Back     key.Binding
	Escape   key.Binding

	// Window management
	Tab      key.Binding
	ShiftTab key.Binding
	Minimize key.Binding
	Close    key.Binding

	// Launchers, one per window kind in top-bar order
	OpenExplorer  key.Binding
	OpenDashboard key.Binding
	OpenTerminal  key.Binding
	OpenAssistant key.Binding
	OpenLogs      key.Binding

	// Taskbar buttons, by position
	Taskbar []key.Binding

	// Actions
	Search key.Binding
	Yank   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "navigate"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp/PgDn", "scroll"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgUp/PgDn", "scroll"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/G", "top/bottom"),
	),
	GotoBot: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("g/G", "top/bottom"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit/open"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "h"),
		key.WithHelp("backspace", "parent folder"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close overlay"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev window"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("alt+m"),
		key.WithHelp("M-m", "minimize"),
	),
	Close: key.NewBinding(
		key.WithKeys("alt+w"),
		key.WithHelp("M-w", "close window"),
	),
	OpenExplorer: key.NewBinding(
		key.WithKeys("alt+1"),
		key.WithHelp("M-1", "files"),
	),
	OpenDashboard: key.NewBinding(
		key.WithKeys("alt+2"),
		key.WithHelp("M-2", "monitor"),
	),
	OpenTerminal: key.NewBinding(
		key.WithKeys("alt+3"),
		key.WithHelp("M-3", "terminal"),
	),
	OpenAssistant: key.NewBinding(
		key.WithKeys("alt+4"),
		key.WithHelp("M-4", "assistant"),
	),
	OpenLogs: key.NewBinding(
		key.WithKeys("alt+5"),
		key.WithHelp("M-5", "logs"),
	),
	Taskbar: []key.Binding{
		key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2-F6", "taskbar")),
		key.NewBinding(key.WithKeys("f3"), key.WithHelp("F2-F6", "taskbar")),
		key.NewBinding(key.WithKeys("f4"), key.WithHelp("F2-F6", "taskbar")),
		key.NewBinding(key.WithKeys("f5"), key.WithHelp("F2-F6", "taskbar")),
		key.NewBinding(key.WithKeys("f6"), key.WithHelp("F2-F6", "taskbar")),
	},
	Search: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "search the grid"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy answer"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// HelpBindings returns the keybindings to display in help, grouped with blank separators
func HelpBindings() [][]key.Binding {
	k := DefaultKeyMap
	return [][]key.Binding{
		{k.OpenExplorer, k.OpenDashboard, k.OpenTerminal, k.OpenAssistant, k.OpenLogs, k.Taskbar[0]},
		{k.Tab, k.ShiftTab, k.Minimize, k.Close},
		{k.Up, k.PageUp, k.GotoTop, k.Enter, k.Back},
		{k.Search, k.Yank, k.Escape, k.Help, k.Quit},
	}
}
