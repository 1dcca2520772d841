package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/ui"
)

// Window defines the interface for all content providers
type Window interface {
	// Update handles messages; keys only when focused, results always
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders the window with its chrome at the given size
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string

	SetStyles(ui.Styles)
}

// Yanker is implemented by windows that have something worth copying
type Yanker interface {
	// Yank returns the text ctrl+y should put on the clipboard
	Yank() (string, bool)
}

// Busy is implemented by windows that wait on the gateway
type Busy interface {
	Loading() bool
}
