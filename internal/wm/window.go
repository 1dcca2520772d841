package wm

import "errors"

// Kind identifies which content provider renders inside a window
type Kind int

const (
	KindTerminal Kind = iota
	KindDashboard
	KindExplorer
	KindAIChat
	KindSystemLogs
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindDashboard:
		return "dashboard"
	case KindExplorer:
		return "explorer"
	case KindAIChat:
		return "assistant"
	case KindSystemLogs:
		return "logs"
	default:
		return "unknown"
	}
}

// Kinds lists every kind in launcher order
func Kinds() []Kind {
	return []Kind{KindExplorer, KindDashboard, KindTerminal, KindAIChat, KindSystemLogs}
}

// ParseKind maps a kind name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Window is one logical desktop application instance
type Window struct {
	ID          string `yaml:"id" json:"id"`
	Kind        Kind   `yaml:"kind" json:"kind"`
	Title       string `yaml:"title" json:"title"`
	IsOpen      bool   `yaml:"open" json:"open"`
	IsMinimized bool   `yaml:"minimized" json:"minimized"`
	StackOrder  int    `yaml:"stack" json:"stack"`
}

// Visible reports whether the window is drawn on the desktop
func (w Window) Visible() bool {
	return w.IsOpen && !w.IsMinimized
}

// MarshalText lets yaml and json print kinds by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var (
	// ErrDuplicateID is returned when two windows share an id
	ErrDuplicateID = errors.New("duplicate window id")
	// ErrDuplicateKind is returned when two windows share a kind
	ErrDuplicateKind = errors.New("duplicate window kind")
)

// DefaultWindows returns the desktop's predefined window set.
// The first window starts highest in the stack.
func DefaultWindows() []Window {
	return []Window{
		{ID: "term-1", Kind: KindTerminal, Title: "Kernel Terminal", IsOpen: true, StackOrder: 10},
		{ID: "dash-1", Kind: KindDashboard, Title: "System Analytics", IsOpen: true, StackOrder: 5},
		{ID: "explorer-1", Kind: KindExplorer, Title: "File Explorer", StackOrder: 1},
		{ID: "assistant-1", Kind: KindAIChat, Title: "Neural Assistant", StackOrder: 1},
		{ID: "logs-1", Kind: KindSystemLogs, Title: "System Logs", StackOrder: 1},
	}
}
