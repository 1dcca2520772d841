package wm

import (
	"fmt"
	"sort"
)

// Snapshot is a read-only copy of the manager state
type Snapshot struct {
	Windows []Window `yaml:"windows" json:"windows"`
	Active  string   `yaml:"active" json:"active"`
}

// Manager tracks a fixed set of windows, the active window and the stacking order.
//
// Commands never fail: an id or kind that matches nothing leaves the state untouched.
// The manager is not safe for concurrent use; the shell mutates it from a single goroutine.
type Manager struct {
	windows []Window
	active  string
}

// NewManager creates a manager over the given window set with active as the initial focus.
// At most one window per kind may exist.
func NewManager(windows []Window, active string) (*Manager, error) {
	ids := make(map[string]bool, len(windows))
	kinds := make(map[Kind]bool, len(windows))
	for _, w := range windows {
		if ids[w.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
		}
		if kinds[w.Kind] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, w.Kind)
		}
		ids[w.ID] = true
		kinds[w.Kind] = true
	}

	ws := make([]Window, len(windows))
	copy(ws, windows)
	return &Manager{windows: ws, active: active}, nil
}

// NewDefaultManager creates a manager with the default desktop layout
func NewDefaultManager() *Manager {
	m, _ := NewManager(DefaultWindows(), "term-1")
	return m
}

func (m *Manager) find(id string) *Window {
	for i := range m.windows {
		if m.windows[i].ID == id {
			return &m.windows[i]
		}
	}
	return nil
}

func (m *Manager) findKind(kind Kind) *Window {
	for i := range m.windows {
		if m.windows[i].Kind == kind {
			return &m.windows[i]
		}
	}
	return nil
}

// nextStackOrder is one above the current maximum, so every raise is strictly higher
func (m *Manager) nextStackOrder() int {
	top := 0
	for i, w := range m.windows {
		if i == 0 || w.StackOrder > top {
			top = w.StackOrder
		}
	}
	return top + 1
}

// Open shows the window of the given kind, restores it, raises it and makes it active
func (m *Manager) Open(kind Kind) {
	w := m.findKind(kind)
	if w == nil {
		return
	}
	w.IsOpen = true
	w.IsMinimized = false
	w.StackOrder = m.nextStackOrder()
	m.active = w.ID
}

// ToggleFocusOrMinimize restores and raises a minimized or inactive window,
// and minimizes the window that is already active and visible.
// The window becomes active either way.
func (m *Manager) ToggleFocusOrMinimize(id string) {
	w := m.find(id)
	if w == nil {
		return
	}
	if w.IsMinimized || m.active != id {
		w.IsMinimized = false
		w.StackOrder = m.nextStackOrder()
	} else {
		w.IsMinimized = true
	}
	m.active = id
}

// Close hides the window. Minimized state and stack order are kept for the next open,
// and the active reference is left as is.
func (m *Manager) Close(id string) {
	if w := m.find(id); w != nil {
		w.IsOpen = false
	}
}

// Focus makes the window active without raising it
func (m *Manager) Focus(id string) {
	if m.find(id) != nil {
		m.active = id
	}
}

// Reopen shows a closed window without touching its stack order or minimized state
func (m *Manager) Reopen(id string) {
	if w := m.find(id); w != nil && !w.IsOpen {
		w.IsOpen = true
	}
}

// Launch is the taskbar button action
func (m *Manager) Launch(id string) {
	w := m.find(id)
	if w == nil {
		return
	}
	if w.IsOpen {
		m.ToggleFocusOrMinimize(id)
	} else {
		m.Reopen(id)
	}
}

// CycleFocus activates and raises the next visible window below (or above, when reverse)
// the focused one, wrapping around.
func (m *Manager) CycleFocus(reverse bool) {
	visible := m.Visible()
	if len(visible) == 0 {
		return
	}

	// visible is bottom to top; walk downwards by default
	idx := -1
	for i, w := range visible {
		if w.ID == m.active {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.ToggleFocusOrMinimize(visible[len(visible)-1].ID)
		return
	}
	if reverse {
		idx = (idx + 1) % len(visible)
	} else {
		idx = (idx - 1 + len(visible)) % len(visible)
	}

	next := visible[idx].ID
	if next == m.active {
		return
	}
	m.ToggleFocusOrMinimize(next)
}

// Windows returns a copy of all windows in declaration order
func (m *Manager) Windows() []Window {
	ws := make([]Window, len(m.windows))
	copy(ws, m.windows)
	return ws
}

// Window returns the window with the given id
func (m *Manager) Window(id string) (Window, bool) {
	if w := m.find(id); w != nil {
		return *w, true
	}
	return Window{}, false
}

// Active returns the active window id. It may reference a closed or minimized window.
func (m *Manager) Active() string {
	return m.active
}

// Focused returns the active window when it is visible
func (m *Manager) Focused() (Window, bool) {
	w := m.find(m.active)
	if w == nil || !w.Visible() {
		return Window{}, false
	}
	return *w, true
}

// IsFocused reports whether id is the visibly focused window
func (m *Manager) IsFocused(id string) bool {
	w, ok := m.Focused()
	return ok && w.ID == id
}

// Visible returns open, non-minimized windows from bottom to top
func (m *Manager) Visible() []Window {
	var ws []Window
	for _, w := range m.windows {
		if w.Visible() {
			ws = append(ws, w)
		}
	}
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].StackOrder < ws[j].StackOrder
	})
	return ws
}

// Snapshot returns a copy of the full state
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{Windows: m.Windows(), Active: m.active}
}
