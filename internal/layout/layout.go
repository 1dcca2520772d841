// Package layout places windows on the desktop and composites them into one screen.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/gridos/internal/ui"
	"github.com/kmacinski/gridos/internal/wm"
)

// Mode is how windows are arranged
type Mode int

const (
	// Floating draws every visible window at its own frame, in stacking order
	Floating Mode = iota
	// Maximized draws only the focused window over the whole desktop
	Maximized
)

func (m Mode) String() string {
	if m == Maximized {
		return "maximized"
	}
	return "floating"
}

// Frame is a rectangle in screen cells
type Frame struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell x,y falls inside the frame
func (f Frame) Contains(x, y int) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// Geometry places a window as percentages of the desktop area
type Geometry struct {
	Left   int `yaml:"left" json:"left"`
	Top    int `yaml:"top" json:"top"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

const (
	minFrameWidth  = 20
	minFrameHeight = 6
)

// Frame resolves the percentages against area, keeping the frame inside it
func (g Geometry) Frame(area Frame) Frame {
	w := min(area.Width, max(minFrameWidth, area.Width*g.Width/100))
	h := min(area.Height, max(minFrameHeight, area.Height*g.Height/100))
	x := min(area.X+area.Width*g.Left/100, area.X+area.Width-w)
	y := min(area.Y+area.Height*g.Top/100, area.Y+area.Height-h)
	return Frame{X: max(area.X, x), Y: max(area.Y, y), Width: w, Height: h}
}

// DefaultGeometry is where each kind of window opens
var DefaultGeometry = map[wm.Kind]Geometry{
	wm.KindTerminal:   {Left: 5, Top: 5, Width: 60, Height: 70},
	wm.KindDashboard:  {Left: 60, Top: 45, Width: 35, Height: 50},
	wm.KindExplorer:   {Left: 25, Top: 20, Width: 50, Height: 60},
	wm.KindAIChat:     {Left: 65, Top: 10, Width: 30, Height: 80},
	wm.KindSystemLogs: {Left: 3, Top: 55, Width: 45, Height: 40},
}

// Breakpoint is the smallest screen that still floats windows
type Breakpoint struct {
	MinWidth  int
	MinHeight int
}

// DefaultBreakpoint matches the default config
var DefaultBreakpoint = Breakpoint{MinWidth: 100, MinHeight: 28}

// Region is the part of a window a click landed on
type Region int

const (
	RegionNone Region = iota
	RegionBody
	RegionTitle
	RegionMinimize
	RegionClose
)

// Placed is a window with its frame and rendered content
type Placed struct {
	ID      string
	Frame   Frame
	Content string
}

// Manager handles placement and compositing
type Manager struct {
	breakpoint Breakpoint
	geometry   map[wm.Kind]Geometry
	mode       Mode
	width      int
	height     int
}

// NewManager creates a new layout manager
func NewManager(breakpoint Breakpoint) *Manager {
	return &Manager{
		breakpoint: breakpoint,
		geometry:   DefaultGeometry,
	}
}

// SetBreakpoint changes the floating threshold, used on config reload
func (m *Manager) SetBreakpoint(bp Breakpoint) {
	m.breakpoint = bp
	m.Resize(m.width, m.height)
}

// Resize updates the screen dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	m.mode = Floating
	if width < m.breakpoint.MinWidth || height < m.breakpoint.MinHeight {
		m.mode = Maximized
	}
}

// Mode returns the current arrangement
func (m *Manager) Mode() Mode {
	return m.mode
}

// Desktop is the area between the top bar and the taskbar
func (m *Manager) Desktop() Frame {
	return Frame{X: 0, Y: 1, Width: m.width, Height: max(0, m.height-2)}
}

// Arrange assigns frames to the visible windows, bottom to top.
// In maximized mode only the focused window is placed, or the topmost one when nothing is focused.
func (m *Manager) Arrange(visible []wm.Window, focused string) []Placed {
	if len(visible) == 0 || m.width == 0 || m.height < 3 {
		return nil
	}

	if m.mode == Maximized {
		pick := visible[len(visible)-1]
		for _, w := range visible {
			if w.ID == focused {
				pick = w
			}
		}
		return []Placed{{ID: pick.ID, Frame: m.Desktop()}}
	}

	placed := make([]Placed, 0, len(visible))
	for _, w := range visible {
		g, ok := m.geometry[w.Kind]
		if !ok {
			g = Geometry{Left: 10, Top: 10, Width: 50, Height: 50}
		}
		placed = append(placed, Placed{ID: w.ID, Frame: g.Frame(m.Desktop())})
	}
	return placed
}

// HitTest finds the topmost placed window under x,y and the region that was hit
func HitTest(placed []Placed, x, y int) (string, Region) {
	for i := len(placed) - 1; i >= 0; i-- {
		f := placed[i].Frame
		if !f.Contains(x, y) {
			continue
		}
		return placed[i].ID, regionOf(f, x, y)
	}
	return "", RegionNone
}

func regionOf(f Frame, x, y int) Region {
	if y != f.Y+1 {
		return RegionBody
	}

	minW := ansi.StringWidth(ui.MinimizeButton)
	closeW := ansi.StringWidth(ui.CloseButton)
	right := f.X + f.Width - 1 // right border
	if f.Width-2 <= minW+closeW {
		return RegionTitle
	}

	switch {
	case x >= right-closeW && x < right:
		return RegionClose
	case x >= right-closeW-minW && x < right-closeW:
		return RegionMinimize
	}
	return RegionTitle
}

// Compose paints the bars, the placed windows in order and an optional centered overlay
func (m *Manager) Compose(top string, placed []Placed, bottom string, overlay string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	canvas := make([]string, m.height)
	blank := strings.Repeat(" ", m.width)
	for i := range canvas {
		canvas[i] = blank
	}

	Paint(canvas, 0, 0, m.width, top)
	if m.height > 1 {
		Paint(canvas, 0, m.height-1, m.width, bottom)
	}
	for _, p := range placed {
		Paint(canvas, p.Frame.X, p.Frame.Y, p.Frame.Width, p.Content)
	}
	if overlay != "" {
		w, h := lipgloss.Width(overlay), lipgloss.Height(overlay)
		Paint(canvas, max(0, (m.width-w)/2), max(1, (m.height-h)/2), w, overlay)
	}

	return strings.Join(canvas, "\n")
}

// Paint overwrites a width-wide block of canvas at x,y with the lines of block.
// Lines are padded or cut to width; rows outside the canvas are dropped.
func Paint(canvas []string, x, y, width int, block string) {
	if width < 1 || block == "" {
		return
	}
	x = max(0, x)

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}

		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		} else if w > width {
			line = ansi.Truncate(line, width, "")
		}

		left := ansi.Truncate(canvas[row], x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		if strings.Contains(left, "\x1b") {
			left += "\x1b[0m"
		}
		right := ansi.TruncateLeft(canvas[row], x+width, "")

		canvas[row] = left + line + right
	}
}
