package window

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/gridos/internal/kernel"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/ui"
)

// Logs displays the kernel log, newest first
type Logs struct {
	Base
	entries []kernel.Entry
	cursor  int
	offset  int
	height  int
}

// NewLogs creates a log viewer bound to window id
func NewLogs(id, title string, styles ui.Styles) *Logs {
	return &Logs{
		Base: NewBase(id, title, styles),
	}
}

// SetEntries updates the log lines
func (l *Logs) SetEntries(entries []kernel.Entry) {
	l.entries = entries
	if l.cursor >= len(entries) {
		l.cursor = max(0, len(entries)-1)
	}
}

// Yank returns the highlighted entry's message
func (l *Logs) Yank() (string, bool) {
	if l.cursor >= len(l.entries) {
		return "", false
	}
	return l.entries[l.cursor].Message, true
}

// Update handles input
func (l *Logs) Update(msg tea.Msg) (Window, tea.Cmd) {
	if !l.focused {
		return l, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			if l.cursor < len(l.entries)-1 {
				l.cursor++
				l.ensureVisible()
			}
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if l.cursor > 0 {
				l.cursor--
				l.ensureVisible()
			}
		case key.Matches(msg, keys.DefaultKeyMap.GotoTop):
			l.cursor = 0
			l.offset = 0
		case key.Matches(msg, keys.DefaultKeyMap.GotoBot):
			l.cursor = max(0, len(l.entries)-1)
			l.ensureVisible()
		}
	}

	return l, nil
}

func (l *Logs) ensureVisible() {
	visibleHeight := max(1, l.height-3) // borders and title
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+visibleHeight {
		l.offset = l.cursor - visibleHeight + 1
	}
}

// View renders the log
func (l *Logs) View(width, height int) string {
	l.height = height
	contentWidth := width - 2
	contentHeight := height - 3
	if contentWidth < 1 || contentHeight < 1 {
		return l.Frame(nil, width, height)
	}

	var lines []string
	if len(l.entries) == 0 {
		lines = append(lines, l.styles.Muted.Render("No kernel messages"))
	}
	for i := l.offset; i < len(l.entries) && i < l.offset+contentHeight; i++ {
		lines = append(lines, l.renderEntry(l.entries[i], i == l.cursor))
	}

	return l.Frame(lines, width, height)
}

func (l *Logs) renderEntry(e kernel.Entry, selected bool) string {
	cursor := " "
	if selected && l.focused {
		cursor = ">"
	}

	ts := l.styles.Muted.Render("[" + e.Time.Format("15:04:05") + "]")
	level := l.levelStyle(e.Level).Render(fmt.Sprintf("%-6s", strings.ToUpper(string(e.Level))))

	return fmt.Sprintf("%s %s %s %s", cursor, ts, level, e.Message)
}

func (l *Logs) levelStyle(level kernel.Level) lipgloss.Style {
	switch level {
	case kernel.LevelWarn:
		return l.styles.LogWarn
	case kernel.LevelError:
		return l.styles.LogError
	case kernel.LevelSystem:
		return l.styles.LogSystem
	default:
		return l.styles.LogInfo
	}
}
