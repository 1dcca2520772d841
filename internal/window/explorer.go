package window

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/ui"
	"github.com/kmacinski/gridos/internal/vfs"
)

// Explorer browses the static file tree
type Explorer struct {
	Base
	browser *vfs.Browser
	offset  int
	height  int
}

// NewExplorer creates an explorer bound to window id
func NewExplorer(id, title string, fs vfs.Lister, styles ui.Styles) *Explorer {
	return &Explorer{
		Base:    NewBase(id, title, styles),
		browser: vfs.NewBrowser(fs),
	}
}

// Browser exposes the navigation state
func (e *Explorer) Browser() *vfs.Browser {
	return e.browser
}

// Yank returns the selected path
func (e *Explorer) Yank() (string, bool) {
	p := e.browser.SelectedPath()
	return p, p != ""
}

// Update handles input
func (e *Explorer) Update(msg tea.Msg) (Window, tea.Cmd) {
	if !e.focused {
		return e, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			e.browser.Move(1)
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			e.browser.Move(-1)
		case key.Matches(msg, keys.DefaultKeyMap.GotoTop):
			e.browser.Move(-len(e.browser.Items()))
		case key.Matches(msg, keys.DefaultKeyMap.GotoBot):
			e.browser.Move(len(e.browser.Items()))
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			e.browser.Open()
			e.offset = 0
		case key.Matches(msg, keys.DefaultKeyMap.Back):
			e.browser.Back()
		}
		e.ensureVisible()
	}

	return e, nil
}

func (e *Explorer) ensureVisible() {
	visibleHeight := max(1, e.height-5) // borders, title, path and header
	cursor := e.browser.Cursor()
	if cursor < e.offset {
		e.offset = cursor
	} else if cursor >= e.offset+visibleHeight {
		e.offset = cursor - visibleHeight + 1
	}
}

// View renders the current folder
func (e *Explorer) View(width, height int) string {
	e.height = height
	contentWidth := width - 2
	listHeight := height - 5 // borders, title, path and header
	if contentWidth < 1 || listHeight < 1 {
		return e.Frame(nil, width, height)
	}

	lines := []string{
		e.styles.Accent.Render("root@grid:") + " " + e.styles.Bold.Render(e.browser.Path()),
		e.styles.Muted.Render(fmt.Sprintf("  %-*s %8s", max(1, contentWidth-12), "NAME", "SIZE")),
	}

	items := e.browser.Items()
	if len(items) == 0 {
		lines = append(lines, e.styles.Muted.Render("  (empty)"))
	}
	for i := e.offset; i < len(items) && i < e.offset+listHeight; i++ {
		lines = append(lines, e.renderItem(items[i], i == e.browser.Cursor(), contentWidth))
	}

	if sel := e.browser.SelectedPath(); sel != "" {
		lines = append(lines, "", e.styles.Muted.Render("selected: ")+sel)
	}

	return e.Frame(lines, width, height)
}

func (e *Explorer) renderItem(item *vfs.Node, selected bool, maxWidth int) string {
	icon, nameStyle := "  ", e.styles.ListItem
	if item.IsDir {
		icon, nameStyle = "▸ ", e.styles.Folder
	}
	if selected && e.focused {
		nameStyle = e.styles.ListItemSelected
	}

	cursor := " "
	if selected {
		cursor = ">"
	}

	size := item.Size
	if item.IsDir {
		size = "--"
	}

	nameWidth := max(1, maxWidth-13)
	name := ansi.Truncate(icon+item.Name, nameWidth, "…")
	name = lipgloss.NewStyle().Width(nameWidth).Render(name)

	return fmt.Sprintf("%s %s %8s", cursor, nameStyle.Render(name), e.styles.Muted.Render(size))
}
