package window

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/gridos/internal/ui"
)

// Base provides common functionality for windows
type Base struct {
	name    string
	title   string
	focused bool
	styles  ui.Styles
}

// NewBase creates a new base window. name is the window id it is bound to.
func NewBase(name, title string, styles ui.Styles) Base {
	return Base{
		name:   name,
		title:  title,
		styles: styles,
	}
}

// Name returns the window id
func (b *Base) Name() string {
	return b.name
}

// Focused returns whether the window is focused
func (b *Base) Focused() bool {
	return b.focused
}

// SetFocus sets the focus state
func (b *Base) SetFocus(focused bool) {
	b.focused = focused
}

// SetStyles swaps the palette, used when the config file changes
func (b *Base) SetStyles(styles ui.Styles) {
	b.styles = styles
}

// Frame draws the border and title row around body, clipping or padding it to the given size
func (b *Base) Frame(body []string, width, height int) string {
	style := b.styles.WindowUnfocused
	if b.focused {
		style = b.styles.WindowFocused
	}

	contentWidth := width - 2   // borders
	contentHeight := height - 2 // borders
	if contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	lines := make([]string, 0, contentHeight)
	lines = append(lines, b.titleRow(contentWidth))
	for _, line := range body {
		if len(lines) == contentHeight {
			break
		}
		lines = append(lines, ansi.Truncate(line, contentWidth, ""))
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return style.
		Width(contentWidth).
		Height(contentHeight).
		Render(strings.Join(lines, "\n"))
}

func (b *Base) titleRow(width int) string {
	buttonsWidth := ansi.StringWidth(ui.MinimizeButton + ui.CloseButton)
	buttons := b.styles.ButtonMinimize.Render(ui.MinimizeButton) + b.styles.ButtonClose.Render(ui.CloseButton)

	marker, titleStyle := "○ ", b.styles.WindowTitleDim
	if b.focused {
		marker, titleStyle = "● ", b.styles.WindowTitle
	}

	if width <= buttonsWidth {
		return ansi.Truncate(marker+b.title, width, "")
	}

	title := ansi.Truncate(marker+b.title, width-buttonsWidth-1, "…")
	gap := width - ansi.StringWidth(title) - buttonsWidth
	return titleStyle.Render(title) + strings.Repeat(" ", gap) + buttons
}

// wrap soft-wraps text to width and returns its lines
func wrap(text string, width int) []string {
	if width < 1 {
		return nil
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
}

// tail returns the height lines ending scroll lines above the bottom of lines
func tail(lines []string, height, scroll int) []string {
	if height < 1 {
		return nil
	}
	end := len(lines) - scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := max(0, end-height)
	return lines[start:end]
}

// clampScroll keeps a bottom-anchored scroll offset inside the transcript
func clampScroll(scroll, total, height int) int {
	return max(0, min(scroll, total-height))
}

// appendStyled wraps text to width and appends each line rendered with style
func appendStyled(lines []string, style lipgloss.Style, text string, width int) []string {
	for _, l := range wrap(text, width) {
		lines = append(lines, style.Render(l))
	}
	return lines
}
