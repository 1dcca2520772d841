package window

import (
	"fmt"
	"strings"

	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/ui"
)

// Help renders the keybinding reference modal
type Help struct {
	styles ui.Styles
}

// NewHelp creates the help modal
func NewHelp(styles ui.Styles) *Help {
	return &Help{styles: styles}
}

// SetStyles swaps the palette
func (h *Help) SetStyles(styles ui.Styles) {
	h.styles = styles
}

// View renders the help content
func (h *Help) View(width, height int) string {
	contentWidth := width - 6 // border and padding
	contentHeight := height - 4
	if contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	var lines []string
	lines = append(lines, h.styles.ModalTitle.Render("Keybindings"))

	seen := make(map[string]bool)
	for i, group := range keys.HelpBindings() {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, b := range group {
			help := b.Help()
			if seen[help.Key+help.Desc] {
				continue
			}
			seen[help.Key+help.Desc] = true
			keyStyle := h.styles.Bold.Width(12)
			lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(help.Key), h.styles.ListItem.Render(help.Desc)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Mouse: click windows, title buttons and the taskbar"))
	lines = append(lines, h.styles.Muted.Render("Press F1 or Esc to close"))

	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	return h.styles.Modal.
		Width(min(contentWidth, 56)).
		Render(strings.Join(lines, "\n"))
}
